package metrics

import (
	"math"
	"testing"

	"sellerflow/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdStatus(t *testing.T) {
	cases := map[int]string{
		0:   domain.AdOutOfStock,
		1:   domain.AdLowStock,
		9:   domain.AdLowStock,
		10:  domain.AdActive,
		120: domain.AdActive,
	}
	for stock, want := range cases {
		got, err := AdStatus(stock)
		require.NoError(t, err)
		assert.Equal(t, want, got, "stock %d", stock)
	}

	_, err := AdStatus(-1)
	assert.True(t, IsValidationError(err))
}

func TestAdStats(t *testing.T) {
	stats, err := AdStats([]domain.Ad{
		{Margin: 27.58, Status: domain.AdActive, Views: 1234},
		{Margin: 39.97, Status: domain.AdLowStock, Views: 100},
		{Margin: 22.2, Status: domain.AdOutOfStock},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.LowStock)
	assert.Equal(t, 1, stats.OutOfStock)
	assert.Equal(t, 1334, stats.TotalViews)
	assert.InDelta(t, 29.916, stats.AverageMargin, 0.001)

	empty, err := AdStats(nil)
	require.NoError(t, err)
	assert.Zero(t, empty.AverageMargin)

	_, err = AdStats([]domain.Ad{{Margin: math.NaN()}})
	assert.True(t, IsValidationError(err))
}

func TestAdProfitLineAppliesChannelFee(t *testing.T) {
	line, err := AdProfitLine(domain.Ad{Title: "Fone JBL", Marketplace: "Shopee", Price: 299.9, UnitCost: 180, Sales: 78})
	require.NoError(t, err)
	assert.InDelta(t, 23392.2, line.Revenue, 1e-6)
	assert.InDelta(t, 14040, line.Costs, 1e-6)
	assert.InDelta(t, 2339.22, line.Fees, 1e-6)

	other, err := AdProfitLine(domain.Ad{Marketplace: "Loja Própria", Price: 100, Sales: 1})
	require.NoError(t, err)
	assert.InDelta(t, 100*DefaultFeeRate, other.Fees, 1e-9)

	_, err = AdProfitLine(domain.Ad{Price: 10, Sales: -1})
	assert.True(t, IsValidationError(err))
}

func TestAnalyzeProfit(t *testing.T) {
	analysis, err := AnalyzeProfit([]domain.ProfitLine{
		{Product: "JBL Bluetooth", Channel: "Shopee", Units: 78, Revenue: 23392.2, Costs: 14040, Fees: 2339.22},
		{Product: "Logitech G502", Channel: "Mercado Livre", Units: 156, Revenue: 45224.4, Costs: 25740, Fees: 6783.66},
	})
	require.NoError(t, err)

	require.Len(t, analysis.Products, 2)
	assert.InDelta(t, 7012.98, analysis.Products[0].Profit, 1e-6)
	assert.InDelta(t, 29.98, analysis.Products[0].Margin, 0.01)
	assert.InDelta(t, 19713.72, analysis.TotalProfit, 1e-6)
	assert.InDelta(t, 68616.6, analysis.TotalRevenue, 1e-6)
	assert.InDelta(t, 28.73, analysis.AverageMargin, 0.01)
	assert.Equal(t, 234, analysis.UnitsSold)

	require.Len(t, analysis.Channels, 2)
	assert.Equal(t, "Mercado Livre", analysis.Channels[0].Channel)
	assert.InDelta(t, 64.43, analysis.Channels[0].Share, 0.01)
	assert.InDelta(t, 100, analysis.Channels[0].Share+analysis.Channels[1].Share, 1e-9)
}

func TestAnalyzeProfitEmptyAndInvalid(t *testing.T) {
	analysis, err := AnalyzeProfit(nil)
	require.NoError(t, err)
	assert.Empty(t, analysis.Products)
	assert.Empty(t, analysis.Channels)
	assert.Zero(t, analysis.AverageMargin)

	_, err = AnalyzeProfit([]domain.ProfitLine{{Revenue: 10, Fees: math.Inf(1)}})
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "lines[0]")
}
