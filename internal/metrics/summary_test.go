package metrics

import (
	"math"
	"testing"
	"time"

	"sellerflow/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 10, 30, 0, 0, time.UTC)
}

func sampleOrders() []domain.Order {
	return []domain.Order{
		{ID: "#ML-001", Date: day(15), Marketplace: "Mercado Livre", Items: 2, Subtotal: 299.90, Shipping: 15, Commission: 44.99},
		{ID: "#SH-002", Date: day(15), Marketplace: "Shopee", Items: 1, Subtotal: 89.90, Shipping: 0, Commission: 12.59},
		{ID: "#AM-003", Date: day(14), Marketplace: "Amazon", Items: 3, Subtotal: 459.70, Shipping: 25, Commission: 68.96},
		{ID: "#ML-004", Date: day(13), Marketplace: "Mercado Livre", Items: 1, Subtotal: 149.90, Shipping: 12, Commission: 22.49},
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary, err := Summarize(nil)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.TotalProfit)
	assert.Zero(t, summary.TotalOrders)
	assert.Zero(t, summary.AverageOrderValue)
	assert.NotNil(t, summary.MarketplaceBreakdown)
	assert.Empty(t, summary.MarketplaceBreakdown)
	assert.NotNil(t, summary.DailyTrend)
	assert.Empty(t, summary.DailyTrend)
}

func TestSummarizeOrders(t *testing.T) {
	summary, err := Summarize(sampleOrders())
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalOrders)
	assert.InDelta(t, 999.40, summary.TotalRevenue, 1e-9)
	assert.InDelta(t, 999.40-149.03, summary.TotalProfit, 1e-9)
	assert.InDelta(t, 249.85, summary.AverageOrderValue, 1e-9)

	require.Len(t, summary.MarketplaceBreakdown, 3)
	assert.Equal(t, "Amazon", summary.MarketplaceBreakdown[0].Marketplace)
	assert.Equal(t, "Mercado Livre", summary.MarketplaceBreakdown[1].Marketplace)
	assert.Equal(t, "Shopee", summary.MarketplaceBreakdown[2].Marketplace)
	share := 0.0
	for _, row := range summary.MarketplaceBreakdown {
		share += row.Share
	}
	assert.InDelta(t, 100, share, 1e-9)

	require.Len(t, summary.DailyTrend, 3)
	assert.Equal(t, "2024-03-13", summary.DailyTrend[0].Date)
	assert.Equal(t, "2024-03-15", summary.DailyTrend[2].Date)
	assert.Equal(t, 2, summary.DailyTrend[2].Orders)
	assert.InDelta(t, 389.80, summary.DailyTrend[2].Revenue, 1e-9)
}

func TestSummarizeReportsOffendingOrder(t *testing.T) {
	orders := sampleOrders()
	orders[2].Commission = math.NaN()

	_, err := Summarize(orders)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "orders[2]")
	assert.Contains(t, err.Error(), "commission")
}

func TestBestSellers(t *testing.T) {
	products := []domain.Product{
		{Name: "Fone Bluetooth", Price: 149.90, Cost: 70, Sales: 120},
		{Name: "Smartwatch", Price: 299.90, Cost: 150, Sales: 85},
		{Name: "Carregador USB-C", Price: 49.90, Cost: 18, Sales: 120},
		{Name: "Capa de Celular", Price: 29.90, Cost: 8, Sales: 40},
	}

	ranked, err := BestSellers(products, 3)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "Carregador USB-C", ranked[0].Product)
	assert.Equal(t, "Fone Bluetooth", ranked[1].Product)
	assert.Equal(t, "Smartwatch", ranked[2].Product)
	for i, row := range ranked {
		assert.Equal(t, i+1, row.Rank)
	}
	assert.InDelta(t, 149.90*120, ranked[1].Revenue, 1e-9)
	assert.InDelta(t, 79.90*120, ranked[1].Profit, 1e-9)

	all, err := BestSellers(products, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestBestSellersRejectsZeroPrice(t *testing.T) {
	_, err := BestSellers([]domain.Product{{Name: "Brinde", Price: 0, Cost: 1, Sales: 3}}, 5)
	assert.True(t, IsValidationError(err))
}

func TestMarketplacePerformance(t *testing.T) {
	rows, err := MarketplacePerformance(sampleOrders())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	ml := rows[1]
	assert.Equal(t, "Mercado Livre", ml.Marketplace)
	assert.Equal(t, 2, ml.Orders)
	assert.InDelta(t, 449.80, ml.Revenue, 1e-9)
	assert.InDelta(t, 224.90, ml.AverageOrder, 1e-9)
	assert.InDelta(t, 67.48, ml.Commission, 1e-9)
	assert.InDelta(t, 449.80-67.48, ml.Profit, 1e-9)

	empty, err := MarketplacePerformance(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSummarizeInventory(t *testing.T) {
	stats := SummarizeInventory([]domain.InventoryItem{
		{SKU: "A", Reserved: 5, Status: domain.StockOK},
		{SKU: "B", Reserved: 2, Status: domain.StockLow},
		{SKU: "C", Reserved: 0, Status: domain.StockOut},
		{SKU: "D", Reserved: 1, Status: domain.StockLow},
	})
	assert.Equal(t, domain.InventoryStats{TotalProducts: 4, LowStock: 2, OutOfStock: 1, TotalReserved: 8}, stats)
}
