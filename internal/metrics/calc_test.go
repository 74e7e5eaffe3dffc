package metrics

import (
	"math"
	"testing"

	"sellerflow/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarginBounds(t *testing.T) {
	prices := []float64{0.01, 1, 29.9, 299.9, 10000}
	costs := []float64{0, 0.005, 1, 12, 150, 299.9, 500, 20000}
	for _, price := range prices {
		for _, cost := range costs {
			margin, err := Margin(price, cost)
			require.NoError(t, err)
			assert.LessOrEqual(t, margin, 100.0)
			assert.False(t, math.IsNaN(margin))
			if cost == 0 {
				assert.Equal(t, 100.0, margin)
			} else {
				assert.Less(t, margin, 100.0)
			}
		}
	}
}

func TestMarginRejectsNonPositivePrice(t *testing.T) {
	for _, price := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Margin(price, 10)
		require.Error(t, err)
		assert.True(t, IsValidationError(err), "price %v", price)
	}
}

func TestMarginRejectsInvalidCost(t *testing.T) {
	_, err := Margin(100, -5)
	assert.True(t, IsValidationError(err))
	_, err = Margin(100, math.NaN())
	assert.True(t, IsValidationError(err))
}

func TestOrderProfitAndTotal(t *testing.T) {
	order := domain.Order{Subtotal: 299.90, Shipping: 15.00, Commission: 44.99}

	profit, err := OrderProfit(order)
	require.NoError(t, err)
	assert.InDelta(t, 254.91, profit, 1e-9)

	total, err := OrderTotal(order)
	require.NoError(t, err)
	assert.InDelta(t, 314.90, total, 1e-9)
}

func TestOrderProfitRejectsInvalidFields(t *testing.T) {
	cases := map[string]domain.Order{
		"nan subtotal":        {Subtotal: math.NaN()},
		"negative shipping":   {Subtotal: 10, Shipping: -1},
		"infinite commission": {Subtotal: 10, Commission: math.Inf(1)},
		"negative items":      {Subtotal: 10, Items: -2},
	}
	for name, order := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := OrderProfit(order)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestLineItemProfitAndMargin(t *testing.T) {
	item := domain.LineItem{Quantity: 3, UnitPrice: 149.90, UnitCost: 70}

	profit, err := LineProfit(item)
	require.NoError(t, err)
	assert.InDelta(t, 239.70, profit, 1e-9)

	margin, err := LineMargin(item)
	require.NoError(t, err)
	assert.InDelta(t, 53.30, margin, 0.01)

	_, err = LineMargin(domain.LineItem{Quantity: 1, UnitPrice: 0, UnitCost: 1})
	assert.True(t, IsValidationError(err))
}

func TestTaxBreakdownServiceInvoice(t *testing.T) {
	total, err := ParseMoney("R$ 459,50")
	require.NoError(t, err)

	tax, err := Tax(total, true)
	require.NoError(t, err)
	assert.InDelta(t, 382.92, tax.Subtotal, 0.01)
	assert.InDelta(t, 68.93, tax.ICMS, 0.01)
	assert.InDelta(t, 13.98, tax.PISCOFINS, 0.01)
	assert.InDelta(t, 19.15, tax.ISS, 0.01)
	assert.InDelta(t, 484.964, tax.Subtotal+tax.ICMS+tax.PISCOFINS+tax.ISS, 0.001)

	rounded := Round2(tax.Subtotal) + Round2(tax.ICMS) + Round2(tax.PISCOFINS) + Round2(tax.ISS)
	assert.InDelta(t, 484.98, rounded, 1e-9)
}

func TestTaxBreakdownFollowsFixedRates(t *testing.T) {
	for _, total := range []float64{0.01, 1, 29.9, 199, 459.5, 12345.67, 1e7} {
		for _, service := range []bool{false, true} {
			tax, err := Tax(total, service)
			require.NoError(t, err)
			assert.InDelta(t, total, tax.Subtotal*BlendedTaxRate, 0.01)
			assert.InDelta(t, tax.Subtotal*ICMSRate, tax.ICMS, 1e-9)
			assert.InDelta(t, tax.Subtotal*PISCOFINSRate, tax.PISCOFINS, 1e-9)
			if service {
				assert.InDelta(t, tax.Subtotal*ISSRate, tax.ISS, 1e-9)
			} else {
				assert.Zero(t, tax.ISS)
			}
		}
	}
}

func TestInvoiceTaxUsesType(t *testing.T) {
	goods, err := InvoiceTax(domain.Invoice{ID: "NFE-1", Type: domain.InvoiceTypeNFe, Value: 120})
	require.NoError(t, err)
	assert.Zero(t, goods.ISS)
	assert.InDelta(t, 100, goods.Subtotal, 1e-9)

	_, err = InvoiceTax(domain.Invoice{ID: "NFE-2", Type: domain.InvoiceTypeNFe, Value: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NFE-2")
	assert.True(t, IsValidationError(err))
}

func TestAggregatesOverEmptySet(t *testing.T) {
	sum, err := Sum(nil)
	require.NoError(t, err)
	assert.Zero(t, sum)

	avg, err := Average([]float64{})
	require.NoError(t, err)
	assert.Zero(t, avg)

	pct, err := PercentageOfTotal(42, 0)
	require.NoError(t, err)
	assert.Zero(t, pct)
}

func TestAggregatesRejectNonFinite(t *testing.T) {
	_, err := Sum([]float64{1, math.NaN()})
	assert.True(t, IsValidationError(err))
	_, err = Average([]float64{math.Inf(-1)})
	assert.True(t, IsValidationError(err))
	_, err = PercentageOfTotal(math.NaN(), 10)
	assert.True(t, IsValidationError(err))
}

func TestInventoryStatus(t *testing.T) {
	cases := []struct {
		name                      string
		stock, reserved, minStock int
		available                 int
		status                    string
	}{
		{"healthy", 45, 12, 10, 33, domain.StockOK},
		{"below minimum", 8, 5, 10, 3, domain.StockLow},
		{"nothing left", 0, 0, 5, 0, domain.StockOut},
		{"all reserved", 7, 7, 1, 0, domain.StockOut},
		{"exactly minimum", 20, 10, 10, 10, domain.StockOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			available, status, err := InventoryStatus(tc.stock, tc.reserved, tc.minStock)
			require.NoError(t, err)
			assert.Equal(t, tc.available, available)
			assert.Equal(t, tc.status, status)
		})
	}

	_, _, err := InventoryStatus(3, 5, 1)
	assert.True(t, IsValidationError(err))
	_, _, err = InventoryStatus(-1, 0, 0)
	assert.True(t, IsValidationError(err))
}
