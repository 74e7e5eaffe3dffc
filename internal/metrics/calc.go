// Package metrics derives margins, profits, taxes and aggregate statistics
// from raw order, invoice, product and inventory figures. Every function is
// pure and rejects non-finite input with a *ValidationError.
package metrics

import (
	"fmt"

	"sellerflow/internal/domain"
)

// Mock tax model: the invoice value is assumed to carry a fixed 20% blended
// tax on top of the subtotal.
const (
	BlendedTaxRate = 1.20
	ICMSRate       = 0.18
	PISCOFINSRate  = 0.0365
	ISSRate        = 0.05
)

// Margin returns (price-cost)/price*100. price must be > 0.
func Margin(price, cost float64) (float64, error) {
	if err := requirePositive("price", price); err != nil {
		return 0, err
	}
	if err := requireNonNegative("cost", cost); err != nil {
		return 0, err
	}
	return (price - cost) / price * 100, nil
}

func Profit(price, cost float64) (float64, error) {
	if err := requireNonNegative("price", price); err != nil {
		return 0, err
	}
	if err := requireNonNegative("cost", cost); err != nil {
		return 0, err
	}
	return price - cost, nil
}

// ValidateOrder checks every numeric field of an order.
func ValidateOrder(order domain.Order) error {
	if err := requireNonNegative("subtotal", order.Subtotal); err != nil {
		return err
	}
	if err := requireNonNegative("shipping", order.Shipping); err != nil {
		return err
	}
	if err := requireNonNegative("commission", order.Commission); err != nil {
		return err
	}
	if order.Items < 0 {
		return &ValidationError{Field: "items", Value: order.Items, Reason: "cannot be negative"}
	}
	return nil
}

// OrderProfit is subtotal minus marketplace commission. Shipping is
// pass-through and never profit-bearing.
func OrderProfit(order domain.Order) (float64, error) {
	if err := ValidateOrder(order); err != nil {
		return 0, err
	}
	return order.Subtotal - order.Commission, nil
}

func OrderTotal(order domain.Order) (float64, error) {
	if err := ValidateOrder(order); err != nil {
		return 0, err
	}
	return order.Subtotal + order.Shipping, nil
}

func LineProfit(item domain.LineItem) (float64, error) {
	if item.Quantity < 0 {
		return 0, &ValidationError{Field: "quantity", Value: item.Quantity, Reason: "cannot be negative"}
	}
	unit, err := Profit(item.UnitPrice, item.UnitCost)
	if err != nil {
		return 0, err
	}
	return unit * float64(item.Quantity), nil
}

func LineMargin(item domain.LineItem) (float64, error) {
	return Margin(item.UnitPrice, item.UnitCost)
}

// Tax decomposes an invoice total under the blended-rate mock model.
// ISS is only charged on service invoices.
func Tax(total float64, service bool) (domain.TaxBreakdown, error) {
	if err := requireNonNegative("total", total); err != nil {
		return domain.TaxBreakdown{}, err
	}
	subtotal := total / BlendedTaxRate
	breakdown := domain.TaxBreakdown{
		Subtotal:  subtotal,
		ICMS:      subtotal * ICMSRate,
		PISCOFINS: subtotal * PISCOFINSRate,
	}
	if service {
		breakdown.ISS = subtotal * ISSRate
	}
	return breakdown, nil
}

func InvoiceTax(invoice domain.Invoice) (domain.TaxBreakdown, error) {
	breakdown, err := Tax(invoice.Value, invoice.IsService())
	if err != nil {
		return domain.TaxBreakdown{}, fmt.Errorf("invoice %s: %w", invoice.ID, err)
	}
	return breakdown, nil
}

// InventoryStatus derives available units and the stock status.
func InventoryStatus(stock, reserved, minStock int) (int, string, error) {
	if stock < 0 {
		return 0, "", &ValidationError{Field: "stock", Value: stock, Reason: "cannot be negative"}
	}
	if reserved < 0 {
		return 0, "", &ValidationError{Field: "reserved", Value: reserved, Reason: "cannot be negative"}
	}
	if minStock < 0 {
		return 0, "", &ValidationError{Field: "min_stock", Value: minStock, Reason: "cannot be negative"}
	}
	if reserved > stock {
		return 0, "", &ValidationError{Field: "reserved", Value: reserved, Reason: "cannot exceed stock"}
	}
	available := stock - reserved
	switch {
	case available == 0:
		return available, domain.StockOut, nil
	case available < minStock:
		return available, domain.StockLow, nil
	default:
		return available, domain.StockOK, nil
	}
}

func Sum(values []float64) (float64, error) {
	total := 0.0
	for i, value := range values {
		if err := requireFinite(fmt.Sprintf("values[%d]", i), value); err != nil {
			return 0, err
		}
		total += value
	}
	return total, nil
}

// Average of an empty sequence is 0.
func Average(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, nil
	}
	total, err := Sum(values)
	if err != nil {
		return 0, err
	}
	return total / float64(len(values)), nil
}

// PercentageOfTotal returns part/total*100, or 0 when total is 0.
func PercentageOfTotal(part, total float64) (float64, error) {
	if err := requireFinite("part", part); err != nil {
		return 0, err
	}
	if err := requireFinite("total", total); err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	return part / total * 100, nil
}
