package report

import (
	"strings"

	"sellerflow/internal/domain"
	"sellerflow/internal/metrics"
)

const dateLayout = "2006-01-02"

// SalesFilters describes the filters that produced the order list. Empty
// values and "all" mean no filter.
type SalesFilters struct {
	Marketplace string
	DateWindow  string
	Status      string
	Search      string
}

type SalesInput struct {
	Orders  []domain.Order
	Filters SalesFilters
}

// BuildSales lays out the sales analysis report: filters, summary
// statistics and one row per order.
func BuildSales(in SalesInput, opts Options) (*Document, error) {
	r, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if err := r.checkSize(len(in.Orders)); err != nil {
		return nil, err
	}

	profits, err := validateOrders(in.Orders)
	if err != nil {
		return nil, err
	}
	summary, err := metrics.Summarize(in.Orders)
	if err != nil {
		return nil, renderError(err)
	}

	b := newBuilder(r)
	l := b.labels
	cat := r.catalog

	b.header(l.SalesTitle)
	marketplace := l.All
	if in.Filters.Marketplace != "" && in.Filters.Marketplace != "all" {
		marketplace = in.Filters.Marketplace
	}
	filters := l.Marketplace + ": " + marketplace + " | " +
		l.DateRange + ": " + cat.DateWindow(in.Filters.DateWindow) + " | " +
		l.Status + ": " + cat.FilterValue(in.Filters.Status)
	if search := strings.TrimSpace(in.Filters.Search); search != "" {
		filters += " | " + l.Search + ": " + search
	}
	b.text(l.Filters, filters)
	b.summary(l.Summary,
		Pair{Label: l.TotalSales, Value: b.money(summary.TotalRevenue)},
		Pair{Label: l.TotalOrders, Value: b.integer(summary.TotalOrders)},
		Pair{Label: l.AvgOrderValue, Value: b.money(summary.AverageOrderValue)},
		Pair{Label: l.TotalProfit, Value: b.money(summary.TotalProfit)},
	)

	columns := []Column{
		col(l.OrderID, 20, AlignLeft),
		col(l.Date, 18, AlignLeft),
		col(l.Customer, 25, AlignLeft),
		col(l.Marketplace, 22, AlignLeft),
		col(l.Items, 12, AlignCenter),
		col(l.Subtotal, 20, AlignRight),
		col(l.Shipping, 18, AlignRight),
		col(l.Commission, 20, AlignRight),
		col(l.NetProfit, 20, AlignRight),
		col(l.Status, 20, AlignLeft),
	}
	rows := make([][]Cell, 0, len(in.Orders))
	for i, order := range in.Orders {
		rows = append(rows, []Cell{
			b.str(order.ID),
			b.str(order.Date.Format(dateLayout)),
			b.str(order.Customer),
			b.str(order.Marketplace),
			b.integer(order.Items),
			b.money(order.Subtotal),
			b.money(order.Shipping),
			b.money(order.Commission),
			b.money(profits[i]),
			b.str(cat.Status(order.Status)),
		})
	}
	b.table(l.OrderDetails, columns, rows)

	return b.build(KindSales, l.SalesTitle, ""), nil
}

func validateOrders(orders []domain.Order) ([]float64, error) {
	profits := make([]float64, len(orders))
	for i, order := range orders {
		if order.ID == "" {
			return nil, missingField("orders", i, order.ID, "id")
		}
		if order.Date.IsZero() {
			return nil, missingField("orders", i, order.ID, "date")
		}
		profit, err := metrics.OrderProfit(order)
		if err != nil {
			return nil, recordError("orders", i, order.ID, err)
		}
		profits[i] = profit
	}
	return profits, nil
}
