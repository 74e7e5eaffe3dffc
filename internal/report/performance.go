package report

import (
	"sellerflow/internal/domain"
	"sellerflow/internal/metrics"
)

const DefaultTopProducts = 10

type PerformanceInput struct {
	Orders      []domain.Order
	Products    []domain.Product
	Period      string
	Marketplace string
	TopProducts int
}

// BuildPerformance lays out the performance report: key metrics, revenue by
// marketplace, the daily profit trend, best sellers and per-marketplace
// performance.
func BuildPerformance(in PerformanceInput, opts Options) (*Document, error) {
	r, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if err := r.checkSize(len(in.Orders) + len(in.Products)); err != nil {
		return nil, err
	}

	if _, err := validateOrders(in.Orders); err != nil {
		return nil, err
	}
	for i, product := range in.Products {
		if product.Sales < 0 {
			return nil, recordError("products", i, product.ID, &metrics.ValidationError{Field: "sales", Value: product.Sales, Reason: "cannot be negative"})
		}
		if _, err := metrics.Margin(product.Price, product.Cost); err != nil {
			return nil, recordError("products", i, product.ID, err)
		}
	}

	summary, err := metrics.Summarize(in.Orders)
	if err != nil {
		return nil, renderError(err)
	}
	top := in.TopProducts
	if top == 0 {
		top = DefaultTopProducts
	}
	sellers, err := metrics.BestSellers(in.Products, top)
	if err != nil {
		return nil, renderError(err)
	}
	performance, err := metrics.MarketplacePerformance(in.Orders)
	if err != nil {
		return nil, renderError(err)
	}
	margin, err := metrics.PercentageOfTotal(summary.TotalProfit, summary.TotalRevenue)
	if err != nil {
		return nil, renderError(err)
	}

	b := newBuilder(r)
	l := b.labels
	cat := r.catalog

	marketplace := l.All
	filtered := in.Marketplace != "" && in.Marketplace != "all"
	if filtered {
		marketplace = in.Marketplace
	}
	b.header(l.PerformanceTitle,
		l.Period+": "+cat.DateWindow(in.Period),
		l.Marketplace+": "+marketplace,
	)
	b.summary(l.KeyMetrics,
		Pair{Label: l.TotalRevenue, Value: b.money(summary.TotalRevenue)},
		Pair{Label: l.NetProfit, Value: b.money(summary.TotalProfit)},
		Pair{Label: l.ProfitMargin, Value: b.percent(margin)},
		Pair{Label: l.TotalOrders, Value: b.integer(summary.TotalOrders)},
		Pair{Label: l.AvgOrderValue, Value: b.money(summary.AverageOrderValue)},
	)

	shareRows := make([][]Cell, 0, len(summary.MarketplaceBreakdown))
	for _, row := range summary.MarketplaceBreakdown {
		shareRows = append(shareRows, []Cell{b.str(row.Marketplace), b.money(row.Revenue), b.percent(row.Share)})
	}
	b.table(l.RevenueByMarketplace, []Column{
		col(l.Marketplace, 80, AlignLeft),
		col(l.Revenue, 60, AlignRight),
		col(l.Share, 40, AlignRight),
	}, shareRows)

	trendRows := make([][]Cell, 0, len(summary.DailyTrend))
	for _, point := range summary.DailyTrend {
		trendRows = append(trendRows, []Cell{b.str(point.Date), b.integer(point.Orders), b.money(point.Revenue), b.money(point.Profit)})
	}
	b.table(l.ProfitTrend, []Column{
		col(l.Date, 45, AlignLeft),
		col(l.Orders, 35, AlignCenter),
		col(l.Revenue, 50, AlignRight),
		col(l.Profit, 50, AlignRight),
	}, trendRows)

	sellerRows := make([][]Cell, 0, len(sellers))
	for _, s := range sellers {
		sellerRows = append(sellerRows, []Cell{
			b.integer(s.Rank),
			b.str(s.Product),
			b.integer(s.Units),
			b.money(s.Revenue),
			b.money(s.Profit),
			b.percent(s.Margin),
		})
	}
	// Product sales are not tracked per channel, so the ranking ignores the
	// marketplace filter.
	sellersTitle := l.BestSellingProducts
	if filtered {
		sellersTitle += " (" + l.AllMarketplaces + ")"
	}
	b.table(sellersTitle, []Column{
		col(l.Rank, 10, AlignCenter),
		col(l.Product, 60, AlignLeft),
		col(l.UnitsSold, 25, AlignCenter),
		col(l.Revenue, 30, AlignRight),
		col(l.Profit, 30, AlignRight),
		col(l.Margin, 20, AlignRight),
	}, sellerRows)

	perfRows := make([][]Cell, 0, len(performance))
	for _, p := range performance {
		perfRows = append(perfRows, []Cell{
			b.str(p.Marketplace),
			b.integer(p.Orders),
			b.money(p.Revenue),
			b.money(p.AverageOrder),
			b.money(p.Commission),
			b.money(p.Profit),
		})
	}
	b.table(l.MarketplacePerformance, []Column{
		col(l.Marketplace, 35, AlignLeft),
		col(l.Orders, 20, AlignCenter),
		col(l.Revenue, 30, AlignRight),
		col(l.AvgOrder, 25, AlignRight),
		col(l.Commission, 30, AlignRight),
		col(l.Profit, 30, AlignRight),
	}, perfRows)

	return b.build(KindPerformance, l.PerformanceTitle, ""), nil
}
