package metrics

import (
	"fmt"
	"sort"

	"sellerflow/internal/domain"
)

const dayLayout = "2006-01-02"

// Summarize aggregates a snapshot of orders. Revenue is the order subtotal;
// shipping is excluded.
func Summarize(orders []domain.Order) (domain.ReportSummary, error) {
	summary := domain.ReportSummary{
		TotalOrders:          len(orders),
		MarketplaceBreakdown: []domain.MarketplaceShare{},
		DailyTrend:           []domain.DailyPoint{},
	}
	if len(orders) == 0 {
		return summary, nil
	}

	subtotals := make([]float64, 0, len(orders))
	byMarketplace := map[string]float64{}
	byDay := map[string]*domain.DailyPoint{}
	for i, order := range orders {
		profit, err := OrderProfit(order)
		if err != nil {
			return domain.ReportSummary{}, fmt.Errorf("orders[%d]: %w", i, err)
		}
		subtotals = append(subtotals, order.Subtotal)
		summary.TotalProfit += profit
		byMarketplace[order.Marketplace] += order.Subtotal

		day := order.Date.Format(dayLayout)
		point, ok := byDay[day]
		if !ok {
			point = &domain.DailyPoint{Date: day}
			byDay[day] = point
		}
		point.Revenue += order.Subtotal
		point.Profit += profit
		point.Orders++
	}

	var err error
	if summary.TotalRevenue, err = Sum(subtotals); err != nil {
		return domain.ReportSummary{}, err
	}
	if summary.AverageOrderValue, err = Average(subtotals); err != nil {
		return domain.ReportSummary{}, err
	}

	for marketplace, revenue := range byMarketplace {
		share, err := PercentageOfTotal(revenue, summary.TotalRevenue)
		if err != nil {
			return domain.ReportSummary{}, err
		}
		summary.MarketplaceBreakdown = append(summary.MarketplaceBreakdown, domain.MarketplaceShare{
			Marketplace: marketplace,
			Revenue:     revenue,
			Share:       share,
		})
	}
	sort.Slice(summary.MarketplaceBreakdown, func(i, j int) bool {
		a, b := summary.MarketplaceBreakdown[i], summary.MarketplaceBreakdown[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		return a.Marketplace < b.Marketplace
	})

	for _, point := range byDay {
		summary.DailyTrend = append(summary.DailyTrend, *point)
	}
	sort.Slice(summary.DailyTrend, func(i, j int) bool {
		return summary.DailyTrend[i].Date < summary.DailyTrend[j].Date
	})

	return summary, nil
}

// BestSellers ranks products by units sold. limit <= 0 keeps every product.
func BestSellers(products []domain.Product, limit int) ([]domain.BestSeller, error) {
	ranked := make([]domain.BestSeller, 0, len(products))
	for i, product := range products {
		if product.Sales < 0 {
			return nil, fmt.Errorf("products[%d]: %w", i, &ValidationError{Field: "sales", Value: product.Sales, Reason: "cannot be negative"})
		}
		unitProfit, err := Profit(product.Price, product.Cost)
		if err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}
		margin, err := Margin(product.Price, product.Cost)
		if err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}
		ranked = append(ranked, domain.BestSeller{
			Product: product.Name,
			Units:   product.Sales,
			Revenue: product.Price * float64(product.Sales),
			Profit:  unitProfit * float64(product.Sales),
			Margin:  margin,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Units != ranked[j].Units {
			return ranked[i].Units > ranked[j].Units
		}
		return ranked[i].Product < ranked[j].Product
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, nil
}

func MarketplacePerformance(orders []domain.Order) ([]domain.MarketplacePerformance, error) {
	index := map[string]*domain.MarketplacePerformance{}
	for i, order := range orders {
		profit, err := OrderProfit(order)
		if err != nil {
			return nil, fmt.Errorf("orders[%d]: %w", i, err)
		}
		row, ok := index[order.Marketplace]
		if !ok {
			row = &domain.MarketplacePerformance{Marketplace: order.Marketplace}
			index[order.Marketplace] = row
		}
		row.Orders++
		row.Revenue += order.Subtotal
		row.Commission += order.Commission
		row.Profit += profit
	}

	result := make([]domain.MarketplacePerformance, 0, len(index))
	for _, row := range index {
		row.AverageOrder = row.Revenue / float64(row.Orders)
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		return result[i].Marketplace < result[j].Marketplace
	})
	return result, nil
}

func SummarizeInventory(items []domain.InventoryItem) domain.InventoryStats {
	stats := domain.InventoryStats{TotalProducts: len(items)}
	for _, item := range items {
		switch item.Status {
		case domain.StockLow:
			stats.LowStock++
		case domain.StockOut:
			stats.OutOfStock++
		}
		stats.TotalReserved += item.Reserved
	}
	return stats
}
