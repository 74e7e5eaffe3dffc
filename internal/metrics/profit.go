package metrics

import (
	"fmt"
	"sort"

	"sellerflow/internal/domain"
)

// AdLowStockThreshold is the stock level below which a listing is flagged.
const AdLowStockThreshold = 10

// DefaultFeeRate applies to channels without a negotiated rate.
const DefaultFeeRate = 0.15

var feeRates = map[string]float64{
	"Mercado Livre":  0.15,
	"Shopee":         0.10,
	"Amazon":         0.15,
	"Magalu":         0.12,
	"Magazine Luiza": 0.12,
}

// FeeRate is the share of revenue a marketplace keeps per sale.
func FeeRate(marketplace string) float64 {
	if rate, ok := feeRates[marketplace]; ok {
		return rate
	}
	return DefaultFeeRate
}

func AdStatus(stock int) (string, error) {
	switch {
	case stock < 0:
		return "", &ValidationError{Field: "stock", Value: stock, Reason: "cannot be negative"}
	case stock == 0:
		return domain.AdOutOfStock, nil
	case stock < AdLowStockThreshold:
		return domain.AdLowStock, nil
	default:
		return domain.AdActive, nil
	}
}

// AdStats counts listings per status. The average margin of no ads is 0.
func AdStats(ads []domain.Ad) (domain.AdStats, error) {
	stats := domain.AdStats{Total: len(ads)}
	margins := make([]float64, 0, len(ads))
	for i, ad := range ads {
		if err := requireFinite(fmt.Sprintf("ads[%d].margin", i), ad.Margin); err != nil {
			return domain.AdStats{}, err
		}
		switch ad.Status {
		case domain.AdActive:
			stats.Active++
		case domain.AdLowStock:
			stats.LowStock++
		case domain.AdOutOfStock:
			stats.OutOfStock++
		}
		margins = append(margins, ad.Margin)
		stats.TotalViews += ad.Views
	}
	avg, err := Average(margins)
	if err != nil {
		return domain.AdStats{}, err
	}
	stats.AverageMargin = avg
	return stats, nil
}

// AdProfitLine turns a listing's sales into revenue, landed cost and the
// marketplace fee charged on that revenue.
func AdProfitLine(ad domain.Ad) (domain.ProfitLine, error) {
	if ad.Sales < 0 {
		return domain.ProfitLine{}, &ValidationError{Field: "sales", Value: ad.Sales, Reason: "cannot be negative"}
	}
	if err := requireNonNegative("price", ad.Price); err != nil {
		return domain.ProfitLine{}, err
	}
	if err := requireNonNegative("unit_cost", ad.UnitCost); err != nil {
		return domain.ProfitLine{}, err
	}
	units := float64(ad.Sales)
	revenue := ad.Price * units
	return domain.ProfitLine{
		Product: ad.Title,
		Channel: ad.Marketplace,
		Units:   ad.Sales,
		Revenue: revenue,
		Costs:   ad.UnitCost * units,
		Fees:    revenue * FeeRate(ad.Marketplace),
	}, nil
}

// AnalyzeProfit nets costs and fees out of each line, then rolls profit up
// per channel. AverageMargin is total profit over total revenue.
func AnalyzeProfit(lines []domain.ProfitLine) (domain.ProfitAnalysis, error) {
	analysis := domain.ProfitAnalysis{
		Products: make([]domain.ProductProfit, 0, len(lines)),
		Channels: []domain.ChannelProfit{},
	}
	byChannel := map[string]float64{}
	var order []string
	for i, line := range lines {
		if err := validateProfitLine(line); err != nil {
			return domain.ProfitAnalysis{}, fmt.Errorf("lines[%d]: %w", i, err)
		}

		profit := line.Revenue - line.Costs - line.Fees
		margin, err := PercentageOfTotal(profit, line.Revenue)
		if err != nil {
			return domain.ProfitAnalysis{}, fmt.Errorf("lines[%d]: %w", i, err)
		}
		analysis.Products = append(analysis.Products, domain.ProductProfit{ProfitLine: line, Profit: profit, Margin: margin})
		analysis.TotalRevenue += line.Revenue
		analysis.TotalProfit += profit
		analysis.UnitsSold += line.Units

		if _, seen := byChannel[line.Channel]; !seen {
			order = append(order, line.Channel)
		}
		byChannel[line.Channel] += profit
	}

	var err error
	if analysis.AverageMargin, err = PercentageOfTotal(analysis.TotalProfit, analysis.TotalRevenue); err != nil {
		return domain.ProfitAnalysis{}, err
	}
	for _, channel := range order {
		share, err := PercentageOfTotal(byChannel[channel], analysis.TotalProfit)
		if err != nil {
			return domain.ProfitAnalysis{}, err
		}
		analysis.Channels = append(analysis.Channels, domain.ChannelProfit{Channel: channel, Profit: byChannel[channel], Share: share})
	}
	sort.SliceStable(analysis.Channels, func(i, j int) bool {
		return analysis.Channels[i].Profit > analysis.Channels[j].Profit
	})
	return analysis, nil
}

func validateProfitLine(line domain.ProfitLine) error {
	if line.Units < 0 {
		return &ValidationError{Field: "units", Value: line.Units, Reason: "cannot be negative"}
	}
	if err := requireNonNegative("revenue", line.Revenue); err != nil {
		return err
	}
	if err := requireNonNegative("costs", line.Costs); err != nil {
		return err
	}
	return requireNonNegative("fees", line.Fees)
}
