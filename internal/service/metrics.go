package service

import (
	"context"
	"fmt"

	"sellerflow/internal/domain"
	"sellerflow/internal/metrics"
	"sellerflow/internal/store"
)

const dashboardTopProducts = 5

type Dashboard struct {
	Summary      domain.ReportSummary            `json:"summary"`
	Inventory    domain.InventoryStats           `json:"inventory"`
	BestSellers  []domain.BestSeller             `json:"best_sellers"`
	Marketplaces []domain.MarketplacePerformance `json:"marketplaces"`
	Accounts     int                             `json:"accounts"`
	Integrations int                             `json:"integrations"`
}

// TaxRequest carries either a numeric value or a formatted one such as
// "R$ 1.234,56". The text form wins when both are set.
type TaxRequest struct {
	Value     float64 `json:"value"`
	ValueText string  `json:"value_text"`
	Type      string  `json:"type"`
}

type MarginResult struct {
	Price  float64 `json:"price"`
	Cost   float64 `json:"cost"`
	Profit float64 `json:"profit"`
	Margin float64 `json:"margin"`
}

func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	orders := s.orders.List(store.OrderFilter{})
	summary, err := metrics.Summarize(orders)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}
	sellers, err := metrics.BestSellers(s.products.List(store.ProductFilter{}), dashboardTopProducts)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}
	performance, err := metrics.MarketplacePerformance(orders)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}
	return Dashboard{
		Summary:      summary,
		Inventory:    metrics.SummarizeInventory(s.inventory.List(store.InventoryFilter{})),
		BestSellers:  sellers,
		Marketplaces: performance,
		Accounts:     len(s.accounts.List(store.AccountFilter{})),
		Integrations: len(s.integrations.List(store.IntegrationFilter{})),
	}, nil
}

func (s *Service) OrderSummary(_ context.Context, filter store.OrderFilter) (domain.ReportSummary, error) {
	return metrics.Summarize(s.orders.List(filter))
}

func (s *Service) Tax(_ context.Context, req TaxRequest) (domain.TaxBreakdown, error) {
	value := req.Value
	if req.ValueText != "" {
		parsed, err := metrics.ParseMoney(req.ValueText)
		if err != nil {
			return domain.TaxBreakdown{}, err
		}
		value = parsed
	}
	switch req.Type {
	case "", domain.InvoiceTypeNFe, domain.InvoiceTypeNFCe, domain.InvoiceTypeNFSe:
	default:
		return domain.TaxBreakdown{}, &metrics.ValidationError{Field: "type", Value: req.Type, Reason: "must be NF-e, NFC-e or NFS-e"}
	}
	return metrics.Tax(value, req.Type == domain.InvoiceTypeNFSe)
}

func (s *Service) Margin(_ context.Context, price, cost float64) (MarginResult, error) {
	margin, err := metrics.Margin(price, cost)
	if err != nil {
		return MarginResult{}, err
	}
	profit, err := metrics.Profit(price, cost)
	if err != nil {
		return MarginResult{}, err
	}
	return MarginResult{Price: price, Cost: cost, Profit: metrics.Round2(profit), Margin: metrics.Round2(margin)}, nil
}
