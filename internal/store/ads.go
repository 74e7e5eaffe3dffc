package store

import (
	"fmt"
	"strings"

	"sellerflow/internal/clock"
	"sellerflow/internal/domain"
	"sellerflow/internal/metrics"
)

type AdFilter struct {
	Marketplace string
	Status      string
	Search      string
}

type AdInput struct {
	Title       string  `json:"title" validate:"required"`
	SKU         string  `json:"sku" validate:"required"`
	Marketplace string  `json:"marketplace" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
	UnitCost    float64 `json:"unit_cost" validate:"gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

type AdPatch struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	SKU         *string  `json:"sku" validate:"omitempty,min=1"`
	Marketplace *string  `json:"marketplace" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	UnitCost    *float64 `json:"unit_cost" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}

type AdStore struct {
	ids   clock.IDGenerator
	items *collection[domain.Ad]
}

func NewAdStore(ids clock.IDGenerator) *AdStore {
	return &AdStore{ids: ids, items: newCollection[domain.Ad]()}
}

// deriveAd recomputes margin and status from price, cost and stock.
func deriveAd(ad *domain.Ad) error {
	margin, err := metrics.Margin(ad.Price, ad.UnitCost)
	if err != nil {
		return err
	}
	status, err := metrics.AdStatus(ad.Stock)
	if err != nil {
		return err
	}
	ad.Margin = margin
	ad.Status = status
	return nil
}

func (s *AdStore) List(filter AdFilter) []domain.Ad {
	return s.items.list(func(a domain.Ad) bool {
		if !matches(a.Marketplace, filter.Marketplace) || !matches(a.Status, filter.Status) {
			return false
		}
		return filter.Search == "" || containsFold(a.Title, filter.Search) || containsFold(a.SKU, filter.Search)
	})
}

func (s *AdStore) Get(id string) (domain.Ad, error) {
	a, ok := s.items.get(id)
	if !ok {
		return domain.Ad{}, ErrNotFound
	}
	return a, nil
}

func (s *AdStore) Create(input AdInput) (domain.Ad, error) {
	if err := validateInput("create ad", input); err != nil {
		return domain.Ad{}, err
	}
	ad := domain.Ad{
		ID:          s.ids.NewID("AD"),
		Title:       strings.TrimSpace(input.Title),
		SKU:         strings.TrimSpace(input.SKU),
		Marketplace: strings.TrimSpace(input.Marketplace),
		Price:       input.Price,
		UnitCost:    input.UnitCost,
		Stock:       input.Stock,
	}
	if err := deriveAd(&ad); err != nil {
		return domain.Ad{}, fmt.Errorf("create ad: %w", err)
	}
	if err := s.items.insert(ad.ID, ad); err != nil {
		return domain.Ad{}, fmt.Errorf("create ad: %w", err)
	}
	return ad, nil
}

func (s *AdStore) Update(id string, patch AdPatch) (domain.Ad, error) {
	if err := validateInput("update ad", patch); err != nil {
		return domain.Ad{}, err
	}
	return s.items.update(id, func(a *domain.Ad) error {
		if patch.Title != nil {
			a.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.SKU != nil {
			a.SKU = strings.TrimSpace(*patch.SKU)
		}
		if patch.Marketplace != nil {
			a.Marketplace = strings.TrimSpace(*patch.Marketplace)
		}
		if patch.Price != nil {
			a.Price = *patch.Price
		}
		if patch.UnitCost != nil {
			a.UnitCost = *patch.UnitCost
		}
		if patch.Stock != nil {
			a.Stock = *patch.Stock
		}
		return deriveAd(a)
	})
}

// Copy duplicates a listing under a new id. The copy starts with no views
// or sales.
func (s *AdStore) Copy(id, suffix string) (domain.Ad, error) {
	src, err := s.Get(id)
	if err != nil {
		return domain.Ad{}, err
	}
	ad := src
	ad.ID = s.ids.NewID("AD")
	ad.Title = fmt.Sprintf("%s (%s)", src.Title, suffix)
	ad.SKU = src.SKU + "-COPY"
	ad.Views = 0
	ad.Sales = 0
	if err := s.items.insert(ad.ID, ad); err != nil {
		return domain.Ad{}, fmt.Errorf("copy ad: %w", err)
	}
	return ad, nil
}

func (s *AdStore) Delete(id string) error {
	return s.items.remove(id)
}

func (s *AdStore) Load(ads ...domain.Ad) error {
	for _, a := range ads {
		if err := deriveAd(&a); err != nil {
			return fmt.Errorf("load ad %s: %w", a.ID, err)
		}
		if err := s.items.insert(a.ID, a); err != nil {
			return fmt.Errorf("load ad: %w", err)
		}
	}
	return nil
}
