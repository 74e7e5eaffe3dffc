package store

import (
	"fmt"
	"strings"
	"time"

	"sellerflow/internal/clock"
	"sellerflow/internal/domain"
)

const (
	WindowAll        = "all"
	WindowLast7Days  = "last7Days"
	WindowLast30Days = "last30Days"
	WindowThisMonth  = "thisMonth"
)

var DateWindows = []string{WindowAll, WindowLast7Days, WindowLast30Days, WindowThisMonth}

type OrderFilter struct {
	Marketplace string
	Status      string
	DateWindow  string
	Search      string
}

type OrderInput struct {
	Date        *time.Time `json:"date"`
	Customer    string     `json:"customer" validate:"required"`
	Marketplace string     `json:"marketplace" validate:"required"`
	Items       int        `json:"items" validate:"gte=1"`
	Subtotal    float64    `json:"subtotal" validate:"gte=0"`
	Shipping    float64    `json:"shipping" validate:"gte=0"`
	Commission  float64    `json:"commission" validate:"gte=0"`
	Status      string     `json:"status" validate:"omitempty,oneof=pending processing shipped delivered"`
}

type OrderPatch struct {
	Date        *time.Time `json:"date"`
	Customer    *string    `json:"customer" validate:"omitempty,min=1"`
	Marketplace *string    `json:"marketplace" validate:"omitempty,min=1"`
	Items       *int       `json:"items" validate:"omitempty,gte=1"`
	Subtotal    *float64   `json:"subtotal" validate:"omitempty,gte=0"`
	Shipping    *float64   `json:"shipping" validate:"omitempty,gte=0"`
	Commission  *float64   `json:"commission" validate:"omitempty,gte=0"`
	Status      *string    `json:"status" validate:"omitempty,oneof=pending processing shipped delivered"`
}

type OrderStore struct {
	clock clock.Clock
	ids   clock.IDGenerator
	items *collection[domain.Order]
}

func NewOrderStore(clk clock.Clock, ids clock.IDGenerator) *OrderStore {
	return &OrderStore{clock: clk, ids: ids, items: newCollection[domain.Order]()}
}

// ValidDateWindow reports whether w is a known order date window.
func ValidDateWindow(w string) bool {
	if w == "" {
		return true
	}
	for _, known := range DateWindows {
		if w == known {
			return true
		}
	}
	return false
}

func (s *OrderStore) List(filter OrderFilter) []domain.Order {
	now := s.clock.Now()
	return s.items.list(func(o domain.Order) bool {
		if !matches(o.Marketplace, filter.Marketplace) || !matches(o.Status, filter.Status) {
			return false
		}
		if filter.Search != "" && !containsFold(o.ID, filter.Search) && !containsFold(o.Customer, filter.Search) {
			return false
		}
		return inWindow(o.Date, filter.DateWindow, now)
	})
}

func inWindow(date time.Time, window string, now time.Time) bool {
	switch window {
	case WindowLast7Days:
		return !date.Before(now.AddDate(0, 0, -7))
	case WindowLast30Days:
		return !date.Before(now.AddDate(0, 0, -30))
	case WindowThisMonth:
		return date.Year() == now.Year() && date.Month() == now.Month()
	default:
		return true
	}
}

func (s *OrderStore) Get(id string) (domain.Order, error) {
	order, ok := s.items.get(id)
	if !ok {
		return domain.Order{}, ErrNotFound
	}
	return order, nil
}

func (s *OrderStore) Create(input OrderInput) (domain.Order, error) {
	if err := validateInput("create order", input); err != nil {
		return domain.Order{}, err
	}
	order := domain.Order{
		ID:          "#" + s.ids.NewID(marketplacePrefix(input.Marketplace)),
		Date:        s.clock.Now(),
		Customer:    strings.TrimSpace(input.Customer),
		Marketplace: input.Marketplace,
		Items:       input.Items,
		Subtotal:    input.Subtotal,
		Shipping:    input.Shipping,
		Commission:  input.Commission,
		Status:      input.Status,
	}
	if input.Date != nil {
		order.Date = *input.Date
	}
	if order.Status == "" {
		order.Status = domain.OrderPending
	}
	if err := s.items.insert(order.ID, order); err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *OrderStore) Update(id string, patch OrderPatch) (domain.Order, error) {
	if err := validateInput("update order", patch); err != nil {
		return domain.Order{}, err
	}
	return s.items.update(id, func(o *domain.Order) error {
		if patch.Date != nil {
			o.Date = *patch.Date
		}
		if patch.Customer != nil {
			o.Customer = strings.TrimSpace(*patch.Customer)
		}
		if patch.Marketplace != nil {
			o.Marketplace = *patch.Marketplace
		}
		if patch.Items != nil {
			o.Items = *patch.Items
		}
		if patch.Subtotal != nil {
			o.Subtotal = *patch.Subtotal
		}
		if patch.Shipping != nil {
			o.Shipping = *patch.Shipping
		}
		if patch.Commission != nil {
			o.Commission = *patch.Commission
		}
		if patch.Status != nil {
			o.Status = *patch.Status
		}
		return nil
	})
}

func (s *OrderStore) Delete(id string) error {
	return s.items.remove(id)
}

// Load inserts orders that already carry ids, e.g. seed data.
func (s *OrderStore) Load(orders ...domain.Order) error {
	for _, o := range orders {
		if err := s.items.insert(o.ID, o); err != nil {
			return fmt.Errorf("load order: %w", err)
		}
	}
	return nil
}

func (s *OrderStore) Count() int {
	return s.items.count()
}

// marketplacePrefix turns "Mercado Livre" into "ML", "Amazon" into "AM".
func marketplacePrefix(marketplace string) string {
	words := strings.Fields(strings.ToUpper(marketplace))
	switch len(words) {
	case 0:
		return "ORD"
	case 1:
		r := []rune(words[0])
		if len(r) < 2 {
			return string(r)
		}
		return string(r[:2])
	default:
		return string([]rune(words[0])[:1]) + string([]rune(words[1])[:1])
	}
}
