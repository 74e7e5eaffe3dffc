package store

import (
	"fmt"
	"strings"

	"sellerflow/internal/domain"
	"sellerflow/internal/metrics"
)

type InventoryFilter struct {
	Search   string
	Location string
	Status   string
}

type InventoryInput struct {
	SKU      string `json:"sku" validate:"required"`
	Product  string `json:"product" validate:"required"`
	Stock    int    `json:"stock" validate:"gte=0"`
	Reserved int    `json:"reserved" validate:"gte=0"`
	MinStock int    `json:"min_stock" validate:"gte=0"`
	Location string `json:"location"`
}

type InventoryPatch struct {
	Product  *string `json:"product" validate:"omitempty,min=1"`
	Stock    *int    `json:"stock" validate:"omitempty,gte=0"`
	Reserved *int    `json:"reserved" validate:"omitempty,gte=0"`
	MinStock *int    `json:"min_stock" validate:"omitempty,gte=0"`
	Location *string `json:"location"`
}

// InventoryStore is keyed by SKU. Available units and status are derived on
// every write.
type InventoryStore struct {
	items *collection[domain.InventoryItem]
}

func NewInventoryStore() *InventoryStore {
	return &InventoryStore{items: newCollection[domain.InventoryItem]()}
}

func (s *InventoryStore) List(filter InventoryFilter) []domain.InventoryItem {
	return s.items.list(func(item domain.InventoryItem) bool {
		if filter.Search != "" && !containsFold(item.SKU, filter.Search) && !containsFold(item.Product, filter.Search) {
			return false
		}
		return matches(item.Location, filter.Location) && matches(item.Status, filter.Status)
	})
}

func (s *InventoryStore) Get(sku string) (domain.InventoryItem, error) {
	item, ok := s.items.get(sku)
	if !ok {
		return domain.InventoryItem{}, ErrNotFound
	}
	return item, nil
}

func (s *InventoryStore) Create(input InventoryInput) (domain.InventoryItem, error) {
	if err := validateInput("create inventory item", input); err != nil {
		return domain.InventoryItem{}, err
	}
	item := domain.InventoryItem{
		SKU:      strings.TrimSpace(input.SKU),
		Product:  strings.TrimSpace(input.Product),
		Stock:    input.Stock,
		Reserved: input.Reserved,
		MinStock: input.MinStock,
		Location: strings.TrimSpace(input.Location),
	}
	if err := derive(&item); err != nil {
		return domain.InventoryItem{}, fmt.Errorf("create inventory item: %w", err)
	}
	if err := s.items.insert(item.SKU, item); err != nil {
		return domain.InventoryItem{}, fmt.Errorf("create inventory item: %w", err)
	}
	return item, nil
}

func (s *InventoryStore) Update(sku string, patch InventoryPatch) (domain.InventoryItem, error) {
	if err := validateInput("update inventory item", patch); err != nil {
		return domain.InventoryItem{}, err
	}
	return s.items.update(sku, func(item *domain.InventoryItem) error {
		if patch.Product != nil {
			item.Product = strings.TrimSpace(*patch.Product)
		}
		if patch.Stock != nil {
			item.Stock = *patch.Stock
		}
		if patch.Reserved != nil {
			item.Reserved = *patch.Reserved
		}
		if patch.MinStock != nil {
			item.MinStock = *patch.MinStock
		}
		if patch.Location != nil {
			item.Location = strings.TrimSpace(*patch.Location)
		}
		return derive(item)
	})
}

func (s *InventoryStore) Delete(sku string) error {
	return s.items.remove(sku)
}

// Import upserts rows by SKU. Rows are validated up front so a bad row
// leaves the store untouched.
func (s *InventoryStore) Import(rows []domain.InventoryImportRow) (domain.ImportResult, error) {
	prepared := make([]domain.InventoryItem, 0, len(rows))
	for i, row := range rows {
		item := domain.InventoryItem{
			SKU:      strings.TrimSpace(row.SKU),
			Product:  strings.TrimSpace(row.Product),
			Stock:    row.Stock,
			Reserved: row.Reserved,
			MinStock: row.MinStock,
			Location: strings.TrimSpace(row.Location),
		}
		if item.SKU == "" {
			return domain.ImportResult{}, fmt.Errorf("row %d: %w", i+1, &metrics.ValidationError{Field: "sku", Value: row.SKU, Reason: "is required"})
		}
		if err := derive(&item); err != nil {
			return domain.ImportResult{}, fmt.Errorf("row %d (%s): %w", i+1, item.SKU, err)
		}
		prepared = append(prepared, item)
	}

	var result domain.ImportResult
	for _, item := range prepared {
		created, err := s.items.upsert(item.SKU,
			func() (domain.InventoryItem, error) { return item, nil },
			func(existing *domain.InventoryItem) error {
				if item.Product != "" {
					existing.Product = item.Product
				}
				if item.Location != "" {
					existing.Location = item.Location
				}
				existing.Stock = item.Stock
				existing.Reserved = item.Reserved
				existing.MinStock = item.MinStock
				return derive(existing)
			})
		if err != nil {
			return result, fmt.Errorf("import %s: %w", item.SKU, err)
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}
	return result, nil
}

func (s *InventoryStore) Load(items ...domain.InventoryItem) error {
	for _, item := range items {
		if err := derive(&item); err != nil {
			return fmt.Errorf("load inventory %s: %w", item.SKU, err)
		}
		if err := s.items.insert(item.SKU, item); err != nil {
			return fmt.Errorf("load inventory: %w", err)
		}
	}
	return nil
}

func derive(item *domain.InventoryItem) error {
	available, status, err := metrics.InventoryStatus(item.Stock, item.Reserved, item.MinStock)
	if err != nil {
		return err
	}
	item.Available = available
	item.Status = status
	return nil
}
