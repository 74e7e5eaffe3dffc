package store

import (
	"fmt"
	"strings"

	"sellerflow/internal/clock"
	"sellerflow/internal/domain"
	"sellerflow/internal/metrics"
)

type ProductFilter struct {
	Search string
}

type ProductInput struct {
	SKU   string  `json:"sku" validate:"required"`
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gt=0"`
	Cost  float64 `json:"cost" validate:"gte=0"`
	Stock int     `json:"stock" validate:"gte=0"`
	Sales int     `json:"sales" validate:"gte=0"`
}

type ProductPatch struct {
	SKU   *string  `json:"sku" validate:"omitempty,min=1"`
	Name  *string  `json:"name" validate:"omitempty,min=1"`
	Price *float64 `json:"price" validate:"omitempty,gt=0"`
	Cost  *float64 `json:"cost" validate:"omitempty,gte=0"`
	Stock *int     `json:"stock" validate:"omitempty,gte=0"`
	Sales *int     `json:"sales" validate:"omitempty,gte=0"`
}

type ProductStore struct {
	ids   clock.IDGenerator
	items *collection[domain.Product]
}

func NewProductStore(ids clock.IDGenerator) *ProductStore {
	return &ProductStore{ids: ids, items: newCollection[domain.Product]()}
}

func (s *ProductStore) List(filter ProductFilter) []domain.Product {
	return s.items.list(func(p domain.Product) bool {
		return filter.Search == "" || containsFold(p.Name, filter.Search) || containsFold(p.SKU, filter.Search)
	})
}

func (s *ProductStore) Get(id string) (domain.Product, error) {
	p, ok := s.items.get(id)
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *ProductStore) Create(input ProductInput) (domain.Product, error) {
	if err := validateInput("create product", input); err != nil {
		return domain.Product{}, err
	}
	p := domain.Product{
		ID:    s.ids.NewID("PRD"),
		SKU:   strings.TrimSpace(input.SKU),
		Name:  strings.TrimSpace(input.Name),
		Price: input.Price,
		Cost:  input.Cost,
		Stock: input.Stock,
		Sales: input.Sales,
	}
	if err := s.items.insert(p.ID, p); err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (s *ProductStore) Update(id string, patch ProductPatch) (domain.Product, error) {
	if err := validateInput("update product", patch); err != nil {
		return domain.Product{}, err
	}
	return s.items.update(id, func(p *domain.Product) error {
		if patch.SKU != nil {
			p.SKU = strings.TrimSpace(*patch.SKU)
		}
		if patch.Name != nil {
			p.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Cost != nil {
			p.Cost = *patch.Cost
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.Sales != nil {
			p.Sales = *patch.Sales
		}
		return nil
	})
}

func (s *ProductStore) Delete(id string) error {
	return s.items.remove(id)
}

// Import matches rows to products by SKU: known SKUs get new price, cost and
// stock, unknown SKUs become new products.
func (s *ProductStore) Import(rows []domain.ProductImportRow) (domain.ImportResult, error) {
	for i, row := range rows {
		if strings.TrimSpace(row.SKU) == "" {
			return domain.ImportResult{}, fmt.Errorf("row %d: %w", i+1, &metrics.ValidationError{Field: "sku", Value: row.SKU, Reason: "is required"})
		}
		if _, err := metrics.Margin(row.Price, row.Cost); err != nil {
			return domain.ImportResult{}, fmt.Errorf("row %d (%s): %w", i+1, row.SKU, err)
		}
		if row.Stock < 0 {
			return domain.ImportResult{}, fmt.Errorf("row %d (%s): %w", i+1, row.SKU, &metrics.ValidationError{Field: "stock", Value: row.Stock, Reason: "cannot be negative"})
		}
	}

	bySKU := map[string]string{}
	for _, p := range s.items.list(nil) {
		bySKU[p.SKU] = p.ID
	}

	var result domain.ImportResult
	for _, row := range rows {
		sku := strings.TrimSpace(row.SKU)
		if id, ok := bySKU[sku]; ok {
			_, err := s.items.update(id, func(p *domain.Product) error {
				if row.Name != "" {
					p.Name = strings.TrimSpace(row.Name)
				}
				p.Price = row.Price
				p.Cost = row.Cost
				p.Stock = row.Stock
				return nil
			})
			if err == nil {
				result.Updated++
				continue
			}
		}
		name := strings.TrimSpace(row.Name)
		if name == "" {
			name = sku
		}
		p := domain.Product{ID: s.ids.NewID("PRD"), SKU: sku, Name: name, Price: row.Price, Cost: row.Cost, Stock: row.Stock}
		if err := s.items.insert(p.ID, p); err != nil {
			return result, fmt.Errorf("import %s: %w", sku, err)
		}
		bySKU[sku] = p.ID
		result.Created++
	}
	return result, nil
}

func (s *ProductStore) Load(products ...domain.Product) error {
	for _, p := range products {
		if err := s.items.insert(p.ID, p); err != nil {
			return fmt.Errorf("load product: %w", err)
		}
	}
	return nil
}
