package store

import (
	"fmt"
	"strings"

	"sellerflow/internal/clock"
	"sellerflow/internal/domain"
)

// RegistrationFilter searches registrations by name or contact details.
type RegistrationFilter struct {
	Search string
}

type CustomerInput struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required"`
	Orders int    `json:"orders" validate:"gte=0"`
}

type CustomerPatch struct {
	Name   *string `json:"name" validate:"omitempty,min=1"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Phone  *string `json:"phone" validate:"omitempty,min=1"`
	Orders *int    `json:"orders" validate:"omitempty,gte=0"`
}

type SupplierInput struct {
	Name     string `json:"name" validate:"required"`
	CNPJ     string `json:"cnpj" validate:"required"`
	Contact  string `json:"contact" validate:"required"`
	Products int    `json:"products" validate:"gte=0"`
}

type SupplierPatch struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	CNPJ     *string `json:"cnpj" validate:"omitempty,min=1"`
	Contact  *string `json:"contact" validate:"omitempty,min=1"`
	Products *int    `json:"products" validate:"omitempty,gte=0"`
}

type VendorInput struct {
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          string  `json:"phone" validate:"required"`
	CommissionRate float64 `json:"commission_rate" validate:"gte=0,lte=100"`
}

type VendorPatch struct {
	Name           *string  `json:"name" validate:"omitempty,min=1"`
	Email          *string  `json:"email" validate:"omitempty,email"`
	Phone          *string  `json:"phone" validate:"omitempty,min=1"`
	CommissionRate *float64 `json:"commission_rate" validate:"omitempty,gte=0,lte=100"`
}

func setTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

type CustomerStore struct {
	ids   clock.IDGenerator
	items *collection[domain.Customer]
}

func NewCustomerStore(ids clock.IDGenerator) *CustomerStore {
	return &CustomerStore{ids: ids, items: newCollection[domain.Customer]()}
}

func (s *CustomerStore) List(filter RegistrationFilter) []domain.Customer {
	return s.items.list(func(c domain.Customer) bool {
		return filter.Search == "" || containsFold(c.Name, filter.Search) || containsFold(c.Email, filter.Search)
	})
}

func (s *CustomerStore) Get(id string) (domain.Customer, error) {
	c, ok := s.items.get(id)
	if !ok {
		return domain.Customer{}, ErrNotFound
	}
	return c, nil
}

func (s *CustomerStore) Create(input CustomerInput) (domain.Customer, error) {
	if err := validateInput("create customer", input); err != nil {
		return domain.Customer{}, err
	}
	c := domain.Customer{
		ID:     s.ids.NewID("CUS"),
		Name:   strings.TrimSpace(input.Name),
		Email:  strings.TrimSpace(input.Email),
		Phone:  strings.TrimSpace(input.Phone),
		Orders: input.Orders,
	}
	if err := s.items.insert(c.ID, c); err != nil {
		return domain.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

func (s *CustomerStore) Update(id string, patch CustomerPatch) (domain.Customer, error) {
	if err := validateInput("update customer", patch); err != nil {
		return domain.Customer{}, err
	}
	return s.items.update(id, func(c *domain.Customer) error {
		setTrimmed(&c.Name, patch.Name)
		setTrimmed(&c.Email, patch.Email)
		setTrimmed(&c.Phone, patch.Phone)
		if patch.Orders != nil {
			c.Orders = *patch.Orders
		}
		return nil
	})
}

func (s *CustomerStore) Delete(id string) error {
	return s.items.remove(id)
}

func (s *CustomerStore) Load(customers ...domain.Customer) error {
	for _, c := range customers {
		if err := s.items.insert(c.ID, c); err != nil {
			return fmt.Errorf("load customer: %w", err)
		}
	}
	return nil
}

type SupplierStore struct {
	ids   clock.IDGenerator
	items *collection[domain.Supplier]
}

func NewSupplierStore(ids clock.IDGenerator) *SupplierStore {
	return &SupplierStore{ids: ids, items: newCollection[domain.Supplier]()}
}

func (s *SupplierStore) List(filter RegistrationFilter) []domain.Supplier {
	return s.items.list(func(sup domain.Supplier) bool {
		return filter.Search == "" || containsFold(sup.Name, filter.Search) || containsFold(sup.CNPJ, filter.Search)
	})
}

func (s *SupplierStore) Get(id string) (domain.Supplier, error) {
	sup, ok := s.items.get(id)
	if !ok {
		return domain.Supplier{}, ErrNotFound
	}
	return sup, nil
}

func (s *SupplierStore) Create(input SupplierInput) (domain.Supplier, error) {
	if err := validateInput("create supplier", input); err != nil {
		return domain.Supplier{}, err
	}
	sup := domain.Supplier{
		ID:       s.ids.NewID("SUP"),
		Name:     strings.TrimSpace(input.Name),
		CNPJ:     strings.TrimSpace(input.CNPJ),
		Contact:  strings.TrimSpace(input.Contact),
		Products: input.Products,
	}
	if err := s.items.insert(sup.ID, sup); err != nil {
		return domain.Supplier{}, fmt.Errorf("create supplier: %w", err)
	}
	return sup, nil
}

func (s *SupplierStore) Update(id string, patch SupplierPatch) (domain.Supplier, error) {
	if err := validateInput("update supplier", patch); err != nil {
		return domain.Supplier{}, err
	}
	return s.items.update(id, func(sup *domain.Supplier) error {
		setTrimmed(&sup.Name, patch.Name)
		setTrimmed(&sup.CNPJ, patch.CNPJ)
		setTrimmed(&sup.Contact, patch.Contact)
		if patch.Products != nil {
			sup.Products = *patch.Products
		}
		return nil
	})
}

func (s *SupplierStore) Delete(id string) error {
	return s.items.remove(id)
}

func (s *SupplierStore) Load(suppliers ...domain.Supplier) error {
	for _, sup := range suppliers {
		if err := s.items.insert(sup.ID, sup); err != nil {
			return fmt.Errorf("load supplier: %w", err)
		}
	}
	return nil
}

type VendorStore struct {
	ids   clock.IDGenerator
	items *collection[domain.Vendor]
}

func NewVendorStore(ids clock.IDGenerator) *VendorStore {
	return &VendorStore{ids: ids, items: newCollection[domain.Vendor]()}
}

func (s *VendorStore) List(filter RegistrationFilter) []domain.Vendor {
	return s.items.list(func(v domain.Vendor) bool {
		return filter.Search == "" || containsFold(v.Name, filter.Search) || containsFold(v.Email, filter.Search)
	})
}

func (s *VendorStore) Get(id string) (domain.Vendor, error) {
	v, ok := s.items.get(id)
	if !ok {
		return domain.Vendor{}, ErrNotFound
	}
	return v, nil
}

func (s *VendorStore) Create(input VendorInput) (domain.Vendor, error) {
	if err := validateInput("create vendor", input); err != nil {
		return domain.Vendor{}, err
	}
	v := domain.Vendor{
		ID:             s.ids.NewID("VEN"),
		Name:           strings.TrimSpace(input.Name),
		Email:          strings.TrimSpace(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		CommissionRate: input.CommissionRate,
	}
	if err := s.items.insert(v.ID, v); err != nil {
		return domain.Vendor{}, fmt.Errorf("create vendor: %w", err)
	}
	return v, nil
}

func (s *VendorStore) Update(id string, patch VendorPatch) (domain.Vendor, error) {
	if err := validateInput("update vendor", patch); err != nil {
		return domain.Vendor{}, err
	}
	return s.items.update(id, func(v *domain.Vendor) error {
		setTrimmed(&v.Name, patch.Name)
		setTrimmed(&v.Email, patch.Email)
		setTrimmed(&v.Phone, patch.Phone)
		if patch.CommissionRate != nil {
			v.CommissionRate = *patch.CommissionRate
		}
		return nil
	})
}

func (s *VendorStore) Delete(id string) error {
	return s.items.remove(id)
}

func (s *VendorStore) Load(vendors ...domain.Vendor) error {
	for _, v := range vendors {
		if err := s.items.insert(v.ID, v); err != nil {
			return fmt.Errorf("load vendor: %w", err)
		}
	}
	return nil
}
