package service

import (
	"context"

	"sellerflow/internal/domain"
	"sellerflow/internal/store"
)

func (s *Service) ListCustomers(_ context.Context, filter store.RegistrationFilter) []domain.Customer {
	return s.customers.List(filter)
}

func (s *Service) GetCustomer(_ context.Context, id string) (domain.Customer, error) {
	return s.customers.Get(id)
}

func (s *Service) CreateCustomer(_ context.Context, input store.CustomerInput) (domain.Customer, error) {
	return s.customers.Create(input)
}

func (s *Service) PatchCustomer(_ context.Context, id string, patch store.CustomerPatch) (domain.Customer, error) {
	return s.customers.Update(id, patch)
}

func (s *Service) DeleteCustomer(_ context.Context, id string) error {
	return s.customers.Delete(id)
}

func (s *Service) ListSuppliers(_ context.Context, filter store.RegistrationFilter) []domain.Supplier {
	return s.suppliers.List(filter)
}

func (s *Service) GetSupplier(_ context.Context, id string) (domain.Supplier, error) {
	return s.suppliers.Get(id)
}

func (s *Service) CreateSupplier(_ context.Context, input store.SupplierInput) (domain.Supplier, error) {
	return s.suppliers.Create(input)
}

func (s *Service) PatchSupplier(_ context.Context, id string, patch store.SupplierPatch) (domain.Supplier, error) {
	return s.suppliers.Update(id, patch)
}

func (s *Service) DeleteSupplier(_ context.Context, id string) error {
	return s.suppliers.Delete(id)
}

func (s *Service) ListVendors(_ context.Context, filter store.RegistrationFilter) []domain.Vendor {
	return s.vendors.List(filter)
}

func (s *Service) GetVendor(_ context.Context, id string) (domain.Vendor, error) {
	return s.vendors.Get(id)
}

func (s *Service) CreateVendor(_ context.Context, input store.VendorInput) (domain.Vendor, error) {
	return s.vendors.Create(input)
}

func (s *Service) PatchVendor(_ context.Context, id string, patch store.VendorPatch) (domain.Vendor, error) {
	return s.vendors.Update(id, patch)
}

func (s *Service) DeleteVendor(_ context.Context, id string) error {
	return s.vendors.Delete(id)
}
