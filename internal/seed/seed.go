// Package seed fills the in-memory stores with the demo dataset the
// dashboard starts with.
package seed

import (
	"fmt"

	"sellerflow/internal/clock"
	"sellerflow/internal/store"

	"go.uber.org/fx"
)

type Stores struct {
	fx.In

	Orders       *store.OrderStore
	Invoices     *store.InvoiceStore
	Inventory    *store.InventoryStore
	Products     *store.ProductStore
	Accounts     *store.AccountStore
	Integrations *store.IntegrationStore
	Rules        *store.RuleStore
	Ads          *store.AdStore
	Customers    *store.CustomerStore
	Suppliers    *store.SupplierStore
	Vendors      *store.VendorStore
}

// Load inserts the demo data. Dates are relative to the clock so the date
// window filters have something to show.
func Load(s Stores, clk clock.Clock) error {
	now := clk.Now()
	steps := []struct {
		name string
		load func() error
	}{
		{"orders", func() error { return s.Orders.Load(orders(now)...) }},
		{"invoices", func() error { return s.Invoices.Load(invoices(now)...) }},
		{"inventory", func() error { return s.Inventory.Load(inventory()...) }},
		{"products", func() error { return s.Products.Load(products()...) }},
		{"accounts", func() error { return s.Accounts.Load(accounts(now)...) }},
		{"integrations", func() error { return s.Integrations.Load(integrations(now)...) }},
		{"rules", func() error { return s.Rules.Load(rules()...) }},
		{"ads", func() error { return s.Ads.Load(ads()...) }},
		{"customers", func() error { return s.Customers.Load(customers()...) }},
		{"suppliers", func() error { return s.Suppliers.Load(suppliers()...) }},
		{"vendors", func() error { return s.Vendors.Load(vendors()...) }},
	}
	for _, step := range steps {
		if err := step.load(); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}
	return nil
}
