package store

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"store",
		fx.Provide(
			NewOrderStore,
			NewInvoiceStore,
			NewInventoryStore,
			NewProductStore,
			NewAccountStore,
			NewIntegrationStore,
			NewRuleStore,
			NewAdStore,
			NewCustomerStore,
			NewSupplierStore,
			NewVendorStore,
		),
	)
}
