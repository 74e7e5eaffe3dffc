package http

import (
	"net/http"

	"sellerflow/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(handler *Handler, cfg config.Config, logger *zap.Logger) http.Handler {
	logger = logger.Named("http")

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(Logger(logger))
	r.Use(Recoverer(logger))
	r.Use(Timeout(cfg.RequestTimeout))
	r.Use(CORS(cfg.AllowedOrigin))

	r.Get("/healthz", handler.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", handler.Dashboard)
		r.Post("/metrics/tax", handler.Tax)
		r.Get("/metrics/margin", handler.Margin)

		r.Get("/orders", handler.ListOrders)
		r.Get("/orders/summary", handler.OrderSummary)
		r.Get("/orders/{id}", handler.GetOrder)
		r.Post("/orders", handler.CreateOrder)
		r.Patch("/orders/{id}", handler.PatchOrder)
		r.Delete("/orders/{id}", handler.DeleteOrder)

		r.Get("/invoices", handler.ListInvoices)
		r.Get("/invoices/{id}", handler.GetInvoice)
		r.Get("/invoices/{id}/document", handler.InvoiceDocument)
		r.Post("/invoices", handler.CreateInvoice)
		r.Post("/invoices/bulk", handler.BulkIssueInvoices)
		r.Patch("/invoices/{id}", handler.PatchInvoice)
		r.Delete("/invoices/{id}", handler.DeleteInvoice)

		r.Get("/inventory", handler.ListInventory)
		r.Get("/inventory/{sku}", handler.GetInventoryItem)
		r.Post("/inventory", handler.CreateInventoryItem)
		r.Post("/inventory/import", handler.ImportInventory)
		r.Patch("/inventory/{sku}", handler.PatchInventoryItem)
		r.Delete("/inventory/{sku}", handler.DeleteInventoryItem)

		r.Get("/products", handler.ListProducts)
		r.Get("/products/{id}", handler.GetProduct)
		r.Post("/products", handler.CreateProduct)
		r.Post("/products/import", handler.ImportProducts)
		r.Patch("/products/{id}", handler.PatchProduct)
		r.Delete("/products/{id}", handler.DeleteProduct)

		r.Get("/accounts", handler.ListAccounts)
		r.Get("/accounts/{id}", handler.GetAccount)
		r.Post("/accounts", handler.CreateAccount)
		r.Post("/accounts/sync", handler.SyncAllAccounts)
		r.Post("/accounts/{id}/sync", handler.SyncAccount)
		r.Patch("/accounts/{id}", handler.PatchAccount)
		r.Delete("/accounts/{id}", handler.DeleteAccount)

		r.Get("/integrations", handler.ListIntegrations)
		r.Get("/integrations/{id}", handler.GetIntegration)
		r.Post("/integrations", handler.CreateIntegration)
		r.Post("/integrations/{id}/connect", handler.ConnectIntegration)
		r.Post("/integrations/{id}/disconnect", handler.DisconnectIntegration)
		r.Patch("/integrations/{id}", handler.PatchIntegration)
		r.Delete("/integrations/{id}", handler.DeleteIntegration)

		r.Get("/rules", handler.ListRules)
		r.Get("/rules/{id}", handler.GetRule)
		r.Post("/rules", handler.CreateRule)
		r.Post("/rules/{id}/toggle", handler.ToggleRule)
		r.Patch("/rules/{id}", handler.PatchRule)
		r.Delete("/rules/{id}", handler.DeleteRule)

		r.Get("/ads", handler.ListAds)
		r.Get("/ads/stats", handler.AdStats)
		r.Get("/ads/{id}", handler.GetAd)
		r.Post("/ads", handler.CreateAd)
		r.Post("/ads/{id}/copy", handler.CopyAd)
		r.Patch("/ads/{id}", handler.PatchAd)
		r.Delete("/ads/{id}", handler.DeleteAd)
		r.Get("/metrics/profit", handler.ProfitAnalysis)

		r.Route("/registrations", func(r chi.Router) {
			r.Get("/customers", handler.ListCustomers)
			r.Get("/customers/{id}", handler.GetCustomer)
			r.Post("/customers", handler.CreateCustomer)
			r.Patch("/customers/{id}", handler.PatchCustomer)
			r.Delete("/customers/{id}", handler.DeleteCustomer)

			r.Get("/suppliers", handler.ListSuppliers)
			r.Get("/suppliers/{id}", handler.GetSupplier)
			r.Post("/suppliers", handler.CreateSupplier)
			r.Patch("/suppliers/{id}", handler.PatchSupplier)
			r.Delete("/suppliers/{id}", handler.DeleteSupplier)

			r.Get("/vendors", handler.ListVendors)
			r.Get("/vendors/{id}", handler.GetVendor)
			r.Post("/vendors", handler.CreateVendor)
			r.Patch("/vendors/{id}", handler.PatchVendor)
			r.Delete("/vendors/{id}", handler.DeleteVendor)
		})

		r.Get("/reports/sales", handler.SalesReport)
		r.Get("/reports/performance", handler.PerformanceReport)
	})

	return r
}
