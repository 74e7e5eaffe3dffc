package service

import (
	"context"
	"time"

	"sellerflow/internal/clock"
	"sellerflow/internal/config"
	"sellerflow/internal/domain"
	"sellerflow/internal/metrics"
	"sellerflow/internal/store"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var errNoRows = &metrics.ValidationError{Field: "rows", Value: 0, Reason: "import file has no data rows"}

type Params struct {
	fx.In

	Config       config.Config
	Clock        clock.Clock
	IDs          clock.IDGenerator
	Logger       *zap.Logger
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

type Service struct {
	cfg          config.Config
	clock        clock.Clock
	ids          clock.IDGenerator
	logger       *zap.Logger
	orders       *store.OrderStore
	invoices     *store.InvoiceStore
	inventory    *store.InventoryStore
	products     *store.ProductStore
	accounts     *store.AccountStore
	integrations *store.IntegrationStore
	rules        *store.RuleStore
	ads          *store.AdStore
	customers    *store.CustomerStore
	suppliers    *store.SupplierStore
	vendors      *store.VendorStore
}

func New(p Params) *Service {
	return &Service{
		cfg:          p.Config,
		clock:        p.Clock,
		ids:          p.IDs,
		logger:       p.Logger.Named("service"),
		orders:       p.Orders,
		invoices:     p.Invoices,
		inventory:    p.Inventory,
		products:     p.Products,
		accounts:     p.Accounts,
		integrations: p.Integrations,
		rules:        p.Rules,
		ads:          p.Ads,
		customers:    p.Customers,
		suppliers:    p.Suppliers,
		vendors:      p.Vendors,
	}
}

func (s *Service) DefaultLocale() string {
	return s.cfg.DefaultLocale
}

func (s *Service) ListOrders(_ context.Context, filter store.OrderFilter) []domain.Order {
	return s.orders.List(filter)
}

func (s *Service) GetOrder(_ context.Context, id string) (domain.Order, error) {
	return s.orders.Get(id)
}

func (s *Service) CreateOrder(_ context.Context, input store.OrderInput) (domain.Order, error) {
	return s.orders.Create(input)
}

func (s *Service) PatchOrder(_ context.Context, id string, patch store.OrderPatch) (domain.Order, error) {
	return s.orders.Update(id, patch)
}

func (s *Service) DeleteOrder(_ context.Context, id string) error {
	return s.orders.Delete(id)
}

func (s *Service) ListInvoices(_ context.Context, filter store.InvoiceFilter) []domain.Invoice {
	return s.invoices.List(filter)
}

func (s *Service) GetInvoice(_ context.Context, id string) (domain.Invoice, error) {
	return s.invoices.Get(id)
}

func (s *Service) CreateInvoice(_ context.Context, input store.InvoiceInput) (domain.Invoice, error) {
	return s.invoices.Create(input)
}

func (s *Service) PatchInvoice(_ context.Context, id string, patch store.InvoicePatch) (domain.Invoice, error) {
	return s.invoices.Update(id, patch)
}

func (s *Service) DeleteInvoice(_ context.Context, id string) error {
	return s.invoices.Delete(id)
}

func (s *Service) ListInventory(_ context.Context, filter store.InventoryFilter) []domain.InventoryItem {
	return s.inventory.List(filter)
}

func (s *Service) GetInventoryItem(_ context.Context, sku string) (domain.InventoryItem, error) {
	return s.inventory.Get(sku)
}

func (s *Service) CreateInventoryItem(_ context.Context, input store.InventoryInput) (domain.InventoryItem, error) {
	return s.inventory.Create(input)
}

func (s *Service) PatchInventoryItem(_ context.Context, sku string, patch store.InventoryPatch) (domain.InventoryItem, error) {
	return s.inventory.Update(sku, patch)
}

func (s *Service) DeleteInventoryItem(_ context.Context, sku string) error {
	return s.inventory.Delete(sku)
}

func (s *Service) ImportInventory(_ context.Context, rows []domain.InventoryImportRow) (domain.ImportResult, error) {
	if len(rows) == 0 {
		return domain.ImportResult{}, errNoRows
	}
	result, err := s.inventory.Import(rows)
	if err != nil {
		return result, err
	}
	s.logger.Info("inventory imported", zap.Int("created", result.Created), zap.Int("updated", result.Updated))
	return result, nil
}

func (s *Service) ListProducts(_ context.Context, filter store.ProductFilter) []domain.Product {
	return s.products.List(filter)
}

func (s *Service) GetProduct(_ context.Context, id string) (domain.Product, error) {
	return s.products.Get(id)
}

func (s *Service) CreateProduct(_ context.Context, input store.ProductInput) (domain.Product, error) {
	return s.products.Create(input)
}

func (s *Service) PatchProduct(_ context.Context, id string, patch store.ProductPatch) (domain.Product, error) {
	return s.products.Update(id, patch)
}

func (s *Service) DeleteProduct(_ context.Context, id string) error {
	return s.products.Delete(id)
}

func (s *Service) ImportProducts(_ context.Context, rows []domain.ProductImportRow) (domain.ImportResult, error) {
	if len(rows) == 0 {
		return domain.ImportResult{}, errNoRows
	}
	result, err := s.products.Import(rows)
	if err != nil {
		return result, err
	}
	s.logger.Info("products imported", zap.Int("created", result.Created), zap.Int("updated", result.Updated))
	return result, nil
}

func (s *Service) ListAccounts(_ context.Context, filter store.AccountFilter) []domain.Account {
	return s.accounts.List(filter)
}

func (s *Service) GetAccount(_ context.Context, id string) (domain.Account, error) {
	return s.accounts.Get(id)
}

func (s *Service) CreateAccount(_ context.Context, input store.AccountInput) (domain.Account, error) {
	return s.accounts.Create(input)
}

func (s *Service) PatchAccount(_ context.Context, id string, patch store.AccountPatch) (domain.Account, error) {
	return s.accounts.Update(id, patch)
}

func (s *Service) DeleteAccount(_ context.Context, id string) error {
	return s.accounts.Delete(id)
}

func (s *Service) ListIntegrations(_ context.Context, filter store.IntegrationFilter) []domain.Integration {
	return s.integrations.List(filter)
}

func (s *Service) GetIntegration(_ context.Context, id string) (domain.Integration, error) {
	return s.integrations.Get(id)
}

func (s *Service) CreateIntegration(_ context.Context, input store.IntegrationInput) (domain.Integration, error) {
	return s.integrations.Create(input)
}

func (s *Service) PatchIntegration(_ context.Context, id string, patch store.IntegrationPatch) (domain.Integration, error) {
	return s.integrations.Update(id, patch)
}

func (s *Service) ConnectIntegration(_ context.Context, id string) (domain.Integration, error) {
	return s.integrations.SetStatus(id, domain.IntegrationConnected)
}

func (s *Service) DisconnectIntegration(_ context.Context, id string) (domain.Integration, error) {
	return s.integrations.SetStatus(id, domain.IntegrationDisconnected)
}

func (s *Service) DeleteIntegration(_ context.Context, id string) error {
	return s.integrations.Delete(id)
}

func (s *Service) ListRules(_ context.Context, filter store.RuleFilter) []domain.AutomationRule {
	return s.rules.List(filter)
}

func (s *Service) GetRule(_ context.Context, id string) (domain.AutomationRule, error) {
	return s.rules.Get(id)
}

func (s *Service) CreateRule(_ context.Context, input store.RuleInput) (domain.AutomationRule, error) {
	return s.rules.Create(input)
}

func (s *Service) PatchRule(_ context.Context, id string, patch store.RulePatch) (domain.AutomationRule, error) {
	return s.rules.Update(id, patch)
}

func (s *Service) ToggleRule(_ context.Context, id string) (domain.AutomationRule, error) {
	return s.rules.Toggle(id)
}

func (s *Service) DeleteRule(_ context.Context, id string) error {
	return s.rules.Delete(id)
}

func (s *Service) now() time.Time {
	return s.clock.Now()
}
