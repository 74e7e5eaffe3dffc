package domain

import "time"

const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
)

const (
	InvoiceIssued     = "issued"
	InvoiceProcessing = "processing"
	InvoiceError      = "error"
)

const (
	InvoiceTypeNFe  = "NF-e"
	InvoiceTypeNFCe = "NFC-e"
	InvoiceTypeNFSe = "NFS-e"
)

const (
	StockOK  = "ok"
	StockLow = "low"
	StockOut = "out"
)

const (
	AccountActive  = "active"
	AccountWarning = "warning"
	AccountSyncing = "syncing"
)

const (
	IntegrationConnected    = "connected"
	IntegrationDisconnected = "disconnected"
)

const (
	IntegrationMarketplace = "marketplace"
	IntegrationLogistics   = "logistics"
	IntegrationPayment     = "payment"
)

var (
	OrderStatuses       = []string{OrderPending, OrderProcessing, OrderShipped, OrderDelivered}
	InvoiceStatuses     = []string{InvoiceIssued, InvoiceProcessing, InvoiceError}
	InvoiceTypes        = []string{InvoiceTypeNFe, InvoiceTypeNFCe, InvoiceTypeNFSe}
	AccountStatuses     = []string{AccountActive, AccountWarning, AccountSyncing}
	IntegrationKinds    = []string{IntegrationMarketplace, IntegrationLogistics, IntegrationPayment}
	IntegrationStatuses = []string{IntegrationConnected, IntegrationDisconnected}
)

type LineItem struct {
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	UnitCost  float64 `json:"unit_cost"`
}

type Order struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Customer    string    `json:"customer"`
	Marketplace string    `json:"marketplace"`
	Items       int       `json:"items"`
	Subtotal    float64   `json:"subtotal"`
	Shipping    float64   `json:"shipping"`
	Commission  float64   `json:"commission"`
	Status      string    `json:"status"`
}

type Invoice struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	OrderRef string    `json:"order_ref,omitempty"`
	Customer string    `json:"customer"`
	TaxID    string    `json:"tax_id"`
	Value    float64   `json:"value"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
}

// IsService reports whether ISS applies to the invoice.
func (i Invoice) IsService() bool {
	return i.Type == InvoiceTypeNFSe
}

type TaxBreakdown struct {
	Subtotal  float64 `json:"subtotal"`
	ICMS      float64 `json:"icms"`
	PISCOFINS float64 `json:"pis_cofins"`
	ISS       float64 `json:"iss"`
}

type Product struct {
	ID    string  `json:"id"`
	SKU   string  `json:"sku"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Cost  float64 `json:"cost"`
	Stock int     `json:"stock"`
	Sales int     `json:"sales"`
}

type InventoryItem struct {
	SKU       string `json:"sku"`
	Product   string `json:"product"`
	Stock     int    `json:"stock"`
	Reserved  int    `json:"reserved"`
	Available int    `json:"available"`
	MinStock  int    `json:"min_stock"`
	Location  string `json:"location"`
	Status    string `json:"status"`
}

type Account struct {
	ID          string     `json:"id"`
	Marketplace string     `json:"marketplace"`
	AccountName string     `json:"account_name"`
	Status      string     `json:"status"`
	Orders      int        `json:"orders"`
	Revenue     float64    `json:"revenue"`
	LastSync    *time.Time `json:"last_sync,omitempty"`
}

type Integration struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	Status    string     `json:"status"`
	Orders    int        `json:"orders"`
	Shipments int        `json:"shipments"`
	LastSync  *time.Time `json:"last_sync,omitempty"`
}

type AutomationRule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Enabled     bool   `json:"enabled"`
	Executions  int    `json:"executions"`
}

type MarketplaceShare struct {
	Marketplace string  `json:"marketplace"`
	Revenue     float64 `json:"revenue"`
	Share       float64 `json:"share"`
}

type DailyPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Orders  int     `json:"orders"`
}

type BestSeller struct {
	Rank    int     `json:"rank"`
	Product string  `json:"product"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Margin  float64 `json:"margin"`
}

type MarketplacePerformance struct {
	Marketplace  string  `json:"marketplace"`
	Orders       int     `json:"orders"`
	Revenue      float64 `json:"revenue"`
	AverageOrder float64 `json:"average_order"`
	Commission   float64 `json:"commission"`
	Profit       float64 `json:"profit"`
}

type ReportSummary struct {
	TotalRevenue         float64            `json:"total_revenue"`
	TotalProfit          float64            `json:"total_profit"`
	TotalOrders          int                `json:"total_orders"`
	AverageOrderValue    float64            `json:"average_order_value"`
	MarketplaceBreakdown []MarketplaceShare `json:"marketplace_breakdown"`
	DailyTrend           []DailyPoint       `json:"daily_trend"`
}

type InventoryStats struct {
	TotalProducts int `json:"total_products"`
	LowStock      int `json:"low_stock"`
	OutOfStock    int `json:"out_of_stock"`
	TotalReserved int `json:"total_reserved"`
}

type InventoryImportRow struct {
	SKU      string `json:"sku"`
	Product  string `json:"product"`
	Stock    int    `json:"stock"`
	Reserved int    `json:"reserved"`
	MinStock int    `json:"min_stock"`
	Location string `json:"location"`
}

type ProductImportRow struct {
	SKU   string  `json:"sku"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Cost  float64 `json:"cost"`
	Stock int     `json:"stock"`
}

type ImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

const (
	AdActive     = "active"
	AdLowStock   = "low_stock"
	AdOutOfStock = "out_of_stock"
)

var AdStatuses = []string{AdActive, AdLowStock, AdOutOfStock}

// Ad is a marketplace listing. Margin and Status are derived from price,
// unit cost and stock on every write.
type Ad struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	SKU         string  `json:"sku"`
	Marketplace string  `json:"marketplace"`
	Price       float64 `json:"price"`
	UnitCost    float64 `json:"unit_cost"`
	Stock       int     `json:"stock"`
	Margin      float64 `json:"margin"`
	Status      string  `json:"status"`
	Views       int     `json:"views"`
	Sales       int     `json:"sales"`
}

type AdStats struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	LowStock      int     `json:"low_stock"`
	OutOfStock    int     `json:"out_of_stock"`
	AverageMargin float64 `json:"average_margin"`
	TotalViews    int     `json:"total_views"`
}

// ProfitLine is one product sold on one channel.
type ProfitLine struct {
	Product string  `json:"product"`
	Channel string  `json:"channel"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
	Costs   float64 `json:"costs"`
	Fees    float64 `json:"fees"`
}

type ProductProfit struct {
	ProfitLine
	Profit float64 `json:"profit"`
	Margin float64 `json:"margin"`
}

type ChannelProfit struct {
	Channel string  `json:"channel"`
	Profit  float64 `json:"profit"`
	Share   float64 `json:"share"`
}

type ProfitAnalysis struct {
	Products      []ProductProfit `json:"products"`
	Channels      []ChannelProfit `json:"channels"`
	TotalRevenue  float64         `json:"total_revenue"`
	TotalProfit   float64         `json:"total_profit"`
	AverageMargin float64         `json:"average_margin"`
	UnitsSold     int             `json:"units_sold"`
}

type Customer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Orders int    `json:"orders"`
}

type Supplier struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CNPJ     string `json:"cnpj"`
	Contact  string `json:"contact"`
	Products int    `json:"products"`
}

// Vendor is an in-house salesperson; CommissionRate is a percentage.
type Vendor struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	CommissionRate float64 `json:"commission_rate"`
}
