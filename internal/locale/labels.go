package locale

// Labels is the translated text of every document and export surface.
type Labels struct {
	GeneratedOn string
	Attribution string
	PageOf      string

	SalesTitle    string
	Filters       string
	Marketplace   string
	DateRange     string
	Status        string
	Summary       string
	TotalSales    string
	TotalOrders   string
	AvgOrderValue string
	TotalProfit   string
	OrderDetails  string
	OrderID       string
	Date          string
	Customer      string
	Items         string
	Subtotal      string
	Shipping      string
	Commission    string
	NetProfit     string

	PerformanceTitle       string
	Period                 string
	KeyMetrics             string
	Metric                 string
	Value                  string
	TotalRevenue           string
	ProfitMargin           string
	RevenueByMarketplace   string
	Share                  string
	ProfitTrend            string
	BestSellingProducts    string
	Rank                   string
	Product                string
	UnitsSold              string
	Revenue                string
	Profit                 string
	Margin                 string
	MarketplacePerformance string
	Orders                 string
	AvgOrder               string

	InvoiceTitle     string
	Platform         string
	CustomerData     string
	Name             string
	TaxID            string
	IssueDate        string
	Type             string
	OrderRef         string
	FinancialDetails string
	ICMS             string
	PISCOFINS        string
	ISS              string
	TotalValue       string
	SefazInfo        string
	AccessKey        string
	Protocol         string
	SefazStatus      string
	Authorized       string
	IssuedBy         string

	SKU       string
	Stock     string
	Reserved  string
	Available string
	MinStock  string
	Location  string

	All             string
	AllMarketplaces string
	Search          string
	Copy            string
	Last7Days       string
	Last30Days      string
	ThisMonth       string

	statuses map[string]string
}

var english = Labels{
	GeneratedOn: "Generated on",
	Attribution: "Zenith Seller Flow",
	PageOf:      "Page %d of %d",

	SalesTitle:    "Sales Analysis Report",
	Filters:       "Applied Filters",
	Marketplace:   "Marketplace",
	DateRange:     "Date Range",
	Status:        "Status",
	Summary:       "Summary Statistics",
	TotalSales:    "Total Sales",
	TotalOrders:   "Total Orders",
	AvgOrderValue: "Average Order Value",
	TotalProfit:   "Total Profit",
	OrderDetails:  "Order Details",
	OrderID:       "Order ID",
	Date:          "Date",
	Customer:      "Customer",
	Items:         "Items",
	Subtotal:      "Subtotal",
	Shipping:      "Shipping",
	Commission:    "Commission",
	NetProfit:     "Net Profit",

	PerformanceTitle:       "Performance Report",
	Period:                 "Period",
	KeyMetrics:             "Key Metrics",
	Metric:                 "Metric",
	Value:                  "Value",
	TotalRevenue:           "Total Revenue",
	ProfitMargin:           "Profit Margin",
	RevenueByMarketplace:   "Revenue by Marketplace",
	Share:                  "Share",
	ProfitTrend:            "Profit Trend",
	BestSellingProducts:    "Best Selling Products",
	Rank:                   "#",
	Product:                "Product",
	UnitsSold:              "Units Sold",
	Revenue:                "Revenue",
	Profit:                 "Profit",
	Margin:                 "Margin",
	MarketplacePerformance: "Marketplace Performance",
	Orders:                 "Orders",
	AvgOrder:               "Avg Order",

	InvoiceTitle:     "Electronic Invoice",
	Platform:         "E-commerce Management Platform",
	CustomerData:     "Customer Details",
	Name:             "Name",
	TaxID:            "Tax ID",
	IssueDate:        "Issue Date",
	Type:             "Type",
	OrderRef:         "Order",
	FinancialDetails: "Financial Details",
	ICMS:             "ICMS (18%)",
	PISCOFINS:        "PIS/COFINS (3.65%)",
	ISS:              "ISS (5%)",
	TotalValue:       "Total Value",
	SefazInfo:        "SEFAZ Information",
	AccessKey:        "Access Key",
	Protocol:         "Authorization Protocol",
	SefazStatus:      "SEFAZ Status",
	Authorized:       "Authorized",
	IssuedBy:         "This document was generated electronically by Zenith Seller Flow",

	SKU:       "SKU",
	Stock:     "Stock",
	Reserved:  "Reserved",
	Available: "Available",
	MinStock:  "Min. Stock",
	Location:  "Location",

	All:             "All",
	AllMarketplaces: "all marketplaces",
	Search:          "Search",
	Copy:            "copy",
	Last7Days:       "Last 7 days",
	Last30Days:      "Last 30 days",
	ThisMonth:       "This month",

	statuses: map[string]string{
		"pending":      "Pending",
		"processing":   "Processing",
		"shipped":      "Shipped",
		"delivered":    "Delivered",
		"issued":       "Issued",
		"error":        "Error",
		"ok":           "In Stock",
		"low":          "Low Stock",
		"out":          "Out of Stock",
		"active":       "Active",
		"warning":      "Warning",
		"syncing":      "Syncing",
		"connected":    "Connected",
		"disconnected": "Disconnected",
	},
}

var portuguese = Labels{
	GeneratedOn: "Gerado em",
	Attribution: "Zenith Seller Flow",
	PageOf:      "Página %d de %d",

	SalesTitle:    "Relatório de Análise de Vendas",
	Filters:       "Filtros Aplicados",
	Marketplace:   "Marketplace",
	DateRange:     "Período",
	Status:        "Status",
	Summary:       "Estatísticas Resumidas",
	TotalSales:    "Total de Vendas",
	TotalOrders:   "Total de Pedidos",
	AvgOrderValue: "Valor Médio do Pedido",
	TotalProfit:   "Lucro Total",
	OrderDetails:  "Detalhes dos Pedidos",
	OrderID:       "ID do Pedido",
	Date:          "Data",
	Customer:      "Cliente",
	Items:         "Itens",
	Subtotal:      "Subtotal",
	Shipping:      "Frete",
	Commission:    "Comissão",
	NetProfit:     "Lucro Líquido",

	PerformanceTitle:       "Relatório de Desempenho",
	Period:                 "Período",
	KeyMetrics:             "Métricas Principais",
	Metric:                 "Métrica",
	Value:                  "Valor",
	TotalRevenue:           "Receita Total",
	ProfitMargin:           "Margem de Lucro",
	RevenueByMarketplace:   "Receita por Marketplace",
	Share:                  "Participação",
	ProfitTrend:            "Tendência de Lucro",
	BestSellingProducts:    "Produtos Mais Vendidos",
	Rank:                   "#",
	Product:                "Produto",
	UnitsSold:              "Unidades Vendidas",
	Revenue:                "Receita",
	Profit:                 "Lucro",
	Margin:                 "Margem",
	MarketplacePerformance: "Desempenho por Marketplace",
	Orders:                 "Pedidos",
	AvgOrder:               "Pedido Médio",

	InvoiceTitle:     "Nota Fiscal Eletrônica",
	Platform:         "Plataforma de Gestão de E-commerce",
	CustomerData:     "Dados do Cliente",
	Name:             "Nome",
	TaxID:            "CPF/CNPJ",
	IssueDate:        "Data de Emissão",
	Type:             "Tipo",
	OrderRef:         "Pedido",
	FinancialDetails: "Detalhes Financeiros",
	ICMS:             "ICMS (18%)",
	PISCOFINS:        "PIS/COFINS (3,65%)",
	ISS:              "ISS (5%)",
	TotalValue:       "Valor Total",
	SefazInfo:        "Informações SEFAZ",
	AccessKey:        "Chave de Acesso",
	Protocol:         "Protocolo de Autorização",
	SefazStatus:      "Status SEFAZ",
	Authorized:       "Autorizada",
	IssuedBy:         "Este documento foi gerado eletronicamente pela plataforma Zenith Seller Flow",

	SKU:       "SKU",
	Stock:     "Estoque",
	Reserved:  "Reservado",
	Available: "Disponível",
	MinStock:  "Estoque Mín.",
	Location:  "Localização",

	All:             "Todos",
	AllMarketplaces: "todos os marketplaces",
	Search:          "Busca",
	Copy:            "cópia",
	Last7Days:       "Últimos 7 dias",
	Last30Days:      "Últimos 30 dias",
	ThisMonth:       "Este mês",

	statuses: map[string]string{
		"pending":      "Pendente",
		"processing":   "Processando",
		"shipped":      "Enviado",
		"delivered":    "Entregue",
		"issued":       "Emitida",
		"error":        "Erro",
		"ok":           "Em Estoque",
		"low":          "Estoque Baixo",
		"out":          "Sem Estoque",
		"active":       "Ativa",
		"warning":      "Atenção",
		"syncing":      "Sincronizando",
		"connected":    "Conectado",
		"disconnected": "Desconectado",
	},
}
