package seed

import (
	"time"

	"sellerflow/internal/domain"
)

func day(now time.Time, offset int) time.Time {
	d := now.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 10, 0, 0, 0, d.Location())
}

func orders(now time.Time) []domain.Order {
	return []domain.Order{
		{ID: "#ORD-1234", Date: day(now, 0), Customer: "João Silva", Marketplace: "Mercado Livre", Items: 2, Subtotal: 299.90, Shipping: 15.00, Commission: 44.99, Status: domain.OrderShipped},
		{ID: "#ORD-1235", Date: day(now, 0), Customer: "Maria Santos", Marketplace: "Shopee", Items: 1, Subtotal: 459.50, Shipping: 20.00, Commission: 68.93, Status: domain.OrderProcessing},
		{ID: "#ORD-1236", Date: day(now, 1), Customer: "Pedro Costa", Marketplace: "Amazon", Items: 3, Subtotal: 199.00, Shipping: 12.00, Commission: 29.85, Status: domain.OrderDelivered},
		{ID: "#ORD-1237", Date: day(now, 1), Customer: "Ana Oliveira", Marketplace: "Mercado Livre", Items: 1, Subtotal: 349.90, Shipping: 18.00, Commission: 52.49, Status: domain.OrderProcessing},
		{ID: "#ORD-1238", Date: day(now, 2), Customer: "Carlos Lima", Marketplace: "Magazine Luiza", Items: 2, Subtotal: 549.90, Shipping: 22.00, Commission: 82.49, Status: domain.OrderDelivered},
		{ID: "#ORD-1239", Date: day(now, 12), Customer: "Fernanda Rocha", Marketplace: "Shopee", Items: 4, Subtotal: 119.60, Shipping: 9.90, Commission: 17.94, Status: domain.OrderDelivered},
		{ID: "#ORD-1240", Date: day(now, 45), Customer: "Ricardo Alves", Marketplace: "Amazon", Items: 1, Subtotal: 899.90, Shipping: 0, Commission: 134.99, Status: domain.OrderDelivered},
	}
}

func invoices(now time.Time) []domain.Invoice {
	return []domain.Invoice{
		{ID: "NFE-2025-001234", Type: domain.InvoiceTypeNFe, OrderRef: "#ORD-1234", Date: day(now, 0), Customer: "João Silva", TaxID: "123.456.789-00", Value: 299.90, Status: domain.InvoiceIssued},
		{ID: "NFCE-2025-005678", Type: domain.InvoiceTypeNFCe, OrderRef: "#ORD-1235", Date: day(now, 0), Customer: "Maria Santos", TaxID: "987.654.321-00", Value: 459.50, Status: domain.InvoiceProcessing},
		{ID: "NFE-2025-001233", Type: domain.InvoiceTypeNFe, OrderRef: "#ORD-1236", Date: day(now, 1), Customer: "Pedro Costa", TaxID: "456.789.123-00", Value: 199.00, Status: domain.InvoiceIssued},
		{ID: "NFSE-2025-000123", Type: domain.InvoiceTypeNFSe, OrderRef: "#ORD-1237", Date: day(now, 1), Customer: "Ana Oliveira", TaxID: "12.345.678/0001-90", Value: 349.90, Status: domain.InvoiceError},
		{ID: "NFE-2025-001232", Type: domain.InvoiceTypeNFe, OrderRef: "#ORD-1238", Date: day(now, 2), Customer: "Carlos Lima", TaxID: "321.654.987-00", Value: 549.90, Status: domain.InvoiceIssued},
	}
}

func inventory() []domain.InventoryItem {
	return []domain.InventoryItem{
		{SKU: "SAMS23-128", Product: "Samsung Galaxy S23", Stock: 45, Reserved: 12, MinStock: 10, Location: "Warehouse A"},
		{SKU: "JBL-BT-500", Product: "JBL Bluetooth Headset", Stock: 120, Reserved: 25, MinStock: 50, Location: "Warehouse A"},
		{SKU: "LG-55-4K", Product: `LG 55" 4K TV`, Stock: 8, Reserved: 5, MinStock: 10, Location: "Warehouse B"},
		{SKU: "DELL-I15-512", Product: "Dell Inspiron 15", Stock: 0, Reserved: 0, MinStock: 5, Location: "Warehouse A"},
		{SKU: "LOG-G502", Product: "Logitech G502 Mouse", Stock: 67, Reserved: 8, MinStock: 20, Location: "Warehouse A"},
	}
}

func products() []domain.Product {
	return []domain.Product{
		{ID: "PRD-001", SKU: "WH-PRO-001", Name: "Wireless Headphones Pro", Price: 299.90, Cost: 150.00, Stock: 45, Sales: 234},
		{ID: "PRD-002", SKU: "SW-S5-001", Name: "Smart Watch Series 5", Price: 899.90, Cost: 450.00, Stock: 28, Sales: 189},
		{ID: "PRD-003", SKU: "BS-MINI-001", Name: "Bluetooth Speaker Mini", Price: 149.90, Cost: 70.00, Stock: 12, Sales: 456},
		{ID: "PRD-004", SKU: "CAB-USBC-2M", Name: "USB-C Cable 2m", Price: 29.90, Cost: 12.00, Stock: 156, Sales: 892},
		{ID: "PRD-005", SKU: "PC-PREM-001", Name: "Phone Case Premium", Price: 79.90, Cost: 35.00, Stock: 3, Sales: 321},
		{ID: "PRD-006", SKU: "PC-10K-001", Name: "Portable Charger 10000mAh", Price: 149.90, Cost: 65.00, Stock: 67, Sales: 567},
	}
}

func accounts(now time.Time) []domain.Account {
	synced := func(minutes int) *time.Time {
		t := now.Add(-time.Duration(minutes) * time.Minute)
		return &t
	}
	return []domain.Account{
		{ID: "ACC-1", Marketplace: "Mercado Livre", AccountName: "TechStore Principal", Status: domain.AccountActive, Orders: 456, Revenue: 125340.50, LastSync: synced(2)},
		{ID: "ACC-2", Marketplace: "Mercado Livre", AccountName: "TechStore Outlet", Status: domain.AccountActive, Orders: 234, Revenue: 67890.30, LastSync: synced(5)},
		{ID: "ACC-3", Marketplace: "Shopee", AccountName: "TechStore Official", Status: domain.AccountActive, Orders: 189, Revenue: 45230.80, LastSync: synced(1)},
		{ID: "ACC-4", Marketplace: "Amazon", AccountName: "TechStore BR", Status: domain.AccountActive, Orders: 134, Revenue: 89456.20, LastSync: synced(3)},
		{ID: "ACC-5", Marketplace: "Magazine Luiza", AccountName: "TechStore Marketplace", Status: domain.AccountWarning, Orders: 67, Revenue: 23450.70, LastSync: synced(45)},
	}
}

func integrations(now time.Time) []domain.Integration {
	synced := func(minutes int) *time.Time {
		t := now.Add(-time.Duration(minutes) * time.Minute)
		return &t
	}
	return []domain.Integration{
		{ID: "INT-1", Name: "Mercado Livre", Kind: domain.IntegrationMarketplace, Status: domain.IntegrationConnected, Orders: 456, LastSync: synced(2)},
		{ID: "INT-2", Name: "Shopee", Kind: domain.IntegrationMarketplace, Status: domain.IntegrationConnected, Orders: 189, LastSync: synced(5)},
		{ID: "INT-3", Name: "Amazon", Kind: domain.IntegrationMarketplace, Status: domain.IntegrationConnected, Orders: 134, LastSync: synced(3)},
		{ID: "INT-4", Name: "Magazine Luiza", Kind: domain.IntegrationMarketplace, Status: domain.IntegrationConnected, Orders: 67, LastSync: synced(10)},
		{ID: "INT-5", Name: "Americanas", Kind: domain.IntegrationMarketplace, Status: domain.IntegrationDisconnected},
		{ID: "INT-6", Name: "Correios", Kind: domain.IntegrationLogistics, Status: domain.IntegrationConnected, Shipments: 234},
		{ID: "INT-7", Name: "Jadlog", Kind: domain.IntegrationLogistics, Status: domain.IntegrationConnected, Shipments: 123},
		{ID: "INT-8", Name: "Total Express", Kind: domain.IntegrationLogistics, Status: domain.IntegrationConnected, Shipments: 89},
		{ID: "INT-9", Name: "Loggi", Kind: domain.IntegrationLogistics, Status: domain.IntegrationDisconnected},
		{ID: "INT-10", Name: "Mercado Pago", Kind: domain.IntegrationPayment, Status: domain.IntegrationConnected},
		{ID: "INT-11", Name: "PagSeguro", Kind: domain.IntegrationPayment, Status: domain.IntegrationConnected},
		{ID: "INT-12", Name: "PayPal", Kind: domain.IntegrationPayment, Status: domain.IntegrationDisconnected},
	}
}

func rules() []domain.AutomationRule {
	return []domain.AutomationRule{
		{ID: "RULE-1", Name: "Automatic invoice generation", Description: "Issue the invoice as soon as an order is paid", Category: "invoices", Enabled: true, Executions: 1234},
		{ID: "RULE-2", Name: "Inventory sync", Description: "Push stock levels to every marketplace", Category: "inventory", Enabled: true, Executions: 5678},
		{ID: "RULE-3", Name: "Order status updates", Description: "Mirror shipping status back to the marketplaces", Category: "orders", Enabled: true, Executions: 2345},
		{ID: "RULE-4", Name: "Price adjustments", Description: "Match competitor prices within the margin floor", Category: "pricing", Enabled: false},
		{ID: "RULE-5", Name: "Low stock alerts", Description: "Notify when available units drop below the minimum", Category: "alerts", Enabled: true, Executions: 456},
	}
}

func ads() []domain.Ad {
	return []domain.Ad{
		{ID: "AD-001", Title: "Smartphone Samsung Galaxy S23", SKU: "SAMS23-128", Marketplace: "Mercado Livre", Price: 2899.90, UnitCost: 2100, Stock: 45, Views: 1234, Sales: 45},
		{ID: "AD-002", Title: "Fone de Ouvido Bluetooth JBL", SKU: "JBL-BT-500", Marketplace: "Shopee", Price: 299.90, UnitCost: 180, Stock: 120, Views: 856, Sales: 78},
		{ID: "AD-003", Title: "Smart TV LG 55\" 4K", SKU: "LG-55-4K", Marketplace: "Amazon", Price: 2499, UnitCost: 1850, Stock: 8, Views: 567, Sales: 23},
		{ID: "AD-004", Title: "Notebook Dell Inspiron 15", SKU: "DELL-I15-512", Marketplace: "Magazine Luiza", Price: 3599, UnitCost: 2800, Stock: 0, Views: 445, Sales: 12},
		{ID: "AD-005", Title: "Mouse Gamer Logitech G502", SKU: "LOG-G502", Marketplace: "Mercado Livre", Price: 289.90, UnitCost: 165, Stock: 67, Views: 2103, Sales: 156},
	}
}

func customers() []domain.Customer {
	return []domain.Customer{
		{ID: "CUS-1", Name: "João Silva", Email: "joao@email.com", Phone: "(11) 98765-4321", Orders: 12},
		{ID: "CUS-2", Name: "Maria Santos", Email: "maria@email.com", Phone: "(21) 97654-3210", Orders: 8},
	}
}

func suppliers() []domain.Supplier {
	return []domain.Supplier{
		{ID: "SUP-1", Name: "TechDistributor Ltda", CNPJ: "12.345.678/0001-90", Contact: "contato@techdist.com", Products: 45},
		{ID: "SUP-2", Name: "ElectroSupply SA", CNPJ: "98.765.432/0001-10", Contact: "vendas@electro.com", Products: 28},
	}
}

func vendors() []domain.Vendor {
	return []domain.Vendor{
		{ID: "VEN-1", Name: "Carlos Mendes", Email: "carlos@example.com", Phone: "(11) 99999-0000", CommissionRate: 10},
		{ID: "VEN-2", Name: "Ana Paula", Email: "ana@example.com", Phone: "(21) 98888-0000", CommissionRate: 12},
	}
}
