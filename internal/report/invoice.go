package report

import (
	"sellerflow/internal/domain"
	"sellerflow/internal/metrics"
)

const issuerTaxID = "CNPJ: 12.345.678/0001-90"

// InvoiceInput is one invoice plus the simulated SEFAZ authorization. When
// ValueText is set (e.g. "R$ 459,50") it is parsed and replaces Value.
type InvoiceInput struct {
	Invoice   domain.Invoice
	ValueText string
	AccessKey string
	Protocol  string
}

func BuildInvoice(in InvoiceInput, opts Options) (*Document, error) {
	r, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	inv := in.Invoice
	switch {
	case inv.ID == "":
		return nil, missingField("invoices", 0, inv.ID, "id")
	case inv.Date.IsZero():
		return nil, missingField("invoices", 0, inv.ID, "date")
	case in.AccessKey == "":
		return nil, missingField("invoices", 0, inv.ID, "access_key")
	case in.Protocol == "":
		return nil, missingField("invoices", 0, inv.ID, "protocol")
	}
	if in.ValueText != "" {
		value, err := metrics.ParseMoney(in.ValueText)
		if err != nil {
			return nil, recordError("invoices", 0, inv.ID, err)
		}
		inv.Value = value
	}
	tax, err := metrics.InvoiceTax(inv)
	if err != nil {
		return nil, recordError("invoices", 0, inv.ID, err)
	}

	b := newBuilder(r)
	l := b.labels
	cat := r.catalog

	b.header(l.Attribution, l.Platform, issuerTaxID)
	b.text(l.InvoiceTitle,
		inv.Type+" - "+inv.ID,
		l.Status+": "+cat.Status(inv.Status),
	)

	customer := []Pair{
		{Label: l.Name, Value: b.str(inv.Customer)},
		{Label: l.IssueDate, Value: b.str(inv.Date.Format(dateLayout))},
		{Label: l.TaxID, Value: b.str(inv.TaxID)},
		{Label: l.Type, Value: b.str(inv.Type)},
	}
	if inv.OrderRef != "" {
		customer = append(customer, Pair{Label: l.OrderRef, Value: b.str(inv.OrderRef)})
	}
	b.summary(l.CustomerData, customer...)

	financial := []Pair{
		{Label: l.Subtotal, Value: b.money(tax.Subtotal)},
		{Label: l.ICMS, Value: b.money(tax.ICMS)},
		{Label: l.PISCOFINS, Value: b.money(tax.PISCOFINS)},
	}
	if inv.IsService() {
		financial = append(financial, Pair{Label: l.ISS, Value: b.money(tax.ISS)})
	}
	financial = append(financial, Pair{Label: l.TotalValue, Value: b.money(inv.Value)})
	b.summary(l.FinancialDetails, financial...)

	b.summary(l.SefazInfo,
		Pair{Label: l.AccessKey, Value: b.str(in.AccessKey)},
		Pair{Label: l.Protocol, Value: b.str(in.Protocol)},
		Pair{Label: l.SefazStatus, Value: b.str(l.Authorized)},
	)
	b.text("", l.IssuedBy)

	return b.build(KindInvoice, l.InvoiceTitle, inv.ID), nil
}
