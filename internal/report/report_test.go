package report

import (
	"bytes"
	"fmt"
	"math"
	"testing"
	"time"

	"sellerflow/internal/domain"
	"sellerflow/internal/locale"
	"sellerflow/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var generatedAt = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

var marketplaces = []string{"Mercado Livre", "Shopee", "Amazon", "Magalu"}

func makeOrders(n int) []domain.Order {
	orders := make([]domain.Order, 0, n)
	for i := 0; i < n; i++ {
		subtotal := 50 + float64(i%17)*12.5
		orders = append(orders, domain.Order{
			ID:          fmt.Sprintf("#ORD-%04d", i+1),
			Date:        generatedAt.AddDate(0, 0, -(i % 9)),
			Customer:    fmt.Sprintf("Cliente %d", i+1),
			Marketplace: marketplaces[i%len(marketplaces)],
			Items:       1 + i%4,
			Subtotal:    subtotal,
			Shipping:    float64(i%3) * 7.5,
			Commission:  subtotal * 0.15,
			Status:      domain.OrderStatuses[i%len(domain.OrderStatuses)],
		})
	}
	return orders
}

func makeProducts() []domain.Product {
	return []domain.Product{
		{ID: "P1", SKU: "FONE-BT-01", Name: "Fone Bluetooth", Price: 149.90, Cost: 70, Stock: 45, Sales: 120},
		{ID: "P2", SKU: "SMW-02", Name: "Smartwatch", Price: 299.90, Cost: 150, Stock: 12, Sales: 85},
		{ID: "P3", SKU: "CAR-USBC", Name: "Carregador USB-C", Price: 49.90, Cost: 18, Stock: 200, Sales: 230},
	}
}

func opts(loc string) Options {
	return Options{Locale: loc, GeneratedAt: generatedAt}
}

func footers(doc *Document) []Block {
	var out []Block
	for _, page := range doc.Pages {
		for _, b := range page.Blocks {
			if b.Kind == BlockFooter {
				out = append(out, b)
			}
		}
	}
	return out
}

func tableRows(doc *Document) []Block {
	var out []Block
	for _, page := range doc.Pages {
		for _, b := range page.Blocks {
			if b.Kind == BlockTableRow {
				out = append(out, b)
			}
		}
	}
	return out
}

// assertLayout checks the page-break rules on every page of doc.
func assertLayout(t *testing.T, doc *Document) {
	t.Helper()
	bottom := ContentBottom(doc.PageSize)
	seen := map[int]bool{}

	for _, page := range doc.Pages {
		for i, b := range page.Blocks {
			if b.Kind == BlockFooter {
				continue
			}
			assert.LessOrEqual(t, b.Y+b.Height, bottom, "page %d block %d (%s) overflows", page.Number, i, b.Kind)
			if seen[b.Section] {
				continue
			}
			seen[b.Section] = true
			need := MinSectionHeight(doc.Sections[b.Section].Kind)
			if i > 0 {
				assert.LessOrEqual(t, b.Y+need, bottom, "section %d starts without its minimum height on page %d", b.Section, page.Number)
			}
		}
	}
}

func TestBuildSalesSinglePage(t *testing.T) {
	doc, err := BuildSales(SalesInput{Orders: makeOrders(4)}, opts(locale.English))
	require.NoError(t, err)

	require.Len(t, doc.Pages, 1)
	assert.Equal(t, "Sales Analysis Report", doc.Title)
	first := doc.Pages[0].Blocks[0]
	assert.Equal(t, BlockBanner, first.Kind)
	assert.Equal(t, "Generated on: 2024-03-15 14:30", first.Subtitle)

	foot := footers(doc)
	require.Len(t, foot, 1)
	assert.Equal(t, "Page 1 of 1", foot[0].Text)
	assert.Equal(t, "Zenith Seller Flow", foot[0].Subtitle)
	assert.Len(t, tableRows(doc), 4)
	assertLayout(t, doc)
}

func TestSalesSummaryUsesCalculator(t *testing.T) {
	orders := []domain.Order{
		{ID: "#ML-001", Date: generatedAt, Marketplace: "Mercado Livre", Items: 2, Subtotal: 299.90, Shipping: 15, Commission: 44.99, Status: domain.OrderDelivered},
	}
	doc, err := BuildSales(SalesInput{Orders: orders}, opts(locale.BrazilianPortuguese))
	require.NoError(t, err)

	var pairs []Pair
	for _, b := range doc.Pages[0].Blocks {
		if b.Kind == BlockPairs {
			pairs = b.Pairs
		}
	}
	require.Len(t, pairs, 4)
	assert.Equal(t, "Lucro Total", pairs[3].Label)
	assert.Equal(t, "R$ 254,91", pairs[3].Value.Text)
	assert.InDelta(t, 254.91, pairs[3].Value.Number, 1e-9)

	rows := tableRows(doc)
	require.Len(t, rows, 1)
	assert.Equal(t, "R$ 254,91", rows[0].Cells[8].Text)
	assert.Equal(t, "Entregue", rows[0].Cells[9].Text)
}

func TestSalesPaginationOverflows(t *testing.T) {
	orders := makeOrders(120)
	doc, err := BuildSales(SalesInput{Orders: orders}, opts(locale.English))
	require.NoError(t, err)

	require.Len(t, doc.Pages, 4)
	foot := footers(doc)
	require.Len(t, foot, len(doc.Pages))
	for i, f := range foot {
		assert.Equal(t, fmt.Sprintf("Page %d of %d", i+1, len(doc.Pages)), f.Text)
	}

	for _, page := range doc.Pages[1:] {
		assert.Equal(t, BlockTableHeader, page.Blocks[0].Kind, "page %d should repeat the column header", page.Number)
	}

	rows := tableRows(doc)
	require.Len(t, rows, len(orders))
	for i, row := range rows {
		assert.Equal(t, orders[i].ID, row.Cells[0].Text)
	}
	assertLayout(t, doc)
}

func TestSectionMovesWhenBelowMinimumHeight(t *testing.T) {
	rows := make([][]Cell, 27)
	for i := range rows {
		rows[i] = []Cell{{Text: "x"}}
	}
	footer := func(page, total int) (string, string) { return fmt.Sprintf("%d/%d", page, total), "" }
	base := []Section{
		{Kind: SectionHeader, Title: "T"},
		{Kind: SectionTable, Title: "Rows", Columns: []Column{{Label: "c", Width: 10}}, Rows: rows},
	}

	t.Run("summary moves", func(t *testing.T) {
		sections := append(append([]Section{}, base...), Section{Kind: SectionSummary, Title: "S", Pairs: []Pair{{Label: "a"}}})
		pages := paginate(sections, A4, footer)
		require.Len(t, pages, 2)
		assert.Equal(t, BlockPairs, pages[1].Blocks[0].Kind)
		assert.Equal(t, marginTop, pages[1].Blocks[0].Y)
		assert.Equal(t, "2/2", pages[1].Blocks[len(pages[1].Blocks)-1].Text)
	})

	t.Run("text fits", func(t *testing.T) {
		sections := append(append([]Section{}, base...), Section{Kind: SectionText, Title: "N", Lines: []string{"line"}})
		pages := paginate(sections, A4, footer)
		require.Len(t, pages, 1)
	})
}

func TestBuildPerformanceLaysOutAllTables(t *testing.T) {
	doc, err := BuildPerformance(PerformanceInput{
		Orders:   makeOrders(60),
		Products: makeProducts(),
		Period:   "last30Days",
	}, opts(locale.English))
	require.NoError(t, err)

	var headings []string
	for _, page := range doc.Pages {
		for _, b := range page.Blocks {
			if b.Kind == BlockHeading {
				headings = append(headings, b.Text)
			}
		}
	}
	assert.Equal(t, []string{"Revenue by Marketplace", "Profit Trend", "Best Selling Products", "Marketplace Performance"}, headings)
	assert.Equal(t, []string{"Period: Last 30 days", "Marketplace: All"}, doc.Pages[0].Blocks[0].Lines)
	assertLayout(t, doc)

	foot := footers(doc)
	assert.Equal(t, fmt.Sprintf("Page %d of %d", len(doc.Pages), len(doc.Pages)), foot[len(foot)-1].Text)
}

func TestFilterDescriptions(t *testing.T) {
	texts := func(doc *Document, kind BlockKind) []string {
		var out []string
		for _, page := range doc.Pages {
			for _, b := range page.Blocks {
				if b.Kind == kind {
					out = append(out, b.Text)
				}
			}
		}
		return out
	}

	sales, err := BuildSales(SalesInput{
		Orders:  makeOrders(3),
		Filters: SalesFilters{Marketplace: "Shopee", Search: " cliente "},
	}, opts(locale.BrazilianPortuguese))
	require.NoError(t, err)
	assert.Contains(t, texts(sales, BlockText), "Marketplace: Shopee | Período: Todos | Status: Todos | Busca: cliente")

	perf, err := BuildPerformance(PerformanceInput{
		Orders:      makeOrders(10),
		Products:    makeProducts(),
		Marketplace: "Shopee",
	}, opts(locale.English))
	require.NoError(t, err)
	assert.Contains(t, texts(perf, BlockHeading), "Best Selling Products (all marketplaces)")
}

func TestPerformanceRejectsBadProduct(t *testing.T) {
	products := makeProducts()
	products[1].Price = 0

	_, err := BuildPerformance(PerformanceInput{Orders: makeOrders(3), Products: products}, opts(locale.English))
	ge, ok := AsGenerationError(err)
	require.True(t, ok)
	assert.Equal(t, "products", ge.Dataset)
	assert.Equal(t, 1, ge.Index)
	assert.Equal(t, "P2", ge.ID)
	assert.Equal(t, "price", ge.Field)
	assert.True(t, metrics.IsValidationError(err))
}

func stripTimestamps(pages []Page) []Page {
	out := make([]Page, len(pages))
	for i, page := range pages {
		blocks := make([]Block, len(page.Blocks))
		copy(blocks, page.Blocks)
		for j := range blocks {
			if blocks[j].Kind == BlockBanner {
				blocks[j].Subtitle = ""
			}
		}
		out[i] = Page{Number: page.Number, Blocks: blocks}
	}
	return out
}

func TestDocumentDeterminism(t *testing.T) {
	in := SalesInput{Orders: makeOrders(80), Filters: SalesFilters{Status: domain.OrderShipped}}

	first, err := BuildSales(in, opts(locale.English))
	require.NoError(t, err)
	second, err := BuildSales(in, opts(locale.English))
	require.NoError(t, err)

	a, err := RenderPDF(first)
	require.NoError(t, err)
	b, err := RenderPDF(second)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b), "identical input must render identical bytes")
	assert.True(t, bytes.HasPrefix(a, []byte("%PDF-")))

	later := opts(locale.English)
	later.GeneratedAt = generatedAt.Add(3 * time.Hour)
	third, err := BuildSales(in, later)
	require.NoError(t, err)
	assert.Equal(t, stripTimestamps(first.Pages), stripTimestamps(third.Pages))
	assert.NotEqual(t, first.Pages[0].Blocks[0].Subtitle, third.Pages[0].Blocks[0].Subtitle)
}

func TestPDFBytesDifferOnlyInTimestamp(t *testing.T) {
	in := SalesInput{Orders: makeOrders(120)}
	ptBR := locale.Resolve(locale.BrazilianPortuguese)
	later := generatedAt.Add(26*time.Hour + 7*time.Minute)

	render := func(at time.Time) []byte {
		o := opts(locale.BrazilianPortuguese)
		o.GeneratedAt = at
		doc, err := BuildSales(in, o)
		require.NoError(t, err)
		out, err := RenderPDF(doc)
		require.NoError(t, err)
		return out
	}
	a := render(generatedAt)
	b := render(later)
	require.Equal(t, len(a), len(b))
	assert.False(t, bytes.Equal(a, b))

	const pdfDate = "20060102150405"
	swap := func(in []byte, from, to time.Time) []byte {
		out := bytes.ReplaceAll(in, []byte(ptBR.Timestamp(from)), []byte(ptBR.Timestamp(to)))
		return bytes.ReplaceAll(out, []byte(from.Format(pdfDate)), []byte(to.Format(pdfDate)))
	}
	assert.True(t, bytes.Equal(a, swap(b, later, generatedAt)))
}

func TestLocaleIsolation(t *testing.T) {
	in := PerformanceInput{Orders: makeOrders(50), Products: makeProducts()}

	en, err := BuildPerformance(in, opts(locale.English))
	require.NoError(t, err)
	pt, err := BuildPerformance(in, opts(locale.BrazilianPortuguese))
	require.NoError(t, err)

	require.Equal(t, len(en.Pages), len(pt.Pages))
	textChanged := false
	for p := range en.Pages {
		require.Equal(t, len(en.Pages[p].Blocks), len(pt.Pages[p].Blocks))
		for i, eb := range en.Pages[p].Blocks {
			pb := pt.Pages[p].Blocks[i]
			assert.Equal(t, eb.Kind, pb.Kind)
			assert.Equal(t, eb.Y, pb.Y)
			require.Equal(t, len(eb.Cells), len(pb.Cells))
			for c := range eb.Cells {
				assert.Equal(t, eb.Cells[c].Type, pb.Cells[c].Type)
				assert.Equal(t, eb.Cells[c].Number, pb.Cells[c].Number)
				if eb.Cells[c].Type == CellText && c == 0 {
					assert.Equal(t, eb.Cells[c].Text, pb.Cells[c].Text)
				}
				if eb.Cells[c].Type == CellMoney && eb.Cells[c].Number >= 1000 && eb.Cells[c].Text != pb.Cells[c].Text {
					textChanged = true
				}
			}
		}
	}
	assert.True(t, textChanged, "money formatting should follow the locale")
}

func TestSalesGenerationErrors(t *testing.T) {
	t.Run("non-finite field", func(t *testing.T) {
		orders := makeOrders(5)
		orders[3].Commission = math.Inf(1)

		_, err := BuildSales(SalesInput{Orders: orders}, opts(locale.English))
		ge, ok := AsGenerationError(err)
		require.True(t, ok)
		assert.Equal(t, 3, ge.Index)
		assert.Equal(t, orders[3].ID, ge.ID)
		assert.Equal(t, "commission", ge.Field)
		assert.True(t, metrics.IsValidationError(err))
	})

	t.Run("missing date", func(t *testing.T) {
		orders := makeOrders(2)
		orders[1].Date = time.Time{}

		_, err := BuildSales(SalesInput{Orders: orders}, opts(locale.English))
		ge, ok := AsGenerationError(err)
		require.True(t, ok)
		assert.Equal(t, 1, ge.Index)
		assert.Equal(t, "date", ge.Field)
	})
}

func TestDocumentTooLarge(t *testing.T) {
	limited := opts(locale.English)
	limited.MaxRecords = 5
	_, err := BuildSales(SalesInput{Orders: makeOrders(6)}, limited)
	var tooLarge *DocumentTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, 6, tooLarge.Count)
	assert.Equal(t, 5, tooLarge.Max)

	_, err = BuildSales(SalesInput{Orders: make([]domain.Order, DefaultMaxRecords+1)}, opts(locale.English))
	assert.True(t, IsTooLarge(err))

	_, err = BuildPerformance(PerformanceInput{Orders: makeOrders(3), Products: makeProducts()}, Options{Locale: locale.English, GeneratedAt: generatedAt, MaxRecords: 5})
	assert.True(t, IsTooLarge(err))
}

func TestOptionsValidation(t *testing.T) {
	_, err := BuildSales(SalesInput{}, Options{Locale: "de", GeneratedAt: generatedAt})
	assert.True(t, metrics.IsValidationError(err))

	_, err = BuildSales(SalesInput{}, Options{Locale: locale.English})
	assert.True(t, metrics.IsValidationError(err))

	_, err = BuildSales(SalesInput{}, Options{Locale: locale.English, GeneratedAt: generatedAt, PageSize: PageSize{Width: 50, Height: 50}})
	assert.True(t, metrics.IsValidationError(err))

	for _, size := range []PageSize{
		{Width: 210, Height: math.Inf(1)},
		{Width: math.Inf(1), Height: 297},
		{Width: math.NaN(), Height: 297},
		{Width: 210, Height: math.NaN()},
	} {
		_, err = BuildSales(SalesInput{}, Options{Locale: locale.English, GeneratedAt: generatedAt, PageSize: size})
		var ve *metrics.ValidationError
		require.ErrorAs(t, err, &ve, "size %v", size)
		assert.Equal(t, "page_size", ve.Field)
	}
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	orders := makeOrders(30)
	products := makeProducts()
	ordersCopy := append([]domain.Order(nil), orders...)
	productsCopy := append([]domain.Product(nil), products...)

	_, err := BuildPerformance(PerformanceInput{Orders: orders, Products: products}, opts(locale.English))
	require.NoError(t, err)
	assert.Equal(t, ordersCopy, orders)
	assert.Equal(t, productsCopy, products)
}

func TestBuildInvoiceServiceTaxes(t *testing.T) {
	in := InvoiceInput{
		Invoice: domain.Invoice{
			ID:       "NFS-003",
			Type:     domain.InvoiceTypeNFSe,
			Customer: "Tech Solutions LTDA",
			TaxID:    "12.345.678/0001-90",
			Date:     generatedAt,
			Status:   domain.InvoiceIssued,
		},
		ValueText: "R$ 459,50",
		AccessKey: "35240312345678000190550010000000031000000031",
		Protocol:  "135240000000031",
	}
	doc, err := BuildInvoice(in, opts(locale.BrazilianPortuguese))
	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)
	assert.Equal(t, "Nota Fiscal Eletrônica", doc.Title)
	assert.Equal(t, "NFS-003", doc.Reference)

	values := map[string]string{}
	for _, b := range doc.Pages[0].Blocks {
		for _, pair := range b.Pairs {
			values[pair.Label] = pair.Value.Text
		}
	}
	assert.Equal(t, "R$ 382,92", values["Subtotal"])
	assert.Equal(t, "R$ 68,93", values["ICMS (18%)"])
	assert.Equal(t, "R$ 13,98", values["PIS/COFINS (3,65%)"])
	assert.Equal(t, "R$ 19,15", values["ISS (5%)"])
	assert.Equal(t, "R$ 459,50", values["Valor Total"])
	assert.Equal(t, in.AccessKey, values["Chave de Acesso"])
	assert.Equal(t, "Autorizada", values["Status SEFAZ"])
	assertLayout(t, doc)
}

func TestBuildInvoiceGoodsHasNoISS(t *testing.T) {
	doc, err := BuildInvoice(InvoiceInput{
		Invoice:   domain.Invoice{ID: "NFE-001", Type: domain.InvoiceTypeNFe, Value: 120, Date: generatedAt},
		AccessKey: "1",
		Protocol:  "2",
	}, opts(locale.English))
	require.NoError(t, err)
	for _, b := range doc.Pages[0].Blocks {
		for _, pair := range b.Pairs {
			assert.NotEqual(t, "ISS (5%)", pair.Label)
		}
	}
}

func TestBuildInvoiceErrors(t *testing.T) {
	base := InvoiceInput{
		Invoice:   domain.Invoice{ID: "NFE-009", Type: domain.InvoiceTypeNFe, Value: 10, Date: generatedAt},
		AccessKey: "1",
		Protocol:  "2",
	}

	noKey := base
	noKey.AccessKey = ""
	_, err := BuildInvoice(noKey, opts(locale.English))
	ge, ok := AsGenerationError(err)
	require.True(t, ok)
	assert.Equal(t, "access_key", ge.Field)
	assert.Equal(t, "NFE-009", ge.ID)

	badText := base
	badText.ValueText = "R$ abc"
	_, err = BuildInvoice(badText, opts(locale.English))
	ge, ok = AsGenerationError(err)
	require.True(t, ok)
	assert.Equal(t, "amount", ge.Field)

	negative := base
	negative.Invoice.Value = -1
	_, err = BuildInvoice(negative, opts(locale.English))
	ge, ok = AsGenerationError(err)
	require.True(t, ok)
	assert.Equal(t, "total", ge.Field)
}

func TestRenderXLSXReopens(t *testing.T) {
	doc, err := BuildSales(SalesInput{Orders: makeOrders(12)}, opts(locale.BrazilianPortuguese))
	require.NoError(t, err)

	file, err := Export(doc, FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "Sales_Report_2024-03-15.xlsx", file.Name)
	assert.Equal(t, contentTypeXLSX, file.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 1)
	assert.Equal(t, "Relatório de Análise de Vendas", sheets[0])

	rows, err := f.GetRows(sheets[0])
	require.NoError(t, err)
	var header []string
	ids := 0
	for _, row := range rows {
		if len(row) > 0 && row[0] == "ID do Pedido" {
			header = row
		}
		if len(row) > 0 && len(row[0]) > 5 && row[0][:5] == "#ORD-" {
			ids++
		}
	}
	require.NotEmpty(t, header)
	assert.Contains(t, header, "Comissão")
	assert.Contains(t, header, "Lucro Líquido")
	assert.Equal(t, 12, ids)
}

func TestExportAndFilenames(t *testing.T) {
	doc, err := BuildInvoice(InvoiceInput{
		Invoice:   domain.Invoice{ID: "#NF/001", Type: domain.InvoiceTypeNFCe, Value: 89.9, Date: generatedAt},
		AccessKey: "1",
		Protocol:  "2",
	}, opts(locale.English))
	require.NoError(t, err)

	file, err := Export(doc, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "Invoice_NF_001.pdf", file.Name)
	assert.Equal(t, contentTypePDF, file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF-")))

	perf, err := BuildPerformance(PerformanceInput{}, opts(locale.English))
	require.NoError(t, err)
	assert.Equal(t, "Performance_Report_2024-03-15.xlsx", Filename(perf, FormatXLSX))

	_, err = ParseFormat("docx")
	assert.True(t, metrics.IsValidationError(err))
	format, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, format)
}
