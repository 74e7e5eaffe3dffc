package report

import (
	"sellerflow/internal/locale"
	"sellerflow/internal/metrics"
)

type builder struct {
	opts     resolved
	labels   locale.Labels
	sections []Section
}

func newBuilder(opts resolved) *builder {
	return &builder{opts: opts, labels: opts.catalog.Labels}
}

func (b *builder) header(title string, lines ...string) {
	b.sections = append(b.sections, Section{
		Kind:     SectionHeader,
		Title:    title,
		Subtitle: b.labels.GeneratedOn + ": " + b.opts.catalog.Timestamp(b.opts.generatedAt),
		Lines:    lines,
	})
}

func (b *builder) text(title string, lines ...string) {
	b.sections = append(b.sections, Section{Kind: SectionText, Title: title, Lines: lines})
}

func (b *builder) summary(title string, pairs ...Pair) {
	b.sections = append(b.sections, Section{Kind: SectionSummary, Title: title, Pairs: pairs})
}

func (b *builder) table(title string, columns []Column, rows [][]Cell) {
	b.sections = append(b.sections, Section{Kind: SectionTable, Title: title, Columns: columns, Rows: rows})
}

func (b *builder) build(kind Kind, title, reference string) *Document {
	catalog := b.opts.catalog
	return &Document{
		Kind:        kind,
		Title:       title,
		Reference:   reference,
		Locale:      catalog.Code,
		GeneratedAt: b.opts.generatedAt,
		PageSize:    b.opts.size,
		Sections:    b.sections,
		Pages: paginate(b.sections, b.opts.size, func(page, total int) (string, string) {
			return catalog.PageOf(page, total), catalog.Labels.Attribution
		}),
	}
}

func (b *builder) str(s string) Cell {
	return Cell{Text: s}
}

func (b *builder) integer(n int) Cell {
	return Cell{Text: b.opts.catalog.Integer(n), Number: float64(n), Type: CellInteger}
}

func (b *builder) money(v float64) Cell {
	return Cell{Text: b.opts.catalog.Money(v), Number: metrics.Round2(v), Type: CellMoney}
}

func (b *builder) percent(v float64) Cell {
	return Cell{Text: b.opts.catalog.Percent(v), Number: metrics.Round2(v), Type: CellPercent}
}

func col(label string, width float64, align Align) Column {
	return Column{Label: label, Width: width, Align: align}
}
