package report

import "time"

type Kind string

const (
	KindSales       Kind = "sales"
	KindPerformance Kind = "performance"
	KindInvoice     Kind = "invoice"
)

type SectionKind string

const (
	SectionHeader  SectionKind = "header"
	SectionText    SectionKind = "text"
	SectionSummary SectionKind = "summary"
	SectionTable   SectionKind = "table"
)

type BlockKind string

const (
	BlockBanner      BlockKind = "banner"
	BlockHeading     BlockKind = "heading"
	BlockText        BlockKind = "text"
	BlockPairs       BlockKind = "pairs"
	BlockTableHeader BlockKind = "table_header"
	BlockTableRow    BlockKind = "table_row"
	BlockFooter      BlockKind = "footer"
)

type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

type CellType int

const (
	CellText CellType = iota
	CellInteger
	CellMoney
	CellPercent
)

// Cell keeps the localized text next to the underlying number, so the
// spreadsheet renderer can store real values.
type Cell struct {
	Text   string
	Number float64
	Type   CellType
}

type Column struct {
	Label string
	Width float64
	Align Align
}

type Pair struct {
	Label string
	Value Cell
}

// Section is a logical piece of content, before pagination.
type Section struct {
	Kind     SectionKind
	Title    string
	Subtitle string
	Lines    []string
	Pairs    []Pair
	Columns  []Column
	Rows     [][]Cell
}

// Block is a positioned element on a page. Y and Height are in mm.
type Block struct {
	Kind     BlockKind
	Section  int
	Y        float64
	Height   float64
	Text     string
	Subtitle string
	Lines    []string
	Pairs    []Pair
	Columns  []Column
	Cells    []Cell
	Shaded   bool
}

type Page struct {
	Number int
	Blocks []Block
}

type Document struct {
	Kind        Kind
	Title       string
	Reference   string
	Locale      string
	GeneratedAt time.Time
	PageSize    PageSize
	Sections    []Section
	Pages       []Page
}

func (d *Document) PageCount() int {
	return len(d.Pages)
}
