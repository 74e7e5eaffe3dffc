package report

import "math"

// Page geometry, in mm.
const (
	marginX        = 15.0
	marginTop      = 15.0
	marginBottom   = 20.0
	footerOffset   = 12.0
	footerHeight   = 5.0
	bannerHeight   = 35.0
	bannerGap      = 10.0
	headingHeight  = 8.0
	lineHeight     = 6.0
	pairRowHeight  = 7.0
	pairPadding    = 4.0
	columnHeight   = 8.0
	rowHeight      = 7.0
	sectionSpacing = 6.0
)

// MinSectionHeight is the space a section needs left on the current page
// before it may start there; otherwise it moves to a fresh page.
func MinSectionHeight(kind SectionKind) float64 {
	switch kind {
	case SectionHeader:
		return 35
	case SectionSummary:
		return 40
	case SectionTable:
		return 30
	default:
		return headingHeight + lineHeight
	}
}

// ContentBottom is the lowest y a body block may reach on a page.
func ContentBottom(size PageSize) float64 {
	return size.Height - marginBottom
}

type paginator struct {
	size  PageSize
	pages []Page
	y     float64
}

func paginate(sections []Section, size PageSize, footer func(page, total int) (string, string)) []Page {
	p := &paginator{size: size}
	p.newPage()

	for i, section := range sections {
		switch section.Kind {
		case SectionHeader:
			p.placeHeader(i, section)
		case SectionSummary:
			p.placeSummary(i, section)
		case SectionTable:
			p.placeTable(i, section)
		default:
			p.placeText(i, section)
		}
		p.y += sectionSpacing
	}

	total := len(p.pages)
	for n := range p.pages {
		text, attribution := footer(n+1, total)
		p.pages[n].Blocks = append(p.pages[n].Blocks, Block{
			Kind:     BlockFooter,
			Section:  -1,
			Y:        size.Height - footerOffset,
			Height:   footerHeight,
			Text:     text,
			Subtitle: attribution,
		})
	}
	return p.pages
}

func (p *paginator) bottom() float64 {
	return ContentBottom(p.size)
}

func (p *paginator) newPage() {
	p.pages = append(p.pages, Page{Number: len(p.pages) + 1})
	p.y = marginTop
}

func (p *paginator) fresh() bool {
	return len(p.pages[len(p.pages)-1].Blocks) == 0
}

// ensure opens a new page unless h more mm fit below the cursor. A fresh
// page is never skipped, so oversize content cannot loop.
func (p *paginator) ensure(h float64) {
	if p.y+h > p.bottom() && !p.fresh() {
		p.newPage()
	}
}

func (p *paginator) add(b Block) {
	b.Y = p.y
	page := &p.pages[len(p.pages)-1]
	page.Blocks = append(page.Blocks, b)
	p.y += b.Height
}

func (p *paginator) placeHeader(index int, s Section) {
	p.ensure(MinSectionHeight(SectionHeader))
	if p.fresh() {
		p.y = 0
	}
	p.add(Block{
		Kind:     BlockBanner,
		Section:  index,
		Height:   bannerHeight,
		Text:     s.Title,
		Subtitle: s.Subtitle,
		Lines:    s.Lines,
	})
	p.y += bannerGap - sectionSpacing
}

func (p *paginator) placeText(index int, s Section) {
	p.ensure(MinSectionHeight(SectionText))
	if s.Title != "" {
		p.add(Block{Kind: BlockHeading, Section: index, Height: headingHeight, Text: s.Title})
	}
	for _, line := range s.Lines {
		p.ensure(lineHeight)
		p.add(Block{Kind: BlockText, Section: index, Height: lineHeight, Text: line})
	}
}

func (p *paginator) placeSummary(index int, s Section) {
	rows := math.Ceil(float64(len(s.Pairs)) / float64(pairColumns(s.Pairs)))
	height := headingHeight + rows*pairRowHeight + pairPadding
	p.ensure(math.Max(MinSectionHeight(SectionSummary), height))
	p.add(Block{
		Kind:    BlockPairs,
		Section: index,
		Height:  height,
		Text:    s.Title,
		Pairs:   s.Pairs,
	})
}

func (p *paginator) placeTable(index int, s Section) {
	columns := fitColumns(s.Columns, p.size.Width-2*marginX)

	p.ensure(MinSectionHeight(SectionTable))
	p.add(Block{Kind: BlockHeading, Section: index, Height: headingHeight, Text: s.Title})
	p.add(Block{Kind: BlockTableHeader, Section: index, Height: columnHeight, Columns: columns})

	for i, row := range s.Rows {
		if p.y+rowHeight > p.bottom() {
			p.newPage()
			p.add(Block{Kind: BlockTableHeader, Section: index, Height: columnHeight, Columns: columns})
		}
		p.add(Block{
			Kind:    BlockTableRow,
			Section: index,
			Height:  rowHeight,
			Columns: columns,
			Cells:   row,
			Shaded:  i%2 == 1,
		})
	}
}

// fitColumns scales the nominal widths so the table spans the content width.
func fitColumns(columns []Column, width float64) []Column {
	total := 0.0
	for _, c := range columns {
		total += c.Width
	}
	out := make([]Column, len(columns))
	copy(out, columns)
	if total <= 0 {
		return out
	}
	for i := range out {
		out[i].Width = columns[i].Width * width / total
	}
	return out
}

// pairColumns is 2 unless a value is too long to share a row.
func pairColumns(pairs []Pair) int {
	for _, pair := range pairs {
		if len([]rune(pair.Value.Text)) > 28 {
			return 1
		}
	}
	return 2
}
