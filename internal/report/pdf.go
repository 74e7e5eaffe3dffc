package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

type rgb struct {
	r, g, b int
}

var (
	colorPrimary = rgb{99, 102, 241}
	colorText    = rgb{31, 41, 55}
	colorMuted   = rgb{107, 114, 128}
	colorPanel   = rgb{245, 247, 250}
	colorWhite   = rgb{255, 255, 255}
)

const fontFamily = "Helvetica"

type pdfRenderer struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	width float64
}

// RenderPDF draws a laid-out document. The creation date is pinned to the
// document's generation time and page streams are left uncompressed, so two
// renders differ only in the timestamp text.
func RenderPDF(doc *Document) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: doc.PageSize.Width, Ht: doc.PageSize.Height},
	})
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.SetCompression(false)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(marginX, marginTop, marginX)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("Zenith Seller Flow", true)

	r := &pdfRenderer{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		width: doc.PageSize.Width,
	}
	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, block := range page.Blocks {
			r.draw(block)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, renderError(fmt.Errorf("pdf: %w", err))
	}
	return buf.Bytes(), nil
}

func (r *pdfRenderer) contentWidth() float64 {
	return r.width - 2*marginX
}

func (r *pdfRenderer) fill(c rgb) {
	r.pdf.SetFillColor(c.r, c.g, c.b)
}

func (r *pdfRenderer) color(c rgb) {
	r.pdf.SetTextColor(c.r, c.g, c.b)
}

func (r *pdfRenderer) cell(x, y, w, h float64, text string, align Align, fill bool) {
	r.pdf.SetXY(x, y)
	r.pdf.CellFormat(w, h, r.fit(text, w), "", 0, string(align), fill, 0, "")
}

// fit trims text until it fits in a cell of width w.
func (r *pdfRenderer) fit(text string, w float64) string {
	out := r.tr(text)
	for len(out) > 0 && r.pdf.GetStringWidth(out) > w-2 {
		out = out[:len(out)-1]
	}
	return out
}

func (r *pdfRenderer) draw(b Block) {
	switch b.Kind {
	case BlockBanner:
		r.banner(b)
	case BlockHeading:
		r.pdf.SetFont(fontFamily, "B", 11)
		r.color(colorText)
		r.cell(marginX, b.Y+1, r.contentWidth(), b.Height-2, b.Text, AlignLeft, false)
	case BlockText:
		r.pdf.SetFont(fontFamily, "", 9)
		r.color(colorMuted)
		r.cell(marginX, b.Y, r.contentWidth(), b.Height, b.Text, AlignLeft, false)
	case BlockPairs:
		r.pairs(b)
	case BlockTableHeader:
		r.pdf.SetFont(fontFamily, "B", 8)
		r.fill(colorPrimary)
		r.color(colorWhite)
		x := marginX
		for _, c := range b.Columns {
			r.cell(x, b.Y, c.Width, b.Height, c.Label, c.Align, true)
			x += c.Width
		}
	case BlockTableRow:
		r.pdf.SetFont(fontFamily, "", 7)
		r.fill(colorPanel)
		r.color(colorText)
		x := marginX
		for i, c := range b.Columns {
			text := ""
			if i < len(b.Cells) {
				text = b.Cells[i].Text
			}
			r.cell(x, b.Y, c.Width, b.Height, text, c.Align, b.Shaded)
			x += c.Width
		}
	case BlockFooter:
		r.pdf.SetFont(fontFamily, "", 8)
		r.color(colorMuted)
		r.cell(marginX, b.Y, r.contentWidth(), b.Height, b.Subtitle, AlignLeft, false)
		r.cell(marginX, b.Y, r.contentWidth(), b.Height, b.Text, AlignCenter, false)
	}
}

func (r *pdfRenderer) banner(b Block) {
	r.fill(colorPrimary)
	r.pdf.Rect(0, b.Y, r.width, b.Height, "F")
	r.color(colorWhite)

	r.pdf.SetFont(fontFamily, "B", 20)
	r.cell(marginX, b.Y+6, r.contentWidth(), 10, b.Text, AlignCenter, false)

	r.pdf.SetFont(fontFamily, "", 9)
	y := b.Y + 17
	for _, line := range b.Lines {
		r.cell(marginX, y, r.contentWidth(), 4.5, line, AlignCenter, false)
		y += 4.5
	}
	r.cell(marginX, y, r.contentWidth(), 4.5, b.Subtitle, AlignCenter, false)
}

func (r *pdfRenderer) pairs(b Block) {
	r.fill(colorPanel)
	r.pdf.Rect(marginX, b.Y, r.contentWidth(), b.Height, "F")

	r.pdf.SetFont(fontFamily, "B", 11)
	r.color(colorText)
	r.cell(marginX+5, b.Y+1, r.contentWidth()-10, headingHeight-2, b.Text, AlignLeft, false)

	perRow := pairColumns(b.Pairs)
	colWidth := (r.contentWidth() - 10) / float64(perRow)
	for i, pair := range b.Pairs {
		x := marginX + 5 + float64(i%perRow)*colWidth
		y := b.Y + headingHeight + float64(i/perRow)*pairRowHeight

		r.pdf.SetFont(fontFamily, "", 9)
		r.color(colorMuted)
		r.cell(x, y, colWidth-5, pairRowHeight, pair.Label, AlignLeft, false)

		r.pdf.SetFont(fontFamily, "B", 9)
		r.color(colorText)
		r.cell(x, y, colWidth-5, pairRowHeight, pair.Value.Text, AlignRight, false)
	}
}
