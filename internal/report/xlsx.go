package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	numFmtMoney   = 4  // #,##0.00
	numFmtPercent = 10 // 0.00%
)

type sheetStyles struct {
	title   int
	heading int
	column  int
	money   int
	percent int
}

type sheetWriter struct {
	f      *excelize.File
	sheet  string
	row    int
	styles sheetStyles
	maxCol int
}

// RenderXLSX writes the document's sections to a single worksheet. Tables
// become plain ranges with typed numeric cells.
func RenderXLSX(doc *Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(doc.Title)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, renderError(fmt.Errorf("xlsx: rename sheet: %w", err))
	}
	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, renderError(fmt.Errorf("xlsx: styles: %w", err))
	}

	w := &sheetWriter{f: f, sheet: sheet, row: 1, styles: styles, maxCol: 2}
	for _, section := range doc.Sections {
		if err := w.section(section); err != nil {
			return nil, renderError(fmt.Errorf("xlsx: %w", err))
		}
		w.row++
	}

	last, err := excelize.ColumnNumberToName(w.maxCol)
	if err != nil {
		return nil, renderError(fmt.Errorf("xlsx: %w", err))
	}
	if err := f.SetColWidth(sheet, "A", last, 20); err != nil {
		return nil, renderError(fmt.Errorf("xlsx: column width: %w", err))
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:    doc.Title,
		Creator:  "Zenith Seller Flow",
		Created:  doc.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Modified: doc.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Language: doc.Locale,
	}); err != nil {
		return nil, renderError(fmt.Errorf("xlsx: properties: %w", err))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, renderError(fmt.Errorf("xlsx: write: %w", err))
	}
	return buf.Bytes(), nil
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	var err error
	if s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}); err != nil {
		return s, err
	}
	if s.heading, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}}); err != nil {
		return s, err
	}
	if s.column, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"6366F1"}},
	}); err != nil {
		return s, err
	}
	if s.money, err = f.NewStyle(&excelize.Style{NumFmt: numFmtMoney}); err != nil {
		return s, err
	}
	if s.percent, err = f.NewStyle(&excelize.Style{NumFmt: numFmtPercent}); err != nil {
		return s, err
	}
	return s, nil
}

func (w *sheetWriter) section(s Section) error {
	switch s.Kind {
	case SectionHeader:
		if err := w.styled(1, s.Title, w.styles.title); err != nil {
			return err
		}
		for _, line := range s.Lines {
			if err := w.line(line); err != nil {
				return err
			}
		}
		return w.line(s.Subtitle)
	case SectionSummary:
		if err := w.styled(1, s.Title, w.styles.heading); err != nil {
			return err
		}
		for _, pair := range s.Pairs {
			if err := w.set(1, pair.Label); err != nil {
				return err
			}
			if err := w.value(2, pair.Value); err != nil {
				return err
			}
			w.row++
		}
		return nil
	case SectionTable:
		if err := w.styled(1, s.Title, w.styles.heading); err != nil {
			return err
		}
		for i, c := range s.Columns {
			if err := w.set(i+1, c.Label); err != nil {
				return err
			}
			if err := w.style(i+1, w.styles.column); err != nil {
				return err
			}
		}
		w.track(len(s.Columns))
		w.row++
		for _, cells := range s.Rows {
			for i, cell := range cells {
				if err := w.value(i+1, cell); err != nil {
					return err
				}
			}
			w.row++
		}
		return nil
	default:
		if s.Title != "" {
			if err := w.styled(1, s.Title, w.styles.heading); err != nil {
				return err
			}
		}
		for _, line := range s.Lines {
			if err := w.line(line); err != nil {
				return err
			}
		}
		return nil
	}
}

func (w *sheetWriter) track(cols int) {
	if cols > w.maxCol {
		w.maxCol = cols
	}
}

func (w *sheetWriter) cellName(col int) (string, error) {
	return excelize.CoordinatesToCellName(col, w.row)
}

func (w *sheetWriter) set(col int, v any) error {
	name, err := w.cellName(col)
	if err != nil {
		return err
	}
	return w.f.SetCellValue(w.sheet, name, v)
}

func (w *sheetWriter) style(col, style int) error {
	name, err := w.cellName(col)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(w.sheet, name, name, style)
}

func (w *sheetWriter) line(text string) error {
	if err := w.set(1, text); err != nil {
		return err
	}
	w.row++
	return nil
}

func (w *sheetWriter) styled(col int, text string, style int) error {
	if err := w.set(col, text); err != nil {
		return err
	}
	if err := w.style(col, style); err != nil {
		return err
	}
	w.row++
	return nil
}

func (w *sheetWriter) value(col int, c Cell) error {
	switch c.Type {
	case CellInteger:
		return w.set(col, int64(c.Number))
	case CellMoney:
		if err := w.set(col, c.Number); err != nil {
			return err
		}
		return w.style(col, w.styles.money)
	case CellPercent:
		if err := w.set(col, c.Number/100); err != nil {
			return err
		}
		return w.style(col, w.styles.percent)
	default:
		return w.set(col, c.Text)
	}
}

// sheetName trims a title to Excel's 31 character limit and drops the
// characters Excel refuses in sheet names.
func sheetName(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return -1
		}
		return r
	}, title)
	runes := []rune(strings.TrimSpace(cleaned))
	if len(runes) > 31 {
		runes = runes[:31]
	}
	if len(runes) == 0 {
		return "Report"
	}
	return string(runes)
}
