package report

import (
	"fmt"
	"strings"

	"sellerflow/internal/metrics"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ParseFormat accepts "pdf" or "xlsx"; empty defaults to pdf.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", &metrics.ValidationError{Field: "format", Value: raw, Reason: "must be pdf or xlsx"}
	}
}

type File struct {
	Name        string
	ContentType string
	Data        []byte
}

func Export(doc *Document, format Format) (File, error) {
	var (
		data        []byte
		err         error
		contentType string
	)
	switch format {
	case FormatPDF:
		data, err = RenderPDF(doc)
		contentType = contentTypePDF
	case FormatXLSX:
		data, err = RenderXLSX(doc)
		contentType = contentTypeXLSX
	default:
		return File{}, &metrics.ValidationError{Field: "format", Value: format, Reason: "must be pdf or xlsx"}
	}
	if err != nil {
		return File{}, err
	}
	return File{Name: Filename(doc, format), ContentType: contentType, Data: data}, nil
}

func Filename(doc *Document, format Format) string {
	var base string
	switch doc.Kind {
	case KindInvoice:
		base = "Invoice_" + sanitize(doc.Reference)
	case KindPerformance:
		base = "Performance_Report_" + doc.GeneratedAt.Format(dateLayout)
	default:
		base = "Sales_Report_" + doc.GeneratedAt.Format(dateLayout)
	}
	return fmt.Sprintf("%s.%s", base, format)
}

func sanitize(id string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, id)
	cleaned = strings.Trim(cleaned, "_.")
	if cleaned == "" {
		return "document"
	}
	return cleaned
}
