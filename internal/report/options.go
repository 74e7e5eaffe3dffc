package report

import (
	"math"
	"time"

	"sellerflow/internal/locale"
	"sellerflow/internal/metrics"
)

const DefaultMaxRecords = 10000

type PageSize struct {
	Width  float64
	Height float64
}

var A4 = PageSize{Width: 210, Height: 297}

type Options struct {
	Locale      string
	GeneratedAt time.Time
	PageSize    PageSize
	MaxRecords  int
}

type resolved struct {
	catalog     *locale.Catalog
	generatedAt time.Time
	size        PageSize
	maxRecords  int
}

func (o Options) resolve() (resolved, error) {
	catalog, err := locale.Lookup(o.Locale)
	if err != nil {
		return resolved{}, &metrics.ValidationError{Field: "locale", Value: o.Locale, Reason: err.Error()}
	}
	if o.GeneratedAt.IsZero() {
		return resolved{}, &metrics.ValidationError{Field: "generated_at", Value: o.GeneratedAt, Reason: "is required"}
	}

	size := o.PageSize
	if size == (PageSize{}) {
		size = A4
	}
	if !finite(size.Width) || !finite(size.Height) {
		return resolved{}, &metrics.ValidationError{Field: "page_size", Value: size, Reason: "must be a finite size"}
	}
	if size.Width < 2*marginX+60 || size.Height < bannerHeight+MinSectionHeight(SectionSummary)+marginBottom+marginTop {
		return resolved{}, &metrics.ValidationError{Field: "page_size", Value: size, Reason: "page is too small for the layout"}
	}

	limit := o.MaxRecords
	if limit <= 0 {
		limit = DefaultMaxRecords
	}
	return resolved{catalog: catalog, generatedAt: o.GeneratedAt, size: size, maxRecords: limit}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (r resolved) checkSize(count int) error {
	if count > r.maxRecords {
		return &DocumentTooLargeError{Count: count, Max: r.maxRecords}
	}
	return nil
}
