// Package locale resolves labels and number formatting for the two
// supported display locales.
package locale

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	English             = "en"
	BrazilianPortuguese = "pt-BR"
)

var Supported = []string{English, BrazilianPortuguese}

const currencySymbol = "R$"

type Catalog struct {
	Code   string
	Labels Labels

	tag             language.Tag
	timestampLayout string
}

var catalogs = map[string]*Catalog{
	English: {
		Code:            English,
		Labels:          english,
		tag:             language.AmericanEnglish,
		timestampLayout: "2006-01-02 15:04",
	},
	BrazilianPortuguese: {
		Code:            BrazilianPortuguese,
		Labels:          portuguese,
		tag:             language.BrazilianPortuguese,
		timestampLayout: "02/01/2006 15:04",
	},
}

type UnsupportedError struct {
	Locale string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported locale %q (want one of %v)", e.Locale, Supported)
}

// Lookup returns the catalog for an exact locale code.
func Lookup(code string) (*Catalog, error) {
	c, ok := catalogs[code]
	if !ok {
		return nil, &UnsupportedError{Locale: code}
	}
	return c, nil
}

// Resolve is Lookup with an English fallback, for presentation paths
// where a bad locale should not fail the request.
func Resolve(code string) *Catalog {
	if c, ok := catalogs[code]; ok {
		return c
	}
	return catalogs[English]
}

func (c *Catalog) Number(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	rounded := decimal.NewFromFloat(v).Round(int32(decimals)).InexactFloat64()
	p := message.NewPrinter(c.tag)
	return p.Sprint(number.Decimal(rounded,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

func (c *Catalog) Integer(n int) string {
	return message.NewPrinter(c.tag).Sprint(number.Decimal(n))
}

func (c *Catalog) Money(v float64) string {
	return currencySymbol + " " + c.Number(v, 2)
}

func (c *Catalog) Percent(v float64) string {
	return c.Number(v, 1) + "%"
}

func (c *Catalog) Timestamp(t time.Time) string {
	return t.Format(c.timestampLayout)
}

func (c *Catalog) PageOf(page, total int) string {
	return fmt.Sprintf(c.Labels.PageOf, page, total)
}

// Status translates an entity status code; unknown codes pass through.
func (c *Catalog) Status(code string) string {
	if label, ok := c.Labels.statuses[code]; ok {
		return label
	}
	return code
}

// DateWindow translates an order date-window filter value.
func (c *Catalog) DateWindow(window string) string {
	switch window {
	case "", "all":
		return c.Labels.All
	case "last7Days":
		return c.Labels.Last7Days
	case "last30Days":
		return c.Labels.Last30Days
	case "thisMonth":
		return c.Labels.ThisMonth
	default:
		return window
	}
}

// FilterValue renders an optional filter, with "" and "all" meaning no filter.
func (c *Catalog) FilterValue(value string) string {
	if value == "" || value == "all" {
		return c.Labels.All
	}
	return c.Status(value)
}
