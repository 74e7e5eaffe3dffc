package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFormatting(t *testing.T) {
	en := Resolve(English)
	pt := Resolve(BrazilianPortuguese)

	assert.Equal(t, "R$ 1,234.56", en.Money(1234.56))
	assert.Equal(t, "R$ 1.234,56", pt.Money(1234.56))
	assert.Equal(t, "R$ 0.00", en.Money(0))
	assert.Equal(t, "R$ 459,50", pt.Money(459.5))
	assert.Equal(t, "R$ 382,92", pt.Money(459.5/1.2))
}

func TestPercentAndInteger(t *testing.T) {
	en := Resolve(English)
	pt := Resolve(BrazilianPortuguese)

	assert.Equal(t, "53.3%", en.Percent(53.302))
	assert.Equal(t, "53,3%", pt.Percent(53.302))
	assert.Equal(t, "12,000", en.Integer(12000))
	assert.Equal(t, "12.000", pt.Integer(12000))
}

func TestLookupRejectsUnknown(t *testing.T) {
	_, err := Lookup("fr")
	require.Error(t, err)
	var unsupported *UnsupportedError
	assert.ErrorAs(t, err, &unsupported)

	assert.Equal(t, English, Resolve("fr").Code)
}

func TestLabelsDifferPerLocale(t *testing.T) {
	en := Resolve(English)
	pt := Resolve(BrazilianPortuguese)

	assert.Equal(t, "Page 2 of 5", en.PageOf(2, 5))
	assert.Equal(t, "Página 2 de 5", pt.PageOf(2, 5))
	assert.Equal(t, "Delivered", en.Status("delivered"))
	assert.Equal(t, "Entregue", pt.Status("delivered"))
	assert.Equal(t, "mystery", pt.Status("mystery"))
	assert.Equal(t, "Últimos 7 dias", pt.DateWindow("last7Days"))
	assert.Equal(t, "All", en.FilterValue(""))
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, time.March, 15, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-15 14:05", Resolve(English).Timestamp(ts))
	assert.Equal(t, "15/03/2024 14:05", Resolve(BrazilianPortuguese).Timestamp(ts))
}
