package metrics

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyPrefixes = []string{"R$", "BRL", "$"}

// ParseMoney reads amounts the way they are typed into the dashboard:
// "R$ 459,50", "R$ 1.234,56", "1,234.56" or plain "459.50". When both
// separators appear the rightmost one is the decimal separator; a lone
// separator followed by exactly three digits is treated as grouping.
// Grouped digits must come in threes. Signs and exponents are rejected.
func ParseMoney(raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	for _, prefix := range currencyPrefixes {
		if strings.HasPrefix(strings.ToUpper(value), prefix) {
			value = strings.TrimSpace(value[len(prefix):])
			break
		}
	}
	value = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00a0' {
			return -1
		}
		return r
	}, value)
	if value == "" {
		return 0, &ValidationError{Field: "amount", Value: raw, Reason: "value is empty"}
	}
	if strings.HasPrefix(value, "-") {
		return 0, &ValidationError{Field: "amount", Value: raw, Reason: "cannot be negative"}
	}
	if strings.IndexFunc(value, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != ','
	}) >= 0 {
		return 0, &ValidationError{Field: "amount", Value: raw, Reason: "not a number"}
	}

	normalized, ok := normalizeSeparators(value)
	if !ok {
		return 0, &ValidationError{Field: "amount", Value: raw, Reason: "malformed digit grouping"}
	}
	parsed, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, &ValidationError{Field: "amount", Value: raw, Reason: "not a number"}
	}
	return parsed.InexactFloat64(), nil
}

// normalizeSeparators rewrites value as a plain decimal with a dot
// separator. It reports false when the grouping is malformed.
func normalizeSeparators(value string) (string, bool) {
	lastDot := strings.LastIndex(value, ".")
	lastComma := strings.LastIndex(value, ",")

	var decimalSep, groupSep string
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			decimalSep, groupSep = ",", "."
		} else {
			decimalSep, groupSep = ".", ","
		}
	case lastComma >= 0:
		decimalSep, groupSep = loneSeparator(value, ",", lastComma)
	case lastDot >= 0:
		decimalSep, groupSep = loneSeparator(value, ".", lastDot)
	default:
		return value, true
	}

	whole, frac := value, ""
	if decimalSep != "" {
		i := strings.LastIndex(value, decimalSep)
		whole, frac = value[:i], value[i+1:]
		if whole == "" || frac == "" || strings.ContainsAny(frac, ".,") {
			return "", false
		}
	}
	if groupSep != "" && strings.Contains(whole, groupSep) {
		groups := strings.Split(whole, groupSep)
		if len(groups[0]) == 0 || len(groups[0]) > 3 {
			return "", false
		}
		for _, g := range groups[1:] {
			if len(g) != 3 {
				return "", false
			}
		}
		whole = strings.Join(groups, "")
	}
	if strings.ContainsAny(whole, ".,") {
		return "", false
	}
	if frac == "" {
		return whole, true
	}
	return whole + "." + frac, true
}

// loneSeparator decides what a single kind of separator means. It is a
// decimal separator only when it appears once and is not followed by a
// group of exactly three digits, or when the integer part is a bare zero.
func loneSeparator(value, sep string, last int) (decimalSep, groupSep string) {
	digitsAfter := len(value) - last - 1
	if strings.Count(value, sep) == 1 && (digitsAfter != 3 || value[:last] == "0") {
		return sep, ""
	}
	return "", sep
}

// Round2 rounds half away from zero to two decimal places.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}
