package ledger

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/expense-tracker/internal/models"
)

// numericPrefix matches the longest leading real number, the same prefix a
// browser's parseFloat would consume.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount reads a real number from free text. Leading whitespace and any
// trailing garbage are ignored ("12abc" is 12). ok is false when no number
// could be read at all, or when it overflows a float64 ("1e400").
func ParseAmount(s string) (d decimal.Decimal, ok bool) {
	m := numericPrefix.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if m == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	return models.FitAmount(d)
}

// ParseOrZero is ParseAmount with the zero fallback applied.
func ParseOrZero(s string) decimal.Decimal {
	d, _ := ParseAmount(s)
	return d
}
