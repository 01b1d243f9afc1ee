package models

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	maxAmount = decimal.NewFromFloat(math.MaxFloat64)
	// anything below half the smallest denormal rounds to zero
	minAmount = decimal.RequireFromString("2.4703282292062328e-324")
)

// FitAmount bounds an amount to what a float64 can hold. Magnitudes past
// math.MaxFloat64 report ok == false; magnitudes too small to represent
// become zero.
func FitAmount(d decimal.Decimal) (decimal.Decimal, bool) {
	coef := d.Coefficient()
	if coef.Sign() == 0 {
		return decimal.Zero, true
	}
	// order of magnitude without expanding the exponent
	digits := len(strings.TrimPrefix(coef.String(), "-"))
	mag := int64(d.Exponent()) + int64(digits) - 1
	switch {
	case mag > 308:
		return decimal.Zero, false
	case mag == 308 && d.Abs().GreaterThan(maxAmount):
		return decimal.Zero, false
	case mag < -324:
		return decimal.Zero, true
	case mag == -324 && d.Abs().LessThan(minAmount):
		return decimal.Zero, true
	}
	return d, true
}
