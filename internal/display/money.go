// Package display formats ledger values for people: currency strings for the
// web page and a markdown report for the terminal.
package display

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money formats decimal amounts in one currency.
type Money struct {
	cur *money.Currency
}

// NewMoney falls back to INR for unknown currency codes.
func NewMoney(code string) Money {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(money.INR)
	}
	return Money{cur: cur}
}

func (m Money) Code() string { return m.cur.Code }

// Format rounds to the currency's minor unit.
func (m Money) Format(d decimal.Decimal) string {
	frac := int32(m.cur.Fraction)
	minor := d.Shift(frac).Round(0)
	if !minor.BigInt().IsInt64() {
		return m.layout(d.Abs().StringFixed(frac), d.IsNegative())
	}
	return m.cur.Formatter().Format(minor.IntPart())
}

// Exact keeps every digit of d, padding to at least the minor unit, so a
// recorded 0.001 never shows as 0.00.
func (m Money) Exact(d decimal.Decimal) string {
	_, digits, _ := strings.Cut(d.String(), ".")
	if len(digits) <= m.cur.Fraction {
		return m.Format(d)
	}
	return m.layout(d.Abs().StringFixed(int32(len(digits))), d.IsNegative())
}

// Signed prefixes credits with "+"; debits already carry "-".
func (m Money) Signed(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + m.Exact(d)
	}
	return m.Exact(d)
}

// layout renders an unsigned fixed-point string with the currency's
// separators and template, the way go-money's Formatter does.
func (m Money) layout(fixed string, negative bool) string {
	whole, frac, _ := strings.Cut(fixed, ".")
	amount := group(whole, m.cur.Thousand)
	if frac != "" {
		amount += m.cur.Decimal + frac
	}
	out := strings.Replace(m.cur.Template, "1", amount, 1)
	out = strings.Replace(out, "$", m.cur.Grapheme, 1)
	if negative {
		out = "-" + out
	}
	return out
}

func group(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
