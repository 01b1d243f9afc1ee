package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Method is the account a transaction is routed to.
type Method string

const (
	MethodCash   Method = "Cash"
	MethodOnline Method = "Online"
)

// Kind tells whether the entered amount is credited or debited.
type Kind string

const (
	KindAdd   Kind = "add"
	KindSpend Kind = "spend"
)

func (m Method) Valid() bool { return m == MethodCash || m == MethodOnline }
func (k Kind) Valid() bool   { return k == KindAdd || k == KindSpend }

// ParseMethod accepts "cash" / "online" in any case.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash":
		return MethodCash, nil
	case "online":
		return MethodOnline, nil
	}
	return "", fmt.Errorf("unknown method %q", s)
}

// ParseKind accepts "add" / "spend" in any case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add":
		return KindAdd, nil
	case "spend":
		return KindSpend, nil
	}
	return "", fmt.Errorf("unknown kind %q", s)
}

// Transaction is immutable once recorded. Amount is signed: positive is a credit.
type Transaction struct {
	Reason string          `json:"reason"`
	Amount decimal.Decimal `json:"amount"`
	Method Method          `json:"method"`
	Date   string          `json:"date"`
}

// wire form keeps amount a JSON number, not a quoted decimal string.
type transactionJSON struct {
	Reason string      `json:"reason"`
	Amount json.Number `json:"amount"`
	Method Method      `json:"method"`
	Date   string      `json:"date"`
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(transactionJSON{
		Reason: t.Reason,
		Amount: json.Number(t.Amount.String()),
		Method: t.Method,
		Date:   t.Date,
	})
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (t *Transaction) UnmarshalJSON(b []byte) error {
	var w transactionJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	amount := decimal.Zero
	if w.Amount != "" {
		d, err := decimal.NewFromString(string(w.Amount))
		if err != nil {
			return fmt.Errorf("transaction amount: %w", err)
		}
		d, ok := FitAmount(d)
		if !ok {
			return fmt.Errorf("transaction amount %s out of range", w.Amount)
		}
		amount = d
	}
	*t = Transaction{Reason: w.Reason, Amount: amount, Method: w.Method, Date: w.Date}
	return nil
}

// IsCredit reports whether the transaction increased a balance (zero counts as credit).
func (t Transaction) IsCredit() bool { return !t.Amount.IsNegative() }
