package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFitAmount(t *testing.T) {
	testCases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"0", "0", true},
		{"-12.5", "-12.5", true},
		{"1.7976931348623157e308", "1.7976931348623157e308", true},
		{"1.7976931348623159e308", "0", false},
		{"-1e309", "0", false},
		{"1e999999999", "0", false},
		{"5e-324", "5e-324", true},
		{"-1e-325", "0", true},
		{"1e-999999999", "0", true},
	}
	for _, tc := range testCases {
		got, ok := FitAmount(decimal.RequireFromString(tc.in))
		if ok != tc.wantOK || !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("FitAmount(%s) = %s, %v, want %s, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestTransaction_UnmarshalRejectsOverflow(t *testing.T) {
	var tx Transaction
	if err := json.Unmarshal([]byte(`{"reason":"x","amount":1e999999999,"method":"Cash","date":"d"}`), &tx); err == nil {
		t.Errorf("Unmarshal() accepted amount with exponent %d", tx.Amount.Exponent())
	}
	if err := json.Unmarshal([]byte(`{"reason":"x","amount":-2.5,"method":"Online","date":"d"}`), &tx); err != nil {
		t.Fatal(err)
	}
	if tx.Amount.String() != "-2.5" || tx.Method != MethodOnline {
		t.Errorf("tx = %+v", tx)
	}
}
