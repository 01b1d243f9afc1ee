package display

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/expense-tracker/internal/models"
)

func TestMoney_Format(t *testing.T) {
	inr := NewMoney("INR")
	testCases := []struct {
		in   string
		want string
	}{
		{"1500", "₹1,500.00"},
		{"0", "₹0.00"},
		{"-200", "-₹200.00"},
		{"12.345", "₹12.35"},
	}
	for _, tc := range testCases {
		if got := inr.Format(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Errorf("Format(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := inr.Signed(decimal.RequireFromString("5")); got != "+₹5.00" {
		t.Errorf("Signed(5) = %q", got)
	}
}

func TestMoney_FormatBeyondInt64(t *testing.T) {
	inr := NewMoney("INR")
	testCases := []struct {
		in   string
		want string
	}{
		{"1e17", "₹100,000,000,000,000,000.00"},
		{"-1e20", "-₹100,000,000,000,000,000,000.00"},
		{"123456789012345678.125", "₹123,456,789,012,345,678.13"},
		{"92233720368547758.07", "₹92,233,720,368,547,758.07"},
	}
	for _, tc := range testCases {
		if got := inr.Format(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Errorf("Format(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMoney_Exact(t *testing.T) {
	inr := NewMoney("INR")
	testCases := []struct {
		in   string
		want string
	}{
		{"500", "₹500.00"},
		{"500.000", "₹500.00"},
		{"0.001", "₹0.001"},
		{"-12.345", "-₹12.345"},
		{"1234.5678", "₹1,234.5678"},
		{"1e18", "₹1,000,000,000,000,000,000.00"},
	}
	for _, tc := range testCases {
		if got := inr.Exact(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Errorf("Exact(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := inr.Signed(decimal.RequireFromString("0.001")); got != "+₹0.001" {
		t.Errorf("Signed(0.001) = %q", got)
	}
}

func TestNewMoney_UnknownFallsBack(t *testing.T) {
	if got := NewMoney("XXQ").Code(); got != "INR" {
		t.Errorf("Code() = %q, want INR", got)
	}
}

func TestWriteMarkdown(t *testing.T) {
	snap := models.Snapshot{
		Cash:   decimal.RequireFromString("1500"),
		Online: decimal.RequireFromString("-200"),
		Transactions: []models.Transaction{
			{Reason: "Salary", Amount: decimal.RequireFromString("500"), Method: models.MethodCash, Date: "d1"},
			{Reason: "a|b", Amount: decimal.RequireFromString("-200"), Method: models.MethodOnline, Date: "d2"},
		},
	}
	var b strings.Builder
	WriteMarkdown(&b, snap, NewMoney("INR"))
	out := b.String()

	for _, want := range []string{
		"| **Total** | **₹1,300.00** |",
		"| 1 | Salary | +₹500.00 | Cash | d1 |",
		`| 2 | a\|b | -₹200.00 | Online | d2 |`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestWriteMarkdown_Empty(t *testing.T) {
	var b strings.Builder
	WriteMarkdown(&b, models.Snapshot{}, NewMoney("INR"))
	if !strings.Contains(b.String(), "_No transactions yet._") {
		t.Errorf("unexpected output:\n%s", b.String())
	}
}
