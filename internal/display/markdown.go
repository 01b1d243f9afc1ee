package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/baharkarakas/expense-tracker/internal/models"
)

// WriteMarkdown renders balances and the chronological ledger as markdown.
func WriteMarkdown(w io.Writer, snap models.Snapshot, m Money) {
	fmt.Fprintln(w, "# Expense Tracker")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Account | Balance |")
	fmt.Fprintln(w, "|---|---:|")
	fmt.Fprintf(w, "| Cash | %s |\n", m.Format(snap.Cash))
	fmt.Fprintf(w, "| Online | %s |\n", m.Format(snap.Online))
	fmt.Fprintf(w, "| **Total** | **%s** |\n", m.Format(snap.Total()))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Transactions")
	fmt.Fprintln(w)
	if len(snap.Transactions) == 0 {
		fmt.Fprintln(w, "_No transactions yet._")
		return
	}
	fmt.Fprintln(w, "| # | Reason | Amount | Method | Date & Time |")
	fmt.Fprintln(w, "|---:|---|---:|---|---|")
	for i, tx := range snap.Transactions {
		fmt.Fprintf(w, "| %d | %s | %s | %s | %s |\n",
			i+1, cell(tx.Reason), m.Signed(tx.Amount), tx.Method, cell(tx.Date))
	}
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", "")

func cell(s string) string { return cellEscaper.Replace(s) }
