package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/baharkarakas/expense-tracker/internal/api/handlers"
	"github.com/baharkarakas/expense-tracker/internal/config"
	"github.com/baharkarakas/expense-tracker/internal/display"
	"github.com/baharkarakas/expense-tracker/internal/models"
)

var commands = []subcommands.Command{
	&showCmd{},
	&setInitialCmd{},
	&txCmd{kind: models.KindAdd},
	&txCmd{kind: models.KindSpend},
	&clearCmd{},
}

// args unpacks what main passes to Execute.
func args(a []interface{}) (handlers.Ledger, config.Config) {
	return a[0].(handlers.Ledger), a[1].(config.Config)
}

// printMarkdown renders md for the terminal, falling back to the raw text.
func printMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprint(w, md)
}

func show(w io.Writer, l handlers.Ledger, cfg config.Config, raw bool) {
	var b strings.Builder
	display.WriteMarkdown(&b, l.Snapshot(), display.NewMoney(cfg.Currency))
	if raw {
		fmt.Fprint(w, b.String())
		return
	}
	printMarkdown(w, b.String())
}

// --- showCmd ---

type showCmd struct {
	raw bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display balances and the transaction history" }
func (*showCmd) Usage() string {
	return `ledgerctl show [-raw]

  Prints the cash, online and total balances followed by every recorded
  transaction, oldest first.
`
}
func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print plain markdown instead of styled terminal output.")
}

func (c *showCmd) Execute(_ context.Context, _ *flag.FlagSet, a ...interface{}) subcommands.ExitStatus {
	l, cfg := args(a)
	show(os.Stdout, l, cfg, c.raw)
	return subcommands.ExitSuccess
}

// --- setInitialCmd ---

type setInitialCmd struct{}

func (*setInitialCmd) Name() string     { return "set-initial" }
func (*setInitialCmd) Synopsis() string { return "reset the ledger to a starting cash amount" }
func (*setInitialCmd) Usage() string {
	return `ledgerctl set-initial [--] <amount>

  Sets cash to <amount>, online to 0 and discards all transactions.
  An amount that is not a number counts as 0. Put -- before a negative
  amount so it is not read as a flag: ledgerctl set-initial -- -500
`
}
func (*setInitialCmd) SetFlags(*flag.FlagSet) {}

func (*setInitialCmd) Execute(ctx context.Context, f *flag.FlagSet, a ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one amount.")
		return subcommands.ExitUsageError
	}
	l, cfg := args(a)
	if _, err := l.SetInitialAmount(ctx, f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	show(os.Stdout, l, cfg, true)
	return subcommands.ExitSuccess
}

// --- txCmd ---

// txCmd serves both "add" and "spend".
type txCmd struct {
	kind   models.Kind
	method string
}

func (c *txCmd) Name() string { return string(c.kind) }
func (c *txCmd) Synopsis() string {
	if c.kind == models.KindAdd {
		return "credit an amount to cash or online"
	}
	return "debit an amount from cash or online"
}
func (c *txCmd) Usage() string {
	return fmt.Sprintf(`ledgerctl %s [-method cash|online] <reason> <amount>

  Records a transaction. Nothing happens when the reason is empty or the
  amount is zero or not a number.
`, c.kind)
}
func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.method, "method", "cash", "The account to use (cash, online).")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, a ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <reason> <amount>.")
		return subcommands.ExitUsageError
	}
	method, err := models.ParseMethod(c.method)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	l, _ := args(a)
	res, err := l.AddTransaction(ctx, c.kind, method, f.Arg(0), f.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !res.Recorded {
		fmt.Fprintln(os.Stderr, "Nothing recorded: reason must be set and amount must be a non-zero number.")
		return subcommands.ExitFailure
	}
	tx := res.Transaction
	fmt.Printf("%s  %s  %s  %s\n", tx.Date, tx.Method, tx.Amount, tx.Reason)
	return subcommands.ExitSuccess
}

// --- clearCmd ---

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "erase all stored data" }
func (*clearCmd) Usage() string {
	return `ledgerctl clear -y

  Wipes the whole store. There is no undo.
`
}
func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Confirm the wipe.")
}

func (c *clearCmd) Execute(ctx context.Context, _ *flag.FlagSet, a ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Error: refusing to clear without -y.")
		return subcommands.ExitUsageError
	}
	l, _ := args(a)
	if err := l.ClearAllData(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("All data cleared.")
	return subcommands.ExitSuccess
}
