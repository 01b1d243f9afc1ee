// Command ledgerctl reads and updates the expense ledger from a terminal,
// against the same store the web server uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/baharkarakas/expense-tracker/internal/app"
	"github.com/baharkarakas/expense-tracker/internal/config"
	"github.com/baharkarakas/expense-tracker/internal/logger"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range commands {
		commander.Register(c, "")
	}
	flag.Parse()

	switch flag.Arg(0) {
	case "", "help", "commands", "flags":
		os.Exit(int(commander.Execute(context.Background())))
	}

	cfg := config.Load()
	log := logger.New(cfg.Env, os.Stderr)
	slog.SetDefault(log)

	ctx := context.Background()
	a, err := app.New(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitFailure))
	}
	status := commander.Execute(ctx, a.Ledger, cfg)
	a.Close()
	os.Exit(int(status))
}
