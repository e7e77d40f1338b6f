package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openbookkeeping/ledger"
	"github.com/openbookkeeping/ledger/date"
	"github.com/openbookkeeping/ledger/renderer"
)

type balanceCmd struct {
	journal string
	from    string
	to      string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display a trial balance of the ledger" }
func (*balanceCmd) Usage() string {
	return `glb balance [-j <journal>] [-from <date>] [-to <date>]

  Folds the posted entries of a journal into a trial balance: one row per
  account with its total debits, total credits and balance. Both window
  boundaries are inclusive; an omitted boundary leaves that side unbounded.

Usage Examples:
# Balance over the whole journal.
$ glb balance

# Balance for the first quarter.
$ glb balance -from 2025-01-01 -to 2025-03-31

`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.journal, "j", "", "Journal to balance. Uses the only journal by default.")
	f.StringVar(&c.from, "from", "", "Start date of the window (inclusive)")
	f.StringVar(&c.to, "to", "", "End date of the window (inclusive)")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := parseWindow(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	reg, err := LoadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	journal, err := ledger.FindJournal(BooksPath(), c.journal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load journal: %v\n", err)
		return subcommands.ExitFailure
	}

	snapshot, diags := ledger.Aggregate(reg, journal, window)
	printMarkdown(renderer.BalanceMarkdown(snapshot))
	if md := renderer.DiagnosticsMarkdown(diags); md != "" {
		fmt.Fprint(os.Stderr, md)
	}
	return subcommands.ExitSuccess
}

// parseWindow builds an inclusive date range from optional boundary flags.
func parseWindow(from, to string) (date.Range, error) {
	var window date.Range
	var err error
	if from != "" {
		if window.From, err = date.Parse(from); err != nil {
			return date.Range{}, fmt.Errorf("invalid -from date: %w", err)
		}
	}
	if to != "" {
		if window.To, err = date.Parse(to); err != nil {
			return date.Range{}, fmt.Errorf("invalid -to date: %w", err)
		}
	}
	if !window.From.IsZero() && !window.To.IsZero() && window.To.Before(window.From) {
		return date.Range{}, fmt.Errorf("window ends (%s) before it starts (%s)", window.To, window.From)
	}
	return window, nil
}
