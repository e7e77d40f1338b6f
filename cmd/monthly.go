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

type monthlyCmd struct {
	journal string
	year    int
	months  int
	end     string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display a monthly revenue and expense report" }
func (*monthlyCmd) Usage() string {
	return `glb monthly [-j <journal>] [-year <year>] [-n <months>] [-d <date>]

  Displays posted revenue and expense activity bucketed by calendar month.
  By default the report covers the 12 months ending on today's month; -year
  selects a calendar year instead.

Usage Examples:
# The last 12 months.
$ glb monthly

# Calendar year 2025.
$ glb monthly -year 2025

`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.journal, "j", "", "Journal to report on. Uses the only journal by default.")
	f.IntVar(&c.year, "year", 0, "Report on a full calendar year")
	f.IntVar(&c.months, "n", 12, "Number of trailing months to report")
	f.StringVar(&c.end, "d", "", "End date for the trailing report (defaults to today)")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	months, err := c.reportMonths()
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

	report, diags := ledger.Rollup(reg, journal, months)
	printMarkdown(renderer.MonthlyMarkdown(report))
	if md := renderer.DiagnosticsMarkdown(diags); md != "" {
		fmt.Fprint(os.Stderr, md)
	}
	return subcommands.ExitSuccess
}

func (c *monthlyCmd) reportMonths() ([]date.Month, error) {
	if c.year != 0 {
		return date.MonthsOfYear(c.year), nil
	}
	if c.months <= 0 {
		return nil, fmt.Errorf("-n must be positive, got %d", c.months)
	}
	end := date.Today()
	if c.end != "" {
		var err error
		if end, err = date.Parse(c.end); err != nil {
			return nil, fmt.Errorf("invalid -d date: %w", err)
		}
	}
	return date.TrailingMonths(c.months, end), nil
}
