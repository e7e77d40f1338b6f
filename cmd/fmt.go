package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openbookkeeping/ledger"
)

type fmtCmd struct {
	journal string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats journal files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `glb fmt [-j <journal>]

  Validates and formats journal files. This command reads all entries,
  validates them against the chart of accounts, sorts them by date, and
  writes them back in a canonical JSONL format.
  By default, it formats all journals in-place. Use -j to specify one.

Usage Examples:
# Formats every journal under the books path.
$ glb fmt

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.journal, "j", "", "Journal to format. Formats all by default.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reg, err := LoadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	journals, err := ledger.FindJournals(BooksPath(), c.journal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load journals: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(journals) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no journals found to format.\n")
		return subcommands.ExitSuccess
	}

	status := subcommands.ExitSuccess
	for _, journal := range journals {
		fmt.Fprintf(os.Stderr, "Formatting journal %q...\n", journal.Name())

		invalid := 0
		for i, entry := range journal.Entries() {
			if err := entry.Validate(reg); err != nil {
				fmt.Fprintf(os.Stderr, "  entry %d (%s): %v\n", i, entry.ID, err)
				invalid++
			}
		}
		if invalid > 0 {
			fmt.Fprintf(os.Stderr, "Error: journal %q has %d invalid entries, not rewriting it.\n", journal.Name(), invalid)
			status = subcommands.ExitFailure
			continue
		}

		if err := ledger.SaveJournal(BooksPath(), journal); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving formatted journal %q: %v\n", journal.Name(), err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintf(os.Stderr, "Finished formatting journal %q.\n", journal.Name())
	}
	return status
}
