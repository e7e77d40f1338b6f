package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/openbookkeeping/ledger"
	"github.com/openbookkeeping/ledger/date"
	"github.com/shopspring/decimal"
)

type postCmd struct {
	journal string
	day     string
	memo    string
	status  string
	id      string
}

func (*postCmd) Name() string     { return "post" }
func (*postCmd) Synopsis() string { return "append a journal entry" }
func (*postCmd) Usage() string {
	return `glb post [-j <journal>] [-d <date>] [-m <memo>] [-s <status>] <item>...

  Appends a new entry to the journal. Each item is one debit or credit line
  in the form dr:<account>:<amount> or cr:<account>:<amount>. A posted entry
  must balance: the sum of its debits must equal the sum of its credits.

Usage Examples:
# Record a 1200 cash sale.
$ glb post -d 2025-03-10 -m "cash sale" dr:cash:1200 cr:sales:1200

`
}

func (c *postCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.journal, "j", "", "Journal to append to. Uses the only journal by default.")
	f.StringVar(&c.day, "d", "", "Entry date (defaults to today)")
	f.StringVar(&c.memo, "m", "", "Free-form memo for the entry")
	f.StringVar(&c.status, "s", "posted", "Entry status (draft, posted, cancelled)")
	f.StringVar(&c.id, "id", "", "Entry id (generated from the date by default)")
}

func (c *postCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entry, err := c.buildEntry(f.Args())
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

	if entry.ID == "" {
		entry.ID = fmt.Sprintf("%s-%d", entry.Date, journal.Len()+1)
	}
	for i := range entry.Items {
		entry.Items[i].ID = fmt.Sprintf("%s.%d", entry.ID, i+1)
	}

	if err := entry.Validate(reg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid entry: %v\n", err)
		return subcommands.ExitFailure
	}
	return AppendEntry(journal.Name(), entry)
}

func (c *postCmd) buildEntry(args []string) (ledger.JournalEntry, error) {
	var entry ledger.JournalEntry
	var err error

	entry.Date = date.Today()
	if c.day != "" {
		if entry.Date, err = date.Parse(c.day); err != nil {
			return entry, fmt.Errorf("invalid -d date: %w", err)
		}
	}
	if entry.Status, err = ledger.ParseEntryStatus(c.status); err != nil {
		return entry, err
	}
	entry.ID = c.id
	entry.Memo = c.memo

	if len(args) == 0 {
		return entry, fmt.Errorf("an entry needs at least one item")
	}
	for _, arg := range args {
		item, err := parseItem(arg)
		if err != nil {
			return entry, err
		}
		entry.Items = append(entry.Items, item)
	}
	return entry, nil
}

// parseItem parses one "dr:<account>:<amount>" or "cr:<account>:<amount>" argument.
func parseItem(arg string) (ledger.JournalItem, error) {
	var item ledger.JournalItem
	parts := strings.SplitN(arg, ":", 3)
	if len(parts) != 3 || parts[1] == "" {
		return item, fmt.Errorf("invalid item %q, want dr:<account>:<amount> or cr:<account>:<amount>", arg)
	}
	amount, err := decimal.NewFromString(parts[2])
	if err != nil {
		return item, fmt.Errorf("invalid amount in item %q: %w", arg, err)
	}
	if amount.IsNegative() {
		return item, fmt.Errorf("negative amount in item %q", arg)
	}
	item.Account = parts[1]
	switch parts[0] {
	case "dr":
		item.Debit = amount
	case "cr":
		item.Credit = amount
	default:
		return item, fmt.Errorf("invalid side %q in item %q, want dr or cr", parts[0], arg)
	}
	return item, nil
}
