package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openbookkeeping/ledger"
)

type pullCmd struct {
	journal string
	url     string
	path    string
}

func (*pullCmd) Name() string     { return "pull" }
func (*pullCmd) Synopsis() string { return "fetch journal entries from a remote feed" }
func (*pullCmd) Usage() string {
	return `glb pull -url <url> [-path <jsonpath>] [-j <journal>]

  Fetches journal entries from a remote JSON feed and appends the new ones
  to the journal. Entries whose id is already present are skipped. Responses
  are cached on disk for the day, so repeated pulls are cheap.

Usage Examples:
# Pull today's export from the portal.
$ glb pull -url https://portal.example.com/api/ledger/export

`
}

func (c *pullCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.journal, "j", "", "Journal to append to. Uses the only journal by default.")
	f.StringVar(&c.url, "url", "", "URL of the JSON feed to pull entries from")
	f.StringVar(&c.path, "path", ledger.DefaultEntriesPath, "JSONPath expression locating the entries in the response")
}

func (c *pullCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.url == "" {
		fmt.Fprintf(os.Stderr, "Error: -url is required\n")
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

	feed := ledger.NewFeed(c.url)
	feed.EntriesPath = c.path
	entries, err := feed.FetchEntries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch entries: %v\n", err)
		return subcommands.ExitFailure
	}

	known := make(map[string]bool)
	for _, entry := range journal.Entries() {
		known[entry.ID] = true
	}

	var added int
	for _, entry := range entries {
		if known[entry.ID] {
			continue
		}
		if err := entry.Validate(reg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: fetched entry %q is invalid: %v\n", entry.ID, err)
			return subcommands.ExitFailure
		}
		journal.Append(entry)
		added++
	}
	if added == 0 {
		fmt.Println("Journal is already up to date.")
		return subcommands.ExitSuccess
	}

	if err := ledger.SaveJournal(BooksPath(), journal); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving journal %q: %v\n", journal.Name(), err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully pulled %d new entries into journal %q.\n", added, journal.Name())
	return subcommands.ExitSuccess
}
