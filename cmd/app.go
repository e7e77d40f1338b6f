// Package cmd implements the CLI application to manage a general ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/openbookkeeping/ledger"
)

// Commands lists every subcommand of the application.
// A main package registers them on a Commander and Executes the selected one.
var Commands = []subcommands.Command{
	&accountsCmd{},
	&balanceCmd{},
	&monthlyCmd{},
	&postCmd{},
	&fmtCmd{},
	&pullCmd{},
	&topicCmd{},
	&AssistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var booksPath = flag.String("books-path", "books", "Path to the folder containing journal files (JSONL format)")
var accountsFile = flag.String("accounts-file", "accounts.jsonl", "Path to the chart of accounts file (JSONL format)")

// BooksPath returns the app folder holding the journal files.
func BooksPath() string { return *booksPath }

// LoadRegistry loads the chart of accounts from the app accounts file.
func LoadRegistry() (reg *ledger.Registry, err error) {
	reg, err = ledger.LoadRegistry(*accountsFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, accounts file does not exist, using an empty chart of accounts instead")
		reg, err = ledger.NewRegistry()
	}
	return
}

// AppendEntry appends a single journal entry into the named journal file.
func AppendEntry(journalName string, entry ledger.JournalEntry) subcommands.ExitStatus {
	filename := filepath.Join(*booksPath, journalName+".jsonl")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating books folder for %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := ledger.EncodeEntry(f, entry); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to journal file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended entry %s to %s\n", entry.ID, filename)
	return subcommands.ExitSuccess
}
