package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openbookkeeping/ledger/renderer"
)

type accountsCmd struct {
	all bool
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "display the chart of accounts" }
func (*accountsCmd) Usage() string {
	return `glb accounts [-all]

  Displays the chart of accounts, sorted by account code.
  By default only active accounts are shown.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Include inactive accounts")
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reg, err := LoadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AccountsMarkdown(reg, c.all))
	return subcommands.ExitSuccess
}
