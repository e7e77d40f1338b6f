package renderer

import (
	"fmt"
	"strings"

	"github.com/openbookkeeping/ledger"
)

// AccountsMarkdown renders the chart of accounts as a markdown table.
// Inactive accounts are included only when all is set.
func AccountsMarkdown(reg *ledger.Registry, all bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Chart of Accounts\n\n")
	fmt.Fprintf(&b, "| Code | Account | Type | Active |\n")
	fmt.Fprintf(&b, "|:--|:--|:--|:--|\n")

	accounts := reg.Active()
	if all {
		accounts = reg.Accounts()
	}
	for a := range accounts {
		active := "yes"
		if !a.Active {
			active = "no"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", a.Code, a.Name, a.Type, active)
	}
	return b.String()
}
