package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/openbookkeeping/ledger"
)

// BalanceMarkdown renders a ledger snapshot as a markdown trial-balance table.
func BalanceMarkdown(s *ledger.Snapshot) string {
	var b strings.Builder

	if s.Window.IsZero() {
		fmt.Fprintf(&b, "# Ledger Balance\n\n")
	} else {
		fmt.Fprintf(&b, "# Ledger Balance %s\n\n", s.Window)
	}

	fmt.Fprintf(&b, "| Code | Account | Type | Debit | Credit | Balance |\n")
	fmt.Fprintf(&b, "|:--|:--|:--|--:|--:|--:|\n")
	for _, row := range s.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			row.AccountCode, row.AccountName, row.AccountType,
			row.Debit, row.Credit, row.Balance)
	}
	fmt.Fprintf(&b, "| | **Total** | | **%s** | **%s** | |\n", s.TotalDebit(), s.TotalCredit())

	ConditionalBlock(&b, func(w io.Writer) bool {
		if s.TotalDebit().Equal(s.TotalCredit()) {
			return false
		}
		fmt.Fprintf(w, "\n**Warning**: total debits and credits differ: the journal window is unbalanced.\n")
		return true
	})

	return b.String()
}

// DiagnosticsMarkdown renders the skipped-item diagnostics of a fold, or ""
// when there is nothing to report.
func DiagnosticsMarkdown(diags []ledger.Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## Skipped Items\n\n")
	for _, d := range diags {
		fmt.Fprintf(&b, "- %s\n", d)
	}
	return b.String()
}
