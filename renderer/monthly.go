package renderer

import (
	"fmt"
	"strings"

	"github.com/openbookkeeping/ledger"
)

// MonthlyMarkdown renders a monthly revenue/expense rollup as a markdown table.
func MonthlyMarkdown(r *ledger.MonthlyReport) string {
	var b strings.Builder

	if n := len(r.Buckets); n > 0 {
		fmt.Fprintf(&b, "# Monthly Revenue and Expense %s to %s\n\n",
			r.Buckets[0].Month.Label(), r.Buckets[n-1].Month.Label())
	} else {
		fmt.Fprintf(&b, "# Monthly Revenue and Expense\n\n")
	}

	fmt.Fprintf(&b, "| Month | Revenue | Expense | Net |\n")
	fmt.Fprintf(&b, "|:--|--:|--:|--:|\n")
	for _, bucket := range r.Buckets {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			bucket.Month.Label(), bucket.Revenue, bucket.Expense, bucket.Net().SignedString())
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | %s |\n",
		r.TotalRevenue(), r.TotalExpense(),
		r.TotalRevenue().Sub(r.TotalExpense()).SignedString())

	return b.String()
}
