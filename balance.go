package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BalanceOf maps an account's type and its raw debit/credit totals to a
// signed balance. This is the single authoritative definition of the
// accounting sign convention; every report calls it rather than re-deriving
// the rule at the call site.
//
// Asset and expense accounts carry a debit balance (debit - credit);
// liability, equity and revenue accounts carry a credit balance
// (credit - debit).
func BalanceOf(t AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	switch t {
	case Asset, Expense:
		return debit.Sub(credit)
	case Liability, Equity, Revenue:
		return credit.Sub(debit)
	default:
		panic(fmt.Sprintf("unknown account type %d", t))
	}
}
