package ledger

import (
	"fmt"

	"github.com/openbookkeeping/ledger/date"
	"github.com/shopspring/decimal"
)

// LedgerRow is the computed balance line of one account over a window.
type LedgerRow struct {
	AccountID   string
	AccountCode string
	AccountName string
	AccountType AccountType
	Debit       Money
	Credit      Money
	Balance     Money
}

// Snapshot is the per-account balance view of a journal over a date window.
// It is a value owned by the caller: constructed fresh on every call, never
// mutated in place.
type Snapshot struct {
	Window   date.Range
	Currency string
	Rows     []LedgerRow // one per registry account, by code ascending
}

// Row returns the row of the given account id, or false when the account is
// not part of the snapshot's registry.
func (s *Snapshot) Row(accountID string) (LedgerRow, bool) {
	for _, r := range s.Rows {
		if r.AccountID == accountID {
			return r, true
		}
	}
	return LedgerRow{}, false
}

// TotalDebit sums the debit column. On balanced input it equals TotalCredit.
func (s *Snapshot) TotalDebit() Money {
	total := M(decimal.Zero, s.Currency)
	for _, r := range s.Rows {
		total = total.Add(r.Debit)
	}
	return total
}

// TotalCredit sums the credit column.
func (s *Snapshot) TotalCredit() Money {
	total := M(decimal.Zero, s.Currency)
	for _, r := range s.Rows {
		total = total.Add(r.Credit)
	}
	return total
}

// Diagnostic reports a journal item that was skipped during a fold because
// it references an account missing from the registry. Skipping is a
// deliberate leniency towards upstream referential inconsistency; returning
// the skips keeps the data loss observable.
type Diagnostic struct {
	Entry   string // entry id
	Item    string // item id
	Account string // the unknown account id
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("entry %q item %q references unknown account %q", d.Entry, d.Item, d.Account)
}

// Aggregate folds the journal's posted entries inside the window into one
// LedgerRow per registry account and applies the balance rule to each.
//
// Every registry account yields exactly one row, in code-ascending order,
// zero-activity accounts included. Items referencing unknown accounts are
// skipped and reported in the returned diagnostics; they never abort the
// fold. The fold is deterministic and has no side effects.
func Aggregate(reg *Registry, journal *Journal, window date.Range) (*Snapshot, []Diagnostic) {
	type totals struct{ debit, credit decimal.Decimal }
	byAccount := make(map[string]*totals, reg.Len())
	for a := range reg.Accounts() {
		byAccount[a.ID] = &totals{}
	}

	var diags []Diagnostic
	for _, e := range journal.Posted(window) {
		for _, it := range e.Items {
			acc, ok := byAccount[it.Account]
			if !ok {
				diags = append(diags, Diagnostic{Entry: e.ID, Item: it.ID, Account: it.Account})
				continue
			}
			acc.debit = acc.debit.Add(it.Debit)
			acc.credit = acc.credit.Add(it.Credit)
		}
	}

	currency := journal.Currency()
	snapshot := &Snapshot{
		Window:   window,
		Currency: currency,
		Rows:     make([]LedgerRow, 0, reg.Len()),
	}
	for a := range reg.Accounts() {
		t := byAccount[a.ID]
		snapshot.Rows = append(snapshot.Rows, LedgerRow{
			AccountID:   a.ID,
			AccountCode: a.Code,
			AccountName: a.Name,
			AccountType: a.Type,
			Debit:       M(t.debit, currency),
			Credit:      M(t.credit, currency),
			Balance:     M(BalanceOf(a.Type, t.debit, t.credit), currency),
		})
	}
	return snapshot, diags
}
