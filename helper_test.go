package ledger

import (
	"testing"

	"github.com/openbookkeeping/ledger/date"
	"github.com/shopspring/decimal"
)

// testRegistry builds a small chart of accounts covering all five types.
func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(
		Account{ID: "cash", Code: "1010", Name: "Cash", Type: Asset, Active: true},
		Account{ID: "payable", Code: "2010", Name: "Accounts Payable", Type: Liability, Active: true},
		Account{ID: "capital", Code: "3010", Name: "Capital", Type: Equity, Active: true},
		Account{ID: "sales", Code: "4010", Name: "Event Sales", Type: Revenue, Active: true},
		Account{ID: "rent", Code: "5010", Name: "Office Rent", Type: Expense, Active: true},
	)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return reg
}

// entry builds a posted journal entry from (account, debit, credit) triples.
func entry(id, day string, status EntryStatus, lines ...itemSpec) JournalEntry {
	e := JournalEntry{ID: id, Date: date.MustParse(day), Status: status}
	for i, l := range lines {
		e.Items = append(e.Items, JournalItem{
			ID:      e.ID + "-" + string(rune('a'+i)),
			Account: l.account,
			Debit:   decimal.NewFromFloat(l.debit),
			Credit:  decimal.NewFromFloat(l.credit),
		})
	}
	return e
}

type itemSpec struct {
	account       string
	debit, credit float64
}
