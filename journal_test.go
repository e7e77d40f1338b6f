package ledger

import (
	"testing"

	"github.com/openbookkeeping/ledger/date"
)

func TestJournal_AppendKeepsChronologicalOrder(t *testing.T) {
	journal := NewJournal()
	journal.Append(
		entry("late", "2024-06-01", Posted,
			itemSpec{account: "cash", debit: 1},
			itemSpec{account: "sales", credit: 1}),
		entry("early", "2024-01-01", Posted,
			itemSpec{account: "cash", debit: 1},
			itemSpec{account: "sales", credit: 1}),
		entry("middle", "2024-03-01", Posted,
			itemSpec{account: "cash", debit: 1},
			itemSpec{account: "sales", credit: 1}),
	)

	var ids []string
	for _, e := range journal.Entries() {
		ids = append(ids, e.ID)
	}
	want := []string{"early", "middle", "late"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("entry order = %v, want %v", ids, want)
		}
	}

	if got := journal.OldestEntryDate(); got != date.MustParse("2024-01-01") {
		t.Errorf("OldestEntryDate() = %v, want 2024-01-01", got)
	}
	if got := journal.NewestEntryDate(); got != date.MustParse("2024-06-01") {
		t.Errorf("NewestEntryDate() = %v, want 2024-06-01", got)
	}
}

func TestJournal_StableSortSameDay(t *testing.T) {
	journal := NewJournal()
	journal.Append(
		entry("first", "2024-03-15", Posted,
			itemSpec{account: "cash", debit: 1},
			itemSpec{account: "sales", credit: 1}),
		entry("second", "2024-03-15", Posted,
			itemSpec{account: "cash", debit: 2},
			itemSpec{account: "sales", credit: 2}),
	)

	var ids []string
	for _, e := range journal.Entries() {
		ids = append(ids, e.ID)
	}
	if ids[0] != "first" || ids[1] != "second" {
		t.Errorf("same-day entries reordered: %v", ids)
	}
}

func TestJournal_PostedFilter(t *testing.T) {
	journal := NewJournal()
	journal.Append(
		entry("d1", "2024-03-01", Draft, itemSpec{account: "cash", debit: 1}),
		entry("p1", "2024-03-02", Posted,
			itemSpec{account: "cash", debit: 1},
			itemSpec{account: "sales", credit: 1}),
		entry("c1", "2024-03-03", Cancelled, itemSpec{account: "cash", debit: 1}),
		entry("p2", "2024-05-04", Posted,
			itemSpec{account: "cash", debit: 1},
			itemSpec{account: "sales", credit: 1}),
	)

	var ids []string
	for _, e := range journal.Posted(date.Range{From: date.MustParse("2024-03-01"), To: date.MustParse("2024-03-31")}) {
		ids = append(ids, e.ID)
	}
	if len(ids) != 1 || ids[0] != "p1" {
		t.Errorf("Posted(March) = %v, want [p1]", ids)
	}
}

func TestJournalEntry_Validate(t *testing.T) {
	reg := testRegistry(t)
	testCases := []struct {
		name    string
		entry   JournalEntry
		wantErr bool
	}{
		{
			name: "balanced posted entry",
			entry: entry("ok", "2024-03-15", Posted,
				itemSpec{account: "cash", debit: 100},
				itemSpec{account: "sales", credit: 100}),
		},
		{
			name: "unbalanced posted entry",
			entry: entry("bad", "2024-03-15", Posted,
				itemSpec{account: "cash", debit: 100},
				itemSpec{account: "sales", credit: 90}),
			wantErr: true,
		},
		{
			name: "unbalanced draft is tolerated",
			entry: entry("wip", "2024-03-15", Draft,
				itemSpec{account: "cash", debit: 100}),
		},
		{
			name: "unknown account",
			entry: entry("ghost", "2024-03-15", Posted,
				itemSpec{account: "ghost", debit: 100},
				itemSpec{account: "sales", credit: 100}),
			wantErr: true,
		},
		{
			name:    "no items",
			entry:   JournalEntry{ID: "empty", Date: date.MustParse("2024-03-15"), Status: Posted},
			wantErr: true,
		},
		{
			name: "no id",
			entry: JournalEntry{Date: date.MustParse("2024-03-15"), Status: Posted,
				Items: []JournalItem{{ID: "i", Account: "cash"}}},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.entry.Validate(reg)
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRegistry_ActiveOrder(t *testing.T) {
	reg, err := NewRegistry(
		Account{ID: "b", Code: "2000", Name: "B", Type: Liability, Active: true},
		Account{ID: "a", Code: "1000", Name: "A", Type: Asset, Active: true},
		Account{ID: "c", Code: "3000", Name: "C", Type: Equity, Active: false},
	)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	var codes []string
	for a := range reg.Active() {
		codes = append(codes, a.Code)
	}
	if len(codes) != 2 || codes[0] != "1000" || codes[1] != "2000" {
		t.Errorf("Active() = %v, want [1000 2000]", codes)
	}
}

func TestRegistry_DuplicateID(t *testing.T) {
	_, err := NewRegistry(
		Account{ID: "x", Code: "1000", Name: "One", Type: Asset, Active: true},
		Account{ID: "x", Code: "1001", Name: "Two", Type: Asset, Active: true},
	)
	if err == nil {
		t.Error("NewRegistry() with duplicate ids expected an error")
	}
}
