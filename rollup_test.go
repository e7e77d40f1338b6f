package ledger

import (
	"reflect"
	"testing"
	"time"

	"github.com/openbookkeeping/ledger/date"
)

func TestRollup_Scenario(t *testing.T) {
	reg, err := NewRegistry(
		Account{ID: "A1", Code: "4000", Name: "Sales", Type: Revenue, Active: true},
		Account{ID: "A2", Code: "5000", Name: "Supplies", Type: Expense, Active: true},
	)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	journal := NewJournal()
	journal.Append(entry("e1", "2024-03-15", Posted,
		itemSpec{account: "A1", credit: 500},
		itemSpec{account: "A2", debit: 500},
	))

	report, diags := Rollup(reg, journal, date.MonthsOfYear(2024))
	if len(diags) != 0 {
		t.Fatalf("Rollup() diagnostics = %v, want none", diags)
	}
	if len(report.Buckets) != 12 {
		t.Fatalf("Rollup() returned %d buckets, want 12", len(report.Buckets))
	}

	for i, b := range report.Buckets {
		if b.Month == date.NewMonth(2024, time.March) {
			if got := b.Revenue.Amount().IntPart(); got != 500 {
				t.Errorf("March revenue = %d, want 500", got)
			}
			if got := b.Expense.Amount().IntPart(); got != 500 {
				t.Errorf("March expense = %d, want 500", got)
			}
			continue
		}
		if !b.Revenue.IsZero() || !b.Expense.IsZero() {
			t.Errorf("bucket %d (%s) = revenue %s expense %s, want zero", i, b.Month, b.Revenue, b.Expense)
		}
	}
}

func TestRollup_EmptyJournalCompleteness(t *testing.T) {
	reg := testRegistry(t)
	journal := NewJournal()

	report, _ := Rollup(reg, journal, date.TrailingMonths(12, date.MustParse("2024-06-15")))
	if len(report.Buckets) != 12 {
		t.Fatalf("Rollup() returned %d buckets, want 12 even for an empty journal", len(report.Buckets))
	}
	for i, b := range report.Buckets {
		if b.Index != i {
			t.Errorf("bucket %d has index %d", i, b.Index)
		}
		if !b.Revenue.IsZero() || !b.Expense.IsZero() {
			t.Errorf("bucket %d (%s) not zero-filled", i, b.Month)
		}
		if i > 0 && report.Buckets[i].Month != report.Buckets[i-1].Month.Next() {
			t.Errorf("bucket %d (%s) does not follow %s", i, b.Month, report.Buckets[i-1].Month)
		}
	}
}

func TestRollup_CalendarMonthMembership(t *testing.T) {
	// Entries near month boundaries must land in their calendar month, not in
	// a bucket computed from elapsed days.
	reg := testRegistry(t)
	journal := NewJournal()
	journal.Append(
		entry("jan-last", "2024-01-31", Posted,
			itemSpec{account: "cash", debit: 10},
			itemSpec{account: "sales", credit: 10}),
		entry("feb-first", "2024-02-01", Posted,
			itemSpec{account: "cash", debit: 20},
			itemSpec{account: "sales", credit: 20}),
		entry("feb-leap", "2024-02-29", Posted,
			itemSpec{account: "cash", debit: 40},
			itemSpec{account: "sales", credit: 40}),
		entry("mar-first", "2024-03-01", Posted,
			itemSpec{account: "cash", debit: 80},
			itemSpec{account: "sales", credit: 80}),
	)

	report, _ := Rollup(reg, journal, date.MonthsOfYear(2024))
	wantRevenue := []int64{10, 60, 80, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	for i, b := range report.Buckets {
		if got := b.Revenue.Amount().IntPart(); got != wantRevenue[i] {
			t.Errorf("%s revenue = %d, want %d", b.Month, got, wantRevenue[i])
		}
	}
}

func TestRollup_IgnoresOtherAccountTypes(t *testing.T) {
	reg := testRegistry(t)
	journal := NewJournal()
	// A capital injection touches only asset and equity accounts: no bucket
	// may move.
	journal.Append(entry("e1", "2024-03-15", Posted,
		itemSpec{account: "cash", debit: 1000},
		itemSpec{account: "capital", credit: 1000},
	))

	report, _ := Rollup(reg, journal, date.MonthsOfYear(2024))
	for _, b := range report.Buckets {
		if !b.Revenue.IsZero() || !b.Expense.IsZero() {
			t.Errorf("%s = revenue %s expense %s, want zero", b.Month, b.Revenue, b.Expense)
		}
	}
}

func TestRollup_ConsistentWithAggregate(t *testing.T) {
	// Summing a revenue account's credit-debit over a year via Aggregate must
	// equal the sum of the year's monthly revenue buckets.
	reg := testRegistry(t)
	journal := NewJournal()
	journal.Append(
		entry("e1", "2024-01-10", Posted,
			itemSpec{account: "cash", debit: 120},
			itemSpec{account: "sales", credit: 120}),
		entry("e2", "2024-06-20", Posted,
			itemSpec{account: "cash", debit: 80},
			itemSpec{account: "sales", credit: 80}),
		entry("e3", "2024-12-31", Posted,
			itemSpec{account: "cash", debit: 55},
			itemSpec{account: "sales", credit: 55}),
		// a refund: revenue debited.
		entry("e4", "2024-07-01", Posted,
			itemSpec{account: "sales", debit: 30},
			itemSpec{account: "cash", credit: 30}),
	)

	snapshot, _ := Aggregate(reg, journal, date.Year(2024))
	report, _ := Rollup(reg, journal, date.MonthsOfYear(2024))

	sales, _ := snapshot.Row("sales")
	if !report.TotalRevenue().Equal(sales.Balance) {
		t.Errorf("rollup total revenue %s != aggregate sales balance %s", report.TotalRevenue(), sales.Balance)
	}
}

func TestRollup_DanglingReferenceTolerance(t *testing.T) {
	reg := testRegistry(t)
	journal := NewJournal()
	journal.Append(entry("e1", "2024-03-15", Posted,
		itemSpec{account: "ghost", debit: 0, credit: 77},
		itemSpec{account: "rent", debit: 77},
	))

	report, diags := Rollup(reg, journal, date.MonthsOfYear(2024))
	if len(diags) != 1 {
		t.Fatalf("Rollup() diagnostics = %v, want exactly one", diags)
	}
	march := report.Buckets[2]
	if got := march.Expense.Amount().IntPart(); got != 77 {
		t.Errorf("March expense = %d, want 77 (valid item unaffected by the dangling one)", got)
	}
}

func TestRollup_Idempotent(t *testing.T) {
	reg := testRegistry(t)
	journal := NewJournal()
	journal.Append(entry("e1", "2024-03-15", Posted,
		itemSpec{account: "cash", debit: 500},
		itemSpec{account: "sales", credit: 500},
	))

	months := date.MonthsOfYear(2024)
	first, _ := Rollup(reg, journal, months)
	second, _ := Rollup(reg, journal, months)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated Rollup() calls with identical inputs differ")
	}
}
