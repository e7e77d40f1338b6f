package ledger

import (
	"github.com/openbookkeeping/ledger/date"
	"github.com/shopspring/decimal"
)

// MonthlyBucket holds the revenue and expense posted during one calendar
// month of a rollup window.
type MonthlyBucket struct {
	Month   date.Month
	Index   int // 0-based position within the window
	Revenue Money
	Expense Money
}

// Net returns revenue minus expense for the bucket.
func (b MonthlyBucket) Net() Money { return b.Revenue.Sub(b.Expense) }

// MonthlyReport is a fixed-length, gap-free revenue/expense time series.
type MonthlyReport struct {
	Currency string
	Buckets  []MonthlyBucket // one per requested month, chronological
}

// TotalRevenue sums the revenue column over the whole window.
func (r *MonthlyReport) TotalRevenue() Money {
	total := M(decimal.Zero, r.Currency)
	for _, b := range r.Buckets {
		total = total.Add(b.Revenue)
	}
	return total
}

// TotalExpense sums the expense column over the whole window.
func (r *MonthlyReport) TotalExpense() Money {
	total := M(decimal.Zero, r.Currency)
	for _, b := range r.Buckets {
		total = total.Add(b.Expense)
	}
	return total
}

// Rollup folds the journal's posted entries into one bucket per requested
// calendar month.
//
// An entry lands in the bucket whose calendar month and year contain the
// entry date; entries outside the window and items on accounts that are
// neither revenue nor expense contribute nothing. Revenue accounts add
// credit-debit to the bucket's revenue, expense accounts add debit-credit to
// its expense, both through the balance rule. The result always has exactly
// len(months) buckets in the given order, zero-filled months included.
// Items referencing unknown accounts are skipped and reported, like in
// Aggregate.
func Rollup(reg *Registry, journal *Journal, months []date.Month) (*MonthlyReport, []Diagnostic) {
	type totals struct{ revenue, expense decimal.Decimal }
	byMonth := make(map[date.Month]*totals, len(months))
	for _, m := range months {
		byMonth[m] = &totals{}
	}

	var diags []Diagnostic
	for _, e := range journal.Entries(ByStatus(Posted)) {
		bucket, ok := byMonth[date.MonthOf(e.Date)]
		if !ok {
			continue // outside the window
		}
		for _, it := range e.Items {
			a, ok := reg.ByID(it.Account)
			if !ok {
				diags = append(diags, Diagnostic{Entry: e.ID, Item: it.ID, Account: it.Account})
				continue
			}
			switch a.Type {
			case Revenue:
				bucket.revenue = bucket.revenue.Add(BalanceOf(Revenue, it.Debit, it.Credit))
			case Expense:
				bucket.expense = bucket.expense.Add(BalanceOf(Expense, it.Debit, it.Credit))
			}
		}
	}

	currency := journal.Currency()
	report := &MonthlyReport{
		Currency: currency,
		Buckets:  make([]MonthlyBucket, 0, len(months)),
	}
	for i, m := range months {
		t := byMonth[m]
		report.Buckets = append(report.Buckets, MonthlyBucket{
			Month:   m,
			Index:   i,
			Revenue: M(t.revenue, currency),
			Expense: M(t.expense, currency),
		})
	}
	return report, diags
}
