package ledger

import (
	"encoding/json"
	"fmt"
	"iter"
	"sort"

	"github.com/openbookkeeping/ledger/date"
	"github.com/shopspring/decimal"
)

// EntryStatus is the lifecycle state of a journal entry. Only posted entries
// participate in aggregation; the engine reads the status, never writes it.
type EntryStatus int

const (
	Draft EntryStatus = iota
	Posted
	Cancelled
)

func (s EntryStatus) String() string {
	switch s {
	case Draft:
		return "draft"
	case Posted:
		return "posted"
	case Cancelled:
		return "cancelled"
	default:
		panic(fmt.Sprintf("unknown entry status %d", s))
	}
}

// ParseEntryStatus parses a string into an EntryStatus.
func ParseEntryStatus(s string) (EntryStatus, error) {
	switch s {
	case "draft":
		return Draft, nil
	case "posted":
		return Posted, nil
	case "cancelled":
		return Cancelled, nil
	default:
		return 0, fmt.Errorf("unknown entry status: %q", s)
	}
}

func (s EntryStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *EntryStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseEntryStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// JournalItem is one debit/credit line of a journal entry. Amounts are
// non-negative; an item carries either side (or both) of a posting.
type JournalItem struct {
	ID      string          `json:"id"`
	Account string          `json:"account"` // account id in the registry
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// MarshalJSON writes the item fields in canonical order.
func (it JournalItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", it.ID)
	w.Append("account", it.Account)
	w.Append("debit", it.Debit)
	w.Append("credit", it.Credit)
	return w.MarshalJSON()
}

// JournalEntry is a dated double-entry posting with its line items.
// Entries are value objects: once posted they are treated as immutable.
type JournalEntry struct {
	ID     string        `json:"id"`
	Date   date.Date     `json:"date"`
	Status EntryStatus   `json:"status"`
	Memo   string        `json:"memo,omitempty"`
	Items  []JournalItem `json:"items"`
}

// MarshalJSON writes the entry fields in canonical order.
func (e JournalEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Append("status", e.Status)
	w.Optional("memo", e.Memo)
	w.Append("items", e.Items)
	return w.MarshalJSON()
}

// Validate checks the entry against the chart of accounts: every item must
// reference a known account and carry non-negative amounts, and a posted
// entry must balance (sum of debits equals sum of credits).
func (e JournalEntry) Validate(reg *Registry) error {
	if e.ID == "" {
		return fmt.Errorf("entry on %s has no id", e.Date)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("entry %q has no date", e.ID)
	}
	if len(e.Items) == 0 {
		return fmt.Errorf("entry %q has no items", e.ID)
	}

	var debits, credits decimal.Decimal
	for _, it := range e.Items {
		if it.Debit.IsNegative() || it.Credit.IsNegative() {
			return fmt.Errorf("entry %q item %q has a negative amount", e.ID, it.ID)
		}
		if _, ok := reg.ByID(it.Account); !ok {
			return fmt.Errorf("entry %q item %q references unknown account %q", e.ID, it.ID, it.Account)
		}
		debits = debits.Add(it.Debit)
		credits = credits.Add(it.Credit)
	}

	if e.Status == Posted && !debits.Equal(credits) {
		return fmt.Errorf("entry %q is unbalanced: debits %s != credits %s", e.ID, debits, credits)
	}
	return nil
}

// Journal represents the list of journal entries of one ledger.
//
// In a Journal entries are always in chronological order.
type Journal struct {
	name     string
	currency string
	entries  []JournalEntry
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{entries: make([]JournalEntry, 0)}
}

// Name returns the journal name, derived from its file path when loaded.
func (j *Journal) Name() string { return j.name }

// Currency returns the journal's reporting currency ("" when unset).
func (j *Journal) Currency() string { return j.currency }

// SetCurrency sets the journal's reporting currency.
func (j *Journal) SetCurrency(cur string) { j.currency = cur }

// Len returns the number of entries in the journal.
func (j *Journal) Len() int { return len(j.entries) }

// Append appends entries to this journal and maintains the chronological
// order of entries.
func (j *Journal) Append(entries ...JournalEntry) {
	j.entries = append(j.entries, entries...)
	j.stableSort()
}

// stableSort sorts the journal by entry date. The sort is stable, meaning
// entries on the same day maintain their original relative order.
func (j *Journal) stableSort() {
	sort.SliceStable(j.entries, func(a, b int) bool {
		return j.entries[a].Date.Before(j.entries[b].Date)
	})
}

// OldestEntryDate returns the date of the earliest entry in the journal,
// or the zero date when the journal is empty.
func (j *Journal) OldestEntryDate() date.Date {
	if len(j.entries) == 0 {
		return date.Date{}
	}
	return j.entries[0].Date
}

// NewestEntryDate returns the date of the latest entry in the journal,
// or the zero date when the journal is empty.
func (j *Journal) NewestEntryDate() date.Date {
	if len(j.entries) == 0 {
		return date.Date{}
	}
	return j.entries[len(j.entries)-1].Date
}

// Entries returns an iterator that yields entries in chronological order.
// All filters must accept an entry for it to be yielded.
func (j *Journal) Entries(filters ...func(JournalEntry) bool) iter.Seq2[int, JournalEntry] {
	return func(yield func(int, JournalEntry) bool) {
		for i, e := range j.entries {
			accept := true
			for _, filter := range filters {
				if !filter(e) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// Posted returns an iterator over posted entries whose date falls inside the
// window (boundaries included). A zero window means no date filtering.
func (j *Journal) Posted(window date.Range) iter.Seq2[int, JournalEntry] {
	return j.Entries(ByStatus(Posted), InRange(window))
}

// ByStatus returns a predicate that filters entries by status.
func ByStatus(s EntryStatus) func(JournalEntry) bool {
	return func(e JournalEntry) bool { return e.Status == s }
}

// InRange returns a predicate that filters entries by date window.
func InRange(r date.Range) func(JournalEntry) bool {
	return func(e JournalEntry) bool { return r.Contains(e.Date) }
}

// ByAccount returns a predicate that accepts entries with at least one item
// posted against the given account id.
func ByAccount(id string) func(JournalEntry) bool {
	return func(e JournalEntry) bool {
		for _, it := range e.Items {
			if it.Account == id {
				return true
			}
		}
		return false
	}
}
