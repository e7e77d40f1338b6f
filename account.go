package ledger

import (
	"encoding/json"
	"fmt"
	"iter"
	"sort"
)

// AccountType classifies an account in the chart of accounts. It is a closed
// set: the balance rule is exhaustive over it.
type AccountType int

const (
	Asset AccountType = iota
	Liability
	Equity
	Revenue
	Expense
)

func (t AccountType) String() string {
	switch t {
	case Asset:
		return "asset"
	case Liability:
		return "liability"
	case Equity:
		return "equity"
	case Revenue:
		return "revenue"
	case Expense:
		return "expense"
	default:
		panic(fmt.Sprintf("unknown account type %d", t))
	}
}

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "asset":
		return Asset, nil
	case "liability":
		return Liability, nil
	case "equity":
		return Equity, nil
	case "revenue":
		return Revenue, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown account type: %q", s)
	}
}

func (t AccountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *AccountType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAccountType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Account is one account of the chart of accounts. It is immutable for the
// purposes of aggregation.
type Account struct {
	ID     string      `json:"id"`
	Code   string      `json:"code"` // sortable account code, e.g. "4010"
	Name   string      `json:"name"`
	Type   AccountType `json:"type"`
	Active bool        `json:"active"`
}

// MarshalJSON writes the account fields in canonical order.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("code", a.Code)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Append("active", a.Active)
	return w.MarshalJSON()
}

// Registry holds the chart of accounts, indexed by account id.
//
// A Registry performs no computation: it only resolves account ids and
// provides the stable, code-ascending iteration order every report relies on.
type Registry struct {
	accounts map[string]Account
}

// NewRegistry creates a registry from a list of accounts. A duplicated
// account id is an error.
func NewRegistry(accounts ...Account) (*Registry, error) {
	r := &Registry{accounts: make(map[string]Account, len(accounts))}
	for _, a := range accounts {
		if err := r.Add(a); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add registers one account.
func (r *Registry) Add(a Account) error {
	if a.ID == "" {
		return fmt.Errorf("account %q has no id", a.Name)
	}
	if _, exists := r.accounts[a.ID]; exists {
		return fmt.Errorf("duplicate account id %q", a.ID)
	}
	r.accounts[a.ID] = a
	return nil
}

// ByID returns the account with this id, or false if unknown.
func (r *Registry) ByID(id string) (Account, bool) {
	a, ok := r.accounts[id]
	return a, ok
}

// Len returns the number of accounts in the registry.
func (r *Registry) Len() int { return len(r.accounts) }

// Accounts iterates over all accounts ordered by code ascending.
func (r *Registry) Accounts() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for _, a := range r.sorted() {
			if !yield(a) {
				return
			}
		}
	}
}

// Active iterates over active accounts ordered by code ascending.
func (r *Registry) Active() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for _, a := range r.sorted() {
			if !a.Active {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

func (r *Registry) sorted() []Account {
	accounts := make([]Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].Code != accounts[j].Code {
			return accounts[i].Code < accounts[j].Code
		}
		return accounts[i].ID < accounts[j].ID
	})
	return accounts
}
