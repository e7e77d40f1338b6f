package ledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// journalHeader is the optional first line of a journal file, carrying
// journal-level settings.
type journalHeader struct {
	Currency string `json:"currency"`
}

// DecodeJournal decodes journal entries from a stream of JSONL data, one
// entry per line, and returns a sorted Journal.
//
// All defensive field checking happens here, at the boundary: the folds
// downstream assume well-formed entries.
func DecodeJournal(r io.Reader) (*Journal, error) {
	journal := NewJournal()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		// A line without an "id" is the journal header.
		var probe struct {
			ID       string `json:"id"`
			Currency string `json:"currency"`
		}
		if err := json.Unmarshal(lineBytes, &probe); err != nil {
			return nil, fmt.Errorf("line %d: could not parse journal line %q: %w", line, string(lineBytes), err)
		}
		if probe.ID == "" {
			var header journalHeader
			if err := json.Unmarshal(lineBytes, &header); err != nil {
				return nil, fmt.Errorf("line %d: invalid journal header: %w", line, err)
			}
			if header.Currency == "" {
				return nil, fmt.Errorf("line %d: journal line has neither an entry id nor a currency", line)
			}
			journal.currency = header.Currency
			continue
		}

		var entry JournalEntry
		if err := json.Unmarshal(lineBytes, &entry); err != nil {
			return nil, fmt.Errorf("line %d: could not decode entry %q: %w", line, probe.ID, err)
		}
		for _, it := range entry.Items {
			if it.Debit.IsNegative() || it.Credit.IsNegative() {
				return nil, fmt.Errorf("line %d: entry %q item %q has a negative amount", line, entry.ID, it.ID)
			}
		}
		journal.entries = append(journal.entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	journal.stableSort()
	return journal, nil
}

// EncodeEntry marshals a single journal entry to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeEntry(w io.Writer, entry JournalEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry %q: %w", entry.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write entry %q: %w", entry.ID, err)
	}
	return nil
}

// EncodeJournal reorders entries by date and persists them to an io.Writer in
// JSONL format. The sort is stable, so entries on the same day maintain their
// original relative order, and JSON keys are written in canonical order.
func EncodeJournal(w io.Writer, journal *Journal) error {
	journal.stableSort()

	if journal.currency != "" {
		data, err := json.Marshal(journalHeader{Currency: journal.currency})
		if err != nil {
			return fmt.Errorf("failed to marshal journal header: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write journal header: %w", err)
		}
	}

	for _, entry := range journal.entries {
		if err := EncodeEntry(w, entry); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRegistry decodes a chart of accounts from a stream of JSONL data,
// one account per line.
func DecodeRegistry(r io.Reader) (*Registry, error) {
	reg := &Registry{accounts: make(map[string]Account)}
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		var a Account
		if err := json.Unmarshal(lineBytes, &a); err != nil {
			return nil, fmt.Errorf("line %d: could not decode account %q: %w", line, string(lineBytes), err)
		}
		if err := reg.Add(a); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return reg, nil
}

// EncodeRegistry persists the chart of accounts to an io.Writer in JSONL
// format, one account per line, by code ascending.
func EncodeRegistry(w io.Writer, reg *Registry) error {
	for a := range reg.Accounts() {
		data, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to marshal account %q: %w", a.ID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write account %q: %w", a.ID, err)
		}
	}
	return nil
}
