package ledger

import (
	"bytes"
	"strings"
	"testing"
)

const sampleJournal = `{"currency":"EUR"}
{"id":"e1","date":"2024-03-15","status":"posted","memo":"spring gala tickets","items":[{"id":"e1-a","account":"cash","debit":500,"credit":0},{"id":"e1-b","account":"sales","debit":0,"credit":500}]}
{"id":"e2","date":"2024-04-02","status":"draft","items":[{"id":"e2-a","account":"rent","debit":120,"credit":0}]}
`

func TestDecodeJournal(t *testing.T) {
	journal, err := DecodeJournal(strings.NewReader(sampleJournal))
	if err != nil {
		t.Fatalf("DecodeJournal() error = %v", err)
	}
	if journal.Currency() != "EUR" {
		t.Errorf("Currency() = %q, want EUR", journal.Currency())
	}
	if journal.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", journal.Len())
	}

	var first JournalEntry
	for _, e := range journal.Entries() {
		first = e
		break
	}
	if first.ID != "e1" || first.Status != Posted || first.Memo != "spring gala tickets" {
		t.Errorf("first entry = %+v, want e1/posted with memo", first)
	}
	if len(first.Items) != 2 {
		t.Fatalf("first entry has %d items, want 2", len(first.Items))
	}
	if got := first.Items[0].Debit.IntPart(); got != 500 {
		t.Errorf("first item debit = %d, want 500", got)
	}
}

func TestEncodeJournal_Canonical(t *testing.T) {
	journal, err := DecodeJournal(strings.NewReader(sampleJournal))
	if err != nil {
		t.Fatalf("DecodeJournal() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeJournal(&buf, journal); err != nil {
		t.Fatalf("EncodeJournal() error = %v", err)
	}
	if got := buf.String(); got != sampleJournal {
		t.Errorf("EncodeJournal() is not canonical:\ngot:\n%s\nwant:\n%s", got, sampleJournal)
	}
}

func TestDecodeJournal_SortsEntries(t *testing.T) {
	input := `{"id":"late","date":"2024-06-01","status":"posted","items":[{"id":"a","account":"cash","debit":1,"credit":0}]}
{"id":"early","date":"2024-01-01","status":"posted","items":[{"id":"b","account":"cash","debit":1,"credit":0}]}
`
	journal, err := DecodeJournal(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeJournal() error = %v", err)
	}
	var ids []string
	for _, e := range journal.Entries() {
		ids = append(ids, e.ID)
	}
	if ids[0] != "early" || ids[1] != "late" {
		t.Errorf("entries not sorted by date: %v", ids)
	}
}

func TestDecodeJournal_Rejections(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "negative amount", input: `{"id":"e1","date":"2024-01-01","status":"posted","items":[{"id":"a","account":"cash","debit":-5,"credit":0}]}`},
		{name: "unknown status", input: `{"id":"e1","date":"2024-01-01","status":"pending","items":[]}`},
		{name: "bad date", input: `{"id":"e1","date":"someday","status":"posted","items":[]}`},
		{name: "not json", input: `not a journal line`},
		{name: "header without currency", input: `{"memo":"no id"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeJournal(strings.NewReader(tc.input)); err == nil {
				t.Errorf("DecodeJournal(%q) expected an error", tc.input)
			}
		})
	}
}

const sampleAccounts = `{"id":"cash","code":"1010","name":"Cash","type":"asset","active":true}
{"id":"sales","code":"4010","name":"Event Sales","type":"revenue","active":true}
`

func TestRegistry_RoundTrip(t *testing.T) {
	reg, err := DecodeRegistry(strings.NewReader(sampleAccounts))
	if err != nil {
		t.Fatalf("DecodeRegistry() error = %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}
	cash, ok := reg.ByID("cash")
	if !ok || cash.Type != Asset {
		t.Errorf("ByID(cash) = %+v %v, want an asset account", cash, ok)
	}

	var buf bytes.Buffer
	if err := EncodeRegistry(&buf, reg); err != nil {
		t.Fatalf("EncodeRegistry() error = %v", err)
	}
	if buf.String() != sampleAccounts {
		t.Errorf("EncodeRegistry() is not canonical:\ngot:\n%s\nwant:\n%s", buf.String(), sampleAccounts)
	}
}

func TestDecodeRegistry_UnknownType(t *testing.T) {
	input := `{"id":"x","code":"9000","name":"Mystery","type":"goodwill","active":true}`
	if _, err := DecodeRegistry(strings.NewReader(input)); err == nil {
		t.Error("DecodeRegistry() with unknown account type expected an error")
	}
}
