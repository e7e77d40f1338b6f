package ledger

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFeed_FetchEntries(t *testing.T) {
	payload := `{
		"data": {
			"entries": [
				{"id":"e1","date":"2024-03-15","status":"posted","items":[
					{"id":"e1-a","account":"cash","debit":500,"credit":0},
					{"id":"e1-b","account":"sales","debit":0,"credit":500}
				]},
				{"id":"e2","date":"2024-03-16","status":"draft","items":[
					{"id":"e2-a","account":"rent","debit":42,"credit":0}
				]}
			]
		},
		"meta": {"page": 1}
	}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer server.Close()

	feed := &Feed{client: server.Client(), URL: server.URL, EntriesPath: DefaultEntriesPath}
	entries, err := feed.FetchEntries()
	if err != nil {
		t.Fatalf("FetchEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("FetchEntries() returned %d entries, want 2", len(entries))
	}
	if entries[0].ID != "e1" || entries[0].Status != Posted {
		t.Errorf("first entry = %+v, want e1/posted", entries[0])
	}
	if len(entries[0].Items) != 2 {
		t.Errorf("first entry has %d items, want 2", len(entries[0].Items))
	}
	if entries[1].Status != Draft {
		t.Errorf("second entry status = %v, want draft", entries[1].Status)
	}
}

func TestFeed_FetchEntries_FailsFast(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>maintenance</html>"))
			},
		},
		{
			name: "row without id",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":{"entries":[{"date":"2024-01-01","status":"posted","items":[]}]}}`))
			},
		},
		{
			name: "malformed row",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":{"entries":[{"id":"e1","date":"nope","status":"posted","items":[]}]}}`))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			feed := &Feed{client: server.Client(), URL: server.URL, EntriesPath: DefaultEntriesPath}
			if _, err := feed.FetchEntries(); err == nil {
				t.Error("FetchEntries() expected an error, got none")
			}
		})
	}
}
