package ledger

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
	"github.com/openbookkeeping/ledger/date"
)

// Feed pulls journal entries from the portal's hosted data backend.
//
// The backend export is a loosely shaped JSON document; the entry rows are
// located with a jsonpath query and then decoded into typed entries. All the
// defensive "is this field present" logic stays here at the boundary, never
// in the aggregation folds.
type Feed struct {
	client *http.Client

	// URL of the backend's journal export endpoint.
	URL string

	// EntriesPath is the jsonpath query locating the entry rows inside the
	// export payload.
	EntriesPath string
}

// DefaultEntriesPath matches the portal's standard export payload shape.
const DefaultEntriesPath = "$.data.entries[*]"

// NewFeed creates a feed on the given export URL, with responses cached on
// disk for the day.
func NewFeed(url string) *Feed {
	return &Feed{client: daily(), URL: url, EntriesPath: DefaultEntriesPath}
}

// FetchEntries downloads the export and returns its journal entries.
//
// A transport or decoding failure fails the whole fetch: no partial result
// is ever returned. Entries come back with whatever status the backend
// recorded; the aggregation folds keep only posted ones.
func (f *Feed) FetchEntries() ([]JournalEntry, error) {
	var jobj any
	if err := jwget(f.client, f.URL, &jobj); err != nil {
		return nil, fmt.Errorf("could not fetch journal feed %q: %w", f.URL, err)
	}

	path := f.EntriesPath
	if path == "" {
		path = DefaultEntriesPath
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("could not locate entries in feed %q: %q %w", f.URL, path, err)
	}
	rows, ok := jval.([]any)
	if !ok {
		// because jsonpath is never clear about whether it returns a list or a
		// single answer: accept a single row too.
		rows = []any{jval}
	}

	entries := make([]JournalEntry, 0, len(rows))
	for i, row := range rows {
		raw, err := json.Marshal(row)
		if err != nil {
			return nil, fmt.Errorf("could not re-encode feed row %d: %w", i, err)
		}
		var entry JournalEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("could not decode feed row %d: %w", i, err)
		}
		if entry.ID == "" {
			return nil, fmt.Errorf("feed row %d has no entry id", i)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// http utils to deal with the remote backend.

// diskCache implements a simple disk cache for HTTP responses.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	// the key is unique per day, so the local cache expires every day.
	key := fmt.Sprintf("%s %s %s", date.Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))
	file := filepath.Join(os.TempDir(), key)

	if content, err := os.ReadFile(file); err == nil { // Cache hit
		return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	content, err := httputil.DumpResponse(resp, true)
	if err == nil {
		err = os.WriteFile(file, content, 0644)
	}
	if err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// daily returns a client with a cache that expires every day.
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
