package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindJournal returns the unique journal corresponding with the name.
// If the query matches exactly one journal file, it is loaded.
// If the query is empty and no journal exists, an empty default journal is
// returned. In any other case it returns an error.
func FindJournal(path, query string) (*Journal, error) {
	journalPaths, err := findJournalPaths(path, query)
	if err != nil {
		return nil, err
	}
	switch len(journalPaths) {
	case 0:
		if query == "" {
			j := NewJournal()
			j.name = "journal"
			return j, nil
		}
		return nil, fmt.Errorf("could not find journal %q", query)
	case 1:
		return loadJournalFile(path, journalPaths[0])
	default:
		return nil, fmt.Errorf("multiple journals found for %q", query)
	}
}

// FindJournals discovers and loads journal files from a given books path.
// If query is empty, all journals (.jsonl files) in the path are loaded.
// A journal name is its relative path from the books path, without the
// .jsonl extension.
func FindJournals(path, query string) ([]*Journal, error) {
	journalPaths, err := findJournalPaths(path, query)
	if err != nil {
		return nil, err
	}

	var journals []*Journal
	for _, fullPath := range journalPaths {
		j, err := loadJournalFile(path, fullPath)
		if err != nil {
			return nil, err
		}
		journals = append(journals, j)
	}
	return journals, nil
}

// loadJournalFile opens, decodes, and names a journal from a given file path.
func loadJournalFile(booksPath, fullPath string) (*Journal, error) {
	relPath, err := filepath.Rel(booksPath, fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not determine relative path for %q: %w", fullPath, err)
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not open journal file %q: %w", fullPath, err)
	}
	defer f.Close()

	journal, err := DecodeJournal(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode journal file %q: %w", fullPath, err)
	}
	journal.name = strings.TrimSuffix(relPath, ".jsonl")
	return journal, nil
}

// SaveJournal saves a single journal to its corresponding file within the
// books path. It uses the journal's name to construct the file path (e.g., a
// journal named "events/2024" is saved to "<path>/events/2024.jsonl").
func SaveJournal(path string, journal *Journal) error {
	name := journal.Name()
	if name == "" {
		return fmt.Errorf("cannot save journal with an empty name")
	}

	filePath := filepath.Join(path, name+".jsonl")
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create directory for journal %q: %w", filePath, err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error opening journal file %q for writing: %w", filePath, err)
	}
	defer file.Close()

	return EncodeJournal(file, journal)
}

// LoadRegistry reads the chart of accounts from a JSONL file.
func LoadRegistry(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open accounts file %q: %w", path, err)
	}
	defer f.Close()

	reg, err := DecodeRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode accounts file %q: %w", path, err)
	}
	return reg, nil
}

// findJournalPaths scans a directory and returns the journal files matching
// the query.
func findJournalPaths(path, query string) ([]string, error) {
	var journals []string

	// A books folder that does not exist yet simply holds no journals.
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".jsonl") {
			relPath, err := filepath.Rel(path, p)
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(relPath, ".jsonl")
			if query == "" || name == query {
				journals = append(journals, p)
			}
		}
		return nil
	})

	return journals, err
}
