package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emberfall/gazette/internal/observability"
)

const (
	storiesFile  = "stories.json"
	codexFile    = "codex.json"
	loreFile     = "lore.json"
	archiveDir   = "archive"
	archiveIndex = "index.json"
)

// Store reads site content from a directory. Reads hit the disk per call:
// the generator replaces files atomically, so there is nothing to cache or
// invalidate here.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) readJSON(name string, v interface{}) error {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		observability.ContentReadErrors.WithLabelValues(name).Inc()
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		observability.ContentReadErrors.WithLabelValues(name).Inc()
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// Today returns the current issue (stories.json).
func (s *Store) Today() (*Day, error) {
	var d Day
	if err := s.readJSON(storiesFile, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Day returns the issue for a date, preferring archive/<date>.json and
// falling back to stories.json when its date matches (today's issue is only
// archived the next morning).
func (s *Store) Day(date string) (*Day, error) {
	var d Day
	err := s.readJSON(filepath.Join(archiveDir, date+".json"), &d)
	if err == nil {
		return &d, nil
	}
	today, terr := s.Today()
	if terr == nil && today.Date == date {
		return today, nil
	}
	return nil, err
}

// Index returns the archive index.
func (s *Store) Index() (*ArchiveIndex, error) {
	var idx ArchiveIndex
	if err := s.readJSON(filepath.Join(archiveDir, archiveIndex), &idx); err != nil {
		return nil, err
	}
	return &idx, nil
}

func (s *Store) Codex() (Codex, error) {
	var c Codex
	if err := s.readJSON(codexFile, &c); err != nil {
		return nil, err
	}
	return c, nil
}

// Lore returns lore.json verbatim; its schema belongs to the generator.
func (s *Store) Lore() (json.RawMessage, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, loreFile))
	if err != nil {
		observability.ContentReadErrors.WithLabelValues(loreFile).Inc()
		return nil, fmt.Errorf("read %s: %w", loreFile, err)
	}
	if !json.Valid(b) {
		observability.ContentReadErrors.WithLabelValues(loreFile).Inc()
		return nil, fmt.Errorf("parse %s: invalid JSON", loreFile)
	}
	return json.RawMessage(b), nil
}

// Days loads every issue keyed by date: the archive (via its index, falling
// back to a directory scan) plus stories.json. Used by the link and prune
// checks, which need the whole corpus.
func (s *Store) Days() (map[string]*Day, error) {
	byDate := map[string]*Day{}

	dates := []string{}
	if idx, err := s.Index(); err == nil {
		dates = idx.Dates
	} else {
		entries, derr := os.ReadDir(filepath.Join(s.dir, archiveDir))
		if derr == nil {
			for _, e := range entries {
				name := e.Name()
				if filepath.Ext(name) != ".json" || name == archiveIndex {
					continue
				}
				dates = append(dates, name[:len(name)-len(".json")])
			}
		}
	}

	for _, date := range dates {
		d, err := s.Day(date)
		if err != nil {
			continue
		}
		if d.Date == "" {
			d.Date = date
		}
		byDate[d.Date] = d
	}

	if today, err := s.Today(); err == nil && today.Date != "" {
		if _, ok := byDate[today.Date]; !ok {
			byDate[today.Date] = today
		}
	}

	if len(byDate) == 0 {
		return nil, fmt.Errorf("no issues found under %s", s.dir)
	}
	return byDate, nil
}

// WriteCodex rewrites codex.json. Only the prune tool calls this.
func (s *Store) WriteCodex(c Codex) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal codex: %w", err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(filepath.Join(s.dir, codexFile), b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", codexFile, err)
	}
	return nil
}
