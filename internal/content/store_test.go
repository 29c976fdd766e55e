package content

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func fixtureStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "stories.json"),
		`{"date":"2026-01-02","generated_at":"2026-01-02T06:00:00Z","stories":[{"title":"Fresh Ink","text":"...","subgenre":"Dark Fantasy"}]}`)
	writeFile(t, filepath.Join(dir, "archive", "2026-01-01.json"),
		`{"date":"2026-01-01","stories":[{"title":"Old News","text":"..."}]}`)
	writeFile(t, filepath.Join(dir, "archive", "index.json"),
		`{"dates":["2026-01-01"]}`)
	writeFile(t, filepath.Join(dir, "codex.json"),
		`{"characters":[{"name":"Kossuth","story_appearances":[]}]}`)
	writeFile(t, filepath.Join(dir, "lore.json"),
		`{"eras":[{"name":"The Sundering"}]}`)
	return NewStore(dir)
}

func TestStoreToday(t *testing.T) {
	s := fixtureStore(t)
	day, err := s.Today()
	if err != nil {
		t.Fatal(err)
	}
	if day.Date != "2026-01-02" || len(day.Stories) != 1 {
		t.Errorf("unexpected today payload: %+v", day)
	}
}

func TestStoreDayFromArchive(t *testing.T) {
	s := fixtureStore(t)
	day, err := s.Day("2026-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if day.Stories[0].Title != "Old News" {
		t.Errorf("unexpected archive payload: %+v", day)
	}
}

func TestStoreDayFallsBackToToday(t *testing.T) {
	s := fixtureStore(t)
	// 2026-01-02 is not archived yet but matches stories.json.
	day, err := s.Day("2026-01-02")
	if err != nil {
		t.Fatal(err)
	}
	if day.Stories[0].Title != "Fresh Ink" {
		t.Errorf("unexpected fallback payload: %+v", day)
	}
}

func TestStoreDayNotFound(t *testing.T) {
	s := fixtureStore(t)
	_, err := s.Day("1999-01-01")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestStoreDays(t *testing.T) {
	s := fixtureStore(t)
	days, err := s.Days()
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 {
		t.Fatalf("loaded %d days, want 2", len(days))
	}
	if days["2026-01-01"] == nil || days["2026-01-02"] == nil {
		t.Errorf("days = %v", days)
	}
}

func TestStoreLoreInvalidJSON(t *testing.T) {
	s := fixtureStore(t)
	writeFile(t, filepath.Join(s.Dir(), "lore.json"), "{not json")
	if _, err := s.Lore(); err == nil {
		t.Fatal("expected error for invalid lore.json")
	}
}

func TestWriteCodexRoundTrip(t *testing.T) {
	s := fixtureStore(t)
	codex, err := s.Codex()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.WriteCodex(codex); err != nil {
		t.Fatal(err)
	}
	again, err := s.Codex()
	if err != nil {
		t.Fatal(err)
	}
	if again["characters"][0].Name != "Kossuth" {
		t.Errorf("round trip lost data: %+v", again)
	}
}

func TestEntityPreservesUnknownFields(t *testing.T) {
	raw := `{"name":"Kossuth","significance":"major","story_appearances":[{"date":"2026-01-01","title":"X"}]}`
	var e Entity
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatal(err)
	}
	if e.Name != "Kossuth" || len(e.StoryAppearances) != 1 {
		t.Fatalf("parse: %+v", e)
	}

	out, err := json.Marshal(&e)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	json.Unmarshal(out, &m)
	if m["significance"] != "major" {
		t.Errorf("unknown field dropped on rewrite: %s", out)
	}
}
