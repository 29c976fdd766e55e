package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/emberfall/gazette/internal/content"
	"github.com/emberfall/gazette/internal/dispatch"
)

func contentFixture(t *testing.T) *API {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"stories.json":            `{"date":"2026-01-02","stories":[{"title":"Fresh Ink","text":"..."}]}`,
		"archive/index.json":      `{"dates":["2026-01-01"]}`,
		"archive/2026-01-01.json": `{"date":"2026-01-01","stories":[{"title":"Old News","text":"..."}]}`,
		"codex.json":              `{"characters":[{"name":"Kossuth","story_appearances":[]}]}`,
		"lore.json":               `{"eras":[]}`,
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return NewAPI(content.NewStore(dir), dispatch.New(dispatch.Config{}), "", zap.NewNop())
}

func get(t *testing.T, a *API, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, req)
	return w
}

func TestTodayStories(t *testing.T) {
	a := contentFixture(t)
	w := get(t, a, "/v1/stories")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var day content.Day
	json.Unmarshal(w.Body.Bytes(), &day)
	if day.Date != "2026-01-02" || len(day.Stories) != 1 {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestArchiveDay(t *testing.T) {
	a := contentFixture(t)
	w := get(t, a, "/v1/archive/2026-01-01")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	w = get(t, a, "/v1/archive/1999-01-01")
	if w.Code != http.StatusNotFound {
		t.Errorf("missing issue: status = %d, want 404", w.Code)
	}

	w = get(t, a, "/v1/archive/not-a-date")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date: status = %d, want 400", w.Code)
	}
}

func TestContentCORS(t *testing.T) {
	a := contentFixture(t)

	// Cross-origin reads from the site must see the permissive header on
	// the actual GET response, not just on preflights.
	req := httptest.NewRequest("GET", "/v1/stories", nil)
	req.Header.Set("Origin", "https://gazette.example")
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}

	req = httptest.NewRequest("OPTIONS", "/v1/archive", nil)
	req.Header.Set("Origin", "https://gazette.example")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w = httptest.NewRecorder()
	a.Router().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("preflight Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestArchiveIndexAndCodex(t *testing.T) {
	a := contentFixture(t)

	w := get(t, a, "/v1/archive")
	if w.Code != http.StatusOK {
		t.Errorf("archive: status = %d", w.Code)
	}
	var idx content.ArchiveIndex
	json.Unmarshal(w.Body.Bytes(), &idx)
	if len(idx.Dates) != 1 {
		t.Errorf("index = %+v", idx)
	}

	w = get(t, a, "/v1/codex")
	if w.Code != http.StatusOK {
		t.Errorf("codex: status = %d", w.Code)
	}

	w = get(t, a, "/v1/lore")
	if w.Code != http.StatusOK {
		t.Errorf("lore: status = %d", w.Code)
	}
}
