package api

import (
	"errors"
	"io/fs"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/emberfall/gazette/internal/core"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// TodayStories serves the current issue.
func (a *API) TodayStories(w http.ResponseWriter, r *http.Request) {
	day, err := a.store.Today()
	if err != nil {
		a.writeContentError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, day)
}

// ArchiveIndex serves the list of archived issue dates.
func (a *API) ArchiveIndex(w http.ResponseWriter, r *http.Request) {
	idx, err := a.store.Index()
	if err != nil {
		a.writeContentError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, idx)
}

// ArchiveDay serves one back issue by date.
func (a *API) ArchiveDay(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if !dateRe.MatchString(date) {
		WriteError(w, core.NewAppError(core.ErrBadRequest, "date must be YYYY-MM-DD"))
		return
	}
	day, err := a.store.Day(date)
	if err != nil {
		a.writeContentError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, day)
}

// CodexHandler serves the lore codex.
func (a *API) CodexHandler(w http.ResponseWriter, r *http.Request) {
	codex, err := a.store.Codex()
	if err != nil {
		a.writeContentError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, codex)
}

// LoreHandler serves lore.json verbatim.
func (a *API) LoreHandler(w http.ResponseWriter, r *http.Request) {
	lore, err := a.store.Lore()
	if err != nil {
		a.writeContentError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(lore)
}

func (a *API) writeContentError(w http.ResponseWriter, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		WriteError(w, core.NewAppError(core.ErrNotFound, "no such issue"))
		return
	}
	a.log.Error("content read failed", zap.Error(err))
	WriteError(w, core.NewAppError(core.ErrInternal, "content unavailable"))
}
