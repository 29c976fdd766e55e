package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/emberfall/gazette/internal/api/middleware"
	"github.com/emberfall/gazette/internal/dispatch"
	"github.com/emberfall/gazette/internal/observability"
)

// AuditRequest is the inbound proxy payload. Validation is presence only:
// non-empty strings after trim, nothing stricter.
type AuditRequest struct {
	Date  string `json:"date"`
	Title string `json:"title"`
}

// AuditPreflight answers CORS preflights (and plain OPTIONS) with no body.
// The CORS middleware has already written the Access-Control-* headers.
func (a *API) AuditPreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// DispatchAudit validates, authenticates, and relays one audit request to
// the workflow-dispatch API. Strictly linear: auth -> body -> config ->
// dispatch -> translate. No retries; a repeated call queues a repeated run.
func (a *API) DispatchAudit(w http.ResponseWriter, r *http.Request) {
	// Plain comparison on purpose: the upstream contract never specified
	// constant-time matching and the front end treats this as a dev gate,
	// not an auth system.
	if a.authSecret != "" && r.Header.Get("X-Dev-Auth") != a.authSecret {
		WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	var req AuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing date/title"})
		return
	}
	date := strings.TrimSpace(req.Date)
	title := strings.TrimSpace(req.Title)
	if date == "" || title == "" {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing date/title"})
		return
	}

	cfg := a.dispatcher.Config()
	if missing := cfg.Missing(); missing.Any() {
		WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "Worker not configured",
			"missing": missing,
		})
		return
	}

	log := observability.DispatchLogger(a.log, middleware.GetRequestID(r), date, title)

	if fail := a.dispatcher.Dispatch(r.Context(), dispatch.Inputs{Date: date, Title: title}); fail != nil {
		log.Warn("dispatch failed",
			zap.Int("upstream_status", fail.Status),
			zap.String("upstream_request_id", fail.RequestID),
			zap.String("message", fail.Message),
		)
		WriteJSON(w, http.StatusBadGateway, map[string]interface{}{
			"error":      "GitHub dispatch failed",
			"status":     fail.Status,
			"message":    fail.Message,
			"request_id": fail.RequestID,
			"raw":        fail.Raw,
			"config":     cfg.Echo(),
		})
		return
	}

	log.Info("audit queued")
	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true, "queued": true})
}
