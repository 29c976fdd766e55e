package api

import (
	"net/http"
	"os"
)

// HealthHandler returns 200 if service is healthy.
func (a *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// ReadyHandler returns 200 if service is ready to accept requests.
func (a *API) ReadyHandler(w http.ResponseWriter, r *http.Request) {
	// Check that the content directory is reachable
	if _, err := os.Stat(a.store.Dir()); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "content dir unavailable"})
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
