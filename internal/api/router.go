package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/emberfall/gazette/internal/api/middleware"
	"github.com/emberfall/gazette/internal/content"
	"github.com/emberfall/gazette/internal/dispatch"
)

type API struct {
	store      *content.Store
	dispatcher *dispatch.Client
	authSecret string
	log        *zap.Logger
}

func NewAPI(store *content.Store, dispatcher *dispatch.Client, authSecret string, log *zap.Logger) *API {
	return &API{
		store:      store,
		dispatcher: dispatcher,
		authSecret: dispatch.SanitizeValue(authSecret),
		log:        log,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recoverer(a.log))
	r.Use(middleware.Logger)
	r.Use(chiMiddleware.StripSlashes)

	// The browser front end hardcodes this body shape for every routing
	// miss, wrong method included.
	r.NotFound(a.notFound)
	r.MethodNotAllowed(a.notFound)

	// Health endpoints
	r.Get("/healthz", a.HealthHandler)
	r.Get("/readyz", a.ReadyHandler)

	// Audit dispatch proxy. Its CORS surface is pinned to the front end's
	// dispatch call: POST plus preflight, nothing wider.
	r.Group(func(r chi.Router) {
		r.Use(middleware.CORS(middleware.CORSOptions{
			AllowedOrigins:     []string{"*"},
			AllowedMethods:     []string{"POST", "OPTIONS"},
			AllowedHeaders:     []string{"Content-Type", "X-Dev-Auth"},
			OptionsPassthrough: true,
		}))
		r.Post("/audit", a.DispatchAudit)
		r.Options("/audit", a.AuditPreflight)
	})

	// Content endpoints: read-only, fetched cross-origin by the site, so
	// this group allows GET.
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		}))
		r.Get("/stories", a.TodayStories)
		r.Get("/archive", a.ArchiveIndex)
		r.Get("/archive/{date}", a.ArchiveDay)
		r.Get("/codex", a.CodexHandler)
		r.Get("/lore", a.LoreHandler)
	})

	return r
}

func (a *API) notFound(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
}
