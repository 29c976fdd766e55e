package middleware

import (
	"net/http"

	chicors "github.com/go-chi/cors"
)

// CORSOptions is a narrow surface over go-chi/cors.
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int

	// OptionsPassthrough lets preflights fall through to an explicit
	// OPTIONS route (which answers 204; the library itself answers 200).
	OptionsPassthrough bool
}

// CORS wraps go-chi/cors.
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:     o.AllowedOrigins,
		AllowedMethods:     o.AllowedMethods,
		AllowedHeaders:     o.AllowedHeaders,
		MaxAge:             o.MaxAge,
		OptionsPassthrough: o.OptionsPassthrough,
	})
}
