package http

import (
	nethttp "net/http"

	"github.com/rs/cors"
)

// WithCORS lets browser dashboards on the given origins call the API. A "*"
// entry allows any origin. An empty list disables CORS headers.
func WithCORS(origins []string, next nethttp.Handler) nethttp.Handler {
	if len(origins) == 0 {
		return next
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return c.Handler(next)
}
