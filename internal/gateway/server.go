package gateway

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// buildRouter constructs the chi mux with all routes wired.
func (g *Gateway) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Public — no auth required.
	r.Get("/health", g.handleHealth())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Inbound SMS — own HMAC auth when a secret is configured.
	r.Post("/webhooks/sms", g.handleWebhook())

	// Status — auth required when configured.
	if g.config.Auth.IsConfigured() {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware(g.config.Auth))
			r.Get("/status", g.handleStatus())
		})
	} else {
		r.Get("/status", g.handleStatus())
	}

	return r
}
