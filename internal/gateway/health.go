package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/flemzord/smsbridge/internal/health"
)

// HealthResponse is the JSON response for GET /health.
type HealthResponse struct {
	Status    string          `json:"status"` // "OK", "WARNING" or "CRITICAL"
	Reporters []health.Status `json:"reporters"`
}

// handleHealth returns an http.HandlerFunc for GET /health.
// It runs the gated check on every registered reporter; each reporter's
// own interval gating keeps the upstream load bounded even when a load
// balancer polls this endpoint aggressively.
// Returns 200 unless any reporter is CRITICAL, then 503.
func (g *Gateway) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := g.registry.CheckAll(r.Context())

		worst := health.OK
		for _, s := range statuses {
			if s.State.Severity > worst {
				worst = s.State.Severity
			}
		}

		resp := HealthResponse{
			Status:    worst.String(),
			Reporters: statuses,
		}

		w.Header().Set("Content-Type", "application/json")
		if worst == health.Critical {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
