package gateway

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/flemzord/smsbridge/internal/health"
)

// StatusResponse is the JSON response for GET /status.
type StatusResponse struct {
	Uptime    float64         `json:"uptime_seconds"`
	Metrics   MetricsSnapshot `json:"metrics"`
	Reporters []health.Status `json:"reporters"`
}

// handleStatus returns an http.HandlerFunc for GET /status. Unlike /health
// it reads only cached states, so it never touches the network.
func (g *Gateway) handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		resp := StatusResponse{
			Uptime:    time.Since(g.startedAt).Truncate(time.Second).Seconds(),
			Metrics:   g.metrics.Snapshot(),
			Reporters: g.registry.Report(),
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
