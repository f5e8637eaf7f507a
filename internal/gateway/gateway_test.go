package gateway

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/flemzord/smsbridge/internal/health"
	"github.com/flemzord/smsbridge/internal/sms"
)

// stubForwarder returns a fixed error from Forward and records the messages
// it saw.
type stubForwarder struct {
	err  error
	seen []*sms.Message
}

func (f *stubForwarder) Forward(_ context.Context, msg *sms.Message) error {
	f.seen = append(f.seen, msg)
	return f.err
}

// staticReporter reports a fixed cached state.
type staticReporter struct {
	state health.State
}

func (r *staticReporter) HealthState() health.State { return r.state }

// probeReporter counts CheckHealth invocations.
type probeReporter struct {
	staticReporter
	probes int
}

func (r *probeReporter) CheckHealth(context.Context) health.State {
	r.probes++
	return r.state
}

// newTestGateway builds a Gateway wired to a stub forwarder and an empty
// health registry, ready for buildRouter().
func newTestGateway(t *testing.T, cfg Config) (*Gateway, *stubForwarder) {
	t.Helper()

	cfg.defaults()
	fwd := &stubForwarder{}
	g := &Gateway{
		config:    cfg,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:   &Metrics{},
		registry:  health.NewRegistry(),
		forwarder: fwd,
	}
	return g, fwd
}
