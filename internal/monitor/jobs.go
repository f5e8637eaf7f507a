package monitor

import (
	"context"
	"log/slog"

	"github.com/flemzord/smsbridge/internal/cron"
	"github.com/flemzord/smsbridge/internal/health"
)

// HealthPollJob invokes the gated health check on every registered reporter
// and mirrors the resulting severities into the Prometheus gauge. The
// per-reporter interval gating bounds the upstream probe rate, so the poll
// schedule can be tighter than any check interval.
type HealthPollJob struct {
	Registry     *health.Registry
	Logger       *slog.Logger
	ScheduleExpr string // empty = default "* * * * *"
}

// Compile-time interface check.
var _ cron.Job = (*HealthPollJob)(nil)

// Name implements cron.Job.
func (j *HealthPollJob) Name() string {
	return "health_poll"
}

// Schedule implements cron.Job.
func (j *HealthPollJob) Schedule() string {
	if j.ScheduleExpr != "" {
		return j.ScheduleExpr
	}
	return "* * * * *"
}

// Run polls all reporters and records their severities.
func (j *HealthPollJob) Run(ctx context.Context) error {
	for _, s := range j.Registry.CheckAll(ctx) {
		severityGauge.WithLabelValues(s.Name).Set(float64(s.State.Severity))
		if !s.State.IsOK() {
			j.Logger.Warn("health poll: reporter degraded",
				"reporter", s.Name,
				"severity", s.State.Severity.String(),
				"detail", s.State.Detail,
			)
		}
	}
	return nil
}
