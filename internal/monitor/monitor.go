// Package monitor runs the periodic health poll. It drives the gated
// health checks of every registered reporter so that cached states and
// the Prometheus severity gauge stay fresh even when nobody hits the
// health endpoint.
package monitor

import (
	"context"
	"errors"
	"log/slog"

	"github.com/flemzord/smsbridge/internal/core"
	"github.com/flemzord/smsbridge/internal/cron"
	"github.com/flemzord/smsbridge/internal/health"
	"gopkg.in/yaml.v3"
)

func init() {
	core.RegisterModule(&Monitor{})
}

// Compile-time interface guards.
var (
	_ core.Module       = (*Monitor)(nil)
	_ core.Configurable = (*Monitor)(nil)
	_ core.Provisioner  = (*Monitor)(nil)
	_ core.Validator    = (*Monitor)(nil)
	_ core.Starter      = (*Monitor)(nil)
	_ core.Stopper      = (*Monitor)(nil)
)

// Monitor owns the cron scheduler and the health poll job.
type Monitor struct {
	config    Config
	appCtx    *core.AppContext
	logger    *slog.Logger
	scheduler *cron.Scheduler
}

// Config holds the monitor configuration.
type Config struct {
	// Schedule is a 5-field cron expression for the health poll.
	Schedule string `yaml:"schedule"`
}

// defaults applies default values to unset fields.
func (c *Config) defaults() {
	if c.Schedule == "" {
		c.Schedule = "* * * * *"
	}
}

// ModuleInfo implements core.Module.
func (m *Monitor) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{
		ID:  "monitor.cron",
		New: func() core.Module { return &Monitor{} },
	}
}

// Configure implements core.Configurable.
func (m *Monitor) Configure(node *yaml.Node) error {
	if err := node.Decode(&m.config); err != nil {
		return err
	}
	m.config.defaults()
	return nil
}

// Provision implements core.Provisioner.
func (m *Monitor) Provision(ctx *core.AppContext) error {
	m.appCtx = ctx
	m.logger = ctx.Logger
	m.scheduler = cron.NewScheduler(ctx.Logger)
	return nil
}

// Validate implements core.Validator.
func (m *Monitor) Validate() error {
	if m.config.Schedule == "" {
		return errors.New("monitor: schedule must not be empty")
	}
	return nil
}

// Start implements core.Starter. It resolves the health registry from the
// service registry, registers the poll job, and starts the scheduler.
func (m *Monitor) Start() error {
	svc, ok := m.appCtx.Service("health.registry")
	if !ok {
		return errors.New("monitor: health.registry service not found")
	}
	reg, ok := svc.(*health.Registry)
	if !ok {
		return errors.New("monitor: health.registry service has unexpected type")
	}

	job := &HealthPollJob{
		Registry:     reg,
		Logger:       m.logger,
		ScheduleExpr: m.config.Schedule,
	}
	if err := m.scheduler.RegisterJob(job); err != nil {
		return err
	}
	return m.scheduler.Start()
}

// Stop implements core.Stopper.
func (m *Monitor) Stop(ctx context.Context) error {
	return m.scheduler.Stop(ctx)
}
