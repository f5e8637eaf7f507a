// Package bridge implements the SMS forwarding pipeline: allow-list check,
// route selection, and hand-off to a delivery backend.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/flemzord/smsbridge/internal/core"
	"github.com/flemzord/smsbridge/internal/delivery"
	"github.com/flemzord/smsbridge/internal/router"
	"github.com/flemzord/smsbridge/internal/sms"
	"gopkg.in/yaml.v3"
)

func init() {
	core.RegisterModule(&Bridge{})
}

// Compile-time interface guards.
var (
	_ core.Module       = (*Bridge)(nil)
	_ core.Configurable = (*Bridge)(nil)
	_ core.Provisioner  = (*Bridge)(nil)
	_ core.Validator    = (*Bridge)(nil)
	_ core.Starter      = (*Bridge)(nil)
)

// Bridge forwards inbound SMS to delivery targets selected by the router.
type Bridge struct {
	config Config
	logger *slog.Logger
	appCtx *core.AppContext
	allow  *AllowList
	router *router.Router
}

// Config holds the bridge configuration.
type Config struct {
	// AllowSenders restricts forwarding to these sender numbers.
	// Empty = forward messages from any sender.
	AllowSenders []string `yaml:"allow_senders"`

	// Routes defines the prefix route table.
	Routes []RouteConfig `yaml:"routes"`
}

// RouteConfig binds phone-number prefixes to a delivery destination.
type RouteConfig struct {
	Name      string   `yaml:"name"`
	Prefixes  []string `yaml:"prefixes"`
	Cost      float64  `yaml:"cost"`
	ChatID    int64    `yaml:"chat_id"`
	ThreadID  int      `yaml:"thread_id"`
	Deliverer string   `yaml:"deliverer"`
}

// defaults applies default values to unset fields.
func (c *Config) defaults() {
	for i := range c.Routes {
		if c.Routes[i].Deliverer == "" {
			c.Routes[i].Deliverer = "delivery.telegram"
		}
	}
}

// ModuleInfo implements core.Module.
func (b *Bridge) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{
		ID:  "bridge.forwarder",
		New: func() core.Module { return &Bridge{} },
	}
}

// Configure implements core.Configurable.
func (b *Bridge) Configure(node *yaml.Node) error {
	if err := node.Decode(&b.config); err != nil {
		return fmt.Errorf("bridge: decode config: %w", err)
	}
	b.config.defaults()
	return nil
}

// Provision implements core.Provisioner.
func (b *Bridge) Provision(ctx *core.AppContext) error {
	b.appCtx = ctx
	b.logger = ctx.Logger
	b.allow = NewAllowList(b.config.AllowSenders)
	b.router = router.New()

	ctx.RegisterService("bridge.forwarder", b)
	return nil
}

// Validate implements core.Validator.
func (b *Bridge) Validate() error {
	if len(b.config.Routes) == 0 {
		return errors.New("bridge: at least one route is required")
	}
	seen := make(map[string]struct{}, len(b.config.Routes))
	for _, r := range b.config.Routes {
		if r.Name == "" {
			return errors.New("bridge: route name is required")
		}
		if _, dup := seen[r.Name]; dup {
			return fmt.Errorf("bridge: duplicate route name %q", r.Name)
		}
		seen[r.Name] = struct{}{}
		if len(r.Prefixes) == 0 {
			return fmt.Errorf("bridge: route %s has no prefixes", r.Name)
		}
		if r.ChatID == 0 {
			return fmt.Errorf("bridge: route %s has no chat_id", r.Name)
		}
		if r.Cost < 0 {
			return fmt.Errorf("bridge: route %s has negative cost", r.Name)
		}
	}
	return nil
}

// Start implements core.Starter. It resolves delivery backends from the
// service registry (all modules are provisioned by now) and builds the
// route table.
func (b *Bridge) Start() error {
	for _, r := range b.config.Routes {
		svc, ok := b.appCtx.Service(r.Deliverer)
		if !ok {
			return fmt.Errorf("bridge: route %s: deliverer service %q not found (is the module configured?)", r.Name, r.Deliverer)
		}
		d, ok := svc.(delivery.Deliverer)
		if !ok {
			return fmt.Errorf("bridge: route %s: service %q is not a delivery.Deliverer", r.Name, r.Deliverer)
		}
		target := router.Target{
			Name:      r.Name,
			ChatID:    r.ChatID,
			ThreadID:  r.ThreadID,
			Cost:      r.Cost,
			Deliverer: d,
		}
		if err := b.router.Add(target, r.Prefixes); err != nil {
			return err
		}
		b.logger.Info("route registered",
			"route", r.Name,
			"prefixes", r.Prefixes,
			"deliverer", r.Deliverer,
		)
	}
	return nil
}

// Forward runs one SMS through the pipeline: allow-list, route lookup,
// delivery. It returns nil when the target accepted the message.
func (b *Bridge) Forward(ctx context.Context, msg *sms.Message) error {
	log := b.logger.With("sms_id", msg.ID())

	if !b.allow.IsAllowed(msg.Sender()) {
		blockedTotal.Inc()
		log.Warn("sender not on allow-list", "sender", msg.Sender())
		return fmt.Errorf("%w: %s", ErrSenderBlocked, msg.Sender())
	}

	target, ok := b.router.Lookup(msg.Recipient())
	if !ok {
		unroutedTotal.Inc()
		log.Warn("no healthy route for recipient", "recipient", msg.Recipient())
		return fmt.Errorf("%w: recipient %s", ErrNoRoute, msg.Recipient())
	}

	log.Info("forwarding SMS", "target", target.Name, "chat_id", target.ChatID)
	if !target.Deliverer.Send(ctx, target.ChatID, target.ThreadID, msg) {
		failedTotal.WithLabelValues(target.Name).Inc()
		if detail := target.Deliverer.HealthState().Detail; detail != "" {
			return fmt.Errorf("%w: target %s: %s", ErrDeliveryFailed, target.Name, detail)
		}
		return fmt.Errorf("%w: target %s", ErrDeliveryFailed, target.Name)
	}

	forwardedTotal.WithLabelValues(target.Name).Inc()
	return nil
}
