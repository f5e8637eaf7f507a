package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/flemzord/smsbridge/internal/core"
	"github.com/flemzord/smsbridge/internal/delivery"
	"github.com/flemzord/smsbridge/internal/health"
	"github.com/flemzord/smsbridge/internal/sms"
	"gopkg.in/yaml.v3"
)

func init() {
	core.RegisterModule(&Telegram{})
}

// Compile-time interface guards.
var (
	_ delivery.Deliverer = (*Telegram)(nil)
	_ core.Module        = (*Telegram)(nil)
	_ core.Configurable  = (*Telegram)(nil)
	_ core.Provisioner   = (*Telegram)(nil)
	_ core.Validator     = (*Telegram)(nil)
)

// Telegram delivers SMS through the Telegram Bot API and tracks the API's
// reachability. The health record and last-check timestamp are shared by the
// send and probe paths; the mutex guarantees readers never observe a torn
// update. Last writer wins when a send and a probe race.
type Telegram struct {
	config Config
	client *Client
	logger *slog.Logger

	mu        sync.Mutex
	state     health.State
	lastCheck time.Time

	now func() time.Time // injectable for tests
}

// ModuleInfo implements core.Module.
func (t *Telegram) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{
		ID:  "delivery.telegram",
		New: func() core.Module { return &Telegram{} },
	}
}

// Configure implements core.Configurable.
func (t *Telegram) Configure(node *yaml.Node) error {
	if err := node.Decode(&t.config); err != nil {
		return fmt.Errorf("telegram: decode config: %w", err)
	}
	t.config.defaults()
	return nil
}

// Provision implements core.Provisioner. The adapter starts out OK with the
// probe clock at construction time, so the first getMe runs only after the
// configured interval has elapsed.
func (t *Telegram) Provision(ctx *core.AppContext) error {
	t.logger = ctx.Logger
	t.client = NewClient(t.config.Token, t.config.APIURL)
	t.now = time.Now
	t.state = health.Healthy()
	t.lastCheck = t.now()

	ctx.RegisterService("delivery.telegram", t)

	if svc, ok := ctx.Service("health.registry"); ok {
		reg, ok := svc.(*health.Registry)
		if !ok {
			return errors.New("telegram: health.registry service is not a *health.Registry")
		}
		if err := reg.Register("telegram", t); err != nil {
			return fmt.Errorf("telegram: %w", err)
		}
	}

	return nil
}

// Validate implements core.Validator.
func (t *Telegram) Validate() error {
	if t.config.Token == "" {
		return errors.New("telegram: token is required")
	}
	return t.config.validate()
}

// HealthState implements health.Reporter. It returns the cached state
// without performing any network activity.
func (t *Telegram) HealthState() health.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// CheckHealth implements health.Checker. If the configured interval has
// elapsed since the last probe it issues a getMe request and updates the
// health state from the outcome; otherwise it returns the cached state
// unchanged. Safe to call on every supervision cycle.
func (t *Telegram) CheckHealth(ctx context.Context) health.State {
	t.mu.Lock()
	now := t.now()
	if now.Sub(t.lastCheck) < t.interval() {
		state := t.state
		t.mu.Unlock()
		return state
	}
	// Claim the probe slot before the outcome is known so that rapid
	// re-invocation during a slow probe does not pile up requests.
	t.lastCheck = now
	t.mu.Unlock()

	t.logger.Info("collecting health check infos from Telegram server")
	if _, err := t.client.GetMe(ctx); err != nil {
		return t.setState(health.Criticalf("failed to get information from Telegram server: %v", err))
	}
	return t.setState(health.Healthy())
}

// Send implements delivery.Deliverer. It serializes msg, performs a single
// sendMessage attempt with link previews disabled, and reports the outcome
// as a boolean. Every attempt updates the health state; no error escapes.
func (t *Telegram) Send(ctx context.Context, chatID int64, threadID int, msg *sms.Message) bool {
	if msg == nil {
		t.setState(health.Criticalf("failed to send Telegram message: nil message"))
		return false
	}

	log := t.logger.With("sms_id", msg.ID())
	log.Info("sending SMS as Telegram message", "chat_id", chatID)

	_, err := t.client.SendMessage(ctx, SendMessageRequest{
		ChatID:             chatID,
		MessageThreadID:    threadID,
		Text:               msg.String(),
		LinkPreviewOptions: &LinkPreviewOptions{IsDisabled: true},
	})
	if err != nil {
		t.setState(health.Criticalf("failed to send Telegram message: %v", err))
		log.Warn("failed to send Telegram message", "error", err)
		return false
	}

	t.setState(health.Healthy())
	log.Info("sending Telegram message was successful")
	return true
}

func (t *Telegram) setState(state health.State) health.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = state
	return state
}

func (t *Telegram) interval() time.Duration {
	return time.Duration(t.config.HealthCheckInterval) * time.Second
}
