package delivery

import (
	"context"
	"sync"

	"github.com/flemzord/smsbridge/internal/health"
	"github.com/flemzord/smsbridge/internal/sms"
)

// Sent records one delivered message for later inspection.
type Sent struct {
	ChatID   int64
	ThreadID int
	Message  *sms.Message
}

// Mock is a test double that implements Deliverer. It records sent messages
// and reports a configurable health state.
type Mock struct {
	mu     sync.Mutex
	sent   []Sent
	state  health.State
	checks int

	// SendFunc, if set, is called instead of the default recording behavior.
	SendFunc func(ctx context.Context, chatID int64, threadID int, msg *sms.Message) bool
}

// Compile-time interface guard.
var _ Deliverer = (*Mock)(nil)

// NewMock creates a Mock reporting OK.
func NewMock() *Mock {
	return &Mock{state: health.Healthy()}
}

// Send records the message. If SendFunc is set, it delegates to it.
func (m *Mock) Send(ctx context.Context, chatID int64, threadID int, msg *sms.Message) bool {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, chatID, threadID, msg)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, Sent{ChatID: chatID, ThreadID: threadID, Message: msg})
	return true
}

// HealthState implements health.Reporter.
func (m *Mock) HealthState() health.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CheckHealth implements health.Checker. It counts invocations and returns
// the configured state without gating.
func (m *Mock) CheckHealth(_ context.Context) health.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks++
	return m.state
}

// SetHealthState overrides the reported state.
func (m *Mock) SetHealthState(state health.State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
}

// SentMessages returns a copy of all recorded deliveries.
func (m *Mock) SentMessages() []Sent {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]Sent, len(m.sent))
	copy(cp, m.sent)
	return cp
}

// Checks returns how many times CheckHealth was invoked.
func (m *Mock) Checks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checks
}

// Reset clears recorded deliveries.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
}
