// Package delivery defines the contract between the bridge and its outbound
// delivery backends.
package delivery

import (
	"context"

	"github.com/flemzord/smsbridge/internal/health"
	"github.com/flemzord/smsbridge/internal/sms"
)

// Deliverer hands a message off to a downstream messaging dependency and
// tracks that dependency's reachability.
//
// Send performs exactly one attempt and reports the outcome as a boolean;
// no error ever escapes it. Failure detail is available through the health
// side channel: every attempt, successful or not, updates the state returned
// by HealthState.
type Deliverer interface {
	health.Checker

	// Send serializes msg and delivers it to the given chat. threadID routes
	// the message into a sub-thread of the chat; zero means no thread.
	Send(ctx context.Context, chatID int64, threadID int, msg *sms.Message) bool
}
