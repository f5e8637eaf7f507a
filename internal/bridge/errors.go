package bridge

import "errors"

// Sentinel errors for forwarding outcomes. Callers map these to their own
// surface (e.g. HTTP status codes) via errors.Is.
var (
	// ErrSenderBlocked means the sender did not pass the allow-list.
	ErrSenderBlocked = errors.New("bridge: sender not allowed")

	// ErrNoRoute means no healthy delivery target matched the recipient.
	ErrNoRoute = errors.New("bridge: no healthy route")

	// ErrDeliveryFailed means the selected target rejected the send attempt.
	// Failure detail is available via the target's health state.
	ErrDeliveryFailed = errors.New("bridge: delivery failed")
)
