// Package health defines the shared health contract for smsbridge components.
//
// Every delivery backend reports a single evolving health signal: a severity
// plus an optional human-readable detail describing the most recent failure.
// Severities are ordered so that aggregation can report the most severe level.
package health

import (
	"context"
	"encoding/json"
	"fmt"
)

// Severity classifies a component's health. Higher values are more severe.
type Severity int

const (
	// OK means the dependency was reachable on the last attempt.
	OK Severity = iota

	// Warning means degraded but reachable. No current probe produces it;
	// it is part of the contract for future backends.
	Warning

	// Critical means the dependency was unreachable or rejected the last attempt.
	Critical
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalJSON renders the severity as its string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// State is a point-in-time health signal. Invariant: Detail is empty when
// Severity is OK and non-empty otherwise.
type State struct {
	Severity Severity `json:"severity"`
	Detail   string   `json:"detail,omitempty"`
}

// Healthy returns an OK state with no detail.
func Healthy() State {
	return State{Severity: OK}
}

// Criticalf returns a CRITICAL state with a formatted detail message.
func Criticalf(format string, args ...any) State {
	return State{Severity: Critical, Detail: fmt.Sprintf(format, args...)}
}

// IsOK reports whether the state carries no failure.
func (s State) IsOK() bool {
	return s.Severity == OK
}

// Reporter exposes the last measured health state. Implementations must not
// perform network activity in HealthState.
type Reporter interface {
	HealthState() State
}

// Checker extends Reporter with an on-demand, interval-gated probe.
// CheckHealth must be cheap to call frequently: implementations gate the
// actual network probe on their configured interval and return the cached
// state when the interval has not elapsed.
type Checker interface {
	Reporter
	CheckHealth(ctx context.Context) State
}
