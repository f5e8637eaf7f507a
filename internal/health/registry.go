package health

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
)

// Status pairs a reporter name with its health state.
type Status struct {
	Name  string `json:"name"`
	State State  `json:"state"`
}

// Registry aggregates named health reporters into a single ranked signal.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	reporters map[string]Reporter
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{reporters: make(map[string]Reporter)}
}

// Register adds a named reporter. Returns an error if the name is empty or
// already taken.
func (r *Registry) Register(name string, rep Reporter) error {
	if name == "" {
		return fmt.Errorf("health: reporter name must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.reporters[name]; exists {
		return fmt.Errorf("health: reporter already registered: %s", name)
	}
	r.reporters[name] = rep
	return nil
}

// Report returns the cached state of every reporter, sorted by name.
// No network activity is performed.
func (r *Registry) Report() []Status {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Status, 0, len(r.reporters))
	for name, rep := range r.reporters {
		result = append(result, Status{Name: name, State: rep.HealthState()})
	}
	sortStatuses(result)
	return result
}

// CheckAll invokes the gated health check on every reporter that implements
// Checker and returns the resulting states sorted by name. Reporters without
// a Checker contribute their cached state. Each checker's own interval gating
// bounds the upstream load, so CheckAll may be called on every poll cycle.
func (r *Registry) CheckAll(ctx context.Context) []Status {
	r.mu.RLock()
	reporters := make(map[string]Reporter, len(r.reporters))
	for name, rep := range r.reporters {
		reporters[name] = rep
	}
	r.mu.RUnlock()

	result := make([]Status, 0, len(reporters))
	for name, rep := range reporters {
		var state State
		if c, ok := rep.(Checker); ok {
			state = c.CheckHealth(ctx)
		} else {
			state = rep.HealthState()
		}
		result = append(result, Status{Name: name, State: state})
	}
	sortStatuses(result)
	return result
}

// Overall returns the most severe severity across all cached states.
// An empty registry reports OK.
func (r *Registry) Overall() Severity {
	worst := OK
	for _, s := range r.Report() {
		if s.State.Severity > worst {
			worst = s.State.Severity
		}
	}
	return worst
}

func sortStatuses(statuses []Status) {
	slices.SortFunc(statuses, func(a, b Status) int {
		return cmp.Compare(a.Name, b.Name)
	})
}
