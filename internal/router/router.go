// Package router selects a delivery target for an SMS recipient number.
//
// Routes map phone-number prefixes (e.g. "+49152", "+49") to named targets.
// Each target carries a relative cost and a delivery backend. Lookup collects
// every target registered for any sub-prefix of the recipient number, filters
// out targets whose backend does not currently report OK, and returns the
// cheapest remaining candidate.
//
// There is no sophisticated modeling of prices. Currencies do not exist in
// this model; destinations billed in another currency can be split into
// their own prefixes.
package router

import (
	"fmt"
	"sync"

	"github.com/flemzord/smsbridge/internal/delivery"
)

// minPrefixLen is the shortest prefix considered during lookup. A bare "+"
// never matches.
const minPrefixLen = 2

// Target is a named delivery destination with a relative cost.
type Target struct {
	// Name identifies the target in config, logs, and health reports.
	Name string

	// ChatID is the destination chat for this target.
	ChatID int64

	// ThreadID optionally routes into a sub-thread of the chat. Zero = none.
	ThreadID int

	// Cost is the relative cost of delivering via this target. Lookup picks
	// the cheapest healthy candidate.
	Cost float64

	// Deliverer performs the actual send and reports health.
	Deliverer delivery.Deliverer
}

// Router is a prefix-based route table. It is safe for concurrent use.
type Router struct {
	mu      sync.RWMutex
	routes  map[string]map[string]struct{} // prefix -> set of target names
	targets map[string]Target
}

// New creates an empty Router.
func New() *Router {
	return &Router{
		routes:  make(map[string]map[string]struct{}),
		targets: make(map[string]Target),
	}
}

// Add registers a target for the given prefixes. Registering an existing
// target name again merges the new prefixes into its route set.
func (r *Router) Add(t Target, prefixes []string) error {
	if t.Name == "" {
		return fmt.Errorf("router: target name must not be empty")
	}
	if t.Deliverer == nil {
		return fmt.Errorf("router: target %s has no deliverer", t.Name)
	}
	if len(prefixes) == 0 {
		return fmt.Errorf("router: target %s has no prefixes", t.Name)
	}
	for _, p := range prefixes {
		if len(p) < minPrefixLen {
			return fmt.Errorf("router: prefix %q too short (minimum %d characters)", p, minPrefixLen)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.targets[t.Name] = t
	for _, p := range prefixes {
		set, ok := r.routes[p]
		if !ok {
			set = make(map[string]struct{})
			r.routes[p] = set
		}
		set[t.Name] = struct{}{}
	}
	return nil
}

// Lookup returns the cheapest healthy target for the recipient number.
// Candidates are gathered from every sub-prefix of the number down to
// minPrefixLen; a target only qualifies while its deliverer reports OK.
// The second return value is false when no healthy route exists.
func (r *Router) Lookup(recipient string) (Target, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	candidates := make(map[string]struct{})
	for l := len(recipient); l >= minPrefixLen; l-- {
		set, ok := r.routes[recipient[:l]]
		if !ok {
			continue
		}
		for name := range set {
			if _, seen := candidates[name]; seen {
				continue
			}
			if r.targets[name].Deliverer.HealthState().IsOK() {
				candidates[name] = struct{}{}
			}
		}
	}

	var best Target
	found := false
	for name := range candidates {
		t := r.targets[name]
		// Tie-break on name for deterministic selection.
		if !found || t.Cost < best.Cost || (t.Cost == best.Cost && t.Name < best.Name) {
			best = t
			found = true
		}
	}
	return best, found
}

// Targets returns all registered targets in unspecified order.
func (r *Router) Targets() []Target {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Target, 0, len(r.targets))
	for _, t := range r.targets {
		result = append(result, t)
	}
	return result
}
