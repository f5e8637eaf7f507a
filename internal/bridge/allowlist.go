package bridge

import "strings"

// AllowList controls which senders may have their messages forwarded.
// An empty or nil AllowList allows everyone: the bridge forwards whatever
// the modems receive unless the operator restricts senders explicitly.
type AllowList struct {
	senders map[string]struct{}
}

// NewAllowList creates an AllowList with O(1) lookups. Entries are trimmed
// and lowercased at construction time so that IsAllowed can use direct map
// lookups.
func NewAllowList(senders []string) *AllowList {
	a := &AllowList{
		senders: make(map[string]struct{}, len(senders)),
	}
	for _, s := range senders {
		a.senders[normalize(s)] = struct{}{}
	}
	return a
}

// IsAllowed reports whether the sender is permitted.
//
// Rules:
//   - If the list is empty → allow (no restriction configured).
//   - If the sender matches an entry → allow.
//   - Otherwise → deny.
func (a *AllowList) IsAllowed(sender string) bool {
	if a == nil || len(a.senders) == 0 {
		return true
	}
	_, ok := a.senders[normalize(sender)]
	return ok
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
