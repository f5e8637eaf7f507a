package core

// ModuleID uniquely identifies a module, namespaced by concern
// (e.g. "delivery.telegram", "gateway.http").
type ModuleID string

// ModuleInfo describes a registered module.
type ModuleInfo struct {
	// ID is the unique module identifier.
	ID ModuleID

	// New returns a fresh, unconfigured instance of the module.
	New func() Module
}

// Module is the minimal interface every smsbridge module implements.
// Optional lifecycle behavior is expressed through the interfaces in
// lifecycle.go.
type Module interface {
	ModuleInfo() ModuleInfo
}
