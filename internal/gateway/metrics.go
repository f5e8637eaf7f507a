package gateway

import (
	"sync/atomic"
	"time"
)

// Metrics tracks gateway-level counters using atomic operations for lock-free
// concurrency. Prometheus counters cover the forwarding pipeline; these feed
// the /status JSON view.
type Metrics struct {
	received     atomic.Int64
	accepted     atomic.Int64
	rejected     atomic.Int64
	totalLatency atomic.Int64 // nanoseconds, accepted requests only
}

// RecordReceived records an inbound webhook request.
func (m *Metrics) RecordReceived() {
	m.received.Add(1)
}

// RecordAccepted records a successfully forwarded SMS.
func (m *Metrics) RecordAccepted(latency time.Duration) {
	m.accepted.Add(1)
	m.totalLatency.Add(int64(latency))
}

// RecordRejected records a webhook request that did not result in delivery.
func (m *Metrics) RecordRejected() {
	m.rejected.Add(1)
}

// Snapshot returns a consistent point-in-time view of the counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	accepted := m.accepted.Load()
	snap := MetricsSnapshot{
		Received: m.received.Load(),
		Accepted: accepted,
		Rejected: m.rejected.Load(),
	}
	if accepted > 0 {
		snap.AvgLatency = time.Duration(m.totalLatency.Load() / accepted)
	}
	return snap
}

// MetricsSnapshot is a serializable point-in-time metrics view.
type MetricsSnapshot struct {
	Received   int64         `json:"received"`
	Accepted   int64         `json:"accepted"`
	Rejected   int64         `json:"rejected"`
	AvgLatency time.Duration `json:"avg_latency_ns"`
}
