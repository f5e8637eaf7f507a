package bridge

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Forwarding counters, exposed via the gateway's /metrics endpoint.
var (
	forwardedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smsbridge",
		Subsystem: "bridge",
		Name:      "forwarded_total",
		Help:      "SMS successfully forwarded, by delivery target.",
	}, []string{"target"})

	failedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smsbridge",
		Subsystem: "bridge",
		Name:      "failed_total",
		Help:      "SMS the delivery target rejected, by delivery target.",
	}, []string{"target"})

	blockedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "smsbridge",
		Subsystem: "bridge",
		Name:      "blocked_total",
		Help:      "SMS dropped because the sender is not on the allow-list.",
	})

	unroutedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "smsbridge",
		Subsystem: "bridge",
		Name:      "unrouted_total",
		Help:      "SMS dropped because no healthy route matched the recipient.",
	})
)
