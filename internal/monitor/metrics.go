package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// severityGauge mirrors each reporter's health severity: 0 OK, 1 WARNING,
// 2 CRITICAL.
var severityGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "smsbridge",
	Subsystem: "health",
	Name:      "severity",
	Help:      "Current health severity per reporter (0 OK, 1 WARNING, 2 CRITICAL).",
}, []string{"reporter"})
