package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Signup Metrics
var (
	// SignupsTotal tracks signup attempts by activity and outcome
	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_signups_total",
			Help: "Total signup attempts by activity and status",
		},
		[]string{"activity", "status"},
	)

	// UnregistrationsTotal tracks unregister attempts by activity and outcome
	UnregistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_unregistrations_total",
			Help: "Total unregister attempts by activity and status",
		},
		[]string{"activity", "status"},
	)

	// RosterSize tracks the current participant count per activity
	RosterSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "activity_roster_size",
			Help: "Current number of participants per activity",
		},
		[]string{"activity"},
	)
)

// Outcome labels for the counters above.
const (
	StatusOK       = "ok"
	StatusRejected = "rejected"
)
