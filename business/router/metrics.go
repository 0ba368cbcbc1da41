package router

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RouterDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "router_decisions_total",
			Help: "Count of policy selections by chosen policy.",
		},
		[]string{"policy_id"},
	)

	RouterFeedbackEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "router_feedback_events_total",
			Help: "Count of accepted reward updates by policy.",
		},
		[]string{"policy_id"},
	)

	RouterEventLogErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "router_event_log_errors_total",
			Help: "Reward events that could not be persisted.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RouterDecisionsTotal,
		RouterFeedbackEventsTotal,
		RouterEventLogErrorsTotal,
	)
}
