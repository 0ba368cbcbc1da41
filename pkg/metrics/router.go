package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the router choose HTTP handler
	RouterChooseLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "router_choose_latency_seconds",
		Help:    "Latency of the policy selection handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of selection requests served
	RouterChooseRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "router_choose_requests_total",
		Help: "Total number of policy selection requests",
	})

	// Snapshot polls answered straight from the redis cache
	RouterSnapshotCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "router_snapshot_cache_hits_total",
		Help: "Snapshot requests served from cache",
	})
)

func Init() {
	prometheus.MustRegister(
		RouterChooseLatency,
		RouterChooseRequests,
		RouterSnapshotCacheHits,
	)
}
