package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "casedex",
			Name:      "search_cache_total",
			Help:      "Search result cache lookups by outcome",
		},
		[]string{"result"},
	)

	EnrichmentFillsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "casedex",
			Name:      "enrichment_fills_total",
			Help:      "Case fields back-filled by read-time enrichment",
		},
		[]string{"field"},
	)
)

// RegisterSearchMetrics registers search metrics explicitly (no init()).
func RegisterSearchMetrics() {
	prometheus.MustRegister(SearchCacheTotal)
	prometheus.MustRegister(EnrichmentFillsTotal)
}
