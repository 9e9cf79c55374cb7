// internal/monitoring/metrics.go
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run counters. Stages: discovery, crawl, qa, discussion. Kinds: qa, discussion.
var (
	PagesFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "qaharvest",
		Name:      "pages_fetched_total",
		Help:      "Pages fetched successfully, by pipeline stage.",
	}, []string{"stage"})

	FetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "qaharvest",
		Name:      "fetch_errors_total",
		Help:      "Transport failures and non-200 responses, by pipeline stage.",
	}, []string{"stage"})

	RecordsExtracted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "qaharvest",
		Name:      "records_extracted_total",
		Help:      "Records produced by the extractors, by record kind.",
	}, []string{"kind"})

	DuplicatesRemoved = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "qaharvest",
		Name:      "duplicates_removed_total",
		Help:      "Records dropped at format time as exact duplicates, by record kind.",
	}, []string{"kind"})

	SnapshotsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "qaharvest",
		Name:      "snapshots_written_total",
		Help:      "Intermediate snapshot files written during extraction.",
	})
)
