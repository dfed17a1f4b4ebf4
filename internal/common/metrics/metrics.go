// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voteview_searches_total",
			Help: "Total number of search requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "voteview_search_duration_seconds",
			Help: "Duration of search requests in seconds",
		},
		[]string{"endpoint"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voteview_cache_hits_total",
			Help: "Total number of search responses served from cache",
		},
		[]string{"endpoint"},
	)

	DownloadChunks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voteview_download_chunks_total",
			Help: "Total number of bulk-download chunks by status",
		},
		[]string{"status"},
	)
)
