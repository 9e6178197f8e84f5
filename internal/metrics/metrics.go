package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roommate_search_requests_total",
			Help: "Total number of roommate searches by sort mode and outcome",
		},
		[]string{"sort", "outcome"},
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roommate_search_duration_seconds",
			Help:    "Duration of the filter, rank and paginate pipeline in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"sort"},
	)

	SearchCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roommate_search_candidates",
			Help:    "Number of candidates surviving the filter per search",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	MessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roommate_messages_sent_total",
			Help: "Total number of direct messages stored",
		},
	)
)

// Search outcomes.
const (
	OutcomeOK               = "ok"
	OutcomeInvalidCriteria  = "invalid_criteria"
	OutcomeUnknownRequester = "unknown_requester"
	OutcomeError            = "error"
)
