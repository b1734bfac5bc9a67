package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PostsNormalized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subscraper_posts_normalized_total",
		Help: "The total number of post-like records normalized by category",
	}, []string{"category"})

	MediaProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subscraper_media_processed_total",
		Help: "The total number of media entries by pipeline outcome",
	}, []string{"outcome"})

	MediaLinked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subscraper_media_linked_total",
		Help: "Media found duplicated under another category",
	}, []string{"category"})

	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subscraper_api_requests_total",
		Help: "The total number of platform API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "subscraper_api_request_duration_seconds",
		Help:    "Duration of platform API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	MassMessagesReconciled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subscraper_mass_messages_reconciled_total",
		Help: "Mass message queue entries by reconciliation status",
	}, []string{"status"})

	ScrapePassDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "subscraper_scrape_pass_duration_seconds",
		Help:    "Duration of a scrape pass over one subscription",
		Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600, 1800},
	})

	LedgerRowsCleaned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "subscraper_ledger_rows_cleaned_total",
		Help: "Rows removed from the media ledger by retention cleanup",
	})
)

// Media pipeline outcomes.
const (
	OutcomeAccepted  = "accepted"
	OutcomeNoLink    = "no_link"
	OutcomeUploading = "uploading"
	OutcomeWrongType = "wrong_type"
	OutcomeIgnored   = "ignored_keyword"
	OutcomeBadPath   = "bad_path"
)
