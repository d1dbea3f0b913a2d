package spoonacular

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_finder_upstream_requests_total",
			Help: "Total number of requests sent to the recipe API",
		},
		[]string{"endpoint", "status"},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipe_finder_upstream_request_duration_seconds",
			Help:    "Recipe API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	cacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_finder_cache_hits_total",
			Help: "Total number of recipe API responses served from cache",
		},
		[]string{"endpoint"},
	)

	cacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_finder_cache_misses_total",
			Help: "Total number of recipe API lookups not found in cache",
		},
		[]string{"endpoint"},
	)
)
