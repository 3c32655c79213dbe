package planner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("lvroute.planner")

var (
	// queryTotal counts route queries by strategy and result
	queryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvroute_query_total",
		Help: "Total route queries by strategy and result",
	}, []string{"strategy", "result"})

	// queryDuration tracks search latency
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lvroute_query_duration_seconds",
		Help:    "Route query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00005, 2, 16), // 50us to ~1.6s
	}, []string{"strategy"})

	// queryExpansions tracks nodes expanded per successful query
	queryExpansions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lvroute_query_expansions",
		Help:    "Nodes expanded per successful route query",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"strategy"})
)

// Result labels for queryTotal.
const (
	resultOK       = "ok"
	resultNotFound = "not_found"
	resultTimeout  = "timeout"
	resultInvalid  = "invalid"
	resultError    = "error"
)
