package rules

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courier_rules_cache_hits_total",
		Help: "Number of rule reads served from the in-process cache",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courier_rules_cache_misses_total",
		Help: "Number of rule reads that went to the database",
	})
)
