package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultDispatched = "dispatched"
	resultRetried    = "retried"
	resultFailed     = "failed"
)

var (
	outboxEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courier_outbox_events_total",
			Help: "Outbox events processed by the relay, by kind and result",
		},
		[]string{"kind", "result"},
	)
	outboxClaimedBatch = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "courier_outbox_claimed_batch_size",
		Help:    "Number of outbox events claimed per relay run",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	})
)
