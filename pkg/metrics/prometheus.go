package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EntitiesGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workseed_entities_generated_total",
			Help: "Total number of generated entities by kind",
		},
		[]string{"kind"},
	)

	StoreBatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workseed_store_batches_total",
			Help: "Total number of persisted batches by table",
		},
		[]string{"table"},
	)

	TextFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workseed_text_fallbacks_total",
			Help: "Total number of template fallbacks taken by content kind",
		},
		[]string{"kind"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workseed_stage_duration_seconds",
			Help:    "Generation stage duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
		[]string{"stage"},
	)
)
