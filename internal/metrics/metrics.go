// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "readinglog_renders_total",
		Help: "List renders served, by output format.",
	}, []string{"format"})

	ItemsAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "readinglog_items_added_total",
		Help: "Items accepted through the add endpoint.",
	})

	StoreReadRecoveriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "readinglog_store_read_recoveries_total",
		Help: "Store reads that failed and were served as an empty collection.",
	})
)
