package order_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OrderEventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_events_published_total",
		Help: "Total number of order lifecycle events published to Kafka",
	},
	[]string{"event", "status"},
)
