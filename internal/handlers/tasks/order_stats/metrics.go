package order_stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OrdersTotal = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "orders_total",
		Help: "Current number of orders in the store",
	},
)
