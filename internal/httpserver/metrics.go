package httpserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	salesFinalized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_sales_finalized_total",
		Help: "Number of finalized sales.",
	}, []string{"store"})

	salesRevenue = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_sales_revenue_total",
		Help: "Revenue of finalized sales in whole currency units.",
	}, []string{"store"})
)
