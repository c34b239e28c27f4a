package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ProductFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_product_fetches_total",
			Help: "Total number of upstream product fetches",
		},
		[]string{"status"},
	)

	ProductFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_product_fetch_duration_seconds",
			Help:    "Time taken to fetch the product list",
			Buckets: prometheus.DefBuckets,
		},
	)

	ProductsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_products_loaded",
			Help: "Number of products currently held in memory",
		},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
