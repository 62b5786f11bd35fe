package dataset

import "github.com/prometheus/client_golang/prometheus"

// RegisterRecordGauge publishes the per-collection record counts. The
// dataset never changes after load, so the gauge is set once.
func RegisterRecordGauge(reg *prometheus.Registry, store *Store) {
	g := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_records",
			Help: "Records loaded from the bundled dataset, per collection",
		},
		[]string{"collection"},
	)
	reg.MustRegister(g)

	g.WithLabelValues("customers").Set(float64(len(store.Customers())))
	g.WithLabelValues("products").Set(float64(len(store.Products())))
}
