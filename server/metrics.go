package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the server-owned Prometheus collectors on a private
// registry, so tests can build servers without collector name collisions.
type metrics struct {
	registry    *prometheus.Registry
	validations *prometheus.CounterVec
	inputErrors *prometheus.CounterVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	return &metrics{
		registry: reg,
		validations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "pipecheck_validations_total",
			Help: "Completed pipeline validations by structural verdict.",
		}, []string{"verdict"}),
		inputErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "pipecheck_validation_errors_total",
			Help: "Rejected validation requests by error kind.",
		}, []string{"kind"}),
	}
}
