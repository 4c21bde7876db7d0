package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	GatewayRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "satim",
			Name:      "requests_total",
			Help:      "Outbound SATIM calls by endpoint and result",
		},
		[]string{"endpoint", "status"},
	)

	GatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "satim",
			Name:      "request_duration_seconds",
			Help:      "Latency of outbound SATIM calls",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"endpoint", "status"},
	)

	PaymentOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "satim",
			Name:      "payment_outcomes_total",
			Help:      "Classified confirm and refund outcomes",
		},
		[]string{"operation", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(GatewayRequestsTotal, GatewayRequestDuration, PaymentOutcomesTotal)
}

func ObserveRequest(endpoint, status string, seconds float64) {
	GatewayRequestsTotal.WithLabelValues(endpoint, status).Inc()
	GatewayRequestDuration.WithLabelValues(endpoint, status).Observe(seconds)
}

func IncOutcome(operation, outcome string) {
	PaymentOutcomesTotal.WithLabelValues(operation, outcome).Inc()
}
