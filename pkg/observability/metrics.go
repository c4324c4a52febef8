package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// InitMetrics initializes the Prometheus metrics exporter.
// Returns the MeterProvider and an HTTP handler for the /metrics endpoint.
func InitMetrics(_ MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	handler := promhttp.Handler()

	return provider, handler, nil
}

// Service-level collectors, registered on the default prometheus registry.
var (
	PaymentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payments_processed_total",
		Help: "Payments recorded, labelled by final status.",
	}, []string{"status"})

	BankRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bank_requests_total",
		Help: "Outbound acquiring-bank requests, labelled by outcome.",
	}, []string{"outcome"})

	BankRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bank_request_duration_seconds",
		Help:    "Acquiring-bank round-trip latency.",
		Buckets: prometheus.DefBuckets,
	})
)
