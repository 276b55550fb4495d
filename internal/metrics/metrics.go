// Package metrics provides Prometheus metrics for the document store
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the document store
type Metrics struct {
	// gRPC request metrics
	GrpcRequestsTotal    *prometheus.CounterVec
	GrpcRequestDuration  *prometheus.HistogramVec
	GrpcRequestsInFlight prometheus.Gauge

	// Database metrics
	DbOperationsTotal   *prometheus.CounterVec
	DbOperationDuration *prometheus.HistogramVec

	// Ledger and tag metrics
	VersionsWrittenTotal prometheus.Counter
	VersionsDeletedTotal prometheus.Counter
	BatchItemsTotal      *prometheus.CounterVec
	TagEventsTotal       *prometheus.CounterVec

	ServerStartTime time.Time
}

// NewMetrics creates the metrics and registers them with reg.
// A nil reg registers with the default Prometheus registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	m := &Metrics{
		ServerStartTime: time.Now(),
	}

	m.GrpcRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docstore_grpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "code"},
	)

	m.GrpcRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docstore_grpc_request_duration_seconds",
			Help:    "Duration of gRPC requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	m.GrpcRequestsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "docstore_grpc_requests_in_flight",
			Help: "Number of gRPC requests currently being processed",
		},
	)

	m.DbOperationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docstore_db_operations_total",
			Help: "Total number of database operations",
		},
		[]string{"operation", "status"},
	)

	m.DbOperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docstore_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	m.VersionsWrittenTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "docstore_versions_written_total",
			Help: "Total number of document versions written",
		},
	)

	m.VersionsDeletedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "docstore_versions_deleted_total",
			Help: "Total number of document versions deleted",
		},
	)

	m.BatchItemsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docstore_batch_items_total",
			Help: "Total number of documents submitted in batch writes",
		},
		[]string{"status"},
	)

	m.TagEventsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docstore_tag_events_total",
			Help: "Total number of tag events recorded",
		},
		[]string{"operation"},
	)

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "docstore_server_uptime_seconds",
			Help: "Server uptime in seconds",
		},
		func() float64 { return m.Uptime().Seconds() },
	)

	return m
}

// Uptime reports how long ago the metrics were created.
func (m *Metrics) Uptime() time.Duration {
	return time.Since(m.ServerStartTime)
}

// RecordGrpcRequest records a gRPC request with its status code
func (m *Metrics) RecordGrpcRequest(method string, code string, duration time.Duration) {
	m.GrpcRequestsTotal.WithLabelValues(method, code).Inc()
	m.GrpcRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordDbOperation records a database operation
func (m *Metrics) RecordDbOperation(operation string, status string, duration time.Duration) {
	m.DbOperationsTotal.WithLabelValues(operation, status).Inc()
	m.DbOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordBatch counts the outcome of each item in a batch write.
func (m *Metrics) RecordBatch(succeeded, failed int) {
	m.BatchItemsTotal.WithLabelValues("success").Add(float64(succeeded))
	m.BatchItemsTotal.WithLabelValues("error").Add(float64(failed))
	m.VersionsWrittenTotal.Add(float64(succeeded))
}

// RecordTagEvent counts one tag event of the given operation.
func (m *Metrics) RecordTagEvent(operation string) {
	m.TagEventsTotal.WithLabelValues(operation).Inc()
}
