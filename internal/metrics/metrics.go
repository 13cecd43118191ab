package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InsertAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "renovatrack_store_insert_attempts_total",
			Help: "Remote insert attempts, one per candidate payload shape tried",
		},
		[]string{"table"},
	)

	ShapeRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "renovatrack_store_shape_rejections_total",
			Help: "Candidate payload shapes rejected by the remote store",
		},
		[]string{"table", "code"},
	)

	LocalFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "renovatrack_store_local_fallbacks_total",
			Help: "Creates served from the local durable fallback after remote exhaustion",
		},
		[]string{"entity"},
	)

	BackendCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "renovatrack_backend_calls_total",
			Help: "Alternate backend calls by operation and outcome",
		},
		[]string{"operation", "status"},
	)
)

// RecordInsertAttempt counts one candidate shape attempt against a table.
func RecordInsertAttempt(table string) {
	InsertAttempts.WithLabelValues(table).Inc()
}

// RecordShapeRejection counts one rejected candidate shape.
func RecordShapeRejection(table, code string) {
	if code == "" {
		code = "unknown"
	}
	ShapeRejections.WithLabelValues(table, code).Inc()
}

// RecordLocalFallback counts one create satisfied locally.
func RecordLocalFallback(entity string) {
	LocalFallbacks.WithLabelValues(entity).Inc()
}

// RecordBackendCall counts one alternate-backend call.
func RecordBackendCall(operation, status string) {
	BackendCalls.WithLabelValues(operation, status).Inc()
}
