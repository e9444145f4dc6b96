package telemetry

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all custom metrics for the service. A nil *Metrics is valid
// and records nothing, so callers never have to branch on telemetry being off.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal metric.Int64Counter
	HTTPDurationMs    metric.Float64Histogram

	// Store metrics
	PatientOpsTotal      metric.Int64Counter
	ConsultationOpsTotal metric.Int64Counter
	EmptySearchTotal     metric.Int64Counter

	// Persistence metrics
	StorageSaveDurationMs metric.Float64Histogram
	StorageFailuresTotal  metric.Int64Counter
}

// InitMetrics initializes all custom metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("github.com/clinica-vida/clinic-service")

	httpRequestsTotal, err := meter.Int64Counter(
		"http_server_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	httpDurationMs, err := meter.Float64Histogram(
		"http_server_duration_milliseconds",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	patientOpsTotal, err := meter.Int64Counter(
		"patient_operations_total",
		metric.WithDescription("Total number of patient store operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	consultationOpsTotal, err := meter.Int64Counter(
		"consultation_operations_total",
		metric.WithDescription("Total number of consultation store operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	emptySearchTotal, err := meter.Int64Counter(
		"search_empty_total",
		metric.WithDescription("Total number of patient searches with no results"),
		metric.WithUnit("{search}"),
	)
	if err != nil {
		return nil, err
	}

	storageSaveDurationMs, err := meter.Float64Histogram(
		"storage_save_duration_milliseconds",
		metric.WithDescription("Slot save duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	storageFailuresTotal, err := meter.Int64Counter(
		"storage_failures_total",
		metric.WithDescription("Total number of slot load/save failures"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	log.Println("✓ Custom metrics initialized")

	return &Metrics{
		HTTPRequestsTotal:     httpRequestsTotal,
		HTTPDurationMs:        httpDurationMs,
		PatientOpsTotal:       patientOpsTotal,
		ConsultationOpsTotal:  consultationOpsTotal,
		EmptySearchTotal:      emptySearchTotal,
		StorageSaveDurationMs: storageSaveDurationMs,
		StorageFailuresTotal:  storageFailuresTotal,
	}, nil
}

// RecordHTTPRequest records an HTTP request metric
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, route string, statusCode int, durationMs float64) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("http_method", method),
		attribute.String("http_route", route),
		attribute.Int("http_status_code", statusCode),
	}
	m.HTTPRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.HTTPDurationMs.Record(ctx, durationMs, metric.WithAttributes(attrs...))
}

// RecordPatientOperation records a patient store operation metric
func (m *Metrics) RecordPatientOperation(ctx context.Context, operation string) {
	if m == nil {
		return
	}
	m.PatientOpsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordConsultationOperation records a consultation store operation metric
func (m *Metrics) RecordConsultationOperation(ctx context.Context, operation string) {
	if m == nil {
		return
	}
	m.ConsultationOpsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordEmptySearch records a search that matched nothing
func (m *Metrics) RecordEmptySearch(ctx context.Context) {
	if m == nil {
		return
	}
	m.EmptySearchTotal.Add(ctx, 1)
}

// RecordStorageSave records a successful slot save
func (m *Metrics) RecordStorageSave(ctx context.Context, slot string, durationMs float64) {
	if m == nil {
		return
	}
	m.StorageSaveDurationMs.Record(ctx, durationMs, metric.WithAttributes(
		attribute.String("slot", slot),
	))
}

// RecordStorageFailure records a failed slot load or save
func (m *Metrics) RecordStorageFailure(ctx context.Context, slot string) {
	if m == nil {
		return
	}
	m.StorageFailuresTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("slot", slot),
	))
}
