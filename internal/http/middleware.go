package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/clinica-vida/clinic-service/internal/telemetry"
)

// statusRecorder captures the status code written by the handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware records a request counter and duration histogram per
// route. The route template (not the raw path) is used so ids don't explode
// metric cardinality.
func MetricsMiddleware(metrics *telemetry.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(recorder, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}
			metrics.RecordHTTPRequest(r.Context(), r.Method, route, recorder.status,
				float64(time.Since(start).Microseconds())/1000.0)
		})
	}
}
