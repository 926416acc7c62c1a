package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avaldez/nookstop-backend/pkg/metrics"
)

// Metrics records request counters and latency for every handled request,
// labeled by the matched chi route pattern rather than the raw path.
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			release := m.TrackInFlight()
			defer release()

			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}

			pattern := ""
			if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
				pattern = routeCtx.RoutePattern()
			}
			m.ObserveRequest(r.Method, pattern, rec.status, time.Since(start))
		})
	}
}
