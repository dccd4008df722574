package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sidereusnuntius/blogs/internal/csvimport"
)

var (
	reqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "blogs",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	reqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blogs", Name: "http_requests_total", Help: "Total HTTP requests"},
		[]string{"method", "path", "status"},
	)
	accessDenied = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blogs", Name: "access_denied_total", Help: "Requests rejected by the access check, by reason"},
		[]string{"reason"},
	)
	importRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blogs", Name: "csv_import_rows_total", Help: "CSV rows processed by outcome"},
		[]string{"outcome"},
	)
	importDecodeFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "blogs", Name: "csv_import_decode_failures_total", Help: "CSV uploads that were neither UTF-8 nor Windows-1251"},
	)
)

func init() {
	prometheus.MustRegister(reqDuration, reqTotal, accessDenied, importRows, importDecodeFailures)
}

// MetricsMiddleware records basic HTTP metrics, labelled by route pattern rather than by raw path.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		path := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}
		labels := []string{r.Method, path, strconv.Itoa(status)}
		reqDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		reqTotal.WithLabelValues(labels...).Inc()
	})
}

func recordImport(result csvimport.Result, err error) {
	if errors.Is(err, csvimport.ErrDecode) {
		importDecodeFailures.Inc()
		return
	}
	importRows.WithLabelValues("created").Add(float64(result.Created))
	importRows.WithLabelValues("skipped").Add(float64(len(result.Skipped)))
}
