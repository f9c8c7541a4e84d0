package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
)

// statusRecorder captures the response status code for instrumentation
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// Middleware instruments every request with prometheus metrics, a server
// span and a structured access log entry. The route template (not the raw
// path) labels metrics and spans so patient ids and the like do not explode
// cardinality. Spans go through the global tracer provider: a no-op unless
// InitTracing has installed one.
func Middleware(log *logger.Logger) mux.MiddlewareFunc {
	tracer := otel.Tracer("hms-server/http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			endpoint := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					endpoint = tmpl
				}
			}

			ctx, span := tracer.Start(r.Context(), r.Method+" "+endpoint,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPMethod(r.Method),
					semconv.HTTPRoute(endpoint),
				),
			)

			next.ServeHTTP(rec, r.WithContext(ctx))

			span.SetAttributes(semconv.HTTPStatusCode(rec.status))
			span.End()

			duration := time.Since(start)
			RecordHTTPRequest(r.Method, endpoint, strconv.Itoa(rec.status), duration.Seconds())
			log.HTTPRequest(r.Method, r.URL.Path, rec.status, duration.Milliseconds())
		})
	}
}
