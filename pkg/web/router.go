package web

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"storefront/pkg/logger"
	"storefront/pkg/metrics"
)

// RouterConfig is what every service router is assembled from.
type RouterConfig struct {
	Service string
	Log     *logger.Logger
	Tracer  trace.Tracer
	Metrics *metrics.Metrics
	// Swagger serves the docs registered under Service at /swagger/.
	Swagger bool
}

// NewRouter returns a router with the shared middleware chain and /metrics.
// Resource handlers register on it.
func NewRouter(cfg RouterConfig) *mux.Router {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(cfg.Service)
	}
	m := cfg.Metrics
	if m == nil {
		m = metrics.New(cfg.Service)
	}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		Respond(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		Respond(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
	})

	r.Use(RequestID, Trace(tracer), Logger(cfg.Log), Metrics(m))

	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	if cfg.Swagger {
		r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(httpSwagger.InstanceName(cfg.Service)))
	}

	return r
}
