// Package gateway fronts the storefront services: it dispatches requests
// through a JSON route table, proxies them to the backends and caches
// successful GET responses.
package gateway

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"storefront/pkg/logger"
	"storefront/pkg/metrics"
	"storefront/pkg/otel"
	"storefront/pkg/web"
)

// Config holds the collaborators of a Gateway.
type Config struct {
	Routes  []Route
	Cache   Cache
	Client  *http.Client
	Log     *logger.Logger
	Tracer  trace.Tracer
	Metrics *metrics.Metrics
}

// Gateway is an http.Handler serving the route table.
type Gateway struct {
	cache   Cache
	client  *http.Client
	log     *logger.Logger
	metrics *metrics.Metrics
	handler http.Handler
}

// New builds the gateway router from cfg.Routes.
func New(cfg Config) *Gateway {
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: 5 * time.Second}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.New("gateway")
	}
	if cfg.Cache == nil {
		cfg.Cache = NewLRUCache(10, time.Minute)
	}

	g := &Gateway{
		cache:   cfg.Cache,
		client:  cfg.Client,
		log:     cfg.Log,
		metrics: cfg.Metrics,
	}

	r := web.NewRouter(web.RouterConfig{
		Service: "gateway",
		Log:     cfg.Log,
		Tracer:  cfg.Tracer,
		Metrics: cfg.Metrics,
	})
	routeNotFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.log.Warn(r.Context(), "no route matched", "method", r.Method, "path", r.URL.Path)
		web.RespondError(w, web.NotFound("Route not found"))
	})
	r.NotFoundHandler = routeNotFound
	r.MethodNotAllowedHandler = routeNotFound

	for _, route := range cfg.Routes {
		var h http.HandlerFunc
		if route.Static() {
			h = g.static(route)
		} else {
			h = g.proxy(route)
		}
		r.HandleFunc(route.Pattern, h).Methods(route.Method)
		g.log.Debug(context.Background(), "route registered", "method", route.Method, "pattern", route.Pattern, "target", route.Target)
	}

	g.handler = web.CORS(r)
	return g
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.handler.ServeHTTP(w, r)
}

func (g *Gateway) static(route Route) http.HandlerFunc {
	body := []byte(route.Response)
	if len(body) == 0 {
		body = []byte("{}")
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeEntry(w, Entry{Status: http.StatusOK, ContentType: "application/json", Body: body})
	}
}

func (g *Gateway) proxy(route Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := otel.AddSpan(r.Context(), "gateway.proxy",
			attribute.String("route.pattern", route.Pattern),
			attribute.String("route.method", route.Method),
		)
		defer span.End()

		key := r.Method + ":" + r.URL.RequestURI()
		if r.Method == http.MethodGet {
			e, ok, err := g.cache.Get(ctx, key)
			switch {
			case err != nil:
				g.log.Warn(ctx, "cache get", "key", key, "error", err)
			case ok:
				g.metrics.CacheHit()
				g.log.Debug(ctx, "cache hit", "key", key)
				writeEntry(w, e)
				return
			}
			g.metrics.CacheMiss()
		}

		target := expandTarget(route.Target, mux.Vars(r))
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}

		var body io.Reader
		if r.Method == http.MethodPost || r.Method == http.MethodPut {
			body = r.Body
		}
		req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
		if err != nil {
			g.log.Error(ctx, "build backend request", "target", target, "error", err)
			web.RespondError(w, web.BadGateway("Backend request failed", err))
			return
		}
		req.Header = r.Header.Clone()
		// The transport negotiates and decodes compression itself; the cached
		// body must stay plain.
		req.Header.Del("Accept-Encoding")
		if body != nil {
			req.ContentLength = r.ContentLength
		}
		otel.InjectHTTP(ctx, req.Header)

		resp, err := g.client.Do(req)
		if err != nil {
			g.log.Error(ctx, "backend request failed", "target", target, "error", err)
			web.RespondError(w, web.BadGateway("Backend request failed", err))
			return
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			g.log.Error(ctx, "read backend response", "target", target, "error", err)
			web.RespondError(w, web.BadGateway("Backend request failed", err))
			return
		}
		e := Entry{Status: resp.StatusCode, ContentType: resp.Header.Get("Content-Type"), Body: data}
		g.log.Info(ctx, "forwarded", "target", target, "status", resp.StatusCode)

		if r.Method == http.MethodGet && resp.StatusCode == http.StatusOK {
			if err := g.cache.Put(ctx, key, e); err != nil {
				g.log.Warn(ctx, "cache put", "key", key, "error", err)
			}
		}
		writeEntry(w, e)
	}
}

func writeEntry(w http.ResponseWriter, e Entry) {
	if e.ContentType != "" {
		w.Header().Set("Content-Type", e.ContentType)
	}
	w.WriteHeader(e.Status)
	w.Write(e.Body)
}
