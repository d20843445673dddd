package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/trace"

	"storefront/pkg/config"
	"storefront/pkg/logger"
	"storefront/pkg/metrics"
	"storefront/pkg/otel"
	"storefront/pkg/web"
)

// Fixed service ports.
const (
	UsersPort    = 9001
	ProductsPort = 9002
	OrdersPort   = 9003
	GatewayPort  = 8081
)

// app carries what every service needs once bootstrapped.
type app struct {
	service string
	cfg     config.Config
	log     *logger.Logger
	tracer  trace.Tracer
	metrics *metrics.Metrics
}

func (a *app) router(swagger bool) *mux.Router {
	return web.NewRouter(web.RouterConfig{
		Service: a.service,
		Log:     a.log,
		Tracer:  a.tracer,
		Metrics: a.metrics,
		Swagger: swagger,
	})
}

// run bootstraps config, logging and tracing, lets build assemble the handler
// and serves it on port until ctx is cancelled.
func run(ctx context.Context, service string, port int, build func(ctx context.Context, a *app) (http.Handler, error)) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	level := logger.ParseLevel(cfg.Log.Level)
	if debug {
		level = logger.LevelDebug
	}
	log := logger.New(os.Stdout, level, service, otel.GetTraceID)
	defer log.Sync()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{
		ServiceName: service,
		Host:        cfg.Tracing.Host,
		Probability: cfg.Tracing.Probability,
	})
	if err != nil {
		log.Error(ctx, "init tracing", "error", err)
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			log.Error(sctx, "tracing shutdown", "error", err)
		}
	}()

	a := &app{
		service: service,
		cfg:     cfg,
		log:     log,
		tracer:  tp.Tracer(service),
		metrics: metrics.New(service),
	}
	h, err := build(ctx, a)
	if err != nil {
		log.Error(ctx, "startup", "error", err)
		return err
	}

	srv := &http.Server{
		Addr:    net.JoinHostPort("", strconv.Itoa(port)),
		Handler: h,
	}
	errs := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", srv.Addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server closed", "error", err)
			return fmt.Errorf("serving %s: %w", service, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down", "timeout", cfg.ShutdownTimeout.String())
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		srv.Close()
		return fmt.Errorf("shutting down %s: %w", service, err)
	}
	return nil
}
