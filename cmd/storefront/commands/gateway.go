package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"storefront/pkg/config"
	"storefront/pkg/gateway"
)

var gatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Run the API gateway on :8081",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), "gateway", GatewayPort, buildGateway)
	},
}

func init() {
	rootCmd.AddCommand(gatewayCmd)
}

func buildGateway(ctx context.Context, a *app) (http.Handler, error) {
	gc := a.cfg.Gateway
	routes, err := gateway.LoadRoutes(gc.Routes)
	if err != nil {
		return nil, err
	}
	a.log.Info(ctx, "routes loaded", "file", gc.Routes, "count", len(routes))

	cache, err := newGatewayCache(ctx, a, gc)
	if err != nil {
		return nil, err
	}

	return gateway.New(gateway.Config{
		Routes:  routes,
		Cache:   cache,
		Client:  &http.Client{Timeout: gc.BackendTimeout},
		Log:     a.log,
		Tracer:  a.tracer,
		Metrics: a.metrics,
	}), nil
}

// newGatewayCache uses Redis when an address is configured, otherwise an
// in-process LRU whose cleaner runs until ctx is cancelled.
func newGatewayCache(ctx context.Context, a *app, gc config.GatewayConfig) (gateway.Cache, error) {
	if gc.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: gc.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connecting to redis %s: %w", gc.RedisAddr, err)
		}
		context.AfterFunc(ctx, func() { client.Close() })
		a.log.Info(ctx, "gateway cache", "backend", "redis", "addr", gc.RedisAddr, "ttl", gc.CacheTTL.String())
		return gateway.NewRedisCache(client, gc.CacheTTL), nil
	}

	lru := gateway.NewLRUCache(gc.CacheSize, gc.CacheTTL)
	go lru.RunCleaner(ctx, gc.CleanupInterval, a.log)
	a.log.Info(ctx, "gateway cache", "backend", "lru", "size", gc.CacheSize, "ttl", gc.CacheTTL.String())
	return lru, nil
}
