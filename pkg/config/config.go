// Package config loads service configuration from an optional YAML file and
// STOREFRONT_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. STOREFRONT_TRACING_HOST.
const EnvPrefix = "STOREFRONT"

// Config is shared by every storefront service.
type Config struct {
	Log             LogConfig     `mapstructure:"log"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Tracing         TracingConfig `mapstructure:"tracing"`
	Gateway         GatewayConfig `mapstructure:"gateway"`
}

// LogConfig sets the minimum level: debug, info, warn or error.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// TracingConfig selects the span exporter. An empty Host disables export,
// "stdout" prints spans and anything else is an OTLP gRPC endpoint.
type TracingConfig struct {
	Host        string  `mapstructure:"host"`
	Probability float64 `mapstructure:"probability"`
}

// GatewayConfig is only read by the gateway service.
type GatewayConfig struct {
	Routes          string        `mapstructure:"routes"`
	CacheSize       int           `mapstructure:"cache_size"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	BackendTimeout  time.Duration `mapstructure:"backend_timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("tracing.host", "")
	v.SetDefault("tracing.probability", 1.0)
	v.SetDefault("gateway.routes", "config/routes.json")
	v.SetDefault("gateway.cache_size", 10)
	v.SetDefault("gateway.cache_ttl", 60*time.Second)
	v.SetDefault("gateway.cleanup_interval", 10*time.Second)
	v.SetDefault("gateway.redis_addr", "")
	v.SetDefault("gateway.backend_timeout", 5*time.Second)
}

// Load reads path (if non-empty) and applies environment overrides on top of
// the defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Gateway.CacheSize <= 0 {
		return Config{}, fmt.Errorf("gateway.cache_size must be positive, got %d", cfg.Gateway.CacheSize)
	}
	if cfg.Gateway.CacheTTL <= 0 {
		return Config{}, fmt.Errorf("gateway.cache_ttl must be positive, got %s", cfg.Gateway.CacheTTL)
	}
	if cfg.Gateway.CleanupInterval <= 0 {
		return Config{}, fmt.Errorf("gateway.cleanup_interval must be positive, got %s", cfg.Gateway.CleanupInterval)
	}
	return cfg, nil
}
