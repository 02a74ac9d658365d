package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dexplorer/orderscan/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration for admin routes
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// OrderbookEndpoint is one order-book deployment for a network. Endpoints
// are probed in list order until an order is found.
type OrderbookEndpoint struct {
	Environment domain.Environment `mapstructure:"environment"`
	URL         string             `mapstructure:"url"`
}

// NetworkConfig holds per-network upstream endpoints
type NetworkConfig struct {
	Orderbook []OrderbookEndpoint `mapstructure:"orderbook"`
	Subgraph  string              `mapstructure:"subgraph"`
	RPCURL    string              `mapstructure:"rpc_url"`
	TokenList string              `mapstructure:"token_list"`
}

// TraceConfig holds the transaction trace/simulation API configuration
type TraceConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	AccessKey string `mapstructure:"access_key"`
}

// ResolverConfig holds the cross-network search configuration.
// SearchOrder is a fixed priority list; the currently selected network is
// always probed first regardless of its position here.
type ResolverConfig struct {
	SearchOrder []domain.Network `mapstructure:"search_order"`
}

// HTTPConfig holds the shared HTTP client configuration
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig holds rate limiting for a single upstream provider
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// RateLimiterConfig holds per-provider rate limits
type RateLimiterConfig struct {
	PoolSize  int                        `mapstructure:"pool_size"`
	Providers map[string]RateLimitConfig `mapstructure:"providers"`
}

// WatchConfig holds polling layer configuration
type WatchConfig struct {
	OrderInterval time.Duration `mapstructure:"order_interval"`
	TxInterval    time.Duration `mapstructure:"tx_interval"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Server      ServerConfig                     `mapstructure:"server"`
	Auth        AuthConfig                       `mapstructure:"auth"`
	Networks    map[domain.Network]NetworkConfig `mapstructure:"networks"`
	Resolver    ResolverConfig                   `mapstructure:"resolver"`
	Trace       TraceConfig                      `mapstructure:"trace"`
	HTTP        HTTPConfig                       `mapstructure:"http"`
	RateLimiter RateLimiterConfig                `mapstructure:"rate_limiter"`
	Watch       WatchConfig                      `mapstructure:"watch"`
}

// LookupConfig holds configuration for the lookup tool
type LookupConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Networks    map[domain.Network]NetworkConfig `mapstructure:"networks"`
	Resolver    ResolverConfig                   `mapstructure:"resolver"`
	Trace       TraceConfig                      `mapstructure:"trace"`
	HTTP        HTTPConfig                       `mapstructure:"http"`
	RateLimiter RateLimiterConfig                `mapstructure:"rate_limiter"`
	Watch       WatchConfig                      `mapstructure:"watch"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("http.timeout", "30s")
	v.SetDefault("rate_limiter.pool_size", 64)
	v.SetDefault("watch.order_interval", "10s")
	v.SetDefault("watch.tx_interval", "15s")
	setResolverDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateNetworks(config.Networks, config.Resolver); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadLookupConfig loads configuration for the lookup tool
func LoadLookupConfig(configFile string, envPath string) (*LookupConfig, error) {
	v := configureViper("lookup", configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("http.timeout", "30s")
	v.SetDefault("rate_limiter.pool_size", 16)
	v.SetDefault("watch.order_interval", "10s")
	v.SetDefault("watch.tx_interval", "15s")
	setResolverDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config LookupConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateNetworks(config.Networks, config.Resolver); err != nil {
		return nil, err
	}

	return &config, nil
}

func setResolverDefaults(v *viper.Viper) {
	order := make([]string, 0, len(domain.AllNetworks()))
	for _, n := range domain.AllNetworks() {
		order = append(order, string(n))
	}
	v.SetDefault("resolver.search_order", order)
}

// validateNetworks checks that configured networks and the resolver search
// order only reference supported networks
func validateNetworks(networks map[domain.Network]NetworkConfig, resolver ResolverConfig) error {
	if len(networks) == 0 {
		return errors.New("at least one network must be configured")
	}
	for network := range networks {
		if !domain.IsValidNetwork(network) {
			return fmt.Errorf("unsupported network %q in networks config", network)
		}
	}
	for _, network := range resolver.SearchOrder {
		if !domain.IsValidNetwork(network) {
			return fmt.Errorf("unsupported network %q in resolver.search_order", network)
		}
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("ORDERSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// loadEnv loads .env files from the given path, preferring a
// service-specific file over the shared one
func loadEnv(envPath string, service string) {
	candidates := []string{
		filepath.Join(envPath, fmt.Sprintf(".env.%s", service)),
		filepath.Join(envPath, ".env"),
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			// Ignore load errors; env vars may come from the process environment
			_ = godotenv.Load(candidate)
			return
		}
	}
}
