package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dexplorer/orderscan/internal/adapter"
	"github.com/dexplorer/orderscan/internal/api/middleware"
	"github.com/dexplorer/orderscan/internal/api/server"
	"github.com/dexplorer/orderscan/internal/api/shared/executor"
	"github.com/dexplorer/orderscan/internal/config"
	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/enrich"
	"github.com/dexplorer/orderscan/internal/logger"
	"github.com/dexplorer/orderscan/internal/providers/orderbook"
	"github.com/dexplorer/orderscan/internal/providers/subgraph"
	"github.com/dexplorer/orderscan/internal/providers/tokens"
	"github.com/dexplorer/orderscan/internal/providers/trace"
	"github.com/dexplorer/orderscan/internal/ratelimit"
	"github.com/dexplorer/orderscan/internal/registry"
	"github.com/dexplorer/orderscan/internal/resolver"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting orderscan API")

	// Shared adapters
	httpClient := adapter.NewHTTPClient(cfg.HTTP.Timeout)
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Rate limiting proxy shared by every upstream client
	proxy, err := ratelimit.NewProxy(cfg.RateLimiter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer func() {
		if err := proxy.Close(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("component", "ratelimit"))
		}
	}()

	// Per-network endpoint maps
	orderbookEndpoints := make(map[domain.Network][]config.OrderbookEndpoint)
	subgraphEndpoints := make(map[domain.Network]string)
	rpcURLs := make(map[domain.Network]string)
	tokenListURLs := make(map[domain.Network]string)
	for network, networkCfg := range cfg.Networks {
		orderbookEndpoints[network] = networkCfg.Orderbook
		if networkCfg.Subgraph != "" {
			subgraphEndpoints[network] = networkCfg.Subgraph
		}
		if networkCfg.RPCURL != "" {
			rpcURLs[network] = networkCfg.RPCURL
		}
		if networkCfg.TokenList != "" {
			tokenListURLs[network] = networkCfg.TokenList
		}
	}
	logger.InfoCtx(ctx, "Configured networks", zap.Int("count", len(cfg.Networks)))

	// Upstream clients
	orderbookClient := orderbook.NewClient(httpClient, proxy, orderbookEndpoints)
	subgraphClient := subgraph.NewClient(httpClient, proxy, jsonAdapter, subgraphEndpoints)
	traceClient := trace.NewClient(httpClient, proxy, cfg.Trace)

	// Token metadata: curated lists first, on-chain ERC-20 calls as fallback
	listSource := tokens.NewListSource(httpClient, proxy, tokenListURLs)
	rpcSource := tokens.NewRPCSource(adapter.NewEthClientDialer(), proxy, rpcURLs)
	tokenSource := tokens.NewCompositeSource(listSource, rpcSource)

	tokenRegistry := registry.New(tokenSource, cfg.RateLimiter.PoolSize)
	defer tokenRegistry.Close()

	// Enrichment and cross-network resolution
	aggregator := enrich.New(tokenRegistry, traceClient, clock)
	crossNetworkResolver := resolver.New(orderbookClient, aggregator, cfg.Resolver)

	exec := executor.NewExecutor(
		crossNetworkResolver,
		orderbookClient,
		subgraphClient,
		aggregator,
		aggregator,
		tokenRegistry,
	)

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, exec)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Don't reuse the canceled ctx for shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
