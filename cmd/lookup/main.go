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
	"github.com/dexplorer/orderscan/internal/watch"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	networkArg = flag.String("network", string(domain.NetworkMainnet), "Network to search first")
	orderArg   = flag.String("order", "", "Order UID to resolve")
	txArg      = flag.String("tx", "", "Settlement transaction hash to resolve")
	watchArg   = flag.Bool("watch", false, "Keep polling and print every change")
)

func main() {
	flag.Parse()

	if (*orderArg == "") == (*txArg == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -order or -tx is required")
		os.Exit(2)
	}

	cfg, err := config.LoadLookupConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "lookup",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	network := domain.Network(*networkArg)
	if !domain.IsValidNetwork(network) {
		logger.FatalCtx(ctx, "Unsupported network", zap.String("network", *networkArg))
	}

	httpClient := adapter.NewHTTPClient(cfg.HTTP.Timeout)
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	proxy, err := ratelimit.NewProxy(cfg.RateLimiter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer func() {
		_ = proxy.Close()
	}()

	orderbookEndpoints := make(map[domain.Network][]config.OrderbookEndpoint)
	subgraphEndpoints := make(map[domain.Network]string)
	rpcURLs := make(map[domain.Network]string)
	tokenListURLs := make(map[domain.Network]string)
	for n, networkCfg := range cfg.Networks {
		orderbookEndpoints[n] = networkCfg.Orderbook
		if networkCfg.Subgraph != "" {
			subgraphEndpoints[n] = networkCfg.Subgraph
		}
		if networkCfg.RPCURL != "" {
			rpcURLs[n] = networkCfg.RPCURL
		}
		if networkCfg.TokenList != "" {
			tokenListURLs[n] = networkCfg.TokenList
		}
	}

	orderbookClient := orderbook.NewClient(httpClient, proxy, orderbookEndpoints)
	subgraphClient := subgraph.NewClient(httpClient, proxy, jsonAdapter, subgraphEndpoints)
	traceClient := trace.NewClient(httpClient, proxy, cfg.Trace)

	listSource := tokens.NewListSource(httpClient, proxy, tokenListURLs)
	rpcSource := tokens.NewRPCSource(adapter.NewEthClientDialer(), proxy, rpcURLs)
	tokenRegistry := registry.New(tokens.NewCompositeSource(listSource, rpcSource), cfg.RateLimiter.PoolSize)
	defer tokenRegistry.Close()

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

	fetch, key, interval, err := buildFetch(exec, network, cfg.Watch)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid lookup target", zap.Error(err))
	}

	if !*watchArg {
		result, err := fetch(ctx)
		if err != nil {
			logger.FatalCtx(ctx, "Lookup failed", zap.Error(err))
		}
		printJSON(jsonAdapter, result)
		return
	}

	// Watch mode: poll until interrupted, printing each refresh
	watcher := watch.NewWatcher(clock)
	sub := watcher.Watch(ctx, key, fetch, interval)
	defer sub.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case update, ok := <-sub.Updates():
			if !ok {
				return
			}
			if update.Err != nil {
				logger.WarnCtx(ctx, "Refresh failed, showing last known state",
					zap.String("key", key),
					zap.Error(update.Err),
				)
			}
			if update.Value != nil {
				fmt.Printf("--- %s\n", update.At.UTC().Format(time.RFC3339))
				printJSON(jsonAdapter, update.Value)
			}
		case <-sigCh:
			return
		}
	}
}

// buildFetch turns the CLI target into a watchable fetch closure
func buildFetch(exec executor.Executor, network domain.Network, watchCfg config.WatchConfig) (watch.FetchFunc, string, time.Duration, error) {
	if *orderArg != "" {
		uid, err := domain.ParseOrderUID(*orderArg)
		if err != nil {
			return nil, "", 0, err
		}
		fetch := func(ctx context.Context) (interface{}, error) {
			return exec.GetOrder(ctx, uid, network)
		}
		return fetch, fmt.Sprintf("order|%s|%s", network, uid), watchCfg.OrderInterval, nil
	}

	txHash, err := domain.ParseTxHash(*txArg)
	if err != nil {
		return nil, "", 0, err
	}
	fetch := func(ctx context.Context) (interface{}, error) {
		return exec.GetTransaction(ctx, txHash, network)
	}
	return fetch, fmt.Sprintf("tx|%s|%s", network, txHash), watchCfg.TxInterval, nil
}

func printJSON(jsonAdapter adapter.JSON, value interface{}) {
	data, err := jsonAdapter.Marshal(value)
	if err != nil {
		logger.Error(err)
		return
	}
	fmt.Println(string(data))
}
