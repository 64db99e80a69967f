package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ad402/payverify/internal/config"
	"github.com/ad402/payverify/internal/confirmwatch"
	"github.com/ad402/payverify/internal/handlers/cli"
	"github.com/ad402/payverify/internal/handlers/rest"
	"github.com/ad402/payverify/internal/infra/blockchain/ethereum"
	"github.com/ad402/payverify/internal/infra/messaging/kafka"
	"github.com/ad402/payverify/internal/infra/storage/redis"
	"github.com/ad402/payverify/internal/metrics"
	"github.com/ad402/payverify/internal/paymentproc"
	"github.com/ad402/payverify/internal/payverify"
	"github.com/ad402/payverify/internal/pkg/logger"
	"github.com/ad402/payverify/internal/pkg/resilience/retry"
	"github.com/ad402/payverify/internal/pkg/telemetry"
	httpclient "github.com/ad402/payverify/internal/pkg/transport/http"
	"github.com/ad402/payverify/internal/pkg/transport/jsonrpc"
	"github.com/ad402/payverify/internal/ratelimit"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
		defer func() {
			err = errors.Join(err, shutdown(context.WithoutCancel(ctx)))
		}()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	registry, err := cfg.Registry(os.LookupEnv)
	if err != nil {
		return fmt.Errorf("loading networks: %w", err)
	}

	verifier := payverify.New(registry, newChainClients(cfg, registry), payverify.WithTimeout(cfg.Verify.Timeout))

	return cli.Run(ctx, verifier, func(ctx context.Context) (cli.Runtime, error) {
		return newRuntime(ctx, cfg, registry, verifier)
	})
}

// newRuntime connects to storage and messaging and builds the API server and
// the confirmation watcher. The returned Close releases the connections.
func newRuntime(ctx context.Context, cfg config.Config, registry *payverify.Registry, verifier payverify.Service) (rt cli.Runtime, err error) {
	var closers []func() error
	closeAll := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}
		return errors.Join(errs...)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, closeAll())
		}
	}()

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.NewPrometheusRecorder(promRegistry)
	if err != nil {
		return cli.Runtime{}, fmt.Errorf("registering metrics: %w", err)
	}

	store, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return cli.Runtime{}, fmt.Errorf("connecting to redis: %w", err)
	}
	closers = append(closers, store.Close)

	paymentOpts := []paymentproc.Option{
		paymentproc.WithMetrics(recorder),
		paymentproc.WithRetry(retry.New(
			retry.WithAttempts(cfg.Verify.Attempts),
			retry.WithDelay(cfg.Verify.RetryDelay),
			retry.WithRetryIf(paymentproc.RetryRPCErrors),
		)),
	}
	watcherOpts := []confirmwatch.Option{
		confirmwatch.WithMetrics(recorder),
		confirmwatch.WithInterval(cfg.Confirm.Interval),
		confirmwatch.WithMinConfirmations(cfg.Confirm.MinConfirmations),
		confirmwatch.WithMaxPendingAge(cfg.Confirm.MaxPendingAge),
		confirmwatch.WithBatchSize(cfg.Confirm.BatchSize),
		confirmwatch.WithWorkers(cfg.Confirm.Workers),
	}

	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, nil)
		if err != nil {
			return cli.Runtime{}, fmt.Errorf("connecting to kafka: %w", err)
		}
		closers = append(closers, producer.Close)

		paymentOpts = append(paymentOpts, paymentproc.WithNotifier(producer))
		watcherOpts = append(watcherOpts, confirmwatch.WithNotifier(producer))
	}

	payments := paymentproc.New(verifier, store, paymentOpts...)

	networks := make([]string, 0)
	for _, n := range registry.Networks() {
		networks = append(networks, n.Name)
	}
	watcher := confirmwatch.New(networks, verifier, store, watcherOpts...)

	var limitStore ratelimit.Store = store
	if cfg.RateLimit.Store == config.RateLimitStoreMemory {
		memory := ratelimit.NewMemoryStore()
		janitorCtx, cancel := context.WithCancel(ctx)
		closers = append(closers, func() error {
			cancel()
			return nil
		})
		go memory.RunJanitor(janitorCtx, cfg.RateLimit.Window)
		limitStore = memory
	}

	api := rest.New(payments, verifier,
		rest.WithRateLimiter(ratelimit.New(limitStore)),
		rest.WithRules(
			ratelimit.Rule{Name: ratelimit.IPRule.Name, Limit: cfg.RateLimit.IPLimit, Window: cfg.RateLimit.Window},
			ratelimit.Rule{Name: ratelimit.WalletRule.Name, Limit: cfg.RateLimit.WalletLimit, Window: cfg.RateLimit.Window},
		),
		rest.WithMetrics(recorder),
		rest.WithGatherer(promRegistry),
		rest.WithHealthChecker(store),
	)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return cli.Runtime{
		Server:  server,
		Watcher: watcher,
		Close:   closeAll,
	}, nil
}

// newChainClients builds one JSON-RPC client per network.
func newChainClients(cfg config.Config, registry *payverify.Registry) map[string]payverify.ChainClient {
	httpClient := httpclient.NewClient(
		httpclient.WithTimeout(cfg.RPC.Timeout),
		httpclient.WithRetryMax(cfg.RPC.RetryMax),
	).StandardClient()

	clients := make(map[string]payverify.ChainClient)
	for _, n := range registry.Networks() {
		clients[n.Name] = ethereum.NewClient(jsonrpc.NewClient(httpClient, n.RPCURL))
	}

	return clients
}
