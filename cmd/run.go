package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	aggkitprover "github.com/agglayer/aggkit-prover"
	"github.com/agglayer/aggkit-prover/aggchainproofservice"
	aggkitcommon "github.com/agglayer/aggkit-prover/common"
	"github.com/agglayer/aggkit-prover/config"
	"github.com/agglayer/aggkit-prover/healthcheck"
	"github.com/agglayer/aggkit-prover/log"
	"github.com/agglayer/aggkit-prover/pprof"
	"github.com/agglayer/aggkit-prover/prometheus"
	"github.com/agglayer/aggkit-prover/ratelimit"
	"github.com/agglayer/aggkit-prover/rpc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const (
	metricsReadTimeout = 10 * time.Second
	shutdownTimeout    = 5 * time.Second
)

func start(cliCtx *cli.Context) error {
	cfg, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(cfg.Log)

	if cfg.Log.Environment == log.EnvironmentDevelopment {
		aggkitprover.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if cfg.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Prometheus.Enabled {
		prometheus.Init()
		aggchainproofservice.RegisterMetrics()
	}

	ctx, stop := signal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	service, err := aggchainproofservice.NewFromConfig(ctx, cfg.AggchainProofService,
		log.WithFields("module", aggkitcommon.AGGCHAINPROOFSERVICE))
	if err != nil {
		return err
	}
	limiter := ratelimit.NewLimiter(cfg.RateLimiting)

	g, gctx := errgroup.WithContext(ctx)

	rpcServer := createRPC(cfg.RPC, createProverRPC(cfg.RPC, service, limiter, cfg.Common.NetworkID), service)
	g.Go(rpcServer.Start)
	g.Go(func() error {
		<-gctx.Done()
		log.Info("terminating application gracefully...")
		return rpcServer.Stop()
	})

	if cfg.Prometheus.Enabled {
		g.Go(func() error {
			return startPrometheusHTTPServer(gctx, cfg.Prometheus)
		})
	} else {
		log.Info("Prometheus metrics server is disabled")
	}

	if cfg.Profiling.ProfilingEnabled {
		profiler := pprof.NewServer(cfg.Profiling, log.WithFields("module", "pprof"))
		g.Go(func() error {
			return profiler.Start(gctx)
		})
	}

	return g.Wait()
}

func createProverRPC(
	cfg jRPC.Config,
	service rpc.AggchainProofServicer,
	limiter rpc.SendTxLimiter,
	networkID uint32,
) []jRPC.Service {
	logger := log.WithFields("module", aggkitcommon.RPC)
	return []jRPC.Service{
		{
			Name: rpc.AGGKITPROVER,
			Service: rpc.NewProverEndpoints(
				logger,
				cfg.WriteTimeout.Duration,
				cfg.ReadTimeout.Duration,
				service,
				limiter,
				networkID,
			),
		},
	}
}

func createRPC(cfg jRPC.Config, services []jRPC.Service, checker healthcheck.ReadinessChecker) *jRPC.Server {
	logger := log.WithFields("module", "RPC")

	healthHandler := healthcheck.NewHealthCheckHandler(logger, checker)
	return jRPC.NewServer(cfg, services,
		jRPC.WithLogger(logger.GetSugaredLogger()),
		jRPC.WithHealthHandler(healthHandler))
}

func startPrometheusHTTPServer(ctx context.Context, c prometheus.Config) error {
	mux := http.NewServeMux()
	address := net.JoinHostPort(c.Host, fmt.Sprintf("%d", c.Port))
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to create tcp listener for metrics: %w", err)
	}
	mux.Handle(prometheus.Endpoint, promhttp.Handler())

	metricsServer := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: metricsReadTimeout,
		ReadTimeout:       metricsReadTimeout,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Warnf("prometheus http server shutdown: %v", err)
		}
	}()

	log.Infof("prometheus server listening on port %d", c.Port)
	if err := metricsServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("closed http connection for prometheus server: %w", err)
	}
	log.Warn("prometheus http server stopped")
	return nil
}

func logVersion() {
	log.Infow("Starting application", aggkitprover.GetVersion().LogFields()...)
}
