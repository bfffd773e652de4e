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

	"github.com/openrent/sui-rental-gateway/internal/adapter"
	"github.com/openrent/sui-rental-gateway/internal/api/middleware"
	"github.com/openrent/sui-rental-gateway/internal/api/server"
	"github.com/openrent/sui-rental-gateway/internal/config"
	"github.com/openrent/sui-rental-gateway/internal/logger"
	"github.com/openrent/sui-rental-gateway/internal/messaging"
	"github.com/openrent/sui-rental-gateway/internal/metadata"
	"github.com/openrent/sui-rental-gateway/internal/pipeline"
	"github.com/openrent/sui-rental-gateway/internal/providers/jetstream"
	"github.com/openrent/sui-rental-gateway/internal/providers/sui"
	"github.com/openrent/sui-rental-gateway/internal/refresher"
	"github.com/openrent/sui-rental-gateway/internal/txbuilder"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadGatewayConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "rental-gateway",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sui rental gateway")

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Sui.HTTPTimeout, jsonAdapter)

	// Sui JSON-RPC client
	suiClient := sui.NewClient(cfg.Sui.RPCURL, httpClient, jsonAdapter)
	logger.InfoCtx(ctx, "Configured Sui RPC client", zap.String("rpc_url", cfg.Sui.RPCURL))

	// Aggregation pipeline. Config was validated on load, so the strategy and
	// precedence parse cleanly here.
	keyStrategy, _ := pipeline.ParseKeyStrategy(cfg.Sui.KeyStrategy)
	precedence, _ := metadata.ParsePrecedence(cfg.Sui.DisplayPrecedence)

	enumerator := pipeline.NewEnumerator(suiClient, cfg.Sui.RegistryID)
	resolver := pipeline.NewResolver(suiClient, clock, pipeline.ResolverConfig{
		KeyStrategy: keyStrategy,
		Precedence:  precedence,
		PoolSize:    cfg.Worker.WorkerPoolSize,
	})
	aggregator := pipeline.NewService(enumerator, resolver, suiClient, cfg.Sui.AssetType, precedence)

	// Transaction builder
	builder := txbuilder.New(suiClient, txbuilder.Config{
		PackageID:  cfg.Sui.PackageID,
		RegistryID: cfg.Sui.RegistryID,
		GasBudget:  cfg.Sui.GasBudget,
	})

	// Optional NATS JetStream event bus plus the view refresher it feeds
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		pub, sub, err := jetstream.New(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			ConsumerName:   cfg.NATS.ConsumerName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			AckWait:        cfg.NATS.AckWait,
		}, jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer pub.Close()
		publisher = pub
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))

		viewRefresher := refresher.New(aggregator, sub, pub, clock)
		go func() {
			if err := viewRefresher.Start(ctx); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("component", "refresher"))
			}
		}()
		defer func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer stopCancel()
			_ = viewRefresher.Stop(stopCtx)
		}()
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, view invalidation events disabled")
	}

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AssetType:    cfg.Sui.AssetType,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, aggregator, builder, publisher, clock)

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

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("Rental gateway stopped")
}
