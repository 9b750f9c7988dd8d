package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/projects-service/config"
	"github.com/GoSim-25-26J-441/projects-service/internal/auth"
	"github.com/GoSim-25-26J-441/projects-service/internal/bootstrap"
	"github.com/GoSim-25-26J-441/projects-service/internal/logging"
)

const serviceName = "projects"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.LogLevel, cfg.App.Environment)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	blocklist, closeBlocklist, err := openBlocklist(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open blocklist", zap.Error(err))
	}
	defer closeBlocklist()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Logger:         logger,
		Store:          store.Projects,
		Ping:           store.Ping,
		Verifier:       auth.NewTokenVerifier(cfg.Auth.JWTSecret),
		Blocklist:      blocklist,
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		LenientJSON:    cfg.HTTP.LenientJSON,
		RateLimitRPS:   cfg.HTTP.RateLimitRPS,
		RateLimitBurst: cfg.HTTP.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Info("listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.App.Environment),
			zap.String("version", cfg.App.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", zap.Error(err))
	}
}

// openBlocklist prefers Redis when REDIS_ADDR is set so revocations are shared
// across replicas; otherwise it keeps them in memory and sweeps expired entries.
func openBlocklist(ctx context.Context, cfg *config.Config, logger *zap.Logger) (auth.Blocklist, func(), error) {
	client, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	if client != nil {
		logger.Info("token blocklist backed by redis", zap.String("addr", cfg.Redis.Addr))
		return auth.NewRedisBlocklist(client), func() { _ = client.Close() }, nil
	}

	mem := auth.NewMemoryBlocklist()
	sweeper, err := bootstrap.StartBlocklistSweeper(mem, logger)
	if err != nil {
		return nil, nil, err
	}
	return mem, func() { <-sweeper.Stop().Done() }, nil
}
