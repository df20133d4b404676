package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"barberly/backend/internal/cache/redis"
	"barberly/backend/internal/clock"
	"barberly/backend/internal/config"
	"barberly/backend/internal/notify"
	"barberly/backend/internal/service/availability"
	"barberly/backend/internal/service/providers"
	"barberly/backend/internal/service/scheduling"
	"barberly/backend/internal/service/users"
	"barberly/backend/internal/store/postgres"
	httpTransport "barberly/backend/internal/transport/http"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With(
		slog.String("service", "barberly-server"),
	)
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)})).With(
		slog.String("service", "barberly-server"),
	)
	slog.SetDefault(log)

	log.Info("starting", slog.String("http_addr", cfg.HTTPAddr), slog.String("log_level", cfg.LogLevel))

	log.Info("connecting to database", databaseLogArgs(cfg.DatabaseURL)...)
	db, err := postgres.Open(cfg.DatabaseURL, postgres.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
	})
	if err != nil {
		args := append([]any{slog.Any("err", err)}, databaseLogArgs(cfg.DatabaseURL)...)
		log.Error("database connection failed", args...)
		os.Exit(1)
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			log.Warn("database close failed", slog.Any("err", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cacheProvider, err := redis.Dial(ctx, cfg.RedisAddr)
	if err != nil {
		log.Error("redis connection failed", slog.Any("err", err), slog.String("redis_addr", cfg.RedisAddr))
		os.Exit(1)
	}
	defer func() {
		if err := cacheProvider.Close(); err != nil {
			log.Warn("redis close failed", slog.Any("err", err))
		}
	}()

	sink := notify.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer func() {
		if err := sink.Close(); err != nil {
			log.Warn("kafka close failed", slog.Any("err", err))
		}
	}()

	apptRepo := postgres.NewAppointmentRepo(db)
	userRepo := postgres.NewUserRepo(db)
	clk := clock.System{}

	schedulingSvc := scheduling.NewService(apptRepo, sink, cacheProvider, clk, log)
	availabilitySvc := availability.NewService(apptRepo, clk)
	providersSvc := providers.NewService(userRepo, apptRepo, cacheProvider, log)
	usersSvc := users.NewService(userRepo, cacheProvider, log)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpTransport.NewServer(schedulingSvc, availabilitySvc, providersSvc, usersSvc, log).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	log.Info("http server started", slog.String("http_addr", cfg.HTTPAddr))

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warn("http graceful shutdown timed out; forcing close", slog.Any("err", err))
			_ = server.Close()
		} else {
			log.Info("http server stopped")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped with error", slog.Any("err", err))
			os.Exit(1)
		}
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func databaseLogArgs(databaseURL string) []any {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return []any{slog.String("db_url", "invalid")}
	}
	name := strings.TrimPrefix(u.Path, "/")
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "default"
	}
	if host == "" {
		host = "unknown"
	}
	if name == "" {
		name = "unknown"
	}
	return []any{
		slog.String("db_host", host),
		slog.String("db_port", port),
		slog.String("db_name", name),
	}
}
