package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/streakbox/streakbox/internal/server/handlers"
	"github.com/streakbox/streakbox/internal/server/middleware"
	"github.com/streakbox/streakbox/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

type config struct {
	addr           string
	dbPath         string
	jwtSecret      string
	accessTokenTTL time.Duration
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", envOrDefault("STREAKBOX_ADDR", ":8080"), "HTTP listen address")
	dbPath := flag.String("db", envOrDefault("STREAKBOX_DB", "streakbox.db"), "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", os.Getenv("STREAKBOX_JWT_SECRET"), "Secret for signing access tokens")
	tokenTTL := flag.Duration("token-ttl", 15*time.Minute, "Access token lifetime")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config{
		addr:           *addr,
		dbPath:         *dbPath,
		jwtSecret:      *jwtSecret,
		accessTokenTTL: *tokenTTL,
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	if cfg.jwtSecret == "" {
		return errors.New("jwt secret is required, set --jwt-secret or STREAKBOX_JWT_SECRET")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(cfg.jwtSecret),
		AccessTokenTTL: cfg.accessTokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, store, jwtConfig)
	syncHandler := handlers.NewSyncHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store.DB())

	requireAuth := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("GET /api/v1/auth/salt/{username}", authHandler.GetSalt)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.Handle("GET /api/v1/account", requireAuth(http.HandlerFunc(authHandler.Account)))
	mux.Handle("GET /api/v1/sync/changes", requireAuth(http.HandlerFunc(syncHandler.Changes)))
	mux.Handle("POST /api/v1/sync/push", requireAuth(http.HandlerFunc(syncHandler.Push)))
	mux.Handle("DELETE /api/v1/results/{id}", requireAuth(http.HandlerFunc(syncHandler.Delete)))
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Авторизационные endpoints лимитируются жестче остальных:
	// перебор паролей должен упираться в лимит раньше всего
	rateLimits := []middleware.PathRateLimit{
		{Path: "/api/v1/auth/register", Rate: 10, Window: time.Minute},
		{Path: "/api/v1/auth/login", Rate: 20, Window: time.Minute},
	}

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(
			middleware.RateLimitByPathMiddleware(rateLimits, 300, time.Minute, logger)(mux)))

	server := &http.Server{
		Addr:              cfg.addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.addr),
			slog.String("version", Version))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped")

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printVersion() {
	fmt.Printf("StreakBox Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
