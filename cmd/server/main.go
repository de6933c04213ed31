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

	"github.com/gorilla/mux"

	"github.com/iudanet/gophnotes/internal/server/config"
	"github.com/iudanet/gophnotes/internal/server/handlers"
	"github.com/iudanet/gophnotes/internal/server/middleware"
	"github.com/iudanet/gophnotes/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// tokenCleanupInterval — период фоновой чистки просроченных refresh-токенов
const tokenCleanupInterval = time.Hour

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Logging.Level),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	jwtConfig := handlers.JWTConfig{
		Secret:          []byte(cfg.JWT.Secret),
		AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
	}

	router := newRouter(logger, store, jwtConfig, cfg.RateLimit)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go cleanupExpiredTokens(ctx, logger, store)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// newRouter собирает все маршруты API v1
func newRouter(logger *slog.Logger, store *sqlite.Storage, jwtConfig handlers.JWTConfig, rl config.RateLimitConfig) *mux.Router {
	authHandler := handlers.NewAuthHandler(logger, store, store, jwtConfig)
	notesHandler := handlers.NewNotesHandler(logger, store)
	tasksHandler := handlers.NewTasksHandler(logger, store)
	itemsHandler := handlers.NewItemsHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	router := mux.NewRouter()
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingWithSkip(logger, []string{"/api/v1/health"}))

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	// Auth endpoints доступны без токена, но ограничены rate limiter'ом
	auth := api.PathPrefix("/auth").Subrouter()
	if rl.Enabled {
		auth.Use(middleware.RateLimitMiddleware(rl.RequestsPerMinute, time.Minute, logger))
	}
	auth.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", authHandler.Refresh).Methods(http.MethodPost)
	auth.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(logger, jwtConfig))

	protected.HandleFunc("/notes", notesHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/notes", notesHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/notes/{id}", notesHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/notes/{id}", notesHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/notes/{id}", notesHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/tasks", tasksHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/tasks", tasksHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/tasks/{id}", tasksHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/tasks/{id}", tasksHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/items/{id}", itemsHandler.PatchContent).Methods(http.MethodPatch)

	return router
}

// cleanupExpiredTokens периодически удаляет просроченные refresh-токены
func cleanupExpiredTokens(ctx context.Context, logger *slog.Logger, store *sqlite.Storage) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := store.DeleteExpiredTokens(ctx)
			if err != nil {
				logger.Error("failed to cleanup expired tokens", slog.Any("error", err))
				continue
			}
			if deleted > 0 {
				logger.Info("expired tokens removed", slog.Int("count", deleted))
			}
		}
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printVersion() {
	fmt.Printf("GophNotes Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
