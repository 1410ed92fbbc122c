package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/playerdex/socialgraph/internal/config"
	"github.com/playerdex/socialgraph/internal/database"
	"github.com/playerdex/socialgraph/internal/handlers"
	"github.com/playerdex/socialgraph/internal/logging"
	"github.com/playerdex/socialgraph/internal/middleware"
	"github.com/playerdex/socialgraph/internal/services"
)

func main() {
	if err := run(); err != nil {
		logging.Error("Application error", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	logger := logging.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.Server.Debug {
		logger.SetLevel(logging.LevelDebug)
		logging.SetDefaultLevel(logging.LevelDebug)
		logger.Debug("Debug logging enabled", map[string]interface{}{
			"env": cfg.Server.Environment,
		})
	}

	logger.Info("Starting social graph server...")

	logger.Info("Connecting to PostgreSQL", map[string]interface{}{
		"host": cfg.Database.Host,
		"port": cfg.Database.Port,
	})
	db, err := database.NewPostgresDB(cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer db.Close()
	logger.Info("Connected to PostgreSQL")

	logger.Info("Running database migrations...")
	migrator, err := database.NewMigrator(cfg.Database.DSN(), cfg.Database.MigrationsPath)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	if err := migrator.Up(); err != nil {
		_ = migrator.Close()
		return fmt.Errorf("running migrations: %w", err)
	}
	_ = migrator.Close()
	logger.Info("Migrations completed")

	logger.Info("Connecting to Redis", map[string]interface{}{
		"addr": cfg.Redis.Addr(),
	})
	redisDB, err := database.NewRedisDB(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() { _ = redisDB.Close() }()
	logger.Info("Connected to Redis")

	// Services
	dbAdapter := services.NewPoolAdapter(db.Pool)
	playerService := services.NewPlayerService(dbAdapter)
	friendService := services.NewFriendService(dbAdapter)
	blockService := services.NewBlockService(dbAdapter)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, redisDB)
	playerHandler := handlers.NewPlayerHandler(playerService, friendService, blockService)
	friendHandler := handlers.NewFriendHandler(friendService)
	blockHandler := handlers.NewBlockHandler(blockService)

	// Middleware
	requestLogger := middleware.NewRequestLogger(logger)
	apiRateLimiter := middleware.NewAPIRateLimiter(redisDB.Client)
	writeRateLimiter := middleware.NewWriteRateLimiter(redisDB.Client)
	limitWrite := writeRateLimiter.Middleware

	mux := http.NewServeMux()

	// Health endpoints (no rate limit)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /live", healthHandler.Live)

	// Player endpoints
	mux.Handle("POST /api/players", limitWrite(http.HandlerFunc(playerHandler.Register)))
	mux.HandleFunc("GET /api/players/{id}", playerHandler.Get)
	mux.Handle("DELETE /api/players/{id}", limitWrite(http.HandlerFunc(playerHandler.Delete)))
	mux.HandleFunc("GET /api/players/{id}/friends", playerHandler.ListFriends)
	mux.HandleFunc("GET /api/players/{id}/blocked", playerHandler.ListBlocked)

	// Friendship endpoints
	mux.Handle("POST /api/friendships", limitWrite(http.HandlerFunc(friendHandler.Create)))
	mux.Handle("DELETE /api/friendships", limitWrite(http.HandlerFunc(friendHandler.Remove)))
	mux.Handle("DELETE /api/friendships/{id}", limitWrite(http.HandlerFunc(friendHandler.RemoveByID)))

	// Block endpoints
	mux.Handle("POST /api/blocks", limitWrite(http.HandlerFunc(blockHandler.Create)))
	mux.Handle("DELETE /api/blocks", limitWrite(http.HandlerFunc(blockHandler.Remove)))

	// Middleware chain (order matters: outermost first)
	var handler http.Handler = mux
	handler = apiRateLimiter.Middleware(handler)
	handler = requestLogger.Apply(handler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Could not gracefully shutdown the server", map[string]interface{}{
				"error": err.Error(),
			})
		}
		close(done)
	}()

	logger.Info("Server listening", map[string]interface{}{
		"addr": addr,
	})
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	<-done
	logger.Info("Server stopped")
	return nil
}
