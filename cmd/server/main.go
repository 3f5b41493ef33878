package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finlog/internal/application/service"
	"finlog/internal/infrastructure/auth"
	"finlog/internal/infrastructure/config"
	"finlog/internal/infrastructure/db"
	"finlog/internal/infrastructure/handler"
	"finlog/internal/infrastructure/logger"
	"finlog/internal/infrastructure/middleware"
	"finlog/web"
	"github.com/dgraph-io/badger/v3"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	if err := run(); err != nil {
		// Fatal exits the process; run has already released its
		// resources by the time the error reaches here.
		logger.GetDefaultLogger().Fatal("Server error", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewJSONLogger(os.Stdout, logger.ParseLevel(cfg.Log.Level))
	logger.SetDefaultLogger(log)

	log.Info("Starting finlog server", map[string]interface{}{
		"addr": cfg.Addr(),
	})

	// Open the document store
	if err := os.MkdirAll(cfg.Store.Path, 0755); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", cfg.Store.Path, err)
	}

	badgerOpts := badger.DefaultOptions(cfg.Store.Path)
	badgerOpts.Logger = nil // Disable Badger's default logger

	badgerDB, err := badger.Open(badgerOpts)
	if err != nil {
		return fmt.Errorf("failed to open database at %s: %w", cfg.Store.Path, err)
	}
	defer func() {
		if err := badgerDB.Close(); err != nil {
			log.Error("Error closing database", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	// Initialize repositories
	txRepo, err := db.NewBadgerTransactionRepository(badgerDB)
	if err != nil {
		return fmt.Errorf("failed to initialize transaction repository: %w", err)
	}
	defer txRepo.Close()

	userRepo := db.NewBadgerUserRepository(badgerDB)

	// Initialize services and auth components
	txService := service.NewTransactionService(txRepo)
	authService := service.NewAuthService(userRepo)
	tokens := auth.NewTokenAuthority(cfg.Session.Secret)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, tokens, log)
	txHandler := handler.NewTransactionHandler(txService, log)

	// Setup router
	router := mux.NewRouter()

	// API routes; transaction routes are individually wrapped so the
	// session is validated before anything touches the store
	api := router.PathPrefix("/api").Subrouter()
	authHandler.RegisterRoutes(api)
	txHandler.RegisterRoutes(api, middleware.AuthMiddleware(tokens))

	// Embedded pages and health check
	router.HandleFunc("/health", handleHealth).Methods("GET")
	router.HandleFunc("/", servePage("pages/login.html")).Methods("GET")
	router.HandleFunc("/login", servePage("pages/login.html")).Methods("GET")
	router.HandleFunc("/dashboard", servePage("pages/dashboard.html")).Methods("GET")

	// Apply global middleware
	root := middleware.RequestIDMiddleware(middleware.LoggingMiddleware(log)(router))

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server listening", map[string]interface{}{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	log.Info("Server shutting down", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Error shutting down server", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log.Info("Server stopped", nil)
	return nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func servePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, web.PagesFS, name)
	}
}
