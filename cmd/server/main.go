package main

import (
	"context"
	"counselling-module/config"
	"counselling-module/contentstore"
	"counselling-module/db"
	appHttp "counselling-module/http"
	"counselling-module/http/handlers"
	"counselling-module/logger"
	"counselling-module/services"
	"log"
	netHttp "net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"
)

func main() {
	// Determine project root by searching upward for go.mod
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal("Error getting current working directory:", err)
	}

	absProjectRoot := findProjectRoot(cwd)
	if absProjectRoot == "" {
		log.Fatalf("Could not locate project root (go.mod) from %s", cwd)
	}

	if err := os.Chdir(absProjectRoot); err != nil {
		log.Fatal("Error changing to project root:", err)
	}
	logger.Info("Working directory set to project root: %s", absProjectRoot)

	// Load configuration
	config.LoadConfig()

	// Initialize Kafka producer and email consumer (non-fatal)
	services.InitProducer()
	services.StartEmailConsumer()

	// Initialize database
	if err := db.InitDB(); err != nil {
		logger.Fatal("Error initializing database: %v", err)
	}

	// Content store client
	store := contentstore.New(config.AppConfig.ContentEndpoint, config.AppConfig.ContentProject)

	// Wire handlers and routes
	handlers.InitHandlers(db.DB, store)
	srv := &netHttp.Server{
		Addr:    config.AppConfig.ListenAddr,
		Handler: appHttp.SetupRoutes(),
	}

	// Set up graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting on %s", config.AppConfig.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != netHttp.ErrServerClosed {
			logger.Fatal("HTTP server error: %v", err)
		}
	}()

	// Wait for shutdown signal, then drain in-flight requests before closing
	// the Kafka side.
	<-sigChan
	logger.Info("Shutdown signal received, stopping HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Error shutting down HTTP server: %v", err)
	}

	if err := services.StopConsumer(); err != nil {
		logger.Error("Error stopping email consumer: %v", err)
	}
	if err := services.Close(); err != nil {
		logger.Error("Error closing Kafka producer: %v", err)
	}

	logger.Info("Server shutdown complete")
}

// findProjectRoot walks up from start and returns the first directory containing go.mod
func findProjectRoot(start string) string {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir || strings.HasSuffix(dir, ":\\") || parent == "" {
			break
		}
		dir = parent
	}
	return ""
}
