// Package main is the entry point for the Solar Datasheet API server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/solarstack/datasheet-api/internal/config"
	"github.com/solarstack/datasheet-api/internal/handlers"
	"github.com/solarstack/datasheet-api/internal/pipeline"
	"github.com/solarstack/datasheet-api/internal/router"
	"github.com/solarstack/datasheet-api/internal/services/extraction"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 Solar Datasheet API %s starting...", Version)

	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	log.Printf("📋 Config loaded: port=%s, model=%s, gin_mode=%s", cfg.Port, cfg.OpenRouterModel, cfg.GinMode)

	os.Setenv("GIN_MODE", cfg.GinMode)

	// Step 2: Create Services
	llm := extraction.New(
		cfg.OpenRouterAPIKey,
		cfg.OpenRouterModel,
		cfg.OpenRouterBaseURL,
		time.Duration(cfg.LLMTimeoutSeconds)*time.Second,
	)
	if llm.IsConfigured() {
		log.Println("✅ Extraction model configured")
	} else {
		log.Println("⚠️  No OpenRouter API key set (set OPENROUTER_API_KEY — extraction requests will fail)")
	}

	processor := pipeline.New(llm)

	// Step 3: Setup HTTP Router
	h := handlers.NewHandler(processor, llm, int64(cfg.MaxUploadMB)<<20, Version)
	r := router.Setup(h, cfg.DefaultRateLimit, cfg.AllowedOrigins)

	// Step 4: Start the HTTP Server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 180 * time.Second, // must outlast the model call
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		log.Printf("📖 Health check: http://localhost:%s/api/v1/health", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 5: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
}
