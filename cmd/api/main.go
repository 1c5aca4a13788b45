package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"novacart-support/config"
	_ "novacart-support/docs" // Swagger docs
	"novacart-support/internal/httpserver"
	"novacart-support/pkg/groq"
	"novacart-support/pkg/log"
	"novacart-support/pkg/qdrant"
	"novacart-support/pkg/voyage"
)

const dbPingTimeout = 5 * time.Second

// @title       NovaCart Support API
// @description Conversational customer-support agent: intent routing, order placement, tracking, returns, tickets and FAQ answers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting NovaCart Support...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Error(ctx, "Failed to open postgres: ", err)
		return
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error(ctx, "Failed to ping postgres: ", err)
		return
	}
	logger.Infof(ctx, "Connected to postgres at %s:%d", cfg.Postgres.Host, cfg.Postgres.Port)

	// 4. Oracle (Groq)
	oracle, err := groq.New(groq.Config{
		APIKey:  cfg.Groq.APIKey,
		BaseURL: cfg.Groq.BaseURL,
		Model:   cfg.Groq.Model,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create groq client: ", err)
		return
	}
	logger.Infof(ctx, "Oracle model: %s", oracle.Model())

	// 5. FAQ retrieval (Voyage embeddings + Qdrant)
	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to create voyage client: ", err)
		return
	}
	if cfg.Voyage.Model != "" {
		embedder.WithModel(cfg.Voyage.Model)
	}

	qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)
	exists, err := qdrantClient.CollectionExists(ctx, cfg.Qdrant.CollectionName)
	if err != nil {
		logger.Warnf(ctx, "Qdrant not reachable (FAQ answers degraded): %v", err)
	} else if !exists {
		logger.Infof(ctx, "Creating qdrant collection %q", cfg.Qdrant.CollectionName)
		if err := qdrantClient.CreateCollection(ctx, qdrant.CreateCollectionRequest{
			Name: cfg.Qdrant.CollectionName,
			Vectors: qdrant.VectorConfig{
				Size:     cfg.Qdrant.VectorSize,
				Distance: "Cosine",
			},
		}); err != nil {
			logger.Warnf(ctx, "Failed to create qdrant collection: %v", err)
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		PostgresDB:       db,
		Oracle:           oracle,
		Embedder:         embedder,
		QdrantClient:     qdrantClient,
		SessionCacheSize: cfg.Session.CacheSize,
		RateRPS:          cfg.RateLimit.RPS,
		RateBurst:        cfg.RateLimit.Burst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
