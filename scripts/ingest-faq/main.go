package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"novacart-support/config"
	"novacart-support/pkg/log"
	pkgQdrant "novacart-support/pkg/qdrant"
	"novacart-support/pkg/voyage"
)

// Chunking mirrors the knowledge-base build the FAQ handler expects:
// small overlapping windows so a policy sentence is never split across
// two chunks without context.
const (
	chunkSize    = 300
	chunkOverlap = 50
	embedBatch   = 64
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/ingest-faq/main.go <path/to/knowledge-base.txt>")
		fmt.Println("Example: go run scripts/ingest-faq/main.go docs/novacart_faq.txt")
		os.Exit(1)
	}
	sourcePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read %s: %v", sourcePath, err)
	}

	chunks := splitChunks(string(raw), chunkSize, chunkOverlap)
	if len(chunks) == 0 {
		logger.Fatalf(ctx, "No content found in %s", sourcePath)
	}
	logger.Infof(ctx, "Split %s into %d chunks", sourcePath, len(chunks))

	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}
	if cfg.Voyage.Model != "" {
		embedder.WithModel(cfg.Voyage.Model)
	}

	exists, err := qdrantClient.CollectionExists(ctx, cfg.Qdrant.CollectionName)
	if err != nil {
		logger.Fatalf(ctx, "Qdrant not reachable: %v", err)
	}
	if !exists {
		logger.Infof(ctx, "Creating collection %q", cfg.Qdrant.CollectionName)
		if err := qdrantClient.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
			Name: cfg.Qdrant.CollectionName,
			Vectors: pkgQdrant.VectorConfig{
				Size:     cfg.Qdrant.VectorSize,
				Distance: "Cosine",
			},
		}); err != nil {
			logger.Fatalf(ctx, "Failed to create collection: %v", err)
		}
	}

	logger.Info(ctx, "Starting ingestion...")

	successCount := 0
	for start := 0; start < len(chunks); start += embedBatch {
		end := start + embedBatch
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		vectors, err := embedder.Embed(ctx, batch)
		if err != nil {
			logger.Errorf(ctx, "Failed to embed batch %d-%d: %v", start, end, err)
			continue
		}

		points := make([]pkgQdrant.Point, len(batch))
		for i, text := range batch {
			points[i] = pkgQdrant.Point{
				ID:      uuid.NewString(),
				Vector:  vectors[i],
				Payload: map[string]interface{}{"text": text},
			}
		}
		if err := qdrantClient.UpsertPoints(ctx, cfg.Qdrant.CollectionName, pkgQdrant.UpsertPointsRequest{
			Points: points,
		}); err != nil {
			logger.Errorf(ctx, "Failed to upsert batch %d-%d: %v", start, end, err)
			continue
		}

		successCount += len(batch)
		logger.Infof(ctx, "Ingested %d/%d chunks", successCount, len(chunks))
	}

	logger.Infof(ctx, "Ingestion complete! %d/%d chunks stored in %q.", successCount, len(chunks), cfg.Qdrant.CollectionName)
}

// splitChunks cuts the text into whitespace-aligned windows of roughly
// size runes with overlap runes shared between neighbours.
func splitChunks(text string, size, overlap int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		chunks  []string
		current []string
		length  int
	)
	flush := func() {
		if len(current) == 0 {
			return
		}
		chunks = append(chunks, strings.Join(current, " "))

		// carry the tail of this chunk into the next one
		carried := 0
		var tail []string
		for i := len(current) - 1; i >= 0 && carried < overlap; i-- {
			carried += len(current[i]) + 1
			tail = append([]string{current[i]}, tail...)
		}
		current = tail
		length = carried
	}

	for _, w := range words {
		if length+len(w)+1 > size && len(current) > 0 {
			flush()
		}
		current = append(current, w)
		length += len(w) + 1
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}
