package qdrant

import (
	"fmt"

	"novacart-support/internal/support/repository"
	"novacart-support/pkg/log"
	"novacart-support/pkg/qdrant"
	"novacart-support/pkg/voyage"
)

// CollectionFAQ is the Qdrant collection holding company knowledge-base chunks.
const CollectionFAQ = "company_faq"

type implRepository struct {
	client   *qdrant.Client
	embedder voyage.IVoyage
	l        log.Logger
}

// New creates a Qdrant-backed FAQRepository. Queries are embedded with
// Voyage AI before the vector search.
func New(client *qdrant.Client, embedder voyage.IVoyage, l log.Logger) repository.FAQRepository {
	if client == nil {
		panic("support/repository/qdrant: client is required")
	}
	if embedder == nil {
		panic("support/repository/qdrant: embedder is required")
	}
	return &implRepository{client: client, embedder: embedder, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("support/repository/qdrant.%s", method)
}
