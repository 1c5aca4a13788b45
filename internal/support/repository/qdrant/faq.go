package qdrant

import (
	"context"

	repo "novacart-support/internal/support/repository"
	"novacart-support/pkg/qdrant"
)

const defaultTopK = 3

// SearchFAQ embeds the query and retrieves the closest knowledge-base chunks.
// Returns an empty slice (no error) when nothing scores above the threshold.
func (r *implRepository) SearchFAQ(ctx context.Context, opt repo.SearchFAQOptions) ([]repo.FAQDocument, error) {
	vectors, err := r.embedder.Embed(ctx, []string{opt.Query})
	if err != nil {
		r.l.Errorf(ctx, "%s embed: %v", r.dsn("SearchFAQ"), err)
		return nil, repo.ErrFailedToSearch
	}
	if len(vectors) == 0 {
		return nil, repo.ErrFailedToSearch
	}

	topK := opt.TopK
	if topK <= 0 {
		topK = defaultTopK
	}

	resp, err := r.client.SearchPoints(ctx, CollectionFAQ, qdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       topK,
		WithPayload: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s search: %v", r.dsn("SearchFAQ"), err)
		return nil, repo.ErrFailedToSearch
	}

	docs := make([]repo.FAQDocument, 0, len(resp.Result))
	for _, p := range resp.Result {
		text, _ := p.Payload["text"].(string)
		if text == "" {
			continue
		}
		docs = append(docs, repo.FAQDocument{
			ID:    p.ID,
			Text:  text,
			Score: p.Score,
		})
	}
	return docs, nil
}
