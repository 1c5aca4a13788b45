package qdrant_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"novacart-support/pkg/qdrant"
)

func TestQdrantClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/collections/company_faq":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"result":{"status":"green"}}`))
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/collections/"):
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodPut && r.URL.Path == "/collections/company_faq":
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodPut && r.URL.Path == "/collections/company_faq/points":
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodPost && r.URL.Path == "/collections/company_faq/points/search":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"result": [
					{"id": "a1", "score": 0.91, "payload": {"text": "Returns are accepted within 30 days."}}
				]
			}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer ts.Close()

	client := qdrant.NewClient(ts.URL)
	ctx := context.Background()

	t.Run("collection exists", func(t *testing.T) {
		ok, err := client.CollectionExists(ctx, "company_faq")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Error("expected collection to exist")
		}
	})

	t.Run("collection missing", func(t *testing.T) {
		ok, err := client.CollectionExists(ctx, "unknown")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected collection to be missing")
		}
	})

	t.Run("create collection", func(t *testing.T) {
		err := client.CreateCollection(ctx, qdrant.CreateCollectionRequest{
			Name:    "company_faq",
			Vectors: qdrant.VectorConfig{Size: 1024, Distance: "Cosine"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("upsert and search", func(t *testing.T) {
		err := client.UpsertPoints(ctx, "company_faq", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{
				{ID: "a1", Vector: []float32{0.1, 0.2}, Payload: map[string]interface{}{"text": "doc"}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected upsert error: %v", err)
		}

		resp, err := client.SearchPoints(ctx, "company_faq", qdrant.SearchRequest{
			Vector:      []float32{0.1, 0.2},
			Limit:       3,
			WithPayload: true,
		})
		if err != nil {
			t.Fatalf("unexpected search error: %v", err)
		}
		if len(resp.Result) != 1 || resp.Result[0].Score != 0.91 {
			t.Errorf("unexpected search result: %+v", resp.Result)
		}
	})
}
