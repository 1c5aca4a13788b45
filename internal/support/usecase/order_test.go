package usecase

import (
	"context"
	"strings"
	"testing"

	"novacart-support/internal/model"
	"novacart-support/internal/support"
	"novacart-support/internal/support/repository"
)

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user_ab12cd"}

	t.Run("creates order from extracted product", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, &mockOracle{response: `{"product": "wireless headphones", "quantity": 2}`}, repo, &mockFAQRepo{})

		out, err := uc.PlaceOrder(ctx, sc, support.HandlerInput{UserText: "order 2 wireless headphones"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.OrderContext {
			t.Error("expected order flow closed after placement")
		}
		if repo.createdOrder == nil {
			t.Fatal("expected an order row")
		}
		if repo.createdOrder.ProductName != "wireless headphones" {
			t.Errorf("product = %q", repo.createdOrder.ProductName)
		}
		if repo.createdOrder.Quantity != 2 {
			t.Errorf("quantity = %d, want 2", repo.createdOrder.Quantity)
		}
		if repo.createdOrder.Status != support.OrderStatusPlaced {
			t.Errorf("status = %q", repo.createdOrder.Status)
		}
		if !strings.HasPrefix(repo.createdOrder.OrderID, "ORD-") || len(repo.createdOrder.OrderID) != 10 {
			t.Errorf("order ID = %q, want ORD- plus 6 chars", repo.createdOrder.OrderID)
		}
		if repo.createdOrder.OrderID != strings.ToUpper(repo.createdOrder.OrderID) {
			t.Errorf("order ID %q not uppercase", repo.createdOrder.OrderID)
		}
		if !strings.Contains(out.Reply, "wireless headphones") || !strings.Contains(out.Reply, repo.createdOrder.OrderID) {
			t.Errorf("reply missing order details: %q", out.Reply)
		}
	})

	t.Run("strips markdown fences from oracle output", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, &mockOracle{response: "```json\n{\"product\": \"laptop\", \"quantity\": 1}\n```"}, repo, &mockFAQRepo{})

		out, err := uc.PlaceOrder(ctx, sc, support.HandlerInput{UserText: "buy a laptop"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.createdOrder == nil || repo.createdOrder.ProductName != "laptop" {
			t.Fatalf("expected laptop order, got %+v", repo.createdOrder)
		}
		if out.OrderContext {
			t.Error("expected order flow closed")
		}
	})

	t.Run("null product asks and keeps the flow open", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, &mockOracle{response: `{"product": null, "quantity": 1}`}, repo, &mockFAQRepo{})

		out, err := uc.PlaceOrder(ctx, sc, support.HandlerInput{UserText: "I want to place an order"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.OrderContext {
			t.Error("expected open order flow")
		}
		if repo.createdOrder != nil {
			t.Error("no order should be created without a product")
		}
		if out.Reply != MsgAskProduct {
			t.Errorf("reply = %q", out.Reply)
		}
	})

	t.Run("missing_product sentinel and short names are rejected", func(t *testing.T) {
		for _, resp := range []string{
			`{"product": "missing_product", "quantity": 1}`,
			`{"product": "tv", "quantity": 1}`,
		} {
			uc := New(&mockLogger{}, &mockOracle{response: resp}, &mockRepo{}, &mockFAQRepo{})
			out, err := uc.PlaceOrder(ctx, sc, support.HandlerInput{UserText: "order"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !out.OrderContext {
				t.Errorf("response %q should keep the flow open", resp)
			}
		}
	})

	t.Run("oracle failure falls back to asking", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockOracle{err: context.DeadlineExceeded}, &mockRepo{}, &mockFAQRepo{})

		out, err := uc.PlaceOrder(ctx, sc, support.HandlerInput{UserText: "order something"})
		if err != nil {
			t.Fatalf("oracle failure must not error the turn: %v", err)
		}
		if !out.OrderContext || out.Reply != MsgAskProduct {
			t.Errorf("expected ask-product fallback, got %+v", out)
		}
	})

	t.Run("unparseable oracle output falls back to asking", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockOracle{response: "sure, what would you like?"}, &mockRepo{}, &mockFAQRepo{})

		out, err := uc.PlaceOrder(ctx, sc, support.HandlerInput{UserText: "order something"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.OrderContext {
			t.Error("expected open order flow")
		}
	})

	t.Run("store failure surfaces as error", func(t *testing.T) {
		repo := &mockRepo{createOrderErr: repository.ErrFailedToInsert}
		uc := New(&mockLogger{}, &mockOracle{response: `{"product": "keyboard", "quantity": 1}`}, repo, &mockFAQRepo{})

		if _, err := uc.PlaceOrder(ctx, sc, support.HandlerInput{UserText: "order a keyboard"}); err == nil {
			t.Fatal("expected error")
		}
	})
}
