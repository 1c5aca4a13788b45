package usecase

import (
	"context"
	"strings"
	"testing"

	"novacart-support/internal/model"
	"novacart-support/internal/support"
)

func TestReturnOrder(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user_ab12cd"}

	placed := support.Order{
		ID:          "1",
		OrderID:     "ORD-AB12CD",
		UserID:      sc.UserID,
		ProductName: "wireless headphones",
		Quantity:    1,
		Status:      support.OrderStatusPlaced,
	}

	t.Run("unknown order", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockOracle{}, &mockRepo{}, &mockFAQRepo{})

		out, err := uc.ReturnOrder(ctx, sc, support.HandlerInput{OrderID: "ORD-ZZ99XX"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Reply, "ORD-ZZ99XX") || !strings.Contains(out.Reply, "not found") {
			t.Errorf("reply = %q", out.Reply)
		}
	})

	t.Run("raises return with extracted reason", func(t *testing.T) {
		repo := &mockRepo{order: placed}
		uc := New(&mockLogger{}, &mockOracle{response: "Product arrived damaged"}, repo, &mockFAQRepo{})

		out, err := uc.ReturnOrder(ctx, sc, support.HandlerInput{
			OrderID:  "ORD-AB12CD",
			UserText: "return ORD-AB12CD, it arrived damaged",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.markedReturn == nil || repo.markedReturn.Reason != "Product arrived damaged" {
			t.Errorf("order not marked returned: %+v", repo.markedReturn)
		}
		if repo.createdReturn == nil {
			t.Fatal("expected a returns row")
		}
		if repo.createdReturn.Status != support.OrderStatusReturnRequested {
			t.Errorf("return status = %q", repo.createdReturn.Status)
		}
		if !strings.Contains(out.Reply, "ORD-AB12CD") || !strings.Contains(out.Reply, "Product arrived damaged") {
			t.Errorf("reply = %q", out.Reply)
		}
	})

	t.Run("duplicate return is refused", func(t *testing.T) {
		already := placed
		already.Status = support.OrderStatusReturnRequested
		repo := &mockRepo{order: already}
		uc := New(&mockLogger{}, &mockOracle{response: "whatever"}, repo, &mockFAQRepo{})

		out, err := uc.ReturnOrder(ctx, sc, support.HandlerInput{OrderID: "ORD-AB12CD"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.createdReturn != nil || repo.markedReturn != nil {
			t.Error("duplicate return must not touch the store")
		}
		if !strings.Contains(out.Reply, "already been initiated") {
			t.Errorf("reply = %q", out.Reply)
		}
	})

	t.Run("oracle failure uses generic reason", func(t *testing.T) {
		repo := &mockRepo{order: placed}
		uc := New(&mockLogger{}, &mockOracle{err: context.DeadlineExceeded}, repo, &mockFAQRepo{})

		out, err := uc.ReturnOrder(ctx, sc, support.HandlerInput{OrderID: "ORD-AB12CD"})
		if err != nil {
			t.Fatalf("oracle failure must not error the turn: %v", err)
		}
		if repo.createdReturn == nil || repo.createdReturn.Reason != DefaultReturnReason {
			t.Errorf("return = %+v, want reason %q", repo.createdReturn, DefaultReturnReason)
		}
		if !strings.Contains(out.Reply, DefaultReturnReason) {
			t.Errorf("reply = %q", out.Reply)
		}
	})

	t.Run("empty oracle reason uses generic reason", func(t *testing.T) {
		repo := &mockRepo{order: placed}
		uc := New(&mockLogger{}, &mockOracle{response: "   "}, repo, &mockFAQRepo{})

		if _, err := uc.ReturnOrder(ctx, sc, support.HandlerInput{OrderID: "ORD-AB12CD"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.createdReturn == nil || repo.createdReturn.Reason != DefaultReturnReason {
			t.Errorf("return = %+v", repo.createdReturn)
		}
	})
}
