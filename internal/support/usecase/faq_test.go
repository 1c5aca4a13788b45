package usecase

import (
	"context"
	"strings"
	"testing"

	"novacart-support/internal/model"
	"novacart-support/internal/support"
	"novacart-support/internal/support/repository"
)

func TestAnswerFAQ(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user_ab12cd"}

	docs := []repository.FAQDocument{
		{ID: "1", Text: "NovaCart offers a 30-day return policy on all items.", Score: 0.91},
		{ID: "2", Text: "Refunds are processed within 5 business days.", Score: 0.85},
	}

	t.Run("summarizes retrieved documents", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockOracle{response: "You can return any item within 30 days."}, &mockRepo{}, &mockFAQRepo{docs: docs})

		out, err := uc.AnswerFAQ(ctx, sc, support.HandlerInput{UserText: "what is your return policy?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Reply != "You can return any item within 30 days." {
			t.Errorf("reply = %q", out.Reply)
		}
	})

	t.Run("no documents", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockOracle{response: "should not be called"}, &mockRepo{}, &mockFAQRepo{})

		out, err := uc.AnswerFAQ(ctx, sc, support.HandlerInput{UserText: "what is the meaning of life?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Reply != MsgFAQNoInfo {
			t.Errorf("reply = %q", out.Reply)
		}
	})

	t.Run("oracle failure degrades to top snippet", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockOracle{err: context.DeadlineExceeded}, &mockRepo{}, &mockFAQRepo{docs: docs})

		out, err := uc.AnswerFAQ(ctx, sc, support.HandlerInput{UserText: "return policy?"})
		if err != nil {
			t.Fatalf("oracle failure must not error the turn: %v", err)
		}
		if !strings.Contains(out.Reply, docs[0].Text) {
			t.Errorf("reply = %q", out.Reply)
		}
	})

	t.Run("search failure surfaces as error", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockOracle{}, &mockRepo{}, &mockFAQRepo{err: repository.ErrFailedToSearch})

		if _, err := uc.AnswerFAQ(ctx, sc, support.HandlerInput{UserText: "anything"}); err == nil {
			t.Fatal("expected error")
		}
	})
}
