package usecase

import (
	"context"
	"strings"
	"testing"

	"novacart-support/internal/model"
	"novacart-support/internal/support"
)

func TestRaiseTicket(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user_ab12cd"}

	t.Run("escalation ticket needs no order", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, &mockOracle{}, repo, &mockFAQRepo{})

		out, err := uc.RaiseTicket(ctx, sc, support.HandlerInput{
			UserText:         "I want to talk to a human",
			EscalationReason: "User Requested Human",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.createdTicket == nil {
			t.Fatal("expected a ticket row")
		}
		if repo.createdTicket.OrderID != "" {
			t.Errorf("escalation ticket must not carry an order ID, got %q", repo.createdTicket.OrderID)
		}
		if repo.createdTicket.Status != support.TicketStatusEscalated {
			t.Errorf("status = %q", repo.createdTicket.Status)
		}
		if repo.createdTicket.Issue != "Escalated Reason: User Requested Human" {
			t.Errorf("issue = %q", repo.createdTicket.Issue)
		}
		if !strings.HasPrefix(repo.createdTicket.TicketNum, "TCK-") {
			t.Errorf("ticket num = %q", repo.createdTicket.TicketNum)
		}
		for _, want := range []string{repo.createdTicket.TicketNum, "support@novacart.in", "+91 98765 43210"} {
			if !strings.Contains(out.Reply, want) {
				t.Errorf("reply missing %q:\n%s", want, out.Reply)
			}
		}
	})

	t.Run("order ticket with extracted issue", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, &mockOracle{response: `{"issue": "The product arrived damaged"}`}, repo, &mockFAQRepo{})

		out, err := uc.RaiseTicket(ctx, sc, support.HandlerInput{
			UserText: "raise a ticket for ORD-AB12CD, my item is damaged",
			OrderID:  "ORD-AB12CD",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.createdTicket == nil {
			t.Fatal("expected a ticket row")
		}
		if repo.createdTicket.Status != support.TicketStatusOpen {
			t.Errorf("status = %q", repo.createdTicket.Status)
		}
		if repo.createdTicket.OrderID != "ORD-AB12CD" {
			t.Errorf("order ID = %q", repo.createdTicket.OrderID)
		}
		if repo.createdTicket.Issue != "The product arrived damaged" {
			t.Errorf("issue = %q", repo.createdTicket.Issue)
		}
		if !strings.Contains(out.Reply, "ORD-AB12CD") || !strings.Contains(out.Reply, repo.createdTicket.TicketNum) {
			t.Errorf("reply = %q", out.Reply)
		}
	})

	t.Run("unclear issue falls back to the raw text", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, &mockOracle{response: `{"issue": null}`}, repo, &mockFAQRepo{})

		_, err := uc.RaiseTicket(ctx, sc, support.HandlerInput{
			UserText: "ticket for ORD-AB12CD please, item never arrived",
			OrderID:  "ORD-AB12CD",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.createdTicket == nil || repo.createdTicket.Issue != "ticket for ORD-AB12CD please, item never arrived" {
			t.Errorf("ticket = %+v", repo.createdTicket)
		}
	})

	t.Run("oracle failure falls back to the raw text", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, &mockOracle{err: context.DeadlineExceeded}, repo, &mockFAQRepo{})

		_, err := uc.RaiseTicket(ctx, sc, support.HandlerInput{
			UserText: "my order ORD-AB12CD has a problem",
			OrderID:  "ORD-AB12CD",
		})
		if err != nil {
			t.Fatalf("oracle failure must not error the turn: %v", err)
		}
		if repo.createdTicket == nil || repo.createdTicket.Issue != "my order ORD-AB12CD has a problem" {
			t.Errorf("ticket = %+v", repo.createdTicket)
		}
	})
}
