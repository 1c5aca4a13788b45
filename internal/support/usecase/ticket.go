package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"novacart-support/internal/model"
	"novacart-support/internal/support"
	"novacart-support/internal/support/repository"
)

type issueExtraction struct {
	Issue *string `json:"issue"`
}

// RaiseTicket creates a support ticket. Escalated turns skip the order-ID
// requirement entirely and produce an ESCALATED ticket with the support
// contact block; order-scoped turns produce an OPEN ticket with the issue
// extracted from the user text.
func (uc *implUseCase) RaiseTicket(ctx context.Context, sc model.Scope, input support.HandlerInput) (support.HandlerOutput, error) {
	ticketNum := newTicketID()

	if input.EscalationReason != "" {
		uc.l.Infof(ctx, "RaiseTicket: escalation user=%s reason=%q", sc.UserID, input.EscalationReason)

		issue := fmt.Sprintf("Escalated Reason: %s", input.EscalationReason)
		if _, err := uc.repo.CreateTicket(ctx, repository.CreateTicketOptions{
			TicketNum: ticketNum,
			UserID:    sc.UserID,
			Issue:     issue,
			Status:    support.TicketStatusEscalated,
		}); err != nil {
			return support.HandlerOutput{}, fmt.Errorf("failed to create ticket: %w", err)
		}

		return support.HandlerOutput{Reply: fmt.Sprintf(MsgTicketEscalated, ticketNum, issue)}, nil
	}

	uc.l.Infof(ctx, "RaiseTicket: user=%s order=%s", sc.UserID, input.OrderID)

	issue := uc.extractIssue(ctx, input.UserText)
	if len(issue) < minIssueLen {
		issue = strings.TrimSpace(input.UserText)
	}

	ticket, err := uc.repo.CreateTicket(ctx, repository.CreateTicketOptions{
		TicketNum: ticketNum,
		UserID:    sc.UserID,
		OrderID:   input.OrderID,
		Issue:     issue,
		Status:    support.TicketStatusOpen,
	})
	if err != nil {
		return support.HandlerOutput{}, fmt.Errorf("failed to create ticket: %w", err)
	}

	reply := fmt.Sprintf(MsgTicketCreated, input.OrderID, ticket.TicketNum, issue)
	return support.HandlerOutput{Reply: reply}, nil
}

func (uc *implUseCase) extractIssue(ctx context.Context, userText string) string {
	raw, err := uc.oracle.Complete(ctx, fmt.Sprintf(PromptExtractIssue, userText))
	if err != nil {
		uc.l.Warnf(ctx, "RaiseTicket: oracle issue extraction failed: %v", err)
		return ""
	}

	var data issueExtraction
	if err := json.Unmarshal([]byte(stripFences(raw)), &data); err != nil {
		uc.l.Warnf(ctx, "RaiseTicket: unparseable oracle output %q", raw)
		return ""
	}
	if data.Issue == nil {
		return ""
	}
	return strings.TrimSpace(*data.Issue)
}
