package usecase

import (
	"context"
	"fmt"
	"strings"

	"novacart-support/internal/model"
	"novacart-support/internal/support"
	"novacart-support/internal/support/repository"
)

// ReturnOrder raises a return request for the order after validating
// ownership. A second return on the same order is refused with an
// informational message instead of a duplicate row.
func (uc *implUseCase) ReturnOrder(ctx context.Context, sc model.Scope, input support.HandlerInput) (support.HandlerOutput, error) {
	uc.l.Infof(ctx, "ReturnOrder: user=%s order=%s", sc.UserID, input.OrderID)

	order, err := uc.repo.GetOneOrder(ctx, repository.GetOneOrderOptions{
		OrderID: input.OrderID,
		UserID:  sc.UserID,
	})
	if err != nil {
		return support.HandlerOutput{}, fmt.Errorf("failed to get order: %w", err)
	}
	if order.ID == "" {
		return support.HandlerOutput{Reply: fmt.Sprintf(MsgReturnNotFound, input.OrderID)}, nil
	}
	if order.Status == support.OrderStatusReturnRequested {
		return support.HandlerOutput{Reply: fmt.Sprintf(MsgReturnAlready, order.OrderID)}, nil
	}

	reason := uc.extractReturnReason(ctx, input.UserText, order.OrderID)

	if err := uc.repo.MarkOrderReturned(ctx, repository.MarkOrderReturnedOptions{
		OrderID: order.OrderID,
		Reason:  reason,
	}); err != nil {
		return support.HandlerOutput{}, fmt.Errorf("failed to update order: %w", err)
	}
	if _, err := uc.repo.CreateReturn(ctx, repository.CreateReturnOptions{
		UserID:  sc.UserID,
		OrderID: order.OrderID,
		Reason:  reason,
		Status:  support.OrderStatusReturnRequested,
	}); err != nil {
		return support.HandlerOutput{}, fmt.Errorf("failed to create return: %w", err)
	}

	return support.HandlerOutput{Reply: fmt.Sprintf(MsgReturnRaised, order.OrderID, reason)}, nil
}

func (uc *implUseCase) extractReturnReason(ctx context.Context, userText, orderID string) string {
	raw, err := uc.oracle.Complete(ctx, fmt.Sprintf(PromptExtractReturnReason, userText, orderID))
	if err != nil {
		uc.l.Warnf(ctx, "ReturnOrder: oracle reason extraction failed: %v", err)
		return DefaultReturnReason
	}
	reason := strings.TrimSpace(stripFences(raw))
	if reason == "" {
		return DefaultReturnReason
	}
	return reason
}
