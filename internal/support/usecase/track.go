package usecase

import (
	"context"
	"fmt"

	"novacart-support/internal/model"
	"novacart-support/internal/support"
	"novacart-support/internal/support/repository"
)

// TrackOrder reports the order's status and a 5-7 business-day delivery
// estimate. The delivery window is computed here; the oracle only provides
// a friendly explanation and may fail without consequence.
func (uc *implUseCase) TrackOrder(ctx context.Context, sc model.Scope, input support.HandlerInput) (support.HandlerOutput, error) {
	uc.l.Infof(ctx, "TrackOrder: user=%s order=%s", sc.UserID, input.OrderID)

	order, err := uc.repo.GetOneOrder(ctx, repository.GetOneOrderOptions{
		OrderID: input.OrderID,
		UserID:  sc.UserID,
	})
	if err != nil {
		return support.HandlerOutput{}, fmt.Errorf("failed to get order: %w", err)
	}
	if order.ID == "" {
		return support.HandlerOutput{Reply: fmt.Sprintf(MsgOrderNotFound, input.OrderID)}, nil
	}

	orderDate := order.OrderDate.Format(orderDateLayout)
	window := fmt.Sprintf("%s – %s",
		addBusinessDays(order.OrderDate, deliveryWindowStart).Format(orderDateLayout),
		addBusinessDays(order.OrderDate, deliveryWindowEnd).Format(orderDateLayout),
	)

	explanation, err := uc.oracle.Complete(ctx, fmt.Sprintf(
		PromptTrackExplanation,
		order.OrderID, order.ProductName, order.Quantity, orderDate, order.Status, window,
	))
	if err != nil || explanation == "" {
		if err != nil {
			uc.l.Warnf(ctx, "TrackOrder: oracle explanation failed: %v", err)
		}
		explanation = fmt.Sprintf(MsgTrackFallback, order.Status, window)
	}

	reply := fmt.Sprintf(MsgTrackStatus,
		order.OrderID, order.ProductName, order.Quantity, orderDate, order.Status, window, explanation,
	)
	return support.HandlerOutput{Reply: reply}, nil
}
