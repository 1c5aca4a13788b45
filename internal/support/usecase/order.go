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

type orderExtraction struct {
	Product  *string `json:"product"`
	Quantity int     `json:"quantity"`
}

// PlaceOrder extracts product and quantity from the user text and creates an
// order. When the product cannot be determined it asks for one and reports an
// open order flow so the next turn comes straight back here.
func (uc *implUseCase) PlaceOrder(ctx context.Context, sc model.Scope, input support.HandlerInput) (support.HandlerOutput, error) {
	uc.l.Infof(ctx, "PlaceOrder: user=%s", sc.UserID)

	product, quantity := uc.extractOrder(ctx, input.UserText)

	if product == "" || strings.EqualFold(product, "missing_product") || len(product) < minProductLen {
		return support.HandlerOutput{Reply: MsgAskProduct, OrderContext: true}, nil
	}
	if quantity < 1 {
		quantity = DefaultQuantity
	}

	order, err := uc.repo.CreateOrder(ctx, repository.CreateOrderOptions{
		OrderID:     newOrderID(),
		UserID:      sc.UserID,
		ProductName: product,
		Quantity:    quantity,
		Status:      support.OrderStatusPlaced,
	})
	if err != nil {
		return support.HandlerOutput{}, fmt.Errorf("failed to create order: %w", err)
	}

	reply := fmt.Sprintf(MsgOrderPlaced, order.OrderID, order.ProductName, order.Quantity)
	return support.HandlerOutput{Reply: reply}, nil
}

// extractOrder asks the oracle for a {product, quantity} JSON object.
// Any failure, a refused parse included, falls back to {none, 1}.
func (uc *implUseCase) extractOrder(ctx context.Context, userText string) (string, int) {
	raw, err := uc.oracle.Complete(ctx, fmt.Sprintf(PromptExtractOrder, userText))
	if err != nil {
		uc.l.Warnf(ctx, "PlaceOrder: oracle extraction failed: %v", err)
		return "", DefaultQuantity
	}

	var data orderExtraction
	if err := json.Unmarshal([]byte(stripFences(raw)), &data); err != nil {
		uc.l.Warnf(ctx, "PlaceOrder: unparseable oracle output %q", raw)
		return "", DefaultQuantity
	}

	product := ""
	if data.Product != nil {
		product = strings.TrimSpace(*data.Product)
	}
	quantity := data.Quantity
	if quantity == 0 {
		quantity = DefaultQuantity
	}
	return product, quantity
}
