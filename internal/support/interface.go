package support

import (
	"context"

	"novacart-support/internal/model"
)

// UseCase defines the task handlers the router can dispatch to.
type UseCase interface {
	// PlaceOrder extracts product and quantity from the user text and
	// creates an order, or asks for the product and opens the order flow.
	PlaceOrder(ctx context.Context, sc model.Scope, input HandlerInput) (HandlerOutput, error)

	// TrackOrder reports status and a delivery estimate for the order.
	TrackOrder(ctx context.Context, sc model.Scope, input HandlerInput) (HandlerOutput, error)

	// ReturnOrder raises a return request for the order.
	ReturnOrder(ctx context.Context, sc model.Scope, input HandlerInput) (HandlerOutput, error)

	// RaiseTicket creates a support ticket, escalated or order-scoped.
	RaiseTicket(ctx context.Context, sc model.Scope, input HandlerInput) (HandlerOutput, error)

	// AnswerFAQ answers a company/policy question from retrieved documents.
	AnswerFAQ(ctx context.Context, sc model.Scope, input HandlerInput) (HandlerOutput, error)
}
