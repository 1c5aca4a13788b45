package repository

import (
	"context"

	"novacart-support/internal/support"
)

// Repository is the composed interface for the support domain data store.
type Repository interface {
	OrderRepository
	ReturnRepository
	TicketRepository
}

// OrderRepository defines data access methods for the orders table.
type OrderRepository interface {
	CreateOrder(ctx context.Context, opt CreateOrderOptions) (support.Order, error)
	GetOneOrder(ctx context.Context, opt GetOneOrderOptions) (support.Order, error)
	MarkOrderReturned(ctx context.Context, opt MarkOrderReturnedOptions) error
}

// ReturnRepository defines data access methods for the returns table.
type ReturnRepository interface {
	CreateReturn(ctx context.Context, opt CreateReturnOptions) (support.Return, error)
}

// TicketRepository defines data access methods for the support_tickets table.
type TicketRepository interface {
	CreateTicket(ctx context.Context, opt CreateTicketOptions) (support.Ticket, error)
}

// FAQDocument is a retrieved knowledge-base snippet with its similarity score.
type FAQDocument struct {
	ID    string
	Text  string
	Score float64
}

// FAQRepository retrieves company knowledge-base documents by semantic search.
type FAQRepository interface {
	SearchFAQ(ctx context.Context, opt SearchFAQOptions) ([]FAQDocument, error)
}
