package support

import "time"

// Order statuses.
const (
	OrderStatusPlaced          = "PLACED"
	OrderStatusReturnRequested = "RETURN_REQUESTED"
)

// Ticket statuses.
const (
	TicketStatusOpen      = "OPEN"
	TicketStatusEscalated = "ESCALATED"
)

// Order is a row in the orders table.
type Order struct {
	ID           string
	OrderID      string // user-facing "ORD-XXXXXX"
	UserID       string
	ProductID    string
	ProductName  string
	Quantity     int
	Status       string
	PaymentMode  string
	ReturnReason string
	OrderDate    time.Time
}

// Return is a row in the returns table.
type Return struct {
	ID        string
	UserID    string
	OrderID   string
	Reason    string
	Status    string
	CreatedAt time.Time
}

// Ticket is a row in the support_tickets table.
type Ticket struct {
	ID        string
	TicketNum string // user-facing "TCK-XXXXXX"
	UserID    string
	OrderID   string
	Issue     string
	Status    string
	CreatedAt time.Time
}

// HandlerInput carries the routed turn into a task handler.
type HandlerInput struct {
	SessionID        string
	UserText         string
	OrderID          string // sticky order ID from session state, may be empty
	EscalationReason string // set only on escalated ticket turns
}

// HandlerOutput is what a task handler returns to the turn orchestrator.
type HandlerOutput struct {
	Reply string

	// OrderContext reports whether the order-placement flow is still
	// open (the handler asked for a product and expects the next turn).
	OrderContext bool
}
