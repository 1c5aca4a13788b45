package repository

// CreateOrderOptions holds parameters for inserting a new order.
type CreateOrderOptions struct {
	OrderID     string
	UserID      string
	ProductName string
	Quantity    int
	Status      string
}

// GetOneOrderOptions holds filter parameters for fetching a single order.
// All non-empty fields are applied as AND conditions.
type GetOneOrderOptions struct {
	OrderID string
	UserID  string
}

// MarkOrderReturnedOptions holds parameters for flipping an order into
// the return-requested state.
type MarkOrderReturnedOptions struct {
	OrderID string
	Reason  string
}

// CreateReturnOptions holds parameters for inserting a return request.
type CreateReturnOptions struct {
	UserID  string
	OrderID string
	Reason  string
	Status  string
}

// CreateTicketOptions holds parameters for inserting a support ticket.
// OrderID is empty for escalation tickets.
type CreateTicketOptions struct {
	TicketNum string
	UserID    string
	OrderID   string
	Issue     string
	Status    string
}

// SearchFAQOptions holds parameters for retrieving FAQ documents.
type SearchFAQOptions struct {
	Query string
	TopK  int
}
