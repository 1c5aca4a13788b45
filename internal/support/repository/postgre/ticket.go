package postgre

import (
	"context"
	"database/sql"

	"novacart-support/internal/support"
	repo "novacart-support/internal/support/repository"
)

// CreateTicket inserts a support ticket row and returns the created entity.
// OrderID is stored as NULL for escalation tickets.
func (r *implRepository) CreateTicket(ctx context.Context, opt repo.CreateTicketOptions) (support.Ticket, error) {
	const query = `
		INSERT INTO support_tickets (ticket_num, user_id, order_id, issue, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, ticket_num, user_id, COALESCE(order_id, ''), issue, status, created_at`

	orderID := sql.NullString{String: opt.OrderID, Valid: opt.OrderID != ""}

	var t support.Ticket
	err := r.db.QueryRowContext(ctx, query,
		opt.TicketNum, opt.UserID, orderID, opt.Issue, opt.Status,
	).Scan(&t.ID, &t.TicketNum, &t.UserID, &t.OrderID, &t.Issue, &t.Status, &t.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTicket"), err)
		return support.Ticket{}, repo.ErrFailedToInsert
	}
	return t, nil
}
