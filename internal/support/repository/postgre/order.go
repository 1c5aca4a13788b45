package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"novacart-support/internal/support"
	repo "novacart-support/internal/support/repository"
)

// CreateOrder inserts a new order row and returns the created entity.
func (r *implRepository) CreateOrder(ctx context.Context, opt repo.CreateOrderOptions) (support.Order, error) {
	const query = `
		INSERT INTO orders (order_id, user_id, product_name, quantity, status, order_date)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, order_id, user_id, product_name, quantity, status, order_date`

	var o support.Order
	err := r.db.QueryRowContext(ctx, query,
		opt.OrderID, opt.UserID, opt.ProductName, opt.Quantity, opt.Status,
	).Scan(&o.ID, &o.OrderID, &o.UserID, &o.ProductName, &o.Quantity, &o.Status, &o.OrderDate)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateOrder"), err)
		return support.Order{}, repo.ErrFailedToInsert
	}
	return o, nil
}

// GetOneOrder retrieves a single order by the provided filters (AND condition).
// Returns zero-value Order (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneOrder(ctx context.Context, opt repo.GetOneOrderOptions) (support.Order, error) {
	var (
		conds []string
		args  []interface{}
	)
	if opt.OrderID != "" {
		args = append(args, opt.OrderID)
		conds = append(conds, fmt.Sprintf("UPPER(order_id) = UPPER($%d)", len(args)))
	}
	if opt.UserID != "" {
		args = append(args, opt.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return support.Order{}, nil
	}

	query := fmt.Sprintf(
		`SELECT id, order_id, user_id, product_name, quantity, status, COALESCE(return_reason, ''), order_date
		 FROM orders WHERE %s LIMIT 1`,
		strings.Join(conds, " AND "),
	)

	var o support.Order
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&o.ID, &o.OrderID, &o.UserID, &o.ProductName, &o.Quantity, &o.Status, &o.ReturnReason, &o.OrderDate,
	)
	if err == sql.ErrNoRows {
		return support.Order{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneOrder"), err)
		return support.Order{}, repo.ErrFailedToGet
	}
	return o, nil
}

// MarkOrderReturned flips the order into RETURN_REQUESTED and records the reason.
func (r *implRepository) MarkOrderReturned(ctx context.Context, opt repo.MarkOrderReturnedOptions) error {
	const query = `
		UPDATE orders
		SET status = $1, return_reason = $2
		WHERE UPPER(order_id) = UPPER($3)`

	_, err := r.db.ExecContext(ctx, query, support.OrderStatusReturnRequested, opt.Reason, opt.OrderID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkOrderReturned"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
