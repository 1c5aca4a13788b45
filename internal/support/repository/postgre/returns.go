package postgre

import (
	"context"

	"novacart-support/internal/support"
	repo "novacart-support/internal/support/repository"
)

// CreateReturn inserts a return request row and returns the created entity.
func (r *implRepository) CreateReturn(ctx context.Context, opt repo.CreateReturnOptions) (support.Return, error) {
	const query = `
		INSERT INTO returns (user_id, order_id, reason, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, order_id, reason, status, created_at`

	var ret support.Return
	err := r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.OrderID, opt.Reason, opt.Status,
	).Scan(&ret.ID, &ret.UserID, &ret.OrderID, &ret.Reason, &ret.Status, &ret.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateReturn"), err)
		return support.Return{}, repo.ErrFailedToInsert
	}
	return ret, nil
}
