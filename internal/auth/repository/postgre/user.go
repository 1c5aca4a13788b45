package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"novacart-support/internal/auth"
	repo "novacart-support/internal/auth/repository"
)

// pq error code for unique constraint violations.
const uniqueViolation = "23505"

// CreateUser inserts a new user row. A username collision returns
// ErrDuplicateUser so the caller can distinguish it from a real failure.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (auth.User, error) {
	const query = `
		INSERT INTO users (user_id, username, password)
		VALUES ($1, $2, $3)
		RETURNING user_id, username, password`

	var u auth.User
	err := r.db.QueryRowContext(ctx, query, opt.UserID, opt.Username, opt.Password).Scan(
		&u.UserID, &u.Username, &u.Password,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return auth.User{}, repo.ErrDuplicateUser
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return auth.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single user by the provided filters (AND condition).
// Returns zero-value User (UserID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (auth.User, error) {
	var (
		conds []string
		args  []interface{}
	)
	if opt.UserID != "" {
		args = append(args, opt.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if opt.Username != "" {
		args = append(args, opt.Username)
		conds = append(conds, fmt.Sprintf("username = $%d", len(args)))
	}
	if len(conds) == 0 {
		return auth.User{}, nil
	}

	query := fmt.Sprintf(
		`SELECT user_id, username, password FROM users WHERE %s LIMIT 1`,
		strings.Join(conds, " AND "),
	)

	var u auth.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&u.UserID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return auth.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return auth.User{}, repo.ErrFailedToGet
	}
	return u, nil
}
