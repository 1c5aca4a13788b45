package repository

import (
	"context"

	"novacart-support/internal/auth"
)

// Repository defines data access methods for the users table.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (auth.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (auth.User, error)
}
