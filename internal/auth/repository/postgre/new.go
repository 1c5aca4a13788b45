package postgre

import (
	"database/sql"
	"fmt"

	"novacart-support/internal/auth/repository"
	"novacart-support/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the auth domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("auth/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("auth/repository/postgre.%s", method)
}
