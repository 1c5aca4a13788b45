package postgre

import (
	"database/sql"
	"fmt"

	"novacart-support/internal/support/repository"
	"novacart-support/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the support domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("support/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("support/repository/postgre.%s", method)
}
