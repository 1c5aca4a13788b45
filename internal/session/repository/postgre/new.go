package postgre

import (
	"database/sql"
	"fmt"

	"novacart-support/internal/session/repository"
	"novacart-support/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed conversation memory repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("session/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("session/repository/postgre.%s", method)
}
