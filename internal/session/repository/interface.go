package repository

import (
	"context"

	"novacart-support/internal/model"
)

// Repository persists conversation memory.
type Repository interface {
	// AppendTurns stores turns for a session, oldest first.
	AppendTurns(ctx context.Context, sessionID string, turns []model.Turn) error

	// LoadTurns returns up to limit most recent turns, oldest first.
	LoadTurns(ctx context.Context, sessionID string, limit int) ([]model.Turn, error)
}
