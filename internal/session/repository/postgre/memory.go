package postgre

import (
	"context"

	"novacart-support/internal/model"
	repo "novacart-support/internal/session/repository"
)

// AppendTurns inserts conversation turns for a session, oldest first.
func (r *implRepository) AppendTurns(ctx context.Context, sessionID string, turns []model.Turn) error {
	if len(turns) == 0 {
		return nil
	}

	const query = `
		INSERT INTO conversation_memory (session_id, role, content, created_at)
		VALUES ($1, $2, $3, NOW())`

	for _, turn := range turns {
		if _, err := r.db.ExecContext(ctx, query, sessionID, string(turn.Role), turn.Text); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("AppendTurns"), err)
			return repo.ErrFailedToInsert
		}
	}
	return nil
}

// LoadTurns returns up to limit most recent turns for the session, oldest first.
func (r *implRepository) LoadTurns(ctx context.Context, sessionID string, limit int) ([]model.Turn, error) {
	if limit <= 0 {
		limit = 6
	}

	const query = `
		SELECT role, content, created_at FROM conversation_memory
		WHERE session_id = $1
		ORDER BY id DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LoadTurns"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var turns []model.Turn
	for rows.Next() {
		var turn model.Turn
		var role string
		if err := rows.Scan(&role, &turn.Text, &turn.CreatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		turn.Role = model.Role(role)
		turns = append(turns, turn)
	}

	// Rows came newest-first; reverse to chronological order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}
