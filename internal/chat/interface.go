package chat

import (
	"context"

	"novacart-support/internal/model"
)

// UseCase orchestrates conversation turns end to end.
type UseCase interface {
	// StartSession opens a fresh conversation for the user.
	StartSession(ctx context.Context, sc model.Scope) (StartOutput, error)

	// ProcessTurn routes one user message, runs the decided task handler
	// and returns the assistant reply. Turns on the same session are
	// serialized; turns on different sessions run in parallel.
	ProcessTurn(ctx context.Context, sc model.Scope, input TurnInput) (TurnOutput, error)
}
