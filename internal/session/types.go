package session

import (
	"novacart-support/internal/model"
)

// Session is the per-conversation state value. It is passed through the
// router as a value and written back only by the owning turn, so routing
// itself never touches storage.
type Session struct {
	ID     string
	UserID string

	// Ordered conversation history for this session.
	Turns []model.Turn

	// Sticky order ID detected in any earlier turn. Later matches
	// always replace it.
	ActiveOrderID string

	// Intent held from a previous turn that was missing its order ID.
	// Cleared by the turn that consumes it.
	PendingIntent model.Intent

	// Why this turn was force-routed to the ticket handler. Cleared by
	// the turn that consumes it.
	EscalationReason string

	// Order-placement flow lock. While set, every turn goes straight to
	// the order handler.
	OrderContext bool
}

// AppendTurn appends a message to the session history.
func (s *Session) AppendTurn(role model.Role, text string) {
	s.Turns = append(s.Turns, model.Turn{Role: role, Text: text})
}

// LastUserText returns the latest user message in the session.
func (s *Session) LastUserText() string {
	return model.LastUserText(s.Turns)
}

// RecentTurns returns up to n most recent turns.
func (s *Session) RecentTurns(n int) []model.Turn {
	if n <= 0 || n >= len(s.Turns) {
		return s.Turns
	}
	return s.Turns[len(s.Turns)-n:]
}
