package router

import (
	"context"

	"novacart-support/internal/session"
	"novacart-support/pkg/log"
)

// Oracle is the text-completion collaborator used only for intent
// fallback classification.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Router decides which task handler runs for a turn.
type Router interface {
	// Route is a pure transformation of session state plus user text into
	// updated state and a routing decision. It never touches storage.
	Route(ctx context.Context, s session.Session, userText string) (session.Session, Decision)
}

// IntentRouter combines the escalation classifier, order-ID extractor,
// rule-based intent resolver with oracle fallback, and the pending-intent
// arbiter.
type IntentRouter struct {
	oracle Oracle
	l      log.Logger
}

var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter.
func New(oracle Oracle, l log.Logger) *IntentRouter {
	return &IntentRouter{
		oracle: oracle,
		l:      l,
	}
}
