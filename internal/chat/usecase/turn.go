package usecase

import (
	"context"
	"fmt"
	"strings"

	"novacart-support/internal/chat"
	"novacart-support/internal/model"
	"novacart-support/internal/router"
	"novacart-support/internal/session"
	"novacart-support/internal/support"
)

// memoryPersistTurns is how many trailing turns each completed turn writes
// to conversation memory: the user message plus the assistant reply.
const memoryPersistTurns = 2

// StartSession opens a fresh conversation for the user.
func (uc *implUseCase) StartSession(ctx context.Context, sc model.Scope) (chat.StartOutput, error) {
	s := uc.sessions.Create(sc.UserID)
	uc.l.Infof(ctx, "StartSession: user=%s session=%s", sc.UserID, s.ID)
	return chat.StartOutput{SessionID: s.ID}, nil
}

// ProcessTurn routes one user message and runs the decided task handler.
// The per-session lock is held for the whole turn, so two messages on the
// same session can never interleave their state updates.
func (uc *implUseCase) ProcessTurn(ctx context.Context, sc model.Scope, input chat.TurnInput) (chat.TurnOutput, error) {
	if input.SessionID == "" {
		return chat.TurnOutput{}, chat.ErrMissingSession
	}
	if strings.TrimSpace(input.Text) == "" {
		return chat.TurnOutput{}, chat.ErrEmptyMessage
	}

	entry := uc.sessions.Acquire(input.SessionID, sc.UserID)
	entry.Lock()
	defer entry.Unlock()

	s := entry.Snapshot()

	// Escalation breaks the order-placement lock: a user stuck mid-order
	// who asks for a human must not be bounced back to the order handler.
	if s.OrderContext && router.IsEscalation(input.Text) {
		s.OrderContext = false
	}

	s.AppendTurn(model.RoleUser, input.Text)

	s, decision := uc.router.Route(ctx, s, input.Text)

	reply, s, err := uc.runDecision(ctx, sc, s, decision, input.Text)
	if err != nil {
		return chat.TurnOutput{}, err
	}

	s.AppendTurn(model.RoleAssistant, reply)
	entry.Store(s)

	// Memory writes are best effort; a storage hiccup must not eat the reply.
	if err := uc.memory.AppendTurns(ctx, s.ID, s.RecentTurns(memoryPersistTurns)); err != nil {
		uc.l.Warnf(ctx, "ProcessTurn: failed to persist turns for %s: %v", s.ID, err)
	}

	return chat.TurnOutput{SessionID: s.ID, Reply: reply}, nil
}

// runDecision executes a routing decision: either the terminal clarifying
// message, or exactly one task handler.
func (uc *implUseCase) runDecision(
	ctx context.Context,
	sc model.Scope,
	s session.Session,
	decision router.Decision,
	userText string,
) (string, session.Session, error) {
	if decision.Terminal {
		return decision.Reply, s, nil
	}

	in := support.HandlerInput{
		SessionID:        s.ID,
		UserText:         userText,
		OrderID:          s.ActiveOrderID,
		EscalationReason: s.EscalationReason,
	}

	var (
		out support.HandlerOutput
		err error
	)
	switch decision.Next {
	case model.IntentOrder:
		out, err = uc.support.PlaceOrder(ctx, sc, in)
		if err == nil {
			s.OrderContext = out.OrderContext
		}
	case model.IntentTrack:
		out, err = uc.support.TrackOrder(ctx, sc, in)
	case model.IntentReturn:
		out, err = uc.support.ReturnOrder(ctx, sc, in)
	case model.IntentTicket:
		out, err = uc.support.RaiseTicket(ctx, sc, in)
		if err == nil {
			s.EscalationReason = ""
		}
	case model.IntentFAQ:
		out, err = uc.support.AnswerFAQ(ctx, sc, in)
	default:
		return "", s, fmt.Errorf("%w: %q", chat.ErrUnknownDispatch, decision.Next)
	}
	if err != nil {
		return "", s, fmt.Errorf("handler %q failed: %w", decision.Next, err)
	}
	return out.Reply, s, nil
}
