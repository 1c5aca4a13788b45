package router

import (
	"context"
	"fmt"
	"strings"

	"novacart-support/internal/model"
	"novacart-support/internal/session"
)

// Route decides the turn's task handler from the raw user text and the
// session's routing state. Rules are evaluated in strict precedence; the
// first applicable rule fires and all later ones are skipped. Every path
// either dispatches exactly one handler or terminates the turn with
// exactly one clarifying message.
func (r *IntentRouter) Route(ctx context.Context, s session.Session, userText string) (session.Session, Decision) {
	trimmed := strings.TrimSpace(userText)
	lowered := strings.ToLower(trimmed)

	// 1. Order-placement flow lock. A partially specified order cannot be
	// re-routed mid-flight.
	if s.OrderContext {
		return s, dispatch(model.IntentOrder)
	}

	// 2. Escalation wins over everything else, including order-ID
	// extraction. Pending intent is left untouched.
	if reason, ok := escalationReason(lowered); ok {
		s.EscalationReason = reason
		r.l.Infof(ctx, "%s: escalated (%s)", LogPrefixRoute, reason)
		return s, dispatch(model.IntentTicket)
	}

	// 3. Order-ID extraction. A new match always replaces the sticky ID.
	if id := extractOrderID(trimmed); id != "" {
		s.ActiveOrderID = id
	} else if looksLikeOrderID(trimmed) {
		// Near-miss order IDs must not silently fall through to FAQ.
		return s, hold(MsgInvalidOrderIDFormat)
	}

	intent := ruleIntent(lowered)

	// 4. A pending intent plus a now-known order ID completes the held
	// task. The pending intent is consumed here and only here.
	if s.PendingIntent != model.IntentNone && s.ActiveOrderID != "" {
		next := s.PendingIntent
		s.PendingIntent = model.IntentNone
		return s, dispatch(next)
	}

	// 5. Order-scoped intent without an order ID: hold and prompt.
	if intent.RequiresOrderID() && s.ActiveOrderID == "" {
		s.PendingIntent = intent
		return s, hold(orderIDPrompt(intent))
	}

	// 6. Order ID known but nothing asked of it: offer the menu.
	if s.ActiveOrderID != "" && intent == model.IntentNone && s.PendingIntent == model.IntentNone {
		upper := strings.ToUpper(s.ActiveOrderID)
		return s, hold(fmt.Sprintf(MsgOrderIDMenu, upper, upper, upper, upper))
	}

	// 7. Order-scoped intent with its order ID present: dispatch.
	if intent.RequiresOrderID() && s.ActiveOrderID != "" {
		return s, dispatch(intent)
	}

	// 8. Bare numbers never reach the oracle.
	if isAllDigits(trimmed) {
		return s, hold(MsgDescribeQuery)
	}

	// 9. Rule-resolved FAQ or order intent dispatches directly.
	if intent != model.IntentNone {
		return s, dispatch(intent)
	}

	// 10. Oracle fallback, only when no rule matched and nothing is
	// pending. An unresolvable turn still lands on the FAQ handler.
	if s.PendingIntent == model.IntentNone {
		return s, dispatch(r.classifyWithOracle(ctx, trimmed))
	}
	return s, dispatch(model.IntentFAQ)
}

// orderIDPrompt returns the intent-specific "provide your order ID" message.
func orderIDPrompt(intent model.Intent) string {
	switch intent {
	case model.IntentTrack:
		return MsgProvideOrderIDTrack
	case model.IntentReturn:
		return MsgProvideOrderIDReturn
	default:
		return MsgProvideOrderIDTicket
	}
}
