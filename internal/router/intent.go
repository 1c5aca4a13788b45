package router

import (
	"context"
	"fmt"
	"strings"

	"novacart-support/internal/model"
)

// ruleIntent resolves an intent from fixed keyword lists, in priority
// order FAQ → track → return → ticket → order. First match wins.
func ruleIntent(lowered string) model.Intent {
	switch {
	case containsAny(lowered, faqKeywords):
		return model.IntentFAQ
	case containsAny(lowered, trackKeywords):
		return model.IntentTrack
	case containsAny(lowered, returnKeywords):
		return model.IntentReturn
	case containsAny(lowered, ticketKeywords):
		return model.IntentTicket
	case containsAny(lowered, orderKeywords):
		return model.IntentOrder
	}
	return model.IntentNone
}

// oracleLabels maps the closed label set the oracle is prompted with onto
// internal intents. Anything outside the map defaults to FAQ.
var oracleLabels = map[string]model.Intent{
	"place_order":  model.IntentOrder,
	"track_order":  model.IntentTrack,
	"return_order": model.IntentReturn,
	"raise_ticket": model.IntentTicket,
	"faq_llm":      model.IntentFAQ,
}

// classifyWithOracle asks the text-completion oracle for an intent label.
// Any failure or unrecognized output maps to FAQ; the oracle can never
// error a turn.
func (r *IntentRouter) classifyWithOracle(ctx context.Context, userText string) model.Intent {
	raw, err := r.oracle.Complete(ctx, fmt.Sprintf(PromptIntentClassify, userText))
	if err != nil {
		r.l.Warnf(ctx, "%s: oracle call failed, defaulting to FAQ: %v", LogPrefixClassify, err)
		return model.IntentFAQ
	}

	label := normalizeOracleLabel(raw)
	intent, ok := oracleLabels[label]
	if !ok {
		r.l.Warnf(ctx, "%s: unrecognized oracle label %q, defaulting to FAQ", LogPrefixClassify, raw)
		return model.IntentFAQ
	}
	return intent
}

// normalizeOracleLabel strips markdown fences, quotes, and surrounding
// noise from the oracle's single-label response.
func normalizeOracleLabel(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.Trim(s, " \t\r\n\"'`.")
	return strings.ToLower(s)
}
