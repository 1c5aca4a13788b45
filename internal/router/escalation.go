package router

import "strings"

// IsEscalation reports whether the raw text matches any escalation phrase.
// The turn orchestrator uses it to break the order-placement lock before
// routing, so escalation always wins.
func IsEscalation(text string) bool {
	_, ok := escalationReason(strings.ToLower(strings.TrimSpace(text)))
	return ok
}

// escalationReason tests the lowered input against the three escalation
// phrase sets in priority order. It returns the fixed reason label for the
// first set that matches.
func escalationReason(lowered string) (string, bool) {
	if containsAny(lowered, humanRequestPhrases) {
		return ReasonHumanRequested, true
	}
	if containsAny(lowered, urgentPhrases) {
		return ReasonUrgent, true
	}
	if containsAny(lowered, complaintPhrases) {
		return ReasonComplaint, true
	}
	return "", false
}

func containsAny(lowered string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}
