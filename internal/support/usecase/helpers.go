package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// newOrderID generates a user-facing order ID like "ORD-3FA2B1".
func newOrderID() string {
	return "ORD-" + shortHex()
}

// newTicketID generates a user-facing ticket number like "TCK-9C04E7".
func newTicketID() string {
	return "TCK-" + shortHex()
}

func shortHex() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(hex[:6])
}

// stripFences removes a surrounding markdown code fence from oracle output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 && !strings.HasPrefix(s, "\n") {
		// drop a language tag like ```json
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// addBusinessDays advances the date by the given number of weekdays (Mon-Fri).
func addBusinessDays(start time.Time, days int) time.Time {
	current := start
	added := 0
	for added < days {
		current = current.AddDate(0, 0, 1)
		if wd := current.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return current
}
