package router

import (
	"regexp"
	"unicode"
)

// orderIDPattern matches order identifiers of the form ORD-<alnum+>,
// case-insensitively. The matched text is stored with its case preserved.
var orderIDPattern = regexp.MustCompile(`(?i)(ORD-[A-Za-z0-9]+)`)

// extractOrderID returns the first order ID in the text, or "".
func extractOrderID(text string) string {
	return orderIDPattern.FindString(text)
}

// looksLikeOrderID reports whether the trimmed input resembles a failed
// order ID attempt: entirely alphanumeric with both letters and digits,
// and short. Such inputs get a format-correction prompt instead of
// falling through to FAQ handling. Purely numeric inputs are excluded;
// they are refused separately by the arbiter.
func looksLikeOrderID(trimmed string) bool {
	if trimmed == "" || len(trimmed) >= nearMissMaxLen {
		return false
	}

	hasDigit, hasLetter := false, false
	for _, r := range trimmed {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		default:
			return false
		}
	}
	return hasDigit && hasLetter
}

// isAllDigits reports whether the trimmed input is purely numeric.
func isAllDigits(trimmed string) bool {
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
