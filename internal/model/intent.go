package model

// Intent is the closed set of task labels the router can decide on.
type Intent string

const (
	IntentNone   Intent = ""       // no intent resolved
	IntentOrder  Intent = "order"  // place a new order
	IntentTrack  Intent = "track"  // track an existing order
	IntentReturn Intent = "return" // return an existing order
	IntentTicket Intent = "ticket" // raise a support ticket
	IntentFAQ    Intent = "faq"    // company/policy question
)

// RequiresOrderID reports whether the intent cannot be dispatched
// without an order ID in session state.
func (i Intent) RequiresOrderID() bool {
	switch i {
	case IntentTrack, IntentReturn, IntentTicket:
		return true
	}
	return false
}

// Valid reports whether the label is a member of the closed set.
func (i Intent) Valid() bool {
	switch i {
	case IntentNone, IntentOrder, IntentTrack, IntentReturn, IntentTicket, IntentFAQ:
		return true
	}
	return false
}
