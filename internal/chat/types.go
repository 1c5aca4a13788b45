package chat

// TurnInput is one user message addressed to a session.
type TurnInput struct {
	SessionID string
	Text      string
}

// TurnOutput is the assistant reply for the turn.
type TurnOutput struct {
	SessionID string
	Reply     string
}

// StartOutput is the result of opening a new conversation.
type StartOutput struct {
	SessionID string
}
