package router

import "novacart-support/internal/model"

// Decision is the per-turn routing outcome. Exactly one of the two shapes
// applies: a dispatch to a single task handler, or a terminal turn carrying
// exactly one clarifying message.
type Decision struct {
	// Next is the task handler to run. Meaningful only when Terminal is false.
	Next model.Intent

	// Reply is the clarifying message ending the turn. Meaningful only
	// when Terminal is true.
	Reply string

	// Terminal marks a turn that ends without dispatching a handler.
	Terminal bool
}

func dispatch(next model.Intent) Decision {
	return Decision{Next: next}
}

func hold(reply string) Decision {
	return Decision{Reply: reply, Terminal: true}
}
