package groq

import "context"

// IGroq defines the interface for the Groq chat-completion client.
type IGroq interface {
	// Complete sends a single prompt and returns the raw completion text.
	Complete(ctx context.Context, prompt string) (string, error)

	// ChatCompletion sends a full request and returns the parsed response.
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used.
	Model() string
}
