package client

import "context"

// Summarizer sends a single user prompt to a text-generation model and
// returns the generated text as-is.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}
