package generation

import "context"

// Completer sends a single prompt to a language model and returns the text
// of its reply. This interface is the boundary between the application core
// and the hosted model APIs.
//
// Implementations must make exactly one attempt per call: lookups are never
// retried automatically, the user retries by asking again.
type Completer interface {
	// Complete returns the raw reply text for prompt.
	// Transport and API failures wrap ErrCompletionFailed; refusals and
	// safety blocks wrap ErrContentBlocked.
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts an ordinary function to the Completer interface.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f(ctx, prompt).
func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
