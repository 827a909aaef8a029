package llm

import (
	"context"
	"errors"
)

// Agent abstracts the AI backend that answers free-form prompts.
type Agent interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder agent.
var ErrNotConfigured = errors.New("AI agent not configured")

// PlaceholderAgent is a stub implementation until provider wiring is added.
type PlaceholderAgent struct{}

// Ask returns ErrNotConfigured.
func (PlaceholderAgent) Ask(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

var _ Agent = PlaceholderAgent{}
