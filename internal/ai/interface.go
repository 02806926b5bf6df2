package ai

import (
	"context"
	"errors"
)

// ErrDisabled is returned when no generator is configured.
var ErrDisabled = errors.New("ai: generator disabled")

// Generator defines the contract for a generative-language backend.
// Implementations return the raw model text; callers normalize it with ParseModelOutput.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)

	// Name identifies the backend in logs and metrics.
	Name() string
}
