// Package generator is the boundary to the external answer-generation
// capability. The router never propagates a generation failure: callers fall
// back to FallbackMessage so the user always receives some text.
package generator

import (
	"context"

	"github.com/sindico-pro/sindicopro-sub/internal/scope"
)

// FallbackMessage is returned to the user when generation fails.
const FallbackMessage = "Desculpe, estou enfrentando dificuldades técnicas no momento. " +
	"Pode tentar novamente em alguns instantes?"

// Generator produces the assistant's reply for an in-scope message.
// recentContext is the role-labeled transcript of the last few turns; it may
// be empty for a fresh session.
type Generator interface {
	Generate(ctx context.Context, message, recentContext string, hints *scope.Hints) (string, error)
}
