package ai

import "context"

// Completer — внешний генератор текста. Ничего не знает про HTTP и аудит.
type Completer interface {
	// Complete returns "" when the service produced no text.
	// Service failures come back unchanged.
	Complete(
		ctx context.Context,
		instructions string,
		input string,
		limits Limits,
	) (string, error)
}

// Limits is fixed per deployment, never per request.
type Limits struct {
	MaxOutputTokens int
	Temperature     float32
}

// DefaultLimits: bounded output, low non-zero temperature.
var DefaultLimits = Limits{
	MaxOutputTokens: 1250,
	Temperature:     0.2,
}
