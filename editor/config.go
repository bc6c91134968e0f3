package editor

import (
	"os"

	"github.com/dhamidi/exped/layout"
)

// ExampleExpression is shown when nothing else is configured.
const ExampleExpression = "2*x+3*y+4*z+(7+6*z)"

// ExpressionEnv names the environment variable that overrides the
// initial expression.
const ExpressionEnv = "EXPED_EXPRESSION"

type Config struct {
	// Expression is parsed when the session starts. Empty means the
	// session starts without a tree.
	Expression string

	// Flatten merges nested same-operator chains after every parse.
	Flatten bool

	Metrics layout.Metrics
	Origin  layout.Point
}

func DefaultConfig() Config {
	cfg := Config{
		Expression: ExampleExpression,
		Flatten:    true,
		Metrics:    layout.DefaultMetrics,
	}
	if v := os.Getenv(ExpressionEnv); v != "" {
		cfg.Expression = v
	}
	return cfg
}
