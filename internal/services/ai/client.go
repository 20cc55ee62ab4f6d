package ai

import "context"

const (
	// DefaultTemperature balances novelty against instruction-following.
	DefaultTemperature = 0.5
	// DefaultMaxTokens caps recipe length.
	DefaultMaxTokens = 600
)

// Request describes one completion call.
type Request struct {
	Prompt      string
	Temperature float64
	MaxTokens   int64
}

// Client produces completion text for a prompt.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
