// Package llm defines the boundary to an external text generator: one opaque
// prompt string in, one opaque response string out. What the response must
// contain is the caller's contract, not this package's.
package llm

import "context"

// Options are generation parameters passed through to the model server.
type Options struct {
	Temperature float64
	TopP        float64
	NumCtx      int
}

// Request is a single text-generation call.
type Request struct {
	Model     string
	Prompt    string
	Options   Options
	KeepAlive string
}

// Client is implemented by concrete text-generator backends.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}
