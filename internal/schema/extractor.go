package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jjustinm4/logEater/internal/llm"
	"github.com/jjustinm4/logEater/internal/model"
	"github.com/jjustinm4/logEater/internal/skeleton"
)

// maxAttempts bounds the generator loop. Each attempt re-sends the identical
// prompt; a retry only helps when the generator is non-deterministic.
const maxAttempts = 2

// Diagnostics are the counters attached to a failed generator loop.
type Diagnostics struct {
	PromptChars    int
	RawOutputChars int
	Attempts       int
}

// ExtractionError reports that no valid skeleton could be recovered from the
// text generator within the attempt budget. It carries the raw output so the
// caller can inspect what the generator actually said.
type ExtractionError struct {
	RawOutput string
	Diag      Diagnostics
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("schema: no valid skeleton after %d attempts (prompt %d chars, output %d chars): %v",
		e.Diag.Attempts, e.Diag.PromptChars, e.Diag.RawOutputChars, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Extractor builds skeletons from sample records: a deterministic walk first,
// with optional generator refinement layered on top.
type Extractor struct {
	client llm.Client
	model  string
}

// NewExtractor creates an Extractor. client may be nil, in which case
// refinement is skipped and Extract is fully deterministic.
func NewExtractor(client llm.Client, modelName string) *Extractor {
	return &Extractor{client: client, model: modelName}
}

// Extract builds the skeleton for a sample record. With refine set it asks
// the generator to tidy the deterministic result; the deterministic skeleton
// is the guaranteed fallback, so refinement failure never fails the call.
// Only an unparseable sample is an error.
func (e *Extractor) Extract(ctx context.Context, sample string, refine bool) (model.Skeleton, error) {
	base, err := skeleton.FromJSON(sample)
	if err != nil {
		return nil, err
	}
	if !refine || e.client == nil {
		return base, nil
	}
	refined, err := e.Refine(ctx, base)
	if err != nil {
		slog.Warn("skeleton refinement failed, using deterministic result", "err", err)
		return base, nil
	}
	return refined, nil
}

// Refine sends the skeleton through the text generator and parses the reply
// back into a skeleton. On exhaustion it returns *ExtractionError with the
// last raw output and diagnostics.
func (e *Extractor) Refine(ctx context.Context, base model.Skeleton) (model.Skeleton, error) {
	payload, err := json.MarshalIndent(base, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: encode skeleton: %w", err)
	}
	prompt := llm.RefinePrompt(string(payload))

	var raw string
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		out, err := e.client.Generate(ctx, llm.Request{
			Model:  e.model,
			Prompt: prompt,
			Options: llm.Options{
				Temperature: 0,
				TopP:        0.9,
				NumCtx:      8192,
			},
			KeepAlive: "5m",
		})
		if err != nil {
			lastErr = err
			continue
		}
		raw = out
		sk, perr := ParseSkeleton(raw)
		if perr == nil {
			return sk, nil
		}
		lastErr = perr
		slog.Debug("refinement attempt produced no usable skeleton", "attempt", attempt, "err", perr)
	}

	return nil, &ExtractionError{
		RawOutput: raw,
		Diag: Diagnostics{
			PromptChars:    len(prompt),
			RawOutputChars: len(raw),
			Attempts:       maxAttempts,
		},
		Err: lastErr,
	}
}
