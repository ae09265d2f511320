// Package insight summarizes extracted log content with a map-reduce
// strategy: single pass when the input fits the model's context budget,
// otherwise chunk digests followed by a final synthesis.
package insight

import (
	"context"
	"strings"

	"github.com/jjustinm4/logEater/internal/llm"
)

// Budget heuristics: roughly 4 chars per token, with headroom reserved for
// the instruction text around the content.
const (
	charsPerToken   = 4
	reservedTokens  = 1200
	minUsableTokens = 512
	minChunkChars   = 4000
)

// Service drives the summarization calls.
type Service struct {
	client      llm.Client
	model       string
	ctxTokens   int
	usableChars int
	chunkChars  int
}

// New creates a Service sized for the given context window (tokens).
// ctxTokens <= 0 defaults to 4096.
func New(client llm.Client, modelName string, ctxTokens int) *Service {
	if ctxTokens <= 0 {
		ctxTokens = 4096
	}
	usable := ctxTokens - reservedTokens
	if usable < minUsableTokens {
		usable = minUsableTokens
	}
	usableChars := usable * charsPerToken
	chunkChars := int(float64(usableChars) * 0.8)
	if chunkChars < minChunkChars {
		chunkChars = minChunkChars
	}
	return &Service{
		client:      client,
		model:       modelName,
		ctxTokens:   ctxTokens,
		usableChars: usableChars,
		chunkChars:  chunkChars,
	}
}

// Summarize produces a technical digest of extracted content.
func (s *Service) Summarize(ctx context.Context, extracted string) (string, error) {
	text := strings.TrimSpace(extracted)
	if text == "" {
		return "No extracted content provided.", nil
	}

	if len(text) <= s.usableChars {
		return s.generate(ctx, llm.InsightSingle(text))
	}

	chunks := splitChunks(text, s.chunkChars)
	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		partial, err := s.generate(ctx, llm.InsightChunk(i+1, len(chunks), chunk))
		if err != nil {
			return "", err
		}
		partials = append(partials, partial)
	}
	return s.generate(ctx, llm.InsightFinal(len(chunks), strings.Join(partials, "\n\n---\n")))
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	return s.client.Generate(ctx, llm.Request{
		Model:  s.model,
		Prompt: prompt,
		Options: llm.Options{
			Temperature: 0,
			TopP:        0.9,
			NumCtx:      s.ctxTokens,
		},
		KeepAlive: "5m",
	})
}

// splitChunks cuts text into chunks of at most chunkChars, preferring a
// double-newline boundary in the back half of each window over a hard cut.
// Blank-only chunks are dropped.
func splitChunks(text string, chunkChars int) []string {
	if len(text) <= chunkChars {
		return []string{text}
	}
	var parts []string
	start := 0
	for start < len(text) {
		end := start + chunkChars
		if end > len(text) {
			end = len(text)
		}
		window := text[start:end]
		cut := strings.LastIndex(window, "\n\n")
		if cut == -1 || cut < len(window)/2 || end == len(text) {
			parts = append(parts, window)
			start = end
		} else {
			parts = append(parts, text[start:start+cut])
			start += cut + 2
		}
	}
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
