package logeater

import (
	"github.com/jjustinm4/logEater/internal/dotpath"
	"github.com/jjustinm4/logEater/internal/normalize"
	"github.com/jjustinm4/logEater/internal/parser"
	"github.com/jjustinm4/logEater/internal/skeleton"
)

// Skeleton is a structural-only projection of a JSON record: normalized keys,
// values erased to type placeholders ({}, [], [{...}], "").
type Skeleton = map[string]any

// BuildSkeleton parses sample text as JSON and returns its skeleton. The only
// failure mode is malformed JSON; the walk itself is total.
func BuildSkeleton(sample string) (Skeleton, error) {
	return skeleton.FromJSON(sample)
}

// NormalizeKey canonicalizes a raw object key: annotation tails, index-like
// suffixes, and case differences are stripped so variant spellings of the
// same field group together.
func NormalizeKey(raw string) string {
	return normalize.Key(raw)
}

// Resolve traverses a parsed value by dot-separated path, broadcasting across
// arrays. Absence is nil, never an error.
func Resolve(record any, path string) any {
	return dotpath.Get(record, path)
}

// Extract pulls the requested field paths out of one parsed record using the
// strategy registered for schemaName (the schema-default strategy when none
// is registered).
func Extract(schemaName string, record any, fields []string) map[string]any {
	return parser.Resolve(schemaName).Extract(record, fields)
}

// RegisterParser installs a custom extraction strategy for a schema name.
// The name is derived with the same convention the CLI uses, so a schema
// registered as "Sample Log" is found by extracting with --schema "Sample Log".
func RegisterParser(schemaName string, ctor func() parser.Parser) {
	parser.Register(parser.ModuleName(schemaName), parser.Constructor(ctor))
}
