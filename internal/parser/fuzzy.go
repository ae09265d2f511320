package parser

import (
	"sort"
	"strings"

	"github.com/jjustinm4/logEater/internal/normalize"
)

func init() {
	Register(ModuleName("fuzzy"), func() Parser { return NewFuzzy() })
}

// FuzzyParser matches requested names against record keys by normalized
// prefix, assuming upstream keys are verbose variants of canonical names.
// First plausible match wins — no scoring, no best-match — and the matched
// value is returned unmodified. Needs no schema.
type FuzzyParser struct{}

// NewFuzzy creates a FuzzyParser.
func NewFuzzy() *FuzzyParser { return &FuzzyParser{} }

// Extract resolves each requested field through three escalating passes:
// top-level keys, one level down inside nested objects, then a depth-first
// search of the whole tree. A miss resolves to "".
func (p *FuzzyParser) Extract(record any, fields []string) map[string]any {
	return extractFields(p, record, fields, p.resolve)
}

func (p *FuzzyParser) resolve(record any, field string) any {
	want := normalize.Fold(field)

	top, _ := record.(map[string]any)
	if v, ok := matchIn(top, want); ok {
		return v
	}
	for _, k := range sortedKeys(top) {
		if nested, ok := top[k].(map[string]any); ok {
			if v, ok := matchIn(nested, want); ok {
				return v
			}
		}
	}
	if v, ok := deepFind(record, want); ok {
		return v
	}
	return ""
}

// matchIn returns the value of the first key in obj whose folded form starts
// with want. Keys are visited in sorted order: Go maps are unordered, and the
// first-match policy needs a deterministic traversal.
func matchIn(obj map[string]any, want string) (any, bool) {
	for _, k := range sortedKeys(obj) {
		if strings.HasPrefix(normalize.Fold(k), want) {
			return obj[k], true
		}
	}
	return nil, false
}

func deepFind(node any, want string) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		if v, ok := matchIn(n, want); ok {
			return v, true
		}
		for _, k := range sortedKeys(n) {
			if v, ok := deepFind(n[k], want); ok {
				return v, true
			}
		}
	case []any:
		for _, item := range n {
			if v, ok := deepFind(item, want); ok {
				return v, true
			}
		}
	}
	return nil, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
