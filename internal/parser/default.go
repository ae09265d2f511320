package parser

import (
	"strings"

	"github.com/jjustinm4/logEater/internal/dotpath"
	"github.com/jjustinm4/logEater/internal/model"
)

// DefaultParser resolves fields by exact dot-path. When a field is absent
// from the record it substitutes a type-appropriate default inferred from the
// attached skeleton, so downstream renderings stay consistent across records.
type DefaultParser struct {
	skeleton model.Skeleton
}

// NewDefault creates a DefaultParser with no skeleton attached; absent fields
// then default to "".
func NewDefault() *DefaultParser { return &DefaultParser{} }

// SetSkeleton attaches the schema skeleton consulted for defaults.
func (p *DefaultParser) SetSkeleton(sk model.Skeleton) { p.skeleton = sk }

// Extract resolves each requested path against the record.
func (p *DefaultParser) Extract(record any, fields []string) map[string]any {
	return extractFields(p, record, fields, p.resolve)
}

func (p *DefaultParser) resolve(record any, field string) any {
	if v := dotpath.Get(record, field); v != nil {
		return v
	}
	return p.defaultFor(field)
}

// defaultFor walks the skeleton along the field path — descending into array
// representatives rather than indexing — and returns {} for an object slot,
// [] for an array slot, and "" otherwise (including unknown paths).
func (p *DefaultParser) defaultFor(field string) any {
	if p.skeleton == nil {
		return ""
	}
	node := any(p.skeleton)
	for _, key := range strings.Split(field, ".") {
		if arr, ok := node.([]any); ok {
			if len(arr) != 1 {
				return ""
			}
			node = arr[0]
		}
		obj, ok := node.(map[string]any)
		if !ok {
			return ""
		}
		child, ok := obj[key]
		if !ok {
			return ""
		}
		node = child
	}
	switch node.(type) {
	case map[string]any:
		return map[string]any{}
	case []any:
		return []any{}
	default:
		return ""
	}
}
