// Package parser holds the interchangeable field-extraction strategies and
// the registry that resolves a schema name to one of them.
package parser

import "github.com/jjustinm4/logEater/internal/model"

// Parser extracts the requested field paths from one parsed record. The
// returned map is keyed by the paths exactly as given. Implementations never
// mutate the record and never fail: per-field absence resolves to a default
// value, not an error.
type Parser interface {
	Extract(record any, fields []string) map[string]any
}

// SkeletonAware is implemented by parsers that substitute schema-derived
// defaults for absent fields. The skeleton is attached once before use.
type SkeletonAware interface {
	SetSkeleton(model.Skeleton)
}

// FieldOverrider lets a parser short-circuit individual fields before its
// generic resolution path runs. Returning ok=false hands the field to the
// fallback.
type FieldOverrider interface {
	TryOverride(record any, field string) (any, bool)
}

// extractFields runs the shared per-field loop: the override hook first when
// p implements it, then the parser-specific fallback.
func extractFields(p Parser, record any, fields []string, fallback func(any, string) any) map[string]any {
	out := make(map[string]any, len(fields))
	ov, _ := p.(FieldOverrider)
	for _, f := range fields {
		if ov != nil {
			if v, ok := ov.TryOverride(record, f); ok {
				out[f] = v
				continue
			}
		}
		out[f] = fallback(record, f)
	}
	return out
}
