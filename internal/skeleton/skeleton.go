// Package skeleton reduces parsed log records to structural skeletons:
// value-free trees that keep shape and normalized keys only.
package skeleton

import (
	"encoding/json"
	"fmt"

	"github.com/jjustinm4/logEater/internal/model"
	"github.com/jjustinm4/logEater/internal/normalize"
)

// Synthetic root keys used when the sample's top level is not an object.
const (
	RootKey  = "__root__"
	ValueKey = "__value__"
)

// FromJSON parses sample text and builds its skeleton. This is the only entry
// point that can fail: the sample itself may not be valid JSON. The result is
// always an object — non-object roots are wrapped under a synthetic key.
func FromJSON(sample string) (model.Skeleton, error) {
	var v any
	if err := json.Unmarshal([]byte(sample), &v); err != nil {
		return nil, fmt.Errorf("skeleton: parse sample: %w", err)
	}
	switch n := v.(type) {
	case map[string]any:
		return objectSkeleton(n), nil
	case []any:
		return model.Skeleton{RootKey: arraySkeleton(n)}, nil
	default:
		return model.Skeleton{ValueKey: Build(n)}, nil
	}
}

// Build reduces any parsed JSON value to its skeleton. Total: every input
// yields a tree whose leaves are {}, [], [{...}], or "".
func Build(v any) any {
	switch n := v.(type) {
	case map[string]any:
		return objectSkeleton(n)
	case []any:
		return arraySkeleton(n)
	default:
		return ""
	}
}

func objectSkeleton(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for raw, v := range obj {
		k := normalize.Key(raw)
		sk := Build(v)
		// Raw keys that normalize identically merge instead of overwriting.
		if prev, ok := out[k]; ok {
			sk = Merge(prev, sk)
		}
		out[k] = sk
	}
	return out
}

// arraySkeleton unions the shapes of all object elements into a single
// representative. Arrays holding only primitives (or nothing) become [].
func arraySkeleton(items []any) []any {
	var merged map[string]any
	for _, it := range items {
		if obj, ok := Build(it).(map[string]any); ok {
			if merged == nil {
				merged = obj
			} else {
				merged = mergeObjects(merged, obj)
			}
		}
	}
	if merged == nil {
		return []any{}
	}
	return []any{merged}
}

// Merge combines two skeleton nodes occupying the same key. Objects union
// recursively, arrays merge their representatives, a structured node wins
// over a primitive, and two primitives stay the placeholder.
func Merge(a, b any) any {
	am, aObj := a.(map[string]any)
	bm, bObj := b.(map[string]any)
	if aObj && bObj {
		return mergeObjects(am, bm)
	}
	aa, aArr := a.([]any)
	ba, bArr := b.([]any)
	if aArr && bArr {
		return mergeArrays(aa, ba)
	}
	switch {
	case aObj || aArr:
		return a
	case bObj || bArr:
		return b
	default:
		return ""
	}
}

func mergeObjects(a, b map[string]any) map[string]any {
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if prev, ok := out[k]; ok {
			v = Merge(prev, v)
		}
		out[k] = v
	}
	return out
}

func mergeArrays(a, b []any) []any {
	am, aObj := representative(a)
	bm, bObj := representative(b)
	switch {
	case aObj && bObj:
		return []any{mergeObjects(am, bm)}
	case aObj:
		return a
	case bObj:
		return b
	default:
		return []any{}
	}
}

// representative returns the single object element a skeleton array may
// carry. A skeleton array never holds more than one element.
func representative(arr []any) (map[string]any, bool) {
	if len(arr) == 0 {
		return nil, false
	}
	m, ok := arr[0].(map[string]any)
	return m, ok
}
