// Package dotpath resolves dot-separated paths against parsed JSON values.
//
// Arrays are transparent to path syntax: a remaining path is applied to every
// element of an encountered array ("broadcast"), producing one result per
// element. Absence is represented as nil and is never an error.
package dotpath

import "strings"

// Get resolves path against v. The result is the addressed subtree, a
// per-element slice when the path crosses arrays, or nil when the path cannot
// be completed anywhere. v is never mutated.
func Get(v any, path string) any {
	return walk(v, strings.Split(path, "."))
}

func walk(node any, keys []string) any {
	if len(keys) == 0 {
		return node
	}
	switch n := node.(type) {
	case map[string]any:
		child, ok := n[keys[0]]
		if !ok {
			return nil
		}
		return walk(child, keys[1:])
	case []any:
		// Broadcast the remaining keys over every element. If no element
		// resolves, the whole array collapses to absence; otherwise interior
		// misses stay as nil entries.
		collected := make([]any, len(n))
		allAbsent := true
		for i, item := range n {
			collected[i] = walk(item, keys)
			if collected[i] != nil {
				allAbsent = false
			}
		}
		if allAbsent {
			return nil
		}
		return collected
	default:
		// Primitive reached with keys remaining: the path cannot complete.
		return nil
	}
}
