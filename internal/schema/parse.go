// Package schema recovers, persists, and serves schema skeletons. Its parser
// consumes raw text-generator output that is supposed to contain either a
// ready-made skeleton or a JSON-Schema document, but may arrive wrapped in
// formatting noise.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/jjustinm4/logEater/internal/model"
)

// reservedKeywords are JSON-Schema markers that must not survive into a
// skeleton. A skeleton carrying one of these at top level is rejected rather
// than guessed at.
var reservedKeywords = []string{"$schema", "type", "properties", "required", "additionalProperties", "items"}

// ParseSkeleton recovers a skeleton from raw generator output: strip fences,
// isolate the outermost object span, lenient-parse, and either convert a
// JSON-Schema-shaped document or accept the object as a skeleton directly.
func ParseSkeleton(raw string) (model.Skeleton, error) {
	cleaned := stripFences(raw)
	if span := outerObjectSpan(cleaned); span != "" {
		cleaned = span
	}

	obj, err := parseObject(cleaned)
	if err != nil {
		return nil, err
	}

	if looksLikeJSONSchema(obj) {
		converted, ok := fromJSONSchema(obj).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("schema: document did not convert to an object")
		}
		// Partial or nested schema leakage: conversion must consume every
		// schema marker.
		if looksLikeJSONSchema(converted) {
			return nil, fmt.Errorf("schema: converted output still carries schema markers")
		}
		return converted, nil
	}

	for _, kw := range reservedKeywords {
		if _, ok := obj[kw]; ok {
			return nil, fmt.Errorf("schema: skeleton output retains reserved keyword %q", kw)
		}
	}
	return obj, nil
}

// stripFences removes leading/trailing fenced-code-block markers and
// surrounding whitespace.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// outerObjectSpan returns the first-'{' to last-'}' slice, or "" when no such
// span exists (the caller then operates on the full cleaned text).
func outerObjectSpan(s string) string {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// parseObject parses s as JSON, repairing once on failure (stray BOMs,
// trailing commas, unquoted keys), and requires an object root.
func parseObject(s string) (map[string]any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		repaired, rerr := jsonrepair.JSONRepair(s)
		if rerr != nil {
			return nil, fmt.Errorf("schema: parse output: %w (repair failed: %v)", err, rerr)
		}
		if err := json.Unmarshal([]byte(repaired), &v); err != nil {
			return nil, fmt.Errorf("schema: parse repaired output: %w", err)
		}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema: output root is %T, want object", v)
	}
	return obj, nil
}

// looksLikeJSONSchema reports whether v is a JSON-Schema-shaped object: a
// "$schema" key, or an object-valued "properties" key (with or without an
// explicit type: "object").
func looksLikeJSONSchema(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if _, ok := obj["$schema"]; ok {
		return true
	}
	_, hasProps := obj["properties"].(map[string]any)
	return hasProps
}

// fromJSONSchema converts a JSON-Schema node into the skeleton shape the
// deterministic builder produces.
func fromJSONSchema(node any) any {
	obj, ok := node.(map[string]any)
	if !ok {
		return ""
	}
	switch effectiveType(obj) {
	case "object":
		props, _ := obj["properties"].(map[string]any)
		out := make(map[string]any, len(props))
		for name, sub := range props {
			out[name] = fromJSONSchema(sub)
		}
		return out
	case "array":
		item := fromJSONSchema(obj["items"])
		if m, ok := item.(map[string]any); ok {
			return []any{m}
		}
		return []any{}
	case "string":
		return ""
	case "number", "integer":
		return float64(0)
	case "boolean":
		return false
	default:
		return ""
	}
}

// effectiveType resolves a node's declared type. A union type picks the first
// non-"null" entry; an untyped node falls back to inspecting "properties"
// then "items".
func effectiveType(obj map[string]any) string {
	switch t := obj["type"].(type) {
	case string:
		return t
	case []any:
		for _, alt := range t {
			if s, ok := alt.(string); ok && s != "null" {
				return s
			}
		}
	}
	if _, ok := obj["properties"].(map[string]any); ok {
		return "object"
	}
	if _, ok := obj["items"]; ok {
		return "array"
	}
	return ""
}
