package parser

import (
	"regexp"
	"strings"
	"unicode"
)

// Constructor builds a fresh Parser instance.
type Constructor func() Parser

var registry = map[string]Constructor{}

// Register adds a parser constructor under the given module-form name
// (see ModuleName). Typically called from init() in the implementing file.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Resolve returns the parser registered for the schema identifier, or a
// DefaultParser when none is registered or the constructor yields nothing
// usable. Resolution never fails: unknown schemas silently get the default.
func Resolve(schemaName string) Parser {
	if ctor, ok := registry[ModuleName(schemaName)]; ok && ctor != nil {
		if p := ctor(); p != nil {
			return p
		}
	}
	return NewDefault()
}

// Registered returns the module-form names of all registered parsers.
func Registered() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

var nonAlnumRuns = regexp.MustCompile(`[^a-z0-9]+`)

// ModuleName derives the registry key for a schema identifier: lower-case,
// non-alphanumeric runs collapsed to single underscores, "_parser" suffix.
// "Sample Log" -> "sample_log_parser".
func ModuleName(schemaName string) string {
	s := nonAlnumRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(schemaName)), "_")
	s = strings.Trim(s, "_")
	return s + "_parser"
}

// ClassName derives the exported type name for a schema identifier:
// title-cased words, non-alphanumerics stripped, "Parser" suffix.
// "sample_log" -> "SampleLogParser".
func ClassName(schemaName string) string {
	words := strings.FieldsFunc(schemaName, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for _, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	if !strings.HasSuffix(b.String(), "Parser") {
		b.WriteString("Parser")
	}
	return b.String()
}
