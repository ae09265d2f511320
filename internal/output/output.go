// Package output renders extraction rows for persistence or display.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jjustinm4/logEater/internal/model"
)

// Format selects an extraction rendering.
type Format string

const (
	JSON Format = "json"
	Text Format = "text"
)

// ParseFormat maps a user-supplied format name to a Format. Unknown names
// default to JSON.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return Text
	default:
		return JSON
	}
}

const divider = "------------------------------"

// RenderJSON pretty-prints rows as a JSON array. An empty batch renders as
// [] rather than null.
func RenderJSON(rows []map[string]any) ([]byte, error) {
	if rows == nil {
		rows = []map[string]any{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("output: encode rows: %w", err)
	}
	return append(data, '\n'), nil
}

// RenderText renders one block per row: a divider line, the source file,
// then one "name: value" line per requested field. Objects and arrays render
// as compact JSON; absent values render as empty strings.
func RenderText(rows []map[string]any, fields []string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(divider)
		b.WriteByte('\n')
		fmt.Fprintf(&b, "File: %s\n", stringValue(row[model.FileKey]))
		for _, f := range fields {
			fmt.Fprintf(&b, "%s: %s\n", f, renderValue(row[f]))
		}
	}
	return b.String()
}

// Write stores rendered bytes at path, or on stdout when path is empty.
func Write(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	return nil
}

func renderValue(v any) string {
	switch v.(type) {
	case nil:
		return ""
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	default:
		return stringValue(v)
	}
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
