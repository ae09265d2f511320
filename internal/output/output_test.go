package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjustinm4/logEater/internal/model"
)

func TestParseFormat(t *testing.T) {
	assert.Equal(t, Text, ParseFormat("text"))
	assert.Equal(t, Text, ParseFormat(" TXT "))
	assert.Equal(t, JSON, ParseFormat("json"))
	assert.Equal(t, JSON, ParseFormat(""))
	assert.Equal(t, JSON, ParseFormat("yaml"), "unknown names fall back to JSON")
}

func TestRenderJSONEmptyBatch(t *testing.T) {
	data, err := RenderJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestRenderJSONRoundTrips(t *testing.T) {
	rows := []map[string]any{
		{model.FileKey: "a.json", "status": "ok", "scores": []any{float64(1)}},
	}
	data, err := RenderJSON(rows)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"))

	var back []map[string]any
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rows, back)
}

func TestRenderText(t *testing.T) {
	rows := []map[string]any{
		{
			model.FileKey: "logs/a.json",
			"status":      "ok",
			"meta":        map[string]any{"n": float64(2)},
			"tags":        []any{"x"},
			"gone":        nil,
		},
	}
	got := RenderText(rows, []string{"status", "meta", "tags", "gone"})

	want := strings.Join([]string{
		divider,
		"File: logs/a.json",
		"status: ok",
		`meta: {"n":2}`,
		`tags: ["x"]`,
		"gone: ",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderTextMultipleRows(t *testing.T) {
	rows := []map[string]any{
		{model.FileKey: "a", "f": "1"},
		{model.FileKey: "b", "f": "2"},
	}
	got := RenderText(rows, []string{"f"})
	assert.Equal(t, 2, strings.Count(got, divider))
	assert.Contains(t, got, "File: a\nf: 1\n")
	assert.Contains(t, got, "File: b\nf: 2\n")
}

func TestWriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, Write(path, []byte("[]\n")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}
