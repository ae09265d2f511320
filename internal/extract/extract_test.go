package extract

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjustinm4/logEater/internal/model"
	"github.com/jjustinm4/logEater/internal/output"
	"github.com/jjustinm4/logEater/internal/schema"
)

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `{"status":"ok","meta":{"ts":"t1"}}`)
	b := writeFile(t, dir, "b.json", `{"status":"down"}`)

	svc := New(nil)
	rows, sum := svc.Collect(dir, "anything", []string{"status", "meta.ts"})

	require.Len(t, rows, 2)
	assert.Equal(t, Summary{Scanned: 2, Parsed: 2}, sum)
	assert.Equal(t, a, rows[0][model.FileKey])
	assert.Equal(t, "ok", rows[0]["status"])
	assert.Equal(t, "t1", rows[0]["meta.ts"])
	assert.Equal(t, b, rows[1][model.FileKey])
	assert.Equal(t, "down", rows[1]["status"])
}

func TestCollectSkipsUnparseableFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", `{"status": "oops"`)
	good := writeFile(t, dir, "good.json", `{"status":"ok"}`)

	svc := New(nil)
	rows, sum := svc.Collect(dir, "s", []string{"status"})

	require.Len(t, rows, 1, "the broken file is excluded, not fatal")
	assert.Equal(t, good, rows[0][model.FileKey])
	assert.Equal(t, Summary{Scanned: 2, Parsed: 1, Failed: 1}, sum)
}

func TestCollectUsesStoredSkeletonDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"other":1}`)

	store, err := schema.NewStore(t.TempDir())
	require.NoError(t, err)
	_, err = store.Save("web", map[string]any{"scores": []any{}, "note": ""})
	require.NoError(t, err)

	svc := New(store)
	rows, _ := svc.Collect(dir, "web", []string{"scores", "note"})
	require.Len(t, rows, 1)
	assert.Equal(t, []any{}, rows[0]["scores"])
	assert.Equal(t, "", rows[0]["note"])
}

func TestCollectEmptyFolder(t *testing.T) {
	svc := New(nil)
	rows, sum := svc.Collect(t.TempDir(), "s", []string{"f"})
	assert.Empty(t, rows)
	assert.Equal(t, Summary{}, sum)
}

func TestRunWritesJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"status":"ok"}`)
	out := filepath.Join(t.TempDir(), "out.json")

	svc := New(nil)
	sum, err := svc.Run(dir, "s", []string{"status"}, output.JSON, out)
	require.NoError(t, err)
	assert.Equal(t, out, sum.OutPath)
	assert.Equal(t, 1, sum.Parsed)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "ok", rows[0]["status"])
}

func TestRunWritesText(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"status":"ok"}`)
	out := filepath.Join(t.TempDir(), "out.txt")

	svc := New(nil)
	_, err := svc.Run(dir, "s", []string{"status"}, output.Text, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "status: ok")
}

func TestWithExts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ndjson", `{"status":"ok"}`)
	writeFile(t, dir, "b.json", `{"status":"skipped"}`)

	svc := New(nil, WithExts([]string{".ndjson"}))
	rows, sum := svc.Collect(dir, "s", []string{"status"})
	require.Len(t, rows, 1)
	assert.Equal(t, "ok", rows[0]["status"])
	assert.Equal(t, 1, sum.Scanned)
}

func TestSkeletonLookup(t *testing.T) {
	store, err := schema.NewStore(t.TempDir())
	require.NoError(t, err)
	_, err = store.Save("s", map[string]any{"a": ""})
	require.NoError(t, err)

	svc := New(store)
	sk, ok := svc.Skeleton("s")
	assert.True(t, ok)
	assert.Equal(t, model.Skeleton{"a": ""}, sk)

	_, ok = svc.Skeleton("missing")
	assert.False(t, ok)

	_, ok = New(nil).Skeleton("s")
	assert.False(t, ok)
}
