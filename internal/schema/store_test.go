package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"sample_log", "sample_log"},
		{"Sample Log/v2", "Sample_Log_v2"},
		{"a.b-c_d", "a.b-c_d"},
		{"  spaced  ", "spaced"},
	}
	for _, tc := range cases {
		got, err := SanitizeName(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := SanitizeName("   ")
	require.Error(t, err)
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	sk := map[string]any{
		"response": "",
		"scores":   []any{},
		"items":    []any{map[string]any{"name": ""}},
	}
	path, err := store.Save("sample log", sk)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join("registry", "schemas", "sample_log.json")))

	got, err := store.Load("sample log")
	require.NoError(t, err)
	assert.Equal(t, sk, got)
}

func TestStoreLoadFromDisk(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	require.NoError(t, err)
	_, err = store.Save("s", map[string]any{"a": ""})
	require.NoError(t, err)

	// A fresh store has a cold cache and must read the artifact back.
	fresh, err := NewStore(root)
	require.NoError(t, err)
	got, err := fresh.Load("s")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": ""}, got)
}

func TestStoreArtifactIsPrettyPrinted(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	path, err := store.Save("s", map[string]any{"a": map[string]any{"b": ""}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ", "artifact should be indented")
}

func TestStoreLoadMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	_, err = store.Load("never-saved")
	require.Error(t, err)
}
