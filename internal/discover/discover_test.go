package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, rel string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestFiles(t *testing.T) {
	root := t.TempDir()
	a := touch(t, root, "b.json")
	b := touch(t, root, "sub/a.log")
	c := touch(t, root, "sub/deep/c.txt")
	touch(t, root, "skip.csv")
	touch(t, root, "noext")

	got := Files(root, nil)
	assert.Equal(t, []string{a, b, c}, got, "sorted, extension-filtered, recursive")
}

func TestFilesCustomExts(t *testing.T) {
	root := t.TempDir()
	want := touch(t, root, "data.NDJSON")
	touch(t, root, "data.json")

	got := Files(root, []string{".ndjson"})
	assert.Equal(t, []string{want}, got, "extension matching ignores case")
}

func TestFilesMissingRoot(t *testing.T) {
	assert.Empty(t, Files(filepath.Join(t.TempDir(), "nope"), nil))
}

func TestFilesRootIsFile(t *testing.T) {
	root := t.TempDir()
	f := touch(t, root, "one.json")
	assert.Empty(t, Files(f, nil), "a non-directory root discovers nothing")
}
