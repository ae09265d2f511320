package search

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))
	return path
}

func TestRunSingleKeyword(t *testing.T) {
	dir := t.TempDir()
	hit := writeLog(t, dir, "a.log", "request started", "request FAILED badly", "done")
	miss := writeLog(t, dir, "b.log", "nothing here")

	res, err := Run(dir, "failed", Options{Logic: Single})
	require.NoError(t, err)
	require.Len(t, res.Matched, 1)
	assert.Equal(t, hit, res.Matched[0].File)
	require.Len(t, res.Matched[0].Matches, 1)
	assert.Equal(t, MatchLine{Line: 2, Text: "request FAILED badly"}, res.Matched[0].Matches[0])
	assert.Equal(t, []string{miss}, res.NotMatched)
}

func TestRunCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "a.log", "request FAILED badly")

	res, err := Run(dir, "failed", Options{Logic: Single, CaseSensitive: true})
	require.NoError(t, err)
	assert.Empty(t, res.Matched)
	assert.Len(t, res.NotMatched, 1)
}

func TestRunAndLogic(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "a.log", "error in payment flow", "error elsewhere", "payment ok")

	res, err := Run(dir, "error, payment", Options{Logic: And})
	require.NoError(t, err)
	require.Len(t, res.Matched, 1)
	require.Len(t, res.Matched[0].Matches, 1)
	assert.Equal(t, 1, res.Matched[0].Matches[0].Line, "only the line carrying every pattern matches")
}

func TestRunOrLogic(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "a.log", "error in payment flow", "error elsewhere", "payment ok", "quiet")

	res, err := Run(dir, "error, payment", Options{Logic: Or})
	require.NoError(t, err)
	require.Len(t, res.Matched, 1)
	assert.Len(t, res.Matched[0].Matches, 3)
}

func TestRunRegexMode(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "a.log", "status=500 oops", "status=200 fine")

	res, err := Run(dir, `status=5\d\d`, Options{Logic: Single, Regex: true})
	require.NoError(t, err)
	require.Len(t, res.Matched, 1)
	assert.Len(t, res.Matched[0].Matches, 1)
}

func TestRunKeywordModeEscapesMetacharacters(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "a.log", "value (raw)", "value raw")

	res, err := Run(dir, "(raw)", Options{Logic: Single})
	require.NoError(t, err)
	require.Len(t, res.Matched, 1)
	assert.Len(t, res.Matched[0].Matches, 1, "parentheses match literally in keyword mode")
}

func TestRunInvalidRegex(t *testing.T) {
	_, err := Run(t.TempDir(), "[unclosed", Options{Logic: Single, Regex: true})
	require.Error(t, err)
}

func TestRunBlankPattern(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "a.log", "anything")

	res, err := Run(dir, "   ", Options{Logic: Single})
	require.NoError(t, err)
	assert.Empty(t, res.Matched)
	assert.Empty(t, res.NotMatched)
}

func TestRunPreviewCap(t *testing.T) {
	dir := t.TempDir()
	lines := make([]string, MaxPreviewPerFile+5)
	for i := range lines {
		lines[i] = fmt.Sprintf("hit %d", i)
	}
	writeLog(t, dir, "a.log", lines...)

	res, err := Run(dir, "hit", Options{Logic: Single})
	require.NoError(t, err)
	require.Len(t, res.Matched, 1)
	assert.Len(t, res.Matched[0].Matches, MaxPreviewPerFile)
}
