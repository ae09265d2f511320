package schema

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/jjustinm4/logEater/internal/model"
	"github.com/jjustinm4/logEater/internal/normalize"
)

// suggestThreshold filters out candidates with no meaningful similarity.
const suggestThreshold = 0.3

// Paths flattens a skeleton into sorted dot-paths. Arrays are transparent:
// the walk descends into an array's representative element without adding a
// path segment.
func Paths(sk model.Skeleton) []string {
	var out []string
	walkPaths("", sk, &out)
	sort.Strings(out)
	return out
}

func walkPaths(prefix string, node any, out *[]string) {
	obj, ok := node.(map[string]any)
	if !ok {
		if arr, ok := node.([]any); ok && len(arr) == 1 {
			walkPaths(prefix, arr[0], out)
		}
		return
	}
	for k, v := range obj {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		*out = append(*out, path)
		walkPaths(path, v, out)
	}
}

type scored struct {
	path  string
	score float64
}

// Suggest ranks candidate paths by similarity to a requested field name and
// returns the top matches. Useful when a requested field resolved empty in
// every record: the skeleton usually knows what the user meant.
func Suggest(field string, candidates []string, limit int) []string {
	want := normalize.Fold(field)
	if want == "" || len(candidates) == 0 || limit <= 0 {
		return nil
	}

	var ranked []scored
	for _, cand := range candidates {
		got := normalize.Fold(lastSegment(cand))
		score := similarity(want, got)
		if score >= suggestThreshold {
			ranked = append(ranked, scored{path: cand, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].path < ranked[j].path
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.path
	}
	return out
}

// similarity combines exact/substring checks with normalized Levenshtein
// distance.
func similarity(want, got string) float64 {
	if want == got {
		return 1.0
	}
	if strings.Contains(got, want) || strings.Contains(want, got) {
		return 0.95
	}
	maxLen := len(want)
	if len(got) > maxLen {
		maxLen = len(got)
	}
	if maxLen == 0 {
		return 0
	}
	dist := levenshtein.Distance(want, got, nil)
	score := 1.0 - float64(dist)/float64(maxLen)
	if score < 0 {
		return 0
	}
	return score
}

func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}
