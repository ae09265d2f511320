// Package search performs line-level keyword and regex search over
// discovered log files.
package search

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jjustinm4/logEater/internal/discover"
)

// Logic selects how multiple comma-separated patterns combine.
type Logic string

const (
	Single Logic = "single"
	And    Logic = "and"
	Or     Logic = "or"
)

// MaxPreviewPerFile caps the matching lines reported per file.
const MaxPreviewPerFile = 10

// maxLineBytes bounds scanner token size; log lines can be very long.
const maxLineBytes = 1 << 20

// Options control one search pass.
type Options struct {
	Logic         Logic
	Regex         bool
	CaseSensitive bool
	Exts          []string
}

// MatchLine is one matching line with its 1-based line number.
type MatchLine struct {
	Line int
	Text string
}

// FileMatch groups the matching lines of one file.
type FileMatch struct {
	File    string
	Matches []MatchLine
}

// Result partitions scanned files into matched and not-matched. Files that
// cannot be read count as not-matched rather than failing the pass.
type Result struct {
	Matched    []FileMatch
	NotMatched []string
}

// Run scans every discovered file under folder line by line. Blank pattern
// input yields an empty result; an invalid regex is an error.
func Run(folder, patternInput string, opts Options) (Result, error) {
	if strings.TrimSpace(patternInput) == "" {
		return Result{}, nil
	}
	patterns, err := compile(patternInput, opts)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for _, path := range discover.Files(folder, opts.Exts) {
		matches, err := scanFile(path, patterns, opts.Logic)
		if err != nil {
			result.NotMatched = append(result.NotMatched, path)
			continue
		}
		if len(matches) > 0 {
			result.Matched = append(result.Matched, FileMatch{File: path, Matches: matches})
		} else {
			result.NotMatched = append(result.NotMatched, path)
		}
	}
	return result, nil
}

// compile builds the pattern list. AND/OR modes split the input on commas;
// keyword mode escapes regex metacharacters.
func compile(patternInput string, opts Options) ([]*regexp.Regexp, error) {
	var parts []string
	if opts.Logic == And || opts.Logic == Or {
		for _, p := range strings.Split(patternInput, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
	}
	if len(parts) == 0 {
		parts = []string{strings.TrimSpace(patternInput)}
	}

	compiled := make([]*regexp.Regexp, 0, len(parts))
	for _, pat := range parts {
		if !opts.Regex {
			pat = regexp.QuoteMeta(pat)
		}
		if !opts.CaseSensitive {
			pat = "(?i)" + pat
		}
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("search: invalid pattern %q: %w", pat, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func scanFile(path string, patterns []*regexp.Regexp, logic Logic) ([]MatchLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var matches []MatchLine
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for line := 1; scanner.Scan(); line++ {
		if lineMatches(scanner.Text(), patterns, logic) {
			matches = append(matches, MatchLine{Line: line, Text: scanner.Text()})
			if len(matches) >= MaxPreviewPerFile {
				break
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func lineMatches(line string, patterns []*regexp.Regexp, logic Logic) bool {
	switch logic {
	case And:
		for _, p := range patterns {
			if !p.MatchString(line) {
				return false
			}
		}
		return true
	case Or:
		for _, p := range patterns {
			if p.MatchString(line) {
				return true
			}
		}
		return false
	default:
		return patterns[0].MatchString(line)
	}
}
