package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// rule is one step of the key-normalization policy. Rules run in order, each
// rewriting the key and handing it to the next.
type rule struct {
	name string
	re   *regexp.Regexp
	repl string
}

// policy is the v1 normalization table. Keys arriving from different pipeline
// stages carry human-added annotations ("response_of_1", "request: user
// clicked button", "chat history--スマートフォン"); the rules strip suffix noise
// without rewriting or reordering the words that remain. Swapping the table
// swaps the convention.
var policy = []rule{
	// Cut at the first descriptive-suffix delimiter. Everything after "--",
	// an em-dash, "- ", or ":" is commentary, not schema.
	{name: "delimiter-tail", re: regexp.MustCompile(`\s*(?:--|—|-\s|:).*$`), repl: ""},
	// Trailing index-like suffixes: "_of_12", "_of 12", "-12", " 12", and
	// "_12" optionally followed by a short trailing clause ("subquery_3_details").
	{name: "index-suffix", re: regexp.MustCompile(`(?i)(?:_of_\d+|[\s_]of\s+\d+|_\d+(?:_[a-z0-9]+)*|-\d+|\s+\d+)$`), repl: ""},
	// Any remaining trailing "of ..." clause ("sections of 3 docs").
	{name: "of-clause", re: regexp.MustCompile(`(?i)\s+of\b.*$`), repl: ""},
	// Collapse internal whitespace runs.
	{name: "whitespace", re: regexp.MustCompile(`\s+`), repl: " "},
}

// Key canonicalizes a raw object key into its grouping form. Pure, total, and
// idempotent: Key(Key(k)) == Key(k) for any input.
func Key(raw string) string {
	k := strings.TrimSpace(norm.NFKC.String(raw))
	for _, r := range policy {
		k = r.re.ReplaceAllString(k, r.repl)
	}
	return strings.ToLower(strings.TrimSpace(k))
}

// Fold is the matching form of Key: underscores are treated as spaces first,
// so snake_case and space-separated variants of the same name compare equal.
func Fold(raw string) string {
	return Key(strings.ReplaceAll(raw, "_", " "))
}
