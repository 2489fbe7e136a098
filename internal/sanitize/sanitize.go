// Package sanitize strips lightweight markdown emphasis from assistant
// replies before they are displayed. It is deliberately not a markdown
// parser: each rule is a single regexp rewrite, applied in a fixed order,
// and nested or overlapping markup is handled only as well as that allows.
package sanitize

import (
	"regexp"
	"strings"
)

type rule struct {
	name string
	re   *regexp.Regexp
	repl string
}

// Order matters: bold before italic so that ** is not consumed as two
// italic markers, and emphasis before links so that link text is already
// plain when the link rule runs.
var rules = []rule{
	{"header", regexp.MustCompile(`(?m)^#{1,6}[ \t]+`), ""},
	{"bold-asterisk", regexp.MustCompile(`\*\*(.+?)\*\*`), "$1"},
	{"bold-underscore", regexp.MustCompile(`__(.+?)__`), "$1"},
	{"italic-asterisk", regexp.MustCompile(`\*([^*\n]+)\*`), "$1"},
	{"italic-underscore", regexp.MustCompile(`_([^_\n]+)_`), "$1"},
	{"strikethrough", regexp.MustCompile(`~~(.+?)~~`), "$1"},
	{"inline-code", regexp.MustCompile("`([^`\n]+)`"), "$1"},
	{"link", regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`), "$1"},
}

// Strip removes emphasis markers, headers and link syntax from s and
// normalizes line endings. Plain text passes through unchanged, so Strip
// is idempotent on its own output for markup-free input.
func Strip(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, r := range rules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}
