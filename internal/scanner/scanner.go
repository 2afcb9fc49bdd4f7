// Package scanner extracts a complete, normalized single-line declaration
// from a multi-line, attribute-annotated Rust source buffer. It is a
// best-effort heuristic over common declaration shapes, not a real lexer:
// malformed input yields no result instead of an error.
package scanner

import (
	"regexp"
	"strings"
)

// itemStartRe recognizes the first line of a declaration: an optional
// visibility clause, optional const/async/unsafe/extern modifiers, then the
// item keyword. trait and union are collected too so the classifier can
// reject them explicitly instead of the scanner skipping past them.
var itemStartRe = regexp.MustCompile(
	`^(?:pub(?:\s*\(\s*(?:crate|self|super|in\s+[\w:]+)\s*\))?\s+)?` +
		`(?:const\s+)?(?:async\s+)?(?:unsafe\s+)?(?:extern\s*(?:"[^"]*")?\s+)?` +
		`(fn|struct|enum|trait|union)\s`)

// Scan walks the buffer forward from cursorLine+1 and returns the normalized
// declaration of the item found there. Blank lines and attribute annotations
// (including multi-line ones) are skipped. Any other line that does not start
// a declaration means the cursor sits inside a body, and the scan fails
// rather than skipping ahead to a later, unrelated item.
func Scan(buf *Buffer, cursorLine int) (string, bool) {
	var (
		collected  []string
		kind       string
		attrDepth  int
		braceDepth int
		parenDepth int
		collecting bool
	)

	for i := cursorLine + 1; i >= 0 && i < buf.Len(); i++ {
		trimmed := strings.TrimSpace(buf.Line(i))

		if !collecting {
			if attrDepth > 0 {
				attrDepth += bracketDelta(trimmed)
				continue
			}
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, "#[") || strings.HasPrefix(trimmed, "#![") {
				attrDepth += bracketDelta(trimmed)
				continue
			}
			m := itemStartRe.FindStringSubmatch(trimmed)
			if m == nil {
				// A bare closing brace, a comment line, or any other
				// non-declaration text: the cursor is positioned inside a
				// body, so there is nothing to document here.
				return "", false
			}
			kind = m[1]
			collecting = true
		}

		line := strings.TrimSpace(stripLineComment(trimmed))
		if line != "" {
			collected = append(collected, line)
		}

		if kind == "fn" {
			joined := strings.Join(collected, " ")
			if hasTerminator(joined) {
				return normalize(collected), true
			}
			continue
		}

		// struct/enum (and trait/union) bodies are captured whole: track
		// brace and paren depth across lines and stop once both balance out
		// on a line that closes the declaration.
		for _, r := range line {
			switch r {
			case '{':
				braceDepth++
			case '}':
				braceDepth--
			case '(':
				parenDepth++
			case ')':
				parenDepth--
			}
		}
		if braceDepth == 0 && parenDepth == 0 &&
			(strings.HasSuffix(line, "}") || strings.HasSuffix(line, ";")) {
			return normalize(collected), true
		}
	}

	return "", false
}

// hasTerminator reports whether a function declaration is complete: body
// opener, semicolon (trait/extern prototypes) or a match-arm style arrow.
func hasTerminator(s string) bool {
	return strings.HasSuffix(s, "{") || strings.HasSuffix(s, ";") || strings.HasSuffix(s, "=>")
}

// bracketDelta tracks attribute nesting across lines so multi-line
// attributes are fully skipped before the scan resumes.
func bracketDelta(line string) int {
	delta := 0
	for _, r := range line {
		switch r {
		case '[':
			delta++
		case ']':
			delta--
		}
	}
	return delta
}

// stripLineComment drops a trailing // comment. This is a heuristic and is
// not string-literal aware; declarations are not expected to embed "//"
// inside literals in practice.
func stripLineComment(line string) string {
	if idx := strings.Index(line, "//"); idx >= 0 {
		return line[:idx]
	}
	return line
}

// normalize joins collected lines with single spaces and collapses internal
// whitespace runs, producing a signature with no embedded newlines.
func normalize(lines []string) string {
	return strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
}
