package transform

import (
	"regexp"
	"strings"
)

// CommentMode selects how comment markers are located.
type CommentMode int

const (
	// CommentHeuristic is the compatibility mode. Block comments are removed
	// wherever they appear. A // starts a line comment when it is at the start
	// of a line or preceded by any character other than ':' or '\'. String
	// literals are not tracked, so a // inside a value such as "a // b" is
	// treated as a comment while "http://host" survives thanks to the colon.
	CommentHeuristic CommentMode = iota

	// CommentStringAware tracks single- and double-quoted string literals and
	// ignores comment markers found inside them.
	CommentStringAware
)

// String returns the flag spelling of the mode.
func (m CommentMode) String() string {
	switch m {
	case CommentStringAware:
		return "string-aware"
	default:
		return "heuristic"
	}
}

// ParseCommentMode maps a flag value to a CommentMode. Unknown values fall
// back to CommentHeuristic.
func ParseCommentMode(s string) CommentMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string-aware", "strict", "aware":
		return CommentStringAware
	default:
		return CommentHeuristic
	}
}

// commentPattern matches a block comment (shortest span) or a line comment
// together with the single character that precedes it, which is captured so
// it can be written back.
var commentPattern = regexp.MustCompile(`(?m)/\*[\s\S]*?\*/|([^\\:]|^)//[^\r\n]*`)

// StripComments removes // line comments and /* */ block comments using the
// heuristic described on [CommentHeuristic]. Block comments are deleted with
// no whitespace substitute, so the surrounding lines may merge. An
// unterminated /* is left in place.
func StripComments(text string) string {
	if !strings.Contains(text, "/") {
		return text
	}
	return commentPattern.ReplaceAllString(text, "$1")
}

// StripCommentsStringAware removes the same comment forms as [StripComments]
// but never inside a single- or double-quoted string literal. Line comments
// end before the line terminator, which is kept. An unterminated block
// comment runs to the end of the input.
func StripCommentsStringAware(text string) string {
	if !strings.Contains(text, "/") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	var quote byte
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if quote != 0 {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}

		switch {
		case c == '"' || c == '\'':
			quote = c
			b.WriteByte(c)
		case c == '/' && i+1 < len(text) && text[i+1] == '/':
			for i+1 < len(text) && text[i+1] != '\n' && text[i+1] != '\r' {
				i++
			}
		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			end := strings.Index(text[i+2:], "*/")
			if end < 0 {
				i = len(text)
				break
			}
			i += 2 + end + 1
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// Stripper returns the comment-stripping function for the mode.
func (m CommentMode) Stripper() func(string) string {
	if m == CommentStringAware {
		return StripCommentsStringAware
	}
	return StripComments
}
