package transform

import "strings"

// quoteState is the lexical region the normalizer is currently in.
type quoteState int

const (
	outside quoteState = iota
	inDouble
	inSingle
)

// NormalizeQuotes rewrites single-quoted string literals as double-quoted
// JSON string literals in one left-to-right pass without backtracking. Every
// transition is on an ASCII byte, so other bytes, including invalid UTF-8,
// are copied as they are.
//
// Rules, applied per character:
//   - a backslash escapes the next character and both are copied verbatim,
//     except that \' inside a single-quoted literal becomes a bare '
//   - " outside a single-quoted literal toggles the double-quoted region
//   - ' outside a double-quoted literal toggles the single-quoted region and
//     is always emitted as "
//   - a raw " inside a single-quoted literal is emitted as \"
//   - ' inside a double-quoted literal is copied unchanged
//
// Unterminated literals are not reported; the output is returned as-is and
// the strict parser surfaces the resulting syntax error. Text that contains no
// ' characters is returned unchanged.
func NormalizeQuotes(text string) string {
	if !strings.ContainsRune(text, '\'') {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/8)

	state := outside
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if escaped {
			escaped = false
			if state == inSingle && c == '\'' {
				b.WriteByte('\'')
				continue
			}
			b.WriteByte('\\')
			b.WriteByte(c)
			continue
		}

		switch {
		case c == '\\':
			escaped = true
		case c == '"' && state != inSingle:
			if state == inDouble {
				state = outside
			} else {
				state = inDouble
			}
			b.WriteByte(c)
		case c == '\'' && state != inDouble:
			if state == inSingle {
				state = outside
			} else {
				state = inSingle
			}
			b.WriteByte('"')
		case c == '"' && state == inSingle:
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}

	// A trailing lone backslash is still part of the input.
	if escaped {
		b.WriteByte('\\')
	}

	return b.String()
}
