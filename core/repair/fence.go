package repair

import "strings"

const fence = "```"

// knownTags are info strings removed wherever they appear after the opening
// fence, including the single-line form "```json{...}```".
var knownTags = []string{"json5", "jsonc", "json", "javascript", "js"}

// StripFences trims text and removes one leading fence marker (with an
// optional info string such as "json") and one trailing fence marker.
// Unfenced text is only trimmed.
//
// A word after the opening fence that is not a known tag is treated as an
// info string only when it starts with a letter, sits alone on the fence
// line and is followed by more content. So "```true```" and "```null\n```"
// keep their value.
func StripFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, fence) {
		return s
	}
	s = strings.TrimSpace(strings.TrimSuffix(s[len(fence):], fence))
	return strings.TrimSpace(trimInfoString(s))
}

func trimInfoString(s string) string {
	for _, tag := range knownTags {
		if len(s) >= len(tag) && strings.EqualFold(s[:len(tag)], tag) && !isTagByte(byteAt(s, len(tag))) {
			return s[len(tag):]
		}
	}

	if s == "" || !isLetter(s[0]) {
		return s
	}
	end := 1
	for end < len(s) && isTagByte(s[end]) {
		end++
	}
	lineEnd := end
	for lineEnd < len(s) && (s[lineEnd] == ' ' || s[lineEnd] == '\t') {
		lineEnd++
	}
	if lineEnd == len(s) || (s[lineEnd] != '\n' && s[lineEnd] != '\r') {
		return s
	}
	if strings.TrimSpace(s[lineEnd:]) == "" {
		return s
	}
	return s[lineEnd:]
}

func byteAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isTagByte(c byte) bool {
	return isLetter(c) || c >= '0' && c <= '9' || c == '-' || c == '_' || c == '+'
}
