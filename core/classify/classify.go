// Package classify tells ordinary (possibly broken) JSON apart from dumps of
// composite literals printed by another language, such as Go's %v and %#v
// output.
package classify

import (
	"regexp"
	"strings"

	"github.com/leofalp/jsonalchemist/core/parse"
)

// Classification is the label assigned to an input.
type Classification int

const (
	// JSON is strictly valid JSON, or blank input.
	JSON Classification = iota
	// ForeignLiteral looks like a map or struct literal from another language.
	ForeignLiteral
	// Unknown is neither.
	Unknown
)

func (c Classification) String() string {
	switch c {
	case JSON:
		return "json"
	case ForeignLiteral:
		return "foreign_literal"
	case Unknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Rule names reported by Explain.
const (
	RuleBlank          = "blank"
	RuleStrictParse    = "strict_parse"
	RuleMapType        = "map_type"
	RuleEmptyInterface = "empty_interface"
	RulePointerLiteral = "pointer_literal"
	RuleStructLiteral  = "struct_literal"
	RuleNone           = "none"
)

var (
	pointerLiteral = regexp.MustCompile(`&[a-zA-Z0-9_.]+\s*\{`)
	structLiteral  = regexp.MustCompile(`[a-zA-Z0-9_]+\s*\{[\s\S]*[a-zA-Z0-9_]+\s*:`)
)

// Classify labels text. Strictly valid JSON always wins, so a JSON string
// that happens to contain "map[" is still JSON.
func Classify(text string) Classification {
	c, _ := Explain(text)
	return c
}

// Explain is Classify plus the name of the rule that decided the label.
func Explain(text string) (Classification, string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return JSON, RuleBlank
	}
	if parse.Valid(text) {
		return JSON, RuleStrictParse
	}

	switch {
	case strings.Contains(text, "map["):
		return ForeignLiteral, RuleMapType
	case strings.Contains(text, "interface{}"):
		return ForeignLiteral, RuleEmptyInterface
	case pointerLiteral.MatchString(text):
		return ForeignLiteral, RulePointerLiteral
	case !strings.HasPrefix(trimmed, "{") && structLiteral.MatchString(text):
		return ForeignLiteral, RuleStructLiteral
	}
	return Unknown, RuleNone
}
