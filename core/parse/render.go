package parse

import (
	"bytes"
	"encoding/json"
	"strings"
)

const indentUnit = "  "

// Pretty renders v as indented multi-line JSON using two spaces per level,
// keeping object key order. Empty arrays and objects render as [] and {}.
func Pretty(v Value) string {
	var b strings.Builder
	writeValue(&b, v, true, 0)
	return b.String()
}

// Compact renders v with no insignificant whitespace, keeping object key order.
func Compact(v Value) string {
	var b strings.Builder
	writeValue(&b, v, false, 0)
	return b.String()
}

func writeValue(b *strings.Builder, v Value, pretty bool, depth int) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.b {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(v.text)
	case KindString:
		writeString(b, v.text)
	case KindArray:
		if len(v.items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, pretty, depth+1)
			writeValue(b, item, pretty, depth+1)
		}
		newline(b, pretty, depth)
		b.WriteByte(']')
	case KindObject:
		if v.fields.Len() == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteByte('{')
		first := true
		for pair := v.fields.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				b.WriteByte(',')
			}
			first = false
			newline(b, pretty, depth+1)
			writeString(b, pair.Key)
			b.WriteByte(':')
			if pretty {
				b.WriteByte(' ')
			}
			writeValue(b, pair.Value, pretty, depth+1)
		}
		newline(b, pretty, depth)
		b.WriteByte('}')
	}
}

func newline(b *strings.Builder, pretty bool, depth int) {
	if !pretty {
		return
	}
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString(indentUnit)
	}
}

// writeString quotes s as a JSON string without HTML escaping.
func writeString(b *strings.Builder, s string) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// Encoding a Go string cannot fail; keep the output well-formed anyway.
		b.WriteString(`""`)
		return
	}
	b.Write(bytes.TrimRight(buf.Bytes(), "\n"))
}
