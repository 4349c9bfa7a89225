package parse

import (
	"encoding/json"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind is the JSON type of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Value is an immutable parsed JSON tree. Numbers keep their literal text.
// Object members keep insertion order; a repeated key keeps its first
// position and takes the last value.
type Value struct {
	kind   Kind
	b      bool
	text   string // string contents or number literal
	items  []Value
	fields *orderedmap.OrderedMap[string, Value]
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a number literal.
func Number(n json.Number) Value { return Value{kind: KindNumber, text: n.String()} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Array wraps a list of values.
func Array(items ...Value) Value { return Value{kind: KindArray, items: items} }

// Member is one key/value pair of an object, used by [Object].
type Member struct {
	Key   string
	Value Value
}

// Object builds an object from members in the given order.
func Object(members ...Member) Value {
	fields := orderedmap.New[string, Value]()
	for _, m := range members {
		fields.Set(m.Key, m.Value)
	}
	return Value{kind: KindObject, fields: fields}
}

func (v Value) Kind() Kind { return v.kind }

// AsBool returns the boolean payload; false for other kinds.
func (v Value) AsBool() bool { return v.kind == KindBool && v.b }

// AsNumber returns the number literal; empty for other kinds.
func (v Value) AsNumber() json.Number {
	if v.kind != KindNumber {
		return ""
	}
	return json.Number(v.text)
}

// AsString returns the string payload; empty for other kinds.
func (v Value) AsString() string {
	if v.kind != KindString {
		return ""
	}
	return v.text
}

// Len returns the number of array items or object members.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return v.fields.Len()
	default:
		return 0
	}
}

// Index returns the i-th array item, or null when out of range.
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.items) {
		return Null()
	}
	return v.items[i]
}

// Get looks up an object member.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	return v.fields.Get(key)
}

// Keys returns object keys in insertion order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, v.fields.Len())
	for pair := v.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Members iterates object members in insertion order.
func (v Value) Members() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if v.kind != KindObject {
			return
		}
		for pair := v.fields.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Items iterates array items.
func (v Value) Items() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		if v.kind != KindArray {
			return
		}
		for i, item := range v.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Equal reports structural equality, including object key order. Numbers are
// compared by literal text.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber, KindString:
		return v.text == other.text
	case KindArray:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.fields.Len() != other.fields.Len() {
			return false
		}
		a, b := v.fields.Oldest(), other.fields.Oldest()
		for ; a != nil && b != nil; a, b = a.Next(), b.Next() {
			if a.Key != b.Key || !a.Value.Equal(b.Value) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts the tree to plain Go values (map[string]any, []any,
// json.Number, string, bool, nil). Key order is lost in the maps.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return json.Number(v.text)
	case KindString:
		return v.text
	case KindArray:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, v.fields.Len())
		for pair := v.fields.Oldest(); pair != nil; pair = pair.Next() {
			out[pair.Key] = pair.Value.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON renders the value compactly, keeping key order.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(Compact(v)), nil
}
