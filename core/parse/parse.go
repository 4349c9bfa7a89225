package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SyntaxError is a strict-parse failure.
type SyntaxError struct {
	// Msg is the parser's description of the problem.
	Msg string
	// Offset is the number of bytes read before the error was detected.
	Offset int64
	// Line and Column locate the offending character, both 1-based.
	Line   int
	Column int

	err error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d, column %d)", e.Msg, e.Line, e.Column)
	}
	return e.Msg
}

func (e *SyntaxError) Unwrap() error { return e.err }

// Parse strictly parses text as a single JSON document. Leading and trailing
// whitespace is allowed; anything else outside the document is an error.
func Parse(text string) (Value, error) {
	data := []byte(text)

	// Validate the whole document first so the error message and offset come
	// straight from encoding/json.
	var probe json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return Value{}, newSyntaxError(text, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, newSyntaxError(text, err)
	}
	return v, nil
}

// Valid reports whether text strictly parses.
func Valid(text string) bool {
	return json.Valid([]byte(text))
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", rune(t))
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	fields := orderedmap.New[string, Value]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is %T, not a string", tok)
		}
		member, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		fields.Set(key, member)
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Value{kind: KindObject, fields: fields}, nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	items := []Value{}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	// closing ']'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Value{kind: KindArray, items: items}, nil
}

func newSyntaxError(text string, err error) *SyntaxError {
	se := &SyntaxError{Msg: err.Error(), err: err}

	var jsonErr *json.SyntaxError
	if errors.As(err, &jsonErr) {
		se.Offset = jsonErr.Offset
		se.Line, se.Column = position(text, jsonErr.Offset)
	}
	return se
}

// position converts a json.SyntaxError offset into the 1-based line and
// column of the character that triggered it. Columns count runes.
func position(text string, offset int64) (int, int) {
	idx := int(offset) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(text) {
		idx = len(text)
	}

	before := text[:idx]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	column := utf8.RuneCountInString(before[lineStart:]) + 1
	return line, column
}
