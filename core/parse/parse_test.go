package parse

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
	}{
		{"object", `{"a": 1}`, KindObject},
		{"array", `[1, "two", null]`, KindArray},
		{"string", `"hello"`, KindString},
		{"number", `-12.5e3`, KindNumber},
		{"true", `true`, KindBool},
		{"null", `null`, KindNull},
		{"surrounding whitespace", "\n\t {}  \n", KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, v.Kind())
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		msgPart string
		line    int
		column  int
	}{
		{
			name:    "trailing comma",
			input:   `{"a":1,}`,
			msgPart: "looking for beginning of object key string",
			line:    1,
			column:  8,
		},
		{
			name:    "single quotes",
			input:   `{'a': 1}`,
			msgPart: "invalid character '\\''",
			line:    1,
			column:  2,
		},
		{
			name:    "error on second line",
			input:   "{\n  \"a\": tru\n}",
			msgPart: "invalid character",
			line:    2,
		},
		{
			name:    "empty input",
			input:   "",
			msgPart: "unexpected end of JSON input",
		},
		{
			name:    "two documents",
			input:   `{} {}`,
			msgPart: "after top-level value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tt.input)
			}

			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected *SyntaxError, got %T", err)
			}
			if !strings.Contains(se.Msg, tt.msgPart) {
				t.Errorf("expected message containing %q, got %q", tt.msgPart, se.Msg)
			}
			if tt.line != 0 && se.Line != tt.line {
				t.Errorf("expected line %d, got %d", tt.line, se.Line)
			}
			if tt.column != 0 && se.Column != tt.column {
				t.Errorf("expected column %d, got %d", tt.column, se.Column)
			}
		})
	}
}

func TestParse_PreservesKeyOrder(t *testing.T) {
	v, err := Parse(`{"zeta": 1, "alpha": 2, "mid": {"b": 1, "a": 2}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := strings.Join(v.Keys(), ",")
	if got != "zeta,alpha,mid" {
		t.Errorf("expected key order zeta,alpha,mid, got %s", got)
	}

	mid, ok := v.Get("mid")
	if !ok {
		t.Fatal("expected member mid")
	}
	if got := strings.Join(mid.Keys(), ","); got != "b,a" {
		t.Errorf("expected nested key order b,a, got %s", got)
	}
}

func TestParse_DuplicateKeys(t *testing.T) {
	v, err := Parse(`{"a": 1, "b": 2, "a": 3}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(v.Keys(), ","); got != "a,b" {
		t.Errorf("expected keys a,b, got %s", got)
	}
	a, _ := v.Get("a")
	if a.AsNumber() != "3" {
		t.Errorf("expected last value 3, got %s", a.AsNumber())
	}
}

func TestParse_NumbersKeepLiteral(t *testing.T) {
	v, err := Parse(`[1.0, 1e2, -0]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"1.0", "1e2", "-0"}
	for i, w := range want {
		if got := v.Index(i).AsNumber().String(); got != w {
			t.Errorf("item %d: expected %s, got %s", i, w, got)
		}
	}
}

func TestValue_Interface(t *testing.T) {
	v, err := Parse(`{"a": [true, null, "x", 2]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := v.Interface().(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", v.Interface())
	}
	items, ok := m["a"].([]any)
	if !ok || len(items) != 4 {
		t.Fatalf("expected 4 items, got %v", m["a"])
	}
	if items[0] != true || items[1] != nil || items[2] != "x" {
		t.Errorf("unexpected items: %v", items)
	}
}

func TestValue_Equal(t *testing.T) {
	a := Object(Member{"x", Number("1")}, Member{"y", Array(String("s"), Null())})
	b := Object(Member{"x", Number("1")}, Member{"y", Array(String("s"), Null())})
	reordered := Object(Member{"y", Array(String("s"), Null())}, Member{"x", Number("1")})

	if !a.Equal(b) {
		t.Error("expected equal values")
	}
	if a.Equal(reordered) {
		t.Error("expected key order to matter")
	}
	if Bool(true).Equal(Bool(false)) {
		t.Error("expected different booleans to differ")
	}
}
