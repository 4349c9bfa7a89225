package parse

import "testing"

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestParseStringAs_Struct(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"strict", `{"name":"John","age":30}`},
		{"single quotes", `{'name': 'John', 'age': 30}`},
		{"comments", "{\n  \"name\": \"John\", // who\n  \"age\": 30\n}"},
		{"unquoted keys", `{name: "John", age: 30}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringAs[person](tt.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Name != "John" || got.Age != 30 {
				t.Errorf("got %+v", got)
			}
		})
	}
}

func TestParseStringAs_Primitives(t *testing.T) {
	if n, err := ParseStringAs[int](" 42 "); err != nil || n != 42 {
		t.Errorf("int: got %d, %v", n, err)
	}
	if b, err := ParseStringAs[bool]("true"); err != nil || !b {
		t.Errorf("bool: got %v, %v", b, err)
	}
	if f, err := ParseStringAs[float64]("1.5"); err != nil || f != 1.5 {
		t.Errorf("float: got %v, %v", f, err)
	}
	if u, err := ParseStringAs[uint8]("7"); err != nil || u != 7 {
		t.Errorf("uint8: got %v, %v", u, err)
	}
	if s, err := ParseStringAs[string](`"quoted"`); err != nil || s != "quoted" {
		t.Errorf("string literal: got %q, %v", s, err)
	}
	if s, err := ParseStringAs[string]("plain text"); err != nil || s != "plain text" {
		t.Errorf("plain string: got %q, %v", s, err)
	}
}

func TestParseStringAs_PrimitiveErrors(t *testing.T) {
	if _, err := ParseStringAs[int]("forty"); err == nil {
		t.Error("expected int error")
	}
	if _, err := ParseStringAs[bool]("maybe"); err == nil {
		t.Error("expected bool error")
	}
	if _, err := ParseStringAs[int8]("1000"); err == nil {
		t.Error("expected overflow error for int8")
	}
}

func TestParseStringAs_Slice(t *testing.T) {
	got, err := ParseStringAs[[]string](`['a', 'b']`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v", got)
	}
}
