package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Classification
		wantRule string
	}{
		{"blank", "  \n\t", JSON, RuleBlank},
		{"valid object", `{"a":1}`, JSON, RuleStrictParse},
		{"valid json containing map token", `{"note": "map[string]int"}`, JSON, RuleStrictParse},
		{"map dump", `map[string]interface{}{"a": 1}`, ForeignLiteral, RuleMapType},
		{"map print", `map[a:1 b:2]`, ForeignLiteral, RuleMapType},
		{"empty interface", `[]interface{}{1, 2}`, ForeignLiteral, RuleEmptyInterface},
		{"pointer literal", `&Foo{Bar: "x"}`, ForeignLiteral, RulePointerLiteral},
		{"qualified pointer literal", `&pkg.Foo {Bar: 1}`, ForeignLiteral, RulePointerLiteral},
		{"struct literal", `Config{Name: "x", Port: 80}`, ForeignLiteral, RuleStructLiteral},
		{"broken json object", `{Name: "x"}`, Unknown, RuleNone},
		{"trailing comma", `{"a":1,}`, Unknown, RuleNone},
		{"prose", "not json at all", Unknown, RuleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule := Explain(tt.input)
			if got != tt.want {
				t.Errorf("Explain(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if rule != tt.wantRule {
				t.Errorf("Explain(%q) rule = %q, want %q", tt.input, rule, tt.wantRule)
			}
			if c := Classify(tt.input); c != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, c, tt.want)
			}
		})
	}
}

func TestClassification_String(t *testing.T) {
	if JSON.String() != "json" || ForeignLiteral.String() != "foreign_literal" || Unknown.String() != "unknown" {
		t.Error("unexpected classification names")
	}
}
