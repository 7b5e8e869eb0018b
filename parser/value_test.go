package parser

import (
	"testing"

	"github.com/wxmlkit/wxml/ast"
)

// fragment flattens one attribute value fragment for comparison.
type fragment struct {
	kind    string
	content string
}

func fragmentsOf(value []ast.AttributeValue) []fragment {
	var result []fragment

	for _, v := range value {
		switch f := v.(type) {
		case *ast.StaticValue:
			result = append(result, fragment{"static", f.Content})
		case *ast.ExpressionValue:
			result = append(result, fragment{"expression", f.Content})
		}
	}

	return result
}

func TestSplitAttributeValue(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		want      []fragment
		wantDiags int
	}{
		{
			name:  "pure static",
			value: `"x"`,
			want:  []fragment{{"static", "x"}},
		},
		{
			name:  "empty",
			value: `""`,
			want:  nil,
		},
		{
			name:  "pure expression",
			value: `"{{e}}"`,
			want:  []fragment{{"expression", "{{e}}"}},
		},
		{
			name:  "static then expression",
			value: `"a{{e}}"`,
			want:  []fragment{{"static", "a"}, {"expression", "{{e}}"}},
		},
		{
			name:  "expression then static",
			value: `"{{e}}b"`,
			want:  []fragment{{"expression", "{{e}}"}, {"static", "b"}},
		},
		{
			name:  "interleaved",
			value: `"a{{e}}b{{f}}c"`,
			want: []fragment{
				{"static", "a"},
				{"expression", "{{e}}"},
				{"static", "b"},
				{"expression", "{{f}}"},
				{"static", "c"},
			},
		},
		{
			name:  "adjacent expressions are not merged",
			value: `"{{a}}{{b}}"`,
			want:  []fragment{{"expression", "{{a}}"}, {"expression", "{{b}}"}},
		},
		{
			name:  "single braces stay static",
			value: `"{ not expr }"`,
			want:  []fragment{{"static", "{ not expr }"}},
		},
		{
			name:  "nested braces in expression",
			value: `"{{ {k: 1} }}"`,
			want:  []fragment{{"expression", "{{ {k: 1} }}"}},
		},
		{
			name:  "double quotes inside single quotes",
			value: `'sq "dq" ok'`,
			want:  []fragment{{"static", `sq "dq" ok`}},
		},
		{
			name:      "unterminated expression ends at the quote",
			value:     `"{{oops"`,
			want:      []fragment{{"expression", "{{oops"}},
			wantDiags: 1,
		},
		{
			name:  "unquoted static",
			value: `abc`,
			want:  []fragment{{"static", "abc"}},
		},
		{
			name:  "unquoted interleaved",
			value: `a{{e}}b`,
			want:  []fragment{{"static", "a"}, {"expression", "{{e}}"}, {"static", "b"}},
		},
		{
			name:  "unquoted pure expression",
			value: `{{e}}`,
			want:  []fragment{{"expression", "{{e}}"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(`<view a=` + tt.value + ` b="t"/>`)
			tree := p.Parse()

			if got := len(p.Diagnostics()); got != tt.wantDiags {
				for _, d := range p.Diagnostics() {
					t.Logf("diagnostic: %s", d.Error())
				}
				t.Errorf("got %d diagnostics, want %d", got, tt.wantDiags)
			}

			el := tree.Children[0].(*ast.Element)

			if len(el.Attributes) != 2 {
				t.Fatalf("got %d attributes, want 2; the value must not eat the tag", len(el.Attributes))
			}

			got := fragmentsOf(el.Attributes[0].Value)

			if len(got) != len(tt.want) {
				t.Fatalf("got %d fragments %v, want %d", len(got), got, len(tt.want))
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("fragment %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAttributeLocationSpansValue(t *testing.T) {
	docNode := Parse(`<view class="a {{b}}"/>`)

	el := docNode.Children[0].(*ast.Element)
	a := el.Attributes[0]

	// From the first character of the name through the closing quote.
	if a.Location.Start.Offset != 6 {
		t.Errorf("attribute starts at %d, want 6", a.Location.Start.Offset)
	}

	if a.Location.End.Offset != 21 {
		t.Errorf("attribute ends at %d, want 21", a.Location.End.Offset)
	}
}

func TestBareAttributeLocation(t *testing.T) {
	docNode := Parse(`<input disabled />`)

	el := docNode.Children[0].(*ast.Element)
	a := el.Attributes[0]

	if a.Location.Start.Offset != 7 || a.Location.End.Offset != 15 {
		t.Errorf("attribute spans [%d, %d), want [7, 15)",
			a.Location.Start.Offset, a.Location.End.Offset)
	}
}
