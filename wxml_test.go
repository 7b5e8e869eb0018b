// SPDX-FileCopyrightText: © 2024 The wxml authors <https://github.com/wxmlkit/wxml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package wxml

import (
	"strings"
	"testing"

	"github.com/wxmlkit/wxml/ast"
)

func TestParse(t *testing.T) {
	docNode := Parse(`<view id="root">{{greeting}}</view>`)

	if docNode.Start != 0 || docNode.End != 35 {
		t.Errorf("root spans [%d, %d), want [0, 35)", docNode.Start, docNode.End)
	}

	el, ok := docNode.Children[0].(*ast.Element)
	if !ok || el.Name != "view" {
		t.Fatalf("unexpected first child: %#v", docNode.Children[0])
	}

	if len(el.Attributes) != 1 || el.Attributes[0].Name != "id" {
		t.Errorf("unexpected attributes: %#v", el.Attributes)
	}
}

func TestParseWithDiagnostics(t *testing.T) {
	docNode, diags := ParseWithDiagnostics("<a><b></a>")

	if len(docNode.Children) != 1 {
		t.Fatalf("got %d children", len(docNode.Children))
	}

	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(diags))
	}

	if !strings.Contains(diags[0].Error(), "mismatched end tag") {
		t.Errorf("first diagnostic: %s", diags[0].Error())
	}

	// Explain renders the offending line with a marker.
	explained := diags[0].Explain()
	if !strings.Contains(explained, "<a><b></a>") || !strings.Contains(explained, "^") {
		t.Errorf("Explain output:\n%s", explained)
	}
}

func TestParseNeverPanicsOnTruncation(t *testing.T) {
	// Chopping a template at every scalar boundary must still parse.
	input := `<view class="a {{b}} c"><!-- d --><wxs m="n">o</wxs>{{p}}</view>`
	runes := []rune(input)

	for i := 0; i <= len(runes); i++ {
		docNode := Parse(string(runes[:i]))
		if docNode == nil {
			t.Fatalf("nil document for prefix of length %d", i)
		}

		if docNode.End != i {
			t.Errorf("prefix %d: root end = %d", i, docNode.End)
		}
	}
}
