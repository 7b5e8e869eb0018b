// SPDX-FileCopyrightText: © 2024 The wxml authors <https://github.com/wxmlkit/wxml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package wxml parses WXML — the template language of WeChat Mini
// Programs — into an AST with precise source positions.
//
// Parsing is a pure, single-pass function of its input: no I/O, no
// shared state, no failure mode. Malformed input yields a best-effort
// tree plus out-of-band diagnostics.
package wxml

import (
	"github.com/wxmlkit/wxml/ast"
	"github.com/wxmlkit/wxml/parser"
	"github.com/wxmlkit/wxml/token"
)

// Parse parses a WXML template and returns the document node spanning
// the whole input.
func Parse(input string) *ast.Document {
	return parser.Parse(input)
}

// ParseWithDiagnostics parses input and additionally returns the
// problems found along the way. The tree is the same one Parse
// produces.
func ParseWithDiagnostics(input string) (*ast.Document, []*token.PosError) {
	p := parser.NewParser(input)
	doc := p.Parse()

	return doc, p.Diagnostics()
}
