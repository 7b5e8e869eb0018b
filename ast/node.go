// Package ast defines the node types produced by parsing a WXML
// template, annotated with scalar offsets and resolved locations.
//
// Node and AttributeValue are closed sums. The concrete node types are
// Document, Element, Text, Expression and Comment; attribute value
// fragments are StaticValue and ExpressionValue. Nodes are built once
// by the parser and not mutated afterwards; parents own their children
// and there are no back-references.
package ast

import "github.com/wxmlkit/wxml/token"

// Position is a resolved point in the input. Offset counts unicode
// scalars from the input start; Line and Column are one-based.
type Position struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Location is the [start, end) range of a node. End is exclusive.
type Location struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// PositionOf converts a stream position.
func PositionOf(p token.Pos) Position {
	return Position{Offset: p.Offset, Line: p.Line, Column: p.Col}
}

// LocationBetween builds the location spanning [begin, end).
func LocationBetween(begin, end token.Pos) Location {
	return Location{Start: PositionOf(begin), End: PositionOf(end)}
}

// Node is one variant of the document tree.
type Node interface {
	// Span returns the scalar offsets [start, end) covered by the node.
	Span() (start, end int)
	// Loc returns the resolved location of the node.
	Loc() Location

	nodeType() string
}

// Document is the unique root of a parse result. It spans the whole
// input and is never nested.
type Document struct {
	Children []Node
	Start    int
	End      int
	Location Location
}

func (d *Document) Span() (int, int) { return d.Start, d.End }
func (d *Document) Loc() Location    { return d.Location }
func (*Document) nodeType() string   { return "Document" }

// Element is a tag together with its attributes and either child nodes
// or, for opaque tags such as wxs, a raw Content body.
type Element struct {
	Name       string
	Attributes []Attribute
	Children   []Node
	// IsSelfClosing is set for tags written as <name ... />.
	IsSelfClosing bool
	// Content holds the untokenized body of an opaque tag. It is empty
	// for every other element.
	Content  string
	Start    int
	End      int
	Location Location
}

func (e *Element) Span() (int, int) { return e.Start, e.End }
func (e *Element) Loc() Location    { return e.Location }
func (*Element) nodeType() string   { return "Element" }

// Text is a literal run between markup. Content is never empty and
// never embeds "{{".
type Text struct {
	Content  string
	Start    int
	End      int
	Location Location
}

func (t *Text) Span() (int, int) { return t.Start, t.End }
func (t *Text) Loc() Location    { return t.Location }
func (*Text) nodeType() string   { return "Text" }

// Expression is a standalone {{ … }} region. Content keeps the
// surrounding braces; the interior is captured verbatim and not
// interpreted.
type Expression struct {
	Content  string
	Start    int
	End      int
	Location Location
}

func (e *Expression) Span() (int, int) { return e.Start, e.End }
func (e *Expression) Loc() Location    { return e.Location }
func (*Expression) nodeType() string   { return "Expression" }

// Comment is a <!-- … --> region. Content excludes the delimiters.
type Comment struct {
	Content  string
	Start    int
	End      int
	Location Location
}

func (c *Comment) Span() (int, int) { return c.Start, c.End }
func (c *Comment) Loc() Location    { return c.Location }
func (*Comment) nodeType() string   { return "Comment" }

// Attribute is a name plus an ordered list of value fragments. Value is
// empty when the attribute is a bare flag without '='.
type Attribute struct {
	Name     string
	Value    []AttributeValue
	Location Location
}

// AttributeValue is one fragment of an attribute value.
type AttributeValue interface {
	Span() (start, end int)
	Loc() Location

	valueType() string
}

// StaticValue is a literal fragment. It spans exactly its characters;
// surrounding quotes are structural and excluded.
type StaticValue struct {
	Content  string
	Start    int
	End      int
	Location Location
}

func (v *StaticValue) Span() (int, int) { return v.Start, v.End }
func (v *StaticValue) Loc() Location    { return v.Location }
func (*StaticValue) valueType() string  { return "Static" }

// ExpressionValue is a {{ … }} fragment inside an attribute value. Like
// the Expression node, Content keeps the braces, and the span runs from
// the first '{' through the last '}'.
type ExpressionValue struct {
	Content  string
	Start    int
	End      int
	Location Location
}

func (v *ExpressionValue) Span() (int, int) { return v.Start, v.End }
func (v *ExpressionValue) Loc() Location    { return v.Location }
func (*ExpressionValue) valueType() string  { return "Expression" }
