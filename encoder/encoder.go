// Package encoder serializes a parsed document to its JSON wire form.
//
// The parser itself never serializes; the AST crosses the host boundary
// exactly once, here. Variants carry a "type" tag, fields keep the wire
// names (children, name, attributes, is_self_closing, content, start,
// end, location, value).
package encoder

import (
	"encoding/json"
	"io"

	"github.com/wxmlkit/wxml/ast"
)

// Encoder writes the JSON form of AST nodes to a stream.
type Encoder struct {
	enc *json.Encoder
}

// New creates an Encoder writing to w.
func New(w io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(w)}
}

// SetIndent configures pretty-printed output.
func (e *Encoder) SetIndent(prefix, indent string) {
	e.enc.SetIndent(prefix, indent)
}

// Encode writes node followed by a newline.
func (e *Encoder) Encode(node ast.Node) error {
	return e.enc.Encode(node)
}

// Marshal returns the JSON form of node.
func Marshal(node ast.Node) ([]byte, error) {
	return json.Marshal(node)
}

// MarshalIndent returns the pretty-printed JSON form of node.
func MarshalIndent(node ast.Node, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(node, prefix, indent)
}
