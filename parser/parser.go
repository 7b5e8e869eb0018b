// Package parser implements the single-pass WXML document parser.
//
// The parser pulls unicode scalars from a token.Reader and emits an
// ast.Document. It is tolerant: malformed input never aborts a parse.
// Whatever cannot be recognized is captured best-effort, recorded as an
// out-of-band diagnostic, and the parser advances.
package parser

import (
	"fmt"

	"github.com/wxmlkit/wxml/ast"
	"github.com/wxmlkit/wxml/token"
)

// rawTextTag is the one tag whose body is opaque: everything up to the
// literal end tag is captured as Element.Content without being
// tokenized as markup.
const rawTextTag = "wxs"

// Parser builds the AST for a single input.
//
// Open elements live on an explicit heap-allocated stack instead of the
// call stack, so input nesting depth cannot exhaust goroutine stacks.
type Parser struct {
	r     *token.Reader
	src   string
	diags []*token.PosError
	// stack holds the open elements, innermost last. An element is
	// attached to its parent when it closes, which keeps sibling order
	// intact.
	stack []*openElement
	doc   *ast.Document
}

type openElement struct {
	el    *ast.Element
	begin token.Pos
}

// NewParser creates a parser for the given input.
func NewParser(input string) *Parser {
	return &Parser{
		r:   token.NewReader(input),
		src: input,
	}
}

// Parse parses input in a single pass and returns the document node
// spanning it.
func Parse(input string) *ast.Document {
	return NewParser(input).Parse()
}

// Parse consumes the whole input. It never fails; problems are
// reported via Diagnostics.
func (p *Parser) Parse() *ast.Document {
	begin := p.r.Pos()
	p.doc = &ast.Document{Start: 0, End: p.r.Len()}

	for !p.r.EOF() {
		p.parseNode()
	}

	// Whatever is still open is closed in place.
	for len(p.stack) > 0 {
		open := p.top()
		p.report(open.begin, p.r.Pos(), fmt.Sprintf("unclosed element '<%s>'", open.el.Name))
		p.closeTop(p.r.Pos())
	}

	p.doc.Location = ast.LocationBetween(begin, p.r.Pos())

	return p.doc
}

// Diagnostics returns the problems encountered during the parse, in the
// order the parser met them. Elements still open at the end of input
// are reported last, innermost first. It is empty for well-formed input.
func (p *Parser) Diagnostics() []*token.PosError {
	return p.diags
}

func (p *Parser) parseNode() {
	switch {
	case p.r.StartsWith("<!--"):
		p.parseComment()
	case p.r.StartsWith("</"):
		p.parseEndTag()
	case p.startsElement():
		p.parseElement()
	case p.r.StartsWith("{{"):
		p.parseExpression()
	default:
		p.parseText()
	}
}

// startsElement reports whether the cursor sits on '<' followed by a
// name-start character. A '<' followed by anything else is literal
// text.
func (p *Parser) startsElement() bool {
	if c, ok := p.r.Peek(); !ok || c != '<' {
		return false
	}

	n, ok := p.r.PeekAt(1)

	return ok && isTagNameStart(n)
}

// append attaches a finished node to the innermost open element, or to
// the document if none is open.
func (p *Parser) append(n ast.Node) {
	if len(p.stack) == 0 {
		p.doc.Children = append(p.doc.Children, n)
		return
	}

	top := p.stack[len(p.stack)-1].el
	top.Children = append(top.Children, n)
}

func (p *Parser) top() *openElement {
	return p.stack[len(p.stack)-1]
}

// closeTop finalizes the innermost open element at end and attaches it
// to its parent.
func (p *Parser) closeTop(end token.Pos) {
	open := p.top()
	p.stack = p.stack[:len(p.stack)-1]

	open.el.End = end.Offset
	open.el.Location = ast.LocationBetween(open.begin, end)
	p.append(open.el)
}

func (p *Parser) report(begin, end token.Pos, msg string) {
	p.diags = append(p.diags, token.NewPosError(token.NewNode(begin, end), msg).SetSource(p.src))
}

func (p *Parser) parseComment() {
	begin := p.r.Pos()
	p.r.ConsumeN(len("<!--"))

	content := p.r.ConsumeUntil("-->")
	if p.r.EOF() {
		p.report(begin, p.r.Pos(), "unterminated comment")
	} else {
		p.r.ConsumeN(len("-->"))
	}

	end := p.r.Pos()
	p.append(&ast.Comment{
		Content:  content,
		Start:    begin.Offset,
		End:      end.Offset,
		Location: ast.LocationBetween(begin, end),
	})
}

func (p *Parser) parseExpression() {
	begin := p.r.Pos()
	p.r.ConsumeN(2) // {{

	if !p.consumeExpressionBody(p.r.Len()) {
		p.report(begin, p.r.Pos(), "unclosed expression")
	}

	end := p.r.Pos()
	p.append(&ast.Expression{
		Content:  p.r.Slice(begin.Offset, end.Offset),
		Start:    begin.Offset,
		End:      end.Offset,
		Location: ast.LocationBetween(begin, end),
	})
}

// consumeExpressionBody consumes the interior of a {{ … }} region and
// its closing braces, never passing limit. Single braces inside the
// body may nest; a "}}" only terminates at nesting depth zero. Reports
// whether the closing braces were found.
func (p *Parser) consumeExpressionBody(limit int) bool {
	depth := 0

	for p.r.Offset() < limit {
		c, _ := p.r.Peek()
		switch c {
		case '{':
			depth++
			p.r.Next()
		case '}':
			if depth == 0 {
				if n, ok := p.r.PeekAt(1); ok && n == '}' && p.r.Offset()+2 <= limit {
					p.r.ConsumeN(2)
					return true
				}
				p.r.Next()
			} else {
				depth--
				p.r.Next()
			}
		default:
			p.r.Next()
		}
	}

	return false
}

func (p *Parser) parseText() {
	begin := p.r.Pos()
	// The first scalar is always literal here, the dispatch already
	// rejected every construct start.
	p.r.Next()

	for !p.r.EOF() {
		if p.r.StartsWith("{{") {
			break
		}

		if c, _ := p.r.Peek(); c == '<' {
			if n, ok := p.r.PeekAt(1); ok && (isTagNameStart(n) || n == '/' || n == '!') {
				break
			}
		}

		p.r.Next()
	}

	end := p.r.Pos()
	p.append(&ast.Text{
		Content:  p.r.Slice(begin.Offset, end.Offset),
		Start:    begin.Offset,
		End:      end.Offset,
		Location: ast.LocationBetween(begin, end),
	})
}

func (p *Parser) parseEndTag() {
	begin := p.r.Pos()
	p.r.ConsumeN(2) // </

	name := p.r.ConsumeWhile(isTagNameChar)
	p.r.SkipWhitespace()

	if c, ok := p.r.Peek(); ok && c == '>' {
		p.r.Next()
	} else if p.r.EOF() {
		p.report(begin, p.r.Pos(), "unexpected end of input in end tag")
	} else {
		p.report(begin, p.r.Pos(), fmt.Sprintf("malformed end tag </%s>", name))
		p.r.ConsumeUntil(">")
		p.r.ConsumeN(1)
	}

	end := p.r.Pos()

	if name == "" {
		p.report(begin, end, "missing name in end tag")
		return
	}

	if len(p.stack) == 0 {
		p.report(begin, end, fmt.Sprintf("stray end tag </%s>", name))
		return
	}

	// An end tag always closes the innermost open element. On a name
	// mismatch the stray tag is consumed all the same and only a
	// diagnostic remembers it.
	if open := p.top(); open.el.Name != name {
		p.report(begin, end, fmt.Sprintf("mismatched end tag, expected </%s> but found </%s>", open.el.Name, name))
	}

	p.closeTop(end)
}

func (p *Parser) parseElement() {
	begin := p.r.Pos()
	p.r.Next() // <

	name := p.r.ConsumeWhile(isTagNameChar)
	el := &ast.Element{Name: name, Start: begin.Offset}

	closed := false
	for !closed {
		p.r.SkipWhitespace()

		c, ok := p.r.Peek()
		if !ok {
			// EOF inside the tag. Finalize with whatever was parsed.
			p.report(begin, p.r.Pos(), fmt.Sprintf("unexpected end of input in tag '<%s'", name))
			end := p.r.Pos()
			el.End = end.Offset
			el.Location = ast.LocationBetween(begin, end)
			p.append(el)

			return
		}

		switch {
		case c == '/':
			p.r.Next()
			if n, ok := p.r.Peek(); ok && n == '>' {
				p.r.Next()
				el.IsSelfClosing = true
				closed = true
			} else {
				pos := p.r.Pos()
				p.report(pos, pos, "expected '>' after '/'")
			}
		case c == '>':
			p.r.Next()
			closed = true
		default:
			if attr, ok := p.parseAttribute(); ok {
				el.Attributes = append(el.Attributes, attr)
			}
		}
	}

	if el.IsSelfClosing {
		end := p.r.Pos()
		el.End = end.Offset
		el.Location = ast.LocationBetween(begin, end)
		p.append(el)

		return
	}

	if el.Name == rawTextTag {
		p.parseRawBody(el, begin)
		return
	}

	p.stack = append(p.stack, &openElement{el: el, begin: begin})
}

// parseRawBody captures everything up to the literal end tag as the
// element's Content, without tokenizing it as markup.
func (p *Parser) parseRawBody(el *ast.Element, begin token.Pos) {
	bodyStart := p.r.Offset()

	for {
		if p.r.EOF() {
			p.report(begin, p.r.Pos(), fmt.Sprintf("unclosed element '<%s>'", el.Name))
			el.Content = p.r.Slice(bodyStart, p.r.Offset())

			break
		}

		if after, ok := p.matchRawEndTag(el.Name); ok {
			el.Content = p.r.Slice(bodyStart, p.r.Offset())
			p.r.ConsumeN(after - p.r.Offset())

			break
		}

		p.r.Next()
	}

	end := p.r.Pos()
	el.End = end.Offset
	el.Location = ast.LocationBetween(begin, end)
	p.append(el)
}

// matchRawEndTag checks for "</" name ">" at the cursor without
// consuming anything. The name match is case-sensitive; whitespace
// inside the end tag is tolerated. Returns the scalar index just past
// the '>' on a match.
func (p *Parser) matchRawEndTag(name string) (int, bool) {
	if !p.r.StartsWith("</") {
		return 0, false
	}

	k := p.skipWhitespaceAt(2)

	for _, want := range name {
		c, ok := p.r.PeekAt(k)
		if !ok || c != want {
			return 0, false
		}
		k++
	}

	k = p.skipWhitespaceAt(k)

	if c, ok := p.r.PeekAt(k); ok && c == '>' {
		return p.r.Offset() + k + 1, true
	}

	return 0, false
}

// skipWhitespaceAt returns the first lookahead index at or after k that
// does not hold whitespace.
func (p *Parser) skipWhitespaceAt(k int) int {
	for {
		c, ok := p.r.PeekAt(k)
		if !ok || !token.IsWhitespace(c) {
			return k
		}
		k++
	}
}

func (p *Parser) parseAttribute() (ast.Attribute, bool) {
	begin := p.r.Pos()

	name := p.r.ConsumeWhile(isAttrNameChar)
	if name == "" {
		// Not a legal attribute start. Drop the scalar to keep moving.
		c, _ := p.r.Next()
		p.report(begin, p.r.Pos(), fmt.Sprintf("unexpected character %q in tag", c))

		return ast.Attribute{}, false
	}

	nameEnd := p.r.Pos()

	// '=' may be padded with whitespace on either side.
	p.r.SkipWhitespace()
	if c, ok := p.r.Peek(); !ok || c != '=' {
		// A bare flag. The whitespace just skipped belongs to the tag.
		return ast.Attribute{
			Name:     name,
			Location: ast.LocationBetween(begin, nameEnd),
		}, true
	}

	p.r.Next() // =
	p.r.SkipWhitespace()

	value, valueEnd := p.parseAttributeValue()

	return ast.Attribute{
		Name:     name,
		Value:    value,
		Location: ast.LocationBetween(begin, valueEnd),
	}, true
}
