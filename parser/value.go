package parser

import (
	"github.com/wxmlkit/wxml/ast"
	"github.com/wxmlkit/wxml/token"
)

// parseAttributeValue reads a quoted or unquoted value region and
// splits it into its ordered fragments. It returns the fragments and
// the position just past the value region, closing quote included.
func (p *Parser) parseAttributeValue() ([]ast.AttributeValue, token.Pos) {
	c, ok := p.r.Peek()
	if !ok {
		pos := p.r.Pos()
		p.report(pos, pos, "unexpected end of input after '='")

		return nil, pos
	}

	if c == '"' || c == '\'' {
		openPos := p.r.Pos()
		p.r.Next() // opening quote

		limit := p.r.Find(string(c), p.r.Offset())
		if limit < 0 {
			// No closing quote. The value runs to the tag's '>', or to
			// the end of input, whichever comes first.
			p.report(openPos, p.r.Pos(), "unterminated attribute value")

			limit = p.r.Find(">", p.r.Offset())
			if limit < 0 {
				limit = p.r.Len()
			}

			return p.splitValue(limit), p.r.Pos()
		}

		value := p.splitValue(limit)
		p.r.Next() // closing quote

		return value, p.r.Pos()
	}

	// Unquoted: the run ends at whitespace, '/' or '>'.
	limit := p.r.Offset()
	for {
		c, ok := p.r.PeekAt(limit - p.r.Offset())
		if !ok || !isUnquotedValueChar(c) {
			break
		}
		limit++
	}

	if limit == p.r.Offset() {
		pos := p.r.Pos()
		p.report(pos, pos, "missing attribute value")

		return nil, pos
	}

	return p.splitValue(limit), p.r.Pos()
}

// splitValue scans the value region up to limit and produces the
// ordered static and expression fragments, each with its own span. The
// cursor ends at limit. An empty region yields no fragments; adjacent
// fragments meet exactly at the {{ }} boundaries.
func (p *Parser) splitValue(limit int) []ast.AttributeValue {
	var fragments []ast.AttributeValue

	staticBegin := p.r.Pos()
	flush := func() {
		if p.r.Offset() > staticBegin.Offset {
			fragments = append(fragments, &ast.StaticValue{
				Content:  p.r.Slice(staticBegin.Offset, p.r.Offset()),
				Start:    staticBegin.Offset,
				End:      p.r.Offset(),
				Location: ast.LocationBetween(staticBegin, p.r.Pos()),
			})
		}
	}

	for p.r.Offset() < limit {
		if p.r.Offset()+2 <= limit && p.r.StartsWith("{{") {
			flush()

			exprBegin := p.r.Pos()
			p.r.ConsumeN(2)

			if !p.consumeExpressionBody(limit) {
				p.report(exprBegin, p.r.Pos(), "unclosed expression")
			}

			exprEnd := p.r.Pos()
			fragments = append(fragments, &ast.ExpressionValue{
				Content:  p.r.Slice(exprBegin.Offset, exprEnd.Offset),
				Start:    exprBegin.Offset,
				End:      exprEnd.Offset,
				Location: ast.LocationBetween(exprBegin, exprEnd),
			})

			staticBegin = p.r.Pos()

			continue
		}

		p.r.Next()
	}

	flush()

	return fragments
}
