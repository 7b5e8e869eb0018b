// SPDX-FileCopyrightText: © 2024 The wxml authors <https://github.com/wxmlkit/wxml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

// Reader is a position-aware character stream over an in-memory input.
// It operates on unicode scalars, never on bytes, and is the single
// authority for offset, line and column bookkeeping.
//
// All failure is reported through the boolean results; a Reader never
// panics at the end of input.
type Reader struct {
	src []rune
	pos Pos
}

// NewReader wraps the given input, cursor at 1:1.
func NewReader(src string) *Reader {
	return &Reader{
		src: []rune(src),
		pos: Pos{Line: 1, Col: 1},
	}
}

// Len returns the total input length in scalars.
func (r *Reader) Len() int {
	return len(r.src)
}

// EOF reports whether the stream is exhausted.
func (r *Reader) EOF() bool {
	return r.pos.Offset >= len(r.src)
}

// Pos returns the current position. It is O(1) and safe to keep.
func (r *Reader) Pos() Pos {
	return r.pos
}

// Offset returns the current scalar offset.
func (r *Reader) Offset() int {
	return r.pos.Offset
}

// Peek returns the scalar under the cursor without consuming it.
func (r *Reader) Peek() (rune, bool) {
	if r.EOF() {
		return 0, false
	}

	return r.src[r.pos.Offset], true
}

// PeekAt returns the scalar k positions after the cursor.
func (r *Reader) PeekAt(k int) (rune, bool) {
	i := r.pos.Offset + k
	if i < 0 || i >= len(r.src) {
		return 0, false
	}

	return r.src[i], true
}

// StartsWith reports whether the unconsumed input begins with lit.
func (r *Reader) StartsWith(lit string) bool {
	i := r.pos.Offset
	for _, c := range lit {
		if i >= len(r.src) || r.src[i] != c {
			return false
		}
		i++
	}

	return true
}

// Next consumes the scalar under the cursor and advances the position.
// A '\n' increments the line and resets the column. A "\r\n" pair
// counts as a single line break: the column holds on the '\r' and the
// '\n' performs the break. A lone '\r' breaks the line on its own.
func (r *Reader) Next() (rune, bool) {
	if r.EOF() {
		return 0, false
	}

	c := r.src[r.pos.Offset]
	r.pos.Offset++

	switch {
	case c == '\n':
		r.pos.Line++
		r.pos.Col = 1
	case c == '\r':
		if n, ok := r.Peek(); !ok || n != '\n' {
			r.pos.Line++
			r.pos.Col = 1
		}
	default:
		r.pos.Col++
	}

	return c, true
}

// ConsumeWhile consumes scalars as long as pred holds and returns the
// consumed run.
func (r *Reader) ConsumeWhile(pred func(rune) bool) string {
	start := r.pos.Offset

	for {
		c, ok := r.Peek()
		if !ok || !pred(c) {
			break
		}
		r.Next()
	}

	return string(r.src[start:r.pos.Offset])
}

// ConsumeUntil consumes scalars up to, but not including, the first
// occurrence of lit. When lit does not occur, the rest of the input is
// consumed. The consumed run is returned.
func (r *Reader) ConsumeUntil(lit string) string {
	start := r.pos.Offset

	for !r.EOF() && !r.StartsWith(lit) {
		r.Next()
	}

	return string(r.src[start:r.pos.Offset])
}

// ConsumeN consumes up to n scalars and returns them.
func (r *Reader) ConsumeN(n int) string {
	start := r.pos.Offset

	for i := 0; i < n && !r.EOF(); i++ {
		r.Next()
	}

	return string(r.src[start:r.pos.Offset])
}

// SkipWhitespace consumes the whitespace run under the cursor.
func (r *Reader) SkipWhitespace() {
	for {
		c, ok := r.Peek()
		if !ok || !IsWhitespace(c) {
			break
		}
		r.Next()
	}
}

// Find returns the scalar index of the first occurrence of lit at or
// after from, or -1 if lit does not occur.
func (r *Reader) Find(lit string, from int) int {
	runes := []rune(lit)
	if len(runes) == 0 || from < 0 {
		return -1
	}

	for i := from; i+len(runes) <= len(r.src); i++ {
		match := true
		for j, c := range runes {
			if r.src[i+j] != c {
				match = false
				break
			}
		}

		if match {
			return i
		}
	}

	return -1
}

// Slice returns the scalars in [start, end) as a string. Indices are
// clamped to the input bounds.
func (r *Reader) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}

	if end > len(r.src) {
		end = len(r.src)
	}

	if start >= end {
		return ""
	}

	return string(r.src[start:end])
}

// IsWhitespace reports whether c is template whitespace.
func IsWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
