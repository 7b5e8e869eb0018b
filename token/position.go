// SPDX-FileCopyrightText: © 2024 The wxml authors <https://github.com/wxmlkit/wxml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

// Position is a source span between two positions. It is meant to be
// embedded into anything that covers a region of the input and
// satisfies the Node interface.
type Position struct {
	BeginPos Pos
	EndPos   Pos
}

func (p *Position) Begin() Pos {
	return p.BeginPos
}

func (p *Position) End() Pos {
	return p.EndPos
}

func (p *Position) SetBegin(pos Pos) {
	p.BeginPos = pos
}

func (p *Position) SetEnd(pos Pos) {
	p.EndPos = pos
}
