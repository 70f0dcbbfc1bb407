// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"github.com/snazzy-d/sdfmt/token"
	"github.com/snazzy-d/sdfmt/token/keyword"
)

// parseBlock recognizes a braced group of elements whose `{` is at the
// cursor. The brace stays on the current line, the body is indented one
// level, and the closing brace gets a line of its own followed by a blank
// line separating the block from whatever comes next.
func (p *parser) parseBlock(m mode) {
	p.nextToken() // {
	p.b.Split()
	restore := p.setMode(m)
	done := p.b.Indent(1)
	p.b.Newline(1)
	p.parseElements(keyword.RBrace)
	p.b.Split()
	done()
	restore()
	p.b.Newline(1)
	if p.cursor.Peek().Keyword() == keyword.RBrace {
		p.nextToken()
	}
	p.blankLineAfter()
}

// blankLineAfter schedules the blank line that normally follows a closed
// block or member list, downgrading to a single break when the enclosing
// closing brace comes next: a blank line right before a `}` reads as
// padding.
func (p *parser) blankLineAfter() {
	if p.cursor.Peek().Keyword() == keyword.RBrace {
		p.b.Newline(1)
		return
	}
	p.b.Newline(2)
}

// parseControlBody recognizes the body of a control statement: a block, a
// bare `;`, or a single element indented on the next line. It reports
// whether the body was a braced block, which decides how a trailing
// keyword like else or while attaches.
func (p *parser) parseControlBody(m mode) bool {
	front := p.cursor.Peek()
	switch {
	case front.Keyword() == keyword.LBrace:
		p.b.Space()
		p.parseBlock(m)
		return true
	case front.Keyword() == keyword.Semi, front.IsZero(), front.Kind() == token.End:
		return false
	}
	restore := p.setMode(m)
	done := p.b.Indent(1)
	p.b.Newline(1)
	p.parseStructuralElement()
	p.b.Split()
	done()
	restore()
	return false
}

// parseElse attaches an else clause to a conditional whose body was just
// recognized. After a braced body the keyword shares the `}` line; after
// an unbraced one it starts its own line.
func (p *parser) parseElse(braced bool, m mode) {
	if p.cursor.Peek().Keyword() != keyword.Else {
		return
	}
	p.glueTrailer(braced)
	p.nextToken() // else
	switch p.cursor.Peek().Keyword() {
	case keyword.If:
		p.b.Space()
		p.parseIf()
	case keyword.Version, keyword.Debug:
		p.b.Space()
		p.parseVersion()
	default:
		p.parseControlBody(m)
	}
}

func (p *parser) parseIf() {
	p.nextToken() // if
	p.b.Space()
	p.parseParens()
	braced := p.parseControlBody(modeStatement)
	p.parseElse(braced, modeStatement)
}

func (p *parser) parseWhile() {
	p.nextToken() // while
	p.b.Space()
	p.parseParens()
	p.parseControlBody(modeStatement)
}

func (p *parser) parseDo() {
	p.nextToken() // do
	braced := p.parseControlBody(modeStatement)
	if p.cursor.Peek().Keyword() == keyword.While {
		p.glueTrailer(braced)
		p.nextToken() // while
		p.b.Space()
		p.parseParens()
	}
}

func (p *parser) parseFor() {
	p.nextToken() // for, foreach, foreach_reverse
	p.b.Space()
	p.parseParens()
	p.parseControlBody(modeStatement)
}

func (p *parser) parseSwitch() {
	p.nextToken() // switch
	p.b.Space()
	p.parseParens()
	p.parseControlBody(modeStatement)
}

// parseCase recognizes a case branch. The branch line sits one level
// shallower than the statements it guards, putting it flush with the
// switch itself.
func (p *parser) parseCase() {
	undo := p.b.Unindent(1)
	p.nextToken() // case
	p.b.Space()
	p.parseDelimited(keyword.Colon, false)
	undo()
	p.b.Newline(1)
}

func (p *parser) parseDefault() {
	undo := p.b.Unindent(1)
	p.nextToken() // default
	if p.cursor.Peek().Keyword() == keyword.Colon {
		p.nextToken()
	}
	p.b.Split()
	undo()
	p.b.Newline(1)
}

// parseJump recognizes goto, break, continue, return, and throw, with an
// optional operand. `goto case` and `goto default` keep their keyword
// operand inline.
func (p *parser) parseJump() {
	p.nextToken()
	front := p.cursor.Peek()
	switch front.Keyword() {
	case keyword.Case, keyword.Default:
		p.b.Space()
		p.nextToken()
		if canStartExpression(p.cursor.Peek()) {
			p.b.Space()
			p.parseExpression()
		}
	default:
		if canStartExpression(front) {
			p.b.Space()
			p.parseExpression()
		}
	}
}

func (p *parser) parseTry() {
	p.nextToken() // try
	braced := p.parseControlBody(modeStatement)
	for p.cursor.Peek().Keyword() == keyword.Catch {
		p.glueTrailer(braced)
		p.nextToken() // catch
		if p.cursor.Peek().Keyword() == keyword.LParen {
			p.b.Space()
			p.parseParens()
		}
		braced = p.parseControlBody(modeStatement)
	}
	if p.cursor.Peek().Keyword() == keyword.Finally {
		p.glueTrailer(braced)
		p.nextToken() // finally
		p.parseControlBody(modeStatement)
	}
}

func (p *parser) parseWith() {
	p.nextToken() // with
	p.b.Space()
	p.parseParens()
	p.parseControlBody(modeStatement)
}
