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

// parseStructuralElement recognizes one declaration, statement, or
// expression at the cursor, writing it and its canonical whitespace.
//
// It returns false, writing nothing, when the front token cannot begin any
// recognized form; the caller then routes the token to the skip path. Every
// element opens its own cost group, so a statement that ends up too long
// for a line wraps within itself rather than dragging neighbors along.
func (p *parser) parseStructuralElement() bool {
	front := p.cursor.Peek()
	if !p.canStartStructuralElement(front) {
		return false
	}
	p.flushSkipped()
	if front.Keyword() == keyword.LBrace {
		// The space before a bare block is scheduled ahead of the element's
		// cost group so that it merges with whatever the previous element
		// left pending instead of stacking on top of it.
		switch p.prev.Keyword() {
		case keyword.LParen, keyword.LBracket:
		default:
			if !p.prev.IsZero() && p.prev.Kind() != token.Begin {
				p.b.Space()
			}
		}
	}
	done := p.b.Span(1, 1)
	defer done()

	kw := front.Keyword()
	switch {
	case p.mode != modeParameter && p.isLabel():
		p.parseLabel()
	case kw.IsAggregate():
		p.parseAggregate()
	case kw == keyword.At || kw.IsStorageClass():
		p.parseStorageClass()
	default:
		switch kw {
		case keyword.Module, keyword.Alias:
			p.parsePrefixed()
		case keyword.Import:
			p.parseImport()
		case keyword.Enum:
			p.parseEnum()
		case keyword.Unittest:
			p.parseUnittest()
		case keyword.Version, keyword.Debug:
			p.parseVersion()
		case keyword.Mixin:
			p.parseMixin()
		case keyword.LBrace:
			p.parseBlock(modeStatement)
		case keyword.If:
			p.parseIf()
		case keyword.While:
			p.parseWhile()
		case keyword.Do:
			p.parseDo()
		case keyword.For, keyword.Foreach, keyword.ForeachReverse:
			p.parseFor()
		case keyword.Switch:
			p.parseSwitch()
		case keyword.Case:
			p.parseCase()
		case keyword.Default:
			p.parseDefault()
		case keyword.Goto, keyword.Break, keyword.Continue,
			keyword.Return, keyword.Throw:
			p.parseJump()
		case keyword.Try:
			p.parseTry()
		case keyword.With:
			p.parseWith()
		case keyword.Semi:
			// An empty element; the trailing pass consumes the separator.
		case keyword.Colon:
			p.parseBareColon()
		default:
			if p.isConstructor() {
				p.parseConstructor()
			} else {
				p.parseExpression()
			}
		}
	}
	p.parseTrailing()
	return true
}

func (p *parser) canStartStructuralElement(front token.Token) bool {
	if canStartExpression(front) {
		return true
	}
	kw := front.Keyword()
	if kw.IsAggregate() || kw.IsStorageClass() {
		return true
	}
	switch kw {
	case keyword.LBrace, keyword.Semi, keyword.Colon, keyword.At,
		keyword.Module, keyword.Import, keyword.Alias, keyword.Enum,
		keyword.Unittest, keyword.Version, keyword.Debug,
		keyword.If, keyword.While, keyword.Do,
		keyword.For, keyword.Foreach, keyword.ForeachReverse,
		keyword.Switch, keyword.Case, keyword.Default,
		keyword.Goto, keyword.Break, keyword.Continue, keyword.Return,
		keyword.Try, keyword.Throw, keyword.With:
		return true
	default:
		return false
	}
}

// parseTrailing finishes a structural element: an optional separator is
// consumed, and the break after the element is scheduled. In parameter
// context separators are list syntax, so the element stays inline; in
// declaration and statement context a separator ends a line, and the
// source's own blank lines are preserved on top of that.
func (p *parser) parseTrailing() {
	switch p.cursor.Peek().Keyword() {
	case keyword.Semi, keyword.Comma:
		// A separator glues to whatever preceded it, even past the blank
		// line scheduled after a closing brace.
		if !p.afterLineComment() {
			p.b.ClearSplit()
		}
		tok := p.nextToken()
		if p.mode == modeParameter {
			p.b.Space()
			return
		}
		if p.prev != tok && !p.sameLine(tok, p.prev) {
			// Comments drained after the separator already moved past its
			// line; the break they mirrored stands on its own.
			p.mirrorNext()
			return
		}
		p.b.Newline(1)
		p.mirrorNext()
	default:
		if p.mode == modeParameter {
			p.spaceNext()
			return
		}
		p.mirrorNext()
	}
}

// parsePrefixed recognizes a keyword that simply prefixes another element,
// such as a module declaration or an alias.
func (p *parser) parsePrefixed() {
	p.nextToken()
	p.b.Space()
	p.parseExpression()
}

func (p *parser) parseImport() {
	p.nextToken() // import
	p.b.Space()
	p.parseExpression()
	for p.cursor.Peek().Keyword() == keyword.Comma {
		p.nextToken()
		p.b.Space()
		p.parseExpression()
	}
	if p.cursor.Peek().Keyword() == keyword.Colon {
		// A selective import: spaces around the colon, the selected
		// symbols inline.
		p.b.Space()
		p.nextToken()
		p.b.Space()
		p.parseExpression()
		for p.cursor.Peek().Keyword() == keyword.Comma {
			p.nextToken()
			p.b.Space()
			p.parseExpression()
		}
	}
}

// parseAggregate recognizes struct, union, class, interface, and template
// declarations: the keyword, a name, template parameters glued to the
// name, an optional base list, and a declaration-mode body.
func (p *parser) parseAggregate() {
	p.nextToken()
	front := p.cursor.Peek()
	if front.Kind() == token.Ident && front.Keyword() == keyword.Unknown {
		p.b.Space()
		p.nextToken()
	}
	p.parseParens()
	if p.cursor.Peek().Keyword() == keyword.Colon {
		p.b.Space()
		p.nextToken()
		p.b.Space()
		p.parseExpression()
		for p.cursor.Peek().Keyword() == keyword.Comma {
			p.nextToken()
			p.b.Space()
			p.parseExpression()
		}
	}
	if p.cursor.Peek().Keyword() == keyword.LBrace {
		p.b.Space()
		p.parseBlock(modeDeclaration)
	}
}

// parseEnum recognizes an enum declaration: name, optional base type, and
// a member list laid out one member per line. An enum that is really a
// storage class on a manifest constant instead prefixes the element it
// modifies.
func (p *parser) parseEnum() {
	if !p.isEnumDeclaration() {
		p.nextToken()
		p.b.Space()
		p.parseStructuralElement()
		return
	}
	p.nextToken() // enum
	front := p.cursor.Peek()
	if front.Kind() == token.Ident && front.Keyword() == keyword.Unknown {
		p.b.Space()
		p.nextToken()
	}
	if p.cursor.Peek().Keyword() == keyword.Colon {
		p.b.Space()
		p.nextToken()
		p.b.Space()
		p.parseExpression()
	}
	if p.cursor.Peek().Keyword() == keyword.LBrace {
		p.b.Space()
		p.nextToken()
		p.parseDelimited(keyword.RBrace, true)
	}
}

// parseStorageClass recognizes a storage class or attribute prefixing an
// element: the keyword (or @attribute), an optional argument group, and
// then either a `:` section marker, a braced group of elements, or the
// element the prefix modifies.
func (p *parser) parseStorageClass() {
	kw := p.cursor.Peek().Keyword()
	p.nextToken()
	if kw == keyword.At {
		front := p.cursor.Peek()
		if front.Kind() == token.Ident && front.Keyword() == keyword.Unknown {
			p.nextToken()
		}
	}
	if p.cursor.Peek().Keyword() == keyword.LParen {
		// Qualifiers and attribute arguments glue to their parenthesis;
		// extern (C), align (16), scope (exit) take a space.
		if !kw.IsQualifier() && kw != keyword.At {
			p.b.Space()
		}
		p.parseParens()
	}
	switch p.cursor.Peek().Keyword() {
	case keyword.Colon:
		p.nextToken()
		p.b.Newline(1)
	case keyword.LBrace:
		p.b.Space()
		p.parseBlock(p.mode)
	case keyword.Semi:
		// Bare, like `deprecated;`; the trailing pass finishes it.
	default:
		if p.canStartStructuralElement(p.cursor.Peek()) {
			p.b.Space()
			p.parseStructuralElement()
		}
	}
}

func (p *parser) parseUnittest() {
	p.nextToken()
	if p.cursor.Peek().Keyword() == keyword.LBrace {
		p.b.Space()
		p.parseBlock(modeStatement)
	}
}

// parseVersion recognizes version and debug conditions, which wrap either
// declarations or statements depending on where they appear.
func (p *parser) parseVersion() {
	p.nextToken()
	if p.cursor.Peek().Keyword() == keyword.LParen {
		p.b.Space()
		p.parseParens()
	}
	if p.cursor.Peek().Keyword() == keyword.Colon {
		p.nextToken()
		p.b.Newline(1)
		return
	}
	braced := p.parseControlBody(p.mode)
	p.parseElse(braced, p.mode)
}

func (p *parser) parseMixin() {
	p.nextToken()
	if p.cursor.Peek().Keyword() == keyword.LParen {
		p.parseParens()
		return
	}
	p.b.Space()
	p.parseStructuralElement()
}

// parseConstructor recognizes `this` introducing a constructor: parameter
// groups glued to the keyword, then the body.
func (p *parser) parseConstructor() {
	p.nextToken() // this
	for p.cursor.Peek().Keyword() == keyword.LParen {
		p.parseParens()
	}
	if p.cursor.Peek().Keyword() == keyword.LBrace {
		p.b.Space()
		p.parseBlock(modeStatement)
	}
}

// parseLabel recognizes a labeled statement. The label line is written one
// level shallower than its surroundings; a label sharing the line with its
// statement keeps a plain space, one on its own line gets a blank line
// after it.
func (p *parser) parseLabel() {
	undo := p.b.Unindent(1)
	p.nextToken() // name
	p.nextToken() // colon
	next := p.cursor.Peek()
	inline := !next.IsZero() && next.Kind() != token.End && p.sameLine(p.prev, next)
	p.b.Split()
	undo()
	if inline {
		p.b.Space()
	} else {
		p.b.Newline(2)
	}
}

func (p *parser) parseBareColon() {
	if p.mode == modeParameter {
		p.b.Space()
	}
	p.nextToken() // :
	if p.mode == modeParameter {
		p.b.Space()
	} else {
		p.b.Newline(1)
	}
}
