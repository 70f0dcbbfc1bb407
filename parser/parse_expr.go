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

// parseExpression recognizes an expression: an operand followed by any
// number of operator-operand pairs, a space on each side of the operator.
// It reports whether anything was consumed.
//
// No precedence is tracked. The recognizer only needs to know where the
// expression ends and which tokens get spaces, so a flat operator walk is
// enough; parenthesized subexpressions recurse through the operand.
func (p *parser) parseExpression() bool {
	if !p.parseIdentifier() {
		return false
	}
	for {
		front := p.cursor.Peek()
		switch {
		case front.Keyword() == keyword.Bang:
			// `!is` and `!in` lex as two tokens but bind as one
			// operator.
			look := p.cursor.Comments(false)
			look.Next()
			next := look.Peek().Keyword()
			if next != keyword.Is && next != keyword.In {
				return true
			}
			p.b.Space()
			p.nextToken() // !
			p.nextToken() // is, in
		case front.Keyword().IsBinaryOperator():
			// This includes ?, but not the : that would pair with it; the
			// colon of a conditional falls out of the expression and takes
			// the bare-colon path, like a default branch would.
			p.b.Space()
			p.nextToken()
		default:
			return true
		}
		p.b.Space()
		if !p.parseIdentifier() {
			return true
		}
	}
}

// parseIdentifier recognizes a single operand: prefix operators, a
// primary, and a chain of suffixes covering member access, calls,
// indexing, template instantiation, and the postfix increments.
func (p *parser) parseIdentifier() bool {
	progress := false
	for p.cursor.Peek().Keyword().IsPrefixOperator() {
		switch p.cursor.Peek().Keyword() {
		case keyword.Cast:
			p.nextToken()
			if p.cursor.Peek().Keyword() == keyword.LParen {
				p.parseGroup(keyword.RParen)
			}
			p.b.Space()
		case keyword.New, keyword.Delete:
			p.nextToken()
			p.b.Space()
		default:
			// Punctuation prefixes glue to their operand.
			p.nextToken()
		}
		progress = true
	}

	front := p.cursor.Peek()
	kw := front.Keyword()
	switch {
	case front.Kind() == token.Number, front.Kind() == token.String:
		p.nextToken()
	case front.Kind() == token.Ident && kw == keyword.Unknown:
		p.nextToken()
	case kw == keyword.LParen:
		p.parseGroup(keyword.RParen)
	case kw == keyword.LBracket:
		p.parseGroup(keyword.RBracket)
	case kw.IsBasicType(), kw.IsLiteral():
		p.nextToken()
	case kw.IsQualifier(), kw.IsTypeLike():
		p.nextToken()
		if p.cursor.Peek().Keyword() == keyword.LParen {
			p.parseGroup(keyword.RParen)
		}
	default:
		return progress
	}

	for {
		switch p.cursor.Peek().Keyword() {
		case keyword.Dot:
			p.nextToken()
			if p.cursor.Peek().Kind() == token.Ident {
				p.nextToken()
			}
		case keyword.LParen:
			p.parseGroup(keyword.RParen)
		case keyword.LBracket:
			p.parseGroup(keyword.RBracket)
		case keyword.Inc, keyword.Dec, keyword.Ellipsis:
			p.nextToken()
		case keyword.Bang:
			// A template instantiation: !arg or !(args), glued.
			look := p.cursor.Comments(false)
			look.Next()
			next := look.Peek()
			switch {
			case next.Keyword() == keyword.LParen:
				p.nextToken() // !
				p.parseGroup(keyword.RParen)
			case next.Kind() == token.Ident && next.Keyword() == keyword.Unknown,
				next.Kind() == token.Number,
				next.Kind() == token.String,
				next.Keyword().IsBasicType(),
				next.Keyword().IsLiteral():
				p.nextToken() // !
				p.nextToken()
			default:
				return true
			}
		default:
			return true
		}
	}
}

// parseGroup recognizes a bracketed group whose opener is at the cursor,
// glued to whatever came before it.
func (p *parser) parseGroup(closer keyword.Keyword) {
	p.nextToken() // opener
	if p.cursor.Peek().Keyword() == closer {
		p.nextToken()
		return
	}
	p.parseDelimited(closer, false)
}

// parseParens recognizes a parenthesized group at the cursor, if present.
func (p *parser) parseParens() {
	if p.cursor.Peek().Keyword() != keyword.LParen {
		return
	}
	p.parseGroup(keyword.RParen)
}
