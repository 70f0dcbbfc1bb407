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

// canStartExpression reports whether tok can begin an expression operand.
// The expression recognizers consult this before writing anything, so a
// false answer here is what ultimately routes a token to the skip path.
func canStartExpression(tok token.Token) bool {
	switch tok.Kind() {
	case token.Number, token.String:
		return true
	case token.Ident, token.Punct:
	default:
		return false
	}

	kw := tok.Keyword()
	if kw == keyword.Unknown {
		// A plain identifier; punctuation is always a known particle.
		return tok.Kind() == token.Ident
	}
	switch {
	case kw.IsPrefixOperator(), kw.IsBasicType(), kw.IsQualifier(),
		kw.IsLiteral(), kw.IsTypeLike():
		return true
	}
	switch kw {
	case keyword.LParen, keyword.LBracket:
		return true
	default:
		return false
	}
}

// isLabel reports whether the cursor sits on a labeled statement: an
// identifier, a colon, and then something that can plausibly begin the
// labeled statement itself. The token past the colon is what separates a
// label from a colon used inside an expression form.
func (p *parser) isLabel() bool {
	look := p.cursor.Comments(false)
	name := look.Next()
	if name.Kind() != token.Ident || name.Keyword() != keyword.Unknown {
		return false
	}
	if look.Next().Keyword() != keyword.Colon {
		return false
	}
	after := look.Peek()
	if after.IsZero() || after.Kind() == token.End {
		return true
	}
	switch after.Keyword() {
	case keyword.RBrace, keyword.RParen, keyword.RBracket:
		return true
	case keyword.Unknown:
		return canStartExpression(after)
	default:
		return !after.Keyword().IsBinaryOperator()
	}
}

// isConstructor reports whether the cursor sits on `this` immediately
// followed by a parameter list, as opposed to `this` used as an expression.
func (p *parser) isConstructor() bool {
	look := p.cursor.Comments(false)
	if look.Next().Keyword() != keyword.This {
		return false
	}
	return look.Peek().Keyword() == keyword.LParen
}

// isEnumDeclaration distinguishes `enum` introducing an enumeration (a
// name and/or a body, possibly with a `: base` clause) from `enum` used as
// a storage class on a manifest constant.
func (p *parser) isEnumDeclaration() bool {
	look := p.cursor.Comments(false)
	if look.Next().Keyword() != keyword.Enum {
		return false
	}
	switch look.Peek().Keyword() {
	case keyword.LBrace, keyword.Colon:
		return true
	}
	if look.Next().Kind() != token.Ident {
		return false
	}
	switch look.Peek().Keyword() {
	case keyword.LBrace, keyword.Colon:
		return true
	default:
		return false
	}
}
