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

// Package token provides the token stream the formatter consumes: tokens,
// their kinds, and cursors over a stream.
package token

import (
	"fmt"

	"github.com/snazzy-d/sdfmt/source"
	"github.com/snazzy-d/sdfmt/token/keyword"
)

// Token is a single lexical element of a source file.
//
// Tokens are values; they are cheap to copy and compare. The zero value is
// the nil token, for which [Token.IsZero] reports true.
type Token struct {
	span    source.Span
	kind    Kind
	keyword keyword.Keyword
}

// Zero is the zero value of [Token].
var Zero Token

// Kind returns this token's kind.
func (t Token) Kind() Kind {
	return t.kind
}

// Span returns this token's source span.
func (t Token) Span() source.Span {
	return t.span
}

// Text returns this token's source text.
func (t Token) Text() string {
	if t.span.IsZero() {
		return ""
	}
	return t.span.Text()
}

// Keyword returns the grammar particle this token spells, or
// [keyword.Unknown] if it spells none.
func (t Token) Keyword() keyword.Keyword {
	return t.keyword
}

// IsZero returns whether this is the zero token.
func (t Token) IsZero() bool {
	return t == Zero
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return fmt.Sprintf("%v(%q)", t.kind, t.Text())
}
