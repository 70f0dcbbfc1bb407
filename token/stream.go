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

package token

import (
	"fmt"
	"iter"

	"github.com/snazzy-d/sdfmt/source"
	"github.com/snazzy-d/sdfmt/token/keyword"
)

// Stream is the token stream for a single source file.
//
// Tokens in a stream are ordered and non-overlapping, but need not tile the
// file: whitespace survives only in the gaps between adjacent token spans.
// A complete stream starts with a [Begin] token and ends with an [End]
// token.
type Stream struct {
	file   *source.File
	tokens []Token
}

// NewStream constructs an empty stream over the given file.
func NewStream(file *source.File) *Stream {
	return &Stream{file: file}
}

// File returns the file this stream is over.
func (s *Stream) File() *source.File {
	return s.file
}

// Len returns the number of tokens in this stream.
func (s *Stream) Len() int {
	return len(s.tokens)
}

// Push appends a token spanning text[start:end] to this stream.
//
// Tokens must be pushed in source order; pushing a token that starts before
// the end of the previous token panics.
func (s *Stream) Push(start, end int, kind Kind, kw keyword.Keyword) Token {
	if last := len(s.tokens) - 1; last >= 0 && start < s.tokens[last].span.End {
		panic(fmt.Sprintf(
			"sdfmt/token: pushed out-of-order token at offset %d; this is a bug in sdfmt", start))
	}

	tok := Token{span: s.file.Span(start, end), kind: kind, keyword: kw}
	s.tokens = append(s.tokens, tok)
	return tok
}

// All returns an iterator over all tokens in this stream, in source order.
func (s *Stream) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for _, tok := range s.tokens {
			if !yield(tok) {
				return
			}
		}
	}
}

// Cursor returns a new cursor positioned at the start of this stream.
//
// The returned cursor surfaces comment tokens; see [Cursor.Comments].
func (s *Stream) Cursor() *Cursor {
	return &Cursor{stream: s, comments: true}
}
