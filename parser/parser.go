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

// Package parser turns source text into formatter output.
//
// It contains two halves: a lexer ([Lex]) that splits a file into tokens
// without ever failing, and a tolerant recognizer ([Parse]) that walks the
// token stream and renders it into chunks. The recognizer knows the shapes
// of declarations, statements, and expressions well enough to place
// canonical whitespace around them; anything it does not recognize passes
// through byte-for-byte (see skip.go). It never validates and never
// rejects.
package parser

import (
	"fmt"
	"strings"

	"github.com/snazzy-d/sdfmt/chunk"
	"github.com/snazzy-d/sdfmt/source"
	"github.com/snazzy-d/sdfmt/token"
	"github.com/snazzy-d/sdfmt/token/keyword"
)

// Parse recognizes the token stream and renders it into a chunk sequence.
//
// Parsing is total: every token of the stream contributes to the output,
// either reformatted or as part of a verbatim skipped region. The returned
// chunks satisfy the builder's invariants: no trailing whitespace, spans
// closed, indentation balanced.
//
// The stream must carry the sentinels [Lex] produces: it must start at
// Begin, and recognition must run out exactly at End. Anything else is a
// bug, not input, and panics.
func Parse(stream *token.Stream) []chunk.Chunk {
	p := &parser{
		file:   stream.File(),
		cursor: stream.Cursor(),
	}
	if p.cursor.Peek().Kind() != token.Begin {
		panic("sdfmt/parser: stream does not start at the Begin sentinel; this is a bug in sdfmt")
	}
	p.advance()
	p.parseElements(keyword.Unknown)
	if p.cursor.Peek().Kind() != token.End {
		panic("sdfmt/parser: recognition stopped before the End sentinel; this is a bug in sdfmt")
	}
	return p.b.Build()
}

// mode is the syntactic context a structural element is recognized in. It
// decides what happens after the element's trailing separator: a line break
// in declaration and statement context, a space in parameter context, where
// separators are list syntax rather than terminators.
type mode byte

const (
	modeDeclaration mode = iota
	modeStatement
	modeParameter
)

func (m mode) String() string {
	switch m {
	case modeDeclaration:
		return "declaration"
	case modeStatement:
		return "statement"
	case modeParameter:
		return "parameter"
	default:
		return fmt.Sprintf("mode(%d)", byte(m))
	}
}

type parser struct {
	file   *source.File
	cursor *token.Cursor
	b      chunk.Builder
	mode   mode

	// prev is the most recently consumed token, comments included. Source
	// whitespace is mirrored out of the gap between prev and the next token.
	prev token.Token

	// skipped is the pending verbatim region; see skip.go.
	skipped source.Span

	count int
}

// advance consumes the cursor's front token without writing it.
func (p *parser) advance() token.Token {
	tok := p.cursor.Next()
	if !tok.IsZero() {
		p.prev = tok
		p.count++
	}
	return tok
}

// nextToken consumes the front token, writes its text, and drains any
// comments that follow it. Recognizers call this for every token they emit,
// so the cursor never rests on a comment between recognition steps.
func (p *parser) nextToken() token.Token {
	tok := p.advance()
	p.b.Write(tok.Text())
	p.handleComments()
	return tok
}

// setMode switches the recognition mode, returning a function that restores
// the previous one.
func (p *parser) setMode(m mode) func() {
	prev := p.mode
	p.mode = m
	return func() { p.mode = prev }
}

// parseElements recognizes structural elements until the closer keyword,
// the End sentinel, or the end of the stream, whichever comes first.
// Unrecognizable tokens accumulate in the skip region and flush verbatim
// once recognition resumes.
func (p *parser) parseElements(closer keyword.Keyword) {
	for {
		p.handleComments()
		front := p.cursor.Peek()
		if front.IsZero() || front.Kind() == token.End {
			break
		}
		if closer != keyword.Unknown && front.Keyword() == closer {
			break
		}
		before := p.count
		if !p.parseStructuralElement() {
			p.skip()
		}
		if p.count == before {
			panic(fmt.Sprintf("sdfmt/parser: failed to make progress at offset %d; this is a bug in sdfmt", front.Span().Start))
		}
	}
	p.flushSkipped()
}

// handleComments copies comment tokens at the cursor through to the output
// verbatim. Whitespace around each comment mirrors the source, and a line
// comment always forces a break after itself, since anything placed after
// it on the same line would change meaning.
func (p *parser) handleComments() {
	for {
		c := p.cursor.Peek()
		if c.Kind() != token.Comment {
			return
		}
		p.flushSkipped()
		p.mirrorWhitespace(p.prev, c)
		p.advance()
		p.b.Write(c.Text())
		if strings.HasPrefix(c.Text(), "//") {
			p.b.Newline(1)
		}
		p.mirrorWhitespace(c, p.cursor.Peek())
	}
}

// mirrorWhitespace schedules whitespace reproducing what separates prev and
// next in the source: a blank line when two or more newlines did, a single
// break for one newline, a space for any other separation, and nothing when
// the tokens touch.
func (p *parser) mirrorWhitespace(prev, next token.Token) {
	if prev.IsZero() || next.IsZero() {
		return
	}
	if prev.Kind() == token.Begin || next.Kind() == token.End {
		return
	}
	gap := p.file.Text()[prev.Span().End:next.Span().Start]
	switch strings.Count(gap, "\n") {
	case 0:
		if len(gap) > 0 {
			p.b.Space()
		}
	case 1:
		p.b.Newline(1)
	default:
		p.b.Newline(2)
	}
}

// mirrorNext mirrors the source whitespace between the last consumed token
// and the cursor's front token.
func (p *parser) mirrorNext() {
	p.mirrorWhitespace(p.prev, p.cursor.Peek())
}

// sameLine reports whether no newline separates prev from next in the
// source.
func (p *parser) sameLine(prev, next token.Token) bool {
	return !strings.Contains(p.file.Text()[prev.Span().End:next.Span().Start], "\n")
}

// spaceNext schedules a single space if anything at all separates the last
// consumed token from the cursor's front token. Parameter context uses this
// instead of full mirroring: a newline in a list is the layout pass's call,
// not the source's.
func (p *parser) spaceNext() {
	prev, next := p.prev, p.cursor.Peek()
	if prev.IsZero() || next.IsZero() {
		return
	}
	if prev.Kind() == token.Begin || next.Kind() == token.End {
		return
	}
	if next.Span().Start > prev.Span().End {
		p.b.Space()
	}
}

// afterLineComment reports whether the last consumed token was a line
// comment. The break after a line comment is load-bearing; nothing may be
// glued past it.
func (p *parser) afterLineComment() bool {
	return p.prev.Kind() == token.Comment && strings.HasPrefix(p.prev.Text(), "//")
}

// glueTrailer cancels the break after a braced body so that a trailing
// keyword, else or while or catch, shares the closing brace's line.
func (p *parser) glueTrailer(braced bool) {
	if braced && !p.afterLineComment() {
		p.b.ClearSplit()
		p.b.Space()
	}
}
