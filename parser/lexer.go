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
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/snazzy-d/sdfmt/source"
	"github.com/snazzy-d/sdfmt/token"
	"github.com/snazzy-d/sdfmt/token/keyword"
)

// Lex performs lexical analysis on file and returns the resulting stream.
//
// Lexing is total: it cannot fail, and every byte of the file lands either
// in a token or in the whitespace gap between two tokens. Text that fits no
// token class, including bytes that are not UTF-8, becomes an
// [token.Unrecognized] token and is carried through to the output verbatim.
func Lex(file *source.File) *token.Stream {
	stream := token.NewStream(file)
	l := &lexer{file: file, stream: stream}
	l.lex()
	return stream
}

type lexer struct {
	file   *source.File
	stream *token.Stream

	cursor int
}

func (l *lexer) lex() {
	l.push(l.cursor, token.Begin, keyword.Unknown)

	prev := -1
	for !l.done() {
		if l.cursor == prev {
			panic(fmt.Sprintf("sdfmt/parser: lexer failed to make progress at offset %d; this is a bug in sdfmt", l.cursor))
		}
		prev = l.cursor

		start := l.cursor
		r := l.pop()
		if r == -1 {
			// Not UTF-8. Pass the byte through.
			l.cursor++
			l.push(start, token.Unrecognized, keyword.Unknown)
			continue
		}

		switch {
		case unicode.In(r, unicode.Pattern_White_Space):
			// Whitespace is not a token; it lives in the gap between the
			// surrounding tokens.
			l.takeWhile(func(r rune) bool {
				return unicode.In(r, unicode.Pattern_White_Space)
			})

		case r == '/' && l.peek() == '/':
			l.cursor++ // Skip the second /.
			l.seekLine()
			l.push(start, token.Comment, keyword.Unknown)

		case r == '/' && l.peek() == '*':
			l.cursor++ // Skip the *.
			if _, ok := l.seekInclusive("*/"); !ok {
				l.seekEOF()
			}
			l.push(start, token.Comment, keyword.Unknown)

		case r == '/' && l.peek() == '+':
			l.cursor++ // Skip the +.
			l.seekNested()
			l.push(start, token.Comment, keyword.Unknown)

		case r == '"', r == '\'', r == '`':
			l.cursor = start
			l.lexString()

		case r == 'r' && l.peek() == '"':
			l.cursor = start
			l.lexString()

		case r == '#':
			// A #line directive (or a shebang line). The whole line passes
			// through untouched.
			l.seekLine()
			l.push(start, token.Unrecognized, keyword.Unknown)

		case r == '.' && unicode.IsDigit(l.peek()):
			l.cursor = start
			l.lexNumber()

		case unicode.IsDigit(r):
			l.cursor = start
			l.lexNumber()

		case r == '_' || unicode.IsLetter(r):
			l.cursor = start
			text := l.takeWhile(func(r rune) bool {
				return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
			})
			l.push(start, token.Ident, keyword.Lookup(text))

		default:
			l.cursor = start
			if kw, n := keyword.Prefix(l.rest()); n > 0 {
				l.cursor += n
				l.push(start, token.Punct, kw)
				continue
			}

			// Consume one grapheme cluster and pass it through.
			g, _, _, _ := uniseg.FirstGraphemeClusterInString(l.rest(), -1)
			l.cursor += len(g)
			l.push(start, token.Unrecognized, keyword.Unknown)
		}
	}

	l.push(l.cursor, token.End, keyword.Unknown)
}

// lexString lexes a string or character literal starting at the cursor.
//
// Backquoted and r-prefixed strings are wysiwyg: a backslash in them is
// just a backslash. Everything else honors backslash escapes, though only
// far enough to know that an escaped quote does not end the literal; the
// text is never unescaped. An unterminated literal runs to the end of the
// file, and a trailing c, w, or d suffix joins the token.
func (l *lexer) lexString() {
	start := l.cursor
	q := l.pop()
	raw := q == '`'
	if q == 'r' {
		raw = true
		q = l.pop()
	}

	for !l.done() {
		r := l.pop()
		if r == -1 {
			l.cursor++
			continue
		}
		if r == q {
			break
		}
		if !raw && r == '\\' {
			_ = l.pop()
		}
	}

	if r := l.peek(); r == 'c' || r == 'w' || r == 'd' {
		_ = l.pop()
	}
	l.push(start, token.String, keyword.Unknown)
}

// lexNumber lexes a numeric literal starting at the cursor.
//
// The scan is permissive: digits, underscores, letters, and decimal points
// are all taken, which keeps hex digits, exponents, and suffixes like UL or
// f inside a single token without enumerating the valid combinations. Two
// exceptions keep surrounding syntax intact: a dot is only taken when a
// digit follows it, so `0..10` and `4.max` split where they should, and an
// exponent sign is only taken directly after the exponent letter of the
// literal's base.
func (l *lexer) lexNumber() {
	start := l.cursor
	rest := l.rest()
	hex := strings.HasPrefix(rest, "0x") || strings.HasPrefix(rest, "0X")

more:
	r := l.peek()
	switch {
	case (!hex && (r == 'e' || r == 'E')) || (hex && (r == 'p' || r == 'P')):
		_ = l.pop()
		if r := l.peek(); r == '+' || r == '-' {
			_ = l.pop()
		}
		goto more

	case r == '.':
		if next := decodeRune(l.rest()[1:]); !unicode.IsDigit(next) {
			break
		}
		_ = l.pop()
		goto more

	case unicode.IsDigit(r) || unicode.IsLetter(r) || r == '_':
		_ = l.pop()
		goto more
	}

	l.push(start, token.Number, keyword.Unknown)
}

// done returns whether there are no more runes to lex.
func (l *lexer) done() bool {
	return l.rest() == ""
}

// rest returns the unlexed text.
func (l *lexer) rest() string {
	return l.file.Text()[l.cursor:]
}

// peek returns the next rune without consuming it, or -1 at the end of the
// file or on bytes that are not UTF-8.
func (l *lexer) peek() rune {
	return decodeRune(l.rest())
}

// pop consumes the next rune and returns it. Returns -1, consuming nothing,
// at the end of the file or on bytes that are not UTF-8.
func (l *lexer) pop() rune {
	r := l.peek()
	if r != -1 {
		l.cursor += utf8.RuneLen(r)
	}
	return r
}

// takeWhile consumes runes while they match f and returns them.
func (l *lexer) takeWhile(f func(rune) bool) string {
	start := l.cursor
	for !l.done() {
		r := l.peek()
		if r == -1 || !f(r) {
			break
		}
		_ = l.pop()
	}
	return l.file.Text()[start:l.cursor]
}

// seekInclusive advances past the next occurrence of needle and returns the
// text up to and including it. If needle never occurs the cursor stays put.
func (l *lexer) seekInclusive(needle string) (string, bool) {
	if idx := strings.Index(l.rest(), needle); idx != -1 {
		prefix := l.rest()[:idx+len(needle)]
		l.cursor += idx + len(needle)
		return prefix, true
	}
	return "", false
}

// seekLine advances to the end of the current line, leaving the newline
// itself unconsumed so it stays in the whitespace gap.
func (l *lexer) seekLine() {
	if idx := strings.Index(l.rest(), "\n"); idx != -1 {
		l.cursor += idx
		return
	}
	l.seekEOF()
}

// seekEOF advances to the end of the file and returns the text consumed.
func (l *lexer) seekEOF() string {
	rest := l.rest()
	l.cursor += len(rest)
	return rest
}

// seekNested advances past the end of a nesting comment whose opening /+
// was just consumed. An unterminated comment runs to the end of the file.
func (l *lexer) seekNested() {
	depth := 1
	for depth > 0 && !l.done() {
		open := strings.Index(l.rest(), "/+")
		term := strings.Index(l.rest(), "+/")
		switch {
		case term == -1:
			l.seekEOF()
		case open != -1 && open < term:
			l.cursor += open + len("/+")
			depth++
		default:
			l.cursor += term + len("+/")
			depth--
		}
	}
}

// push mints the token spanning from start to the cursor.
func (l *lexer) push(start int, kind token.Kind, kw keyword.Keyword) token.Token {
	return l.stream.Push(start, l.cursor, kind, kw)
}

// decodeRune is a wrapper around [utf8.DecodeRuneInString] that returns -1
// on failure instead of RuneError, which is a valid rune.
func decodeRune(s string) rune {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n < 2 {
		return -1
	}
	return r
}
