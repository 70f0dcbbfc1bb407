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

// Cursor is an iterator over the tokens in a [Stream].
type Cursor struct {
	stream *Stream
	idx    int

	// Whether comment tokens are surfaced. When false, Peek and Next pass
	// over them silently.
	comments bool
}

// Clone returns an identical copy of this cursor, which can be advanced
// independently for speculative lookahead.
func (c *Cursor) Clone() *Cursor {
	clone := *c
	return &clone
}

// Comments returns a copy of this cursor at the same position that surfaces
// comment tokens if yield is true, and suppresses them otherwise.
func (c *Cursor) Comments(yield bool) *Cursor {
	clone := *c
	clone.comments = yield
	return &clone
}

// Done returns whether this cursor has yielded every token it will yield.
func (c *Cursor) Done() bool {
	return c.peekIdx() >= len(c.stream.tokens)
}

// Peek returns the next token without advancing.
//
// Returns [Zero] if the cursor is done.
func (c *Cursor) Peek() Token {
	idx := c.peekIdx()
	if idx >= len(c.stream.tokens) {
		return Zero
	}
	return c.stream.tokens[idx]
}

// Next returns the next token and advances past it.
//
// Returns [Zero] if the cursor is done.
func (c *Cursor) Next() Token {
	idx := c.peekIdx()
	if idx >= len(c.stream.tokens) {
		return Zero
	}
	c.idx = idx + 1
	return c.stream.tokens[idx]
}

// peekIdx returns the index of the next token this cursor will yield.
func (c *Cursor) peekIdx() int {
	idx := c.idx
	if !c.comments {
		for idx < len(c.stream.tokens) && c.stream.tokens[idx].kind.IsSkippable() {
			idx++
		}
	}
	return idx
}
