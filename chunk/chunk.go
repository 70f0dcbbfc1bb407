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

package chunk

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// Kind distinguishes the two chunk variants.
type Kind byte

const (
	// KindText is a chunk carrying a run of source text.
	KindText Kind = iota
	// KindBlock is a chunk grouping a nested sequence of chunks that is laid
	// out as a unit.
	KindBlock
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBlock:
		return "block"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

// Chunk is one indivisible piece of formatter output: a run of text (or a
// block of child chunks) plus everything a layout pass needs to place it.
//
// The whitespace described by [Chunk.Split] precedes the chunk. Chunk text
// never ends in whitespace; trailing whitespace is reinterpreted as split
// information when the chunk is cut (see [Builder.Split]).
type Chunk struct {
	text     string
	children []Chunk
	span     *Span
	length   int
	indent   int
	kind     Kind
	split    SplitKind
}

// NewBlock returns a block chunk wrapping children, preceded by the given
// whitespace and indented by indent when it opens a new line.
func NewBlock(split SplitKind, indent int, children []Chunk) Chunk {
	var length int
	for _, child := range children {
		length += child.length
		if child.split == SplitSpace {
			length++
		}
	}
	return Chunk{
		children: children,
		length:   length,
		indent:   indent,
		kind:     KindBlock,
		split:    split,
	}
}

// Kind returns which variant this chunk is.
func (c Chunk) Kind() Kind {
	return c.kind
}

// Text returns the chunk's text. It is empty for block chunks.
func (c Chunk) Text() string {
	return c.text
}

// Children returns the nested chunks of a block chunk, or nil for a text
// chunk.
func (c Chunk) Children() []Chunk {
	return c.children
}

// Split returns the whitespace that must precede this chunk.
func (c Chunk) Split() SplitKind {
	return c.split
}

// Indent returns the indentation level the chunk starts at when it opens a
// new line. It has no effect when the chunk continues a line.
func (c Chunk) Indent() int {
	return c.indent
}

// Length returns the chunk's width in grapheme clusters, the number of
// columns a terminal is expected to advance when printing it. For block
// chunks it is the width of the children laid out on a single line.
func (c Chunk) Length() int {
	return c.length
}

// Span returns the innermost cost group the chunk was written under, or nil
// if it was written outside any group.
func (c Chunk) Span() *Span {
	return c.span
}

// IsEmpty reports whether the chunk carries no text and no children.
func (c Chunk) IsEmpty() bool {
	return c.text == "" && len(c.children) == 0
}

// EndsBreakableLine reports whether a line may end at the boundary this
// chunk opens: the chunk starts a new line and belongs to no cost group.
func (c Chunk) EndsBreakableLine() bool {
	return c.span == nil && c.split >= SplitNewline
}

// String implements [fmt.Stringer]. The result is for debugging only.
func (c Chunk) String() string {
	if c.kind == KindBlock {
		return fmt.Sprintf("%v/%d block(%d)", c.split, c.indent, len(c.children))
	}
	return fmt.Sprintf("%v/%d %q", c.split, c.indent, c.text)
}

func measure(text string) int {
	return uniseg.GraphemeClusterCount(text)
}
