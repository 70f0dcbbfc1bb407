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
	"bytes"

	"github.com/snazzy-d/sdfmt/internal/arena"
	"github.com/snazzy-d/sdfmt/internal/ext/slicesx"
)

// Builder assembles a chunk sequence.
//
// Text written to a builder accumulates into an in-progress chunk, which is
// cut at the next [Builder.Split] (or the next forced whitespace) and
// appended to the output. Whitespace requested through [Builder.Space] and
// [Builder.Newline] is not emitted immediately: it is held pending, merged
// with any further requests via [Merge], and resolved when the next text
// arrives. This is what lets whitespace decisions made at a distance, such
// as the blank line after a closing brace, be strengthened or cancelled by
// whatever comes next.
//
// The zero value is an empty builder ready for use.
type Builder struct {
	chunks []Chunk
	spans  arena.Arena[Span]
	open   []*Span

	// The in-progress chunk. span is bound when the first byte of text
	// arrives and cleared again every time the chunk is cut.
	text  []byte
	split SplitKind
	span  *Span

	pending SplitKind
	indent  int
}

// Write appends text to the in-progress chunk, first resolving any pending
// whitespace.
func (b *Builder) Write(text string) {
	b.emitPendingWhitespace()
	if text == "" {
		return
	}
	if len(b.text) == 0 {
		b.span = b.currentSpan()
	}
	b.text = append(b.text, text...)
}

// Space requests a single space between what came before and whatever is
// written next. It never weakens a stronger pending requirement.
func (b *Builder) Space() {
	b.pending = Merge(b.pending, SplitSpace)
}

// Newline requests count line breaks before whatever is written next.
// Anything beyond two breaks is treated as two; a count of zero or less is
// ignored. Like [Builder.Space], the request only ever strengthens what is
// already pending.
func (b *Builder) Newline(count int) {
	switch {
	case count <= 0:
	case count == 1:
		b.pending = Merge(b.pending, SplitNewline)
	default:
		b.pending = Merge(b.pending, SplitDouble)
	}
}

// ClearSplit discards pending whitespace. Whitespace already resolved into
// the output is untouched; only the not-yet-emitted requirement is dropped.
func (b *Builder) ClearSplit() {
	b.pending = SplitNone
}

// Split cuts the in-progress chunk, so that whatever is written next starts
// a new one.
//
// Trailing whitespace is stripped from the chunk's text and reinterpreted
// as a pending whitespace requirement, so chunk text never ends with
// whitespace. If nothing but whitespace accumulated, no chunk is produced.
// The chunk snapshots the current indentation level.
func (b *Builder) Split() {
	trimmed := bytes.TrimRight(b.text, " \t\v\f\r\n")
	if suffix := b.text[len(trimmed):]; len(suffix) > 0 {
		if n := bytes.Count(suffix, []byte{'\n'}); n > 0 {
			b.Newline(n)
		} else {
			b.Space()
		}
	}
	if len(trimmed) == 0 {
		b.text = b.text[:0]
		b.span = nil
		return
	}

	text := string(trimmed)
	b.chunks = append(b.chunks, Chunk{
		text:   text,
		span:   b.span,
		length: measure(text),
		indent: b.indent,
		kind:   KindText,
		split:  b.split,
	})
	b.text = b.text[:0]
	b.split = SplitNone
	b.span = nil
}

// emitPendingWhitespace resolves the pending whitespace requirement.
//
// A pending space lands as a literal space when there is text to attach it
// to. Anything else, a pending break or a space with no text before it,
// becomes the split of the next chunk: the in-progress chunk is cut and the
// requirement merges into the new chunk's split.
func (b *Builder) emitPendingWhitespace() {
	intent := b.pending
	if intent == SplitNone {
		return
	}
	b.pending = SplitNone
	if intent == SplitSpace && len(b.text) > 0 {
		b.text = append(b.text, ' ')
		return
	}
	b.Split()
	b.split = Merge(b.split, intent)
}

// Indent raises the indentation level by level and returns a function that
// restores the previous level. Chunks snapshot the level in effect when
// they are cut, so content that should sit at the deeper level must be cut
// before the restore runs.
func (b *Builder) Indent(level int) func() {
	prev := b.indent
	b.indent = max(0, b.indent+level)
	return func() { b.indent = prev }
}

// Unindent lowers the indentation level by level, stopping at zero, and
// returns a function that restores the previous level.
func (b *Builder) Unindent(level int) func() {
	return b.Indent(-level)
}

// Span opens a new cost group, nested in the innermost group already open.
// Text written while the group is open is attributed to it. The returned
// function closes the group; groups must close in the reverse order they
// opened, and closing out of order panics.
//
// Pending whitespace resolves before the group opens, so a requested break
// lands outside it.
func (b *Builder) Span(cost, indent int) func() {
	b.emitPendingWhitespace()
	span := b.spans.New(Span{
		parent: b.currentSpan(),
		cost:   cost,
		indent: indent,
	})
	b.open = append(b.open, span)
	return func() {
		top, ok := slicesx.Last(b.open)
		if !ok || top != span {
			panic("sdfmt/chunk: span closed out of order; this is a bug in sdfmt")
		}
		b.open = b.open[:len(b.open)-1]
	}
}

// SpliceSpan retroactively pulls already-written output into the innermost
// open group.
//
// Walking the output backwards from the in-progress chunk, chunks written
// directly under the group's parent are reattributed to the group. The walk
// stops at the first chunk belonging to anything else; if that chunk's
// group is nested somewhere under the parent, its outermost enclosing group
// below the parent is reparented into the open group wholesale. SpliceSpan
// reports whether such a reparenting happened.
//
// This is how constructs discovered after their leading tokens were already
// written, a call after its callee, get to claim those tokens: open the
// group when the construct becomes apparent, then splice.
func (b *Builder) SpliceSpan() bool {
	span := b.currentSpan()
	if span == nil {
		panic("sdfmt/chunk: SpliceSpan with no open span; this is a bug in sdfmt")
	}
	parent := span.parent

	candidate, stopped := b.spliceCurrent(span, parent)
	if !stopped {
		for i := len(b.chunks) - 1; i >= 0; i-- {
			c := &b.chunks[i]
			if c.span == parent {
				c.span = span
				continue
			}
			candidate = c.span
			break
		}
	}

	for candidate != nil && candidate.parent != parent {
		candidate = candidate.parent
	}
	if candidate == nil || candidate == span {
		return false
	}
	candidate.parent = span
	return true
}

// spliceCurrent applies the splice walk to the in-progress chunk. An empty
// chunk is transparent; a chunk under the shared parent is reattributed and
// the walk continues into the finished output. Otherwise the walk stops
// there and the chunk's span is the reparenting candidate.
func (b *Builder) spliceCurrent(span, parent *Span) (candidate *Span, stopped bool) {
	if len(b.text) == 0 {
		return nil, false
	}
	if b.span == parent {
		b.span = span
		return nil, false
	}
	return b.span, true
}

// EndsBreakableLine reports whether the output so far already ends at a
// line break that is not inside any open group: no text is in progress and
// a newline is either pending or recorded on the empty in-progress chunk.
// Output with no chunks at all counts, since it begins at a line start.
// Verbatim passthrough uses this to avoid stacking an extra break on top of
// one that is already there.
func (b *Builder) EndsBreakableLine() bool {
	if len(b.open) > 0 || len(b.text) > 0 {
		return false
	}
	if len(b.chunks) == 0 {
		return true
	}
	return Merge(b.split, b.pending) >= SplitNewline
}

// Build cuts whatever is still in progress and returns the finished chunk
// sequence. A pending whitespace requirement with no text after it is
// dropped; trailing whitespace never survives into the output. All groups
// must be closed, and all indentation restored, before Build is called.
func (b *Builder) Build() []Chunk {
	if len(b.open) > 0 {
		panic("sdfmt/chunk: Build with an open span; this is a bug in sdfmt")
	}
	b.Split()
	return b.chunks
}

func (b *Builder) currentSpan() *Span {
	top, _ := slicesx.Last(b.open)
	return top
}
