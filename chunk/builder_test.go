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

package chunk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snazzy-d/sdfmt/chunk"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	kinds := []chunk.SplitKind{
		chunk.SplitNone,
		chunk.SplitSpace,
		chunk.SplitNewline,
		chunk.SplitDouble,
	}
	for i, a := range kinds {
		for j, b := range kinds {
			want := a
			if j > i {
				want = b
			}
			assert.Equal(t, want, chunk.Merge(a, b), "Merge(%v, %v)", a, b)
			assert.Equal(t, want, chunk.Merge(b, a), "Merge(%v, %v)", b, a)
		}
	}
}

func TestBuilderText(t *testing.T) {
	t.Parallel()

	t.Run("adjacent writes glue", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("foo")
		b.Write("bar")

		chunks := b.Build()
		require.Len(t, chunks, 1)
		assert.Equal(t, "foobar", chunks[0].Text())
		assert.Equal(t, chunk.SplitNone, chunks[0].Split())
		assert.Equal(t, chunk.KindText, chunks[0].Kind())
	})

	t.Run("space lands inside text", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("foo")
		b.Space()
		b.Write("bar")

		chunks := b.Build()
		require.Len(t, chunks, 1)
		assert.Equal(t, "foo bar", chunks[0].Text())
	})

	t.Run("space at chunk start becomes a split", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("foo")
		b.Split()
		b.Space()
		b.Write("bar")

		chunks := b.Build()
		require.Len(t, chunks, 2)
		assert.Equal(t, "foo", chunks[0].Text())
		assert.Equal(t, "bar", chunks[1].Text())
		assert.Equal(t, chunk.SplitSpace, chunks[1].Split())
	})

	t.Run("newline cuts the chunk", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("foo")
		b.Newline(1)
		b.Write("bar")

		chunks := b.Build()
		require.Len(t, chunks, 2)
		assert.Equal(t, chunk.SplitNone, chunks[0].Split())
		assert.Equal(t, chunk.SplitNewline, chunks[1].Split())
	})
}

func TestBuilderCoalescing(t *testing.T) {
	t.Parallel()

	t.Run("newline beats space", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("a")
		b.Space()
		b.Newline(1)
		b.Write("b")

		chunks := b.Build()
		require.Len(t, chunks, 2)
		assert.Equal(t, chunk.SplitNewline, chunks[1].Split())
		assert.Equal(t, "b", chunks[1].Text())
	})

	t.Run("space never weakens a newline", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("a")
		b.Newline(1)
		b.Space()
		b.Write("b")

		chunks := b.Build()
		require.Len(t, chunks, 2)
		assert.Equal(t, chunk.SplitNewline, chunks[1].Split())
	})

	t.Run("repeated newlines saturate at double", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("a")
		b.Newline(1)
		b.Newline(5)
		b.Newline(1)
		b.Write("b")

		chunks := b.Build()
		require.Len(t, chunks, 2)
		assert.Equal(t, chunk.SplitDouble, chunks[1].Split())
	})

	t.Run("zero count is ignored", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("a")
		b.Newline(0)
		b.Write("b")

		chunks := b.Build()
		require.Len(t, chunks, 1)
		assert.Equal(t, "ab", chunks[0].Text())
	})

	t.Run("clear drops only pending whitespace", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("x")
		b.Newline(2)
		b.ClearSplit()
		b.Write("y")

		chunks := b.Build()
		require.Len(t, chunks, 1)
		assert.Equal(t, "xy", chunks[0].Text())
	})

	t.Run("clear cannot undo a resolved split", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("x")
		b.Newline(1)
		b.Write("y")
		b.ClearSplit()
		b.Write("z")

		chunks := b.Build()
		require.Len(t, chunks, 2)
		assert.Equal(t, chunk.SplitNewline, chunks[1].Split())
		assert.Equal(t, "yz", chunks[1].Text())
	})
}

func TestBuilderSplit(t *testing.T) {
	t.Parallel()

	t.Run("trailing space is reinterpreted", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("foo ")
		b.Split()
		b.Write("bar")

		chunks := b.Build()
		require.Len(t, chunks, 2)
		assert.Equal(t, "foo", chunks[0].Text())
		assert.Equal(t, chunk.SplitSpace, chunks[1].Split())
	})

	t.Run("trailing newline is reinterpreted", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("foo\n")
		b.Split()
		b.Write("bar")

		chunks := b.Build()
		require.Len(t, chunks, 2)
		assert.Equal(t, "foo", chunks[0].Text())
		assert.Equal(t, chunk.SplitNewline, chunks[1].Split())
	})

	t.Run("blank line survives reinterpretation", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("foo\n\n  ")
		b.Split()
		b.Write("bar")

		chunks := b.Build()
		require.Len(t, chunks, 2)
		assert.Equal(t, chunk.SplitDouble, chunks[1].Split())
	})

	t.Run("whitespace-only chunk is dropped", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("   ")
		b.Split()
		b.Write("bar")

		chunks := b.Build()
		require.Len(t, chunks, 1)
		assert.Equal(t, "bar", chunks[0].Text())
		assert.Equal(t, chunk.SplitSpace, chunks[0].Split())
	})

	t.Run("split is idempotent", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("foo")
		b.Split()
		b.Split()
		b.Split()

		chunks := b.Build()
		require.Len(t, chunks, 1)
	})
}

func TestBuilderIndent(t *testing.T) {
	t.Parallel()

	t.Run("chunks snapshot the level at the cut", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("a")
		b.Split()
		done := b.Indent(1)
		b.Newline(1)
		b.Write("b")
		b.Split()
		done()
		b.Newline(1)
		b.Write("c")

		chunks := b.Build()
		require.Len(t, chunks, 3)
		assert.Equal(t, 0, chunks[0].Indent())
		assert.Equal(t, 1, chunks[1].Indent())
		assert.Equal(t, 0, chunks[2].Indent())
	})

	t.Run("unindent clamps at zero", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		outer := b.Indent(1)
		inner := b.Unindent(3)
		b.Write("a")
		b.Split()
		inner()
		b.Write("b")
		b.Split()
		outer()
		b.Write("c")

		chunks := b.Build()
		require.Len(t, chunks, 3)
		assert.Equal(t, 0, chunks[0].Indent())
		assert.Equal(t, 1, chunks[1].Indent())
		assert.Equal(t, 0, chunks[2].Indent())
	})
}

func TestBuilderSpans(t *testing.T) {
	t.Parallel()

	t.Run("chunks bind the innermost open span", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("before")
		b.Split()
		outer := b.Span(1, 1)
		b.Write("a")
		b.Split()
		inner := b.Span(3, 2)
		b.Write("b")
		b.Split()
		inner()
		b.Write("c")
		b.Split()
		outer()
		b.Write("after")

		chunks := b.Build()
		require.Len(t, chunks, 5)
		assert.Nil(t, chunks[0].Span())
		assert.Nil(t, chunks[4].Span())

		a, bb, c := chunks[1].Span(), chunks[2].Span(), chunks[3].Span()
		require.NotNil(t, a)
		require.NotNil(t, bb)
		assert.Same(t, a, c)
		assert.Same(t, a, bb.Parent())
		assert.Nil(t, a.Parent())
		assert.Equal(t, 1, a.Cost())
		assert.Equal(t, 1, a.Indent())
		assert.Equal(t, 3, bb.Cost())
		assert.Equal(t, 2, bb.Indent())
	})

	t.Run("span binds at first text, not at open", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("head")
		done := b.Span(1, 1)
		b.Write("tail")
		b.Split()
		done()

		// "head" was already in progress when the span opened, so the whole
		// chunk stays attributed to where its first byte was written.
		chunks := b.Build()
		require.Len(t, chunks, 1)
		assert.Equal(t, "headtail", chunks[0].Text())
		assert.Nil(t, chunks[0].Span())
	})

	t.Run("closing out of order panics", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		outer := b.Span(1, 1)
		inner := b.Span(1, 1)
		assert.Panics(t, func() { outer() })
		inner()
	})

	t.Run("build with an open span panics", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		_ = b.Span(1, 1)
		b.Write("x")
		assert.Panics(t, func() { b.Build() })
	})
}

func TestBuilderSplice(t *testing.T) {
	t.Parallel()

	t.Run("absorbs text written under the parent", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		stmt := b.Span(1, 1)
		b.Write("foo(")
		call := b.Span(1, 1)
		reparented := b.SpliceSpan()
		b.Split()
		b.Write("a")
		b.Split()
		call()
		b.Split()
		stmt()

		assert.False(t, reparented)
		chunks := b.Build()
		require.Len(t, chunks, 2)
		assert.Same(t, chunks[1].Span(), chunks[0].Span())
		assert.NotNil(t, chunks[0].Span().Parent())
	})

	t.Run("stops at output belonging to another statement", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		first := b.Span(1, 1)
		b.Write("x")
		b.Split()
		first()

		second := b.Span(1, 1)
		b.Write("foo(")
		call := b.Span(1, 1)
		b.SpliceSpan()
		b.Split()
		call()
		second()

		chunks := b.Build()
		require.Len(t, chunks, 2)
		assert.NotSame(t, chunks[1].Span(), chunks[0].Span())
		assert.Nil(t, chunks[0].Span().Parent())
	})

	t.Run("reparents a finished sibling group", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		stmt := b.Span(1, 1)
		lhs := b.Span(2, 1)
		b.Write("x")
		b.Split()
		lhs()

		wrap := b.Span(3, 1)
		reparented := b.SpliceSpan()
		b.Write("y")
		b.Split()
		wrap()
		stmt()

		assert.True(t, reparented)
		chunks := b.Build()
		require.Len(t, chunks, 2)
		assert.Same(t, chunks[1].Span(), chunks[0].Span().Parent())
	})

	t.Run("repeated splice does not double-reparent", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		stmt := b.Span(1, 1)
		lhs := b.Span(2, 1)
		b.Write("x")
		b.Split()
		lhs()

		wrap := b.Span(3, 1)
		assert.True(t, b.SpliceSpan())
		assert.False(t, b.SpliceSpan())
		wrap()
		stmt()
	})

	t.Run("with no open span panics", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		assert.Panics(t, func() { b.SpliceSpan() })
	})
}

func TestBuilderEndsBreakableLine(t *testing.T) {
	t.Parallel()

	var b chunk.Builder
	assert.True(t, b.EndsBreakableLine(), "empty output begins at a line start")

	b.Write("x")
	assert.False(t, b.EndsBreakableLine())

	b.Newline(1)
	assert.False(t, b.EndsBreakableLine(), "text still in progress")

	b.Split()
	assert.True(t, b.EndsBreakableLine())

	done := b.Span(1, 1)
	assert.False(t, b.EndsBreakableLine(), "a group is open")
	done()
	assert.True(t, b.EndsBreakableLine())

	b.Write("y")
	assert.False(t, b.EndsBreakableLine())
}

func TestBuilderBuild(t *testing.T) {
	t.Parallel()

	t.Run("flushes in-progress text", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("tail")
		chunks := b.Build()
		require.Len(t, chunks, 1)
		assert.Equal(t, "tail", chunks[0].Text())
	})

	t.Run("drops trailing whitespace", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		b.Write("x")
		b.Newline(2)
		chunks := b.Build()
		require.Len(t, chunks, 1)
		assert.Equal(t, "x", chunks[0].Text())
	})

	t.Run("empty builder builds nothing", func(t *testing.T) {
		t.Parallel()

		var b chunk.Builder
		assert.Empty(t, b.Build())
	})
}

func TestChunkLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want int
	}{
		{"hello", 5},
		{"héllo", 5},
		{"日本語", 3},
		{"👪", 1},
		{"👨‍👩‍👧‍👦", 1},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var b chunk.Builder
			b.Write(tt.text)
			chunks := b.Build()
			require.Len(t, chunks, 1)
			assert.Equal(t, tt.want, chunks[0].Length())
		})
	}
}

func TestBlock(t *testing.T) {
	t.Parallel()

	var b chunk.Builder
	b.Write("a")
	b.Space()
	b.Write("b")
	b.Split()
	b.Space()
	b.Write("c")
	inner := b.Build()

	block := chunk.NewBlock(chunk.SplitNewline, 2, inner)
	assert.Equal(t, chunk.KindBlock, block.Kind())
	assert.Equal(t, chunk.SplitNewline, block.Split())
	assert.Equal(t, 2, block.Indent())
	assert.Len(t, block.Children(), 2)
	assert.Equal(t, 5, block.Length(), `"a b" plus " c"`)
	assert.False(t, block.IsEmpty())
	assert.Empty(t, block.Text())
}

func TestPrint(t *testing.T) {
	t.Parallel()

	var b chunk.Builder
	b.Write("void main() {")
	b.Split()
	done := b.Indent(1)
	b.Newline(1)
	b.Write("foo();")
	b.Split()
	done()
	b.Newline(1)
	b.Write("}")
	b.Newline(2)
	b.Write("int x;")

	chunks := b.Build()
	assert.Equal(t, "void main() {\n\tfoo();\n}\n\nint x;", chunk.Print(chunks))

	var body chunk.Builder
	body.Write("foo();")
	nested := []chunk.Chunk{chunks[0], chunk.NewBlock(chunk.SplitNewline, 1, body.Build())}
	assert.Equal(t, "void main() {\n\tfoo();", chunk.Print(nested))
}
