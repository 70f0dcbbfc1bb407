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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snazzy-d/sdfmt/source"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	file := source.NewFile(
		"test.d",
		"foo\nbar\ncat: 🐈\n",
	)

	tests := []source.Location{
		{Offset: 0, Line: 1, Column: 1},
		{Offset: 2, Line: 1, Column: 3},
		{Offset: 3, Line: 1, Column: 4},
		{Offset: 4, Line: 2, Column: 1},
		{Offset: 8, Line: 3, Column: 1},
		{Offset: 13, Line: 3, Column: 6},
		// The cat is four bytes but a single column.
		{Offset: 17, Line: 3, Column: 7},
		{Offset: 18, Line: 4, Column: 1},
	}

	for _, want := range tests {
		t.Logf("%q | %q", file.Text()[:want.Offset], file.Text()[want.Offset:])
		assert.Equal(t, want, file.Location(want.Offset))
	}
}

func TestSpan(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.d", "foo\nbar\nbaz\n")

	t.Run("accessors", func(t *testing.T) {
		t.Parallel()

		span := file.Span(4, 7)
		assert.Equal(t, "bar", span.Text())
		assert.Equal(t, 3, span.Len())
		assert.Equal(t, source.Location{Offset: 4, Line: 2, Column: 1}, span.StartLoc())
		assert.Equal(t, source.Location{Offset: 7, Line: 2, Column: 4}, span.EndLoc())
		assert.Equal(t, "test.d:2:1", span.String())
	})

	t.Run("zero", func(t *testing.T) {
		t.Parallel()

		assert.True(t, source.Span{}.IsZero())
		assert.Equal(t, "<zero>", source.Span{}.String())

		// An empty span is still anchored to a file.
		assert.False(t, file.Span(0, 0).IsZero())
		assert.Equal(t, "", file.Span(0, 0).Text())
	})

	t.Run("join", func(t *testing.T) {
		t.Parallel()

		joined := source.Join(file.Span(4, 7), file.Span(8, 11))
		assert.Equal(t, file.Span(4, 11), joined)
		assert.Equal(t, joined, source.Join(file.Span(8, 11), file.Span(4, 7)))

		other := source.NewFile("other.d", "quux")
		assert.Panics(t, func() { source.Join(file.Span(0, 3), other.Span(0, 4)) })
	})

	t.Run("out of bounds", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { file.Span(-1, 2) })
		assert.Panics(t, func() { file.Span(5, 3) })
		assert.Panics(t, func() { file.Span(0, 100) })
	})
}
