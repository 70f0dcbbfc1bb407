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

// Package source provides source files and byte-offset spans into them.
package source

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// File is a source code file.
//
// It contains additional book-keeping information for resolving span
// locations.
type File struct {
	path, text string

	once sync.Once
	// A prefix sum of the line lengths of text. Given a byte offset, it is
	// possible to recover which line that offset is on by performing a binary
	// search on this list.
	//
	// Alternatively, this slice can be interpreted as the index after each \n
	// in the original file.
	lineIndex []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's filesystem path.
//
// It doesn't need to be a real path; it is only used for labeling.
func (f *File) Path() string {
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	return f.text
}

// Span builds a span for the given byte offset range of this file.
func (f *File) Span(start, end int) Span {
	if start < 0 || start > end || end > len(f.text) {
		panic(fmt.Sprintf("sdfmt/source: out of bounds: %d:%d not in 0:%d; this is a bug in sdfmt", start, end, len(f.text)))
	}
	return Span{f, start, end}
}

// Location builds full Location information for the given byte offset.
//
// This operation is O(log n).
func (f *File) Location(offset int) Location {
	lines := f.lines()

	// Find the largest index in f.lineIndex such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	var column int
	for range f.text[lines[line]:offset] {
		column++
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: column + 1,
	}
}

func (f *File) lines() []int {
	// Compute the prefix sum on-demand.
	f.once.Do(func() {
		var next int

		// We add 1 to the return value of IndexByte because we want to work
		// with the index immediately *after* the newline byte.
		text := f.text
		for {
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}

			text = text[newline:]

			f.lineIndex = append(f.lineIndex, next)
			next += newline
		}

		f.lineIndex = append(f.lineIndex, next)
	})
	return f.lineIndex
}

// Location is a location within a source code file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed.
	//
	// Column is measured in runes. Because these are 1-indexed, a zero Line
	// can be used as a sentinel.
	Line, Column int
}

// Span is a byte offset range within a source code file.
//
// The zero value is the nil span, which points to no file at all.
type Span struct {
	// The file this span is in.
	*File

	// The start and end byte offsets, as a half-open range.
	Start, End int
}

// IsZero returns whether this is the zero span.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Text returns the text corresponding to this span.
func (s Span) Text() string {
	return s.File.Text()[s.Start:s.End]
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// StartLoc returns the start location for this span.
func (s Span) StartLoc() Location {
	return s.File.Location(s.Start)
}

// EndLoc returns the end location for this span.
func (s Span) EndLoc() Location {
	return s.File.Location(s.End)
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	if s.IsZero() {
		return "<zero>"
	}
	loc := s.StartLoc()
	return fmt.Sprintf("%s:%d:%d", s.Path(), loc.Line, loc.Column)
}

// Join computes the smallest span which contains both of the given spans.
//
// Both spans must be in the same file, and neither may be the zero span.
func Join(a, b Span) Span {
	if a.File != b.File {
		panic("sdfmt/source: passed spans from different files to Join; this is a bug in sdfmt")
	}
	return Span{a.File, min(a.Start, b.Start), max(a.End, b.End)}
}
