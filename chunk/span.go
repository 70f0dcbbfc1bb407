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

// Span is a cost group: a contiguous stretch of chunks that a layout pass
// should try to keep on one line, and, failing that, break at the cheapest
// boundaries first.
//
// Spans nest. A chunk records only the innermost span it belongs to; outer
// groups are reachable through [Span.Parent]. Spans are created by
// [Builder.Span] and are meaningful only for the chunks of the builder that
// made them.
type Span struct {
	parent *Span
	cost   int
	indent int
}

// Cost returns the relative price of breaking inside this span. Higher
// values make a layout pass more reluctant to break here.
func (s *Span) Cost() int {
	return s.cost
}

// Indent returns the extra indentation applied to lines opened by breaking
// inside this span.
func (s *Span) Indent() int {
	return s.indent
}

// Parent returns the span enclosing this one, or nil for a top-level span.
func (s *Span) Parent() *Span {
	return s.parent
}
