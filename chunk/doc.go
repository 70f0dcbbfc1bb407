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

// Package chunk provides the formatter's output representation: a flat
// sequence of [Chunk] values produced by a [Builder].
//
// A chunk is an indivisible run of text together with the whitespace that
// must precede it (its [SplitKind]), the indentation level it starts a line
// at, and the innermost [Span] it belongs to. A later layout pass decides
// which chunk boundaries become line breaks; everything recorded here is
// what that decision needs, and nothing is.
//
// Spans form a tree of cost groups: when a line must be broken, boundaries
// between chunks of cheaper spans are preferred. The builder hands out spans
// scoped to the code that writes into them, and can retroactively regroup
// output that was emitted before its grouping construct was discovered (see
// [Builder.SpliceSpan]).
package chunk
