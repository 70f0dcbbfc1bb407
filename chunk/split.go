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

import "fmt"

// SplitKind describes the whitespace that separates a chunk from whatever
// came before it.
//
// The values are ordered by strength: SplitNone < SplitSpace < SplitNewline
// < SplitDouble. [Merge] relies on this ordering.
type SplitKind byte

const (
	// SplitNone continues the current line with no whitespace at all.
	SplitNone SplitKind = iota
	// SplitSpace continues the current line after a single space.
	SplitSpace
	// SplitNewline starts a new line.
	SplitNewline
	// SplitDouble starts a new line with a blank line before it.
	SplitDouble
)

// Merge combines two whitespace requirements, yielding the stronger of the
// two. Merging never weakens a requirement: once a newline is called for, a
// later space cannot undo it.
func Merge(a, b SplitKind) SplitKind {
	if b > a {
		return b
	}
	return a
}

// String implements [fmt.Stringer].
func (s SplitKind) String() string {
	switch s {
	case SplitNone:
		return "none"
	case SplitSpace:
		return "space"
	case SplitNewline:
		return "newline"
	case SplitDouble:
		return "double"
	default:
		return fmt.Sprintf("SplitKind(%d)", byte(s))
	}
}
