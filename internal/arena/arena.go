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

// Package arena provides an allocator for values whose addresses must stay
// stable while the allocation grows.
package arena

import (
	"fmt"
	"strings"
)

// blockMinLenShift is the log2 of the size of the smallest block in an
// Arena's table.
const (
	blockMinLenShift = 4
	blockMinLen      = 1 << blockMinLenShift
)

// Arena is an append-only allocator backed by a table of exponentially
// growing blocks. It mimics the amortized resizing behavior of an ordinary
// slice, but growth never moves values that were already allocated, so the
// pointers returned by [Arena.New] remain valid for the lifetime of the
// arena.
//
// A zero Arena[T] is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(table[0]) == blockMinLen.
	// 2. cap(table[n]) == 2*cap(table[n-1]).
	// 3. len(table[n]) == cap(table[n]) for all but the last block.
	table [][]T
	count int
}

// New allocates value on the arena and returns its stable address.
func (a *Arena[T]) New(value T) *T {
	if a.table == nil {
		a.table = [][]T{make([]T, 0, blockMinLen)}
	}

	last := &a.table[len(a.table)-1]
	if len(*last) == cap(*last) {
		a.table = append(a.table, make([]T, 0, 2*cap(*last)))
		last = &a.table[len(a.table)-1]
	}

	*last = append(*last, value)
	a.count++
	return &(*last)[len(*last)-1]
}

// Len returns how many values have been allocated so far.
func (a *Arena[T]) Len() int {
	return a.count
}

// String implements [fmt.Stringer].
func (a *Arena[T]) String() string {
	var b strings.Builder
	b.WriteRune('[')
	// Show the block boundaries, they make allocation bugs visible in test
	// output.
	for i, block := range a.table {
		if i != 0 {
			b.WriteRune('|')
		}
		for j, v := range block {
			if j != 0 {
				b.WriteRune(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteRune(']')
	return b.String()
}
