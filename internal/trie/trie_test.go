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

package trie_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snazzy-d/sdfmt/internal/trie"
)

func TestTrie(t *testing.T) {
	t.Parallel()

	tr := new(trie.Trie[int])
	for i, s := range []string{"<", "<<", "<<=", ".", "..", "...", "!"} {
		tr.Insert(s, i)
	}

	tests := []struct {
		query  string
		prefix string
		value  int
		ok     bool
	}{
		{query: "<", prefix: "<", value: 0, ok: true},
		{query: "<<", prefix: "<<", value: 1, ok: true},
		{query: "<<=", prefix: "<<=", value: 2, ok: true},
		{query: "<<<", prefix: "<<", value: 1, ok: true},
		{query: "<=", prefix: "<", value: 0, ok: true},
		{query: "..", prefix: "..", value: 4, ok: true},
		{query: "..5", prefix: "..", value: 4, ok: true},
		{query: "....", prefix: "...", value: 5, ok: true},
		{query: ".foo", prefix: ".", value: 3, ok: true},
		{query: "!=", prefix: "!", value: 6, ok: true},
		{query: ""},
		{query: "foo"},
	}

	for _, test := range tests {
		prefix, value, ok := tr.Get(test.query)
		assert.Equal(t, test.ok, ok, "%q", test.query)
		assert.Equal(t, test.prefix, prefix, "%q", test.query)
		if test.ok {
			assert.Equal(t, test.value, value, "%q", test.query)
		}
	}
}

func TestTrieReplace(t *testing.T) {
	t.Parallel()

	tr := new(trie.Trie[string])
	tr.Insert("ab", "x")
	tr.Insert("ab", "y")

	prefix, value, ok := tr.Get("ab")
	assert.True(t, ok)
	assert.Equal(t, "ab", prefix)
	assert.Equal(t, "y", value)
}

func TestHammerTrie(t *testing.T) {
	t.Parallel()

	tr := new(trie.Trie[int])
	for i := range 1000 {
		tr.Insert(strings.Repeat("a", i), i+1)
	}

	for i := range 1000 {
		k := strings.Repeat("a", i)
		prefix, v, ok := tr.Get(k)
		assert.True(t, ok, len(k))
		assert.Equal(t, k, prefix, len(k))
		assert.Equal(t, i+1, v, len(k))
	}
}
