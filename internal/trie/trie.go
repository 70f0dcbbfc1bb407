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

// Package trie provides a byte-string prefix trie.
package trie

// Trie implements a map from strings to V, except lookups return the key
// which is the longest prefix of a given query.
//
// The zero value is empty and ready to use.
type Trie[V any] struct {
	root node[V]
}

type node[V any] struct {
	next  map[byte]*node[V]
	value V
	leaf  bool
}

// Insert adds a new value to this trie, replacing any previous value for
// the same key.
func (t *Trie[V]) Insert(key string, value V) {
	n := &t.root
	for i := 0; i < len(key); i++ {
		if n.next == nil {
			n.next = make(map[byte]*node[V])
		}
		child := n.next[key[i]]
		if child == nil {
			child = new(node[V])
			n.next[key[i]] = child
		}
		n = child
	}
	n.value, n.leaf = value, true
}

// Get returns the longest key in the trie which is a prefix of query, along
// with its value. The match is exact when len(prefix) == len(query).
//
// If no key in the trie is a prefix of query, ok is false.
func (t *Trie[V]) Get(query string) (prefix string, value V, ok bool) {
	n := &t.root
	if n.leaf {
		value, ok = n.value, true
	}

	var end int
	for i := 0; i < len(query); i++ {
		n = n.next[query[i]]
		if n == nil {
			break
		}
		if n.leaf {
			end = i + 1
			value, ok = n.value, true
		}
	}
	return query[:end], value, ok
}
