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

package keyword

import (
	"github.com/snazzy-d/sdfmt/internal/trie"
)

var kwTrie = func() *trie.Trie[Keyword] {
	trie := new(trie.Trie[Keyword])
	for kw := range All() {
		if kw.IsPunctuation() {
			trie.Insert(kw.String(), kw)
		}
	}
	return trie
}()

// Prefix returns the longest punctuation keyword which is a prefix of text,
// along with how many bytes it spans.
//
// Returns [Unknown] and zero if no punctuation keyword prefixes text.
func Prefix(text string) (Keyword, int) {
	prefix, kw, _ := kwTrie.Get(text)
	return kw, len(prefix)
}

// IsValid returns whether this is a valid keyword value (not including
// [Unknown]).
func (k Keyword) IsValid() bool {
	return k.properties()&valid != 0
}

// IsPunctuation returns whether this keyword is punctuation (i.e., not a word).
func (k Keyword) IsPunctuation() bool {
	return k.properties()&punct != 0
}

// IsReservedWord returns whether this keyword is a reserved word (i.e., not
// punctuation).
func (k Keyword) IsReservedWord() bool {
	return k.properties()&word != 0
}

// IsStorageClass returns whether this keyword can prefix a declaration as a
// storage class or attribute.
func (k Keyword) IsStorageClass() bool {
	return k.properties()&storage != 0
}

// IsAggregate returns whether this keyword introduces an aggregate
// declaration.
func (k Keyword) IsAggregate() bool {
	return k.properties()&aggregate != 0
}

// IsBasicType returns whether this keyword names a built-in type.
func (k Keyword) IsBasicType() bool {
	return k.properties()&basicType != 0
}

// IsQualifier returns whether this keyword is a type qualifier that can wrap
// a type, as in const(T).
func (k Keyword) IsQualifier() bool {
	return k.properties()&qualifier != 0
}

// IsLiteral returns whether this keyword is a self-contained expression atom,
// such as true or null.
func (k Keyword) IsLiteral() bool {
	return k.properties()&literal != 0
}

// IsBinaryOperator returns whether this keyword can join two expression
// operands.
func (k Keyword) IsBinaryOperator() bool {
	return k.properties()&binaryOp != 0
}

// IsPrefixOperator returns whether this keyword can prefix an expression
// operand.
func (k Keyword) IsPrefixOperator() bool {
	return k.properties()&prefixOp != 0
}

// IsTypeLike returns whether this keyword heads a parenthesized type-level
// construct, such as typeof(...).
func (k Keyword) IsTypeLike() bool {
	return k.properties()&typeLike != 0
}
