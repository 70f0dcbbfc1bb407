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

package token

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

const (
	// Unrecognized is the kind of tokens the lexer could not make sense of.
	// The recognizer passes them through verbatim.
	Unrecognized Kind = iota

	// Begin and End are the sentinel tokens delimiting a [Stream]. Begin is
	// always the first token of a stream and End the last; neither carries
	// text.
	Begin
	End

	Comment
	Ident
	Number
	String
	Punct
)

// IsSkippable returns whether this kind can be suppressed by a [Cursor] that
// does not surface comments.
func (k Kind) IsSkippable() bool {
	return k == Comment
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Unrecognized:
		return "Unrecognized"
	case Begin:
		return "Begin"
	case End:
		return "End"
	case Comment:
		return "Comment"
	case Ident:
		return "Ident"
	case Number:
		return "Number"
	case String:
		return "String"
	case Punct:
		return "Punct"
	default:
		return "<unknown>"
	}
}
