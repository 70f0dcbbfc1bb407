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

package sdfmt

import (
	"github.com/snazzy-d/sdfmt/chunk"
	"github.com/snazzy-d/sdfmt/parser"
	"github.com/snazzy-d/sdfmt/source"
)

// Format lexes and recognizes text, the contents of the source file at
// path, and returns the resulting chunk sequence.
//
// Format cannot fail: unrecognized input is carried through verbatim rather
// than rejected. Rendering the chunks into final text is left to the
// caller; [chunk.Print] renders every recorded break literally.
func Format(path, text string) []chunk.Chunk {
	file := source.NewFile(path, text)
	return parser.Parse(parser.Lex(file))
}
