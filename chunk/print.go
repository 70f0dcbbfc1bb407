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

import "strings"

// Print renders chunks with every recorded split taken literally: a space
// for [SplitSpace], one or two line breaks for [SplitNewline] and
// [SplitDouble], and one tab per indentation level after each break.
//
// Print makes no layout decisions of its own. It is the projection used by
// tests and debugging output, and by any caller happy with the breaks the
// recognizer chose.
func Print(chunks []Chunk) string {
	var p printer
	p.print(chunks)
	return p.out.String()
}

type printer struct {
	out strings.Builder
}

func (p *printer) print(chunks []Chunk) {
	for _, c := range chunks {
		switch c.split {
		case SplitSpace:
			p.out.WriteByte(' ')
		case SplitNewline:
			p.out.WriteByte('\n')
			p.indent(c.indent)
		case SplitDouble:
			p.out.WriteString("\n\n")
			p.indent(c.indent)
		}
		if c.kind == KindBlock {
			p.print(c.children)
			continue
		}
		p.out.WriteString(c.text)
	}
}

func (p *printer) indent(level int) {
	for range level {
		p.out.WriteByte('\t')
	}
}
