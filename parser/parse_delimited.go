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

package parser

import (
	"fmt"

	"github.com/snazzy-d/sdfmt/token"
	"github.com/snazzy-d/sdfmt/token/keyword"
)

// parseDelimited recognizes the elements of a bracketed list whose opener
// has already been consumed, through the closing delimiter.
//
// The list opens a cost group and splices the opener (and whatever the
// opener was glued to, a callee or a keyword) into it, so a layout pass
// breaking the group indents the elements under their head. Elements are
// cut apart so such a break can land between any two of them.
//
// With addNewLines the boundaries are hard instead: every element gets its
// own line and the closer its own line after them, the shape of an enum
// body. Without it the list renders inline until a layout pass says
// otherwise, the shape of parameter and argument lists.
func (p *parser) parseDelimited(closer keyword.Keyword, addNewLines bool) {
	span := p.b.Span(1, 1)
	p.b.SpliceSpan()
	p.b.Split()
	done := p.b.Indent(1)
	m := modeParameter
	if addNewLines {
		m = modeDeclaration
	}
	restore := p.setMode(m)
	if addNewLines {
		p.b.Newline(1)
	}

	for {
		p.handleComments()
		front := p.cursor.Peek()
		if front.IsZero() || front.Kind() == token.End || front.Keyword() == closer {
			break
		}
		switch front.Keyword() {
		case keyword.Comma:
			// A stray separator with no element before it.
			p.nextToken()
			if addNewLines {
				p.b.Newline(1)
			} else {
				p.b.Space()
			}
			continue
		case keyword.DotDot:
			p.b.Space()
			p.nextToken()
			p.b.Space()
			continue
		}
		p.b.Split()
		before := p.count
		if !p.parseStructuralElement() {
			p.skip()
		}
		if p.count == before {
			panic(fmt.Sprintf("sdfmt/parser: failed to make progress at offset %d; this is a bug in sdfmt", front.Span().Start))
		}
	}
	p.flushSkipped()
	restore()

	if addNewLines {
		p.b.Split()
		p.b.Newline(1)
		done()
		if p.cursor.Peek().Keyword() == closer {
			p.nextToken()
		}
		span()
		p.blankLineAfter()
		return
	}

	if !p.afterLineComment() {
		p.b.ClearSplit()
	}
	if p.cursor.Peek().Keyword() == closer {
		p.nextToken()
	}
	p.b.Split()
	done()
	span()
}
