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
	"github.com/snazzy-d/sdfmt/source"
	"github.com/snazzy-d/sdfmt/token"
)

// skip consumes a token the recognizer could not classify, extending the
// pending verbatim region over it. Comment tokens still on the same line
// are pulled into the region as well, preserving their adjacency to the
// text they annotate.
//
// The region grows across consecutive skips and flushes as a single chunk
// the moment recognition resumes; until then it is never discarded.
func (p *parser) skip() {
	tok := p.advance()
	if tok.IsZero() {
		return
	}
	p.extendSkipped(tok.Span())

	for {
		c := p.cursor.Peek()
		if c.Kind() != token.Comment {
			break
		}
		line := p.file.Location(c.Span().Start).Line
		if line != p.file.Location(p.skipped.End).Line {
			break
		}
		p.advance()
		p.extendSkipped(c.Span())
	}
}

func (p *parser) extendSkipped(span source.Span) {
	if p.skipped.IsZero() {
		p.skipped = span
		return
	}
	p.skipped = source.Join(p.skipped, span)
}

// flushSkipped emits the accumulated verbatim region, if any, as one chunk
// reproducing the original source slice exactly. The region lands on its
// own line: a break is forced before it unless the output already ends at
// one, and another after it.
func (p *parser) flushSkipped() {
	if p.skipped.IsZero() {
		return
	}
	if !p.b.EndsBreakableLine() {
		p.b.Newline(1)
	}
	p.b.Write(p.skipped.Text())
	p.b.Split()
	p.b.Newline(1)
	p.skipped = source.Span{}
}
