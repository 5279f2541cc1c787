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

package dom

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bufbuild/jsfmt/source"
)

// printer holds state for converting a laid-out [dom] into a string.
type printer struct {
	Options

	out []byte

	// Current output position. line is 1-based, column is 0-based.
	line, column int

	// Buffered line breaks, for break merging in write(). A soft break is
	// absorbed by any hard break adjacent to it; consecutive hard breaks
	// produce blank lines.
	hard int
	soft bool

	// Indentation stack; each entry is the accumulated indentation width.
	indent []int

	// Marks waiting for the next text to be written.
	marks    []source.Position
	mappings []Mapping
}

// render renders a dom with the given options.
func render(options Options, doc dom) Output {
	options = options.WithDefaults()
	l := layout{Options: options}
	l.layout(doc)

	p := printer{
		Options: options,
		line:    1,
		column:  options.InitialColumn,
	}
	if options.HTML {
		p.html(doc.cursor())
		return Output{Text: string(p.out)}
	}

	// Top level is always broken.
	p.print(Broken, doc.cursor())
	p.finish()

	return Output{Text: string(p.out), Mappings: p.mappings}
}

// print prints all of the elements of a cursor that are conditioned on cond.
//
// In other words, this function is called with cond set to whether the
// containing group is broken.
func (p *printer) print(cond Cond, cursor cursor) {
	for tag, cursor := range cursor {
		if !tag.renderIf(cond) {
			continue
		}

		switch tag.kind {
		case kindText:
			p.write(tag.text)

		case kindLine:
			switch {
			case tag.line == Literal:
				p.literal()
			case tag.line == Hard:
				p.hard++
			case cond == Broken || tag.line == Break:
				p.soft = true
			case tag.line == Space && !p.pending():
				p.write(" ")
			}

		case kindGroup:
			ourCond := Flat
			if !p.fits(tag) {
				ourCond = Broken
			}
			p.print(ourCond, cursor)

		case kindIndent:
			prev := p.currentIndent()
			p.indent = append(p.indent, prev+tag.by)
			p.print(cond, cursor)
			p.indent = p.indent[:len(p.indent)-1]

		case kindMark:
			p.marks = append(p.marks, tag.pos)
			p.print(cond, cursor)
		}
	}
}

// fits is the fits test for a group: whether it can be laid out flat starting
// at the column the next text will be written at.
func (p *printer) fits(tag *tag) bool {
	if tag.hard {
		return false
	}
	column := p.column
	if p.pending() {
		column = p.currentIndent()
	}
	return column+tag.width+tag.tail <= p.MaxWidth
}

// pending returns whether there are buffered line breaks.
func (p *printer) pending() bool {
	return p.hard > 0 || p.soft
}

func (p *printer) currentIndent() int {
	if len(p.indent) == 0 {
		return 0
	}
	return p.indent[len(p.indent)-1]
}

// write appends data to the output buffer.
//
// This function automatically handles line break merging and indentation.
func (p *printer) write(data string) {
	if data == "" {
		return
	}
	p.flush(true)

	for _, pos := range p.marks {
		p.mappings = append(p.mappings, Mapping{
			Generated: source.Position{Offset: len(p.out), Line: p.line, Column: p.column},
			Original:  pos,
		})
	}
	p.marks = p.marks[:0]

	p.out = append(p.out, data...)
	if n := strings.Count(data, "\n"); n > 0 {
		p.line += n
		p.column = stringWidth(p.Options, 0, data[strings.LastIndexByte(data, '\n')+1:])
	} else {
		p.column = stringWidth(p.Options, p.column, data)
	}
}

// flush emits buffered line breaks, followed by the current indentation if
// indent is set.
func (p *printer) flush(indent bool) {
	if !p.pending() {
		return
	}
	n := max(p.hard, 1)
	p.hard, p.soft = 0, false

	p.out = bytes.TrimRight(p.out, " ")
	for range n {
		p.out = append(p.out, '\n')
	}
	p.line += n
	p.column = 0

	if indent {
		p.column = p.currentIndent()
		p.out = append(p.out, strings.Repeat(" ", p.column)...)
	}
}

// literal emits a verbatim newline. The text after a literal newline is not
// indented.
func (p *printer) literal() {
	p.flush(false)
	p.out = append(p.out, '\n')
	p.line++
	p.column = 0
}

// finish terminates the output with exactly one newline, unless nothing at
// all was written.
func (p *printer) finish() {
	p.hard, p.soft = 0, false
	p.out = bytes.TrimRight(p.out, " \n")
	if len(p.out) > 0 {
		p.out = append(p.out, '\n')
	}
}

// html renders the contents of cursor as pseudo-HTML.
func (p *printer) html(cursor cursor) {
	var buf strings.Builder
	p.htmlTo(&buf, cursor, 0)
	p.out = append(p.out, buf.String()...)
}

func (p *printer) htmlTo(buf *strings.Builder, cursor cursor, depth int) {
	indent := strings.Repeat("    ", depth)
	for tag, cursor := range cursor {
		var cond string
		switch tag.cond {
		case Flat:
			cond = " if=flat"
		case Broken:
			cond = " if=broken"
		}

		buf.WriteString(indent)
		switch tag.kind {
		case kindText:
			if cond != "" {
				fmt.Fprintf(buf, "<p%v>%q</p>\n", cond, tag.text)
			} else {
				fmt.Fprintf(buf, "%q\n", tag.text)
			}

		case kindLine:
			fmt.Fprintf(buf, "<%v>\n", tag.line)

		case kindGroup:
			name := "span"
			if tag.hard {
				name = "div"
			}
			var exclusive string
			if tag.exclusive {
				exclusive = " exclusive"
			}
			fmt.Fprintf(buf, "<%v%v width=%v tail=%v>\n", name, exclusive, tag.width, tag.tail)
			p.htmlTo(buf, cursor, depth+1)
			fmt.Fprintf(buf, "%v</%v>\n", indent, name)

		case kindIndent:
			fmt.Fprintf(buf, "<indent by=%v>\n", tag.by)
			p.htmlTo(buf, cursor, depth+1)
			fmt.Fprintf(buf, "%v</indent>\n", indent)

		case kindMark:
			fmt.Fprintf(buf, "<mark at=%v>\n", tag.pos)
			p.htmlTo(buf, cursor, depth+1)
			fmt.Fprintf(buf, "%v</mark>\n", indent)
		}
	}
}
