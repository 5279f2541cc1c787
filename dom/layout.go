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
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/jsfmt/internal/stringsx"
)

type layout struct {
	Options
}

func (l *layout) layout(doc dom) {
	l.layoutFlat(doc.cursor())
	l.layoutTails(doc)
}

// layoutFlat calculates the flat width of every tag, and whether it contains
// a forced break.
func (l *layout) layoutFlat(cursor cursor) (total int, hard bool) {
	for tag, cursor := range cursor {
		switch tag.kind {
		case kindText:
			tag.hard = strings.Contains(tag.text, "\n")

			// With tabs, we need to be pessimistic, because we don't
			// know which column the text will start at.
			tag.width = stringWidth(l.Options, -1, tag.text)

		case kindLine:
			switch tag.line {
			case Space:
				tag.width = 1
			case Hard, Literal, Break:
				tag.hard = true
			}

		default:
			tag.width, tag.hard = l.layoutFlat(cursor)
		}

		if tag.renderIf(Flat) {
			total += tag.width
			hard = hard || tag.hard
		}
	}
	return total, hard
}

// layoutTails calculates, for every group, the width of the unbreakable text
// that follows it up to the next line break point.
//
// Anything after the group that is on the same line counts against whether
// the group fits, so that e.g. the `);` after a call's arguments does not
// overflow.
func (l *layout) layoutTails(doc dom) {
	// acc[i] is the width of the text from tag i up to the next line.
	acc := make([]int, len(doc)+1)
	for i := len(doc) - 1; i >= 0; i-- {
		tag := &doc[i]
		switch tag.kind {
		case kindText:
			acc[i] = acc[i+1]
			if tag.cond == Always {
				first, _, multiline := strings.Cut(tag.text, "\n")
				if multiline {
					acc[i] = stringWidth(l.Options, -1, first)
				} else {
					acc[i] += tag.width
				}
			}
		case kindLine:
			acc[i] = 0
		case kindGroup:
			tag.tail = acc[i+tag.children+1]
			acc[i] = acc[i+1]
		default:
			acc[i] = acc[i+1]
		}
	}
}

// stringWidth calculates the rendered width of text if placed at the given
// column, accounting for tabstops.
//
// If column is -1, all tabstops are given their maximum width. This is used for
// cases where we are forced to be conservative because we do not know the
// column we will be rendering at.
func stringWidth(options Options, column int, text string) int {
	maxWidth := column < 0
	column = max(0, column)

	// We can't just use StringWidth, because that doesn't respect tabstops
	// correctly.
	first := true
	for next := range stringsx.Split(text, '\t') {
		if !first {
			tab := options.TabstopWidth
			if !maxWidth {
				tab -= (column % options.TabstopWidth)
			}
			column += tab
		}
		first = false
		column += uniseg.StringWidth(next)
	}

	return column
}
