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
	"iter"

	"github.com/bufbuild/jsfmt/source"
)

const (
	kindNone kind = iota //nolint:unused

	kindText   // Ordinary text.
	kindLine   // A line break point; see [LineKind].
	kindGroup  // See [Group].
	kindIndent // See [Indent].
	kindMark   // See [Mark].
)

// kind is a kind of [tag].
type kind byte

// dom is a compiled [Doc]: a flat, pre-order array of tags.
type dom []tag

// cursor is a recursive iterator over a [dom].
//
// See [dom.cursor].
type cursor iter.Seq2[*tag, cursor]

// tag is a single tag within a [dom].
type tag struct {
	text      string
	kind      kind
	cond      Cond
	line      LineKind        // Used by kind == kindLine.
	by        int             // Used by kind == kindIndent.
	exclusive bool            // Used by kind == kindGroup.
	pos       source.Position // Used by kind == kindMark.

	// See layout.go.
	width int  // Flat width of this tag and its children.
	tail  int  // Width of the text that follows a group up to the next line.
	hard  bool // Whether a forced break occurs in this tag or its children.

	children int // Number of children that follow in a [dom].
}

// compile flattens a document tree into tags.
func compile(doc Doc) dom {
	var d dom
	d.add(doc)
	return d
}

// add appends a document to this dom.
func (d *dom) add(doc Doc) {
	switch doc := doc.(type) {
	case nil:
	case text:
		if doc.s != "" {
			*d = append(*d, tag{kind: kindText, text: doc.s, cond: doc.cond})
		}
	case concat:
		for _, doc := range doc {
			d.add(doc)
		}
	case line:
		*d = append(*d, tag{kind: kindLine, line: doc.kind})
	case indent:
		d.push(tag{kind: kindIndent, by: doc.by}, doc.doc)
	case group:
		d.push(tag{kind: kindGroup, exclusive: doc.exclusive}, doc.doc)
	case mark:
		d.push(tag{kind: kindMark, pos: doc.pos}, doc.doc)
	}
}

// push appends a tag with children.
func (d *dom) push(tag tag, body Doc) {
	*d = append(*d, tag)
	n := len(*d)
	d.add(body)
	(*d)[n-1].children = len(*d) - n
}

// cursor returns an iterator over the top-level tags of this dom.
//
// The iterator yields tags along with another iterator over that tag's
// children.
func (d dom) cursor() cursor {
	return func(yield func(*tag, cursor) bool) {
		for i := 0; i < len(d); i++ {
			tag := &d[i]
			children := d[i+1 : i+tag.children+1]
			i += len(children)

			if !yield(tag, children.cursor()) {
				return
			}
		}
	}
}

// renderIf returns whether a condition is true.
func (t *tag) renderIf(cond Cond) bool {
	return t.cond == Always || t.cond == cond
}
