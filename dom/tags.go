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

// Package dom is the layout document model used by the formatters in this
// module, together with the renderer that turns a document into text.
//
// A document ([Doc]) is an immutable tree of text, line break points,
// indentation and groups. [Render] decides, for every [Group], whether it can
// be laid out flat on the current line or whether its line break points must
// be broken, and then prints the result.
//
// Documents are pure data: they never refer back to the tree they were built
// from, so rendering the same document twice always produces the same text.
package dom

import (
	"math"
	"strings"

	"github.com/bufbuild/jsfmt/source"
)

// Doc is a layout document.
//
// The nil Doc is equivalent to Text("").
type Doc interface {
	isDoc()
}

type (
	text struct {
		s    string
		cond Cond
	}
	concat []Doc
	line   struct{ kind LineKind }
	indent struct {
		by  int
		doc Doc
	}
	group struct {
		doc       Doc
		exclusive bool
	}
	mark struct {
		pos source.Position
		doc Doc
	}
)

func (text) isDoc()   {}
func (concat) isDoc() {}
func (line) isDoc()   {}
func (indent) isDoc() {}
func (group) isDoc()  {}
func (mark) isDoc()   {}

const (
	Always Cond = iota
	Flat        // Render only in a flat group.
	Broken      // Render only in a broken group.
)

// Cond is a condition for a text.
//
// Text can be conditioned on whether the innermost group it is rendered in is
// flat or broken. The outermost level is treated as always broken.
type Cond byte

const (
	// Space renders as a single space when flat and as a newline when broken.
	Space LineKind = iota
	// Soft renders as nothing when flat and as a newline when broken.
	Soft
	// Hard always renders as a newline, and forces every enclosing group to
	// break.
	Hard
	// Literal always renders as a newline with no indentation after it. It is
	// used for text that must be reproduced verbatim, and also forces every
	// enclosing group to break.
	Literal
	// Break always ends the line and forces every enclosing group to break,
	// but merges with any line that follows it, the way a Soft line in a
	// broken group does. It goes after line comments.
	Break
)

// LineKind is the kind of a line break point.
type LineKind byte

// String implements [fmt.Stringer].
func (k LineKind) String() string {
	switch k {
	case Space:
		return "line"
	case Soft:
		return "softline"
	case Hard:
		return "hardline"
	case Literal:
		return "literalline"
	case Break:
		return "breakline"
	default:
		return "unknown"
	}
}

var (
	// Line is a [Space] line.
	Line Doc = line{Space}
	// Softline is a [Soft] line.
	Softline Doc = line{Soft}
	// Hardline is a [Hard] line.
	Hardline Doc = line{Hard}
	// Literalline is a [Literal] line.
	Literalline Doc = line{Literal}
	// Breakline is a [Break] line.
	Breakline Doc = line{Break}
)

// Text returns a document that emits its text exactly.
//
// Text should not contain newlines; use [Hardline] or [Literalline] instead.
// Text that does contain a newline forces its enclosing groups to break.
func Text(s string) Doc {
	return text{s: s}
}

// TextIf is like [Text], but with a condition attached.
//
// If the condition does not hold in the containing group, this document
// expands to nothing.
func TextIf(cond Cond, s string) Doc {
	return text{s: s, cond: cond}
}

// Concat returns the concatenation of docs.
func Concat(docs ...Doc) Doc {
	switch len(docs) {
	case 0:
		return nil
	case 1:
		return docs[0]
	}
	return concat(docs)
}

// Join concatenates docs with sep between each adjacent pair.
func Join(sep Doc, docs []Doc) Doc {
	if len(docs) == 0 {
		return nil
	}
	out := make(concat, 0, 2*len(docs)-1)
	for i, doc := range docs {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, doc)
	}
	return out
}

// Indent increases the indentation of every broken line inside docs by the
// given number of columns.
func Indent(by int, docs ...Doc) Doc {
	if by == 0 {
		return Concat(docs...)
	}
	return indent{by: by, doc: Concat(docs...)}
}

// Group returns a document that groups together a collection of documents.
//
// Each group is rendered either flat or broken. A group is broken when:
//
//  1. It contains a [Hard] or [Literal] line, or text containing a newline.
//
//  2. Laying it out flat at the column it starts on, followed by the text up
//     to the next line break point after it, would exceed the maximum width
//     configured in [Options].
//
// Once decided, a group is never re-evaluated.
func Group(docs ...Doc) Doc {
	return group{doc: Concat(docs...)}
}

// MultilineGroup is like [Group], but marks the group as exclusive: the
// group holds a join list whose separators break all together or not at all.
//
// Every group already makes a single decision for all of its direct lines,
// so an exclusive group renders exactly like a [Group]. The mark shows up in
// the HTML dump.
func MultilineGroup(docs ...Doc) Doc {
	return group{doc: Concat(docs...), exclusive: true}
}

// Mark records that the first text rendered inside docs originates at pos in
// the original source. Marks never affect layout.
func Mark(pos source.Position, docs ...Doc) Doc {
	doc := Concat(docs...)
	if pos.IsZero() {
		return doc
	}
	return mark{pos: pos, doc: doc}
}

// StartsWith returns whether the first text rendered by doc starts with
// prefix, assuming doc is rendered flat.
func StartsWith(doc Doc, prefix string) bool {
	first, ok := firstText(doc)
	return ok && strings.HasPrefix(first, prefix)
}

func firstText(doc Doc) (string, bool) {
	switch doc := doc.(type) {
	case text:
		if doc.s == "" || doc.cond == Broken {
			return "", false
		}
		return doc.s, true
	case concat:
		for _, doc := range doc {
			if s, ok := firstText(doc); ok {
				return s, true
			}
			if _, isLine := doc.(line); isLine {
				return "", false
			}
		}
	case indent:
		return firstText(doc.doc)
	case group:
		return firstText(doc.doc)
	case mark:
		return firstText(doc.doc)
	}
	return "", false
}

// HasHardLine returns whether doc contains a forced line break.
func HasHardLine(doc Doc) bool {
	switch doc := doc.(type) {
	case text:
		return strings.Contains(doc.s, "\n")
	case concat:
		for _, doc := range doc {
			if HasHardLine(doc) {
				return true
			}
		}
	case line:
		return doc.kind != Space && doc.kind != Soft
	case indent:
		return HasHardLine(doc.doc)
	case group:
		return HasHardLine(doc.doc)
	case mark:
		return HasHardLine(doc.doc)
	}
	return false
}

// IsEmpty returns whether doc renders nothing at all.
func IsEmpty(doc Doc) bool {
	switch doc := doc.(type) {
	case nil:
		return true
	case text:
		return doc.s == ""
	case concat:
		for _, doc := range doc {
			if !IsEmpty(doc) {
				return false
			}
		}
		return true
	case indent:
		return IsEmpty(doc.doc)
	case group:
		return IsEmpty(doc.doc)
	case mark:
		return IsEmpty(doc.doc)
	}
	return false
}

// Options specifies configuration for [Render].
type Options struct {
	// The maximum number of columns to render before triggering
	// a break. A value of zero implies an infinite width.
	MaxWidth int

	// The number of columns a tab character counts as. Defaults to 1.
	TabstopWidth int

	// The column the first line starts at.
	InitialColumn int

	// If true, prints all of the tags in an HTML-like format. Intended for
	// debugging.
	HTML bool
}

// WithDefaults replaces any unset (read: zero value) fields of an Options which
// specify a default value with that default value.
func (o Options) WithDefaults() Options {
	if o.MaxWidth == 0 {
		o.MaxWidth = math.MaxInt
	}
	if o.TabstopWidth == 0 {
		o.TabstopWidth = 1
	}
	return o
}

// Mapping relates a position in the rendered text to a position in the
// original source.
type Mapping struct {
	Generated, Original source.Position
}

// Output is the result of [Render].
type Output struct {
	Text string

	// Mappings recorded by [Mark] documents, in output order.
	Mappings []Mapping
}

// Render renders a document with the given options.
func Render(options Options, doc Doc) Output {
	return render(options, compile(doc))
}
