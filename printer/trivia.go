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

package printer

import (
	"slices"

	"github.com/bufbuild/jsfmt/ast"
	"github.com/bufbuild/jsfmt/dom"
	"github.com/bufbuild/jsfmt/source"
)

// withComments surrounds doc, the translation of n, with the comments
// attached to n.
func (p *printer) withComments(n ast.Node, doc dom.Doc) dom.Doc {
	leading := p.comments.Leading(n)
	trailing := p.comments.Trailing(n)
	if len(leading) == 0 && len(trailing) == 0 {
		return doc
	}

	out := make([]dom.Doc, 0, 2*len(leading)+3*len(trailing)+1)
	for i, c := range leading {
		next := n.Span().Start
		if i+1 < len(leading) {
			next = leading[i+1].Loc.Start
		}
		out = append(out, dom.Text(c.String()))
		if c.Style == ast.BlockComment && source.Lines(c.Loc.End, next) == 0 {
			out = append(out, dom.Text(" "))
		} else {
			out = append(out, p.lines(c.Loc.End, next))
		}
	}

	out = append(out, doc)

	prev := n.Span().End
	for _, c := range trailing {
		if source.Lines(prev, c.Loc.Start) == 0 {
			out = append(out, dom.Text(" "))
		} else {
			out = append(out, p.lines(prev, c.Loc.Start))
		}
		out = append(out, dom.Text(c.String()))
		if c.Style == ast.LineComment {
			out = append(out, dom.Breakline)
		}
		prev = c.Loc.End
	}
	return dom.Concat(out...)
}

// lines returns a hard line, followed by as many more as there are blank
// lines between a and b, up to the configured maximum.
func (p *printer) lines(a, b source.Position) dom.Doc {
	blank := min(source.Lines(a, b)-1, p.options.MaxBlankLines)
	if blank <= 0 {
		return dom.Hardline
	}
	docs := make([]dom.Doc, blank+1)
	for i := range docs {
		docs[i] = dom.Hardline
	}
	return dom.Concat(docs...)
}

// extent returns the span of n widened to cover its attached comments.
func (p *printer) extent(n ast.Node) source.Span {
	span := n.Span()
	if leading := p.comments.Leading(n); len(leading) > 0 {
		span.Start = leading[0].Loc.Start
	}
	if trailing := p.comments.Trailing(n); len(trailing) > 0 {
		span.End = trailing[len(trailing)-1].Loc.End
	}
	return span
}

// hasComments returns whether n has leading or trailing comments.
func (p *printer) hasComments(n ast.Node) bool {
	return len(p.comments.Leading(n)) > 0 || len(p.comments.Trailing(n)) > 0
}

// hasLeadingLineComment returns whether a line comment precedes n.
func (p *printer) hasLeadingLineComment(n ast.Node) bool {
	return slices.ContainsFunc(p.comments.Leading(n), func(c *ast.Comment) bool {
		return c.Style == ast.LineComment
	})
}

// inlineComments returns whether cs can share a line with the code around
// them.
func inlineComments(cs []*ast.Comment) bool {
	for _, c := range cs {
		if c.Style == ast.LineComment || c.Loc.Start.Line != c.Loc.End.Line {
			return false
		}
	}
	return true
}

// commentList joins comments one per line, keeping the blank lines between
// them.
func (p *printer) commentList(cs []*ast.Comment) dom.Doc {
	docs := make([]dom.Doc, 0, 2*len(cs))
	for i, c := range cs {
		if i > 0 {
			docs = append(docs, p.lines(cs[i-1].Loc.End, c.Loc.Start))
		}
		docs = append(docs, dom.Text(c.String()))
	}
	return dom.Concat(docs...)
}

// danglingIn prints the dangling comments of n between open and close. With
// no comments, this is just open and close.
func (p *printer) danglingIn(n ast.Node, open, close string) dom.Doc {
	cs := p.dangling(n)
	switch {
	case len(cs) == 0:
		return dom.Text(open + close)
	case inlineComments(cs):
		return dom.Concat(dom.Text(open+" "), inlineList(cs), dom.Text(" "+close))
	}
	return dom.Concat(
		dom.Text(open),
		p.indent(dom.Hardline, p.commentList(cs)),
		dom.Hardline,
		dom.Text(close),
	)
}

// printDanglingInline prints the dangling comments of n with nothing around
// them.
func (p *printer) printDanglingInline(n ast.Node) dom.Doc {
	cs := p.dangling(n)
	if len(cs) == 0 {
		return nil
	}
	doc := p.commentList(cs)
	if cs[len(cs)-1].Style == ast.LineComment {
		doc = dom.Concat(doc, dom.Breakline)
	}
	return doc
}

// dangling returns the dangling comments of n and records that they have
// been printed.
func (p *printer) dangling(n ast.Node) []*ast.Comment {
	cs := p.comments.Dangling(n)
	if len(cs) > 0 {
		if p.dangled == nil {
			p.dangled = make(map[ast.Node]bool)
		}
		p.dangled[n] = true
	}
	return cs
}

// danglingAfter prints the dangling comments of n, if any, after a space.
// It catches comments inside nodes whose rule has no place for them.
func (p *printer) danglingAfter(n ast.Node) dom.Doc {
	cs := p.dangling(n)
	if len(cs) == 0 {
		return nil
	}
	doc := dom.Concat(dom.Text(" "), p.commentList(cs))
	if cs[len(cs)-1].Style == ast.LineComment {
		doc = dom.Concat(doc, dom.Breakline)
	}
	return doc
}

// terminated ends doc with a semicolon. The dangling comments of n go
// before it if they can share the line, and after it otherwise.
func (p *printer) terminated(n ast.Node, doc dom.Doc) dom.Doc {
	cs := p.dangling(n)
	switch {
	case len(cs) == 0:
		return dom.Concat(doc, dom.Text(";"))
	case inlineComments(cs):
		return dom.Concat(doc, dom.Text(" "), inlineList(cs), dom.Text(";"))
	}
	return dom.Concat(doc, dom.Text("; "), p.commentList(cs), dom.Breakline)
}

// inlineList joins comments with spaces.
func inlineList(cs []*ast.Comment) dom.Doc {
	docs := make([]dom.Doc, len(cs))
	for i, c := range cs {
		docs[i] = dom.Text(c.String())
	}
	return dom.Join(dom.Text(" "), docs)
}

// indent indents docs by one level.
func (p *printer) indent(docs ...dom.Doc) dom.Doc {
	return dom.Indent(p.options.TabWidth, docs...)
}
