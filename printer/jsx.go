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
	"strings"

	"github.com/bufbuild/jsfmt/ast"
	"github.com/bufbuild/jsfmt/dom"
	"github.com/bufbuild/jsfmt/internal/stringsx"
	"github.com/bufbuild/jsfmt/walk"
)

// jsxGap is the whitespace between two children of a JSX element, or
// between a child and the tags around it.
type jsxGap int8

const (
	jsxAdjacent jsxGap = iota // No whitespace.
	jsxSpace                  // Whitespace without a newline; significant.
	jsxBreak                  // Whitespace with a newline; insignificant.
)

// jsxWhitespace is the whitespace JSX text trims and collapses. Other space
// characters, such as U+00A0, are content.
const jsxWhitespace = " \t\r\n"

func isJSXWhitespace(r rune) bool {
	return strings.ContainsRune(jsxWhitespace, r)
}

func gapOf(ws string) jsxGap {
	switch {
	case ws == "":
		return jsxAdjacent
	case strings.Contains(ws, "\n"):
		return jsxBreak
	}
	return jsxSpace
}

// jsxSpaceDoc is a significant space, which has to be written as an
// expression at the end of a broken line.
var jsxSpaceDoc = dom.Concat(dom.TextIf(dom.Flat, " "), dom.TextIf(dom.Broken, `{" "}`))

// separator returns the document between two children of an element.
func (g jsxGap) separator() dom.Doc {
	switch g {
	case jsxSpace:
		return dom.Concat(jsxSpaceDoc, dom.Softline)
	case jsxBreak:
		return dom.Hardline
	}
	return dom.Softline
}

// edge returns the document between an opening or closing tag and the
// children next to it.
func (g jsxGap) edge(opening bool) dom.Doc {
	switch {
	case g != jsxSpace:
		return dom.Softline
	case opening:
		return dom.Concat(dom.Softline, jsxSpaceDoc, dom.Softline)
	}
	return dom.Concat(jsxSpaceDoc, dom.Softline)
}

// printJSXElement prints an element or fragment. closing is nil for a
// self-closing element.
func (p *printer) printJSXElement(closing ast.Node, openField, closeField string) dom.Doc {
	open := p.child(openField)
	if ast.IsNil(closing) {
		return open
	}
	close := p.child(closeField)

	var body []dom.Doc
	gap := jsxAdjacent
	p.path.Each("children", func(*walk.Path, int) {
		child := p.path.Current()
		if ast.IsNil(child) || p.isEmptyJSXContainer(child) {
			return
		}

		text, ok := child.(*ast.JSXText)
		if !ok {
			body = append(body, p.jsxSeparator(gap, len(body) == 0), p.print())
			gap = jsxAdjacent
			return
		}

		lead, lines, trail := splitJSXText(jsxRaw(text))
		gap = max(gap, lead)
		if len(lines) == 0 {
			return
		}
		body = append(body, p.jsxSeparator(gap, len(body) == 0))
		for i, line := range lines {
			if i > 0 {
				body = append(body, dom.Hardline)
			}
			body = append(body, dom.Text(line))
		}
		gap = trail
	})

	if len(body) == 0 {
		if gap == jsxSpace {
			return dom.Concat(open, dom.Text(" "), close)
		}
		return dom.Concat(open, close)
	}
	return dom.Group(open, p.indent(body...), gap.edge(false), close)
}

func (p *printer) jsxSeparator(gap jsxGap, first bool) dom.Doc {
	if first {
		return gap.edge(true)
	}
	return gap.separator()
}

// isEmptyJSXContainer returns whether n is a `{}` child with nothing in it,
// not even a comment.
func (p *printer) isEmptyJSXContainer(n ast.Node) bool {
	c, ok := n.(*ast.JSXExpressionContainer)
	if !ok || !isKind(c.Expression, ast.KindJSXEmptyExpression) {
		return false
	}
	return len(p.comments.Dangling(c.Expression)) == 0 && len(p.comments.Dangling(c)) == 0 &&
		!p.hasComments(c) && !p.hasComments(c.Expression)
}

func jsxRaw(n *ast.JSXText) string {
	if n.Raw != "" {
		return n.Raw
	}
	return n.Value
}

// splitJSXText splits JSX text into the whitespace before it, its lines with
// interior whitespace collapsed, and the whitespace after it. Lines that are
// blank after collapsing are dropped.
func splitJSXText(raw string) (lead jsxGap, lines []string, trail jsxGap) {
	trimmed := strings.TrimLeft(raw, jsxWhitespace)
	lead = gapOf(raw[:len(raw)-len(trimmed)])
	if trimmed == "" {
		return lead, nil, lead
	}
	content := strings.TrimRight(trimmed, jsxWhitespace)
	trail = gapOf(trimmed[len(content):])

	for line := range stringsx.Lines(content) {
		if words := strings.FieldsFunc(line, isJSXWhitespace); len(words) > 0 {
			lines = append(lines, strings.Join(words, " "))
		}
	}
	return lead, lines, trail
}

// printJSXText prints text outside of the children of an element.
func (p *printer) printJSXText(n *ast.JSXText) dom.Doc {
	_, lines, _ := splitJSXText(jsxRaw(n))
	docs := make([]dom.Doc, len(lines))
	for i, line := range lines {
		docs[i] = dom.Text(line)
	}
	return dom.Join(dom.Hardline, docs)
}

func (p *printer) printJSXOpening(n *ast.JSXOpeningElement) dom.Doc {
	name := dom.Concat(dom.Text("<"), p.child("name"), p.child("typeParameters"))
	if len(n.Attributes) == 0 {
		if n.SelfClosing {
			return dom.Concat(name, dom.Text(" />"))
		}
		return dom.Concat(name, dom.Text(">"))
	}

	var attrs []dom.Doc
	for _, attr := range p.list("attributes") {
		attrs = append(attrs, dom.Line, attr)
	}
	end := dom.Concat(dom.Softline, dom.Text(">"))
	if n.SelfClosing {
		end = dom.Concat(dom.Line, dom.Text("/>"))
	}
	return dom.Group(name, p.indent(attrs...), end)
}

func (p *printer) printJSXAttribute(n *ast.JSXAttribute) dom.Doc {
	if ast.IsNil(n.Value) {
		return p.child("name")
	}
	if s, ok := n.Value.(*ast.StringLiteral); ok {
		return dom.Concat(p.child("name"), dom.Text("="), p.withComments(s, dom.Text(jsxQuote(s))))
	}
	return dom.Concat(p.child("name"), dom.Text("="), p.child("value"))
}

// jsxQuote prints a JSX attribute string. These have no escapes, so a quote
// that matches the enclosing one is written as an entity.
func jsxQuote(s *ast.StringLiteral) string {
	content := s.Value
	if s.Raw != "" {
		content = unquoteRaw(s.Raw)
	}
	if stringsx.Count(content, '"') > stringsx.Count(content, '\'') {
		return "'" + strings.ReplaceAll(content, "'", "&apos;") + "'"
	}
	return `"` + strings.ReplaceAll(content, `"`, "&quot;") + `"`
}
