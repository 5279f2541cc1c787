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
	"strings"

	"github.com/bufbuild/jsfmt/dom"
	"github.com/bufbuild/jsfmt/internal/stringsx"
	"github.com/bufbuild/jsfmt/source"
	"github.com/bufbuild/jsfmt/template/ast"
)

// voidTags are the HTML elements that never have content or a closing tag.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "command": true,
	"embed": true, "hr": true, "img": true, "input": true, "keygen": true,
	"link": true, "meta": true, "param": true, "source": true, "track": true,
	"wbr": true,
}

func (p *printer) printElement(n *ast.ElementNode) dom.Doc {
	open := p.openTag(n)
	if voidTags[n.Tag] {
		return dom.Concat(open, dom.Text(">"))
	}

	body := p.children(n.Children)
	if dom.IsEmpty(body) {
		return dom.Concat(open, dom.Text(" />"), dom.Hardline)
	}
	return dom.Group(
		open, dom.Text(">"),
		p.indent(dom.Softline, body),
		dom.Softline,
		dom.Text("</"+n.Tag+">"),
	)
}

// openTag prints an opening tag up to, but not including, its `>`.
// Attributes, modifiers and comments are printed in source order.
func (p *printer) openTag(n *ast.ElementNode) dom.Doc {
	var parts []ast.Node
	for _, attr := range n.Attributes {
		parts = append(parts, attr)
	}
	for _, mod := range n.Modifiers {
		parts = append(parts, mod)
	}
	for _, c := range n.Comments {
		parts = append(parts, c)
	}
	slices.SortStableFunc(parts, func(a, b ast.Node) int {
		return source.Compare(a.Span().Start, b.Span().Start)
	})

	docs := []dom.Doc{dom.Text("<" + n.Tag)}
	for _, part := range parts {
		docs = append(docs, dom.Text(" "), p.print(part))
	}
	if len(n.BlockParams) > 0 {
		docs = append(docs, dom.Text(" as |"+strings.Join(n.BlockParams, " ")+"|"))
	}
	return dom.Concat(docs...)
}

func (p *printer) printAttr(n *ast.AttrNode) dom.Doc {
	switch value := n.Value.(type) {
	case nil:
		return dom.Text(n.Name)
	case *ast.TextNode:
		if value.Chars == "" {
			return dom.Text(n.Name)
		}
		quote := `"`
		if strings.Contains(value.Chars, `"`) && !strings.Contains(value.Chars, `'`) {
			quote = `'`
		}
		return dom.Text(n.Name + "=" + quote + value.Chars + quote)
	}

	p.inAttr++
	defer func() { p.inAttr-- }()
	return dom.Concat(dom.Text(n.Name+"="), p.print(n.Value))
}

// printConcat prints a quoted attribute value. Its text parts are printed
// exactly as written.
func (p *printer) printConcat(n *ast.ConcatStatement) dom.Doc {
	docs := []dom.Doc{dom.Text(`"`)}
	for _, part := range n.Parts {
		if text, ok := part.(*ast.TextNode); ok {
			docs = append(docs, dom.Text(text.Chars))
			continue
		}
		docs = append(docs, p.print(part))
	}
	return dom.Concat(append(docs, dom.Text(`"`))...)
}

// children joins the printed children of an element or block.
//
// Text is collapsed and trimmed, and text that is only whitespace is
// dropped. Children that had whitespace between them are separated by a
// line that prints as a space when flat; adjacent ones by a soft line.
func (p *printer) children(nodes []ast.Node) dom.Doc {
	var docs []dom.Doc
	space := false
	add := func(doc dom.Doc) {
		if len(docs) > 0 {
			if space {
				docs = append(docs, dom.Line)
			} else {
				docs = append(docs, dom.Softline)
			}
		}
		docs = append(docs, doc)
	}

	for _, n := range nodes {
		text, ok := n.(*ast.TextNode)
		if !ok {
			if doc := p.print(n); !dom.IsEmpty(doc) {
				add(doc)
				space = false
			}
			continue
		}

		collapsed := stringsx.CollapseSpace(text.Chars)
		trimmed := strings.TrimSpace(collapsed)
		if trimmed == "" {
			space = space || collapsed != ""
			continue
		}
		space = space || strings.HasPrefix(collapsed, " ")
		add(p.print(text))
		space = strings.HasSuffix(collapsed, " ")
	}
	return dom.Concat(docs...)
}

// collapse replaces every run of whitespace in s with one space and trims
// both ends.
func collapse(s string) string {
	return strings.TrimSpace(stringsx.CollapseSpace(s))
}
