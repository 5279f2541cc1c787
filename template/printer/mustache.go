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
	"strconv"
	"strings"

	"github.com/bufbuild/jsfmt/dom"
	"github.com/bufbuild/jsfmt/template/ast"
)

func (p *printer) printMustache(n *ast.MustacheStatement) dom.Doc {
	opening, closing := "{{", "}}"
	if !n.Escaped {
		opening, closing = "{{{", "}}}"
	}
	if n.Strip.Open {
		opening += "~"
	}
	if n.Strip.Close {
		closing = "~" + closing
	}
	return dom.Group(dom.Text(opening), p.call(n.Path, n.Params, n.Hash), dom.Text(closing))
}

// call prints a helper invocation: the path followed by its positional
// parameters and its hash, all separated by lines.
func (p *printer) call(path ast.Node, params []ast.Node, hash *ast.Hash) dom.Doc {
	var args []dom.Doc
	for _, param := range params {
		args = append(args, p.print(param))
	}
	if hash != nil && len(hash.Pairs) > 0 {
		args = append(args, p.print(hash))
	}
	if len(args) == 0 {
		return p.print(path)
	}
	return dom.Concat(p.print(path), p.indent(dom.Line, dom.Join(dom.Line, args)))
}

// printBlock prints a block with its inverse sections. A chain of
// `{{else if}}` sections is printed flat rather than nested.
func (p *printer) printBlock(n *ast.BlockStatement) dom.Doc {
	if ast.IsNil(n.Path) {
		invariant(n, "block has no path")
	}

	docs := []dom.Doc{
		dom.Group(dom.Text("{{#"), p.call(n.Path, n.Params, n.Hash), blockParams(n.Program), dom.Text("}}")),
	}
	empty := true
	section := func(body *ast.Program) {
		if body == nil {
			return
		}
		if doc := p.children(body.Body); !dom.IsEmpty(doc) {
			docs = append(docs, p.indent(dom.Hardline, dom.Group(doc)), dom.Hardline)
			empty = false
		}
	}

	section(n.Program)
	for inverse := n.Inverse; inverse != nil; {
		if chained := chainedBlock(inverse); chained != nil {
			docs = append(docs, dom.Group(
				dom.Text("{{else "), p.call(chained.Path, chained.Params, chained.Hash),
				blockParams(chained.Program), dom.Text("}}"),
			))
			section(chained.Program)
			inverse = chained.Inverse
			continue
		}
		docs = append(docs, dom.Text("{{else}}"))
		section(inverse)
		break
	}

	if !empty && !dom.HasHardLine(docs[len(docs)-1]) {
		docs = append(docs, dom.Hardline)
	}
	docs = append(docs, dom.Text("{{/"), p.print(n.Path), dom.Text("}}"))
	return dom.Concat(docs...)
}

// chainedBlock returns the block an inverse section consists of, if it was
// written as `{{else path}}`.
func chainedBlock(inverse *ast.Program) *ast.BlockStatement {
	if len(inverse.Body) != 1 {
		return nil
	}
	block, ok := inverse.Body[0].(*ast.BlockStatement)
	if !ok || !block.Chained || ast.IsNil(block.Path) {
		return nil
	}
	return block
}

func blockParams(program *ast.Program) dom.Doc {
	if program == nil || len(program.BlockParams) == 0 {
		return nil
	}
	return dom.Text(" as |" + strings.Join(program.BlockParams, " ") + "|")
}

// pathString prints a path expression as its dot-joined segments.
func pathString(n *ast.PathExpression) string {
	parts := strings.Join(n.Parts, ".")
	switch {
	case n.This && parts == "":
		return "this"
	case n.This:
		return "this." + parts
	case n.Data:
		return "@" + parts
	case parts == "":
		return n.Original
	}
	return parts
}

// quote prints a string literal. Double quotes are preferred, except inside
// an attribute value where the attribute itself is double-quoted.
func (p *printer) quote(value string) string {
	quote, alternate := `"`, `'`
	if p.inAttr > 0 {
		quote, alternate = alternate, quote
	}
	if strings.Contains(value, quote) && !strings.Contains(value, alternate) {
		quote = alternate
	}
	return quote + strings.ReplaceAll(value, quote, `\`+quote) + quote
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// mustacheComment prints a mustache comment, using the long delimiters when
// the text contains mustache braces that would otherwise end it early or be
// read as nesting.
func mustacheComment(value string) string {
	if strings.Contains(value, "{{") || strings.Contains(value, "}}") {
		return "{{!--" + value + "--}}"
	}
	return "{{!" + value + "}}"
}
