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

// Package printer translates a template tree into a [dom.Doc].
//
// It shares the document model and renderer with the JavaScript printer, but
// its node set is disjoint and much smaller: elements, attributes, text and
// the mustache family. A node of a kind it does not know aborts the print
// with [reporter.ErrUnsupportedKind].
package printer

import (
	"fmt"

	"github.com/bufbuild/jsfmt/dom"
	"github.com/bufbuild/jsfmt/reporter"
	"github.com/bufbuild/jsfmt/template/ast"
)

// Print translates the tree rooted at root into a document.
func Print(options Options, root ast.Node) (doc dom.Doc, err error) {
	p := &printer{options: options.withDefaults()}
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(printPanic)
			if !ok {
				panic(r)
			}
			doc, err = nil, e.err
		}
	}()
	return p.print(root), nil
}

// printPanic carries a fatal error out of the recursive printer.
type printPanic struct{ err error }

type printer struct {
	options Options

	// inAttr is non-zero while printing the value of an attribute, where
	// string literals prefer single quotes.
	inAttr int
}

func (p *printer) print(n ast.Node) dom.Doc {
	if ast.IsNil(n) {
		return nil
	}
	doc := p.printNode(n)
	if p.options.SourceMaps {
		doc = dom.Mark(n.Span().Start, doc)
	}
	return doc
}

func (p *printer) printNode(n ast.Node) dom.Doc {
	switch n := n.(type) {
	case *ast.Program:
		return dom.Group(p.children(n.Body))
	case *ast.ElementNode:
		return p.printElement(n)
	case *ast.AttrNode:
		return p.printAttr(n)
	case *ast.TextNode:
		return dom.Text(collapse(n.Chars))
	case *ast.MustacheStatement:
		return p.printMustache(n)
	case *ast.BlockStatement:
		return p.printBlock(n)
	case *ast.ElementModifierStatement:
		return dom.Group(dom.Text("{{"), p.call(n.Path, n.Params, n.Hash), dom.Text("}}"))
	case *ast.SubExpression:
		return dom.Group(dom.Text("("), p.call(n.Path, n.Params, n.Hash), dom.Softline, dom.Text(")"))
	case *ast.PathExpression:
		return dom.Text(pathString(n))
	case *ast.ConcatStatement:
		return p.printConcat(n)
	case *ast.Hash:
		docs := make([]dom.Doc, len(n.Pairs))
		for i, pair := range n.Pairs {
			docs[i] = p.print(pair)
		}
		return dom.Join(dom.Line, docs)
	case *ast.HashPair:
		return dom.Concat(dom.Text(n.Key+"="), p.print(n.Value))
	case *ast.StringLiteral:
		return dom.Text(p.quote(n.Value))
	case *ast.NumberLiteral:
		return dom.Text(formatNumber(n.Value))
	case *ast.BooleanLiteral:
		return dom.Text(fmt.Sprint(n.Value))
	case *ast.NullLiteral:
		return dom.Text("null")
	case *ast.UndefinedLiteral:
		return dom.Text("undefined")
	case *ast.CommentStatement:
		return dom.Text("<!--" + n.Value + "-->")
	case *ast.MustacheCommentStatement:
		return dom.Text(mustacheComment(n.Value))
	default:
		panic(printPanic{reporter.ErrUnsupportedKind{
			Dialect: "template",
			Kind:    n.Kind().String(),
			Pos:     n.Span().Start,
		}})
	}
}

func invariant(n ast.Node, format string, args ...any) {
	panic(printPanic{reporter.ErrInvariant{
		Kind:   n.Kind().String(),
		Detail: fmt.Sprintf(format, args...),
		Pos:    n.Span().Start,
	}})
}

func (p *printer) indent(docs ...dom.Doc) dom.Doc {
	return dom.Indent(p.options.TabWidth, docs...)
}
