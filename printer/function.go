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
	"github.com/bufbuild/jsfmt/ast"
	"github.com/bufbuild/jsfmt/dom"
	"github.com/bufbuild/jsfmt/walk"
)

func (p *printer) printFunction(async, generator bool) dom.Doc {
	head := "function"
	if async {
		head = "async " + head
	}
	if generator {
		head += "*"
	}
	return dom.Concat(dom.Text(head+" "), p.child("id"), p.signature())
}

// signature prints the type parameters, parameters, return type and body of
// the current function-like node.
func (p *printer) signature() dom.Doc {
	return dom.Concat(
		p.child("typeParameters"),
		p.printParams(),
		p.returnType(),
		dom.Text(" "),
		p.child("body"),
	)
}

func (p *printer) returnType() dom.Doc {
	if t, _, _ := ast.Lookup(p.path.Current(), "returnType"); ast.IsNil(t) {
		return nil
	}
	return dom.Concat(dom.Text(": "), p.child("returnType"))
}

// printParams prints the parameter list of the current function-like node.
func (p *printer) printParams() dom.Doc {
	_, params, _ := ast.Lookup(p.path.Current(), "params")
	if len(params) == 0 {
		return dom.Text("()")
	}

	docs := p.list("params")
	if len(params) == 1 && isKind(params[0], ast.KindObjectPattern) && !p.hasComments(params[0]) {
		return dom.Concat(dom.Text("("), docs[0], dom.Text(")"))
	}
	return dom.MultilineGroup(
		dom.Text("("),
		p.indent(dom.Softline, commaList(docs)),
		p.trailingComma(TrailingCommaAll, params[len(params)-1]),
		dom.Softline,
		dom.Text(")"),
	)
}

func (p *printer) printArrow(n *ast.ArrowFunctionExpression) dom.Doc {
	var docs []dom.Doc
	if n.Async {
		docs = append(docs, dom.Text("async "))
	}
	if p.canOmitArrowParens(n) {
		docs = append(docs, p.list("params")...)
	} else {
		docs = append(docs, p.child("typeParameters"), p.printParams(), p.returnType())
	}
	docs = append(docs, dom.Text(" =>"))

	body := p.child("body")
	switch {
	case isJSX(n.Body) && !p.hasComments(n.Body):
		docs = append(docs, dom.Text(" "), p.parensIfBroken(body))
	case isKind(n.Body, ast.KindBlockStatement, ast.KindObjectExpression, ast.KindArrayExpression,
		ast.KindTemplateLiteral, ast.KindArrowFunctionExpression) && !p.hasLeadingLineComment(n.Body),
		dom.StartsWith(body, "("):
		docs = append(docs, dom.Text(" "), body)
	default:
		docs = append(docs, dom.Group(p.indent(dom.Line, body)))
	}
	return dom.Concat(docs...)
}

// canOmitArrowParens returns whether the parameters of n can be printed
// without parentheses.
func (p *printer) canOmitArrowParens(n *ast.ArrowFunctionExpression) bool {
	if p.options.ArrowParensAlways || len(n.Params) != 1 ||
		!ast.IsNil(n.TypeParameters) || !ast.IsNil(n.ReturnType) {
		return false
	}
	id, ok := n.Params[0].(*ast.Identifier)
	return ok && !id.Optional && ast.IsNil(id.TypeAnnotation) && !p.hasComments(id)
}

// decorators prints the decorators of the current node, on their own lines
// if they were written that way.
func (p *printer) decorators() dom.Doc {
	n := p.path.Current()
	_, list, _ := ast.Lookup(n, "decorators")
	if len(list) == 0 {
		return nil
	}
	docs := p.list("decorators")

	var next ast.Node
	for ch := range ast.Children(n) {
		if ch.Field != "decorators" {
			next = ch.Node
			break
		}
	}
	last := list[len(list)-1]
	if ast.IsNil(next) || ast.IsNil(last) || !startsOnNewLine(last, next) {
		return dom.Concat(dom.Join(dom.Text(" "), docs), dom.Text(" "))
	}
	return dom.Concat(dom.Join(dom.Hardline, docs), dom.Hardline)
}

// exportParent returns the export declaration that wraps the current node,
// if any.
func (p *printer) exportParent() ast.Node {
	if p.path.Field() != "declaration" ||
		!isKind(p.path.Parent(), ast.KindExportNamedDeclaration, ast.KindExportDefaultDeclaration) {
		return nil
	}
	return p.path.Parent()
}

func (p *printer) printClass(decorators []ast.Node, id, superClass ast.Node, implements []ast.Node) dom.Doc {
	var docs []dom.Doc
	if !decoratorsOwnedByExport(p.exportParent(), decorators) {
		docs = append(docs, p.decorators())
	}
	docs = append(docs, dom.Text("class"))
	if !ast.IsNil(id) {
		docs = append(docs, dom.Text(" "), p.child("id"))
	}
	docs = append(docs, p.child("typeParameters"))

	var heritage []dom.Doc
	if !ast.IsNil(superClass) {
		heritage = append(heritage,
			dom.Line, dom.Text("extends "), p.child("superClass"), p.child("superTypeParameters"))
	}
	if len(implements) > 0 {
		heritage = append(heritage,
			dom.Line, dom.Text("implements "), dom.Join(dom.Text(", "), p.list("implements")))
	}
	if len(heritage) > 0 {
		docs = append(docs, dom.Group(p.indent(heritage...)))
	}
	return dom.Concat(append(docs, dom.Text(" "), p.child("body"))...)
}

func (p *printer) printClassBody(n *ast.ClassBody) dom.Doc {
	return p.printBlock(n, "body")
}

// printMethod prints a Babel class or object method, whose signature is on
// the node itself.
func (p *printer) printMethod(kind string, static, async, generator, computed bool) dom.Doc {
	return dom.Concat(
		p.decorators(),
		p.methodHead(kind, static, async, generator, computed),
		p.signature(),
	)
}

func (p *printer) printMethodDefinition(n *ast.MethodDefinition) dom.Doc {
	return p.printFunctionValue(n, n.Value, n.MethodKind, n.Static, n.Computed)
}

// printFunctionValue prints an ESTree method, whose signature is the function
// expression in its value.
func (p *printer) printFunctionValue(n, value ast.Node, kind string, static, computed bool) dom.Doc {
	fn, ok := value.(*ast.FunctionExpression)
	if !ok || fn == nil {
		invariant(n, "method value must be a FunctionExpression, found %s", describe(value))
	}
	head := p.methodHead(kind, static, fn.Async, fn.Generator, computed)
	sig := walk.Call(p.path, func(*walk.Path) dom.Doc {
		return p.withComments(fn, p.signature())
	}, "value")
	return dom.Concat(p.decorators(), head, sig)
}

func (p *printer) methodHead(kind string, static, async, generator, computed bool) dom.Doc {
	var prefix string
	if static {
		prefix += "static "
	}
	if async {
		prefix += "async "
	}
	if kind == "get" || kind == "set" {
		prefix += kind + " "
	}
	if generator {
		prefix += "*"
	}
	return dom.Concat(dom.Text(prefix), p.printKey(computed))
}

func (p *printer) printClassProperty(n *ast.ClassProperty) dom.Doc {
	left := []dom.Doc{p.decorators()}
	if n.Static {
		left = append(left, dom.Text("static "))
	}
	left = append(left, p.child("variance"), p.printKey(n.Computed), p.typeAnnotation())
	if ast.IsNil(n.Value) {
		return dom.Concat(append(left, dom.Text(";"))...)
	}
	return dom.Concat(p.assignment(dom.Concat(left...), " =", n.Value, p.child("value")), dom.Text(";"))
}

// describe names the kind of n for error messages.
func describe(n ast.Node) string {
	if ast.IsNil(n) {
		return "nothing"
	}
	return n.Kind().String()
}
