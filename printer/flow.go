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
	"github.com/bufbuild/jsfmt/walk"
)

// declare returns the declare keyword for the current declaration, unless a
// declare export around it already printed one.
func (p *printer) declare() string {
	if isKind(p.path.Parent(), ast.KindDeclareExportDeclaration) {
		return ""
	}
	return "declare "
}

func (p *printer) static(static bool) dom.Doc {
	if !static {
		return nil
	}
	return dom.Text("static ")
}

func (p *printer) printTypeAlias(prefix string) dom.Doc {
	return dom.Concat(
		dom.Text(prefix), p.child("id"), p.child("typeParameters"),
		dom.Text(" = "), p.child("right"), dom.Text(";"),
	)
}

func (p *printer) printOpaqueType(n *ast.OpaqueType) dom.Doc {
	prefix := "opaque type "
	if ast.IsNil(n.Impltype) {
		prefix = p.declare() + prefix
	}
	docs := []dom.Doc{dom.Text(prefix), p.child("id"), p.child("typeParameters")}
	if !ast.IsNil(n.Supertype) {
		docs = append(docs, dom.Text(": "), p.child("supertype"))
	}
	if !ast.IsNil(n.Impltype) {
		docs = append(docs, dom.Text(" = "), p.child("impltype"))
	}
	return dom.Concat(append(docs, dom.Text(";"))...)
}

// printInterface prints an interface or a declared class.
func (p *printer) printInterface(prefix string, extends []ast.Node) dom.Doc {
	docs := []dom.Doc{dom.Text(prefix), p.child("id"), p.child("typeParameters")}
	if len(extends) > 0 {
		docs = append(docs, dom.Text(" extends "), dom.Join(dom.Text(", "), p.list("extends")))
	}
	return dom.Concat(append(docs, dom.Text(" "), p.child("body"))...)
}

func (p *printer) printDeclareFunction(n *ast.DeclareFunction) dom.Doc {
	id, ok := n.Id.(*ast.Identifier)
	if !ok || id == nil {
		invariant(n, "declared function name must be an Identifier, found %s", describe(n.Id))
	}
	var fn ast.Node
	if t, ok := id.TypeAnnotation.(*ast.TypeAnnotation); ok && t != nil {
		fn = t.TypeAnnotation
	}
	if !isKind(fn, ast.KindFunctionTypeAnnotation) {
		invariant(n, "declared function %s has no function type", id.Name)
	}

	sig := walk.Call(p.path, func(*walk.Path) dom.Doc {
		return p.withComments(fn, p.functionTypeSignature(false))
	}, "id", "typeAnnotation", "typeAnnotation")
	return dom.Concat(
		dom.Text(p.declare()+"function "),
		p.withComments(id, dom.Text(id.Name)),
		sig,
		dom.Text(";"),
	)
}

func (p *printer) printDeclareExport(n *ast.DeclareExportDeclaration) dom.Doc {
	docs := []dom.Doc{dom.Text("declare export ")}
	if n.Default {
		docs = append(docs, dom.Text("default "))
	}
	if !ast.IsNil(n.Declaration) {
		docs = append(docs, p.child("declaration"))
		if !isDeclaration(n.Declaration) {
			docs = append(docs, dom.Text(";"))
		}
		return dom.Concat(docs...)
	}

	if len(n.Specifiers) == 0 {
		docs = append(docs, dom.Text("{}"))
	} else {
		docs = append(docs, p.specifierList(n.Specifiers))
	}
	if !ast.IsNil(n.Source) {
		docs = append(docs, dom.Text(" from "), p.child("source"))
	}
	return dom.Concat(append(docs, dom.Text(";"))...)
}

// isDeclaration returns whether n is a declaration that prints its own
// terminator, if it has one.
func isDeclaration(n ast.Node) bool {
	switch n.(type) {
	case *ast.FunctionDeclaration, *ast.ClassDeclaration, *ast.VariableDeclaration,
		*ast.DeclareFunction, *ast.DeclareClass, *ast.DeclareVariable,
		*ast.DeclareTypeAlias, *ast.DeclareInterface, *ast.TypeAlias,
		*ast.OpaqueType, *ast.InterfaceDeclaration:
		return true
	}
	return false
}

func (p *printer) printObjectType(n *ast.ObjectTypeAnnotation) dom.Doc {
	open, close := "{", "}"
	if n.Exact {
		open, close = "{|", "|}"
	}

	type member struct {
		start source.Position
		doc   dom.Doc
	}
	var members []member
	for _, field := range []string{"properties", "indexers", "callProperties"} {
		p.path.Each(field, func(*walk.Path, int) {
			if m := p.path.Current(); !ast.IsNil(m) {
				members = append(members, member{m.Span().Start, p.print()})
			}
		})
	}
	if len(members) == 0 {
		return p.danglingIn(n, open, close)
	}
	slices.SortStableFunc(members, func(a, b member) int { return source.Compare(a.start, b.start) })

	docs := make([]dom.Doc, len(members))
	for i, m := range members {
		docs[i] = m.doc
	}
	space := dom.Softline
	if p.options.ObjectCurlySpacing {
		space = dom.Line
	}
	return dom.MultilineGroup(
		dom.Text(open),
		p.indent(space, dom.Join(dom.Concat(dom.Text(";"), dom.Line), docs)),
		dom.TextIf(dom.Broken, ";"),
		space,
		dom.Text(close),
	)
}

func (p *printer) printObjectTypeProperty(n *ast.ObjectTypeProperty) dom.Doc {
	docs := []dom.Doc{p.static(n.Static), p.child("variance"), p.child("key")}
	if n.Method {
		return dom.Concat(append(docs, p.child("value"))...)
	}
	if n.Optional {
		docs = append(docs, dom.Text("?"))
	}
	return dom.Concat(append(docs, dom.Text(": "), p.child("value"))...)
}

func (p *printer) printObjectTypeIndexer(n *ast.ObjectTypeIndexer) dom.Doc {
	docs := []dom.Doc{p.static(n.Static), p.child("variance"), dom.Text("[")}
	if !ast.IsNil(n.Id) {
		docs = append(docs, p.child("id"), dom.Text(": "))
	}
	return dom.Concat(append(docs, p.child("key"), dom.Text("]: "), p.child("value"))...)
}

func (p *printer) printUnionType() dom.Doc {
	n := p.path.Current().(*ast.UnionTypeAnnotation)
	docs := p.list("types")
	if shouldHugUnion(n) {
		return dom.Join(dom.Text(" | "), docs)
	}

	code := dom.Concat(dom.TextIf(dom.Broken, "| "), dom.Join(dom.Concat(dom.Line, dom.Text("| ")), docs))
	switch {
	case NeedsParens(p.path):
		return dom.Group(p.indent(dom.Softline, code), dom.Softline)
	case p.indentsUnion():
		return dom.Group(p.indent(dom.Softline, code))
	}
	return dom.Group(code)
}

// indentsUnion returns whether a union in the current position starts on a
// new, indented line when it breaks.
func (p *printer) indentsUnion() bool {
	switch parent := p.path.Parent().(type) {
	case *ast.TypeParameterInstantiation, *ast.GenericTypeAnnotation, *ast.TupleTypeAnnotation:
		return false
	case *ast.FunctionTypeParam:
		return !ast.IsNil(parent.Name)
	}
	return true
}

// shouldHugUnion returns whether n is an object type made optional with
// null or void, which prints as if it were just the object type.
func shouldHugUnion(n *ast.UnionTypeAnnotation) bool {
	if len(n.Types) != 2 {
		return false
	}
	objects, empties := 0, 0
	for _, t := range n.Types {
		switch {
		case isKind(t, ast.KindObjectTypeAnnotation):
			objects++
		case isKind(t, ast.KindVoidTypeAnnotation, ast.KindNullLiteralTypeAnnotation):
			empties++
		}
	}
	return objects == 1 && empties == 1
}

func (p *printer) printIntersectionType() dom.Doc {
	docs := p.list("types")
	if len(docs) == 0 {
		return nil
	}
	var rest []dom.Doc
	for _, doc := range docs[1:] {
		rest = append(rest, dom.Text(" &"), dom.Line, doc)
	}
	return dom.Group(docs[0], p.indent(rest...))
}

// printBracketed prints a list field of the current node between brackets.
func (p *printer) printBracketed(open, field, close string) dom.Doc {
	docs := p.list(field)
	if len(docs) == 0 {
		return dom.Text(open + close)
	}
	return dom.MultilineGroup(
		dom.Text(open),
		p.indent(dom.Softline, commaList(docs)),
		dom.Softline,
		dom.Text(close),
	)
}

func (p *printer) printFunctionType() dom.Doc {
	arrow := true
	switch parent := p.path.Parent().(type) {
	case *ast.ObjectTypeProperty:
		arrow = !parent.Method
	case *ast.ObjectTypeCallProperty:
		arrow = false
	}
	return p.functionTypeSignature(arrow)
}

// functionTypeSignature prints the current function type either as an
// arrow, `(x: T) => R`, or as a method signature, `(x: T): R`.
func (p *printer) functionTypeSignature(arrow bool) dom.Doc {
	n := p.path.Current().(*ast.FunctionTypeAnnotation)
	params := p.list("params")
	if !ast.IsNil(n.Rest) {
		params = append(params, dom.Concat(dom.Text("..."), p.child("rest")))
	}

	var list dom.Doc = dom.Text("()")
	if len(params) > 0 {
		list = dom.MultilineGroup(
			dom.Text("("),
			p.indent(dom.Softline, commaList(params)),
			dom.Softline,
			dom.Text(")"),
		)
	}

	sep := ": "
	if arrow {
		sep = " => "
	}
	return dom.Concat(p.child("typeParameters"), list, dom.Text(sep), p.child("returnType"))
}

func (p *printer) printFunctionTypeParam(n *ast.FunctionTypeParam) dom.Doc {
	if ast.IsNil(n.Name) {
		return p.child("typeAnnotation")
	}
	docs := []dom.Doc{p.child("name")}
	if n.Optional {
		docs = append(docs, dom.Text("?"))
	}
	return dom.Concat(append(docs, dom.Text(": "), p.child("typeAnnotation"))...)
}

func (p *printer) printTypeParameter(n *ast.TypeParameter) dom.Doc {
	docs := []dom.Doc{p.child("variance"), dom.Text(n.Name)}
	if !ast.IsNil(n.Bound) {
		docs = append(docs, dom.Text(": "), p.child("bound"))
	}
	if !ast.IsNil(n.Default) {
		docs = append(docs, dom.Text(" = "), p.child("default"))
	}
	return dom.Concat(docs...)
}
