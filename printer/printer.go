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

// Package printer translates JavaScript, Flow and JSX trees into layout
// documents.
//
// [Print] is a total function over the kinds of package ast: every kind has a
// rule, and a node of any other type is reported as
// [reporter.ErrUnsupportedKind]. Nodes whose shape contradicts their kind,
// such as an import without a source, are reported as
// [reporter.ErrInvariant]. Either error aborts the whole print.
package printer

import (
	"fmt"

	"github.com/bufbuild/jsfmt/ast"
	"github.com/bufbuild/jsfmt/comments"
	"github.com/bufbuild/jsfmt/dom"
	"github.com/bufbuild/jsfmt/reporter"
	"github.com/bufbuild/jsfmt/walk"
)

// Print translates the tree rooted at root into a document. attachments may
// be nil, in which case no comments are printed.
func Print(options Options, root ast.Node, attachments *comments.Attachments) (doc dom.Doc, err error) {
	p := &printer{
		options:  options.withDefaults(),
		comments: attachments,
		path:     walk.NewPath(root),
	}

	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(printPanic)
			if !ok {
				panic(r)
			}
			doc, err = nil, e.err
		}
	}()

	return p.print(), nil
}

// printPanic carries a fatal error from deep inside the translation up to
// [Print].
type printPanic struct {
	err error
}

// printer tracks state for translating a single tree.
type printer struct {
	options  Options
	comments *comments.Attachments
	path     *walk.Path

	// Nodes whose dangling comments were printed by their kind's rule.
	dangled map[ast.Node]bool
}

// print translates the current node of the path, including its parentheses
// and attached comments. A nil node prints as nothing.
func (p *printer) print() dom.Doc {
	n := p.path.Current()
	if ast.IsNil(n) {
		return nil
	}

	doc := p.printNode(n)
	if !p.dangled[n] {
		doc = dom.Concat(doc, p.danglingAfter(n))
	}
	if NeedsParens(p.path) {
		doc = dom.Concat(dom.Text("("), doc, dom.Text(")"))
	}
	doc = p.withComments(n, doc)
	if p.options.SourceMaps {
		doc = dom.Mark(n.Span().Start, doc)
	}
	return doc
}

// child prints the node reached through a chain of scalar fields of the
// current node.
func (p *printer) child(fields ...string) dom.Doc {
	return walk.Call(p.path, func(*walk.Path) dom.Doc { return p.print() }, fields...)
}

// list prints every element of a list field of the current node.
func (p *printer) list(field string) []dom.Doc {
	return walk.Map(p.path, field, func(*walk.Path, int) dom.Doc { return p.print() })
}

// printNode dispatches on the kind of n.
//
//nolint:gocyclo // One case per kind.
func (p *printer) printNode(n ast.Node) dom.Doc {
	switch n := n.(type) {
	// Programs and statements.
	case *ast.File:
		return p.child("program")
	case *ast.Program:
		return p.printProgram(n)
	case *ast.Directive:
		return dom.Concat(p.child("value"), dom.Text(";"))
	case *ast.DirectiveLiteral:
		return p.printDirectiveLiteral(n)
	case *ast.EmptyStatement:
		return dom.Text(";")
	case *ast.ExpressionStatement:
		return dom.Concat(p.child("expression"), dom.Text(";"))
	case *ast.BlockStatement:
		return p.printBlock(n, "directives", "body")
	case *ast.IfStatement:
		return p.printIf(n)
	case *ast.ForStatement:
		return p.printFor(n)
	case *ast.ForInStatement:
		return p.printForIn(n.Body, "in", false)
	case *ast.ForOfStatement:
		return p.printForIn(n.Body, "of", n.Await)
	case *ast.WhileStatement:
		return dom.Concat(
			dom.Group(dom.Text("while ("), p.child("test"), dom.Text(")")),
			p.clause(n.Body, "body"),
		)
	case *ast.DoWhileStatement:
		return p.printDoWhile(n)
	case *ast.WithStatement:
		return dom.Concat(
			dom.Text("with ("), p.child("object"), dom.Text(")"),
			p.clause(n.Body, "body"),
		)
	case *ast.ReturnStatement:
		return p.printJump("return", n.Argument)
	case *ast.ThrowStatement:
		return p.printJump("throw", n.Argument)
	case *ast.BreakStatement:
		return p.printLabelJump("break", n.Label)
	case *ast.ContinueStatement:
		return p.printLabelJump("continue", n.Label)
	case *ast.LabeledStatement:
		if isKind(n.Body, ast.KindEmptyStatement) {
			return dom.Concat(p.child("label"), dom.Text(":;"))
		}
		return dom.Concat(p.child("label"), dom.Text(": "), p.child("body"))
	case *ast.DebuggerStatement:
		return p.terminated(n, dom.Text("debugger"))
	case *ast.TryStatement:
		return p.printTry(n)
	case *ast.CatchClause:
		return p.printCatch(n)
	case *ast.SwitchStatement:
		return p.printSwitch(n)
	case *ast.SwitchCase:
		return p.printSwitchCase(n)
	case *ast.VariableDeclaration:
		return p.printVariableDeclaration(n)
	case *ast.VariableDeclarator:
		return p.printVariableDeclarator(n)

	// Functions and classes.
	case *ast.FunctionDeclaration:
		return p.printFunction(n.Async, n.Generator)
	case *ast.FunctionExpression:
		return p.printFunction(n.Async, n.Generator)
	case *ast.ArrowFunctionExpression:
		return p.printArrow(n)
	case *ast.ClassDeclaration:
		return p.printClass(n.Decorators, n.Id, n.SuperClass, n.Implements)
	case *ast.ClassExpression:
		return p.printClass(n.Decorators, n.Id, n.SuperClass, n.Implements)
	case *ast.ClassBody:
		return p.printClassBody(n)
	case *ast.ClassMethod:
		return p.printMethod(n.MethodKind, n.Static, n.Async, n.Generator, n.Computed)
	case *ast.ObjectMethod:
		return p.printMethod(n.MethodKind, false, n.Async, n.Generator, n.Computed)
	case *ast.MethodDefinition:
		return p.printMethodDefinition(n)
	case *ast.ClassProperty:
		return p.printClassProperty(n)
	case *ast.ClassImplements:
		return dom.Concat(p.child("id"), p.child("typeParameters"))
	case *ast.Decorator:
		return dom.Concat(dom.Text("@"), p.child("expression"))

	// Expressions.
	case *ast.Identifier:
		return p.printIdentifier(n)
	case *ast.ThisExpression:
		return dom.Text("this")
	case *ast.Super:
		return dom.Text("super")
	case *ast.Import:
		return dom.Text("import")
	case *ast.StringLiteral:
		return dom.Text(p.quote(n.Raw, n.Value))
	case *ast.NumericLiteral:
		return dom.Text(printNumber(n.Raw, n.Value))
	case *ast.BigIntLiteral:
		return dom.Text(printBigInt(n.Raw, n.Value))
	case *ast.BooleanLiteral:
		return dom.Text(fmt.Sprint(n.Value))
	case *ast.NullLiteral:
		return dom.Text("null")
	case *ast.RegExpLiteral:
		return dom.Text(printRegExp(n.Pattern, n.Flags))
	case *ast.TemplateLiteral:
		return p.printTemplateLiteral()
	case *ast.TemplateElement:
		return printTemplateElement(n.Raw)
	case *ast.TaggedTemplateExpression:
		return dom.Concat(p.child("tag"), p.child("typeParameters"), p.child("quasi"))
	case *ast.ArrayExpression:
		return p.printArray(n, n.Elements)
	case *ast.ArrayPattern:
		return dom.Concat(p.printArray(n, n.Elements), p.typeAnnotation())
	case *ast.ObjectExpression:
		return p.printObject(n, n.Properties)
	case *ast.ObjectPattern:
		return dom.Concat(p.printObject(n, n.Properties), p.typeAnnotation())
	case *ast.ObjectProperty:
		return p.printProperty(n.Shorthand, n.Computed, n.Value)
	case *ast.Property:
		return p.printESTreeProperty(n)
	case *ast.SpreadElement, *ast.SpreadProperty, *ast.RestProperty:
		return dom.Concat(dom.Text("..."), p.child("argument"))
	case *ast.RestElement:
		return dom.Concat(dom.Text("..."), p.child("argument"), p.typeAnnotation())
	case *ast.AssignmentPattern:
		return dom.Concat(p.child("left"), dom.Text(" = "), p.child("right"))
	case *ast.UnaryExpression:
		return p.printUnary(n)
	case *ast.UpdateExpression:
		if n.Prefix {
			return dom.Concat(dom.Text(n.Operator), p.child("argument"))
		}
		return dom.Concat(p.child("argument"), dom.Text(n.Operator))
	case *ast.BinaryExpression, *ast.LogicalExpression:
		return p.printBinaryish()
	case *ast.AssignmentExpression:
		return p.assignment(p.child("left"), " "+n.Operator, n.Right, p.child("right"))
	case *ast.ConditionalExpression:
		return p.printConditional()
	case *ast.SequenceExpression:
		return p.printSequence()
	case *ast.CallExpression:
		return p.printCall(n)
	case *ast.NewExpression:
		return dom.Concat(dom.Text("new "), p.child("callee"), p.child("typeParameters"), p.printArguments())
	case *ast.MemberExpression:
		return dom.Concat(p.child("object"), p.printMemberLookup(n))
	case *ast.MetaProperty:
		return dom.Concat(p.child("meta"), dom.Text("."), p.child("property"))
	case *ast.YieldExpression:
		return p.printYield(n)
	case *ast.AwaitExpression:
		return dom.Concat(dom.Text("await "), p.child("argument"))
	case *ast.ParenthesizedExpression:
		return p.child("expression")
	case *ast.TypeCastExpression:
		return dom.Concat(dom.Text("("), p.child("expression"), dom.Text(": "), p.child("typeAnnotation"), dom.Text(")"))

	// Modules.
	case *ast.ImportDeclaration:
		return p.printImport(n)
	case *ast.ImportSpecifier:
		return p.printImportSpecifier(n)
	case *ast.ImportDefaultSpecifier:
		return p.child("local")
	case *ast.ImportNamespaceSpecifier:
		return dom.Concat(dom.Text("* as "), p.child("local"))
	case *ast.ExportNamedDeclaration:
		return p.printExportNamed(n)
	case *ast.ExportDefaultDeclaration:
		return p.printExportDefault(n)
	case *ast.ExportAllDeclaration:
		return p.printExportAll(n)
	case *ast.ExportSpecifier:
		return p.printExportSpecifier(n)
	case *ast.ExportNamespaceSpecifier:
		return dom.Concat(dom.Text("* as "), p.child("exported"))
	case *ast.ExportDefaultSpecifier:
		return p.child("exported")

	// JSX.
	case *ast.JSXElement:
		return p.printJSXElement(n.ClosingElement, "openingElement", "closingElement")
	case *ast.JSXFragment:
		return p.printJSXElement(n.ClosingFragment, "openingFragment", "closingFragment")
	case *ast.JSXOpeningElement:
		return p.printJSXOpening(n)
	case *ast.JSXClosingElement:
		return dom.Concat(dom.Text("</"), p.child("name"), dom.Text(">"))
	case *ast.JSXOpeningFragment:
		return dom.Text("<>")
	case *ast.JSXClosingFragment:
		return dom.Text("</>")
	case *ast.JSXAttribute:
		return p.printJSXAttribute(n)
	case *ast.JSXSpreadAttribute:
		return dom.Concat(dom.Text("{..."), p.child("argument"), dom.Text("}"))
	case *ast.JSXIdentifier:
		return dom.Text(n.Name)
	case *ast.JSXNamespacedName:
		return dom.Concat(p.child("namespace"), dom.Text(":"), p.child("name"))
	case *ast.JSXMemberExpression:
		return dom.Concat(p.child("object"), dom.Text("."), p.child("property"))
	case *ast.JSXExpressionContainer:
		return dom.Group(dom.Text("{"), p.child("expression"), p.printDanglingInline(n), dom.Text("}"))
	case *ast.JSXEmptyExpression:
		return p.printDanglingInline(n)
	case *ast.JSXSpreadChild:
		return dom.Concat(dom.Text("{..."), p.child("expression"), dom.Text("}"))
	case *ast.JSXText:
		return p.printJSXText(n)

	// Flow.
	case *ast.TypeAnnotation:
		return p.child("typeAnnotation")
	case *ast.TypeAlias:
		return p.printTypeAlias("type ")
	case *ast.DeclareTypeAlias:
		return p.printTypeAlias(p.declare() + "type ")
	case *ast.OpaqueType:
		return p.printOpaqueType(n)
	case *ast.InterfaceDeclaration:
		return p.printInterface("interface ", n.Extends)
	case *ast.DeclareInterface:
		return p.printInterface(p.declare()+"interface ", n.Extends)
	case *ast.InterfaceExtends:
		return dom.Concat(p.child("id"), p.child("typeParameters"))
	case *ast.DeclareVariable:
		return dom.Concat(dom.Text(p.declare()+"var "), p.child("id"), dom.Text(";"))
	case *ast.DeclareFunction:
		return p.printDeclareFunction(n)
	case *ast.DeclareClass:
		return p.printInterface(p.declare()+"class ", n.Extends)
	case *ast.DeclareModule:
		return dom.Concat(dom.Text("declare module "), p.child("id"), dom.Text(" "), p.child("body"))
	case *ast.DeclareModuleExports:
		return dom.Concat(dom.Text("declare module.exports: "), p.child("typeAnnotation"), dom.Text(";"))
	case *ast.DeclareExportDeclaration:
		return p.printDeclareExport(n)
	case *ast.ObjectTypeAnnotation:
		return p.printObjectType(n)
	case *ast.ObjectTypeProperty:
		return p.printObjectTypeProperty(n)
	case *ast.ObjectTypeIndexer:
		return p.printObjectTypeIndexer(n)
	case *ast.ObjectTypeCallProperty:
		return dom.Concat(p.static(n.Static), p.child("value"))
	case *ast.ObjectTypeSpreadProperty:
		return dom.Concat(dom.Text("..."), p.child("argument"))
	case *ast.UnionTypeAnnotation:
		return p.printUnionType()
	case *ast.IntersectionTypeAnnotation:
		return p.printIntersectionType()
	case *ast.TupleTypeAnnotation:
		return p.printBracketed("[", "types", "]")
	case *ast.FunctionTypeAnnotation:
		return p.printFunctionType()
	case *ast.FunctionTypeParam:
		return p.printFunctionTypeParam(n)
	case *ast.NullableTypeAnnotation:
		return dom.Concat(dom.Text("?"), p.child("typeAnnotation"))
	case *ast.ArrayTypeAnnotation:
		return dom.Concat(p.child("elementType"), dom.Text("[]"))
	case *ast.GenericTypeAnnotation:
		return dom.Concat(p.child("id"), p.child("typeParameters"))
	case *ast.QualifiedTypeIdentifier:
		return dom.Concat(p.child("qualification"), dom.Text("."), p.child("id"))
	case *ast.TypeofTypeAnnotation:
		return dom.Concat(dom.Text("typeof "), p.child("argument"))
	case *ast.TypeParameter:
		return p.printTypeParameter(n)
	case *ast.TypeParameterDeclaration, *ast.TypeParameterInstantiation:
		return p.printBracketed("<", "params", ">")
	case *ast.Variance:
		return dom.Text(printVariance(n.VarianceKind))
	case *ast.ExistentialTypeParam:
		return dom.Text("*")
	case *ast.AnyTypeAnnotation:
		return dom.Text("any")
	case *ast.MixedTypeAnnotation:
		return dom.Text("mixed")
	case *ast.EmptyTypeAnnotation:
		return dom.Text("empty")
	case *ast.VoidTypeAnnotation:
		return dom.Text("void")
	case *ast.NullLiteralTypeAnnotation:
		return dom.Text("null")
	case *ast.NumberTypeAnnotation:
		return dom.Text("number")
	case *ast.StringTypeAnnotation:
		return dom.Text("string")
	case *ast.BooleanTypeAnnotation:
		return dom.Text("boolean")
	case *ast.StringLiteralTypeAnnotation:
		return dom.Text(p.quote(n.Raw, n.Value))
	case *ast.NumberLiteralTypeAnnotation:
		return dom.Text(printNumber(n.Raw, n.Value))
	case *ast.BooleanLiteralTypeAnnotation:
		return dom.Text(fmt.Sprint(n.Value))
	}

	panic(printPanic{reporter.ErrUnsupportedKind{
		Dialect: "js",
		Kind:    n.Kind().String(),
		Pos:     n.Span().Start,
	}})
}

// invariant aborts the print with a [reporter.ErrInvariant] about n.
func invariant(n ast.Node, format string, args ...any) {
	panic(printPanic{reporter.ErrInvariant{
		Kind:   n.Kind().String(),
		Detail: fmt.Sprintf(format, args...),
		Pos:    n.Span().Start,
	}})
}

// isKind returns whether n is a non-nil node of one of the given kinds.
func isKind(n ast.Node, kinds ...ast.Kind) bool {
	if ast.IsNil(n) {
		return false
	}
	for _, k := range kinds {
		if n.Kind() == k {
			return true
		}
	}
	return false
}
