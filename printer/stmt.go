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

// statements prints the statements in the given list fields of the current
// node, one per line. Empty statements are dropped, and blank lines between
// statements are kept up to the configured maximum.
func (p *printer) statements(fields ...string) dom.Doc {
	var docs []dom.Doc
	var prev ast.Node
	for _, field := range fields {
		p.path.Each(field, func(*walk.Path, int) {
			n := p.path.Current()
			if ast.IsNil(n) || isKind(n, ast.KindEmptyStatement) {
				return
			}
			if prev != nil {
				docs = append(docs, p.lines(p.extent(prev).End, p.extent(n).Start))
			}
			docs = append(docs, p.print())
			prev = n
		})
	}
	return dom.Concat(docs...)
}

func (p *printer) printProgram(n *ast.Program) dom.Doc {
	body := p.statements("directives", "body")
	if dom.IsEmpty(body) {
		return p.printDanglingInline(n)
	}
	return body
}

// printBlock prints a braced list of statements.
func (p *printer) printBlock(n ast.Node, fields ...string) dom.Doc {
	body := p.statements(fields...)
	if dom.IsEmpty(body) {
		return p.danglingIn(n, "{", "}")
	}
	return dom.Concat(dom.Text("{"), p.indent(dom.Hardline, body), dom.Hardline, dom.Text("}"))
}

// clause prints the body of a control flow statement. Blocks stay on the
// same line as the head; any other statement moves to an indented line if it
// does not fit.
func (p *printer) clause(body ast.Node, field string) dom.Doc {
	switch {
	case isKind(body, ast.KindBlockStatement):
		return dom.Concat(dom.Text(" "), p.child(field))
	case isKind(body, ast.KindEmptyStatement):
		return p.child(field)
	}
	return dom.Group(p.indent(dom.Line, p.child(field)))
}

// gluedBlock returns whether a keyword that follows body can go on the same
// line as its closing brace.
func (p *printer) gluedBlock(body ast.Node) bool {
	return isKind(body, ast.KindBlockStatement) && len(p.comments.Trailing(body)) == 0
}

// parenthesized prints "(" field ")" for the head of a control flow
// statement.
func (p *printer) parenthesized(keyword, field string) dom.Doc {
	return dom.Group(
		dom.Text(keyword+" ("),
		p.indent(dom.Softline, p.child(field)),
		dom.Softline,
		dom.Text(")"),
	)
}

func (p *printer) printIf(n *ast.IfStatement) dom.Doc {
	docs := []dom.Doc{
		p.parenthesized("if", "test"),
		p.clause(n.Consequent, "consequent"),
	}
	if ast.IsNil(n.Alternate) {
		return dom.Concat(docs...)
	}

	if p.gluedBlock(n.Consequent) {
		docs = append(docs, dom.Text(" else"))
	} else {
		docs = append(docs, dom.Hardline, dom.Text("else"))
	}
	if isKind(n.Alternate, ast.KindIfStatement) {
		docs = append(docs, dom.Text(" "), p.child("alternate"))
	} else {
		docs = append(docs, p.clause(n.Alternate, "alternate"))
	}
	return dom.Concat(docs...)
}

func (p *printer) printFor(n *ast.ForStatement) dom.Doc {
	body := p.clause(n.Body, "body")
	if ast.IsNil(n.Init) && ast.IsNil(n.Test) && ast.IsNil(n.Update) {
		return dom.Concat(dom.Text("for (;;)"), body)
	}
	return dom.Concat(
		dom.Group(
			dom.Text("for ("),
			p.indent(
				dom.Softline,
				p.child("init"), dom.Text(";"), dom.Line,
				p.child("test"), dom.Text(";"), dom.Line,
				p.child("update"),
			),
			dom.Softline,
			dom.Text(")"),
		),
		body,
	)
}

func (p *printer) printForIn(body ast.Node, keyword string, await bool) dom.Doc {
	head := "for ("
	if await {
		head = "for await ("
	}
	return dom.Concat(
		dom.Group(
			dom.Text(head), p.child("left"),
			dom.Text(" "+keyword+" "), p.child("right"),
			dom.Text(")"),
		),
		p.clause(body, "body"),
	)
}

func (p *printer) printDoWhile(n *ast.DoWhileStatement) dom.Doc {
	docs := []dom.Doc{dom.Text("do"), p.clause(n.Body, "body")}
	if p.gluedBlock(n.Body) {
		docs = append(docs, dom.Text(" "))
	} else {
		docs = append(docs, dom.Hardline)
	}
	docs = append(docs, p.parenthesized("while", "test"), dom.Text(";"))
	return dom.Concat(docs...)
}

// printJump prints a return or throw statement.
func (p *printer) printJump(keyword string, arg ast.Node) dom.Doc {
	if ast.IsNil(arg) {
		return p.terminated(p.path.Current(), dom.Text(keyword))
	}
	doc := p.child("argument")
	if isBinaryish(arg) || isJSX(arg) || len(p.comments.Leading(arg)) > 0 {
		doc = p.parensIfBroken(doc)
	}
	return dom.Concat(dom.Text(keyword+" "), doc, dom.Text(";"))
}

func (p *printer) printLabelJump(keyword string, label ast.Node) dom.Doc {
	if ast.IsNil(label) {
		return p.terminated(p.path.Current(), dom.Text(keyword))
	}
	return dom.Concat(dom.Text(keyword+" "), p.child("label"), dom.Text(";"))
}

func (p *printer) printTry(n *ast.TryStatement) dom.Doc {
	docs := []dom.Doc{dom.Text("try "), p.child("block")}
	if !ast.IsNil(n.Handler) {
		docs = append(docs, dom.Text(" "), p.child("handler"))
	}
	if !ast.IsNil(n.Finalizer) {
		docs = append(docs, dom.Text(" finally "), p.child("finalizer"))
	}
	return dom.Concat(docs...)
}

func (p *printer) printCatch(n *ast.CatchClause) dom.Doc {
	if ast.IsNil(n.Param) {
		return dom.Concat(dom.Text("catch "), p.child("body"))
	}
	return dom.Concat(dom.Text("catch ("), p.child("param"), dom.Text(") "), p.child("body"))
}

func (p *printer) printSwitch(n *ast.SwitchStatement) dom.Doc {
	head := dom.Concat(p.parenthesized("switch", "discriminant"), dom.Text(" "))
	if len(n.Cases) == 0 {
		return dom.Concat(head, p.danglingIn(n, "{", "}"))
	}
	return dom.Concat(
		head, dom.Text("{"),
		p.indent(dom.Hardline, p.statements("cases")),
		dom.Hardline, dom.Text("}"),
	)
}

func (p *printer) printSwitchCase(n *ast.SwitchCase) dom.Doc {
	head := dom.Text("default:")
	if !ast.IsNil(n.Test) {
		head = dom.Concat(dom.Text("case "), p.child("test"), dom.Text(":"))
	}

	var stmts []ast.Node
	for _, stmt := range n.Consequent {
		if !ast.IsNil(stmt) && !isKind(stmt, ast.KindEmptyStatement) {
			stmts = append(stmts, stmt)
		}
	}
	switch {
	case len(stmts) == 0:
		return head
	case len(stmts) == 1 && isKind(stmts[0], ast.KindBlockStatement):
		return dom.Concat(head, dom.Text(" "), p.statements("consequent"))
	}
	return dom.Concat(head, p.indent(dom.Hardline, p.statements("consequent")))
}

func (p *printer) printVariableDeclaration(n *ast.VariableDeclaration) dom.Doc {
	decls := p.list("declarations")

	var head []dom.Doc
	if n.Declare {
		head = append(head, dom.Text(p.declare()))
	}
	head = append(head, dom.Text(n.DeclKind))
	if len(decls) > 0 {
		head = append(head, dom.Text(" "), decls[0])
	}

	var rest []dom.Doc
	if len(decls) > 1 {
		for _, doc := range decls[1:] {
			rest = append(rest, dom.Text(","), dom.Line, doc)
		}
	}

	var semi dom.Doc = dom.Text(";")
	if p.isForHead() {
		semi = nil
	}
	return dom.Group(dom.Concat(head...), p.indent(rest...), semi)
}

// isForHead returns whether the current node is the declaration part of a
// for loop header.
func (p *printer) isForHead() bool {
	switch p.path.Parent().(type) {
	case *ast.ForStatement:
		return p.path.Field() == "init"
	case *ast.ForInStatement, *ast.ForOfStatement:
		return p.path.Field() == "left"
	}
	return false
}

func (p *printer) printVariableDeclarator(n *ast.VariableDeclarator) dom.Doc {
	if ast.IsNil(n.Init) {
		return p.child("id")
	}
	return p.assignment(p.child("id"), " =", n.Init, p.child("init"))
}

func (p *printer) printDirectiveLiteral(n *ast.DirectiveLiteral) dom.Doc {
	if n.Raw != "" {
		return dom.Text(n.Raw)
	}
	return dom.Text(p.quote("", n.Value))
}
