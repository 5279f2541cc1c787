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
	"unicode/utf8"

	"github.com/bufbuild/jsfmt/ast"
	"github.com/bufbuild/jsfmt/dom"
	"github.com/bufbuild/jsfmt/source"
	"github.com/bufbuild/jsfmt/walk"
)

func (p *printer) printIdentifier(n *ast.Identifier) dom.Doc {
	name := n.Name
	if n.Optional {
		name += "?"
	}
	return dom.Concat(dom.Text(name), p.typeAnnotation())
}

// typeAnnotation prints the type annotation of the current node, if it has
// one.
func (p *printer) typeAnnotation() dom.Doc {
	if t, _, _ := ast.Lookup(p.path.Current(), "typeAnnotation"); ast.IsNil(t) {
		return nil
	}
	return dom.Concat(dom.Text(": "), p.child("typeAnnotation"))
}

// commaList joins docs with a comma and a line.
func commaList(docs []dom.Doc) dom.Doc {
	return dom.Join(dom.Concat(dom.Text(","), dom.Line), docs)
}

// trailingComma returns the comma that ends a broken list, if the options
// ask for one at the given level.
func (p *printer) trailingComma(level TrailingComma, last ast.Node) dom.Doc {
	if p.options.TrailingComma < level ||
		isKind(last, ast.KindRestElement, ast.KindRestProperty) {
		return nil
	}
	return dom.TextIf(dom.Broken, ",")
}

func (p *printer) printArray(n ast.Node, elements []ast.Node) dom.Doc {
	if len(elements) == 0 {
		return p.danglingIn(n, "[", "]")
	}

	docs := p.list("elements")
	last := elements[len(elements)-1]
	trailing := p.trailingComma(TrailingCommaES5, last)
	if ast.IsNil(last) {
		// A trailing hole needs its own comma.
		trailing = dom.Text(",")
	}
	return dom.MultilineGroup(
		dom.Text("["),
		p.indent(dom.Softline, commaList(docs)),
		trailing,
		dom.Softline,
		dom.Text("]"),
	)
}

func (p *printer) printObject(n ast.Node, props []ast.Node) dom.Doc {
	if len(props) == 0 {
		return p.danglingIn(n, "{", "}")
	}

	space := dom.Softline
	if p.options.ObjectCurlySpacing {
		space = dom.Line
	}
	return dom.MultilineGroup(
		dom.Text("{"),
		p.indent(space, commaList(p.list("properties"))),
		p.trailingComma(TrailingCommaES5, props[len(props)-1]),
		space,
		dom.Text("}"),
	)
}

// printKey prints the key of the current property-like node.
func (p *printer) printKey(computed bool) dom.Doc {
	if computed {
		return dom.Concat(dom.Text("["), p.child("key"), dom.Text("]"))
	}
	return p.child("key")
}

func (p *printer) printProperty(shorthand, computed bool, value ast.Node) dom.Doc {
	if shorthand {
		return p.child("value")
	}
	return p.assignment(p.printKey(computed), ":", value, p.child("value"))
}

func (p *printer) printESTreeProperty(n *ast.Property) dom.Doc {
	if n.Method || n.PropKind == "get" || n.PropKind == "set" {
		kind := n.PropKind
		if kind == "init" {
			kind = "method"
		}
		return p.printFunctionValue(n, n.Value, kind, false, n.Computed)
	}
	return p.printProperty(n.Shorthand, n.Computed, n.Value)
}

func (p *printer) printUnary(n *ast.UnaryExpression) dom.Doc {
	op := n.Operator
	if r, _ := utf8.DecodeRuneInString(op); r >= 'a' && r <= 'z' {
		op += " "
	}
	return dom.Concat(dom.Text(op), p.child("argument"))
}

// printBinaryish prints a binary or logical expression, flattening operands
// of the same precedence into one chain.
func (p *printer) printBinaryish() dom.Doc {
	parts := p.binaryParts()

	parent, field := p.path.Parent(), p.path.Field()
	switch {
	case isControlTest(parent, field):
		return dom.Concat(parts...)
	case isKind(parent, ast.KindUnaryExpression, ast.KindAwaitExpression) ||
		isCalleePosition(parent, field):
		return dom.Group(p.indent(dom.Softline, dom.Concat(parts...)), dom.Softline)
	case p.inlinesBinary(parent, field):
		return dom.Group(parts...)
	}
	return dom.Group(parts[0], p.indent(parts[1:]...))
}

// binaryParts returns the operands and operators of the binary chain rooted
// at the current node.
func (p *printer) binaryParts() []dom.Doc {
	n := p.path.Current()
	op := operator(n)

	var parts []dom.Doc
	left, _, _ := ast.Lookup(n, "left")
	if isBinaryish(left) && shouldFlatten(op, operator(left)) && !p.hasComments(left) {
		parts = walk.Call(p.path, func(*walk.Path) []dom.Doc { return p.binaryParts() }, "left")
	} else {
		parts = []dom.Doc{p.child("left")}
	}

	right, _, _ := ast.Lookup(n, "right")
	line := dom.Line
	if isLogical(op) && isInlineObject(right) {
		line = dom.Text(" ")
	}
	return append(parts, dom.Text(" "+op), line, p.child("right"))
}

// isInlineObject returns whether n is a non-empty object or array literal,
// which can start on the line of the operator before it.
func isInlineObject(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.ObjectExpression:
		return len(n.Properties) > 0
	case *ast.ArrayExpression:
		return len(n.Elements) > 0
	}
	return false
}

// isControlTest returns whether field of parent is the parenthesized head of
// a control flow statement.
func isControlTest(parent ast.Node, field string) bool {
	switch parent.(type) {
	case *ast.IfStatement, *ast.WhileStatement, *ast.DoWhileStatement:
		return field == "test"
	case *ast.SwitchStatement:
		return field == "discriminant"
	}
	return false
}

// inlinesBinary returns whether a binary expression in field of parent is
// indented by its context already.
func (p *printer) inlinesBinary(parent ast.Node, field string) bool {
	switch parent.(type) {
	case *ast.ReturnStatement, *ast.ThrowStatement, *ast.JSXExpressionContainer:
		return true
	case *ast.ArrowFunctionExpression:
		return field == "body"
	case *ast.AssignmentExpression, *ast.AssignmentPattern:
		return field == "right"
	case *ast.VariableDeclarator:
		return field == "init"
	case *ast.ClassProperty, *ast.ObjectProperty, *ast.Property:
		return field == "value"
	}
	return false
}

func (p *printer) printConditional() dom.Doc {
	parts := []dom.Doc{
		dom.Line, dom.Text("? "), p.child("consequent"),
		dom.Line, dom.Text(": "), p.child("alternate"),
	}
	if isKind(p.path.Parent(), ast.KindConditionalExpression) && p.path.Field() == "alternate" {
		return dom.Concat(append([]dom.Doc{p.child("test")}, parts...)...)
	}
	return dom.Group(p.child("test"), p.indent(parts...))
}

func (p *printer) printSequence() dom.Doc {
	docs := p.list("expressions")
	if len(docs) == 0 {
		return nil
	}
	var rest []dom.Doc
	for _, doc := range docs[1:] {
		rest = append(rest, dom.Text(","), dom.Line, doc)
	}
	return dom.Group(docs[0], p.indent(rest...))
}

func (p *printer) printYield(n *ast.YieldExpression) dom.Doc {
	keyword := "yield"
	if n.Delegate {
		keyword += "*"
	}
	if ast.IsNil(n.Argument) {
		return dom.Text(keyword)
	}
	return dom.Concat(dom.Text(keyword+" "), p.child("argument"))
}

func (p *printer) printMemberLookup(n *ast.MemberExpression) dom.Doc {
	switch {
	case n.Computed && n.Optional:
		return dom.Concat(dom.Text("?.["), p.child("property"), dom.Text("]"))
	case n.Computed:
		return dom.Concat(dom.Text("["), p.child("property"), dom.Text("]"))
	case n.Optional:
		return dom.Concat(dom.Text("?."), p.child("property"))
	}
	return dom.Concat(dom.Text("."), p.child("property"))
}

// chainCutoff is the number of calls a member chain needs before it is
// printed one call per line when it does not fit.
const chainCutoff = 3

func (p *printer) printCall(n *ast.CallExpression) dom.Doc {
	if p.inChain() {
		return p.printCallLink(n)
	}

	head, links, calls := p.memberChain()
	if calls < chainCutoff {
		return dom.Concat(head, dom.Concat(links...))
	}

	// A short or factory-like head keeps its first call.
	if len(links) > 1 && p.isShortChainHead() {
		head = dom.Concat(head, links[0])
		links = links[1:]
	}
	var broken []dom.Doc
	for _, link := range links {
		broken = append(broken, dom.Softline, link)
	}
	return dom.Group(head, p.indent(broken...))
}

// inChain returns whether the current call is an inner link of a member
// chain printed by an enclosing call.
func (p *printer) inChain() bool {
	member, ok := p.path.Parent().(*ast.MemberExpression)
	if !ok || p.path.Field() != "object" || member.Computed {
		return false
	}
	call, ok := p.path.Ancestor(2).(*ast.CallExpression)
	return ok && p.path.Frame(1).Field == "callee" && !ast.IsNil(call)
}

// printCallLink prints a call as it would appear with no chain around it.
func (p *printer) printCallLink(n *ast.CallExpression) dom.Doc {
	var optional dom.Doc
	if n.Optional {
		optional = dom.Text("?.")
	}
	return dom.Concat(p.child("callee"), optional, p.child("typeParameters"), p.printArguments())
}

// memberChain splits the current call into the head of its member chain and
// one link per call, and counts the calls.
func (p *printer) memberChain() (head dom.Doc, links []dom.Doc, calls int) {
	call, _ := p.path.Current().(*ast.CallExpression)
	member, ok := call.Callee.(*ast.MemberExpression)
	if !ok || member.Computed || p.hasComments(member) {
		return p.printCallLink(call), nil, 1
	}

	type result struct {
		head  dom.Doc
		links []dom.Doc
		calls int
	}
	object := walk.Call(p.path, func(*walk.Path) result {
		inner := p.path.Current()
		if isKind(inner, ast.KindCallExpression) && !NeedsParens(p.path) && !p.hasComments(inner) {
			h, l, c := p.memberChain()
			return result{h, l, c}
		}
		return result{head: p.print()}
	}, "callee", "object")

	var optional dom.Doc
	if call.Optional {
		optional = dom.Text("?.")
	}
	link := dom.Concat(
		walk.Call(p.path, func(*walk.Path) dom.Doc { return p.printMemberLookup(member) }, "callee"),
		optional,
		p.child("typeParameters"),
		p.printArguments(),
	)
	return object.head, append(object.links, link), object.calls + 1
}

// isShortChainHead returns whether the head of the member chain of the
// current call is short enough to keep the first call on its line.
func (p *printer) isShortChainHead() bool {
	n := p.path.Current()
	for {
		call, ok := n.(*ast.CallExpression)
		if !ok {
			break
		}
		member, ok := call.Callee.(*ast.MemberExpression)
		if !ok {
			break
		}
		n = member.Object
	}
	switch n := n.(type) {
	case *ast.ThisExpression:
		return true
	case *ast.Identifier:
		r, _ := utf8.DecodeRuneInString(n.Name)
		return len(n.Name) <= p.options.TabWidth ||
			(r >= 'A' && r <= 'Z') || r == '_' || r == '$'
	}
	return false
}

// printArguments prints the argument list of the current call or new
// expression.
func (p *printer) printArguments() dom.Doc {
	_, args, _ := ast.Lookup(p.path.Current(), "arguments")
	if len(args) == 0 {
		return dom.Text("()")
	}

	docs := p.list("arguments")
	last := len(docs) - 1
	if last == 0 && dom.StartsWith(docs[0], "{") && !p.hasComments(args[0]) {
		return dom.Concat(dom.Text("("), docs[0], dom.Text(")"))
	}
	if p.shouldHugLastArgument(args, docs) {
		hugged := []dom.Doc{dom.Text("(")}
		for _, doc := range docs[:last] {
			hugged = append(hugged, doc, dom.Text(", "))
		}
		return dom.Concat(append(hugged, docs[last], dom.Text(")"))...)
	}

	return dom.MultilineGroup(
		dom.Text("("),
		p.indent(dom.Softline, commaList(docs)),
		p.trailingComma(TrailingCommaAll, args[last]),
		dom.Softline,
		dom.Text(")"),
	)
}

// shouldHugLastArgument returns whether the last argument of a call can
// start on the line of the call, with the other arguments flat before it.
func (p *printer) shouldHugLastArgument(args []ast.Node, docs []dom.Doc) bool {
	last := args[len(args)-1]
	switch last := last.(type) {
	case *ast.ObjectExpression:
		if len(last.Properties) == 0 {
			return false
		}
	case *ast.ArrayExpression:
		if len(last.Elements) == 0 {
			return false
		}
	case *ast.FunctionExpression:
	case *ast.ArrowFunctionExpression:
		if !isKind(last.Body, ast.KindBlockStatement, ast.KindObjectExpression,
			ast.KindArrayExpression, ast.KindCallExpression, ast.KindJSXElement) {
			return false
		}
	default:
		return false
	}

	for i, arg := range args {
		if p.hasComments(arg) {
			return false
		}
		if i < len(args)-1 && (!isSimpleArgument(arg) || dom.HasHardLine(docs[i])) {
			return false
		}
	}
	return true
}

// isSimpleArgument returns whether n is short and unbreakable enough to sit
// before a hugged argument.
func isSimpleArgument(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.Identifier, *ast.ThisExpression, *ast.StringLiteral, *ast.NumericLiteral,
		*ast.BigIntLiteral, *ast.BooleanLiteral, *ast.NullLiteral, *ast.RegExpLiteral:
		return true
	case *ast.TemplateLiteral:
		return len(n.Expressions) == 0
	case *ast.UnaryExpression:
		return isSimpleArgument(n.Argument)
	case *ast.MemberExpression:
		return !n.Computed && isSimpleArgument(n.Object)
	}
	return false
}

func (p *printer) printTemplateLiteral() dom.Doc {
	quasis := p.list("quasis")
	exprs := p.list("expressions")

	docs := []dom.Doc{dom.Text("`")}
	for i, quasi := range quasis {
		docs = append(docs, quasi)
		if i < len(exprs) {
			docs = append(docs, dom.Text("${"), exprs[i], dom.Text("}"))
		}
	}
	docs = append(docs, dom.Text("`"))
	return dom.Concat(docs...)
}

// assignment prints left, op and right, choosing where the right-hand side
// breaks. op includes any space before it.
func (p *printer) assignment(left dom.Doc, op string, right ast.Node, rightDoc dom.Doc) dom.Doc {
	return dom.Group(left, dom.Text(op), p.assignmentRight(right, rightDoc))
}

func (p *printer) assignmentRight(right ast.Node, doc dom.Doc) dom.Doc {
	switch {
	case p.hasLeadingLineComment(right):
		return p.indent(dom.Hardline, doc)
	case isBinaryish(right) && !isInlineLogical(right),
		isKind(right, ast.KindStringLiteral),
		isKind(right, ast.KindConditionalExpression) && isBinaryish(right.(*ast.ConditionalExpression).Test):
		return dom.Group(p.indent(dom.Line, doc))
	case isJSX(right):
		return dom.Concat(dom.Text(" "), p.parensIfBroken(doc))
	}
	return dom.Concat(dom.Text(" "), doc)
}

// isInlineLogical returns whether n is a logical expression whose right
// operand starts on the line of its operator.
func isInlineLogical(n ast.Node) bool {
	l, ok := n.(*ast.LogicalExpression)
	return ok && isInlineObject(l.Right)
}

// parensIfBroken wraps doc in parentheses that only appear if it does not fit
// on one line.
func (p *printer) parensIfBroken(doc dom.Doc) dom.Doc {
	return dom.Group(
		dom.TextIf(dom.Broken, "("),
		p.indent(dom.Softline, doc),
		dom.Softline,
		dom.TextIf(dom.Broken, ")"),
	)
}

// startsOnNewLine returns whether b starts on a later line than a ends.
func startsOnNewLine(a, b ast.Node) bool {
	return source.Lines(a.Span().End, b.Span().Start) > 0
}
