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
	"github.com/bufbuild/jsfmt/source"
	"github.com/bufbuild/jsfmt/walk"
)

// precedence is the binding power of each binary and logical operator.
var precedence = map[string]int{
	"??": 1,
	"||": 2,
	"&&": 3,
	"|":  4,
	"^":  5,
	"&":  6,
	"==": 7, "===": 7, "!=": 7, "!==": 7,
	"<": 8, ">": 8, "<=": 8, ">=": 8, "in": 8, "instanceof": 8,
	">>": 9, "<<": 9, ">>>": 9,
	"+": 10, "-": 10,
	"*": 11, "/": 11, "%": 11,
	"**": 12,
}

// NeedsParens returns whether the current node of path must be wrapped in
// parentheses to preserve the meaning of the tree. It depends only on the
// node, its ancestors and the fields that lead to it.
//
//nolint:gocyclo
func NeedsParens(path *walk.Path) bool {
	n := unwrapParens(path.Current())
	parent := path.Parent()
	if ast.IsNil(n) || ast.IsNil(parent) || isKind(parent, ast.KindParenthesizedExpression) {
		return false
	}
	field := path.Field()

	if field == "superClass" && isKind(parent, ast.KindClassDeclaration, ast.KindClassExpression) &&
		!isLeftHandSide(n) {
		return true
	}

	switch start := statementStart(path); {
	case start == startStatement && isKind(n,
		ast.KindObjectExpression, ast.KindFunctionExpression, ast.KindClassExpression):
		return true
	case start == startStatement || start == startArrowBody:
		if isKind(n, ast.KindObjectExpression) {
			return true
		}
		if a, ok := n.(*ast.AssignmentExpression); ok && isKind(a.Left, ast.KindObjectPattern) {
			return true
		}
	case start == startExportDefault && !isKind(parent, ast.KindExportDefaultDeclaration):
		if isKind(n, ast.KindFunctionExpression, ast.KindClassExpression) {
			return true
		}
	}

	switch n := n.(type) {
	case *ast.BinaryExpression, *ast.LogicalExpression:
		op := operator(n)
		if op == "in" && inForInit(path) {
			return true
		}
		switch parent := parent.(type) {
		case *ast.UnaryExpression, *ast.AwaitExpression, *ast.UpdateExpression:
			return true
		case *ast.BinaryExpression, *ast.LogicalExpression:
			return binaryNeedsParens(operator(parent), op, field)
		}
		return isCalleePosition(parent, field)

	case *ast.SequenceExpression:
		switch parent.(type) {
		case *ast.ExpressionStatement, *ast.ForStatement, *ast.SequenceExpression:
			return false
		}
		return true

	case *ast.ConditionalExpression:
		switch parent.(type) {
		case *ast.BinaryExpression, *ast.LogicalExpression,
			*ast.UnaryExpression, *ast.AwaitExpression, *ast.UpdateExpression,
			*ast.SpreadElement, *ast.SpreadProperty:
			return true
		case *ast.ConditionalExpression:
			return field == "test"
		}
		return isCalleePosition(parent, field)

	case *ast.AssignmentExpression:
		switch parent.(type) {
		case *ast.BinaryExpression, *ast.LogicalExpression,
			*ast.UnaryExpression, *ast.AwaitExpression, *ast.UpdateExpression:
			return true
		case *ast.ConditionalExpression:
			return field == "test"
		case *ast.ArrowFunctionExpression:
			return field == "body"
		}
		return isCalleePosition(parent, field)

	case *ast.ArrowFunctionExpression:
		switch parent.(type) {
		case *ast.BinaryExpression, *ast.LogicalExpression,
			*ast.UnaryExpression, *ast.AwaitExpression:
			return true
		case *ast.ConditionalExpression:
			return field == "test"
		}
		return isCalleePosition(parent, field)

	case *ast.YieldExpression:
		switch parent.(type) {
		case *ast.BinaryExpression, *ast.LogicalExpression,
			*ast.UnaryExpression, *ast.AwaitExpression, *ast.SpreadElement:
			return true
		case *ast.ConditionalExpression:
			return field == "test"
		}
		return isCalleePosition(parent, field)

	case *ast.AwaitExpression:
		if b, ok := parent.(*ast.BinaryExpression); ok && b.Operator == "**" && field == "left" {
			return true
		}
		return isCalleePosition(parent, field)

	case *ast.UnaryExpression:
		return unaryNeedsParens(n.Operator, parent, field)

	case *ast.UpdateExpression:
		if n.Prefix {
			return unaryNeedsParens(n.Operator, parent, field)
		}
		return isCalleePosition(parent, field)

	case *ast.FunctionExpression:
		switch parent.(type) {
		case *ast.CallExpression:
			return field == "callee"
		case *ast.TaggedTemplateExpression:
			return field == "tag"
		}

	case *ast.CallExpression:
		return inNewCallee(path)

	case *ast.NumericLiteral:
		return isKind(parent, ast.KindMemberExpression) && field == "object"

	case *ast.FunctionTypeAnnotation:
		switch parent.(type) {
		case *ast.UnionTypeAnnotation, *ast.IntersectionTypeAnnotation,
			*ast.ArrayTypeAnnotation, *ast.NullableTypeAnnotation:
			return true
		}
		// The return type of an arrow function.
		return isKind(parent, ast.KindTypeAnnotation) &&
			isKind(path.Ancestor(2), ast.KindArrowFunctionExpression) &&
			path.Frame(1).Field == "returnType"

	case *ast.NullableTypeAnnotation:
		return isKind(parent, ast.KindArrayTypeAnnotation)

	case *ast.UnionTypeAnnotation:
		return isKind(parent,
			ast.KindArrayTypeAnnotation, ast.KindIntersectionTypeAnnotation, ast.KindNullableTypeAnnotation)

	case *ast.IntersectionTypeAnnotation:
		return isKind(parent, ast.KindArrayTypeAnnotation, ast.KindNullableTypeAnnotation)
	}

	return false
}

// binaryNeedsParens returns whether a binary operand with operator op needs
// parentheses inside a binary expression with operator parentOp.
func binaryNeedsParens(parentOp, op, field string) bool {
	pp, np := precedence[parentOp], precedence[op]
	switch {
	case (parentOp == "??") != (op == "??") && isLogical(parentOp) && isLogical(op):
		return true
	case pp > np:
		return true
	case pp == np && field == "right":
		return true
	case pp == np && !shouldFlatten(parentOp, op):
		return true
	case pp < np && op == "%":
		return parentOp == "+" || parentOp == "-"
	}
	return isBitwise(parentOp)
}

func unaryNeedsParens(op string, parent ast.Node, field string) bool {
	switch parent := parent.(type) {
	case *ast.UnaryExpression:
		return sameSign(op, parent.Operator)
	case *ast.UpdateExpression:
		return parent.Prefix && sameSign(op, parent.Operator)
	case *ast.BinaryExpression:
		return parent.Operator == "**" && field == "left"
	}
	return isCalleePosition(parent, field)
}

// sameSign returns whether two prefix operators would fuse into a different
// token if printed next to each other.
func sameSign(a, b string) bool {
	return (a[0] == '+' || a[0] == '-') && a[0] == b[0]
}

// shouldFlatten returns whether a binary operand with operator op can share
// a chain with its parent's operator parentOp without parentheses.
func shouldFlatten(parentOp, op string) bool {
	switch {
	case precedence[parentOp] != precedence[op]:
		return false
	case parentOp == "**":
		return false
	case isEquality(parentOp) && isEquality(op):
		return false
	case (op == "%" && isMultiplicative(parentOp)) || (parentOp == "%" && isMultiplicative(op)):
		return false
	case op != parentOp && isMultiplicative(op) && isMultiplicative(parentOp):
		return false
	case isBitshift(parentOp) && isBitshift(op):
		return false
	}
	return true
}

func isLogical(op string) bool { return op == "||" || op == "&&" || op == "??" }

func isEquality(op string) bool {
	return op == "==" || op == "===" || op == "!=" || op == "!=="
}

func isMultiplicative(op string) bool { return op == "*" || op == "/" || op == "%" }
func isBitshift(op string) bool       { return op == ">>" || op == "<<" || op == ">>>" }
func isBitwise(op string) bool        { return op == "|" || op == "^" || op == "&" || isBitshift(op) }

// operator returns the operator of a binary or logical expression.
func operator(n ast.Node) string {
	switch n := n.(type) {
	case *ast.BinaryExpression:
		return n.Operator
	case *ast.LogicalExpression:
		return n.Operator
	}
	return ""
}

func isBinaryish(n ast.Node) bool {
	return isKind(n, ast.KindBinaryExpression, ast.KindLogicalExpression)
}

func isJSX(n ast.Node) bool {
	return isKind(n, ast.KindJSXElement, ast.KindJSXFragment)
}

// isCalleePosition returns whether field of parent is a position that binds
// tighter than any operator: a callee, a member object or a template tag.
func isCalleePosition(parent ast.Node, field string) bool {
	switch parent.(type) {
	case *ast.CallExpression, *ast.NewExpression:
		return field == "callee"
	case *ast.MemberExpression:
		return field == "object"
	case *ast.TaggedTemplateExpression:
		return field == "tag"
	}
	return false
}

// isLeftHandSide returns whether n can be printed as a class heritage without
// parentheses.
func isLeftHandSide(n ast.Node) bool {
	switch n.(type) {
	case *ast.BinaryExpression, *ast.LogicalExpression, *ast.ConditionalExpression,
		*ast.AssignmentExpression, *ast.ArrowFunctionExpression, *ast.YieldExpression,
		*ast.AwaitExpression, *ast.UnaryExpression, *ast.UpdateExpression,
		*ast.SequenceExpression:
		return false
	}
	return true
}

func unwrapParens(n ast.Node) ast.Node {
	for {
		p, ok := n.(*ast.ParenthesizedExpression)
		if !ok || ast.IsNil(p.Expression) {
			return n
		}
		n = p.Expression
	}
}

type start int8

const (
	startNone          start = iota
	startStatement           // The first token of an expression statement.
	startExportDefault       // The first token after `export default`.
	startArrowBody           // The first token of an arrow function's expression body.
)

// statementStart reports whether the current node of path begins a
// statement or similar context where some expressions would be misread as
// declarations or blocks.
func statementStart(path *walk.Path) start {
	for i := 0; i < path.Depth(); i++ {
		child, parent := path.Frame(i), path.Frame(i+1)
		switch parent := parent.Node.(type) {
		case *ast.ExpressionStatement:
			return startStatement
		case *ast.ExportDefaultDeclaration:
			return startExportDefault
		case *ast.ArrowFunctionExpression:
			if child.Field == "body" {
				return startArrowBody
			}
			return startNone
		case *ast.CallExpression, *ast.NewExpression:
			if _, isNew := parent.(*ast.NewExpression); isNew || child.Field != "callee" {
				return startNone
			}
		case *ast.MemberExpression:
			if child.Field != "object" {
				return startNone
			}
		case *ast.TaggedTemplateExpression:
			if child.Field != "tag" {
				return startNone
			}
		case *ast.BinaryExpression, *ast.LogicalExpression, *ast.AssignmentExpression:
			if child.Field != "left" {
				return startNone
			}
		case *ast.ConditionalExpression:
			if child.Field != "test" {
				return startNone
			}
		case *ast.SequenceExpression:
			if child.Index != 0 {
				return startNone
			}
		case *ast.UpdateExpression:
			if parent.Prefix {
				return startNone
			}
		default:
			return startNone
		}
	}
	return startNone
}

// inForInit returns whether the current node is inside the initializer of a
// for statement, without an intervening function.
func inForInit(path *walk.Path) bool {
	for i := 0; i < path.Depth(); i++ {
		child, parent := path.Frame(i), path.Frame(i+1)
		switch parent.Node.(type) {
		case *ast.ForStatement:
			return child.Field == "init"
		case *ast.FunctionExpression, *ast.ArrowFunctionExpression, *ast.ClassExpression,
			*ast.ClassBody, *ast.BlockStatement, *ast.ObjectMethod:
			return false
		}
	}
	return false
}

// inNewCallee returns whether the current node is a call at the head of the
// callee of a new expression, where it would otherwise supply the arguments.
func inNewCallee(path *walk.Path) bool {
	for i := 0; i < path.Depth(); i++ {
		child, parent := path.Frame(i), path.Frame(i+1)
		switch parent.Node.(type) {
		case *ast.NewExpression:
			return child.Field == "callee"
		case *ast.MemberExpression:
			if child.Field != "object" {
				return false
			}
		default:
			return false
		}
	}
	return false
}

// decoratorsOwnedByExport returns whether the decorators of a class that is
// the declaration of export are written before the export keyword, in which
// case the export prints them rather than the class.
func decoratorsOwnedByExport(export ast.Node, decorators []ast.Node) bool {
	if len(decorators) == 0 || ast.IsNil(decorators[0]) || ast.IsNil(export) {
		return false
	}
	return source.Compare(decorators[0].Span().Start, export.Span().Start) < 0
}
