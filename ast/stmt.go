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

package ast

// File is the wrapper Babel places around a [Program].
type File struct {
	Base
	Program Node `ast:"program"`
}

// Program is the root of a script or module.
type Program struct {
	Base
	Directives []Node `ast:"directives"`
	Body       []Node `ast:"body"`
	SourceType string `ast:"sourceType"`
}

// Directive is a prologue directive such as "use strict".
type Directive struct {
	Base
	Value Node `ast:"value"`
}

// DirectiveLiteral is the string of a [Directive].
type DirectiveLiteral struct {
	Base
	Value string `ast:"value"`
	Raw   string `ast:"extra.raw,raw"`
}

// EmptyStatement is a lone `;`.
type EmptyStatement struct{ Base }

type ExpressionStatement struct {
	Base
	Expression Node `ast:"expression"`
}

type BlockStatement struct {
	Base
	Directives []Node `ast:"directives"`
	Body       []Node `ast:"body"`
}

type IfStatement struct {
	Base
	Test       Node `ast:"test"`
	Consequent Node `ast:"consequent"`
	Alternate  Node `ast:"alternate"`
}

type ForStatement struct {
	Base
	Init   Node `ast:"init"`
	Test   Node `ast:"test"`
	Update Node `ast:"update"`
	Body   Node `ast:"body"`
}

type ForInStatement struct {
	Base
	Left  Node `ast:"left"`
	Right Node `ast:"right"`
	Body  Node `ast:"body"`
}

type ForOfStatement struct {
	Base
	Await bool `ast:"await"`
	Left  Node `ast:"left"`
	Right Node `ast:"right"`
	Body  Node `ast:"body"`
}

type WhileStatement struct {
	Base
	Test Node `ast:"test"`
	Body Node `ast:"body"`
}

type DoWhileStatement struct {
	Base
	Body Node `ast:"body"`
	Test Node `ast:"test"`
}

type ReturnStatement struct {
	Base
	Argument Node `ast:"argument"`
}

type ThrowStatement struct {
	Base
	Argument Node `ast:"argument"`
}

type BreakStatement struct {
	Base
	Label Node `ast:"label"`
}

type ContinueStatement struct {
	Base
	Label Node `ast:"label"`
}

type LabeledStatement struct {
	Base
	Label Node `ast:"label"`
	Body  Node `ast:"body"`
}

type DebuggerStatement struct{ Base }

type WithStatement struct {
	Base
	Object Node `ast:"object"`
	Body   Node `ast:"body"`
}

type TryStatement struct {
	Base
	Block     Node `ast:"block"`
	Handler   Node `ast:"handler"`
	Finalizer Node `ast:"finalizer"`
}

// CatchClause is the `catch` part of a [TryStatement]. Param is nil for an optional catch binding.
type CatchClause struct {
	Base
	Param Node `ast:"param"`
	Body  Node `ast:"body"`
}

type SwitchStatement struct {
	Base
	Discriminant Node   `ast:"discriminant"`
	Cases        []Node `ast:"cases"`
}

// SwitchCase is a `case` or, when Test is nil, `default` clause.
type SwitchCase struct {
	Base
	Test       Node   `ast:"test"`
	Consequent []Node `ast:"consequent"`
}

// VariableDeclaration is a `var`, `let` or `const` declaration. DeclKind holds the keyword.
type VariableDeclaration struct {
	Base
	DeclKind     string `ast:"kind"`
	Declare      bool   `ast:"declare"`
	Declarations []Node `ast:"declarations"`
}

type VariableDeclarator struct {
	Base
	Id   Node `ast:"id"`
	Init Node `ast:"init"`
}

func (*File) Kind() Kind                { return KindFile }
func (*Program) Kind() Kind             { return KindProgram }
func (*Directive) Kind() Kind           { return KindDirective }
func (*DirectiveLiteral) Kind() Kind    { return KindDirectiveLiteral }
func (*EmptyStatement) Kind() Kind      { return KindEmptyStatement }
func (*ExpressionStatement) Kind() Kind { return KindExpressionStatement }
func (*BlockStatement) Kind() Kind      { return KindBlockStatement }
func (*IfStatement) Kind() Kind         { return KindIfStatement }
func (*ForStatement) Kind() Kind        { return KindForStatement }
func (*ForInStatement) Kind() Kind      { return KindForInStatement }
func (*ForOfStatement) Kind() Kind      { return KindForOfStatement }
func (*WhileStatement) Kind() Kind      { return KindWhileStatement }
func (*DoWhileStatement) Kind() Kind    { return KindDoWhileStatement }
func (*ReturnStatement) Kind() Kind     { return KindReturnStatement }
func (*ThrowStatement) Kind() Kind      { return KindThrowStatement }
func (*BreakStatement) Kind() Kind      { return KindBreakStatement }
func (*ContinueStatement) Kind() Kind   { return KindContinueStatement }
func (*LabeledStatement) Kind() Kind    { return KindLabeledStatement }
func (*DebuggerStatement) Kind() Kind   { return KindDebuggerStatement }
func (*WithStatement) Kind() Kind       { return KindWithStatement }
func (*TryStatement) Kind() Kind        { return KindTryStatement }
func (*CatchClause) Kind() Kind         { return KindCatchClause }
func (*SwitchStatement) Kind() Kind     { return KindSwitchStatement }
func (*SwitchCase) Kind() Kind          { return KindSwitchCase }
func (*VariableDeclaration) Kind() Kind { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() Kind  { return KindVariableDeclarator }
