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

type JSXElement struct {
	Base
	OpeningElement Node   `ast:"openingElement"`
	Children       []Node `ast:"children"`
	ClosingElement Node   `ast:"closingElement"`
}

type JSXFragment struct {
	Base
	OpeningFragment Node   `ast:"openingFragment"`
	Children        []Node `ast:"children"`
	ClosingFragment Node   `ast:"closingFragment"`
}

type JSXOpeningElement struct {
	Base
	Name           Node   `ast:"name"`
	TypeParameters Node   `ast:"typeParameters"`
	Attributes     []Node `ast:"attributes"`
	SelfClosing    bool   `ast:"selfClosing"`
}

type JSXClosingElement struct {
	Base
	Name Node `ast:"name"`
}

type JSXOpeningFragment struct{ Base }

type JSXClosingFragment struct{ Base }

type JSXAttribute struct {
	Base
	Name  Node `ast:"name"`
	Value Node `ast:"value"`
}

type JSXSpreadAttribute struct {
	Base
	Argument Node `ast:"argument"`
}

type JSXIdentifier struct {
	Base
	Name string `ast:"name"`
}

type JSXNamespacedName struct {
	Base
	Namespace Node `ast:"namespace"`
	Name      Node `ast:"name"`
}

type JSXMemberExpression struct {
	Base
	Object   Node `ast:"object"`
	Property Node `ast:"property"`
}

type JSXExpressionContainer struct {
	Base
	Expression Node `ast:"expression"`
}

// JSXEmptyExpression is the contents of `{}` or `{/* comment */}`.
type JSXEmptyExpression struct{ Base }

type JSXSpreadChild struct {
	Base
	Expression Node `ast:"expression"`
}

type JSXText struct {
	Base
	Value string `ast:"value"`
	Raw   string `ast:"extra.raw,raw"`
}

func (*JSXElement) Kind() Kind             { return KindJSXElement }
func (*JSXFragment) Kind() Kind            { return KindJSXFragment }
func (*JSXOpeningElement) Kind() Kind      { return KindJSXOpeningElement }
func (*JSXClosingElement) Kind() Kind      { return KindJSXClosingElement }
func (*JSXOpeningFragment) Kind() Kind     { return KindJSXOpeningFragment }
func (*JSXClosingFragment) Kind() Kind     { return KindJSXClosingFragment }
func (*JSXAttribute) Kind() Kind           { return KindJSXAttribute }
func (*JSXSpreadAttribute) Kind() Kind     { return KindJSXSpreadAttribute }
func (*JSXIdentifier) Kind() Kind          { return KindJSXIdentifier }
func (*JSXNamespacedName) Kind() Kind      { return KindJSXNamespacedName }
func (*JSXMemberExpression) Kind() Kind    { return KindJSXMemberExpression }
func (*JSXExpressionContainer) Kind() Kind { return KindJSXExpressionContainer }
func (*JSXEmptyExpression) Kind() Kind     { return KindJSXEmptyExpression }
func (*JSXSpreadChild) Kind() Kind         { return KindJSXSpreadChild }
func (*JSXText) Kind() Kind                { return KindJSXText }
