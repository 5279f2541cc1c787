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

type Identifier struct {
	Base
	Name           string `ast:"name"`
	Optional       bool   `ast:"optional"`
	TypeAnnotation Node   `ast:"typeAnnotation"`
}

type ThisExpression struct{ Base }

type Super struct{ Base }

// Import is the callee of a dynamic `import()`.
type Import struct{ Base }

// StringLiteral is a string. Raw, when present, is the source text including quotes.
type StringLiteral struct {
	Base
	Value string `ast:"value"`
	Raw   string `ast:"extra.raw,raw"`
}

type NumericLiteral struct {
	Base
	Value float64 `ast:"value"`
	Raw   string  `ast:"extra.raw,raw"`
}

type BigIntLiteral struct {
	Base
	Value string `ast:"value"`
	Raw   string `ast:"extra.raw,raw"`
}

type BooleanLiteral struct {
	Base
	Value bool `ast:"value"`
}

type NullLiteral struct{ Base }

type RegExpLiteral struct {
	Base
	Pattern string `ast:"pattern"`
	Flags   string `ast:"flags"`
}

type TemplateLiteral struct {
	Base
	Quasis      []*TemplateElement `ast:"quasis"`
	Expressions []Node             `ast:"expressions"`
}

// TemplateElement is one raw segment of a [TemplateLiteral].
type TemplateElement struct {
	Base
	Raw    string `ast:"value.raw"`
	Cooked string `ast:"value.cooked"`
	Tail   bool   `ast:"tail"`
}

type TaggedTemplateExpression struct {
	Base
	Tag            Node             `ast:"tag"`
	TypeParameters Node             `ast:"typeParameters"`
	Quasi          *TemplateLiteral `ast:"quasi"`
}

// ArrayExpression is an array literal. Holes are nil elements.
type ArrayExpression struct {
	Base
	Elements []Node `ast:"elements"`
}

type ArrayPattern struct {
	Base
	Elements       []Node `ast:"elements"`
	TypeAnnotation Node   `ast:"typeAnnotation"`
}

type ObjectExpression struct {
	Base
	Properties []Node `ast:"properties"`
}

type ObjectPattern struct {
	Base
	Properties     []Node `ast:"properties"`
	TypeAnnotation Node   `ast:"typeAnnotation"`
}

type ObjectProperty struct {
	Base
	Decorators []Node `ast:"decorators"`
	Computed   bool   `ast:"computed"`
	Shorthand  bool   `ast:"shorthand"`
	Key        Node   `ast:"key"`
	Value      Node   `ast:"value"`
}

// Property is an ESTree object property. PropKind is one of "init", "get" or "set".
type Property struct {
	Base
	PropKind  string `ast:"kind"`
	Method    bool   `ast:"method"`
	Computed  bool   `ast:"computed"`
	Shorthand bool   `ast:"shorthand"`
	Key       Node   `ast:"key"`
	Value     Node   `ast:"value"`
}

type SpreadElement struct {
	Base
	Argument Node `ast:"argument"`
}

type SpreadProperty struct {
	Base
	Argument Node `ast:"argument"`
}

type RestElement struct {
	Base
	Argument       Node `ast:"argument"`
	TypeAnnotation Node `ast:"typeAnnotation"`
}

type RestProperty struct {
	Base
	Argument Node `ast:"argument"`
}

type AssignmentPattern struct {
	Base
	Left  Node `ast:"left"`
	Right Node `ast:"right"`
}

type UnaryExpression struct {
	Base
	Operator string `ast:"operator"`
	Prefix   bool   `ast:"prefix"`
	Argument Node   `ast:"argument"`
}

type UpdateExpression struct {
	Base
	Operator string `ast:"operator"`
	Prefix   bool   `ast:"prefix"`
	Argument Node   `ast:"argument"`
}

type BinaryExpression struct {
	Base
	Left     Node   `ast:"left"`
	Operator string `ast:"operator"`
	Right    Node   `ast:"right"`
}

type LogicalExpression struct {
	Base
	Left     Node   `ast:"left"`
	Operator string `ast:"operator"`
	Right    Node   `ast:"right"`
}

type AssignmentExpression struct {
	Base
	Left     Node   `ast:"left"`
	Operator string `ast:"operator"`
	Right    Node   `ast:"right"`
}

type ConditionalExpression struct {
	Base
	Test       Node `ast:"test"`
	Consequent Node `ast:"consequent"`
	Alternate  Node `ast:"alternate"`
}

type SequenceExpression struct {
	Base
	Expressions []Node `ast:"expressions"`
}

// CallExpression is a call. Babel's OptionalCallExpression decodes into this with Optional set.
type CallExpression struct {
	Base
	Callee        Node   `ast:"callee"`
	TypeArguments Node   `ast:"typeParameters,typeArguments"`
	Optional      bool   `ast:"optional"`
	Arguments     []Node `ast:"arguments"`
}

type NewExpression struct {
	Base
	Callee        Node   `ast:"callee"`
	TypeArguments Node   `ast:"typeParameters,typeArguments"`
	Arguments     []Node `ast:"arguments"`
}

// MemberExpression is a property access. Babel's OptionalMemberExpression decodes into this with Optional set.
type MemberExpression struct {
	Base
	Object   Node `ast:"object"`
	Optional bool `ast:"optional"`
	Computed bool `ast:"computed"`
	Property Node `ast:"property"`
}

// MetaProperty is `new.target` or `import.meta`.
type MetaProperty struct {
	Base
	Meta     Node `ast:"meta"`
	Property Node `ast:"property"`
}

type YieldExpression struct {
	Base
	Delegate bool `ast:"delegate"`
	Argument Node `ast:"argument"`
}

type AwaitExpression struct {
	Base
	Argument Node `ast:"argument"`
}

// ParenthesizedExpression is produced by parsers that keep parentheses. Parentheses are recomputed, so it prints as its contents.
type ParenthesizedExpression struct {
	Base
	Expression Node `ast:"expression"`
}

// TypeCastExpression is a Flow `(expr: T)`.
type TypeCastExpression struct {
	Base
	Expression     Node `ast:"expression"`
	TypeAnnotation Node `ast:"typeAnnotation"`
}

func (*Identifier) Kind() Kind               { return KindIdentifier }
func (*ThisExpression) Kind() Kind           { return KindThisExpression }
func (*Super) Kind() Kind                    { return KindSuper }
func (*Import) Kind() Kind                   { return KindImport }
func (*StringLiteral) Kind() Kind            { return KindStringLiteral }
func (*NumericLiteral) Kind() Kind           { return KindNumericLiteral }
func (*BigIntLiteral) Kind() Kind            { return KindBigIntLiteral }
func (*BooleanLiteral) Kind() Kind           { return KindBooleanLiteral }
func (*NullLiteral) Kind() Kind              { return KindNullLiteral }
func (*RegExpLiteral) Kind() Kind            { return KindRegExpLiteral }
func (*TemplateLiteral) Kind() Kind          { return KindTemplateLiteral }
func (*TemplateElement) Kind() Kind          { return KindTemplateElement }
func (*TaggedTemplateExpression) Kind() Kind { return KindTaggedTemplateExpression }
func (*ArrayExpression) Kind() Kind          { return KindArrayExpression }
func (*ArrayPattern) Kind() Kind             { return KindArrayPattern }
func (*ObjectExpression) Kind() Kind         { return KindObjectExpression }
func (*ObjectPattern) Kind() Kind            { return KindObjectPattern }
func (*ObjectProperty) Kind() Kind           { return KindObjectProperty }
func (*Property) Kind() Kind                 { return KindProperty }
func (*SpreadElement) Kind() Kind            { return KindSpreadElement }
func (*SpreadProperty) Kind() Kind           { return KindSpreadProperty }
func (*RestElement) Kind() Kind              { return KindRestElement }
func (*RestProperty) Kind() Kind             { return KindRestProperty }
func (*AssignmentPattern) Kind() Kind        { return KindAssignmentPattern }
func (*UnaryExpression) Kind() Kind          { return KindUnaryExpression }
func (*UpdateExpression) Kind() Kind         { return KindUpdateExpression }
func (*BinaryExpression) Kind() Kind         { return KindBinaryExpression }
func (*LogicalExpression) Kind() Kind        { return KindLogicalExpression }
func (*AssignmentExpression) Kind() Kind     { return KindAssignmentExpression }
func (*ConditionalExpression) Kind() Kind    { return KindConditionalExpression }
func (*SequenceExpression) Kind() Kind       { return KindSequenceExpression }
func (*CallExpression) Kind() Kind           { return KindCallExpression }
func (*NewExpression) Kind() Kind            { return KindNewExpression }
func (*MemberExpression) Kind() Kind         { return KindMemberExpression }
func (*MetaProperty) Kind() Kind             { return KindMetaProperty }
func (*YieldExpression) Kind() Kind          { return KindYieldExpression }
func (*AwaitExpression) Kind() Kind          { return KindAwaitExpression }
func (*ParenthesizedExpression) Kind() Kind  { return KindParenthesizedExpression }
func (*TypeCastExpression) Kind() Kind       { return KindTypeCastExpression }
