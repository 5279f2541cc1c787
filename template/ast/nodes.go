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

// Program is the root of a template, and the body of a block.
type Program struct {
	Base
	Body        []Node
	BlockParams []string
}

// ElementNode is an HTML element.
type ElementNode struct {
	Base
	Tag         string
	SelfClosing bool
	Attributes  []*AttrNode
	Modifiers   []*ElementModifierStatement
	Comments    []*MustacheCommentStatement
	BlockParams []string
	Children    []Node
}

// AttrNode is an attribute of an element. Value is a [TextNode],
// [MustacheStatement] or [ConcatStatement].
type AttrNode struct {
	Base
	Name  string
	Value Node
}

// TextNode is literal text, as written.
type TextNode struct {
	Base
	Chars string
}

// StripFlags records the `~` whitespace control markers of a mustache.
type StripFlags struct {
	Open, Close bool
}

// MustacheStatement is a `{{...}}` interpolation. Unescaped ones are written
// with three braces.
type MustacheStatement struct {
	Base
	Path    Node
	Params  []Node
	Hash    *Hash
	Escaped bool
	Strip   StripFlags
}

// BlockStatement is `{{#path}}...{{else}}...{{/path}}`. Chained is set on a
// block that was written as `{{else path}}` inside another block's inverse.
type BlockStatement struct {
	Base
	Path    Node
	Params  []Node
	Hash    *Hash
	Program *Program
	Inverse *Program
	Chained bool
}

// ElementModifierStatement is a mustache in the attribute list of an element.
type ElementModifierStatement struct {
	Base
	Path   Node
	Params []Node
	Hash   *Hash
}

// PathExpression is a reference such as `this.name`, `@index` or `a.b.c`.
// Original is the reference as written; Parts excludes the `this` and `@`
// prefixes.
type PathExpression struct {
	Base
	Original string
	Parts    []string
	This     bool
	Data     bool
}

// SubExpression is a parenthesized helper call.
type SubExpression struct {
	Base
	Path   Node
	Params []Node
	Hash   *Hash
}

// ConcatStatement is a quoted attribute value mixing text and mustaches.
type ConcatStatement struct {
	Base
	Parts []Node
}

type Hash struct {
	Base
	Pairs []*HashPair
}

type HashPair struct {
	Base
	Key   string
	Value Node
}

type StringLiteral struct {
	Base
	Value string
}

type NumberLiteral struct {
	Base
	Value float64
}

type BooleanLiteral struct {
	Base
	Value bool
}

type NullLiteral struct{ Base }

type UndefinedLiteral struct{ Base }

// CommentStatement is an HTML `<!-- -->` comment. Value excludes the
// delimiters.
type CommentStatement struct {
	Base
	Value string
}

// MustacheCommentStatement is a `{{! }}` or `{{!-- --}}` comment. Value
// excludes the delimiters.
type MustacheCommentStatement struct {
	Base
	Value string
}

func (*Program) Kind() Kind                  { return KindProgram }
func (*ElementNode) Kind() Kind              { return KindElementNode }
func (*AttrNode) Kind() Kind                 { return KindAttrNode }
func (*TextNode) Kind() Kind                 { return KindTextNode }
func (*MustacheStatement) Kind() Kind        { return KindMustacheStatement }
func (*BlockStatement) Kind() Kind           { return KindBlockStatement }
func (*ElementModifierStatement) Kind() Kind { return KindElementModifierStatement }
func (*PathExpression) Kind() Kind           { return KindPathExpression }
func (*SubExpression) Kind() Kind            { return KindSubExpression }
func (*ConcatStatement) Kind() Kind          { return KindConcatStatement }
func (*Hash) Kind() Kind                     { return KindHash }
func (*HashPair) Kind() Kind                 { return KindHashPair }
func (*StringLiteral) Kind() Kind            { return KindStringLiteral }
func (*NumberLiteral) Kind() Kind            { return KindNumberLiteral }
func (*BooleanLiteral) Kind() Kind           { return KindBooleanLiteral }
func (*NullLiteral) Kind() Kind              { return KindNullLiteral }
func (*UndefinedLiteral) Kind() Kind         { return KindUndefinedLiteral }
func (*CommentStatement) Kind() Kind         { return KindCommentStatement }
func (*MustacheCommentStatement) Kind() Kind { return KindMustacheCommentStatement }
