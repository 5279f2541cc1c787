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

// Package ast defines the tree of the Handlebars-like template dialect, in
// the shape produced by Glimmer's preprocessor.
//
// Node is a closed sum type: the only implementations are the pointer types
// in this package, one per [Kind].
package ast

import (
	"fmt"
	"reflect"

	"github.com/bufbuild/jsfmt/source"
)

// Node is any node of a template tree.
type Node interface {
	source.Spanner

	// Kind returns which kind of node this is.
	Kind() Kind

	base() *Base
}

// Base contains the fields common to all nodes.
type Base struct {
	Loc source.Span
}

// Span implements [source.Spanner].
func (b *Base) Span() source.Span { return b.Loc }

func (b *Base) base() *Base { return b }

// IsNil returns whether n is nil, including a typed nil pointer.
func IsNil(n Node) bool {
	return n == nil || reflect.ValueOf(n).IsNil()
}

// Kind identifies the concrete type of a [Node]. Its string form is the
// Glimmer "type" of the node.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindProgram
	KindElementNode
	KindAttrNode
	KindTextNode
	KindMustacheStatement
	KindBlockStatement
	KindElementModifierStatement
	KindPathExpression
	KindSubExpression
	KindConcatStatement
	KindHash
	KindHashPair
	KindStringLiteral
	KindNumberLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindUndefinedLiteral
	KindCommentStatement
	KindMustacheCommentStatement

	kindCount
)

var kindNames = [kindCount]string{
	KindProgram:                  "Program",
	KindElementNode:              "ElementNode",
	KindAttrNode:                 "AttrNode",
	KindTextNode:                 "TextNode",
	KindMustacheStatement:        "MustacheStatement",
	KindBlockStatement:           "BlockStatement",
	KindElementModifierStatement: "ElementModifierStatement",
	KindPathExpression:           "PathExpression",
	KindSubExpression:            "SubExpression",
	KindConcatStatement:          "ConcatStatement",
	KindHash:                     "Hash",
	KindHashPair:                 "HashPair",
	KindStringLiteral:            "StringLiteral",
	KindNumberLiteral:            "NumberLiteral",
	KindBooleanLiteral:           "BooleanLiteral",
	KindNullLiteral:              "NullLiteral",
	KindUndefinedLiteral:         "UndefinedLiteral",
	KindCommentStatement:         "CommentStatement",
	KindMustacheCommentStatement: "MustacheCommentStatement",
}

// Kinds returns every valid [Kind], in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k == KindInvalid || k >= kindCount {
		return fmt.Sprintf("ast.Kind(%d)", int(k))
	}
	return kindNames[k]
}

// New returns a new, zero node of this kind. Returns nil for an invalid kind.
func (k Kind) New() Node {
	switch k {
	case KindProgram:
		return new(Program)
	case KindElementNode:
		return new(ElementNode)
	case KindAttrNode:
		return new(AttrNode)
	case KindTextNode:
		return new(TextNode)
	case KindMustacheStatement:
		return new(MustacheStatement)
	case KindBlockStatement:
		return new(BlockStatement)
	case KindElementModifierStatement:
		return new(ElementModifierStatement)
	case KindPathExpression:
		return new(PathExpression)
	case KindSubExpression:
		return new(SubExpression)
	case KindConcatStatement:
		return new(ConcatStatement)
	case KindHash:
		return new(Hash)
	case KindHashPair:
		return new(HashPair)
	case KindStringLiteral:
		return new(StringLiteral)
	case KindNumberLiteral:
		return new(NumberLiteral)
	case KindBooleanLiteral:
		return new(BooleanLiteral)
	case KindNullLiteral:
		return new(NullLiteral)
	case KindUndefinedLiteral:
		return new(UndefinedLiteral)
	case KindCommentStatement:
		return new(CommentStatement)
	case KindMustacheCommentStatement:
		return new(MustacheCommentStatement)
	}
	return nil
}

// kindOf looks up a kind by its Glimmer type name. "Block" and "Template"
// are the names newer Glimmer versions give a [Program].
func kindOf(name string) (Kind, bool) {
	switch name {
	case "Block", "Template":
		return KindProgram, true
	}
	for k := KindInvalid + 1; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindInvalid, false
}
