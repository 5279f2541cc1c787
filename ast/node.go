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

import (
	"reflect"

	"github.com/bufbuild/jsfmt/source"
)

// Node is any node of a JavaScript tree.
//
// The only implementations of Node are the pointer types in this package.
type Node interface {
	source.Spanner

	// Kind returns which kind of node this is.
	Kind() Kind

	base() *Base
}

// Base contains the fields common to all nodes. It is embedded in every node
// type.
type Base struct {
	Loc source.Span
}

// Span implements [source.Spanner].
func (b *Base) Span() source.Span { return b.Loc }

func (b *Base) base() *Base { return b }

// CommentStyle distinguishes block comments from line comments.
type CommentStyle int8

const (
	BlockComment CommentStyle = iota + 1 // A /* block */ comment.
	LineComment                          // A // line comment.
)

// String implements [fmt.Stringer].
func (s CommentStyle) String() string {
	switch s {
	case BlockComment:
		return "Block"
	case LineComment:
		return "Line"
	default:
		return "Unknown"
	}
}

// Comment is a comment in the source. Text does not include the comment
// delimiters.
type Comment struct {
	Text  string
	Style CommentStyle
	Loc   source.Span
}

// Span implements [source.Spanner].
func (c *Comment) Span() source.Span { return c.Loc }

// String returns the comment as it appears in the source.
func (c *Comment) String() string {
	if c.Style == LineComment {
		return "//" + c.Text
	}
	return "/*" + c.Text + "*/"
}

// IsNil returns whether n is nil, including a typed nil pointer.
func IsNil(n Node) bool {
	return n == nil || reflect.ValueOf(n).IsNil()
}
