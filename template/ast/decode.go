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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/bufbuild/jsfmt/internal/rawtree"
	"github.com/bufbuild/jsfmt/reporter"
)

// DecodeJSON decodes the JSON dump of a Glimmer template AST.
func DecodeJSON(data []byte) (Node, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, reporter.ErrDecode{Err: err}
	}
	return DecodeValue(v)
}

// DecodeMsgpack is like [DecodeJSON], but for a msgpack-encoded tree.
func DecodeMsgpack(data []byte) (Node, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, reporter.ErrDecode{Err: err}
	}
	return DecodeValue(v)
}

// DecodeValue decodes an already unmarshalled tree.
func DecodeValue(v any) (root Node, err error) {
	d := new(decoder)
	defer func() {
		if p := recover(); p != nil {
			e, ok := p.(decodePanic)
			if !ok {
				panic(p)
			}
			root, err = nil, e.err
		}
	}()
	return d.node(v), nil
}

type decodePanic struct{ err error }

type decoder struct {
	path []string
}

func (d *decoder) push(elem string) { d.path = append(d.path, elem) }
func (d *decoder) pop()             { d.path = d.path[:len(d.path)-1] }

func (d *decoder) failf(format string, args ...any) {
	panic(decodePanic{reporter.ErrDecode{
		Path: "/" + strings.Join(d.path, "/"),
		Err:  fmt.Errorf(format, args...),
	}})
}

func (d *decoder) node(raw any) Node {
	obj, ok := rawtree.Object(raw)
	if !ok {
		d.failf("expected a node, got %T", raw)
	}
	typ, _ := obj["type"].(string)
	span := rawtree.Span(obj)
	kind, ok := kindOf(typ)
	switch {
	case typ == "":
		d.failf("missing node type")
	case !ok:
		panic(decodePanic{reporter.ErrUnsupportedKind{Dialect: "template", Kind: typ, Pos: span.Start}})
	}

	var n Node
	switch kind {
	case KindProgram:
		n = &Program{
			Body:        nodes[Node](d, obj, "body"),
			BlockParams: d.stringsField(obj, "blockParams"),
		}
	case KindElementNode:
		n = &ElementNode{
			Tag:         d.stringField(obj, "tag"),
			SelfClosing: d.boolField(obj, "selfClosing"),
			Attributes:  nodes[*AttrNode](d, obj, "attributes"),
			Modifiers:   nodes[*ElementModifierStatement](d, obj, "modifiers"),
			Comments:    nodes[*MustacheCommentStatement](d, obj, "comments"),
			BlockParams: d.stringsField(obj, "blockParams"),
			Children:    nodes[Node](d, obj, "children"),
		}
	case KindAttrNode:
		n = &AttrNode{Name: d.stringField(obj, "name"), Value: child[Node](d, obj, "value")}
	case KindTextNode:
		n = &TextNode{Chars: d.stringField(obj, "chars")}
	case KindMustacheStatement:
		escaped := true
		if v, ok := obj["escaped"].(bool); ok {
			escaped = v
		}
		if d.boolField(obj, "trusting") {
			escaped = false
		}
		n = &MustacheStatement{
			Path:    child[Node](d, obj, "path"),
			Params:  nodes[Node](d, obj, "params"),
			Hash:    child[*Hash](d, obj, "hash"),
			Escaped: escaped,
			Strip:   d.strip(obj, "strip"),
		}
	case KindBlockStatement:
		n = &BlockStatement{
			Path:    child[Node](d, obj, "path"),
			Params:  nodes[Node](d, obj, "params"),
			Hash:    child[*Hash](d, obj, "hash"),
			Program: child[*Program](d, obj, "program"),
			Inverse: child[*Program](d, obj, "inverse"),
			Chained: d.boolField(obj, "chained"),
		}
	case KindElementModifierStatement:
		n = &ElementModifierStatement{
			Path:   child[Node](d, obj, "path"),
			Params: nodes[Node](d, obj, "params"),
			Hash:   child[*Hash](d, obj, "hash"),
		}
	case KindSubExpression:
		n = &SubExpression{
			Path:   child[Node](d, obj, "path"),
			Params: nodes[Node](d, obj, "params"),
			Hash:   child[*Hash](d, obj, "hash"),
		}
	case KindPathExpression:
		n = d.pathExpression(obj)
	case KindConcatStatement:
		n = &ConcatStatement{Parts: nodes[Node](d, obj, "parts")}
	case KindHash:
		n = &Hash{Pairs: nodes[*HashPair](d, obj, "pairs")}
	case KindHashPair:
		n = &HashPair{Key: d.stringField(obj, "key"), Value: child[Node](d, obj, "value")}
	case KindStringLiteral:
		n = &StringLiteral{Value: d.stringField(obj, "value")}
	case KindNumberLiteral:
		f, ok := rawtree.Float(obj["value"])
		if !ok {
			d.failf("expected a number, got %T", obj["value"])
		}
		n = &NumberLiteral{Value: f}
	case KindBooleanLiteral:
		n = &BooleanLiteral{Value: d.boolField(obj, "value")}
	case KindNullLiteral:
		n = &NullLiteral{}
	case KindUndefinedLiteral:
		n = &UndefinedLiteral{}
	case KindCommentStatement:
		n = &CommentStatement{Value: d.stringField(obj, "value")}
	case KindMustacheCommentStatement:
		n = &MustacheCommentStatement{Value: d.stringField(obj, "value")}
	}

	n.base().Loc = span
	return n
}

// pathExpression decodes both the parts form of a path and the head/tail
// form used by newer Glimmer versions.
func (d *decoder) pathExpression(obj map[string]any) *PathExpression {
	p := &PathExpression{
		Original: d.stringField(obj, "original"),
		Parts:    d.stringsField(obj, "parts"),
		This:     d.boolField(obj, "this"),
		Data:     d.boolField(obj, "data"),
	}
	head, ok := rawtree.Object(obj["head"])
	if !ok || p.Parts != nil {
		return p
	}
	name, _ := head["name"].(string)
	switch head["type"] {
	case "ThisHead":
		p.This = true
	case "AtHead":
		p.Data = true
		p.Parts = append(p.Parts, strings.TrimPrefix(name, "@"))
	default:
		p.Parts = append(p.Parts, name)
	}
	p.Parts = append(p.Parts, d.stringsField(obj, "tail")...)
	return p
}

// child decodes an optional node field that must hold a T.
func child[T Node](d *decoder, obj map[string]any, field string) T {
	var zero T
	raw := obj[field]
	if raw == nil {
		return zero
	}
	d.push(field)
	defer d.pop()
	n, ok := d.node(raw).(T)
	if !ok {
		d.failf("unexpected node kind in %s", field)
	}
	return n
}

// nodes decodes a list field whose elements must all be T.
func nodes[T Node](d *decoder, obj map[string]any, field string) []T {
	raw := obj[field]
	if raw == nil {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		d.failf("expected %s to be an array, got %T", field, raw)
	}

	d.push(field)
	defer d.pop()
	out := make([]T, 0, len(items))
	for i, item := range items {
		d.push(strconv.Itoa(i))
		n, ok := d.node(item).(T)
		if !ok {
			d.failf("unexpected node kind")
		}
		out = append(out, n)
		d.pop()
	}
	return out
}

func (d *decoder) stringField(obj map[string]any, field string) string {
	switch v := obj[field].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		d.push(field)
		d.failf("expected a string, got %T", v)
		return ""
	}
}

func (d *decoder) boolField(obj map[string]any, field string) bool {
	switch v := obj[field].(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		d.push(field)
		d.failf("expected a boolean, got %T", v)
		return false
	}
}

func (d *decoder) stringsField(obj map[string]any, field string) []string {
	raw := obj[field]
	if raw == nil {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		d.push(field)
		d.failf("expected an array, got %T", raw)
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			d.push(field)
			d.failf("expected a string at index %d, got %T", i, item)
		}
		out[i] = s
	}
	return out
}

func (d *decoder) strip(obj map[string]any, field string) StripFlags {
	m, ok := rawtree.Object(obj[field])
	if !ok {
		return StripFlags{}
	}
	open, _ := m["open"].(bool)
	closing, _ := m["close"].(bool)
	return StripFlags{Open: open, Close: closing}
}
