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
	"reflect"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/bufbuild/jsfmt/internal/rawtree"
	"github.com/bufbuild/jsfmt/reporter"
)

// aliases maps node types produced by some parsers onto the kind that
// represents them here.
var aliases = map[string]Kind{
	"OptionalMemberExpression":   KindMemberExpression,
	"OptionalCallExpression":     KindCallExpression,
	"ExistsTypeAnnotation":       KindExistentialTypeParam,
	"ExperimentalSpreadProperty": KindSpreadProperty,
	"ExperimentalRestProperty":   KindRestProperty,
}

// DecodeJSON decodes the JSON dump of an ESTree or Babel AST.
//
// The root may be a File, a Program or any other node. Comments are read
// from the "comments" property of the root, or of the program inside a File.
func DecodeJSON(data []byte) (Node, []*Comment, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, nil, reporter.ErrDecode{Err: err}
	}
	return DecodeValue(v)
}

// DecodeMsgpack is like [DecodeJSON], but for a msgpack-encoded tree.
func DecodeMsgpack(data []byte) (Node, []*Comment, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, nil, reporter.ErrDecode{Err: err}
	}
	return DecodeValue(v)
}

// DecodeValue decodes an already unmarshalled tree, made of maps, slices and
// scalars, such as the result of decoding JSON or YAML into an any.
func DecodeValue(v any) (root Node, comments []*Comment, err error) {
	obj, ok := rawtree.Object(v)
	if !ok {
		return nil, nil, reporter.ErrDecode{Err: fmt.Errorf("expected an object, got %T", v)}
	}

	d := new(decoder)
	defer func() {
		if p := recover(); p != nil {
			e, ok := p.(decodePanic)
			if !ok {
				panic(p)
			}
			root, comments, err = nil, nil, e.err
		}
	}()

	root = d.node(obj)
	raw := obj["comments"]
	if raw == nil {
		if program, ok := rawtree.Object(obj["program"]); ok {
			raw = program["comments"]
		}
	}
	comments = d.comments(raw)
	return root, comments, nil
}

// decodePanic carries an error out of the recursive decoder.
type decodePanic struct{ err error }

type decoder struct {
	path []string
}

func (d *decoder) push(elem string) { d.path = append(d.path, elem) }
func (d *decoder) pop()             { d.path = d.path[:len(d.path)-1] }

func (d *decoder) fail(err error) {
	panic(decodePanic{reporter.ErrDecode{Path: "/" + strings.Join(d.path, "/"), Err: err}})
}

func (d *decoder) failf(format string, args ...any) {
	d.fail(fmt.Errorf(format, args...))
}

// node decodes a single node object.
func (d *decoder) node(obj map[string]any) Node {
	typ, _ := obj["type"].(string)
	span := rawtree.Span(obj)

	var n Node
	switch typ {
	case "":
		d.failf("missing node type")
	case "Literal":
		n = d.literal(obj)
	case "ImportExpression":
		call := &CallExpression{Callee: &Import{Base: Base{Loc: span}}}
		d.push("source")
		if src, ok := rawtree.Object(obj["source"]); ok {
			call.Arguments = []Node{d.node(src)}
		}
		d.pop()
		n = call
	default:
		kind, ok := KindOf(typ)
		if !ok {
			kind, ok = aliases[typ]
		}
		if !ok {
			panic(decodePanic{reporter.ErrUnsupportedKind{Dialect: "js", Kind: typ, Pos: span.Start}})
		}
		n = kind.New()
		d.fields(n, obj)
	}

	n.base().Loc = span
	return n
}

// fields fills in the tagged fields of n from obj.
func (d *decoder) fields(n Node, obj map[string]any) {
	v := reflect.ValueOf(n).Elem()
	for _, f := range layoutOf(n.Kind()) {
		raw, ok := lookupPath(obj, f.paths)
		if !ok || raw == nil {
			continue
		}
		d.push(f.name)
		d.value(v.Field(f.index), f, raw)
		d.pop()
	}
}

func (d *decoder) value(dst reflect.Value, f field, raw any) {
	switch f.shape {
	case shapeNode:
		if child := d.child(f.name, f.typ, raw); child != nil {
			dst.Set(reflect.ValueOf(child))
		}
	case shapeList:
		items, ok := raw.([]any)
		if !ok {
			d.failf("expected an array, got %T", raw)
		}
		list := reflect.MakeSlice(f.typ, len(items), len(items))
		for i, item := range items {
			d.push(strconv.Itoa(i))
			if child := d.child(f.name, f.typ.Elem(), item); child != nil {
				list.Index(i).Set(reflect.ValueOf(child))
			}
			d.pop()
		}
		dst.Set(list)
	default:
		d.scalar(dst, raw)
	}
}

// child decodes a value that must hold a node assignable to typ. Returns
// nil for a JSON null.
func (d *decoder) child(name string, typ reflect.Type, raw any) Node {
	if raw == nil {
		return nil
	}
	// Babel 6 records variance as a bare "plus" or "minus".
	if s, ok := raw.(string); ok && name == "variance" {
		return &Variance{VarianceKind: s}
	}
	obj, ok := rawtree.Object(raw)
	if !ok {
		d.failf("expected a node, got %T", raw)
	}
	n := d.node(obj)
	if !reflect.TypeOf(n).AssignableTo(typ) {
		d.failf("expected %s, got %s", typ.Elem().Name(), n.Kind())
	}
	return n
}

func (d *decoder) scalar(dst reflect.Value, raw any) {
	switch dst.Kind() {
	case reflect.String:
		switch raw := raw.(type) {
		case string:
			dst.SetString(raw)
		case bool, float64, int64:
			dst.SetString(fmt.Sprint(raw))
		default:
			d.failf("expected a string, got %T", raw)
		}
	case reflect.Bool:
		b, ok := raw.(bool)
		if !ok {
			d.failf("expected a boolean, got %T", raw)
		}
		dst.SetBool(b)
	case reflect.Float64:
		f, ok := rawtree.Float(raw)
		if !ok {
			d.failf("expected a number, got %T", raw)
		}
		dst.SetFloat(f)
	}
}

// literal splits an ESTree Literal into the literal kind for its value.
func (d *decoder) literal(obj map[string]any) Node {
	raw, _ := obj["raw"].(string)
	if regex, ok := rawtree.Object(obj["regex"]); ok {
		pattern, _ := regex["pattern"].(string)
		flags, _ := regex["flags"].(string)
		return &RegExpLiteral{Pattern: pattern, Flags: flags}
	}
	if bigint, ok := obj["bigint"].(string); ok {
		return &BigIntLiteral{Value: bigint, Raw: raw}
	}

	switch value := obj["value"].(type) {
	case nil:
		return &NullLiteral{}
	case string:
		return &StringLiteral{Value: value, Raw: raw}
	case bool:
		return &BooleanLiteral{Value: value}
	default:
		f, ok := rawtree.Float(value)
		if !ok {
			d.failf("unexpected literal value %T", value)
		}
		return &NumericLiteral{Value: f, Raw: raw}
	}
}

func (d *decoder) comments(raw any) []*Comment {
	if raw == nil {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		d.failf("expected comments to be an array, got %T", raw)
	}

	d.push("comments")
	defer d.pop()
	out := make([]*Comment, 0, len(items))
	for i, item := range items {
		d.push(strconv.Itoa(i))
		obj, ok := rawtree.Object(item)
		if !ok {
			d.failf("expected a comment, got %T", item)
		}
		c := &Comment{Loc: rawtree.Span(obj)}
		c.Text, _ = obj["value"].(string)
		switch obj["type"] {
		case "CommentBlock", "Block":
			c.Style = BlockComment
		case "CommentLine", "Line":
			c.Style = LineComment
		default:
			d.failf("unknown comment type %v", obj["type"])
		}
		out = append(out, c)
		d.pop()
	}
	return out
}

// lookupPath returns the value at the first of paths present in obj.
func lookupPath(obj map[string]any, paths [][]string) (any, bool) {
outer:
	for _, path := range paths {
		var v any = obj
		for _, key := range path {
			m, ok := rawtree.Object(v)
			if !ok {
				continue outer
			}
			if v, ok = m[key]; !ok {
				continue outer
			}
		}
		return v, true
	}
	return nil, false
}
