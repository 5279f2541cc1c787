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
	"iter"
	"reflect"
	"strings"
)

// Child is a child of a node, together with the field that holds it.
type Child struct {
	Node  Node
	Field string // The ESTree name of the field.
	Index int    // The index within a list field, or -1.
}

// Children iterates over the non-nil children of n, in field declaration
// order, which is also source order for every kind.
func Children(n Node) iter.Seq[Child] {
	return func(yield func(Child) bool) {
		if IsNil(n) {
			return
		}
		v := reflect.ValueOf(n).Elem()
		for _, f := range layoutOf(n.Kind()) {
			if f.shape == shapeScalar {
				continue
			}
			fv := v.Field(f.index)
			if f.shape == shapeNode {
				if child := asNode(fv); child != nil {
					if !yield(Child{Node: child, Field: f.name, Index: -1}) {
						return
					}
				}
				continue
			}
			for i := range fv.Len() {
				if child := asNode(fv.Index(i)); child != nil {
					if !yield(Child{Node: child, Field: f.name, Index: i}) {
						return
					}
				}
			}
		}
	}
}

// Lookup returns the contents of the named child field of n.
//
// For a scalar child field, node is the child (possibly nil) and list is nil;
// for a list field, list holds the elements, with nil for holes. ok is false
// if n has no child field with that name.
func Lookup(n Node, field string) (node Node, list []Node, ok bool) {
	if IsNil(n) {
		return nil, nil, false
	}
	for _, f := range layoutOf(n.Kind()) {
		if f.name != field || f.shape == shapeScalar {
			continue
		}
		fv := reflect.ValueOf(n).Elem().Field(f.index)
		if f.shape == shapeNode {
			return asNode(fv), nil, true
		}
		list = make([]Node, fv.Len())
		for i := range list {
			list[i] = asNode(fv.Index(i))
		}
		return nil, list, true
	}
	return nil, nil, false
}

// Fields returns the names of the child fields of nodes of kind k, in
// declaration order.
func Fields(k Kind) []string {
	var names []string
	for _, f := range layoutOf(k) {
		if f.shape != shapeScalar {
			names = append(names, f.name)
		}
	}
	return names
}

type shape int8

const (
	shapeScalar shape = iota // string, bool or number.
	shapeNode                // Node or a pointer to a node type.
	shapeList                // A slice of either of the above.
)

// field describes one tagged field of a node struct.
type field struct {
	name  string     // The first alternative in the tag.
	paths [][]string // Each alternative, split on "." for nested properties.
	index int
	typ   reflect.Type
	shape shape
}

var (
	nodeType = reflect.TypeFor[Node]()

	// layouts is computed once for every registered kind and never mutated.
	layouts = func() [kindCount][]field {
		var out [kindCount][]field
		for k := KindInvalid + 1; k < kindCount; k++ {
			out[k] = layoutFor(reflect.TypeOf(k.New()).Elem())
		}
		return out
	}()
)

func layoutOf(k Kind) []field {
	if k >= kindCount {
		return nil
	}
	return layouts[k]
}

func layoutFor(t reflect.Type) []field {
	var out []field
	for i := range t.NumField() {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup("ast")
		if !ok {
			continue
		}
		alts := strings.Split(tag, ",")
		f := field{
			name:  alts[0],
			index: i,
			typ:   sf.Type,
		}
		for _, alt := range alts {
			f.paths = append(f.paths, strings.Split(alt, "."))
		}
		switch {
		case isNodeType(sf.Type):
			f.shape = shapeNode
		case sf.Type.Kind() == reflect.Slice && isNodeType(sf.Type.Elem()):
			f.shape = shapeList
		}
		out = append(out, f)
	}
	return out
}

func isNodeType(t reflect.Type) bool {
	return t == nodeType || (t.Kind() == reflect.Pointer && t.Implements(nodeType))
}

// asNode converts a Node-typed or pointer-typed value into a Node, mapping
// typed nils to nil.
func asNode(v reflect.Value) Node {
	if v.IsNil() {
		return nil
	}
	if v.Kind() == reflect.Interface {
		v = v.Elem()
		if v.IsNil() {
			return nil
		}
	}
	n, _ := v.Interface().(Node)
	return n
}
