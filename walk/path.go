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

package walk

import (
	"fmt"
	"iter"

	"github.com/petermattis/goid"

	"github.com/bufbuild/jsfmt/ast"
)

// Frame is one entry of a [Path]: a node and the field of its parent that
// holds it.
type Frame struct {
	Node  ast.Node
	Field string // Empty for the root.
	Index int    // Index within a list field, or -1.
}

// Path is a stack of frames from the root of a tree to the current node.
//
// A Path belongs to the goroutine that created it; moving it from another
// goroutine panics. The current node may be nil, which happens when visiting
// an optional field or a hole in a list.
type Path struct {
	frames []Frame
	owner  int64
}

// NewPath returns a new path whose current node is root.
func NewPath(root ast.Node) *Path {
	return &Path{
		frames: []Frame{{Node: root, Index: -1}},
		owner:  goid.Get(),
	}
}

// Current returns the current node.
func (p *Path) Current() ast.Node {
	return p.frames[len(p.frames)-1].Node
}

// Field returns the name of the field through which the current node was
// reached.
func (p *Path) Field() string {
	return p.frames[len(p.frames)-1].Field
}

// Index returns the index of the current node within its parent's list
// field, or -1.
func (p *Path) Index() int {
	return p.frames[len(p.frames)-1].Index
}

// Depth returns the number of frames on the path; the root alone has depth 1.
func (p *Path) Depth() int {
	return len(p.frames)
}

// Frame returns the nth frame counting outwards from the current one, which
// is frame zero. Returns the zero frame if the path is not that deep.
func (p *Path) Frame(n int) Frame {
	i := len(p.frames) - 1 - n
	if n < 0 || i < 0 {
		return Frame{Index: -1}
	}
	return p.frames[i]
}

// Ancestor returns the nth node counting outwards from the current one:
// Ancestor(0) is the current node and Ancestor(1) its parent.
func (p *Path) Ancestor(n int) ast.Node {
	return p.Frame(n).Node
}

// Parent returns the parent of the current node, or nil at the root.
func (p *Path) Parent() ast.Node {
	return p.Ancestor(1)
}

// Ancestors iterates over the frames of the path, from the parent of the
// current node to the root. The yielded index is the argument that would be
// passed to [Path.Frame].
func (p *Path) Ancestors() iter.Seq2[int, Frame] {
	return func(yield func(int, Frame) bool) {
		for n := 1; n < len(p.frames); n++ {
			if !yield(n, p.frames[len(p.frames)-1-n]) {
				return
			}
		}
	}
}

// Descend pushes child as the new current node, calls fn, and pops it again.
func (p *Path) Descend(field string, index int, child ast.Node, fn func()) {
	p.push(Frame{Node: child, Field: field, Index: index})
	defer p.pop()
	fn()
}

// Each calls fn for every element of a list field of the current node,
// including nil holes. It panics if there is no such list field.
func (p *Path) Each(field string, fn func(p *Path, index int)) {
	for i, child := range p.list(field) {
		p.Descend(field, i, child, func() { fn(p, i) })
	}
}

// Call descends through a chain of scalar fields, starting at the current
// node, and returns the result of calling fn with the last of them as the
// current node. If any field along the way is nil, fn is called with a nil
// current node.
func Call[T any](p *Path, fn func(*Path) T, fields ...string) T {
	if len(fields) == 0 {
		return fn(p)
	}
	var child ast.Node
	if parent := p.Current(); !ast.IsNil(parent) {
		var ok bool
		child, _, ok = ast.Lookup(parent, fields[0])
		if !ok {
			panic(fmt.Sprintf("walk: %s has no field %q", parent.Kind(), fields[0]))
		}
	}
	var out T
	p.Descend(fields[0], -1, child, func() { out = Call(p, fn, fields[1:]...) })
	return out
}

// Map is like [Path.Each], but collects the results of fn.
func Map[T any](p *Path, field string, fn func(p *Path, index int) T) []T {
	list := p.list(field)
	out := make([]T, 0, len(list))
	for i, child := range list {
		p.Descend(field, i, child, func() { out = append(out, fn(p, i)) })
	}
	return out
}

func (p *Path) list(field string) []ast.Node {
	parent := p.Current()
	if ast.IsNil(parent) {
		return nil
	}
	_, list, ok := ast.Lookup(parent, field)
	if !ok || list == nil {
		panic(fmt.Sprintf("walk: %s has no list field %q", parent.Kind(), field))
	}
	return list
}

func (p *Path) push(f Frame) {
	p.checkOwner()
	p.frames = append(p.frames, f)
}

func (p *Path) pop() {
	p.checkOwner()
	p.frames = p.frames[:len(p.frames)-1]
}

func (p *Path) checkOwner() {
	if id := goid.Get(); id != p.owner {
		panic(fmt.Sprintf("walk: Path created on goroutine %d used on goroutine %d", p.owner, id))
	}
}
