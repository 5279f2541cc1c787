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

// Package comments attaches comments to the nodes of a JavaScript tree.
//
// Parsers report comments separately from the tree. [Attach] decides, once
// per tree, which node each comment belongs to and whether it is printed
// before that node, after it, or inside it when the node has no children.
// The result is an immutable association list; nodes are never modified.
package comments

import (
	"iter"
	"slices"

	"github.com/tidwall/btree"

	"github.com/bufbuild/jsfmt/ast"
	"github.com/bufbuild/jsfmt/source"
)

// Placement is where a comment is printed relative to the node it is
// attached to.
type Placement int8

const (
	Leading  Placement = iota + 1 // Before the node.
	Trailing                      // After the node.
	Dangling                      // Inside a node with nothing else to print.
)

// String implements [fmt.Stringer].
func (p Placement) String() string {
	switch p {
	case Leading:
		return "Leading"
	case Trailing:
		return "Trailing"
	case Dangling:
		return "Dangling"
	default:
		return "Unknown"
	}
}

// Attachment records the node a comment is attached to.
type Attachment struct {
	Comment   *ast.Comment
	Node      ast.Node
	Placement Placement
}

// Attachments is the result of [Attach]. A nil *Attachments has no comments.
type Attachments struct {
	all    []Attachment // In source order of the comments.
	byNode map[ast.Node][]int
}

// Leading returns the comments printed before n, in source order.
func (a *Attachments) Leading(n ast.Node) []*ast.Comment { return a.get(n, Leading) }

// Trailing returns the comments printed after n, in source order.
func (a *Attachments) Trailing(n ast.Node) []*ast.Comment { return a.get(n, Trailing) }

// Dangling returns the comments printed inside n, in source order.
func (a *Attachments) Dangling(n ast.Node) []*ast.Comment { return a.get(n, Dangling) }

// Len returns the number of attached comments.
func (a *Attachments) Len() int {
	if a == nil {
		return 0
	}
	return len(a.all)
}

// All iterates over every attachment, in source order of the comments.
func (a *Attachments) All() iter.Seq[Attachment] {
	return func(yield func(Attachment) bool) {
		if a == nil {
			return
		}
		for _, att := range a.all {
			if !yield(att) {
				return
			}
		}
	}
}

func (a *Attachments) get(n ast.Node, p Placement) []*ast.Comment {
	if a == nil {
		return nil
	}
	var out []*ast.Comment
	for _, i := range a.byNode[n] {
		if a.all[i].Placement == p {
			out = append(out, a.all[i].Comment)
		}
	}
	return out
}

// Attach attaches every comment to a node of the tree rooted at root.
//
// Each comment is placed relative to the children of the deepest node that
// encloses it:
//
//   - a comment on the same line as the end of the preceding child trails it,
//     if the comment is a block comment or that child is an entry of a
//     statement list;
//   - otherwise it leads the following child, if there is one;
//   - otherwise it trails the preceding child;
//   - otherwise the enclosing node has no children and the comment dangles
//     inside it.
//
// Children that are never printed, such as the key of a shorthand property,
// never receive comments.
func Attach(root ast.Node, comments []*ast.Comment) *Attachments {
	a := &Attachments{byNode: make(map[ast.Node][]int)}
	if ast.IsNil(root) || len(comments) == 0 {
		return a
	}

	// Comments starting at the same position keep their input order.
	rank := make(map[*ast.Comment]int, len(comments))
	for i, c := range comments {
		rank[c] = i + 1
	}
	pending := btree.NewBTreeG(func(x, y *ast.Comment) bool {
		if c := source.Compare(x.Loc.Start, y.Loc.Start); c != 0 {
			return c < 0
		}
		return rank[x] < rank[y]
	})
	for _, c := range comments {
		pending.Set(c)
	}

	w := &attacher{pending: pending, out: a}
	w.visit(root, true)

	slices.SortStableFunc(a.all, func(x, y Attachment) int {
		return source.Compare(x.Comment.Loc.Start, y.Comment.Loc.Start)
	})
	for i, att := range a.all {
		a.byNode[att.Node] = append(a.byNode[att.Node], i)
	}
	return a
}

type attacher struct {
	pending *btree.BTreeG[*ast.Comment]
	out     *Attachments
}

// child is a child of the node being visited.
type child struct {
	ast.Child
	span source.Span
}

// visit attaches the pending comments that lie inside n but not inside any
// of its children, then recurses. At the root, every remaining comment is
// considered to be inside n, since some parsers do not include leading and
// trailing comments in the span of the program.
func (w *attacher) visit(n ast.Node, root bool) {
	span := n.Span()
	children := hosts(n)

	var mine []*ast.Comment
	collect := func(c *ast.Comment) bool {
		if !root && source.Compare(c.Loc.Start, span.End) >= 0 {
			return false
		}
		if !slices.ContainsFunc(children, func(ch child) bool { return ch.span.Contains(c.Loc) }) {
			mine = append(mine, c)
		}
		return true
	}
	if root {
		w.pending.Scan(collect)
	} else {
		w.pending.Ascend(&ast.Comment{Loc: source.Span{Start: span.Start}}, collect)
	}

	for _, c := range mine {
		w.pending.Delete(c)
		w.place(n, children, c)
	}

	for _, ch := range children {
		if w.pending.Len() == 0 {
			return
		}
		w.visit(ch.Node, false)
	}
}

// place decides the placement of c among the children of n.
func (w *attacher) place(n ast.Node, children []child, c *ast.Comment) {
	var preceding, following *child
	for i := range children {
		ch := &children[i]
		if source.Compare(ch.span.End, c.Loc.Start) <= 0 {
			preceding = ch
		} else if following == nil && source.Compare(c.Loc.End, ch.span.Start) <= 0 {
			following = ch
		}
	}

	switch {
	case preceding != nil && source.Lines(preceding.span.End, c.Loc.Start) == 0 &&
		(c.Style == ast.BlockComment || IsStatementListEntry(n, preceding.Field)):
		w.add(c, preceding.Node, Trailing)
	case following != nil:
		w.add(c, following.Node, Leading)
	case preceding != nil:
		w.add(c, preceding.Node, Trailing)
	default:
		w.add(c, n, Dangling)
	}
}

func (w *attacher) add(c *ast.Comment, n ast.Node, p Placement) {
	w.out.all = append(w.out.all, Attachment{Comment: c, Node: n, Placement: p})
}

// hosts returns the children of n that may receive comments, in source
// order.
func hosts(n ast.Node) []child {
	var out []child
	for ch := range ast.Children(n) {
		span := ch.Node.Span()
		if span.IsZero() || neverPrinted(n, ch) {
			continue
		}
		out = append(out, child{Child: ch, span: span})
	}
	slices.SortStableFunc(out, func(x, y child) int {
		return source.Compare(x.span.Start, y.span.Start)
	})
	return out
}

// neverPrinted returns whether the printer elides ch, a child of n.
func neverPrinted(n ast.Node, ch ast.Child) bool {
	if _, empty := ch.Node.(*ast.EmptyStatement); empty && IsStatementListEntry(n, ch.Field) {
		return true
	}
	switch n := n.(type) {
	case *ast.ObjectProperty:
		return n.Shorthand && ch.Field == "key"
	case *ast.Property:
		return n.Shorthand && ch.Field == "key"
	case *ast.ImportSpecifier:
		return ch.Field == "imported" && SameName(n.Imported, n.Local)
	case *ast.ExportSpecifier:
		return ch.Field == "exported" && SameName(n.Local, n.Exported)
	}
	return false
}

// SameName returns whether a and b are identifiers with the same name.
func SameName(a, b ast.Node) bool {
	x, ok1 := a.(*ast.Identifier)
	y, ok2 := b.(*ast.Identifier)
	return ok1 && ok2 && x.Name == y.Name
}

// IsStatementListEntry returns whether the children in the named field of
// parent are printed one per line, like statements.
func IsStatementListEntry(parent ast.Node, field string) bool {
	switch parent.(type) {
	case *ast.Program, *ast.BlockStatement:
		return field == "body" || field == "directives"
	case *ast.SwitchCase:
		return field == "consequent"
	case *ast.ClassBody:
		return field == "body"
	}
	return false
}
