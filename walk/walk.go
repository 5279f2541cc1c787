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

// Package walk provides traversal of JavaScript trees.
//
// [Nodes] and [NodesEnterAndExit] visit every node of a tree. [Path] is a
// cursor used by translators that need to know where in the tree a node
// sits: it holds the chain of ancestors from the root to the current node,
// along with the field through which each node was reached.
package walk

import (
	"github.com/bufbuild/jsfmt/ast"
)

// Nodes walks every node in the tree rooted at root, in depth-first
// pre-order, calling fn for each. If fn returns an error, the walk stops and
// that error is returned.
func Nodes(root ast.Node, fn func(ast.Node) error) error {
	return NodesEnterAndExit(root, fn, nil)
}

// NodesEnterAndExit is like [Nodes], but it calls enter before visiting a
// node's children and exit afterwards. exit may be nil.
func NodesEnterAndExit(root ast.Node, enter, exit func(ast.Node) error) error {
	if ast.IsNil(root) {
		return nil
	}
	if err := enter(root); err != nil {
		return err
	}
	for child := range ast.Children(root) {
		if err := NodesEnterAndExit(child.Node, enter, exit); err != nil {
			return err
		}
	}
	if exit != nil {
		if err := exit(root); err != nil {
			return err
		}
	}
	return nil
}
