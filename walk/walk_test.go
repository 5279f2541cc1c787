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

package walk_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/jsfmt/ast"
	"github.com/bufbuild/jsfmt/walk"
)

func sample() *ast.Program {
	// a + b; if (c) {}
	return &ast.Program{Body: []ast.Node{
		&ast.ExpressionStatement{Expression: &ast.BinaryExpression{
			Left:     &ast.Identifier{Name: "a"},
			Operator: "+",
			Right:    &ast.Identifier{Name: "b"},
		}},
		&ast.IfStatement{
			Test:       &ast.Identifier{Name: "c"},
			Consequent: &ast.BlockStatement{},
		},
	}}
}

func TestNodesEnterAndExit(t *testing.T) {
	t.Parallel()

	var events []string
	err := walk.NodesEnterAndExit(sample(),
		func(n ast.Node) error {
			events = append(events, "+"+n.Kind().String())
			return nil
		},
		func(n ast.Node) error {
			events = append(events, "-"+n.Kind().String())
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"+Program",
		"+ExpressionStatement", "+BinaryExpression",
		"+Identifier", "-Identifier", "+Identifier", "-Identifier",
		"-BinaryExpression", "-ExpressionStatement",
		"+IfStatement", "+Identifier", "-Identifier", "+BlockStatement", "-BlockStatement", "-IfStatement",
		"-Program",
	}, events)
}

func TestNodesStopsOnError(t *testing.T) {
	t.Parallel()

	stop := errors.New("stop")
	count := 0
	err := walk.Nodes(sample(), func(n ast.Node) error {
		count++
		if n.Kind() == ast.KindBinaryExpression {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 3, count)
}

func TestPath(t *testing.T) {
	t.Parallel()

	program := sample()
	p := walk.NewPath(program)
	assert.Equal(t, 1, p.Depth())
	assert.Nil(t, p.Parent())
	assert.Equal(t, -1, p.Index())

	kinds := walk.Map(p, "body", func(p *walk.Path, i int) string {
		assert.Equal(t, i, p.Index())
		assert.Equal(t, "body", p.Field())
		assert.Same(t, program, p.Parent())
		return p.Current().Kind().String()
	})
	assert.Equal(t, []string{"ExpressionStatement", "IfStatement"}, kinds)
	assert.Equal(t, 1, p.Depth())

	p.Each("body", func(p *walk.Path, i int) {
		if i != 0 {
			return
		}
		name := walk.Call(p, func(p *walk.Path) string {
			assert.Equal(t, 4, p.Depth())
			assert.Equal(t, "left", p.Field())
			assert.Equal(t, "expression", p.Frame(1).Field)
			assert.Equal(t, ast.KindExpressionStatement, p.Ancestor(2).Kind())

			var fields []string
			for n, frame := range p.Ancestors() {
				assert.Same(t, p.Ancestor(n), frame.Node)
				fields = append(fields, frame.Field)
			}
			assert.Equal(t, []string{"expression", "body", ""}, fields)
			return p.Current().(*ast.Identifier).Name
		}, "expression", "left")
		assert.Equal(t, "a", name)
	})

	// Missing optional children are visited as nil.
	p.Each("body", func(p *walk.Path, i int) {
		if i != 1 {
			return
		}
		walk.Call(p, func(p *walk.Path) any {
			assert.Nil(t, p.Current())
			assert.Equal(t, "alternate", p.Field())
			return nil
		}, "alternate")
	})

	assert.Panics(t, func() { p.Each("test", func(*walk.Path, int) {}) })
	assert.Panics(t, func() { walk.Call(p, func(*walk.Path) int { return 0 }, "nope") })
	assert.Equal(t, walk.Frame{Index: -1}, p.Frame(5))
}

func TestPathOwnership(t *testing.T) {
	t.Parallel()

	p := walk.NewPath(sample())
	done := make(chan any)
	go func() {
		defer func() { done <- recover() }()
		p.Each("body", func(*walk.Path, int) {})
	}()
	assert.NotNil(t, <-done)
	assert.Equal(t, 1, p.Depth())
}
