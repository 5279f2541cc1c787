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

package ast_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bufbuild/jsfmt/ast"
	"github.com/bufbuild/jsfmt/reporter"
	"github.com/bufbuild/jsfmt/source"
)

const babelFile = `{
  "type": "File",
  "program": {
    "type": "Program",
    "start": 0, "end": 27,
    "loc": {"start": {"line": 1, "column": 0}, "end": {"line": 2, "column": 10}},
    "sourceType": "module",
    "body": [
      {
        "type": "ExpressionStatement",
        "start": 0, "end": 16,
        "loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 16}},
        "expression": {
          "type": "OptionalCallExpression",
          "start": 0, "end": 15,
          "optional": true,
          "callee": {"type": "Identifier", "name": "f", "start": 0, "end": 1},
          "arguments": [
            {"type": "StringLiteral", "value": "x", "extra": {"raw": "'x'"}, "start": 4, "end": 7},
            {"type": "NumericLiteral", "value": 1, "extra": {"raw": "0x1"}, "start": 9, "end": 12}
          ]
        }
      },
      {
        "type": "ExpressionStatement",
        "start": 17, "end": 27,
        "expression": {
          "type": "ArrayExpression",
          "elements": [null, {"type": "Identifier", "name": "a"}]
        }
      }
    ]
  },
  "comments": [
    {"type": "CommentLine", "value": " hi", "start": 16, "end": 21,
     "loc": {"start": {"line": 1, "column": 16}, "end": {"line": 1, "column": 21}}}
  ]
}`

func TestDecodeBabel(t *testing.T) {
	t.Parallel()

	root, comments, err := ast.DecodeJSON([]byte(babelFile))
	require.NoError(t, err)

	file, ok := root.(*ast.File)
	require.True(t, ok)
	program, ok := file.Program.(*ast.Program)
	require.True(t, ok)
	assert.Equal(t, "module", program.SourceType)
	assert.Equal(t, source.Position{Offset: 0, Line: 1, Column: 0}, program.Span().Start)
	assert.Equal(t, source.Position{Offset: 27, Line: 2, Column: 10}, program.Span().End)
	require.Len(t, program.Body, 2)

	call := program.Body[0].(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	assert.True(t, call.Optional)
	assert.Equal(t, "f", call.Callee.(*ast.Identifier).Name)
	require.Len(t, call.Arguments, 2)
	assert.Equal(t, &ast.StringLiteral{
		Base:  ast.Base{Loc: source.Span{Start: source.Position{Offset: 4}, End: source.Position{Offset: 7}}},
		Value: "x",
		Raw:   "'x'",
	}, call.Arguments[0])
	assert.Equal(t, "0x1", call.Arguments[1].(*ast.NumericLiteral).Raw)

	array := program.Body[1].(*ast.ExpressionStatement).Expression.(*ast.ArrayExpression)
	require.Len(t, array.Elements, 2)
	assert.Nil(t, array.Elements[0])

	require.Len(t, comments, 1)
	assert.Equal(t, " hi", comments[0].Text)
	assert.Equal(t, ast.LineComment, comments[0].Style)
	assert.Equal(t, "// hi", comments[0].String())
	assert.Equal(t, 16, comments[0].Span().Start.Offset)
}

func TestDecodeESTreeLiterals(t *testing.T) {
	t.Parallel()

	root, comments, err := ast.DecodeJSON([]byte(`{
		"type": "Program",
		"range": [0, 30],
		"body": [{
			"type": "ExpressionStatement",
			"expression": {
				"type": "SequenceExpression",
				"expressions": [
					{"type": "Literal", "value": "s", "raw": "\"s\""},
					{"type": "Literal", "value": 2.5, "raw": "2.5"},
					{"type": "Literal", "value": true, "raw": "true"},
					{"type": "Literal", "value": null, "raw": "null"},
					{"type": "Literal", "value": null, "raw": "/a/g", "regex": {"pattern": "a", "flags": "g"}},
					{"type": "Literal", "value": null, "raw": "1n", "bigint": "1"}
				]
			}
		}],
		"comments": [{"type": "Block", "value": "*", "range": [3, 8]}]
	}`))
	require.NoError(t, err)
	program := root.(*ast.Program)
	assert.Equal(t, 30, program.Span().End.Offset)

	seq := program.Body[0].(*ast.ExpressionStatement).Expression.(*ast.SequenceExpression)
	var kinds []ast.Kind
	for _, e := range seq.Expressions {
		kinds = append(kinds, e.Kind())
	}
	assert.Equal(t, []ast.Kind{
		ast.KindStringLiteral,
		ast.KindNumericLiteral,
		ast.KindBooleanLiteral,
		ast.KindNullLiteral,
		ast.KindRegExpLiteral,
		ast.KindBigIntLiteral,
	}, kinds)
	assert.Equal(t, `"s"`, seq.Expressions[0].(*ast.StringLiteral).Raw)
	assert.InDelta(t, 2.5, seq.Expressions[1].(*ast.NumericLiteral).Value, 0)
	assert.Equal(t, "g", seq.Expressions[4].(*ast.RegExpLiteral).Flags)

	require.Len(t, comments, 1)
	assert.Equal(t, ast.BlockComment, comments[0].Style)
	assert.Equal(t, "/***/", comments[0].String())
}

func TestDecodeFlowVariance(t *testing.T) {
	t.Parallel()

	root, _, err := ast.DecodeJSON([]byte(`{
		"type": "ObjectTypeAnnotation",
		"properties": [
			{"type": "ObjectTypeProperty", "variance": "plus",
			 "key": {"type": "Identifier", "name": "a"},
			 "value": {"type": "NumberTypeAnnotation"}},
			{"type": "ObjectTypeProperty", "variance": {"type": "Variance", "kind": "minus"},
			 "key": {"type": "Identifier", "name": "b"},
			 "value": {"type": "ExistsTypeAnnotation"}}
		]
	}`))
	require.NoError(t, err)
	props := root.(*ast.ObjectTypeAnnotation).Properties
	assert.Equal(t, "plus", props[0].(*ast.ObjectTypeProperty).Variance.(*ast.Variance).VarianceKind)
	assert.Equal(t, "minus", props[1].(*ast.ObjectTypeProperty).Variance.(*ast.Variance).VarianceKind)
	assert.Equal(t, ast.KindExistentialTypeParam, props[1].(*ast.ObjectTypeProperty).Value.Kind())
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	_, _, err := ast.DecodeJSON([]byte(`{"type": "Program", "body": [{"type": "PipelineExpression", "loc": {"start": {"line": 3, "column": 4}}}]}`))
	var unsupported reporter.ErrUnsupportedKind
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "PipelineExpression", unsupported.Kind)
	assert.Equal(t, 3, unsupported.Pos.Line)
	assert.EqualError(t, err, `3:5: unsupported js node kind "PipelineExpression"`)

	_, _, err = ast.DecodeJSON([]byte(`{"type": "Program", "body": [{"type": "ExpressionStatement", "expression": 5}]}`))
	var decode reporter.ErrDecode
	require.ErrorAs(t, err, &decode)
	assert.Equal(t, "/body/0/expression", decode.Path)

	_, _, err = ast.DecodeJSON([]byte(`{"type": "TaggedTemplateExpression", "tag": {"type": "Identifier"}, "quasi": {"type": "Identifier"}}`))
	require.ErrorAs(t, err, &decode)
	assert.Equal(t, "/quasi", decode.Path)

	_, _, err = ast.DecodeJSON([]byte(`[1, 2]`))
	require.ErrorAs(t, err, &decode)

	_, _, err = ast.DecodeJSON([]byte(`{`))
	require.ErrorAs(t, err, &decode)
}

func TestDecodeMsgpack(t *testing.T) {
	t.Parallel()

	data, err := msgpack.Marshal(map[string]any{
		"type":  "ExpressionStatement",
		"start": 0,
		"end":   4,
		"expression": map[string]any{
			"type":     "UnaryExpression",
			"operator": "!",
			"prefix":   true,
			"argument": map[string]any{"type": "Identifier", "name": "ok"},
		},
	})
	require.NoError(t, err)

	root, comments, err := ast.DecodeMsgpack(data)
	require.NoError(t, err)
	assert.Empty(t, comments)
	stmt := root.(*ast.ExpressionStatement)
	assert.Equal(t, 4, stmt.Span().End.Offset)
	unary := stmt.Expression.(*ast.UnaryExpression)
	assert.Equal(t, "!", unary.Operator)
	assert.True(t, unary.Prefix)
	assert.Equal(t, "ok", unary.Argument.(*ast.Identifier).Name)
}

func TestDecodeImportExpression(t *testing.T) {
	t.Parallel()

	root, _, err := ast.DecodeJSON([]byte(`{"type": "ImportExpression", "source": {"type": "Literal", "value": "m", "raw": "'m'"}}`))
	require.NoError(t, err)
	call := root.(*ast.CallExpression)
	assert.Equal(t, ast.KindImport, call.Callee.Kind())
	require.Len(t, call.Arguments, 1)
	assert.Equal(t, "m", call.Arguments[0].(*ast.StringLiteral).Value)
}

func TestKinds(t *testing.T) {
	t.Parallel()

	kinds := ast.Kinds()
	assert.Len(t, kinds, 146)
	for _, k := range kinds {
		n := k.New()
		require.NotNil(t, n, "%v", k)
		assert.Equal(t, k, n.Kind())
		found, ok := ast.KindOf(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, found)
	}
	assert.Nil(t, ast.KindInvalid.New())
	assert.Equal(t, "ast.Kind(0)", ast.KindInvalid.String())
	_, ok := ast.KindOf("Literal")
	assert.False(t, ok)
}

func TestChildren(t *testing.T) {
	t.Parallel()

	a := &ast.Identifier{Name: "a"}
	b := &ast.Identifier{Name: "b"}
	body := &ast.BlockStatement{}
	fn := &ast.FunctionDeclaration{
		Id:     &ast.Identifier{Name: "f"},
		Params: []ast.Node{a, nil, b},
		Body:   body,
	}

	var got []string
	for child := range ast.Children(fn) {
		got = append(got, child.Field)
		if child.Field == "params" {
			assert.Contains(t, []int{0, 2}, child.Index)
		} else {
			assert.Equal(t, -1, child.Index)
		}
	}
	assert.Equal(t, []string{"id", "params", "params", "body"}, got)

	assert.Equal(t, []string{"quasis", "expressions"}, ast.Fields(ast.KindTemplateLiteral))
	assert.True(t, slices.Contains(ast.Fields(ast.KindCallExpression), "typeParameters"))

	node, list, ok := ast.Lookup(fn, "body")
	assert.True(t, ok)
	assert.Nil(t, list)
	assert.Same(t, body, node)

	node, list, ok = ast.Lookup(fn, "params")
	assert.True(t, ok)
	assert.Nil(t, node)
	assert.Equal(t, []ast.Node{a, nil, b}, list)

	_, _, ok = ast.Lookup(fn, "async")
	assert.False(t, ok)

	// A nil typed pointer is not a child.
	tagged := &ast.TaggedTemplateExpression{Tag: a}
	count := 0
	for range ast.Children(tagged) {
		count++
	}
	assert.Equal(t, 1, count)
	node, _, ok = ast.Lookup(tagged, "quasi")
	assert.True(t, ok)
	assert.Nil(t, node)
	assert.True(t, ast.IsNil((*ast.Identifier)(nil)))
}
