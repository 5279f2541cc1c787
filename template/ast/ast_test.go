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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bufbuild/jsfmt/reporter"
	"github.com/bufbuild/jsfmt/source"
	"github.com/bufbuild/jsfmt/template/ast"
)

const element = `{
	"type": "Template",
	"body": [{
		"type": "ElementNode",
		"tag": "div",
		"loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 30}},
		"attributes": [{
			"type": "AttrNode",
			"name": "class",
			"value": {"type": "TextNode", "chars": "a"}
		}],
		"children": [
			{"type": "TextNode", "chars": "Hi "},
			{
				"type": "MustacheStatement",
				"trusting": true,
				"path": {"type": "PathExpression", "head": {"type": "AtHead", "name": "@name"}, "tail": ["first"]}
			}
		]
	}]
}`

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	root, err := ast.DecodeJSON([]byte(element))
	require.NoError(t, err)

	want := &ast.Program{Body: []ast.Node{&ast.ElementNode{
		Base: ast.Base{Loc: source.Span{
			Start: source.Position{Offset: -1, Line: 1, Column: 0},
			End:   source.Position{Offset: -1, Line: 1, Column: 30},
		}},
		Tag:        "div",
		Attributes: []*ast.AttrNode{{Name: "class", Value: &ast.TextNode{Chars: "a"}}},
		Children: []ast.Node{
			&ast.TextNode{Chars: "Hi "},
			&ast.MustacheStatement{Path: &ast.PathExpression{Parts: []string{"name", "first"}, Data: true}},
		},
	}}}
	ignoreSpans := cmpopts.IgnoreFields(ast.Base{}, "Loc")
	assert.Empty(t, cmp.Diff(want, root, ignoreSpans, cmpopts.EquateEmpty()))

	el, ok := root.(*ast.Program).Body[0].(*ast.ElementNode)
	require.True(t, ok)
	assert.Equal(t, want.Body[0].Span(), el.Span())
}

func TestDecodeMsgpack(t *testing.T) {
	t.Parallel()

	data, err := msgpack.Marshal(map[string]any{
		"type":  "MustacheCommentStatement",
		"value": " note ",
	})
	require.NoError(t, err)

	root, err := ast.DecodeMsgpack(data)
	require.NoError(t, err)
	assert.Equal(t, &ast.MustacheCommentStatement{
		Base:  ast.Base{Loc: source.Span{Start: source.Position{Offset: -1}, End: source.Position{Offset: -1}}},
		Value: " note ",
	}, root)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	_, err := ast.DecodeJSON([]byte(`{"type": "Program", "body": [{"type": "YieldStatement"}]}`))
	var unsupported reporter.ErrUnsupportedKind
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "template", unsupported.Dialect)
	assert.Equal(t, "YieldStatement", unsupported.Kind)

	_, err = ast.DecodeJSON([]byte(`{"type": "ElementNode", "tag": "p", "attributes": [{"type": "TextNode"}]}`))
	var decode reporter.ErrDecode
	require.ErrorAs(t, err, &decode)
	assert.Equal(t, "/attributes/0", decode.Path)

	_, err = ast.DecodeJSON([]byte(`{"type": "TextNode", "chars": 1}`))
	require.ErrorAs(t, err, &decode)
	assert.Equal(t, "/chars", decode.Path)
}

func TestKinds(t *testing.T) {
	t.Parallel()

	for _, kind := range ast.Kinds() {
		n := kind.New()
		require.NotNil(t, n, kind)
		assert.Equal(t, kind, n.Kind())
	}
	assert.Nil(t, ast.KindInvalid.New())
	assert.Equal(t, "ast.Kind(0)", ast.KindInvalid.String())
}
