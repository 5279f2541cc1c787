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

package jsfmt_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/jsfmt"
	"github.com/bufbuild/jsfmt/ast"
	"github.com/bufbuild/jsfmt/reporter"
	"github.com/bufbuild/jsfmt/source"
	"github.com/bufbuild/jsfmt/sourcemap"
	tast "github.com/bufbuild/jsfmt/template/ast"
)

const program = `{
	"type": "File",
	"program": {
		"type": "Program",
		"loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 14}},
		"body": [{
			"type": "ExpressionStatement",
			"loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 14}},
			"expression": {
				"type": "CallExpression",
				"loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 13}},
				"callee": {"type": "Identifier", "name": "f", "loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 1}}},
				"arguments": [{
					"type": "ObjectExpression",
					"loc": {"start": {"line": 1, "column": 2}, "end": {"line": 1, "column": 12}},
					"properties": [{
						"type": "ObjectProperty",
						"key": {"type": "Identifier", "name": "a"},
						"value": {"type": "NumericLiteral", "value": 1, "extra": {"raw": "1"}}
					}]
				}]
			}
		}],
		"comments": [{
			"type": "CommentLine",
			"value": " call",
			"loc": {"start": {"line": 1, "column": 15}, "end": {"line": 1, "column": 22}}
		}]
	}
}`

func TestFormat(t *testing.T) {
	t.Parallel()

	root, cs, err := ast.DecodeJSON([]byte(program))
	require.NoError(t, err)

	result, err := jsfmt.Format(root, cs, jsfmt.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "f({ a: 1 }); // call\n", result.Code)
	assert.Nil(t, result.SourceMap)
}

func TestFormatSourceMap(t *testing.T) {
	t.Parallel()

	root, cs, err := ast.DecodeJSON([]byte(program))
	require.NoError(t, err)

	opts := jsfmt.DefaultOptions()
	opts.SourceMap = true
	opts.SourceFileName = "in.js"
	opts.OutputFileName = "out.js"
	result, err := jsfmt.Format(root, cs, opts)
	require.NoError(t, err)
	require.NotNil(t, result.SourceMap)
	assert.Equal(t, []string{"in.js"}, result.SourceMap.Sources)
	assert.Equal(t, "out.js", result.SourceMap.File)

	segments, err := result.SourceMap.Segments()
	require.NoError(t, err)
	require.NotEmpty(t, segments)
	assert.Equal(t, sourcemap.Segment{}, segments[0])
}

type composer struct {
	input, generated *sourcemap.Map
}

func (c *composer) Compose(input, generated *sourcemap.Map) (*sourcemap.Map, error) {
	c.input, c.generated = input, generated
	return &sourcemap.Map{Version: 3, Mappings: "composed"}, nil
}

func TestFormatComposesInputMap(t *testing.T) {
	t.Parallel()

	root := &ast.Identifier{Name: "x", Base: ast.Base{Loc: source.Span{
		Start: source.Position{Line: 1},
		End:   source.Position{Line: 1, Column: 1},
	}}}
	input := &sourcemap.Map{Version: 3, Mappings: "input"}

	opts := jsfmt.DefaultOptions()
	opts.SourceMap = true
	opts.InputSourceMap = input
	_, err := jsfmt.Format(root, nil, opts)
	require.ErrorIs(t, err, jsfmt.ErrNoComposer)

	c := new(composer)
	opts.Composer = c
	result, err := jsfmt.Format(root, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, "composed", result.SourceMap.Mappings)
	assert.Same(t, input, c.input)
	assert.Equal(t, "AAAA", c.generated.Mappings)
}

func TestFormatErrors(t *testing.T) {
	t.Parallel()

	_, err := jsfmt.Format(&ast.Program{Body: []ast.Node{&ast.ExportAllDeclaration{}}}, nil, jsfmt.DefaultOptions())
	var invariant reporter.ErrInvariant
	require.ErrorAs(t, err, &invariant)

	_, err = jsfmt.Format(&ast.Program{}, nil, jsfmt.Options{})
	require.ErrorContains(t, err, "tabWidth must be positive")
}

func TestFormatTemplate(t *testing.T) {
	t.Parallel()

	root := &tast.Program{Body: []tast.Node{
		&tast.MustacheCommentStatement{Value: " {{x}} "},
	}}
	result, err := jsfmt.FormatTemplate(root, jsfmt.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "{{!-- {{x}} --}}\n", result.Code)
}

func TestParseOptions(t *testing.T) {
	t.Parallel()

	opts, err := jsfmt.ParseOptions([]byte("printWidth: 100\nquote: single\ntrailingComma: es5\n"), "yaml")
	require.NoError(t, err)
	want := jsfmt.DefaultOptions()
	want.PrintWidth = 100
	want.Quote = jsfmt.QuoteSingle
	want.TrailingComma = jsfmt.TrailingCommaES5
	assert.Equal(t, want, opts)

	opts, err = jsfmt.ParseOptions([]byte("tabWidth = 4\narrowParensAlways = true\n"), "toml")
	require.NoError(t, err)
	want = jsfmt.DefaultOptions()
	want.TabWidth = 4
	want.ArrowParensAlways = true
	assert.Equal(t, want, opts)

	opts, err = jsfmt.ParseOptions(nil, "yml")
	require.NoError(t, err)
	assert.Equal(t, jsfmt.DefaultOptions(), opts)

	_, err = jsfmt.ParseOptions([]byte("printWidth: 0\n"), "yaml")
	require.ErrorContains(t, err, "printWidth must be positive")
	_, err = jsfmt.ParseOptions([]byte("quote: backtick\n"), "yaml")
	require.Error(t, err)
	_, err = jsfmt.ParseOptions([]byte("indent = 2\n"), "toml")
	require.ErrorContains(t, err, "unknown option")
	_, err = jsfmt.ParseOptions([]byte("indent: 2\n"), "yaml")
	require.Error(t, err)
	_, err = jsfmt.ParseOptions(nil, "json")
	require.ErrorContains(t, err, "unknown options format")
}

func TestLoadOptions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "jsfmt.toml")
	require.NoError(t, os.WriteFile(path, []byte("printWidth = 60\nmaxBlankLines = 0\n"), 0o600))

	opts, err := jsfmt.LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 60, opts.PrintWidth)
	assert.Equal(t, 0, opts.MaxBlankLines)

	_, err = jsfmt.LoadOptions(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
