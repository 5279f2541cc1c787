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

package printer_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/jsfmt/dom"
	"github.com/bufbuild/jsfmt/internal/golden"
	"github.com/bufbuild/jsfmt/template/ast"
	"github.com/bufbuild/jsfmt/template/printer"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:       "testdata",
		Extensions: []string{"yaml"},
		Outputs: []golden.Output{
			{Extension: "hbs"},
			{Extension: "err"},
		},
	}
	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		var tc struct {
			PrintWidth int `yaml:"printWidth"`
			AST        any `yaml:"ast"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(text), &tc))

		root, err := ast.DecodeValue(tc.AST)
		if err != nil {
			outputs[1] = err.Error() + "\n"
			return
		}

		options := printer.Options{PrintWidth: tc.PrintWidth}
		doc, err := printer.Print(options, root)
		if err != nil {
			outputs[1] = err.Error() + "\n"
			return
		}
		outputs[0] = dom.Render(options.DomOptions(), doc).Text
	})
}
