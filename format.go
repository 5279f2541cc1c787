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

package jsfmt

import (
	"errors"

	"github.com/bufbuild/jsfmt/ast"
	"github.com/bufbuild/jsfmt/comments"
	"github.com/bufbuild/jsfmt/dom"
	"github.com/bufbuild/jsfmt/printer"
	"github.com/bufbuild/jsfmt/sourcemap"
	tast "github.com/bufbuild/jsfmt/template/ast"
	tprinter "github.com/bufbuild/jsfmt/template/printer"
)

// Result is the output of formatting one tree.
type Result struct {
	Code string

	// The source map of the formatted code, if requested with
	// [Options.SourceMap]. When an input source map was given, this is its
	// composition with the map of the formatting.
	SourceMap *sourcemap.Map
}

// ErrNoComposer is returned when an input source map is given without a
// composer to combine it with.
var ErrNoComposer = errors.New("jsfmt: InputSourceMap requires a Composer")

// Format formats a JavaScript, Flow or JSX tree. cs are the comments of the
// source, as reported by the parser.
func Format(root ast.Node, cs []*ast.Comment, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	options := opts.printerOptions()
	doc, err := printer.Print(options, root, comments.Attach(root, cs))
	if err != nil {
		return Result{}, err
	}
	return opts.render(options.DomOptions(), doc)
}

// FormatTemplate formats a template tree.
func FormatTemplate(root tast.Node, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	options := tprinter.Options{
		TabWidth:   opts.TabWidth,
		PrintWidth: opts.PrintWidth,
		SourceMaps: opts.SourceMap,
	}
	doc, err := tprinter.Print(options, root)
	if err != nil {
		return Result{}, err
	}
	return opts.render(options.DomOptions(), doc)
}

func (o Options) render(options dom.Options, doc dom.Doc) (Result, error) {
	out := dom.Render(options, doc)
	result := Result{Code: out.Text}
	if !o.SourceMap {
		return result, nil
	}

	b := &sourcemap.Builder{
		File:    o.OutputFileName,
		Source:  o.SourceFileName,
		Content: o.SourceContent,
	}
	b.Add(out.Mappings...)
	generated, err := b.Map()
	if err != nil {
		return Result{}, err
	}
	result.SourceMap = generated

	if o.InputSourceMap == nil {
		return result, nil
	}
	if o.Composer == nil {
		return Result{}, ErrNoComposer
	}
	result.SourceMap, err = o.Composer.Compose(o.InputSourceMap, generated)
	if err != nil {
		return Result{}, err
	}
	return result, nil
}
