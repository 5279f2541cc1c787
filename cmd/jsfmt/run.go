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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/jsfmt"
	"github.com/bufbuild/jsfmt/ast"
	tast "github.com/bufbuild/jsfmt/template/ast"
)

func loadOptions(f *flags, widthChanged bool) (jsfmt.Options, error) {
	opts := jsfmt.DefaultOptions()
	if f.config != "" {
		var err error
		if opts, err = jsfmt.LoadOptions(f.config); err != nil {
			return jsfmt.Options{}, err
		}
	}
	if widthChanged {
		opts.PrintWidth = f.width
	}
	if f.sourceMap {
		opts.SourceMap = true
	}
	return opts, opts.Validate()
}

type runner struct {
	*flags
	opts           jsfmt.Options
	stdout, stderr io.Writer
}

// result is the outcome of formatting a single file.
type result struct {
	path string
	code string
	diff string // Set with --check, if the output file differs.
	err  error
}

func run(ctx context.Context, r *runner, patterns []string) error {
	paths, err := expand(patterns)
	if err != nil {
		return err
	}

	results := make([]result, len(paths))
	sem := semaphore.NewWeighted(int64(r.jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			var err error
			results[i], err = r.process(path)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var failed, changed int
	for _, res := range results {
		switch {
		case res.err != nil:
			failed++
			reportError(r.stderr, res.path, res.err)
		case res.diff != "":
			changed++
			_, _ = io.WriteString(r.stdout, res.diff)
		case !r.check && !r.write:
			_, _ = io.WriteString(r.stdout, res.code)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be formatted", failed, len(paths))
	}
	if changed > 0 {
		return fmt.Errorf("%d of %d files are not formatted", changed, len(paths))
	}
	return nil
}

// expand resolves each pattern to the files it matches, in order and without
// duplicates.
func expand(patterns []string) ([]string, error) {
	var paths []string
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%s: no matching files", pattern)
		}
		for _, path := range matches {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// process formats the dump at path. Errors specific to the file are recorded
// in the result; the returned error is only for failures that should stop
// the whole run.
func (r *runner) process(path string) (result, error) {
	res := result{path: path}
	out := outputPath(path, r.template)

	opts := r.opts
	if opts.SourceFileName == "" {
		opts.SourceFileName = filepath.Base(out)
	}
	if opts.OutputFileName == "" {
		opts.OutputFileName = filepath.Base(out)
	}

	formatted, err := format(path, r.template, opts)
	if err != nil {
		res.err = err
		return res, nil
	}
	res.code = formatted.Code

	if r.check {
		existing, err := os.ReadFile(out)
		if err != nil {
			res.err = err
			return res, nil
		}
		if string(existing) != res.code {
			res.diff, res.err = diff(out, string(existing), res.code)
		}
	}

	if r.write {
		if err := os.WriteFile(out, []byte(res.code), 0o644); err != nil {
			return res, err
		}
		if formatted.SourceMap != nil {
			data, err := formatted.SourceMap.JSON()
			if err != nil {
				return res, err
			}
			if err := os.WriteFile(out+".map", data, 0o644); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}

func format(path string, template bool, opts jsfmt.Options) (jsfmt.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return jsfmt.Result{}, err
	}

	msgpack := false
	switch ext := filepath.Ext(path); ext {
	case ".json":
	case ".msgpack":
		msgpack = true
	default:
		return jsfmt.Result{}, fmt.Errorf("unknown AST dump extension %q", ext)
	}

	if template {
		decode := tast.DecodeJSON
		if msgpack {
			decode = tast.DecodeMsgpack
		}
		root, err := decode(data)
		if err != nil {
			return jsfmt.Result{}, err
		}
		return jsfmt.FormatTemplate(root, opts)
	}

	decode := ast.DecodeJSON
	if msgpack {
		decode = ast.DecodeMsgpack
	}
	root, comments, err := decode(data)
	if err != nil {
		return jsfmt.Result{}, err
	}
	return jsfmt.Format(root, comments, opts)
}

// outputPath is the path formatted code for the dump at path is written to:
// the dump's path without its extension, given a default extension if it is
// left with none.
func outputPath(path string, template bool) string {
	out := strings.TrimSuffix(path, filepath.Ext(path))
	if filepath.Ext(out) != "" {
		return out
	}
	if template {
		return out + ".hbs"
	}
	return out + ".js"
}

func diff(path, want, got string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: path,
		ToFile:   path + " (formatted)",
		Context:  3,
	})
}
