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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/jsfmt/printer"
	"github.com/bufbuild/jsfmt/sourcemap"
)

// Quote selects the quotes of string literals.
type Quote = printer.Quote

const (
	QuoteAuto   = printer.QuoteAuto
	QuoteSingle = printer.QuoteSingle
	QuoteDouble = printer.QuoteDouble
)

// TrailingComma selects where trailing commas are printed in broken lists.
type TrailingComma = printer.TrailingComma

const (
	TrailingCommaNone = printer.TrailingCommaNone
	TrailingCommaES5  = printer.TrailingCommaES5
	TrailingCommaAll  = printer.TrailingCommaAll
)

// Options configures formatting. Use [DefaultOptions] as a starting point;
// the zero value turns off object curly spacing and blank-line preservation.
type Options struct {
	TabWidth           int           `yaml:"tabWidth" toml:"tabWidth"`
	PrintWidth         int           `yaml:"printWidth" toml:"printWidth"`
	Quote              Quote         `yaml:"quote" toml:"quote"`
	ObjectCurlySpacing bool          `yaml:"objectCurlySpacing" toml:"objectCurlySpacing"`
	TrailingComma      TrailingComma `yaml:"trailingComma" toml:"trailingComma"`
	ArrowParensAlways  bool          `yaml:"arrowParensAlways" toml:"arrowParensAlways"`

	// The most blank lines kept between statements, and between comments and
	// code.
	MaxBlankLines int `yaml:"maxBlankLines" toml:"maxBlankLines"`

	// If set, [Result.SourceMap] is filled in.
	SourceMap      bool   `yaml:"sourceMap" toml:"sourceMap"`
	SourceFileName string `yaml:"sourceFileName" toml:"sourceFileName"`
	OutputFileName string `yaml:"outputFileName" toml:"outputFileName"`
	SourceContent  string `yaml:"-" toml:"-"`

	// A source map for the input of formatting, composed with the map of the
	// formatting itself by Composer.
	InputSourceMap *sourcemap.Map     `yaml:"-" toml:"-"`
	Composer       sourcemap.Composer `yaml:"-" toml:"-"`
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		TabWidth:           2,
		PrintWidth:         80,
		Quote:              QuoteAuto,
		ObjectCurlySpacing: true,
		TrailingComma:      TrailingCommaNone,
		MaxBlankLines:      1,
	}
}

// Validate checks that the options are in range.
func (o Options) Validate() error {
	var errs []error
	if o.TabWidth <= 0 {
		errs = append(errs, fmt.Errorf("tabWidth must be positive, got %d", o.TabWidth))
	}
	if o.PrintWidth <= 0 {
		errs = append(errs, fmt.Errorf("printWidth must be positive, got %d", o.PrintWidth))
	}
	if o.MaxBlankLines < 0 {
		errs = append(errs, fmt.Errorf("maxBlankLines must not be negative, got %d", o.MaxBlankLines))
	}
	if o.Quote < QuoteAuto || o.Quote > QuoteDouble {
		errs = append(errs, fmt.Errorf("unknown quote %v", o.Quote))
	}
	if o.TrailingComma < TrailingCommaNone || o.TrailingComma > TrailingCommaAll {
		errs = append(errs, fmt.Errorf("unknown trailingComma %v", o.TrailingComma))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("jsfmt: invalid options: %w", err)
	}
	return nil
}

func (o Options) printerOptions() printer.Options {
	return printer.Options{
		TabWidth:           o.TabWidth,
		PrintWidth:         o.PrintWidth,
		Quote:              o.Quote,
		ObjectCurlySpacing: o.ObjectCurlySpacing,
		TrailingComma:      o.TrailingComma,
		ArrowParensAlways:  o.ArrowParensAlways,
		MaxBlankLines:      o.MaxBlankLines,
		SourceMaps:         o.SourceMap,
	}
}

// LoadOptions reads options from a YAML (.yaml, .yml) or TOML (.toml) file.
// Settings the file does not mention keep their default values.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	opts, err := ParseOptions(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// ParseOptions parses options in the given format, "yaml", "yml" or "toml",
// on top of [DefaultOptions].
func ParseOptions(data []byte, format string) (Options, error) {
	opts := DefaultOptions()
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
			return Options{}, fmt.Errorf("jsfmt: %w", err)
		}
	case "toml":
		md, err := toml.Decode(string(data), &opts)
		if err != nil {
			return Options{}, fmt.Errorf("jsfmt: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Options{}, fmt.Errorf("jsfmt: unknown option %q", undecoded[0].String())
		}
	default:
		return Options{}, fmt.Errorf("jsfmt: unknown options format %q", format)
	}
	return opts, opts.Validate()
}
