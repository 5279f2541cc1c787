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

package printer

import (
	"fmt"

	"github.com/bufbuild/jsfmt/dom"
)

// Options controls the formatting behavior of the printer.
type Options struct {
	// TabWidth is the number of columns per level of indentation.
	// Defaults to 2.
	TabWidth int

	// PrintWidth is the line width the printer tries to stay within.
	// Defaults to 80.
	PrintWidth int

	// Quote selects the quotes used for string literals.
	Quote Quote

	// ObjectCurlySpacing puts spaces inside the braces of flat object
	// literals, patterns and named import/export lists.
	ObjectCurlySpacing bool

	// TrailingComma selects where trailing commas are added to broken lists.
	TrailingComma TrailingComma

	// ArrowParensAlways parenthesizes the sole parameter of an arrow
	// function even when it is a plain identifier.
	ArrowParensAlways bool

	// MaxBlankLines is the number of consecutive blank lines that are kept
	// between statements, and between comments and code. Zero keeps none.
	MaxBlankLines int

	// SourceMaps marks the output with the source position of every node.
	SourceMaps bool
}

// withDefaults returns a copy of opts with default values applied.
func (opts Options) withDefaults() Options {
	if opts.TabWidth <= 0 {
		opts.TabWidth = 2
	}
	if opts.PrintWidth <= 0 {
		opts.PrintWidth = 80
	}
	opts.MaxBlankLines = max(opts.MaxBlankLines, 0)
	return opts
}

// DomOptions converts printer options to the options for rendering the
// documents produced with them.
func (opts Options) DomOptions() dom.Options {
	opts = opts.withDefaults()
	return dom.Options{
		MaxWidth:     opts.PrintWidth,
		TabstopWidth: opts.TabWidth,
	}
}

const (
	// QuoteAuto uses whichever quote needs fewer escapes, preferring double
	// quotes on a tie.
	QuoteAuto Quote = iota
	QuoteSingle
	QuoteDouble
)

// Quote is a quote style for string literals.
type Quote int8

// String implements [fmt.Stringer].
func (q Quote) String() string {
	switch q {
	case QuoteAuto:
		return "auto"
	case QuoteSingle:
		return "single"
	case QuoteDouble:
		return "double"
	default:
		return fmt.Sprintf("printer.Quote(%d)", int(q))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (q *Quote) UnmarshalText(text []byte) error {
	switch string(text) {
	case "auto", "":
		*q = QuoteAuto
	case "single":
		*q = QuoteSingle
	case "double":
		*q = QuoteDouble
	default:
		return fmt.Errorf("unknown quote style %q", text)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (q Quote) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

const (
	TrailingCommaNone TrailingComma = iota
	// TrailingCommaES5 adds trailing commas to array and object literals.
	TrailingCommaES5
	// TrailingCommaAll also adds them to parameter and argument lists.
	TrailingCommaAll
)

// TrailingComma selects which broken lists receive a trailing comma.
type TrailingComma int8

// String implements [fmt.Stringer].
func (t TrailingComma) String() string {
	switch t {
	case TrailingCommaNone:
		return "none"
	case TrailingCommaES5:
		return "es5"
	case TrailingCommaAll:
		return "all"
	default:
		return fmt.Sprintf("printer.TrailingComma(%d)", int(t))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *TrailingComma) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none", "":
		*t = TrailingCommaNone
	case "es5":
		*t = TrailingCommaES5
	case "all":
		*t = TrailingCommaAll
	default:
		return fmt.Errorf("unknown trailing comma style %q", text)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (t TrailingComma) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
