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

import "github.com/bufbuild/jsfmt/dom"

// Options configures [Print].
type Options struct {
	// The number of columns each level of indentation adds. Defaults to 2.
	TabWidth int

	// The width the printer tries to keep lines within. Defaults to 80.
	PrintWidth int

	// If set, every node is marked with its source position so that the
	// rendered output carries mappings.
	SourceMaps bool
}

func (o Options) withDefaults() Options {
	if o.TabWidth <= 0 {
		o.TabWidth = 2
	}
	if o.PrintWidth <= 0 {
		o.PrintWidth = 80
	}
	return o
}

// DomOptions returns the options to render a document printed with these
// options.
func (o Options) DomOptions() dom.Options {
	o = o.withDefaults()
	return dom.Options{MaxWidth: o.PrintWidth, TabstopWidth: o.TabWidth}
}
