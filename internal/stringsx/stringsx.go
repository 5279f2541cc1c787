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

// Package stringsx contains extensions to Go's package strings.
package stringsx

import (
	"iter"
	"strings"
	"unicode"
)

// Split is like [strings.Split], but returning an iterator instead of a slice.
func Split[Sep string | rune](s string, sep Sep) iter.Seq[string] {
	r := string(sep)
	return func(yield func(string) bool) {
		for {
			chunk, rest, found := strings.Cut(s, r)
			s = rest
			if !yield(chunk) || !found {
				return
			}
		}
	}
}

// Lines returns an iterator over the lines in the given string.
//
// It is equivalent to Split(s, '\n').
func Lines(s string) iter.Seq[string] {
	return Split(s, '\n')
}

// CollapseSpace replaces every run of whitespace in s with a single space.
// Leading and trailing runs are kept (as a single space).
func CollapseSpace(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				out.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		out.WriteRune(r)
	}
	return out.String()
}

// Count returns the number of non-overlapping occurrences of each of the
// given bytes in s.
func Count(s string, bytes ...byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		for _, b := range bytes {
			if s[i] == b {
				n++
				break
			}
		}
	}
	return n
}
