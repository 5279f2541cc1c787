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

// Package source contains the positions and spans shared by every dialect
// handled by this module.
package source

import (
	"cmp"
	"fmt"
)

// Position is a location in a source file.
//
// Line is 1-based and Column is 0-based, matching the loc objects produced by
// ESTree and Glimmer parsers. Offset is a byte offset, and is -1 when the
// parser that produced the AST did not record it.
type Position struct {
	Offset int
	Line   int
	Column int
}

// IsZero returns whether this position was never set.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Offset <= 0
}

// String implements [fmt.Stringer].
func (p Position) String() string {
	if p.Line == 0 {
		return fmt.Sprintf("offset %d", p.Offset)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column+1)
}

// Compare orders two positions.
//
// Line and column are preferred when both positions carry them, since some
// parsers only record loc objects.
func Compare(a, b Position) int {
	if a.Line > 0 && b.Line > 0 {
		if c := cmp.Compare(a.Line, b.Line); c != 0 {
			return c
		}
		return cmp.Compare(a.Column, b.Column)
	}
	return cmp.Compare(a.Offset, b.Offset)
}

// Span is a half-open range of source text.
type Span struct {
	Start, End Position
}

// IsZero returns whether this span was never set. Synthetic nodes have zero
// spans.
func (s Span) IsZero() bool {
	return s.Start.IsZero() && s.End.IsZero()
}

// Contains returns whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return Compare(s.Start, other.Start) <= 0 && Compare(other.End, s.End) <= 0
}

// Lines returns the number of line boundaries between the end of a and the
// start of b. It is zero when b starts on the line a ends on.
func Lines(a, b Position) int {
	if a.Line == 0 || b.Line == 0 {
		return 0
	}
	return max(0, b.Line-a.Line)
}

// Spanner is any value with a source span.
type Spanner interface {
	Span() Span
}
