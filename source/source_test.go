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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/jsfmt/source"
)

func TestPosition(t *testing.T) {
	t.Parallel()

	assert.True(t, source.Position{}.IsZero())
	assert.True(t, source.Position{Offset: -1}.IsZero())
	assert.False(t, source.Position{Line: 1}.IsZero())
	assert.False(t, source.Position{Offset: 3}.IsZero())

	assert.Equal(t, "2:5", source.Position{Line: 2, Column: 4}.String())
	assert.Equal(t, "offset 7", source.Position{Offset: 7}.String())
}

func TestCompare(t *testing.T) {
	t.Parallel()

	a := source.Position{Offset: 10, Line: 1, Column: 10}
	b := source.Position{Offset: 5, Line: 2, Column: 0}
	assert.Equal(t, -1, source.Compare(a, b))
	assert.Equal(t, 1, source.Compare(b, a))
	assert.Equal(t, 0, source.Compare(a, a))

	// Offsets are used when a line is missing.
	assert.Equal(t, 1, source.Compare(source.Position{Offset: 10}, b))
}

func TestSpan(t *testing.T) {
	t.Parallel()

	outer := source.Span{
		Start: source.Position{Line: 1, Column: 0},
		End:   source.Position{Line: 3, Column: 1},
	}
	inner := source.Span{
		Start: source.Position{Line: 2, Column: 2},
		End:   source.Position{Line: 2, Column: 8},
	}
	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
	assert.True(t, source.Span{}.IsZero())

	assert.Equal(t, 1, source.Lines(outer.Start, inner.Start))
	assert.Equal(t, 0, source.Lines(inner.Start, outer.Start))
	assert.Equal(t, 0, source.Lines(source.Position{}, inner.Start))
}
