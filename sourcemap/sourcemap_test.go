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

package sourcemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/jsfmt/dom"
	"github.com/bufbuild/jsfmt/source"
)

func TestVLQ(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   int
		encoded string
	}{
		{0, "A"},
		{1, "C"},
		{-1, "D"},
		{15, "e"},
		{16, "gB"},
		{-16, "hB"},
		{1000, "w+B"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.encoded, string(appendVLQ(nil, tt.value)), "%d", tt.value)
		assert.Equal(t, tt.encoded, string(appendVLQ(nil, int32(tt.value))), "%d", tt.value)

		value, next, err := decodeVLQ([]byte(tt.encoded), 0)
		require.NoError(t, err)
		assert.Equal(t, tt.value, value)
		assert.Equal(t, len(tt.encoded), next)
	}

	_, _, err := decodeVLQ([]byte("g"), 0)
	require.Error(t, err)
	_, _, err = decodeVLQ([]byte("!"), 0)
	require.Error(t, err)
}

func at(line, col int) source.Position {
	return source.Position{Line: line, Column: col}
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	b := &Builder{File: "out.js", Source: "in.js"}
	b.Add(
		dom.Mapping{Generated: at(2, 2), Original: at(3, 4)},
		dom.Mapping{Generated: at(1, 0), Original: at(1, 0)},
		dom.Mapping{Generated: at(1, 6), Original: at(1, 8)},
		dom.Mapping{Generated: at(1, 6), Original: at(9, 9)}, // Duplicate position.
		dom.Mapping{Generated: at(3, 0)},                     // No original position.
	)

	m, err := b.Map()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Version)
	assert.Equal(t, []string{"in.js"}, m.Sources)
	assert.Equal(t, "AAAA,MAAQ;EAEJ", m.Mappings)

	segments, err := m.Segments()
	require.NoError(t, err)
	assert.Equal(t, []Segment{
		{GeneratedLine: 0, GeneratedColumn: 0, OriginalLine: 0, OriginalColumn: 0},
		{GeneratedLine: 0, GeneratedColumn: 6, OriginalLine: 0, OriginalColumn: 8},
		{GeneratedLine: 1, GeneratedColumn: 2, OriginalLine: 2, OriginalColumn: 4},
	}, segments)

	data, err := m.JSON()
	require.NoError(t, err)
	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, m, parsed)

	_, err = Parse([]byte(`{"version": 2}`))
	require.Error(t, err)
}
