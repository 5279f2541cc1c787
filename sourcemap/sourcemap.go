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

// Package sourcemap builds version 3 source maps from the mappings recorded
// while rendering a document.
package sourcemap

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"fortio.org/safecast"

	"github.com/bufbuild/jsfmt/dom"
	"github.com/bufbuild/jsfmt/reporter"
	"github.com/bufbuild/jsfmt/source"
)

// Map is a version 3 source map.
type Map struct {
	Version        int      `json:"version"`
	File           string   `json:"file,omitempty"`
	SourceRoot     string   `json:"sourceRoot,omitempty"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent,omitempty"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// Parse parses a JSON source map.
func Parse(data []byte) (*Map, error) {
	m := new(Map)
	if err := json.Unmarshal(data, m); err != nil {
		return nil, err
	}
	if m.Version != 3 {
		return nil, fmt.Errorf("sourcemap: unsupported version %d", m.Version)
	}
	return m, nil
}

// JSON encodes the map.
func (m *Map) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// Segment is one decoded mapping. All values are zero-based.
type Segment struct {
	GeneratedLine, GeneratedColumn int
	SourceIndex                    int
	OriginalLine, OriginalColumn   int
}

// Segments decodes the mappings of m. Segments without a source are
// skipped.
func (m *Map) Segments() ([]Segment, error) {
	var (
		out   []Segment
		state Segment
		line  int
	)
	data := []byte(m.Mappings)
	for i := 0; i < len(data); {
		switch data[i] {
		case ';':
			line++
			state.GeneratedColumn = 0
			i++
			continue
		case ',':
			i++
			continue
		}

		var fields [4]int
		n := 0
		for n < len(fields) && i < len(data) && data[i] != ',' && data[i] != ';' {
			v, next, err := decodeVLQ(data, i)
			if err != nil {
				return nil, err
			}
			fields[n] = v
			n++
			i = next
		}
		// Skip a name index, if present.
		if i < len(data) && data[i] != ',' && data[i] != ';' {
			_, next, err := decodeVLQ(data, i)
			if err != nil {
				return nil, err
			}
			i = next
		}

		state.GeneratedColumn += fields[0]
		if n < 4 {
			continue
		}
		state.SourceIndex += fields[1]
		state.OriginalLine += fields[2]
		state.OriginalColumn += fields[3]
		state.GeneratedLine = line
		out = append(out, state)
	}
	return out, nil
}

// Composer composes a source map for a transformation's input with the map
// produced by formatting, yielding a map from the formatted output back to
// the original sources.
type Composer interface {
	Compose(input, generated *Map) (*Map, error)
}

// Builder accumulates the mappings of a single rendered file.
//
// A zero Builder is ready to use.
type Builder struct {
	File    string // The name of the generated file.
	Source  string // The name of the original file.
	Content string // The original source text; optional.

	mappings []dom.Mapping
}

// Add records mappings. Mappings with no original position are ignored.
func (b *Builder) Add(mappings ...dom.Mapping) {
	for _, m := range mappings {
		if m.Original.Line == 0 {
			continue
		}
		b.mappings = append(b.mappings, m)
	}
}

// Map encodes the recorded mappings.
func (b *Builder) Map() (*Map, error) {
	mappings := slices.Clone(b.mappings)
	slices.SortStableFunc(mappings, func(x, y dom.Mapping) int {
		return source.Compare(x.Generated, y.Generated)
	})
	mappings = slices.CompactFunc(mappings, func(x, y dom.Mapping) bool {
		return x.Generated.Line == y.Generated.Line && x.Generated.Column == y.Generated.Column
	})

	var (
		buf  []byte
		prev state
		line = 1
	)
	for _, m := range mappings {
		cur, err := toState(m)
		if err != nil {
			return nil, err
		}
		for ; line < m.Generated.Line; line++ {
			buf = append(buf, ';')
			prev.generatedColumn = 0
		}
		buf = appendMapping(buf, prev, cur)
		prev = cur
	}

	out := &Map{
		Version:  3,
		File:     b.File,
		Sources:  []string{b.Source},
		Names:    []string{},
		Mappings: string(buf),
	}
	if b.Content != "" {
		out.SourcesContent = []string{b.Content}
	}
	return out, nil
}

// state is the part of a mapping that is delta-encoded.
type state struct {
	generatedColumn int32
	originalLine    int32
	originalColumn  int32
}

func toState(m dom.Mapping) (state, error) {
	genCol, err1 := safecast.Conv[int32](m.Generated.Column)
	line, err2 := safecast.Conv[int32](m.Original.Line - 1)
	col, err3 := safecast.Conv[int32](m.Original.Column)
	if err := errors.Join(err1, err2, err3); err != nil {
		return state{}, reporter.Errorf(m.Original, "sourcemap: position out of range: %w", err)
	}
	return state{generatedColumn: genCol, originalLine: line, originalColumn: col}, nil
}

// appendMapping appends one segment, delta-encoded against prev. There is
// only ever one source, so the source index delta is always zero.
func appendMapping(buf []byte, prev, cur state) []byte {
	if len(buf) != 0 && buf[len(buf)-1] != ';' {
		buf = append(buf, ',')
	}
	buf = appendVLQ(buf, cur.generatedColumn-prev.generatedColumn)
	buf = appendVLQ(buf, int32(0))
	buf = appendVLQ(buf, cur.originalLine-prev.originalLine)
	buf = appendVLQ(buf, cur.originalColumn-prev.originalColumn)
	return buf
}
