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

// Package rawtree reads the loosely typed trees produced by unmarshalling
// JSON, YAML or msgpack into an any: maps, slices and scalars.
package rawtree

import (
	"encoding/json"

	"github.com/bufbuild/jsfmt/source"
)

// Span reads the position information of a node or comment.
//
// Offsets come from start/end or from range; lines and columns come from loc.
func Span(obj map[string]any) source.Span {
	span := source.Span{
		Start: source.Position{Offset: -1},
		End:   source.Position{Offset: -1},
	}
	if start, ok := Float(obj["start"]); ok {
		span.Start.Offset = int(start)
	}
	if end, ok := Float(obj["end"]); ok {
		span.End.Offset = int(end)
	}
	if rng, ok := obj["range"].([]any); ok && len(rng) == 2 {
		if start, ok := Float(rng[0]); ok {
			span.Start.Offset = int(start)
		}
		if end, ok := Float(rng[1]); ok {
			span.End.Offset = int(end)
		}
	}
	if loc, ok := Object(obj["loc"]); ok {
		readLoc := func(name string, pos *source.Position) {
			p, ok := Object(loc[name])
			if !ok {
				return
			}
			if line, ok := Float(p["line"]); ok {
				pos.Line = int(line)
			}
			if col, ok := Float(p["column"]); ok {
				pos.Column = int(col)
			}
		}
		readLoc("start", &span.Start)
		readLoc("end", &span.End)
	}
	return span
}

// Object converts the map types produced by the various decoders into a
// string-keyed map.
func Object(v any) (map[string]any, bool) {
	switch v := v.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, v := range v {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = v
		}
		return out, true
	default:
		return nil, false
	}
}

// Float converts any of the numeric types produced by the supported
// decoders into a float64.
func Float(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
