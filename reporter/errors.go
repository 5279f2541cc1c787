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

// Package reporter contains the fatal error types produced while formatting.
//
// Formatting is all-or-nothing: any of these errors means no output was
// produced for the input.
package reporter

import (
	"fmt"

	"github.com/bufbuild/jsfmt/source"
)

// ErrorWithPos is an error about an input tree that includes information
// about the location in the original source that caused the error.
//
// The value of Error() will contain both the position and Underlying error.
// The value of Unwrap() will only be the Underlying error.
type ErrorWithPos interface {
	error
	GetPosition() source.Position
	Unwrap() error
}

// Errorf returns an error at pos with a formatted underlying error.
func Errorf(pos source.Position, format string, args ...any) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithSourcePos struct {
	underlying error
	pos        source.Position
}

func (e errorWithSourcePos) Error() string {
	if e.pos.IsZero() {
		return e.underlying.Error()
	}
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface.
func (e errorWithSourcePos) GetPosition() source.Position {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface.
func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}

// ErrUnsupportedKind is returned when a translator has no rule for a node
// kind. This signals a version mismatch between the parser that produced the
// tree and this module.
type ErrUnsupportedKind struct {
	Dialect string // "js" or "template".
	Kind    string
	Pos     source.Position
}

func (e ErrUnsupportedKind) Error() string {
	msg := fmt.Sprintf("unsupported %s node kind %q", e.Dialect, e.Kind)
	if !e.Pos.IsZero() {
		msg = fmt.Sprintf("%s: %s", e.Pos, msg)
	}
	return msg
}

// GetPosition implements the ErrorWithPos interface.
func (e ErrUnsupportedKind) GetPosition() source.Position { return e.Pos }

// Unwrap implements the ErrorWithPos interface.
func (e ErrUnsupportedKind) Unwrap() error { return nil }

// ErrInvariant is returned when a node does not have the shape its kind
// requires, e.g. an import declaration without a source.
type ErrInvariant struct {
	Kind   string
	Detail string
	Pos    source.Position
}

func (e ErrInvariant) Error() string {
	msg := fmt.Sprintf("malformed %s: %s", e.Kind, e.Detail)
	if !e.Pos.IsZero() {
		msg = fmt.Sprintf("%s: %s", e.Pos, msg)
	}
	return msg
}

// GetPosition implements the ErrorWithPos interface.
func (e ErrInvariant) GetPosition() source.Position { return e.Pos }

// Unwrap implements the ErrorWithPos interface.
func (e ErrInvariant) Unwrap() error { return nil }

// ErrDecode is returned when a serialized tree cannot be turned into nodes.
// Path is a JSON-pointer-like path to the offending value.
type ErrDecode struct {
	Path string
	Err  error
}

func (e ErrDecode) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e ErrDecode) Unwrap() error { return e.Err }

var (
	_ ErrorWithPos = ErrUnsupportedKind{}
	_ ErrorWithPos = ErrInvariant{}
)
