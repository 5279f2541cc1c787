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

// Package jsfmt formats JavaScript, Flow and JSX, and a Handlebars-like
// template dialect, from trees produced by an external parser.
//
// Formatting happens in three steps:
//  1. Attach comments to the nodes of the tree.
//     Also see: comments.Attach
//  2. Translate the tree into a document of text, lines, groups and
//     indentation.
//     Also see: printer.Print
//  3. Render the document within the configured width.
//     Also see: dom.Render
//
// [Format] and [FormatTemplate] run all of the steps and optionally produce a
// source map. The output is deterministic: the same tree and options always
// produce the same text. Formatting never reads files; [LoadOptions] is the
// only function in this package that does.
//
// # Errors
//
// Formatting is all-or-nothing. A node of a kind the printer does not know
// results in a [reporter.ErrUnsupportedKind], and a node whose shape breaks
// the contract of its kind in a [reporter.ErrInvariant]. Neither returns any
// output.
package jsfmt
