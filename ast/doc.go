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

// Package ast defines the tree of JavaScript, Flow and JSX nodes consumed by
// the formatter.
//
// Every node kind is a distinct struct type implementing [Node], and the set
// of kinds is closed: [Kinds] enumerates it, and nodes can only be created by
// this package's types. Field names follow the ESTree and Babel ASTs, and are
// recorded in `ast` struct tags. Those tags are what [Children], [Lookup] and
// the decoders use to find a node's fields, so a child field is always
// addressed by the name a parser would give it ("body", "consequent", ...).
//
// Comments are not part of the tree. A parser reports them in a separate
// list, which is carried alongside the root as a slice of [*Comment].
package ast
