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

package ast

// ImportDeclaration is an `import`. ImportKind is "value", "type" or "typeof".
type ImportDeclaration struct {
	Base
	ImportKind string `ast:"importKind"`
	Specifiers []Node `ast:"specifiers"`
	Source     Node   `ast:"source"`
}

type ImportSpecifier struct {
	Base
	ImportKind string `ast:"importKind"`
	Imported   Node   `ast:"imported"`
	Local      Node   `ast:"local"`
}

type ImportDefaultSpecifier struct {
	Base
	Local Node `ast:"local"`
}

type ImportNamespaceSpecifier struct {
	Base
	Local Node `ast:"local"`
}

type ExportNamedDeclaration struct {
	Base
	ExportKind  string `ast:"exportKind"`
	Declaration Node   `ast:"declaration"`
	Specifiers  []Node `ast:"specifiers"`
	Source      Node   `ast:"source"`
}

type ExportDefaultDeclaration struct {
	Base
	Declaration Node `ast:"declaration"`
}

type ExportAllDeclaration struct {
	Base
	ExportKind string `ast:"exportKind"`
	Exported   Node   `ast:"exported"`
	Source     Node   `ast:"source"`
}

type ExportSpecifier struct {
	Base
	Local    Node `ast:"local"`
	Exported Node `ast:"exported"`
}

type ExportNamespaceSpecifier struct {
	Base
	Exported Node `ast:"exported"`
}

type ExportDefaultSpecifier struct {
	Base
	Exported Node `ast:"exported"`
}

func (*ImportDeclaration) Kind() Kind        { return KindImportDeclaration }
func (*ImportSpecifier) Kind() Kind          { return KindImportSpecifier }
func (*ImportDefaultSpecifier) Kind() Kind   { return KindImportDefaultSpecifier }
func (*ImportNamespaceSpecifier) Kind() Kind { return KindImportNamespaceSpecifier }
func (*ExportNamedDeclaration) Kind() Kind   { return KindExportNamedDeclaration }
func (*ExportDefaultDeclaration) Kind() Kind { return KindExportDefaultDeclaration }
func (*ExportAllDeclaration) Kind() Kind     { return KindExportAllDeclaration }
func (*ExportSpecifier) Kind() Kind          { return KindExportSpecifier }
func (*ExportNamespaceSpecifier) Kind() Kind { return KindExportNamespaceSpecifier }
func (*ExportDefaultSpecifier) Kind() Kind   { return KindExportDefaultSpecifier }
