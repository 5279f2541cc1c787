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

package printer

import (
	"github.com/bufbuild/jsfmt/ast"
	"github.com/bufbuild/jsfmt/comments"
	"github.com/bufbuild/jsfmt/dom"
	"github.com/bufbuild/jsfmt/walk"
)

func (p *printer) printImport(n *ast.ImportDeclaration) dom.Doc {
	if ast.IsNil(n.Source) {
		invariant(n, "import has no source")
	}

	docs := []dom.Doc{dom.Text("import ")}
	if n.ImportKind == "type" || n.ImportKind == "typeof" {
		docs = append(docs, dom.Text(n.ImportKind+" "))
	}
	if len(n.Specifiers) > 0 {
		docs = append(docs, p.specifierList(n.Specifiers), dom.Text(" from "))
	}
	return dom.Concat(append(docs, p.child("source"), dom.Text(";"))...)
}

// specifierList prints the specifiers of an import or export. Default and
// namespace specifiers come first and are never braced.
func (p *printer) specifierList(specs []ast.Node) dom.Doc {
	docs := p.list("specifiers")

	var bare, braced []dom.Doc
	var last ast.Node
	for i, spec := range specs {
		switch spec.(type) {
		case *ast.ImportDefaultSpecifier, *ast.ImportNamespaceSpecifier,
			*ast.ExportDefaultSpecifier, *ast.ExportNamespaceSpecifier:
			bare = append(bare, docs[i])
		default:
			braced = append(braced, docs[i])
			last = spec
		}
	}

	out := []dom.Doc{dom.Join(dom.Text(", "), bare)}
	if len(braced) == 0 {
		return out[0]
	}
	if len(bare) > 0 {
		out = append(out, dom.Text(", "))
	}

	space := dom.Softline
	if p.options.ObjectCurlySpacing {
		space = dom.Line
	}
	return dom.Concat(append(out, dom.MultilineGroup(
		dom.Text("{"),
		p.indent(space, commaList(braced)),
		p.trailingComma(TrailingCommaES5, last),
		space,
		dom.Text("}"),
	))...)
}

func (p *printer) printImportSpecifier(n *ast.ImportSpecifier) dom.Doc {
	var kind dom.Doc
	if n.ImportKind == "type" || n.ImportKind == "typeof" {
		kind = dom.Text(n.ImportKind + " ")
	}
	if comments.SameName(n.Imported, n.Local) {
		return dom.Concat(kind, p.child("local"))
	}
	return dom.Concat(kind, p.child("imported"), dom.Text(" as "), p.child("local"))
}

func (p *printer) printExportSpecifier(n *ast.ExportSpecifier) dom.Doc {
	if comments.SameName(n.Local, n.Exported) {
		return p.child("local")
	}
	return dom.Concat(p.child("local"), dom.Text(" as "), p.child("exported"))
}

func (p *printer) printExportNamed(n *ast.ExportNamedDeclaration) dom.Doc {
	docs := []dom.Doc{p.exportDecorators(n, n.Declaration), dom.Text("export ")}
	if !ast.IsNil(n.Declaration) {
		return dom.Concat(append(docs, p.child("declaration"))...)
	}

	if n.ExportKind == "type" {
		docs = append(docs, dom.Text("type "))
	}
	if len(n.Specifiers) == 0 {
		docs = append(docs, p.danglingIn(n, "{", "}"))
	} else {
		docs = append(docs, p.specifierList(n.Specifiers))
	}
	if !ast.IsNil(n.Source) {
		docs = append(docs, dom.Text(" from "), p.child("source"))
	}
	return dom.Concat(append(docs, dom.Text(";"))...)
}

func (p *printer) printExportDefault(n *ast.ExportDefaultDeclaration) dom.Doc {
	docs := []dom.Doc{
		p.exportDecorators(n, n.Declaration),
		dom.Text("export default "),
		p.child("declaration"),
	}
	if !isKind(n.Declaration, ast.KindFunctionDeclaration, ast.KindClassDeclaration,
		ast.KindDeclareClass, ast.KindDeclareFunction) {
		docs = append(docs, dom.Text(";"))
	}
	return dom.Concat(docs...)
}

func (p *printer) printExportAll(n *ast.ExportAllDeclaration) dom.Doc {
	if ast.IsNil(n.Source) {
		invariant(n, "export * has no source")
	}
	docs := []dom.Doc{dom.Text("export ")}
	if n.ExportKind == "type" {
		docs = append(docs, dom.Text("type "))
	}
	docs = append(docs, dom.Text("*"))
	if !ast.IsNil(n.Exported) {
		docs = append(docs, dom.Text(" as "), p.child("exported"))
	}
	return dom.Concat(append(docs, dom.Text(" from "), p.child("source"), dom.Text(";"))...)
}

// exportDecorators prints the decorators of an exported class if they were
// written before the export keyword.
func (p *printer) exportDecorators(export, decl ast.Node) dom.Doc {
	var decorators []ast.Node
	switch decl := decl.(type) {
	case *ast.ClassDeclaration:
		decorators = decl.Decorators
	case *ast.ClassExpression:
		decorators = decl.Decorators
	}
	if !decoratorsOwnedByExport(export, decorators) {
		return nil
	}
	return walk.Call(p.path, func(*walk.Path) dom.Doc { return p.decorators() }, "declaration")
}
