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

type FunctionDeclaration struct {
	Base
	Async          bool   `ast:"async"`
	Generator      bool   `ast:"generator"`
	Id             Node   `ast:"id"`
	TypeParameters Node   `ast:"typeParameters"`
	Params         []Node `ast:"params"`
	ReturnType     Node   `ast:"returnType"`
	Body           Node   `ast:"body"`
}

type FunctionExpression struct {
	Base
	Async          bool   `ast:"async"`
	Generator      bool   `ast:"generator"`
	Id             Node   `ast:"id"`
	TypeParameters Node   `ast:"typeParameters"`
	Params         []Node `ast:"params"`
	ReturnType     Node   `ast:"returnType"`
	Body           Node   `ast:"body"`
}

// ArrowFunctionExpression is an arrow function. Body is either a [BlockStatement] or an expression.
type ArrowFunctionExpression struct {
	Base
	Async          bool   `ast:"async"`
	TypeParameters Node   `ast:"typeParameters"`
	Params         []Node `ast:"params"`
	ReturnType     Node   `ast:"returnType"`
	Body           Node   `ast:"body"`
}

type ClassDeclaration struct {
	Base
	Decorators          []Node `ast:"decorators"`
	Id                  Node   `ast:"id"`
	TypeParameters      Node   `ast:"typeParameters"`
	SuperClass          Node   `ast:"superClass"`
	SuperTypeParameters Node   `ast:"superTypeParameters"`
	Implements          []Node `ast:"implements"`
	Body                Node   `ast:"body"`
}

type ClassExpression struct {
	Base
	Decorators          []Node `ast:"decorators"`
	Id                  Node   `ast:"id"`
	TypeParameters      Node   `ast:"typeParameters"`
	SuperClass          Node   `ast:"superClass"`
	SuperTypeParameters Node   `ast:"superTypeParameters"`
	Implements          []Node `ast:"implements"`
	Body                Node   `ast:"body"`
}

type ClassBody struct {
	Base
	Body []Node `ast:"body"`
}

// ClassMethod is a Babel class method. MethodKind is one of "constructor", "method", "get" or "set".
type ClassMethod struct {
	Base
	Decorators     []Node `ast:"decorators"`
	MethodKind     string `ast:"kind"`
	Static         bool   `ast:"static"`
	Async          bool   `ast:"async"`
	Generator      bool   `ast:"generator"`
	Computed       bool   `ast:"computed"`
	Key            Node   `ast:"key"`
	TypeParameters Node   `ast:"typeParameters"`
	Params         []Node `ast:"params"`
	ReturnType     Node   `ast:"returnType"`
	Body           Node   `ast:"body"`
}

// MethodDefinition is an ESTree class method. Value must be a [FunctionExpression].
type MethodDefinition struct {
	Base
	Decorators []Node `ast:"decorators"`
	MethodKind string `ast:"kind"`
	Static     bool   `ast:"static"`
	Computed   bool   `ast:"computed"`
	Key        Node   `ast:"key"`
	Value      Node   `ast:"value"`
}

type ClassProperty struct {
	Base
	Decorators     []Node `ast:"decorators"`
	Static         bool   `ast:"static"`
	Computed       bool   `ast:"computed"`
	Variance       Node   `ast:"variance"`
	Key            Node   `ast:"key"`
	TypeAnnotation Node   `ast:"typeAnnotation"`
	Value          Node   `ast:"value"`
}

type ClassImplements struct {
	Base
	Id             Node `ast:"id"`
	TypeParameters Node `ast:"typeParameters"`
}

type Decorator struct {
	Base
	Expression Node `ast:"expression"`
}

// ObjectMethod is a Babel object literal method, getter or setter.
type ObjectMethod struct {
	Base
	Decorators     []Node `ast:"decorators"`
	MethodKind     string `ast:"kind"`
	Async          bool   `ast:"async"`
	Generator      bool   `ast:"generator"`
	Computed       bool   `ast:"computed"`
	Key            Node   `ast:"key"`
	TypeParameters Node   `ast:"typeParameters"`
	Params         []Node `ast:"params"`
	ReturnType     Node   `ast:"returnType"`
	Body           Node   `ast:"body"`
}

func (*FunctionDeclaration) Kind() Kind     { return KindFunctionDeclaration }
func (*FunctionExpression) Kind() Kind      { return KindFunctionExpression }
func (*ArrowFunctionExpression) Kind() Kind { return KindArrowFunctionExpression }
func (*ClassDeclaration) Kind() Kind        { return KindClassDeclaration }
func (*ClassExpression) Kind() Kind         { return KindClassExpression }
func (*ClassBody) Kind() Kind               { return KindClassBody }
func (*ClassMethod) Kind() Kind             { return KindClassMethod }
func (*MethodDefinition) Kind() Kind        { return KindMethodDefinition }
func (*ClassProperty) Kind() Kind           { return KindClassProperty }
func (*ClassImplements) Kind() Kind         { return KindClassImplements }
func (*Decorator) Kind() Kind               { return KindDecorator }
func (*ObjectMethod) Kind() Kind            { return KindObjectMethod }
