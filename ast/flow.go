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

// TypeAnnotation wraps the type after a `:`.
type TypeAnnotation struct {
	Base
	TypeAnnotation Node `ast:"typeAnnotation"`
}

type TypeAlias struct {
	Base
	Id             Node `ast:"id"`
	TypeParameters Node `ast:"typeParameters"`
	Right          Node `ast:"right"`
}

type OpaqueType struct {
	Base
	Id             Node `ast:"id"`
	TypeParameters Node `ast:"typeParameters"`
	Supertype      Node `ast:"supertype"`
	Impltype       Node `ast:"impltype"`
}

type InterfaceDeclaration struct {
	Base
	Id             Node   `ast:"id"`
	TypeParameters Node   `ast:"typeParameters"`
	Extends        []Node `ast:"extends"`
	Body           Node   `ast:"body"`
}

type InterfaceExtends struct {
	Base
	Id             Node `ast:"id"`
	TypeParameters Node `ast:"typeParameters"`
}

type DeclareVariable struct {
	Base
	Id Node `ast:"id"`
}

// DeclareFunction is `declare function f(): T;`. The signature is the type annotation of Id.
type DeclareFunction struct {
	Base
	Id Node `ast:"id"`
}

type DeclareClass struct {
	Base
	Id             Node   `ast:"id"`
	TypeParameters Node   `ast:"typeParameters"`
	Extends        []Node `ast:"extends"`
	Body           Node   `ast:"body"`
}

type DeclareModule struct {
	Base
	Id   Node `ast:"id"`
	Body Node `ast:"body"`
}

type DeclareModuleExports struct {
	Base
	TypeAnnotation Node `ast:"typeAnnotation"`
}

type DeclareTypeAlias struct {
	Base
	Id             Node `ast:"id"`
	TypeParameters Node `ast:"typeParameters"`
	Right          Node `ast:"right"`
}

type DeclareInterface struct {
	Base
	Id             Node   `ast:"id"`
	TypeParameters Node   `ast:"typeParameters"`
	Extends        []Node `ast:"extends"`
	Body           Node   `ast:"body"`
}

// DeclareExportDeclaration is `declare export ...`; it claims the `declare` of the declaration it wraps.
type DeclareExportDeclaration struct {
	Base
	Default     bool   `ast:"default"`
	Declaration Node   `ast:"declaration"`
	Specifiers  []Node `ast:"specifiers"`
	Source      Node   `ast:"source"`
}

type ObjectTypeAnnotation struct {
	Base
	Exact          bool   `ast:"exact"`
	Properties     []Node `ast:"properties"`
	Indexers       []Node `ast:"indexers"`
	CallProperties []Node `ast:"callProperties"`
}

type ObjectTypeProperty struct {
	Base
	Static   bool `ast:"static"`
	Variance Node `ast:"variance"`
	Key      Node `ast:"key"`
	Optional bool `ast:"optional"`
	Method   bool `ast:"method"`
	Value    Node `ast:"value"`
}

type ObjectTypeIndexer struct {
	Base
	Static   bool `ast:"static"`
	Variance Node `ast:"variance"`
	Id       Node `ast:"id"`
	Key      Node `ast:"key"`
	Value    Node `ast:"value"`
}

type ObjectTypeCallProperty struct {
	Base
	Static bool `ast:"static"`
	Value  Node `ast:"value"`
}

type ObjectTypeSpreadProperty struct {
	Base
	Argument Node `ast:"argument"`
}

type UnionTypeAnnotation struct {
	Base
	Types []Node `ast:"types"`
}

type IntersectionTypeAnnotation struct {
	Base
	Types []Node `ast:"types"`
}

type TupleTypeAnnotation struct {
	Base
	Types []Node `ast:"types"`
}

type FunctionTypeAnnotation struct {
	Base
	TypeParameters Node   `ast:"typeParameters"`
	Params         []Node `ast:"params"`
	Rest           Node   `ast:"rest"`
	ReturnType     Node   `ast:"returnType"`
}

type FunctionTypeParam struct {
	Base
	Name           Node `ast:"name"`
	Optional       bool `ast:"optional"`
	TypeAnnotation Node `ast:"typeAnnotation"`
}

type NullableTypeAnnotation struct {
	Base
	TypeAnnotation Node `ast:"typeAnnotation"`
}

type ArrayTypeAnnotation struct {
	Base
	ElementType Node `ast:"elementType"`
}

type GenericTypeAnnotation struct {
	Base
	Id             Node `ast:"id"`
	TypeParameters Node `ast:"typeParameters"`
}

type QualifiedTypeIdentifier struct {
	Base
	Qualification Node `ast:"qualification"`
	Id            Node `ast:"id"`
}

type TypeofTypeAnnotation struct {
	Base
	Argument Node `ast:"argument"`
}

type TypeParameter struct {
	Base
	Variance Node   `ast:"variance"`
	Name     string `ast:"name"`
	Bound    Node   `ast:"bound"`
	Default  Node   `ast:"default"`
}

type TypeParameterDeclaration struct {
	Base
	Params []Node `ast:"params"`
}

type TypeParameterInstantiation struct {
	Base
	Params []Node `ast:"params"`
}

// Variance is a `+` or `-` marker. VarianceKind is "plus" or "minus".
type Variance struct {
	Base
	VarianceKind string `ast:"kind"`
}

// ExistentialTypeParam is the `*` type.
type ExistentialTypeParam struct{ Base }

type AnyTypeAnnotation struct{ Base }

type MixedTypeAnnotation struct{ Base }

type EmptyTypeAnnotation struct{ Base }

type VoidTypeAnnotation struct{ Base }

type NullLiteralTypeAnnotation struct{ Base }

type NumberTypeAnnotation struct{ Base }

type StringTypeAnnotation struct{ Base }

type BooleanTypeAnnotation struct{ Base }

type StringLiteralTypeAnnotation struct {
	Base
	Value string `ast:"value"`
	Raw   string `ast:"extra.raw,raw"`
}

type NumberLiteralTypeAnnotation struct {
	Base
	Value float64 `ast:"value"`
	Raw   string  `ast:"extra.raw,raw"`
}

type BooleanLiteralTypeAnnotation struct {
	Base
	Value bool `ast:"value"`
}

func (*TypeAnnotation) Kind() Kind               { return KindTypeAnnotation }
func (*TypeAlias) Kind() Kind                    { return KindTypeAlias }
func (*OpaqueType) Kind() Kind                   { return KindOpaqueType }
func (*InterfaceDeclaration) Kind() Kind         { return KindInterfaceDeclaration }
func (*InterfaceExtends) Kind() Kind             { return KindInterfaceExtends }
func (*DeclareVariable) Kind() Kind              { return KindDeclareVariable }
func (*DeclareFunction) Kind() Kind              { return KindDeclareFunction }
func (*DeclareClass) Kind() Kind                 { return KindDeclareClass }
func (*DeclareModule) Kind() Kind                { return KindDeclareModule }
func (*DeclareModuleExports) Kind() Kind         { return KindDeclareModuleExports }
func (*DeclareTypeAlias) Kind() Kind             { return KindDeclareTypeAlias }
func (*DeclareInterface) Kind() Kind             { return KindDeclareInterface }
func (*DeclareExportDeclaration) Kind() Kind     { return KindDeclareExportDeclaration }
func (*ObjectTypeAnnotation) Kind() Kind         { return KindObjectTypeAnnotation }
func (*ObjectTypeProperty) Kind() Kind           { return KindObjectTypeProperty }
func (*ObjectTypeIndexer) Kind() Kind            { return KindObjectTypeIndexer }
func (*ObjectTypeCallProperty) Kind() Kind       { return KindObjectTypeCallProperty }
func (*ObjectTypeSpreadProperty) Kind() Kind     { return KindObjectTypeSpreadProperty }
func (*UnionTypeAnnotation) Kind() Kind          { return KindUnionTypeAnnotation }
func (*IntersectionTypeAnnotation) Kind() Kind   { return KindIntersectionTypeAnnotation }
func (*TupleTypeAnnotation) Kind() Kind          { return KindTupleTypeAnnotation }
func (*FunctionTypeAnnotation) Kind() Kind       { return KindFunctionTypeAnnotation }
func (*FunctionTypeParam) Kind() Kind            { return KindFunctionTypeParam }
func (*NullableTypeAnnotation) Kind() Kind       { return KindNullableTypeAnnotation }
func (*ArrayTypeAnnotation) Kind() Kind          { return KindArrayTypeAnnotation }
func (*GenericTypeAnnotation) Kind() Kind        { return KindGenericTypeAnnotation }
func (*QualifiedTypeIdentifier) Kind() Kind      { return KindQualifiedTypeIdentifier }
func (*TypeofTypeAnnotation) Kind() Kind         { return KindTypeofTypeAnnotation }
func (*TypeParameter) Kind() Kind                { return KindTypeParameter }
func (*TypeParameterDeclaration) Kind() Kind     { return KindTypeParameterDeclaration }
func (*TypeParameterInstantiation) Kind() Kind   { return KindTypeParameterInstantiation }
func (*Variance) Kind() Kind                     { return KindVariance }
func (*ExistentialTypeParam) Kind() Kind         { return KindExistentialTypeParam }
func (*AnyTypeAnnotation) Kind() Kind            { return KindAnyTypeAnnotation }
func (*MixedTypeAnnotation) Kind() Kind          { return KindMixedTypeAnnotation }
func (*EmptyTypeAnnotation) Kind() Kind          { return KindEmptyTypeAnnotation }
func (*VoidTypeAnnotation) Kind() Kind           { return KindVoidTypeAnnotation }
func (*NullLiteralTypeAnnotation) Kind() Kind    { return KindNullLiteralTypeAnnotation }
func (*NumberTypeAnnotation) Kind() Kind         { return KindNumberTypeAnnotation }
func (*StringTypeAnnotation) Kind() Kind         { return KindStringTypeAnnotation }
func (*BooleanTypeAnnotation) Kind() Kind        { return KindBooleanTypeAnnotation }
func (*StringLiteralTypeAnnotation) Kind() Kind  { return KindStringLiteralTypeAnnotation }
func (*NumberLiteralTypeAnnotation) Kind() Kind  { return KindNumberLiteralTypeAnnotation }
func (*BooleanLiteralTypeAnnotation) Kind() Kind { return KindBooleanLiteralTypeAnnotation }
