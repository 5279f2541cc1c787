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

import "fmt"

// Kind identifies the concrete type of a [Node].
//
// The string form of a Kind is the ESTree/Babel "type" of the node.
type Kind uint16

const (
	KindInvalid Kind = iota

	// Programs and statements.
	KindFile
	KindProgram
	KindDirective
	KindDirectiveLiteral
	KindEmptyStatement
	KindExpressionStatement
	KindBlockStatement
	KindIfStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindWhileStatement
	KindDoWhileStatement
	KindReturnStatement
	KindThrowStatement
	KindBreakStatement
	KindContinueStatement
	KindLabeledStatement
	KindDebuggerStatement
	KindWithStatement
	KindTryStatement
	KindCatchClause
	KindSwitchStatement
	KindSwitchCase
	KindVariableDeclaration
	KindVariableDeclarator

	// Functions and classes.
	KindFunctionDeclaration
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassDeclaration
	KindClassExpression
	KindClassBody
	KindClassMethod
	KindMethodDefinition
	KindClassProperty
	KindClassImplements
	KindDecorator
	KindObjectMethod

	// Expressions, patterns and literals.
	KindIdentifier
	KindThisExpression
	KindSuper
	KindImport
	KindStringLiteral
	KindNumericLiteral
	KindBigIntLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindRegExpLiteral
	KindTemplateLiteral
	KindTemplateElement
	KindTaggedTemplateExpression
	KindArrayExpression
	KindArrayPattern
	KindObjectExpression
	KindObjectPattern
	KindObjectProperty
	KindProperty
	KindSpreadElement
	KindSpreadProperty
	KindRestElement
	KindRestProperty
	KindAssignmentPattern
	KindUnaryExpression
	KindUpdateExpression
	KindBinaryExpression
	KindLogicalExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindSequenceExpression
	KindCallExpression
	KindNewExpression
	KindMemberExpression
	KindMetaProperty
	KindYieldExpression
	KindAwaitExpression
	KindParenthesizedExpression
	KindTypeCastExpression

	// Import and export declarations.
	KindImportDeclaration
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier
	KindExportNamedDeclaration
	KindExportDefaultDeclaration
	KindExportAllDeclaration
	KindExportSpecifier
	KindExportNamespaceSpecifier
	KindExportDefaultSpecifier

	// JSX.
	KindJSXElement
	KindJSXFragment
	KindJSXOpeningElement
	KindJSXClosingElement
	KindJSXOpeningFragment
	KindJSXClosingFragment
	KindJSXAttribute
	KindJSXSpreadAttribute
	KindJSXIdentifier
	KindJSXNamespacedName
	KindJSXMemberExpression
	KindJSXExpressionContainer
	KindJSXEmptyExpression
	KindJSXSpreadChild
	KindJSXText

	// Flow type annotations and declarations.
	KindTypeAnnotation
	KindTypeAlias
	KindOpaqueType
	KindInterfaceDeclaration
	KindInterfaceExtends
	KindDeclareVariable
	KindDeclareFunction
	KindDeclareClass
	KindDeclareModule
	KindDeclareModuleExports
	KindDeclareTypeAlias
	KindDeclareInterface
	KindDeclareExportDeclaration
	KindObjectTypeAnnotation
	KindObjectTypeProperty
	KindObjectTypeIndexer
	KindObjectTypeCallProperty
	KindObjectTypeSpreadProperty
	KindUnionTypeAnnotation
	KindIntersectionTypeAnnotation
	KindTupleTypeAnnotation
	KindFunctionTypeAnnotation
	KindFunctionTypeParam
	KindNullableTypeAnnotation
	KindArrayTypeAnnotation
	KindGenericTypeAnnotation
	KindQualifiedTypeIdentifier
	KindTypeofTypeAnnotation
	KindTypeParameter
	KindTypeParameterDeclaration
	KindTypeParameterInstantiation
	KindVariance
	KindExistentialTypeParam
	KindAnyTypeAnnotation
	KindMixedTypeAnnotation
	KindEmptyTypeAnnotation
	KindVoidTypeAnnotation
	KindNullLiteralTypeAnnotation
	KindNumberTypeAnnotation
	KindStringTypeAnnotation
	KindBooleanTypeAnnotation
	KindStringLiteralTypeAnnotation
	KindNumberLiteralTypeAnnotation
	KindBooleanLiteralTypeAnnotation

	kindCount
)

// kinds is the registry of every node type, indexed by [Kind].
var kinds = [...]struct {
	name string
	new  func() Node
}{
	KindFile:                         {"File", func() Node { return new(File) }},
	KindProgram:                      {"Program", func() Node { return new(Program) }},
	KindDirective:                    {"Directive", func() Node { return new(Directive) }},
	KindDirectiveLiteral:             {"DirectiveLiteral", func() Node { return new(DirectiveLiteral) }},
	KindEmptyStatement:               {"EmptyStatement", func() Node { return new(EmptyStatement) }},
	KindExpressionStatement:          {"ExpressionStatement", func() Node { return new(ExpressionStatement) }},
	KindBlockStatement:               {"BlockStatement", func() Node { return new(BlockStatement) }},
	KindIfStatement:                  {"IfStatement", func() Node { return new(IfStatement) }},
	KindForStatement:                 {"ForStatement", func() Node { return new(ForStatement) }},
	KindForInStatement:               {"ForInStatement", func() Node { return new(ForInStatement) }},
	KindForOfStatement:               {"ForOfStatement", func() Node { return new(ForOfStatement) }},
	KindWhileStatement:               {"WhileStatement", func() Node { return new(WhileStatement) }},
	KindDoWhileStatement:             {"DoWhileStatement", func() Node { return new(DoWhileStatement) }},
	KindReturnStatement:              {"ReturnStatement", func() Node { return new(ReturnStatement) }},
	KindThrowStatement:               {"ThrowStatement", func() Node { return new(ThrowStatement) }},
	KindBreakStatement:               {"BreakStatement", func() Node { return new(BreakStatement) }},
	KindContinueStatement:            {"ContinueStatement", func() Node { return new(ContinueStatement) }},
	KindLabeledStatement:             {"LabeledStatement", func() Node { return new(LabeledStatement) }},
	KindDebuggerStatement:            {"DebuggerStatement", func() Node { return new(DebuggerStatement) }},
	KindWithStatement:                {"WithStatement", func() Node { return new(WithStatement) }},
	KindTryStatement:                 {"TryStatement", func() Node { return new(TryStatement) }},
	KindCatchClause:                  {"CatchClause", func() Node { return new(CatchClause) }},
	KindSwitchStatement:              {"SwitchStatement", func() Node { return new(SwitchStatement) }},
	KindSwitchCase:                   {"SwitchCase", func() Node { return new(SwitchCase) }},
	KindVariableDeclaration:          {"VariableDeclaration", func() Node { return new(VariableDeclaration) }},
	KindVariableDeclarator:           {"VariableDeclarator", func() Node { return new(VariableDeclarator) }},
	KindFunctionDeclaration:          {"FunctionDeclaration", func() Node { return new(FunctionDeclaration) }},
	KindFunctionExpression:           {"FunctionExpression", func() Node { return new(FunctionExpression) }},
	KindArrowFunctionExpression:      {"ArrowFunctionExpression", func() Node { return new(ArrowFunctionExpression) }},
	KindClassDeclaration:             {"ClassDeclaration", func() Node { return new(ClassDeclaration) }},
	KindClassExpression:              {"ClassExpression", func() Node { return new(ClassExpression) }},
	KindClassBody:                    {"ClassBody", func() Node { return new(ClassBody) }},
	KindClassMethod:                  {"ClassMethod", func() Node { return new(ClassMethod) }},
	KindMethodDefinition:             {"MethodDefinition", func() Node { return new(MethodDefinition) }},
	KindClassProperty:                {"ClassProperty", func() Node { return new(ClassProperty) }},
	KindClassImplements:              {"ClassImplements", func() Node { return new(ClassImplements) }},
	KindDecorator:                    {"Decorator", func() Node { return new(Decorator) }},
	KindObjectMethod:                 {"ObjectMethod", func() Node { return new(ObjectMethod) }},
	KindIdentifier:                   {"Identifier", func() Node { return new(Identifier) }},
	KindThisExpression:               {"ThisExpression", func() Node { return new(ThisExpression) }},
	KindSuper:                        {"Super", func() Node { return new(Super) }},
	KindImport:                       {"Import", func() Node { return new(Import) }},
	KindStringLiteral:                {"StringLiteral", func() Node { return new(StringLiteral) }},
	KindNumericLiteral:               {"NumericLiteral", func() Node { return new(NumericLiteral) }},
	KindBigIntLiteral:                {"BigIntLiteral", func() Node { return new(BigIntLiteral) }},
	KindBooleanLiteral:               {"BooleanLiteral", func() Node { return new(BooleanLiteral) }},
	KindNullLiteral:                  {"NullLiteral", func() Node { return new(NullLiteral) }},
	KindRegExpLiteral:                {"RegExpLiteral", func() Node { return new(RegExpLiteral) }},
	KindTemplateLiteral:              {"TemplateLiteral", func() Node { return new(TemplateLiteral) }},
	KindTemplateElement:              {"TemplateElement", func() Node { return new(TemplateElement) }},
	KindTaggedTemplateExpression:     {"TaggedTemplateExpression", func() Node { return new(TaggedTemplateExpression) }},
	KindArrayExpression:              {"ArrayExpression", func() Node { return new(ArrayExpression) }},
	KindArrayPattern:                 {"ArrayPattern", func() Node { return new(ArrayPattern) }},
	KindObjectExpression:             {"ObjectExpression", func() Node { return new(ObjectExpression) }},
	KindObjectPattern:                {"ObjectPattern", func() Node { return new(ObjectPattern) }},
	KindObjectProperty:               {"ObjectProperty", func() Node { return new(ObjectProperty) }},
	KindProperty:                     {"Property", func() Node { return new(Property) }},
	KindSpreadElement:                {"SpreadElement", func() Node { return new(SpreadElement) }},
	KindSpreadProperty:               {"SpreadProperty", func() Node { return new(SpreadProperty) }},
	KindRestElement:                  {"RestElement", func() Node { return new(RestElement) }},
	KindRestProperty:                 {"RestProperty", func() Node { return new(RestProperty) }},
	KindAssignmentPattern:            {"AssignmentPattern", func() Node { return new(AssignmentPattern) }},
	KindUnaryExpression:              {"UnaryExpression", func() Node { return new(UnaryExpression) }},
	KindUpdateExpression:             {"UpdateExpression", func() Node { return new(UpdateExpression) }},
	KindBinaryExpression:             {"BinaryExpression", func() Node { return new(BinaryExpression) }},
	KindLogicalExpression:            {"LogicalExpression", func() Node { return new(LogicalExpression) }},
	KindAssignmentExpression:         {"AssignmentExpression", func() Node { return new(AssignmentExpression) }},
	KindConditionalExpression:        {"ConditionalExpression", func() Node { return new(ConditionalExpression) }},
	KindSequenceExpression:           {"SequenceExpression", func() Node { return new(SequenceExpression) }},
	KindCallExpression:               {"CallExpression", func() Node { return new(CallExpression) }},
	KindNewExpression:                {"NewExpression", func() Node { return new(NewExpression) }},
	KindMemberExpression:             {"MemberExpression", func() Node { return new(MemberExpression) }},
	KindMetaProperty:                 {"MetaProperty", func() Node { return new(MetaProperty) }},
	KindYieldExpression:              {"YieldExpression", func() Node { return new(YieldExpression) }},
	KindAwaitExpression:              {"AwaitExpression", func() Node { return new(AwaitExpression) }},
	KindParenthesizedExpression:      {"ParenthesizedExpression", func() Node { return new(ParenthesizedExpression) }},
	KindTypeCastExpression:           {"TypeCastExpression", func() Node { return new(TypeCastExpression) }},
	KindImportDeclaration:            {"ImportDeclaration", func() Node { return new(ImportDeclaration) }},
	KindImportSpecifier:              {"ImportSpecifier", func() Node { return new(ImportSpecifier) }},
	KindImportDefaultSpecifier:       {"ImportDefaultSpecifier", func() Node { return new(ImportDefaultSpecifier) }},
	KindImportNamespaceSpecifier:     {"ImportNamespaceSpecifier", func() Node { return new(ImportNamespaceSpecifier) }},
	KindExportNamedDeclaration:       {"ExportNamedDeclaration", func() Node { return new(ExportNamedDeclaration) }},
	KindExportDefaultDeclaration:     {"ExportDefaultDeclaration", func() Node { return new(ExportDefaultDeclaration) }},
	KindExportAllDeclaration:         {"ExportAllDeclaration", func() Node { return new(ExportAllDeclaration) }},
	KindExportSpecifier:              {"ExportSpecifier", func() Node { return new(ExportSpecifier) }},
	KindExportNamespaceSpecifier:     {"ExportNamespaceSpecifier", func() Node { return new(ExportNamespaceSpecifier) }},
	KindExportDefaultSpecifier:       {"ExportDefaultSpecifier", func() Node { return new(ExportDefaultSpecifier) }},
	KindJSXElement:                   {"JSXElement", func() Node { return new(JSXElement) }},
	KindJSXFragment:                  {"JSXFragment", func() Node { return new(JSXFragment) }},
	KindJSXOpeningElement:            {"JSXOpeningElement", func() Node { return new(JSXOpeningElement) }},
	KindJSXClosingElement:            {"JSXClosingElement", func() Node { return new(JSXClosingElement) }},
	KindJSXOpeningFragment:           {"JSXOpeningFragment", func() Node { return new(JSXOpeningFragment) }},
	KindJSXClosingFragment:           {"JSXClosingFragment", func() Node { return new(JSXClosingFragment) }},
	KindJSXAttribute:                 {"JSXAttribute", func() Node { return new(JSXAttribute) }},
	KindJSXSpreadAttribute:           {"JSXSpreadAttribute", func() Node { return new(JSXSpreadAttribute) }},
	KindJSXIdentifier:                {"JSXIdentifier", func() Node { return new(JSXIdentifier) }},
	KindJSXNamespacedName:            {"JSXNamespacedName", func() Node { return new(JSXNamespacedName) }},
	KindJSXMemberExpression:          {"JSXMemberExpression", func() Node { return new(JSXMemberExpression) }},
	KindJSXExpressionContainer:       {"JSXExpressionContainer", func() Node { return new(JSXExpressionContainer) }},
	KindJSXEmptyExpression:           {"JSXEmptyExpression", func() Node { return new(JSXEmptyExpression) }},
	KindJSXSpreadChild:               {"JSXSpreadChild", func() Node { return new(JSXSpreadChild) }},
	KindJSXText:                      {"JSXText", func() Node { return new(JSXText) }},
	KindTypeAnnotation:               {"TypeAnnotation", func() Node { return new(TypeAnnotation) }},
	KindTypeAlias:                    {"TypeAlias", func() Node { return new(TypeAlias) }},
	KindOpaqueType:                   {"OpaqueType", func() Node { return new(OpaqueType) }},
	KindInterfaceDeclaration:         {"InterfaceDeclaration", func() Node { return new(InterfaceDeclaration) }},
	KindInterfaceExtends:             {"InterfaceExtends", func() Node { return new(InterfaceExtends) }},
	KindDeclareVariable:              {"DeclareVariable", func() Node { return new(DeclareVariable) }},
	KindDeclareFunction:              {"DeclareFunction", func() Node { return new(DeclareFunction) }},
	KindDeclareClass:                 {"DeclareClass", func() Node { return new(DeclareClass) }},
	KindDeclareModule:                {"DeclareModule", func() Node { return new(DeclareModule) }},
	KindDeclareModuleExports:         {"DeclareModuleExports", func() Node { return new(DeclareModuleExports) }},
	KindDeclareTypeAlias:             {"DeclareTypeAlias", func() Node { return new(DeclareTypeAlias) }},
	KindDeclareInterface:             {"DeclareInterface", func() Node { return new(DeclareInterface) }},
	KindDeclareExportDeclaration:     {"DeclareExportDeclaration", func() Node { return new(DeclareExportDeclaration) }},
	KindObjectTypeAnnotation:         {"ObjectTypeAnnotation", func() Node { return new(ObjectTypeAnnotation) }},
	KindObjectTypeProperty:           {"ObjectTypeProperty", func() Node { return new(ObjectTypeProperty) }},
	KindObjectTypeIndexer:            {"ObjectTypeIndexer", func() Node { return new(ObjectTypeIndexer) }},
	KindObjectTypeCallProperty:       {"ObjectTypeCallProperty", func() Node { return new(ObjectTypeCallProperty) }},
	KindObjectTypeSpreadProperty:     {"ObjectTypeSpreadProperty", func() Node { return new(ObjectTypeSpreadProperty) }},
	KindUnionTypeAnnotation:          {"UnionTypeAnnotation", func() Node { return new(UnionTypeAnnotation) }},
	KindIntersectionTypeAnnotation:   {"IntersectionTypeAnnotation", func() Node { return new(IntersectionTypeAnnotation) }},
	KindTupleTypeAnnotation:          {"TupleTypeAnnotation", func() Node { return new(TupleTypeAnnotation) }},
	KindFunctionTypeAnnotation:       {"FunctionTypeAnnotation", func() Node { return new(FunctionTypeAnnotation) }},
	KindFunctionTypeParam:            {"FunctionTypeParam", func() Node { return new(FunctionTypeParam) }},
	KindNullableTypeAnnotation:       {"NullableTypeAnnotation", func() Node { return new(NullableTypeAnnotation) }},
	KindArrayTypeAnnotation:          {"ArrayTypeAnnotation", func() Node { return new(ArrayTypeAnnotation) }},
	KindGenericTypeAnnotation:        {"GenericTypeAnnotation", func() Node { return new(GenericTypeAnnotation) }},
	KindQualifiedTypeIdentifier:      {"QualifiedTypeIdentifier", func() Node { return new(QualifiedTypeIdentifier) }},
	KindTypeofTypeAnnotation:         {"TypeofTypeAnnotation", func() Node { return new(TypeofTypeAnnotation) }},
	KindTypeParameter:                {"TypeParameter", func() Node { return new(TypeParameter) }},
	KindTypeParameterDeclaration:     {"TypeParameterDeclaration", func() Node { return new(TypeParameterDeclaration) }},
	KindTypeParameterInstantiation:   {"TypeParameterInstantiation", func() Node { return new(TypeParameterInstantiation) }},
	KindVariance:                     {"Variance", func() Node { return new(Variance) }},
	KindExistentialTypeParam:         {"ExistentialTypeParam", func() Node { return new(ExistentialTypeParam) }},
	KindAnyTypeAnnotation:            {"AnyTypeAnnotation", func() Node { return new(AnyTypeAnnotation) }},
	KindMixedTypeAnnotation:          {"MixedTypeAnnotation", func() Node { return new(MixedTypeAnnotation) }},
	KindEmptyTypeAnnotation:          {"EmptyTypeAnnotation", func() Node { return new(EmptyTypeAnnotation) }},
	KindVoidTypeAnnotation:           {"VoidTypeAnnotation", func() Node { return new(VoidTypeAnnotation) }},
	KindNullLiteralTypeAnnotation:    {"NullLiteralTypeAnnotation", func() Node { return new(NullLiteralTypeAnnotation) }},
	KindNumberTypeAnnotation:         {"NumberTypeAnnotation", func() Node { return new(NumberTypeAnnotation) }},
	KindStringTypeAnnotation:         {"StringTypeAnnotation", func() Node { return new(StringTypeAnnotation) }},
	KindBooleanTypeAnnotation:        {"BooleanTypeAnnotation", func() Node { return new(BooleanTypeAnnotation) }},
	KindStringLiteralTypeAnnotation:  {"StringLiteralTypeAnnotation", func() Node { return new(StringLiteralTypeAnnotation) }},
	KindNumberLiteralTypeAnnotation:  {"NumberLiteralTypeAnnotation", func() Node { return new(NumberLiteralTypeAnnotation) }},
	KindBooleanLiteralTypeAnnotation: {"BooleanLiteralTypeAnnotation", func() Node { return new(BooleanLiteralTypeAnnotation) }},
}

// Kinds returns every valid [Kind], in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// KindOf looks up a kind by its ESTree/Babel type name.
func KindOf(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := KindInvalid + 1; k < kindCount; k++ {
		m[kinds[k].name] = k
	}
	return m
}()

// New returns a new, zero node of this kind. Returns nil for an invalid kind.
func (k Kind) New() Node {
	if k == KindInvalid || k >= kindCount {
		return nil
	}
	return kinds[k].new()
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k == KindInvalid || k >= kindCount {
		return fmt.Sprintf("ast.Kind(%d)", int(k))
	}
	return kinds[k].name
}
