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

package printer_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/jsfmt/ast"
	"github.com/bufbuild/jsfmt/comments"
	"github.com/bufbuild/jsfmt/dom"
	"github.com/bufbuild/jsfmt/printer"
	"github.com/bufbuild/jsfmt/reporter"
	"github.com/bufbuild/jsfmt/source"
	"github.com/bufbuild/jsfmt/walk"
)

func format(t *testing.T, options printer.Options, root ast.Node, cs ...*ast.Comment) string {
	t.Helper()
	doc, err := printer.Print(options, root, comments.Attach(root, cs))
	require.NoError(t, err)
	return dom.Render(options.DomOptions(), doc).Text
}

func id(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

func num(raw string) *ast.NumericLiteral {
	v, _ := strconv.ParseFloat(raw, 64)
	return &ast.NumericLiteral{Value: v, Raw: raw}
}

func str(raw string) *ast.StringLiteral {
	v, _ := strconv.Unquote(`"` + raw[1:len(raw)-1] + `"`)
	return &ast.StringLiteral{Value: v, Raw: raw}
}

func call(callee ast.Node, args ...ast.Node) *ast.CallExpression {
	return &ast.CallExpression{Callee: callee, Arguments: args}
}

func member(object ast.Node, name string) *ast.MemberExpression {
	return &ast.MemberExpression{Object: object, Property: id(name)}
}

func stmt(expr ast.Node) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expression: expr}
}

func program(body ...ast.Node) *ast.Program {
	return &ast.Program{Body: body}
}

func object(props ...ast.Node) *ast.ObjectExpression {
	return &ast.ObjectExpression{Properties: props}
}

func prop(key string, value ast.Node) *ast.ObjectProperty {
	return &ast.ObjectProperty{Key: id(key), Value: value}
}

func binary(left ast.Node, op string, right ast.Node) *ast.BinaryExpression {
	return &ast.BinaryExpression{Left: left, Operator: op, Right: right}
}

func span(line1, col1, line2, col2 int) source.Span {
	return source.Span{
		Start: source.Position{Line: line1, Column: col1},
		End:   source.Position{Line: line2, Column: col2},
	}
}

func TestIfStatement(t *testing.T) {
	t.Parallel()

	root := program(&ast.IfStatement{Test: id("a"), Consequent: stmt(call(id("b")))})
	assert.Equal(t, "if (a) b();\n", format(t, printer.Options{}, root))

	root = program(&ast.IfStatement{
		Test:       id("a"),
		Consequent: stmt(call(id("b"))),
		Alternate:  stmt(call(id("c"))),
	})
	assert.Equal(t, "if (a) b();\nelse c();\n", format(t, printer.Options{}, root))

	root = program(&ast.IfStatement{
		Test:       id("a"),
		Consequent: &ast.BlockStatement{Body: []ast.Node{stmt(call(id("b")))}},
		Alternate:  &ast.BlockStatement{},
	})
	assert.Equal(t, "if (a) {\n  b();\n} else {}\n", format(t, printer.Options{}, root))
}

func TestObjectFitsOrBreaks(t *testing.T) {
	t.Parallel()

	root := object(prop("a", num("1")), prop("b", num("2")))
	assert.Equal(t, "{ a: 1, b: 2 }\n", format(t, printer.Options{ObjectCurlySpacing: true}, root))
	assert.Equal(t, "{a: 1, b: 2}\n", format(t, printer.Options{}, root))
	assert.Equal(t,
		"{\n  a: 1,\n  b: 2\n}\n",
		format(t, printer.Options{PrintWidth: 5, ObjectCurlySpacing: true}, root),
	)
	assert.Equal(t,
		"{\n  a: 1,\n  b: 2,\n}\n",
		format(t, printer.Options{PrintWidth: 5, ObjectCurlySpacing: true, TrailingComma: printer.TrailingCommaES5}, root),
	)
}

func TestImportDefault(t *testing.T) {
	t.Parallel()

	root := program(&ast.ImportDeclaration{
		Specifiers: []ast.Node{&ast.ImportDefaultSpecifier{Local: id("Foo")}},
		Source:     str(`'m'`),
	})
	assert.Equal(t, "import Foo from \"m\";\n", format(t, printer.Options{}, root))
	assert.Equal(t, "import Foo from 'm';\n", format(t, printer.Options{Quote: printer.QuoteSingle}, root))

	root = program(&ast.ImportDeclaration{Source: str(`"m"`)})
	assert.Equal(t, "import \"m\";\n", format(t, printer.Options{}, root))
}

func TestSoleObjectArgumentHugs(t *testing.T) {
	t.Parallel()

	root := program(stmt(call(id("f"), object(prop("a", num("1"))))))
	options := printer.Options{ObjectCurlySpacing: true}
	assert.Equal(t, "f({ a: 1 });\n", format(t, options, root))

	options.PrintWidth = 8
	assert.Equal(t, "f({\n  a: 1\n});\n", format(t, options, root))
}

func TestArrowParens(t *testing.T) {
	t.Parallel()

	root := &ast.ArrowFunctionExpression{Params: []ast.Node{id("x")}, Body: id("x")}
	assert.Equal(t, "x => x\n", format(t, printer.Options{}, root))
	assert.Equal(t, "(x) => x\n", format(t, printer.Options{ArrowParensAlways: true}, root))
}

func TestBinaryInDeclarator(t *testing.T) {
	t.Parallel()

	root := program(&ast.VariableDeclaration{
		DeclKind: "const",
		Declarations: []ast.Node{&ast.VariableDeclarator{
			Id:   id("x"),
			Init: binary(id("aaaa"), "+", id("bbbb")),
		}},
	})
	assert.Equal(t, "const x = aaaa + bbbb;\n", format(t, printer.Options{}, root))
	assert.Equal(t, "const x =\n  aaaa + bbbb;\n", format(t, printer.Options{PrintWidth: 16}, root))
	assert.Equal(t, "const x =\n  aaaa +\n  bbbb;\n", format(t, printer.Options{PrintWidth: 10}, root))
}

func TestMultipleDeclarators(t *testing.T) {
	t.Parallel()

	root := program(&ast.VariableDeclaration{
		DeclKind: "var",
		Declarations: []ast.Node{
			&ast.VariableDeclarator{Id: id("a"), Init: num("1")},
			&ast.VariableDeclarator{Id: id("b"), Init: num("2")},
		},
	})
	assert.Equal(t, "var a = 1, b = 2;\n", format(t, printer.Options{}, root))
	assert.Equal(t, "var a = 1,\n  b = 2;\n", format(t, printer.Options{PrintWidth: 10}, root))
}

func TestMemberChain(t *testing.T) {
	t.Parallel()

	chain := call(member(call(member(call(member(id("promise"), "then"), id("x")), "catch"), id("y")), "finally"), id("z"))
	root := program(stmt(chain))
	assert.Equal(t, "promise.then(x).catch(y).finally(z);\n", format(t, printer.Options{}, root))
	assert.Equal(t,
		"promise\n  .then(x)\n  .catch(y)\n  .finally(z);\n",
		format(t, printer.Options{PrintWidth: 20}, root),
	)
}

func TestClass(t *testing.T) {
	t.Parallel()

	root := program(&ast.ClassDeclaration{
		Id:         id("A"),
		SuperClass: id("B"),
		Body: &ast.ClassBody{Body: []ast.Node{
			&ast.ClassMethod{MethodKind: "constructor", Key: id("constructor"), Body: &ast.BlockStatement{}},
			&ast.ClassProperty{Static: true, Key: id("x"), Value: num("1")},
		}},
	})
	assert.Equal(t,
		"class A extends B {\n  constructor() {}\n  static x = 1;\n}\n",
		format(t, printer.Options{}, root),
	)
}

func TestTemplateLiteral(t *testing.T) {
	t.Parallel()

	root := &ast.TemplateLiteral{
		Quasis: []*ast.TemplateElement{
			{Raw: "a\nb "},
			{Raw: "", Tail: true},
		},
		Expressions: []ast.Node{id("x")},
	}
	assert.Equal(t, "`a\nb ${x}`\n", format(t, printer.Options{}, root))
}

func TestJSX(t *testing.T) {
	t.Parallel()

	root := &ast.JSXElement{
		OpeningElement: &ast.JSXOpeningElement{Name: &ast.JSXIdentifier{Name: "div"}},
		Children: []ast.Node{
			&ast.JSXText{Value: "hello ", Raw: "hello "},
			&ast.JSXExpressionContainer{Expression: id("name")},
		},
		ClosingElement: &ast.JSXClosingElement{Name: &ast.JSXIdentifier{Name: "div"}},
	}
	assert.Equal(t, "<div>hello {name}</div>\n", format(t, printer.Options{}, root))
	assert.Equal(t,
		"<div>\n  hello{\" \"}\n  {name}\n</div>\n",
		format(t, printer.Options{PrintWidth: 10}, root),
	)

	root = &ast.JSXElement{
		OpeningElement: &ast.JSXOpeningElement{
			Name: &ast.JSXIdentifier{Name: "a"},
			Attributes: []ast.Node{&ast.JSXAttribute{
				Name:  &ast.JSXIdentifier{Name: "b"},
				Value: &ast.StringLiteral{Value: "x", Raw: "'x'"},
			}},
			SelfClosing: true,
		},
	}
	assert.Equal(t, "<a b=\"x\" />\n", format(t, printer.Options{}, root))
}

func TestFlowTypes(t *testing.T) {
	t.Parallel()

	root := program(&ast.TypeAlias{
		Id: id("A"),
		Right: &ast.UnionTypeAnnotation{Types: []ast.Node{
			&ast.GenericTypeAnnotation{Id: id("B")},
			&ast.GenericTypeAnnotation{Id: id("C")},
		}},
	})
	assert.Equal(t, "type A = B | C;\n", format(t, printer.Options{}, root))
	assert.Equal(t, "type A =\n  | B\n  | C;\n", format(t, printer.Options{PrintWidth: 10}, root))

	root = program(&ast.DeclareExportDeclaration{
		Declaration: &ast.DeclareFunction{Id: &ast.Identifier{
			Name: "f",
			TypeAnnotation: &ast.TypeAnnotation{TypeAnnotation: &ast.FunctionTypeAnnotation{
				Params: []ast.Node{&ast.FunctionTypeParam{
					Name:           id("x"),
					TypeAnnotation: &ast.StringTypeAnnotation{},
				}},
				ReturnType: &ast.VoidTypeAnnotation{},
			}},
		}},
	})
	assert.Equal(t, "declare export function f(x: string): void;\n", format(t, printer.Options{}, root))
}

func TestQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw   string
		quote printer.Quote
		want  string
	}{
		{raw: `'a'`, want: `"a"`},
		{raw: `"a"`, quote: printer.QuoteSingle, want: `'a'`},
		{raw: `'a"b'`, want: `'a"b'`},
		{raw: `'a"b'`, quote: printer.QuoteDouble, want: `"a\"b"`},
		{raw: `"it's"`, want: `"it's"`},
		{raw: `"it's"`, quote: printer.QuoteSingle, want: `'it\'s'`},
		{raw: `'\'"'`, want: `"'\""`},
		{raw: `'\d'`, want: `"\d"`},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%v", tt.raw, tt.quote), func(t *testing.T) {
			t.Parallel()
			lit := &ast.StringLiteral{Raw: tt.raw}
			got := format(t, printer.Options{Quote: tt.quote}, stmt(lit))
			assert.Equal(t, tt.want+";\n", got)
		})
	}
}

func TestNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct{ raw, want string }{
		{"1", "1"},
		{"1E5", "1e5"},
		{"1e+5", "1e5"},
		{"1.50", "1.5"},
		{"1.0", "1.0"},
		{"0.50e10", "0.5e10"},
		{".5", "0.5"},
		{"5.", "5"},
		{"0XAB", "0xab"},
		{"1.5E-05", "1.5e-5"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want+"\n", format(t, printer.Options{}, num(tt.raw)))
		})
	}
}

type step struct {
	field string
	index int
	node  ast.Node
}

// needsParens descends from root through steps and reports whether the last
// node needs parentheses.
func needsParens(root ast.Node, steps ...step) bool {
	path := walk.NewPath(root)
	var got bool
	var descend func(int)
	descend = func(i int) {
		if i == len(steps) {
			got = printer.NeedsParens(path)
			return
		}
		s := steps[i]
		path.Descend(s.field, s.index, s.node, func() { descend(i + 1) })
	}
	descend(0)
	return got
}

func TestNeedsParens(t *testing.T) {
	t.Parallel()

	sum := binary(id("a"), "+", id("b"))
	seq := &ast.SequenceExpression{Expressions: []ast.Node{id("a"), id("b")}}
	obj := object()
	fn := &ast.FunctionExpression{Body: &ast.BlockStatement{}}
	cond := &ast.ConditionalExpression{Test: id("a"), Consequent: id("b"), Alternate: id("c")}
	neg := &ast.UnaryExpression{Operator: "-", Prefix: true, Argument: id("a")}
	nullish := &ast.LogicalExpression{Left: id("a"), Operator: "??", Right: id("b")}

	tests := []struct {
		name  string
		root  ast.Node
		steps []step
		want  bool
	}{
		{
			name:  "lower precedence left",
			root:  binary(sum, "*", id("c")),
			steps: []step{{"left", -1, sum}},
			want:  true,
		},
		{
			name:  "same precedence left",
			root:  binary(sum, "+", id("c")),
			steps: []step{{"left", -1, sum}},
		},
		{
			name:  "same precedence right",
			root:  binary(id("c"), "-", sum),
			steps: []step{{"right", -1, sum}},
			want:  true,
		},
		{
			name:  "higher precedence right",
			root:  binary(id("c"), "==", sum),
			steps: []step{{"right", -1, sum}},
		},
		{
			name: "mixed nullish",
			root: &ast.LogicalExpression{Left: id("a"), Operator: "??", Right: &ast.LogicalExpression{
				Left: id("b"), Operator: "||", Right: id("c"),
			}},
			steps: []step{{"right", -1, &ast.LogicalExpression{Left: id("b"), Operator: "||", Right: id("c")}}},
			want:  true,
		},
		{
			name:  "nullish with arithmetic",
			root:  &ast.LogicalExpression{Left: id("a"), Operator: "??", Right: sum},
			steps: []step{{"right", -1, sum}},
		},
		{
			name:  "arithmetic with nullish",
			root:  binary(nullish, "+", id("c")),
			steps: []step{{"left", -1, nullish}},
			want:  true,
		},
		{
			name:  "exponent base",
			root:  binary(neg, "**", id("b")),
			steps: []step{{"left", -1, neg}},
			want:  true,
		},
		{
			name:  "sequence argument",
			root:  call(id("f"), seq),
			steps: []step{{"arguments", 0, seq}},
			want:  true,
		},
		{
			name:  "sequence statement",
			root:  stmt(seq),
			steps: []step{{"expression", -1, seq}},
		},
		{
			name:  "object statement",
			root:  stmt(obj),
			steps: []step{{"expression", -1, obj}},
			want:  true,
		},
		{
			name: "object at start of statement",
			root: stmt(call(member(obj, "toString"))),
			steps: []step{
				{"expression", -1, call(member(obj, "toString"))},
				{"callee", -1, member(obj, "toString")},
				{"object", -1, obj},
			},
			want: true,
		},
		{
			name:  "object argument",
			root:  stmt(call(id("f"), obj)),
			steps: []step{{"expression", -1, call(id("f"), obj)}, {"arguments", 0, obj}},
		},
		{
			name:  "object arrow body",
			root:  &ast.ArrowFunctionExpression{Body: obj},
			steps: []step{{"body", -1, obj}},
			want:  true,
		},
		{
			name:  "function callee",
			root:  call(fn),
			steps: []step{{"callee", -1, fn}},
			want:  true,
		},
		{
			name:  "function statement",
			root:  stmt(fn),
			steps: []step{{"expression", -1, fn}},
			want:  true,
		},
		{
			name:  "function export default",
			root:  &ast.ExportDefaultDeclaration{Declaration: fn},
			steps: []step{{"declaration", -1, fn}},
		},
		{
			name:  "conditional test",
			root:  &ast.ConditionalExpression{Test: cond, Consequent: id("x"), Alternate: id("y")},
			steps: []step{{"test", -1, cond}},
			want:  true,
		},
		{
			name:  "conditional alternate",
			root:  &ast.ConditionalExpression{Test: id("x"), Consequent: id("y"), Alternate: cond},
			steps: []step{{"alternate", -1, cond}},
		},
		{
			name:  "double negation",
			root:  &ast.UnaryExpression{Operator: "-", Prefix: true, Argument: neg},
			steps: []step{{"argument", -1, neg}},
			want:  true,
		},
		{
			name:  "numeric member object",
			root:  member(num("1"), "toString"),
			steps: []step{{"object", -1, num("1")}},
			want:  true,
		},
		{
			name:  "call in new callee",
			root:  &ast.NewExpression{Callee: call(id("f"))},
			steps: []step{{"callee", -1, call(id("f"))}},
			want:  true,
		},
		{
			name: "in inside for init",
			root: &ast.ForStatement{Init: &ast.VariableDeclaration{
				DeclKind:     "var",
				Declarations: []ast.Node{&ast.VariableDeclarator{Id: id("x"), Init: binary(id("a"), "in", id("b"))}},
			}},
			steps: []step{
				{"init", -1, &ast.VariableDeclaration{}},
				{"declarations", 0, &ast.VariableDeclarator{}},
				{"init", -1, binary(id("a"), "in", id("b"))},
			},
			want: true,
		},
		{
			name:  "binary superclass",
			root:  &ast.ClassExpression{SuperClass: sum},
			steps: []step{{"superClass", -1, sum}},
			want:  true,
		},
		{
			name: "union in array type",
			root: &ast.ArrayTypeAnnotation{ElementType: &ast.UnionTypeAnnotation{}},
			steps: []step{
				{"elementType", -1, &ast.UnionTypeAnnotation{}},
			},
			want: true,
		},
		{
			name:  "parenthesized parent",
			root:  &ast.ParenthesizedExpression{Expression: sum},
			steps: []step{{"expression", -1, sum}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, needsParens(tt.root, tt.steps...))
		})
	}
}

func TestParensArePrinted(t *testing.T) {
	t.Parallel()

	root := program(stmt(binary(binary(id("a"), "+", id("b")), "*", id("c"))))
	assert.Equal(t, "(a + b) * c;\n", format(t, printer.Options{}, root))

	root = program(stmt(&ast.ParenthesizedExpression{Expression: binary(id("a"), "*", id("b"))}))
	assert.Equal(t, "a * b;\n", format(t, printer.Options{}, root))
}

func TestComments(t *testing.T) {
	t.Parallel()

	first := &ast.ExpressionStatement{Base: ast.Base{Loc: span(1, 0, 1, 4)}, Expression: call(id("a"))}
	trailing := &ast.Comment{Text: " x", Style: ast.LineComment, Loc: span(1, 5, 1, 9)}

	second := func(line int) *ast.ExpressionStatement {
		return &ast.ExpressionStatement{Base: ast.Base{Loc: span(line, 0, line, 4)}, Expression: call(id("b"))}
	}
	root := func(line int) *ast.Program {
		return &ast.Program{Base: ast.Base{Loc: span(1, 0, line, 4)}, Body: []ast.Node{first, second(line)}}
	}

	assert.Equal(t, "a(); // x\nb();\n", format(t, printer.Options{}, root(2), trailing))
	assert.Equal(t, "a();\n\nb();\n", format(t, printer.Options{MaxBlankLines: 1}, root(4)))
	assert.Equal(t, "a();\n\nb();\n", format(t, printer.Options{MaxBlankLines: 1}, root(6)))
	assert.Equal(t, "a();\nb();\n", format(t, printer.Options{}, root(6)))

	leading := &ast.Comment{Text: " c ", Style: ast.BlockComment, Loc: span(1, 0, 1, 7)}
	stmt := &ast.ExpressionStatement{Base: ast.Base{Loc: span(1, 8, 1, 12)}, Expression: call(id("a"))}
	prog := &ast.Program{Base: ast.Base{Loc: span(1, 0, 1, 12)}, Body: []ast.Node{stmt}}
	assert.Equal(t, "/* c */ a();\n", format(t, printer.Options{}, prog, leading))

	dangling := &ast.Comment{Text: " c ", Style: ast.BlockComment, Loc: span(1, 2, 1, 9)}
	block := &ast.BlockStatement{Base: ast.Base{Loc: span(1, 0, 1, 11)}}
	prog = &ast.Program{Base: ast.Base{Loc: span(1, 0, 1, 11)}, Body: []ast.Node{block}}
	assert.Equal(t, "{ /* c */ }\n", format(t, printer.Options{}, prog, dangling))
}

func TestDanglingCommentsInChildlessNodes(t *testing.T) {
	t.Parallel()

	block := func(text string, loc source.Span) *ast.Comment {
		return &ast.Comment{Text: text, Style: ast.BlockComment, Loc: loc}
	}
	cs := []*ast.Comment{
		block(" c ", span(1, 7, 1, 14)),
		block(" d ", span(2, 9, 2, 16)),
		block(" e ", span(3, 9, 3, 16)),
		{Text: " k", Style: ast.LineComment, Loc: span(4, 9, 4, 13)},
		block(" t ", span(6, 5, 6, 12)),
	}
	root := &ast.Program{
		Base: ast.Base{Loc: span(1, 0, 6, 14)},
		Body: []ast.Node{
			&ast.ReturnStatement{Base: ast.Base{Loc: span(1, 0, 1, 15)}},
			&ast.DebuggerStatement{Base: ast.Base{Loc: span(2, 0, 2, 17)}},
			&ast.ExportNamedDeclaration{Base: ast.Base{Loc: span(3, 0, 3, 19)}},
			&ast.ContinueStatement{Base: ast.Base{Loc: span(4, 0, 5, 1)}},
			&ast.ExpressionStatement{
				Base:       ast.Base{Loc: span(6, 0, 6, 14)},
				Expression: &ast.ThisExpression{Base: ast.Base{Loc: span(6, 0, 6, 13)}},
			},
		},
	}

	attachments := comments.Attach(root, cs)
	doc, err := printer.Print(printer.Options{}, root, attachments)
	require.NoError(t, err)
	out := dom.Render(printer.Options{}.DomOptions(), doc).Text
	assert.Equal(t,
		"return /* c */;\ndebugger /* d */;\nexport { /* e */ };\ncontinue; // k\nthis /* t */;\n",
		out,
	)

	require.Equal(t, len(cs), attachments.Len())
	for att := range attachments.All() {
		assert.Equal(t, 1, strings.Count(out, att.Comment.String()), att.Comment.String())
	}
}

func TestInvariantErrors(t *testing.T) {
	t.Parallel()

	_, err := printer.Print(printer.Options{}, program(&ast.ImportDeclaration{}), nil)
	var invariant reporter.ErrInvariant
	require.ErrorAs(t, err, &invariant)
	assert.Equal(t, ast.KindImportDeclaration.String(), invariant.Kind)

	method := &ast.MethodDefinition{Key: id("m"), Value: id("notAFunction")}
	_, err = printer.Print(printer.Options{}, &ast.ClassBody{Body: []ast.Node{method}}, nil)
	require.ErrorAs(t, err, &invariant)
}

func TestEveryKindPrints(t *testing.T) {
	t.Parallel()

	for _, kind := range ast.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()
			var err error
			require.NotPanics(t, func() {
				_, err = printer.Print(printer.Options{}, kind.New(), nil)
			})

			var unsupported reporter.ErrUnsupportedKind
			assert.False(t, errors.As(err, &unsupported), "%v", err)
			if err != nil {
				var invariant reporter.ErrInvariant
				assert.ErrorAs(t, err, &invariant)
			}
		})
	}
}
