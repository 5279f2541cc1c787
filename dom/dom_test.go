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

package dom_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/jsfmt/dom"
	"github.com/bufbuild/jsfmt/source"
)

func object(entries ...string) dom.Doc {
	docs := make([]dom.Doc, len(entries))
	for i, e := range entries {
		docs[i] = dom.Text(e)
	}
	return dom.MultilineGroup(
		dom.Text("{"),
		dom.Indent(2, dom.Line, dom.Join(dom.Concat(dom.Text(","), dom.Line), docs)),
		dom.Line,
		dom.Text("}"),
	)
}

func render(width int, doc dom.Doc) string {
	return dom.Render(dom.Options{MaxWidth: width}, doc).Text
}

func TestGroupFlatAndBroken(t *testing.T) {
	t.Parallel()

	doc := object("a: 1", "b: 2")
	assert.Equal(t, "{ a: 1, b: 2 }\n", render(80, doc))
	assert.Equal(t, "{\n  a: 1,\n  b: 2\n}\n", render(5, doc))
}

func TestMultilineGroupRendersLikeGroup(t *testing.T) {
	t.Parallel()

	entries := []dom.Doc{dom.Text("a"), dom.Text("b"), dom.Text("c")}
	body := func() []dom.Doc {
		return []dom.Doc{
			dom.Text("["),
			dom.Indent(2, dom.Softline, dom.Join(dom.Concat(dom.Text(","), dom.Line), entries)),
			dom.Softline,
			dom.Text("]"),
		}
	}
	for _, width := range []int{80, 8, 1} {
		assert.Equal(t, render(width, dom.Group(body()...)), render(width, dom.MultilineGroup(body()...)), "width %d", width)
	}
	assert.Equal(t, "[\n  a,\n  b,\n  c\n]\n", render(8, dom.MultilineGroup(body()...)))
}

func TestNestedGroupsDecideIndependently(t *testing.T) {
	t.Parallel()

	doc := dom.MultilineGroup(
		dom.Text("{"),
		dom.Indent(2, dom.Line, dom.Join(dom.Concat(dom.Text(","), dom.Line), []dom.Doc{
			dom.Concat(dom.Text("inner: "), object("x: 1")),
			dom.Text("other: 2"),
		})),
		dom.Line,
		dom.Text("}"),
	)
	assert.Equal(t, "{\n  inner: { x: 1 },\n  other: 2\n}\n", render(20, doc))
}

func TestHardLineBreaksEnclosingGroups(t *testing.T) {
	t.Parallel()

	doc := dom.Group(dom.Text("a"), dom.Line, dom.Text("b"), dom.Hardline, dom.Text("c"))
	assert.Equal(t, "a\nb\nc\n", render(80, doc))
	assert.True(t, dom.HasHardLine(doc))
	assert.False(t, dom.HasHardLine(object("a")))
}

func TestBreakLineMerges(t *testing.T) {
	t.Parallel()

	comment := dom.Concat(dom.Text("a // c"), dom.Breakline)
	doc := dom.Concat(comment, dom.Hardline, dom.Text("b"))
	assert.Equal(t, "a // c\nb\n", render(80, doc))

	// A break forces the group to break even though it would fit.
	doc = dom.Group(dom.Text("f("), dom.Indent(2, dom.Softline, comment), dom.Softline, dom.Text(")"))
	assert.Equal(t, "f(\n  a // c\n)\n", render(80, doc))
	assert.True(t, dom.HasHardLine(comment))

	// At the top level, it still ends the line.
	assert.Equal(t, "a // c\n;\n", render(80, dom.Concat(comment, dom.Text(";"))))
}

func TestLiteralLineIsNotIndented(t *testing.T) {
	t.Parallel()

	doc := dom.Indent(4, dom.Text("x"), dom.Hardline, dom.Text("`a"), dom.Literalline, dom.Text("b`"))
	assert.Equal(t, "x\n    `a\nb`\n", render(80, doc))
}

func TestBreakMerging(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\n", render(80, dom.Concat(dom.Text("a"), dom.Hardline, dom.Softline, dom.Text("b"))))
	assert.Equal(t, "a\nb\n", render(80, dom.Concat(dom.Text("a"), dom.Softline, dom.Hardline, dom.Text("b"))))
	assert.Equal(t, "a\n\nb\n", render(80, dom.Concat(dom.Text("a"), dom.Hardline, dom.Hardline, dom.Text("b"))))
}

func TestTrailingSpacesAreTrimmed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\n", render(80, dom.Concat(dom.Text("a "), dom.Hardline, dom.Text("b"))))
	assert.Equal(t, "", render(80, dom.Concat(dom.Hardline, dom.Hardline)))
}

func TestConditionalText(t *testing.T) {
	t.Parallel()

	doc := dom.Group(
		dom.Text("["),
		dom.Indent(2, dom.Softline, dom.Text("x")),
		dom.TextIf(dom.Broken, ","),
		dom.Softline,
		dom.Text("]"),
	)
	assert.Equal(t, "[x]\n", render(80, doc))
	assert.Equal(t, "[\n  x,\n]\n", render(2, doc))
}

func TestFitsCountsTrailingText(t *testing.T) {
	t.Parallel()

	doc := dom.Concat(
		dom.Text("foo"),
		dom.Group(dom.Text("("), dom.Indent(2, dom.Softline, dom.Text("bar")), dom.Softline, dom.Text(")")),
		dom.Text(";"),
	)
	assert.Equal(t, "foo(bar);\n", render(9, doc))
	assert.Equal(t, "foo(\n  bar\n);\n", render(8, doc))
}

func TestInitialColumn(t *testing.T) {
	t.Parallel()

	doc := dom.Group(dom.Text("aaaa"), dom.Line, dom.Text("b"))
	assert.Equal(t, "aaaa b\n", dom.Render(dom.Options{MaxWidth: 8}, doc).Text)
	assert.Equal(t, "aaaa\nb\n", dom.Render(dom.Options{MaxWidth: 8, InitialColumn: 3}, doc).Text)
}

func TestAllOrNothing(t *testing.T) {
	t.Parallel()

	const n = 5
	items := make([]dom.Doc, n)
	for i := range items {
		items[i] = dom.Text(strings.Repeat("x", i+1))
	}
	doc := dom.MultilineGroup(
		dom.Text("["),
		dom.Indent(2, dom.Softline, dom.Join(dom.Concat(dom.Text(","), dom.Line), items)),
		dom.Softline,
		dom.Text("]"),
	)

	for width := 1; width <= 40; width++ {
		out := render(width, doc)
		breaks := strings.Count(out, "\n") - 1
		assert.Contains(t, []int{0, n + 1}, breaks, "width %d:\n%s", width, out)
	}
}

func TestWidthRespected(t *testing.T) {
	t.Parallel()

	items := make([]dom.Doc, 6)
	for i := range items {
		items[i] = dom.Text("aaaa")
	}
	doc := dom.MultilineGroup(
		dom.Text("["),
		dom.Indent(2, dom.Softline, dom.Join(dom.Concat(dom.Text(","), dom.Line), items)),
		dom.Softline,
		dom.Text("]"),
	)

	for width := 7; width <= 60; width++ {
		out := render(width, doc)
		for line := range strings.Lines(out) {
			line = strings.TrimSuffix(line, "\n")
			assert.LessOrEqual(t, len(line), width, "width %d:\n%s", width, out)
		}
		// Rendering is a pure function of the document.
		assert.Equal(t, out, render(width, doc))
	}
}

func TestMappings(t *testing.T) {
	t.Parallel()

	pos := source.Position{Offset: 12, Line: 3, Column: 4}
	out := dom.Render(dom.Options{}, dom.Concat(
		dom.Text("a"),
		dom.Hardline,
		dom.Indent(2, dom.Mark(pos, dom.Text("b"))),
	))
	require.Len(t, out.Mappings, 1)
	assert.Equal(t, 2, out.Mappings[0].Generated.Line)
	assert.Equal(t, 2, out.Mappings[0].Generated.Column)
	assert.Equal(t, pos, out.Mappings[0].Original)
}

func TestHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, dom.StartsWith(object("a"), "{"))
	assert.True(t, dom.StartsWith(dom.Concat(nil, dom.Text(""), dom.Group(dom.Text("{}"))), "{"))
	assert.False(t, dom.StartsWith(dom.Concat(dom.Softline, dom.Text("{")), "{"))
	assert.True(t, dom.IsEmpty(dom.Concat(nil, dom.Text(""), dom.Group())))
	assert.False(t, dom.IsEmpty(dom.Hardline))
}

func TestHTML(t *testing.T) {
	t.Parallel()

	out := dom.Render(dom.Options{HTML: true}, object("a"))
	assert.Contains(t, out.Text, "<span exclusive width=5 tail=0>")
	assert.Contains(t, out.Text, `"a"`)
}
