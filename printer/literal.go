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
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/bufbuild/jsfmt/dom"
)

// quote prints a string literal with the quotes chosen by the options. raw
// is the literal as written, including its quotes; value is used when raw is
// unavailable.
func (p *printer) quote(raw, value string) string {
	content := unquoteRaw(raw)
	if raw == "" {
		content = escapeString(value)
	}

	enclosing := byte('"')
	switch p.options.Quote {
	case QuoteSingle:
		enclosing = '\''
	case QuoteAuto:
		if strings.Count(content, `"`) > strings.Count(content, `'`) {
			enclosing = '\''
		}
	}
	return makeString(content, enclosing)
}

// unquoteRaw strips the quotes from a raw string literal.
func unquoteRaw(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	return raw[1 : len(raw)-1]
}

// makeString encloses the body of a string literal in the given quote,
// escaping that quote and dropping escapes of the other one. Every other
// escape sequence is kept as written.
func makeString(content string, enclosing byte) string {
	alternate := byte('"')
	if enclosing == '"' {
		alternate = '\''
	}

	var b strings.Builder
	b.Grow(len(content) + 2)
	b.WriteByte(enclosing)
	for i := 0; i < len(content); i++ {
		c := content[i]
		switch {
		case c == '\\' && i+1 < len(content):
			i++
			if content[i] != alternate {
				b.WriteByte('\\')
			}
			b.WriteByte(content[i])
		case c == enclosing:
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(enclosing)
	return b.String()
}

// escapeString escapes a cooked string value for use inside quotes.
func escapeString(value string) string {
	var b strings.Builder
	for _, r := range value {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

var numberRewrites = []struct {
	pattern *regexp.Regexp
	replace string
}{
	// Unnecessary plus signs and zeroes in exponents.
	{regexp.MustCompile(`^([+-]?[\d.]+e)(?:\+|(-))?0*(\d)`), "${1}${2}${3}"},
	// A zero exponent.
	{regexp.MustCompile(`^([+-]?[\d.]+)e[+-]?0+$`), "${1}"},
	// A missing leading zero.
	{regexp.MustCompile(`^([+-])?\.`), "${1}0."},
	// Trailing zeroes in the fraction.
	{regexp.MustCompile(`(\.\d+?)0+(e|$)`), "${1}${2}"},
	// A trailing dot.
	{regexp.MustCompile(`\.(e|$)`), "${1}"},
}

// printNumber normalizes a numeric literal. raw is the literal as written;
// value is used when raw is unavailable.
func printNumber(raw string, value float64) string {
	if raw == "" {
		format := byte('f')
		if math.Abs(value) >= 1e21 {
			format = 'e'
		}
		return strconv.FormatFloat(value, format, -1, 64)
	}

	raw = strings.ToLower(raw)
	if len(raw) > 1 && raw[0] == '0' && strings.ContainsRune("xbo", rune(raw[1])) {
		return raw
	}
	for _, rw := range numberRewrites {
		raw = rw.pattern.ReplaceAllString(raw, rw.replace)
	}
	return raw
}

func printBigInt(raw, value string) string {
	if raw == "" {
		return value + "n"
	}
	return strings.ToLower(raw)
}

// printRegExp prints a regular expression literal with its flags sorted.
func printRegExp(pattern, flags string) string {
	sorted := []byte(flags)
	slices.Sort(sorted)
	return "/" + pattern + "/" + string(sorted)
}

// printTemplateElement prints a raw template segment, whose newlines are
// reproduced exactly.
func printTemplateElement(raw string) dom.Doc {
	lines := strings.Split(raw, "\n")
	docs := make([]dom.Doc, len(lines))
	for i, line := range lines {
		docs[i] = dom.Text(line)
	}
	return dom.Join(dom.Literalline, docs)
}

func printVariance(kind string) string {
	switch kind {
	case "plus":
		return "+"
	case "minus":
		return "-"
	}
	return kind
}
