package tdewolffadapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/csskit/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.adapter")
	defer teardown()
	//
	sheet := Parse([]byte("a, b { color: red; }\nb { color: blue; font-size: 10px; }"), "site.css")
	assert.Equal(t, "text/css", sheet.Type())
	assert.Equal(t, "site.css", sheet.Href())
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "a, b", rules[0].Selector())
	assert.Equal(t, "color: red;", rules[0].Declarations())
	assert.Equal(t, "b", rules[1].Selector())
	assert.Equal(t, "color: blue; font-size: 10px;", rules[1].Declarations())
}

func TestParseSelectorWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.adapter")
	defer teardown()
	//
	for input, expected := range map[string]string{
		"div p, ul > li.x":        "div p, ul > li.x",
		"ul>li":                   "ul > li",
		"a+b ~ c":                 "a + b ~ c",
		"h1,h2 ,  h3":             "h1, h2, h3",
		"div    p":                "div p",
		"a[href]:not(.x) > b":     "a[href]:not(.x) > b",
		"li:nth-child(2n+1)":      "li:nth-child(2n+1)",
		"p:is(.a,.b)::first-line": "p:is(.a, .b)::first-line",
	} {
		rules := Parse([]byte(input+" { color: red; }"), "").Rules()
		require.Len(t, rules, 1, input)
		assert.Equal(t, expected, rules[0].Selector(), input)
	}
}

func TestParseCombinatorsAndFlatten(t *testing.T) {
	sheet := Parse([]byte("div p, ul > li.x { color: red; }"), "")
	flat := cssom.Flatten(sheet, false)
	require.Equal(t, 2, flat.Len())
	assert.Equal(t, "div p", flat.Rule(0).Selector())
	assert.Equal(t, "ul > li.x", flat.Rule(1).Selector())
}

func TestParseSkipsAtRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.adapter")
	defer teardown()
	//
	text := `@import url(x.css);
@media print { p { color: red; } div { margin: 0; } }
em { font-style: italic; }
@font-face { font-family: x; src: url(x.woff); }
strong { font-weight: bold; }`
	rules := Parse([]byte(text), "").Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "em", rules[0].Selector())
	assert.Equal(t, "strong", rules[1].Selector())
}

func TestParseValues(t *testing.T) {
	sheet := ParseReader(strings.NewReader("p { MARGIN: 0   auto; font-family: a,  b; }"), "")
	rules := sheet.Rules()
	require.Len(t, rules, 1)
	decls := rules[0].Declarations()
	assert.True(t, strings.HasPrefix(decls, "margin: 0 auto;"), decls)
	assert.Contains(t, decls, "font-family: a")
}

func TestParseEmpty(t *testing.T) {
	assert.True(t, Parse(nil, "").Empty())
	assert.True(t, Parse([]byte("  /* nothing */ "), "").Empty())
}

func TestParseAndFlatten(t *testing.T) {
	sheet := Parse([]byte("a, b { color: red; } b { color: blue; font-size: 10px; }"), "")
	flat := cssom.Flatten(sheet, false)
	require.Equal(t, 2, flat.Len())
	assert.Equal(t, "a { color: red; }", flat.Rule(0).CSSText())
	assert.Equal(t, "b { color: blue; font-size: 10px; }", flat.Rule(1).CSSText())
}
