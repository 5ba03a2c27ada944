/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet,
based on the CSS parser of github.com/aymerick/douceur.

Rules are presented the way a browser's CSSOM serializes them: the selector
list joined by ", ", the declarations as "name: value;" separated by single
spaces. At-rules (@media, @font-face, …) are not style rules and are left
out.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/csskit/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'csskit.adapter'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.adapter")
}

// DefaultType is the stylesheet type if nothing else is known.
const DefaultType = "text/css"

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css  css.Stylesheet
	typ  string
	href string
}

// Option configures the metadata of a wrapped stylesheet.
type Option func(*CSSStyles)

// WithType sets the MIME type of a stylesheet. Default is "text/css".
func WithType(typ string) Option {
	return func(s *CSSStyles) {
		s.typ = typ
	}
}

// WithHref sets the location a stylesheet has been loaded from.
func WithHref(href string) Option {
	return func(s *CSSStyles) {
		s.href = href
	}
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet, opts ...Option) *CSSStyles {
	sheet := &CSSStyles{css: *css, typ: DefaultType}
	for _, opt := range opts {
		opt(sheet)
	}
	return sheet
}

// Parse parses CSS text and wraps the result.
func Parse(text string, opts ...Option) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		tracer().Errorf("cannot parse stylesheet: %v", err)
		return nil, err
	}
	return Wrap(c, opts...), nil
}

// Empty checks if this stylesheet contains any style rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.Rules()) == 0
}

// AppendRules appends rules from another stylesheet.
func (sheet *CSSStyles) AppendRules(other *CSSStyles) {
	sheet.css.Rules = append(sheet.css.Rules, other.css.Rules...)
}

// Rules returns all the style rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("skipping at-rule %s", r.Name)
			continue
		}
		rules = append(rules, Rule{rule: r})
	}
	return rules
}

// Type returns the MIME type of the stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Type() string {
	return sheet.typ
}

// Href returns the location of the stylesheet, if known.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Href() string {
	return sheet.href
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	rule *css.Rule
}

// Selector returns the selectors of the rule, joined by ", ".
// If douceur did not split the prelude, the prelude is returned.
func (r Rule) Selector() string {
	if len(r.rule.Selectors) == 0 {
		return strings.TrimSpace(r.rule.Prelude)
	}
	return strings.Join(r.rule.Selectors, ", ")
}

// Declarations returns the declaration block as text, e.g.
// "color: red; margin-top: 1em !important;". Property names are
// lowercased.
func (r Rule) Declarations() string {
	parts := make([]string, 0, len(r.rule.Declarations))
	for _, d := range r.rule.Declarations {
		var b strings.Builder
		b.WriteString(strings.ToLower(d.Property))
		b.WriteString(": ")
		b.WriteString(d.Value)
		if d.Important {
			b.WriteString(" !important")
		}
		b.WriteByte(';')
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " ")
}

var _ cssom.Rule = Rule{}

// --- HTML documents -------------------------------------------------------

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets, in document order. A type attribute
// of a style element is used as the stylesheet's type.
//
// Style elements with content douceur cannot parse are skipped.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := extractStyles(head)
	css = append(css, extractStyles(body)...)
	return css
}

// StyleSheets returns the embedded stylesheets of an HTML document as a
// cssom.StyleSheetList.
func StyleSheets(htmldoc *html.Node) cssom.Sheets {
	styles := ExtractStyleElements(htmldoc)
	sheets := make(cssom.Sheets, len(styles))
	for i, s := range styles {
		sheets[i] = s
	}
	return sheets
}

// MergedStyleSheet appends the rules of all embedded stylesheets of an HTML
// document to a single stylesheet, in document order. The merged sheet has
// the type of the first <style> element. It is nil if the document has no
// stylesheets.
func MergedStyleSheet(htmldoc *html.Node) *CSSStyles {
	styles := ExtractStyleElements(htmldoc)
	if len(styles) == 0 {
		return nil
	}
	merged := Wrap(&css.Stylesheet{}, WithType(styles[0].Type()))
	for _, s := range styles {
		merged.AppendRules(s)
	}
	tracer().Debugf("merged %d style elements into %d rules", len(styles), len(merged.css.Rules))
	return merged
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var css []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		if ch.DataAtom != atom.Style {
			css = append(css, extractStyles(ch)...)
			continue
		}
		var text string
		if ch.FirstChild != nil {
			text = ch.FirstChild.Data
		}
		opts := []Option{}
		if typ := attr(ch, "type"); typ != "" {
			opts = append(opts, WithType(typ))
		}
		c, err := Parse(text, opts...)
		if err != nil {
			continue
		}
		css = append(css, c)
	}
	return css
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
