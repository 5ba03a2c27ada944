package cssom

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/csskit/dom/style"
)

// declarationPattern matches "name:value;" in whitespace-free declaration
// text. Names are lowercase words joined by single hyphens, values run up to
// the next ':' or ';'.
var declarationPattern = regexp.MustCompile(`([a-z]+(?:-[a-z]+)*):([^:;]+);`)

// Flatten creates a structural snapshot of a stylesheet.
//
// Every selector list of the sheet is split into its individual selectors.
// For each distinct selector the result holds one rule, in order of first
// appearance, collecting the properties of every raw rule mentioning it.
// Properties set more than once keep the last value, but their first
// position.
//
// If format is true, the CSS text of each rule puts every declaration on a
// line of its own, indented by four spaces. Otherwise declarations are
// separated by a single space.
//
// Declaration text not matching "name: value;" is silently dropped. This
// affects custom properties and values containing ':'. Vendor prefixed
// names lose their leading hyphen.
func Flatten(sheet StyleSheet, format bool) *FlatSheet {
	fs := &FlatSheet{source: sheet}
	if sheet == nil {
		return fs
	}
	var builders []*ruleBuilder
	index := make(map[string]*ruleBuilder)
	rules := sheet.Rules()
	for _, rule := range rules {
		selectors := normalizeSelectors(rule.Selector())
		decls := stripSpace(rule.Declarations())
		matches := declarationPattern.FindAllStringSubmatch(decls, -1)
		for _, sel := range uniqueSelectors(selectors) {
			b, ok := index[sel]
			if !ok {
				b = newRuleBuilder(sel)
				index[sel] = b
				builders = append(builders, b)
			}
			for _, m := range matches {
				b.set(style.CamelCase(m[1]), style.Property(m[2]))
			}
		}
	}
	fs.rules = make([]*FlatRule, len(builders))
	for i, b := range builders {
		fs.rules[i] = b.freeze(format)
	}
	tracer().Debugf("flattened %d rules into %d selectors", len(rules), len(fs.rules))
	return fs
}

// ruleBuilder collects the properties of a selector until it is frozen into
// a FlatRule.
type ruleBuilder struct {
	selector string
	names    []string
	props    map[string]style.Property
}

func newRuleBuilder(selector string) *ruleBuilder {
	return &ruleBuilder{
		selector: selector,
		props:    make(map[string]style.Property),
	}
}

func (b *ruleBuilder) set(name string, value style.Property) {
	if _, ok := b.props[name]; !ok {
		b.names = append(b.names, name)
	}
	b.props[name] = value
}

func (b *ruleBuilder) freeze(format bool) *FlatRule {
	return &FlatRule{
		selector: b.selector,
		names:    b.names,
		props:    b.props,
		cssText:  renderRule(b.selector, b.names, b.props, format),
	}
}

// renderRule prints a rule as
//
//     selector {<sep><indent>name: value;<sep>…}
//
// with sep = newline and indent = 4 spaces for formatted output,
// sep = single space and no indent otherwise.
func renderRule(selector string, names []string, props map[string]style.Property, format bool) string {
	sep, indent := " ", ""
	if format {
		sep, indent = "\n", "    "
	}
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {")
	b.WriteString(sep)
	for _, name := range names {
		b.WriteString(indent)
		b.WriteString(style.KebabCase(name))
		b.WriteString(": ")
		b.WriteString(string(props[name]))
		b.WriteByte(';')
		b.WriteString(sep)
	}
	b.WriteByte('}')
	return b.String()
}

// --- Text normalization ----------------------------------------------------

// normalizeSelectors removes one whitespace character following each comma
// and splits the selector list at the commas.
func normalizeSelectors(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		r, w := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+w])
		i += w
		if r == ',' && i < len(text) {
			if next, nw := utf8.DecodeRuneInString(text[i:]); isSpace(next) {
				i += nw
			}
		}
	}
	return strings.Split(b.String(), ",")
}

// uniqueSelectors removes duplicates, keeping the first occurrence.
func uniqueSelectors(selectors []string) []string {
	seen := make(map[string]bool, len(selectors))
	unique := selectors[:0]
	for _, s := range selectors {
		if !seen[s] {
			seen[s] = true
			unique = append(unique, s)
		}
	}
	return unique
}

// stripSpace deletes all whitespace from text.
func stripSpace(text string) string {
	return strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, text)
}

// isSpace reports whitespace as the CSSOM hosts' regular expressions do:
// Unicode spaces and line terminators plus U+FEFF, but not U+0085.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\uFEFF' || unicode.IsSpace(r)
}
