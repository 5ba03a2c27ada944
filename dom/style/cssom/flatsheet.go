package cssom

import (
	"strings"

	"github.com/npillmayer/csskit/dom/style"
)

// FlatSheet is the flattened snapshot of a stylesheet, as created by Flatten.
// It is immutable: all accessors return copies.
type FlatSheet struct {
	source StyleSheet
	rules  []*FlatRule
}

// Len returns the number of distinct selectors.
func (fs *FlatSheet) Len() int {
	return len(fs.rules)
}

// Rule returns the rule at position i, or nil if i is out of range.
func (fs *FlatSheet) Rule(i int) *FlatRule {
	if i < 0 || i >= len(fs.rules) {
		return nil
	}
	return fs.rules[i]
}

// Rules returns the flattened rules in order of first appearance of their
// selectors.
func (fs *FlatSheet) Rules() []*FlatRule {
	rules := make([]*FlatRule, len(fs.rules))
	copy(rules, fs.rules)
	return rules
}

// Lookup finds the rule for a selector.
func (fs *FlatSheet) Lookup(selector string) (*FlatRule, bool) {
	for _, r := range fs.rules {
		if r.selector == selector {
			return r, true
		}
	}
	return nil, false
}

// Type returns the type of the source stylesheet. The value is read from the
// source on each call.
func (fs *FlatSheet) Type() string {
	if fs.source == nil {
		return ""
	}
	return fs.source.Type()
}

// Href returns the location of the source stylesheet. The value is read from
// the source on each call.
func (fs *FlatSheet) Href() string {
	if fs.source == nil {
		return ""
	}
	return fs.source.Href()
}

// String returns the CSS text of all rules, one rule per line (or block, if
// formatted).
func (fs *FlatSheet) String() string {
	texts := make([]string, len(fs.rules))
	for i, r := range fs.rules {
		texts[i] = r.cssText
	}
	return strings.Join(texts, "\n")
}

// --- Flattened rules -------------------------------------------------------

// FlatRule combines every property set for a single selector.
// Property names are in camelCase ("fontSize"), values are raw text.
type FlatRule struct {
	selector string
	names    []string
	props    map[string]style.Property
	cssText  string
}

// Selector returns the (single) selector of the rule.
func (r *FlatRule) Selector() string {
	return r.selector
}

// Names returns the camelCase property names in order of first appearance.
func (r *FlatRule) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Len returns the number of properties.
func (r *FlatRule) Len() int {
	return len(r.names)
}

// Value returns the value of a property, given its camelCase name.
func (r *FlatRule) Value(name string) (style.Property, bool) {
	p, ok := r.props[name]
	return p, ok
}

// Properties returns name/value pairs in the order of Names.
func (r *FlatRule) Properties() []style.KeyValue {
	kv := make([]style.KeyValue, len(r.names))
	for i, n := range r.names {
		kv[i] = style.KeyValue{Key: n, Value: r.props[n]}
	}
	return kv
}

// CSSText returns the rendered rule.
func (r *FlatRule) CSSText() string {
	return r.cssText
}

func (r *FlatRule) String() string {
	return r.cssText
}
