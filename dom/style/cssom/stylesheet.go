package cssom

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// tools working on them, clients provide a concrete implementation of
// this interface (e.g., see package douceuradapter).
//
// Rules returns the style rules of a sheet in source order. Rules other than
// style rules (@media, @font-face, …) are not part of the list.
//
// Type and Href mirror the corresponding attributes of the CSSOM's
// StyleSheet: the MIME type ("text/css") and the location of the sheet, if
// it has been loaded from an external resource.
//
// See interface Rule.
type StyleSheet interface {
	Empty() bool   // does this stylesheet contain any rules?
	Rules() []Rule // all the style rules of a stylesheet
	Type() string  // type of the stylesheet, usually "text/css"
	Href() string  // location of the stylesheet or ""
}

// Rule is the type stylesheets consists of.
//
// Selector returns the selector list as text, e.g. "h1, h2". Declarations
// returns the declaration block without braces, in the shape the CSSOM
// serializes it, e.g. "color: red; font-size: 10px;".
//
// See interface StyleSheet.
type Rule interface {
	Selector() string     // the prelude / selectors of the rule
	Declarations() string // the text of the declaration block
}

// StyleSheetList is an ordered collection of stylesheets, e.g. the
// stylesheets of an HTML document.
type StyleSheetList interface {
	Len() int
	Item(int) StyleSheet // stylesheet at position i or nil
}

// --- In-memory implementations ---------------------------------------------

// Sheets is a StyleSheetList backed by a slice.
type Sheets []StyleSheet

// Len returns the number of stylesheets.
func (s Sheets) Len() int {
	return len(s)
}

// Item returns the stylesheet at position i, or nil if i is out of range.
func (s Sheets) Item(i int) StyleSheet {
	if i < 0 || i >= len(s) {
		return nil
	}
	return s[i]
}

var _ StyleSheetList = Sheets{}

// Sheet is a StyleSheet held in memory.
type Sheet struct {
	typ   string
	href  string
	rules []Rule
}

// NewSheet creates a stylesheet from a list of rules.
func NewSheet(typ, href string, rules ...Rule) *Sheet {
	return &Sheet{typ: typ, href: href, rules: rules}
}

// Empty checks if this stylesheet contains any rules.
func (sheet *Sheet) Empty() bool {
	return len(sheet.rules) == 0
}

// Rules returns all the rules of a stylesheet.
func (sheet *Sheet) Rules() []Rule {
	rules := make([]Rule, len(sheet.rules))
	copy(rules, sheet.rules)
	return rules
}

// Type returns the MIME type of the stylesheet.
func (sheet *Sheet) Type() string {
	return sheet.typ
}

// Href returns the location of the stylesheet.
func (sheet *Sheet) Href() string {
	return sheet.href
}

// Append adds rules at the end of the stylesheet.
func (sheet *Sheet) Append(rules ...Rule) {
	sheet.rules = append(sheet.rules, rules...)
}

var _ StyleSheet = &Sheet{}

// RuleText is a Rule held in memory.
type RuleText struct {
	selector     string
	declarations string
}

// NewRule creates a rule from the text of a selector list and the text of a
// declaration block.
func NewRule(selector, declarations string) RuleText {
	return RuleText{selector: selector, declarations: declarations}
}

// Selector returns the selector list of the rule.
func (r RuleText) Selector() string {
	return r.selector
}

// Declarations returns the declaration block of the rule.
func (r RuleText) Declarations() string {
	return r.declarations
}

func (r RuleText) String() string {
	return r.selector + " { " + r.declarations + " }"
}

var _ Rule = RuleText{}
