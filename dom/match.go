package dom

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/npillmayer/csskit/dom/style/cssom"
)

// Match lists the elements of a document selected by a flattened rule.
type Match struct {
	Rule     *cssom.FlatRule
	Elements []*html.Node
	Err      error // selector could not be compiled
}

// Selector returns the selector of the matched rule.
func (m Match) Selector() string {
	return m.Rule.Selector()
}

// MatchSelectors matches every rule of fs against the element tree under doc.
// The result has one entry per rule, in sheet order.
func MatchSelectors(fs *cssom.FlatSheet, doc *html.Node) []Match {
	rules := fs.Rules()
	matches := make([]Match, len(rules))
	for i, r := range rules {
		matches[i].Rule = r
		sel, err := cascadia.Compile(r.Selector())
		if err != nil {
			tracer().Debugf("cannot compile selector %q: %v", r.Selector(), err)
			matches[i].Err = err
			continue
		}
		if doc != nil {
			matches[i].Elements = sel.MatchAll(doc)
		}
	}
	return matches
}

// Unused returns the rules of fs which select no element of doc.
// Rules with selectors which cannot be compiled are not included.
func Unused(fs *cssom.FlatSheet, doc *html.Node) []*cssom.FlatRule {
	var unused []*cssom.FlatRule
	for _, m := range MatchSelectors(fs, doc) {
		if m.Err == nil && len(m.Elements) == 0 {
			unused = append(unused, m.Rule)
		}
	}
	return unused
}
