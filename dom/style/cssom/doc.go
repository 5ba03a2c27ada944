/*
Package cssom provides an abstraction of CSS style sheets and flattens
them into structural snapshots.

Overview

Tools inspecting style sheets (debuggers, linters, documentation
generators) often want a quick answer to "what does this style sheet
say about selector X?". Browsers answer this with the live CSSOM; we answer it
with a flattened snapshot.

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
This package does not implement it. It merely defines the slice of it
our tools need: style sheets as ordered lists of rules, where every rule
consists of the text of its selector list and the text of its declaration
block. CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. Concrete implementations may be found in sub-packages
(douceuradapter, tdewolffadapter), or clients may use the in-memory
types Sheet and Sheets.

Flattening

Flatten takes a style sheet and produces a snapshot of its structure:
one entry per individual selector, holding all properties set for that
selector, with later declarations overriding earlier ones. Selector groups
("h1, h2") are split up. A flattened style sheet is immutable and may
be shared freely.

    sheet := cssom.NewSheet("text/css", "", cssom.NewRule("a, b", "color: red;"))
    flat := cssom.Flatten(sheet, false)
    fmt.Println(flat.Rule(0).CSSText())   // a { color: red; }

Flattening is not the CSS cascade: specificity, importance and the order of
different selectors play no role.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'csskit.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.cssom")
}
