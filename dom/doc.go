/*
Package dom relates flattened stylesheets to HTML documents.

For every selector of a cssom.FlatSheet, MatchSelectors finds the elements
an HTML parse tree (golang.org/x/net/html) holds for it. Selectors are
compiled with cascadia (https://godoc.org/github.com/andybalholm/cascadia).
Selectors cascadia does not support, e.g. pseudo-elements, are reported
with their compile error instead of matches.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'csskit.dom'
func tracer() tracing.Trace {
	return tracing.Select("csskit.dom")
}
