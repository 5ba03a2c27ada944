/*
Package css provides functionality for CSS values and identifiers.

Identifiers

Escape serializes arbitrary text as a CSS identifier, following the
"serialize an identifier" algorithm of CSSOM
(https://drafts.csswg.org/cssom/#serialize-an-identifier). The result may be
used verbatim within a selector, e.g. for class names or ids taken from
user input.

Dimensions

Dimen pairs a numeric magnitude with a CSS unit tag. There is one
constructor per unit (Px, Em, Deg, …). Converting a dimension
to a different unit is delegated to a Converter; this package does not know
any conversion factors. A default converter is located in sub-package
unitconv.

Status

The API is small and expected to stay stable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csskit.css'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.css")
}
