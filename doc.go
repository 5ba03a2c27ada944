/*
Package csskit bundles helpers for CSS stylesheets into a single namespace.

A Namespace is created once from a list of stylesheets (e.g., the
stylesheets of an HTML document) and offers

    - escaping of arbitrary text into a CSS identifier (Escape)
    - a flattened snapshot of a stylesheet, by index (Serialize)
    - dimensioned values by unit name (Unit) and their conversion (Convert)

Operations accepting dynamically typed input (EscapeValue, SerializeValue,
Unit) coerce it the way a scripting host would: nil counts as absent,
strings are read as numbers, values which are not numbers count as 0.

    ns := csskit.New(douceuradapter.StyleSheets(htmldoc))
    if flat := ns.Serialize(0, true); flat != nil {
        fmt.Println(flat)
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package csskit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csskit'.
func tracer() tracing.Trace {
	return tracing.Select("csskit")
}
