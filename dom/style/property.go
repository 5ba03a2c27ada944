/*
Package style holds the raw textual building blocks for CSS styling:
property values and the two spellings of property names.

CSS spells property names in kebab-case ("font-size"); the CSSOM exposes
them in camelCase ("fontSize") on style declaration objects. Flattened
stylesheets key their properties by the camelCase form and render the
kebab-case form.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"fmt"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. Values are kept exactly as found in
// the declaration text; no normalization takes place.
type Property string

func (p Property) String() string {
	return string(p)
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return fmt.Sprintf("%s: %s", kv.Key, kv.Value)
}

// --- Property names ---------------------------------------------------

// CamelCase converts a kebab-case property key to the CSSOM attribute
// spelling. Every hyphen followed by a lowercase ASCII letter is dropped and
// the letter is upper-cased:
//
//     CamelCase("border-top-width") => "borderTopWidth"
//
// Hyphens not followed by a lowercase letter are kept.
func CamelCase(key string) string {
	if strings.IndexByte(key, '-') < 0 {
		return key
	}
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '-' && i+1 < len(key) && isLower(key[i+1]) {
			b.WriteByte(key[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// KebabCase is the inverse of CamelCase: each uppercase ASCII letter is
// replaced by a hyphen and its lowercase form.
//
//     KebabCase("borderTopWidth") => "border-top-width"
func KebabCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
			b.WriteByte(c - 'A' + 'a')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}
