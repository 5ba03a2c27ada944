/*
Package unitconv implements a css.Converter for the units of the CSS
Values and Units module.

Conversion is possible between units of the same kind:

   length       px, in, cm, mm, Q, pt, pc   (1in = 96px = 2.54cm = 72pt)
   angle        deg, grad, rad, turn
   time         s, ms
   frequency    Hz, kHz
   resolution   dppx, dpi, dpcm             (1dppx = 96dpi)

Font- and viewport-relative lengths (em, rem, vw, …), as well as number,
percent and fr, depend on a rendering context this package does not have.
They convert to themselves only.

Absolute lengths may be bridged to tyse design units with ToDU and FromDU.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package unitconv

import (
	"math"
	"strings"

	"github.com/npillmayer/csskit/css"
	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/result"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/core/dimen"
)

// tracer traces with key 'csskit.unitconv'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.unitconv")
}

type kind int

const (
	length kind = iota
	angle
	duration
	frequency
	resolution
	contextual // em, vw, %, …: each one is a kind of its own
)

// factor is the size of one unit in terms of the canonical unit of its kind.
type factor struct {
	kind  kind
	scale float64
}

var factors = map[string]factor{
	"px":   {length, 1},
	"in":   {length, 96},
	"cm":   {length, 96 / 2.54},
	"mm":   {length, 96 / 25.4},
	"q":    {length, 96 / 101.6},
	"pt":   {length, 96.0 / 72},
	"pc":   {length, 16},
	"deg":  {angle, 1},
	"grad": {angle, 0.9},
	"rad":  {angle, 180 / math.Pi},
	"turn": {angle, 360},
	"s":    {duration, 1},
	"ms":   {duration, 0.001},
	"hz":   {frequency, 1},
	"khz":  {frequency, 1000},
	"dppx": {resolution, 1},
	"dpi":  {resolution, 1.0 / 96},
	"dpcm": {resolution, 2.54 / 96},
}

var contextualUnits = map[string]bool{
	"number": true, "percent": true, "fr": true,
	"em": true, "ex": true, "ch": true, "rem": true,
	"vw": true, "vh": true, "vmin": true, "vmax": true,
}

// Converter converts between CSS units. The zero value is ready to use.
type Converter struct{}

var _ css.Converter = Converter{}

// Default returns the standard converter.
func Default() Converter {
	return Converter{}
}

// Convert converts value from unit from to unit to. Unit names are
// matched case-insensitively.
func (Converter) Convert(value float64, from, to string) result.Result[float64] {
	f, t := strings.ToLower(from), strings.ToLower(to)
	if contextualUnits[f] || contextualUnits[t] {
		if f == t {
			return result.Ok(value)
		}
		return fail(from, to, "unit depends on rendering context")
	}
	ff, ok := factors[f]
	if !ok {
		return fail(from, to, "unknown unit "+from)
	}
	tf, ok := factors[t]
	if !ok {
		return fail(from, to, "unknown unit "+to)
	}
	if ff.kind != tf.kind {
		return fail(from, to, "incompatible kinds of units")
	}
	if f == t {
		return result.Ok(value)
	}
	return result.Ok(value * ff.scale / tf.scale)
}

func fail(from, to, reason string) result.Result[float64] {
	tracer().Debugf("unit conversion %s → %s failed: %s", from, to, reason)
	return result.Err[float64](&css.ConversionError{From: from, To: to, Reason: reason})
}

// --- Design units ----------------------------------------------------------

// ToDU converts an absolute length to tyse design units, going through
// points. Other dimensions yield Nothing.
func ToDU(d css.Dimen) maybe.Maybe[dimen.DU] {
	return maybe.Map(func(pt css.Dimen) dimen.DU {
		return dimen.DU(math.Round(pt.Magnitude() * float64(dimen.PT)))
	}, d.To("pt", Default()))
}

// FromDU creates a length in points from tyse design units.
func FromDU(du dimen.DU) css.Dimen {
	return css.Pt(float64(du) / float64(dimen.PT))
}
