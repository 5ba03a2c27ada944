package css

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/result"
)

// Dimen is a CSS dimension: a magnitude tagged with a unit, e.g. 5px or
// 0.25turn. Dimens are immutable values; conversion creates a new Dimen.
type Dimen struct {
	magnitude float64
	unit      Unit
}

// Converter is the capability to convert magnitudes between units.
// Unit names are given in the spelling returned by Unit.Key (from) and as
// requested by the client (to).
//
// A Converter reports unsupported or incompatible units as an Err result,
// preferably carrying a *ConversionError.
type Converter interface {
	Convert(value float64, from, to string) result.Result[float64]
}

// ConverterFunc lets an ordinary function act as a Converter.
type ConverterFunc func(value float64, from, to string) result.Result[float64]

// Convert calls f(value, from, to).
func (f ConverterFunc) Convert(value float64, from, to string) result.Result[float64] {
	return f(value, from, to)
}

// ConversionError is reported by converters for units they cannot convert.
type ConversionError struct {
	From, To string
	Reason   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s: %s", e.From, e.To, e.Reason)
}

func newDimen(x float64, u Unit) Dimen {
	if math.IsNaN(x) {
		x = 0
	}
	return Dimen{magnitude: x, unit: u}
}

// NewDimen creates a dimension for a unit given by name, ignoring case.
// It returns false if the unit is not one of the units listed by Units.
// A magnitude of NaN is replaced by 0.
func NewDimen(unit string, x float64) (Dimen, bool) {
	u, ok := ParseUnit(unit)
	if !ok {
		return Dimen{}, false
	}
	return newDimen(x, u), true
}

// Magnitude returns the numeric part of d.
func (d Dimen) Magnitude() float64 {
	return d.magnitude
}

// Unit returns the unit tag of d.
func (d Dimen) Unit() Unit {
	return d.unit
}

// String renders d as magnitude immediately followed by the unit tag,
// e.g. "5px", "0.5em", "3number".
func (d Dimen) String() string {
	return FormatNumber(d.magnitude) + string(d.unit)
}

// To converts d to unit target using conv. It returns Nothing if conv is nil,
// reports an error, or panics; conversion failures never propagate
// to the caller.
//
// The unit of the result is target in lowercase.
func (d Dimen) To(target string, conv Converter) (m maybe.Maybe[Dimen]) {
	if conv == nil {
		return maybe.Nothing[Dimen]()
	}
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("unit converter panicked for %s → %s: %v", d, target, r)
			m = maybe.Nothing[Dimen]()
		}
	}()
	var x float64
	var err error
	switch c := conv.Convert(d.magnitude, d.unit.Key(), target).Match(); c {
	case c.Ok(&x):
		return maybe.Just(Dimen{magnitude: x, unit: Unit(strings.ToLower(target))})
	case c.Err(&err):
		tracer().Debugf("cannot convert %s to %s: %v", d, target, err)
	}
	return maybe.Nothing[Dimen]()
}

// --- Constructors ----------------------------------------------------------

// Number creates a dimension-less number.
func Number(x float64) Dimen { return newDimen(x, UnitNumber) }

// Percent creates a percentage.
func Percent(x float64) Dimen { return newDimen(x, UnitPercent) }

// Em creates a font-relative length.
func Em(x float64) Dimen { return newDimen(x, UnitEm) }

func Ex(x float64) Dimen   { return newDimen(x, UnitEx) }
func Ch(x float64) Dimen   { return newDimen(x, UnitCh) }
func Rem(x float64) Dimen  { return newDimen(x, UnitRem) }
func Vw(x float64) Dimen   { return newDimen(x, UnitVw) }
func Vh(x float64) Dimen   { return newDimen(x, UnitVh) }
func Vmin(x float64) Dimen { return newDimen(x, UnitVmin) }
func Vmax(x float64) Dimen { return newDimen(x, UnitVmax) }

// Absolute lengths.
func Cm(x float64) Dimen { return newDimen(x, UnitCm) }
func Mm(x float64) Dimen { return newDimen(x, UnitMm) }
func In(x float64) Dimen { return newDimen(x, UnitIn) }
func Pt(x float64) Dimen { return newDimen(x, UnitPt) }
func Pc(x float64) Dimen { return newDimen(x, UnitPc) }
func Px(x float64) Dimen { return newDimen(x, UnitPx) }

// Q creates a length in quarter-millimeters.
func Q(x float64) Dimen { return newDimen(x, UnitQ) }

// Angles.
func Deg(x float64) Dimen  { return newDimen(x, UnitDeg) }
func Grad(x float64) Dimen { return newDimen(x, UnitGrad) }
func Rad(x float64) Dimen  { return newDimen(x, UnitRad) }
func Turn(x float64) Dimen { return newDimen(x, UnitTurn) }

// Durations.
func S(x float64) Dimen  { return newDimen(x, UnitS) }
func Ms(x float64) Dimen { return newDimen(x, UnitMs) }

// Frequencies.
func Hz(x float64) Dimen  { return newDimen(x, UnitHz) }
func KHz(x float64) Dimen { return newDimen(x, UnitKHz) }

// Resolutions.
func Dpi(x float64) Dimen  { return newDimen(x, UnitDpi) }
func Dpcm(x float64) Dimen { return newDimen(x, UnitDpcm) }
func Dppx(x float64) Dimen { return newDimen(x, UnitDppx) }

// Fr creates a fraction of the free space in a grid container.
func Fr(x float64) Dimen { return newDimen(x, UnitFr) }
