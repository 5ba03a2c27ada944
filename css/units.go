package css

import "strings"

// Unit is the tag of a dimension, always in lowercase.
type Unit string

// The fixed set of unit tags dimensions may be constructed for.
const (
	UnitNumber  Unit = "number"
	UnitPercent Unit = "percent"
	UnitEm      Unit = "em"
	UnitEx      Unit = "ex"
	UnitCh      Unit = "ch"
	UnitRem     Unit = "rem"
	UnitVw      Unit = "vw"
	UnitVh      Unit = "vh"
	UnitVmin    Unit = "vmin"
	UnitVmax    Unit = "vmax"
	UnitCm      Unit = "cm"
	UnitMm      Unit = "mm"
	UnitIn      Unit = "in"
	UnitPt      Unit = "pt"
	UnitPc      Unit = "pc"
	UnitPx      Unit = "px"
	UnitQ       Unit = "q"
	UnitDeg     Unit = "deg"
	UnitGrad    Unit = "grad"
	UnitRad     Unit = "rad"
	UnitTurn    Unit = "turn"
	UnitS       Unit = "s"
	UnitMs      Unit = "ms"
	UnitHz      Unit = "hz"
	UnitKHz     Unit = "khz"
	UnitDpi     Unit = "dpi"
	UnitDpcm    Unit = "dpcm"
	UnitDppx    Unit = "dppx"
	UnitFr      Unit = "fr"
)

// unitNames is the public spelling of the unit set, in declaration order.
var unitNames = []string{
	"number", "percent", "em", "ex", "ch",
	"rem", "vw", "vh", "vmin", "vmax", "cm",
	"mm", "in", "pt", "pc", "px", "Q", "deg",
	"grad", "rad", "turn", "s", "ms", "Hz", "kHz",
	"dpi", "dpcm", "dppx", "fr",
}

// delegateKeys lists the tags a converter expects in mixed case.
var delegateKeys = map[Unit]string{
	UnitQ:   "Q",
	UnitHz:  "Hz",
	UnitKHz: "kHz",
}

var knownUnits = func() map[Unit]bool {
	m := make(map[Unit]bool, len(unitNames))
	for _, n := range unitNames {
		m[Unit(strings.ToLower(n))] = true
	}
	return m
}()

// Units returns the names of all units dimensions may be constructed for,
// e.g. "px", "Q", "kHz".
func Units() []string {
	names := make([]string, len(unitNames))
	copy(names, unitNames)
	return names
}

// ParseUnit finds the unit for a name, ignoring case.
func ParseUnit(name string) (Unit, bool) {
	u := Unit(strings.ToLower(name))
	return u, knownUnits[u]
}

// Key returns the unit name a Converter expects for u. This is the unit tag
// itself, except for q, hz and khz, which are spelled Q, Hz and kHz.
func (u Unit) Key() string {
	if k, ok := delegateKeys[u]; ok {
		return k
	}
	return string(u)
}

func (u Unit) String() string {
	return string(u)
}
