package csskit

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/csskit/css"
	"github.com/npillmayer/csskit/css/unitconv"
	"github.com/npillmayer/csskit/dom/style/cssom"
	"github.com/npillmayer/csskit/maybe"
)

// Version is the version of the namespace API.
const Version = "0.0.1"

// Namespace gives access to escaping, flattening and dimensions for a list of
// stylesheets. It does not change after New.
type Namespace struct {
	sheets cssom.StyleSheetList
	conv   css.Converter
}

// Option configures a Namespace.
type Option func(*Namespace)

// WithConverter sets the unit converter used by Convert.
// The default is unitconv.Default().
func WithConverter(conv css.Converter) Option {
	return func(ns *Namespace) {
		if conv != nil {
			ns.conv = conv
		}
	}
}

// New creates a namespace for a list of stylesheets. sheets may be nil.
func New(sheets cssom.StyleSheetList, opts ...Option) *Namespace {
	ns := &Namespace{sheets: sheets, conv: unitconv.Default()}
	for _, opt := range opts {
		opt(ns)
	}
	return ns
}

// Escape escapes text into a CSS identifier. See css.Escape.
func (ns *Namespace) Escape(text string) string {
	return css.Escape(text)
}

// EscapeValue stringifies v and escapes it. nil yields "".
func (ns *Namespace) EscapeValue(v any) string {
	if v == nil {
		return ""
	}
	return css.Escape(toString(v))
}

// Serialize flattens the stylesheet at position index (see cssom.Flatten).
// It returns nil if there is no stylesheet at index.
func (ns *Namespace) Serialize(index int, format bool) *cssom.FlatSheet {
	if ns.sheets == nil || index < 0 || index >= ns.sheets.Len() {
		tracer().Debugf("no stylesheet at index %d", index)
		return nil
	}
	sheet := ns.sheets.Item(index)
	if sheet == nil {
		return nil
	}
	return cssom.Flatten(sheet, format)
}

// SerializeValue is like Serialize, but accepts any value as the index.
// nil means 0, other values are converted to a number and rounded towards
// negative infinity. Values which are not a number mean 0.
func (ns *Namespace) SerializeValue(index any, format bool) *cssom.FlatSheet {
	x := toInteger(index)
	if x < 0 || x >= float64(ns.sheetCount()) {
		tracer().Debugf("no stylesheet at index %v", index)
		return nil
	}
	return ns.Serialize(int(x), format)
}

func (ns *Namespace) sheetCount() int {
	if ns.sheets == nil {
		return 0
	}
	return ns.sheets.Len()
}

// UnknownUnitError is returned by Unit for names not in Units().
type UnknownUnitError struct {
	Name string
}

func (e UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Name)
}

// Unit creates a dimension by unit name, e.g. Unit("px", 5) or
// Unit("kHz", "1.5"). Unit names are case-insensitive.
// A nil magnitude means 0, as does a magnitude which is not a number.
func (ns *Namespace) Unit(name string, magnitude any) (css.Dimen, error) {
	d, ok := css.NewDimen(name, toNumber(magnitude))
	if !ok {
		return css.Dimen{}, UnknownUnitError{Name: name}
	}
	return d, nil
}

// Convert converts d to the target unit with the namespace's converter.
// It returns Nothing if the conversion is not possible.
func (ns *Namespace) Convert(d css.Dimen, target string) maybe.Maybe[css.Dimen] {
	return d.To(target, ns.conv)
}

// Units returns the names of all units known to Unit.
func (ns *Namespace) Units() []string {
	return css.Units()
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return css.FormatNumber(x)
	case float32:
		return css.FormatNumber(float64(x))
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
