package css

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders x the way CSSOM hosts print numbers: the shortest
// decimal that reads back as x, in positional notation for magnitudes
// within [1e-6, 1e21) and in exponential notation ("1e+21", "1.5e-7")
// otherwise. Negative zero prints as "0".
func FormatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}
	if a := math.Abs(x); a >= 1e-6 && a < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	s := strconv.FormatFloat(x, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}
