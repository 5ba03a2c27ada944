package csskit

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var decimalPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// toNumber converts a value to a number, the way a script host coerces
// values with a unary '+'. nil is 0. Values without a numeric reading are
// NaN.
func toNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		return stringToNumber(x)
	}
	return math.NaN()
}

// toInteger converts a value to a number and rounds it towards negative
// infinity. NaN is 0.
func toInteger(v any) float64 {
	x := toNumber(v)
	if math.IsNaN(x) {
		return 0
	}
	return math.Floor(x)
}

func stringToNumber(s string) float64 {
	s = strings.TrimFunc(s, isSpace)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return radixToNumber(s[2:], 16)
		case 'o', 'O':
			return radixToNumber(s[2:], 8)
		case 'b', 'B':
			return radixToNumber(s[2:], 2)
		}
	}
	if !decimalPattern.MatchString(s) {
		return math.NaN()
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil && !math.IsInf(x, 0) {
		return math.NaN()
	}
	return x
}

// radixToNumber reads unsigned digits of the given base. Large values lose
// precision instead of overflowing.
func radixToNumber(digits string, base int) float64 {
	var x float64
	for _, r := range digits {
		d, err := strconv.ParseUint(string(r), base, 8)
		if err != nil {
			return math.NaN()
		}
		x = x*float64(base) + float64(d)
	}
	return x
}

// isSpace reports white space and line terminators as a script host trims
// them from numeric strings.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\uFEFF' || unicode.IsSpace(r)
}
