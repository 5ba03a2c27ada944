package css_test

import (
	"math"
	"testing"

	"github.com/npillmayer/csskit/css"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		x   float64
		out string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{5, "5"},
		{-3.5, "-3.5"},
		{0.1, "0.1"},
		{1.0 / 3, "0.3333333333333333"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
		{123456789, "123456789"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, c := range cases {
		if s := css.FormatNumber(c.x); s != c.out {
			t.Errorf("expected FormatNumber(%v) to be %q, is %q", c.x, c.out, s)
		}
	}
}
