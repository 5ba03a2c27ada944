package csskit

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/csskit/css"
	"github.com/npillmayer/csskit/dom/style/cssom"
	"github.com/npillmayer/csskit/result"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namespace() *Namespace {
	first := cssom.NewSheet("text/css", "first.css",
		cssom.NewRule("a, b", "color: red;"),
		cssom.NewRule("b", "color: blue; font-size: 10px;"),
	)
	second := cssom.NewSheet("text/css", "second.css",
		cssom.NewRule("p", "margin: 0;"),
	)
	return New(cssom.Sheets{first, second})
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "0.0.1", Version)
}

func TestSerialize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit")
	defer teardown()
	//
	ns := namespace()
	flat := ns.Serialize(0, false)
	require.NotNil(t, flat)
	assert.Equal(t, "first.css", flat.Href())
	assert.Equal(t, "a { color: red; }\nb { color: blue; font-size: 10px; }", flat.String())
	assert.Equal(t, "second.css", ns.Serialize(1, true).Href())
	assert.Nil(t, ns.Serialize(-1, false))
	assert.Nil(t, ns.Serialize(999, false))
	assert.Nil(t, New(nil).Serialize(0, false))
}

func TestSerializeValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit")
	defer teardown()
	//
	ns := namespace()
	cases := []struct {
		index any
		href  string
	}{
		{nil, "first.css"},
		{0, "first.css"},
		{1, "second.css"},
		{1.9, "second.css"},
		{"1", "second.css"},
		{" 1 ", "second.css"},
		{"", "first.css"},
		{"abc", "first.css"},
		{math.NaN(), "first.css"},
		{true, "second.css"},
		{false, "first.css"},
		{-1, ""},
		{-0.5, ""},
		{999, ""},
		{math.Inf(1), ""},
		{"Infinity", ""},
		{"0x1", "second.css"},
	}
	for _, c := range cases {
		flat := ns.SerializeValue(c.index, false)
		if c.href == "" {
			assert.Nil(t, flat, "index %#v", c.index)
			continue
		}
		if assert.NotNil(t, flat, "index %#v", c.index) {
			assert.Equal(t, c.href, flat.Href(), "index %#v", c.index)
		}
	}
}

func TestEscape(t *testing.T) {
	ns := New(nil)
	assert.Equal(t, `\31 23`, ns.Escape("123"))
	assert.Equal(t, "", ns.EscapeValue(nil))
	assert.Equal(t, "", ns.EscapeValue(""))
	assert.Equal(t, `\31 23`, ns.EscapeValue(123))
	assert.Equal(t, `\31 \.5`, ns.EscapeValue(1.5))
	assert.Equal(t, "true", ns.EscapeValue(true))
	assert.Equal(t, `\35 px`, ns.EscapeValue(css.Px(5)))
}

func TestUnit(t *testing.T) {
	ns := New(nil)
	cases := []struct {
		name      string
		magnitude any
		text      string
	}{
		{"px", 5, "5px"},
		{"px", nil, "0px"},
		{"em", "1.5", "1.5em"},
		{"em", "  2e1\n", "20em"},
		{"Q", 4, "4q"},
		{"kHz", "0x10", "16khz"},
		{"DEG", "abc", "0deg"},
		{"s", math.NaN(), "0s"},
		{"turn", true, "1turn"},
		{"percent", int64(50), "50percent"},
		{"ms", "1.", "1ms"},
		{"ms", ".5", "0.5ms"},
		{"ms", "1e", "0ms"},
		{"ms", "1_000", "0ms"},
	}
	for _, c := range cases {
		d, err := ns.Unit(c.name, c.magnitude)
		require.NoError(t, err)
		assert.Equal(t, c.text, d.String(), "%s(%#v)", c.name, c.magnitude)
	}
	_, err := ns.Unit("furlong", 1)
	var unknown UnknownUnitError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "furlong", unknown.Name)
	assert.Len(t, ns.Units(), 29)
}

func TestConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit")
	defer teardown()
	//
	ns := New(nil)
	px, _ := ns.Unit("px", 96)
	var d css.Dimen
	switch m := ns.Convert(px, "in").Match(); m {
	case m.Just(&d):
		assert.Equal(t, "1in", d.String())
	case m.Nothing():
		t.Errorf("expected 96px to convert to inches")
	}
	assert.False(t, ns.Convert(px, "deg").IsJust())
	assert.False(t, ns.Convert(px, "furlong").IsJust())
}

func TestConvertWithConverter(t *testing.T) {
	calls := 0
	conv := css.ConverterFunc(func(x float64, from, to string) result.Result[float64] {
		calls++
		assert.Equal(t, "Hz", from)
		return result.Ok(x * 2)
	})
	ns := New(nil, WithConverter(conv))
	hz, _ := ns.Unit("hz", 21)
	d := ns.Convert(hz, "ANYTHING").WithDefault(css.Dimen{})
	assert.Equal(t, "42anything", d.String())
	assert.Equal(t, 1, calls)
}

func TestToNumber(t *testing.T) {
	assert.Equal(t, 0.0, toNumber(nil))
	assert.Equal(t, 255.0, toNumber("0xff"))
	assert.Equal(t, 8.0, toNumber("0o10"))
	assert.Equal(t, 5.0, toNumber("0b101"))
	assert.True(t, math.IsNaN(toNumber("0b102")))
	assert.True(t, math.IsNaN(toNumber("-0x1")))
	assert.True(t, math.IsInf(toNumber("-Infinity"), -1))
	assert.True(t, math.IsInf(toNumber("1e400"), 1))
	assert.True(t, math.IsNaN(toNumber(struct{}{})))
	assert.Equal(t, -3.0, toInteger(-2.5))
	assert.Equal(t, 0.0, toInteger("x"))
}
