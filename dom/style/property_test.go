package style_test

import (
	"testing"

	"github.com/npillmayer/csskit/dom/style"
	"github.com/stretchr/testify/assert"
)

func TestCamelCase(t *testing.T) {
	cases := map[string]string{
		"color":            "color",
		"font-size":        "fontSize",
		"border-top-width": "borderTopWidth",
		"x-":               "x-",
		"a--b":             "a-B",
	}
	for key, expected := range cases {
		assert.Equal(t, expected, style.CamelCase(key), "CamelCase(%q)", key)
	}
}

func TestKebabCase(t *testing.T) {
	cases := map[string]string{
		"color":          "color",
		"fontSize":       "font-size",
		"borderTopWidth": "border-top-width",
	}
	for name, expected := range cases {
		assert.Equal(t, expected, style.KebabCase(name), "KebabCase(%q)", name)
	}
}

func TestCaseRoundTrip(t *testing.T) {
	for _, key := range []string{"margin-left", "grid-template-columns", "z-index"} {
		if back := style.KebabCase(style.CamelCase(key)); back != key {
			t.Errorf("expected %q to survive camel/kebab round trip, is %q", key, back)
		}
	}
}

func TestKeyValueString(t *testing.T) {
	assert.Equal(t, "black", style.Property("black").String())
	assert.Equal(t, "color: red", style.KeyValue{Key: "color", Value: "red"}.String())
}
