package css_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/csskit/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEscapeEmpty(t *testing.T) {
	if s := css.Escape(""); s != "" {
		t.Errorf("expected escape of empty string to be empty, is %q", s)
	}
}

func TestEscapeTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.css")
	defer teardown()
	//
	cases := []struct {
		in, out string
	}{
		{"a_b-2", "a_b-2"},
		{"0abc", `\30 abc`},
		{"-1", `-\31 `},
		{"-", `\-`},
		{"--", "--"},
		{"-a", "-a"},
		{"a1", "a1"},
		{"1-", `\31 -`},
		{"a\x00b", "a\ufffdb"},
		{"\x01", `\1 `},
		{"x\x1fy", `x\1f y`},
		{"\x7f", `\7f `},
		{"a b", `a\ b`},
		{"#id.class", `\#id\.class`},
		{"a:hover", `a\:hover`},
		{"é©", "é©"},
		{"😀x", "😀x"},
		{"_", "_"},
		{"-_", "-_"},
		{"9", `\39 `},
		{"a\\b", `a\\b`},
	}
	for _, c := range cases {
		if got := css.Escape(c.in); got != c.out {
			t.Errorf("expected Escape(%q) to be %q, is %q", c.in, c.out, got)
		}
	}
}

func TestEscapeDigitPositions(t *testing.T) {
	// a digit is escaped at index 0, and at index 1 only after a leading '-'
	if s := css.Escape("-12"); s != `-\31 2` {
		t.Errorf("expected only the first digit after '-' to be escaped, have %q", s)
	}
	if s := css.Escape("a-1"); s != "a-1" {
		t.Errorf("expected digit at index 2 to pass, have %q", s)
	}
	if s := css.Escape("_1"); s != "_1" {
		t.Errorf("expected digit after '_' to pass, have %q", s)
	}
}

func TestEscapeNoControlCharacters(t *testing.T) {
	var b strings.Builder
	for r := rune(0); r < 0x80; r++ {
		b.WriteRune(r)
	}
	s := css.Escape(b.String())
	for _, r := range s {
		if r <= 0x1f || r == 0x7f {
			t.Fatalf("expected no raw control characters in escaped string, found %U in %q", r, s)
		}
	}
}
