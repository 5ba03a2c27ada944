package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/csskit/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	nothing := false
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		nothing = true
	}
	if !nothing || w != 0 {
		t.Errorf("expected Nothing to match case Nothing, w = %#v", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if xx := Just(7).WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, has %d", xx)
	}
	if yy := Nothing[int]().WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
}

func TestMaybeMap(t *testing.T) {
	xx := Just(7).Map(func(n int) int {
		return n * 2
	})
	if v := xx.WithDefault(0); v != 14 {
		t.Errorf("expected Just(7).Map(…) to return 14, is %d", v)
	}
	s := Map(strconv.Itoa, Just(10))
	if v := s.WithDefault(""); v != "10" {
		t.Errorf("expected Map(Itoa, Just 10) to return \"10\", is %q", v)
	}
	if Map(strconv.Itoa, Nothing[int]()).IsJust() {
		t.Error("expected Map(…, Nothing) to be Nothing")
	}
}

