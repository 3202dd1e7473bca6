package calculator_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/zephyrtronium/calculator"
)

func TestFuncs(t *testing.T) {
	if got, want := calculator.Funcs(), []string{"cos", "sin", "tan"}; !reflect.DeepEqual(got, want) {
		t.Errorf("wrong functions: want %q, got %q", want, got)
	}
	for _, name := range []string{"sin", "cos", "tan"} {
		if !calculator.IsFunc(name) {
			t.Errorf("%q is not a function", name)
		}
	}
	for _, name := range []string{"", "Sin", "sqrt", "exp", "sine"} {
		if calculator.IsFunc(name) {
			t.Errorf("%q is a function", name)
		}
	}
}

func TestDegrees(t *testing.T) {
	id := calculator.Degrees(func(x float64) float64 { return x })
	cases := []struct {
		deg, rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{-360, -2 * math.Pi},
	}
	for _, c := range cases {
		if got := id(c.deg); math.Abs(got-c.rad) > 1e-15 {
			t.Errorf("%g degrees: want %g radians, got %g", c.deg, c.rad, got)
		}
	}
}
