package calculator_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/zephyrtronium/bigfloat"

	"github.com/zephyrtronium/calculator"
)

// bigpow computes x^y at high precision and rounds the result to float64.
func bigpow(x, y float64) float64 {
	const prec = 256
	bx := new(big.Float).SetPrec(prec).SetFloat64(x)
	by := new(big.Float).SetPrec(prec).SetFloat64(y)
	r := new(big.Float).SetPrec(prec)
	bigfloat.Pow(r, bx, by)
	f, _ := r.Float64()
	return f
}

func TestPowAccuracy(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
	}{
		{"int", 2, 10},
		{"sqrt", 2, 0.5},
		{"neg-exp", 10, -3},
		{"frac", 1.5, 2.5},
		{"cbrt", 7, 1.0 / 3},
		{"small", 0.5, 20},
		{"large", 9, 17.25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			postfix := []calculator.Token{calculator.Num(c.x), calculator.Num(c.y), calculator.Op('^')}
			got, err := calculator.Evaluate(postfix)
			if err != nil {
				t.Fatal(err)
			}
			want := bigpow(c.x, c.y)
			if math.Abs(got-want) > 1e-15*math.Abs(want) {
				t.Errorf("%g^%g: want %g, got %g", c.x, c.y, want, got)
			}
		})
	}
}

func TestPowAssociatesLeft(t *testing.T) {
	got, err := calculator.Eval("2^3^2")
	if err != nil {
		t.Fatal(err)
	}
	left := bigpow(bigpow(2, 3), 2)
	right := bigpow(2, bigpow(3, 2))
	if got != left {
		t.Errorf("2^3^2: want (2^3)^2 = %g, got %g", left, got)
	}
	if got == right {
		t.Errorf("2^3^2 gave 2^(3^2) = %g", right)
	}
}
