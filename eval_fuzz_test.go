//go:build go1.18
// +build go1.18

package calculator_test

import (
	"testing"

	"github.com/zephyrtronium/calculator"
)

func FuzzCalculate(f *testing.F) {
	f.Add("2+3*4")
	f.Add("sin(90)")
	f.Add("((1)")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		calculator.Calculate(s)
		// The lenient policy always produces a value.
		if _, err := calculator.Calculate(s, calculator.Lenient()); err != nil {
			t.Errorf("lenient %q gave error: %v", s, err)
		}
	})
}
