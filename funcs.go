package calculator

import (
	"math"
	"sort"
)

// Monadic is a function from reals to reals.
type Monadic func(x float64) float64

// Degrees wraps a function of radians into one of degrees.
func Degrees(f func(float64) float64) Monadic {
	return func(x float64) float64 {
		return f(x * (math.Pi / 180))
	}
}

var globalfuncs = map[string]Monadic{
	"sin": Degrees(math.Sin),
	"cos": Degrees(math.Cos),
	"tan": Degrees(math.Tan),
}

// funcnames is the sorted list of function names, for scanning.
var funcnames = func() []string {
	v := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		v = append(v, k)
	}
	sort.Strings(v)
	return v
}()

// IsFunc returns whether name is a function the tokenizer recognizes.
func IsFunc(name string) bool {
	return globalfuncs[name] != nil
}

// Funcs returns the names of the supported functions in sorted order.
func Funcs() []string {
	return append([]string(nil), funcnames...)
}
