package calculator

import "strconv"

// Calculate evaluates an expression and formats the result for display. It is
// the composition of Tokenize, ToPostfix, Evaluate, and FormatResult, with the
// same options applied to each stage.
func Calculate(expr string, opts ...Option) (string, error) {
	r, err := Eval(expr, opts...)
	if err != nil {
		return "", err
	}
	return FormatResult(r), nil
}

// Eval evaluates an expression without formatting the result.
func Eval(expr string, opts ...Option) (float64, error) {
	p := newpipectx(opts)
	tokens, err := tokenize(expr, &p)
	if err != nil {
		return 0, err
	}
	postfix, err := topostfix(tokens, &p)
	if err != nil {
		return 0, err
	}
	return evaluate(postfix, &p)
}

// FormatResult formats a value as the shortest decimal that parses back to
// the same float64, without an exponent. Whole numbers have no point.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
