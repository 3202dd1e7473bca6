// Package calculator evaluates arithmetic expressions in float64.
//
// Expressions use the binary operators + - * / and ^, parentheses, and the
// functions sin, cos, and tan, which take their arguments in degrees:
//
//	(2+3)*4     = 20
//	2^3^2       = 64, since ^ associates left like the others
//	cos(0)      = 1
//	sin 90      = 1, because a function's argument runs to the end without parentheses
//
// There are no variables, no unary minus, and no implicit multiplication.
//
// Evaluation is a pipeline of three stages, each exposed on its own: Tokenize
// scans text into tokens, ToPostfix reorders them by operator precedence, and
// Evaluate runs the postfix sequence on an operand stack. Calculate does all
// three and formats the result.
//
// By default, every stage reports malformed input as an error implementing
// InputError. The Lenient option instead substitutes defaults so that any
// input produces a value.
package calculator
