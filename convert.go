package calculator

import "math"

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// fn computes a op b. nil if there is no such operator.
	fn func(a, b float64) float64
	// unit is the right operand that the lenient policy substitutes when the
	// stack runs out.
	unit float64
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token symbol. If there is no such
// operator, then the result has a nil fn and precedence 0, which binds less
// than every real operator.
//
// Every operator associates left, exponentiation included: 2^3^2 is 64.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, add, 0}
	case "-":
		return operator{1, false, sub, 0}
	case "*":
		return operator{2, false, mul, 0}
	case "/":
		return operator{2, false, div, 1}
	case "^":
		return operator{3, false, math.Pow, 0}
	default:
		return operator{}
	}
}

func add(a, b float64) float64 { return a + b }
func sub(a, b float64) float64 { return a - b }
func mul(a, b float64) float64 { return a * b }
func div(a, b float64) float64 { return a / b }

// ToPostfix reorders tokens from infix to postfix order using the
// shunting-yard algorithm. Parentheses are consumed; everything else appears
// in the result exactly once. Functions stay on the operator stack until the
// close parenthesis that ends their argument or the end of input, so an
// unparenthesized argument extends to the end of the expression.
//
// Under Strict, unbalanced parentheses are a *BracketError. Under Lenient,
// a close with no open stops popping and an open with no close is dropped.
// infix is not modified.
func ToPostfix(infix []Token, opts ...Option) ([]Token, error) {
	p := newpipectx(opts)
	return topostfix(infix, &p)
}

func topostfix(infix []Token, p *pipectx) ([]Token, error) {
	out := make([]Token, 0, len(infix))
	var stack []Token
	for _, tok := range infix {
		switch tok.kind {
		case KindNumber:
			out = append(out, tok)
		case KindFunction, KindOpen:
			stack = append(stack, tok)
		case KindOperator:
			op := binop(tok.text)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				// Functions and parentheses are only popped by a close or the
				// final drain.
				if top.kind != KindOperator || op.moreBinding(binop(top.text)) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case KindClose:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == KindOpen {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched && !p.lenient {
				return nil, &BracketError{Col: tok.pos, Right: tok.text}
			}
		default:
			panic("calculator: invalid token kind " + tok.kind.String())
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == KindOpen {
			if !p.lenient {
				return nil, &BracketError{Col: top.pos, Left: top.text}
			}
			continue
		}
		out = append(out, top)
	}
	p.trace("postfix", "tokens", Join(out))
	return out, nil
}
