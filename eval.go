package calculator

import "strconv"

// machine is the operand stack for evaluating one postfix sequence.
type machine struct {
	stack []float64
	// at holds the position of the token that produced each stack entry.
	at []int
}

func (m *machine) push(v float64, pos int) {
	m.stack = append(m.stack, v)
	m.at = append(m.at, pos)
}

// pop removes the top from the stack and returns it. If the stack is empty,
// the result is def and false.
func (m *machine) pop(def float64) (float64, bool) {
	if len(m.stack) == 0 {
		return def, false
	}
	r := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	m.at = m.at[:len(m.at)-1]
	return r, true
}

// top is a shortcut to get the top element of the stack.
func (m *machine) top() float64 {
	return m.stack[len(m.stack)-1]
}

// Evaluate computes the value of a postfix token sequence. Operators take
// their right operand from the top of the stack and their left operand from
// beneath it. Functions take their argument in degrees. Parentheses are
// ignored.
//
// Under Strict, too few operands for an operator or function is an
// *OperandError, and finishing with anything but exactly one value is an
// *EmptyExpressionError or *ExcessOperandsError. Under Lenient, missing
// operands are 0, except that a missing divisor is 1; no value gives 0; and
// extra values are discarded in favor of the top one. Operators other than
// + - * / ^ and unknown functions are errors under either policy.
func Evaluate(postfix []Token, opts ...Option) (float64, error) {
	p := newpipectx(opts)
	return evaluate(postfix, &p)
}

func evaluate(postfix []Token, p *pipectx) (float64, error) {
	m := machine{stack: make([]float64, 0, len(postfix))}
	for _, tok := range postfix {
		switch tok.kind {
		case KindNumber:
			m.push(tok.num, tok.pos)
		case KindOperator:
			op := binop(tok.text)
			if op.fn == nil {
				return 0, &OperatorError{Col: tok.pos, Operator: tok.text}
			}
			if len(m.stack) < 2 && !p.lenient {
				return 0, &OperandError{Col: tok.pos, Op: tok.text, Need: 2, Have: len(m.stack)}
			}
			b, _ := m.pop(op.unit)
			a, _ := m.pop(0)
			m.push(op.fn(a, b), tok.pos)
		case KindFunction:
			f := globalfuncs[tok.text]
			if f == nil {
				return 0, &FuncError{Col: tok.pos, Func: tok.text}
			}
			if len(m.stack) < 1 && !p.lenient {
				return 0, &OperandError{Col: tok.pos, Op: tok.text, Need: 1, Have: 0}
			}
			x, _ := m.pop(0)
			m.push(f(x), tok.pos)
		case KindOpen, KindClose:
			// Well-formed postfix has none, but they're harmless.
		default:
			panic("calculator: invalid token kind " + tok.kind.String())
		}
	}
	switch len(m.stack) {
	case 0:
		if p.lenient {
			return 0, nil
		}
		col := 1
		if len(postfix) > 0 {
			col = postfix[len(postfix)-1].pos
		}
		return 0, &EmptyExpressionError{Col: col}
	case 1:
		r := m.top()
		p.trace("evaluate", "result", strconv.FormatFloat(r, 'g', -1, 64))
		return r, nil
	default:
		if p.lenient {
			return m.top(), nil
		}
		return 0, &ExcessOperandsError{Col: m.at[1], Count: len(m.stack)}
	}
}
