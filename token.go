package calculator

import (
	"strconv"
	"strings"
)

// Token is a lexical unit of an expression. Tokens are values; once created,
// they cannot be modified.
type Token struct {
	kind Kind
	// num is the value of a number token.
	num float64
	// text is the operator symbol or function name.
	text string
	pos  int
}

// Kind is the variant of a token.
type Kind int8

const (
	KindNone Kind = iota
	// KindNumber is a literal operand.
	KindNumber
	// KindOperator is a binary infix operator.
	KindOperator
	// KindFunction is a unary prefix function.
	KindFunction
	// KindOpen is an open parenthesis.
	KindOpen
	// KindClose is a close parenthesis.
	KindClose
)

var kindnames = [...]string{
	KindNone:     "None",
	KindNumber:   "Number",
	KindOperator: "Operator",
	KindFunction: "Function",
	KindOpen:     "Open",
	KindClose:    "Close",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Num creates a number token.
func Num(v float64) Token {
	return Token{kind: KindNumber, num: v}
}

// Op creates an operator token. Op does not check that sym is a supported
// operator; evaluating an unsupported one is an error.
func Op(sym rune) Token {
	return Token{kind: KindOperator, text: string(sym)}
}

// Func creates a function token.
func Func(name string) Token {
	return Token{kind: KindFunction, text: name}
}

// Open creates an open parenthesis token.
func Open() Token {
	return Token{kind: KindOpen, text: "("}
}

// Close creates a close parenthesis token.
func Close() Token {
	return Token{kind: KindClose, text: ")"}
}

// Kind returns the token's variant.
func (t Token) Kind() Kind {
	return t.kind
}

// Value returns the value of a number token, or 0 for other kinds.
func (t Token) Value() float64 {
	return t.num
}

// Symbol returns the symbol of an operator token, or 0 for other kinds.
func (t Token) Symbol() rune {
	if t.kind != KindOperator {
		return 0
	}
	for _, r := range t.text {
		return r
	}
	return 0
}

// Name returns the name of a function token, or the empty string for other
// kinds.
func (t Token) Name() string {
	if t.kind != KindFunction {
		return ""
	}
	return t.text
}

// Pos returns the column, in runes starting at 1, at which the token appeared
// in its source. Tokens not produced by Tokenize have position 0.
func (t Token) Pos() int {
	return t.pos
}

// at returns a copy of t with its position set.
func (t Token) at(pos int) Token {
	t.pos = pos
	return t
}

// String formats the token the way it would appear in an expression.
func (t Token) String() string {
	switch t.kind {
	case KindNumber:
		return FormatResult(t.num)
	case KindOperator, KindFunction, KindOpen, KindClose:
		return t.text
	default:
		return "<" + t.kind.String() + ">"
	}
}

// Join formats a token sequence with spaces between tokens, e.g. for printing
// postfix order.
func Join(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
