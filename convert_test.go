package calculator

import (
	"errors"
	"testing"
)

func TestToPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"add", "2+3", "2 3 +"},
		{"prec", "2+3*4", "2 3 4 * +"},
		{"prec-rev", "2*3+4", "2 3 * 4 +"},
		{"parens", "(2+3)*4", "2 3 + 4 *"},
		{"left-sub", "4-5-6", "4 5 - 6 -"},
		{"left-div", "4/5/6", "4 5 / 6 /"},
		{"left-pow", "2^3^2", "2 3 ^ 2 ^"},
		{"pow-over-mul", "2*3^2", "2 3 2 ^ *"},
		{"nested", "((1+2)*(3+4))^2", "1 2 + 3 4 + * 2 ^"},
		{"func", "cos(0)", "0 cos"},
		{"func-expr", "sin(30+60)*2", "30 60 + 2 * sin"},
		{"func-grouped", "(sin(30+60))*2", "30 60 + sin 2 *"},
		{"func-bare", "sin 30 + 60", "30 60 + sin"},
		{"func-nested", "cos(sin(0))", "0 sin cos"},
		{"funcs-bare", "sin cos 0", "0 cos sin"},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			infix, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("%q failed to tokenize: %v", c.src, err)
			}
			postfix, err := ToPostfix(infix)
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.src, err)
			}
			if got := Join(postfix); got != c.want {
				t.Errorf("%q gave wrong postfix:\n\twant %q\n\tgot  %q", c.src, c.want, got)
			}
		})
	}
}

// TestToPostfixCount checks that conversion only permutes tokens and removes
// parentheses.
func TestToPostfixCount(t *testing.T) {
	cases := []string{
		"2+3",
		"(2+3)*4",
		"((1))",
		"sin(90)",
		"cos(sin(tan(45)))",
		"(1+(2*(3^(4-5))))/6",
		"2^3^2",
		"",
	}
	for _, src := range cases {
		infix, err := Tokenize(src)
		if err != nil {
			t.Fatalf("%q failed to tokenize: %v", src, err)
		}
		pairs := 0
		for _, tok := range infix {
			if tok.Kind() == KindOpen {
				pairs++
			}
		}
		postfix, err := ToPostfix(infix)
		if err != nil {
			t.Fatalf("%q failed to convert: %v", src, err)
		}
		if len(postfix) != len(infix)-2*pairs {
			t.Errorf("%q: %d infix tokens with %d pairs gave %d postfix tokens", src, len(infix), pairs, len(postfix))
		}
		for _, tok := range postfix {
			if k := tok.Kind(); k == KindOpen || k == KindClose {
				t.Errorf("%q: postfix contains %v", src, tok)
			}
		}
	}
}

func TestToPostfixDoesNotModifyInput(t *testing.T) {
	infix := []Token{Open(), Num(1), Op('+'), Num(2), Close(), Op('*'), Num(3)}
	orig := append([]Token(nil), infix...)
	if _, err := ToPostfix(infix); err != nil {
		t.Fatal(err)
	}
	for i := range infix {
		if infix[i] != orig[i] {
			t.Errorf("token %d changed from %v to %v", i, orig[i], infix[i])
		}
	}
}

func TestToPostfixBrackets(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		left  string
		right string
		col   int
		// lenient is the postfix under the lenient policy.
		lenient string
	}{
		{"close", "1+2)", "", ")", 4, "1 2 +"},
		{"close-first", ")1", "", ")", 1, "1"},
		{"open", "(1+2", "(", "", 1, "1 2 +"},
		{"open-inner", "(1+(2", "(", "", 4, "1 2 +"},
		{"func-open", "sin(90", "(", "", 4, "90 sin"},
		{"close-mid", "1+2)*3", "", ")", 4, "1 2 + 3 *"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			infix, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("%q failed to tokenize: %v", c.src, err)
			}
			_, err = ToPostfix(infix)
			var berr *BracketError
			if !errors.As(err, &berr) {
				t.Fatalf("%q gave %#v, not *BracketError", c.src, err)
			}
			if berr.Left != c.left || berr.Right != c.right || berr.Col != c.col {
				t.Errorf("%q gave wrong error: want {%d %q %q}, got {%d %q %q}", c.src, c.col, c.left, c.right, berr.Col, berr.Left, berr.Right)
			}
			postfix, err := ToPostfix(infix, Lenient())
			if err != nil {
				t.Fatalf("%q gave lenient error: %v", c.src, err)
			}
			if got := Join(postfix); got != c.lenient {
				t.Errorf("%q gave wrong lenient postfix:\n\twant %q\n\tgot  %q", c.src, c.lenient, got)
			}
		})
	}
}

func TestPrecedence(t *testing.T) {
	cases := []struct {
		op   string
		prec int8
	}{
		{"+", 1}, {"-", 1}, {"*", 2}, {"/", 2}, {"^", 3}, {"%", 0}, {"", 0},
	}
	for _, c := range cases {
		if got := binop(c.op).prec; got != c.prec {
			t.Errorf("precedence of %q: want %d, got %d", c.op, c.prec, got)
		}
		if binop(c.op).moreBinding(binop(c.op)) {
			t.Errorf("%q is right-associative", c.op)
		}
	}
}

func TestToPostfixUnknownOperator(t *testing.T) {
	// An unknown operator binds less than everything, so it pops all
	// operators before it.
	infix := []Token{Num(1), Op('*'), Num(2), Op('%'), Num(3), Op('+'), Num(4)}
	postfix, err := ToPostfix(infix)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Join(postfix), "1 2 * 3 4 + %"; got != want {
		t.Errorf("wrong postfix: want %q, got %q", want, got)
	}
}
