package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Operators contains the runes which are considered to be binary operators.
const Operators = "+-*/^"

type lexer struct {
	src string
	// off is the byte offset of the next rune in src.
	off int
	// col is the 1-based rune position of the next rune in src.
	col int
	// lenient skips runes that start no token instead of failing.
	lenient bool
}

func lex(src string, lenient bool) *lexer {
	return &lexer{
		src:     src,
		col:     1,
		lenient: lenient,
	}
}

// Tokenize scans an expression into tokens in input order. Whitespace between
// tokens is ignored. Under the default Strict policy, any other rune that
// doesn't begin a number, operator, parenthesis, or function name is a
// *LexError, as is a number that doesn't parse as a float64. Under Lenient,
// such runes are skipped and such numbers are 0.
func Tokenize(src string, opts ...Option) ([]Token, error) {
	p := newpipectx(opts)
	tokens, err := tokenize(src, &p)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func tokenize(src string, p *pipectx) ([]Token, error) {
	scan := lex(src, p.lenient)
	var tokens []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	p.trace("tokenize", "src", src, "tokens", Join(tokens))
	return tokens, nil
}

// peek returns the next rune and its size without consuming it. At the end of
// the input, the size is 0.
func (l *lexer) peek() (rune, int) {
	if l.off >= len(l.src) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(l.src[l.off:])
}

// advance consumes sz bytes holding n runes.
func (l *lexer) advance(sz, n int) {
	l.off += sz
	l.col += n
}

// next scans the next token from the input. At the end of the input, the
// result is an empty token with io.EOF.
func (l *lexer) next() (Token, error) {
	for {
		r, sz := l.peek()
		if sz == 0 {
			return Token{}, io.EOF
		}
		pos := l.col
		switch {
		case unicode.IsSpace(r):
			l.advance(sz, 1)
			continue
		case unicode.IsDigit(r):
			return l.scanNum()
		case strings.ContainsRune(Operators, r):
			l.advance(sz, 1)
			return Op(r).at(pos), nil
		case r == '(':
			l.advance(sz, 1)
			return Open().at(pos), nil
		case r == ')':
			l.advance(sz, 1)
			return Close().at(pos), nil
		}
		if name := l.funcAt(); name != "" {
			l.advance(len(name), utf8.RuneCountInString(name))
			return Func(name).at(pos), nil
		}
		if l.lenient {
			l.advance(sz, 1)
			continue
		}
		return Token{}, l.invalid(r, sz)
	}
}

// funcAt returns the function name that the input continues with, if any.
// Names match exactly, even when more letters follow.
func (l *lexer) funcAt() string {
	rest := l.src[l.off:]
	for _, name := range funcnames {
		if strings.HasPrefix(rest, name) {
			return name
		}
	}
	return ""
}

// scanNum scans digits, optionally followed by a point and more digits.
func (l *lexer) scanNum() (Token, error) {
	start, pos := l.off, l.col
	l.digits()
	if r, sz := l.peek(); r == '.' {
		l.advance(sz, 1)
		l.digits()
	}
	text := l.src[start:l.off]
	v, err := strconv.ParseFloat(text, 64)
	// Overflow gives ±Inf with ErrRange, which is the value we want anyway.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Only digits outside ASCII get here.
		if !l.lenient {
			return Token{}, &LexError{Text: text, Kind: "number", Col: pos}
		}
		v = 0
	}
	return Num(v).at(pos), nil
}

func (l *lexer) digits() {
	for {
		r, sz := l.peek()
		if sz == 0 || !unicode.IsDigit(r) {
			return
		}
		l.advance(sz, 1)
	}
}

// invalid consumes the rune that starts no token and returns the error for it.
// A run of letters is reported together so that the message names the whole
// word.
func (l *lexer) invalid(r rune, sz int) error {
	start, pos := l.off, l.col
	l.advance(sz, 1)
	if unicode.IsLetter(r) {
		for {
			r, sz := l.peek()
			if sz == 0 || !unicode.IsLetter(r) || l.funcAt() != "" {
				break
			}
			l.advance(sz, 1)
		}
	}
	return &LexError{Text: l.src[start:l.off], Col: pos}
}
