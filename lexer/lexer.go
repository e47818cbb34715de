package lexer

import (
	"errors"
	"strconv"
	"strings"

	"github.com/nathannewcomer/nLisp/ast"
)

type lexState func(*Lexer) lexState

var (
	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)
	isDot             = isTokenType(TokenDot)
)

// New initializes a Lexer over a single line of input
func New(line string) *Lexer {
	return &Lexer{
		in:  []rune(line),
		buf: []rune{},
	}
}

// Lexer represents a lexical analyzer. It makes exactly one forward pass
// over its input and never fails: characters that can't start a token are
// dropped.
type Lexer struct {
	in     []rune
	tokens []Token

	buf []rune

	start  int
	offset int
}

// Scan runs the lexer to completion and returns the tokens in input order.
func (lx *Lexer) Scan() []Token {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.tokens
}

func (lx *Lexer) emit(tt TokenType) {
	text := string(lx.buf)
	col := lx.start + 1

	if tt == TokenAtom {
		lx.tokens = append(lx.tokens, NewAtomToken(classify(text), text, col))
	} else {
		lx.tokens = append(lx.tokens, NewToken(tt, text, col))
	}

	lx.ignore()
}

func (lx *Lexer) ignore() {
	lx.start = lx.offset
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.offset >= len(lx.in) {
		return 0, false
	}
	return lx.in[lx.offset], true
}

func (lx *Lexer) next() (rune, bool) {
	r, ok := lx.peek()
	if !ok {
		return 0, false
	}
	lx.offset++
	lx.buf = append(lx.buf, r)
	return r, true
}

func lexDefaultState(lx *Lexer) lexState {
	r, ok := lx.next()
	if !ok {
		return nil
	}

	switch {
	case isOpenExpression(r):
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		return lexEmit(TokenCloseExpression)
	case isDot(r):
		return lexEmit(TokenDot)
	case isAtomChar(r):
		return lexAtom
	default:
		return lexSkip
	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexSkip(lx *Lexer) lexState {
	lx.ignore()
	return lexDefaultState
}

func lexAtom(lx *Lexer) lexState {
	for {
		r, ok := lx.peek()
		if !ok || !isAtomChar(r) {
			break
		}
		lx.next()
	}
	lx.emit(TokenAtom)
	return lexDefaultState
}

// classify turns a run of atom characters into a value. The order matters:
// numbers first, then booleans, then reserved symbols, and anything else is
// kept as an opaque string.
func classify(text string) ast.Value {
	if f, ok := parseNumber(text); ok {
		return ast.NewNumberValue(f)
	}
	switch text {
	case "true":
		return ast.NewBoolValue(true)
	case "false":
		return ast.NewBoolValue(false)
	}
	if IsSymbol(text) {
		return ast.NewSymbolValue(text)
	}
	return ast.NewStringValue(text)
}

func parseNumber(text string) (float32, bool) {
	digits := strings.TrimLeft(text, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		// hexadecimal floats are not part of the grammar
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return float32(f), true
}

// Scan tokenizes a line of text.
func Scan(line string) []Token {
	return New(line).Scan()
}
