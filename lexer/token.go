package lexer

import (
	"fmt"

	"github.com/nathannewcomer/nLisp/ast"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string
	value  ast.Value

	col int
}

// NewToken creates a punctuation token
func NewToken(tt TokenType, lexeme string, col int) Token {
	return Token{
		tt:     tt,
		lexeme: lexeme,
		col:    col,
	}
}

// NewAtomToken creates an atom token carrying the given value
func NewAtomToken(v ast.Value, lexeme string, col int) Token {
	return Token{
		tt:     TokenAtom,
		lexeme: lexeme,
		value:  v,
		col:    col,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the 1-based column of the lexical unit
func (t Token) Pos() int {
	return t.col
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Value returns the classified payload of an atom token.
func (t Token) Value() ast.Value {
	return t.value
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	if t.tt == TokenAtom {
		return fmt.Sprintf("(:%v:%v %q [%d])", t.tt, t.value.Type, t.lexeme, t.col)
	}
	return fmt.Sprintf("(:%v %q [%d])", t.tt, t.lexeme, t.col)
}
