package parser

import (
	"errors"
	"fmt"

	"github.com/nathannewcomer/nLisp/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// Error is a syntax error. It wraps one of the sentinel errors above and
// remembers the offending token, if there was one.
type Error struct {
	Err error
	Tok *lexer.Token
}

func (e *Error) Error() string {
	if e.Tok == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v %q at column %d", e.Err, e.Tok.Text(), e.Tok.Pos())
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errUnexpectedEOF() error {
	return &Error{Err: ErrUnexpectedEOF}
}

func errUnexpectedToken(tok lexer.Token) error {
	return &Error{Err: ErrUnexpectedToken, Tok: &tok}
}
