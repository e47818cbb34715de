package nlisp

import (
	"errors"
	"fmt"

	"github.com/nathannewcomer/nLisp/ast"
)

// Evaluation error kinds. Every error returned by the evaluator wraps
// exactly one of these.
var (
	ErrNotANumber            = errors.New("not a number")
	ErrNotAPair              = errors.New("not a pair")
	ErrSymbolOutsideOperator = errors.New("symbol outside operator position")
	ErrNotAProcedure         = errors.New("not a procedure")
	ErrUnimplemented         = errors.New("unimplemented")
	ErrArity                 = errors.New("wrong number of arguments")
	ErrInvalidExpression     = errors.New("invalid expression")
)

var errDuplicateBuiltin = errors.New("builtin already defined")

// EvalError is a semantic error found while evaluating an expression.
type EvalError struct {
	Err  error
	Op   string
	Expr ast.Sexpr
}

func (e *EvalError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%v: %s", e.Err, ast.Encode(e.Expr))
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, ast.Encode(e.Expr))
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
