package nlisp

import (
	"strings"

	"github.com/nathannewcomer/nLisp/ast"
)

// Context is handed to builtins while they run. It knows which operator is
// being applied and how deep the evaluation is, and evaluates nested
// expressions with the same evaluator.
type Context struct {
	ev *Evaluator

	op    string
	depth int
}

func newContext(ev *Evaluator) *Context {
	return &Context{ev: ev}
}

// Op returns the name of the operator being applied, empty at the top level.
func (ctx *Context) Op() string {
	return ctx.op
}

// Depth returns how many applications enclose the current one.
func (ctx *Context) Depth() int {
	return ctx.depth
}

// Eval evaluates expr within the current context.
func (ctx *Context) Eval(expr ast.Sexpr) (ast.Sexpr, error) {
	return ctx.ev.eval(ctx, expr)
}

// Error builds an evaluation error of the given kind about expr.
func (ctx *Context) Error(kind error, expr ast.Sexpr) error {
	return &EvalError{Err: kind, Op: ctx.op, Expr: expr}
}

func (ctx *Context) enter(op string) *Context {
	return &Context{
		ev:    ctx.ev,
		op:    op,
		depth: ctx.depth + 1,
	}
}

func (ctx *Context) logf(mess string, args ...interface{}) {
	if ctx.ev.logfn != nil {
		ctx.ev.logfn(strings.Repeat("  ", ctx.depth)+mess, args...)
	}
}
