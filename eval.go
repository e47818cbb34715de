package nlisp

import (
	"github.com/nathannewcomer/nLisp/ast"
	"github.com/nathannewcomer/nLisp/parser"
)

// Evaluator walks expression trees and applies builtins. It holds no state
// between evaluations, so one Evaluator may be shared freely.
type Evaluator struct {
	st    *symbolTable
	logfn func(mess string, args ...interface{})
}

// New creates an evaluator with the default operator table.
func New(opts ...Option) *Evaluator {
	ev := &Evaluator{st: builtins}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ev)
		}
	}
	return ev
}

var defaultEvaluator = New()

// Eval evaluates an expression with the default evaluator.
func Eval(expr ast.Sexpr) (ast.Sexpr, error) {
	return defaultEvaluator.Eval(expr)
}

// EvalLine parses a line and evaluates each expression in it with the
// default evaluator.
func EvalLine(line string) ([]ast.Sexpr, error) {
	return defaultEvaluator.EvalLine(line)
}

// Eval evaluates an expression. The input tree is never modified.
func (ev *Evaluator) Eval(expr ast.Sexpr) (ast.Sexpr, error) {
	return ev.eval(newContext(ev), expr)
}

// EvalLine parses a line and evaluates each expression in it. The first
// syntax or evaluation error aborts the whole line.
func (ev *Evaluator) EvalLine(line string) ([]ast.Sexpr, error) {
	exprs, err := parser.ParseLine(line)
	if err != nil {
		return nil, err
	}
	results := make([]ast.Sexpr, 0, len(exprs))
	for _, expr := range exprs {
		result, err := ev.Eval(expr)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Builtin looks up an entry of the operator table.
func (ev *Evaluator) Builtin(name string) (Builtin, bool) {
	b, ok := ev.st.Get(name)
	if !ok {
		return Builtin{}, false
	}
	return *b, true
}

func (ev *Evaluator) eval(ctx *Context, expr ast.Sexpr) (ast.Sexpr, error) {
	ctx.logf("eval %v", expr)

	var (
		result ast.Sexpr
		err    error
	)
	switch node := expr.(type) {
	case *ast.Atom:
		if node == nil {
			err = ctx.Error(ErrInvalidExpression, nil)
			break
		}
		result, err = evalAtom(ctx, node)
	case *ast.Cons:
		if node == nil {
			err = ctx.Error(ErrInvalidExpression, nil)
			break
		}
		result, err = ev.apply(ctx, node)
	default:
		err = ctx.Error(ErrInvalidExpression, nil)
	}

	if err != nil {
		ctx.logf("fail %v", err)
		return nil, err
	}
	ctx.logf("=> %v", result)
	return result, nil
}

func evalAtom(ctx *Context, atom *ast.Atom) (ast.Sexpr, error) {
	if atom.Value.Type == ast.ValueTypeSymbol {
		return nil, ctx.Error(ErrSymbolOutsideOperator, atom)
	}
	return ast.NewAtom(atom.Value), nil
}

func (ev *Evaluator) apply(ctx *Context, cons *ast.Cons) (ast.Sexpr, error) {
	head := cons.Car
	if inner, ok := head.(*ast.Cons); ok {
		var err error
		if head, err = ev.eval(ctx, inner); err != nil {
			return nil, err
		}
	}

	atom, ok := head.(*ast.Atom)
	if !ok {
		return nil, ctx.Error(ErrNotAProcedure, head)
	}
	name, ok := atom.Value.Symbol()
	if !ok {
		return nil, ctx.Error(ErrNotAProcedure, head)
	}
	b, ok := ev.st.Get(name)
	if !ok {
		return nil, ctx.Error(ErrNotAProcedure, head)
	}
	if b.Fn == nil {
		return nil, ctx.enter(name).Error(ErrUnimplemented, cons)
	}

	fnCtx := ctx.enter(name)
	args := cons.Cdr
	if b.Args == ArgsEvaluated {
		var err error
		if args, err = evalArgs(fnCtx, args); err != nil {
			return nil, err
		}
	}
	return b.Fn(fnCtx, args)
}

// evalArgs evaluates each element of an argument list, left to right, into
// a fresh list. An improper tail is evaluated like any other atom.
func evalArgs(ctx *Context, args ast.Sexpr) (ast.Sexpr, error) {
	cons, ok := args.(*ast.Cons)
	if !ok {
		return ctx.Eval(args)
	}
	car, err := ctx.Eval(cons.Car)
	if err != nil {
		return nil, err
	}
	cdr, err := evalArgs(ctx, cons.Cdr)
	if err != nil {
		return nil, err
	}
	return ast.NewCons(car, cdr), nil
}
