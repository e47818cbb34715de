package nlisp

import (
	"github.com/nathannewcomer/nLisp/ast"
)

// ArgMode tells the dispatcher what a builtin receives as its argument
// list.
type ArgMode uint8

const (
	// ArgsEvaluated builtins receive a fresh list holding the value of each
	// argument, evaluated left to right.
	ArgsEvaluated ArgMode = iota
	// ArgsQuoted builtins receive the argument list exactly as written.
	ArgsQuoted
)

// Handler implements a builtin. args is the cdr of the application, either
// evaluated or quoted depending on the builtin's ArgMode.
type Handler func(ctx *Context, args ast.Sexpr) (ast.Sexpr, error)

// Builtin is an entry of the operator table. A nil Fn marks a reserved name
// with no semantics yet.
type Builtin struct {
	Name string
	Args ArgMode
	Fn   Handler
}

var builtins = newSymbolTable()

func defn(name string, args ArgMode, fn Handler) {
	if err := builtins.Set(Builtin{Name: name, Args: args, Fn: fn}); err != nil {
		panic(err)
	}
}

func reserve(names ...string) {
	for _, name := range names {
		defn(name, ArgsQuoted, nil)
	}
}

func init() {
	defn("+", ArgsEvaluated, arithmetic(func(x, y float32) float32 { return x + y }))
	defn("-", ArgsEvaluated, arithmetic(func(x, y float32) float32 { return x - y }))
	defn("*", ArgsEvaluated, arithmetic(func(x, y float32) float32 { return x * y }))
	defn("/", ArgsEvaluated, arithmetic(func(x, y float32) float32 { return x / y }))

	defn(">", ArgsEvaluated, comparison(func(x, y float32) bool { return x > y }))
	defn(">=", ArgsEvaluated, comparison(func(x, y float32) bool { return x >= y }))

	defn("quote", ArgsQuoted, quote)
	defn("length", ArgsQuoted, length)
	defn("car", ArgsEvaluated, car)
	defn("cdr", ArgsEvaluated, cdr)

	reserve("listp", "atom", "null", "eq", "equal", "cons", "append", "defun", "eval")
}

func number(s ast.Sexpr) (float32, bool) {
	a, ok := s.(*ast.Atom)
	if !ok {
		return 0, false
	}
	return a.Value.Number()
}

func arithmetic(op func(x, y float32) float32) Handler {
	return fold(func(x, y float32) ast.Value {
		return ast.NewNumberValue(op(x, y))
	})
}

func comparison(op func(x, y float32) bool) Handler {
	return fold(func(x, y float32) ast.Value {
		return ast.NewBoolValue(op(x, y))
	})
}

// fold combines an evaluated argument list from the right. The nil tail is
// the identity, so a single operand comes back unchanged. Every other pairing
// needs two numbers, which means a comparison with more than two operands
// fails once its boolean meets the next number: (> 3 2 1) is (> 3 (> 2 1)).
func fold(op func(x, y float32) ast.Value) Handler {
	var f Handler
	f = func(ctx *Context, args ast.Sexpr) (ast.Sexpr, error) {
		cons, ok := args.(*ast.Cons)
		if !ok {
			return args, nil
		}

		rest, err := f(ctx, cons.Cdr)
		if err != nil {
			return nil, err
		}

		x, ok := number(cons.Car)
		if !ok {
			return nil, ctx.Error(ErrNotANumber, cons.Car)
		}
		if ast.IsNil(rest) {
			return cons.Car, nil
		}
		y, ok := number(rest)
		if !ok {
			return nil, ctx.Error(ErrNotANumber, rest)
		}
		return ast.NewAtom(op(x, y)), nil
	}
	return f
}

// single returns the only element of a one element argument list.
func single(ctx *Context, args ast.Sexpr) (ast.Sexpr, error) {
	cons, ok := args.(*ast.Cons)
	if !ok || !ast.IsNil(cons.Cdr) {
		return nil, ctx.Error(ErrArity, args)
	}
	return cons.Car, nil
}

func quote(ctx *Context, args ast.Sexpr) (ast.Sexpr, error) {
	if args.IsAtom() {
		return args, nil
	}
	return single(ctx, args)
}

// length counts the links of the unevaluated argument: an atom is 1, the nil
// terminator adds nothing.
func length(ctx *Context, args ast.Sexpr) (ast.Sexpr, error) {
	arg, err := single(ctx, args)
	if err != nil {
		return nil, err
	}

	n := 0
	for {
		if ast.IsNil(arg) {
			break
		}
		n++
		cons, ok := arg.(*ast.Cons)
		if !ok {
			break
		}
		arg = cons.Cdr
	}
	return ast.NewAtom(ast.NewNumberValue(float32(n))), nil
}

func pair(ctx *Context, args ast.Sexpr) (*ast.Cons, error) {
	arg, err := single(ctx, args)
	if err != nil {
		return nil, err
	}
	cons, ok := arg.(*ast.Cons)
	if !ok {
		return nil, ctx.Error(ErrNotAPair, arg)
	}
	return cons, nil
}

func car(ctx *Context, args ast.Sexpr) (ast.Sexpr, error) {
	cons, err := pair(ctx, args)
	if err != nil {
		return nil, err
	}
	return ctx.Eval(cons.Car)
}

func cdr(ctx *Context, args ast.Sexpr) (ast.Sexpr, error) {
	cons, err := pair(ctx, args)
	if err != nil {
		return nil, err
	}
	return ctx.Eval(cons.Cdr)
}
