package nlisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathannewcomer/nLisp/ast"
)

func TestContextCreate(t *testing.T) {
	ctx := newContext(New())
	assert.NotNil(t, ctx)
	assert.Equal(t, "", ctx.Op())
	assert.Equal(t, 0, ctx.Depth())
}

func TestContextOpAndDepth(t *testing.T) {
	type seen struct {
		op    string
		depth int
	}
	var calls []seen

	eq := Builtin{
		Name: "eq",
		Args: ArgsQuoted,
		Fn: func(ctx *Context, args ast.Sexpr) (ast.Sexpr, error) {
			calls = append(calls, seen{ctx.Op(), ctx.Depth()})
			return ast.NewAtom(ast.NewNumberValue(1)), nil
		},
	}
	ev := New(WithBuiltin(eq))

	{
		out, err := evalString(t, ev, `(eq)`)
		require.NoError(t, err)
		assert.Equal(t, "1", out)
	}

	{
		out, err := evalString(t, ev, `(+ 1 (eq))`)
		require.NoError(t, err)
		assert.Equal(t, "2", out)
	}

	{
		out, err := evalString(t, ev, `(car (quote ((eq) 1)))`)
		require.NoError(t, err)
		assert.Equal(t, "1", out)
	}

	assert.Equal(t, []seen{
		{"eq", 1},
		{"eq", 2},
		{"eq", 2},
	}, calls)
}

func TestContextError(t *testing.T) {
	ctx := newContext(New()).enter("car")
	err := ctx.Error(ErrNotAPair, ast.NewAtom(ast.NewNumberValue(5)))
	assert.EqualError(t, err, "car: not a pair: 5")
	assert.ErrorIs(t, err, ErrNotAPair)
}

func TestSymbolTable(t *testing.T) {
	st := newSymbolTable()
	assert.NoError(t, st.Set(Builtin{Name: "foo"}))
	assert.ErrorIs(t, st.Set(Builtin{Name: "foo"}), errDuplicateBuiltin)

	b, ok := st.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, "foo", b.Name)

	_, ok = st.Get("bar")
	assert.False(t, ok)

	c := st.clone()
	c.Replace(Builtin{Name: "bar"})
	_, ok = st.Get("bar")
	assert.False(t, ok)
	_, ok = c.Get("bar")
	assert.True(t, ok)
}
