package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathannewcomer/nLisp/ast"
	"github.com/nathannewcomer/nLisp/lexer"
)

func encodeAll(exprs []ast.Sexpr) string {
	out := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, ast.Encode(expr))
	}
	return strings.Join(out, " ")
}

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  ``,
			Out: ``,
		},
		{
			In:  `1`,
			Out: `1`,
		},
		{
			In:  `1 3 true foo`,
			Out: `1 3 #t foo`,
		},
		{
			In:  `(a b)`,
			Out: `(a . (b . NIL))`,
		},
		{
			In:  `(a b c)`,
			Out: `(a . (b . (c . NIL)))`,
		},
		{
			In:  `(a)`,
			Out: `(a . NIL)`,
		},
		{
			In:  `(a . b)`,
			Out: `(a . b)`,
		},
		{
			In:  `(a b . c)`,
			Out: `(a . (b . c))`,
		},
		{
			In:  `(a . (b c))`,
			Out: `(a . (b . (c . NIL)))`,
		},
		{
			In:  `(+ 1 (* 2 3))`,
			Out: `(+ . (1 . ((* . (2 . (3 . NIL))) . NIL)))`,
		},
		{
			In:  `((1))`,
			Out: `((1 . NIL) . NIL)`,
		},
		{
			In:  "(quote\n\t(x y))",
			Out: `(quote . ((x . (y . NIL)) . NIL))`,
		},
		{
			In:  `(a b) (c)`,
			Out: `(a . (b . NIL)) (c . NIL)`,
		},
	}

	for _, tc := range testCases {
		exprs, err := ParseLine(tc.In)
		require.NoError(t, err, "input: %q", tc.In)
		assert.Equal(t, tc.Out, encodeAll(exprs), "input: %q", tc.In)
	}
}

func TestParserTree(t *testing.T) {
	exprs, err := ParseLine(`(+ 1 . 2)`)
	require.NoError(t, err)
	require.Len(t, exprs, 1)

	want := ast.NewCons(
		ast.NewAtom(ast.NewSymbolValue("+")),
		ast.NewCons(
			ast.NewAtom(ast.NewNumberValue(1)),
			ast.NewAtom(ast.NewNumberValue(2)),
		),
	)
	if diff := cmp.Diff(ast.Sexpr(want), exprs[0]); diff != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", diff)
	}
}

func TestParseCursor(t *testing.T) {
	tokens := lexer.Scan(`(a b) c (d . e)`)

	cursor := 0
	{
		expr, err := Parse(tokens, &cursor)
		require.NoError(t, err)
		assert.Equal(t, `(a . (b . NIL))`, ast.Encode(expr))
		assert.Equal(t, 4, cursor)
	}
	{
		expr, err := Parse(tokens, &cursor)
		require.NoError(t, err)
		assert.Equal(t, `c`, ast.Encode(expr))
		assert.Equal(t, 5, cursor)
	}
	{
		expr, err := Parse(tokens, &cursor)
		require.NoError(t, err)
		assert.Equal(t, `(d . e)`, ast.Encode(expr))
		assert.Equal(t, len(tokens), cursor)
	}
	{
		_, err := Parse(tokens, &cursor)
		assert.True(t, errors.Is(err, ErrUnexpectedEOF))
	}
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
		Msg string
	}{
		{`(`, ErrUnexpectedEOF, `unexpected EOF`},
		{`(1 2`, ErrUnexpectedEOF, `unexpected EOF`},
		{`)`, ErrUnexpectedToken, `unexpected token ")" at column 1`},
		{`.`, ErrUnexpectedToken, `unexpected token "." at column 1`},
		{`()`, ErrUnexpectedToken, `unexpected token ")" at column 2`},
		{`(. a)`, ErrUnexpectedToken, `unexpected token "." at column 2`},
		{`(a .)`, ErrUnexpectedToken, `unexpected token ")" at column 5`},
		{`(a . b c)`, ErrUnexpectedToken, `unexpected token "c" at column 8`},
		{`(a . b`, ErrUnexpectedEOF, `unexpected EOF`},
		{`(a .`, ErrUnexpectedEOF, `unexpected EOF`},
		{`(1.5 2)`, ErrUnexpectedToken, `unexpected token "2" at column 6`},
		{`1 )`, ErrUnexpectedToken, `unexpected token ")" at column 3`},
	}

	for _, tc := range testCases {
		exprs, err := ParseLine(tc.In)
		assert.Nil(t, exprs, "input: %q", tc.In)
		if assert.Error(t, err, "input: %q", tc.In) {
			assert.True(t, errors.Is(err, tc.Err), "input %q: %v", tc.In, err)
			assert.EqualError(t, err, tc.Msg, "input: %q", tc.In)

			var perr *Error
			assert.True(t, errors.As(err, &perr))
		}
	}
}
