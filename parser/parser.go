package parser

import (
	"github.com/nathannewcomer/nLisp/ast"
	"github.com/nathannewcomer/nLisp/lexer"
)

type parser struct {
	tokens []lexer.Token
	cursor *int
}

// Parse reads one expression from tokens, starting at *cursor. The cursor is
// left just past the expression, so successive calls walk the same token
// stream.
func Parse(tokens []lexer.Token, cursor *int) (ast.Sexpr, error) {
	p := &parser{tokens: tokens, cursor: cursor}
	return p.parse()
}

// ParseAll reads every expression in tokens.
func ParseAll(tokens []lexer.Token) ([]ast.Sexpr, error) {
	exprs := []ast.Sexpr{}
	for cursor := 0; cursor < len(tokens); {
		expr, err := Parse(tokens, &cursor)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseLine tokenizes and parses a line of text.
func ParseLine(line string) ([]ast.Sexpr, error) {
	return ParseAll(lexer.Scan(line))
}

func (p *parser) peek() (lexer.Token, bool) {
	if *p.cursor >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[*p.cursor], true
}

func (p *parser) next() (lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		*p.cursor++
	}
	return tok, ok
}

func (p *parser) expect(tt lexer.TokenType) error {
	tok, ok := p.next()
	if !ok {
		return errUnexpectedEOF()
	}
	if !tok.Is(tt) {
		return errUnexpectedToken(tok)
	}
	return nil
}

func (p *parser) parse() (ast.Sexpr, error) {
	tok, ok := p.next()
	if !ok {
		return nil, errUnexpectedEOF()
	}

	switch tok.Type() {
	case lexer.TokenOpenExpression:
		return p.parseCons()

	case lexer.TokenAtom:
		return ast.NewAtom(tok.Value()), nil
	}

	return nil, errUnexpectedToken(tok)
}

// parseCons reads a list body, the opening parenthesis already consumed.
// (a b c) becomes (a . (b . (c . NIL))) and (a . b) a single pair.
func (p *parser) parseCons() (*ast.Cons, error) {
	car, err := p.parse()
	if err != nil {
		return nil, err
	}

	tok, ok := p.peek()
	if !ok {
		return nil, errUnexpectedEOF()
	}

	switch tok.Type() {
	case lexer.TokenDot:
		*p.cursor++

		cdr, err := p.parse()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.TokenCloseExpression); err != nil {
			return nil, err
		}
		return ast.NewCons(car, cdr), nil

	case lexer.TokenCloseExpression:
		*p.cursor++
		return ast.NewCons(car, ast.NewNil()), nil
	}

	cdr, err := p.parseCons()
	if err != nil {
		return nil, err
	}
	return ast.NewCons(car, cdr), nil
}
