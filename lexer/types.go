package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenDot                       // Dot: "."
	TokenAtom                      // Run of atom characters
)

var tokenValues = map[TokenType][]rune{
	TokenOpenExpression:  []rune{'('},
	TokenCloseExpression: []rune{')'},
	TokenDot:             []rune{'.'},
	TokenAtom:            []rune("+-*/=>"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenDot:             "dot",
	TokenAtom:            "atom",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var isAtomSign = isTokenType(TokenAtom)

func isAtomChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || isAtomSign(r)
}

// Symbols is the closed table of reserved operator and primitive names.
var Symbols = map[string]struct{}{
	// arithmetic
	"+":  {},
	"-":  {},
	"*":  {},
	"/":  {},
	">":  {},
	">=": {},

	// predicates
	"listp": {},
	"atom":  {},
	"null":  {},
	"eq":    {},
	"equal": {},

	// lists
	"cons":   {},
	"car":    {},
	"cdr":    {},
	"append": {},
	"length": {},

	// functions
	"defun": {},
	"eval":  {},
	"quote": {},
}

// IsSymbol returns true if name is a reserved symbol.
func IsSymbol(name string) bool {
	_, ok := Symbols[name]
	return ok
}
