package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable, indented representation of the tree
func Print(w io.Writer, s Sexpr) {
	printLevel(w, s, 0)
}

func printLevel(w io.Writer, s Sexpr, level int) {
	indent := strings.Repeat("    ", level)
	switch n := s.(type) {
	case nil:
		fmt.Fprintf(w, "%s:nil\n", indent)

	case *Atom:
		fmt.Fprintf(w, "%s(%s): %s\n", indent, n.Value.Type, n.Value.Encode())

	case *Cons:
		fmt.Fprintf(w, "%s(cons)\n", indent)
		printLevel(w, n.Car, level+1)
		printLevel(w, n.Cdr, level+1)

	default:
		panic("unknown node type")
	}
}

// Encode transforms a tree into its text representation. Pairs are always
// written in dotted notation, proper lists included.
func Encode(s Sexpr) string {
	var sb strings.Builder
	encodeNode(&sb, s)
	return sb.String()
}

func encodeNode(sb *strings.Builder, s Sexpr) {
	switch n := s.(type) {
	case nil:
		sb.WriteString("NIL")

	case *Atom:
		sb.WriteString(n.Value.Encode())

	case *Cons:
		sb.WriteByte('(')
		encodeNode(sb, n.Car)
		sb.WriteString(" . ")
		encodeNode(sb, n.Cdr)
		sb.WriteByte(')')

	default:
		panic("unknown node type")
	}
}
