package nlisp

import (
	"fmt"
)

type symbolTable struct {
	n map[string]*Builtin
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		n: make(map[string]*Builtin),
	}
}

func (st *symbolTable) Set(b Builtin) error {
	if _, ok := st.n[b.Name]; ok {
		return fmt.Errorf("%w: %q", errDuplicateBuiltin, b.Name)
	}
	st.n[b.Name] = &b
	return nil
}

// Replace sets a builtin, overwriting any previous definition.
func (st *symbolTable) Replace(b Builtin) {
	st.n[b.Name] = &b
}

func (st *symbolTable) Get(name string) (*Builtin, bool) {
	b, ok := st.n[name]
	return b, ok
}

func (st *symbolTable) clone() *symbolTable {
	c := newSymbolTable()
	for name, b := range st.n {
		c.n[name] = b
	}
	return c
}
