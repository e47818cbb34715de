package ast

// Sexpr is a node of the expression tree: either an *Atom leaf or a *Cons
// pair.
type Sexpr interface {
	IsAtom() bool
	String() string
}

// Atom is a leaf of the expression tree
type Atom struct {
	Value Value
}

// Cons is a pair owning exactly two children.
type Cons struct {
	Car Sexpr
	Cdr Sexpr
}

// NewAtom creates a leaf holding the given value
func NewAtom(v Value) *Atom {
	return &Atom{Value: v}
}

// NewNil creates a fresh nil leaf
func NewNil() *Atom {
	return &Atom{Value: Nil}
}

// NewCons creates a pair
func NewCons(car, cdr Sexpr) *Cons {
	return &Cons{Car: car, Cdr: cdr}
}

// List builds a proper list from the given items. An empty list is the nil
// atom.
func List(items ...Sexpr) Sexpr {
	var tail Sexpr = NewNil()
	for i := len(items) - 1; i >= 0; i-- {
		tail = NewCons(items[i], tail)
	}
	return tail
}

// IsAtom returns true for leaves
func (a *Atom) IsAtom() bool {
	return true
}

func (a *Atom) String() string {
	return a.Value.Encode()
}

// IsAtom returns false for pairs
func (c *Cons) IsAtom() bool {
	return false
}

func (c *Cons) String() string {
	return Encode(c)
}

// IsNil returns true if the expression is the nil atom.
func IsNil(s Sexpr) bool {
	a, ok := s.(*Atom)
	return ok && a.Value.IsNil()
}

// Equal reports whether two trees have the same shape and atom values.
func Equal(a, b Sexpr) bool {
	switch x := a.(type) {
	case *Atom:
		y, ok := b.(*Atom)
		return ok && x.Value.Equal(y.Value)
	case *Cons:
		y, ok := b.(*Cons)
		return ok && Equal(x.Car, y.Car) && Equal(x.Cdr, y.Cdr)
	}
	return a == nil && b == nil
}
