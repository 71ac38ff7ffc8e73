// Package logic implements the Horn-clause interpreter's hard core: terms,
// a layered binding environment, unification, and SLD-style resolution
// expressed as a lazy answer stream. Everything in this package is
// side-effect free with respect to I/O; logging and configuration live in
// the surrounding cmd/ and internal/ packages.
package logic

import (
	"strconv"
	"strings"
)

// Term is the algebraic value the engine manipulates. There are exactly
// four variants: Atom, Int, Var and Compound. Terms are immutable once
// constructed and are shared by structure; nothing in this package ever
// mutates a term in place.
type Term interface {
	// String renders the term's printed form. It is list-aware: _list
	// compounds print as [h1,h2,...] or [h1,...|tail], and the empty-list
	// atom prints as [].
	String() string

	// Equal is strict structural equality, not unification.
	Equal(other Term) bool

	// IsVar reports whether this term is a bare variable reference.
	IsVar() bool
}

// Reserved names used to encode lists over Compound and Atom. No user
// program is expected to shadow these.
const (
	ListFunctor   = "_list"
	EmptyListAtom = "_emptyList"
)

// Atom is an uninterpreted symbolic constant.
type Atom struct {
	Name string
}

// NewAtom builds an atom.
func NewAtom(name string) *Atom { return &Atom{Name: name} }

func (a *Atom) String() string {
	if a.Name == EmptyListAtom {
		return "[]"
	}
	return a.Name
}

func (a *Atom) Equal(other Term) bool {
	o, ok := other.(*Atom)
	return ok && a.Name == o.Name
}

func (a *Atom) IsVar() bool { return false }

// Int is a machine integer.
type Int struct {
	Value int64
}

// NewInt builds an integer term.
func NewInt(v int64) *Int { return &Int{Value: v} }

func (i *Int) String() string { return strconv.FormatInt(i.Value, 10) }

func (i *Int) Equal(other Term) bool {
	o, ok := other.(*Int)
	return ok && i.Value == o.Value
}

func (i *Int) IsVar() bool { return false }

// Var is a reference to a logic variable by identity.
type Var struct {
	Variable
}

// NewVar wraps a Variable as a Term.
func NewVar(v Variable) *Var { return &Var{Variable: v} }

func (v *Var) String() string { return v.Variable.String() }

func (v *Var) Equal(other Term) bool {
	o, ok := other.(*Var)
	return ok && v.Variable.Equal(o.Variable)
}

func (v *Var) IsVar() bool { return true }

// Compound is a functor applied to an ordered sequence of argument terms.
// Arity is len(Args). Lists are Compounds over ListFunctor; see Cons/List.
type Compound struct {
	Functor string
	Args    []Term
}

// NewCompound builds a compound term. Calling it with zero args is legal
// but unusual — prefer Atom for arity-0 symbols.
func NewCompound(functor string, args ...Term) *Compound {
	return &Compound{Functor: functor, Args: args}
}

func (c *Compound) String() string {
	if c.Functor == ListFunctor && len(c.Args) == 2 {
		var b strings.Builder
		b.WriteByte('[')
		writeListBody(&b, c)
		b.WriteByte(']')
		return b.String()
	}
	var b strings.Builder
	b.WriteString(c.Functor)
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// writeListBody prints the inside of a [...] list: the head, then
// inspects the tail. An _emptyList tail stops; another _list cell prints
// a comma and recurses; anything else prints a bar followed by that
// tail's own printed form (the "improper list" / partial-list case).
func writeListBody(b *strings.Builder, cell *Compound) {
	b.WriteString(cell.Args[0].String())
	tail := cell.Args[1]
	if isEmptyList(tail) {
		return
	}
	if next, ok := isListCell(tail); ok {
		b.WriteByte(',')
		writeListBody(b, next)
		return
	}
	b.WriteByte('|')
	b.WriteString(tail.String())
}

func (c *Compound) Equal(other Term) bool {
	o, ok := other.(*Compound)
	if !ok || c.Functor != o.Functor || len(c.Args) != len(o.Args) {
		return false
	}
	for i, a := range c.Args {
		if !a.Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

func (c *Compound) IsVar() bool { return false }

// EmptyList is the atom representing the empty list.
func EmptyList() *Atom { return NewAtom(EmptyListAtom) }

// Cons builds the cons cell _list(head, tail).
func Cons(head, tail Term) *Compound { return NewCompound(ListFunctor, head, tail) }

// List builds a proper list from its elements, e.g. List(a, b) ==
// _list(a, _list(b, _emptyList)).
func List(elems ...Term) Term {
	result := Term(EmptyList())
	for i := len(elems) - 1; i >= 0; i-- {
		result = Cons(elems[i], result)
	}
	return result
}

// isListCell reports whether t is a two-argument _list compound.
func isListCell(t Term) (*Compound, bool) {
	c, ok := t.(*Compound)
	if !ok || c.Functor != ListFunctor || len(c.Args) != 2 {
		return nil, false
	}
	return c, true
}

// isEmptyList reports whether t is the _emptyList atom.
func isEmptyList(t Term) bool {
	a, ok := t.(*Atom)
	return ok && a.Name == EmptyListAtom
}

// ContainsVariables reports whether t has any Var anywhere in its
// structure. Ground terms (no variables) can be shared unchanged by the
// renamer instead of being walked and reconstructed.
func ContainsVariables(t Term) bool {
	switch v := t.(type) {
	case *Var:
		return true
	case *Compound:
		for _, a := range v.Args {
			if ContainsVariables(a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
