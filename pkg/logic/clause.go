package logic

import "strings"

// Clause is a head term plus an ordered, possibly empty, body of goal
// terms. A Clause with an empty Body is a fact; one with a non-empty Body
// is a rule whose conjuncts are solved left to right. Clauses are
// immutable once built.
type Clause struct {
	Head Term
	Body []Term
}

// Fact builds a clause with an empty body.
func Fact(head Term) *Clause {
	return &Clause{Head: head}
}

// Rule builds a clause with a non-empty body.
func Rule(head Term, body ...Term) *Clause {
	return &Clause{Head: head, Body: body}
}

// IsFact reports whether the clause has no body goals.
func (c *Clause) IsFact() bool { return len(c.Body) == 0 }

func (c *Clause) String() string {
	if c.IsFact() {
		return c.Head.String() + "."
	}
	var b strings.Builder
	b.WriteString(c.Head.String())
	b.WriteString(" :- ")
	for i, g := range c.Body {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(g.String())
	}
	b.WriteByte('.')
	return b.String()
}
