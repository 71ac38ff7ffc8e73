package logic

// Renamer fresh-renames every variable in a clause before the clause is
// tried against a goal, so its variables cannot collide with any already
// in play. One Renamer is scoped to exactly one clause-trial: construct
// it, call Clause once, then discard it.
type Renamer struct {
	source  *Bindings // shared counter new variables are allocated from
	scratch *Bindings // keyed by original variable id -> fresh Var, for this trial only
}

// NewRenamer builds a renamer that allocates fresh variables from source's
// shared counter and keeps its own scratch frame so that two occurrences
// of the same original variable map to the same fresh variable.
func NewRenamer(source *Bindings) *Renamer {
	return &Renamer{source: source, scratch: New()}
}

// Term renames every variable occurring in t. A t with no variables
// anywhere inside is returned unchanged rather than walked and rebuilt;
// otherwise t is rebuilt as a whole, ground arguments inside it included.
func (r *Renamer) Term(t Term) Term {
	if !ContainsVariables(t) {
		return t
	}
	return r.renameVars(t)
}

func (r *Renamer) renameVars(t Term) Term {
	switch v := t.(type) {
	case *Var:
		if existing := r.scratch.Lookup(v.ID()); existing != nil {
			return existing
		}
		fresh := r.source.Fresh("")
		r.scratch.Insert(v.ID(), fresh)
		return fresh
	case *Compound:
		args := make([]Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = r.renameVars(a)
		}
		return &Compound{Functor: v.Functor, Args: args}
	default:
		return t
	}
}

// Clause renames every variable in c's head and body, mapping the same
// original variable to the same fresh variable throughout.
func (r *Renamer) Clause(c *Clause) *Clause {
	head := r.Term(c.Head)
	body := make([]Term, len(c.Body))
	for i, g := range c.Body {
		body[i] = r.Term(g)
	}
	return &Clause{Head: head, Body: body}
}
