package logic

// Unify attempts to make t1 and t2 equal under env, adding bindings to
// env's innermost frame as it goes. On failure, whatever bindings were
// already added by the partially-successful attempt remain in env — the
// caller (the resolver) owns discarding the frame.
//
// The variable cases are checked first: variable-first (see
// unifyVariable), then variable-second (swap and retry). Then come
// atom/atom by name, int/int by value, compound/compound by functor, arity
// and pairwise argument unification, else fail. Since the three
// structural cases only apply when neither side is a variable, this gives
// the same results as checking them first. There is no occurs check: unifying a variable with a term
// that contains it succeeds and binds the variable to a cyclic shape;
// Walk on that variable will not terminate. This is inherited, accepted
// behavior, not a bug.
func Unify(t1, t2 Term, env *Bindings) bool {
	if _, ok := t1.(*Var); ok {
		return unifyVariable(t1, t2, env)
	}
	if _, ok := t2.(*Var); ok {
		return unifyVariable(t2, t1, env)
	}
	switch a := t1.(type) {
	case *Atom:
		b, ok := t2.(*Atom)
		return ok && a.Name == b.Name
	case *Int:
		b, ok := t2.(*Int)
		return ok && a.Value == b.Value
	case *Compound:
		b, ok := t2.(*Compound)
		if !ok || a.Functor != b.Functor || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Unify(a.Args[i], b.Args[i], env) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// unifyVariable handles the case where t1 is known to be a Var. Both
// terms are walked first, so a and b are each either a terminal variable
// or a non-variable term.
func unifyVariable(t1, t2 Term, env *Bindings) bool {
	a := env.Walk(t1)
	b := env.Walk(t2)
	av, aIsVar := a.(*Var)
	if aIsVar {
		if bv, ok := b.(*Var); ok && av.ID() == bv.ID() {
			return true
		}
		env.Insert(av.ID(), b)
		return true
	}
	return Unify(a, b, env)
}
