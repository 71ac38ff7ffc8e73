package logic

// Bindings is a stack of frames mapping variable ids to terms. The stack is
// non-empty: every Bindings value is either a root (the bottom of the
// stack, created once per session) or a child pushed on top of a parent.
// Lookup walks frames innermost-to-outermost; insertions always target the
// innermost frame. This mirrors the original Rust Bindings exactly, except
// that the variable-id counter is shared by pointer across the whole
// stack rather than cloned into each child — every frame derived from one
// root allocates from the same sequence.
type Bindings struct {
	frame  map[int64]Term
	parent *Bindings
	count  *counter
}

// New creates a fresh root Bindings: an empty frame, a counter starting at
// zero, and no parent. The counter it holds outlives every frame pushed
// from it for the life of the session.
func New() *Bindings {
	return &Bindings{
		frame: make(map[int64]Term),
		count: newCounter(),
	}
}

// Push creates a child frame on top of b. The child shares b's counter and
// keeps b reachable for lookup; it is meant to be discarded (by simply
// dropping the reference) when its speculative branch yields no more
// answers.
func (b *Bindings) Push() *Bindings {
	return &Bindings{
		frame:  make(map[int64]Term),
		parent: b,
		count:  b.count,
	}
}

// Fresh allocates a new Variable from the counter shared by this entire
// binding stack and wraps it as a Var term. name may be empty for an
// unnamed (renamed) variable.
func (b *Bindings) Fresh(name string) *Var {
	return NewVar(b.count.allocate(name))
}

// Lookup performs a single-step lookup: the term directly associated with
// id in the first frame (innermost outward) that contains it, or nil if
// no frame binds it. It never follows a chain of bindings — that is
// Walk's job.
func (b *Bindings) Lookup(id int64) Term {
	for f := b; f != nil; f = f.parent {
		if t, ok := f.frame[id]; ok {
			return t
		}
	}
	return nil
}

// Insert installs a binding for id in the innermost frame only. No occurs
// check is performed; callers (the resolver) are responsible for
// discarding a frame if the branch it belongs to ultimately fails.
func (b *Bindings) Insert(id int64, term Term) {
	b.frame[id] = term
}

// Walk ("instantiation") recursively replaces every variable in t by the
// term a chain of single-step Lookups finally leads to. Compounds are
// walked argument by argument; atoms and integers are returned unchanged.
// A variable whose chain ends at another unbound variable, or at itself,
// is returned as that terminal variable. There is no occurs check
// anywhere in this package, so Walk can diverge on a cyclic binding
// produced by Unify — that is an accepted, documented limitation, not a
// bug to be fixed here.
func (b *Bindings) Walk(t Term) Term {
	v, ok := t.(*Var)
	if !ok {
		if c, ok := t.(*Compound); ok {
			return b.walkCompound(c)
		}
		return t
	}
	bound := b.Lookup(v.ID())
	if bound == nil {
		return t
	}
	return b.Walk(bound)
}

func (b *Bindings) walkCompound(c *Compound) Term {
	args := make([]Term, len(c.Args))
	for i, a := range c.Args {
		args[i] = b.Walk(a)
	}
	return &Compound{Functor: c.Functor, Args: args}
}

// Size returns the total number of bindings across every frame in the
// stack, root included. It exists for tests that want to observe how
// much work resolution has done between two answer pulls.
func (b *Bindings) Size() int {
	total := 0
	for f := b; f != nil; f = f.parent {
		total += len(f.frame)
	}
	return total
}
