package logic

// VarBinding is one user-visible query variable mapped to its fully
// walked term in a single Answer.
type VarBinding struct {
	Name  string
	Value Term
}

// Answer is the observable result of one successful resolution: every
// distinct variable of the original query, paired with its instantiated
// term. A bound value may itself still contain unbound (possibly
// freshly-renamed) variables — that represents the logical fact that the
// variable is free in this particular answer.
type Answer struct {
	Bindings []VarBinding
}

// AnswerStream pulls Answers one at a time from an underlying resolver
// Stream, walking only the query's own variables at each step.
type AnswerStream struct {
	vars   []*Var
	stream *Stream
	pulled bool // stream's head has already been returned by Next
}

// Next returns the next Answer, or ok=false once the stream is exhausted.
// Calling Next never does more resolution work than producing this one
// Answer requires.
func (a *AnswerStream) Next() (Answer, bool) {
	if a.pulled {
		a.stream = a.stream.Rest()
	}
	env, ok := a.stream.Head()
	if !ok {
		return Answer{}, false
	}
	a.pulled = true
	return buildAnswer(a.vars, env), true
}

// All eagerly drains every Answer. Convenient for tests and for the CLI's
// batch mode; the core itself never calls this.
func (a *AnswerStream) All() []Answer {
	var out []Answer
	for {
		next, ok := a.Next()
		if !ok {
			return out
		}
		out = append(out, next)
	}
}

func buildAnswer(vars []*Var, env *Bindings) Answer {
	bindings := make([]VarBinding, len(vars))
	for i, v := range vars {
		bindings[i] = VarBinding{Name: v.String(), Value: env.Walk(v)}
	}
	return Answer{Bindings: bindings}
}

// Run is the top-level resolution entry point: collect the query's own
// distinct variables, then solve the query body, producing one Answer per
// success environment SolveBody yields.
func Run(query []Term, db *Database, env *Bindings) *AnswerStream {
	return &AnswerStream{vars: distinctVariables(query), stream: SolveBody(query, db, env)}
}

// distinctVariables collects the distinct Var terms appearing anywhere in
// terms, in order of first appearance.
func distinctVariables(terms []Term) []*Var {
	seen := make(map[int64]bool)
	var vars []*Var
	var walk func(t Term)
	walk = func(t Term) {
		switch v := t.(type) {
		case *Var:
			if !seen[v.ID()] {
				seen[v.ID()] = true
				vars = append(vars, v)
			}
		case *Compound:
			for _, a := range v.Args {
				walk(a)
			}
		}
	}
	for _, t := range terms {
		walk(t)
	}
	return vars
}
