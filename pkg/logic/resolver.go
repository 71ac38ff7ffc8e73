package logic

// SolveGoal tries every clause in db, in declaration order, against goal.
// For each clause it pushes a child frame to isolate the trial's
// speculative bindings, renames the clause with fresh variables from the
// database's root counter (db.Root()), unifies goal with the renamed head
// in that frame, and on success recurses into the
// renamed body. Clauses whose head doesn't unify contribute nothing to
// the stream and are simply skipped; their trial frame is never referenced
// again, so the garbage collector reclaims it like anything else.
func SolveGoal(goal Term, db *Database, env *Bindings) *Stream {
	return solveClauses(goal, db.Clauses(), db, env)
}

func solveClauses(goal Term, clauses []*Clause, db *Database, env *Bindings) *Stream {
	for len(clauses) > 0 {
		clause := clauses[0]
		rest := clauses[1:]

		trial := env.Push()
		renamed := NewRenamer(db.Root()).Clause(clause)
		if !Unify(goal, renamed.Head, trial) {
			clauses = rest
			continue
		}

		bodyStream := SolveBody(renamed.Body, db, trial)
		return concat(bodyStream, func() *Stream { return solveClauses(goal, rest, db, env) })
	}
	return Empty()
}

// SolveBody solves a conjunction of goals left to right. An empty
// conjunction succeeds once, with env unchanged. Otherwise it solves the
// first goal and, for every resulting environment, solves the remaining
// goals — exactly nested lazy flat-map, so only as much of the search
// tree is built as the caller actually pulls answers from.
func SolveBody(goals []Term, db *Database, env *Bindings) *Stream {
	if len(goals) == 0 {
		return One(env)
	}
	first, rest := goals[0], goals[1:]
	return concatMap(SolveGoal(first, db, env), func(env2 *Bindings) *Stream {
		return SolveBody(rest, db, env2)
	})
}
