package logic

// Database is an ordered, append-only collection of clauses plus the root
// Bindings whose counter is shared for renaming every clause trial.
// Iteration is always insertion order: that order is observable, since it
// determines the sequence in which alternative answers are produced.
// There is deliberately no indexing of clauses by head functor — every
// query scans the whole database linearly, trading lookup speed for the
// deterministic, declaration-order answer sequencing the resolver
// promises.
type Database struct {
	clauses []*Clause
	root    *Bindings
}

// NewDatabase builds an empty database rooted at root.
func NewDatabase(root *Bindings) *Database {
	return &Database{root: root}
}

// Add appends a clause, preserving the order clauses were added in.
func (d *Database) Add(c *Clause) {
	d.clauses = append(d.clauses, c)
}

// Clauses returns the clauses in insertion order. Callers must not mutate
// the returned slice.
func (d *Database) Clauses() []*Clause {
	return d.clauses
}

// Root returns the shared root Bindings used to allocate fresh variables
// when renaming clauses out of this database.
func (d *Database) Root() *Bindings {
	return d.root
}
