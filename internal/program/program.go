// Package program provides the Program façade: the single entry point the
// CLI (cmd/hornlog) and REPL use to load source text and run queries
// against it, without touching pkg/lexer, pkg/parser or pkg/logic
// directly. It corresponds to the reference implementation's Runner.
package program

import (
	"github.com/sirupsen/logrus"

	"github.com/gitrdm/hornlog/pkg/logic"
	"github.com/gitrdm/hornlog/pkg/parser"
)

// Log is the package-level logger every Program logs through. It defaults
// to logrus's standard logger (Info level, writing to stderr) so that code and tests
// which never call SetLogger see no behavior change; cmd/hornlog installs
// one built from internal/config before loading any program.
var Log = logrus.StandardLogger()

// SetLogger replaces the package-level logger. The interpreter core in
// pkg/logic never logs; only this façade and its CLI caller do.
func SetLogger(l *logrus.Logger) {
	Log = l
}

// Program is a parsed, loaded clause database plus the root Bindings its
// queries allocate fresh variables from.
type Program struct {
	db   *logic.Database
	root *logic.Bindings
}

// Load parses src as a sequence of clauses and returns a Program ready to
// be queried. A Program may be queried any number of times; each Query
// call resolves independently against the same underlying database.
func Load(src string) (*Program, error) {
	root := logic.New()
	clauses, err := parser.ParseProgram(src, root)
	if err != nil {
		Log.WithError(err).Warn("program load failed")
		return nil, err
	}
	db := logic.NewDatabase(root)
	for _, c := range clauses {
		db.Add(c)
	}
	Log.WithField("clauses", len(clauses)).Info("program loaded")
	return &Program{db: db, root: root}, nil
}

// Query parses a single `?- goal, ...` query against p's database and
// returns its lazy answer stream.
func (p *Program) Query(src string) (*logic.AnswerStream, error) {
	goals, err := parser.ParseQuery(src, p.root)
	if err != nil {
		Log.WithError(err).WithField("query", src).Warn("query parse failed")
		return nil, err
	}
	Log.WithField("query", src).Debug("query started")
	return logic.Run(goals, p.db, p.root), nil
}

// ClauseCount reports how many clauses are currently loaded, for CLI
// summary output.
func (p *Program) ClauseCount() int {
	return len(p.db.Clauses())
}

// Assert parses src as one or more additional clauses and appends them, in
// order, to p's database, making them visible to every subsequent Query. Used by the
// REPL's ability to grow a program interactively.
func (p *Program) Assert(src string) error {
	clauses, err := parser.ParseProgram(src, p.root)
	if err != nil {
		Log.WithError(err).Warn("assert failed")
		return err
	}
	for _, c := range clauses {
		p.db.Add(c)
	}
	Log.WithField("clauses", len(clauses)).Debug("asserted clause(s)")
	return nil
}
