package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// runQuery is a small test harness: build a query out of query vars drawn
// from root, run it against db, and return every Answer's printed form.
func runQuery(db *Database, query []Term) []string {
	answers := Run(query, db, db.Root()).All()
	out := make([]string, len(answers))
	for i, a := range answers {
		out[i] = a.String()
	}
	return out
}

func TestScenarioFactWithNoVariables(t *testing.T) {
	root := New()
	db := NewDatabase(root)
	db.Add(Fact(NewAtom("a")))

	out := runQuery(db, []Term{NewAtom("a")})
	assert.Equal(t, []string{"true"}, out)
}

func TestScenarioTwoFactsOneVariable(t *testing.T) {
	root := New()
	db := NewDatabase(root)
	db.Add(Fact(NewAtom("a")))
	db.Add(Fact(NewAtom("b")))

	x := root.Fresh("X")
	out := runQuery(db, []Term{x})
	assert.Equal(t, []string{"X = a", "X = b"}, out)
}

func TestScenarioRepeatedVariableInQueryFiltersAnswers(t *testing.T) {
	root := New()
	db := NewDatabase(root)
	db.Add(Fact(NewCompound("f", NewAtom("a"), NewAtom("a"))))
	db.Add(Fact(NewCompound("f", NewAtom("a"), NewAtom("b"))))

	x := root.Fresh("X")
	out := runQuery(db, []Term{NewCompound("f", x, x)})
	assert.Equal(t, []string{"X = a"}, out)
}

func TestScenarioRuleOverTwoFacts(t *testing.T) {
	root := New()
	db := NewDatabase(root)
	db.Add(Fact(NewCompound("f", NewAtom("a"), NewAtom("a"))))
	db.Add(Fact(NewCompound("f", NewAtom("a"), NewAtom("b"))))
	u := root.Fresh("U")
	v := root.Fresh("V")
	db.Add(Rule(NewCompound("r", u, v), NewCompound("f", u, v)))

	y := root.Fresh("Y")
	x := root.Fresh("X")
	out := runQuery(db, []Term{NewCompound("r", y, x)})
	assert.Equal(t, []string{"Y = a, X = a", "Y = a, X = b"}, out)
}

func TestScenarioListAppendConcreteLists(t *testing.T) {
	root := New()
	db := NewDatabase(root)
	l := root.Fresh("List")
	db.Add(Fact(NewCompound("append", EmptyList(), l, l)))

	head := root.Fresh("Head")
	tail := root.Fresh("Tail")
	list := root.Fresh("List2")
	rest := root.Fresh("Rest")
	db.Add(Rule(
		NewCompound("append", Cons(head, tail), list, Cons(head, rest)),
		NewCompound("append", tail, list, rest),
	))

	both := root.Fresh("Both")
	query := []Term{NewCompound("append",
		List(NewInt(1), NewInt(2)),
		List(NewInt(3), NewInt(4)),
		both,
	)}
	out := runQuery(db, query)
	assert.Equal(t, []string{"Both = [1,2,3,4]"}, out)
}

func TestScenarioListAppendGenerator(t *testing.T) {
	root := New()
	db := NewDatabase(root)
	l := root.Fresh("List")
	db.Add(Fact(NewCompound("append", EmptyList(), l, l)))

	head := root.Fresh("Head")
	tail := root.Fresh("Tail")
	list := root.Fresh("List2")
	rest := root.Fresh("Rest")
	db.Add(Rule(
		NewCompound("append", Cons(head, tail), list, Cons(head, rest)),
		NewCompound("append", tail, list, rest),
	))

	x := root.Fresh("X")
	y := root.Fresh("Y")
	query := []Term{NewCompound("append", x, y, List(NewInt(1), NewInt(2)))}
	out := runQuery(db, query)
	assert.Equal(t, []string{
		"X = [], Y = [1,2]",
		"X = [1], Y = [2]",
		"X = [1,2], Y = []",
	}, out)
}

func TestScenarioTwoStepRuleChaining(t *testing.T) {
	root := New()
	db := NewDatabase(root)
	db.Add(Fact(NewCompound("f", NewAtom("a"), NewAtom("a"))))

	u := root.Fresh("U")
	v := root.Fresh("V")
	db.Add(Rule(NewCompound("r", u, v), NewCompound("f", u, v)))

	m := root.Fresh("M")
	n := root.Fresh("N")
	db.Add(Rule(NewCompound("s", m, n), NewCompound("r", m, n)))

	x := root.Fresh("X")
	out := runQuery(db, []Term{NewCompound("s", x, NewAtom("a"))})
	assert.Equal(t, []string{"X = a"}, out)
}

// TestLazinessSkipsUnneededAlternatives proves §5/§8's laziness claim by
// construction: the second clause's body would recurse forever if it were
// ever solved. Demanding only the first answer must never touch it.
func TestLazinessSkipsUnneededAlternatives(t *testing.T) {
	root := New()
	db := NewDatabase(root)
	db.Add(Fact(NewAtom("a")))

	loopX := root.Fresh("X")
	db.Add(Rule(NewCompound("loop", loopX), NewCompound("loop", loopX)))

	x := root.Fresh("X")
	stream := Run([]Term{x}, db, root)

	// If solving the first answer ever touched the looping clause's
	// body, this call would never return.
	answer, ok := stream.Next()
	assert.True(t, ok)
	assert.Equal(t, "X = a", answer.String())
}
