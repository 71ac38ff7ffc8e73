package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenamerLeavesGroundTermUnchanged(t *testing.T) {
	source := New()
	r := NewRenamer(source)
	a := NewAtom("a")
	assert.True(t, a.Equal(r.Term(a)))
}

func TestRenamerReplacesVariableWithFreshOne(t *testing.T) {
	source := New()
	x := source.Fresh("X")
	r := NewRenamer(source)

	renamed := r.Term(x)
	rv, ok := renamed.(*Var)
	assert.True(t, ok)
	assert.NotEqual(t, x.ID(), rv.ID())
}

func TestRenamerMapsDistinctVariablesToDistinctFreshOnes(t *testing.T) {
	source := New()
	x := source.Fresh("X")
	y := source.Fresh("Y")
	r := NewRenamer(source)

	fxy := r.Term(NewCompound("f", x, y))
	c := fxy.(*Compound)
	v1 := c.Args[0].(*Var)
	v2 := c.Args[1].(*Var)
	assert.NotEqual(t, v1.ID(), v2.ID())
}

func TestRenamerMapsSameVariableToSameFreshOneWithinOneTerm(t *testing.T) {
	source := New()
	x := source.Fresh("X")
	r := NewRenamer(source)

	fxx := r.Term(NewCompound("f", x, x))
	c := fxx.(*Compound)
	v1 := c.Args[0].(*Var)
	v2 := c.Args[1].(*Var)
	assert.Equal(t, v1.ID(), v2.ID())
}

func TestRenamerClauseRenamesHeadAndBodyConsistently(t *testing.T) {
	source := New()
	x := source.Fresh("X")
	clause := Rule(NewCompound("p", x), NewCompound("q", x))
	r := NewRenamer(source)

	renamed := r.Clause(clause)
	headVar := renamed.Head.(*Compound).Args[0].(*Var)
	bodyVar := renamed.Body[0].(*Compound).Args[0].(*Var)
	assert.Equal(t, headVar.ID(), bodyVar.ID())
}

func TestRenamerFreshnessIsDisjointFromEnclosingEnvironment(t *testing.T) {
	source := New()
	before := source.Fresh("Before")
	clause := Rule(NewCompound("p", before))

	r := NewRenamer(source)
	renamed := r.Clause(clause)
	renamedVar := renamed.Head.(*Compound).Args[0].(*Var)

	assert.NotEqual(t, before.ID(), renamedVar.ID())
}
