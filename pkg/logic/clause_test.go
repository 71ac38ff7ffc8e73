package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactIsFact(t *testing.T) {
	c := Fact(NewAtom("a"))
	assert.True(t, c.IsFact())
	assert.Equal(t, "a.", c.String())
}

func TestRuleIsNotFact(t *testing.T) {
	c := Rule(NewAtom("a"), NewAtom("b"), NewAtom("c"))
	assert.False(t, c.IsFact())
	assert.Equal(t, "a :- b, c.", c.String())
}
