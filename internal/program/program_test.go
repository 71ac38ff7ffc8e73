package program

import (
	"testing"

	"github.com/gitrdm/hornlog/pkg/logic"
	"github.com/stretchr/testify/assert"
)

func TestLoadAndQueryTwoOutcomes(t *testing.T) {
	src := `
f(a, a).
f(a, b).
r(U, V) :- f(U, V).
`
	p, err := Load(src)
	assert.NoError(t, err)
	assert.Equal(t, 3, p.ClauseCount())

	stream, err := p.Query(`?- r(Y, X).`)
	assert.NoError(t, err)
	answers := stream.All()
	assert.Len(t, answers, 2)
	assert.Equal(t, "Y = a, X = a", answers[0].String())
	assert.Equal(t, "Y = a, X = b", answers[1].String())
}

func TestLoadAndQueryListAppendGenerator(t *testing.T) {
	src := `
append([], List, List).
append([Head|Tail], List, [Head|Rest]) :- append(Tail, List, Rest).
`
	p, err := Load(src)
	assert.NoError(t, err)

	stream, err := p.Query(`?- append(X, Y, [1, 2]).`)
	assert.NoError(t, err)
	answers := stream.All()
	assert.Equal(t, []string{
		"X = [], Y = [1,2]",
		"X = [1], Y = [2]",
		"X = [1,2], Y = []",
	}, []string{answers[0].String(), answers[1].String(), answers[2].String()})
}

func TestLoadRejectsMalformedSource(t *testing.T) {
	_, err := Load(`f(a`)
	assert.Error(t, err)
}

func TestQueryRejectsMalformedQuery(t *testing.T) {
	p, err := Load(`a.`)
	assert.NoError(t, err)
	_, err = p.Query(`a.`)
	assert.Error(t, err)
}

func TestAssertGrowsDatabaseForSubsequentQueries(t *testing.T) {
	p, err := Load(`a.`)
	assert.NoError(t, err)

	stream, err := p.Query(`?- X.`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"X = a"}, mapStrings(stream.All()))

	err = p.Assert(`b.`)
	assert.NoError(t, err)

	stream, err = p.Query(`?- X.`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"X = a", "X = b"}, mapStrings(stream.All()))
}

func mapStrings(answers []logic.Answer) []string {
	out := make([]string, len(answers))
	for i, a := range answers {
		out[i] = a.String()
	}
	return out
}
