package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(tokens []Token) []Kind {
	ks := make([]Kind, len(tokens))
	for i, t := range tokens {
		ks[i] = t.Kind
	}
	return ks
}

func TestLexMixedTokenStream(t *testing.T) {
	src := `(X? (y, 12) 0.4 true <= >= ') :- ?-[].|`
	tokens, err := Lex(src)
	assert.NoError(t, err)

	assert.Equal(t, []Kind{
		Left, Variable, Atom, Left, Atom, Comma, Integer, Right,
		Float, True, Atom, Atom, Quote, Right, Implies, Query,
		LeftSquare, RightSquare, FullStop, Bar,
	}, kinds(tokens))

	assert.Equal(t, "X", tokens[1].Text)
	assert.Equal(t, "?", tokens[2].Text)
	assert.Equal(t, "y", tokens[4].Text)
	assert.Equal(t, int64(12), tokens[6].Int)
	assert.Equal(t, 0.4, tokens[8].Float)
	assert.Equal(t, "<=", tokens[10].Text)
	assert.Equal(t, ">=", tokens[11].Text)
}

func TestLexDoubleQuotedStrings(t *testing.T) {
	tokens, err := Lex(`"abc"`)
	assert.NoError(t, err)
	assert.Equal(t, []Token{{Kind: String, Text: "abc", Offset: 0}}, tokens)

	tokens, err = Lex(`"a --- c"`)
	assert.NoError(t, err)
	assert.Equal(t, "a --- c", tokens[0].Text)
}

func TestLexUnterminatedStringIsLexError(t *testing.T) {
	_, err := Lex(`"abc`)
	assert.Error(t, err)
}

func TestLexBareColonIsAtomMinus(t *testing.T) {
	tokens, err := Lex(`:`)
	assert.NoError(t, err)
	assert.Equal(t, []Token{{Kind: Atom, Text: "-", Offset: 0}}, tokens)
}

func TestLexFullStopIsAlwaysAFullStop(t *testing.T) {
	tokens, err := Lex(`a.`)
	assert.NoError(t, err)
	assert.Equal(t, []Kind{Atom, FullStop}, kinds(tokens))
}

func TestLexLowercaseIdentifierIsAtom(t *testing.T) {
	tokens, err := Lex(`foo_bar`)
	assert.NoError(t, err)
	assert.Equal(t, Atom, tokens[0].Kind)
	assert.Equal(t, "foo_bar", tokens[0].Text)
}

func TestLexUppercaseIdentifierIsVariable(t *testing.T) {
	tokens, err := Lex(`Foo`)
	assert.NoError(t, err)
	assert.Equal(t, Variable, tokens[0].Kind)
}
