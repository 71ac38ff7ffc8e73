package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabasePreservesInsertionOrder(t *testing.T) {
	root := New()
	db := NewDatabase(root)
	db.Add(Fact(NewAtom("a")))
	db.Add(Fact(NewAtom("b")))
	db.Add(Fact(NewAtom("c")))

	names := make([]string, len(db.Clauses()))
	for i, c := range db.Clauses() {
		names[i] = c.Head.String()
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestDatabaseRootIsSharedForRenaming(t *testing.T) {
	root := New()
	db := NewDatabase(root)
	assert.Same(t, root, db.Root())
}
