package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"windowgrid/board"
)

func TestKeySetAddRemoveHas(t *testing.T) {
	ks := NewKeySet()
	var k board.StateKey = 42

	assert.False(t, ks.Has(k))
	ks.Add(k)
	assert.True(t, ks.Has(k))
	ks.Remove(k)
	assert.False(t, ks.Has(k))
}

func TestKeySetCloneIsIndependent(t *testing.T) {
	ks := NewKeySet()
	ks.Add(1)

	clone := ks.Clone()
	clone.Add(2)

	assert.True(t, ks.Has(1))
	assert.False(t, ks.Has(2))
	assert.True(t, clone.Has(1))
	assert.True(t, clone.Has(2))
}
