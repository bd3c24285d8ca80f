package engine

import "windowgrid/board"

// KeySet is a set of state keys. It backs two semantically distinct
// collections that must never be the same instance: the search-local
// path set, which guards in-search cycles and is balanced add/remove
// within one recursion, and the game-level history, which only ever
// grows as real moves are committed.
type KeySet map[board.StateKey]struct{}

// NewKeySet returns an empty key set.
func NewKeySet() KeySet {
	return make(KeySet)
}

// Add inserts key into the set.
func (k KeySet) Add(key board.StateKey) {
	k[key] = struct{}{}
}

// Remove deletes key from the set.
func (k KeySet) Remove(key board.StateKey) {
	delete(k, key)
}

// Has reports whether key is present.
func (k KeySet) Has(key board.StateKey) bool {
	_, ok := k[key]
	return ok
}

// Clone returns an independent copy of the set.
func (k KeySet) Clone() KeySet {
	out := make(KeySet, len(k))
	for key := range k {
		out[key] = struct{}{}
	}
	return out
}
