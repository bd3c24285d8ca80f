package board

import "math/rand"

// StateKey is a deterministic fingerprint of a position: board contents,
// window corner, side to move, and both placement counters. Equal keys
// mean semantically equal positions for search purposes.
//
// Built with Zobrist hashing so the mutate-in-place search hot path
// (GameState.Do / Undo) can update it incrementally with a handful of
// XORs instead of recomputing a packed key from scratch every node.
type StateKey uint64

var (
	// zobristCell[cell][tag] keys a board cell holding a given marker.
	zobristCell [Cells][3]StateKey
	// zobristWindow[ax][ay] keys the active window's corner.
	zobristWindow [MaxCorner + 1][MaxCorner + 1]StateKey
	// zobristSide is XORed in when O is to move.
	zobristSide StateKey
	// zobristPlacements[sideIndex][count] keys a placement counter value.
	zobristPlacements [2][MaxPlacements + 1]StateKey
)

func init() {
	// Fixed seed: the key must be reproducible across runs and processes
	// for tests and for any persisted TT to stay meaningful.
	rng := rand.New(rand.NewSource(0x57494e444f57_5347))

	for cell := 0; cell < Cells; cell++ {
		for tag := 0; tag < 3; tag++ {
			zobristCell[cell][tag] = StateKey(rng.Uint64())
		}
	}
	for ax := 0; ax <= MaxCorner; ax++ {
		for ay := 0; ay <= MaxCorner; ay++ {
			zobristWindow[ax][ay] = StateKey(rng.Uint64())
		}
	}
	zobristSide = StateKey(rng.Uint64())
	for side := 0; side < 2; side++ {
		for count := 0; count <= MaxPlacements; count++ {
			zobristPlacements[side][count] = StateKey(rng.Uint64())
		}
	}
}

func sideIndex(c Cell) int {
	if c == O {
		return 1
	}
	return 0
}

// computeKey derives the key from scratch. Used only to build the
// initial state; every later state is reached by incremental XOR.
func computeKey(s GameState) StateKey {
	var key StateKey
	for i, cell := range s.Board {
		key ^= zobristCell[i][cell]
	}
	key ^= zobristWindow[s.Window.AX][s.Window.AY]
	if s.ToMove == O {
		key ^= zobristSide
	}
	key ^= zobristPlacements[0][s.PlacementsX]
	key ^= zobristPlacements[1][s.PlacementsO]
	return key
}
