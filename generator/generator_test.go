package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"windowgrid/board"
)

func TestGenerateInitialStateOnlyPlacements(t *testing.T) {
	s := board.NewInitialState()
	actions := Generate(s, board.X)

	require.Len(t, actions, len(s.Window.Cells()))
	for _, a := range actions {
		assert.Equal(t, board.Place, a.Kind)
	}
}

func TestGenerateAllLegal(t *testing.T) {
	s := board.NewInitialState()
	for _, side := range []board.Cell{board.X, board.O} {
		for _, a := range Generate(s, side) {
			_, err := board.Apply(s, a, side)
			assert.NoError(t, err, "generated action %v must apply cleanly", a)
		}
	}
}

func TestMoveAndShiftGatedByPlacements(t *testing.T) {
	s := board.NewInitialState()

	// placementsX == 0: no move or shift actions.
	for _, a := range Generate(s, board.X) {
		assert.NotEqual(t, board.Move, a.Kind)
		assert.NotEqual(t, board.Shift, a.Kind)
	}

	s, _ = board.Apply(s, board.PlaceAction(board.Index(1, 1)), board.X)
	// placementsX == 1: still none.
	for _, a := range Generate(s, board.X) {
		assert.NotEqual(t, board.Move, a.Kind)
		assert.NotEqual(t, board.Shift, a.Kind)
	}

	s, _ = board.Apply(s, board.PlaceAction(board.Index(1, 2)), board.X)
	// placementsX == 2: move and shift now appear.
	var sawMove, sawShift bool
	for _, a := range Generate(s, board.X) {
		if a.Kind == board.Move {
			sawMove = true
		}
		if a.Kind == board.Shift {
			sawShift = true
		}
	}
	assert.True(t, sawMove)
	assert.True(t, sawShift)
}

func TestGenerateDeterministicOrder(t *testing.T) {
	s := board.NewInitialState()
	s, _ = board.Apply(s, board.PlaceAction(board.Index(1, 1)), board.X)
	s, _ = board.Apply(s, board.PlaceAction(board.Index(1, 2)), board.X)

	a := Generate(s, board.X)
	b := Generate(s, board.X)
	assert.Equal(t, a, b)

	// Placements must precede moves, which must precede shifts.
	lastKind := board.Place
	for _, action := range a {
		assert.GreaterOrEqual(t, int(action.Kind), int(lastKind))
		lastKind = action.Kind
	}
}

func TestFullWindowOnlyShifts(t *testing.T) {
	s := board.NewInitialState()
	// Fill every window cell so placements are impossible regardless of
	// the placement counter, and moves have no empty destination either.
	for _, idx := range s.Window.Cells() {
		s.Board[idx] = board.X
	}
	s.PlacementsX = 4
	s.PlacementsO = 4

	actions := Generate(s, board.X)
	for _, a := range actions {
		assert.Equal(t, board.Shift, a.Kind)
	}
	assert.NotEmpty(t, actions)
}
