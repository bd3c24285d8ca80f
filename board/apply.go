package board

// Undo carries the information needed to reverse one Do call. Cheap to
// build and to replay, so the search hot path can mutate a single
// GameState and roll it back instead of copying on every node.
type Undo struct {
	action     Action
	side       Cell
	prevWindow Window
	prevPlaceX int
	prevPlaceO int
	prevKey    StateKey
}

// Do applies action as side mutates s in place and returns an Undo that
// reverses it. It assumes the action is legal (as produced by
// generator.Generate); see Apply for the checked, value-returning form.
func (s *GameState) Do(action Action, side Cell) Undo {
	u := Undo{
		action:     action,
		side:       side,
		prevWindow: s.Window,
		prevPlaceX: s.PlacementsX,
		prevPlaceO: s.PlacementsO,
		prevKey:    s.key,
	}

	switch action.Kind {
	case Place:
		s.key ^= zobristCell[action.Index][Empty]
		s.Board[action.Index] = side
		s.key ^= zobristCell[action.Index][side]

		n := s.Placements(side) + 1
		s.key ^= zobristPlacements[sideIndex(side)][s.Placements(side)]
		s.setPlacements(side, n)
		s.key ^= zobristPlacements[sideIndex(side)][n]

	case Move:
		s.key ^= zobristCell[action.From][side]
		s.Board[action.From] = Empty
		s.key ^= zobristCell[action.From][Empty]

		s.key ^= zobristCell[action.To][Empty]
		s.Board[action.To] = side
		s.key ^= zobristCell[action.To][side]

	case Shift:
		s.key ^= zobristWindow[s.Window.AX][s.Window.AY]
		s.Window.AX += action.DX
		s.Window.AY += action.DY
		s.key ^= zobristWindow[s.Window.AX][s.Window.AY]
	}

	s.key ^= zobristSide
	s.ToMove = s.ToMove.Opponent()

	return u
}

// Undo reverses the Do call that produced u.
func (s *GameState) Undo(u Undo) {
	s.Window = u.prevWindow
	s.PlacementsX = u.prevPlaceX
	s.PlacementsO = u.prevPlaceO
	s.ToMove = s.ToMove.Opponent()
	s.key = u.prevKey

	switch u.action.Kind {
	case Place:
		s.Board[u.action.Index] = Empty
	case Move:
		s.Board[u.action.From] = u.side
		s.Board[u.action.To] = Empty
	case Shift:
		// Window already restored above.
	}
}

// Apply validates and applies action as side against s, returning a new
// state or a sentinel error from errors.go. This is the checked,
// copy-on-write surface used by tests and by external callers supplying
// hand-built actions; the search itself uses Do/Undo.
func Apply(s GameState, action Action, side Cell) (GameState, error) {
	switch action.Kind {
	case Place:
		if s.Placements(side) >= MaxPlacements {
			return s, ErrPlacementOverLimit
		}
		if s.Board[action.Index] != Empty {
			return s, ErrCellOccupied
		}

	case Move:
		if s.Placements(side) < MinPlacementsForMoveOrShift {
			return s, ErrMovementPremature
		}
		if s.Board[action.From] != side {
			return s, ErrNotOwnPiece
		}
		if s.Board[action.To] != Empty {
			return s, ErrDestinationOccupied
		}
		toRow, toCol := RowCol(action.To)
		if !s.Window.Contains(toRow, toCol) {
			return s, ErrDestinationOutsideWindow
		}

	case Shift:
		if s.Placements(side) < MinPlacementsForMoveOrShift {
			return s, ErrShiftPremature
		}
		if _, ok := s.Window.Shifted(action.DX, action.DY); !ok {
			return s, ErrShiftOutOfBounds
		}
	}

	next := s
	next.Do(action, side)
	return next, nil
}
