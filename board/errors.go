package board

import "errors"

// Illegal-action kinds. The engine never produces one of these itself
// (the generator precedes application), but a caller that applies a
// hand-crafted action can hit any of them.
var (
	ErrPlacementOverLimit     = errors.New("board: placement over limit")
	ErrCellOccupied           = errors.New("board: cell occupied")
	ErrMovementPremature      = errors.New("board: movement premature")
	ErrNotOwnPiece            = errors.New("board: not own piece")
	ErrDestinationOccupied    = errors.New("board: destination occupied")
	ErrDestinationOutsideWindow = errors.New("board: destination outside window")
	ErrShiftPremature         = errors.New("board: shift premature")
	ErrShiftOutOfBounds       = errors.New("board: shift out of bounds")
)
