package engine

import "errors"

// ErrNoLegalMoves is returned by ChooseBestAction when every legal root
// action would repeat a recorded history position.
var ErrNoLegalMoves = errors.New("engine: no legal moves")
