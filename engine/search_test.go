package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"windowgrid/board"
	"windowgrid/eval"
)

func newParams(aiSide board.Cell, maxDepth int, evalFn eval.Func) *Params {
	return &Params{
		AISide:   aiSide,
		MaxDepth: maxDepth,
		Eval:     evalFn,
		TT:       NewTranspositionTable(),
		History:  NewKeySet(),
		PathSet:  NewKeySet(),
		Stats:    &Stats{},
	}
}

func TestSearchFindsImmediateWin(t *testing.T) {
	s := board.NewInitialState()
	s.Board[board.Index(1, 1)] = board.X
	s.Board[board.Index(1, 2)] = board.X
	s.PlacementsX = 2

	p := newParams(board.X, 2, eval.TerminalOnly)
	result := Search(s, board.X, 0, math.MinInt32, math.MaxInt32, p)

	require.True(t, result.HasAction)
	assert.Equal(t, board.Place, result.BestAction.Kind)
	assert.Equal(t, board.Index(1, 3), result.BestAction.Index)
}

func TestSearchDepthLimitProducesLeaf(t *testing.T) {
	s := board.NewInitialState()
	p := newParams(board.X, 1, eval.TerminalOnly)
	result := Search(s, board.X, 0, math.MinInt32, math.MaxInt32, p)
	require.True(t, result.HasAction)
	assert.Equal(t, 0, result.Score, "no forced win within one ply, default plugin sees a non-terminal draw score")
}

func TestSearchAvoidsHistoryRepetition(t *testing.T) {
	s := board.NewInitialState()
	s.Board[board.Index(1, 1)] = board.X
	s.PlacementsX = 2
	s.PlacementsO = 2

	p := newParams(board.X, 2, eval.TerminalOnly)

	// Forbid every root action reachable by shifting the window one step
	// right, so Search must pick a differently-shaped action instead.
	shiftRight := board.ShiftAction(1, 0)
	undo := s.Do(shiftRight, board.X)
	p.History.Add(s.Key())
	s.Undo(undo)

	result := Search(s, board.X, 0, math.MinInt32, math.MaxInt32, p)
	require.True(t, result.HasAction)
	if result.BestAction.Kind == board.Shift {
		assert.NotEqual(t, shiftRight, result.BestAction)
	}
}

func TestSearchNoLegalActionsReturnsLeaf(t *testing.T) {
	s := board.NewInitialState()
	p := newParams(board.X, 3, eval.TerminalOnly)

	// Forbid every root placement so the only candidates (more
	// placements) are filtered out by history, leaving no legal action.
	for _, idx := range s.Window.Cells() {
		undo := s.Do(board.PlaceAction(idx), board.X)
		p.History.Add(s.Key())
		s.Undo(undo)
	}

	result := Search(s, board.X, 0, math.MinInt32, math.MaxInt32, p)
	assert.False(t, result.HasAction)
	assert.Equal(t, 0, result.Score)
}

func TestSearchTranspositionTableReusedAcrossCalls(t *testing.T) {
	s := board.NewInitialState()
	tt := NewTranspositionTable()

	first := &Params{AISide: board.X, MaxDepth: 3, Eval: eval.TerminalOnly, TT: tt, History: NewKeySet(), PathSet: NewKeySet(), Stats: &Stats{}}
	Search(s, board.X, 0, math.MinInt32, math.MaxInt32, first)
	firstNodes := first.Stats.NodesVisited

	second := &Params{AISide: board.X, MaxDepth: 3, Eval: eval.TerminalOnly, TT: tt, History: NewKeySet(), PathSet: NewKeySet(), Stats: &Stats{}}
	Search(s, board.X, 0, math.MinInt32, math.MaxInt32, second)

	assert.Greater(t, tt.Len(), 0)
	assert.Greater(t, second.Stats.CacheHits, int64(0), "second search over an identical, warmed TT should hit the root entry")
	assert.LessOrEqual(t, second.Stats.NodesVisited, firstNodes, "a warmed TT must not make the second search visit more nodes")
}
