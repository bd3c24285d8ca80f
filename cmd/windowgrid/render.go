package main

import (
	"fmt"
	"os"

	"windowgrid/board"
	"windowgrid/engine"
)

// clearScreen emits the ANSI clear-and-home sequence, unless disabled
// by NO_CLEAR_SCREEN=1.
func clearScreen() {
	if os.Getenv("NO_CLEAR_SCREEN") == "1" {
		return
	}
	fmt.Print("\033[2J\033[H")
}

// renderProgress prints one iterative-deepening snapshot: depth,
// search stats, and the ranked principal variations.
func renderProgress(snapshot engine.ProgressSnapshot) {
	fmt.Printf("depth %d/%d  eval=%s  nodes=%d  cacheHits=%d  cutoffs=%d\n",
		snapshot.Depth, snapshot.MaxDepth, snapshot.EvalName,
		snapshot.NodesVisited, snapshot.CacheHits, snapshot.Cutoffs)
	for i, e := range snapshot.Evaluations {
		fmt.Printf("  %d. score=%-6d %s\n", i+1, e.Score, formatPV(e.PV))
	}
}

func formatPV(pv []board.Action) string {
	if len(pv) == 0 {
		return "(empty)"
	}
	out := ""
	for i, a := range pv {
		if i > 0 {
			out += " "
		}
		out += a.String()
	}
	return out
}
