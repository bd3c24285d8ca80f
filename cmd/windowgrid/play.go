package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"windowgrid/board"
	"windowgrid/engine"
	"windowgrid/generator"
)

// RunInteractive plays a human-vs-engine game in the terminal, grounded
// on engine/play.go's bufio.Reader-driven command loop: redraw the
// board, prompt, accept a small command vocabulary, apply the human's
// action, then let the engine reply.
func RunInteractive(humanSide board.Cell, depthLimit int, multiPV int, evalX, evalO sideEval, logger *engine.Logger) {
	state := board.NewInitialState()
	history := engine.NewKeySet()
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== windowgrid ===")
	fmt.Println("Commands: place <cell>, move <from> <to>, shift <dx> <dy>, actions, undo, quit")
	fmt.Println()

	type turn struct {
		state board.GameState
	}
	var undoStack []turn

	for {
		clearScreen()
		fmt.Println(state.Pretty())

		if winner, isTerminal := state.Terminal(); isTerminal {
			if winner == board.Empty {
				fmt.Println("Draw.")
			} else {
				fmt.Printf("%s wins!\n", winner)
			}
			return
		}

		if state.ToMove != humanSide {
			playEngineTurn(&state, history, depthLimit, multiPV, evalX, evalO, logger)
			undoStack = append(undoStack, turn{state: state})
			continue
		}

		fmt.Printf("%s to move: ", state.ToMove)
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("input error:", err)
			return
		}
		line = strings.TrimSpace(line)

		switch strings.ToLower(line) {
		case "quit", "q":
			return
		case "undo", "u":
			if len(undoStack) > 0 {
				undoStack = undoStack[:len(undoStack)-1]
				if len(undoStack) > 0 {
					state = undoStack[len(undoStack)-1].state
				} else {
					state = board.NewInitialState()
				}
			}
			continue
		case "actions", "moves":
			for _, a := range generator.Generate(state, state.ToMove) {
				fmt.Println(" ", a)
			}
			continue
		}

		action, ok := parseActionToken(line)
		if !ok {
			fmt.Println("unrecognized command")
			continue
		}
		next, err := board.Apply(state, action, humanSide)
		if err != nil {
			fmt.Println("illegal action:", err)
			continue
		}
		state = next
		history.Add(state.Key())
		undoStack = append(undoStack, turn{state: state})
	}
}

func playEngineTurn(state *board.GameState, history engine.KeySet, depthLimit int, multiPV int, evalX, evalO sideEval, logger *engine.Logger) {
	side := state.ToMove
	se := evalX
	if side == board.O {
		se = evalO
	}

	fmt.Println("engine thinking...")
	var sink engine.ProgressSink = engine.ProgressSinkFunc(renderProgress)
	if multiPV <= 0 {
		sink = nil
	}
	start := time.Now()
	evaluations := engine.IterateDeepening(*state, side, history, depthLimit, multiPV, se.name, se.fn, sink)
	duration := time.Since(start)

	if len(evaluations) == 0 {
		fmt.Println("engine has no legal action")
		return
	}
	best := evaluations[0]

	next, err := board.Apply(*state, best.Action, side)
	if err != nil {
		panic(fmt.Sprintf("play: engine chose illegal action %s: %v", best.Action, err))
	}
	*state = next
	history.Add(state.Key())

	if logger != nil {
		logger.Log(engine.MoveLogEntry{
			Timestamp: time.Now(),
			Side:      side,
			Action:    best.Action,
			Score:     best.Score,
			EvalName:  se.name,
			Depth:     depthLimit,
			Duration:  duration,
		})
	}
}

// parseActionToken parses one interactive command into an Action:
//
//	place <cell>        e.g. "place B2"
//	move <from> <to>    e.g. "move A1 B2"
//	shift <dx> <dy>      e.g. "shift 1 0"
func parseActionToken(line string) (board.Action, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return board.Action{}, false
	}
	switch strings.ToLower(fields[0]) {
	case "place":
		if len(fields) != 2 {
			return board.Action{}, false
		}
		idx, ok := parseCell(fields[1])
		if !ok {
			return board.Action{}, false
		}
		return board.PlaceAction(idx), true

	case "move":
		if len(fields) != 3 {
			return board.Action{}, false
		}
		from, ok1 := parseCell(fields[1])
		to, ok2 := parseCell(fields[2])
		if !ok1 || !ok2 {
			return board.Action{}, false
		}
		return board.MoveAction(from, to), true

	case "shift":
		if len(fields) != 3 {
			return board.Action{}, false
		}
		dx, err1 := strconv.Atoi(fields[1])
		dy, err2 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil {
			return board.Action{}, false
		}
		return board.ShiftAction(dx, dy), true
	}
	return board.Action{}, false
}

// parseCell parses display notation ("A1".."E5") into a board index.
func parseCell(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	row := int(strings.ToUpper(s)[0] - 'A')
	col, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, false
	}
	col--
	if !board.InBounds(row, col) {
		return 0, false
	}
	return board.Index(row, col), true
}
