// Command windowgrid is the terminal collaborator around the
// board/generator/eval/engine packages: CLI flags, the startup-choice
// prompt, interactive play, and the self-play driver. None of this file
// is part of the engine's semantics.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"windowgrid/board"
	"windowgrid/engine"
	"windowgrid/eval"
)

func main() {
	var (
		engineDepth = flag.Int("engine-depth", 6, "max depth for iterative deepening")
		multiPV     = flag.Int("multi-pv", 3, "K for multi-PV reporting; <=0 disables engine reports")
		evalName    = flag.String("eval", eval.DefaultName, "evaluation plugin for both sides")
		evalXName   = flag.String("eval-x", "", "override evaluation plugin for side X")
		evalOName   = flag.String("eval-o", "", "override evaluation plugin for side O")
		selfPlay    = flag.Bool("self-play", false, "run computer-vs-computer without interactive input")
		listEvals   = flag.Bool("list-evals", false, "print registered evaluation plugins and exit")
	)
	flag.Parse()

	registry := eval.Default()

	if *listEvals {
		for _, name := range registry.List() {
			fmt.Println(name)
		}
		return
	}

	xName := *evalName
	if *evalXName != "" {
		xName = *evalXName
	}
	oName := *evalName
	if *evalOName != "" {
		oName = *evalOName
	}

	logger, err := engine.NewLogger("windowgrid.log")
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not open log file:", err)
	} else {
		defer logger.Close()
	}

	evalX := sideEval{fn: registry.Lookup(xName), name: xName}
	evalO := sideEval{fn: registry.Lookup(oName), name: oName}
	depth := clampDepth(*engineDepth, registry, evalX.name, evalO.name)

	var sink engine.ProgressSink = engine.ProgressSinkFunc(renderProgress)
	if *multiPV <= 0 {
		sink = nil
	}

	if *selfPlay {
		result := RunSelfPlay(500, depth, evalX, evalO, logger, sink)
		fmt.Printf("self-play finished after %d turns: %s", result.Turns, result.Terminated)
		if result.Winner != board.Empty {
			fmt.Printf(" (%s wins)", result.Winner)
		}
		fmt.Println()
		return
	}

	fmt.Print("Play as (X/O/self-play) [X]: ")
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	choice := ParseStartupToken(strings.TrimSpace(line))

	switch choice {
	case ChoiceSelfPlay:
		result := RunSelfPlay(500, depth, evalX, evalO, logger, sink)
		fmt.Printf("self-play finished after %d turns: %s", result.Turns, result.Terminated)
		if result.Winner != board.Empty {
			fmt.Printf(" (%s wins)", result.Winner)
		}
		fmt.Println()
	case ChoiceO:
		RunInteractive(board.O, depth, *multiPV, evalX, evalO, logger)
	default:
		RunInteractive(board.X, depth, *multiPV, evalX, evalO, logger)
	}
}

// clampDepth enforces the evaluation monotonicity window: the "default"
// plugin's score saturates at maxDepth 10, so clamp to [1,9] whenever
// either side resolves to it. The "positional" plugin is safe up to 99
// and is left alone. An unregistered name also resolves to "default"
// through registry's own fallback, so resolution is checked against the
// registry rather than against the raw flag strings.
func clampDepth(depth int, registry *eval.Registry, xName, oName string) int {
	usesDefault := resolvesToDefault(registry, xName) || resolvesToDefault(registry, oName)
	if depth < 1 {
		depth = 1
	}
	if usesDefault && depth > 9 {
		return 9
	}
	if depth > 99 {
		return 99
	}
	return depth
}

// resolvesToDefault reports whether name resolves (directly or via
// registry's unregistered-name fallback) to the "default" plugin.
func resolvesToDefault(registry *eval.Registry, name string) bool {
	if name == eval.DefaultName {
		return true
	}
	for _, registered := range registry.List() {
		if registered == name {
			return false
		}
	}
	return true
}
