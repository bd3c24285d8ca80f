package main

import "strings"

// StartupChoice is the parsed form of the startup choice token: which
// side the human plays, or self-play.
type StartupChoice int

const (
	ChoiceX StartupChoice = iota
	ChoiceO
	ChoiceSelfPlay
)

// startupVocabulary maps every accepted token (case-insensitively) to a
// StartupChoice. Empty input defaults to ChoiceX, handled separately in
// ParseStartupToken.
var startupVocabulary = map[string]StartupChoice{
	"X":                  ChoiceX,
	"O":                  ChoiceO,
	"C":                  ChoiceSelfPlay,
	"AI":                 ChoiceSelfPlay,
	"AUTO":               ChoiceSelfPlay,
	"COMPUTER":           ChoiceSelfPlay,
	"COMPUTERVSCOMPUTER": ChoiceSelfPlay,
	"SELF":               ChoiceSelfPlay,
	"SELFPLAY":           ChoiceSelfPlay,
	"SELFPLAYMODE":       ChoiceSelfPlay,
}

// ParseStartupToken parses the human's startup choice, case-insensitively,
// against startupVocabulary. Empty input defaults to X. Unknown tokens
// also default to X rather than being rejected.
func ParseStartupToken(input string) StartupChoice {
	token := strings.ToUpper(strings.TrimSpace(input))
	if token == "" {
		return ChoiceX
	}
	if choice, ok := startupVocabulary[token]; ok {
		return choice
	}
	return ChoiceX
}
