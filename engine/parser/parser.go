// Package parser converts debugger command lines into Command structs.
// It only normalizes words; the engine and the shells give them meaning.
package parser

import (
	"strconv"
	"strings"

	"github.com/nathoo/expresscore/types"
)

var verbAliases = map[string]string{
	"t":       "tick",
	"step":    "tick",
	"next":    "tick",
	"run":     "tick",
	"send":    "push",
	"msg":     "push",
	"ch":      "chapter",
	"st":      "state",
	"show":    "state",
	"bt":      "stack",
	"where":   "stack",
	"ls":      "chars",
	"list":    "chars",
	"who":     "chars",
	"q":       "quit",
	"exit":    "quit",
	"?":       "help",
	"h":       "help",
	"f":       "fight",
	"clock":   "time",
	"goto":    "jump",
	"pending": "bus",
	"queue":   "bus",
	"mv":      "rename",
	"do":      "trigger",
}

// Multi-word phrases for Cath's scripted triggers.
var triggerPhrases = map[string]string{
	"enter baggage": "baggage",
	"enter bagg":    "baggage",
	"climb roof":    "roof",
	"go outside":    "roof",
	"open ivo":      "ivo",
	"visit ivo":     "ivo",
}

// Parse converts a raw command line into a Command. The verb is lowercased;
// arguments keep their spelling.
func Parse(input string) types.Command {
	input = strings.TrimSpace(input)
	if input == "" || strings.HasPrefix(input, "#") {
		return types.Command{}
	}

	words := strings.Fields(input)
	if len(words) >= 2 {
		phrase := strings.ToLower(words[0] + " " + words[1])
		if name, ok := triggerPhrases[phrase]; ok {
			return types.Command{Verb: "trigger", Args: []string{name}}
		}
	}

	verb := strings.ToLower(words[0])
	if alias, ok := verbAliases[verb]; ok {
		verb = alias
	}
	args := words[1:]
	if len(args) == 0 {
		args = nil
	}
	return types.Command{Verb: verb, Args: args}
}

var actionNames = map[string]types.ActionID{
	"none":         types.ActionNone,
	"endsound":     types.ActionEndSound,
	"exitcomp":     types.ActionExitCompartment,
	"excusemecath": types.ActionExcuseMeCath,
	"excuseme":     types.ActionExcuseMe,
	"knock":        types.ActionKnock,
	"opendoor":     types.ActionOpenDoor,
	"default":      types.ActionDefault,
	"drawscene":    types.ActionDrawScene,
	"callback":     types.ActionCallback,
}

// ParseAction accepts a shared action name (any case) or a number.
func ParseAction(s string) (types.ActionID, bool) {
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return types.ActionID(n), true
	}
	a, ok := actionNames[strings.ToLower(s)]
	return a, ok
}

// ActionName returns the shared name of a, or its number.
func ActionName(a types.ActionID) string {
	for name, id := range actionNames {
		if id == a {
			return name
		}
	}
	return strconv.FormatUint(uint64(a), 10)
}

var fightNames = map[string]types.FightType{
	"milos": types.FightMilos,
	"anna":  types.FightAnna,
	"ivo":   types.FightIvo,
	"salko": types.FightSalko,
	"vesna": types.FightVesna,
}

// ParseFight accepts an opponent name or a fight number 2001-2005.
func ParseFight(s string) (types.FightType, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		t := types.FightType(n)
		if t >= types.FightMilos && t <= types.FightVesna {
			return t, true
		}
		return types.FightNone, false
	}
	t, ok := fightNames[strings.ToLower(s)]
	return t, ok
}

// ParseCount reads an optional positive count argument.
func ParseCount(args []string, def int) (int, bool) {
	if len(args) == 0 {
		return def, true
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
