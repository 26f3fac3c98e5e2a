package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/expresscore/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks cross references and ranges. It returns the warnings
// and, when anything is fatal, a *ValidationError.
func validate(c *Content) ([]string, error) {
	ve := &ValidationError{}

	clips := map[string]bool{}
	for _, seq := range c.Clips {
		key := strings.ToUpper(seq.Name)
		if clips[key] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate clip %q", seq.Name))
		}
		clips[key] = true
		if len(seq.Frames) == 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("clip %q has no frames", seq.Name))
		}
	}

	used := map[string]bool{}
	order := make([]types.FightType, 0, len(c.Fights))
	for t := range c.Fights {
		order = append(order, t)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	for _, t := range order {
		def := c.Fights[t]
		validateFighter(def.Name, "player", &def.Player, clips, used, ve)
		validateFighter(def.Name, "opponent", &def.Opponent, clips, used, ve)

		for _, m := range def.Player.Moves {
			if !m.Action.IsHotspot() {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"fight %q player move %d is not a hotspot action (128-132)", def.Name, m.Action))
			}
		}
		n := len(def.Opponent.Moves)
		switch {
		case n == 0:
			ve.Errors = append(ve.Errors, fmt.Sprintf("fight %q opponent has no moves", def.Name))
		case n > int(types.FightAction5):
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"fight %q opponent has %d moves, at most %d allowed", def.Name, n, types.FightAction5))
		}
		validateWeights(def.Name, "weights", def.Weights, n, ve)
		validateWeights(def.Name, "advanced", def.Advanced, n, ve)
		if def.AdvancedAfter > 0 && len(def.Advanced) == 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"fight %q sets advanced_after without advanced weights", def.Name))
		}
		if def.Cooldown < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("fight %q cooldown is negative", def.Name))
		}
	}

	// Warnings: clips nothing plays, fights nothing defines.
	for _, seq := range c.Clips {
		if !used[strings.ToUpper(seq.Name)] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("clip %q is not used by any fight", seq.Name))
		}
	}
	for name, t := range fightTypes {
		if _, ok := c.Fights[t]; !ok {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("fight %q is not defined", name))
		}
	}
	sort.Strings(ve.Warnings)

	if len(ve.Errors) > 0 {
		return ve.Warnings, ve
	}
	return ve.Warnings, nil
}

func validateFighter(fight, side string, f *types.FighterDef, clips, used map[string]bool, ve *ValidationError) {
	if f.Countdown <= 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"fight %q %s countdown must be positive", fight, side))
	}
	for i, name := range f.Sequences {
		if name == "" {
			if i <= seqDefeat {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"fight %q %s %s clip is required", fight, side, reactionNames[i]))
			} else {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"fight %q %s has a move without a clip", fight, side))
			}
			continue
		}
		key := strings.ToUpper(name)
		used[key] = true
		if !clips[key] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"fight %q %s references undefined clip %q", fight, side, name))
		}
	}
}

var reactionNames = [...]string{seqIdle: "idle", seqHit: "hit", seqWin: "win", seqDefeat: "defeat"}

func validateWeights(fight, key string, weights []int, moves int, ve *ValidationError) {
	if len(weights) == 0 {
		return
	}
	if len(weights) != moves {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"fight %q has %d %s for %d opponent moves", fight, len(weights), key, moves))
	}
	sum := 0
	for _, w := range weights {
		if w < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("fight %q %s must not be negative", fight, key))
			return
		}
		sum += w
	}
	if sum == 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("fight %q %s are all zero", fight, key))
	}
}
