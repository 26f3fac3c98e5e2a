package characters

import (
	"errors"
	"sort"

	"github.com/nathoo/expresscore/engine/entity"
	"github.com/nathoo/expresscore/types"
)

// ErrUnknownTrigger is returned by Fire for a name Triggers does not list.
var ErrUnknownTrigger = errors.New("unknown trigger")

// A trigger is something Cath does that a ported character reacts to. It
// reports whether anyone was in a state to react.
type trigger func(m *entity.Machine) bool

var triggers = map[string]trigger{
	// Cath walks into the baggage car.
	"baggage": func(m *entity.Machine) bool {
		switch m.CurrentState(types.CharacterAnna) {
		case annaDeadBagg:
			m.Send(types.CharacterCath, types.CharacterAnna, types.Action272177921, types.Param{})
			return true
		case annaInBagg:
			if m.Context().State.Chapter != 3 {
				return false
			}
			m.ForceJump(types.CharacterAnna, annaBaggageFight, types.Params{})
			return true
		}
		return false
	},
	// Cath climbs out onto the roof, then up to Vesna.
	"roof": func(m *entity.Machine) bool {
		switch m.CurrentState(types.CharacterVesna) {
		case vesnaGuarding:
			m.Send(types.CharacterCath, types.CharacterVesna, types.Action134427424, types.Param{})
			return true
		case vesnaClimbing:
			m.Send(types.CharacterCath, types.CharacterVesna, types.Action167992577, types.Param{})
			return true
		}
		return false
	},
	// Cath lingers on the roof without climbing.
	"linger": func(m *entity.Machine) bool {
		if m.CurrentState(types.CharacterVesna) != vesnaClimbing {
			return false
		}
		m.Send(types.CharacterCath, types.CharacterVesna, types.Action202884544, types.Param{})
		return true
	},
	// Cath works her bonds loose in the baggage car.
	"ivo": func(m *entity.Machine) bool {
		if m.CurrentState(types.CharacterIvo) != ivoGuarding {
			return false
		}
		m.Send(types.CharacterCath, types.CharacterIvo, types.Action192637492, types.Param{})
		return true
	},
	// Cath opens Tyler's door while Milos is knocking on it.
	"tyler": func(m *entity.Machine) bool {
		if m.CurrentState(types.CharacterMilos) != milosKnockTyler {
			return false
		}
		m.Send(types.CharacterCath, types.CharacterMilos, types.ActionOpenDoor, types.Param{})
		return true
	},
}

// Triggers lists the trigger names Fire accepts, sorted.
func Triggers() []string {
	out := make([]string, 0, len(triggers))
	for name := range triggers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Fire performs the named Cath action against m. Messages go through the
// bus and arrive on the next pass; a forced jump takes effect at once.
func Fire(m *entity.Machine, name string) (bool, error) {
	t, ok := triggers[name]
	if !ok {
		return false, ErrUnknownTrigger
	}
	return t(m), nil
}
