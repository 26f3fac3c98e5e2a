package engine

import (
	"github.com/nathoo/expresscore/engine/entity"
	"github.com/nathoo/expresscore/types"
)

// FrameView is one call-stack level as an inspector shows it.
type FrameView struct {
	State    types.StateID
	Name     string
	Callback int
	Params   types.Params
}

// CharacterView is a copy of one character's record for inspectors.
type CharacterView struct {
	ID       types.CharacterID
	Name     string
	Position types.Position
	Flags    [types.ParamSlots]uint32
	Sequence string
	// Stack lists the call frames, bottom first.
	Stack []FrameView
}

// Current returns the running frame.
func (v CharacterView) Current() FrameView {
	return v.Stack[len(v.Stack)-1]
}

// Characters returns views of the registered characters in dispatch order.
func (e *Engine) Characters() []CharacterView {
	reg := e.machine.Registry()
	out := make([]CharacterView, 0, len(reg.Order()))
	for _, c := range reg.Order() {
		out = append(out, e.view(c))
	}
	return out
}

// Character returns the view of c, or false when c has no table.
func (e *Engine) Character(c types.CharacterID) (CharacterView, bool) {
	if !e.machine.Registry().Registered(c) {
		return CharacterView{}, false
	}
	return e.view(c), true
}

func (e *Engine) view(c types.CharacterID) CharacterView {
	t := e.machine.Registry().Table(c)
	d := e.State.Entities[c]
	v := CharacterView{
		ID:       c,
		Name:     entity.CharacterName(c),
		Position: d.Position,
		Flags:    d.Flags,
		Sequence: d.Sequence,
		Stack:    make([]FrameView, 0, d.CurrentCall+1),
	}
	for i := 0; i <= d.CurrentCall; i++ {
		f := d.Frames[i]
		v.Stack = append(v.Stack, FrameView{
			State:    f.State,
			Name:     t.StateName(f.State),
			Callback: f.Callback,
			Params:   f.Params,
		})
	}
	return v
}
