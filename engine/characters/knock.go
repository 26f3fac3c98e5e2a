package characters

import (
	"github.com/nathoo/expresscore/engine/entity"
	"github.com/nathoo/expresscore/types"
)

// compartmentDoor answers Cath knocking on an occupied compartment. The
// occupant says who is there, the door stays on the talk cursor for a
// while, then falls quiet until Cath leaves the scene. The slot fields
// name the integer parameters the running state lends it.
type compartmentDoor struct {
	door    types.ObjectID
	dialog  types.StateID
	replies [3]string // cycled through on repeated knocks

	count   int // replies given so far
	replied int // door is on the talk cursor
	quiet   int // occupant no longer answers
	timer   int // real-time delay before falling quiet
}

// tick expires the talk cursor after 75 ticks.
func (k compartmentDoor) tick(e entity.E) {
	p := e.Params()
	if p.Int[k.replied] == 0 {
		p.Int[k.timer] = 0
		return
	}
	if !e.WaitReal(&p.Int[k.timer], 75) {
		return
	}
	p.Int[k.replied] = 0
	p.Int[k.quiet] = 1
	e.SetDoor(k.door, e.ID(), types.ObjectLocation1, types.CursorNormal, types.CursorNormal)
	p.Int[k.timer] = 0
}

// knocked handles ActionKnock and ActionOpenDoor.
func (k compartmentDoor) knocked(e entity.E, action types.ActionID) {
	p := e.Params()
	if p.Int[k.replied] != 0 {
		e.SetDoor(k.door, e.ID(), types.ObjectLocation3, types.CursorNormal, types.CursorNormal)
		e.Call(4, k.dialog, entity.S(e.CathSorryDialog()))
		return
	}

	p.Int[k.count]++
	switch p.Int[k.count] {
	case 1, 2:
		p.Str[1] = k.replies[p.Int[k.count]-1]
	default:
		p.Str[1] = k.replies[2]
		p.Int[k.count] = 0
	}

	e.SetDoor(k.door, e.ID(), types.ObjectLocation3, types.CursorNormal, types.CursorNormal)
	if action == types.ActionOpenDoor {
		e.Call(1, k.dialog, entity.S("LIB013"))
	} else {
		e.Call(2, k.dialog, entity.S("LIB012"))
	}
}

// reset reopens the door when Cath changes scene.
func (k compartmentDoor) reset(e entity.E) {
	p := e.Params()
	if p.Int[k.quiet] != 0 || p.Int[k.replied] != 0 {
		e.SetDoor(k.door, e.ID(), types.ObjectLocation1, types.CursorKnock, types.CursorHandKnock)
		p.Int[k.quiet] = 0
		p.Int[k.replied] = 0
	}
}

// callback continues a knock exchange. It reports false for callbacks it
// does not own.
func (k compartmentDoor) callback(e entity.E) bool {
	p := e.Params()
	switch e.Callback() {
	case 1, 2:
		e.Call(3, k.dialog, entity.S(p.Str[1]))
	case 3:
		e.SetDoor(k.door, e.ID(), types.ObjectLocation3, types.CursorTalk, types.CursorNormal)
		p.Int[k.replied] = 1
	case 4:
		p.Int[k.replied] = 0
		p.Int[k.quiet] = 1
	default:
		return false
	}
	return true
}
