package entity

import (
	"github.com/nathoo/expresscore/engine/world"
	"github.com/nathoo/expresscore/types"
)

// Sub-states shared by every character table. Characters register them
// under their own ids and reach them with Call.
//
// Parameter layouts:
//
//	DoDialog, DoDialogFullVol  Str[0] dialog
//	DoCorrOtis, DoSeqOtis      Str[0] clip, Int[0] door
//	DoWalk, DoWalkBehind       Int[0] car, Int[1] coord
//	DoWait, DoWaitReal         Int[0] delay, Int[1] timer
//	SaveGame                   Int[0] kind, Int[1] event

// DoDialog plays Str[0] and returns when it ends.
func DoDialog(e E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionEndSound:
		e.Return()
	case types.ActionDefault:
		e.PlayDialog(e.id, e.Params().Str[0], world.DefaultVolume)
	}
}

// DoDialogFullVol is DoDialog at full volume.
func DoDialogFullVol(e E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionEndSound:
		e.Return()
	case types.ActionDefault:
		e.PlayDialog(e.id, e.Params().Str[0], 16)
	}
}

// DoCorrOtis plays a clip while standing in a doorway.
func DoCorrOtis(e E, msg types.SavePoint) {
	door := types.ObjectID(e.Params().Int[0])
	switch msg.Action {
	case types.ActionExitCompartment:
		e.ReleaseAtDoor(door)
		e.Return()
	case types.ActionDefault:
		e.StartSeq(e.id, e.Params().Str[0])
		e.BlockAtDoor(door)
	}
}

// DoSeqOtis plays a clip and returns when it ends.
func DoSeqOtis(e E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionExitCompartment:
		e.Return()
	case types.ActionDefault:
		e.StartSeq(e.id, e.Params().Str[0])
	}
}

// FinishSeqOtis waits for a clip started by the caller.
func FinishSeqOtis(e E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone:
		if e.Data().Direction != types.DirectionSequence {
			e.Return()
		}
	case types.ActionExitCompartment:
		e.Return()
	}
}

// DoWalk walks to Int[0]/Int[1] and returns on arrival.
func DoWalk(e E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone, types.ActionDefault:
		p := e.Params()
		if e.Walk(types.Car(p.Int[0]), int(p.Int[1])) {
			e.Return()
		}
	case types.ActionExcuseMeCath:
		if e.Rnd(2) == 0 {
			e.PlayDialog(types.CharacterCath, "CAT1015A", world.DefaultVolume)
		} else {
			e.PlayDialog(types.CharacterCath, "CAT1015", world.DefaultVolume)
		}
	case types.ActionExcuseMe:
		e.PlayChrExcuseMe()
	}
}

// DoWalkBehind returns a sub-state that walks to Int[0]/Int[1] but holds
// back while leader is close or ahead of it. It returns when leader sends
// Action123668192.
func DoWalkBehind(leader types.CharacterID) Handler {
	return func(e E, msg types.SavePoint) {
		p := e.Params()
		switch msg.Action {
		case types.ActionNone:
			if e.behind(leader) {
				e.Data().WaitedTicks = 0
				return
			}
			e.Walk(types.Car(p.Int[0]), int(p.Int[1]))
		case types.ActionDefault:
			e.Walk(types.Car(p.Int[0]), int(p.Int[1]))
		case types.Action123668192:
			e.Return()
		}
	}
}

func (e E) behind(leader types.CharacterID) bool {
	me, l := e.Data(), e.Of(leader)
	if e.NearChar(e.id, leader, 500) {
		return true
	}
	ahead := me.Position.Car > l.Position.Car ||
		(me.Position.Car == l.Position.Car && me.Position.Coord > l.Position.Coord)
	if me.Direction == types.DirectionUp && ahead {
		return true
	}
	if me.Direction == types.DirectionDown && me.Position.Car < l.Position.Car {
		return true
	}
	// Holds regardless of direction.
	return me.Position.Car == l.Position.Car && me.Position.Coord < l.Position.Coord
}

// DoWait returns once Int[0] units of game time have passed.
func DoWait(e E, msg types.SavePoint) {
	if msg.Action != types.ActionNone {
		return
	}
	p := e.Params()
	if e.WaitGame(&p.Int[1], p.Int[0]) {
		e.Return()
	}
}

// DoWaitReal returns once Int[0] ticks have passed.
func DoWaitReal(e E, msg types.SavePoint) {
	if msg.Action != types.ActionNone {
		return
	}
	p := e.Params()
	if e.WaitReal(&p.Int[1], p.Int[0]) {
		e.Return()
	}
}

// WaitRCClear returns once the restaurant car is empty.
func WaitRCClear(e E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone, types.ActionDefault:
		if e.RCClear() {
			e.Return()
		}
	}
}

// SaveGame writes a save point and returns.
func SaveGame(e E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone:
		e.Return()
	case types.ActionDefault:
		p := e.Params()
		e.Save(int(p.Int[0]), types.EventID(p.Int[1]))
		e.Return()
	}
}

// DebugWalks paces the green car end to end.
func DebugWalks(e E, msg types.SavePoint) {
	p := e.Params()
	switch msg.Action {
	case types.ActionNone:
		if e.Walk(types.CarGreenSleeping, int(p.Int[0])) {
			if p.Int[0] == 10000 {
				p.Int[0] = 0
			} else {
				p.Int[0] = 10000
			}
		}
	case types.ActionDefault:
		e.Place(types.CarGreenSleeping, 0, types.LocationOutsideCompartment)
		p.Int[0] = 10000
	}
}
