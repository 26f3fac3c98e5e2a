package characters

import (
	"github.com/nathoo/expresscore/engine/entity"
	"github.com/nathoo/expresscore/types"
)

// Ivo states.
const (
	ivoDebugWalks types.StateID = iota + 1
	ivoDoSeqOtis
	ivoDoCorrOtis
	ivoFinishSeqOtis
	ivoDoDialog
	ivoDoWalk
	ivoDoWait
	ivoSaveGame
	ivoBirth
	ivoReturnFromDinner
	ivoInComp
	ivoStartPart2
	ivoStartPart3
	ivoStartPart4
	ivoStartPart5
	ivoGuarding
	ivoFightCath
	ivoDisappear
)

const ivoCompartment = 2740

// Ivo returns the behavior table of Milos's second bodyguard.
func Ivo() *entity.Table {
	t := entity.NewTable(types.CharacterIvo, "Ivo")

	t.Add(ivoDebugWalks, "DebugWalks", entity.DebugWalks).
		Add(ivoDoSeqOtis, "DoSeqOtis", entity.DoSeqOtis).
		Add(ivoDoCorrOtis, "DoCorrOtis", entity.DoCorrOtis).
		Add(ivoFinishSeqOtis, "FinishSeqOtis", entity.FinishSeqOtis).
		Add(ivoDoDialog, "DoDialog", entity.DoDialog).
		Add(ivoDoWalk, "DoWalk", entity.DoWalk).
		Add(ivoDoWait, "DoWait", entity.DoWait).
		Add(ivoSaveGame, "SaveGame", entity.SaveGame).
		Add(ivoBirth, "Birth", ivoBirthHandler).
		Add(ivoReturnFromDinner, "ReturnFromDinner", ivoReturnFromDinnerHandler).
		Add(ivoInComp, "InComp", ivoInCompHandler).
		Add(ivoStartPart2, "StartPart2", ivoAtHome).
		Add(ivoStartPart3, "StartPart3", ivoAtHome).
		Add(ivoStartPart4, "StartPart4", ivoAtHome).
		Add(ivoStartPart5, "StartPart5", ivoStartPart5Handler).
		Add(ivoGuarding, "Guarding", ivoGuardingHandler).
		Add(ivoFightCath, "FightCath", ivoFightCathHandler).
		Add(ivoDisappear, "Disappear", ivoDisappearHandler)

	t.Chapter(1, ivoBirth).
		Chapter(2, ivoStartPart2).
		Chapter(3, ivoStartPart3).
		Chapter(4, ivoStartPart4).
		Chapter(5, ivoStartPart5)
	return t
}

func ivoBirthHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.SetDoor(types.ObjectCompartmentH, types.CharacterCath, types.ObjectLocation3, types.CursorKnock, types.CursorHandKnock)
		e.Place(types.CarRestaurant, 4689, types.LocationInsideCompartment)
	case types.Action125242096:
		e.Setup(ivoReturnFromDinner, types.Params{})
	}
}

// ReturnFromDinner walks Ivo to his compartment ahead of Milos and tells
// Milos the corridor is clear.
func ivoReturnFromDinnerHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.Place(types.CarRestaurant, 5800, types.LocationOutsideCompartment)
		e.Call(1, ivoDoWalk, entity.P(uint32(types.CarRedSleeping), ivoCompartment))
	case types.ActionCallback:
		switch e.Callback() {
		case 1:
			e.Send(types.CharacterMilos, types.Action135024800, types.Param{})
			e.Call(2, ivoDoCorrOtis, entity.S("613Ah", uint32(types.ObjectCompartmentH)))
		case 2:
			e.EndGraphics()
			e.Pos().Location = types.LocationInsideCompartment
			e.Setup(ivoInComp, types.Params{})
		}
	}
}

// InComp keeps the door shut on Cath.
func ivoInCompHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionKnock, types.ActionOpenDoor:
		e.SetDoor(types.ObjectCompartmentH, types.CharacterIvo, types.ObjectLocation3, types.CursorNormal, types.CursorNormal)
		if msg.Action == types.ActionKnock {
			e.Call(1, ivoDoDialog, entity.S("LIB012"))
		} else {
			e.Call(1, ivoDoDialog, entity.S("LIB013"))
		}
	case types.ActionDefault, types.ActionCallback:
		e.SetDoor(types.ObjectCompartmentH, types.CharacterIvo, types.ObjectLocation3, types.CursorKnock, types.CursorHandKnock)
	}
}

// ivoAtHome is the entry of the middle chapters: Ivo stays in his
// compartment.
func ivoAtHome(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone:
		e.Setup(ivoInComp, types.Params{})
	case types.ActionDefault:
		e.EndGraphics()
		e.Place(types.CarRedSleeping, ivoCompartment, types.LocationInsideCompartment)
		e.Data().InventoryItem = 0
	}
}

func ivoStartPart5Handler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone:
		e.Setup(ivoGuarding, types.Params{})
	case types.ActionDefault:
		e.EndGraphics()
		e.Place(types.CarBaggageRear, 540, types.LocationOutsideCompartment)
		e.Data().InventoryItem = 0
	}
}

// Guarding waits for Cath to work her bonds loose.
func ivoGuardingHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.StartCycle("IVOGUARD")
	case types.Action192637492:
		e.Setup(ivoFightCath, types.Params{})
	}
}

// FightCath param slots: Int[0] fight outcome.
func ivoFightCathHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.EndGraphics()
		e.Call(1, ivoSaveGame, entity.P(2, uint32(types.EventCathIvoFight)))
	case types.ActionCallback:
		switch e.Callback() {
		case 1:
			e.PlayNIS(types.EventCathIvoFight)
			e.Call(2, ivoSaveGame, entity.P(1, 0))
		case 2:
			outcome := e.PlayFight(types.FightIvo)
			e.Params().Int[0] = uint32(outcome)
			if outcome != types.FightEndWin {
				e.GameOver(0, 0, 0, outcome == types.FightEndLost)
				return
			}
			e.AddTime(1800)
			e.Setup(ivoDisappear, types.Params{})
		}
	}
}

func ivoDisappearHandler(e entity.E, msg types.SavePoint) {
	if msg.Action != types.ActionDefault {
		return
	}
	e.EndGraphics()
	e.Place(types.CarNone, 0, types.LocationOutsideTrain)
}
