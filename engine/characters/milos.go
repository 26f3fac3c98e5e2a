package characters

import (
	"github.com/nathoo/expresscore/engine/clock"
	"github.com/nathoo/expresscore/engine/entity"
	"github.com/nathoo/expresscore/types"
)

// Milos states.
const (
	milosDebugWalks types.StateID = iota + 1
	milosDoSeqOtis
	milosDoCorrOtis
	milosDoBriefCorrOtis
	milosFinishSeqOtis
	milosDoDialog
	milosDoDialogFullVol
	milosSaveGame
	milosDoWait
	milosDoWalk
	milosCompLogic
	milosBirth
	milosDoOtis5009D
	milosKnockTyler
	milosAtDinner
	milosReturnFromDinner
	milosInComp
	milosAsleep
	milosStartPart2
	milosStartPart3
	milosStartPart4
	milosStartPart5
)

const milosCompartment = 3050

// Milos returns the behavior table of the Serbian leader.
func Milos() *entity.Table {
	t := entity.NewTable(types.CharacterMilos, "Milos")

	t.Add(milosDebugWalks, "DebugWalks", entity.DebugWalks).
		Add(milosDoSeqOtis, "DoSeqOtis", entity.DoSeqOtis).
		Add(milosDoCorrOtis, "DoCorrOtis", entity.DoCorrOtis).
		Add(milosDoBriefCorrOtis, "DoBriefCorrOtis", entity.DoCorrOtis).
		Add(milosFinishSeqOtis, "FinishSeqOtis", entity.FinishSeqOtis).
		Add(milosDoDialog, "DoDialog", entity.DoDialog).
		Add(milosDoDialogFullVol, "DoDialogFullVol", entity.DoDialogFullVol).
		Add(milosSaveGame, "SaveGame", entity.SaveGame).
		Add(milosDoWait, "DoWait", entity.DoWait).
		Add(milosDoWalk, "DoWalk", entity.DoWalk).
		Add(milosCompLogic, "CompLogic", milosCompLogicHandler).
		Add(milosBirth, "Birth", milosBirthHandler).
		Add(milosDoOtis5009D, "DoOtis5009D", milosDoOtis5009DHandler).
		Add(milosKnockTyler, "KnockTyler", milosKnockTylerHandler).
		Add(milosAtDinner, "AtDinner", milosAtDinnerHandler).
		Add(milosReturnFromDinner, "ReturnFromDinner", milosReturnFromDinnerHandler).
		Add(milosInComp, "InComp", milosInCompHandler).
		Add(milosAsleep, "Asleep", milosAsleepHandler).
		Add(milosStartPart2, "StartPart2", milosStartPart2Handler).
		Add(milosStartPart3, "StartPart3", milosStartPart3Handler).
		Add(milosStartPart4, "StartPart4", milosStartPart4Handler).
		Add(milosStartPart5, "StartPart5", milosStartPart5Handler)

	t.Chapter(1, milosBirth).
		Chapter(2, milosStartPart2).
		Chapter(3, milosStartPart3).
		Chapter(4, milosStartPart4).
		Chapter(5, milosStartPart5)
	return t
}

// milosDoor sets the door of the compartment Milos shares with Vesna.
func milosDoor(e entity.E, far, near types.Cursor) {
	e.SetDoor(types.ObjectCompartmentG, types.CharacterMilos, types.ObjectLocation3, far, near)
}

// CompLogic param slots: Int[0] leave time, Int[1] replied, Int[2] quiet,
// Int[3] debate deadline, Int[4] conductor visiting, Int[5] search
// cooldown deadline, Int[6] debate timer, Int[7] reply timer.
func milosCompLogicHandler(e entity.E, msg types.SavePoint) {
	p := e.Params()
	now := uint32(e.Time())
	switch msg.Action {
	case types.ActionNone:
		if p.Int[4] == 0 && p.Int[0] < now {
			e.Return()
			return
		}
		if p.Int[1] == 0 {
			p.Int[7] = 0
		} else if e.WaitReal(&p.Int[7], 75) {
			p.Int[1] = 0
			p.Int[2] = 1
			e.SetDoor(types.ObjectCompartmentG, types.CharacterMilos, types.ObjectLocation1, types.CursorNormal, types.CursorNormal)
			p.Int[7] = 0
		}
		if e.Chapter() != 1 || p.Int[4] != 0 {
			return
		}
		if p.Int[5] != 0 && now > p.Int[5] {
			p.Int[5] = 0
		}
		if e.Global(types.GlobalMetMilos) == 0 {
			if e.Flag(2) != 0 && e.Global(types.GlobalCharacterSearchingForCath) == 0 && p.Int[5] == 0 {
				e.SetGlobal(types.GlobalCharacterSearchingForCath, int(types.CharacterMilos))
				e.Send(types.CharacterVesna, types.Action190412928, types.Param{})
				e.Call(1, milosDoCorrOtis, entity.S("609Cg", uint32(types.ObjectCompartmentG)))
			}
			return
		}
		milosDebate(e, now)

	case types.ActionKnock, types.ActionOpenDoor:
		milosDoor(e, types.CursorNormal, types.CursorNormal)
		if p.Int[1] != 0 {
			if !e.HasItem(types.ItemPassengerList) {
				e.Call(11, milosDoDialog, entity.S(e.CathSorryDialog()))
			} else if e.Rnd(2) != 0 {
				e.Call(10, milosDoDialog, entity.S(e.CathSorryDialog()))
			} else {
				e.Call(10, milosDoDialog, entity.S("CAT1504"))
			}
			return
		}
		if msg.Action == types.ActionKnock {
			e.Call(7, milosDoDialog, entity.S("LIB012"))
		} else {
			e.Call(8, milosDoDialog, entity.S("LIB013"))
		}

	case types.ActionDefault:
		milosDoor(e, types.CursorKnock, types.CursorHandKnock)

	case types.ActionDrawScene:
		if p.Int[2] != 0 || p.Int[1] != 0 {
			milosDoor(e, types.CursorKnock, types.CursorHandKnock)
			p.Int[2] = 0
			p.Int[1] = 0
		}

	case types.ActionCallback:
		switch e.Callback() {
		case 1:
			e.Pos().Location = types.LocationOutsideCompartment
			e.Call(2, milosDoWalk, entity.P(uint32(types.CarGreenSleeping), 8200))
		case 2:
			e.Call(3, milosKnockTyler, types.Params{})
		case 3:
			if e.Global(types.GlobalCharacterSearchingForCath) == int(types.CharacterMilos) {
				e.SetGlobal(types.GlobalCharacterSearchingForCath, 0)
			}
			p.Int[5] = uint32(e.Time()) + 4500
			e.Call(4, milosDoWalk, entity.P(uint32(types.CarRedSleeping), milosCompartment))
		case 4:
			e.Call(5, milosDoCorrOtis, entity.S("609Bg", uint32(types.ObjectCompartmentG)))
		case 5:
			e.Pos().Location = types.LocationInsideCompartment
			e.EndGraphics()
			e.Send(types.CharacterVesna, types.Action101687594, types.Param{})
			milosDoor(e, types.CursorKnock, types.CursorHandKnock)
		case 6:
			milosDoor(e, types.CursorKnock, types.CursorHandKnock)
		case 7, 8:
			e.Call(9, milosDoDialog, entity.S("MIL1117A"))
		case 9:
			milosDoor(e, types.CursorTalk, types.CursorNormal)
			p.Int[1] = 1
		case 10, 11:
			p.Int[1] = 0
			p.Int[2] = 1
		case 12:
			e.StartCycle("611Cg")
			e.BlockAtDoor(types.ObjectCompartmentG)
			e.Send(types.CharacterCond2, types.Action88652208, types.Param{})
		case 13:
			e.ReleaseAtDoor(types.ObjectCompartmentG)
			e.Pos().Location = types.LocationInsideCompartment
			e.EndGraphics()
			milosDoor(e, types.CursorKnock, types.CursorHandKnock)
			p.Int[4] = 0
		}

	case types.Action122865568:
		e.Pos().Location = types.LocationOutsideCompartment
		e.Call(12, milosDoCorrOtis, entity.S("611Bg", uint32(types.ObjectCompartmentG)))
	case types.Action123852928:
		e.Call(13, milosDoCorrOtis, entity.S("611Dg", uint32(types.ObjectCompartmentG)))
	case types.Action221683008:
		p.Int[4] = 1
		e.Send(types.CharacterCond2, types.Action123199584, types.Param{})
	}
}

// milosDebate has Milos and Vesna argue about Cath once she is known to
// them. It starts after Cath has been near the compartment for a while, or
// five hours of game time at the latest.
func milosDebate(e entity.E, now uint32) {
	p := e.Params()
	if p.Int[3] == 0 {
		p.Int[3] = now + 18000
	}
	if clock.Expired(p.Int[6]) || now == 0 {
		return
	}
	near := e.NearChar(types.CharacterCath, types.CharacterMilos, 2000)
	if p.Int[3] >= now {
		if !near || p.Int[6] == 0 {
			p.Int[6] = now + 150
		}
		if p.Int[6] >= now {
			return
		}
	}
	p.Int[6] = uint32(types.TimeNever)
	if near {
		e.SetGlobal(types.GlobalOverheardVesnaAndMilos, 1)
	}
	milosDoor(e, types.CursorNormal, types.CursorNormal)
	e.Call(6, milosDoDialog, entity.S("MIL1012"))
}

func milosBirthHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone:
		p := e.Params()
		if e.Time() > types.TimeChapter1 && p.Int[0] == 0 {
			p.Int[0] = 1
			e.Setup(milosAtDinner, types.Params{})
		}
	case types.ActionDefault:
		e.SetDoor(types.ObjectCompartmentG, types.CharacterCath, types.ObjectLocation3, types.CursorKnock, types.CursorHandKnock)
		e.SetDoor(types.ObjectHandleInsideG, types.CharacterCath, types.ObjectLocationNone, types.CursorKeep, types.CursorKeep)
		e.Place(types.CarRestaurant, 4689, types.LocationInsideCompartment)
		e.AutoMessage(types.Action157691176, 0)
		e.AutoMessage(types.Action208228224, 2)
		e.AutoMessage(types.Action259125998, 3)
	}
}

// DoOtis5009D plays the table C group getting up from dinner.
func milosDoOtis5009DHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionExitCompartment:
		e.Send(types.CharacterTableC, types.Action103798704, types.Param{Str: "009E"})
		e.EndGraphicsOf(types.CharacterVesna)
		e.EndGraphicsOf(types.CharacterIvo)
		e.EndGraphicsOf(types.CharacterSalko)
		e.Return()
	case types.ActionDefault:
		e.StartSeq(types.CharacterSalko, "009D5")
		e.StartSeq(types.CharacterTableC, "009D4")
		e.StartSeq(types.CharacterIvo, "009D3")
		e.StartSeq(types.CharacterVesna, "009D2")
		e.StartSeq(types.CharacterMilos, "009D1")
	}
}

// cathOutHisWindow reports whether Cath hangs outside the Tyler
// compartment windows.
func cathOutHisWindow(e entity.E) bool {
	p := e.Of(types.CharacterCath).Position
	return p.Location == types.LocationOutsideTrain && p.Car == types.CarGreenSleeping &&
		(p.Coord == 8200 || p.Coord == 7500)
}

// passed reports whether a deadline timer armed on first use has gone by.
// Unlike WaitReal it keeps reporting true once expired.
func passed(e entity.E, scratch *uint32, delay uint32) bool {
	return clock.Expired(*scratch) || e.WaitReal(scratch, delay)
}

// KnockTyler param slots: Int[0] Cath inside, Int[1] Milos inside, Int[2]
// told off, Int[3] threatened when Cath is away or knock rounds when she
// is in, Int[4] knocks, Int[5] cinematic, Int[6] start timer, Int[7]
// step timer.
func milosKnockTylerHandler(e entity.E, msg types.SavePoint) {
	p := e.Params()
	switch msg.Action {
	case types.ActionNone:
		if s := e.Global(types.GlobalCharacterSearchingForCath); s == int(types.CharacterPolice) || s == int(types.CharacterCond1) {
			if p.Int[1] != 0 {
				e.Call(1, milosDoCorrOtis, entity.S("609Ca", uint32(types.ObjectCompartment1)))
				return
			}
			e.ReleaseAtDoor(types.ObjectCompartment1)
			e.SetDoor(types.ObjectCompartment1, types.CharacterCath, types.ObjectLocationNone, types.CursorKnock, types.CursorHandKnock)
			e.Return()
			return
		}
		if p.Int[0] != 0 {
			milosKnockAgain(e)
			return
		}
		if !passed(e, &p.Int[6], 75) {
			return
		}
		if p.Int[3] == 0 {
			e.Call(12, milosDoDialog, entity.S("MIL1030C"))
			return
		}
		milosEnterTyler(e)

	case types.ActionKnock:
		if p.Int[1] != 0 {
			e.SetDoor(types.ObjectCompartment1, types.CharacterMilos, types.ObjectLocationNone, types.CursorNormal, types.CursorNormal)
			e.Call(20, milosDoDialog, entity.S("LIB012"))
		} else if p.Int[2] == 0 {
			e.SetDoor(types.ObjectCompartment1, types.CharacterMilos, e.Door(types.ObjectCompartment1), types.CursorNormal, types.CursorNormal)
			e.Call(22, milosDoDialogFullVol, entity.S("MIL1032"))
		}

	case types.ActionOpenDoor:
		if milosCatchesCath(e) {
			e.Call(16, milosSaveGame, entity.P(2, uint32(types.EventMilosCorpseFloor)))
			return
		}
		if p.Int[1] != 0 {
			e.Of(types.CharacterCath).Position.Location = types.LocationInsideCompartment
			p.Int[5] = uint32(types.EventMilosTylerCompartment)
		} else {
			p.Int[5] = uint32(types.EventMilosTylerCompartmentVisit)
		}
		e.Call(17, milosSaveGame, entity.P(2, uint32(types.EventMilosTylerCompartmentVisit)))

	case types.ActionDefault:
		if e.InComp(types.CharacterCath, types.CarGreenSleeping, 8200) ||
			e.InComp(types.CharacterCath, types.CarGreenSleeping, 7850) || cathOutHisWindow(e) {
			e.SetDoor(types.ObjectCompartment1, types.CharacterMilos, e.Door(types.ObjectCompartment1), types.CursorNormal, types.CursorNormal)
			if cathOutHisWindow(e) {
				e.BumpCath(types.CarGreenSleeping, 49)
			}
			e.PlayDialog(types.CharacterCath, "LIB012", -1)
			e.SetDoor(types.ObjectCompartment1, types.CharacterMilos, e.Door(types.ObjectCompartment1), types.CursorTalk, types.CursorHandKnock)
			p.Int[0] = 1
			return
		}
		e.StartCycle("609Aa")
		e.BlockAtDoor(types.ObjectCompartment1)

	case types.ActionCallback:
		milosKnockTylerCallback(e)
	}
}

// milosCatchesCath reports whether Milos finds the body on the floor.
// The door is reset for the cinematic when he does.
func milosCatchesCath(e entity.E) bool {
	if e.Global(types.GlobalCorpseMovedFromFloor) != 0 && e.Global(types.GlobalJacket) != 1 {
		return false
	}
	e.SetDoor(types.ObjectOutsideTyler, types.CharacterCath, types.ObjectLocationNone, types.CursorKeep, types.CursorKeep)
	return true
}

// milosKnockAgain knocks on the Tyler compartment while Cath hides inside.
func milosKnockAgain(e entity.E) {
	p := e.Params()
	if !passed(e, &p.Int[6], 45) {
		return
	}
	if e.Door(types.ObjectCompartment1) != types.ObjectLocation1 {
		if milosCatchesCath(e) {
			e.Call(2, milosSaveGame, entity.P(2, uint32(types.EventMilosCorpseFloor)))
			return
		}
		p.Int[5] = uint32(types.EventMilosTylerCompartmentVisit)
		e.Call(3, milosSaveGame, entity.P(2, uint32(types.EventMilosTylerCompartmentVisit)))
		return
	}
	if !e.WaitReal(&p.Int[7], 75) {
		return
	}
	e.SetDoor(types.ObjectCompartment1, types.CharacterMilos, e.Door(types.ObjectCompartment1), types.CursorNormal, types.CursorNormal)

	p.Int[4]++
	switch p.Int[4] {
	case 1:
		e.Call(6, milosDoDialog, entity.S("LIB013"))
	case 2:
		e.Call(8, milosDoDialog, entity.S("LIB012"))
	case 3:
		e.Call(10, milosDoDialog, entity.S("LIB012"))
	case 4:
		p.Int[3]++
		if p.Int[3] < 3 {
			p.Int[4] = 1
			milosKnockCursor(e)
			return
		}
		e.SetDoor(types.ObjectCompartment1, types.CharacterCath, e.Door(types.ObjectCompartment1), types.CursorKnock, types.CursorHandKnock)
		e.Return()
	default:
		milosKnockCursor(e)
	}
}

// milosKnockCursor rearms the door after a knock.
func milosKnockCursor(e entity.E) {
	p := e.Params()
	far := types.CursorTalk
	if p.Int[2] != 0 {
		far = types.CursorNormal
	}
	e.SetDoor(types.ObjectCompartment1, types.CharacterMilos, e.Door(types.ObjectCompartment1), far, types.CursorHandKnock)
	p.Int[7] = 0
}

// milosEnterTyler goes into the Tyler compartment after a short wait.
func milosEnterTyler(e entity.E) {
	p := e.Params()
	if !e.WaitReal(&p.Int[7], 75) {
		return
	}
	e.ReleaseAtDoor(types.ObjectCompartment1)
	switch {
	case e.Global(types.GlobalCorpseMovedFromFloor) != 0:
		e.Call(13, milosDoCorrOtis, entity.S("609Ba", uint32(types.ObjectCompartment1)))
	case e.CheckLoc(types.CharacterCath, types.CarGreenSleeping):
		e.Call(14, milosDoBriefCorrOtis, entity.S("609Ba", uint32(types.ObjectCompartment1)))
	default:
		e.BumpCath(types.CarNone, 1)
		e.SetDoor(types.ObjectOutsideTyler, types.CharacterCath, types.ObjectLocationNone, types.CursorKeep, types.CursorKeep)
		e.Call(15, milosSaveGame, entity.P(2, uint32(types.EventMilosCorpseFloor)))
	}
}

// corpseScene is the game over scene for being caught with the body.
func corpseScene(e entity.E) int {
	if e.Global(types.GlobalCorpseMovedFromFloor) == 0 {
		return 57
	}
	return 55
}

func milosKnockTylerCallback(e entity.E) {
	p := e.Params()
	switch e.Callback() {
	case 1:
		e.Pos().Location = types.LocationOutsideCompartment
		e.SetDoor(types.ObjectCompartment1, types.CharacterCath, types.ObjectLocationNone, types.CursorKnock, types.CursorHandKnock)
		e.Return()
	case 2:
		e.PlayDialog(types.CharacterCath, "LIB014", -1)
		e.PlayNIS(types.EventMilosCorpseFloor)
		e.GameOver(0, 1, corpseScene(e), true)
	case 3, 17:
		if e.Callback() == 17 && e.Door(types.ObjectCompartment1) == types.ObjectLocation1 {
			e.PlayDialog(types.CharacterCath, "LIB032", -1)
		} else {
			e.PlayDialog(types.CharacterCath, "LIB014", -1)
		}
		e.SetDoor(types.ObjectCompartment1, types.CharacterCath, types.ObjectLocationNone, types.CursorKnock, types.CursorHandKnock)
		e.SetDoor(types.ObjectOutsideTyler, types.CharacterCath, types.ObjectLocationNone, types.CursorKeep, types.CursorKeep)
		e.PlayNIS(types.EventID(p.Int[5]))
		e.Call(e.Callback()+1, milosSaveGame, entity.P(1, 0))
	case 4, 18:
		outcome := e.PlayFight(types.FightMilos)
		if outcome != types.FightEndWin {
			e.GameOver(0, 0, 0, outcome == types.FightEndLost)
			return
		}
		e.AddTime(1800)
		e.SetGlobal(types.GlobalMetMilos, 1)
		e.Call(e.Callback()+1, milosSaveGame, entity.P(2, uint32(types.EventMilosTylerCompartmentDefeat)))
	case 5, 19:
		e.PlayNIS(types.EventMilosTylerCompartmentDefeat)
		e.PlayDialog(types.CharacterCath, "LIB015", -1)
		e.BumpCath(types.CarGreenSleeping, 41)
		e.Pos().Location = types.LocationOutsideCompartment
		e.Return()
	case 6:
		e.Call(7, milosDoDialogFullVol, entity.S("MIL1031C"))
	case 8:
		e.Call(9, milosDoDialogFullVol, entity.S("MIL1031A"))
	case 10:
		e.Call(11, milosDoDialogFullVol, entity.S("MIL1031B"))
	case 7, 9, 11:
		milosKnockCursor(e)
	case 12:
		p.Int[3] = 1
		milosEnterTyler(e)
	case 13:
		p.Int[1] = 1
		e.EndGraphics()
		e.Pos().Location = types.LocationInsideCompartment
		e.SetDoor(types.ObjectCompartment1, types.CharacterMilos, types.ObjectLocationNone, types.CursorKnock, types.CursorHandKnock)
	case 14:
		e.SetDoor(types.ObjectOutsideTyler, types.CharacterCath, types.ObjectLocationNone, types.CursorKeep, types.CursorKeep)
		e.Call(15, milosSaveGame, entity.P(2, uint32(types.EventMilosCorpseFloor)))
	case 15:
		e.PlayNIS(types.EventMilosCorpseFloor)
		e.GameOver(0, 1, 57, true)
	case 16:
		if e.Door(types.ObjectCompartment1) != types.ObjectLocation1 {
			e.PlayDialog(types.CharacterCath, "LIB014", -1)
		} else {
			e.PlayDialog(types.CharacterCath, "LIB032", -1)
		}
		e.PlayNIS(types.EventMilosCorpseFloor)
		e.GameOver(0, 1, corpseScene(e), true)
	case 20:
		e.Call(21, milosDoDialog, entity.S("MIL1117A"))
	case 21:
		e.SetDoor(types.ObjectCompartment1, types.CharacterMilos, types.ObjectLocationNone, types.CursorKnock, types.CursorHandKnock)
	case 22:
		p.Int[2] = 1
		e.SetDoor(types.ObjectCompartment1, types.CharacterMilos, e.Door(types.ObjectCompartment1), types.CursorNormal, types.CursorHandKnock)
	}
}

// AtDinner param slots: Int[0] first glance done, Int[1] second glance
// done, Int[2] waiter called, Int[3] and Int[4] glance timers.
func milosAtDinnerHandler(e entity.E, msg types.SavePoint) {
	p := e.Params()
	switch msg.Action {
	case types.ActionNone:
		if e.Time() > types.Time1071000 && p.Int[2] == 0 {
			p.Int[2] = 1
			e.Send(types.CharacterWaiter2, types.Action223002560, types.Param{})
		}
		if e.Time() > types.Time1089000 && e.RCClear() {
			e.Setup(milosReturnFromDinner, types.Params{})
			return
		}
		if e.CheckCathDir(types.CarRestaurant, 61) && p.Int[0] == 0 {
			if e.WaitReal(&p.Int[3], 45) {
				e.Call(1, milosDoSeqOtis, entity.S("009C"))
				return
			}
		}
		milosGlance(e)
	case types.ActionDefault:
		e.Send(types.CharacterTableC, types.Action136455232, types.Param{})
		e.StartCycle("009A")
	case types.ActionCallback:
		switch e.Callback() {
		case 1:
			e.StartCycle("009A")
			p.Int[0] = 1
			milosGlance(e)
		case 2:
			e.StartCycle("009A")
			p.Int[1] = 1
		}
	}
}

// milosGlance looks over at Cath standing by the table.
func milosGlance(e entity.E) {
	p := e.Params()
	if e.CheckCathDir(types.CarRestaurant, 70) && p.Int[1] == 0 && e.WaitReal(&p.Int[4], 45) {
		e.Call(2, milosDoSeqOtis, entity.S("009C"))
	}
}

// milosVesnaClose reports whether Vesna has caught up at the compartment.
func milosVesnaClose(e entity.E) bool {
	return e.NearChar(types.CharacterMilos, types.CharacterVesna, 750) ||
		e.NearX(types.CharacterVesna, milosCompartment, 500)
}

// ReturnFromDinner param slots: Int[0] waiting at the door.
func milosReturnFromDinnerHandler(e entity.E, msg types.SavePoint) {
	p := e.Params()
	switch msg.Action {
	case types.ActionNone:
		if p.Int[0] != 0 && milosVesnaClose(e) {
			e.Send(types.CharacterVesna, types.Action123668192, types.Param{})
			e.Call(5, milosDoCorrOtis, entity.S("611Ag", uint32(types.ObjectCompartmentG)))
		}
	case types.ActionDefault:
		e.Pos().Location = types.LocationOutsideCompartment
		e.Call(1, milosDoOtis5009D, types.Params{})
	case types.ActionCallback:
		switch e.Callback() {
		case 1:
			e.Send(types.CharacterWaiter2, types.Action269485588, types.Param{})
			e.Send(types.CharacterIvo, types.Action125242096, types.Param{})
			e.StartSeq(types.CharacterMilos, "807DS")
			if e.InDiningRoom(types.CharacterCath) {
				e.AdvanceFrame()
			}
			e.Call(2, milosFinishSeqOtis, types.Params{})
		case 2:
			e.EndGraphics()
		case 3:
			if milosVesnaClose(e) {
				e.Send(types.CharacterVesna, types.Action123668192, types.Param{})
				e.Call(4, milosDoCorrOtis, entity.S("611Ag", uint32(types.ObjectCompartmentG)))
				return
			}
			p.Int[0] = 1
			e.StartCycle("609Dg")
			e.BlockAtDoor(types.ObjectCompartmentG)
		case 4, 5:
			if e.Callback() == 5 {
				e.ReleaseAtDoor(types.ObjectCompartmentG)
			}
			pos := e.Pos()
			pos.Coord = milosCompartment
			pos.Location = types.LocationInsideCompartment
			e.EndGraphics()
			e.Setup(milosInComp, types.Params{})
		}
	case types.Action135024800:
		e.Send(types.CharacterVesna, types.Action204832737, types.Param{})
		e.Call(3, milosDoWalk, entity.P(uint32(types.CarRedSleeping), milosCompartment))
	}
}

func milosInCompHandler(e entity.E, msg types.SavePoint) {
	if msg.Action == types.ActionDefault {
		e.Call(1, milosCompLogic, entity.P(uint32(types.Time1404000)))
	}
}

func milosAsleepHandler(e entity.E, msg types.SavePoint) {
	if msg.Action != types.ActionDefault {
		return
	}
	e.Place(types.CarRedSleeping, milosCompartment, types.LocationInsideCompartment)
	e.EndGraphics()
	e.SetDoor(types.ObjectCompartmentG, types.CharacterCath, types.ObjectLocation3, types.CursorKnock, types.CursorHandKnock)
}

// The chapter entries below place Milos for the chapter. The routines
// that follow them in later chapters are not part of this table.

func milosStartPart2Handler(e entity.E, msg types.SavePoint) {
	if msg.Action != types.ActionDefault {
		return
	}
	e.EndGraphics()
	e.Place(types.CarRedSleeping, 540, types.LocationOutsideCompartment)
	d := e.Data()
	d.InventoryItem = 0
	d.Clothes = types.ClothesDefault
	e.SetDoor(types.ObjectCompartmentG, types.CharacterCath, types.ObjectLocation3, types.CursorKnock, types.CursorHandKnock)
	e.SetDoor(types.ObjectHandleInsideG, types.CharacterCath, types.ObjectLocationNone, types.CursorKeep, types.CursorKeep)
}

func milosStartPart3Handler(e entity.E, msg types.SavePoint) {
	if msg.Action != types.ActionDefault {
		return
	}
	e.EndGraphics()
	d := e.Data()
	d.InventoryItem = 0
	d.Clothes = types.ClothesDefault
	d.Flags[0] = 0
	d.Flags[3] = 0
	milosDoor(e, types.CursorKnock, types.CursorHandKnock)
}

func milosStartPart4Handler(e entity.E, msg types.SavePoint) {
	if msg.Action != types.ActionDefault {
		return
	}
	e.EndGraphics()
	e.Place(types.CarRedSleeping, milosCompartment, types.LocationInsideCompartment)
	e.Data().InventoryItem = 0
}

func milosStartPart5Handler(e entity.E, msg types.SavePoint) {
	if msg.Action != types.ActionDefault {
		return
	}
	e.EndGraphics()
	e.Place(types.CarCoalTender, 540, types.LocationInsideCompartment)
	e.Data().InventoryItem = 0
}
