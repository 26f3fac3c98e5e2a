package characters

import (
	"github.com/nathoo/expresscore/engine/entity"
	"github.com/nathoo/expresscore/types"
)

// Anna states.
const (
	annaDebugWalks types.StateID = iota + 1
	annaDoSeqOtis
	annaDoCorrOtis
	annaFinishSeqOtis
	annaDoDialog
	annaWaitRCClear
	annaSaveGame
	annaDoWalk
	annaDoWait
	annaPracticeMusic
	annaDoWaitReal
	annaCompLogic
	annaBirth
	annaFleeTyler
	annaWaitDinner
	annaGoDinner
	annaWaitHW
	annaStartPart2
	annaInPart2
	annaStartPart3
	annaPracticing
	annaGoBagg
	annaInBagg
	annaDeadBagg
	annaBaggageFight
	annaPrepareVienna
	annaStartPart4
	annaStartPart5
)

const annaCompartment = 4070

// Anna returns the behavior table of Anna Wolff.
func Anna() *entity.Table {
	t := entity.NewTable(types.CharacterAnna, "Anna")
	t.ExcuseMe = []string{"ANN1107A"}

	t.Add(annaDebugWalks, "DebugWalks", entity.DebugWalks).
		Add(annaDoSeqOtis, "DoSeqOtis", entity.DoSeqOtis).
		Add(annaDoCorrOtis, "DoCorrOtis", entity.DoCorrOtis).
		Add(annaFinishSeqOtis, "FinishSeqOtis", entity.FinishSeqOtis).
		Add(annaDoDialog, "DoDialog", entity.DoDialog).
		Add(annaWaitRCClear, "WaitRCClear", entity.WaitRCClear).
		Add(annaSaveGame, "SaveGame", entity.SaveGame).
		Add(annaDoWalk, "DoWalk", entity.DoWalk).
		Add(annaDoWait, "DoWait", entity.DoWait).
		Add(annaPracticeMusic, "PracticeMusic", annaPracticeMusicHandler).
		Add(annaDoWaitReal, "DoWaitReal", entity.DoWaitReal).
		Add(annaCompLogic, "CompLogic", annaCompLogicHandler).
		Add(annaBirth, "Birth", annaBirthHandler).
		Add(annaFleeTyler, "FleeTyler", annaFleeTylerHandler).
		Add(annaWaitDinner, "WaitDinner", annaWaitDinnerHandler).
		Add(annaGoDinner, "GoDinner", annaGoDinnerHandler).
		Add(annaWaitHW, "WaitHW", annaWaitHWHandler).
		Add(annaStartPart2, "StartPart2", annaStartPart2Handler).
		Add(annaInPart2, "InPart2", annaInPart2Handler).
		Add(annaStartPart3, "StartPart3", annaStartPart3Handler).
		Add(annaPracticing, "Practicing", annaPracticingHandler).
		Add(annaGoBagg, "GoBagg", annaGoBaggHandler).
		Add(annaInBagg, "InBagg", annaInBaggHandler).
		Add(annaDeadBagg, "DeadBagg", annaDeadBaggHandler).
		Add(annaBaggageFight, "BaggageFight", annaBaggageFightHandler).
		Add(annaPrepareVienna, "PrepareVienna", annaPrepareViennaHandler).
		Add(annaStartPart4, "StartPart4", annaStartPart4Handler).
		Add(annaStartPart5, "StartPart5", annaStartPart5Handler)

	t.Chapter(1, annaBirth).
		Chapter(2, annaStartPart2).
		Chapter(3, annaStartPart3).
		Chapter(4, annaStartPart4).
		Chapter(5, annaStartPart5)
	return t
}

// annaDoors sets the compartment door and the washroom door together.
func annaDoors(e entity.E, who types.CharacterID, far, near types.Cursor) {
	e.SetDoor(types.ObjectCompartmentF, who, types.ObjectLocation1, far, near)
	e.SetDoor(types.ObjectOutsideAnnaF, who, types.ObjectLocation1, far, near)
}

// maxNear is the near cursor while the dog guards the compartment.
func maxNear(e entity.E) types.Cursor {
	if e.InComp(types.CharacterMax, types.CarRedSleeping, annaCompartment) {
		return types.CursorHandKnock
	}
	return types.CursorNormal
}

// annaCathReply is what Cath says when she knocks again after Anna told
// her off. The washroom door gets its own line.
func annaCathReply(e entity.E, door uint32) string {
	switch {
	case types.ObjectID(door) == types.ObjectOutsideAnnaF:
		return e.CathWCDialog()
	case !e.HasItem(types.ItemPassengerList) || e.Rnd(2) != 0:
		return e.CathSorryDialog()
	case e.Rnd(2) == 0:
		return "CAT1506A"
	default:
		return "CAT1506"
	}
}

// PracticeMusic param slots: Int[0] piece, Int[1] leaving, Int[2] scene
// count, Int[3] replied, Int[4] quiet, Int[5] resume after Max, Int[6]
// Max timer, Int[7] reply timer.
func annaPracticeMusicHandler(e entity.E, msg types.SavePoint) {
	p := e.Params()
	switch msg.Action {
	case types.ActionNone:
		if p.Int[1] == 0 && e.Flag(0) != 0 {
			p.Int[1] = 1
		}
		if p.Int[5] != 0 && e.WaitReal(&p.Int[6], 75) {
			e.Send(types.CharacterAnna, types.ActionEndSound, types.Param{})
			p.Int[5] = 0
			p.Int[6] = 0
		}
		if p.Int[3] == 0 {
			p.Int[7] = 0
			return
		}
		if !e.WaitReal(&p.Int[7], 75) {
			return
		}
		p.Int[3] = 0
		p.Int[4] = 1
		annaDoors(e, types.CharacterAnna, types.CursorNormal, types.CursorHandKnock)
		p.Int[0]--
		e.Send(types.CharacterAnna, types.ActionEndSound, types.Param{})
		p.Int[7] = 0

	case types.ActionEndSound:
		if p.Int[1] != 0 {
			e.Return()
			return
		}
		p.Int[0]++
		switch p.Int[0] {
		case 1:
			e.PlayDialog(types.CharacterAnna, "ANN2135A", -1)
		case 2:
			e.PlayDialog(types.CharacterAnna, "ANN2135B", -1)
		case 3, 4:
			e.PlayDialog(types.CharacterAnna, "ANN2135C", -1)
		case 5, 12:
			e.PlayDialog(types.CharacterAnna, "ANN2135L", -1)
		case 6, 8:
			e.PlayDialog(types.CharacterAnna, "ANN2135K", -1)
		case 7:
			e.PlayDialog(types.CharacterAnna, "ANN2135H", -1)
		case 9:
			e.PlayDialog(types.CharacterAnna, "ANN2135I", -1)
		case 10:
			e.PlayDialog(types.CharacterAnna, "ANN2135J", -1)
		case 11:
			e.PlayDialog(types.CharacterAnna, "ANN2135M", -1)
		case 13:
			annaDoors(e, types.CharacterAnna, types.CursorKnock, types.CursorHandKnock)
			e.Return()
		}

	case types.ActionKnock:
		if p.Int[3] != 0 {
			annaDoors(e, types.CharacterAnna, types.CursorNormal, types.CursorHandKnock)
			e.PlayDialog(types.CharacterCath, annaCathReply(e, msg.Param.Int), -1)
			p.Int[3] = 0
			p.Int[4] = 1
			return
		}
		e.EndDialog(types.CharacterAnna)
		annaDoors(e, types.CharacterAnna, types.CursorNormal, types.CursorNormal)
		e.Call(1, annaDoDialog, entity.S("LIB012"))

	case types.ActionOpenDoor:
		e.EndDialog(types.CharacterAnna)
		e.Call(3, annaDoDialog, entity.S("LIB013"))

	case types.ActionDefault:
		p.Int[0] = 1
		annaDoors(e, types.CharacterAnna, types.CursorKnock, types.CursorHandKnock)
		e.SetDoor(types.ObjectHandleInsideF, types.CharacterCath, types.ObjectLocationNone, types.CursorKeep, types.CursorKeep)
		if e.CheckCathDir(types.CarRedSleeping, 78) {
			e.BumpCath(types.CarRedSleeping, 49)
		}
		e.StartCycle("418C")
		if e.Speaking(types.CharacterAnna) {
			e.FadeDialog(types.CharacterAnna)
		}
		e.PlayDialog(types.CharacterAnna, "ANN2135A", -1)

	case types.ActionDrawScene:
		if p.Int[4] != 0 || p.Int[3] != 0 {
			annaDoors(e, types.CharacterAnna, types.CursorKnock, types.CursorHandKnock)
			p.Int[4] = 0
			p.Int[3] = 0
		}
		if e.CheckCathDir(types.CarRedSleeping, 60) {
			p.Int[2]++
			if p.Int[2] == 2 {
				e.Call(5, annaDoSeqOtis, entity.S("418B"))
			}
		}

	case types.ActionCallback:
		switch e.Callback() {
		case 1:
			e.Call(2, annaDoDialog, entity.S("Ann1016"))
		case 2:
			annaDoors(e, types.CharacterAnna, types.CursorTalk, types.CursorHandKnock)
			p.Int[3] = 1
		case 3:
			if e.Speaking(types.CharacterMax) {
				p.Int[0]--
				p.Int[5] = 1
				return
			}
			e.Call(4, annaDoDialog, entity.S("MAX1120"))
		case 4:
			p.Int[0]--
			p.Int[5] = 1
		case 5:
			e.StartCycle("418A")
		}
	}
}

// CompLogic param slots: Int[0] leave time, Str[0] idle clip, Int[4]
// replied, Int[5] quiet, Int[6] done, Int[7] reply timer.
func annaCompLogicHandler(e entity.E, msg types.SavePoint) {
	p := e.Params()
	switch msg.Action {
	case types.ActionNone:
		if types.GameTime(p.Int[0]) < e.Time() && p.Int[6] == 0 {
			p.Int[6] = 1
			annaDoors(e, types.CharacterCath, types.CursorKnock, types.CursorHandKnock)
			e.Return()
			return
		}
		if p.Int[4] == 0 {
			p.Int[7] = 0
			return
		}
		if !e.WaitReal(&p.Int[7], 75) {
			return
		}
		p.Int[4] = 0
		p.Int[5] = 1
		annaDoors(e, types.CharacterAnna, types.CursorNormal, maxNear(e))
		p.Int[7] = 0

	case types.ActionKnock, types.ActionOpenDoor:
		if msg.Action == types.ActionOpenDoor && e.InComp(types.CharacterMax, types.CarRedSleeping, annaCompartment) {
			annaDoors(e, types.CharacterAnna, types.CursorNormal, types.CursorNormal)
			e.Call(1, annaDoDialog, entity.S("LIB013"))
			return
		}
		if p.Int[4] != 0 {
			annaDoors(e, types.CharacterAnna, types.CursorNormal, maxNear(e))
			cb := 8
			switch {
			case types.ObjectID(msg.Param.Int) == types.ObjectOutsideAnnaF:
				cb = 6
			case e.HasItem(types.ItemPassengerList):
				cb = 7
			}
			e.Call(cb, annaDoDialog, entity.S(annaCathReply(e, msg.Param.Int)))
			return
		}
		annaDoors(e, types.CharacterAnna, types.CursorNormal, types.CursorNormal)
		if msg.Action == types.ActionKnock {
			e.Call(3, annaDoDialog, entity.S("LIB012"))
		} else {
			e.Call(4, annaDoDialog, entity.S("LIB013"))
		}

	case types.ActionDefault:
		annaDoors(e, types.CharacterAnna, types.CursorKnock, types.CursorHandKnock)
		e.StartCycle(p.Str[0])

	case types.ActionDrawScene:
		if p.Int[5] != 0 || p.Int[4] != 0 {
			annaDoors(e, types.CharacterAnna, types.CursorKnock, types.CursorHandKnock)
			p.Int[5] = 0
			p.Int[4] = 0
		}

	case types.ActionCallback:
		switch e.Callback() {
		case 1:
			if e.Speaking(types.CharacterMax) {
				annaDoors(e, types.CharacterAnna, types.CursorKnock, types.CursorHandKnock)
				return
			}
			e.Call(2, annaDoDialog, entity.S("MAX1120"))
		case 2:
			annaDoors(e, types.CharacterAnna, types.CursorKnock, types.CursorHandKnock)
		case 3, 4:
			e.Call(5, annaDoDialog, entity.S("ANN1016"))
		case 5:
			annaDoors(e, types.CharacterAnna, types.CursorTalk, types.CursorNormal)
			p.Int[4] = 1
		case 6, 7, 8:
			p.Int[4] = 0
			p.Int[5] = 1
		}
	}
}

// compLogic builds the CompLogic parameter block.
func compLogic(until types.GameTime, clip string) types.Params {
	return entity.S(clip, uint32(until))
}

func annaBirthHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone:
		p := e.Params()
		if e.Time() > types.TimeChapter1 && p.Int[0] == 0 {
			p.Int[0] = 1
			e.Setup(annaFleeTyler, types.Params{})
		}
	case types.ActionDefault:
		e.AutoMessage(types.Action291662081, 0)
		e.AutoMessage(types.Action238936000, 1)
		annaDoors(e, types.CharacterCath, types.CursorKnock, types.CursorHandKnock)
		e.SetDoor(types.ObjectHandleInsideF, types.CharacterCath, types.ObjectLocation1, types.CursorKeep, types.CursorKeep)
		e.Place(types.CarGreenSleeping, 8200, types.LocationInsideCompartment)
		e.Data().Clothes = types.ClothesDefault
	}
}

func annaFleeTylerHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.Call(1, annaDoCorrOtis, entity.S("618Ca", uint32(types.ObjectCompartment1)))
	case types.ActionCallback:
		switch e.Callback() {
		case 1:
			pos := e.Pos()
			pos.Location = types.LocationOutsideCompartment
			pos.Coord = 8514
			e.Call(2, annaDoWalk, entity.P(uint32(types.CarRedSleeping), annaCompartment))
		case 2:
			e.Call(3, annaDoCorrOtis, entity.S("618Af", uint32(types.ObjectCompartmentF)))
		case 3:
			e.EndGraphics()
			pos := e.Pos()
			pos.Coord = annaCompartment
			pos.Location = types.LocationInsideCompartment
			e.Setup(annaWaitDinner, types.Params{})
		}
	}
}

func annaWaitDinnerHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.Call(1, annaCompLogic, compLogic(types.Time1093500, "NONE"))
	case types.ActionCallback:
		switch e.Callback() {
		case 1:
			e.Call(2, annaDoCorrOtis, entity.S("618Bf", uint32(types.ObjectCompartmentF)))
		case 2:
			e.Pos().Location = types.LocationOutsideCompartment
			e.Send(types.CharacterMax, types.Action71277948, types.Param{})
			e.Setup(annaGoDinner, types.Params{})
		}
	}
}

func annaGoDinnerHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.Call(1, annaDoWalk, entity.P(uint32(types.CarRestaurant), 850))
	case types.ActionCallback:
		switch e.Callback() {
		case 1:
			e.Call(2, annaWaitRCClear, types.Params{})
		case 2:
			pos := e.Pos()
			pos.Coord = 1540
			pos.Location = types.LocationOutsideCompartment
			e.Call(3, annaDoSeqOtis, entity.S("801US"))
		case 3:
			e.StartSeq(types.CharacterAnna, "001B")
			if e.InSalon(types.CharacterCath) {
				e.AdvanceFrame()
			}
			e.Call(4, annaFinishSeqOtis, types.Params{})
		case 4:
			e.Setup(annaWaitHW, types.Params{})
		}
	}
}

// WaitHW holds Anna at the restaurant door until the head waiter seats
// her. The dinner states that follow are not part of this table.
func annaWaitHWHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.StartCycle("001A")
		e.Send(types.CharacterHeadWait, types.Action223262556, types.Param{})
	case types.Action157370960:
		e.Pos().Location = types.LocationInsideCompartment
	}
}

func annaStartPart2Handler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone:
		e.Setup(annaInPart2, types.Params{})
	case types.ActionDefault:
		e.EndGraphics()
		e.Place(types.CarRedSleeping, annaCompartment, types.LocationInsideCompartment)
		d := e.Data()
		d.InventoryItem = 0
		d.Clothes = types.Clothes1
	}
}

func annaInPart2Handler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.SetDoor(types.ObjectHandleInsideF, types.CharacterCath, types.ObjectLocationNone, types.CursorKeep, types.CursorKeep)
		e.Call(1, annaPracticeMusic, types.Params{})
	case types.ActionCallback:
		switch e.Callback() {
		case 1:
			e.Call(2, annaCompLogic, compLogic(1786500, "418C"))
		case 2:
			e.Call(3, annaPracticeMusic, types.Params{})
		case 3:
			e.Call(4, annaCompLogic, compLogic(1818000, "418C"))
		case 4:
			e.Call(5, annaPracticeMusic, types.Params{})
		case 5:
			e.Call(6, annaCompLogic, compLogic(types.Time15803100, "418C"))
		}
	}
}

func annaStartPart3Handler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone:
		e.Setup(annaPracticing, types.Params{})
	case types.ActionDefault:
		e.EndGraphics()
		e.Place(types.CarRedSleeping, annaCompartment, types.LocationInsideCompartment)
		d := e.Data()
		d.Clothes = types.Clothes3
		d.InventoryItem = 0
		annaDoors(e, types.CharacterCath, types.CursorKnock, types.CursorHandKnock)
		e.SetDoor(types.ObjectHandleInsideF, types.CharacterCath, types.ObjectLocationNone, types.CursorKeep, types.CursorKeep)
	}
}

// Practicing alternates music and quiet spells until Anna is signalled to
// leave for the baggage car.
func annaPracticingHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		if e.CheckCathDir(types.CarRedSleeping, 60) {
			e.BumpCath(types.CarRedSleeping, 49)
		}
		e.Call(1, annaPracticeMusic, types.Params{})
	case types.ActionCallback:
		switch e.Callback() {
		case 1, 2:
			if e.Flag(0) != 0 {
				e.Setup(annaGoBagg, types.Params{})
				return
			}
			e.Call(2, annaCompLogic, compLogic(e.Time()+4500, "418C"))
		}
	}
}

func annaGoBaggHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.SetTimeDelta(3)
		e.Call(1, annaSaveGame, entity.P(1, 0))
	case types.ActionCallback:
		switch e.Callback() {
		case 1:
			e.SetDoor(types.ObjectOutsideAnnaF, types.CharacterCath, types.ObjectLocation1, types.CursorKnock, types.CursorHandKnock)
			e.Pos().Location = types.LocationOutsideCompartment
			e.Call(2, annaDoCorrOtis, entity.S("625Bf", uint32(types.ObjectCompartmentF)))
		case 2:
			e.SetDoor(types.ObjectCompartmentF, types.CharacterCath, types.ObjectLocation1, types.CursorKnock, types.CursorHandKnock)
			e.Call(3, annaDoWalk, entity.P(uint32(types.CarRestaurant), 850))
		case 3:
			e.Call(4, annaWaitRCClear, types.Params{})
		case 4:
			pos := e.Pos()
			pos.Coord = 1540
			pos.Location = types.LocationOutsideCompartment
			e.Call(5, annaDoSeqOtis, entity.S("802US"))
		case 5:
			e.StartSeq(types.CharacterAnna, "802UD")
			if e.InSalon(types.CharacterCath) {
				e.AdvanceFrame()
			}
			e.Call(6, annaFinishSeqOtis, types.Params{})
		case 6:
			e.EndGraphics()
			e.Setup(annaInBagg, types.Params{})
		}
	}
}

func annaInBaggHandler(e entity.E, msg types.SavePoint) {
	p := e.Params()
	switch msg.Action {
	case types.ActionNone:
		if p.Int[0] != 0 && e.Time() > types.Time2259000 && p.Int[1] == 0 {
			p.Int[1] = 1
			e.Send(types.CharacterVesna, types.Action189299008, types.Param{})
			e.Setup(annaDeadBagg, types.Params{})
		}
	case types.ActionDefault:
		e.Pos().Car = types.CarBaggage
		e.SetGlobal(types.GlobalAnnaIsInBaggageCar, 1)
	case types.Action235856512:
		p.Int[0] = 1
	}
}

func annaDeadBaggHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.Send(types.CharacterMaster, types.Action171843264, types.Param{})
	case types.ActionCallback:
		if e.Callback() == 1 {
			e.PlayNIS(types.EventAnnaKilled)
			e.GameOver(1, int(types.Time2250000), 58, true)
		}
	case types.Action272177921:
		if e.DialogRunning("MUS012") {
			e.FadeDialog(types.CharacterCath)
		}
		e.Call(1, annaSaveGame, entity.P(2, uint32(types.EventAnnaKilled)))
	}
}

// BaggageFight param slots: Int[0] fight outcome.
func annaBaggageFightHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.EndGraphics()
		e.Call(1, annaSaveGame, entity.P(2, uint32(types.EventAnnaBaggageArgument)))
	case types.ActionCallback:
		switch e.Callback() {
		case 1:
			e.PlayNIS(types.EventAnnaBaggageArgument)
			e.Call(2, annaSaveGame, entity.P(1, 0))
		case 2:
			outcome := e.PlayFight(types.FightAnna)
			e.Params().Int[0] = uint32(outcome)
			if outcome != types.FightEndWin {
				e.GameOver(0, 0, 0, outcome == types.FightEndLost)
				return
			}
			e.AddTime(1800)
			e.Call(3, annaSaveGame, entity.P(2, uint32(types.EventAnnaBaggagePart2)))
		case 3:
			e.PlayNIS(types.EventAnnaBaggagePart2)
			e.BumpCath(types.CarBaggage, 96)
			e.SetGlobal(types.GlobalAnnaIsInBaggageCar, 0)
			e.ForceJump(types.CharacterVesna, vesnaInComp)
			e.SetTime(types.Time2266200)
			e.Setup(annaPrepareVienna, types.Params{})
		}
	}
}

func annaPrepareViennaHandler(e entity.E, msg types.SavePoint) {
	if msg.Action != types.ActionDefault {
		return
	}
	e.Place(types.CarRedSleeping, annaCompartment, types.LocationInsideCompartment)
	d := e.Data()
	d.Clothes = types.Clothes3
	d.InventoryItem = 0
	e.SetDoor(types.ObjectHandleInsideF, types.CharacterCath, types.ObjectLocation1, types.CursorKeep, types.CursorKeep)
	e.Call(1, annaCompLogic, compLogic(types.Time15803100, "NONE"))
}

func annaStartPart4Handler(e entity.E, msg types.SavePoint) {
	if msg.Action != types.ActionDefault {
		return
	}
	e.EndGraphics()
	e.Place(types.CarRedSleeping, annaCompartment, types.LocationInsideCompartment)
	d := e.Data()
	d.Clothes = types.Clothes2
	d.InventoryItem = 0
}

func annaStartPart5Handler(e entity.E, msg types.SavePoint) {
	if msg.Action != types.ActionDefault {
		return
	}
	e.EndGraphics()
	e.Place(types.CarBaggageRear, 3969, types.LocationInsideCompartment)
	d := e.Data()
	d.Clothes = types.Clothes3
	d.InventoryItem = 0
	e.SetDoor(types.ObjectHandleInsideF, types.CharacterCath, types.ObjectLocationNone, types.CursorKeep, types.CursorKeep)
}
