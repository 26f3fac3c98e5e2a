package characters

import (
	"github.com/nathoo/expresscore/engine/entity"
	"github.com/nathoo/expresscore/types"
)

// Vesna states.
const (
	vesnaDebugWalks types.StateID = iota + 1
	vesnaDoDialog
	vesnaDoCorrOtis
	vesnaDoSeqOtis
	vesnaDoWalk
	vesnaDoWait
	vesnaDoWalkBehind
	vesnaWaitRCClear
	vesnaFinishSeqOtis
	vesnaSaveGame
	vesnaHomeAlone
	vesnaBirth
	vesnaWithMilos
	vesnaHomeTogether
	vesnaAsleep
	vesnaStartPart2
	vesnaInPart2
	vesnaCheckTrain
	vesnaStartPart3
	vesnaInComp
	vesnaTakeAWalk
	vesnaKillAnna
	vesnaKilledAnna
	vesnaStartPart4
	vesnaExit
	vesnaDone
	vesnaEndPart4
	vesnaStartPart5
	vesnaGuarding
	vesnaClimbing
	vesnaDisappear
)

const vesnaCompartment = 3050

var vesnaReplies = [3]string{"VES1015A", "VES1015B", "VES1015C"}

// Vesna returns the behavior table of Milos's bodyguard.
func Vesna() *entity.Table {
	t := entity.NewTable(types.CharacterVesna, "Vesna")
	t.ExcuseMe = []string{"VES1109A", "VES1109B", "VES1109C"}

	t.Add(vesnaDebugWalks, "DebugWalks", entity.DebugWalks).
		Add(vesnaDoDialog, "DoDialog", entity.DoDialog).
		Add(vesnaDoCorrOtis, "DoCorrOtis", entity.DoCorrOtis).
		Add(vesnaDoSeqOtis, "DoSeqOtis", entity.DoSeqOtis).
		Add(vesnaDoWalk, "DoWalk", entity.DoWalk).
		Add(vesnaDoWait, "DoWait", entity.DoWait).
		Add(vesnaDoWalkBehind, "DoWalkBehind", entity.DoWalkBehind(types.CharacterMilos)).
		Add(vesnaWaitRCClear, "WaitRCClear", entity.WaitRCClear).
		Add(vesnaFinishSeqOtis, "FinishSeqOtis", entity.FinishSeqOtis).
		Add(vesnaSaveGame, "SaveGame", entity.SaveGame).
		Add(vesnaHomeAlone, "HomeAlone", vesnaHomeAloneHandler).
		Add(vesnaBirth, "Birth", vesnaBirthHandler).
		Add(vesnaWithMilos, "WithMilos", vesnaWithMilosHandler).
		Add(vesnaHomeTogether, "HomeTogether", vesnaHomeTogetherHandler).
		Add(vesnaAsleep, "Asleep", vesnaAsleepHandler).
		Add(vesnaStartPart2, "StartPart2", vesnaStartPart2Handler).
		Add(vesnaInPart2, "InPart2", vesnaInPart2Handler).
		Add(vesnaCheckTrain, "CheckTrain", vesnaCheckTrainHandler).
		Add(vesnaStartPart3, "StartPart3", vesnaStartPart3Handler).
		Add(vesnaInComp, "InComp", vesnaInCompHandler).
		Add(vesnaTakeAWalk, "TakeAWalk", vesnaTakeAWalkHandler).
		Add(vesnaKillAnna, "KillAnna", vesnaKillAnnaHandler).
		Add(vesnaKilledAnna, "KilledAnna", vesnaKilledAnnaHandler).
		Add(vesnaStartPart4, "StartPart4", vesnaStartPart4Handler).
		Add(vesnaExit, "Exit", vesnaExitHandler).
		Add(vesnaDone, "Done", vesnaDoneHandler).
		Add(vesnaEndPart4, "EndPart4", vesnaEndPart4Handler).
		Add(vesnaStartPart5, "StartPart5", vesnaStartPart5Handler).
		Add(vesnaGuarding, "Guarding", vesnaGuardingHandler).
		Add(vesnaClimbing, "Climbing", vesnaClimbingHandler).
		Add(vesnaDisappear, "Disappear", func(entity.E, types.SavePoint) {})

	t.Chapter(1, vesnaBirth).
		Chapter(2, vesnaStartPart2).
		Chapter(3, vesnaStartPart3).
		Chapter(4, vesnaStartPart4).
		Chapter(5, vesnaStartPart5)
	return t
}

// vesnaAtHome puts Vesna back in her compartment with a clean slate.
func vesnaAtHome(e entity.E) {
	e.Place(types.CarRedSleeping, vesnaCompartment, types.LocationInsideCompartment)
	d := e.Data()
	d.Clothes = types.ClothesDefault
	d.InventoryItem = 0
}

func vesnaHomeAloneHandler(e entity.E, msg types.SavePoint) {
	door := compartmentDoor{
		door: types.ObjectCompartmentG, dialog: vesnaDoDialog, replies: vesnaReplies,
		count: 0, quiet: 1, replied: 2, timer: 6,
	}
	switch msg.Action {
	case types.ActionNone:
		door.tick(e)
	case types.ActionKnock, types.ActionOpenDoor:
		door.knocked(e, msg.Action)
	case types.ActionDefault:
		e.SetDoor(types.ObjectCompartmentG, types.CharacterVesna, types.ObjectLocation3, types.CursorKnock, types.CursorHandKnock)
	case types.ActionDrawScene:
		door.reset(e)
	case types.ActionCallback:
		door.callback(e)
	case types.Action55996766, types.Action101687594:
		e.Return()
	}
}

func vesnaBirthHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone:
		p := e.Params()
		if e.Time() > types.TimeChapter1 && p.Int[0] == 0 {
			p.Int[0] = 1
			e.Setup(vesnaWithMilos, types.Params{})
		}
	case types.ActionDefault:
		e.AutoMessage(types.Action124190740, 0)
		e.Place(types.CarRestaurant, 4689, types.LocationInsideCompartment)
	}
}

func vesnaWithMilosHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone:
		*e.Pos() = e.Of(types.CharacterMilos).Position
	case types.ActionCallback:
		if e.Callback() == 1 {
			e.EndGraphics()
			e.Setup(vesnaHomeTogether, types.Params{})
		}
	case types.Action204832737:
		e.Call(1, vesnaDoWalkBehind, entity.P(uint32(types.CarRedSleeping), vesnaCompartment))
	}
}

func vesnaHomeTogetherHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.Place(types.CarRedSleeping, vesnaCompartment, types.LocationInsideCompartment)
	case types.Action190412928:
		e.Call(1, vesnaHomeAlone, types.Params{})
	}
}

func vesnaAsleepHandler(e entity.E, msg types.SavePoint) {
	if msg.Action != types.ActionDefault {
		return
	}
	e.Place(types.CarRedSleeping, vesnaCompartment, types.LocationInsideCompartment)
	e.EndGraphics()
	e.SetDoor(types.ObjectCompartmentG, types.CharacterCath, types.ObjectLocation3, types.CursorKnock, types.CursorHandKnock)
}

func vesnaStartPart2Handler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone:
		e.Setup(vesnaInPart2, types.Params{})
	case types.ActionDefault:
		e.EndGraphics()
		vesnaAtHome(e)
	}
}

func vesnaInPart2Handler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.Action135024800:
		e.Call(2, vesnaCheckTrain, types.Params{})
	case types.Action137165825:
		e.Call(1, vesnaHomeAlone, types.Params{})
	}
}

// vesnaLeaveComp steps into the corridor past the compartment doors.
func vesnaLeaveComp(e entity.E) {
	pos := e.Pos()
	pos.Location = types.LocationOutsideCompartment
	if pos.Coord < 2087 {
		pos.Coord = 2088
	}
}

// vesnaToSalon runs callbacks 1 to 4 of a trip to the restaurant car
// salon: walk there, wait for the car to empty and climb in. The last step
// calls FinishSeqOtis with callback 5.
func vesnaToSalon(e entity.E) bool {
	switch e.Callback() {
	case 1:
		vesnaLeaveComp(e)
		e.Call(2, vesnaDoWalk, entity.P(uint32(types.CarRestaurant), 850))
	case 2:
		e.Call(3, vesnaWaitRCClear, types.Params{})
	case 3:
		e.Place(types.CarRestaurant, 1540, types.LocationOutsideCompartment)
		e.Call(4, vesnaDoSeqOtis, entity.S("808US"))
	case 4:
		e.StartSeq(types.CharacterVesna, "808UD")
		if e.InSalon(types.CharacterCath) {
			e.AdvanceFrame()
		}
		e.Call(5, vesnaFinishSeqOtis, types.Params{})
	default:
		return false
	}
	return true
}

// vesnaFromKitchen runs the way back from the kitchen end of the
// restaurant car to the compartment, starting at callback base. The last
// step calls DoCorrOtis with callback base+4.
func vesnaFromKitchen(e entity.E, base int, clip string, door uint32) bool {
	switch e.Callback() - base {
	case 0:
		e.Place(types.CarRestaurant, 5800, types.LocationOutsideCompartment)
		e.Call(base+1, vesnaDoSeqOtis, entity.S("808DD"))
	case 1:
		e.StartSeq(types.CharacterVesna, "808DS")
		if e.InDiningRoom(types.CharacterCath) {
			e.AdvanceFrame()
		}
		e.Call(base+2, vesnaFinishSeqOtis, types.Params{})
	case 2:
		e.Call(base+3, vesnaDoWalk, entity.P(uint32(types.CarRedSleeping), vesnaCompartment))
	case 3:
		e.Call(base+4, vesnaDoCorrOtis, entity.S(clip, door))
	default:
		return false
	}
	return true
}

func vesnaCheckTrainHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.Call(1, vesnaDoCorrOtis, entity.S("610BG", uint32(types.ObjectCompartmentG)))
	case types.ActionCallback:
		if vesnaToSalon(e) || vesnaFromKitchen(e, 7, "610AG", uint32(types.ObjectCompartmentG)) {
			return
		}
		switch e.Callback() {
		case 5:
			e.Pos().Location = types.LocationInsideCompartment
			e.EndGraphics()
			e.Call(6, vesnaDoWait, entity.P(4500))
		case 6:
			e.Call(7, vesnaWaitRCClear, types.Params{})
		case 11:
			e.Pos().Location = types.LocationInsideCompartment
			e.EndGraphics()
			e.Return()
		}
	}
}

func vesnaStartPart3Handler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone:
		e.Setup(vesnaInComp, types.Params{})
	case types.ActionDefault:
		e.EndGraphics()
		vesnaAtHome(e)
	}
}

func vesnaInCompHandler(e entity.E, msg types.SavePoint) {
	door := compartmentDoor{
		door: types.ObjectCompartmentG, dialog: vesnaDoDialog, replies: vesnaReplies,
		count: 2, quiet: 0, replied: 1, timer: 7,
	}
	p := e.Params()
	switch msg.Action {
	case types.ActionNone:
		if vesnaKillAnnaDue(e, &p.Int[6]) {
			e.Setup(vesnaKillAnna, types.Params{})
			return
		}
		door.tick(e)
	case types.ActionKnock, types.ActionOpenDoor:
		door.knocked(e, msg.Action)
	case types.ActionDefault:
		vesnaAtHome(e)
		e.EndGraphics()
	case types.ActionDrawScene:
		door.reset(e)
	case types.ActionCallback:
		door.callback(e)
	case types.Action137165825:
		e.Call(5, vesnaHomeAlone, types.Params{})
	case types.Action155913424:
		e.Call(6, vesnaTakeAWalk, types.Params{})
	case types.Action203663744:
		e.SetDoor(types.ObjectCompartmentG, types.CharacterVesna, types.ObjectLocation3, types.CursorKnock, types.CursorHandKnock)
	}
}

// vesnaKillAnnaDue reports when Vesna leaves to kill Anna in the baggage
// car. Once Anna is there she goes as soon as Cath has stayed in the red
// car corridor for more than a tick, and at 2250000 at the latest.
func vesnaKillAnnaDue(e entity.E, timer *uint32) bool {
	if e.Global(types.GlobalAnnaIsInBaggageCar) == 0 || *timer == uint32(types.TimeNever) || e.Time() == 0 {
		return false
	}
	now := uint32(e.Time())
	if e.Time() > types.Time2250000 {
		*timer = uint32(types.TimeNever)
		return true
	}
	if !e.CathInCorridor(types.CarRedSleeping) || *timer == 0 {
		*timer = now
	}
	if *timer < now {
		*timer = uint32(types.TimeNever)
		return true
	}
	return false
}

func vesnaTakeAWalkHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.Call(1, vesnaDoCorrOtis, entity.S("610Bg", uint32(types.ObjectCompartmentG)))
	case types.ActionCallback:
		// BUG: the way back passes the compartment coordinate where the
		// door id belongs, so no door is blocked while the clip plays.
		if vesnaToSalon(e) || vesnaFromKitchen(e, 7, "610Ag", vesnaCompartment) {
			return
		}
		switch e.Callback() {
		case 5:
			e.EndGraphics()
			e.Place(types.CarRestaurant, 5900, types.LocationInsideCompartment)
			e.Call(6, vesnaDoWait, entity.P(4500))
		case 6:
			e.Call(7, vesnaWaitRCClear, types.Params{})
		case 11:
			e.Place(types.CarRedSleeping, vesnaCompartment, types.LocationInsideCompartment)
			e.EndGraphics()
			e.Return()
		}
	}
}

func vesnaKillAnnaHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.Send(types.CharacterMilos, types.Action259125998, types.Param{})
		e.Call(1, vesnaDoCorrOtis, entity.S("610Bg", uint32(types.ObjectCompartmentG)))
	case types.ActionCallback:
		// BUG: same coordinate-as-door as the kitchen walk above.
		if vesnaToSalon(e) || vesnaFromKitchen(e, 6, "610Ag", vesnaCompartment) {
			return
		}
		switch e.Callback() {
		case 5:
			e.EndGraphics()
			e.Pos().Car = types.CarBaggage
			e.Send(types.CharacterAnna, types.Action235856512, types.Param{})
		case 10:
			e.Place(types.CarRedSleeping, vesnaCompartment, types.LocationInsideCompartment)
			e.EndGraphics()
			e.Setup(vesnaKilledAnna, types.Params{})
		}
	case types.Action189299008:
		e.Call(6, vesnaWaitRCClear, types.Params{})
	}
}

func vesnaKilledAnnaHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionKnock, types.ActionOpenDoor:
		e.SetDoor(types.ObjectCompartmentG, types.CharacterVesna, types.ObjectLocation3, types.CursorNormal, types.CursorNormal)
		if msg.Action == types.ActionKnock {
			e.Call(1, vesnaDoDialog, entity.S("LIB012"))
		} else {
			e.Call(2, vesnaDoDialog, entity.S("LIB013"))
		}
	case types.ActionDefault:
		vesnaAtHome(e)
	case types.ActionCallback:
		switch e.Callback() {
		case 1, 2:
			e.Call(3, vesnaDoDialog, entity.S("VES1015A"))
		case 3:
			e.SetDoor(types.ObjectCompartmentG, types.CharacterVesna, types.ObjectLocation3, types.CursorKnock, types.CursorHandKnock)
		}
	case types.Action203663744:
		e.SetDoor(types.ObjectCompartmentG, types.CharacterVesna, types.ObjectLocation3, types.CursorKnock, types.CursorHandKnock)
	}
}

func vesnaStartPart4Handler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone:
		e.Call(1, vesnaHomeAlone, types.Params{})
	case types.ActionDefault:
		e.EndGraphics()
		e.Place(types.CarRedSleeping, vesnaCompartment, types.LocationInsideCompartment)
		e.Data().InventoryItem = 0
		e.SetDoor(types.ObjectCompartmentG, types.CharacterVesna, types.ObjectLocation3, types.CursorKnock, types.CursorHandKnock)
	case types.ActionCallback:
		if e.Callback() == 1 {
			e.Setup(vesnaExit, types.Params{})
		}
	}
}

func vesnaExitHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone:
		p := e.Params()
		if e.Time() > types.Time2428200 && p.Int[0] == 0 {
			p.Int[0] = 1
			e.Setup(vesnaDone, types.Params{})
		}
	case types.ActionDefault:
		e.Send(types.CharacterMilos, types.Action135600432, types.Param{})
		e.Call(1, vesnaDoCorrOtis, entity.S("610BG", uint32(types.ObjectCompartmentG)))
	case types.ActionCallback:
		if vesnaToSalon(e) {
			return
		}
		if e.Callback() == 5 {
			e.EndGraphics()
			e.Place(types.CarRestaurant, 5900, types.LocationInsideCompartment)
		}
	}
}

func vesnaDoneHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionDefault:
		e.Call(1, vesnaWaitRCClear, types.Params{})
	case types.ActionCallback:
		if vesnaFromKitchen(e, 1, "610AG", uint32(types.ObjectCompartmentG)) {
			return
		}
		if e.Callback() == 5 {
			e.Setup(vesnaEndPart4, types.Params{})
		}
	}
}

func vesnaEndPart4Handler(e entity.E, msg types.SavePoint) {
	if msg.Action != types.ActionDefault {
		return
	}
	e.EndGraphics()
	e.SetDoor(types.ObjectCompartmentG, types.CharacterCath, types.ObjectLocation3, types.CursorKnock, types.CursorHandKnock)
	e.Place(types.CarRedSleeping, vesnaCompartment, types.LocationInsideCompartment)
	e.Data().InventoryItem = 0
}

func vesnaStartPart5Handler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionNone:
		e.Setup(vesnaGuarding, types.Params{})
	case types.ActionDefault:
		e.EndGraphics()
		pos := e.Pos()
		pos.Car = types.CarRestaurant
		pos.Location = types.LocationInsideCompartment
		e.Data().InventoryItem = 0
	}
}

func vesnaGuardingHandler(e entity.E, msg types.SavePoint) {
	switch msg.Action {
	case types.ActionOpenDoor:
		e.Call(1, vesnaSaveGame, entity.P(2, uint32(types.EventCathVesnaRestaurantKilled)))
	case types.ActionDefault:
		e.SetDoor(types.ObjectRestaurantCar, types.CharacterVesna, types.ObjectLocationNone, types.CursorNormal, types.Cursor(1))
	case types.ActionCallback:
		if e.Callback() == 1 {
			e.PlayNIS(types.EventCathVesnaRestaurantKilled)
			e.GameOver(0, 1, 0, true)
		}
	case types.Action134427424:
		e.SetDoor(types.ObjectRestaurantCar, types.CharacterCath, types.ObjectLocationNone, types.CursorNormal, types.Cursor(1))
		e.Setup(vesnaClimbing, types.Params{})
	}
}

// Climbing param slots: Int[0] warned, Int[1] fight outcome, Int[2] warning
// timer, Int[3] attack timer.
func vesnaClimbingHandler(e entity.E, msg types.SavePoint) {
	p := e.Params()
	switch msg.Action {
	case types.ActionNone:
		if p.Int[0] == 0 && e.WaitReal(&p.Int[2], 120) {
			e.PlayDialog(types.CharacterVesna, "Ves5001", 16)
			p.Int[0] = 1
		}
		if e.WaitReal(&p.Int[3], 180) {
			e.Call(1, vesnaSaveGame, entity.P(2, uint32(types.EventCathVesnaTrainTopKilled)))
		}
	case types.ActionCallback:
		switch e.Callback() {
		case 1, 2:
			e.PlayNIS(types.EventCathVesnaTrainTopKilled)
			e.GameOver(0, 1, 0, true)
		case 3:
			e.PlayNIS(types.EventCathVesnaTrainTopFight)
			e.Call(4, vesnaSaveGame, entity.P(1, 0))
		case 4:
			outcome := e.PlayFight(types.FightVesna)
			p.Int[1] = uint32(outcome)
			if outcome != types.FightEndWin {
				e.GameOver(0, 0, 0, outcome == types.FightEndLost)
				return
			}
			e.PlayDialog(types.CharacterCath, "TUNNEL", -1)
			e.AddTime(1800)
			e.Call(5, vesnaSaveGame, entity.P(2, uint32(types.EventCathVesnaTrainTopWin)))
		case 5:
			e.PlayNIS(types.EventCathVesnaTrainTopWin)
			e.BumpCath(types.CarRestaurant, 11)
			e.Setup(vesnaDisappear, types.Params{})
		}
	case types.Action167992577:
		e.Call(3, vesnaSaveGame, entity.P(2, uint32(types.EventCathVesnaTrainTopFight)))
	case types.Action202884544:
		if p.Int[0] != 0 {
			e.Call(2, vesnaSaveGame, entity.P(2, uint32(types.EventCathVesnaTrainTopKilled)))
		} else {
			e.PlayDialog(types.CharacterVesna, "Ves5001", 16)
			p.Int[0] = 1
		}
	}
}
