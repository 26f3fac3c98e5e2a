package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/expresscore/types"
)

const (
	shDoDialog types.StateID = iota + 1
	shDoCorrOtis
	shDoWalk
	shDoWaitReal
	shWaitRCClear
	shSaveGame
	shFinishSeqOtis
	shDoWalkBehind
	shHost
	shDebugWalks
)

// sharedTable registers the shared sub-states plus a host state that
// calls the sub-state named by its Str[1] and records the callback.
func sharedTable(c types.CharacterID, returned *int) *Table {
	t := NewTable(c, CharacterName(c))
	t.Add(shDoDialog, "DoDialog", DoDialog)
	t.Add(shDoCorrOtis, "DoCorrOtis", DoCorrOtis)
	t.Add(shDoWalk, "DoWalk", DoWalk)
	t.Add(shDoWaitReal, "DoWaitReal", DoWaitReal)
	t.Add(shWaitRCClear, "WaitRCClear", WaitRCClear)
	t.Add(shSaveGame, "SaveGame", SaveGame)
	t.Add(shFinishSeqOtis, "FinishSeqOtis", FinishSeqOtis)
	t.Add(shDoWalkBehind, "DoWalkBehind", DoWalkBehind(types.CharacterMilos))
	t.Add(shDebugWalks, "DebugWalks", DebugWalks)
	t.Add(shHost, "Host", func(e E, msg types.SavePoint) {
		if msg.Action == types.ActionCallback {
			*returned = e.Callback()
		}
	})
	return t
}

func hostRig(t *testing.T, c types.CharacterID) (*rig, E, *int) {
	t.Helper()
	returned := new(int)
	r := newRig(t, sharedTable(c, returned))
	r.m.Setup(c, shHost, types.Params{})
	return r, r.m.Handle(c), returned
}

func TestDoDialog_ReturnsOnEndSound(t *testing.T) {
	r, vesna, returned := hostRig(t, types.CharacterVesna)
	vesna.Call(4, shDoDialog, S("VES1015A"))
	assert.True(t, r.rec.IsBuffered(types.CharacterVesna))

	r.ticks(3)
	assert.Equal(t, 0, *returned)
	r.tick()
	assert.Equal(t, 4, *returned)
	assert.Equal(t, 0, vesna.Data().CurrentCall)
}

func TestDoDialog_EmptyLineStillReturns(t *testing.T) {
	r, vesna, returned := hostRig(t, types.CharacterVesna)
	vesna.Call(2, shDoDialog, S(""))
	r.tick()
	assert.Equal(t, 2, *returned)
}

func TestDoCorrOtis_BlocksDoorUntilClipEnds(t *testing.T) {
	r, vesna, returned := hostRig(t, types.CharacterVesna)
	vesna.Call(1, shDoCorrOtis, S("610BG", uint32(types.ObjectCompartmentG)))
	assert.NotZero(t, r.rec.Get(types.ObjectCompartmentG).BlockedBy)
	assert.Equal(t, "610BG", r.rec.Showing(types.CharacterVesna))

	r.ticks(3)
	assert.Equal(t, 1, *returned)
	assert.Zero(t, r.rec.Get(types.ObjectCompartmentG).BlockedBy)
}

func TestFinishSeqOtis_ReturnsWhenNoClipRuns(t *testing.T) {
	r, vesna, returned := hostRig(t, types.CharacterVesna)
	vesna.Call(3, shFinishSeqOtis, types.Params{})
	r.tick()
	assert.Equal(t, 3, *returned)
}

func TestDoWalk_ArrivesAndReturns(t *testing.T) {
	r, vesna, returned := hostRig(t, types.CharacterVesna)
	vesna.Place(types.CarRedSleeping, 3050, types.LocationOutsideCompartment)
	vesna.Call(5, shDoWalk, P(uint32(types.CarRedSleeping), 4070))
	assert.Equal(t, types.DirectionUp, vesna.Data().Direction)

	for i := 0; i < 200 && *returned == 0; i++ {
		r.tick()
	}
	assert.Equal(t, 5, *returned)
	assert.Equal(t, 4070, vesna.Pos().Coord)
	assert.Equal(t, types.DirectionNone, vesna.Data().Direction)
}

func TestWalk_PassingCathQueuesExcuseMe(t *testing.T) {
	r, vesna, _ := hostRig(t, types.CharacterVesna)
	r.m.Context().State.Entities[types.CharacterCath].Position = types.Position{Car: types.CarRedSleeping, Coord: 3500}
	vesna.Place(types.CarRedSleeping, 3050, types.LocationOutsideCompartment)

	for !vesna.Walk(types.CarRedSleeping, 4070) {
	}

	pending := r.m.Context().Bus.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, types.ActionExcuseMe, pending[0].Action)
	assert.Equal(t, types.CharacterVesna, pending[0].Recipient)
}

func TestDoWalk_ExcuseMeLines(t *testing.T) {
	returned := new(int)
	tb := sharedTable(types.CharacterVesna, returned)
	tb.ExcuseMe = []string{"VES1109A"}
	r := newRig(t, tb)
	r.m.Setup(types.CharacterVesna, shHost, types.Params{})
	vesna := r.m.Handle(types.CharacterVesna)
	vesna.Place(types.CarRedSleeping, 0, types.LocationOutsideCompartment)
	vesna.Call(1, shDoWalk, P(uint32(types.CarRedSleeping), 4070))
	require.Equal(t, shDoWalk, r.m.CurrentState(types.CharacterVesna))

	r.m.FedEx(types.CharacterCath, types.CharacterVesna, types.ActionExcuseMe, types.Param{})
	assert.True(t, r.rec.Running("VES1109A"))

	r.m.FedEx(types.CharacterCath, types.CharacterVesna, types.ActionExcuseMeCath, types.Param{})
	assert.True(t, r.rec.IsBuffered(types.CharacterCath))
}

func TestDoWaitReal_UsesTicks(t *testing.T) {
	r, vesna, returned := hostRig(t, types.CharacterVesna)
	r.m.Context().Clock.SetTimeDelta(500)
	vesna.Call(6, shDoWaitReal, P(10))
	r.ticks(10)
	assert.Equal(t, 0, *returned)
	r.ticks(2)
	assert.Equal(t, 6, *returned)
}

func TestWaitRCClear_HoldsWhileSalonOccupied(t *testing.T) {
	r, vesna, returned := hostRig(t, types.CharacterVesna)
	r.m.Context().State.Entities[types.CharacterAnna].Position = types.Position{Car: types.CarRestaurant, Coord: 2000}
	vesna.Call(7, shWaitRCClear, types.Params{})
	r.tick()
	assert.Equal(t, 0, *returned)

	r.m.Context().State.Entities[types.CharacterAnna].Position.Location = types.LocationInsideCompartment
	r.tick()
	assert.Equal(t, 7, *returned)
}

func TestSaveGame_SavesAndReturnsImmediately(t *testing.T) {
	r, vesna, returned := hostRig(t, types.CharacterVesna)
	vesna.Call(8, shSaveGame, P(2, uint32(types.EventCathVesnaTrainTopFight)))
	assert.Equal(t, 8, *returned)
	require.Len(t, r.logic.saves, 1)
	assert.Equal(t, types.EventCathVesnaTrainTopFight, r.logic.saves[0].Event)
}

func TestDoWalkBehind_HoldsNearLeader(t *testing.T) {
	r, vesna, returned := hostRig(t, types.CharacterVesna)
	r.m.Context().State.Entities[types.CharacterMilos].Position = types.Position{Car: types.CarRedSleeping, Coord: 1500}
	vesna.Place(types.CarRedSleeping, 1200, types.LocationOutsideCompartment)
	vesna.Call(9, shDoWalkBehind, P(uint32(types.CarRedSleeping), 3050))

	before := vesna.Pos().Coord
	r.tick()
	assert.Equal(t, before, vesna.Pos().Coord)

	r.m.Send(types.CharacterMilos, types.CharacterVesna, types.Action123668192, types.Param{})
	r.tick()
	assert.Equal(t, 9, *returned)
}

func TestDebugWalks_TurnsAround(t *testing.T) {
	r, vesna, _ := hostRig(t, types.CharacterVesna)
	vesna.Setup(shDebugWalks, types.Params{})
	for i := 0; i < 200 && vesna.Params().Int[0] == 10000; i++ {
		r.tick()
	}
	assert.Equal(t, 10000, vesna.Pos().Coord)
	assert.Equal(t, uint32(0), vesna.Params().Int[0])
}
