package savepoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/expresscore/types"
)

func push(b *Bus, from, to types.CharacterID, action types.ActionID) {
	b.Push(from, to, action, types.Param{})
}

func TestBus_FIFOPerRecipient(t *testing.T) {
	b := New(nil)
	push(b, types.CharacterMilos, types.CharacterVesna, 1)
	push(b, types.CharacterAnna, types.CharacterMax, 2)
	push(b, types.CharacterMilos, types.CharacterVesna, 3)
	push(b, types.CharacterAnna, types.CharacterMax, 4)
	push(b, types.CharacterIvo, types.CharacterVesna, 5)

	var vesna, max []types.ActionID
	for {
		sp, ok := b.DrainFor(types.CharacterVesna)
		if !ok {
			break
		}
		vesna = append(vesna, sp.Action)
	}
	for {
		sp, ok := b.DrainFor(types.CharacterMax)
		if !ok {
			break
		}
		max = append(max, sp.Action)
	}

	assert.Equal(t, []types.ActionID{1, 3, 5}, vesna)
	assert.Equal(t, []types.ActionID{2, 4}, max)
	assert.Zero(t, b.Len())
}

func TestBus_PushDuringPassInvisible(t *testing.T) {
	b := New(nil)
	push(b, types.CharacterAnna, types.CharacterAnna, 7)

	b.BeginPass()
	sp, ok := b.DrainFor(types.CharacterAnna)
	require.True(t, ok)
	assert.Equal(t, types.ActionID(7), sp.Action)

	// A message to self during the pass waits for the next pass.
	push(b, types.CharacterAnna, types.CharacterAnna, 8)
	_, ok = b.DrainFor(types.CharacterAnna)
	assert.False(t, ok)
	b.EndPass(func(types.CharacterID) bool { return true })

	b.BeginPass()
	sp, ok = b.DrainFor(types.CharacterAnna)
	require.True(t, ok)
	assert.Equal(t, types.ActionID(8), sp.Action)
	b.EndPass(func(types.CharacterID) bool { return true })
}

func TestBus_EndPassDropsUnregistered(t *testing.T) {
	b := New(nil)
	push(b, types.CharacterAnna, types.CharacterMax, 1)
	push(b, types.CharacterAnna, types.CharacterVesna, 2)

	b.BeginPass()
	push(b, types.CharacterAnna, types.CharacterMax, 3)
	dropped := b.EndPass(func(c types.CharacterID) bool { return c == types.CharacterVesna })

	require.Len(t, dropped, 1)
	assert.Equal(t, types.ActionID(1), dropped[0].Action)
	// The late message for Max survives until its own pass.
	pending := b.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, types.ActionID(2), pending[0].Action)
	assert.Equal(t, types.ActionID(3), pending[1].Action)
}

func TestBus_PushAllSkipsSenderAndCath(t *testing.T) {
	b := New(nil)
	b.PushAll(types.CharacterVesna, 99, types.Param{Int: 4})

	pending := b.Pending()
	require.Len(t, pending, int(types.CharacterCount)-2)
	for _, sp := range pending {
		assert.NotEqual(t, types.CharacterCath, sp.Recipient)
		assert.NotEqual(t, types.CharacterVesna, sp.Recipient)
		assert.Equal(t, uint32(4), sp.Param.Int)
	}
	assert.Equal(t, types.CharacterAnna, pending[0].Recipient)
	assert.Equal(t, types.CharacterMitchell, pending[len(pending)-1].Recipient)
}

func TestBus_AutoMessages(t *testing.T) {
	b := New(nil)
	b.AddAuto(types.CharacterVesna, types.Action124190740, 0)
	b.AddAuto(types.CharacterVesna, types.Action124190740, 3)

	slot, ok := b.Auto(types.SavePoint{Recipient: types.CharacterVesna, Action: types.Action124190740})
	require.True(t, ok)
	assert.Equal(t, 0, slot, "first registration wins")

	_, ok = b.Auto(types.SavePoint{Recipient: types.CharacterMilos, Action: types.Action124190740})
	assert.False(t, ok)

	for i := 0; i < MaxAutoMessages+5; i++ {
		b.AddAuto(types.CharacterAnna, types.ActionID(1000+i), 1)
	}
	assert.Len(t, b.Autos(), MaxAutoMessages)
}

func TestBus_RestoreKeepsOrder(t *testing.T) {
	b := New(nil)
	pending := []types.SavePoint{
		{Sender: types.CharacterAnna, Recipient: types.CharacterMax, Action: 1},
		{Sender: types.CharacterMilos, Recipient: types.CharacterVesna, Action: 2},
	}
	b.Restore(pending, []types.AutoMessage{{Recipient: types.CharacterAnna, Action: 5, Slot: 1}})

	assert.Equal(t, pending, b.Pending())
	assert.Len(t, b.Autos(), 1)

	b.Clear()
	assert.Zero(t, b.Len())
	assert.Empty(t, b.Autos())
}

func TestBus_ClearQueueKeepsAutos(t *testing.T) {
	b := New(nil)
	b.AddAuto(types.CharacterAnna, types.Action291662081, 0)
	b.Push(types.CharacterAugust, types.CharacterAnna, types.Action1, types.Param{})

	b.ClearQueue()
	assert.Zero(t, b.Len())
	require.Len(t, b.Autos(), 1)

	b.Push(types.CharacterAugust, types.CharacterAnna, types.Action291662081, types.Param{})
	b.BeginPass()
	sp, ok := b.DrainFor(types.CharacterAnna)
	require.True(t, ok)
	slot, auto := b.Auto(sp)
	assert.True(t, auto)
	assert.Equal(t, 0, slot)

	b.ClearAutos()
	assert.Empty(t, b.Autos())
}
