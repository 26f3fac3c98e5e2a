package characters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/expresscore/types"
)

func TestFire_Unknown(t *testing.T) {
	r := newRig(t)
	ok, err := Fire(r.m, "dance")
	assert.ErrorIs(t, err, ErrUnknownTrigger)
	assert.False(t, ok)
}

func TestFire_NobodyReacts(t *testing.T) {
	r := newRig(t)
	for _, name := range Triggers() {
		ok, err := Fire(r.m, name)
		require.NoError(t, err, name)
		assert.False(t, ok, name)
	}
}

func TestFire_RoofThenClimb(t *testing.T) {
	r := newRig(t, Vesna())
	r.fights.outcome = types.FightEndWin
	r.m.ForceJump(types.CharacterVesna, vesnaGuarding, types.Params{})

	ok, err := Fire(r.m, "roof")
	require.NoError(t, err)
	require.True(t, ok)
	r.tick()
	require.Equal(t, vesnaClimbing, r.m.CurrentState(types.CharacterVesna))

	ok, _ = Fire(r.m, "roof")
	require.True(t, ok)
	r.tick()
	assert.Equal(t, []types.FightType{types.FightVesna}, r.fights.played)
	assert.Equal(t, vesnaDisappear, r.m.CurrentState(types.CharacterVesna))
}

func TestFire_LingerTwiceKills(t *testing.T) {
	r := newRig(t, Vesna())
	r.m.ForceJump(types.CharacterVesna, vesnaClimbing, types.Params{})

	Fire(r.m, "linger")
	r.tick()
	assert.Nil(t, r.logic.over)

	Fire(r.m, "linger")
	r.tick()
	require.NotNil(t, r.logic.over)
	assert.True(t, r.logic.over.Failure)
}

func TestFire_Ivo(t *testing.T) {
	r := newRig(t, Ivo())
	r.fights.outcome = types.FightEndWin
	r.m.SetChapter(5)
	r.tick()
	require.Equal(t, ivoGuarding, r.m.CurrentState(types.CharacterIvo))

	ok, err := Fire(r.m, "ivo")
	require.NoError(t, err)
	require.True(t, ok)
	r.tick()
	assert.Equal(t, []types.FightType{types.FightIvo}, r.fights.played)
}

func TestFire_BaggageStartsFightInChapterThree(t *testing.T) {
	r := newRig(t, Anna())
	r.m.ForceJump(types.CharacterAnna, annaInBagg, types.Params{})

	ok, _ := Fire(r.m, "baggage")
	assert.False(t, ok, "chapter 1")

	r.state.Chapter = 3
	ok, _ = Fire(r.m, "baggage")
	require.True(t, ok)
	assert.Equal(t, []types.FightType{types.FightAnna}, r.fights.played)
}

func TestFire_BaggageAfterAnnaDied(t *testing.T) {
	r := newRig(t, Anna())
	r.m.ForceJump(types.CharacterAnna, annaDeadBagg, types.Params{})

	ok, _ := Fire(r.m, "baggage")
	require.True(t, ok)
	r.tick()
	require.NotNil(t, r.logic.over)
	assert.Equal(t, []types.EventID{types.EventAnnaKilled}, r.logic.nis)
}
