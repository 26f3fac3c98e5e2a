package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nathoo/expresscore/types"
)

func TestQueries_RestaurantZones(t *testing.T) {
	r := newRig(t, NewTable(types.CharacterVesna, "Vesna").Add(1, "Idle", func(E, types.SavePoint) {}))
	e := r.m.Handle(types.CharacterVesna)

	tests := []struct {
		coord                  int
		salon, dining, kitchen bool
	}{
		{1000, false, false, false},
		{1540, true, false, false},
		{3650, true, true, false},
		{5000, false, true, false},
		{6000, false, false, true},
	}
	for _, tt := range tests {
		e.Place(types.CarRestaurant, tt.coord, types.LocationOutsideCompartment)
		assert.Equal(t, tt.salon, e.InSalon(types.CharacterVesna), "salon at %d", tt.coord)
		assert.Equal(t, tt.dining, e.InDiningRoom(types.CharacterVesna), "dining at %d", tt.coord)
		assert.Equal(t, tt.kitchen, e.InKitchen(types.CharacterVesna), "kitchen at %d", tt.coord)
	}

	e.Place(types.CarRestaurant, 2000, types.LocationOutsideTrain)
	assert.False(t, e.InSalon(types.CharacterVesna))
}

func TestQueries_NearCharAndCorridor(t *testing.T) {
	r := newRig(t, NewTable(types.CharacterVesna, "Vesna").Add(1, "Idle", func(E, types.SavePoint) {}))
	e := r.m.Handle(types.CharacterVesna)
	st := r.m.Context().State

	st.Entities[types.CharacterMilos].Position = types.Position{Car: types.CarRedSleeping, Coord: 3050}
	e.Place(types.CarRedSleeping, 3400, types.LocationOutsideCompartment)
	assert.True(t, e.NearChar(types.CharacterVesna, types.CharacterMilos, 500))
	assert.False(t, e.NearChar(types.CharacterVesna, types.CharacterMilos, 200))

	st.Entities[types.CharacterCath].Position = types.Position{Car: types.CarGreenSleeping, Coord: 500}
	assert.False(t, e.CathInCorridor(types.CarGreenSleeping), "rear platform is not the corridor")
	st.Entities[types.CharacterCath].Position.Coord = 4000
	assert.True(t, e.CathInCorridor(types.CarGreenSleeping))

	st.CathDir = 61
	assert.True(t, e.CheckCathDir(types.CarGreenSleeping, 61))
	assert.False(t, e.CheckCathDir(types.CarRestaurant, 61))

	assert.False(t, e.InComp(types.CharacterMilos, types.CarRedSleeping, 3050))
	st.Entities[types.CharacterMilos].Position.Location = types.LocationInsideCompartment
	assert.True(t, e.InComp(types.CharacterMilos, types.CarRedSleeping, 3050))
}

func TestQueries_IsNight(t *testing.T) {
	r := newRig(t, NewTable(types.CharacterVesna, "Vesna").Add(1, "Idle", func(E, types.SavePoint) {}))
	e := r.m.Handle(types.CharacterVesna)
	for chapter, night := range map[int]bool{1: true, 2: false, 3: false, 4: true, 5: true} {
		e.SetGlobal(types.GlobalChapter, chapter)
		assert.Equal(t, night, e.IsNight(), "chapter %d", chapter)
	}
	e.SetGlobal(types.GlobalChapter, 5)
	e.SetGlobal(types.GlobalIsDayTime, 1)
	assert.False(t, e.IsNight())
}

func TestParseCharacter(t *testing.T) {
	c, ok := ParseCharacter("vesna")
	assert.True(t, ok)
	assert.Equal(t, types.CharacterVesna, c)

	c, ok = ParseCharacter("14")
	assert.True(t, ok)
	assert.Equal(t, types.CharacterMilos, c)

	_, ok = ParseCharacter("nobody")
	assert.False(t, ok)
	assert.Equal(t, "Character99", CharacterName(99))
}
