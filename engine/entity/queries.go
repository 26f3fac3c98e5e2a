package entity

import "github.com/nathoo/expresscore/types"

// Restaurant car zones.
const (
	salonStart  = 1540
	salonEnd    = 3650
	diningEnd   = 5800
	lowPlatform = 850
)

// CheckLoc reports whether c is on car and not outside the train.
func (e E) CheckLoc(c types.CharacterID, car types.Car) bool {
	p := e.m.data(c).Position
	return p.Car == car && p.Location < types.LocationOutsideTrain
}

// InComp reports whether c is inside the compartment at car/coord.
func (e E) InComp(c types.CharacterID, car types.Car, coord int) bool {
	p := e.m.data(c).Position
	return p.Car == car && p.Coord == coord && p.Location == types.LocationInsideCompartment
}

// InSalon reports whether c is in the restaurant car salon.
func (e E) InSalon(c types.CharacterID) bool {
	if !e.CheckLoc(c, types.CarRestaurant) {
		return false
	}
	x := e.m.data(c).Position.Coord
	return x >= salonStart && x <= salonEnd
}

// InDiningRoom reports whether c is in the restaurant car dining room.
func (e E) InDiningRoom(c types.CharacterID) bool {
	if !e.CheckLoc(c, types.CarRestaurant) {
		return false
	}
	x := e.m.data(c).Position.Coord
	return x >= salonEnd && x <= diningEnd
}

// InKitchen reports whether c is past the dining room.
func (e E) InKitchen(c types.CharacterID) bool {
	return e.CheckLoc(c, types.CarRestaurant) && e.m.data(c).Position.Coord > diningEnd
}

// OnLowPlatform reports whether c is on the green car's rear platform.
func (e E) OnLowPlatform(c types.CharacterID) bool {
	return e.CheckLoc(c, types.CarGreenSleeping) && e.m.data(c).Position.Coord < lowPlatform
}

// CathInCorridor reports whether Cath stands in the corridor of car.
func (e E) CathInCorridor(car types.Car) bool {
	return e.CheckLoc(types.CharacterCath, car) &&
		e.m.data(types.CharacterCath).Position.Location == types.LocationOutsideCompartment &&
		!e.OnLowPlatform(types.CharacterCath)
}

// CheckCathDir reports whether Cath is on car looking at view dir.
func (e E) CheckCathDir(car types.Car, dir int) bool {
	return e.m.data(types.CharacterCath).Position.Car == car && e.m.ctx.State.CathDir == dir
}

// RCClear reports whether nobody stands in the salon or dining room.
func (e E) RCClear() bool {
	for c := types.CharacterAnna; c <= types.CharacterPolice; c++ {
		if e.m.data(c).Position.Location == types.LocationOutsideCompartment &&
			(e.InSalon(c) || e.InDiningRoom(c)) {
			return false
		}
	}
	return true
}

// NearChar reports whether a and b are on the same car within dist of
// each other and not both outside the train.
func (e E) NearChar(a, b types.CharacterID, dist int) bool {
	pa, pb := e.m.data(a).Position, e.m.data(b).Position
	return pa.Car == pb.Car &&
		abs(pa.Coord-pb.Coord) <= dist &&
		(pa.Location != types.LocationOutsideTrain || pb.Location != types.LocationOutsideTrain)
}

// NearX reports whether c is within dist of coordinate x.
func (e E) NearX(c types.CharacterID, x, dist int) bool {
	return abs(e.m.data(c).Position.Coord-x) <= dist
}

// WhoOutside reports whether c is outside the train.
func (e E) WhoOutside(c types.CharacterID) bool {
	return e.m.data(c).Position.Location == types.LocationOutsideTrain
}

// IsNight reports whether the current chapter plays at night.
func (e E) IsNight() bool {
	switch e.Global(types.GlobalChapter) {
	case 1, 4:
		return true
	case 5:
		return e.Global(types.GlobalIsDayTime) == 0
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
