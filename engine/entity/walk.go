package entity

import (
	"github.com/nathoo/expresscore/engine/world"
	"github.com/nathoo/expresscore/types"
)

// walkDivisor sets the walk speed: each tick covers 1/walkDivisor of the
// remaining distance, at least one unit.
const walkDivisor = 8

// Walk moves the character one step toward coord on car and reports
// arrival. Changing cars is immediate. Passing Cath in the corridor
// queues an excuse-me exchange.
func (e E) Walk(car types.Car, coord int) bool {
	d := e.Data()
	if d.Position.Car != car {
		d.Position.Car = car
	}
	from := d.Position.Coord
	diff := coord - from
	if diff == 0 {
		d.Direction = types.DirectionNone
		return true
	}

	step := abs(diff) / walkDivisor
	if step < 1 {
		step = 1
	}
	dir := types.DirectionUp
	if diff < 0 {
		step = -step
		dir = types.DirectionDown
	}
	if d.Direction != dir {
		d.Direction = dir
		name := CharacterName(e.id) + "W"
		if dir == types.DirectionUp {
			e.m.ctx.Graphics.DrawSequenceRight(e.id, name)
		} else {
			e.m.ctx.Graphics.DrawSequenceLeft(e.id, name)
		}
		d.Sequence = name
	}
	d.Position.Coord += step
	e.bumpPastCath(from, d.Position.Coord)

	if d.Position.Coord == coord {
		d.Direction = types.DirectionNone
		return true
	}
	return false
}

func (e E) bumpPastCath(from, to int) {
	cath := e.m.data(types.CharacterCath).Position
	me := e.Data().Position
	if cath.Car != me.Car || cath.Location != types.LocationOutsideCompartment ||
		me.Location != types.LocationOutsideCompartment {
		return
	}
	x := cath.Coord
	if (from < to && (x <= from || x > to)) || (from > to && (x >= from || x < to)) {
		return
	}
	action := types.ActionExcuseMe
	if e.m.data(types.CharacterCath).Direction != types.DirectionNone {
		action = types.ActionExcuseMeCath
	}
	e.m.Send(types.CharacterCath, e.id, action, types.Param{})
}

// PlayChrExcuseMe has the character excuse itself to Cath. The line plays
// on Cath's channel.
func (e E) PlayChrExcuseMe() {
	if e.Speaking(e.id) {
		return
	}
	lines := e.m.table(e.id).ExcuseMe
	if len(lines) == 0 {
		return
	}
	e.PlayDialog(types.CharacterCath, lines[e.Rnd(len(lines))], world.DefaultVolume)
}

// PlayCathExcuseMe has Cath excuse herself.
func (e E) PlayCathExcuseMe() {
	e.PlayDialog(types.CharacterCath, pick(e, "CAT1126B", "CAT1126C", "CAT1126D"), world.DefaultVolume)
}

// CathSorryDialog picks one of Cath's apologies.
func (e E) CathSorryDialog() string {
	return pick(e, "CAT1125", "CAT1125A", "CAT1125B", "CAT1125C", "CAT1125D")
}

// CathWCDialog picks Cath's line for a knock on the washroom door.
func (e E) CathWCDialog() string {
	return pick(e, "CAT1520", "CAT1521", "CAT1125")
}

func pick(e E, lines ...string) string {
	return lines[e.Rnd(len(lines))]
}
