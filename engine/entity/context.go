package entity

import (
	"github.com/nathoo/expresscore/engine/clock"
	"github.com/nathoo/expresscore/engine/rng"
	"github.com/nathoo/expresscore/engine/savepoint"
	"github.com/nathoo/expresscore/engine/world"
	"github.com/nathoo/expresscore/types"
)

// FightRunner plays a fight to completion and reports the outcome.
type FightRunner interface {
	PlayFight(t types.FightType) types.FightEndType
}

// Context carries everything state handlers may touch. One Context exists
// per running game; nothing in the package holds global state.
type Context struct {
	Clock    *clock.Clock
	Bus      *savepoint.Bus
	State    *types.State
	RNG      *rng.RNG
	Sound    world.Sound
	Graphics world.Graphics
	Objects  world.Objects
	Logic    world.Logic
	Fights   FightRunner
}
