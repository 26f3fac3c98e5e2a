package fight

import (
	"github.com/nathoo/expresscore/engine/rng"
	"github.com/nathoo/expresscore/types"
)

// Behavior customizes a fight for one opponent.
type Behavior interface {
	// CanInteract reports whether the player may start action now. The
	// front-end also uses it to pick the cursor.
	CanInteract(a *Arena, action types.FightAction) bool
	// Landed reports whether the contact frame of the fighter in slot s
	// hits its opponent.
	Landed(a *Arena, s Slot) bool
	// Choose picks the index of the opponent's next move, or -1 to wait.
	Choose(a *Arena, r *rng.RNG) int
}

func behaviorFor(t types.FightType) Behavior {
	switch t {
	case types.FightMilos:
		return standard{queue: true}
	case types.FightAnna:
		return &anna{}
	case types.FightIvo:
		return ivo{}
	case types.FightSalko:
		return &salko{last: -1}
	case types.FightVesna:
		return vesna{}
	}
	return standard{}
}

// standard is the behavior every opponent starts from: the player acts
// when idle, hits land on open frames, and the opponent picks weighted
// moves.
type standard struct {
	// queue lets the player line up one move behind the running one.
	queue bool
}

func (b standard) CanInteract(a *Arena, action types.FightAction) bool {
	p := a.Fighter(Player)
	if _, ok := p.move(action); !ok {
		return false
	}
	if p.Idle() {
		return true
	}
	return b.queue && p.Queued == noSequence && p.Action.IsHotspot()
}

func (standard) Landed(a *Arena, s Slot) bool {
	return a.Other(s).Open()
}

func (standard) Choose(a *Arena, r *rng.RNG) int {
	o := a.Fighter(Opponent)
	moves := o.Moves()
	if len(moves) == 0 {
		return -1
	}
	weights := a.def.Weights
	if a.def.AdvancedAfter > 0 && len(a.def.Advanced) > 0 && a.Fighter(Player).Score >= a.def.AdvancedAfter {
		weights = a.def.Advanced
	}
	if len(weights) != len(moves) {
		return r.Rnd(len(moves))
	}
	return r.WeightedSelect(weights)
}

// anna only lets Cath strike while Anna recovers; a dodge is always
// available while Cath stands ready.
type anna struct {
	standard
}

func (b *anna) CanInteract(a *Arena, action types.FightAction) bool {
	if !b.standard.CanInteract(a, action) {
		return false
	}
	if action == types.FightAction128 {
		return true
	}
	return a.Fighter(Opponent).Idle()
}

// ivo's grab goes through a guard.
type ivo struct {
	standard
}

func (b ivo) Landed(a *Arena, s Slot) bool {
	if s == Opponent && a.Fighter(Opponent).Action == types.FightAction3 {
		return true
	}
	return b.standard.Landed(a, s)
}

// salko rerolls once when he would repeat his last move.
type salko struct {
	standard
	last int
}

func (b *salko) Choose(a *Arena, r *rng.RNG) int {
	i := b.standard.Choose(a, r)
	if i == b.last && len(a.Fighter(Opponent).Moves()) > 1 {
		i = b.standard.Choose(a, r)
	}
	b.last = i
	return i
}

// vesna pins Cath while she strikes: no move can start during her
// contact frames.
type vesna struct {
	standard
}

func (b vesna) CanInteract(a *Arena, action types.FightAction) bool {
	if a.Fighter(Opponent).Striking() {
		return false
	}
	return b.standard.CanInteract(a, action)
}
