package characters

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/nathoo/expresscore/engine/clock"
	"github.com/nathoo/expresscore/engine/entity"
	"github.com/nathoo/expresscore/engine/rng"
	"github.com/nathoo/expresscore/engine/savepoint"
	"github.com/nathoo/expresscore/engine/world"
	"github.com/nathoo/expresscore/types"
)

type fakeLogic struct {
	over  *types.GameOver
	saves []types.SaveRecord
	nis   []types.EventID
	state *types.State
}

func (l *fakeLogic) GameOver(kind, param, scene int, failure bool) {
	l.over = &types.GameOver{Kind: kind, Param: param, Scene: scene, Failure: failure}
	l.state.GameOver = l.over
}

func (l *fakeLogic) Save(c types.CharacterID, kind int, ev types.EventID) {
	l.saves = append(l.saves, types.SaveRecord{Character: c, Kind: kind, Event: ev})
}

func (l *fakeLogic) PlayNIS(ev types.EventID) { l.nis = append(l.nis, ev) }

type fakeFights struct {
	outcome types.FightEndType
	played  []types.FightType
}

func (f *fakeFights) PlayFight(t types.FightType) types.FightEndType {
	f.played = append(f.played, t)
	return f.outcome
}

type rig struct {
	m      *entity.Machine
	clock  *clock.Clock
	bus    *savepoint.Bus
	state  *types.State
	rec    *world.Recorder
	logic  *fakeLogic
	fights *fakeFights
}

// newRig builds a game with the given tables, or all of them, and starts
// chapter 1 at the start of the game.
func newRig(t *testing.T, tables ...*entity.Table) *rig {
	t.Helper()
	if len(tables) == 0 {
		tables = Tables()
	}
	log := zaptest.NewLogger(t)
	st := &types.State{
		Chapter:   1,
		Globals:   map[types.GlobalID]int{},
		DoneNIS:   map[types.EventID]bool{},
		Inventory: map[types.ItemID]bool{},
	}
	rec := world.NewRecorder(world.NewMemArchive())
	r := &rig{
		clock:  clock.New(types.TimeStartGame, 1),
		bus:    savepoint.New(log),
		state:  st,
		rec:    rec,
		logic:  &fakeLogic{state: st},
		fights: &fakeFights{},
	}
	reg := entity.NewRegistry()
	for _, tb := range tables {
		reg.Register(tb)
	}
	ctx := &entity.Context{
		Clock:    r.clock,
		Bus:      r.bus,
		State:    st,
		RNG:      rng.New(1),
		Sound:    rec,
		Graphics: rec,
		Objects:  rec,
		Logic:    r.logic,
		Fights:   r.fights,
	}
	r.m = entity.NewMachine(ctx, reg, log)
	r.m.SetChapter(1)
	return r
}

func (r *rig) tick() {
	r.clock.Advance(1)
	for _, sp := range r.rec.Drain() {
		r.bus.Push(sp.Sender, sp.Recipient, sp.Action, sp.Param)
	}
	r.m.Pass()
}

func (r *rig) ticks(n int) {
	for i := 0; i < n; i++ {
		r.tick()
	}
}

// until ticks until cond holds, at most n times, and reports whether it
// did.
func (r *rig) until(n int, cond func() bool) bool {
	for i := 0; i < n; i++ {
		if cond() {
			return true
		}
		r.tick()
	}
	return cond()
}

func (r *rig) data(c types.CharacterID) *types.EntityData {
	return &r.state.Entities[c]
}

func (r *rig) deliver(to types.CharacterID, action types.ActionID, p types.Param) {
	r.m.Deliver(types.SavePoint{Sender: types.CharacterCath, Recipient: to, Action: action, Param: p})
}

// stack lists the states on c's call stack, bottom first.
func (r *rig) stack(c types.CharacterID) []types.StateID {
	d := r.data(c)
	out := make([]types.StateID, 0, d.CurrentCall+1)
	for i := 0; i <= d.CurrentCall; i++ {
		out = append(out, d.Frames[i].State)
	}
	return out
}
