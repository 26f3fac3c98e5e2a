package entity

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nathoo/expresscore/engine/clock"
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
	m      *Machine
	rec    *world.Recorder
	logic  *fakeLogic
	fights *fakeFights
	logs   *observer.ObservedLogs
}

func newRig(t *testing.T, tables ...*Table) *rig {
	t.Helper()
	st := &types.State{
		Chapter:   1,
		Globals:   map[types.GlobalID]int{},
		DoneNIS:   map[types.EventID]bool{},
		Inventory: map[types.ItemID]bool{},
	}
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)
	rec := world.NewRecorder(world.NewMemArchive())
	logic := &fakeLogic{state: st}
	fights := &fakeFights{}
	reg := NewRegistry()
	for _, tb := range tables {
		reg.Register(tb)
	}
	ctx := &Context{
		Clock:    clock.New(types.TimeStartGame, 1),
		Bus:      savepoint.New(log),
		State:    st,
		RNG:      rng.New(1),
		Sound:    rec,
		Graphics: rec,
		Objects:  rec,
		Logic:    logic,
		Fights:   fights,
	}
	return &rig{m: NewMachine(ctx, reg, log), rec: rec, logic: logic, fights: fights, logs: logs}
}

// tick advances the clock and runs one pass with the recorder's completions
// queued first.
func (r *rig) tick() {
	r.m.ctx.Clock.Advance(1)
	for _, sp := range r.rec.Drain() {
		r.m.ctx.Bus.Push(sp.Sender, sp.Recipient, sp.Action, sp.Param)
	}
	r.m.Pass()
}

func (r *rig) ticks(n int) {
	for i := 0; i < n; i++ {
		r.tick()
	}
}

// trace is a handler that records every action it sees.
type trace struct {
	seen []types.ActionID
}

func (tr *trace) handler(e E, msg types.SavePoint) {
	tr.seen = append(tr.seen, msg.Action)
}
