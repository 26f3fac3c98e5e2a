package entity

import (
	"github.com/nathoo/expresscore/engine/clock"
	"github.com/nathoo/expresscore/types"
)

// P builds a parameter block from integer arguments.
func P(ints ...uint32) types.Params {
	var p types.Params
	copy(p.Int[:], ints)
	return p
}

// S builds a parameter block from a string argument and integer arguments.
func S(s string, ints ...uint32) types.Params {
	p := P(ints...)
	p.Str[0] = s
	return p
}

// E is the view a state handler has of its own character and the game.
type E struct {
	m  *Machine
	id types.CharacterID
}

// ID returns the character the handler runs for.
func (e E) ID() types.CharacterID { return e.id }

// Machine returns the dispatch machine.
func (e E) Machine() *Machine { return e.m }

// Data returns the character's runtime record.
func (e E) Data() *types.EntityData { return e.m.data(e.id) }

// Of returns another character's runtime record.
func (e E) Of(c types.CharacterID) *types.EntityData { return e.m.data(c) }

// Params returns the scratch block of the running state.
func (e E) Params() *types.Params {
	d := e.Data()
	return &d.Frames[d.CurrentCall].Params
}

// Callback returns the resume point stored by the running state.
func (e E) Callback() int {
	d := e.Data()
	return d.Frames[d.CurrentCall].Callback
}

// Flag returns an auto-message flag slot.
func (e E) Flag(slot int) uint32 { return e.Data().Flags[slot] }

// Pos returns the character's position.
func (e E) Pos() *types.Position { return &e.Data().Position }

// Place sets car, coordinate and location at once.
func (e E) Place(car types.Car, coord int, loc types.Location) {
	e.Data().Position = types.Position{Car: car, Coord: coord, Location: loc}
}

// --- control flow ---

func (e E) Setup(state types.StateID, p types.Params) { e.m.Setup(e.id, state, p) }

func (e E) Call(cb int, state types.StateID, p types.Params) { e.m.Call(e.id, cb, state, p) }

func (e E) Return() { e.m.Return(e.id) }

// ForceJump aborts another character and puts it in state.
func (e E) ForceJump(c types.CharacterID, state types.StateID) {
	e.m.ForceJump(c, state, types.Params{})
}

func (e E) Send(to types.CharacterID, action types.ActionID, p types.Param) {
	e.m.Send(e.id, to, action, p)
}

func (e E) SendAll(action types.ActionID, p types.Param) { e.m.SendAll(e.id, action, p) }

func (e E) FedEx(to types.CharacterID, action types.ActionID, p types.Param) {
	e.m.FedEx(e.id, to, action, p)
}

// AutoMessage makes action, when addressed to this character, set flag
// slot instead of reaching the handler.
func (e E) AutoMessage(action types.ActionID, slot int) {
	e.m.ctx.Bus.AddAuto(e.id, action, slot)
}

// --- time ---

// Time returns game time.
func (e E) Time() types.GameTime { return e.m.ctx.Clock.Now() }

// Ticks returns the real tick counter.
func (e E) Ticks() uint32 { return e.m.ctx.Clock.NowTicks() }

// AddTime moves game time forward.
func (e E) AddTime(d types.GameTime) { e.m.ctx.Clock.Add(d) }

// SetTime jumps game time.
func (e E) SetTime(t types.GameTime) { e.m.ctx.Clock.Jump(t) }

// SetTimeDelta changes the clock speed.
func (e E) SetTimeDelta(d uint32) { e.m.ctx.Clock.SetTimeDelta(d) }

// WaitReal is the one-shot real-time timer on a scratch slot.
func (e E) WaitReal(scratch *uint32, delay uint32) bool {
	return clock.Wait(scratch, e.Ticks(), delay)
}

// WaitGame is the one-shot game-time timer on a scratch slot.
func (e E) WaitGame(scratch *uint32, delay uint32) bool {
	return clock.Wait(scratch, uint32(e.Time()), delay)
}

// --- game state ---

func (e E) Global(g types.GlobalID) int { return e.m.ctx.State.Globals[g] }

func (e E) SetGlobal(g types.GlobalID, v int) { e.m.ctx.State.Globals[g] = v }

func (e E) Chapter() int { return e.m.ctx.State.Chapter }

// HasItem reports whether Cath carries item.
func (e E) HasItem(item types.ItemID) bool { return e.m.ctx.State.Inventory[item] }

// DoneNIS reports whether a cinematic has been played.
func (e E) DoneNIS(ev types.EventID) bool { return e.m.ctx.State.DoneNIS[ev] }

// Rnd returns a value in [0, n).
func (e E) Rnd(n int) int { return e.m.ctx.RNG.Rnd(n) }

// --- collaborators ---

// PlayDialog plays a dialog line on who's channel.
func (e E) PlayDialog(who types.CharacterID, name string, volume int) {
	snd := e.m.ctx.Sound
	if who != types.CharacterCath && snd.IsBuffered(who) {
		snd.Stop(who)
	}
	snd.PlaySound(who, name, volume)
}

// DialogRunning reports whether the named line is playing.
func (e E) DialogRunning(name string) bool { return e.m.ctx.Sound.Running(name) }

// Speaking reports whether c has a line playing.
func (e E) Speaking(c types.CharacterID) bool { return e.m.ctx.Sound.IsBuffered(c) }

// FadeDialog fades c's running line.
func (e E) FadeDialog(c types.CharacterID) { e.m.ctx.Sound.Fade(c) }

// EndDialog stops c's running line.
func (e E) EndDialog(c types.CharacterID) { e.m.ctx.Sound.Stop(c) }

// StartCycle draws a looping clip.
func (e E) StartCycle(name string) {
	d := e.Data()
	d.Sequence = name
	d.Direction = types.DirectionCycle
	e.m.ctx.Graphics.StartCycle(e.id, name)
}

// StartSeq draws a one-shot clip on c. The clip end arrives as
// ActionExitCompartment.
func (e E) StartSeq(c types.CharacterID, name string) {
	d := e.m.data(c)
	d.Sequence = name
	d.Direction = types.DirectionSequence
	e.m.ctx.Graphics.StartSequence(c, name)
}

// AdvanceFrame skips the current clip ahead.
func (e E) AdvanceFrame() { e.m.ctx.Graphics.AdvanceFrame(e.id) }

// EndGraphics removes the character's clips.
func (e E) EndGraphics() { e.EndGraphicsOf(e.id) }

// EndGraphicsOf removes another character's clips.
func (e E) EndGraphicsOf(c types.CharacterID) {
	d := e.m.data(c)
	d.Sequence = ""
	d.Direction = types.DirectionNone
	if g := e.m.ctx.Graphics; g != nil {
		g.ClearSequences(c)
	}
}

// SetDoor rewrites an object entry.
func (e E) SetDoor(obj types.ObjectID, who types.CharacterID, loc types.ObjectLocation, far, near types.Cursor) {
	e.m.ctx.Objects.Update(obj, who, loc, far, near)
}

// Door returns an object's location state.
func (e E) Door(obj types.ObjectID) types.ObjectLocation {
	return e.m.ctx.Objects.Get(obj).Location
}

func (e E) BlockAtDoor(obj types.ObjectID)   { e.m.ctx.Objects.Block(e.id, obj) }
func (e E) ReleaseAtDoor(obj types.ObjectID) { e.m.ctx.Objects.Release(e.id, obj) }

// BumpCath moves the camera to a scene.
func (e E) BumpCath(car types.Car, scene int) {
	e.m.ctx.Graphics.LoadSceneFromPosition(car, scene)
}

// Save writes a save point.
func (e E) Save(kind int, ev types.EventID) { e.m.ctx.Logic.Save(e.id, kind, ev) }

// PlayNIS plays a cinematic and marks it done.
func (e E) PlayNIS(ev types.EventID) {
	e.m.ctx.State.DoneNIS[ev] = true
	e.m.ctx.Logic.PlayNIS(ev)
}

// GameOver ends the game.
func (e E) GameOver(kind, param, scene int, failure bool) {
	e.m.ctx.Logic.GameOver(kind, param, scene, failure)
}

// PlayFight runs a fight synchronously and returns its outcome.
func (e E) PlayFight(t types.FightType) types.FightEndType {
	return e.m.ctx.Fights.PlayFight(t)
}
