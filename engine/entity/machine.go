// Package entity implements the scripted character runtime: per-character
// call stacks, behavior tables and the dispatch machine that delivers bus
// messages and ticks to the current state of each character.
//
// State entry is eager. Setup swaps the state at the current call depth and
// delivers ActionDefault to it before returning. Call and Return build
// resumable multi-step sequences on top of a bounded per-character stack:
// the caller stores a resume point, pushes a frame, and gets ActionCallback
// back when the callee returns.
package entity

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nathoo/expresscore/types"
)

// Machine dispatches messages to character state handlers.
type Machine struct {
	ctx *Context
	reg *Registry
	log *zap.Logger
}

// NewMachine creates a machine over the given context and tables.
func NewMachine(ctx *Context, reg *Registry, log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}
	for _, c := range reg.Order() {
		ctx.State.Entities[c].Character = c
	}
	return &Machine{ctx: ctx, reg: reg, log: log}
}

// Context returns the machine's game context.
func (m *Machine) Context() *Context { return m.ctx }

// Registry returns the registered tables.
func (m *Machine) Registry() *Registry { return m.reg }

// Handle returns the handler-side view of character c.
func (m *Machine) Handle(c types.CharacterID) E { return E{m: m, id: c} }

func (m *Machine) data(c types.CharacterID) *types.EntityData {
	return &m.ctx.State.Entities[c]
}

func (m *Machine) table(c types.CharacterID) *Table {
	t := m.reg.Table(c)
	if t == nil {
		m.fatal("character not registered", c, 0)
	}
	return t
}

func (m *Machine) fatal(msg string, c types.CharacterID, state types.StateID) {
	m.log.Error(msg,
		zap.String("character", CharacterName(c)),
		zap.Int("state", int(state)),
		zap.Int("depth", m.data(c).CurrentCall))
	panic(fmt.Sprintf("entity: %s: %s state %d", msg, CharacterName(c), state))
}

// CurrentState returns the state running at c's current call depth.
func (m *Machine) CurrentState(c types.CharacterID) types.StateID {
	d := m.data(c)
	return d.Frames[d.CurrentCall].State
}

// Setup enters state at c's current call depth and runs its Default
// branch synchronously. The frame's params are replaced by p.
func (m *Machine) Setup(c types.CharacterID, state types.StateID, p types.Params) {
	t := m.table(c)
	if !t.Has(state) {
		m.fatal("setup of unregistered state", c, state)
	}
	d := m.data(c)
	f := &d.Frames[d.CurrentCall]
	f.State = state
	f.Params = p

	m.log.Debug("setup",
		zap.String("character", t.Name),
		zap.String("state", t.StateName(state)),
		zap.Int("depth", d.CurrentCall))

	m.Deliver(types.SavePoint{Sender: c, Recipient: c, Action: types.ActionDefault})
}

// Call stores the resume point cb in c's current frame, pushes a frame and
// enters state there.
func (m *Machine) Call(c types.CharacterID, cb int, state types.StateID, p types.Params) {
	d := m.data(c)
	if d.CurrentCall+1 >= types.MaxCallDepth {
		m.fatal("call stack overflow", c, state)
	}
	d.Frames[d.CurrentCall].Callback = cb
	d.CurrentCall++
	m.Setup(c, state, p)
}

// Return pops c's current frame and delivers ActionCallback to the state
// that made the call. The caller reads its resume point with Callback.
func (m *Machine) Return(c types.CharacterID) {
	d := m.data(c)
	if d.CurrentCall == 0 {
		m.fatal("call stack underflow", c, d.Frames[0].State)
	}
	d.CurrentCall--

	m.log.Debug("return",
		zap.String("character", CharacterName(c)),
		zap.String("state", m.table(c).StateName(d.Frames[d.CurrentCall].State)),
		zap.Int("depth", d.CurrentCall),
		zap.Int("callback", d.Frames[d.CurrentCall].Callback))

	m.Deliver(types.SavePoint{Sender: c, Recipient: c, Action: types.ActionCallback})
}

// ForceJump aborts whatever c is doing: the call stack is dropped, its
// held item cleared, its dialog and graphics ended, then state is entered.
func (m *Machine) ForceJump(c types.CharacterID, state types.StateID, p types.Params) {
	d := m.data(c)
	d.CurrentCall = 0
	d.InventoryItem = 0
	if m.ctx.Sound != nil && m.ctx.Sound.IsBuffered(c) {
		m.ctx.Sound.Stop(c)
	}
	m.Handle(c).EndGraphics()

	m.log.Debug("force jump",
		zap.String("character", CharacterName(c)),
		zap.String("state", m.table(c).StateName(state)))

	m.Setup(c, state, p)
}

// Deliver runs the current state handler of the recipient synchronously.
// Messages for characters without a table are ignored.
func (m *Machine) Deliver(msg types.SavePoint) {
	t := m.reg.Table(msg.Recipient)
	if t == nil {
		return
	}
	d := m.data(msg.Recipient)
	if d.CurrentCall < 0 || d.CurrentCall >= types.MaxCallDepth {
		m.fatal("call depth out of range", msg.Recipient, 0)
	}
	state := d.Frames[d.CurrentCall].State
	def, ok := t.states[state]
	if !ok {
		m.fatal("dispatch to unregistered state", msg.Recipient, state)
	}
	def.handler(E{m: m, id: msg.Recipient}, msg)
}

// Send queues a message on the bus.
func (m *Machine) Send(from, to types.CharacterID, action types.ActionID, p types.Param) {
	m.ctx.Bus.Push(from, to, action, p)
}

// SendAll queues a message for every character but Cath and the sender.
func (m *Machine) SendAll(from types.CharacterID, action types.ActionID, p types.Param) {
	m.ctx.Bus.PushAll(from, action, p)
}

// FedEx delivers a message immediately, bypassing the bus.
func (m *Machine) FedEx(from, to types.CharacterID, action types.ActionID, p types.Param) {
	m.Deliver(types.SavePoint{Sender: from, Recipient: to, Action: action, Param: p})
}

// Pass runs one dispatch pass. Characters are visited in registration
// order; each gets its oldest pending message, or ActionNone when it has
// none. Messages pushed during the pass wait for the next one. A message
// matching an auto-message registration sets the recipient's flag slot and
// the recipient gets a plain tick instead.
func (m *Machine) Pass() {
	bus := m.ctx.Bus
	bus.BeginPass()
	for _, c := range m.reg.order {
		if m.ctx.State.GameOver != nil {
			break
		}
		msg, ok := bus.DrainFor(c)
		if ok {
			if slot, auto := bus.Auto(msg); auto {
				if slot >= 0 && slot < types.ParamSlots {
					m.data(c).Flags[slot] = 1
				}
				ok = false
			}
		}
		if !ok {
			msg = types.SavePoint{Sender: c, Recipient: c, Action: types.ActionNone}
		}
		m.Deliver(msg)
	}
	for _, sp := range bus.EndPass(m.reg.Registered) {
		m.log.Debug("dropped message",
			zap.String("recipient", CharacterName(sp.Recipient)),
			zap.Uint32("action", uint32(sp.Action)))
	}
}

// SetChapter starts chapter n: queued messages are dropped and every
// character is force-jumped to its entry state for n. Auto-messages
// registered in earlier chapters stay in force.
func (m *Machine) SetChapter(n int) {
	m.ctx.Bus.ClearQueue()
	m.ctx.State.Chapter = n
	m.ctx.State.Globals[types.GlobalChapter] = n
	m.log.Info("chapter", zap.Int("chapter", n))

	for _, c := range m.reg.order {
		entry, ok := m.reg.tables[c].Entry(n)
		if !ok {
			continue
		}
		m.ForceJump(c, entry, types.Params{})
	}
}

// Validate checks an entity record against the registered tables. Snapshot
// loading uses it to reject corrupt data instead of crashing later.
func (m *Machine) Validate(d *types.EntityData) error {
	t := m.reg.Table(d.Character)
	if t == nil {
		return nil
	}
	if d.CurrentCall < 0 || d.CurrentCall >= types.MaxCallDepth {
		return fmt.Errorf("%s: call depth %d out of range", t.Name, d.CurrentCall)
	}
	for i := 0; i <= d.CurrentCall; i++ {
		if !t.Has(d.Frames[i].State) {
			return fmt.Errorf("%s: frame %d has unregistered state %d", t.Name, i, d.Frames[i].State)
		}
	}
	return nil
}
