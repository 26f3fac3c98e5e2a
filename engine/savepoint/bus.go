// Package savepoint implements the message bus characters use to signal
// each other. Messages are delivered in push order, at most one per
// recipient per dispatch pass.
package savepoint

import (
	"go.uber.org/zap"

	"github.com/nathoo/expresscore/types"
)

// MaxAutoMessages bounds the auto-message table.
const MaxAutoMessages = 128

type entry struct {
	seq uint64
	sp  types.SavePoint
}

// Bus is the global FIFO of pending savepoints.
type Bus struct {
	queue   []entry
	nextSeq uint64
	limit   uint64
	inPass  bool
	autos   []types.AutoMessage
	log     *zap.Logger
}

// New creates an empty bus.
func New(log *zap.Logger) *Bus {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bus{log: log}
}

// Push appends a message to the tail of the queue.
func (b *Bus) Push(sender, recipient types.CharacterID, action types.ActionID, param types.Param) {
	b.queue = append(b.queue, entry{
		seq: b.nextSeq,
		sp: types.SavePoint{
			Sender:    sender,
			Recipient: recipient,
			Action:    action,
			Param:     param,
		},
	})
	b.nextSeq++
	b.log.Debug("push",
		zap.Int("sender", int(sender)),
		zap.Int("recipient", int(recipient)),
		zap.Uint32("action", uint32(action)))
}

// PushAll sends the message to every character except Cath and the sender,
// in id order.
func (b *Bus) PushAll(sender types.CharacterID, action types.ActionID, param types.Param) {
	for c := types.CharacterAnna; c < types.CharacterCount; c++ {
		if c == sender {
			continue
		}
		b.Push(sender, c, action, param)
	}
}

// BeginPass freezes the set of messages the current pass may deliver.
// Anything pushed after this call waits for the next pass.
func (b *Bus) BeginPass() {
	b.limit = b.nextSeq
	b.inPass = true
}

// EndPass drops visible messages for recipients the caller reports as
// unregistered, and closes the pass.
func (b *Bus) EndPass(registered func(types.CharacterID) bool) []types.SavePoint {
	var dropped []types.SavePoint
	kept := b.queue[:0]
	for _, e := range b.queue {
		if e.seq < b.limit && !registered(e.sp.Recipient) {
			dropped = append(dropped, e.sp)
			continue
		}
		kept = append(kept, e)
	}
	b.queue = kept
	b.inPass = false
	return dropped
}

// DrainFor removes and returns the oldest visible message for recipient.
func (b *Bus) DrainFor(recipient types.CharacterID) (types.SavePoint, bool) {
	for i, e := range b.queue {
		if b.inPass && e.seq >= b.limit {
			break
		}
		if e.sp.Recipient != recipient {
			continue
		}
		b.queue = append(b.queue[:i], b.queue[i+1:]...)
		return e.sp, true
	}
	return types.SavePoint{}, false
}

// Pending returns a copy of the queued messages in delivery order.
func (b *Bus) Pending() []types.SavePoint {
	out := make([]types.SavePoint, len(b.queue))
	for i, e := range b.queue {
		out[i] = e.sp
	}
	return out
}

// Len returns the number of queued messages.
func (b *Bus) Len() int { return len(b.queue) }

// Clear drops every queued message and auto-message registration.
func (b *Bus) Clear() {
	b.ClearQueue()
	b.ClearAutos()
}

// ClearQueue drops every queued message. Auto-message registrations stay.
func (b *Bus) ClearQueue() { b.queue = nil }

// ClearAutos forgets every auto-message registration.
func (b *Bus) ClearAutos() { b.autos = nil }

// AddAuto registers an auto-message. A message with action addressed to
// recipient will set the recipient's flag slot instead of being handled.
// Duplicate registrations and registrations past the table bound are ignored.
func (b *Bus) AddAuto(recipient types.CharacterID, action types.ActionID, slot int) {
	for _, a := range b.autos {
		if a.Recipient == recipient && a.Action == action {
			return
		}
	}
	if len(b.autos) >= MaxAutoMessages {
		b.log.Warn("auto-message table full",
			zap.Int("recipient", int(recipient)),
			zap.Uint32("action", uint32(action)))
		return
	}
	b.autos = append(b.autos, types.AutoMessage{Recipient: recipient, Action: action, Slot: slot})
}

// Auto returns the flag slot registered for the message, if any.
func (b *Bus) Auto(sp types.SavePoint) (int, bool) {
	for _, a := range b.autos {
		if a.Recipient == sp.Recipient && a.Action == sp.Action {
			return a.Slot, true
		}
	}
	return 0, false
}

// Autos returns a copy of the auto-message table.
func (b *Bus) Autos() []types.AutoMessage {
	return append([]types.AutoMessage(nil), b.autos...)
}

// Restore replaces the queue and auto-message table from a snapshot.
func (b *Bus) Restore(pending []types.SavePoint, autos []types.AutoMessage) {
	b.Clear()
	for _, sp := range pending {
		b.queue = append(b.queue, entry{seq: b.nextSeq, sp: sp})
		b.nextSeq++
	}
	b.autos = append(b.autos, autos...)
}
