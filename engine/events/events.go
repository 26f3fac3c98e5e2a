// Package events implements the input handler stack. The handler on top of
// the stack owns tick and mouse input exclusively; pushing a handler hides
// the ones below until it is popped.
package events

import (
	"context"
	"io"

	"github.com/nathoo/expresscore/types"
)

// Kind distinguishes input events.
type Kind int

const (
	KindTick Kind = iota
	KindMouse
)

// Button is a mouse button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
)

// Event is one unit of input. Mouse events carry the hotspot action the
// front-end mapped the click position to.
type Event struct {
	Kind    Kind
	Button  Button
	X, Y    int
	Hotspot types.FightAction
}

// Tick returns a tick event.
func Tick() Event { return Event{Kind: KindTick} }

// Click returns a mouse-up event on a hotspot.
func Click(button Button, hotspot types.FightAction) Event {
	return Event{Kind: KindMouse, Button: button, Hotspot: hotspot}
}

// Handler receives the events routed to it. Nil callbacks ignore the event.
type Handler struct {
	Name  string
	Tick  func(Event)
	Mouse func(Event)
}

// Stack is the handler stack.
type Stack struct {
	handlers []Handler
}

// Push installs h over the current handler.
func (s *Stack) Push(h Handler) {
	s.handlers = append(s.handlers, h)
}

// Pop removes the top handler, restoring the previous one.
func (s *Stack) Pop() (Handler, bool) {
	if len(s.handlers) == 0 {
		return Handler{}, false
	}
	h := s.handlers[len(s.handlers)-1]
	s.handlers = s.handlers[:len(s.handlers)-1]
	return h, true
}

// Top returns the active handler.
func (s *Stack) Top() (Handler, bool) {
	if len(s.handlers) == 0 {
		return Handler{}, false
	}
	return s.handlers[len(s.handlers)-1], true
}

// Depth returns the number of installed handlers.
func (s *Stack) Depth() int { return len(s.handlers) }

// Dispatch routes ev to the active handler only. It reports whether a
// handler accepted the event.
func (s *Stack) Dispatch(ev Event) bool {
	h, ok := s.Top()
	if !ok {
		return false
	}
	switch ev.Kind {
	case KindTick:
		if h.Tick == nil {
			return false
		}
		h.Tick(ev)
	case KindMouse:
		if h.Mouse == nil {
			return false
		}
		h.Mouse(ev)
	default:
		return false
	}
	return true
}

// Source produces input events. Next returns io.EOF when exhausted.
type Source interface {
	Next(ctx context.Context) (Event, error)
}

// Script replays a fixed list of events.
type Script struct {
	Events []Event
	pos    int
}

// Next returns the next scripted event.
func (s *Script) Next(ctx context.Context) (Event, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}
	if s.pos >= len(s.Events) {
		return Event{}, io.EOF
	}
	ev := s.Events[s.pos]
	s.pos++
	return ev, nil
}

// Ticks produces tick events forever, or Limit of them when Limit > 0.
type Ticks struct {
	Limit int
	n     int
}

// Next returns a tick until the limit is reached.
func (t *Ticks) Next(ctx context.Context) (Event, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}
	if t.Limit > 0 && t.n >= t.Limit {
		return Event{}, io.EOF
	}
	t.n++
	return Tick(), nil
}

// Drill is a scripted player: it sends ticks and, every Every events,
// clicks the next of Moves with the left button. It stops after Limit
// events when Limit > 0.
type Drill struct {
	Moves []types.FightAction
	Every int
	Limit int
	n     int
	next  int
}

// Next returns a tick or a click.
func (d *Drill) Next(ctx context.Context) (Event, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}
	if d.Limit > 0 && d.n >= d.Limit {
		return Event{}, io.EOF
	}
	d.n++
	if len(d.Moves) == 0 || d.Every <= 0 || d.n%d.Every != 0 {
		return Tick(), nil
	}
	mv := d.Moves[d.next%len(d.Moves)]
	d.next++
	return Click(ButtonLeft, mv), nil
}
