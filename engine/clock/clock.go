// Package clock implements the game clock and the timer checks state
// handlers use for waits and periodic work.
package clock

import "github.com/nathoo/expresscore/types"

// Time delta bounds.
const (
	MinTimeDelta = 1
	MaxTimeDelta = 500
)

// expired latches a one-shot timer after it fired.
const expired uint32 = 0x7FFFFFFF

// Clock holds game time and the real tick counter. Game time advances by
// TimeDelta per tick; ticks always advance by one.
type Clock struct {
	time  types.GameTime
	ticks uint32
	delta uint32
}

// New creates a clock at the given time with the given speed.
func New(start types.GameTime, delta uint32) *Clock {
	c := &Clock{time: start}
	c.SetTimeDelta(delta)
	return c
}

// Advance moves the clock forward by n ticks.
func (c *Clock) Advance(n uint32) {
	c.ticks += n
	c.time += types.GameTime(n * c.delta)
}

// Now returns the current game time.
func (c *Clock) Now() types.GameTime { return c.time }

// NowTicks returns the real tick counter.
func (c *Clock) NowTicks() uint32 { return c.ticks }

// TimeDelta returns the game-time increment per tick.
func (c *Clock) TimeDelta() uint32 { return c.delta }

// SetTimeDelta changes the speed multiplier, clamped to [1, 500].
func (c *Clock) SetTimeDelta(d uint32) {
	switch {
	case d < MinTimeDelta:
		d = MinTimeDelta
	case d > MaxTimeDelta:
		d = MaxTimeDelta
	}
	c.delta = d
}

// Jump sets game time directly. Scripts use it for narrative time skips.
func (c *Clock) Jump(t types.GameTime) { c.time = t }

// Add moves game time forward by d without touching ticks.
func (c *Clock) Add(d types.GameTime) { c.time += d }

// Restore replaces all counters. Only snapshot loading calls it.
func (c *Clock) Restore(t types.GameTime, ticks, delta uint32) {
	c.time = t
	c.ticks = ticks
	c.SetTimeDelta(delta)
}

// UpdateParameter is the periodic interval check. A zero scratch value arms
// the check at now+interval. It returns true once when now reaches the
// deadline and re-arms the next deadline from now.
func UpdateParameter(scratch *uint32, now, interval uint32) bool {
	if interval == 0 {
		interval = 1
	}
	if *scratch == 0 {
		*scratch = now + interval
	}
	if now < *scratch {
		return false
	}
	*scratch = now + interval
	return true
}

// Wait is the one-shot timer used by waits. A zero scratch value arms it at
// now+delay. It returns true once when now passes the deadline, then latches
// until the caller resets scratch to zero.
func Wait(scratch *uint32, now, delay uint32) bool {
	if *scratch == expired {
		return false
	}
	if *scratch == 0 {
		*scratch = now + delay
		if *scratch == 0 {
			*scratch = expired
			return true
		}
	}
	if *scratch >= now {
		return false
	}
	*scratch = expired
	return true
}

// Expired reports whether a one-shot timer has already fired.
func Expired(scratch uint32) bool { return scratch == expired }
