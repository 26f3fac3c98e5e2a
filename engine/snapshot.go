package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nathoo/expresscore/engine/rng"
	"github.com/nathoo/expresscore/engine/save"
	"github.com/nathoo/expresscore/engine/state"
	"github.com/nathoo/expresscore/types"
)

var ErrFightRunning = errors.New("a fight is running")

// Snapshot captures the whole core state under name.
func (e *Engine) Snapshot(name string) *save.Snapshot {
	s := &save.Snapshot{
		Name:        name,
		Chapter:     e.State.Chapter,
		Time:        e.Clock.Now(),
		Ticks:       e.Clock.NowTicks(),
		TimeDelta:   e.Clock.TimeDelta(),
		RNGPosition: e.RNG.Position(),
		State:       state.Clone(e.State),
		Pending:     e.Bus.Pending(),
		Autos:       e.Bus.Autos(),
	}
	if e.recorder != nil {
		s.Objects = e.recorder.Objects()
	}
	return s
}

// Restore replaces the running game with s. Every character record is
// checked first; on error nothing changes.
func (e *Engine) Restore(s *save.Snapshot) error {
	if s.State == nil {
		return save.ErrNoState
	}
	if e.fights.Running() {
		return ErrFightRunning
	}
	if s.RNGPosition < 0 || s.RNGPosition > rng.MaxPosition {
		return fmt.Errorf("restoring save: rng position %d out of range 0-%d", s.RNGPosition, int64(rng.MaxPosition))
	}
	for i := range s.State.Entities {
		d := &s.State.Entities[i]
		if d.Character != types.CharacterID(i) {
			return fmt.Errorf("restoring save: entity %d claims character %d", i, d.Character)
		}
		if err := e.machine.Validate(d); err != nil {
			return fmt.Errorf("restoring save: %w", err)
		}
	}

	// The context and the fight engine hold these pointers, so they are
	// restored in place.
	*e.State = *state.Clone(s.State)
	state.Normalize(e.State)
	e.Clock.Restore(s.Time, s.Ticks, s.TimeDelta)
	e.RNG.Reset(s.State.RNGSeed, s.RNGPosition)
	e.Bus.Restore(s.Pending, s.Autos)
	if e.recorder != nil {
		e.recorder.RestoreObjects(s.Objects)
	}
	e.log.Info("restored",
		zap.String("name", s.Name),
		zap.Int("chapter", e.State.Chapter),
		zap.Uint32("time", uint32(e.Clock.Now())))
	return nil
}
