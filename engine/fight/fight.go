// Package fight runs the scripted fights. A fight owns tick and mouse
// input for as long as it runs: its handler sits on top of the input stack
// and is popped on teardown, restoring whatever was installed before.
package fight

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/nathoo/expresscore/engine/events"
	"github.com/nathoo/expresscore/engine/rng"
	"github.com/nathoo/expresscore/engine/world"
	"github.com/nathoo/expresscore/types"
)

var (
	ErrUnknownFight = errors.New("unknown fight")
	ErrMissingClip  = errors.New("missing clip")
	ErrRunning      = errors.New("fight already running")
)

// Options wires an Engine. Sound and Source may be nil: a fight without a
// source ends at once with FightEndExit.
type Options struct {
	Defs   map[types.FightType]types.FightDef
	Clips  world.Archive
	RNG    *rng.RNG
	Input  *events.Stack
	Sound  world.Sound
	Source events.Source
	Logger *zap.Logger
}

// Engine plays fights.
type Engine struct {
	defs   map[types.FightType]types.FightDef
	clips  world.Archive
	rng    *rng.RNG
	input  *events.Stack
	sound  world.Sound
	source events.Source
	log    *zap.Logger

	arena    *Arena
	behavior Behavior
	running  bool
	end      types.FightEndType
	moved    [2]bool
}

// New creates a fight engine.
func New(o Options) *Engine {
	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}
	input := o.Input
	if input == nil {
		input = &events.Stack{}
	}
	r := o.RNG
	if r == nil {
		r = rng.New(1)
	}
	return &Engine{
		defs:   o.Defs,
		clips:  o.Clips,
		rng:    r,
		input:  input,
		sound:  o.Sound,
		source: o.Source,
		log:    log.Named("fight"),
	}
}

// SetSource replaces the input source used by Run.
func (e *Engine) SetSource(src events.Source) { e.source = src }

// Running reports whether a fight is in progress.
func (e *Engine) Running() bool { return e.running }

// Arena returns the current or last fight's arena, or nil.
func (e *Engine) Arena() *Arena { return e.arena }

// Input returns the handler stack the fight installs itself on.
func (e *Engine) Input() *events.Stack { return e.input }

// Types lists the fights the engine knows.
func (e *Engine) Types() []types.FightType {
	out := make([]types.FightType, 0, len(e.defs))
	for _, t := range []types.FightType{types.FightMilos, types.FightAnna, types.FightIvo, types.FightSalko, types.FightVesna} {
		if _, ok := e.defs[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Setup loads fight t and installs its input handler.
func (e *Engine) Setup(t types.FightType) error {
	if e.running {
		return ErrRunning
	}
	def, ok := e.defs[t]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownFight, t)
	}
	player, err := e.fighter(&def.Player)
	if err != nil {
		return fmt.Errorf("fight %s: %w", def.Name, err)
	}
	opponent, err := e.fighter(&def.Opponent)
	if err != nil {
		return fmt.Errorf("fight %s: %w", def.Name, err)
	}
	opponent.Cooldown = def.Cooldown

	e.arena = &Arena{Type: t, def: &def, fighters: [2]*Fighter{player, opponent}}
	e.behavior = behaviorFor(t)
	e.end = types.FightEndExit
	e.running = true
	e.input.Push(events.Handler{
		Name:  "fight " + def.Name,
		Tick:  func(events.Event) { e.HandleTick() },
		Mouse: e.HandleMouse,
	})
	if e.sound != nil && def.Music != "" {
		e.sound.PlaySound(types.CharacterCath, def.Music, world.DefaultVolume)
	}

	e.log.Info("fight started",
		zap.String("fight", def.Name),
		zap.Int("player_countdown", player.Countdown),
		zap.Int("opponent_countdown", opponent.Countdown))
	return nil
}

func (e *Engine) fighter(def *types.FighterDef) (*Fighter, error) {
	if len(def.Sequences) == 0 {
		return nil, fmt.Errorf("%w: no sequences", ErrMissingClip)
	}
	seqs := make([]types.Sequence, len(def.Sequences))
	for i, name := range def.Sequences {
		if e.clips == nil || !e.clips.HasFile(name) {
			return nil, fmt.Errorf("%w: %s", ErrMissingClip, name)
		}
		seq, err := e.clips.LoadSequence(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMissingClip, name, err)
		}
		if len(seq.Frames) == 0 {
			return nil, fmt.Errorf("%w: %s has no frames", ErrMissingClip, name)
		}
		seqs[i] = seq
	}
	for _, r := range []struct {
		name string
		seq  int
	}{{"hit", def.Hit}, {"win", def.Win}, {"defeat", def.Defeat}} {
		if r.seq < 0 || r.seq >= len(seqs) {
			return nil, fmt.Errorf("%w: %s sequence %d of %d", ErrMissingClip, r.name, r.seq, len(seqs))
		}
	}
	for _, m := range def.Moves {
		if m.Sequence < 0 || m.Sequence >= len(seqs) {
			return nil, fmt.Errorf("%w: move %d sequence %d of %d", ErrMissingClip, m.Action, m.Sequence, len(seqs))
		}
	}
	return newFighter(def, seqs), nil
}

// Run plays fight t to its end, feeding the source's events through the
// input stack. Running out of input counts as the player backing out.
func (e *Engine) Run(ctx context.Context, t types.FightType) (types.FightEndType, error) {
	if err := e.Setup(t); err != nil {
		return types.FightEndExit, err
	}
	defer e.teardown()

	if e.source == nil {
		e.Bailout(types.FightEndExit)
		return e.end, nil
	}
	for e.running {
		ev, err := e.source.Next(ctx)
		if errors.Is(err, io.EOF) {
			e.Bailout(types.FightEndExit)
			break
		}
		if err != nil {
			e.Bailout(types.FightEndExit)
			return types.FightEndExit, fmt.Errorf("fight %s: %w", e.arena.def.Name, err)
		}
		e.input.Dispatch(ev)
	}
	return e.end, nil
}

func (e *Engine) teardown() {
	e.input.Pop()
	if e.sound != nil && e.arena.def.Music != "" {
		e.sound.Stop(types.CharacterCath)
	}
}

// Bailout ends the running fight with end. Nothing advances afterwards.
func (e *Engine) Bailout(end types.FightEndType) {
	if !e.running {
		return
	}
	e.running = false
	e.end = end
	e.log.Info("fight over",
		zap.String("fight", e.arena.def.Name),
		zap.Int("end", int(end)),
		zap.Int("player_score", e.arena.fighters[Player].Score),
		zap.Int("opponent_score", e.arena.fighters[Opponent].Score))
}

// CanInteract reports whether a click on hotspot would be honored now.
func (e *Engine) CanInteract(hotspot types.FightAction) bool {
	return e.running && e.behavior.CanInteract(e.arena, hotspot)
}

// HandleTick advances one tick: both fighters move a frame, contact frames
// are resolved, then the opponent may pick a move.
func (e *Engine) HandleTick() {
	e.moved = [2]bool{}
	for _, s := range []Slot{Player, Opponent} {
		if !e.running {
			return
		}
		e.process(s)
	}
	for _, s := range []Slot{Player, Opponent} {
		if !e.running {
			return
		}
		e.resolve(s)
	}
	if e.running {
		e.think()
	}
}

// HandleMouse takes a click. The right button backs out of the fight.
func (e *Engine) HandleMouse(ev events.Event) {
	if !e.running {
		return
	}
	switch ev.Button {
	case events.ButtonRight:
		e.Bailout(types.FightEndExit)
	case events.ButtonLeft:
		if !e.behavior.CanInteract(e.arena, ev.Hotspot) {
			return
		}
		p := e.arena.fighters[Player]
		seq, ok := p.move(ev.Hotspot)
		if !ok {
			return
		}
		p.perform(seq, ev.Hotspot)
	}
}

// process moves the fighter in slot s one frame and runs its
// end-of-sequence branch when the sequence is exhausted. A fighter moves
// at most once per tick.
func (e *Engine) process(s Slot) {
	if e.moved[s] {
		return
	}
	e.moved[s] = true
	a := e.arena
	f := a.fighters[s]
	f.Frame++
	if f.Frame < len(f.Sequences[f.Seq].Frames) {
		e.frameSound(f)
		return
	}

	switch f.Action {
	case types.FightActionResetFrame:
		f.Frame = 0
		f.contact = false
	case types.FightAction103:
		f.Set(0, SetForce)
		f.Action = types.FightAction101
		o := a.Other(s)
		o.Set(0, SetForce)
		o.Action = types.FightAction101
		e.process(s.other())
	case types.FightActionWin:
		e.Bailout(types.FightEndWin)
	case types.FightActionLost:
		e.Bailout(types.FightEndLost)
	default:
		// Action101 and finished moves.
		f.next()
	}
}

func (e *Engine) frameSound(f *Fighter) {
	if e.sound == nil {
		return
	}
	if name := f.Current().Sound; name != "" {
		e.sound.PlaySound(types.CharacterCath, name, world.DefaultVolume)
	}
}

// resolve checks the contact frame of the fighter in slot s, once per
// sequence play.
func (e *Engine) resolve(s Slot) {
	a := e.arena
	f := a.fighters[s]
	if f.contact || f.Idle() || !f.Striking() {
		return
	}
	f.contact = true
	if !e.behavior.Landed(a, s) {
		return
	}
	e.land(s)
}

// land applies a hit by the fighter in slot s. The final blow switches
// both fighters to their closing sequences; the fight ends when the
// winner's sequence does.
func (e *Engine) land(s Slot) {
	a := e.arena
	att, def := a.fighters[s], a.Other(s)
	if def.Countdown > 1 {
		a.handle(s, types.FightAction103)
		def.Set(def.def.Hit, SetForce)
		e.log.Debug("hit",
			zap.Stringer("by", s),
			zap.Int("countdown", def.Countdown))
		return
	}

	att.Set(att.def.Win, SetForce)
	def.Set(def.def.Defeat, SetForce)
	if s == Player {
		a.handle(Player, types.FightActionWin)
	} else {
		a.handle(Opponent, types.FightActionLost)
	}
	e.log.Debug("final blow", zap.Stringer("by", s))
}

// think lets an idle opponent whose cooldown has run out pick a move.
func (e *Engine) think() {
	a := e.arena
	o := a.fighters[Opponent]
	if !o.Idle() || o.Action != types.FightAction101 {
		return
	}
	if o.Cooldown > 0 {
		o.Cooldown--
		return
	}
	i := e.behavior.Choose(a, e.rng)
	moves := o.Moves()
	if i < 0 || i >= len(moves) {
		return
	}
	m := moves[i]
	o.Set(m.Sequence, SetIdle)
	a.handle(Opponent, m.Action)
	o.Cooldown = rearm(a.def.Cooldown, o.Countdown, a.fighters[Player].Score)
}

// rearm is the opponent's refractory period after a move: longer while he
// is fresh, shorter as the player scores.
func rearm(base, countdown, score int) int {
	cd := base + base*countdown/4 - 2*score
	if floor := base / 2; cd < floor {
		cd = floor
	}
	if cd < 1 {
		cd = 1
	}
	return cd
}
