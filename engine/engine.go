// Package engine provides the Engine orchestrator that wires together the
// clock, the savepoint bus, the character tables and the fight engine into
// a single tick.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/nathoo/expresscore/config"
	"github.com/nathoo/expresscore/engine/characters"
	"github.com/nathoo/expresscore/engine/clock"
	"github.com/nathoo/expresscore/engine/entity"
	"github.com/nathoo/expresscore/engine/events"
	"github.com/nathoo/expresscore/engine/fight"
	"github.com/nathoo/expresscore/engine/rng"
	"github.com/nathoo/expresscore/engine/savepoint"
	"github.com/nathoo/expresscore/engine/state"
	"github.com/nathoo/expresscore/engine/world"
	"github.com/nathoo/expresscore/loader"
	"github.com/nathoo/expresscore/types"
)

// Deps are the collaborators the engine drives. Nil Sound, Graphics and
// Objects are served by an in-memory world.Recorder, which then also
// becomes the Pump when none is given.
type Deps struct {
	Sound    world.Sound
	Graphics world.Graphics
	Objects  world.Objects
	Pump     world.Pump
	Archive  world.Archive
}

// Engine holds the loaded content and the running game.
type Engine struct {
	Config  config.Config
	Content *loader.Content
	State   *types.State
	Clock   *clock.Clock
	Bus     *savepoint.Bus
	RNG     *rng.RNG
	Input   *events.Stack

	// FightInput supplies the input of fights characters start. When nil
	// a Drill clicks through the player's moves.
	FightInput func(t types.FightType) events.Source

	machine  *entity.Machine
	fights   *fight.Engine
	recorder *world.Recorder
	pump     world.Pump
	last     *FightReport
	log      *zap.Logger
}

// New creates an engine and starts cfg.Chapter. A nil content loads the
// built-in definitions.
func New(cfg config.Config, content *loader.Content, deps Deps, log *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	if content == nil {
		c, err := loader.Default()
		if err != nil {
			return nil, fmt.Errorf("loading content: %w", err)
		}
		content = c
	}
	for _, w := range content.Warnings {
		log.Warn("content", zap.String("warning", w))
	}

	archive := deps.Archive
	if archive == nil {
		archive = content.Archive()
	}

	e := &Engine{
		Config:  cfg,
		Content: content,
		State:   state.New(cfg.Chapter, cfg.Seed),
		Clock:   clock.New(types.TimeStartGame, cfg.TimeDelta),
		Bus:     savepoint.New(log),
		RNG:     rng.New(cfg.Seed),
		Input:   &events.Stack{},
		log:     log,
	}

	if deps.Sound == nil || deps.Graphics == nil || deps.Objects == nil {
		e.recorder = world.NewRecorder(archive)
		if deps.Sound == nil {
			deps.Sound = e.recorder
		}
		if deps.Graphics == nil {
			deps.Graphics = e.recorder
		}
		if deps.Objects == nil {
			deps.Objects = e.recorder
		}
		if deps.Pump == nil {
			deps.Pump = e.recorder
		}
	}
	e.pump = deps.Pump

	e.fights = fight.New(fight.Options{
		Defs:   content.Fights,
		Clips:  archive,
		RNG:    e.RNG,
		Input:  e.Input,
		Sound:  deps.Sound,
		Logger: log,
	})
	ctx := &entity.Context{
		Clock:    e.Clock,
		Bus:      e.Bus,
		State:    e.State,
		RNG:      e.RNG,
		Sound:    deps.Sound,
		Graphics: deps.Graphics,
		Objects:  deps.Objects,
		Logic:    logic{e},
		Fights:   e,
	}
	e.machine = entity.NewMachine(ctx, characters.Registry(), log)

	// The main loop sits at the bottom of the input stack; fights push
	// themselves above it.
	e.Input.Push(events.Handler{
		Name: "game",
		Tick: func(events.Event) { e.Step() },
	})
	e.machine.SetChapter(cfg.Chapter)
	return e, nil
}

// Step advances the game one tick and runs one dispatch pass. It reports
// whether the game is still running.
func (e *Engine) Step() bool {
	// 0. Game over: nothing advances.
	if e.State.GameOver != nil {
		return false
	}

	// 1. Advance the clock.
	e.Clock.Advance(1)

	// 2. Queue the completions collaborators report for this tick.
	if e.pump != nil {
		for _, sp := range e.pump.Drain() {
			e.Bus.Push(sp.Sender, sp.Recipient, sp.Action, sp.Param)
		}
	}

	// 3. Deliver one message or a plain tick to every character.
	e.machine.Pass()

	return e.State.GameOver == nil
}

// Steps runs up to n steps and returns how many ran.
func (e *Engine) Steps(n int) int {
	for i := 0; i < n; i++ {
		if !e.Step() {
			return i
		}
	}
	return n
}

// Run feeds src through the input stack until the source is exhausted, the
// game ends or Config.MaxTicks ticks have passed.
func (e *Engine) Run(ctx context.Context, src events.Source) error {
	start := e.Clock.NowTicks()
	for e.State.GameOver == nil {
		if max := e.Config.MaxTicks; max > 0 && int(e.Clock.NowTicks()-start) >= max {
			return nil
		}
		ev, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		e.Input.Dispatch(ev)
	}
	return nil
}

// SetChapter starts chapter n.
func (e *Engine) SetChapter(n int) error {
	if n < 1 || n > 5 {
		return fmt.Errorf("chapter %d out of range 1-5", n)
	}
	e.machine.SetChapter(n)
	return nil
}

// Push queues a message from outside the character tables.
func (e *Engine) Push(from, to types.CharacterID, action types.ActionID, p types.Param) {
	e.Bus.Push(from, to, action, p)
}

// Trigger performs the named Cath action. It reports whether any character
// reacted.
func (e *Engine) Trigger(name string) (bool, error) {
	ok, err := characters.Fire(e.machine, name)
	if err != nil {
		return false, fmt.Errorf("%w: %s", err, name)
	}
	e.note("trigger", types.CharacterCath, name, "")
	return ok, nil
}

// Machine returns the dispatch machine.
func (e *Engine) Machine() *entity.Machine { return e.machine }

// Recorder returns the in-memory collaborator, or nil when all
// collaborators were supplied.
func (e *Engine) Recorder() *world.Recorder { return e.recorder }

func (e *Engine) note(kind string, c types.CharacterID, name, detail string) {
	if e.recorder != nil {
		e.recorder.Note(kind, c, name, detail)
	}
}
