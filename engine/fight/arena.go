package fight

import "github.com/nathoo/expresscore/types"

// Slot names a side of the arena.
type Slot int

const (
	Player Slot = iota
	Opponent
)

func (s Slot) other() Slot { return 1 - s }

func (s Slot) String() string {
	if s == Player {
		return "player"
	}
	return "opponent"
}

// SetMode controls how a new sequence replaces the running one.
type SetMode int

const (
	// SetIdle starts the sequence only when the fighter is idle.
	SetIdle SetMode = iota
	// SetForce starts the sequence now and drops the queued one.
	SetForce
	// SetQueue starts the sequence now when idle, otherwise after the
	// running one ends.
	SetQueue
)

const noSequence = -1

// Fighter is one side of a fight. Sequence 0 is the idle loop.
type Fighter struct {
	Sequences []types.Sequence
	Seq       int
	Queued    int
	Frame     int
	Action    types.FightAction
	Countdown int
	Score     int
	Cooldown  int

	def          *types.FighterDef
	queuedAction types.FightAction
	contact      bool
}

func newFighter(def *types.FighterDef, seqs []types.Sequence) *Fighter {
	return &Fighter{
		Sequences: seqs,
		Queued:    noSequence,
		Action:    types.FightAction101,
		Countdown: def.Countdown,
		def:       def,
	}
}

// Idle reports whether the idle loop is showing.
func (f *Fighter) Idle() bool { return f.Seq == 0 }

// Name returns the clip name of the running sequence.
func (f *Fighter) Name() string { return f.Sequences[f.Seq].Name }

// Current returns the frame being shown. Past the end of a sequence it is
// the zero frame.
func (f *Fighter) Current() types.FrameInfo {
	frames := f.Sequences[f.Seq].Frames
	if f.Frame < 0 || f.Frame >= len(frames) {
		return types.FrameInfo{}
	}
	return frames[f.Frame]
}

// Open reports whether the current frame can be hit.
func (f *Fighter) Open() bool { return f.Current().Flags&types.FrameFlagOpen != 0 }

// Striking reports whether the current frame is a contact frame.
func (f *Fighter) Striking() bool { return f.Current().Flags&types.FrameFlagContact != 0 }

// Moves returns the fighter's moves.
func (f *Fighter) Moves() []types.Move { return f.def.Moves }

// move looks up the sequence performing action.
func (f *Fighter) move(action types.FightAction) (int, bool) {
	for _, m := range f.def.Moves {
		if m.Action == action {
			return m.Sequence, true
		}
	}
	return 0, false
}

// Set changes sequence according to mode.
func (f *Fighter) Set(seq int, mode SetMode) {
	switch mode {
	case SetIdle:
		if f.Idle() {
			f.start(seq)
		}
	case SetForce:
		f.Queued = noSequence
		f.queuedAction = types.FightActionNone
		f.start(seq)
	case SetQueue:
		if f.Idle() {
			f.start(seq)
			return
		}
		f.Queued = seq
	}
}

// perform plays seq for action, queueing it behind a running move.
func (f *Fighter) perform(seq int, action types.FightAction) {
	if f.Idle() {
		f.start(seq)
		f.Action = action
		return
	}
	f.Queued = seq
	f.queuedAction = action
}

func (f *Fighter) start(seq int) {
	f.Seq = seq
	f.Frame = 0
	f.contact = false
}

// next leaves the finished sequence for the queued one, or idles.
func (f *Fighter) next() {
	if f.Queued == noSequence {
		f.start(0)
		f.Action = types.FightAction101
		return
	}
	f.start(f.Queued)
	f.Action = f.queuedAction
	f.Queued = noSequence
	f.queuedAction = types.FightActionNone
}

// Arena owns both fighters of a running fight.
type Arena struct {
	Type     types.FightType
	fighters [2]*Fighter
	def      *types.FightDef
	end      types.FightEndType
	decided  bool
}

// Fighter returns the fighter in slot s.
func (a *Arena) Fighter(s Slot) *Fighter { return a.fighters[s] }

// Other returns the opponent of the fighter in slot s.
func (a *Arena) Other(s Slot) *Fighter { return a.fighters[s.other()] }

// Def returns the fight definition.
func (a *Arena) Def() *types.FightDef { return a.def }

// Decided reports the outcome once a final blow has landed.
func (a *Arena) Decided() (types.FightEndType, bool) { return a.end, a.decided }

// handle applies action to the fighter in slot s and makes it the
// fighter's current action.
func (a *Arena) handle(s Slot, action types.FightAction) {
	switch action {
	case types.FightActionResetFrame:
		a.fighters[s].Countdown--
		a.Other(s).Score++
	case types.FightAction103:
		a.handle(s.other(), types.FightActionResetFrame)
	case types.FightActionWin:
		a.end, a.decided = types.FightEndWin, true
		a.handle(s.other(), types.FightActionResetFrame)
	case types.FightActionLost:
		a.end, a.decided = types.FightEndLost, true
		a.handle(s.other(), types.FightActionResetFrame)
	}
	a.fighters[s].Action = action
}
