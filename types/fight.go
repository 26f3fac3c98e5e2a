package types

// FightType identifies a scripted fight.
type FightType int

const (
	FightNone  FightType = 0
	FightMilos FightType = 2001
	FightAnna  FightType = 2002
	FightIvo   FightType = 2003
	FightSalko FightType = 2004
	FightVesna FightType = 2005
)

// FightEndType is the outcome of a fight. Win is zero so callers can test
// the result the way scripts do: nonzero ends the game.
type FightEndType int

const (
	FightEndWin FightEndType = iota
	FightEndLost
	FightEndExit
)

// FightAction is the action state of a fighter. 1..5 are incoming attacks,
// 128 and up are player hotspot actions.
type FightAction int

const (
	FightActionNone       FightAction = 0
	FightAction1          FightAction = 1
	FightAction2          FightAction = 2
	FightAction3          FightAction = 3
	FightAction4          FightAction = 4
	FightAction5          FightAction = 5
	FightAction101        FightAction = 101
	FightActionResetFrame FightAction = 102
	FightAction103        FightAction = 103
	FightActionWin        FightAction = 104
	FightActionLost       FightAction = 105
	FightAction128        FightAction = 128
	FightAction129        FightAction = 129
	FightAction130        FightAction = 130
	FightAction131        FightAction = 131
	FightAction132        FightAction = 132
)

// Frame flag bits checked by fight logic.
const (
	FrameFlagContact uint8 = 2
	FrameFlagOpen    uint8 = 4
)

// FrameInfo is the per-frame data fight logic needs.
type FrameInfo struct {
	Flags uint8  `json:"flags"`
	Sound string `json:"sound,omitempty"`
}

// Sequence is a loaded animation clip.
type Sequence struct {
	Name   string      `json:"name"`
	Frames []FrameInfo `json:"frames"`
}

// Move binds a fight action to the sequence that performs it.
type Move struct {
	Action   FightAction
	Sequence int
}

// FighterDef describes one side of a fight. Sequence 0 is the idle loop.
// Hit, Win and Defeat index the reaction sequences.
type FighterDef struct {
	Sequences []string
	Countdown int
	Hit       int
	Win       int
	Defeat    int
	Moves     []Move
}

// FightDef is a compiled fight definition.
type FightDef struct {
	Type     FightType
	Name     string
	Music    string
	Player   FighterDef
	Opponent FighterDef
	// Weights drive the opponent's move choice, one per opponent move;
	// Advanced replaces them once the player has scored AdvancedAfter
	// exchanges.
	Weights       []int
	Advanced      []int
	AdvancedAfter int
	Cooldown      int
}

// IsAttack reports whether a is an opponent attack.
func (a FightAction) IsAttack() bool { return a >= FightAction1 && a <= FightAction5 }

// IsHotspot reports whether a is a player hotspot action.
func (a FightAction) IsHotspot() bool { return a >= FightAction128 && a <= FightAction132 }
