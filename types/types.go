// Package types defines the shared data structures for the expresscore engine.
// This package contains only type definitions and constants. No logic, no methods.
package types

// StateID indexes a character's handler table. Zero is never registered.
type StateID int

// Param is the payload carried by a savepoint.
type Param struct {
	Int uint32 `json:"int,omitempty"`
	Str string `json:"str,omitempty"`
}

// SavePoint is a directed message between characters.
type SavePoint struct {
	Sender    CharacterID `json:"sender"`
	Recipient CharacterID `json:"recipient"`
	Action    ActionID    `json:"action"`
	Param     Param       `json:"param"`
}

// Position places a character on the train.
type Position struct {
	Car      Car      `json:"car"`
	Location Location `json:"location"`
	Coord    int      `json:"coord"`
}

// MaxCallDepth is the number of frames in a character's call stack.
const MaxCallDepth = 8

// ParamSlots is the number of integer slots in a parameter block.
const ParamSlots = 8

// Params is the scratch block owned by the state running in a frame.
// Each state decides what its slots mean.
type Params struct {
	Int [ParamSlots]uint32 `json:"int"`
	Str [2]string          `json:"str"`
}

// Frame is one level of a character's call stack.
type Frame struct {
	State    StateID `json:"state"`
	Callback int     `json:"callback"`
	Params   Params  `json:"params"`
}

// EntityData is the persistent runtime record of one character.
type EntityData struct {
	Character     CharacterID         `json:"character"`
	CurrentCall   int                 `json:"current_call"`
	Frames        [MaxCallDepth]Frame `json:"frames"`
	Flags         [ParamSlots]uint32  `json:"flags"`
	Position      Position            `json:"position"`
	Direction     Direction           `json:"direction"`
	Clothes       Clothes             `json:"clothes"`
	InventoryItem int                 `json:"inventory_item"`
	Sequence      string              `json:"sequence"`
	WaitedTicks   uint32              `json:"waited_ticks"`
}

// AutoMessage turns a matching message into a flag write.
type AutoMessage struct {
	Recipient CharacterID `json:"recipient"`
	Action    ActionID    `json:"action"`
	Slot      int         `json:"slot"`
}

// GameOver records a terminal game-state transition.
type GameOver struct {
	Kind    int  `json:"kind"`
	Param   int  `json:"param"`
	Scene   int  `json:"scene"`
	Failure bool `json:"failure"`
}

// SaveRecord is written when a character asks for a save point.
type SaveRecord struct {
	ID        string      `json:"id"`
	Character CharacterID `json:"character"`
	Kind      int         `json:"kind"`
	Event     EventID     `json:"event"`
	Time      GameTime    `json:"time"`
}

// State is the complete mutable game state outside the clock and the bus.
type State struct {
	Chapter   int              `json:"chapter"`
	Globals   map[GlobalID]int `json:"globals"`
	DoneNIS   map[EventID]bool `json:"done_nis"`
	Inventory map[ItemID]bool  `json:"inventory"`
	// CathDir is the view Cath is looking at within her car.
	CathDir  int                        `json:"cath_dir"`
	Entities [CharacterCount]EntityData `json:"entities"`
	Saves    []SaveRecord               `json:"saves"`
	GameOver *GameOver                  `json:"game_over,omitempty"`
	RNGSeed  int64                      `json:"rng_seed"`
}

// Command is a parsed debugger command.
type Command struct {
	Verb string
	Args []string
}
