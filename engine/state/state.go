// Package state builds the game-progress state and reads and writes it.
// Character records live in the same struct but belong to the entity
// runtime; this package only creates and copies them.
package state

import "github.com/nathoo/expresscore/types"

// New creates a fresh game state for chapter n.
func New(chapter int, seed int64) *types.State {
	s := &types.State{
		Chapter:   chapter,
		Globals:   map[types.GlobalID]int{},
		DoneNIS:   map[types.EventID]bool{},
		Inventory: map[types.ItemID]bool{},
		Saves:     []types.SaveRecord{},
		RNGSeed:   seed,
	}
	s.Globals[types.GlobalChapter] = chapter
	s.Globals[types.GlobalTrainIsRunning] = 1
	for i := range s.Entities {
		s.Entities[i].Character = types.CharacterID(i)
	}
	return s
}

// Normalize replaces nil maps and slices, as left by a decoded snapshot.
func Normalize(s *types.State) {
	if s.Globals == nil {
		s.Globals = map[types.GlobalID]int{}
	}
	if s.DoneNIS == nil {
		s.DoneNIS = map[types.EventID]bool{}
	}
	if s.Inventory == nil {
		s.Inventory = map[types.ItemID]bool{}
	}
	if s.Saves == nil {
		s.Saves = []types.SaveRecord{}
	}
}

// Global returns a progress global. Unset globals are 0.
func Global(s *types.State, g types.GlobalID) int {
	return s.Globals[g]
}

// SetGlobal writes a progress global. Writing 0 removes it.
func SetGlobal(s *types.State, g types.GlobalID, v int) {
	if v == 0 {
		delete(s.Globals, g)
		return
	}
	s.Globals[g] = v
}

// SetChapter records the chapter both as state and as a global.
func SetChapter(s *types.State, n int) {
	s.Chapter = n
	s.Globals[types.GlobalChapter] = n
}

// HasItem reports whether Cath carries item.
func HasItem(s *types.State, item types.ItemID) bool {
	return s.Inventory[item]
}

// GiveItem puts item in Cath's inventory.
func GiveItem(s *types.State, item types.ItemID) {
	s.Inventory[item] = true
}

// TakeItem removes item from Cath's inventory.
func TakeItem(s *types.State, item types.ItemID) {
	delete(s.Inventory, item)
}

// DoneNIS reports whether a cinematic has played.
func DoneNIS(s *types.State, ev types.EventID) bool {
	return s.DoneNIS[ev]
}

// MarkNIS records a played cinematic.
func MarkNIS(s *types.State, ev types.EventID) {
	s.DoneNIS[ev] = true
}

// SetGameOver records the terminal transition. The first one sticks.
func SetGameOver(s *types.State, over types.GameOver) bool {
	if s.GameOver != nil {
		return false
	}
	s.GameOver = &over
	return true
}

// Clone returns a deep copy of s.
func Clone(s *types.State) *types.State {
	c := *s
	c.Globals = make(map[types.GlobalID]int, len(s.Globals))
	for k, v := range s.Globals {
		c.Globals[k] = v
	}
	c.DoneNIS = make(map[types.EventID]bool, len(s.DoneNIS))
	for k, v := range s.DoneNIS {
		c.DoneNIS[k] = v
	}
	c.Inventory = make(map[types.ItemID]bool, len(s.Inventory))
	for k, v := range s.Inventory {
		c.Inventory[k] = v
	}
	c.Saves = append([]types.SaveRecord{}, s.Saves...)
	if s.GameOver != nil {
		over := *s.GameOver
		c.GameOver = &over
	}
	return &c
}
