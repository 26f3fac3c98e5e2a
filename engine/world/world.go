// Package world declares the collaborators the scripted core drives but does
// not implement: sound, sequence graphics, the door/object table, game-level
// logic hooks and the clip archive.
package world

import "github.com/nathoo/expresscore/types"

// DefaultVolume asks the sound collaborator for the character's own volume.
const DefaultVolume = -1

// Sound plays character dialog.
type Sound interface {
	PlaySound(c types.CharacterID, name string, volume int)
	// IsBuffered reports whether c has a dialog playing.
	IsBuffered(c types.CharacterID) bool
	// Running reports whether the named dialog is playing for anyone.
	Running(name string) bool
	Fade(c types.CharacterID)
	Stop(c types.CharacterID)
	StopAll()
}

// Graphics draws character sequences and scenes.
type Graphics interface {
	// DrawSequenceLeft and DrawSequenceRight draw a looping walk clip
	// facing the given side.
	DrawSequenceLeft(c types.CharacterID, name string)
	DrawSequenceRight(c types.CharacterID, name string)
	// StartCycle draws a looping clip.
	StartCycle(c types.CharacterID, name string)
	// StartSequence draws a one-shot clip. Its end is reported back to the
	// character as ActionExitCompartment.
	StartSequence(c types.CharacterID, name string)
	AdvanceFrame(c types.CharacterID)
	ClearSequences(c types.CharacterID)
	LoadSceneFromPosition(car types.Car, position int)
	DrawFrame(sequence string, frame int, layer int)
	RequestRedraw()
}

// ObjectState is one entry of the shared object table.
type ObjectState struct {
	Owner      types.CharacterID    `json:"owner"`
	Location   types.ObjectLocation `json:"location"`
	CursorFar  types.Cursor         `json:"cursor_far"`
	CursorNear types.Cursor         `json:"cursor_near"`
	BlockedBy  uint64               `json:"blocked_by,omitempty"`
}

// Objects is the shared door and hotspot table.
type Objects interface {
	// Update rewrites an object entry. CursorKeep leaves a cursor unchanged.
	Update(obj types.ObjectID, viewer types.CharacterID, loc types.ObjectLocation, far, near types.Cursor)
	Get(obj types.ObjectID) ObjectState
	// Block and Release mark a character standing in a doorway.
	Block(c types.CharacterID, obj types.ObjectID)
	Release(c types.CharacterID, obj types.ObjectID)
}

// Logic receives game-level transitions requested by scripts.
type Logic interface {
	GameOver(kind, param, scene int, failure bool)
	Save(c types.CharacterID, kind int, event types.EventID)
	PlayNIS(event types.EventID)
}

// Archive serves animation clips.
type Archive interface {
	HasFile(name string) bool
	LoadSequence(name string) (types.Sequence, error)
}

// Pump is implemented by collaborators that complete work over time. Drain
// is called once per tick and returns the completion messages to deliver.
type Pump interface {
	Drain() []types.SavePoint
}
