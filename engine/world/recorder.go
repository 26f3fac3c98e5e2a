package world

import (
	"fmt"
	"sort"

	"github.com/nathoo/expresscore/types"
)

// Recorder defaults.
const (
	DefaultSoundTicks = 4
	DefaultClipTicks  = 3
	DefaultEffectCap  = 1024
)

// Effect is one recorded collaborator call.
type Effect struct {
	Kind      string            `json:"kind"`
	Character types.CharacterID `json:"character"`
	Name      string            `json:"name,omitempty"`
	Detail    string            `json:"detail,omitempty"`
}

func (e Effect) String() string {
	s := fmt.Sprintf("%s c=%d", e.Kind, e.Character)
	if e.Name != "" {
		s += " " + e.Name
	}
	if e.Detail != "" {
		s += " (" + e.Detail + ")"
	}
	return s
}

type running struct {
	name string
	left int
}

// Recorder is an in-memory Sound, Graphics and Objects implementation. It
// logs every call and simulates completion: a dialog ends after SoundTicks
// updates, a one-shot clip after as many updates as it has frames.
type Recorder struct {
	SoundTicks int
	ClipTicks  int

	archive Archive
	effects []Effect
	total   int
	limit   int
	sounds  map[types.CharacterID]*running
	clips   map[types.CharacterID]*running
	loops   map[types.CharacterID]string
	objects map[types.ObjectID]ObjectState
	pending []types.SavePoint
	redraws int
}

// NewRecorder creates a recorder. archive may be nil; clip lengths then
// fall back to ClipTicks.
func NewRecorder(archive Archive) *Recorder {
	return &Recorder{
		SoundTicks: DefaultSoundTicks,
		ClipTicks:  DefaultClipTicks,
		archive:    archive,
		limit:      DefaultEffectCap,
		sounds:     make(map[types.CharacterID]*running),
		clips:      make(map[types.CharacterID]*running),
		loops:      make(map[types.CharacterID]string),
		objects:    make(map[types.ObjectID]ObjectState),
	}
}

func (r *Recorder) record(kind string, c types.CharacterID, name, detail string) {
	r.effects = append(r.effects, Effect{Kind: kind, Character: c, Name: name, Detail: detail})
	r.total++
	if over := len(r.effects) - r.limit; over > 0 {
		r.effects = append(r.effects[:0], r.effects[over:]...)
	}
}

// Note records a game-level effect such as a cutscene, a save or the end
// of the game.
func (r *Recorder) Note(kind string, c types.CharacterID, name, detail string) {
	r.record(kind, c, name, detail)
}

// Effects returns a copy of the recorded calls, oldest first.
func (r *Recorder) Effects() []Effect {
	return append([]Effect(nil), r.effects...)
}

// Last returns up to n most recent effects.
func (r *Recorder) Last(n int) []Effect {
	if n > len(r.effects) {
		n = len(r.effects)
	}
	return append([]Effect(nil), r.effects[len(r.effects)-n:]...)
}

// Total counts every effect recorded since creation, including those
// dropped from the log.
func (r *Recorder) Total() int { return r.total }

// Reset forgets recorded effects.
func (r *Recorder) Reset() { r.effects = nil }

// --- Sound ---

func (r *Recorder) PlaySound(c types.CharacterID, name string, volume int) {
	r.record("sound", c, name, fmt.Sprintf("vol=%d", volume))
	if name == "" {
		// Nothing to play: the caller still gets its end notification.
		r.pending = append(r.pending, endSound(c))
		return
	}
	r.sounds[c] = &running{name: name, left: r.SoundTicks}
}

func (r *Recorder) IsBuffered(c types.CharacterID) bool {
	_, ok := r.sounds[c]
	return ok
}

func (r *Recorder) Running(name string) bool {
	for _, s := range r.sounds {
		if s.name == name {
			return true
		}
	}
	return false
}

func (r *Recorder) Fade(c types.CharacterID) {
	r.record("fade", c, "", "")
	if s, ok := r.sounds[c]; ok && s.left > 1 {
		s.left = 1
	}
}

func (r *Recorder) Stop(c types.CharacterID) {
	r.record("stop", c, "", "")
	delete(r.sounds, c)
}

func (r *Recorder) StopAll() {
	r.record("stopall", types.CharacterCath, "", "")
	r.sounds = make(map[types.CharacterID]*running)
}

// --- Graphics ---

func (r *Recorder) DrawSequenceLeft(c types.CharacterID, name string) {
	r.record("seq-left", c, name, "")
	delete(r.clips, c)
	r.loops[c] = name
}

func (r *Recorder) DrawSequenceRight(c types.CharacterID, name string) {
	r.record("seq-right", c, name, "")
	delete(r.clips, c)
	r.loops[c] = name
}

func (r *Recorder) StartCycle(c types.CharacterID, name string) {
	r.record("cycle", c, name, "")
	delete(r.clips, c)
	r.loops[c] = name
}

func (r *Recorder) StartSequence(c types.CharacterID, name string) {
	r.record("sequence", c, name, "")
	delete(r.loops, c)
	r.clips[c] = &running{name: name, left: r.clipLength(name)}
}

func (r *Recorder) clipLength(name string) int {
	if r.archive != nil {
		if seq, err := r.archive.LoadSequence(name); err == nil && len(seq.Frames) > 0 {
			return len(seq.Frames)
		}
	}
	return r.ClipTicks
}

func (r *Recorder) AdvanceFrame(c types.CharacterID) {
	r.record("advance", c, "", "")
	if clip, ok := r.clips[c]; ok && clip.left > 1 {
		clip.left--
	}
}

func (r *Recorder) ClearSequences(c types.CharacterID) {
	r.record("clear", c, "", "")
	delete(r.clips, c)
	delete(r.loops, c)
}

func (r *Recorder) LoadSceneFromPosition(car types.Car, position int) {
	r.record("scene", types.CharacterCath, "", fmt.Sprintf("car=%d pos=%d", car, position))
}

func (r *Recorder) DrawFrame(sequence string, frame int, layer int) {
	r.record("frame", types.CharacterCath, sequence, fmt.Sprintf("frame=%d layer=%d", frame, layer))
}

func (r *Recorder) RequestRedraw() { r.redraws++ }

// Redraws returns the number of redraw requests.
func (r *Recorder) Redraws() int { return r.redraws }

// Showing returns the clip currently drawn for c.
func (r *Recorder) Showing(c types.CharacterID) string {
	if clip, ok := r.clips[c]; ok {
		return clip.name
	}
	return r.loops[c]
}

// --- Objects ---

func (r *Recorder) Update(obj types.ObjectID, viewer types.CharacterID, loc types.ObjectLocation, far, near types.Cursor) {
	st := r.objects[obj]
	st.Owner = viewer
	st.Location = loc
	if far != types.CursorKeep {
		st.CursorFar = far
	}
	if near != types.CursorKeep {
		st.CursorNear = near
	}
	r.objects[obj] = st
	r.record("object", viewer, "", fmt.Sprintf("obj=%d loc=%d", obj, loc))
}

func (r *Recorder) Get(obj types.ObjectID) ObjectState { return r.objects[obj] }

func (r *Recorder) Block(c types.CharacterID, obj types.ObjectID) {
	st := r.objects[obj]
	st.BlockedBy |= 1 << uint(c)
	r.objects[obj] = st
	r.record("block", c, "", fmt.Sprintf("obj=%d", obj))
}

func (r *Recorder) Release(c types.CharacterID, obj types.ObjectID) {
	st := r.objects[obj]
	st.BlockedBy &^= 1 << uint(c)
	r.objects[obj] = st
	r.record("release", c, "", fmt.Sprintf("obj=%d", obj))
}

// Objects returns a copy of the object table.
func (r *Recorder) Objects() map[types.ObjectID]ObjectState {
	out := make(map[types.ObjectID]ObjectState, len(r.objects))
	for k, v := range r.objects {
		out[k] = v
	}
	return out
}

// RestoreObjects replaces the object table from a snapshot.
func (r *Recorder) RestoreObjects(objects map[types.ObjectID]ObjectState) {
	r.objects = make(map[types.ObjectID]ObjectState, len(objects))
	for k, v := range objects {
		r.objects[k] = v
	}
}

// --- Pump ---

// Drain advances running dialogs and one-shot clips by one tick and
// returns the end notifications, in character order.
func (r *Recorder) Drain() []types.SavePoint {
	out := r.pending
	r.pending = nil

	for _, c := range sortedKeys(r.sounds) {
		s := r.sounds[c]
		s.left--
		if s.left <= 0 {
			delete(r.sounds, c)
			out = append(out, endSound(c))
		}
	}
	for _, c := range sortedKeys(r.clips) {
		clip := r.clips[c]
		clip.left--
		if clip.left <= 0 {
			delete(r.clips, c)
			out = append(out, types.SavePoint{
				Sender:    types.CharacterCath,
				Recipient: c,
				Action:    types.ActionExitCompartment,
			})
		}
	}
	return out
}

func endSound(c types.CharacterID) types.SavePoint {
	return types.SavePoint{Sender: types.CharacterCath, Recipient: c, Action: types.ActionEndSound}
}

func sortedKeys(m map[types.CharacterID]*running) []types.CharacterID {
	keys := make([]types.CharacterID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
