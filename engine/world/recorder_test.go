package world

import (
	"errors"
	"testing"

	"github.com/nathoo/expresscore/types"
)

func TestRecorder_SoundEndsAfterTicks(t *testing.T) {
	r := NewRecorder(nil)
	r.SoundTicks = 2
	r.PlaySound(types.CharacterVesna, "VES1015A", DefaultVolume)

	if !r.IsBuffered(types.CharacterVesna) || !r.Running("VES1015A") {
		t.Fatal("dialog not running after PlaySound")
	}
	if got := r.Drain(); len(got) != 0 {
		t.Fatalf("first update = %v, want nothing", got)
	}
	got := r.Drain()
	if len(got) != 1 || got[0].Recipient != types.CharacterVesna || got[0].Action != types.ActionEndSound {
		t.Fatalf("second update = %v, want EndSound to Vesna", got)
	}
	if r.IsBuffered(types.CharacterVesna) {
		t.Error("dialog still buffered after end")
	}
}

func TestRecorder_EmptyDialogEndsImmediately(t *testing.T) {
	r := NewRecorder(nil)
	r.PlaySound(types.CharacterAnna, "", DefaultVolume)

	got := r.Drain()
	if len(got) != 1 || got[0].Action != types.ActionEndSound {
		t.Fatalf("update = %v", got)
	}
}

func TestRecorder_SequenceLengthFromArchive(t *testing.T) {
	arch := NewMemArchive(types.Sequence{Name: "808US", Frames: make([]types.FrameInfo, 2)})
	r := NewRecorder(arch)
	r.StartSequence(types.CharacterVesna, "808us")

	if r.Showing(types.CharacterVesna) != "808us" {
		t.Fatalf("Showing = %q", r.Showing(types.CharacterVesna))
	}
	r.Drain()
	got := r.Drain()
	if len(got) != 1 || got[0].Action != types.ActionExitCompartment {
		t.Fatalf("update = %v, want ExitCompartment", got)
	}
}

func TestRecorder_CycleNeverEnds(t *testing.T) {
	r := NewRecorder(nil)
	r.StartCycle(types.CharacterMilos, "001A")
	for i := 0; i < 10; i++ {
		if got := r.Drain(); len(got) != 0 {
			t.Fatalf("tick %d: %v", i, got)
		}
	}
}

func TestRecorder_ObjectsKeepCursor(t *testing.T) {
	r := NewRecorder(nil)
	r.Update(types.ObjectCompartmentF, types.CharacterVesna, types.ObjectLocation3, types.CursorHandKnock, types.CursorKnock)
	r.Update(types.ObjectCompartmentF, types.CharacterCath, types.ObjectLocation1, types.CursorKeep, types.CursorKeep)

	st := r.Get(types.ObjectCompartmentF)
	if st.Location != types.ObjectLocation1 || st.CursorFar != types.CursorHandKnock || st.CursorNear != types.CursorKnock {
		t.Errorf("state = %+v", st)
	}

	r.Block(types.CharacterVesna, types.ObjectCompartmentF)
	if r.Get(types.ObjectCompartmentF).BlockedBy == 0 {
		t.Error("block not recorded")
	}
	r.Release(types.CharacterVesna, types.ObjectCompartmentF)
	if r.Get(types.ObjectCompartmentF).BlockedBy != 0 {
		t.Error("release not recorded")
	}
}

func TestRecorder_EffectCap(t *testing.T) {
	r := NewRecorder(nil)
	r.limit = 3
	for i := 0; i < 5; i++ {
		r.StartCycle(types.CharacterAnna, string(rune('A'+i)))
	}
	effects := r.Effects()
	if len(effects) != 3 || effects[0].Name != "C" {
		t.Errorf("effects = %v", effects)
	}
	if last := r.Last(1); len(last) != 1 || last[0].Name != "E" {
		t.Errorf("Last(1) = %v", last)
	}
}

func TestMemArchive_Missing(t *testing.T) {
	a := NewMemArchive()
	if a.HasFile("nope") {
		t.Error("HasFile on empty archive")
	}
	if _, err := a.LoadSequence("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
