package loader

import (
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/expresscore/types"
)

// newTestVM creates a sandboxed Lua VM with the API registered and a fresh collector.
func newTestVM() (*lua.LState, *collector) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	sandbox(L)
	coll := &collector{}
	registerAPI(L, coll)
	return L, coll
}

func TestCompileClip_FrameForms(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Clip "2001cpn" {
			frames = {
				"open",
				Frames(2, "contact|open"),
				{ flags = "contact", sound = "LIB074" },
				6,
				"",
			},
		}
	`); err != nil {
		t.Fatal(err)
	}
	if len(coll.clips) != 1 {
		t.Fatalf("expected 1 clip, got %d", len(coll.clips))
	}

	seq, err := compileClip(coll.clips[0])
	if err != nil {
		t.Fatal(err)
	}
	want := []types.FrameInfo{
		{Flags: types.FrameFlagOpen},
		{Flags: types.FrameFlagOpen | types.FrameFlagContact},
		{Flags: types.FrameFlagOpen | types.FrameFlagContact},
		{Flags: types.FrameFlagContact, Sound: "LIB074"},
		{Flags: 6},
		{},
	}
	if len(seq.Frames) != len(want) {
		t.Fatalf("frames = %+v", seq.Frames)
	}
	for i := range want {
		if seq.Frames[i] != want[i] {
			t.Errorf("frame %d = %+v, want %+v", i, seq.Frames[i], want[i])
		}
	}
}

func TestCompileClip_UnknownFlag(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`Clip "x" { frames = { "open|bleeding" } }`); err != nil {
		t.Fatal(err)
	}
	if _, err := compileClip(coll.clips[0]); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestCompileFight_SequenceLayout(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Fight "ivo" {
			music = "MUS042",
			cooldown = 28,
			weights = { 3, 2, 1 },
			advanced = { 1, 1, 1 },
			advanced_after = 2,
			player = {
				countdown = 3,
				idle = "cr", hit = "ch", win = "cw", defeat = "cd",
				moves = { [130] = "cel", [128] = "cbl", [129] = "cpn" },
			},
			opponent = {
				countdown = 2,
				idle = "ir", hit = "ih", win = "iw", defeat = "id",
				moves = { "ijb", "ijb", "igr" },
			},
		}
	`); err != nil {
		t.Fatal(err)
	}

	def, err := compileFight(coll.fights[0])
	if err != nil {
		t.Fatal(err)
	}
	if def.Type != types.FightIvo {
		t.Errorf("Type = %d, want %d", def.Type, types.FightIvo)
	}
	if def.AdvancedAfter != 2 || len(def.Weights) != 3 || len(def.Advanced) != 3 {
		t.Errorf("weights = %v / %v after %d", def.Weights, def.Advanced, def.AdvancedAfter)
	}

	p := def.Player
	if p.Countdown != 3 || p.Hit != 1 || p.Win != 2 || p.Defeat != 3 {
		t.Errorf("player = %+v", p)
	}
	// Hotspot moves come out in action order.
	wantSeqs := []string{"cr", "ch", "cw", "cd", "cbl", "cpn", "cel"}
	if len(p.Sequences) != len(wantSeqs) {
		t.Fatalf("player sequences = %v", p.Sequences)
	}
	for i, s := range wantSeqs {
		if p.Sequences[i] != s {
			t.Errorf("player sequence %d = %q, want %q", i, p.Sequences[i], s)
		}
	}
	if p.Moves[0] != (types.Move{Action: types.FightAction128, Sequence: 4}) {
		t.Errorf("first player move = %+v", p.Moves[0])
	}

	// A clip shared by two attacks is loaded once.
	o := def.Opponent
	if len(o.Sequences) != 6 {
		t.Errorf("opponent sequences = %v", o.Sequences)
	}
	wantMoves := []types.Move{
		{Action: types.FightAction1, Sequence: 4},
		{Action: types.FightAction2, Sequence: 4},
		{Action: types.FightAction3, Sequence: 5},
	}
	for i, m := range wantMoves {
		if o.Moves[i] != m {
			t.Errorf("opponent move %d = %+v, want %+v", i, o.Moves[i], m)
		}
	}
}

func TestCompileFight_MissingSide(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`Fight "anna" { player = {} }`); err != nil {
		t.Fatal(err)
	}
	if _, err := compileFight(coll.fights[0]); err == nil {
		t.Fatal("expected error for missing opponent")
	}
}
