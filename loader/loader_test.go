package loader

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/nathoo/expresscore/types"
)

const minimalClips = `
Clip "cr" { frames = { Frames(2, "open") } }
Clip "ch" { frames = { "", "" } }
Clip "cw" { frames = { "" } }
Clip "cd" { frames = { "" } }
Clip "cpn" { frames = { "open", Sound("contact|open", "LIB074"), "open" } }
Clip "or" { frames = { "open" } }
Clip "oh" { frames = { "" } }
Clip "ow" { frames = { "" } }
Clip "od" { frames = { "" } }
Clip "ojb" { frames = { "open", "contact" } }
`

const minimalFight = `
Fight "milos" {
  music = "MUS040",
  cooldown = 10,
  weights = { 1 },
  player = {
    countdown = 2, idle = "cr", hit = "ch", win = "cw", defeat = "cd",
    moves = { [129] = "cpn" },
  },
  opponent = {
    countdown = 1, idle = "or", hit = "oh", win = "ow", defeat = "od",
    moves = { "ojb" },
  },
}
`

func TestLoadFS_Minimal(t *testing.T) {
	c, err := LoadFS(fstest.MapFS{
		"clips.lua":  {Data: []byte(minimalClips)},
		"fights.lua": {Data: []byte(minimalFight)},
	})
	if err != nil {
		t.Fatalf("LoadFS failed: %v", err)
	}

	def, ok := c.Fights[types.FightMilos]
	if !ok {
		t.Fatal("fight milos not loaded")
	}
	if def.Name != "milos" || def.Music != "MUS040" || def.Cooldown != 10 {
		t.Errorf("def = %+v", def)
	}
	if len(c.Clips) != 10 {
		t.Errorf("expected 10 clips, got %d", len(c.Clips))
	}

	a := c.Archive()
	seq, err := a.LoadSequence("CPN")
	if err != nil {
		t.Fatalf("archive lookup: %v", err)
	}
	if len(seq.Frames) != 3 || seq.Frames[1].Sound != "LIB074" {
		t.Errorf("cpn frames = %+v", seq.Frames)
	}

	// Four other fights are missing.
	missing := 0
	for _, w := range c.Warnings {
		if strings.Contains(w, "is not defined") {
			missing++
		}
	}
	if missing != 4 {
		t.Errorf("expected 4 missing-fight warnings, got %v", c.Warnings)
	}
}

func TestLoadFS_UndefinedClip_Fails(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{
		"fights.lua": {Data: []byte(minimalFight)},
	})
	if err == nil {
		t.Fatal("expected error for undefined clips")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %T, want *ValidationError", err)
	}
	if !strings.Contains(err.Error(), `undefined clip "cr"`) {
		t.Errorf("error = %q", err.Error())
	}
}

func TestLoadFS_DuplicateFight_Fails(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{
		"a.lua": {Data: []byte(minimalClips + minimalFight)},
		"b.lua": {Data: []byte(minimalFight)},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate fight") {
		t.Fatalf("error = %v, expected duplicate fight", err)
	}
}

func TestLoadFS_UnknownFight_Fails(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{
		"a.lua": {Data: []byte(`Fight "tatiana" { player = {}, opponent = {} }`)},
	})
	if err == nil || !strings.Contains(err.Error(), "unknown fight") {
		t.Fatalf("error = %v, expected unknown fight", err)
	}
}

func TestLoadFS_BadLuaSyntax_Fails(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{
		"a.lua": {Data: []byte(`Fight "milos" {`)},
	})
	if err == nil || !strings.Contains(err.Error(), "parsing a.lua") {
		t.Fatalf("error = %v, expected parse failure", err)
	}
}

func TestLoadFS_NoLuaFiles_Fails(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{
		"readme.txt": {Data: []byte("nothing here")},
	})
	if err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestLoadFS_SandboxEnforced(t *testing.T) {
	for _, src := range []string{
		`os.execute("echo pwned")`,
		`io.open("/etc/passwd")`,
		`dofile("x.lua")`,
		`math.randomseed(1)`,
	} {
		_, err := LoadFS(fstest.MapFS{"a.lua": {Data: []byte(src)}})
		if err == nil {
			t.Errorf("expected sandbox to block %s", src)
		}
	}
}

func TestLoadFS_FileOrdering(t *testing.T) {
	// Files run in name order in one VM, so globals carry over.
	c, err := LoadFS(fstest.MapFS{
		"a.lua": {Data: []byte(`MUSIC = "MUS099"` + minimalClips)},
		"b.lua": {Data: []byte(strings.Replace(minimalFight, `"MUS040"`, "MUSIC", 1))},
	})
	if err != nil {
		t.Fatalf("LoadFS failed: %v", err)
	}
	if got := c.Fights[types.FightMilos].Music; got != "MUS099" {
		t.Errorf("Music = %q, want MUS099 set by the earlier file", got)
	}
}

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	for _, ft := range []types.FightType{
		types.FightMilos, types.FightAnna, types.FightIvo, types.FightSalko, types.FightVesna,
	} {
		def, ok := c.Fights[ft]
		if !ok {
			t.Errorf("fight %d missing", ft)
			continue
		}
		if len(def.Player.Moves) == 0 || len(def.Opponent.Moves) == 0 {
			t.Errorf("fight %s has no moves", def.Name)
		}
		a := c.Archive()
		for _, name := range append(def.Player.Sequences, def.Opponent.Sequences...) {
			if !a.HasFile(name) {
				t.Errorf("fight %s clip %q missing from archive", def.Name, name)
			}
		}
	}
	if len(c.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", c.Warnings)
	}
}

func TestLoad_MissingDir_Fails(t *testing.T) {
	if _, err := Load("does/not/exist"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
