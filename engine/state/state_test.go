package state

import (
	"testing"

	"github.com/nathoo/expresscore/types"
)

func TestNew(t *testing.T) {
	s := New(3, 42)
	if s.Chapter != 3 {
		t.Errorf("Chapter = %d, want 3", s.Chapter)
	}
	if got := Global(s, types.GlobalChapter); got != 3 {
		t.Errorf("chapter global = %d, want 3", got)
	}
	if got := Global(s, types.GlobalTrainIsRunning); got != 1 {
		t.Errorf("train running = %d, want 1", got)
	}
	if s.RNGSeed != 42 {
		t.Errorf("RNGSeed = %d, want 42", s.RNGSeed)
	}
	if s.Entities[types.CharacterVesna].Character != types.CharacterVesna {
		t.Error("entity records should carry their character id")
	}
}

func TestGlobals(t *testing.T) {
	s := New(1, 1)
	if got := Global(s, types.GlobalMetMilos); got != 0 {
		t.Errorf("unset global = %d, want 0", got)
	}
	SetGlobal(s, types.GlobalMetMilos, 1)
	if got := Global(s, types.GlobalMetMilos); got != 1 {
		t.Errorf("global = %d, want 1", got)
	}
	SetGlobal(s, types.GlobalMetMilos, 0)
	if _, ok := s.Globals[types.GlobalMetMilos]; ok {
		t.Error("writing 0 should remove the global")
	}
}

func TestSetChapter(t *testing.T) {
	s := New(1, 1)
	SetChapter(s, 4)
	if s.Chapter != 4 || Global(s, types.GlobalChapter) != 4 {
		t.Errorf("chapter = %d / %d, want 4", s.Chapter, Global(s, types.GlobalChapter))
	}
}

func TestInventory(t *testing.T) {
	s := New(1, 1)
	if HasItem(s, types.ItemFirebird) {
		t.Fatal("new state should not carry the firebird")
	}
	GiveItem(s, types.ItemFirebird)
	if !HasItem(s, types.ItemFirebird) {
		t.Fatal("expected firebird after GiveItem")
	}
	TakeItem(s, types.ItemFirebird)
	if HasItem(s, types.ItemFirebird) {
		t.Fatal("expected no firebird after TakeItem")
	}
}

func TestNIS(t *testing.T) {
	s := New(1, 1)
	if DoneNIS(s, types.EventCathIvoFight) {
		t.Fatal("event should not be done yet")
	}
	MarkNIS(s, types.EventCathIvoFight)
	if !DoneNIS(s, types.EventCathIvoFight) {
		t.Fatal("event should be done")
	}
}

func TestSetGameOver_FirstSticks(t *testing.T) {
	s := New(1, 1)
	if !SetGameOver(s, types.GameOver{Kind: 1, Scene: 58, Failure: true}) {
		t.Fatal("first game over should be recorded")
	}
	if SetGameOver(s, types.GameOver{Kind: 2}) {
		t.Fatal("second game over should be ignored")
	}
	if s.GameOver.Scene != 58 {
		t.Errorf("Scene = %d, want 58", s.GameOver.Scene)
	}
}

func TestNormalize(t *testing.T) {
	s := &types.State{}
	Normalize(s)
	if s.Globals == nil || s.DoneNIS == nil || s.Inventory == nil || s.Saves == nil {
		t.Fatal("Normalize left a nil container")
	}
	SetGlobal(s, types.GlobalJacket, 2)
}

func TestClone_Independent(t *testing.T) {
	s := New(1, 7)
	SetGlobal(s, types.GlobalJacket, 2)
	GiveItem(s, types.ItemKey)
	MarkNIS(s, types.EventAnnaKilled)
	s.Saves = append(s.Saves, types.SaveRecord{Kind: 1})
	SetGameOver(s, types.GameOver{Kind: 1})
	s.Entities[types.CharacterAnna].Frames[0].State = 5

	c := Clone(s)
	SetGlobal(c, types.GlobalJacket, 1)
	TakeItem(c, types.ItemKey)
	c.DoneNIS[types.EventAnnaKilled] = false
	c.Saves[0].Kind = 2
	c.GameOver.Kind = 9
	c.Entities[types.CharacterAnna].Frames[0].State = 6

	if Global(s, types.GlobalJacket) != 2 {
		t.Error("clone shares globals")
	}
	if !HasItem(s, types.ItemKey) {
		t.Error("clone shares inventory")
	}
	if !DoneNIS(s, types.EventAnnaKilled) {
		t.Error("clone shares events")
	}
	if s.Saves[0].Kind != 1 {
		t.Error("clone shares saves")
	}
	if s.GameOver.Kind != 1 {
		t.Error("clone shares game over")
	}
	if s.Entities[types.CharacterAnna].Frames[0].State != 5 {
		t.Error("clone shares entity records")
	}
}
