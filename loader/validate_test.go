package loader

import (
	"strings"
	"testing"

	"github.com/nathoo/expresscore/types"
)

func clipOf(name string, flags ...uint8) types.Sequence {
	seq := types.Sequence{Name: name}
	for _, f := range flags {
		seq.Frames = append(seq.Frames, types.FrameInfo{Flags: f})
	}
	return seq
}

func validContent() *Content {
	fighter := func(prefix string, moves ...types.Move) types.FighterDef {
		seqs := []string{prefix + "r", prefix + "h", prefix + "w", prefix + "d", prefix + "m"}
		return types.FighterDef{Sequences: seqs, Countdown: 1, Hit: 1, Win: 2, Defeat: 3, Moves: moves}
	}
	c := &Content{Fights: map[types.FightType]types.FightDef{}}
	for name, ft := range fightTypes {
		c.Fights[ft] = types.FightDef{
			Type:     ft,
			Name:     name,
			Player:   fighter(name+"-c", types.Move{Action: types.FightAction129, Sequence: 4}),
			Opponent: fighter(name+"-o", types.Move{Action: types.FightAction1, Sequence: 4}),
			Weights:  []int{1},
			Cooldown: 10,
		}
		for _, side := range []string{"-c", "-o"} {
			for _, s := range []string{"r", "h", "w", "d", "m"} {
				c.Clips = append(c.Clips, clipOf(name+side+s, types.FrameFlagOpen))
			}
		}
	}
	return c
}

func TestValidate_ValidContent(t *testing.T) {
	warnings, err := validate(validContent())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestValidate_DuplicateClip(t *testing.T) {
	c := validContent()
	c.Clips = append(c.Clips, clipOf("MILOS-CR", types.FrameFlagOpen))
	_, err := validate(c)
	if err == nil {
		t.Fatal("expected error")
	}
	ve := err.(*ValidationError)
	assertContains(t, ve.Errors, `duplicate clip "MILOS-CR"`)
}

func TestValidate_EmptyClip(t *testing.T) {
	c := validContent()
	c.Clips[0].Frames = nil
	_, err := validate(c)
	if err == nil {
		t.Fatal("expected error")
	}
	assertContains(t, err.(*ValidationError).Errors, "has no frames")
}

func TestValidate_Countdown(t *testing.T) {
	c := validContent()
	def := c.Fights[types.FightMilos]
	def.Opponent.Countdown = 0
	c.Fights[types.FightMilos] = def
	_, err := validate(c)
	if err == nil {
		t.Fatal("expected error")
	}
	assertContains(t, err.(*ValidationError).Errors, `fight "milos" opponent countdown must be positive`)
}

func TestValidate_MissingReactionClip(t *testing.T) {
	c := validContent()
	def := c.Fights[types.FightAnna]
	def.Player.Sequences = append([]string(nil), def.Player.Sequences...)
	def.Player.Sequences[2] = ""
	c.Fights[types.FightAnna] = def
	_, err := validate(c)
	if err == nil {
		t.Fatal("expected error")
	}
	assertContains(t, err.(*ValidationError).Errors, `fight "anna" player win clip is required`)
}

func TestValidate_PlayerMoveRange(t *testing.T) {
	c := validContent()
	def := c.Fights[types.FightIvo]
	def.Player.Moves = []types.Move{{Action: types.FightAction3, Sequence: 4}}
	c.Fights[types.FightIvo] = def
	_, err := validate(c)
	if err == nil {
		t.Fatal("expected error")
	}
	assertContains(t, err.(*ValidationError).Errors, "is not a hotspot action")
}

func TestValidate_TooManyAttacks(t *testing.T) {
	c := validContent()
	def := c.Fights[types.FightSalko]
	for i := 2; i <= 6; i++ {
		def.Opponent.Moves = append(def.Opponent.Moves, types.Move{Action: types.FightAction(i), Sequence: 4})
	}
	def.Weights = nil
	c.Fights[types.FightSalko] = def
	_, err := validate(c)
	if err == nil {
		t.Fatal("expected error")
	}
	assertContains(t, err.(*ValidationError).Errors, "at most 5 allowed")
}

func TestValidate_Weights(t *testing.T) {
	c := validContent()
	def := c.Fights[types.FightVesna]
	def.Weights = []int{1, 2}
	def.Advanced = []int{0}
	def.AdvancedAfter = 1
	c.Fights[types.FightVesna] = def
	_, err := validate(c)
	if err == nil {
		t.Fatal("expected error")
	}
	ve := err.(*ValidationError)
	assertContains(t, ve.Errors, "has 2 weights for 1 opponent moves")
	assertContains(t, ve.Errors, "advanced are all zero")
}

func TestValidate_AdvancedAfterWithoutWeights(t *testing.T) {
	c := validContent()
	def := c.Fights[types.FightMilos]
	def.AdvancedAfter = 3
	c.Fights[types.FightMilos] = def
	_, err := validate(c)
	if err == nil {
		t.Fatal("expected error")
	}
	assertContains(t, err.(*ValidationError).Errors, "advanced_after without advanced weights")
}

func TestValidate_UnusedClip_Warning(t *testing.T) {
	c := validContent()
	c.Clips = append(c.Clips, clipOf("spare", 0))
	warnings, err := validate(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, warnings, `clip "spare" is not used`)
}

func TestValidate_MissingFight_Warning(t *testing.T) {
	c := validContent()
	delete(c.Fights, types.FightSalko)
	warnings, err := validate(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, warnings, `fight "salko" is not defined`)
}

func assertContains(t *testing.T, strs []string, substr string) {
	t.Helper()
	for _, s := range strs {
		if strings.Contains(s, substr) {
			return
		}
	}
	t.Errorf("expected message containing %q in %v", substr, strs)
}
