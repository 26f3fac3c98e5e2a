package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/nathoo/expresscore/config"
	"github.com/nathoo/expresscore/engine"
	"github.com/nathoo/expresscore/types"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.New(config.Default(), nil, engine.Deps{}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return eng
}

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := New(newTestEngine(t), t.TempDir())
	c.In = strings.NewReader(input)
	c.Out = &out
	return c, &out
}

func TestCLI_Banner(t *testing.T) {
	c, out := newTestCLI(t, "quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Chapter 1") {
		t.Error("expected chapter in banner")
	}
	if !strings.Contains(output, "19:39") {
		t.Errorf("expected start wall clock in banner, got %q", output)
	}
	if !strings.Contains(output, "Goodbye.") {
		t.Error("expected goodbye on quit")
	}
}

func TestCLI_TickAdvancesClock(t *testing.T) {
	c, out := newTestCLI(t, "tick 5\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Ran 5 tick(s)") {
		t.Errorf("expected tick report, got %q", out.String())
	}
	if got := c.Engine.Clock.NowTicks(); got != 5 {
		t.Errorf("ticks = %d, want 5", got)
	}
}

func TestCLI_BadTickCount(t *testing.T) {
	c, out := newTestCLI(t, "tick -2\nquit\n")
	c.Run()
	if !strings.Contains(out.String(), "Usage: tick") {
		t.Error("expected usage for a bad count")
	}
}

func TestCLI_CharsAndStack(t *testing.T) {
	c, _ := newTestCLI(t, "")
	out, _ := c.Exec("chars")
	if len(out) != 4 {
		t.Fatalf("chars printed %d lines, want 4: %v", len(out), out)
	}
	for i, name := range []string{"Anna", "Milos", "Vesna", "Ivo"} {
		if !strings.HasPrefix(out[i], name) {
			t.Errorf("line %d = %q, want %s first", i, out[i], name)
		}
	}

	out, _ = c.Exec("bt anna")
	if len(out) != 1 || !strings.Contains(out[0], "#0 Birth") {
		t.Errorf("stack = %v", out)
	}

	out, _ = c.Exec("state 14")
	if len(out) == 0 || !strings.HasPrefix(out[0], "Milos: Birth") {
		t.Errorf("state by id = %v", out)
	}

	out, _ = c.Exec("state nobody")
	if len(out) != 1 || !strings.Contains(out[0], "Usage: state") {
		t.Errorf("unknown character = %v", out)
	}
}

func TestCLI_PushShowsOnBus(t *testing.T) {
	c, _ := newTestCLI(t, "")
	out, _ := c.Exec("push cath milos knock")
	if len(out) != 1 || !strings.Contains(out[0], "Queued Cath -> Milos knock") {
		t.Fatalf("push = %v", out)
	}
	out, _ = c.Exec("bus")
	found := false
	for _, line := range out {
		if strings.Contains(line, "Cath -> Milos knock") {
			found = true
		}
	}
	if !found {
		t.Errorf("bus = %v", out)
	}

	out, _ = c.Exec("push cath milos 123456 LIB012")
	if !strings.Contains(out[0], "123456") {
		t.Errorf("numeric push = %v", out)
	}
	pending := c.Engine.Bus.Pending()
	last := pending[len(pending)-1]
	if last.Action != types.ActionID(123456) || last.Param.Str != "LIB012" {
		t.Errorf("last pending = %+v", last)
	}

	out, _ = c.Exec("push cath nobody knock")
	if !strings.Contains(out[0], "Unknown character") {
		t.Errorf("bad recipient = %v", out)
	}
}

func TestCLI_Chapter(t *testing.T) {
	c, _ := newTestCLI(t, "")
	out, _ := c.Exec("chapter 3")
	if !strings.Contains(out[0], "Chapter 3 started") {
		t.Errorf("chapter = %v", out)
	}
	out, _ = c.Exec("chapter 9")
	if !strings.Contains(out[0], "Chapter failed") {
		t.Errorf("bad chapter = %v", out)
	}
}

func TestCLI_TimeAndJump(t *testing.T) {
	c, _ := newTestCLI(t, "")
	c.Exec("time 10")
	if got := c.Engine.Clock.TimeDelta(); got != 10 {
		t.Errorf("delta = %d, want 10", got)
	}
	out, _ := c.Exec("jump 1404000")
	if !strings.Contains(out[0], "time 1404000 (02:00)") {
		t.Errorf("jump = %v", out)
	}
}

func TestCLI_FightReportsOutcome(t *testing.T) {
	c, _ := newTestCLI(t, "")
	out, _ := c.Exec("fight milos")
	if len(out) != 1 || !strings.HasPrefix(out[0], "[Fight milos:") {
		t.Errorf("fight = %v", out)
	}
	out, _ = c.Exec("fight nobody")
	if !strings.Contains(out[0], "Unknown fight") {
		t.Errorf("unknown fight = %v", out)
	}
}

func TestCLI_Trigger(t *testing.T) {
	c, _ := newTestCLI(t, "")
	out, _ := c.Exec("enter baggage")
	if !strings.Contains(out[0], "Nobody reacts") {
		t.Errorf("trigger in chapter 1 = %v", out)
	}
	out, _ = c.Exec("do dance")
	if !strings.Contains(out[0], "unknown trigger") {
		t.Errorf("unknown trigger = %v", out)
	}
}

func TestCLI_SaveLoadRenameList(t *testing.T) {
	dir := t.TempDir()

	c, out := newTestCLI(t, "tick 20\nsave test\nquit\n")
	c.Store.Dir = dir
	c.Run()
	if !strings.Contains(out.String(), "Game saved to test.") {
		t.Fatalf("expected save confirmation, got %q", out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "test.json")); err != nil {
		t.Fatalf("save file: %v", err)
	}

	c2, out2 := newTestCLI(t, "rename test morning\nsaves\nload morning\nquit\n")
	c2.Store.Dir = dir
	c2.Run()

	output := out2.String()
	for _, want := range []string{"Renamed test to morning.", "morning", "Game loaded from morning"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in %q", want, output)
		}
	}
	if got := c2.Engine.Clock.NowTicks(); got != 20 {
		t.Errorf("loaded ticks = %d, want 20", got)
	}
}

func TestCLI_LoadNonexistent(t *testing.T) {
	c, out := newTestCLI(t, "load nonexistent\nquit\n")
	c.Run()
	if !strings.Contains(out.String(), "Load failed") {
		t.Error("expected load failure message")
	}
}

func TestCLI_SavesEmpty(t *testing.T) {
	c, _ := newTestCLI(t, "")
	out, _ := c.Exec("saves")
	if len(out) != 1 || !strings.Contains(out[0], "No saves") {
		t.Errorf("saves = %v", out)
	}
}

func TestCLI_UnknownCommand(t *testing.T) {
	c, out := newTestCLI(t, "/bogus\nquit\n")
	c.Run()
	if !strings.Contains(out.String(), "Unknown command") {
		t.Error("expected unknown command message")
	}
}

func TestCLI_HelpCommand(t *testing.T) {
	c, out := newTestCLI(t, "help\nquit\n")
	c.Run()
	output := out.String()
	for _, want := range []string{"tick [n]", "save [name]", "trigger <name>", "quit"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in help output", want)
		}
	}
}

func TestCLI_TraceShowsNewEffects(t *testing.T) {
	c, out := newTestCLI(t, "trace\ndo dance\nenter baggage\ntrace\nquit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Trace output enabled") || !strings.Contains(output, "Trace output disabled") {
		t.Error("expected trace toggle messages")
	}
	if !strings.Contains(output, "[trace] trigger") {
		t.Errorf("expected trigger effect in trace, got %q", output)
	}
}

func TestCLI_EchoAndComments(t *testing.T) {
	c, out := newTestCLI(t, "# a comment\n\ntick\nquit\n")
	c.EchoInput = true
	c.Run()

	output := out.String()
	if strings.Contains(output, "a comment") {
		t.Error("comment lines should be skipped")
	}
	if !strings.Contains(output, "> tick\n") {
		t.Errorf("expected echoed input, got %q", output)
	}
}

func TestCLI_Again_RepeatsLastCommand(t *testing.T) {
	c, _ := newTestCLI(t, "tick 3\nagain\ng\nquit\n")
	c.Run()
	if got := c.Engine.Clock.NowTicks(); got != 9 {
		t.Errorf("ticks = %d, want 9", got)
	}
}

func TestCLI_Again_NothingToRepeat(t *testing.T) {
	c, out := newTestCLI(t, "again\nquit\n")
	c.Run()
	if !strings.Contains(out.String(), "Nothing to repeat") {
		t.Error("expected 'Nothing to repeat' when no prior command")
	}
}

func TestWallClock(t *testing.T) {
	tests := []struct {
		t    types.GameTime
		want string
	}{
		{types.TimeStartGame, "19:39"},
		{types.TimeChapter1, "19:40"},
		{0, "00:00"},
		{54000*24 + 900*5, "00:05"},
	}
	for _, tt := range tests {
		if got := WallClock(tt.t); got != tt.want {
			t.Errorf("WallClock(%d) = %q, want %q", tt.t, got, tt.want)
		}
	}
}
