// Package cli provides the line-oriented debugger shell for the expresscore
// engine: it reads commands from a terminal or a script file and prints
// what the characters did.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nathoo/expresscore/engine"
	"github.com/nathoo/expresscore/engine/entity"
	"github.com/nathoo/expresscore/engine/parser"
	"github.com/nathoo/expresscore/engine/save"
	"github.com/nathoo/expresscore/types"
)

// CLI runs debugger commands against an engine.
type CLI struct {
	Engine    *engine.Engine
	Store     save.Store
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool // echo each input line after the prompt (for script playback)
	lastCmd   string
	seen      int
}

// New creates a CLI wired to the given engine, keeping saves in saveDir.
func New(eng *engine.Engine, saveDir string) *CLI {
	return &CLI{
		Engine: eng,
		Store:  save.Store{Dir: saveDir},
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run reads commands until input ends or quit.
func (c *CLI) Run() {
	c.printSystem(fmt.Sprintf("Chapter %d, %s.", c.Engine.State.Chapter, clockString(c.Engine)))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// "again" / "g" repeats the last command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printSystem("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		out, quit := c.Exec(input)
		for _, line := range out {
			c.printLine(line)
		}
		if c.Trace {
			c.printTrace()
		}
		if quit {
			return
		}
	}
}

// Exec runs one command line and returns its output. quit reports that the
// session should end.
func (c *CLI) Exec(line string) (out []string, quit bool) {
	cmd := parser.Parse(strings.TrimPrefix(strings.TrimSpace(line), "/"))
	e := c.Engine
	say := func(format string, args ...any) {
		out = append(out, fmt.Sprintf(format, args...))
	}

	switch cmd.Verb {
	case "":
		return nil, false

	case "quit":
		say("[Goodbye.]")
		return out, true

	case "help":
		return helpLines, false

	case "trace":
		c.Trace = !c.Trace
		c.seen = 0
		if rec := e.Recorder(); rec != nil {
			c.seen = rec.Total()
		}
		if c.Trace {
			say("[Trace output enabled.]")
		} else {
			say("[Trace output disabled.]")
		}

	case "tick":
		n, ok := parser.ParseCount(cmd.Args, 1)
		if !ok {
			say("[Usage: tick [n]]")
			break
		}
		ran := e.Steps(n)
		say("[Ran %d tick(s); %s.]", ran, clockString(e))
		if over := e.State.GameOver; over != nil {
			say("[Game over: %s.]", gameOverString(over))
		}

	case "push":
		c.cmdPush(cmd.Args, say)

	case "chapter":
		if len(cmd.Args) != 1 {
			say("[Usage: chapter <1-5>]")
			break
		}
		n, err := strconv.Atoi(cmd.Args[0])
		if err == nil {
			err = e.SetChapter(n)
		}
		if err != nil {
			say("[Chapter failed: %v]", err)
			break
		}
		say("[Chapter %d started.]", n)

	case "chars":
		for _, v := range e.Characters() {
			say("%-6s %-16s depth=%d %s", v.Name, v.Current().Name, len(v.Stack)-1, PositionString(v.Position))
		}

	case "state", "stack":
		v, ok := c.character(cmd.Args)
		if !ok {
			say("[Usage: %s <character>]", cmd.Verb)
			break
		}
		if cmd.Verb == "state" {
			cur := v.Current()
			say("%s: %s (depth %d) %s", v.Name, cur.Name, len(v.Stack)-1, PositionString(v.Position))
			say("  params=%v flags=%v", cur.Params.Int, v.Flags)
			if v.Sequence != "" {
				say("  sequence=%s", v.Sequence)
			}
			break
		}
		for i, f := range v.Stack {
			say("#%d %-16s cb=%d int=%v str=%q", i, f.Name, f.Callback, f.Params.Int, f.Params.Str)
		}

	case "bus":
		pending := e.Bus.Pending()
		if len(pending) == 0 {
			say("[No pending messages.]")
		}
		for _, sp := range pending {
			say("%s -> %s %s %s", entity.CharacterName(sp.Sender), entity.CharacterName(sp.Recipient),
				parser.ActionName(sp.Action), paramString(sp.Param))
		}
		for _, a := range e.Bus.Autos() {
			say("auto %s %s -> flag %d", entity.CharacterName(a.Recipient), parser.ActionName(a.Action), a.Slot)
		}

	case "fight":
		if len(cmd.Args) != 1 {
			say("[Usage: fight <milos|anna|ivo|salko|vesna>]")
			break
		}
		t, ok := parser.ParseFight(cmd.Args[0])
		if !ok {
			say("[Unknown fight: %s]", cmd.Args[0])
			break
		}
		rep, err := e.Fight(context.Background(), t, nil)
		if err != nil {
			say("[Fight failed: %v]", err)
			break
		}
		say("[Fight %s: %s, %d-%d.]", rep.Name, EndString(rep.End), rep.PlayerScore, rep.OpponentScore)

	case "time":
		if len(cmd.Args) == 1 {
			d, err := strconv.ParseUint(cmd.Args[0], 10, 32)
			if err != nil {
				say("[Usage: time [delta]]")
				break
			}
			e.Clock.SetTimeDelta(uint32(d))
		}
		say("[%s.]", clockString(e))

	case "jump":
		if len(cmd.Args) != 1 {
			say("[Usage: jump <game time>]")
			break
		}
		t, err := strconv.ParseUint(cmd.Args[0], 10, 32)
		if err != nil {
			say("[Usage: jump <game time>]")
			break
		}
		e.Clock.Jump(types.GameTime(t))
		say("[%s.]", clockString(e))

	case "trigger":
		if len(cmd.Args) != 1 {
			say("[Usage: trigger <name>]")
			break
		}
		ok, err := e.Trigger(strings.ToLower(cmd.Args[0]))
		switch {
		case err != nil:
			say("[%v]", err)
		case ok:
			say("[Done.]")
		default:
			say("[Nobody reacts.]")
		}

	case "log":
		n, ok := parser.ParseCount(cmd.Args, 10)
		if !ok || e.Recorder() == nil {
			say("[Usage: log [n]]")
			break
		}
		for _, eff := range e.Recorder().Last(n) {
			say("%s", eff)
		}

	case "save":
		name := "quicksave"
		if len(cmd.Args) > 0 {
			name = cmd.Args[0]
		}
		if err := c.Store.Write(name, e.Snapshot(name)); err != nil {
			say("[Save failed: %v]", err)
			break
		}
		say("[Game saved to %s.]", name)

	case "load":
		name := "quicksave"
		if len(cmd.Args) > 0 {
			name = cmd.Args[0]
		}
		snap, err := c.Store.Read(name)
		if err == nil {
			err = e.Restore(snap)
		}
		if err != nil {
			say("[Load failed: %v]", err)
			break
		}
		say("[Game loaded from %s; chapter %d, %s.]", name, e.State.Chapter, clockString(e))

	case "saves":
		headers, err := c.Store.List()
		if err != nil {
			say("[%v]", err)
			break
		}
		if len(headers) == 0 {
			say("[No saves.]")
		}
		for _, h := range headers {
			say("%-16s chapter %d time %d", h.Name, h.Chapter, h.Time)
		}

	case "rename":
		if len(cmd.Args) != 2 {
			say("[Usage: rename <from> <to>]")
			break
		}
		if err := c.Store.Rename(cmd.Args[0], cmd.Args[1]); err != nil {
			say("[Rename failed: %v]", err)
			break
		}
		say("[Renamed %s to %s.]", cmd.Args[0], cmd.Args[1])

	default:
		say("[Unknown command: %s. Type help for available commands.]", cmd.Verb)
	}
	return out, false
}

func (c *CLI) cmdPush(args []string, say func(string, ...any)) {
	if len(args) < 3 {
		say("[Usage: push <from> <to> <action> [param]]")
		return
	}
	from, ok := entity.ParseCharacter(args[0])
	if !ok {
		say("[Unknown character: %s]", args[0])
		return
	}
	to, ok := entity.ParseCharacter(args[1])
	if !ok {
		say("[Unknown character: %s]", args[1])
		return
	}
	action, ok := parser.ParseAction(args[2])
	if !ok {
		say("[Unknown action: %s]", args[2])
		return
	}
	var p types.Param
	if len(args) > 3 {
		if n, err := strconv.ParseUint(args[3], 10, 32); err == nil {
			p.Int = uint32(n)
		} else {
			p.Str = args[3]
		}
	}
	c.Engine.Push(from, to, action, p)
	say("[Queued %s -> %s %s.]", entity.CharacterName(from), entity.CharacterName(to), parser.ActionName(action))
}

func (c *CLI) character(args []string) (engine.CharacterView, bool) {
	if len(args) != 1 {
		return engine.CharacterView{}, false
	}
	id, ok := entity.ParseCharacter(args[0])
	if !ok {
		return engine.CharacterView{}, false
	}
	return c.Engine.Character(id)
}

var helpLines = []string{
	"Stepping:",
	"  tick [n] (t)                    Advance n ticks",
	"  chapter <n>                     Start chapter n",
	"  time [delta]                    Show the clock, or set its speed",
	"  jump <time>                     Set game time",
	"Characters:",
	"  chars (ls)                      List characters and their states",
	"  state <character>               Show a character",
	"  stack <character> (bt)          Show a character's call stack",
	"  push <from> <to> <action> [p]   Queue a message",
	"  bus                             Show pending messages",
	"  trigger <name> (do)             Act as Cath: baggage, roof, linger, ivo, tyler",
	"  fight <name> (f)                Play a fight with the drill player",
	"  log [n]                         Show recent side effects",
	"  trace                           Toggle side-effect trace after each command",
	"Saves:",
	"  save [name] / load [name]       Save or restore (default: quicksave)",
	"  saves                           List saves",
	"  rename <from> <to>              Rename a save",
	"  again (g)                       Repeat the last command",
	"  quit (q)                        Exit",
}

func (c *CLI) printTrace() {
	rec := c.Engine.Recorder()
	if rec == nil {
		return
	}
	n := rec.Total() - c.seen
	c.seen = rec.Total()
	for _, eff := range rec.Last(n) {
		c.printSystem("[trace] " + eff.String())
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
