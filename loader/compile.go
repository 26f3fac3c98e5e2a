package loader

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/expresscore/engine/world"
	"github.com/nathoo/expresscore/types"
)

// rawFight holds a fight table before compilation.
type rawFight struct {
	name  string
	table *lua.LTable
}

// rawClip holds a clip table before compilation.
type rawClip struct {
	name  string
	table *lua.LTable
}

// fightTypes maps the names used in content files to fight types.
var fightTypes = map[string]types.FightType{
	"milos": types.FightMilos,
	"anna":  types.FightAnna,
	"ivo":   types.FightIvo,
	"salko": types.FightSalko,
	"vesna": types.FightVesna,
}

// Reaction sequences follow the idle loop in every fighter.
const (
	seqIdle = iota
	seqHit
	seqWin
	seqDefeat
)

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// getInts returns an array field as ints, or nil if missing.
func getInts(tbl *lua.LTable, key string) []int {
	arr := getTable(tbl, key)
	if arr == nil {
		return nil
	}
	out := make([]int, 0, arr.MaxN())
	for i := 1; i <= arr.MaxN(); i++ {
		n, _ := arr.RawGetInt(i).(lua.LNumber)
		out = append(out, int(n))
	}
	return out
}

// compile converts all collected Lua data into Content.
func compile(coll *collector) (*Content, error) {
	c := &Content{Fights: map[types.FightType]types.FightDef{}}

	for _, raw := range coll.clips {
		seq, err := compileClip(raw)
		if err != nil {
			return nil, fmt.Errorf("clip %q: %w", raw.name, err)
		}
		c.Clips = append(c.Clips, seq)
	}

	for _, raw := range coll.fights {
		def, err := compileFight(raw)
		if err != nil {
			return nil, fmt.Errorf("fight %q: %w", raw.name, err)
		}
		if _, dup := c.Fights[def.Type]; dup {
			return nil, fmt.Errorf("duplicate fight %q", raw.name)
		}
		c.Fights[def.Type] = def
	}
	return c, nil
}

func compileClip(raw rawClip) (types.Sequence, error) {
	seq := types.Sequence{Name: raw.name}
	frames := getTable(raw.table, "frames")
	if frames == nil {
		return seq, nil
	}
	for i := 1; i <= frames.MaxN(); i++ {
		infos, err := compileFrame(frames.RawGetInt(i))
		if err != nil {
			return seq, fmt.Errorf("frame %d: %w", i, err)
		}
		seq.Frames = append(seq.Frames, infos...)
	}
	return seq, nil
}

// compileFrame expands one frames entry. An entry is a flag string, a
// number of raw flag bits, a {flags=, sound=} table or a Frames(n, f)
// repetition.
func compileFrame(v lua.LValue) ([]types.FrameInfo, error) {
	switch val := v.(type) {
	case lua.LString:
		flags, err := parseFlags(string(val))
		if err != nil {
			return nil, err
		}
		return []types.FrameInfo{{Flags: flags}}, nil
	case lua.LNumber:
		return []types.FrameInfo{{Flags: uint8(val)}}, nil
	case *lua.LTable:
		if n := getInt(val, "repeat"); n > 0 {
			one, err := compileFrame(val.RawGetString("frame"))
			if err != nil {
				return nil, err
			}
			out := make([]types.FrameInfo, 0, n*len(one))
			for i := 0; i < n; i++ {
				out = append(out, one...)
			}
			return out, nil
		}
		flags, err := parseFlags(getString(val, "flags"))
		if err != nil {
			return nil, err
		}
		return []types.FrameInfo{{Flags: flags, Sound: getString(val, "sound")}}, nil
	}
	return nil, fmt.Errorf("unsupported frame value %s", v.Type())
}

// parseFlags reads "open", "contact", "contact|open" or "".
func parseFlags(s string) (uint8, error) {
	var flags uint8
	for _, part := range strings.Split(s, "|") {
		switch strings.TrimSpace(part) {
		case "", "none":
		case "open":
			flags |= types.FrameFlagOpen
		case "contact":
			flags |= types.FrameFlagContact
		default:
			return 0, fmt.Errorf("unknown frame flag %q", part)
		}
	}
	return flags, nil
}

func compileFight(raw rawFight) (types.FightDef, error) {
	t, ok := fightTypes[raw.name]
	if !ok {
		return types.FightDef{}, errors.New("unknown fight")
	}
	def := types.FightDef{
		Type:          t,
		Name:          raw.name,
		Music:         getString(raw.table, "music"),
		Weights:       getInts(raw.table, "weights"),
		Advanced:      getInts(raw.table, "advanced"),
		AdvancedAfter: getInt(raw.table, "advanced_after"),
		Cooldown:      getInt(raw.table, "cooldown"),
	}

	player := getTable(raw.table, "player")
	if player == nil {
		return def, errors.New("player is required")
	}
	opponent := getTable(raw.table, "opponent")
	if opponent == nil {
		return def, errors.New("opponent is required")
	}
	def.Player = compileFighter(player, playerMoves(getTable(player, "moves")))
	def.Opponent = compileFighter(opponent, opponentMoves(getTable(opponent, "moves")))
	return def, nil
}

type rawMove struct {
	action types.FightAction
	clip   string
}

// compileFighter lays out the sequence table: idle, hit, win and defeat
// first, then one entry per distinct move clip.
func compileFighter(tbl *lua.LTable, moves []rawMove) types.FighterDef {
	f := types.FighterDef{
		Sequences: []string{
			getString(tbl, "idle"),
			getString(tbl, "hit"),
			getString(tbl, "win"),
			getString(tbl, "defeat"),
		},
		Countdown: getInt(tbl, "countdown"),
		Hit:       seqHit,
		Win:       seqWin,
		Defeat:    seqDefeat,
	}
	index := map[string]int{}
	for _, m := range moves {
		i, ok := index[m.clip]
		if !ok {
			i = len(f.Sequences)
			f.Sequences = append(f.Sequences, m.clip)
			index[m.clip] = i
		}
		f.Moves = append(f.Moves, types.Move{Action: m.action, Sequence: i})
	}
	return f
}

// playerMoves reads moves keyed by hotspot action, in action order.
func playerMoves(tbl *lua.LTable) []rawMove {
	if tbl == nil {
		return nil
	}
	var out []rawMove
	tbl.ForEach(func(k, v lua.LValue) {
		n, ok := k.(lua.LNumber)
		if !ok {
			return
		}
		if s, ok := v.(lua.LString); ok {
			out = append(out, rawMove{action: types.FightAction(n), clip: string(s)})
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].action < out[j].action })
	return out
}

// opponentMoves reads a list of clips; the n-th clip performs attack n.
func opponentMoves(tbl *lua.LTable) []rawMove {
	if tbl == nil {
		return nil
	}
	out := make([]rawMove, 0, tbl.MaxN())
	for i := 1; i <= tbl.MaxN(); i++ {
		s, _ := tbl.RawGetInt(i).(lua.LString)
		out = append(out, rawMove{action: types.FightAction(i), clip: string(s)})
	}
	return out
}

// Archive returns the loaded clips as an in-memory archive.
func (c *Content) Archive() *world.MemArchive {
	return world.NewMemArchive(c.Clips...)
}
