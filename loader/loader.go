// Package loader loads Lua fight and clip definitions into Go structs.
// The Lua VM is discarded after loading: no Lua runs while the game does.
package loader

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/expresscore/types"
)

//go:embed content/*.lua
var builtin embed.FS

// Content is the compiled result of a load.
type Content struct {
	Fights map[types.FightType]types.FightDef
	Clips  []types.Sequence
	// Warnings are validation findings that do not stop the load.
	Warnings []string
}

// collector accumulates Lua definitions during file execution.
type collector struct {
	fights []rawFight
	clips  []rawClip
}

// Default loads the content compiled into the binary.
func Default() (*Content, error) {
	sub, err := fs.Sub(builtin, "content")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// Load reads all .lua files from dir.
func Load(dir string) (*Content, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS runs every .lua file at the root of fsys in a sandboxed VM,
// compiles the definitions and validates them.
func LoadFS(fsys fs.FS) (*Content, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found")
	}
	sort.Strings(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		src, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		fn, err := L.Load(strings.NewReader(string(src)), path.Base(f))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", f, err)
		}
		L.Push(fn)
		if err := L.PCall(0, lua.MultRet, nil); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	c, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling content: %w", err)
	}
	warnings, err := validate(c)
	if err != nil {
		return nil, err
	}
	c.Warnings = warnings
	return c, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the VM or break determinism.
func sandbox(L *lua.LState) {
	for _, name := range []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	} {
		L.SetGlobal(name, lua.LNil)
	}
	if tbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		tbl.RawSetString("random", lua.LNil)
		tbl.RawSetString("randomseed", lua.LNil)
	}
}
