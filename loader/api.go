package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerFrameHelpers(L)
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Fight "milos" { ... } is curried: Fight("milos") returns a function
	// that takes the definition table.
	L.SetGlobal("Fight", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.fights = append(coll.fights, rawFight{name: name, table: tbl})
			return 0
		}))
		return 1
	}))

	// Clip "2001cr" { frames = {...} }, curried.
	L.SetGlobal("Clip", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.clips = append(coll.clips, rawClip{name: name, table: tbl})
			return 0
		}))
		return 1
	}))
}

func registerFrameHelpers(L *lua.LState) {
	// Frames(n, "open") repeats one frame n times inside a frames list.
	L.SetGlobal("Frames", L.NewFunction(func(L *lua.LState) int {
		n := L.CheckInt(1)
		frame := L.Get(2)
		if frame == lua.LNil {
			frame = lua.LString("")
		}
		tbl := L.NewTable()
		tbl.RawSetString("repeat", lua.LNumber(n))
		tbl.RawSetString("frame", frame)
		L.Push(tbl)
		return 1
	}))

	// Sound("open", "LIB090") is a frame that plays a sound when shown.
	L.SetGlobal("Sound", L.NewFunction(func(L *lua.LState) int {
		flags := L.CheckString(1)
		name := L.CheckString(2)
		tbl := L.NewTable()
		tbl.RawSetString("flags", lua.LString(flags))
		tbl.RawSetString("sound", lua.LString(name))
		L.Push(tbl)
		return 1
	}))
}
