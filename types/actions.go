package types

// ActionID is a message action. Small values are shared engine actions;
// the large values are script-specific signals between characters and
// are named by their numbers.
type ActionID uint32

const (
	ActionNone            ActionID = 0
	Action1               ActionID = 1
	ActionEndSound        ActionID = 2
	ActionExitCompartment ActionID = 3
	Action4               ActionID = 4
	ActionExcuseMeCath    ActionID = 5
	ActionExcuseMe        ActionID = 6
	ActionKnock           ActionID = 8
	ActionOpenDoor        ActionID = 9
	Action10              ActionID = 10
	Action11              ActionID = 11
	ActionDefault         ActionID = 12
	Action16              ActionID = 16
	ActionDrawScene       ActionID = 17
	ActionCallback        ActionID = 18
)

// Script signals used by the ported character tables.
const (
	Action55996766  ActionID = 55996766
	Action71277948  ActionID = 71277948
	Action88652208  ActionID = 88652208
	Action101687594 ActionID = 101687594
	Action103798704 ActionID = 103798704
	Action122865568 ActionID = 122865568
	Action123199584 ActionID = 123199584
	Action123668192 ActionID = 123668192
	Action123852928 ActionID = 123852928
	Action124190740 ActionID = 124190740
	Action125242096 ActionID = 125242096
	Action134427424 ActionID = 134427424
	Action135024800 ActionID = 135024800
	Action135600432 ActionID = 135600432
	Action136455232 ActionID = 136455232
	Action137165825 ActionID = 137165825
	Action155913424 ActionID = 155913424
	Action157370960 ActionID = 157370960
	Action157691176 ActionID = 157691176
	Action167992577 ActionID = 167992577
	Action171843264 ActionID = 171843264
	Action189299008 ActionID = 189299008
	Action190412928 ActionID = 190412928
	Action192637492 ActionID = 192637492
	Action202884544 ActionID = 202884544
	Action203663744 ActionID = 203663744
	Action204832737 ActionID = 204832737
	Action208228224 ActionID = 208228224
	Action221683008 ActionID = 221683008
	Action223002560 ActionID = 223002560
	Action223262556 ActionID = 223262556
	Action235856512 ActionID = 235856512
	Action238936000 ActionID = 238936000
	Action259125998 ActionID = 259125998
	Action269485588 ActionID = 269485588
	Action272177921 ActionID = 272177921
	Action291662081 ActionID = 291662081
)
