package entity

import (
	"fmt"
	"sort"

	"github.com/nathoo/expresscore/types"
)

// Handler is one state of a character's behavior table. It is invoked with
// every message the character receives while the state is current.
type Handler func(e E, msg types.SavePoint)

type stateDef struct {
	name    string
	handler Handler
}

// Table is the behavior table of one character.
type Table struct {
	Character types.CharacterID
	Name      string
	// ExcuseMe lists the lines the character says when walking past Cath.
	ExcuseMe []string

	states   map[types.StateID]stateDef
	chapters map[int]types.StateID
}

// NewTable creates an empty table.
func NewTable(c types.CharacterID, name string) *Table {
	return &Table{
		Character: c,
		Name:      name,
		states:    make(map[types.StateID]stateDef),
		chapters:  make(map[int]types.StateID),
	}
}

// Add registers a state. Ids must be positive and unique.
func (t *Table) Add(id types.StateID, name string, h Handler) *Table {
	if id <= 0 {
		panic(fmt.Sprintf("entity: %s state %q has invalid id %d", t.Name, name, id))
	}
	if _, dup := t.states[id]; dup {
		panic(fmt.Sprintf("entity: %s state %d registered twice", t.Name, id))
	}
	if h == nil {
		panic(fmt.Sprintf("entity: %s state %q has no handler", t.Name, name))
	}
	t.states[id] = stateDef{name: name, handler: h}
	return t
}

// Chapter declares the state the character enters when chapter n starts.
func (t *Table) Chapter(n int, id types.StateID) *Table {
	if _, ok := t.states[id]; !ok {
		panic(fmt.Sprintf("entity: %s chapter %d entry %d is not registered", t.Name, n, id))
	}
	t.chapters[n] = id
	return t
}

// Entry returns the chapter entry state.
func (t *Table) Entry(chapter int) (types.StateID, bool) {
	id, ok := t.chapters[chapter]
	return id, ok
}

// Has reports whether id is registered.
func (t *Table) Has(id types.StateID) bool {
	_, ok := t.states[id]
	return ok
}

// StateName returns the name of a state, or a placeholder for unknown ids.
func (t *Table) StateName(id types.StateID) string {
	if def, ok := t.states[id]; ok {
		return def.name
	}
	return fmt.Sprintf("#%d", id)
}

// Lookup finds a state id by name.
func (t *Table) Lookup(name string) (types.StateID, bool) {
	for id, def := range t.states {
		if def.name == name {
			return id, true
		}
	}
	return 0, false
}

// States lists registered ids in ascending order.
func (t *Table) States() []types.StateID {
	ids := make([]types.StateID, 0, len(t.states))
	for id := range t.states {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Registry holds the tables of all scripted characters in registration
// order. Dispatch passes visit characters in this order.
type Registry struct {
	tables map[types.CharacterID]*Table
	order  []types.CharacterID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[types.CharacterID]*Table)}
}

// Register adds a table. Registering a character twice panics.
func (r *Registry) Register(t *Table) {
	if t.Character <= types.CharacterCath || t.Character >= types.CharacterCount {
		panic(fmt.Sprintf("entity: cannot register character %d", t.Character))
	}
	if _, dup := r.tables[t.Character]; dup {
		panic(fmt.Sprintf("entity: character %s registered twice", t.Name))
	}
	r.tables[t.Character] = t
	r.order = append(r.order, t.Character)
}

// Table returns the table of c, or nil.
func (r *Registry) Table(c types.CharacterID) *Table { return r.tables[c] }

// Registered reports whether c has a table.
func (r *Registry) Registered(c types.CharacterID) bool {
	_, ok := r.tables[c]
	return ok
}

// Order returns the registered characters in dispatch order.
func (r *Registry) Order() []types.CharacterID {
	return append([]types.CharacterID(nil), r.order...)
}
