// Package characters holds the scripted behavior tables of the ported
// characters. Each table is built fresh per game; handlers keep all their
// state in the character's call stack.
package characters

import "github.com/nathoo/expresscore/engine/entity"

// Registry returns a registry holding every ported table, in character id
// order.
func Registry() *entity.Registry {
	reg := entity.NewRegistry()
	for _, t := range Tables() {
		reg.Register(t)
	}
	return reg
}

// Tables builds the ported tables in character id order.
func Tables() []*entity.Table {
	return []*entity.Table{Anna(), Milos(), Vesna(), Ivo()}
}
