package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nathoo/expresscore/engine/entity"
	"github.com/nathoo/expresscore/engine/save"
	"github.com/nathoo/expresscore/engine/state"
	"github.com/nathoo/expresscore/types"
)

// logic receives the game-level transitions scripts request.
type logic struct{ e *Engine }

func (l logic) GameOver(kind, param, scene int, failure bool) {
	over := types.GameOver{Kind: kind, Param: param, Scene: scene, Failure: failure}
	if !state.SetGameOver(l.e.State, over) {
		return
	}
	l.e.log.Info("game over",
		zap.Int("kind", kind),
		zap.Int("param", param),
		zap.Int("scene", scene),
		zap.Bool("failure", failure))
	l.e.note("gameover", types.CharacterCath, "", fmt.Sprintf("kind=%d scene=%d failure=%t", kind, scene, failure))
}

func (l logic) Save(c types.CharacterID, kind int, ev types.EventID) {
	rec := save.NewRecord(c, kind, ev, l.e.Clock.Now())
	l.e.State.Saves = append(l.e.State.Saves, rec)
	l.e.log.Info("save point",
		zap.String("character", entity.CharacterName(c)),
		zap.Int("kind", kind),
		zap.Int("event", int(ev)))
	l.e.note("save", c, rec.ID, fmt.Sprintf("kind=%d event=%d", kind, ev))
}

func (l logic) PlayNIS(ev types.EventID) {
	state.MarkNIS(l.e.State, ev)
	l.e.log.Info("nis", zap.Int("event", int(ev)))
	l.e.note("nis", types.CharacterCath, "", fmt.Sprintf("event=%d", ev))
}
