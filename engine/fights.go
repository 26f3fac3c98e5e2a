package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nathoo/expresscore/engine/events"
	"github.com/nathoo/expresscore/engine/fight"
	"github.com/nathoo/expresscore/types"
)

// Drill pacing for fights nobody plays.
const (
	DrillEvery = 4
	DrillLimit = 2000
)

// FightReport describes a finished fight.
type FightReport struct {
	Type          types.FightType
	Name          string
	End           types.FightEndType
	PlayerScore   int
	OpponentScore int
}

// PlayFight runs fight t for a character and returns the outcome. A fight
// that cannot be set up is a content defect and panics.
func (e *Engine) PlayFight(t types.FightType) types.FightEndType {
	rep, err := e.Fight(context.Background(), t, nil)
	if err != nil {
		if setupError(err) {
			e.log.Error("fight setup failed", zap.Int("fight", int(t)), zap.Error(err))
			panic(fmt.Sprintf("engine: %v", err))
		}
		e.log.Warn("fight input failed", zap.Int("fight", int(t)), zap.Error(err))
	}
	return rep.End
}

// Fight plays fight t with input from src. A nil src uses FightInput, or a
// Drill over the player's moves.
func (e *Engine) Fight(ctx context.Context, t types.FightType, src events.Source) (FightReport, error) {
	if src == nil {
		src = e.fightSource(t)
	}
	e.fights.SetSource(src)
	end, err := e.fights.Run(ctx, t)
	rep := FightReport{Type: t, End: end}
	if err != nil && setupError(err) {
		return rep, err
	}
	if a := e.fights.Arena(); a != nil {
		rep.Name = a.Def().Name
		rep.PlayerScore = a.Fighter(fight.Player).Score
		rep.OpponentScore = a.Fighter(fight.Opponent).Score
	}
	e.last = &rep
	e.note("fight", types.CharacterCath, rep.Name, fmt.Sprintf("end=%d score=%d-%d", end, rep.PlayerScore, rep.OpponentScore))
	return rep, err
}

// LastFight returns the report of the most recent fight.
func (e *Engine) LastFight() (FightReport, bool) {
	if e.last == nil {
		return FightReport{}, false
	}
	return *e.last, true
}

// Fights returns the fight engine.
func (e *Engine) Fights() *fight.Engine { return e.fights }

func (e *Engine) fightSource(t types.FightType) events.Source {
	if e.FightInput != nil {
		return e.FightInput(t)
	}
	def := e.Content.Fights[t]
	moves := make([]types.FightAction, 0, len(def.Player.Moves))
	for _, m := range def.Player.Moves {
		moves = append(moves, m.Action)
	}
	return &events.Drill{Moves: moves, Every: DrillEvery, Limit: DrillLimit}
}

func setupError(err error) bool {
	return errors.Is(err, fight.ErrUnknownFight) ||
		errors.Is(err, fight.ErrMissingClip) ||
		errors.Is(err, fight.ErrRunning)
}
