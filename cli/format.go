package cli

import (
	"fmt"

	"github.com/nathoo/expresscore/engine"
	"github.com/nathoo/expresscore/types"
)

// Game time runs at 15 units per second.
const (
	unitsPerMinute = 900
	unitsPerHour   = 60 * unitsPerMinute
)

var carNames = map[types.Car]string{
	types.CarNone:          "none",
	types.CarBaggageRear:   "baggage-rear",
	types.CarKronos:        "kronos",
	types.CarGreenSleeping: "green",
	types.CarRedSleeping:   "red",
	types.CarRestaurant:    "restaurant",
	types.CarBaggage:       "baggage",
	types.CarCoalTender:    "tender",
	types.CarLocomotive:    "locomotive",
	types.CarVestibule:     "vestibule",
}

var locationNames = map[types.Location]string{
	types.LocationOutsideCompartment: "corridor",
	types.LocationInsideCompartment:  "inside",
	types.LocationOutsideTrain:       "off-train",
}

// WallClock renders a game time as hours and minutes.
func WallClock(t types.GameTime) string {
	return fmt.Sprintf("%02d:%02d", (t/unitsPerHour)%24, (t%unitsPerHour)/unitsPerMinute)
}

// PositionString renders a position as car, coordinate and placement.
func PositionString(p types.Position) string {
	car, ok := carNames[p.Car]
	if !ok {
		car = fmt.Sprintf("car%d", p.Car)
	}
	return fmt.Sprintf("%s@%d %s", car, p.Coord, locationNames[p.Location])
}

// EndString names a fight outcome.
func EndString(end types.FightEndType) string {
	switch end {
	case types.FightEndWin:
		return "win"
	case types.FightEndLost:
		return "lost"
	default:
		return "exit"
	}
}

func clockString(e *engine.Engine) string {
	now := e.Clock.Now()
	return fmt.Sprintf("time %d (%s), tick %d, delta %d", now, WallClock(now), e.Clock.NowTicks(), e.Clock.TimeDelta())
}

func gameOverString(g *types.GameOver) string {
	if g.Failure {
		return fmt.Sprintf("failure, scene %d", g.Scene)
	}
	return fmt.Sprintf("kind %d, scene %d", g.Kind, g.Scene)
}

func paramString(p types.Param) string {
	if p.Str != "" {
		return fmt.Sprintf("%q", p.Str)
	}
	if p.Int != 0 {
		return fmt.Sprint(p.Int)
	}
	return ""
}
