package actions

import (
	"fmt"

	"roguetester/internal/domain"
	"roguetester/internal/engine/handlers"
	"roguetester/internal/objects"
)

// Цены способностей в энергии.
const (
	SmokeCost = 1
	AutoCost  = 3
)

// smokeShape - "T" перед актором в локальной системе квадранта:
// клетка впереди и две диагонали на шаг вперед.
var smokeShape = []domain.Position{
	{X: 1, Y: 0},
	{X: 1, Y: -1},
	{X: 1, Y: 1},
}

// HandleSmoke - стена из трех смоук-тестов перед собой.
func HandleSmoke(ctx handlers.Context, p handlers.DirectionArgs) (handlers.Result, error) {
	actor := ctx.Actor
	if actor.Stats.Power < SmokeCost {
		return handlers.Fail(ctx, domain.ErrInsufficientPower)
	}
	actor.Stats.Power -= SmokeCost

	quadrant, _ := domain.QuadrantOf(p.Dir)
	lifetime := 3 + domain.RoundDiv(actor.Stats.Level, 3)
	placed := 0
	for _, local := range smokeShape {
		pos := domain.Translate(actor.Pos, local, quadrant)
		if domain.PlaceObject(objects.NewSmoke(lifetime), ctx.Room, pos) {
			placed++
		}
	}

	return handlers.Info(fmt.Sprintf("%s ставит смоук-тесты (%d)", actor.Name, placed)), nil
}
