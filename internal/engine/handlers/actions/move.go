package actions

import (
	"fmt"

	"roguetester/internal/engine/handlers"
	"roguetester/internal/systems"
)

// HandleMove - шаг в соседнюю клетку.
func HandleMove(ctx handlers.Context, p handlers.DirectionArgs) (handlers.Result, error) {
	if err := systems.Step(ctx.Actor, p.Dir); err != nil {
		return handlers.Result{
			Msg:     fmt.Sprintf("%s не может идти туда", ctx.Actor.Name),
			MsgType: handlers.MsgError,
		}, err
	}
	return handlers.EmptyResult(), nil
}
