package actions

import (
	"fmt"

	"roguetester/internal/domain"
	"roguetester/internal/engine/handlers"
)

// HandleUse - использовать объект в соседней клетке (дверь, автомат).
func HandleUse(ctx handlers.Context, p handlers.DirectionArgs) (handlers.Result, error) {
	obj := ctx.Room.ObjectAt(ctx.Actor.Pos.Add(p.Dir))
	if obj == nil {
		return handlers.Fail(ctx, domain.ErrNothingHere)
	}

	obj.Use(ctx.Actor)
	return handlers.EmptyResult(), nil
}

// HandleSay - реплика в лог.
func HandleSay(ctx handlers.Context, p handlers.TextArgs) (handlers.Result, error) {
	return handlers.Result{
		Msg:     fmt.Sprintf("%s: \"%s\"", ctx.Actor.Name, p.Text),
		MsgType: handlers.MsgSpeech,
	}, nil
}
