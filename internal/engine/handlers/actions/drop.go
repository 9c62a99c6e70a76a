package actions

import (
	"fmt"

	"roguetester/internal/domain"
	"roguetester/internal/engine/handlers"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleDrop - бросить предмет на пол. Без номера (или с неверным номером)
// бросается последний.
func HandleDrop(ctx handlers.Context, p handlers.IndexArgs) (handlers.Result, error) {
	actor := ctx.Actor

	item := domain.ShiftItem(actor.Inventory, ctx.Room.ItemsAt(actor.Pos), p.Index)
	if item == nil {
		return handlers.Result{
			Msg:     fmt.Sprintf("%s: нечего выкидывать", actor.Name),
			MsgType: handlers.MsgError,
		}, domain.ErrNoSuchItem
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "drop_handler",
		"actor":     actor.Name,
		"item":      item.Props().Name,
	}).Debug("Item dropped")

	return handlers.Info(fmt.Sprintf("%s выкидывает предмет: %s", actor.Name, item.Props().Name)), nil
}

// HandleTake - поднять предмет с пола. Индекс - как у HandleDrop.
func HandleTake(ctx handlers.Context, p handlers.IndexArgs) (handlers.Result, error) {
	actor := ctx.Actor

	floor := ctx.Room.FloorItems(actor.Pos)
	if len(floor) == 0 {
		return handlers.Result{
			Msg:     fmt.Sprintf("%s: здесь ничего нет", actor.Name),
			MsgType: handlers.MsgError,
		}, domain.ErrNothingHere
	}

	item := domain.ShiftItem(ctx.Room.ItemsAt(actor.Pos), actor.Inventory, p.Index)

	logger.Log.WithFields(logrus.Fields{
		"component": "take_handler",
		"actor":     actor.Name,
		"item":      item.Props().Name,
	}).Debug("Item taken")

	return handlers.Info(fmt.Sprintf("%s подбирает предмет: %s", actor.Name, item.Props().Name)), nil
}

// HandleItem - использовать предмет из инвентаря. Номер обязателен и должен существовать.
func HandleItem(ctx handlers.Context, p handlers.IndexArgs) (handlers.Result, error) {
	actor := ctx.Actor
	if !p.Given || p.Index >= actor.Inventory.Len() {
		return handlers.Fail(ctx, domain.ErrNoSuchItem)
	}

	actor.Inventory.At(p.Index).Use(actor)
	return handlers.EmptyResult(), nil
}
