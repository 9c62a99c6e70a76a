package actions

import (
	"fmt"

	"roguetester/internal/domain"
	"roguetester/internal/engine/handlers"
	"roguetester/internal/systems"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleEnter - переход между комнатами: с '>' на вход следующей комнаты,
// с '<' на выход предыдущей. Занятая клетка назначения освобождается телефрагом.
func HandleEnter(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.Actor
	from := ctx.Room

	var (
		target *domain.Room
		pos    domain.Position
		msg    string
	)
	switch tile := from.Tile(actor.Pos); {
	case tile == domain.TileDown && from.Next != nil:
		target, pos = from.Next, from.Next.Entry
		msg = fmt.Sprintf("%s спускается глубже...", actor.Name)
	case tile == domain.TileUp && from.Prev != nil && from.Prev.HasLeave:
		target, pos = from.Prev, from.Prev.Leave
		msg = fmt.Sprintf("%s поднимается наверх...", actor.Name)
	default:
		return handlers.Result{
			Msg:     fmt.Sprintf("%s: тут ничего нет.", actor.Name),
			MsgType: handlers.MsgError,
		}, domain.ErrNothingHere
	}

	// Прощание пишем в старую комнату, пока актор еще там
	actor.Log(msg)
	if err := systems.PlaceUnit(actor, target, pos); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "enter_handler",
			"actor":     actor.Name,
			"from":      from.ID,
			"to":        target.ID,
		}).WithError(err).Warn("Room transition failed")
		return handlers.Fail(ctx, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "enter_handler",
		"actor":     actor.Name,
		"from":      from.ID,
		"to":        target.ID,
		"pos":       pos,
	}).Info("Room transition")

	return handlers.EmptyResult(), nil
}
