package actions

import (
	"fmt"

	"roguetester/internal/core/types/enums"
	"roguetester/internal/domain"
	"roguetester/internal/engine/handlers"
	"roguetester/internal/systems"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Что говорит заказчик, открывая баг.
var summonTalk = []string{
	"А можно сделать, чтобы кнопка была побольше?",
	"Это не баг, это фича. Но почините",
	"У меня на компьютере не работает!",
	"Срочно, к релизу!",
}

// summon - общий призыв: проверка лимита, клетка рядом, создание и размещение.
// Возвращает nil, если клетка занята.
func summon(ctx handlers.Context, dir domain.Position, kind enums.UnitKind, level int) (*domain.Unit, error) {
	actor := ctx.Actor
	if !actor.CanSummon() {
		return nil, domain.ErrSummonLimit
	}

	pos := actor.Pos.Add(dir)
	if !ctx.Room.Passable(pos) {
		return nil, nil
	}

	unit := ctx.Spawn(kind, actor, level)
	if err := systems.PlaceUnit(unit, ctx.Room, pos); err != nil {
		return nil, err
	}
	actor.AddSummon(unit)

	logger.Log.WithFields(logrus.Fields{
		"component": "summon_handler",
		"master":    actor.Name,
		"unit":      unit.Name,
		"kind":      kind.String(),
		"pos":       pos,
	}).Info("Unit summoned")

	return unit, nil
}

// HandleAuto - поставить турель-автотест. Энергия тратится, когда
// направление понятно, даже если поставить некуда.
func HandleAuto(ctx handlers.Context, p handlers.DirectionArgs) (handlers.Result, error) {
	actor := ctx.Actor
	if actor.Stats.Power < AutoCost {
		return handlers.Fail(ctx, domain.ErrInsufficientPower)
	}
	actor.Stats.Power -= AutoCost

	unit, err := summon(ctx, p.Dir, enums.UnitKindAutoTest, actor.Stats.Level)
	if err != nil {
		return handlers.Fail(ctx, err)
	}
	if unit == nil {
		actor.Say("Я не могу запустить Автотест здесь")
		return handlers.EmptyResult(), nil
	}
	return handlers.Info(fmt.Sprintf("%s запускает Автотест!", actor.Name)), nil
}

// HandleSummon - заказчик открывает новый баг уровня round(level/2).
func HandleSummon(ctx handlers.Context, p handlers.DirectionArgs) (handlers.Result, error) {
	actor := ctx.Actor

	unit, err := summon(ctx, p.Dir, enums.UnitKindOwnedBug, domain.RoundDiv(actor.Stats.Level, 2))
	if err != nil {
		return handlers.Fail(ctx, err)
	}
	if unit == nil {
		actor.Say("Я не могу открыть баг здесь")
		return handlers.EmptyResult(), nil
	}

	actor.Say(summonTalk[ctx.World.Intn(len(summonTalk))])
	return handlers.Info(fmt.Sprintf("%s открывает %s!", actor.Name, unit.Name)), nil
}
