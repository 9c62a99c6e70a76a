package actions

import (
	"fmt"

	"roguetester/internal/domain"
	"roguetester/internal/engine/handlers"
	"roguetester/internal/systems"
)

// HandleAttack - удар по соседней клетке. Бросок делается до проверки цели.
func HandleAttack(ctx handlers.Context, p handlers.DirectionArgs) (handlers.Result, error) {
	actor := ctx.Actor
	roll := systems.RollAttack(actor, ctx.World.Rng)

	target := ctx.Room.UnitAt(actor.Pos.Add(p.Dir))
	if target == nil {
		return handlers.Result{
			Msg:     fmt.Sprintf("%s: тут никого нет!", actor.Name),
			MsgType: handlers.MsgError,
		}, domain.ErrNothingHere
	}

	systems.ReceiveAttack(target, roll)
	return handlers.Result{MsgType: handlers.MsgCombat}, nil
}

// Параметры очереди автотеста.
const (
	BurstShots = 3
	BurstRange = 4
)

// HandleBurst - очередь турели: каждый выстрел летит до BurstRange клеток
// и попадает в первого встречного. Бросок атаки - хозяина, зачет тоже ему.
func HandleBurst(ctx handlers.Context, p handlers.DirectionArgs) (handlers.Result, error) {
	actor := ctx.Actor
	shooter := actor
	if actor.Master != nil {
		shooter = actor.Master
	}

	actor.Log(fmt.Sprintf("Тра-та-та! %s тестирует очередью!", actor.Name))
	for shot := 0; shot < BurstShots; shot++ {
		pos := actor.Pos
		for step := 0; step < BurstRange; step++ {
			pos = pos.Add(p.Dir)
			if unit := ctx.Room.UnitAt(pos); unit != nil {
				systems.ReceiveAttack(unit, systems.RollAttack(shooter, ctx.World.Rng))
				break
			}
		}
	}
	return handlers.Result{MsgType: handlers.MsgCombat}, nil
}
