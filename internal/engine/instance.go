package engine

import (
	"context"
	"errors"
	"fmt"

	"roguetester/internal/domain"
	"roguetester/internal/engine/handlers"
	"roguetester/internal/systems"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Instance - симуляция одной комнаты: очередь ходов, объекты и предметы на полу.
// Все инстансы крутит один цикл Service, параллельности нет.
type Instance struct {
	Room  *domain.Room
	World *domain.World

	handlers map[domain.ActionType]handlers.HandlerFunc
	spawn    handlers.SpawnFunc

	// CurrentTick - сколько тиков прокрутила комната.
	CurrentTick int
}

func NewInstance(room *domain.Room, registry map[domain.ActionType]handlers.HandlerFunc, spawn handlers.SpawnFunc) *Instance {
	inst := &Instance{
		Room:     room,
		World:    room.World,
		handlers: registry,
		spawn:    spawn,
	}
	room.OnLog = mirrorLog
	return inst
}

// Tick - один проход комнаты. Сначала ходят юниты из снимка очереди
// (умершие по ходу пропускаются), затем тикают объекты, затем предметы на полу.
// observer - ходил ли в этом тике хотя бы один юнит игрока.
// Ошибка бывает только от контроллера игрока (выход, отмена контекста).
func (i *Instance) Tick(ctx context.Context) (observer bool, err error) {
	i.CurrentTick++

	for _, u := range i.Room.Queue() {
		acted, err := i.turn(ctx, u)
		if err != nil {
			return observer, err
		}
		observer = acted || observer
	}

	// Объекты могут самоуничтожаться, поэтому обходим снимок позиций
	for _, pos := range i.Room.ObjectPositions() {
		if obj := i.Room.ObjectAt(pos); obj != nil {
			obj.Tick()
		}
	}

	for _, pos := range i.Room.FloorPositions() {
		for _, it := range i.Room.FloorItems(pos) {
			it.Tick()
		}
	}

	return observer, nil
}

// turn - ход одного юнита: наблюдение, повышение уровня, действие, тик.
// Возвращает true, если юнитом управляет игрок.
func (i *Instance) turn(ctx context.Context, u *domain.Unit) (bool, error) {
	if u.Dead {
		return false, nil
	}
	isPlayer := u.IsPlayer()

	systems.Observe(u)

	if err := systems.LevelUp(ctx, u, i.World.Rng); err != nil {
		return isPlayer, err
	}

	cmd, err := u.Controller.Decide(ctx, u)
	if err != nil {
		return isPlayer, err
	}
	i.Execute(u, cmd)

	if !u.Dead {
		u.Archetype.Tick(u)
	}
	return isPlayer, nil
}

// Execute находит команду в таблице возможностей актора и выполняет ее хендлер.
// Неизвестная или недоступная команда отклоняется без изменений мира.
func (i *Instance) Execute(actor *domain.Unit, cmd domain.Command) {
	capability, err := actor.Caps.Lookup(cmd.Name, actor)
	if err != nil {
		i.reject(actor, cmd, err)
		return
	}

	handler, ok := i.handlers[capability.Action]
	if !ok {
		i.reject(actor, cmd, fmt.Errorf("%w: no handler for %s", domain.ErrUnknownCommand, capability.Action))
		return
	}

	ctx := handlers.Context{
		Actor: actor,
		Room:  actor.Room,
		World: i.World,
		Spawn: i.spawn,
	}

	result, err := handler(ctx, cmd.Args)

	if result.Msg != "" {
		actor.Log(result.Msg)
	}

	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "scheduler",
			"room":      i.Room.ID,
			"actor":     actor.Name,
			"command":   cmd.String(),
			"action":    capability.Action.String(),
		}).WithError(err).Debug("Action failed")
	}
}

func (i *Instance) reject(actor *domain.Unit, cmd domain.Command, err error) {
	entry := logger.Log.WithFields(logrus.Fields{
		"component": "scheduler",
		"room":      i.Room.ID,
		"actor":     actor.Name,
		"command":   cmd.String(),
	}).WithError(err)

	// Недоступная команда от ИИ - ошибка в таблице возможностей, а не в игре
	if errors.Is(err, domain.ErrUnknownCommand) && !actor.IsPlayer() {
		entry.Warn("AI command rejected")
		return
	}
	entry.Debug("Command rejected")
}
