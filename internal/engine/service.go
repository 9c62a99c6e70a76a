package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"roguetester/internal/domain"
	"roguetester/internal/engine/handlers/actions"
	"roguetester/internal/systems"
	"roguetester/pkg/api"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Service - вся симуляция: мир, фабрика юнитов и инстансы комнат.
// Run крутит комнаты по кругу в одной горутине.
type Service struct {
	World     *domain.World
	Factory   *Factory
	Instances []*Instance

	tick  int
	rooms atomic.Pointer[[]api.RoomSummary]
}

// NewService создает по инстансу на каждую комнату мира.
func NewService(world *domain.World) *Service {
	s := &Service{
		World:   world,
		Factory: NewFactory(world),
	}

	registry := actions.Registry()
	for _, room := range world.Rooms {
		s.Instances = append(s.Instances, NewInstance(room, registry, s.Factory.Spawn))
	}
	s.publishRooms()
	return s
}

// CurrentTick - номер текущего круга симуляции.
func (s *Service) CurrentTick() int {
	return s.tick
}

// AddHero ставит героя игрока на точку входа первой комнаты.
func (s *Service) AddHero(name string, level int, ctrl domain.Controller) (*domain.Unit, error) {
	if len(s.World.Rooms) == 0 {
		return nil, errors.New("world has no rooms")
	}
	room := s.World.Rooms[0]

	hero := s.Factory.NewHero(name, level, ctrl)
	if err := systems.PlaceUnit(hero, room, room.Entry); err != nil {
		return nil, fmt.Errorf("place hero: %w", err)
	}
	hero.Log("Введи команду \"help\" (без кавычек) для получения справки по игре")

	logger.Log.WithFields(logrus.Fields{
		"component": "scheduler",
		"hero":      hero.Name,
		"unit_id":   hero.ID,
		"room":      room.ID,
		"pos":       hero.Pos,
	}).Info("Hero joined")

	s.publishRooms()
	return hero, nil
}

// Run - главный цикл. Каждый круг тикает все комнаты по порядку.
// Заканчивается, когда ни в одной комнате не походил игрок (nil),
// когда игрок вышел (domain.ErrQuit) или по отмене контекста.
func (s *Service) Run(ctx context.Context) error {
	logger.Log.WithFields(logrus.Fields{
		"component": "scheduler",
		"rooms":     len(s.Instances),
	}).Info("Simulation loop started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.tick++

		observer := false
		for _, inst := range s.Instances {
			acted, err := inst.Tick(ctx)
			s.publishRooms()
			if err != nil {
				if errors.Is(err, domain.ErrQuit) {
					logger.Log.WithField("component", "scheduler").Info("Player quit")
				}
				return err
			}
			observer = acted || observer
		}

		if !observer {
			logger.Log.WithFields(logrus.Fields{
				"component": "scheduler",
				"tick":      s.tick,
			}).Info("Здесь больше не осталось игроков. Зачем существовать Вселенной, если некому её увидеть?")
			return nil
		}
	}
}

// RoomSummaries - последний опубликованный циклом снимок комнат.
// Безопасно вызывать из любых горутин.
func (s *Service) RoomSummaries() []api.RoomSummary {
	if p := s.rooms.Load(); p != nil {
		return *p
	}
	return nil
}

func (s *Service) publishRooms() {
	out := make([]api.RoomSummary, 0, len(s.Instances))
	for _, inst := range s.Instances {
		room := inst.Room
		summary := api.RoomSummary{
			ID:      room.ID,
			Width:   room.Width,
			Height:  room.Height,
			Units:   []string{},
			Objects: len(room.ObjectPositions()),
			Tick:    inst.CurrentTick,
		}
		for _, u := range room.Queue() {
			summary.Units = append(summary.Units, u.Name)
		}
		for _, pos := range room.FloorPositions() {
			summary.Items += len(room.FloorItems(pos))
		}
		out = append(out, summary)
	}
	s.rooms.Store(&out)
}
