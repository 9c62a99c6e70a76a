package engine

import (
	"fmt"
	"strconv"

	"roguetester/internal/core/types/enums"
	"roguetester/internal/domain"
	"roguetester/internal/objects"
	"roguetester/internal/systems"
	"roguetester/pkg/dungeon"
	"roguetester/pkg/logger"
	"roguetester/pkg/utils"

	"github.com/sirupsen/logrus"
)

// RoomSource - карта комнаты и записи ее населения.
type RoomSource struct {
	Level   *dungeon.Level
	Records []dungeon.Record
}

// Constructor создает сущность по записи файла объектов и ставит ее в комнату.
type Constructor func(f *Factory, room *domain.Room, rec dungeon.Record) error

// constructors - реестр тегов файла объектов.
var constructors = map[string]Constructor{
	dungeon.TagCoffee: placeObject(func(dungeon.Record) domain.Object { return objects.NewCoffeeMachine() }),
	dungeon.TagGame:   placeObject(func(dungeon.Record) domain.Object { return objects.NewGameMachine() }),
	dungeon.TagDoor: placeObject(func(rec dungeon.Record) domain.Object {
		d := objects.NewDoor(rec.Arg(1))
		if name := rec.Arg(0); name != "" {
			d.Props().Name = name
		}
		return d
	}),
	dungeon.TagItem: placeItem(func(_ *domain.World, rec dungeon.Record) domain.Item { return objects.NewItem(rec.Arg(0)) }),
	dungeon.TagFoo:  placeItem(func(*domain.World, dungeon.Record) domain.Item { return objects.NewFooBar() }),
	dungeon.TagBook: placeItem(func(*domain.World, dungeon.Record) domain.Item { return objects.NewBook() }),
	dungeon.TagGrenade: placeItem(func(w *domain.World, _ dungeon.Record) domain.Item {
		return objects.NewTestGrenade(w)
	}),
	dungeon.TagBug:   placeUnit(enums.UnitKindBug),
	dungeon.TagOwner: placeUnit(enums.UnitKindOwner),
}

// Tags - известные теги (для сообщений об ошибках и тестов).
func Tags() []string {
	out := make([]string, 0, len(constructors))
	for tag := range constructors {
		out = append(out, tag)
	}
	return out
}

// BuildWorld создает мир: комнаты в порядке списка, связанные цепочкой,
// и их население. Неизвестный тег или кривой аргумент - ошибка;
// объект, которому нет места, просто не появляется.
func BuildWorld(cfg Config, sources []RoomSource) (*domain.World, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("build world: no rooms")
	}

	seed := utils.ResolveSeed(cfg.Seed)
	w := domain.NewWorld(utils.NewRand(seed))
	w.MaxPathIterations = cfg.MaxPathIterations
	w.LogLimit = cfg.LogLimit

	for _, src := range sources {
		lvl := src.Level
		var leave *domain.Position
		if lvl.Leave != nil {
			leave = &domain.Position{X: lvl.Leave.X, Y: lvl.Leave.Y}
		}
		w.NewRoom(lvl.Rows, domain.Position{X: lvl.Entry.X, Y: lvl.Entry.Y}, leave)
	}
	w.LinkRooms()

	factory := NewFactory(w)
	for i, src := range sources {
		room := w.Rooms[i]
		for _, rec := range src.Records {
			build, ok := constructors[rec.Tag]
			if !ok {
				return nil, fmt.Errorf("room %d: unknown object tag %q", room.ID, rec.Tag)
			}
			if err := build(factory, room, rec); err != nil {
				return nil, fmt.Errorf("room %d: %s: %w", room.ID, rec, err)
			}
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "world_builder",
		"seed":      seed,
		"rooms":     len(w.Rooms),
	}).Info("World built")

	return w, nil
}

func recordPos(rec dungeon.Record) domain.Position {
	return domain.Position{X: rec.X, Y: rec.Y}
}

func placeObject(build func(rec dungeon.Record) domain.Object) Constructor {
	return func(_ *Factory, room *domain.Room, rec dungeon.Record) error {
		if !domain.PlaceObject(build(rec), room, recordPos(rec)) {
			skipped(room, rec)
		}
		return nil
	}
}

func placeItem(build func(w *domain.World, rec dungeon.Record) domain.Item) Constructor {
	return func(_ *Factory, room *domain.Room, rec dungeon.Record) error {
		if !domain.PlaceItem(build(room.World, rec), room, recordPos(rec)) {
			skipped(room, rec)
		}
		return nil
	}
}

// placeUnit - "BUG;x;y;name;level". Пустое имя - имя по умолчанию.
func placeUnit(kind enums.UnitKind) Constructor {
	return func(f *Factory, room *domain.Room, rec dungeon.Record) error {
		level := 0
		if s := rec.Arg(1); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid level %q", s)
			}
			level = n
		}

		u := f.NewUnit(kind, rec.Arg(0), level, nil)
		if err := systems.PlaceUnit(u, room, recordPos(rec)); err != nil {
			skipped(room, rec)
		}
		return nil
	}
}

func skipped(room *domain.Room, rec dungeon.Record) {
	logger.Log.WithFields(logrus.Fields{
		"component": "world_builder",
		"room":      room.ID,
		"record":    rec.String(),
	}).Warn("No place for object, skipped")
}
