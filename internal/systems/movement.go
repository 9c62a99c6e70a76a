package systems

import (
	"fmt"

	"roguetester/internal/domain"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// PlaceUnit ставит юнита в клетку pos комнаты room: при создании и при
// переходе между комнатами. Если клетку занимает другой юнит, тот погибает
// (зачет ставящемуся). Стена или выход за границы - ошибка, юнит остается где был.
func PlaceUnit(u *domain.Unit, room *domain.Room, pos domain.Position) error {
	if !room.InBounds(pos) {
		return fmt.Errorf("place %s at %s: %w", u.Name, pos, domain.ErrOutOfBounds)
	}

	if !room.Passable(pos) {
		occupant := room.UnitAt(pos)
		if occupant == nil {
			return fmt.Errorf("place %s at %s: %w", u.Name, pos, domain.ErrImpassable)
		}
		if occupant != u {
			logger.Log.WithFields(logrus.Fields{
				"component": "movement",
				"unit":      u.Name,
				"victim":    occupant.Name,
				"room":      room.ID,
				"pos":       pos,
			}).Info("Telefrag")
			occupant.Die(u)
		}
	}

	if u.Room != nil {
		u.Room.Remove(u)
	}
	u.Room = room
	u.Pos = pos
	room.Add(u)
	Observe(u)
	return nil
}

// Step - шаг в соседнюю клетку. Ошибка, если клетка непроходима.
func Step(u *domain.Unit, dir domain.Position) error {
	return u.Room.Move(u, u.Pos.Add(dir))
}
