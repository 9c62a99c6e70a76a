package systems

import (
	"roguetester/internal/domain"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Observe пересчитывает видимость юнита и обновляет его память.
// Вызывается в начале каждого хода и после перемещения между комнатами.
func Observe(u *domain.Unit) {
	if u.Room == nil {
		return
	}
	u.Visible, u.Shadowed = ComputeVisibilityFor(u)

	if !u.Memory.Persistent() {
		return
	}
	rec := u.Memory.Recall(u.Room.ID)
	Memorize(rec, u.Room, u.Visible)
	Memorize(rec, u.Room, u.Shadowed)

	logger.Log.WithFields(logrus.Fields{
		"component": "memory_system",
		"unit":      u.Name,
		"room":      u.Room.ID,
		"walls":     len(rec.Walls),
		"units":     len(rec.Units),
		"objects":   len(rec.Objects),
	}).Debug("Memory updated")
}

// Memorize переписывает воспоминание по клеткам cells из текущего состояния комнаты.
// Записи не сливаются: каждая клетка перезаписывается целиком, а отсутствие
// факта (не стена, нет юнита, нет объекта) удаляет запись.
func Memorize(rec *domain.Recollection, room *domain.Room, cells domain.PositionSet) {
	for p := range cells {
		if room.IsWall(p) {
			rec.Walls.Add(p)
		} else {
			delete(rec.Walls, p)
		}

		if obj := room.ObjectAt(p); obj != nil {
			rec.Objects[p] = domain.SnapshotObject(obj)
		} else {
			delete(rec.Objects, p)
		}

		if unit := room.UnitAt(p); unit != nil {
			rec.Units[p] = domain.SnapshotUnit(unit)
		} else {
			delete(rec.Units, p)
		}
	}
}

// Recall - что юнит знает о своей текущей комнате.
func Recall(u *domain.Unit) *domain.Recollection {
	if u.Room == nil {
		return domain.NewRecollection()
	}
	return u.Memory.Recall(u.Room.ID)
}
