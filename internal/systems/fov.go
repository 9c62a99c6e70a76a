package systems

import (
	"roguetester/internal/domain"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// OpacityFunc - непрозрачна ли клетка (глобальные координаты).
type OpacityFunc func(p domain.Position) bool

// ComputeVisibility считает видимые и затененные клетки вокруг origin.
//
// Четыре квадранта обходятся независимо, в локальной системе (ряд, смещение),
// которая поворачивается в глобальную через domain.Translate. Дальность
// обрезается границами карты отдельно для каждой стороны, поэтому у края
// обзор несимметричен. Клетки дальше radius (по округленному расстоянию)
// не попадают ни в одно множество. Origin виден всегда.
func ComputeVisibility(origin domain.Position, radius, width, height int, opaque OpacityFunc) (visible, shadowed domain.PositionSet) {
	visible = domain.NewPositionSet(origin)
	shadowed = make(domain.PositionSet)

	if radius <= 0 {
		return visible, shadowed
	}

	// Дальность по сторонам: вверх, вправо, вниз, влево
	bounds := [4]int{
		min(origin.Y, radius),
		min(width-origin.X-1, radius),
		min(height-origin.Y-1, radius),
		min(origin.X, radius),
	}
	bound := func(i int) int { return bounds[i%4] }

	center := domain.Position{}
	for quadrant := 0; quadrant < 4; quadrant++ {
		var shadow ShadowLine

		for row := 1; row <= min(bound(quadrant), radius); row++ {
			var rowShadow ShadowLine

			colFrom := max(-bound(quadrant+3), -row)
			colTo := min(bound(quadrant+1), row)
			for col := colFrom; col <= colTo; col++ {
				local := domain.Position{X: row, Y: col}
				if center.Dist(local) > radius {
					continue
				}

				global := domain.Translate(origin, local, quadrant)
				cell := cellInterval(row, col)

				if shadow.Covers(cell) {
					shadowed.Add(global)
				} else {
					visible.Add(global)
				}

				// Непрозрачные клетки ряда дают тень только следующим рядам
				if opaque(global) {
					rowShadow.Append(cell)
				}
			}

			shadow.Merge(&rowShadow)
		}
	}

	// Клетки на диагоналях входят в два соседних квадранта.
	// Если хоть из одного клетка видна - она видна.
	for p := range shadowed {
		if visible.Has(p) {
			delete(shadowed, p)
		}
	}

	return visible, shadowed
}

// ComputeVisibilityFor считает видимость юнита в его текущей комнате.
func ComputeVisibilityFor(u *domain.Unit) (visible, shadowed domain.PositionSet) {
	room := u.Room
	visible, shadowed = ComputeVisibility(u.Pos, u.ViewDist, room.Width, room.Height, room.Opaque)

	logger.Log.WithFields(logrus.Fields{
		"component": "fov_system",
		"unit":      u.Name,
		"pos":       u.Pos,
		"radius":    u.ViewDist,
		"visible":   len(visible),
		"shadowed":  len(shadowed),
	}).Debug("Visibility computed")

	return visible, shadowed
}
