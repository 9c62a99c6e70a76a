package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Position - координата клетки. Сравнивается по значению, годится как ключ map.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Manhattan - сумма модулей разностей.
func (p Position) Manhattan(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Touch - цель в соседней по стороне клетке (или в той же).
func (p Position) Touch(o Position) bool {
	return p.Manhattan(o) <= 1
}

// Dist - евклидово расстояние, округленное до целого.
// Для разностей в [-distCacheRadius, distCacheRadius) берется из таблицы.
func (p Position) Dist(o Position) int {
	dx, dy := p.X-o.X, p.Y-o.Y
	if dx >= -distCacheRadius && dx < distCacheRadius && dy >= -distCacheRadius && dy < distCacheRadius {
		return distCache[dx+distCacheRadius][dy+distCacheRadius]
	}
	return roundedHypot(dx, dy)
}

// Sign сжимает каждую компоненту до -1, 0 или 1.
func (p Position) Sign() Position {
	return Position{X: sign(p.X), Y: sign(p.Y)}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

const distCacheRadius = 100

var distCache [2 * distCacheRadius][2 * distCacheRadius]int

func init() {
	for dx := -distCacheRadius; dx < distCacheRadius; dx++ {
		for dy := -distCacheRadius; dy < distCacheRadius; dy++ {
			distCache[dx+distCacheRadius][dy+distCacheRadius] = roundedHypot(dx, dy)
		}
	}
}

func roundedHypot(dx, dy int) int {
	return int(math.Round(math.Hypot(float64(dx), float64(dy))))
}

// Translate переводит точку из локальной системы квадранта в глобальную.
// Квадранты: 0 - север, 1 - восток, 2 - юг, 3 - запад.
// В локальной системе X - номер ряда (удаление от origin), Y - смещение в ряду.
func Translate(origin, local Position, quadrant int) Position {
	switch quadrant & 3 {
	case 0:
		return Position{X: origin.X + local.Y, Y: origin.Y - local.X}
	case 1:
		return Position{X: origin.X + local.X, Y: origin.Y + local.Y}
	case 2:
		return Position{X: origin.X - local.Y, Y: origin.Y + local.X}
	default:
		return Position{X: origin.X - local.X, Y: origin.Y - local.Y}
	}
}

// Направления. Порядок Directions важен: в нем обходятся соседи при поиске пути.
var (
	North = Position{X: 0, Y: -1}
	South = Position{X: 0, Y: 1}
	West  = Position{X: -1, Y: 0}
	East  = Position{X: 1, Y: 0}

	Directions = []Position{North, South, West, East}
)

var directionNames = map[string]Position{
	"north": North,
	"south": South,
	"west":  West,
	"east":  East,
}

// ParseDirection принимает только четыре стороны света.
func ParseDirection(s string) (Position, error) {
	if d, ok := directionNames[strings.ToLower(s)]; ok {
		return d, nil
	}
	return Position{}, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// DirectionName - обратное преобразование. Для не-кардинальных смещений пустая строка.
func DirectionName(d Position) string {
	for name, dir := range directionNames {
		if dir == d {
			return name
		}
	}
	return ""
}

// QuadrantOf возвращает номер квадранта для Translate (север 0, восток 1, юг 2, запад 3).
func QuadrantOf(d Position) (int, bool) {
	switch d {
	case North:
		return 0, true
	case East:
		return 1, true
	case South:
		return 2, true
	case West:
		return 3, true
	}
	return 0, false
}

// PositionSet - множество клеток (видимые, затененные, стены в памяти).
type PositionSet map[Position]struct{}

func NewPositionSet(ps ...Position) PositionSet {
	s := make(PositionSet, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

func (s PositionSet) Add(p Position) {
	s[p] = struct{}{}
}

func (s PositionSet) Has(p Position) bool {
	_, ok := s[p]
	return ok
}

// Sorted отдает клетки построчно (y, затем x), чтобы обход был детерминированным.
func (s PositionSet) Sorted() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	SortPositions(out)
	return out
}

// SortPositions сортирует построчно: сначала y, потом x.
func SortPositions(ps []Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Y != ps[j].Y {
			return ps[i].Y < ps[j].Y
		}
		return ps[i].X < ps[j].X
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
