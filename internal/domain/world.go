package domain

import (
	"roguetester/internal/core/types"
	"roguetester/internal/core/types/enums"
)

// Roller - источник случайных чисел. *rand.Rand подходит как есть,
// в тестах подставляется заранее заданная последовательность.
type Roller interface {
	// Intn возвращает число из [0, n).
	Intn(n int) int
}

// Начальные значения счетчиков симуляции.
const (
	FirstBugNumber  = 1337
	grenadeBoxTitle = "Коробка"
)

// World - контекст симуляции: комнаты, общий генератор случайных чисел,
// счетчики имен/идентификаторов и одноразовые флаги.
// Создается один раз при старте и передается явно.
type World struct {
	Rooms []*Room
	Rng   Roller

	// MaxPathIterations ограничивает поиск пути. 0 - без ограничения.
	MaxPathIterations int
	// LogLimit - сколько записей держит очередь лога комнаты. 0 - без ограничения.
	LogLimit int

	nextUnitSeq uint32
	nextBugNum  int

	// Одноразовые флаги гранаты: первая граната комментирует взрыв,
	// после этого все коробки знают, что они бомбы.
	GrenadeExploded bool
	GrenadeTitle    string
}

func NewWorld(rng Roller) *World {
	return &World{
		Rng:          rng,
		nextBugNum:   FirstBugNumber,
		GrenadeTitle: grenadeBoxTitle,
	}
}

// NewRoom создает комнату, выдает ей id и регистрирует в мире.
// Связи prev/next проставляет LinkRooms.
func (w *World) NewRoom(tiles []string, entry Position, leave *Position) *Room {
	room := newRoom(len(w.Rooms), tiles, entry, leave)
	room.World = w
	room.LogLimit = w.LogLimit
	w.Rooms = append(w.Rooms, room)
	return room
}

// LinkRooms связывает комнаты в цепочку в порядке создания.
func (w *World) LinkRooms() {
	for i := 0; i+1 < len(w.Rooms); i++ {
		w.Rooms[i].Next = w.Rooms[i+1]
		w.Rooms[i+1].Prev = w.Rooms[i]
	}
}

// NextUnitID выдает следующий идентификатор юнита.
func (w *World) NextUnitID(kind enums.UnitKind) types.EntityID {
	w.nextUnitSeq++
	return types.PackEntityID(uint8(kind), w.nextUnitSeq)
}

// NextBugNumber - сквозной счетчик номеров багов (DEV-1337, GAME-1338, ...)
func (w *World) NextBugNumber() int {
	n := w.nextBugNum
	w.nextBugNum++
	return n
}

// Intn - равномерно из [0, n).
func (w *World) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return w.Rng.Intn(n)
}

// Roll бросает кубики count x d(sides).
func (w *World) Roll(d Dice) int {
	return d.Roll(w.Rng)
}
