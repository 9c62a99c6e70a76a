package domain

import (
	"roguetester/internal/core/types"
	"roguetester/internal/core/types/enums"
)

// UnitSnapshot - застывшее воспоминание о юните. Не ссылка на живого юнита:
// по нему нельзя узнать, где юнит сейчас.
type UnitSnapshot struct {
	Pos     Position
	Name    string
	Faction enums.Faction
	Level   int
	Skin    types.Glyph
}

func SnapshotUnit(u *Unit) UnitSnapshot {
	return UnitSnapshot{
		Pos:     u.Pos,
		Name:    u.Name,
		Faction: u.Faction,
		Level:   u.Stats.Level,
		Skin:    u.Skin,
	}
}

// ObjectSnapshot - воспоминание об объекте.
type ObjectSnapshot struct {
	Kind enums.ObjectKind
	Name string
	Skin types.Glyph
}

func SnapshotObject(o Object) ObjectSnapshot {
	p := o.Props()
	return ObjectSnapshot{Kind: p.Kind, Name: p.Name, Skin: p.Skin}
}

// Recollection - память об одной комнате. Хранятся только "истинные" факты:
// ложный факт удаляет запись.
type Recollection struct {
	Walls   PositionSet
	Units   map[Position]UnitSnapshot
	Objects map[Position]ObjectSnapshot
}

func NewRecollection() *Recollection {
	return &Recollection{
		Walls:   make(PositionSet),
		Units:   make(map[Position]UnitSnapshot),
		Objects: make(map[Position]ObjectSnapshot),
	}
}

// Memory - память юнита по id комнат.
// Забывчивая память (баги) всегда отдает пустое воспоминание.
type Memory struct {
	persistent bool
	rooms      map[int]*Recollection
}

// NewMemory - злопамятная человеческая память.
func NewMemory() *Memory {
	return &Memory{persistent: true, rooms: make(map[int]*Recollection)}
}

// NewForgetfulMemory - память бага: чего не видит, того не существует.
func NewForgetfulMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Persistent() bool {
	return m != nil && m.persistent
}

// Recall возвращает воспоминание о комнате, создавая его при первом обращении.
func (m *Memory) Recall(roomID int) *Recollection {
	if !m.Persistent() {
		return NewRecollection()
	}
	rec, ok := m.rooms[roomID]
	if !ok {
		rec = NewRecollection()
		m.rooms[roomID] = rec
	}
	return rec
}

// Known - есть ли в памяти хоть что-то об этой комнате.
func (m *Memory) Known(roomID int) bool {
	if !m.Persistent() {
		return false
	}
	_, ok := m.rooms[roomID]
	return ok
}
