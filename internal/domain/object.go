package domain

import (
	"roguetester/internal/core/types"
	"roguetester/internal/core/types/enums"
)

// Object - размещаемый неживой объект (дверь, дым, автоматы).
// В клетке не больше одного объекта.
type Object interface {
	Props() *ObjectProps
	Use(user *Unit)
	Tick()
}

// ObjectProps - общие поля всех объектов.
type ObjectProps struct {
	Kind     enums.ObjectKind
	Name     string
	Skin     types.Glyph
	Opaque   bool
	Passable bool
	IsDoor   bool
	Closed   bool // имеет смысл только для дверей

	Room *Room
	Pos  Position
}

func (p *ObjectProps) Placed() bool {
	return p.Room != nil
}

// Log пишет в лог комнаты от имени объекта.
func (p *ObjectProps) Log(msg string) {
	if p.Room != nil {
		p.Room.LogAt(p.Pos, msg)
	}
}

// PlaceObject ставит объект в клетку. Клетка должна быть проходимой
// (или занятой юнитом, если объект сам проходим) и без другого объекта.
// Иначе объект уничтожается, а вызов возвращает false.
func PlaceObject(o Object, room *Room, pos Position) bool {
	props := o.Props()
	fits := room.Passable(pos) || (props.Passable && room.InBounds(pos) && !room.IsWall(pos) && room.UnitAt(pos) != nil)
	if !fits || room.ObjectAt(pos) != nil {
		DestroyObject(o)
		return false
	}
	if props.Room != nil {
		props.Room.setObject(props.Pos, nil)
	}
	room.setObject(pos, o)
	props.Room = room
	props.Pos = pos
	return true
}

// DestroyObject убирает объект с карты.
func DestroyObject(o Object) {
	props := o.Props()
	if props.Room == nil {
		return
	}
	if props.Room.ObjectAt(props.Pos) == o {
		props.Room.setObject(props.Pos, nil)
	}
	props.Room = nil
}

// Item - предмет: лежит на полу или в инвентаре юнита.
type Item interface {
	Props() *ItemProps
	Use(user *Unit)
	Tick()
}

// ItemProps - общие поля всех предметов.
type ItemProps struct {
	Kind      enums.ObjectKind
	Name      string
	Skin      types.Glyph
	Container *Inventory
}

// Where - комната и клетка предмета (через контейнер).
func (p *ItemProps) Where() (*Room, Position, bool) {
	if p.Container == nil {
		return nil, Position{}, false
	}
	room := p.Container.Room()
	if room == nil {
		return nil, Position{}, false
	}
	return room, p.Container.Position(), true
}

// Log пишет в лог комнаты, где сейчас находится предмет.
func (p *ItemProps) Log(msg string, global bool) {
	room, pos, ok := p.Where()
	if !ok {
		return
	}
	room.Log(LogRecord{Pos: pos, HasPos: true, Global: global, Message: msg})
}

// PlaceItem кладет предмет на пол. В стену (и за карту) - предмет уничтожается.
func PlaceItem(it Item, room *Room, pos Position) bool {
	if !room.InBounds(pos) || room.IsWall(pos) {
		DestroyItem(it)
		return false
	}
	if c := it.Props().Container; c != nil {
		c.remove(it)
	}
	room.ItemsAt(pos).append(it)
	return true
}

// DestroyItem вынимает предмет из контейнера.
func DestroyItem(it Item) {
	if c := it.Props().Container; c != nil {
		c.remove(it)
	}
}
