package domain

import (
	"math/rand"
	"testing"

	"roguetester/internal/core/types/enums"
)

// stubObject - простой объект для тестов размещения.
type stubObject struct {
	props ObjectProps
	ticks int
	uses  int
}

func newStubObject(passable, opaque bool) *stubObject {
	return &stubObject{props: ObjectProps{Name: "stub", Passable: passable, Opaque: opaque, Skin: SkinSmoke}}
}

func (o *stubObject) Props() *ObjectProps { return &o.props }
func (o *stubObject) Use(*Unit)           { o.uses++ }
func (o *stubObject) Tick()               { o.ticks++ }

// stubItem - предмет без эффекта.
type stubItem struct {
	props ItemProps
	ticks int
}

func newStubItem(name string) *stubItem {
	return &stubItem{props: ItemProps{Name: name, Skin: SkinItem}}
}

func (i *stubItem) Props() *ItemProps { return &i.props }
func (i *stubItem) Use(*Unit)         {}
func (i *stubItem) Tick()             { i.ticks++ }

func newTestWorld(t *testing.T, rows ...string) (*World, *Room) {
	t.Helper()
	w := NewWorld(rand.New(rand.NewSource(1)))
	room := w.NewRoom(rows, Position{X: 1, Y: 1}, nil)
	return w, room
}

func spawn(t *testing.T, w *World, room *Room, name string, pos Position) *Unit {
	t.Helper()
	u := NewUnit(w.NextUnitID(enums.UnitKindBug), name, enums.UnitKindBug, 0)
	u.Room = room
	u.Pos = pos
	room.Add(u)
	return u
}
