package systems

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"roguetester/internal/core/types/enums"
	"roguetester/internal/domain"

	"github.com/stretchr/testify/require"
)

// scriptedRoller отдает заранее заданные значения по кругу.
type scriptedRoller struct {
	values []int
	i      int
}

func (r *scriptedRoller) Intn(n int) int {
	v := r.values[r.i%len(r.values)]
	r.i++
	if v >= n {
		v = n - 1
	}
	return v
}

type stubDoor struct {
	props domain.ObjectProps
}

func newStubDoor() *stubDoor {
	return &stubDoor{props: domain.ObjectProps{
		Kind:   enums.ObjectKindDoor,
		Name:   "Дверь",
		Skin:   domain.SkinDoorClosed,
		Opaque: true,
		IsDoor: true,
		Closed: true,
	}}
}

func (d *stubDoor) Props() *domain.ObjectProps { return &d.props }
func (d *stubDoor) Use(*domain.Unit)           {}
func (d *stubDoor) Tick()                      {}

type stubItem struct {
	props domain.ItemProps
}

func (i *stubItem) Props() *domain.ItemProps { return &i.props }
func (i *stubItem) Use(*domain.Unit)         {}
func (i *stubItem) Tick()                    {}

// stubChooser - контроллер игрока с заготовленными ответами на левелап.
type stubChooser struct {
	answers []domain.Stat
	asked   int
}

func (c *stubChooser) Kind() enums.ControlKind { return enums.ControlPlayer }

func (c *stubChooser) Decide(context.Context, *domain.Unit) (domain.Command, error) {
	return domain.Cmd(domain.CmdWait), nil
}

func (c *stubChooser) ChooseStat(context.Context, *domain.Unit) (domain.Stat, error) {
	st := c.answers[c.asked]
	c.asked++
	return st, nil
}

func openRows(w, h int) []string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(".", w)
	}
	return rows
}

func newTestRoom(t *testing.T, rows ...string) (*domain.World, *domain.Room) {
	t.Helper()
	w := domain.NewWorld(rand.New(rand.NewSource(1)))
	return w, w.NewRoom(rows, domain.Position{}, nil)
}

func spawnUnit(t *testing.T, room *domain.Room, name string, kind enums.UnitKind, faction enums.Faction, pos domain.Position) *domain.Unit {
	t.Helper()
	u := domain.NewUnit(room.World.NextUnitID(kind), name, kind, 0)
	u.Faction = faction
	require.NoError(t, PlaceUnit(u, room, pos))
	return u
}

func tester(t *testing.T, room *domain.Room, name string, pos domain.Position) *domain.Unit {
	t.Helper()
	u := spawnUnit(t, room, name, enums.UnitKindAdventurer, enums.FactionTesters, pos)
	u.Archetype = domain.Adventurer{}
	u.Memory = domain.NewMemory()
	return u
}

func bug(t *testing.T, room *domain.Room, name string, pos domain.Position) *domain.Unit {
	t.Helper()
	u := spawnUnit(t, room, name, enums.UnitKindBug, enums.FactionBugs, pos)
	u.Archetype = domain.Bug{}
	return u
}

func drainMessages(room *domain.Room) []string {
	var out []string
	for _, rec := range room.DrainLog() {
		out = append(out, rec.Message)
	}
	return out
}
