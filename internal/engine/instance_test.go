package engine

import (
	"context"
	"testing"

	"roguetester/internal/core/types/enums"
	"roguetester/internal/domain"
	"roguetester/internal/engine/handlers/actions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInstance(room *domain.Room) *Instance {
	f := NewFactory(room.World)
	return NewInstance(room, actions.Registry(), f.Spawn)
}

func TestInstance_DeadUnitSkippedWithinTick(t *testing.T) {
	world, room := openRoom(8, 5)
	f := NewFactory(world)

	victimCtrl := &scriptedController{kind: enums.ControlPassive}
	victim := f.NewUnit(enums.UnitKindBug, "жертва", 0, nil)
	victim.Controller = victimCtrl

	killer := f.NewUnit(enums.UnitKindBug, "убийца", 0, nil)
	killer.Controller = &scriptedController{
		kind: enums.ControlPassive,
		decide: func(u *domain.Unit) domain.Command {
			victim.Die(u)
			return domain.Cmd(domain.CmdWait)
		},
	}

	// Убийца ходит первым, жертва стоит в очереди за ним
	place(t, killer, room, 1, 1)
	place(t, victim, room, 5, 3)

	inst := newTestInstance(room)
	observer, err := inst.Tick(context.Background())
	require.NoError(t, err)

	assert.False(t, observer)
	assert.True(t, victim.Dead)
	assert.Equal(t, 0, victimCtrl.calls, "dead unit must not act")
	assert.Len(t, room.Queue(), 1)
	assert.Equal(t, 1, inst.CurrentTick)
}

func TestInstance_ObserverFlag(t *testing.T) {
	world, room := openRoom(8, 5)
	f := NewFactory(world)

	bug := place(t, f.NewUnit(enums.UnitKindBug, "", 0, nil), room, 6, 3)
	bug.Controller = &scriptedController{kind: enums.ControlPassive}

	inst := newTestInstance(room)
	observer, err := inst.Tick(context.Background())
	require.NoError(t, err)
	assert.False(t, observer, "no player units")

	player := f.NewUnit(enums.UnitKindAdventurer, "Игрок", 0, nil)
	player.Controller = &scriptedController{kind: enums.ControlPlayer}
	place(t, player, room, 1, 1)

	observer, err = inst.Tick(context.Background())
	require.NoError(t, err)
	assert.True(t, observer)
}

func TestInstance_ExecuteMove(t *testing.T) {
	world, room := openRoom(8, 5)
	u := place(t, NewFactory(world).NewUnit(enums.UnitKindBug, "", 0, nil), room, 2, 2)

	inst := newTestInstance(room)
	inst.Execute(u, domain.Cmd(domain.CmdMove, "east"))
	assert.Equal(t, domain.Position{X: 3, Y: 2}, u.Pos)

	// В стену - позиция не меняется
	inst.Execute(u, domain.Cmd(domain.CmdMove, "north"))
	inst.Execute(u, domain.Cmd(domain.CmdMove, "north"))
	assert.Equal(t, domain.Position{X: 3, Y: 1}, u.Pos)
}

func TestInstance_ExecuteRejectsUnknownCommand(t *testing.T) {
	world, room := openRoom(8, 5)
	u := place(t, NewFactory(world).NewUnit(enums.UnitKindBug, "", 0, nil), room, 2, 2)
	room.DrainLog()

	inst := newTestInstance(room)
	inst.Execute(u, domain.Cmd(domain.CmdSummon, "east"))
	inst.Execute(u, domain.Cmd("dance"))

	assert.Equal(t, domain.Position{X: 2, Y: 2}, u.Pos)
	assert.Nil(t, room.UnitAt(domain.Position{X: 3, Y: 2}))
	assert.Zero(t, room.PendingLog())
}

func TestInstance_ExecuteLogsResult(t *testing.T) {
	world, room := openRoom(8, 5)
	u := place(t, NewFactory(world).NewUnit(enums.UnitKindAdventurer, "Вася", 0, nil), room, 2, 2)
	room.DrainLog()

	newTestInstance(room).Execute(u, domain.Cmd(domain.CmdWait))

	logs := room.DrainLog()
	require.Len(t, logs, 1)
	assert.Equal(t, "Вася прокрастинирует", logs[0].Message)
	assert.Equal(t, u.Pos, logs[0].Pos)
}

func TestInstance_ObjectsTickAfterUnits(t *testing.T) {
	world, room := openRoom(8, 5)
	f := NewFactory(world)

	var order []string
	u := place(t, f.NewUnit(enums.UnitKindBug, "", 0, nil), room, 1, 1)
	u.Controller = &scriptedController{
		kind: enums.ControlPassive,
		decide: func(*domain.Unit) domain.Command {
			order = append(order, "unit")
			return domain.Cmd(domain.CmdIdle)
		},
	}
	obj := &tickingObject{onTick: func() { order = append(order, "object") }}
	require.True(t, domain.PlaceObject(obj, room, domain.Position{X: 4, Y: 2}))

	_, err := newTestInstance(room).Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"unit", "object"}, order)
}

func TestInstance_AutoTestExpires(t *testing.T) {
	world, room := openRoom(8, 5)
	f := NewFactory(world)

	master := f.NewUnit(enums.UnitKindAdventurer, "Вася", 0, nil)
	turret := f.Spawn(enums.UnitKindAutoTest, master, 0)
	place(t, turret, room, 3, 2)

	require.Equal(t, 2, turret.Lifetime)

	inst := newTestInstance(room)
	_, err := inst.Tick(context.Background())
	require.NoError(t, err)
	assert.False(t, turret.Dead)

	_, err = inst.Tick(context.Background())
	require.NoError(t, err)
	assert.True(t, turret.Dead)
	assert.Empty(t, room.Queue())
}

type tickingObject struct {
	props  domain.ObjectProps
	onTick func()
}

func (o *tickingObject) Props() *domain.ObjectProps { return &o.props }
func (o *tickingObject) Use(*domain.Unit)           {}
func (o *tickingObject) Tick()                      { o.onTick() }
