package actions

import (
	"math/rand"
	"os"
	"strings"
	"testing"

	"roguetester/internal/core/types/enums"
	"roguetester/internal/domain"
	"roguetester/internal/engine/handlers"
	"roguetester/internal/objects"
	"roguetester/internal/systems"
	"roguetester/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// fixture - комната 8x5 со стеной по краю и героем в (2,2).
type fixture struct {
	world *domain.World
	room  *domain.Room
	hero  *domain.Unit
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rows := []string{
		"########",
		"#......#",
		"#......#",
		"#......#",
		"########",
	}
	world := domain.NewWorld(rand.New(rand.NewSource(1)))
	room := world.NewRoom(rows, domain.Position{X: 1, Y: 1}, nil)
	world.LinkRooms()

	f := &fixture{world: world, room: room}
	f.hero = f.spawn(t, "Вася", enums.UnitKindAdventurer, 2, 2)
	f.hero.Archetype = domain.Adventurer{}
	return f
}

func (f *fixture) spawn(t *testing.T, name string, kind enums.UnitKind, x, y int) *domain.Unit {
	t.Helper()
	u := domain.NewUnit(f.world.NextUnitID(kind), name, kind, 0)
	require.NoError(t, systems.PlaceUnit(u, f.room, domain.Position{X: x, Y: y}))
	return u
}

func (f *fixture) ctx() handlers.Context {
	return handlers.Context{
		Actor: f.hero,
		Room:  f.hero.Room,
		World: f.world,
		Spawn: func(kind enums.UnitKind, master *domain.Unit, level int) *domain.Unit {
			u := domain.NewUnit(f.world.NextUnitID(kind), "Автотест", kind, level)
			u.Master = master
			return u
		},
	}
}

func (f *fixture) run(t *testing.T, action domain.ActionType, args ...string) (handlers.Result, error) {
	t.Helper()
	h, ok := Registry()[action]
	require.True(t, ok, "no handler for %v", action)
	return h(f.ctx(), args)
}

func drained(room *domain.Room) []string {
	var out []string
	for _, rec := range room.DrainLog() {
		out = append(out, rec.Message)
	}
	return out
}

func countContaining(lines []string, sub string) int {
	n := 0
	for _, l := range lines {
		if strings.Contains(l, sub) {
			n++
		}
	}
	return n
}

func TestMove(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, domain.ActionMove, "east")
	require.NoError(t, err)
	assert.Equal(t, domain.Position{X: 3, Y: 2}, f.hero.Pos)

	f.spawn(t, "DEV-1337", enums.UnitKindBug, 4, 2)
	res, err := f.run(t, domain.ActionMove, "east")
	assert.Error(t, err)
	assert.Equal(t, "Вася не может идти туда", res.Msg)
	assert.Equal(t, domain.Position{X: 3, Y: 2}, f.hero.Pos)

	res, err = f.run(t, domain.ActionMove, "up")
	assert.ErrorIs(t, err, domain.ErrInvalidDirection)
	assert.Equal(t, "Вася: непонятное направление", res.Msg)
}

func TestWaitVariants(t *testing.T) {
	f := newFixture(t)

	res, err := f.run(t, domain.ActionWait)
	require.NoError(t, err)
	assert.Equal(t, "Вася стоит на месте.", res.Msg)

	res, err = f.run(t, domain.ActionProcrastinate, "лишний", "аргумент")
	require.NoError(t, err)
	assert.Equal(t, "Вася прокрастинирует", res.Msg)

	res, err = f.run(t, domain.ActionIdle)
	require.NoError(t, err)
	assert.Empty(t, res.Msg)
}

func TestAttack(t *testing.T) {
	f := newFixture(t)

	res, err := f.run(t, domain.ActionAttack, "north")
	assert.ErrorIs(t, err, domain.ErrNothingHere)
	assert.Equal(t, handlers.MsgError, res.MsgType)

	bug := f.spawn(t, "DEV-1337", enums.UnitKindBug, 3, 2)
	bug.Stats.Health, bug.Stats.HealthMax = 1000, 1000
	drained(f.room)

	res, err = f.run(t, domain.ActionAttack, "east")
	require.NoError(t, err)
	assert.Equal(t, handlers.MsgCombat, res.MsgType)
	assert.Equal(t, 1, countContaining(drained(f.room), "Атака Вася vs. DEV-1337"))
}

func TestBurst_UsesMasterRoll(t *testing.T) {
	f := newFixture(t)
	turret := f.spawn(t, "Автотест", enums.UnitKindAutoTest, 1, 3)
	turret.Master = f.hero
	bug := f.spawn(t, "DEV-1337", enums.UnitKindBug, 5, 3)
	bug.Stats.Health, bug.Stats.HealthMax = 1000, 1000
	drained(f.room)

	ctx := f.ctx()
	ctx.Actor = turret
	_, err := Registry()[domain.ActionBurst](ctx, []string{"east"})
	require.NoError(t, err)

	logs := drained(f.room)
	assert.Equal(t, BurstShots, countContaining(logs, "Атака Вася vs. DEV-1337"))
	assert.Equal(t, 1, countContaining(logs, "Тра-та-та!"))
}

func TestBurst_OutOfRange(t *testing.T) {
	f := newFixture(t)
	turret := f.spawn(t, "Автотест", enums.UnitKindAutoTest, 1, 1)
	f.spawn(t, "DEV-1337", enums.UnitKindBug, 6, 1)
	drained(f.room)

	ctx := f.ctx()
	ctx.Actor = turret
	_, err := Registry()[domain.ActionBurst](ctx, []string{"east"})
	require.NoError(t, err)
	assert.Zero(t, countContaining(drained(f.room), "Атака"))
}

func TestTakeDropItem(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, domain.ActionTake)
	assert.ErrorIs(t, err, domain.ErrNothingHere)
	_, err = f.run(t, domain.ActionDrop)
	assert.ErrorIs(t, err, domain.ErrNoSuchItem)

	require.True(t, domain.PlaceItem(objects.NewItem("Ключ"), f.room, f.hero.Pos))
	require.True(t, domain.PlaceItem(objects.NewBook(), f.room, f.hero.Pos))

	res, err := f.run(t, domain.ActionTake, "0")
	require.NoError(t, err)
	assert.Equal(t, "Вася подбирает предмет: Ключ", res.Msg)

	// Без номера берется последний
	res, err = f.run(t, domain.ActionTake)
	require.NoError(t, err)
	assert.Equal(t, "Вася подбирает предмет: Книга", res.Msg)
	assert.Equal(t, 2, f.hero.Inventory.Len())
	assert.Empty(t, f.room.FloorItems(f.hero.Pos))

	res, err = f.run(t, domain.ActionDrop, "0")
	require.NoError(t, err)
	assert.Equal(t, "Вася выкидывает предмет: Ключ", res.Msg)
	assert.Len(t, f.room.FloorItems(f.hero.Pos), 1)

	// item требует существующий номер
	_, err = f.run(t, domain.ActionItem)
	assert.ErrorIs(t, err, domain.ErrNoSuchItem)
	_, err = f.run(t, domain.ActionItem, "5")
	assert.ErrorIs(t, err, domain.ErrNoSuchItem)

	f.hero.Stats.Health = 4
	_, err = f.run(t, domain.ActionItem, "0")
	require.NoError(t, err)
	assert.Equal(t, 9, f.hero.Stats.Health)
	assert.Zero(t, f.hero.Inventory.Len(), "book is consumed")
}

func TestUseDoor(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, domain.ActionUse, "south")
	assert.ErrorIs(t, err, domain.ErrNothingHere)

	door := objects.NewDoor("")
	require.True(t, domain.PlaceObject(door, f.room, domain.Position{X: 2, Y: 3}))
	require.False(t, f.room.Passable(domain.Position{X: 2, Y: 3}))

	_, err = f.run(t, domain.ActionUse, "south")
	require.NoError(t, err)
	assert.True(t, f.room.Passable(domain.Position{X: 2, Y: 3}))
}

func TestSay(t *testing.T) {
	f := newFixture(t)

	res, err := f.run(t, domain.ActionSay, "привет,", "мир")
	require.NoError(t, err)
	assert.Equal(t, `Вася: "привет, мир"`, res.Msg)
	assert.Equal(t, handlers.MsgSpeech, res.MsgType)

	_, err = f.run(t, domain.ActionSay, strings.Repeat("а", handlers.MaxSayLength+1))
	assert.Error(t, err)
}

func TestSmoke(t *testing.T) {
	f := newFixture(t)
	f.hero.Stats.Power = SmokeCost

	res, err := f.run(t, domain.ActionSmoke, "east")
	require.NoError(t, err)
	assert.Equal(t, "Вася ставит смоук-тесты (3)", res.Msg)
	assert.Zero(t, f.hero.Stats.Power)

	for _, p := range []domain.Position{{X: 3, Y: 2}, {X: 3, Y: 1}, {X: 3, Y: 3}} {
		smoke, ok := f.room.ObjectAt(p).(*objects.Smoke)
		require.True(t, ok, "smoke at %v", p)
		assert.Equal(t, 3, smoke.Lifetime)
	}

	_, err = f.run(t, domain.ActionSmoke, "east")
	assert.ErrorIs(t, err, domain.ErrInsufficientPower)
}

func TestAuto(t *testing.T) {
	f := newFixture(t)
	f.hero.Stats.Power = 2 * AutoCost

	res, err := f.run(t, domain.ActionAuto, "west")
	require.NoError(t, err)
	assert.Equal(t, "Вася запускает Автотест!", res.Msg)
	require.Len(t, f.hero.Summons, 1)
	turret := f.hero.Summons[0]
	assert.Equal(t, domain.Position{X: 1, Y: 2}, turret.Pos)
	assert.Same(t, f.hero, turret.Master)

	// Второй автотест не положен
	_, err = f.run(t, domain.ActionAuto, "east")
	assert.ErrorIs(t, err, domain.ErrSummonLimit)
	assert.Zero(t, f.hero.Stats.Power)
}

func TestAuto_BlockedCellSpendsPower(t *testing.T) {
	f := newFixture(t)
	f.hero.Stats.Power = AutoCost
	f.spawn(t, "DEV-1337", enums.UnitKindBug, 2, 1)

	res, err := f.run(t, domain.ActionAuto, "north")
	require.NoError(t, err)
	assert.Empty(t, res.Msg)
	assert.Empty(t, f.hero.Summons)
	assert.Zero(t, f.hero.Stats.Power)
	assert.Equal(t, 1, countContaining(drained(f.room), "Я не могу запустить Автотест здесь"))
}

func TestSummon(t *testing.T) {
	f := newFixture(t)
	owner := f.spawn(t, "Заказчик", enums.UnitKindOwner, 5, 2)
	owner.Archetype = domain.Owner{}
	owner.Stats.Level = 3

	ctx := f.ctx()
	ctx.Actor = owner
	summon := Registry()[domain.ActionSummon]

	res, err := summon(ctx, []string{"south"})
	require.NoError(t, err)
	require.Len(t, owner.Summons, 1)
	assert.Equal(t, "Заказчик открывает "+owner.Summons[0].Name+"!", res.Msg)
	assert.Equal(t, 1<<2, owner.Summons[0].Stats.KillCount, "level round(3/2)")

	// На уровне 3 лимит 1 + 3/4, то есть двое
	_, err = summon(ctx, []string{"north"})
	require.NoError(t, err)
	_, err = summon(ctx, []string{"west"})
	assert.ErrorIs(t, err, domain.ErrSummonLimit)
	assert.Len(t, owner.Summons, 2)
}

func TestEnter(t *testing.T) {
	world := domain.NewWorld(rand.New(rand.NewSource(1)))
	first := world.NewRoom([]string{
		"#####",
		"#..>#",
		"#####",
	}, domain.Position{X: 1, Y: 1}, &domain.Position{X: 3, Y: 1})
	second := world.NewRoom([]string{
		"#####",
		"#<..#",
		"#####",
	}, domain.Position{X: 1, Y: 1}, nil)
	world.LinkRooms()

	hero := domain.NewUnit(world.NextUnitID(enums.UnitKindAdventurer), "Вася", enums.UnitKindAdventurer, 0)
	require.NoError(t, systems.PlaceUnit(hero, first, domain.Position{X: 1, Y: 1}))

	enter := func() error {
		_, err := Registry()[domain.ActionEnter](handlers.Context{Actor: hero, Room: hero.Room, World: world}, nil)
		return err
	}

	assert.ErrorIs(t, enter(), domain.ErrNothingHere)

	require.NoError(t, hero.Room.Move(hero, domain.Position{X: 3, Y: 1}))
	require.NoError(t, enter())
	assert.Same(t, second, hero.Room)
	assert.Equal(t, second.Entry, hero.Pos)
	assert.Equal(t, 1, countContaining(drained(first), "спускается глубже"))

	require.NoError(t, enter())
	assert.Same(t, first, hero.Room)
	assert.Equal(t, domain.Position{X: 3, Y: 1}, hero.Pos)
}
