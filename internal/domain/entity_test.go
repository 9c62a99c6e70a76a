package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roguetester/internal/core/types/enums"
)

func TestNewUnit_Defaults(t *testing.T) {
	u := NewUnit(1, "probe", enums.UnitKindBug, 3)

	assert.Equal(t, 0, u.Stats.Level, "level is earned on the first turn")
	assert.Equal(t, 8, u.Stats.KillCount)
	assert.Equal(t, 10, u.Stats.Health)
	assert.Equal(t, Dice{Count: 1, Sides: 4}, u.Damage)
	assert.Equal(t, DefaultViewDist, u.ViewDist)
	assert.False(t, u.Memory.Persistent())
}

func TestCreature_LevelUp(t *testing.T) {
	tests := []struct {
		stat  Stat
		check func(t *testing.T, s Stats)
	}{
		{StatHealth, func(t *testing.T, s Stats) {
			assert.Equal(t, 15, s.HealthMax)
			assert.Equal(t, 15, s.Health)
		}},
		{StatIntellect, func(t *testing.T, s Stats) { assert.Equal(t, 3, s.Intellect) }},
		{StatCunning, func(t *testing.T, s Stats) { assert.Equal(t, 3, s.Cunning) }},
		{StatPower, func(t *testing.T, s Stats) {
			assert.Equal(t, 3, s.PowerMax)
			assert.Equal(t, 3, s.Power)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.stat.String(), func(t *testing.T) {
			u := NewUnit(1, "u", enums.UnitKindBug, 0)
			require.True(t, u.Archetype.LevelUp(u, tt.stat))
			assert.Equal(t, 1, u.Stats.Level)
			tt.check(t, u.Stats)
		})
	}

	u := NewUnit(1, "u", enums.UnitKindBug, 0)
	assert.False(t, u.Archetype.LevelUp(u, Stat(7)))
	assert.Equal(t, DefaultStats().Health, u.Stats.Health, "invalid choice changes nothing")
	assert.Equal(t, 0, u.Stats.Level)
}

func TestAutoTest_LevelUpOnlyHealth(t *testing.T) {
	u := NewUnit(1, "turret", enums.UnitKindAutoTest, 0)
	u.Archetype = AutoTest{}
	require.True(t, u.Archetype.LevelUp(u, StatIntellect))
	assert.Equal(t, 12, u.Stats.Health)
	assert.Equal(t, 2, u.Stats.Intellect)
}

func TestParseStat(t *testing.T) {
	for in, want := range map[string]Stat{"0": StatHealth, "3": StatPower, "cunning": StatCunning} {
		got, ok := ParseStat(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}
	for _, in := range []string{"4", "luck", "", "12"} {
		_, ok := ParseStat(in)
		assert.False(t, ok, in)
	}
}

func TestUnit_DieDropsInventoryAndCreditsKiller(t *testing.T) {
	w, room := newTestWorld(t, "....")
	victim := spawn(t, w, room, "victim", Position{X: 1, Y: 0})
	killer := spawn(t, w, room, "killer", Position{X: 2, Y: 0})
	victim.Inventory.Add(newStubItem("a"))
	victim.Inventory.Add(newStubItem("b"))
	before := killer.Stats.KillCount

	victim.Die(killer)

	assert.True(t, victim.Dead)
	assert.Equal(t, 0, victim.Stats.Health)
	assert.Nil(t, room.UnitAt(Position{X: 1, Y: 0}))
	assert.Equal(t, []*Unit{killer}, room.Queue())
	assert.Len(t, room.FloorItems(Position{X: 1, Y: 0}), 2)
	assert.Equal(t, before+1, killer.Stats.KillCount)

	victim.Die(killer)
	assert.Equal(t, before+1, killer.Stats.KillCount, "second death is a no-op")
}

func TestUnit_UndeadGivesNoCredit(t *testing.T) {
	w, room := newTestWorld(t, "....")
	victim := spawn(t, w, room, "construct", Position{X: 1, Y: 0})
	victim.Undead = true
	killer := spawn(t, w, room, "killer", Position{X: 2, Y: 0})
	before := killer.Stats.KillCount

	victim.Die(killer)
	assert.Equal(t, before, killer.Stats.KillCount)
}

func TestAutoTest_ForwardsCreditAndDetaches(t *testing.T) {
	w, room := newTestWorld(t, ".....")
	master := spawn(t, w, room, "master", Position{X: 0, Y: 0})
	master.Archetype = Adventurer{}
	turret := spawn(t, w, room, "turret", Position{X: 1, Y: 0})
	turret.Archetype = AutoTest{}
	turret.Master = master
	turret.Lifetime = 2
	master.AddSummon(turret)
	assert.False(t, master.CanSummon())

	victim := spawn(t, w, room, "victim", Position{X: 3, Y: 0})
	before := master.Stats.KillCount
	victim.Die(turret)
	assert.Equal(t, before+1, master.Stats.KillCount)

	turret.Archetype.Tick(turret)
	assert.False(t, turret.Dead)
	turret.Archetype.Tick(turret)
	assert.True(t, turret.Dead, "lifetime ran out")
	assert.Empty(t, master.Summons)
	assert.True(t, master.CanSummon())
}

func TestOwner_SummonCapacityAndCleanup(t *testing.T) {
	w, room := newTestWorld(t, "......")
	owner := spawn(t, w, room, "owner", Position{X: 0, Y: 0})
	owner.Archetype = Owner{}

	assert.True(t, owner.CanSummon())
	minion := spawn(t, w, room, "minion", Position{X: 1, Y: 0})
	minion.Archetype = OwnedBug{}
	minion.Master = owner
	minion.Undead = true
	owner.AddSummon(minion)
	assert.False(t, owner.CanSummon(), "level 0 owner holds one bug")

	owner.Stats.Level = 1
	assert.True(t, owner.CanSummon(), "1 < 1 + 1/4")
	owner.Stats.Level = 0

	killer := spawn(t, w, room, "hero", Position{X: 3, Y: 0})
	before := killer.Stats.KillCount
	owner.Die(killer)

	assert.True(t, minion.Dead, "owner takes its bugs along")
	assert.Empty(t, owner.Summons)
	assert.Equal(t, before+1, killer.Stats.KillCount, "owned bugs give no credit")
	assert.Equal(t, []*Unit{killer}, room.Queue())
}

func TestUnit_Restore(t *testing.T) {
	u := NewUnit(1, "u", enums.UnitKindBug, 0)
	u.Stats.Health = 4
	u.RestoreHealth(5)
	assert.Equal(t, 9, u.Stats.Health)
	u.RestoreHealth(5)
	assert.Equal(t, 10, u.Stats.Health)

	u.Stats.Power = 0
	u.RestorePower(1)
	assert.Equal(t, 1, u.Stats.Power)
	u.RestorePower(5)
	assert.Equal(t, 2, u.Stats.Power)
}

func TestDice(t *testing.T) {
	w, _ := newTestWorld(t, ".")
	d := Dice{Count: 3, Sides: 6}
	for i := 0; i < 500; i++ {
		v := w.Roll(d)
		require.GreaterOrEqual(t, v, d.Min())
		require.LessOrEqual(t, v, d.Max())
	}
	assert.Equal(t, Dice{Count: 6, Sides: 6}, d.Times(2))
	assert.Equal(t, 1, Half(3))
	assert.Equal(t, -2, Half(-3))
}

func TestRoundDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{0, 3, 0},
		{1, 3, 0},
		{2, 3, 1},
		{3, 3, 1},
		{1, 2, 1},
		{5, 2, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundDiv(tt.a, tt.b), "%d/%d", tt.a, tt.b)
	}
}

func TestWorld_Counters(t *testing.T) {
	w, _ := newTestWorld(t, ".")
	assert.Equal(t, FirstBugNumber, w.NextBugNumber())
	assert.Equal(t, FirstBugNumber+1, w.NextBugNumber())

	a := w.NextUnitID(enums.UnitKindBug)
	b := w.NextUnitID(enums.UnitKindOwner)
	assert.NotEqual(t, a, b)
	assert.Equal(t, uint8(enums.UnitKindOwner), b.Kind())
}

func TestWorld_LinkRooms(t *testing.T) {
	w, first := newTestWorld(t, ".")
	second := w.NewRoom([]string{".."}, Position{}, &Position{X: 1})
	w.LinkRooms()

	assert.Same(t, second, first.Next)
	assert.Same(t, first, second.Prev)
	assert.Nil(t, first.Prev)
	assert.True(t, second.HasLeave)
	assert.Equal(t, 1, second.ID)
}

func TestCapabilities(t *testing.T) {
	caps := Capabilities{}.
		With(Capability{Name: "move", Action: ActionMove}).
		With(Capability{Name: "wait", Action: ActionWait}).
		With(Capability{Name: "auto", Action: ActionAuto, Available: MinLevel(3)}).
		With(Capability{Name: "wait", Action: ActionProcrastinate})

	u := NewUnit(1, "hero", enums.UnitKindAdventurer, 0)
	assert.Equal(t, []string{"move", "wait"}, caps.Names(u))

	cp, err := caps.Lookup("wait", u)
	require.NoError(t, err)
	assert.Equal(t, ActionProcrastinate, cp.Action, "override keeps the slot")

	_, err = caps.Lookup("auto", u)
	assert.ErrorIs(t, err, ErrUnavailableCommand)
	_, err = caps.Lookup("fly", u)
	assert.ErrorIs(t, err, ErrUnknownCommand)

	u.Stats.Level = 3
	assert.Equal(t, []string{"move", "wait", "auto"}, caps.Names(u))
}

func TestParseCommand(t *testing.T) {
	c := ParseCommand("  Attack   north ")
	assert.Equal(t, "attack", c.Name)
	assert.Equal(t, []string{"north"}, c.Args)
	assert.Equal(t, "attack north", c.String())
	assert.False(t, c.IsMeta())

	assert.True(t, ParseCommand("exit").IsQuit())
	assert.True(t, ParseCommand("items").IsMeta())
	assert.Equal(t, Command{}, ParseCommand("   "))
}
