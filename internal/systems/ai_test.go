package systems

import (
	"testing"

	"roguetester/internal/core/types/enums"
	"roguetester/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecidePassive(t *testing.T) {
	_, room := newTestRoom(t, openRows(3, 3)...)
	b := bug(t, room, "DEV-1", domain.Position{X: 1, Y: 1})

	assert.Equal(t, domain.Cmd(domain.CmdWait), DecidePassive(b))
}

func TestDecidePursuer(t *testing.T) {
	tests := []struct {
		name    string
		heroPos domain.Position
		want    domain.Command
	}{
		{"adjacent bites", domain.Position{X: 3, Y: 2}, domain.Cmd(domain.CmdAttack, "east")},
		{"far chases", domain.Position{X: 2, Y: 5}, domain.Cmd(domain.CmdMove, "south")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, room := newTestRoom(t, openRows(6, 6)...)
			b := bug(t, room, "DEV-1", domain.Position{X: 2, Y: 2})
			tester(t, room, "Hero", tt.heroPos)
			Observe(b)

			assert.Equal(t, tt.want, DecidePursuer(b))
		})
	}
}

func TestDecidePursuer_NoTargetIdles(t *testing.T) {
	_, room := newTestRoom(t, openRows(3, 3)...)
	b := bug(t, room, "DEV-1", domain.Position{X: 1, Y: 1})
	Observe(b)

	assert.Equal(t, domain.CmdIdle, DecidePursuer(b).Name)
}

func TestDecidePursuer_BlockedWaits(t *testing.T) {
	_, room := newTestRoom(t,
		".#...",
		"##...",
		".....",
	)
	b := bug(t, room, "DEV-1", domain.Position{X: 0, Y: 0})
	b.ViewDist = 10
	tester(t, room, "Hero", domain.Position{X: 4, Y: 2})
	// Обзор через стены не проходит, поэтому цель задаем памятью
	b.Memory = domain.NewMemory()
	Recall(b).Units[domain.Position{X: 4, Y: 2}] = domain.UnitSnapshot{
		Pos: domain.Position{X: 4, Y: 2}, Name: "Hero", Faction: enums.FactionTesters,
	}

	assert.Equal(t, domain.Cmd(domain.CmdWait), DecidePursuer(b))
}

func TestDecideStationary(t *testing.T) {
	tests := []struct {
		name   string
		bugPos domain.Position
		want   domain.Command
	}{
		{"aligned east", domain.Position{X: 5, Y: 2}, domain.Cmd(domain.CmdAttack, "east")},
		{"aligned north", domain.Position{X: 2, Y: 0}, domain.Cmd(domain.CmdAttack, "north")},
		{"diagonal ignored", domain.Position{X: 3, Y: 3}, domain.Cmd(domain.CmdWait)},
		{"too far", domain.Position{X: 7, Y: 2}, domain.Cmd(domain.CmdWait)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, room := newTestRoom(t, openRows(8, 5)...)
			turret := spawnUnit(t, room, "Автотест", enums.UnitKindAutoTest, enums.FactionTesters, domain.Position{X: 2, Y: 2})
			bug(t, room, "DEV-1", tt.bugPos)
			Observe(turret)

			assert.Equal(t, tt.want, DecideStationary(turret))
		})
	}
}

func TestDecideFollower_KeepsNearMaster(t *testing.T) {
	_, room := newTestRoom(t, openRows(8, 1)...)
	owner := spawnUnit(t, room, "Заказчик", enums.UnitKindOwner, enums.FactionBugs, domain.Position{X: 0, Y: 0})
	minion := bug(t, room, "DEV-1", domain.Position{X: 6, Y: 0})
	minion.Master = owner
	Observe(minion)

	assert.Equal(t, domain.Cmd(domain.CmdMove, "west"), DecideFollower(minion))

	require.NoError(t, PlaceUnit(minion, room, domain.Position{X: 2, Y: 0}))
	assert.Equal(t, domain.Cmd(domain.CmdWait), DecideFollower(minion), "already inside the band")
}

func TestDecideSummoner(t *testing.T) {
	t.Run("summons when target is close", func(t *testing.T) {
		_, room := newTestRoom(t, openRows(7, 3)...)
		owner := spawnUnit(t, room, "Заказчик", enums.UnitKindOwner, enums.FactionBugs, domain.Position{X: 1, Y: 1})
		owner.Archetype = domain.Owner{}
		tester(t, room, "Hero", domain.Position{X: 5, Y: 1})
		Observe(owner)

		cmd := DecideSummoner(owner)
		require.Equal(t, domain.CmdSummon, cmd.Name)
		dir, err := domain.ParseDirection(cmd.Args[0])
		require.NoError(t, err)
		assert.True(t, room.Passable(owner.Pos.Add(dir)))
	})

	t.Run("opens doors on the way", func(t *testing.T) {
		_, room := newTestRoom(t,
			"###########",
			"#.........#",
			"###########",
		)
		owner := spawnUnit(t, room, "Заказчик", enums.UnitKindOwner, enums.FactionBugs, domain.Position{X: 1, Y: 1})
		owner.Archetype = domain.Owner{}
		owner.Memory = domain.NewMemory()
		owner.Summons = []*domain.Unit{{}} // призывать больше некуда
		require.True(t, domain.PlaceObject(newStubDoor(), room, domain.Position{X: 2, Y: 1}))
		Recall(owner).Units[domain.Position{X: 9, Y: 1}] = domain.UnitSnapshot{
			Pos: domain.Position{X: 9, Y: 1}, Name: "Hero", Faction: enums.FactionTesters,
		}

		assert.Equal(t, domain.Cmd(domain.CmdUse, "east"), DecideSummoner(owner))
	})

	t.Run("picks up loot without a target", func(t *testing.T) {
		_, room := newTestRoom(t, openRows(3, 3)...)
		owner := spawnUnit(t, room, "Заказчик", enums.UnitKindOwner, enums.FactionBugs, domain.Position{X: 1, Y: 1})
		Observe(owner)
		assert.Equal(t, domain.CmdIdle, DecideSummoner(owner).Name)

		require.True(t, domain.PlaceItem(&stubItem{props: domain.ItemProps{Name: "Ключ"}}, room, owner.Pos))
		assert.Equal(t, domain.Cmd(domain.CmdTake), DecideSummoner(owner))
	})
}
