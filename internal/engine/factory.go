package engine

import (
	"strconv"

	"roguetester/internal/core/types/enums"
	"roguetester/internal/domain"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Имена и параметры видов юнитов.
const (
	AutoTestName = "Автотест"
	OwnerName    = "Заказчик"

	BugViewDist = 5
	BugHealth   = 5
)

// Префиксы имен багов. Номер берется из сквозного счетчика мира.
var bugPrefixes = []string{"DEV-", "GAME-", "GAMEADM-"}

// Factory создает юнитов всех видов: статы, архетип, память,
// таблицу возможностей и контроллер ИИ. Игроку контроллер ставит вызывающий.
type Factory struct {
	World *domain.World
}

func NewFactory(w *domain.World) *Factory {
	return &Factory{World: w}
}

// Spawn - призыв юнита хозяином (handlers.SpawnFunc).
func (f *Factory) Spawn(kind enums.UnitKind, master *domain.Unit, level int) *domain.Unit {
	return f.NewUnit(kind, "", level, master)
}

// NewHero - тестер под управлением игрока.
func (f *Factory) NewHero(name string, level int, ctrl domain.Controller) *domain.Unit {
	u := f.NewUnit(enums.UnitKindAdventurer, name, level, nil)
	u.Controller = ctrl
	return u
}

// NewUnit создает юнита вида kind. Пустое имя - имя по умолчанию для вида.
// master обязателен для турели и вызванного бага.
func (f *Factory) NewUnit(kind enums.UnitKind, name string, level int, master *domain.Unit) *domain.Unit {
	u := domain.NewUnit(f.World.NextUnitID(kind), name, kind, level)
	u.Caps = capsFor(kind)

	switch kind {
	case enums.UnitKindAdventurer:
		u.Faction = enums.FactionTesters
		u.Skin = domain.SkinAdventurer
		u.Memory = domain.NewMemory()
		u.Archetype = domain.Adventurer{}
		u.Controller = NewAIController(enums.ControlPassive)

	case enums.UnitKindAutoTest:
		if u.Name == "" {
			u.Name = AutoTestName
		}
		u.Faction = enums.FactionTesters
		u.Skin = domain.SkinAutoTest
		u.Undead = true
		u.Archetype = domain.AutoTest{}
		u.Controller = NewAIController(enums.ControlStationary)
		u.Stats.Power = 0
		u.Stats.PowerMax = 0
		if master != nil {
			u.Master = master
			u.Stats.Intellect = master.Stats.Intellect
			u.Stats.Cunning = master.Stats.Cunning
			u.Lifetime = 2 + domain.RoundDiv(master.Stats.Level, 3)
		}

	case enums.UnitKindBug, enums.UnitKindOwnedBug:
		f.makeBug(u)
		if kind == enums.UnitKindOwnedBug {
			u.Master = master
			u.Undead = true
			u.Archetype = domain.OwnedBug{}
			u.Controller = NewAIController(enums.ControlFollower)
		}

	case enums.UnitKindOwner:
		if u.Name == "" {
			u.Name = OwnerName
		}
		u.Faction = enums.FactionBugs
		u.Skin = domain.SkinOwner
		u.Memory = domain.NewMemory()
		u.Archetype = domain.Owner{}
		u.Controller = NewAIController(enums.ControlSummoner)

	default:
		u.Controller = NewAIController(enums.ControlPassive)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "factory",
		"unit_id":   u.ID,
		"kind":      kind.String(),
		"name":      u.Name,
		"level":     level,
	}).Debug("Unit created")

	return u
}

func (f *Factory) makeBug(u *domain.Unit) {
	num := f.World.NextBugNumber()
	if u.Name == "" {
		u.Name = bugPrefixes[f.World.Intn(len(bugPrefixes))] + strconv.Itoa(num)
	}
	u.Faction = enums.FactionBugs
	u.Skin = domain.SkinBug
	u.ViewDist = BugViewDist
	u.Stats.Health = BugHealth
	u.Stats.HealthMax = BugHealth
	u.Archetype = domain.Bug{}
	u.Controller = NewAIController(enums.ControlPursuer)
}
