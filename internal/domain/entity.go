package domain

import (
	"roguetester/internal/core/types"
	"roguetester/internal/core/types/enums"
)

const DefaultViewDist = 6

// Unit - существо на карте: игрок, баг, заказчик, турель.
type Unit struct {
	ID      types.EntityID
	Name    string
	Kind    enums.UnitKind
	Faction enums.Faction
	Skin    types.Glyph

	Stats    Stats
	Damage   Dice
	ViewDist int

	// Положение
	Room *Room
	Pos  Position

	// Пересчитываются каждый ход перед действием
	Visible  PositionSet
	Shadowed PositionSet

	Dead bool
	// Undead - за убийство не дают опыта (турели, вызванные баги)
	Undead bool

	// Master - невладеющая ссылка на призывателя
	Master  *Unit
	Summons []*Unit
	// Lifetime - сколько своих тиков осталось жить (турели). 0 - не ограничено.
	Lifetime int

	Inventory  *Inventory
	Memory     *Memory
	Controller Controller
	Caps       Capabilities
	Archetype  Archetype
}

// NewUnit создает существо с базовыми статами. Архетип, контроллер
// и таблицу возможностей проставляет фабрика.
func NewUnit(id types.EntityID, name string, kind enums.UnitKind, level int) *Unit {
	u := &Unit{
		ID:        id,
		Name:      name,
		Kind:      kind,
		Faction:   enums.FactionNeutral,
		Stats:     DefaultStats(),
		Damage:    Dice{Count: 1, Sides: 4},
		ViewDist:  DefaultViewDist,
		Pos:       Position{X: -1, Y: -1},
		Visible:   make(PositionSet),
		Shadowed:  make(PositionSet),
		Memory:    NewForgetfulMemory(),
		Archetype: Creature{},
	}
	// Уровень набирается на первом ходу через цикл повышения уровня
	u.Stats.KillCount = 1 << level
	u.Inventory = NewUnitInventory(u)
	return u
}

// IsPlayer - юнитом управляет человек.
func (u *Unit) IsPlayer() bool {
	return u.Controller != nil && u.Controller.Kind() == enums.ControlPlayer
}

func (u *Unit) CanSee(p Position) bool {
	return u.Visible.Has(p)
}

// Log пишет в лог комнаты в клетке юнита.
func (u *Unit) Log(msg string) {
	if u.Room != nil {
		u.Room.LogAt(u.Pos, msg)
	}
}

// Say - реплика юнита.
func (u *Unit) Say(text string) {
	u.Log(u.Name + ": \"" + text + "\"")
}

func (u *Unit) RestoreHealth(n int) {
	u.Stats.Health = min(u.Stats.HealthMax, u.Stats.Health+n)
}

func (u *Unit) RestorePower(n int) {
	u.Stats.Power = min(u.Stats.PowerMax, u.Stats.Power+n)
}

func (u *Unit) CanSummon() bool {
	return u.Archetype.CanSummon(u)
}

func (u *Unit) AddSummon(s *Unit) {
	u.Summons = append(u.Summons, s)
}

// RemoveSummon отвязывает призванного юнита.
func (u *Unit) RemoveSummon(s *Unit) {
	for i, other := range u.Summons {
		if other == s {
			u.Summons = append(u.Summons[:i], u.Summons[i+1:]...)
			return
		}
	}
}

// Die - смерть: выпадает весь инвентарь, клетка освобождается,
// убийца получает зачет. Повторная смерть ничего не делает.
func (u *Unit) Die(killer *Unit) {
	if u.Dead {
		return
	}
	u.Log(u.Name + " " + u.Archetype.TextDead() + "!")

	u.Dead = true
	u.Stats.Health = 0
	if u.Room != nil {
		floor := u.Room.ItemsAt(u.Pos)
		for u.Inventory.Len() > 0 {
			ShiftItem(u.Inventory, floor, -1)
		}
		u.Room.Remove(u)
	}
	if killer != nil {
		killer.CreditKill(u)
	}
	u.Archetype.OnDeath(u, killer)

	if obs, ok := u.Controller.(DeathObserver); ok {
		obs.OnDeath(u)
	}
}

// CreditKill засчитывает убийство (с учетом архетипа: турель отдает зачет хозяину).
func (u *Unit) CreditKill(victim *Unit) {
	u.Archetype.OnKillCredit(u, victim)
}

// TickItems - ход предметов в инвентаре.
func (u *Unit) TickItems() {
	for _, it := range u.Inventory.Items() {
		it.Tick()
	}
}
