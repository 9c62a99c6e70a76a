package domain

// Archetype - поведение, которым архетипы отличаются от базового существа:
// повышение уровня, смерть, зачет убийства, лимит призыва, тик.
type Archetype interface {
	// LevelUp поднимает уровень с выбранной прибавкой. Неверный выбор - false, без изменений.
	LevelUp(u *Unit, stat Stat) bool
	OnDeath(u *Unit, killer *Unit)
	OnKillCredit(u *Unit, victim *Unit)
	CanSummon(u *Unit) bool
	Tick(u *Unit)

	TextDamaged() string
	TextDead() string
}

// Creature - базовое существо.
type Creature struct{}

func (Creature) LevelUp(u *Unit, stat Stat) bool {
	if !stat.Valid() {
		return false
	}
	u.Stats.Level++
	u.Stats.HealthMax += u.Stats.HealthPerLevel
	u.Stats.Health += u.Stats.HealthPerLevel

	switch stat {
	case StatHealth:
		u.Stats.HealthMax += 2
		u.Stats.Health += 2
	case StatIntellect:
		u.Stats.Intellect++
	case StatCunning:
		u.Stats.Cunning++
	case StatPower:
		u.Stats.PowerMax++
		u.Stats.Power++
	}
	return true
}

func (Creature) OnDeath(*Unit, *Unit) {}

func (Creature) OnKillCredit(u *Unit, victim *Unit) {
	if !victim.Undead {
		u.Stats.KillCount++
	}
}

func (Creature) CanSummon(*Unit) bool { return false }

func (Creature) Tick(u *Unit) {
	u.TickItems()
}

func (Creature) TextDamaged() string { return "повреждён" }
func (Creature) TextDead() string    { return "уничтожен" }

// Adventurer - тестер. Держит одну турель.
type Adventurer struct{ Creature }

func (Adventurer) CanSummon(u *Unit) bool {
	return len(u.Summons) < 1
}

func (Adventurer) TextDamaged() string { return "задолбан" }
func (Adventurer) TextDead() string    { return "слишком устал" }

// AutoTest - турель. Статы хозяина у нее уже есть, качается только здоровье.
// Зачет за убийства уходит хозяину, по истечении срока турель умирает.
type AutoTest struct{ Creature }

func (AutoTest) LevelUp(u *Unit, _ Stat) bool {
	u.Stats.Level++
	u.Stats.Health += 2
	u.Stats.HealthMax += 2
	return true
}

func (AutoTest) OnKillCredit(u *Unit, victim *Unit) {
	if u.Master != nil {
		u.Master.CreditKill(victim)
	}
}

func (AutoTest) OnDeath(u *Unit, _ *Unit) {
	if u.Master != nil {
		u.Master.RemoveSummon(u)
	}
}

func (a AutoTest) Tick(u *Unit) {
	a.Creature.Tick(u)
	u.Lifetime--
	if u.Lifetime <= 0 {
		u.Die(nil)
	}
}

// Bug - баг.
type Bug struct{ Creature }

func (Bug) TextDamaged() string { return "протестирован" }
func (Bug) TextDead() string    { return "закрыт" }

// OwnedBug - баг, открытый заказчиком. Опыта за него не дают.
type OwnedBug struct{ Bug }

func (OwnedBug) OnDeath(u *Unit, _ *Unit) {
	if u.Master != nil {
		u.Master.RemoveSummon(u)
	}
}

// Owner - заказчик. Держит 1 + level/4 багов, со смертью закрывает их все.
type Owner struct{ Creature }

func (Owner) CanSummon(u *Unit) bool {
	// len < 1 + level/4 без дробей
	return 4*len(u.Summons) < 4+u.Stats.Level
}

func (Owner) OnDeath(u *Unit, killer *Unit) {
	for _, s := range append([]*Unit(nil), u.Summons...) {
		s.Die(killer)
	}
}

func (Owner) TextDamaged() string { return "задобрен" }
func (Owner) TextDead() string    { return "довольно кивает и уходит" }
