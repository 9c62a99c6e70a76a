package systems

import (
	"roguetester/internal/core/types/enums"
	"roguetester/internal/domain"
)

// Candidate - возможная цель: живой видимый юнит или воспоминание о нем.
type Candidate struct {
	Pos     domain.Position
	Name    string
	Faction enums.Faction
	Level   int
	// Unit - живой юнит; nil, если цель взята из памяти.
	Unit *domain.Unit
}

// Remembered - цель взята из памяти, а не видна сейчас.
func (c Candidate) Remembered() bool {
	return c.Unit == nil
}

func candidateOf(u *domain.Unit) Candidate {
	return Candidate{Pos: u.Pos, Name: u.Name, Faction: u.Faction, Level: u.Stats.Level, Unit: u}
}

func candidateFromMemory(s domain.UnitSnapshot) Candidate {
	return Candidate{Pos: s.Pos, Name: s.Name, Faction: s.Faction, Level: s.Level}
}

// TargetTest - подходит ли кандидат в цели.
type TargetTest func(c Candidate) bool

// TargetEval - чем больше, тем лучше цель.
type TargetEval func(c Candidate) int

// Enemies - кандидат из враждебной фракции.
func Enemies(u *domain.Unit) TargetTest {
	return func(c Candidate) bool { return u.Faction.Opposes(c.Faction) }
}

// ByLevel - предпочитаем самых прокачанных.
func ByLevel(c Candidate) int { return c.Level }

// Closest - предпочитаем ближайших по манхэттену.
func Closest(u *domain.Unit) TargetEval {
	return func(c Candidate) int { return -u.Pos.Manhattan(c.Pos) }
}

// VisibleUnits - живые юниты в видимых клетках, кроме самого u, в порядке обхода клеток.
func VisibleUnits(u *domain.Unit) []*domain.Unit {
	if u.Room == nil {
		return nil
	}
	var out []*domain.Unit
	for _, p := range u.Visible.Sorted() {
		if other := u.Room.UnitAt(p); other != nil && other != u && !other.Dead {
			out = append(out, other)
		}
	}
	return out
}

// SelectTarget выбирает цель. Видимые кандидаты всегда важнее запомненных;
// память проверяется, только если подходящих видимых нет. Среди равных
// побеждает первый найденный.
func SelectTarget(u *domain.Unit, test TargetTest, eval TargetEval) (Candidate, bool) {
	if test == nil {
		test = Enemies(u)
	}
	if eval == nil {
		eval = ByLevel
	}

	var best Candidate
	found := false
	consider := func(c Candidate) {
		if !test(c) {
			return
		}
		if !found || eval(c) > eval(best) {
			best, found = c, true
		}
	}

	for _, other := range VisibleUnits(u) {
		consider(candidateOf(other))
	}
	if found {
		return best, true
	}

	rec := Recall(u)
	positions := make([]domain.Position, 0, len(rec.Units))
	for p := range rec.Units {
		positions = append(positions, p)
	}
	domain.SortPositions(positions)
	for _, p := range positions {
		snap := rec.Units[p]
		if snap.Name == u.Name && p == u.Pos {
			continue
		}
		consider(candidateFromMemory(snap))
	}

	return best, found
}
