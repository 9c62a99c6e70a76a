package domain

// Stats - характеристики существа.
type Stats struct {
	Level          int `json:"level"`
	Health         int `json:"health"`
	HealthMax      int `json:"healthMax"`
	HealthPerLevel int `json:"healthPerLevel"`
	Intellect      int `json:"intellect"`
	Cunning        int `json:"cunning"`
	Power          int `json:"power"`
	PowerMax       int `json:"powerMax"`
	KillCount      int `json:"killCount"`
}

// DefaultStats - базовые статы существа до поправок архетипа.
func DefaultStats() Stats {
	return Stats{
		Health:         10,
		HealthMax:      10,
		HealthPerLevel: 3,
		Intellect:      2,
		Cunning:        2,
		Power:          2,
		PowerMax:       2,
	}
}

// NextLevelKills - сколько убийств нужно для следующего уровня.
func (s Stats) NextLevelKills() int {
	return 1 << (s.Level + 1)
}

// Stat - выбор характеристики при повышении уровня.
type Stat int

const (
	StatHealth Stat = iota
	StatIntellect
	StatCunning
	StatPower

	statCount = 4
)

var statNames = map[string]Stat{
	"health":    StatHealth,
	"intellect": StatIntellect,
	"cunning":   StatCunning,
	"power":     StatPower,
}

func (s Stat) Valid() bool {
	return s >= 0 && s < statCount
}

func (s Stat) String() string {
	for name, v := range statNames {
		if v == s {
			return name
		}
	}
	return "unknown"
}

// ParseStat принимает номер 0..3 или имя характеристики.
func ParseStat(s string) (Stat, bool) {
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		st := Stat(s[0] - '0')
		return st, st.Valid()
	}
	st, ok := statNames[s]
	return st, ok
}

// RandomStat - выбор характеристики для мобов.
func RandomStat(r Roller) Stat {
	return Stat(r.Intn(statCount))
}

// Dice - набор кубиков: Count штук по Sides граней.
type Dice struct {
	Count int `json:"count"`
	Sides int `json:"sides"`
}

var D20 = Dice{Count: 1, Sides: 20}

// Roll - сумма Count бросков равномерного [1, Sides].
func (d Dice) Roll(r Roller) int {
	total := 0
	for i := 0; i < d.Count; i++ {
		total += r.Intn(d.Sides) + 1
	}
	return total
}

func (d Dice) Min() int { return d.Count }
func (d Dice) Max() int { return d.Count * d.Sides }

// Times умножает число кубиков (крит удваивает кубики, а не грани).
func (d Dice) Times(k int) Dice {
	return Dice{Count: d.Count * k, Sides: d.Sides}
}

// Half - floor(v/2), бонус от характеристики.
func Half(v int) int {
	if v < 0 {
		return -((-v + 1) / 2)
	}
	return v / 2
}

// RoundDiv - a/b с округлением половины вверх (a >= 0, b > 0).
func RoundDiv(a, b int) int {
	return (2*a + b) / (2 * b)
}
