package systems

import (
	"fmt"

	"roguetester/internal/domain"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Константы боя.
const (
	CritRoll    = 20
	BaseDefense = 10
)

// AttackRoll - результат броска атаки. Бросается один раз атакующим
// и может быть применен к нескольким целям (очередь турели, взрыв).
type AttackRoll struct {
	Attacker *domain.Unit
	Attack   int
	Damage   int
	Crit     bool
}

// RollAttack: d20 + floor(хитрость/2). Натуральная 20 - крит: кубиков урона
// вдвое больше, и бонус интеллекта тоже удваивается.
func RollAttack(u *domain.Unit, rng domain.Roller) AttackRoll {
	natural := domain.D20.Roll(rng)
	crit := natural >= CritRoll

	mult := 1
	if crit {
		mult = 2
		u.Log(u.Name + ": крит!")
	}

	roll := AttackRoll{
		Attacker: u,
		Attack:   natural + domain.Half(u.Stats.Cunning),
		Damage:   u.Damage.Times(mult).Roll(rng) + domain.Half(u.Stats.Intellect)*mult,
		Crit:     crit,
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"attacker":  u.Name,
		"natural":   natural,
		"attack":    roll.Attack,
		"damage":    roll.Damage,
		"crit":      crit,
	}).Debug("Attack rolled")

	return roll
}

// Defense - 10 + floor(хитрость/2).
func Defense(u *domain.Unit) int {
	return BaseDefense + domain.Half(u.Stats.Cunning)
}

// Hits - попадание: атака строго больше защиты, либо крит.
func Hits(roll AttackRoll, defense int) bool {
	return roll.Attack > defense || roll.Crit
}

// ReceiveAttack применяет бросок к цели. Возвращает true при попадании.
// Если здоровье кончилось, цель умирает, зачет уходит атакующему.
func ReceiveAttack(target *domain.Unit, roll AttackRoll) bool {
	defense := Defense(target)

	attackerName := ""
	if roll.Attacker != nil {
		attackerName = roll.Attacker.Name
	}
	msg := fmt.Sprintf("Атака %s vs. %s (%d vs. %d): ", attackerName, target.Name, roll.Attack, defense)

	hit := Hits(roll, defense)
	if hit {
		target.Stats.Health -= roll.Damage
		msg += fmt.Sprintf("%s %s на %d ПЗ!", target.Name, target.Archetype.TextDamaged(), roll.Damage)
	} else {
		msg += "промах!"
	}
	target.Log(msg)

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"attacker":  attackerName,
		"target":    target.Name,
		"attack":    roll.Attack,
		"defense":   defense,
		"hit":       hit,
		"hp_after":  target.Stats.Health,
	}).Info("Attack resolved")

	if target.Stats.Health <= 0 {
		target.Die(roll.Attacker)
	}
	return hit
}
