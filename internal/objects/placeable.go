// Package objects - неживые объекты карты (двери, дым, автоматы)
// и предметы, которые можно носить в инвентаре.
package objects

import (
	"fmt"

	"roguetester/internal/core/types/enums"
	"roguetester/internal/domain"
)

// placeable - общая часть объектов карты.
type placeable struct {
	props domain.ObjectProps
}

func (p *placeable) Props() *domain.ObjectProps { return &p.props }

// Use по умолчанию: объект не реагирует.
func (p *placeable) Use(user *domain.Unit) {
	user.Log(user.Name + ": это нельзя использовать")
}

func (p *placeable) Tick() {}

// Door - дверь. Может быть заперта на ключ: ключ - предмет с именем Key
// в инвентаре того, кто открывает. После первого открытия замок снят.
type Door struct {
	placeable
	Key string
}

func NewDoor(key string) *Door {
	d := &Door{Key: key}
	d.props = domain.ObjectProps{
		Kind:   enums.ObjectKindDoor,
		Name:   "Дверь",
		IsDoor: true,
	}
	d.setClosed(true)
	return d
}

func (d *Door) setClosed(closed bool) {
	d.props.Closed = closed
	d.props.Opaque = closed
	d.props.Passable = !closed
	if closed {
		d.props.Skin = domain.SkinDoorClosed
	} else {
		d.props.Skin = domain.SkinDoorOpen
	}
}

// Use открывает закрытую дверь и закрывает открытую.
func (d *Door) Use(user *domain.Unit) {
	if d.props.Closed {
		_ = d.Open(user)
		return
	}
	_ = d.Close(user)
}

// Open - открыть. Запертая дверь без ключа у user не открывается.
func (d *Door) Open(user *domain.Unit) error {
	if d.Key != "" {
		if !user.Inventory.Has(d.Key) {
			user.Log(d.props.Name + " закрыта на ключ")
			return domain.ErrLockedDoor
		}
		user.Log(d.Key + " подходит к двери")
		d.Key = ""
	}
	d.setClosed(false)
	return nil
}

// Close - закрыть. Нельзя, пока в проеме кто-то стоит.
func (d *Door) Close(user *domain.Unit) error {
	if d.props.Room != nil && d.props.Room.UnitAt(d.props.Pos) != nil {
		user.Log(user.Name + " не может закрыть дверь прямо сейчас")
		return domain.ErrImpassable
	}
	d.setClosed(true)
	return nil
}

// Smoke - облако дыма: проходимо, но закрывает обзор. Рассеивается
// через Lifetime тиков.
type Smoke struct {
	placeable
	Lifetime int
	count    int
}

const DefaultSmokeLifetime = 4

func NewSmoke(lifetime int) *Smoke {
	s := &Smoke{Lifetime: lifetime}
	s.props = domain.ObjectProps{
		Kind:     enums.ObjectKindSmoke,
		Name:     "Смоук-тест",
		Skin:     domain.SkinSmoke,
		Opaque:   true,
		Passable: true,
	}
	return s
}

func (s *Smoke) Tick() {
	s.count++
	if s.count >= s.Lifetime {
		domain.DestroyObject(s)
	}
}

// machine - автомат с ограниченным запасом порций.
type machine struct {
	placeable
	Portions int
}

const machinePortions = 3

// CoffeeMachine восстанавливает энергию до максимума.
type CoffeeMachine struct {
	machine
}

func NewCoffeeMachine() *CoffeeMachine {
	m := &CoffeeMachine{}
	m.Portions = machinePortions
	m.props = domain.ObjectProps{
		Kind:   enums.ObjectKindCoffeeMachine,
		Name:   "Кофейный автомат",
		Skin:   domain.SkinCoffeeMachine,
		Opaque: true,
	}
	return m
}

func (m *CoffeeMachine) Use(user *domain.Unit) {
	if m.Portions <= 0 {
		m.props.Log(m.props.Name + ": кофе больше нет :(")
		return
	}
	m.Portions--
	user.Stats.Power = user.Stats.PowerMax
	user.Log(user.Name + ": бодрячок!")
	m.props.Log(fmt.Sprintf("%s: осталось %d кофе", m.props.Name, m.Portions))
}

// GameMachine восстанавливает здоровье до максимума.
type GameMachine struct {
	machine
}

// Что говорят за игрой.
var gameTalk = []string{
	"Еще один уровень и спать",
	"Это для работы, я тестирую конкурентов",
	"Кто сохранился перед боссом?",
	"Ну вот, опять зарашили",
}

func NewGameMachine() *GameMachine {
	m := &GameMachine{}
	m.Portions = machinePortions
	m.props = domain.ObjectProps{
		Kind:   enums.ObjectKindGameMachine,
		Name:   "Игровая станция",
		Skin:   domain.SkinGameMachine,
		Opaque: true,
	}
	return m
}

func (m *GameMachine) Use(user *domain.Unit) {
	if m.Portions <= 0 {
		m.props.Log(m.props.Name + ": нет игор :(")
		return
	}
	m.Portions--
	user.Stats.Health = user.Stats.HealthMax
	user.Say(pick(user, gameTalk))
	m.props.Log(fmt.Sprintf("%s: осталось %d игры", m.props.Name, m.Portions))
}

// pick - случайная реплика из списка.
func pick(u *domain.Unit, lines []string) string {
	if u.Room == nil || u.Room.World == nil {
		return lines[0]
	}
	return lines[u.Room.World.Intn(len(lines))]
}
