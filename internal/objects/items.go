package objects

import (
	"fmt"

	"roguetester/internal/core/types/enums"
	"roguetester/internal/domain"
	"roguetester/internal/systems"
)

// item - общая часть предметов.
type item struct {
	props domain.ItemProps
}

func (i *item) Props() *domain.ItemProps { return &i.props }
func (i *item) Tick()                    {}

// Item - простой предмет без эффекта. Ключи от дверей - это Item с нужным именем.
type Item struct {
	item
}

func NewItem(name string) *Item {
	if name == "" {
		name = "Предмет"
	}
	it := &Item{}
	it.props = domain.ItemProps{Kind: enums.ObjectKindItem, Name: name, Skin: domain.SkinItem}
	return it
}

func (i *Item) Use(user *domain.Unit) {
	user.Log(user.Name + " и " + i.props.Name + " смотрят друг на друга")
}

// FooBar - шоколадка: +1 энергии, съедается.
type FooBar struct {
	item
}

func NewFooBar() *FooBar {
	it := &FooBar{}
	it.props = domain.ItemProps{Kind: enums.ObjectKindFooBar, Name: "Батончик \"Foo\"", Skin: domain.SkinFooBar}
	return it
}

func (f *FooBar) Use(user *domain.Unit) {
	user.Log(user.Name + " ест батончик \"Foo\"")
	user.RestorePower(1)
	domain.DestroyItem(f)
}

// Book - книга: +5 здоровья, прочитывается один раз.
type Book struct {
	item
}

func NewBook() *Book {
	it := &Book{}
	it.props = domain.ItemProps{Kind: enums.ObjectKindBook, Name: "Книга", Skin: domain.SkinBook}
	return it
}

func (b *Book) Use(user *domain.Unit) {
	user.Log(user.Name + " читает книгу")
	user.RestoreHealth(5)
	domain.DestroyItem(b)
}

// Параметры гранаты.
const (
	GrenadeFuse         = 6
	GrenadeAttack       = 20
	GrenadeSmokeLife    = 3
	grenadeExplodedName = "Бомба"
	grenadeArmedName    = "Бомба?"
)

// GrenadeDamage - урон взрыва.
var GrenadeDamage = domain.Dice{Count: 4, Sides: 10}

// TestGrenade - коробка, которая оказывается бомбой. Использование взводит
// таймер и бросает ее под ноги. Взрыв бьет всех в квадрате 3x3 критом
// от имени взводившего и заполняет квадрат дымом.
type TestGrenade struct {
	item
	world     *domain.World
	Fuse      int
	Activator *domain.Unit
}

func NewTestGrenade(w *domain.World) *TestGrenade {
	g := &TestGrenade{world: w}
	g.props = domain.ItemProps{Kind: enums.ObjectKindGrenade, Name: w.GrenadeTitle, Skin: domain.SkinGrenade}
	return g
}

func (g *TestGrenade) Armed() bool {
	return g.Fuse > 0
}

func (g *TestGrenade) Use(user *domain.Unit) {
	if g.Armed() {
		user.Log(user.Name + ": оно тикает")
		return
	}

	user.Log(user.Name + " открывает коробку. Это же безопасно, верно?..")
	g.props.Log("Содержимое коробки тикает и мигает красной лампочкой", false)
	g.Activator = user
	g.Fuse = GrenadeFuse
	if !g.world.GrenadeExploded {
		user.Say("Я знал, что коробки - зло!")
		g.world.GrenadeTitle = grenadeArmedName
	}

	if idx := user.Inventory.IndexOf(g); idx >= 0 && user.Room != nil {
		domain.ShiftItem(user.Inventory, user.Room.ItemsAt(user.Pos), idx)
		user.Log(user.Name + " выкидывает предмет: " + g.props.Name)
	}
}

func (g *TestGrenade) Tick() {
	if !g.Armed() {
		return
	}

	g.Fuse--
	g.props.Name = fmt.Sprintf("%s: %d", g.world.GrenadeTitle, g.Fuse)

	if g.Fuse > 0 {
		g.props.Log(g.props.Name+"...", false)
		return
	}
	g.explode()
}

func (g *TestGrenade) explode() {
	room, center, ok := g.props.Where()
	if !ok {
		domain.DestroyItem(g)
		return
	}

	g.props.Log("БАБАХ!!!", true)
	if !g.world.GrenadeExploded {
		g.world.GrenadeExploded = true
		if g.Activator != nil {
			g.Activator.Say("Вот это бомбануло")
		}
	}
	g.world.GrenadeTitle = grenadeExplodedName

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			p := center.Add(domain.Position{X: dx, Y: dy})
			if unit := room.UnitAt(p); unit != nil {
				systems.ReceiveAttack(unit, systems.AttackRoll{
					Attacker: g.Activator,
					Attack:   GrenadeAttack,
					Damage:   GrenadeDamage.Roll(g.world.Rng),
					Crit:     true,
				})
			}
			domain.PlaceObject(NewSmoke(GrenadeSmokeLife), room, p)
		}
	}

	domain.DestroyItem(g)
}
