package domain

// Inventory - упорядоченный список предметов. Бывает двух видов:
// у юнита (позиция берется у владельца) и на полу (позиция фиксирована).
type Inventory struct {
	items []Item

	owner *Unit

	room *Room
	pos  Position
}

func NewUnitInventory(owner *Unit) *Inventory {
	return &Inventory{owner: owner}
}

func NewFloorInventory(room *Room, pos Position) *Inventory {
	return &Inventory{room: room, pos: pos}
}

func (inv *Inventory) Len() int {
	if inv == nil {
		return 0
	}
	return len(inv.items)
}

func (inv *Inventory) At(i int) Item {
	return inv.items[i]
}

// Items - копия списка, чтобы предметы могли уходить из контейнера во время обхода.
func (inv *Inventory) Items() []Item {
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}

func (inv *Inventory) IndexOf(it Item) int {
	for i, other := range inv.items {
		if other == it {
			return i
		}
	}
	return -1
}

// Has - есть ли предмет с таким именем (двери проверяют ключи по имени).
func (inv *Inventory) Has(name string) bool {
	for _, it := range inv.items {
		if it.Props().Name == name {
			return true
		}
	}
	return false
}

func (inv *Inventory) Room() *Room {
	if inv.owner != nil {
		return inv.owner.Room
	}
	return inv.room
}

func (inv *Inventory) Position() Position {
	if inv.owner != nil {
		return inv.owner.Pos
	}
	return inv.pos
}

// Add кладет предмет в контейнер, вынимая его из прежнего.
func (inv *Inventory) Add(it Item) {
	if c := it.Props().Container; c != nil {
		c.remove(it)
	}
	inv.append(it)
}

func (inv *Inventory) append(it Item) {
	inv.items = append(inv.items, it)
	it.Props().Container = inv
}

func (inv *Inventory) remove(it Item) {
	if i := inv.IndexOf(it); i >= 0 {
		inv.items = append(inv.items[:i], inv.items[i+1:]...)
	}
	if it.Props().Container == inv {
		it.Props().Container = nil
	}
}

// ShiftItem перекладывает предмет с индексом index из from в to.
// Отрицательный индекс считается с конца. Индекс вне диапазона
// не ошибка: берется последний предмет. Пустой from - nil.
func ShiftItem(from, to *Inventory, index int) Item {
	n := from.Len()
	if n == 0 {
		return nil
	}
	if index >= n || index < -n {
		index = -1
	}
	if index < 0 {
		index += n
	}
	it := from.items[index]
	from.remove(it)
	to.append(it)
	return it
}
