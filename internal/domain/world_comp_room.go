package domain

// Символы тайлов карты. Все, что не стена, проходимо.
const (
	TileWall  = '#'
	TileFloor = '.'
	TileUp    = '<'
	TileDown  = '>'
)

// Room - одна карта: тайлы, занятость клеток юнитами и объектами,
// предметы на полу, очередь ходов, лог и связи с соседними комнатами.
type Room struct {
	ID     int
	Width  int
	Height int

	tiles   [][]rune // [y][x]
	units   []*Unit  // y*Width + x
	objects []Object // y*Width + x
	items   map[Position]*Inventory
	queue   []*Unit // порядок ходов

	logs     []LogRecord
	LogLimit int
	// OnLog вызывается на каждую запись (движок зеркалит лог в logrus).
	OnLog func(r *Room, rec LogRecord)

	Entry    Position
	Leave    Position
	HasLeave bool

	Prev, Next *Room
	World      *World
}

// newRoom строит комнату из строк карты. Ширина - по самой длинной строке,
// короткие строки добиваются стенами.
func newRoom(id int, rows []string, entry Position, leave *Position) *Room {
	width := 0
	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
		if len(grid[y]) > width {
			width = len(grid[y])
		}
	}
	for y := range grid {
		for len(grid[y]) < width {
			grid[y] = append(grid[y], TileWall)
		}
	}

	r := &Room{
		ID:      id,
		Width:   width,
		Height:  len(grid),
		tiles:   grid,
		units:   make([]*Unit, width*len(grid)),
		objects: make([]Object, width*len(grid)),
		items:   make(map[Position]*Inventory),
		Entry:   entry,
	}
	if leave != nil {
		r.Leave = *leave
		r.HasLeave = true
	}
	return r
}

func (r *Room) index(p Position) int {
	return p.Y*r.Width + p.X
}

func (r *Room) InBounds(p Position) bool {
	return p.X >= 0 && p.X < r.Width && p.Y >= 0 && p.Y < r.Height
}

// Tile возвращает символ тайла. За границей карты - стена.
func (r *Room) Tile(p Position) rune {
	if !r.InBounds(p) {
		return TileWall
	}
	return r.tiles[p.Y][p.X]
}

func (r *Room) IsWall(p Position) bool {
	return r.Tile(p) == TileWall
}

func (r *Room) UnitAt(p Position) *Unit {
	if !r.InBounds(p) {
		return nil
	}
	return r.units[r.index(p)]
}

func (r *Room) ObjectAt(p Position) Object {
	if !r.InBounds(p) {
		return nil
	}
	return r.objects[r.index(p)]
}

// Passable: в границах, не стена, нет непроходимого объекта и нет юнита.
func (r *Room) Passable(p Position) bool {
	if !r.InBounds(p) {
		return false
	}
	if r.IsWall(p) || r.UnitAt(p) != nil {
		return false
	}
	if obj := r.ObjectAt(p); obj != nil && !obj.Props().Passable {
		return false
	}
	return true
}

// Opaque: стена или непрозрачный объект.
func (r *Room) Opaque(p Position) bool {
	if r.IsWall(p) {
		return true
	}
	obj := r.ObjectAt(p)
	return obj != nil && obj.Props().Opaque
}

// ValidDirections - стороны, в которые из p можно шагнуть прямо сейчас.
func (r *Room) ValidDirections(p Position) []Position {
	var out []Position
	for _, d := range Directions {
		if r.Passable(p.Add(d)) {
			out = append(out, d)
		}
	}
	return out
}

// --- Юниты ---

// Add ставит юнита в клетку u.Pos и в конец очереди ходов.
func (r *Room) Add(u *Unit) {
	r.units[r.index(u.Pos)] = u
	r.queue = append(r.queue, u)
}

// Remove убирает юнита из клетки и из очереди ходов.
func (r *Room) Remove(u *Unit) {
	if r.InBounds(u.Pos) && r.units[r.index(u.Pos)] == u {
		r.units[r.index(u.Pos)] = nil
	}
	for i, other := range r.queue {
		if other == u {
			r.queue = append(r.queue[:i], r.queue[i+1:]...)
			break
		}
	}
}

// Move переставляет юнита в проходимую клетку.
func (r *Room) Move(u *Unit, to Position) error {
	if !r.Passable(to) {
		return ErrImpassable
	}
	r.units[r.index(u.Pos)] = nil
	r.units[r.index(to)] = u
	u.Pos = to
	return nil
}

// Queue - снимок очереди ходов. Его можно безопасно обходить,
// пока юниты умирают и уходят из комнаты.
func (r *Room) Queue() []*Unit {
	out := make([]*Unit, len(r.queue))
	copy(out, r.queue)
	return out
}

// --- Объекты ---

func (r *Room) setObject(p Position, o Object) {
	r.objects[r.index(p)] = o
}

// ObjectPositions - клетки с объектами в порядке обхода тика (x, затем y).
func (r *Room) ObjectPositions() []Position {
	var out []Position
	for x := 0; x < r.Width; x++ {
		for y := 0; y < r.Height; y++ {
			if r.objects[y*r.Width+x] != nil {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}

// --- Предметы на полу ---

// ItemsAt возвращает контейнер пола, создавая его при первом обращении.
func (r *Room) ItemsAt(p Position) *Inventory {
	inv, ok := r.items[p]
	if !ok {
		inv = NewFloorInventory(r, p)
		r.items[p] = inv
	}
	return inv
}

// FloorItems - предметы в клетке без создания контейнера.
func (r *Room) FloorItems(p Position) []Item {
	if inv, ok := r.items[p]; ok {
		return inv.Items()
	}
	return nil
}

// FloorPositions - клетки, где заведены контейнеры пола, построчно.
func (r *Room) FloorPositions() []Position {
	out := make([]Position, 0, len(r.items))
	for p := range r.items {
		out = append(out, p)
	}
	SortPositions(out)
	return out
}

// Row возвращает строку карты как есть (без юнитов и объектов).
func (r *Room) Row(y int) string {
	return string(r.tiles[y])
}
