package dungeon

import (
	"math/rand"
	"strconv"
)

// Константы генерации
const (
	MapWidth  = 40
	MapHeight = 20
	MaxRooms  = 8
	MinSize   = 4
	MaxSize   = 10
)

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

func createRoom(grid [][]rune, room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			grid[y][x] = '.'
		}
	}
}

func createHCorridor(grid [][]rune, x1, x2, y int) {
	start := min(x1, x2)
	end := max(x1, x2)
	for x := start; x <= end; x++ {
		grid[y][x] = '.'
	}
}

func createVCorridor(grid [][]rune, y1, y2, x int) {
	start := min(y1, y2)
	end := max(y1, y2)
	for y := start; y <= end; y++ {
		grid[y][x] = '.'
	}
}

func (b *LevelBuilder) randRange(min, max int) int {
	if max < min {
		return min
	}
	return b.rng.Intn(max-min+1) + min
}

// LevelBuilder предоставляет fluent API для создания карты комнаты
// и записей ее населения в формате файла объектов.
type LevelBuilder struct {
	width    int
	height   int
	rooms    []Rect
	grid     [][]rune
	records  []Record
	occupied map[Point]bool
	entry    Point
	leave    *Point
	rng      *rand.Rand
}

// NewLevel создает новый builder для карты
func NewLevel(rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		width:    MapWidth,
		height:   MapHeight,
		occupied: make(map[Point]bool),
		rng:      rng,
	}
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = max(width, MinSize+2)
	b.height = max(height, MinSize+2)
	return b
}

// WithRooms генерирует комнаты и коридоры
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	// Инициализируем карту стенами
	b.grid = make([][]rune, b.height)
	for y := range b.grid {
		row := make([]rune, b.width)
		for x := range row {
			row[x] = '#'
		}
		b.grid[y] = row
	}

	// Генерируем комнаты
	b.rooms = make([]Rect, 0, maxRooms)
	for i := 0; i < maxRooms; i++ {
		w := b.randRange(MinSize, min(MaxSize, b.width-2))
		h := b.randRange(MinSize, min(MaxSize, b.height-2))
		x := b.randRange(0, b.width-w-1)
		y := b.randRange(0, b.height-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}

		// Проверяем пересечения
		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}

		if !failed {
			createRoom(b.grid, newRoom)

			// Соединяем с предыдущей комнатой
			if len(b.rooms) > 0 {
				prevX, prevY := b.rooms[len(b.rooms)-1].Center()
				currX, currY := newRoom.Center()

				if b.rng.Intn(2) == 0 {
					createHCorridor(b.grid, prevX, currX, prevY)
					createVCorridor(b.grid, prevY, currY, currX)
				} else {
					createVCorridor(b.grid, prevY, currY, prevX)
					createHCorridor(b.grid, prevX, currX, currY)
				}
			}
			b.rooms = append(b.rooms, newRoom)
		}
	}

	// Хотя бы одна комната есть всегда
	if len(b.rooms) == 0 {
		whole := Rect{X: 0, Y: 0, W: b.width - 1, H: b.height - 1}
		createRoom(b.grid, whole)
		b.rooms = append(b.rooms, whole)
	}

	cx, cy := b.rooms[0].Center()
	b.entry = Point{X: cx, Y: cy}
	b.occupied[b.entry] = true
	return b
}

// PlaceExits ставит лестницы: '<' на точке входа (первая комната),
// '>' в центре последней комнаты, она же точка выхода.
func (b *LevelBuilder) PlaceExits(up, down bool) *LevelBuilder {
	if len(b.rooms) == 0 {
		return b
	}
	if up {
		b.grid[b.entry.Y][b.entry.X] = '<'
	}
	if down {
		room := b.rooms[len(b.rooms)-1]
		cx, cy := room.Center()
		p := Point{X: cx, Y: cy}
		if p == b.entry {
			// Одна комната: спуск рядом со входом
			p.X++
		}
		b.grid[p.Y][p.X] = '>'
		b.leave = &p
		b.occupied[p] = true
	}
	return b
}

// SpawnBugs расселяет багов уровня level по комнатам (кроме первой).
func (b *LevelBuilder) SpawnBugs(count, level int) *LevelBuilder {
	return b.spawn(TagBug, count, false, "", strconv.Itoa(level))
}

// SpawnOwners расселяет заказчиков уровня level по комнатам (кроме первой).
func (b *LevelBuilder) SpawnOwners(count, level int) *LevelBuilder {
	return b.spawn(TagOwner, count, false, "", strconv.Itoa(level))
}

// SpawnItems раскладывает случайные предметы из таблицы по всем комнатам.
func (b *LevelBuilder) SpawnItems(count int) *LevelBuilder {
	for i := 0; i < count; i++ {
		b.spawn(ItemTags[b.rng.Intn(len(ItemTags))], 1, true)
	}
	return b
}

// SpawnMachines ставит кофейные автоматы и игровые станции.
func (b *LevelBuilder) SpawnMachines(coffee, games int) *LevelBuilder {
	b.spawn(TagCoffee, coffee, true)
	return b.spawn(TagGame, games, true)
}

// spawn ставит count записей tag в случайные свободные клетки комнат.
// Враги не появляются в первой комнате, если комнат больше одной.
func (b *LevelBuilder) spawn(tag string, count int, anyRoom bool, args ...string) *LevelBuilder {
	if len(b.rooms) == 0 {
		return b
	}
	for i := 0; i < count; i++ {
		roomIdx := b.rng.Intn(len(b.rooms))
		if !anyRoom && len(b.rooms) > 1 {
			roomIdx = b.rng.Intn(len(b.rooms)-1) + 1 // Не в первой комнате
		}

		p, ok := b.freeCell(b.rooms[roomIdx])
		if !ok {
			continue // Пропускаем, если не нашли место
		}
		b.occupied[p] = true
		b.records = append(b.records, Record{Tag: tag, X: p.X, Y: p.Y, Args: args})
	}
	return b
}

// freeCell - случайная пустая клетка пола внутри комнаты (макс 20 попыток).
func (b *LevelBuilder) freeCell(room Rect) (Point, bool) {
	for attempt := 0; attempt < 20; attempt++ {
		p := Point{
			X: room.X + 1 + b.rng.Intn(max(room.W-1, 1)),
			Y: room.Y + 1 + b.rng.Intn(max(room.H-1, 1)),
		}
		if p.Y >= b.height || p.X >= b.width {
			continue
		}
		if b.grid[p.Y][p.X] == '.' && !b.occupied[p] {
			return p, true
		}
	}
	return Point{}, false
}

// Build собирает карту и записи населения.
func (b *LevelBuilder) Build() (*Level, []Record) {
	if b.grid == nil {
		b.WithRooms(MaxRooms)
	}
	rows := make([]string, len(b.grid))
	for y, row := range b.grid {
		rows[y] = string(row)
	}
	lvl := &Level{
		Width: b.width,
		Rows:  rows,
		Entry: b.entry,
	}
	if b.leave != nil {
		leave := *b.leave
		lvl.Leave = &leave
	}
	return lvl, b.records
}
