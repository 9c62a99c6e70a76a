package dungeon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Point - клетка карты.
type Point struct {
	X, Y int
}

// Level - разобранная карта одной комнаты.
//
// Формат файла: первая строка "width entryX entryY [leaveX leaveY]",
// дальше строки карты из '#', '.', '<', '>'. Короткие строки добиваются стенами.
type Level struct {
	Width int
	Rows  []string
	Entry Point
	Leave *Point
}

func (l *Level) Height() int {
	return len(l.Rows)
}

// At - тайл в клетке. За картой - стена.
func (l *Level) At(p Point) rune {
	if p.Y < 0 || p.Y >= len(l.Rows) || p.X < 0 || p.X >= l.Width {
		return '#'
	}
	row := []rune(l.Rows[p.Y])
	if p.X >= len(row) {
		return '#'
	}
	return row[p.X]
}

// ParseLevel читает карту комнаты.
func ParseLevel(r io.Reader) (*Level, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read level header: %w", err)
		}
		return nil, fmt.Errorf("empty level")
	}

	lvl, err := parseHeader(sc.Text())
	if err != nil {
		return nil, err
	}

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if runes := []rune(line); len(runes) > lvl.Width {
			line = string(runes[:lvl.Width])
		}
		lvl.Rows = append(lvl.Rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read level rows: %w", err)
	}

	// Пустые строки в конце файла - не часть карты
	for len(lvl.Rows) > 0 && strings.TrimSpace(lvl.Rows[len(lvl.Rows)-1]) == "" {
		lvl.Rows = lvl.Rows[:len(lvl.Rows)-1]
	}

	if err := lvl.validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

// LoadLevel читает карту из файла.
func LoadLevel(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level: %w", err)
	}
	defer f.Close()

	lvl, err := ParseLevel(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lvl, nil
}

func parseHeader(line string) (*Level, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 && len(fields) != 5 {
		return nil, fmt.Errorf("level header %q: want \"width entryX entryY [leaveX leaveY]\"", line)
	}

	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("level header %q: %w", line, err)
		}
		nums[i] = n
	}
	if nums[0] <= 0 {
		return nil, fmt.Errorf("level header %q: width must be positive", line)
	}

	lvl := &Level{
		Width: nums[0],
		Entry: Point{X: nums[1], Y: nums[2]},
	}
	if len(nums) == 5 {
		lvl.Leave = &Point{X: nums[3], Y: nums[4]}
	}
	return lvl, nil
}

func (l *Level) validate() error {
	if len(l.Rows) == 0 {
		return fmt.Errorf("level has no rows")
	}
	if l.At(l.Entry) == '#' {
		return fmt.Errorf("entry point %v is a wall or outside the map", l.Entry)
	}
	if l.Leave != nil && l.At(*l.Leave) == '#' {
		return fmt.Errorf("leave point %v is a wall or outside the map", *l.Leave)
	}
	return nil
}

// String - карта в формате файла.
func (l *Level) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d %d", l.Width, l.Entry.X, l.Entry.Y)
	if l.Leave != nil {
		fmt.Fprintf(&b, " %d %d", l.Leave.X, l.Leave.Y)
	}
	for _, row := range l.Rows {
		b.WriteByte('\n')
		b.WriteString(row)
	}
	return b.String()
}
