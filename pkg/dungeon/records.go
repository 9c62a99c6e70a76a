package dungeon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Теги записей файла объектов.
const (
	TagCoffee  = "COFFEE"
	TagGame    = "GAME"
	TagDoor    = "DOOR"
	TagBug     = "BUG"
	TagOwner   = "OWNER"
	TagItem    = "ITEM"
	TagFoo     = "FOO"
	TagBook    = "BOOK"
	TagGrenade = "GRENADE"
)

// Record - строка файла объектов "TAG;x;y;args...".
type Record struct {
	Tag  string
	X, Y int
	Args []string
}

// Arg - i-й дополнительный аргумент или пустая строка.
func (r Record) Arg(i int) string {
	if i < len(r.Args) {
		return r.Args[i]
	}
	return ""
}

func (r Record) String() string {
	parts := append([]string{r.Tag, strconv.Itoa(r.X), strconv.Itoa(r.Y)}, r.Args...)
	return strings.Join(parts, ";")
}

// ParseRecord разбирает одну строку. Тег приводится к верхнему регистру.
func ParseRecord(line string) (Record, error) {
	parts := strings.Split(strings.TrimRight(line, "\r"), ";")
	if len(parts) < 3 {
		return Record{}, fmt.Errorf("object record %q: want \"TAG;x;y;args...\"", line)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Record{}, fmt.Errorf("object record %q: x: %w", line, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return Record{}, fmt.Errorf("object record %q: y: %w", line, err)
	}
	return Record{
		Tag:  strings.ToUpper(strings.TrimSpace(parts[0])),
		X:    x,
		Y:    y,
		Args: parts[3:],
	}, nil
}

// ParseRecords читает все записи. Пустые строки и строки с '//' в начале пропускаются.
func ParseRecords(r io.Reader) ([]Record, error) {
	var out []Record
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		rec, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read objects: %w", err)
	}
	return out, nil
}

// LoadRecords читает файл объектов.
func LoadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open objects: %w", err)
	}
	defer f.Close()

	recs, err := ParseRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
