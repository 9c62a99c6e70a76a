package dungeon

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed maps/*.txt
var builtinMaps embed.FS

// DefaultCampaign - встроенные комнаты по порядку прохождения.
var DefaultCampaign = []string{"office", "serverroom"}

// LoadBuiltin читает встроенную комнату: maps/<name>.txt и необязательный
// maps/<name>_objects.txt.
func LoadBuiltin(name string) (*Level, []Record, error) {
	data, err := builtinMaps.ReadFile("maps/" + name + ".txt")
	if err != nil {
		return nil, nil, fmt.Errorf("builtin level %q: %w", name, err)
	}
	lvl, err := ParseLevel(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("builtin level %q: %w", name, err)
	}

	objs, err := builtinMaps.ReadFile("maps/" + name + "_objects.txt")
	if errors.Is(err, fs.ErrNotExist) {
		return lvl, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("builtin objects %q: %w", name, err)
	}
	recs, err := ParseRecords(bytes.NewReader(objs))
	if err != nil {
		return nil, nil, fmt.Errorf("builtin objects %q: %w", name, err)
	}
	return lvl, recs, nil
}
