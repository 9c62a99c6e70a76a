package config

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"roguetester/internal/engine"
	"roguetester/pkg/dungeon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, ModeConsole, cfg.Mode)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "cfg.yaml", `
seed: 42
mode: bot
log:
  level: debug
hero:
  name: Петя
  level: 2
bot:
  max_turns: 100
pathfinding:
  max_iterations: 500
rooms:
  - builtin: office
  - generate:
      width: 30
      height: 15
      bugs: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, ModeBot, cfg.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "untouched keys keep defaults")
	assert.Equal(t, 100, cfg.Bot.MaxTurns)
	require.Len(t, cfg.Rooms, 2)
	assert.Equal(t, 2, cfg.Rooms[1].Generate.Bugs)

	ec := cfg.Engine()
	assert.Equal(t, engine.Config{
		Seed:              42,
		MaxPathIterations: 500,
		LogLimit:          engine.DefaultLogLimit,
		HeroName:          "Петя",
		HeroLevel:         2,
	}, ec)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "seed: [1, 2"},
		{"unknown mode", "mode: gui"},
		{"negative level", "hero:\n  level: -1"},
		{"room without source", "rooms:\n  - objects: a.txt"},
		{"room with two sources", "rooms:\n  - builtin: office\n    map: a.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "cfg.yaml", tt.content))
			assert.Error(t, err)
		})
	}
}

func TestSources(t *testing.T) {
	mapPath := writeFile(t, "room.txt", "5 1 1 3 1\n#####\n#...#\n#####\n")
	objPath := writeFile(t, "room_objects.txt", "FOO;2;1\n")

	cfg := Default()
	cfg.Rooms = []RoomConfig{
		{Map: mapPath, Objects: objPath},
		{Generate: &GenerateConfig{Width: 20, Height: 12, Rooms: 3, Bugs: 1}},
	}
	sources, err := cfg.Sources(rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, sources, 2)

	assert.Equal(t, 5, sources[0].Level.Width)
	require.Len(t, sources[0].Records, 1)
	assert.Equal(t, dungeon.TagFoo, sources[0].Records[0].Tag)

	// Последняя сгенерированная комната без спуска, но со входом '<'
	assert.Nil(t, sources[1].Level.Leave)
	assert.Equal(t, '<', sources[1].Level.At(sources[1].Level.Entry))
}

func TestSources_DefaultCampaign(t *testing.T) {
	sources, err := Default().Sources(rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Len(t, sources, len(dungeon.DefaultCampaign))

	_, err = Config{Rooms: []RoomConfig{{Map: "/nonexistent/map.txt"}}}.Sources(nil)
	assert.Error(t, err)
}
