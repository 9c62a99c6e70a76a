package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"roguetester/internal/engine"
	"roguetester/pkg/dungeon"

	"gopkg.in/yaml.v3"
)

// Режимы ввода героя.
const (
	ModeConsole = "console"
	ModeWS      = "ws"
	ModeBot     = "bot"
)

// Config holds all configuration for the simulation server.
type Config struct {
	// Seed - мастер-зерно. 0 - от текущего времени.
	Seed int64  `yaml:"seed"`
	Mode string `yaml:"mode"`

	Log         LogConfig         `yaml:"log"`
	Server      ServerConfig      `yaml:"server"`
	Hero        HeroConfig        `yaml:"hero"`
	Bot         BotConfig         `yaml:"bot"`
	Pathfinding PathfindingConfig `yaml:"pathfinding"`

	LogQueueLimit int `yaml:"log_queue_limit"`

	// Rooms - комнаты по порядку прохождения. Пусто - встроенная кампания.
	Rooms []RoomConfig `yaml:"rooms"`
}

// LogConfig - уровень и формат logrus.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

// ServerConfig - http/websocket сервер.
type ServerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

type HeroConfig struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

type BotConfig struct {
	MaxTurns int `yaml:"max_turns"` // 0 - без ограничения
}

type PathfindingConfig struct {
	MaxIterations int `yaml:"max_iterations"` // 0 - без ограничения
}

// RoomConfig - одна комната: встроенная (builtin), из файлов (map + objects)
// или сгенерированная (generate). Задается ровно один способ.
type RoomConfig struct {
	Builtin  string          `yaml:"builtin"`
	Map      string          `yaml:"map"`
	Objects  string          `yaml:"objects"`
	Generate *GenerateConfig `yaml:"generate"`
}

// GenerateConfig - параметры генератора комнат и коридоров.
type GenerateConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	Rooms      int `yaml:"rooms"`
	Bugs       int `yaml:"bugs"`
	BugLevel   int `yaml:"bug_level"`
	Owners     int `yaml:"owners"`
	OwnerLevel int `yaml:"owner_level"`
	Items      int `yaml:"items"`
	Coffee     int `yaml:"coffee"`
	Games      int `yaml:"games"`
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		Mode: ModeConsole,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Enabled: false,
			Listen:  ":8080",
		},
		Hero: HeroConfig{
			Name: engine.DefaultHeroName,
		},
		LogQueueLimit: engine.DefaultLogLimit,
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate проверяет значения, которые нельзя молча исправить.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeConsole, ModeWS, ModeBot:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Mode == ModeWS && c.Server.Listen == "" {
		return errors.New("ws mode needs server.listen")
	}
	if c.Hero.Level < 0 {
		return fmt.Errorf("negative hero level %d", c.Hero.Level)
	}
	if c.Pathfinding.MaxIterations < 0 || c.LogQueueLimit < 0 {
		return errors.New("limits must not be negative")
	}
	for i, r := range c.Rooms {
		if err := r.validate(); err != nil {
			return fmt.Errorf("rooms[%d]: %w", i, err)
		}
	}
	return nil
}

func (r RoomConfig) validate() error {
	ways := 0
	if r.Builtin != "" {
		ways++
	}
	if r.Map != "" {
		ways++
	}
	if r.Generate != nil {
		ways++
	}
	if ways != 1 {
		return errors.New("exactly one of builtin, map or generate is required")
	}
	if r.Objects != "" && r.Map == "" {
		return errors.New("objects file needs a map file")
	}
	return nil
}

// Engine - параметры движка из конфига.
func (c Config) Engine() engine.Config {
	cfg := engine.NewConfig()
	cfg.Seed = c.Seed
	cfg.MaxPathIterations = c.Pathfinding.MaxIterations
	cfg.LogLimit = c.LogQueueLimit
	if c.Hero.Name != "" {
		cfg.HeroName = c.Hero.Name
	}
	cfg.HeroLevel = c.Hero.Level
	return cfg
}

// Sources загружает или генерирует комнаты. rng нужен только генератору.
func (c Config) Sources(rng *rand.Rand) ([]engine.RoomSource, error) {
	rooms := c.Rooms
	if len(rooms) == 0 {
		for _, name := range dungeon.DefaultCampaign {
			rooms = append(rooms, RoomConfig{Builtin: name})
		}
	}

	sources := make([]engine.RoomSource, 0, len(rooms))
	for i, r := range rooms {
		src, err := r.source(rng, i > 0, i < len(rooms)-1)
		if err != nil {
			return nil, fmt.Errorf("rooms[%d]: %w", i, err)
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func (r RoomConfig) source(rng *rand.Rand, up, down bool) (engine.RoomSource, error) {
	switch {
	case r.Builtin != "":
		lvl, recs, err := dungeon.LoadBuiltin(r.Builtin)
		return engine.RoomSource{Level: lvl, Records: recs}, err

	case r.Map != "":
		lvl, err := dungeon.LoadLevel(r.Map)
		if err != nil {
			return engine.RoomSource{}, err
		}
		src := engine.RoomSource{Level: lvl}
		if r.Objects != "" {
			if src.Records, err = dungeon.LoadRecords(r.Objects); err != nil {
				return engine.RoomSource{}, err
			}
		}
		return src, nil

	case r.Generate != nil:
		g := r.Generate
		b := dungeon.NewLevel(rng)
		if g.Width > 0 && g.Height > 0 {
			b.WithSize(g.Width, g.Height)
		}
		rooms := g.Rooms
		if rooms <= 0 {
			rooms = dungeon.MaxRooms
		}
		lvl, recs := b.Generate(rooms, up, down, dungeon.Population{
			Bugs:       g.Bugs,
			BugLevel:   g.BugLevel,
			Owners:     g.Owners,
			OwnerLevel: g.OwnerLevel,
			Items:      g.Items,
			Coffee:     g.Coffee,
			Games:      g.Games,
		})
		return engine.RoomSource{Level: lvl, Records: recs}, nil
	}
	return engine.RoomSource{}, errors.New("empty room config")
}
