package api

import (
	"errors"
	"strings"
)

// Ограничения входящих команд.
const (
	MaxCommandLength = 32
	MaxArgs          = 8
	MaxArgLength     = 200
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (c ClientCommand) Validate() error {
	name := strings.TrimSpace(c.Command)
	if name == "" {
		return errors.New("command is required")
	}
	if len(name) > MaxCommandLength {
		return errors.New("command is too long")
	}
	if len(c.Args) > MaxArgs {
		return errors.New("too many arguments")
	}
	for _, a := range c.Args {
		if len(a) > MaxArgLength {
			return errors.New("argument is too long")
		}
	}
	return nil
}

// Line склеивает команду в строку "attack north" для разбора движком.
func (c ClientCommand) Line() string {
	if len(c.Args) == 0 {
		return c.Command
	}
	return c.Command + " " + strings.Join(c.Args, " ")
}
