package domain

import "strings"

// Command - внешняя команда: имя и позиционные аргументы.
// Приходит от игрока или от функции принятия решений ИИ.
type Command struct {
	Name string
	Args []string
}

// Имена команд таблицы возможностей.
const (
	CmdMove   = "move"
	CmdWait   = "wait"
	CmdIdle   = "idle"
	CmdAttack = "attack"
	CmdDrop   = "drop"
	CmdTake   = "take"
	CmdItem   = "item"
	CmdUse    = "use"
	CmdEnter  = "enter"
	CmdSay    = "say"
	CmdSmoke  = "smoke"
	CmdAuto   = "auto"
	CmdSummon = "summon"
)

// Мета-команды игрока. Не тратят ход и не входят в таблицу возможностей.
const (
	MetaLook  = "look"
	MetaHelp  = "help"
	MetaItems = "items"
	MetaQuit  = "quit"
	MetaExit  = "exit"
)

func Cmd(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// ParseCommand разбирает строку "attack north" в Command. Имя приводится к нижнему регистру.
func ParseCommand(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}
	}
	return Command{Name: strings.ToLower(fields[0]), Args: fields[1:]}
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// IsMeta - команда интерфейса, а не действие в мире.
func (c Command) IsMeta() bool {
	switch c.Name {
	case MetaLook, MetaHelp, MetaItems, MetaQuit, MetaExit:
		return true
	}
	return false
}

// IsQuit - игрок хочет закончить.
func (c Command) IsQuit() bool {
	return c.Name == MetaQuit || c.Name == MetaExit
}
