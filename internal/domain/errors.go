package domain

import "errors"

// Ошибки действий. Все они локальны: логируются и не останавливают симуляцию.
var (
	ErrInvalidDirection   = errors.New("invalid direction")
	ErrImpassable         = errors.New("destination is not passable")
	ErrOutOfBounds        = errors.New("position out of bounds")
	ErrInsufficientPower  = errors.New("not enough power")
	ErrLockedDoor         = errors.New("door is locked")
	ErrNoSuchItem         = errors.New("no such item")
	ErrNothingHere        = errors.New("nothing here")
	ErrSummonLimit        = errors.New("summon limit reached")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrUnavailableCommand = errors.New("command is not available")
)

// ErrQuit - игрок явно вышел. Одно из двух условий конца симуляции.
var ErrQuit = errors.New("player quit")
