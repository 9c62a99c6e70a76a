package handlers

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"roguetester/internal/domain"
)

// DirectionArgs - "north|south|west|east".
type DirectionArgs struct {
	Dir domain.Position
}

func (a *DirectionArgs) Parse(args []string) error {
	if len(args) == 0 {
		return domain.ErrInvalidDirection
	}
	dir, err := domain.ParseDirection(args[0])
	if err != nil {
		return err
	}
	a.Dir = dir
	return nil
}

// IndexArgs - необязательный номер предмета. Не число - как будто не указан.
type IndexArgs struct {
	Index int
	Given bool
}

func (a *IndexArgs) Parse(args []string) error {
	a.Index = -1
	if len(args) == 0 {
		return nil
	}
	if n, err := strconv.Atoi(args[0]); err == nil && n >= 0 {
		a.Index = n
		a.Given = true
	}
	return nil
}

// MaxSayLength - сколько символов можно сказать за ход.
const MaxSayLength = 200

// TextArgs - произвольный текст из всех аргументов.
type TextArgs struct {
	Text string
}

func (a *TextArgs) Parse(args []string) error {
	a.Text = strings.Join(args, " ")
	return nil
}

func (a TextArgs) Validate() error {
	if utf8.RuneCountInString(a.Text) > MaxSayLength {
		return errors.New("text is too long")
	}
	return nil
}
