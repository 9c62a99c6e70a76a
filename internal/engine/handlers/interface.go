package handlers

import (
	"errors"

	"roguetester/internal/core/types/enums"
	"roguetester/internal/domain"
)

// Типы сообщений результата.
const (
	MsgInfo   = "INFO"
	MsgCombat = "COMBAT"
	MsgSpeech = "SPEECH"
	MsgError  = "ERROR"
)

// SpawnFunc создает юнита заданного вида (еще не размещенного на карте).
// master - призыватель, level - стартовый уровень.
type SpawnFunc func(kind enums.UnitKind, master *domain.Unit, level int) *domain.Unit

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Actor *domain.Unit // Тот, кто выполняет команду
	Room  *domain.Room
	World *domain.World
	Spawn SpawnFunc
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет Msg в лог комнаты сам, это делает движок.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, SPEECH, ERROR)
}

// HandlerFunc - это контракт для любой команды (move, attack, etc).
type HandlerFunc func(ctx Context, args []string) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// Info - сообщение от имени актора.
func Info(msg string) Result {
	return Result{Msg: msg, MsgType: MsgInfo}
}

var errorTexts = []struct {
	err  error
	text string
}{
	{domain.ErrInvalidDirection, "непонятное направление"},
	{domain.ErrInsufficientPower, "недостаточно энергии"},
	{domain.ErrNoSuchItem, "такого предмета нет"},
	{domain.ErrNothingHere, "тут ничего нет"},
	{domain.ErrSummonLimit, "нельзя вызвать больше существ"},
	{domain.ErrLockedDoor, "закрыто на ключ"},
	{domain.ErrImpassable, "туда нельзя"},
	{domain.ErrOutOfBounds, "туда нельзя"},
	{domain.ErrUnknownCommand, "некорректная команда"},
	{domain.ErrUnavailableCommand, "эта команда сейчас недоступна"},
}

// Describe - человеческий текст ошибки действия.
func Describe(err error) string {
	for _, e := range errorTexts {
		if errors.Is(err, e.err) {
			return e.text
		}
	}
	return err.Error()
}

// Fail - неудачное действие: "Имя: причина" в лог, ошибка наружу.
func Fail(ctx Context, err error) (Result, error) {
	return Result{Msg: ctx.Actor.Name + ": " + Describe(err), MsgType: MsgError}, err
}
