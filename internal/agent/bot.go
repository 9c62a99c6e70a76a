package agent

import (
	"context"
	"errors"
	"strconv"

	"roguetester/internal/domain"
	"roguetester/internal/systems"
	"roguetester/pkg/api"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// PathLimit - лимит итераций поиска пути бота по его локальной карте.
const PathLimit = 4000

// CommandSink - куда бот отдает команды (очередь ввода героя).
type CommandSink interface {
	PushLine(ctx context.Context, line string) error
}

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Он видит ровно то же, что и человек: HUD-снимки героя из хаба,
// и отвечает строками команд через ту же очередь ввода.
//
// Жизненный цикл:
//  1. NewBot получает личный канал снимков героя (Inbox).
//  2. Run слушает Inbox в отдельной горутине.
//  3. На UPDATE бот строит локальную карту из Vision и выбирает команду,
//     на LEVEL_UP выбирает характеристику.
//  4. DEAD, BYE или закрытый Inbox - бот завершается.
type Bot struct {
	Token string
	Inbox <-chan api.ServerResponse
	Sink  CommandSink
	Rng   domain.Roller
	// MaxTurns - после стольких ходов бот выходит из игры. 0 - без ограничения.
	MaxTurns int

	turns int
	// exit - последний увиденный спуск '>' (в комнате exitRoom)
	exit     *domain.Position
	exitRoom int
}

func NewBot(token string, inbox <-chan api.ServerResponse, sink CommandSink, rng domain.Roller) *Bot {
	return &Bot{
		Token: token,
		Inbox: inbox,
		Sink:  sink,
		Rng:   rng,
	}
}

func (b *Bot) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "bot",
		"token":     b.Token,
	})
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run(ctx context.Context) error {
	b.log().Info("Bot started")
	defer b.log().WithField("turns", b.turns).Info("Bot shut down")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-b.Inbox:
			if !ok {
				return nil
			}
			line, done := b.React(event)
			if done {
				return nil
			}
			if line == "" {
				continue
			}
			if err := b.Sink.PushLine(ctx, line); err != nil {
				if errors.Is(err, domain.ErrQuit) || errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
		}
	}
}

// React - ответ бота на один снимок. Пустая строка - отвечать не нужно.
// done - игра для бота закончилась.
func (b *Bot) React(event api.ServerResponse) (line string, done bool) {
	switch event.Type {
	case api.ResponseDead, api.ResponseBye:
		return "", true
	case api.ResponseLevelUp:
		return strconv.Itoa(b.Rng.Intn(4)), false
	case api.ResponseRejected:
		// Отказ не тратит ход: не спорим и пропускаем его
		return domain.CmdWait, false
	case api.ResponseUpdate:
		b.turns++
		if b.MaxTurns > 0 && b.turns > b.MaxTurns {
			return domain.MetaQuit, false
		}
		cmd := b.decide(event)
		b.log().WithFields(logrus.Fields{
			"tick":    event.Tick,
			"command": cmd.String(),
		}).Debug("Bot decision")
		return cmd.String(), false
	}
	return "", false
}

// decide - выбор действия по HUD: лечиться, бить соседа, подбирать,
// гнаться за видимой целью, спускаться, исследовать, ждать.
func (b *Bot) decide(state api.ServerResponse) domain.Command {
	if state.Stats == nil || len(state.Vision) == 0 {
		return domain.Cmd(domain.CmdWait)
	}
	view := newLocalView(state)
	me := domain.Position{X: state.Stats.X, Y: state.Stats.Y}

	if p, ok := view.find(isExit); ok {
		b.exit, b.exitRoom = &p, state.Room
	}

	if state.Stats.Health*2 < state.Stats.HealthMax {
		if i := indexOf(state.Inventory, bookName); i >= 0 {
			return domain.Cmd(domain.CmdItem, strconv.Itoa(i))
		}
	}

	for _, d := range domain.Directions {
		if isEnemy(view.at(me.Add(d))) {
			return domain.Cmd(domain.CmdAttack, domain.DirectionName(d))
		}
	}

	if len(state.Floor) > 0 {
		return domain.Cmd(domain.CmdTake)
	}

	if target, ok := view.nearest(me, isEnemy); ok {
		if step, ok := view.stepTowards(me, target, systems.GoalAdjacent); ok {
			return step
		}
	}

	if b.exit != nil && b.exitRoom == state.Room {
		if *b.exit == me {
			b.exit = nil
			return domain.Cmd(domain.CmdEnter)
		}
		if step, ok := view.stepTowards(me, *b.exit, systems.GoalExact); ok {
			return step
		}
	}

	if frontier, ok := view.nearestFrontier(me); ok {
		if step, ok := view.stepTowards(me, frontier, systems.GoalExact); ok {
			return step
		}
	}

	return domain.Cmd(domain.CmdWait)
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
