package engine

import (
	"context"
	"fmt"
	"strconv"

	"roguetester/internal/core/types/enums"
	"roguetester/internal/domain"
	"roguetester/internal/engine/handlers"
	"roguetester/internal/systems"
	"roguetester/pkg/api"
)

// decideFuncs - функция принятия решений для каждого вида ИИ.
var decideFuncs = map[enums.ControlKind]systems.DecideFunc{
	enums.ControlPassive:    systems.DecidePassive,
	enums.ControlStationary: systems.DecideStationary,
	enums.ControlPursuer:    systems.DecidePursuer,
	enums.ControlFollower:   systems.DecideFollower,
	enums.ControlSummoner:   systems.DecideSummoner,
}

// AIController - синхронный контроллер ИИ: решение принимается сразу.
type AIController struct {
	kind   enums.ControlKind
	decide systems.DecideFunc
}

// NewAIController выбирает функцию решений по виду. Неизвестный вид - пассивный.
func NewAIController(kind enums.ControlKind) *AIController {
	decide, ok := decideFuncs[kind]
	if !ok {
		kind, decide = enums.ControlPassive, systems.DecidePassive
	}
	return &AIController{kind: kind, decide: decide}
}

func (c *AIController) Kind() enums.ControlKind { return c.kind }

func (c *AIController) Decide(_ context.Context, u *domain.Unit) (domain.Command, error) {
	return c.decide(u), nil
}

// PlayerController - юнит игрока. Показывает HUD и блокируется до команды.
// Мета-команды и недоступные команды ход не тратят: HUD отвечает и ждет дальше.
type PlayerController struct {
	Input  InputSource
	Output Presenter
	// Tick - номер текущего тика для HUD.
	Tick func() int
}

func (p *PlayerController) Kind() enums.ControlKind { return enums.ControlPlayer }

func (p *PlayerController) Decide(ctx context.Context, u *domain.Unit) (domain.Command, error) {
	p.present(u, api.ResponseUpdate, nil)

	for {
		cmd, err := p.Input.Next(ctx)
		if err != nil {
			return domain.Command{}, err
		}

		switch {
		case cmd.Name == "":
			continue
		case cmd.IsQuit():
			p.present(u, api.ResponseBye, []string{fmt.Sprintf("Пока-пока, %s!", u.Name)})
			return domain.Command{}, domain.ErrQuit
		case cmd.IsMeta():
			p.meta(u, cmd)
			continue
		}

		if _, err := u.Caps.Lookup(cmd.Name, u); err != nil {
			p.present(u, api.ResponseRejected, []string{handlers.Describe(err) + ": " + cmd.Name})
			continue
		}
		return cmd, nil
	}
}

// ChooseStat - выбор характеристики при повышении уровня.
// Ответ, который не разбирается, возвращается как неверный выбор: его переспросят.
func (p *PlayerController) ChooseStat(ctx context.Context, u *domain.Unit) (domain.Stat, error) {
	p.present(u, api.ResponseLevelUp, []string{
		"Левелап! Ты теперь " + strconv.Itoa(u.Stats.Level+1) + " уровня! Что будем качать?",
		"0 - Здоровье (психическое), 1 - Интеллект, 2 - Хитрость, 3 - Энергия",
	})

	cmd, err := p.Input.Next(ctx)
	if err != nil {
		return 0, err
	}
	if cmd.IsQuit() {
		return 0, domain.ErrQuit
	}
	stat, ok := domain.ParseStat(cmd.Name)
	if !ok {
		return -1, nil
	}
	return stat, nil
}

// OnDeath - последний кадр.
func (p *PlayerController) OnDeath(u *domain.Unit) {
	p.present(u, api.ResponseDead, []string{"YOU DIED"})
}

func (p *PlayerController) meta(u *domain.Unit, cmd domain.Command) {
	switch cmd.Name {
	case domain.MetaHelp:
		p.present(u, api.ResponseNotice, HelpLines(u))
	case domain.MetaItems:
		p.present(u, api.ResponseNotice, ItemLines(u))
	default:
		p.present(u, api.ResponseUpdate, nil)
	}
}

func (p *PlayerController) present(u *domain.Unit, kind string, notice []string) {
	if p.Output == nil {
		return
	}
	tick := 0
	if p.Tick != nil {
		tick = p.Tick()
	}
	p.Output.Present(u, BuildState(u, kind, tick, notice))
}

// HelpLines - справка по доступным сейчас командам.
func HelpLines(u *domain.Unit) []string {
	lines := []string{"Команды:"}
	for _, cp := range u.Caps.Available(u) {
		lines = append(lines, cp.Name+" "+cp.Help)
	}
	return append(lines,
		"look - показать карту ещё раз",
		"items - инвентарь и предметы на полу",
		"help - эта справка",
		"exit - выйти из игры",
	)
}

// ItemLines - инвентарь и пол под юнитом с номерами.
func ItemLines(u *domain.Unit) []string {
	lines := []string{"Инвентарь:"}
	lines = appendNumbered(lines, itemNames(u.Inventory.Items()))
	lines = append(lines, "", "Пол:")
	if u.Room != nil {
		lines = appendNumbered(lines, itemNames(u.Room.FloorItems(u.Pos)))
	} else {
		lines = appendNumbered(lines, nil)
	}
	return lines
}

func appendNumbered(lines, names []string) []string {
	if len(names) == 0 {
		return append(lines, "Пусто")
	}
	for i, name := range names {
		lines = append(lines, strconv.Itoa(i)+": "+name)
	}
	return lines
}
