package domain

// ActionType - внутренний идентификатор обработчика команды.
// Имя команды (то, что вводит игрок) и обработчик связаны таблицей
// возможностей юнита: "attack" у турели ведет на ActionBurst.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionWait
	ActionProcrastinate
	ActionIdle
	ActionAttack
	ActionBurst
	ActionDrop
	ActionTake
	ActionItem
	ActionUse
	ActionEnter
	ActionSay
	ActionSmoke
	ActionAuto
	ActionSummon
)

var actionCmdToString = map[ActionType]string{
	ActionMove:          "MOVE",
	ActionWait:          "WAIT",
	ActionProcrastinate: "PROCRASTINATE",
	ActionIdle:          "IDLE",
	ActionAttack:        "ATTACK",
	ActionBurst:         "BURST",
	ActionDrop:          "DROP",
	ActionTake:          "TAKE",
	ActionItem:          "ITEM",
	ActionUse:           "USE",
	ActionEnter:         "ENTER",
	ActionSay:           "SAY",
	ActionSmoke:         "SMOKE",
	ActionAuto:          "AUTO",
	ActionSummon:        "SUMMON",
}

// String реализует интерфейс Stringer (для логов)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
