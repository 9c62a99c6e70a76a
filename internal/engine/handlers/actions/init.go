package actions

import (
	"roguetester/internal/domain"
	"roguetester/internal/engine/handlers"
)

// Registry - обработчики всех действий по ActionType.
// Какое имя команды ведет на какой обработчик, решает таблица возможностей юнита.
func Registry() map[domain.ActionType]handlers.HandlerFunc {
	return map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionMove:          handlers.WithArgs(HandleMove),
		domain.ActionWait:          handlers.WithoutArgs(HandleWait),
		domain.ActionProcrastinate: handlers.WithoutArgs(HandleProcrastinate),
		domain.ActionIdle:          handlers.WithoutArgs(HandleIdle),
		domain.ActionAttack:        handlers.WithArgs(HandleAttack),
		domain.ActionBurst:         handlers.WithArgs(HandleBurst),
		domain.ActionDrop:          handlers.WithArgs(HandleDrop),
		domain.ActionTake:          handlers.WithArgs(HandleTake),
		domain.ActionItem:          handlers.WithArgs(HandleItem),
		domain.ActionUse:           handlers.WithArgs(HandleUse),
		domain.ActionEnter:         handlers.WithoutArgs(HandleEnter),
		domain.ActionSay:           handlers.WithArgs(HandleSay),
		domain.ActionSmoke:         handlers.WithArgs(HandleSmoke),
		domain.ActionAuto:          handlers.WithArgs(HandleAuto),
		domain.ActionSummon:        handlers.WithArgs(HandleSummon),
	}
}
