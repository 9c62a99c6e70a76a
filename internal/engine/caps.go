package engine

import (
	"roguetester/internal/core/types/enums"
	"roguetester/internal/domain"
)

// AutoMinLevel - с какого уровня тестеру доступен автотест.
const AutoMinLevel = 3

// baseCaps - команды любого существа.
var baseCaps = domain.Capabilities{}.
	With(domain.Capability{Name: domain.CmdMove, Action: domain.ActionMove, Help: "[west|north|east|south] - двигаться в заданном направлении"}).
	With(domain.Capability{Name: domain.CmdWait, Action: domain.ActionWait, Help: "- пропустить ход"}).
	With(domain.Capability{Name: domain.CmdAttack, Action: domain.ActionAttack, Help: "[west|north|east|south] - атаковать в заданном направлении"}).
	With(domain.Capability{Name: domain.CmdDrop, Action: domain.ActionDrop, Help: "[номер] - бросить предмет на пол"}).
	With(domain.Capability{Name: domain.CmdTake, Action: domain.ActionTake, Help: "[номер] - поднять предмет с пола"}).
	With(domain.Capability{Name: domain.CmdItem, Action: domain.ActionItem, Help: "[номер] - использовать предмет из инвентаря"}).
	With(domain.Capability{Name: domain.CmdUse, Action: domain.ActionUse, Help: "[west|north|east|south] - использовать объект"}).
	With(domain.Capability{Name: domain.CmdEnter, Action: domain.ActionEnter, Help: "- войти в переход на другую карту"}).
	With(domain.Capability{Name: domain.CmdSay, Action: domain.ActionSay, Help: "[text] - сказать что-нибудь"})

// aiCaps - ИИ еще умеет бездельничать молча, когда целей нет.
var aiCaps = baseCaps.
	With(domain.Capability{Name: domain.CmdIdle, Action: domain.ActionIdle, Help: "- ничего не делать"})

var adventurerCaps = baseCaps.
	With(domain.Capability{Name: domain.CmdWait, Action: domain.ActionProcrastinate, Help: "- тактическая прокрастинация. Пропускает ход."}).
	With(domain.Capability{Name: domain.CmdSmoke, Action: domain.ActionSmoke, Help: "[west|north|east|south] - разместить заслоняющую обзор стену из трёх смоук-тестов. Стоит 1 энергии."}).
	With(domain.Capability{Name: domain.CmdAuto, Action: domain.ActionAuto, Help: "[west|north|east|south] - разместить на карте турель-автотест. Стоит 3 энергии.", Available: domain.MinLevel(AutoMinLevel)})

var autoTestCaps = aiCaps.
	With(domain.Capability{Name: domain.CmdAttack, Action: domain.ActionBurst, Help: "[west|north|east|south] - очередь из трёх автотестов, стреляет на расстояние до четырёх тайлов."}).
	With(domain.Capability{Name: domain.CmdWait, Action: domain.ActionIdle, Help: "- пропустить ход"})

var ownerCaps = aiCaps.
	With(domain.Capability{Name: domain.CmdSummon, Action: domain.ActionSummon, Help: "[west|north|east|south] - открыть новый баг"})

// capsFor - таблица возможностей вида юнита. Таблицы неизменяемы,
// юниты одного вида делят одну таблицу.
func capsFor(kind enums.UnitKind) domain.Capabilities {
	switch kind {
	case enums.UnitKindAdventurer:
		return adventurerCaps
	case enums.UnitKindAutoTest:
		return autoTestCaps
	case enums.UnitKindOwner:
		return ownerCaps
	default:
		return aiCaps
	}
}
