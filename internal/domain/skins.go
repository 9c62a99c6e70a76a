package domain

import "roguetester/internal/core/types"

// Скины юнитов, объектов и предметов.
var (
	SkinAdventurer = types.MakeGlyph(0x22D3EE, '@')
	SkinAutoTest   = types.MakeGlyph(0x4ADE80, '^')
	SkinBug        = types.MakeGlyph(0xF87171, 'б')
	SkinOwner      = types.MakeGlyph(0xFACC15, 'З')

	SkinDoorClosed    = types.MakeGlyph(0xA16207, '+')
	SkinDoorOpen      = SkinDoorClosed.WithRune('/')
	SkinSmoke         = types.MakeGlyph(0x9CA3AF, '*')
	SkinCoffeeMachine = types.MakeGlyph(0x92400E, 'Ф')
	SkinGameMachine   = types.MakeGlyph(0x818CF8, '0')

	SkinItem    = types.MakeGlyph(0xE5E7EB, '[')
	SkinFooBar  = types.MakeGlyph(0xFB923C, '\'')
	SkinBook    = types.MakeGlyph(0xFDE68A, '"')
	SkinGrenade = types.MakeGlyph(0xEF4444, '!')
)
