package types

import (
	"fmt"
	"unicode"
)

// Glyph - упакованный "скин" объекта на карте: символ и цвет в одном значении.
//
//	[0:32]  - руна (символ может быть не-ASCII, например 'б' или 'Ф')
//	[32:56] - RGB-цвет (24 бита)
type Glyph uint64

const (
	bitsRune  = 32
	bitsColor = 24

	shiftColor = bitsRune

	maskRune  = (1 << bitsRune) - 1
	maskColor = (1 << bitsColor) - 1
)

// NoGlyph - пустая клетка (пробел без цвета). Так рисуется неизведанное.
const NoGlyph = Glyph(' ')

// MakeGlyph собирает Glyph из цвета 0xRRGGBB и руны.
// Старшие биты цвета (альфа) отбрасываются.
func MakeGlyph(colorRGB uint32, r rune) Glyph {
	return Glyph(uint64(colorRGB&maskColor)<<shiftColor | uint64(uint32(r)&maskRune))
}

// Rune возвращает символ.
func (g Glyph) Rune() rune {
	return rune(uint32(g & maskRune))
}

// Color возвращает цвет в формате 0xRRGGBB.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// WithRune возвращает тот же цвет с другим символом (открытая дверь и т.п.)
func (g Glyph) WithRune(r rune) Glyph {
	return MakeGlyph(g.Color(), r)
}

// HexColor возвращает цвет строкой ("#00FF00").
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}

// String реализует fmt.Stringer: "Glyph{rune='б', color=#FF0000}"
func (g Glyph) String() string {
	r := g.Rune()
	runeStr := string(r)
	if !unicode.IsPrint(r) {
		runeStr = fmt.Sprintf("\\u%04X", r)
	}
	return fmt.Sprintf("Glyph{rune='%s', color=%s}", runeStr, g.HexColor())
}
