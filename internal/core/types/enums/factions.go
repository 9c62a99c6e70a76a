package enums

import "strings"

// Faction - принадлежность юнита. По ней ИИ решает, кого бить.
type Faction uint8

const (
	FactionNeutral Faction = iota
	FactionTesters
	FactionBugs
)

var factionToString = map[Faction]string{
	FactionNeutral: "neutral",
	FactionTesters: "testers",
	FactionBugs:    "bugs",
}

var factionStringToType = map[string]Faction{
	"neutral": FactionNeutral,
	"testers": FactionTesters,
	"bugs":    FactionBugs,
}

func (f Faction) String() string {
	if val, ok := factionToString[f]; ok {
		return val
	}
	return "unknown"
}

// ParseFaction нечувствителен к регистру. Неизвестное - нейтралы.
func ParseFaction(s string) Faction {
	if val, ok := factionStringToType[strings.ToLower(s)]; ok {
		return val
	}
	return FactionNeutral
}

// Opposes - тестеры воюют с багами и наоборот. Нейтралы ни с кем.
func (f Faction) Opposes(other Faction) bool {
	return (f == FactionTesters && other == FactionBugs) ||
		(f == FactionBugs && other == FactionTesters)
}
