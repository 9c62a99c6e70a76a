package enums

import "strings"

// UnitKind - архетип юнита.
type UnitKind uint8

const (
	UnitKindUnknown UnitKind = iota
	UnitKindAdventurer
	UnitKindAutoTest
	UnitKindBug
	UnitKindOwnedBug
	UnitKindOwner
)

var unitKindToString = map[UnitKind]string{
	UnitKindAdventurer: "ADVENTURER",
	UnitKindAutoTest:   "AUTOTEST",
	UnitKindBug:        "BUG",
	UnitKindOwnedBug:   "OWNED_BUG",
	UnitKindOwner:      "OWNER",
}

var unitKindStringToType = map[string]UnitKind{
	"ADVENTURER": UnitKindAdventurer,
	"AUTOTEST":   UnitKindAutoTest,
	"BUG":        UnitKindBug,
	"OWNED_BUG":  UnitKindOwnedBug,
	"OWNER":      UnitKindOwner,
}

func (k UnitKind) String() string {
	if val, ok := unitKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseUnitKind(s string) UnitKind {
	if val, ok := unitKindStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return UnitKindUnknown
}
