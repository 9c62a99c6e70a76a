package enums

import "strings"

// ObjectKind - вид размещаемого объекта или предмета.
// Теги совпадают с тегами файла объектов уровня.
type ObjectKind uint8

const (
	ObjectKindUnknown ObjectKind = iota
	ObjectKindDoor
	ObjectKindSmoke
	ObjectKindCoffeeMachine
	ObjectKindGameMachine
	ObjectKindItem
	ObjectKindFooBar
	ObjectKindBook
	ObjectKindGrenade
)

var objectKindToString = map[ObjectKind]string{
	ObjectKindDoor:          "DOOR",
	ObjectKindSmoke:         "SMOKE",
	ObjectKindCoffeeMachine: "COFFEE",
	ObjectKindGameMachine:   "GAME",
	ObjectKindItem:          "ITEM",
	ObjectKindFooBar:        "FOO",
	ObjectKindBook:          "BOOK",
	ObjectKindGrenade:       "GRENADE",
}

func (k ObjectKind) String() string {
	if val, ok := objectKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseObjectKind(s string) ObjectKind {
	upper := strings.ToUpper(s)
	for k, v := range objectKindToString {
		if v == upper {
			return k
		}
	}
	return ObjectKindUnknown
}
