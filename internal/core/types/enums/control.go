package enums

// ControlKind - какая функция принятия решений управляет юнитом.
type ControlKind uint8

const (
	ControlPassive    ControlKind = iota // всегда ждет
	ControlStationary                    // турель
	ControlPursuer                       // бежит и кусается
	ControlFollower                      // держится рядом с хозяином
	ControlSummoner                      // призывает и открывает двери
	ControlPlayer                        // ждет ввода
)

var controlKindToString = map[ControlKind]string{
	ControlPassive:    "PASSIVE",
	ControlStationary: "STATIONARY",
	ControlPursuer:    "PURSUER",
	ControlFollower:   "FOLLOWER",
	ControlSummoner:   "SUMMONER",
	ControlPlayer:     "PLAYER",
}

func (c ControlKind) String() string {
	if val, ok := controlKindToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}
