package systems

import (
	"roguetester/internal/domain"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// DecideFunc - функция принятия решений ИИ: ровно одна команда на ход.
type DecideFunc func(u *domain.Unit) domain.Command

// Параметры поведения.
const (
	StationaryRange  = 4 // турель бьет по прямой не дальше
	SummonRange      = 5 // заказчик призывает, если цель не дальше
	FollowBandFrom   = 2 // вызванный баг держится от хозяина в [from, to)
	FollowBandTo     = 3
	SummonerBandFrom = 3 // заказчик держится от цели в [from, to)
	SummonerBandTo   = 4
)

func aiLog(u *domain.Unit, decision string, cmd domain.Command) domain.Command {
	logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"unit":      u.Name,
		"pos":       u.Pos,
		"decision":  decision,
		"command":   cmd.String(),
	}).Debug("AI decision")
	return cmd
}

func directed(name string, d domain.Position) domain.Command {
	return domain.Cmd(name, domain.DirectionName(d))
}

// stepAlong - первый шаг пути как команда движения.
func stepAlong(u *domain.Unit, path []domain.Position) domain.Command {
	return directed(domain.CmdMove, path[0].Sub(u.Pos))
}

// DecidePassive - всегда ждет.
func DecidePassive(u *domain.Unit) domain.Command {
	return aiLog(u, "passive", domain.Cmd(domain.CmdWait))
}

// DecideStationary - турель. Бьет самую прокачанную видимую цель на одной
// линии с собой не дальше StationaryRange.
func DecideStationary(u *domain.Unit) domain.Command {
	test := func(c Candidate) bool {
		diff := c.Pos.Sub(u.Pos)
		return u.Faction.Opposes(c.Faction) &&
			(diff.X == 0 || diff.Y == 0) &&
			u.Pos.Manhattan(c.Pos) <= StationaryRange
	}

	target, ok := SelectTarget(u, test, ByLevel)
	if !ok {
		return aiLog(u, "no target", domain.Cmd(domain.CmdWait))
	}
	return aiLog(u, "shoot "+target.Name, directed(domain.CmdAttack, target.Pos.Sub(u.Pos).Sign()))
}

// DecidePursuer - баг. Бежит к ближайшей цели и кусает.
func DecidePursuer(u *domain.Unit) domain.Command {
	target, ok := SelectTarget(u, nil, Closest(u))
	if !ok {
		return aiLog(u, "no target", domain.Cmd(domain.CmdIdle))
	}

	if u.Pos.Touch(target.Pos) {
		return aiLog(u, "bite "+target.Name, directed(domain.CmdAttack, target.Pos.Sub(u.Pos)))
	}

	if path, ok := FindPath(u.Room, u.Pos, target.Pos, PathOptions{}); ok && len(path) > 0 {
		return aiLog(u, "chase "+target.Name, stepAlong(u, path))
	}
	return aiLog(u, "no path", domain.Cmd(domain.CmdWait))
}

// DecideFollower - вызванный баг. Как DecidePursuer, но без цели
// держится рядом с хозяином.
func DecideFollower(u *domain.Unit) domain.Command {
	target, ok := SelectTarget(u, nil, ByLevel)

	var (
		path  []domain.Position
		found bool
	)
	switch {
	case ok:
		if u.Pos.Touch(target.Pos) {
			return aiLog(u, "bite "+target.Name, directed(domain.CmdAttack, target.Pos.Sub(u.Pos)))
		}
		path, found = FindPath(u.Room, u.Pos, target.Pos, PathOptions{})
	case u.Master != nil && !u.Master.Dead && u.Master.Room == u.Room:
		path, found = FindPath(u.Room, u.Pos, u.Master.Pos, PathOptions{
			Goal: GoalWithin(FollowBandFrom, FollowBandTo),
		})
	}

	if found && len(path) > 0 {
		return aiLog(u, "follow", stepAlong(u, path))
	}
	return aiLog(u, "stay", domain.Cmd(domain.CmdWait))
}

// DecideSummoner - заказчик. Призывает багов, пока цель близко и есть место,
// иначе подходит к цели на дистанцию, открывая по дороге двери.
// Без цели подбирает то, что лежит под ногами.
func DecideSummoner(u *domain.Unit) domain.Command {
	target, ok := SelectTarget(u, nil, ByLevel)
	if !ok {
		if len(u.Room.FloorItems(u.Pos)) > 0 {
			return aiLog(u, "loot", domain.Cmd(domain.CmdTake))
		}
		return aiLog(u, "no target", domain.Cmd(domain.CmdIdle))
	}

	if u.Pos.Manhattan(target.Pos) <= SummonRange && u.CanSummon() {
		if dirs := u.Room.ValidDirections(u.Pos); len(dirs) > 0 {
			d := dirs[u.Room.World.Intn(len(dirs))]
			return aiLog(u, "summon", directed(domain.CmdSummon, d))
		}
	}

	path, found := FindPath(u.Room, u.Pos, target.Pos, PathOptions{
		Goal:   GoalWithin(SummonerBandFrom, SummonerBandTo),
		Expand: ExpandWithDoors(u.Room),
	})
	switch {
	case found && len(path) > 0:
		step := path[0]
		if obj := u.Room.ObjectAt(step); obj != nil && obj.Props().IsDoor && obj.Props().Closed {
			return aiLog(u, "open door", directed(domain.CmdUse, step.Sub(u.Pos)))
		}
		return aiLog(u, "approach "+target.Name, stepAlong(u, path))
	case u.Pos.Touch(target.Pos):
		return aiLog(u, "attack "+target.Name, directed(domain.CmdAttack, target.Pos.Sub(u.Pos)))
	}
	return aiLog(u, "no path", domain.Cmd(domain.CmdWait))
}
