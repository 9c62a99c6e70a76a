package agent

import (
	"roguetester/internal/domain"
	"roguetester/internal/objects"
	"roguetester/internal/systems"
	"roguetester/pkg/api"
)

var bookName = objects.NewBook().Props().Name

var (
	bugRune   = domain.SkinBug.Rune()
	ownerRune = domain.SkinOwner.Rune()
	doorRune  = domain.SkinDoorClosed.Rune()
)

// Что бот считает проходимым на своей карте, кроме пола и лестниц.
var walkable = map[rune]bool{
	domain.TileFloor:             true,
	domain.TileUp:                true,
	domain.TileDown:              true,
	domain.SkinAdventurer.Rune(): true,
	domain.SkinDoorClosed.Rune(): true, // откроем по дороге
	domain.SkinDoorOpen.Rune():   true,
	domain.SkinSmoke.Rune():      true,
	domain.SkinItem.Rune():       true,
	domain.SkinFooBar.Rune():     true,
	domain.SkinBook.Rune():       true,
	domain.SkinGrenade.Rune():    true,
	bugRune:                      true,
	ownerRune:                    true,
}

func isEnemy(r rune) bool { return r == bugRune || r == ownerRune }
func isExit(r rune) bool  { return r == domain.TileDown }

// localView - карта комнаты глазами бота. Бот считает всё, что не видел, стеной,
// чтобы не строить пути в неизвестность.
type localView struct {
	vision [][]rune
	room   *domain.Room
}

func newLocalView(state api.ServerResponse) *localView {
	v := &localView{vision: make([][]rune, len(state.Vision))}
	tiles := make([]string, len(state.Vision))
	for y, row := range state.Vision {
		v.vision[y] = []rune(row)
		line := make([]rune, len(v.vision[y]))
		for x, r := range v.vision[y] {
			if walkable[r] {
				line[x] = domain.TileFloor
			} else {
				line[x] = domain.TileWall
			}
		}
		tiles[y] = string(line)
	}
	v.room = domain.NewWorld(nil).NewRoom(tiles, domain.Position{}, nil)
	return v
}

func (v *localView) at(p domain.Position) rune {
	if p.Y < 0 || p.Y >= len(v.vision) || p.X < 0 || p.X >= len(v.vision[p.Y]) {
		return ' '
	}
	return v.vision[p.Y][p.X]
}

// find - первая клетка (построчно), подходящая под match.
func (v *localView) find(match func(rune) bool) (domain.Position, bool) {
	for y, row := range v.vision {
		for x, r := range row {
			if match(r) {
				return domain.Position{X: x, Y: y}, true
			}
		}
	}
	return domain.Position{}, false
}

// nearest - ближайшая по манхэттену клетка, подходящая под match.
func (v *localView) nearest(from domain.Position, match func(rune) bool) (domain.Position, bool) {
	best, found := domain.Position{}, false
	for y, row := range v.vision {
		for x, r := range row {
			p := domain.Position{X: x, Y: y}
			if p == from || !match(r) {
				continue
			}
			if !found || from.Manhattan(p) < from.Manhattan(best) {
				best, found = p, true
			}
		}
	}
	return best, found
}

// nearestFrontier - ближайшая известная проходимая клетка рядом с неизведанной.
func (v *localView) nearestFrontier(from domain.Position) (domain.Position, bool) {
	best, found := domain.Position{}, false
	for y, row := range v.vision {
		for x := range row {
			p := domain.Position{X: x, Y: y}
			if p == from || !v.room.Passable(p) || !v.touchesUnknown(p) {
				continue
			}
			if !found || from.Manhattan(p) < from.Manhattan(best) {
				best, found = p, true
			}
		}
	}
	return best, found
}

func (v *localView) touchesUnknown(p domain.Position) bool {
	for _, d := range domain.Directions {
		if v.at(p.Add(d)) == ' ' {
			return true
		}
	}
	return false
}

func (v *localView) stepTowards(from, goal domain.Position, test systems.GoalTest) (domain.Command, bool) {
	path, ok := systems.FindPath(v.room, from, goal, systems.PathOptions{
		Goal:          test,
		MaxIterations: PathLimit,
	})
	if !ok || len(path) == 0 {
		return domain.Command{}, false
	}

	next := path[0]
	dir := domain.DirectionName(next.Sub(from))
	if v.at(next) == doorRune {
		return domain.Cmd(domain.CmdUse, dir), true
	}
	return domain.Cmd(domain.CmdMove, dir), true
}
