package systems

import (
	"roguetester/internal/domain"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Node - узел дерева поиска. Живет только в пределах одного поиска.
type Node struct {
	Pos      domain.Position
	Parent   *Node
	Children []*Node
	Depth    int
}

// AddChild подвешивает узел с позицией p.
func (n *Node) AddChild(p domain.Position) *Node {
	child := &Node{Pos: p, Parent: n, Depth: n.Depth + 1}
	n.Children = append(n.Children, child)
	return child
}

// Path - путь от первого шага после корня до узла включительно.
func (n *Node) Path() []domain.Position {
	var out []domain.Position
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		out = append(out, cur.Pos)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// GoalTest - достигнута ли цель из позиции p.
type GoalTest func(p, goal domain.Position) bool

// EvalFunc - оценка узла для открытого списка.
type EvalFunc func(n *Node) int

// ExpandFunc - соседи, в которые можно шагнуть из узла.
type ExpandFunc func(n *Node) []domain.Position

// GoalAdjacent - встать вплотную к цели (манхэттен == 1).
func GoalAdjacent(p, goal domain.Position) bool {
	return p.Manhattan(goal) == 1
}

// GoalExact - прийти ровно в цель.
func GoalExact(p, goal domain.Position) bool {
	return p == goal
}

// GoalWithin - манхэттен до цели в [from, to).
func GoalWithin(from, to int) GoalTest {
	return func(p, goal domain.Position) bool {
		d := p.Manhattan(goal)
		return d >= from && d < to
	}
}

// Search - поиск "сначала лучший". Возвращает узел, удовлетворяющий goalTest,
// или false, если открытый список исчерпан или превышен лимит итераций
// (maxIter <= 0 - без лимита).
func Search(start, goal domain.Position, goalTest GoalTest, eval EvalFunc, expand ExpandFunc, maxIter int) (*Node, bool) {
	root := &Node{Pos: start}

	var open openList
	open.push(root, eval(root))
	expanded := make(domain.PositionSet)

	for iter := 0; !open.empty(); iter++ {
		if maxIter > 0 && iter >= maxIter {
			return nil, false
		}

		node := open.pop()
		if expanded.Has(node.Pos) {
			continue
		}
		if goalTest(node.Pos, goal) {
			return node, true
		}
		expanded.Add(node.Pos)

		for _, p := range expand(node) {
			if expanded.Has(p) {
				continue
			}
			child := node.AddChild(p)
			open.push(child, eval(child))
		}
	}

	return nil, false
}

// Expand - четыре соседа, проходимые прямо сейчас.
func Expand(room *domain.Room) ExpandFunc {
	return func(n *Node) []domain.Position {
		var out []domain.Position
		for _, d := range room.ValidDirections(n.Pos) {
			out = append(out, n.Pos.Add(d))
		}
		return out
	}
}

// ExpandWithDoors - как Expand, но еще и через двери (дверь можно открыть по дороге).
func ExpandWithDoors(room *domain.Room) ExpandFunc {
	return func(n *Node) []domain.Position {
		var out []domain.Position
		for _, d := range domain.Directions {
			p := n.Pos.Add(d)
			if room.Passable(p) {
				out = append(out, p)
				continue
			}
			if obj := room.ObjectAt(p); obj != nil && obj.Props().IsDoor {
				out = append(out, p)
			}
		}
		return out
	}
}

// PathOptions настраивает FindPath. Нулевые поля - значения по умолчанию.
type PathOptions struct {
	Goal          GoalTest
	Expand        ExpandFunc
	MaxIterations int
}

// FindPath ищет путь по комнате. Оценка: манхэттен до цели + глубина
// (жадно, не обязательно кратчайший путь). Пустой путь с true - старт уже
// удовлетворяет цели; false - пути нет.
func FindPath(room *domain.Room, start, goal domain.Position, opts PathOptions) ([]domain.Position, bool) {
	goalTest := opts.Goal
	if goalTest == nil {
		goalTest = GoalAdjacent
	}
	expand := opts.Expand
	if expand == nil {
		expand = Expand(room)
	}
	maxIter := opts.MaxIterations
	if maxIter == 0 && room.World != nil {
		maxIter = room.World.MaxPathIterations
	}

	eval := func(n *Node) int { return n.Pos.Manhattan(goal) + n.Depth }

	node, ok := Search(start, goal, goalTest, eval, expand, maxIter)
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "pathfinding",
			"room":      room.ID,
			"start":     start,
			"goal":      goal,
		}).Debug("No path found")
		return nil, false
	}
	return node.Path(), true
}
