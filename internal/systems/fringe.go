package systems

import (
	"container/heap"
)

// fringeItem - узел в открытом списке поиска.
type fringeItem struct {
	node  *Node
	score int // оценка; чем меньше, тем раньше раскрываем
	seq   int // порядок добавления: при равной оценке раньше добавленный идет первым
	index int // индекс в куче
}

// fringe реализует heap.Interface. Порядок (score, seq) совпадает с порядком
// устойчивой пересортировки списка на каждой итерации.
type fringe []*fringeItem

func (f fringe) Len() int { return len(f) }

func (f fringe) Less(i, j int) bool {
	if f[i].score != f[j].score {
		return f[i].score < f[j].score
	}
	return f[i].seq < f[j].seq
}

func (f fringe) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *fringe) Push(x any) {
	item := x.(*fringeItem)
	item.index = len(*f)
	*f = append(*f, item)
}

func (f *fringe) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // избегаем утечки памяти
	item.index = -1
	*f = old[:n-1]
	return item
}

// openList - обертка с монотонным счетчиком добавлений.
type openList struct {
	items fringe
	seq   int
}

func (o *openList) push(n *Node, score int) {
	heap.Push(&o.items, &fringeItem{node: n, score: score, seq: o.seq})
	o.seq++
}

func (o *openList) pop() *Node {
	return heap.Pop(&o.items).(*fringeItem).node
}

func (o *openList) empty() bool {
	return o.items.Len() == 0
}
