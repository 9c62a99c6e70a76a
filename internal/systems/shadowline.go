package systems

// Rational - дробь Num/Den с положительным знаменателем.
// Углы в теневой линии сравниваются без float, чтобы не было дрожания на границах.
type Rational struct {
	Num, Den int
}

func (a Rational) Less(b Rational) bool {
	return a.Num*b.Den < b.Num*a.Den
}

func (a Rational) LessEq(b Rational) bool {
	return a.Num*b.Den <= b.Num*a.Den
}

func maxRational(a, b Rational) Rational {
	if a.Less(b) {
		return b
	}
	return a
}

// Interval - угловой отрезок [Start, End], который занимает клетка.
type Interval struct {
	Start, End Rational
}

// cellInterval - отрезок клетки (row, col) в локальной системе квадранта:
// [n/d, (n+1)/d], n = col+row, d = 2*row+1.
func cellInterval(row, col int) Interval {
	n := col + row
	d := 2*row + 1
	return Interval{Start: Rational{n, d}, End: Rational{n + 1, d}}
}

// less - лексикографически по (Start, End).
func (a Interval) less(b Interval) bool {
	if a.Start.Less(b.Start) {
		return true
	}
	if b.Start.Less(a.Start) {
		return false
	}
	return a.End.Less(b.End)
}

// ShadowLine - отсортированный список непересекающихся теневых отрезков квадранта.
type ShadowLine struct {
	intervals []Interval
}

// Append добавляет отрезок в конец. Внутри ряда клетки идут по возрастанию,
// так что сортировка сохраняется без поиска места.
func (l *ShadowLine) Append(iv Interval) {
	l.intervals = append(l.intervals, iv)
}

// Merge вливает отрезки other (отсортированные) и склеивает пересечения.
func (l *ShadowLine) Merge(other *ShadowLine) {
	if len(other.intervals) == 0 {
		return
	}
	merged := make([]Interval, 0, len(l.intervals)+len(other.intervals))
	i, j := 0, 0
	for i < len(l.intervals) && j < len(other.intervals) {
		if other.intervals[j].less(l.intervals[i]) {
			merged = append(merged, other.intervals[j])
			j++
		} else {
			merged = append(merged, l.intervals[i])
			i++
		}
	}
	merged = append(merged, l.intervals[i:]...)
	merged = append(merged, other.intervals[j:]...)
	l.intervals = merged
	l.unite()
}

// unite склеивает пересекающиеся отрезки. Касание тоже считается пересечением,
// иначе между соседними стенами просачивается свет.
func (l *ShadowLine) unite() {
	if len(l.intervals) == 0 {
		return
	}
	out := l.intervals[:1]
	for _, iv := range l.intervals[1:] {
		last := &out[len(out)-1]
		if iv.Start.LessEq(last.End) {
			last.End = maxRational(last.End, iv.End)
			continue
		}
		out = append(out, iv)
	}
	l.intervals = out
}

// Covers - отрезок целиком лежит внутри одного теневого отрезка.
func (l *ShadowLine) Covers(iv Interval) bool {
	for _, s := range l.intervals {
		if s.Start.LessEq(iv.Start) && iv.End.LessEq(s.End) {
			return true
		}
	}
	return false
}

// Len - число отрезков (после склейки).
func (l *ShadowLine) Len() int {
	return len(l.intervals)
}
