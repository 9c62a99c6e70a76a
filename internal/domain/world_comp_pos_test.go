package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition_Arithmetic(t *testing.T) {
	a := Position{X: 3, Y: -2}
	b := Position{X: 1, Y: 4}

	assert.Equal(t, Position{X: 4, Y: 2}, a.Add(b))
	assert.Equal(t, Position{X: 2, Y: -6}, a.Sub(b))
	assert.Equal(t, 8, a.Manhattan(b))
	assert.Equal(t, 8, b.Manhattan(a))
	assert.Equal(t, "(3,-2)", a.String())
}

func TestPosition_Touch(t *testing.T) {
	o := Position{X: 5, Y: 5}
	tests := []struct {
		name  string
		other Position
		want  bool
	}{
		{"same cell", o, true},
		{"north", o.Add(North), true},
		{"east", o.Add(East), true},
		{"diagonal is not touch", Position{X: 6, Y: 6}, false},
		{"two away", Position{X: 7, Y: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, o.Touch(tt.other))
		})
	}
}

func TestPosition_DistMatchesDirectComputation(t *testing.T) {
	// Внутри кеша и за его пределами результат одинаковый
	for _, d := range []Position{{0, 0}, {3, 4}, {1, 1}, {2, 2}, {-7, 3}, {99, -100}, {150, 20}, {-300, -400}} {
		want := int(math.Round(math.Hypot(float64(d.X), float64(d.Y))))
		assert.Equal(t, want, Position{}.Dist(d), "dist to %v", d)
		assert.Equal(t, want, d.Dist(Position{}), "dist from %v", d)
	}
	assert.Equal(t, 5, Position{X: 3, Y: 4}.Dist(Position{}))
	assert.Equal(t, 500, Position{X: 300, Y: 400}.Dist(Position{}))
}

func TestPosition_Sign(t *testing.T) {
	assert.Equal(t, Position{X: 1, Y: 0}, Position{X: 4, Y: 0}.Sign())
	assert.Equal(t, Position{X: -1, Y: 1}, Position{X: -3, Y: 9}.Sign())
	assert.Equal(t, Position{}, Position{}.Sign())
}

func TestTranslate(t *testing.T) {
	origin := Position{X: 10, Y: 10}
	local := Position{X: 2, Y: 1} // второй ряд, смещение 1

	assert.Equal(t, Position{X: 11, Y: 8}, Translate(origin, local, 0))
	assert.Equal(t, Position{X: 12, Y: 11}, Translate(origin, local, 1))
	assert.Equal(t, Position{X: 9, Y: 12}, Translate(origin, local, 2))
	assert.Equal(t, Position{X: 8, Y: 9}, Translate(origin, local, 3))
	// Номер квадранта берется по модулю 4
	assert.Equal(t, Translate(origin, local, 1), Translate(origin, local, 5))
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{"north", North, false},
		{"SOUTH", South, false},
		{"West", West, false},
		{"east", East, false},
		{"up", Position{}, true},
		{"", Position{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if tt.wantErr {
			assert.True(t, errors.Is(err, ErrInvalidDirection), "input %q", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, got, mustParse(t, DirectionName(got)))
	}
	assert.Equal(t, "", DirectionName(Position{X: 1, Y: 1}))
}

func mustParse(t *testing.T, s string) Position {
	t.Helper()
	d, err := ParseDirection(s)
	require.NoError(t, err)
	return d
}

func TestQuadrantOf(t *testing.T) {
	for i, d := range []Position{North, East, South, West} {
		q, ok := QuadrantOf(d)
		assert.True(t, ok)
		assert.Equal(t, i, q)
	}
	_, ok := QuadrantOf(Position{X: 1, Y: 1})
	assert.False(t, ok)
}

func TestPositionSet_Sorted(t *testing.T) {
	s := NewPositionSet(Position{2, 1}, Position{0, 1}, Position{5, 0})
	assert.True(t, s.Has(Position{0, 1}))
	assert.False(t, s.Has(Position{1, 1}))
	assert.Equal(t, []Position{{5, 0}, {0, 1}, {2, 1}}, s.Sorted())
}
