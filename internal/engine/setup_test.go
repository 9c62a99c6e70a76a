package engine

import (
	"context"
	"math/rand"
	"os"
	"strings"
	"testing"

	"roguetester/internal/core/types/enums"
	"roguetester/internal/domain"
	"roguetester/internal/systems"
	"roguetester/pkg/api"
	"roguetester/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

// openRoom - мир из одной пустой комнаты w x h, обнесенной стеной.
func openRoom(w, h int) (*domain.World, *domain.Room) {
	rows := make([]string, h)
	for y := range rows {
		switch y {
		case 0, h - 1:
			rows[y] = strings.Repeat("#", w)
		default:
			rows[y] = "#" + strings.Repeat(".", w-2) + "#"
		}
	}
	world := domain.NewWorld(rand.New(rand.NewSource(1)))
	room := world.NewRoom(rows, domain.Position{X: 1, Y: 1}, nil)
	world.LinkRooms()
	return world, room
}

func place(t *testing.T, u *domain.Unit, room *domain.Room, x, y int) *domain.Unit {
	t.Helper()
	require.NoError(t, systems.PlaceUnit(u, room, domain.Position{X: x, Y: y}))
	return u
}

// recorder собирает все HUD-снимки игрока.
type recorder struct {
	got []api.ServerResponse
}

func (r *recorder) Present(_ *domain.Unit, resp api.ServerResponse) {
	r.got = append(r.got, resp)
}

func (r *recorder) types() []string {
	out := make([]string, 0, len(r.got))
	for _, resp := range r.got {
		out = append(out, resp.Type)
	}
	return out
}

// scriptedInput - игрок, заранее набравший строки команд.
func scriptedInput(t *testing.T, lines ...string) *ChannelInput {
	t.Helper()
	in := NewChannelInput(len(lines))
	for _, line := range lines {
		require.NoError(t, in.PushLine(context.Background(), line))
	}
	return in
}

// scriptedController выполняет заданную функцию вместо решения и считает вызовы.
type scriptedController struct {
	kind   enums.ControlKind
	decide func(u *domain.Unit) domain.Command
	calls  int
}

func (c *scriptedController) Kind() enums.ControlKind { return c.kind }

func (c *scriptedController) Decide(_ context.Context, u *domain.Unit) (domain.Command, error) {
	c.calls++
	if c.decide == nil {
		return domain.Cmd(domain.CmdWait), nil
	}
	return c.decide(u), nil
}
