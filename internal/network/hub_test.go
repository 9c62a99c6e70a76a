package network

import (
	"os"
	"testing"

	"roguetester/internal/core/types"
	"roguetester/internal/core/types/enums"
	"roguetester/internal/domain"
	"roguetester/pkg/api"
	"roguetester/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestBroadcaster_PresentRoutesByToken(t *testing.T) {
	b := NewBroadcaster()
	u := domain.NewUnit(types.PackEntityID(uint8(enums.UnitKindAdventurer), 1), "Вася", enums.UnitKindAdventurer, 0)
	other := domain.NewUnit(types.PackEntityID(uint8(enums.UnitKindBug), 2), "DEV-1", enums.UnitKindBug, 0)

	ch := b.Register(u.ID.Token())
	b.Present(u, api.ServerResponse{Type: api.ResponseUpdate, Tick: 1})
	b.Present(other, api.ServerResponse{Type: api.ResponseUpdate, Tick: 2})

	require.Len(t, ch, 1)
	got := <-ch
	assert.Equal(t, 1, got.Tick)
}

func TestBroadcaster_ReplaysLastSnapshot(t *testing.T) {
	b := NewBroadcaster()
	b.SendTo("42", api.ServerResponse{Type: api.ResponseUpdate, Tick: 5})

	ch := b.Register("42")
	require.Len(t, ch, 1)
	assert.Equal(t, 5, (<-ch).Tick)
}

func TestBroadcaster_ReRegisterClosesOld(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("42")
	cur := b.Register("42")

	_, ok := <-old
	assert.False(t, ok, "old inbox must be closed")

	// Отписка старым каналом не трогает нового подписчика
	b.Unregister("42", old)
	assert.True(t, b.HasSubscriber("42"))

	b.Unregister("42", cur)
	assert.False(t, b.HasSubscriber("42"))
	assert.Zero(t, b.SubscriberCount())
}

func TestBroadcaster_FullInboxDrops(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("1")
	for i := 0; i < InboxSize+10; i++ {
		b.SendTo("1", api.ServerResponse{Tick: i})
	}
	assert.Len(t, ch, InboxSize)

	b.CloseAll()
	assert.Zero(t, b.SubscriberCount())
}
