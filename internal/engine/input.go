package engine

import (
	"context"
	"sync"

	"roguetester/internal/domain"
	"roguetester/pkg/api"
)

// InputSource - откуда игрок берет команды. Next блокируется до команды.
// Закрытый источник означает выход игрока (domain.ErrQuit).
type InputSource interface {
	Next(ctx context.Context) (domain.Command, error)
}

// Presenter - куда уходят HUD-снимки юнита игрока.
type Presenter interface {
	Present(u *domain.Unit, resp api.ServerResponse)
}

// PresenterFunc - адаптер функции к Presenter.
type PresenterFunc func(u *domain.Unit, resp api.ServerResponse)

func (f PresenterFunc) Present(u *domain.Unit, resp api.ServerResponse) { f(u, resp) }

// ChannelInput - очередь команд между транспортом (консоль, websocket, бот)
// и симуляцией. Пишут из любых горутин, читает только цикл симуляции.
type ChannelInput struct {
	ch        chan domain.Command
	done      chan struct{}
	closeOnce sync.Once
}

func NewChannelInput(buffer int) *ChannelInput {
	return &ChannelInput{
		ch:   make(chan domain.Command, buffer),
		done: make(chan struct{}),
	}
}

// Push кладет команду в очередь. Блокируется, если очередь полна.
func (c *ChannelInput) Push(ctx context.Context, cmd domain.Command) error {
	select {
	case <-c.done:
		return domain.ErrQuit
	default:
	}

	select {
	case c.ch <- cmd:
		return nil
	case <-c.done:
		return domain.ErrQuit
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PushLine разбирает строку "attack north" и кладет команду в очередь.
func (c *ChannelInput) PushLine(ctx context.Context, line string) error {
	return c.Push(ctx, domain.ParseCommand(line))
}

// Close - игрок ушел (EOF консоли, закрытый сокет бота).
func (c *ChannelInput) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *ChannelInput) Next(ctx context.Context) (domain.Command, error) {
	// Команды, пришедшие до Close, отдаются первыми
	select {
	case cmd := <-c.ch:
		return cmd, nil
	default:
	}

	select {
	case cmd := <-c.ch:
		return cmd, nil
	case <-c.done:
		return domain.Command{}, domain.ErrQuit
	case <-ctx.Done():
		return domain.Command{}, ctx.Err()
	}
}
