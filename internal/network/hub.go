package network

import (
	"sync"

	"roguetester/internal/domain"
	"roguetester/pkg/api"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// InboxSize - сколько HUD-снимков ждут медленного клиента, прежде чем их начнут выбрасывать.
const InboxSize = 64

// Broadcaster раздает HUD-снимки подписчикам по токену юнита.
// Пишет цикл симуляции, читают транспорты (websocket, бот, консоль).
// Как engine.Presenter никогда не блокирует симуляцию: полный канал - снимок пропадает.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: токен юнита -> личный канал
	subscribers map[string]chan api.ServerResponse
	// Последний снимок: новый подписчик сразу видит, где он
	last map[string]api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
		last:        make(map[string]api.ServerResponse),
	}
}

// Register создает личный канал для юнита. Старый канал того же токена закрывается:
// переподключившийся клиент вытесняет прежнего.
func (b *Broadcaster) Register(token string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[token]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, InboxSize)
	if last, ok := b.last[token]; ok {
		ch <- last
	}
	b.subscribers[token] = ch

	logger.Log.WithFields(logrus.Fields{
		"component": "hub",
		"token":     token,
	}).Debug("Subscriber registered")
	return ch
}

// Unregister удаляет подписчика, если канал все еще его.
func (b *Broadcaster) Unregister(token string, ch chan api.ServerResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cur, ok := b.subscribers[token]; ok && cur == ch {
		close(cur)
		delete(b.subscribers, token)
	}
}

// SendTo отправляет снимок одному подписчику (Unicast)
func (b *Broadcaster) SendTo(token string, msg api.ServerResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.last[token] = msg
	if ch, ok := b.subscribers[token]; ok {
		select {
		case ch <- msg:
		default:
			logger.Log.WithFields(logrus.Fields{
				"component": "hub",
				"token":     token,
				"type":      msg.Type,
			}).Warn("Subscriber inbox full, snapshot dropped")
		}
	}
}

// Present - engine.Presenter: снимок уходит подписчику с токеном юнита.
func (b *Broadcaster) Present(u *domain.Unit, resp api.ServerResponse) {
	b.SendTo(u.ID.Token(), resp)
}

// CloseAll закрывает все каналы: симуляция закончилась.
func (b *Broadcaster) CloseAll() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for token, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, token)
	}
}

// HasSubscriber проверяет, подключен ли кто-то к юниту.
func (b *Broadcaster) HasSubscriber(token string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[token]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
