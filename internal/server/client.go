package server

import (
	"context"
	"net/http"
	"time"

	"roguetester/pkg/api"
	"roguetester/pkg/logger"
	"roguetester/pkg/utils"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между websocket и очередью команд героя.
// Команды идут в Server.Input, HUD-снимки приходят из хаба.
type Client struct {
	// SessionID - id соединения для логов
	SessionID string

	srv  *Server
	conn *websocket.Conn

	// Ответы самого транспорта (отказы), мимо симуляции
	local chan api.ServerResponse
	done  chan struct{}
}

func NewClient(srv *Server, conn *websocket.Conn) *Client {
	return &Client{
		SessionID: utils.GenerateID(),
		srv:       srv,
		conn:      conn,
		local:     make(chan api.ServerResponse, 8),
		done:      make(chan struct{}),
	}
}

func (c *Client) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "ws_client",
		"session":   c.SessionID,
		"remote":    c.conn.RemoteAddr().String(),
	})
}

// readPump читает команды клиента. Первое сообщение - вход с токеном героя.
func (c *Client) readPump(ctx context.Context) {
	defer func() {
		close(c.done)
		if err := c.conn.Close(); err != nil {
			c.log().WithError(err).Debug("failed to close websocket connection")
		}
		c.log().Info("Client disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log().WithError(err).Warn("failed to set read deadline")
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// 1. HANDSHAKE (LOGIN)
	var login api.ClientCommand
	if err := c.conn.ReadJSON(&login); err != nil {
		c.log().WithError(err).Warn("Handshake failed")
		return
	}
	if login.Token != c.srv.HeroToken {
		c.log().WithField("token", login.Token).Warn("Unknown token")
		c.writeDirect(rejected("unknown token"))
		return
	}

	// 2. ПОДПИСКА НА ОБНОВЛЕНИЯ
	updates := c.srv.Hub.Register(login.Token)
	defer c.srv.Hub.Unregister(login.Token, updates)
	go c.writePump(updates)

	c.log().WithField("token", login.Token).Info("Client logged in")

	// Вход может сразу нести команду
	if login.Command != "" {
		if !c.forward(ctx, login) {
			return
		}
	}

	// 3. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log().WithError(err).Error("WS Error")
			}
			return
		}
		if cmd.Token != "" && cmd.Token != c.srv.HeroToken {
			c.reply(rejected("token mismatch"))
			continue
		}
		if !c.forward(ctx, cmd) {
			return
		}
	}
}

// forward проверяет команду и кладет ее в очередь героя.
// false - очередь закрыта или контекст отменен, читать дальше незачем.
func (c *Client) forward(ctx context.Context, cmd api.ClientCommand) bool {
	if err := cmd.Validate(); err != nil {
		c.reply(rejected(err.Error()))
		return true
	}
	if err := c.srv.Input.PushLine(ctx, cmd.Line()); err != nil {
		c.log().WithError(err).Debug("Input closed")
		return false
	}
	return true
}

func (c *Client) reply(msg api.ServerResponse) {
	select {
	case c.local <- msg:
	default:
	}
}

// writeDirect - ответ до старта writePump (отказ при входе).
func (c *Client) writeDirect(msg api.ServerResponse) {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(msg); err != nil {
		c.log().WithError(err).Debug("write json message failed")
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump(updates <-chan api.ServerResponse) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-updates:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Хаб закрыл канал: симуляция закончилась или клиента вытеснили
				if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log().WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				c.log().WithError(err).Debug("write json message failed")
				return
			}

		case message := <-c.local:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(message); err != nil {
				c.log().WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log().WithError(err).Debug("ping failed")
				return
			}

		case <-c.done:
			return
		}
	}
}

func rejected(reason string) api.ServerResponse {
	return api.ServerResponse{Type: api.ResponseRejected, Notice: []string{reason}}
}
