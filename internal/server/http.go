package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"roguetester/internal/engine"
	"roguetester/internal/network"
	"roguetester/internal/version"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

// Server - websocket-транспорт единственного игрока и служебные http-ручки.
type Server struct {
	Engine *engine.Service
	Hub    *network.Broadcaster
	// Input - очередь команд героя
	Input *engine.ChannelInput
	// HeroToken - токен юнита героя. Клиент обязан предъявить его при входе.
	HeroToken string
	Addr      string
}

func New(svc *engine.Service, hub *network.Broadcaster, input *engine.ChannelInput, heroToken, addr string) *Server {
	return &Server{
		Engine:    svc,
		Hub:       hub,
		Input:     input,
		HeroToken: heroToken,
		Addr:      addr,
	}
}

// Handler собирает роуты сервера.
func (s *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(func(w http.ResponseWriter, r *http.Request) {
		s.handleWS(ctx, w, r)
	}))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	NewDebugHandler(s.Engine).RegisterRoutes(mux)
	return mux
}

// Run запускает HTTP сервер и гасит его по отмене контекста.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.WithFields(logrus.Fields{
			"component": "http",
			"addr":      s.Addr,
		}).Info("Server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Warn("HTTP shutdown failed")
		return err
	}
	logger.Log.WithField("component", "http").Info("Server stopped")
	return nil
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("Upgrade error")
		return
	}

	client := NewClient(s, conn)
	go client.readPump(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(version.Info())
}
