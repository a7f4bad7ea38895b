package live_updates

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

type Handler struct {
	frontDesk FrontDesk
	upgrader  websocket.Upgrader
	logger    Logger
}

func NewHandler(frontDesk FrontDesk, logger Logger) *Handler {
	return &Handler{
		frontDesk: frontDesk,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: logger,
	}
}

// Handle GET /api/v1/live
// После подключения клиент получает текущее состояние и затем каждое изменение
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrader уже ответил клиенту
		h.logger.Warn("GET /api/v1/live - Failed to upgrade connection: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel := h.frontDesk.Subscribe()
	defer cancel()

	h.logger.Info("GET /api/v1/live - Client connected: remote=%s", r.RemoteAddr)

	// Читаем только для обработки pong и закрытия соединения
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(maxMessageSize)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(snap); err != nil {
				h.logger.Warn("GET /api/v1/live - Failed to push snapshot: %v", err)
				return
			}

		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}

		case <-closed:
			h.logger.Info("GET /api/v1/live - Client disconnected: remote=%s", r.RemoteAddr)
			return

		case <-r.Context().Done():
			return
		}
	}
}
