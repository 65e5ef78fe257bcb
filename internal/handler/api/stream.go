package api

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"GemScout/internal/domain/models"
	"GemScout/internal/usecase"
	xlogger "GemScout/pkg/logger"
)

// StreamHandler pushes state snapshots to connected dashboards over
// websockets, so a long-running analysis shows progress without polling.
type StreamHandler struct {
	logger       *xlogger.Logger
	orchestrator *usecase.Orchestrator
	upgrader     websocket.Upgrader

	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
}

func NewStreamHandler(logger *xlogger.Logger, orchestrator *usecase.Orchestrator) *StreamHandler {
	h := &StreamHandler{
		logger:       logger,
		orchestrator: orchestrator,
		upgrader: websocket.Upgrader{
			// Single-user local service; the dashboard is served same-host.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
	orchestrator.OnChange(h.broadcast)
	return h
}

func (h *StreamHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/status", h.Status)
}

// Status upgrades the connection, sends the current snapshot and then keeps
// the client on the broadcast list until it hangs up.
func (h *StreamHandler) Status(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	if err := conn.WriteJSON(redactState(h.orchestrator.State())); err != nil {
		_ = conn.Close()
		return nil
	}
	h.addClient(conn)

	// Drain reads to notice the close frame.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.removeClient(conn)
				return
			}
		}
	}()
	return nil
}

func (h *StreamHandler) addClient(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *StreamHandler) removeClient(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

func (h *StreamHandler) broadcast(state models.AppState) {
	state = redactState(state)

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		clients = append(clients, conn)
	}
	h.mu.RUnlock()

	for _, conn := range clients {
		if err := conn.WriteJSON(state); err != nil {
			h.removeClient(conn)
		}
	}
}
