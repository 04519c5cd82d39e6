package handler

import (
	"net/http"
	"strings"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "dzdeals/internal/infrastructure/websocket"
	"dzdeals/internal/usecase"
	"dzdeals/pkg/errors"
)

type WebSocketHandler struct {
	wsManager *ws.Manager
	tokens    usecase.TokenManager
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // restrict in production
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, tokens usecase.TokenManager) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager: wsManager,
		tokens:    tokens,
	}
}

// HandleWebSocket upgrades the connection and registers the client for the
// global broadcast stream. The token travels in the "token" query parameter
// or the Authorization header, since browsers cannot set headers on upgrade.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		token = strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
	}
	if token == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	userID, err := h.tokens.Verify(token)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}
