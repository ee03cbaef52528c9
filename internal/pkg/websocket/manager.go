package websocket

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/skycab/ridepool/internal/pkg/jwt"
	"github.com/skycab/ridepool/internal/pkg/logger"
	"github.com/skycab/ridepool/internal/pkg/models"
)

// Manager manages WebSocket connections and client state
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates, registers and serves a client connection.
// The connection is kept open until the peer closes it; inbound frames are
// drained and discarded since notifications are push-only.
func (m *Manager) HandleConnection(c echo.Context) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.Conn = ws
	m.AddClient(client)
	defer m.RemoveClient(client.UserID)

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return nil
		}
	}
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := jwt.ValidateToken(parts[1], m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, userID)
}

// GetClient returns a client by ID
func (m *Manager) GetClient(userID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// Notify pushes an event to one recipient. Fire-and-forget: recipients
// that are not connected, or whose write fails, are silently skipped.
func (m *Manager) Notify(recipientID string, eventType string, payload interface{}) {
	client, ok := m.GetClient(recipientID)
	if !ok || client.Conn == nil {
		return
	}

	msg := models.WebSocketMessage{Event: eventType, Payload: payload}
	data, err := json.Marshal(msg)
	if err != nil {
		logger.Warn("Failed to marshal notification",
			logger.String("user_id", recipientID),
			logger.String("event", eventType),
			logger.Err(err))
		return
	}

	client.WriteMu.Lock()
	defer client.WriteMu.Unlock()
	if err := client.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
		logger.Debug("Dropped notification to disconnected client",
			logger.String("user_id", recipientID),
			logger.String("event", eventType))
		m.RemoveClient(recipientID)
	}
}
