package models

import (
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WebSocketClient represents a connected notification recipient
type WebSocketClient struct {
	UserID string
	Role   string
	Conn   *websocket.Conn
	// WriteMu serializes writes; gorilla connections allow one writer at a time.
	WriteMu sync.Mutex
}

// WebSocketClaims are the JWT claims carried by a connecting client
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// WebSocketMessage is the envelope pushed to connected clients
type WebSocketMessage struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}
