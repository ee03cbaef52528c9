package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycab/ridepool/internal/pkg/jwt"
	"github.com/skycab/ridepool/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "ws-test-secret",
		Expiration: 5,
		Issuer:     "ridepool-test",
	}
}

func newTestServer(t *testing.T, m *Manager) *httptest.Server {
	t.Helper()
	e := echo.New()
	e.GET("/ws", m.HandleConnection)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, token string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}
	return websocket.DefaultDialer.Dial(url, header)
}

func TestHandleConnection_RejectsMissingToken(t *testing.T) {
	m := NewManager(testJWTConfig())
	srv := newTestServer(t, m)

	conn, resp, err := dial(t, srv, "")
	require.Error(t, err)
	require.Nil(t, conn)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandleConnection_RejectsInvalidToken(t *testing.T) {
	m := NewManager(testJWTConfig())
	srv := newTestServer(t, m)

	conn, resp, err := dial(t, srv, "not-a-token")
	require.Error(t, err)
	require.Nil(t, conn)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandleConnection_DeliversNotification(t *testing.T) {
	cfg := testJWTConfig()
	m := NewManager(cfg)
	srv := newTestServer(t, m)

	passengerID := uuid.New()
	token, _, err := jwt.GenerateToken(passengerID, "passenger", cfg)
	require.NoError(t, err)

	conn, _, err := dial(t, srv, token)
	require.NoError(t, err)
	defer conn.Close()

	// registration happens on the server goroutine after the upgrade
	require.Eventually(t, func() bool {
		_, ok := m.GetClient(passengerID.String())
		return ok
	}, time.Second, 10*time.Millisecond)

	m.Notify(passengerID.String(), "POOL_JOINED", map[string]string{"pool_id": uuid.NewString()})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg models.WebSocketMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "POOL_JOINED", msg.Event)
}

func TestNotify_SkipsUnknownRecipient(t *testing.T) {
	m := NewManager(testJWTConfig())

	assert.NotPanics(t, func() {
		m.Notify(uuid.NewString(), "POOL_JOINED", nil)
	})
}
