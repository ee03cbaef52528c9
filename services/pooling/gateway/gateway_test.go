package gateway

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycab/ridepool/internal/pkg/constants"
	"github.com/skycab/ridepool/internal/pkg/models"
	natspkg "github.com/skycab/ridepool/internal/pkg/nats"
	wspkg "github.com/skycab/ridepool/internal/pkg/websocket"
)

var testNatsURL = "nats://127.0.0.1:8369"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8369
	testNatsServer := natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

func newTestGateway(t *testing.T) (*PoolingGW, *natspkg.Client) {
	t.Helper()
	nc, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err, "Failed to connect to NATS server")

	wsManager := wspkg.NewManager(models.JWTConfig{Secret: "test-secret"})
	gw := NewPoolingGW(nc, wsManager).(*PoolingGW)
	return gw, nc
}

func TestPublishRidePooled_Success(t *testing.T) {
	gw, nc := newTestGateway(t)
	defer nc.Close()

	msgCh := make(chan *nats.Msg, 1)
	sub, err := nc.Subscribe(constants.SubjectRidePooled, func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	rideID := uuid.New()
	poolID := uuid.New()
	passengerID := uuid.New()
	event := models.NewRidePooledEvent(rideID, poolID, passengerID)

	err = gw.PublishRidePooled(context.Background(), event)
	require.NoError(t, err)

	select {
	case msg := <-msgCh:
		var received models.PoolEvent
		require.NoError(t, json.Unmarshal(msg.Data, &received))
		assert.Equal(t, models.EventRidePooled, received.Kind)
		assert.Equal(t, rideID, *received.RideRequestID)
		assert.Equal(t, poolID, *received.PoolID)
		assert.Equal(t, passengerID, *received.PassengerID)
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
	}
}

func TestPublishPoolDissolved_Success(t *testing.T) {
	gw, nc := newTestGateway(t)
	defer nc.Close()

	msgCh := make(chan *nats.Msg, 1)
	sub, err := nc.Subscribe(constants.SubjectPoolDissolved, func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	poolID := uuid.New()
	err = gw.PublishPoolDissolved(context.Background(), models.NewPoolDissolvedEvent(poolID))
	require.NoError(t, err)

	select {
	case msg := <-msgCh:
		var received models.PoolEvent
		require.NoError(t, json.Unmarshal(msg.Data, &received))
		assert.Equal(t, models.EventPoolDissolved, received.Kind)
		assert.Equal(t, poolID, *received.PoolID)
		assert.Nil(t, received.RideRequestID)
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
	}
}

func TestNotifyPassenger_UnconnectedIsSilent(t *testing.T) {
	gw, nc := newTestGateway(t)
	defer nc.Close()

	// nobody is connected; the notify must be a no-op, not a panic
	gw.NotifyPassenger(uuid.New(), constants.NotifyPoolJoined, map[string]string{"pool_id": uuid.New().String()})
}
