package gateway

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/constants"
	"github.com/skycab/ridepool/internal/pkg/models"
	natspkg "github.com/skycab/ridepool/internal/pkg/nats"
	wspkg "github.com/skycab/ridepool/internal/pkg/websocket"
	"github.com/skycab/ridepool/services/pooling"
)

// PoolingGW publishes pooling events to NATS and pushes passenger
// notifications over the websocket manager.
type PoolingGW struct {
	natsClient *natspkg.Client
	wsManager  *wspkg.Manager
}

// NewPoolingGW creates a new pooling gateway
func NewPoolingGW(natsClient *natspkg.Client, wsManager *wspkg.Manager) pooling.PoolingGW {
	return &PoolingGW{
		natsClient: natsClient,
		wsManager:  wsManager,
	}
}

// PublishRidePooled publishes a ride pooled event
func (g *PoolingGW) PublishRidePooled(ctx context.Context, event models.PoolEvent) error {
	return g.publish(constants.SubjectRidePooled, event)
}

// PublishRideCancelled publishes a ride cancelled event
func (g *PoolingGW) PublishRideCancelled(ctx context.Context, event models.PoolEvent) error {
	return g.publish(constants.SubjectRideCancelled, event)
}

// PublishPoolDissolved publishes a pool dissolved event
func (g *PoolingGW) PublishPoolDissolved(ctx context.Context, event models.PoolEvent) error {
	return g.publish(constants.SubjectPoolDissolved, event)
}

// PublishPriceUpdated publishes a price updated event
func (g *PoolingGW) PublishPriceUpdated(ctx context.Context, event models.PoolEvent) error {
	return g.publish(constants.SubjectPriceUpdated, event)
}

// NotifyPassenger pushes a fire-and-forget notification; unconnected
// passengers are silently skipped.
func (g *PoolingGW) NotifyPassenger(passengerID uuid.UUID, eventType string, payload interface{}) {
	g.wsManager.Notify(passengerID.String(), eventType, payload)
}

// NotifyDriver pushes a fire-and-forget notification to a cab's driver
func (g *PoolingGW) NotifyDriver(cabID uuid.UUID, eventType string, payload interface{}) {
	g.wsManager.Notify(cabID.String(), eventType, payload)
}

func (g *PoolingGW) publish(subject string, event models.PoolEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(subject, data)
}
