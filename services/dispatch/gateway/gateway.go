package gateway

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/constants"
	"github.com/skycab/ridepool/internal/pkg/models"
	natspkg "github.com/skycab/ridepool/internal/pkg/nats"
	wspkg "github.com/skycab/ridepool/internal/pkg/websocket"
	"github.com/skycab/ridepool/services/dispatch"
)

// DispatchGW publishes dispatch and trip events to NATS and pushes
// assignment notifications over the websocket manager.
type DispatchGW struct {
	natsClient *natspkg.Client
	wsManager  *wspkg.Manager
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(natsClient *natspkg.Client, wsManager *wspkg.Manager) dispatch.DispatchGW {
	return &DispatchGW{
		natsClient: natsClient,
		wsManager:  wsManager,
	}
}

// PublishPoolDispatched publishes a pool dispatched event
func (g *DispatchGW) PublishPoolDispatched(ctx context.Context, event models.PoolEvent) error {
	return g.publish(constants.SubjectPoolDispatched, event)
}

// PublishPoolDissolved publishes a pool dissolved event
func (g *DispatchGW) PublishPoolDissolved(ctx context.Context, event models.PoolEvent) error {
	return g.publish(constants.SubjectPoolDissolved, event)
}

// PublishTripStarted publishes a trip started event
func (g *DispatchGW) PublishTripStarted(ctx context.Context, event models.PoolEvent) error {
	return g.publish(constants.SubjectTripStarted, event)
}

// PublishTripCompleted publishes a trip completed event
func (g *DispatchGW) PublishTripCompleted(ctx context.Context, event models.PoolEvent) error {
	return g.publish(constants.SubjectTripCompleted, event)
}

// NotifyPassenger pushes a fire-and-forget notification; unconnected
// passengers are silently skipped.
func (g *DispatchGW) NotifyPassenger(passengerID uuid.UUID, eventType string, payload interface{}) {
	g.wsManager.Notify(passengerID.String(), eventType, payload)
}

// NotifyDriver pushes a fire-and-forget notification to a cab's operator,
// addressed by cab ID.
func (g *DispatchGW) NotifyDriver(cabID uuid.UUID, eventType string, payload interface{}) {
	g.wsManager.Notify(cabID.String(), eventType, payload)
}

func (g *DispatchGW) publish(subject string, event models.PoolEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(subject, data)
}
