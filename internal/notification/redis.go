package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const DefaultChannel = "petcare:reservations"

type EventType string

const (
	EventReservationConfirmed EventType = "reservation.confirmed"
	EventReservationCancelled EventType = "reservation.cancelled"
)

// Event is the message published for every reservation status change.
type Event struct {
	Type          EventType            `json:"type"`
	ReservationID string               `json:"reservation_id"`
	ServiceType   domain.ServiceType   `json:"service_type"`
	CustomerRef   string               `json:"customer_ref"`
	Slot          *domain.TimeSlot     `json:"slot,omitempty"`
	Stay          *domain.StayInterval `json:"stay,omitempty"`
	TotalPrice    int                  `json:"total_price"`
	At            time.Time            `json:"at"`
}

// RedisNotifier publishes reservation events on a Redis channel for
// downstream consumers. A nil client disables publishing.
type RedisNotifier struct {
	client  redis.UniversalClient
	channel string
	logger  logger.Logger
}

func NewRedisNotifier(client redis.UniversalClient, channel string, log logger.Logger) *RedisNotifier {
	if client == nil {
		log.Warn("redis client is not configured, reservation events disabled")
	}
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisNotifier{client: client, channel: channel, logger: log}
}

func (n *RedisNotifier) ReservationConfirmed(ctx context.Context, r *domain.Reservation) {
	n.publish(ctx, EventReservationConfirmed, r)
}

func (n *RedisNotifier) ReservationCancelled(ctx context.Context, r *domain.Reservation) {
	n.publish(ctx, EventReservationCancelled, r)
}

func (n *RedisNotifier) publish(ctx context.Context, typ EventType, r *domain.Reservation) {
	if n.client == nil {
		n.logger.Debug("event skipped (publisher disabled)",
			logger.String("type", string(typ)),
			logger.String("reservation_id", r.ID),
		)
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("event skipped (context cancelled)",
			logger.String("reservation_id", r.ID),
		)
		return
	}

	body, err := json.Marshal(Event{
		Type:          typ,
		ReservationID: r.ID,
		ServiceType:   r.ServiceType,
		CustomerRef:   r.CustomerRef,
		Slot:          r.Slot,
		Stay:          r.Stay,
		TotalPrice:    r.TotalPrice,
		At:            time.Now().UTC(),
	})
	if err != nil {
		n.logger.Error("failed to encode reservation event",
			logger.String("reservation_id", r.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	if err = n.client.Publish(ctx, n.channel, body).Err(); err != nil {
		n.logger.Error("failed to publish reservation event",
			logger.String("channel", n.channel),
			logger.String("reservation_id", r.ID),
			logger.String("error", err.Error()),
		)
	}
}
